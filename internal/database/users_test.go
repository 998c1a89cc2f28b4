package database

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCreateAndGetUser(t *testing.T) {
	db := setupTestDB(t)

	user, err := CreateUser(db, "meena@example.com", "secret123", "Meena Iyer", "+91 73339 28754", "user")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "user", user.Role)
	assert.NotZero(t, user.CreatedAt)

	// Password is stored hashed.
	assert.NotEqual(t, "secret123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))

	got, err := GetUserByEmail(db, "meena@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	byID, err := GetUserByID(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Meena Iyer", byID.Name)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)

	_, err := CreateUser(db, "dup@example.com", "secret123", "First", "111", "user")
	require.NoError(t, err)

	_, err = CreateUser(db, "dup@example.com", "other456", "Second", "222", "user")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUpdateProfile(t *testing.T) {
	db := setupTestDB(t)

	user, err := CreateUser(db, "arun@example.com", "secret123", "Arun", "123", "user")
	require.NoError(t, err)

	require.NoError(t, UpdateProfile(db, user.ID, "Arun Prakash", "456"))

	got, err := GetUserByID(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Arun Prakash", got.Name)
	assert.Equal(t, "456", got.Phone)

	assert.Equal(t, sql.ErrNoRows, UpdateProfile(db, "missing-id", "x", "y"))
}

func TestSetFCMToken(t *testing.T) {
	db := setupTestDB(t)

	user, err := CreateUser(db, "push@example.com", "secret123", "Push", "123", "user")
	require.NoError(t, err)

	require.NoError(t, SetFCMToken(db, user.ID, "device-token-1"))

	got, err := GetUserByID(db, user.ID)
	require.NoError(t, err)
	require.NotNil(t, got.FCMToken)
	assert.Equal(t, "device-token-1", *got.FCMToken)
}

func TestEnsureAdminCreatesExactlyOneAdmin(t *testing.T) {
	db := setupTestDB(t)

	// Run twice against an empty store.
	require.NoError(t, EnsureAdmin(db, "admin@gmail.com", "admin123"))
	require.NoError(t, EnsureAdmin(db, "admin@gmail.com", "admin123"))

	var count int
	require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM users WHERE role = 'admin'"))
	assert.Equal(t, 1, count)

	admin, err := GetUserByEmail(db, "admin@gmail.com")
	require.NoError(t, err)
	assert.Equal(t, "admin", admin.Role)
}

func TestEnsureAdminRepairsDriftedRole(t *testing.T) {
	db := setupTestDB(t)

	// The admin email exists but was registered as a plain user.
	_, err := CreateUser(db, "admin@gmail.com", "whatever1", "Someone", "", "user")
	require.NoError(t, err)

	require.NoError(t, EnsureAdmin(db, "admin@gmail.com", "admin123"))

	admin, err := GetUserByEmail(db, "admin@gmail.com")
	require.NoError(t, err)
	assert.Equal(t, "admin", admin.Role)

	var count int
	require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM users"))
	assert.Equal(t, 1, count)
}
