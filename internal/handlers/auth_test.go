package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	_, router := newTestServer(t)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/register", "", RegisterRequest{
		Email:    "meena@example.com",
		Password: "secret123",
		Name:     "Meena Iyer",
		Phone:    "+91 73339 28754",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var reg AuthResponse
	decodeBody(t, rec, &reg)
	assert.True(t, reg.OK)
	assert.NotEmpty(t, reg.Token)
	require.NotNil(t, reg.User)
	assert.Equal(t, "user", reg.User.Role)

	rec = doJSON(t, router, http.MethodPost, "/api/auth/login", "", LoginRequest{
		Email:    "meena@example.com",
		Password: "secret123",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var login AuthResponse
	decodeBody(t, rec, &login)
	assert.True(t, login.OK)
	assert.NotEmpty(t, login.Token)
}

func TestRegisterValidation(t *testing.T) {
	_, router := newTestServer(t)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/register", "", RegisterRequest{
		Email:    "not-an-email",
		Password: "short",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Errors map[string]string `json:"errors"`
	}
	decodeBody(t, rec, &body)
	assert.Contains(t, body.Errors, "email")
	assert.Contains(t, body.Errors, "password")
	assert.Contains(t, body.Errors, "name")
	assert.Contains(t, body.Errors, "phone")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	_, router := newTestServer(t)

	req := RegisterRequest{Email: "dup@example.com", Password: "secret123", Name: "First", Phone: "111"}
	rec := doJSON(t, router, http.MethodPost, "/api/auth/register", "", req)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/auth/register", "", req)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db, router := newTestServer(t)
	newUserToken(t, db, "arun@example.com", "user")

	rec := doJSON(t, router, http.MethodPost, "/api/auth/login", "", LoginRequest{
		Email:    "arun@example.com",
		Password: "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/auth/login", "", LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthStatus(t *testing.T) {
	db, router := newTestServer(t)
	_, token := newUserToken(t, db, "arun@example.com", "user")

	rec := doJSON(t, router, http.MethodGet, "/api/auth/status", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		OK      bool `json:"ok"`
		IsAdmin bool `json:"is_admin"`
		User    struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
	}
	decodeBody(t, rec, &body)
	assert.True(t, body.OK)
	assert.False(t, body.IsAdmin)
	assert.Equal(t, "arun@example.com", body.User.Email)
}

// The admin area guard: no session is turned away, a plain user is
// forbidden, an admin gets through.
func TestAdminRouteGuard(t *testing.T) {
	db, router := newTestServer(t)
	_, userToken := newUserToken(t, db, "rider@example.com", "user")
	_, adminToken := newUserToken(t, db, "admin@example.com", "admin")

	rec := doJSON(t, router, http.MethodGet, "/api/admin/bookings", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/admin/bookings", userToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/admin/bookings", adminToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateProfileRoundTrip(t *testing.T) {
	db, router := newTestServer(t)
	_, token := newUserToken(t, db, "arun@example.com", "user")

	rec := doJSON(t, router, http.MethodPatch, "/api/profile", token, UpdateProfileRequest{
		Name:  "Arun Prakash",
		Phone: "+91 94865 12345",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		User struct {
			Name  string `json:"name"`
			Phone string `json:"phone"`
		} `json:"user"`
	}
	decodeBody(t, rec, &body)
	assert.Equal(t, "Arun Prakash", body.User.Name)
	assert.Equal(t, "+91 94865 12345", body.User.Phone)
}
