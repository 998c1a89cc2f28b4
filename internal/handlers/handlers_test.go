package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cabbook-backend/internal/database"
	"cabbook-backend/internal/middleware"
	"cabbook-backend/internal/models"
	"cabbook-backend/internal/websocket"

	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

// newTestServer wires the API routes exactly as cmd/server does,
// against an in-memory SQLite store and a running hub.
func newTestServer(t *testing.T) (*sqlx.DB, *chi.Mux) {
	t.Helper()
	t.Setenv("APP_JWT_SECRET", "test-secret")

	db, err := sqlx.Connect("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(db))

	hub := websocket.NewHub()
	go hub.Run()

	r := chi.NewRouter()
	r.Post("/api/auth/login", Login(db))
	r.Post("/api/auth/register", Register(db))

	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth)

			r.Get("/auth/status", GetAuthStatus(db))
			r.Post("/auth/fcm-token", RegisterFCMToken(db))
			r.Patch("/profile", UpdateProfile(db))

			r.Post("/bookings", CreateBooking(db, hub, nil))
			r.Get("/bookings", GetMyBookings(db))
			r.Get("/bookings/{id}", GetBooking(db))
			r.Put("/bookings/{id}/cancel", CancelBooking(db, hub))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth)
			r.Use(middleware.RequireRole("admin"))

			r.Get("/admin/bookings", GetAllBookings(db))
			r.Put("/admin/bookings/{id}/status", UpdateBookingStatus(db, hub, nil))
			r.Get("/admin/drivers", GetDrivers())
			r.Post("/admin/drivers/{id}/photo", UploadDriverPhoto(nil))
		})
	})

	return db, r
}

// newUserToken creates an account directly in the store and returns a
// signed session token for it.
func newUserToken(t *testing.T, db *sqlx.DB, email, role string) (*models.User, string) {
	t.Helper()

	user, err := database.CreateUser(db, email, "secret123", "Test User", "+91 90000 00000", role)
	require.NoError(t, err)

	token, err := issueToken(user)
	require.NoError(t, err)
	return user, token
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}
