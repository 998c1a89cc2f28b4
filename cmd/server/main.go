package main

import (
	"log"
	"net/http"
	"os"

	"cabbook-backend/internal/database"
	"cabbook-backend/internal/handlers"
	"cabbook-backend/internal/metrics"
	"cabbook-backend/internal/middleware"
	"cabbook-backend/internal/services"
	"cabbook-backend/internal/websocket"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	defaultAdminEmail    = "admin@gmail.com"
	defaultAdminPassword = "admin123"
)

func main() {
	log.Println("═══════════════════════════════════════════════════════════════════")
	log.Println("🚕 CABBOOK BACKEND SERVER STARTING")
	log.Println("═══════════════════════════════════════════════════════════════════")

	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, using environment variables from system")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	db, err := database.Connect(dbURL)
	if err != nil {
		log.Fatalf("❌ Database connection failed: %v", err)
	}
	defer db.Close()

	log.Println("🔄 Running database migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatalf("❌ Database migrations failed: %v", err)
	}
	log.Println("✅ Database migrations completed")

	// Make sure the designated administrator account exists. The same
	// routine runs from cmd/bootstrap-admin at provisioning time, this
	// boot-time call only repairs drift.
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = defaultAdminEmail
	}
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = defaultAdminPassword
	}
	if err := database.EnsureAdmin(db, adminEmail, adminPassword); err != nil {
		log.Printf("⚠️  Admin bootstrap failed: %v (continuing)", err)
	}

	// Firebase Cloud Messaging, optional. Supports a file path or
	// base64-encoded credentials for cloud deployments.
	var fcmService *services.FCMService
	if creds := os.Getenv("FIREBASE_CREDENTIALS_BASE64"); creds != "" {
		fcmService, err = services.NewFCMServiceFromBase64(creds)
	} else {
		credsFile := os.Getenv("FIREBASE_CREDENTIALS_FILE")
		if credsFile == "" {
			credsFile = "./firebase-service-account.json"
		}
		fcmService, err = services.NewFCMService(credsFile)
	}
	if err != nil {
		log.Printf("⚠️  FCM unavailable: %v (push notifications disabled)", err)
		fcmService = nil
	} else {
		log.Println("✅ Firebase Cloud Messaging initialized")
	}

	// Cloudinary photo storage, optional.
	storageService, err := services.NewStorageServiceFromEnv()
	if err != nil {
		log.Printf("⚠️  Photo storage unavailable: %v (uploads disabled)", err)
		storageService = nil
	} else {
		log.Println("✅ Cloudinary storage initialized")
	}

	metrics.Register()

	wsHub := websocket.NewHub()
	go wsHub.Run()
	log.Println("✅ WebSocket hub started")

	r := chi.NewRouter()

	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(metrics.Middleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	// Authentication routes (no auth required)
	r.Post("/api/auth/login", handlers.Login(db))
	r.Post("/api/auth/register", handlers.Register(db))

	// Live booking subscription (token passed as query param)
	r.Get("/ws", websocket.HandleWebSocket(wsHub, db))

	r.Route("/api", func(r chi.Router) {
		// Rider endpoints (require authentication)
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth)

			r.Get("/auth/status", handlers.GetAuthStatus(db))
			r.Post("/auth/fcm-token", handlers.RegisterFCMToken(db))
			r.Patch("/profile", handlers.UpdateProfile(db))

			r.Post("/bookings", handlers.CreateBooking(db, wsHub, fcmService))
			r.Get("/bookings", handlers.GetMyBookings(db))
			r.Get("/bookings/{id}", handlers.GetBooking(db))
			r.Put("/bookings/{id}/cancel", handlers.CancelBooking(db, wsHub))
		})

		// Admin endpoints (require authentication + admin role)
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth)
			r.Use(middleware.RequireRole("admin"))

			r.Get("/admin/bookings", handlers.GetAllBookings(db))
			r.Put("/admin/bookings/{id}/status", handlers.UpdateBookingStatus(db, wsHub, fcmService))
			r.Get("/admin/drivers", handlers.GetDrivers())
			r.Post("/admin/drivers/{id}/photo", handlers.UploadDriverPhoto(storageService))
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("═══════════════════════════════════════════════════════════════════")
	log.Printf("🚀 Server listening on http://localhost:%s", port)
	log.Println("═══════════════════════════════════════════════════════════════════")

	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}
