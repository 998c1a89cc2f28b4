package websocket

import (
	"log"
	"net/http"

	"cabbook-backend/internal/middleware"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/jmoiron/sqlx"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins in development
		return true
	},
}

// HandleWebSocket upgrades an HTTP connection to a live booking
// subscription. The JWT rides in the token query parameter since
// browsers cannot set headers on WebSocket connects. On connect the
// client immediately receives its eager snapshot: an admin gets all
// bookings, everyone else their own.
func HandleWebSocket(hub *Hub, db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tokenString := r.URL.Query().Get("token")

		var userClaims middleware.UserClaims
		if tokenString != "" {
			claims, err := middleware.ParseToken(tokenString)
			if err != nil {
				log.Printf("❌ Invalid token in query parameter: %v", err)
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			userClaims = claims
		} else {
			// Fallback: claims set by the Auth middleware.
			var ok bool
			userClaims, ok = middleware.GetUserFromContext(r)
			if !ok {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("❌ WebSocket upgrade failed: %v", err)
			return
		}

		client := NewClient(uuid.New().String(), userClaims.UserID, userClaims.Role, conn, hub)
		hub.register <- client

		go client.WritePump()
		go client.ReadPump(func(c *Client) {
			sendSnapshot(c, db)
		})

		sendSnapshot(client, db)
		log.Printf("✅ WebSocket subscription established: %s (%s)", userClaims.Email, userClaims.Role)
	}
}

// sendSnapshot pushes the scoped booking list to one client.
func sendSnapshot(c *Client, db *sqlx.DB) {
	if c.Role == "admin" {
		PushAdminSnapshot(c.hub, db)
		return
	}
	PushUserSnapshot(c.hub, db, c.UserID)
}
