package websocket

import (
	"log"

	"cabbook-backend/internal/database"

	"github.com/jmoiron/sqlx"
)

// Snapshot is the wire shape of a live booking update. Every remote
// change replaces the subscriber's full list, there is no incremental
// diffing.
type Snapshot struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

const snapshotType = "bookings_snapshot"

// PushUserSnapshot sends a user their current booking list.
func PushUserSnapshot(hub *Hub, db *sqlx.DB, userID string) {
	bookings, err := database.GetUserBookings(db, userID)
	if err != nil {
		log.Printf("❌ Failed to build user snapshot for %s: %v", userID, err)
		return
	}
	hub.BroadcastToUser(userID, Snapshot{Type: snapshotType, Data: bookings})
}

// PushAdminSnapshot sends every connected admin the full booking list.
func PushAdminSnapshot(hub *Hub, db *sqlx.DB) {
	bookings, err := database.GetAllBookings(db)
	if err != nil {
		log.Printf("❌ Failed to build admin snapshot: %v", err)
		return
	}
	hub.BroadcastToRole("admin", Snapshot{Type: snapshotType, Data: bookings})
}

// NotifyBookingChange refreshes every subscription affected by a change
// to one owner's bookings: the owner's own listing and the admin view.
func NotifyBookingChange(hub *Hub, db *sqlx.DB, ownerID string) {
	PushUserSnapshot(hub, db, ownerID)
	PushAdminSnapshot(hub, db)
}
