package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// FCMService handles Firebase Cloud Messaging
type FCMService struct {
	client *messaging.Client
}

// NewFCMService creates a new FCM service instance from a credentials file
func NewFCMService(credentialsFile string) (*FCMService, error) {
	return newFCMService(option.WithCredentialsFile(credentialsFile))
}

// NewFCMServiceFromBase64 creates a new FCM service instance from
// base64-encoded credentials, for deployments where uploading a file is
// awkward.
func NewFCMServiceFromBase64(credentialsBase64 string) (*FCMService, error) {
	credentialsJSON, err := base64.StdEncoding.DecodeString(credentialsBase64)
	if err != nil {
		return nil, fmt.Errorf("error decoding base64 credentials: %w", err)
	}
	return newFCMService(option.WithCredentialsJSON(credentialsJSON))
}

func newFCMService(opt option.ClientOption) (*FCMService, error) {
	ctx := context.Background()

	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("error initializing Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting messaging client: %w", err)
	}

	return &FCMService{client: client}, nil
}

// SendBookingConfirmation notifies a rider that their booking was
// created.
func (s *FCMService) SendBookingConfirmation(token, bookingID string, price float64) error {
	return s.send(&messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: "Ride Booked!",
			Body:  fmt.Sprintf("Your ride is confirmed. Estimated fare: ₹%.2f", price),
		},
		Data: map[string]string{
			"type":       "booking_created",
			"booking_id": bookingID,
		},
	})
}

// SendBookingStatusUpdate notifies a rider that their booking moved to
// a new status.
func (s *FCMService) SendBookingStatusUpdate(token, bookingID, status string) error {
	return s.send(&messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: "Ride Update",
			Body:  fmt.Sprintf("Your ride status has been updated to: %s", status),
		},
		Data: map[string]string{
			"type":       "booking_status",
			"booking_id": bookingID,
			"status":     status,
		},
	})
}

func (s *FCMService) send(message *messaging.Message) error {
	message.Android = &messaging.AndroidConfig{Priority: "high"}
	message.APNS = &messaging.APNSConfig{
		Payload: &messaging.APNSPayload{
			Aps: &messaging.Aps{
				ContentAvailable: true,
				Sound:            "default",
			},
		},
	}

	response, err := s.client.Send(context.Background(), message)
	if err != nil {
		return fmt.Errorf("error sending FCM message: %w", err)
	}

	log.Printf("✅ FCM notification sent successfully: %s", response)
	return nil
}
