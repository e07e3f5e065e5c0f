//go:build unit

package notification_test

import (
	"testing"

	"ticketing-notifier/internal/domain/notification"
	"ticketing-notifier/internal/pkg/ptr"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestBuildPushData(t *testing.T) {
	t.Run("ticket id wins over appointment id", func(t *testing.T) {
		d := notification.Data{
			notification.KeyTicketID:         int64(12),
			notification.KeyTicketCode:       "TCK-12",
			notification.KeyTicketStatus:     "open",
			notification.KeyAppointmentID:    int64(3),
			notification.KeyTechnicalID:      int64(8),
			notification.KeyTechnicalName:    "Ana Ruiz",
			notification.KeyApartmentName:    "A-101",
			notification.KeyBuildingName:     "Harbour View",
			notification.KeyDeviceID:         float64(5),
			notification.KeyDeviceName:       "Boiler",
			notification.KeyAppointmentTitle: "Visit",
		}

		got := notification.BuildPushData(d, 99)

		want := notification.PushData{
			Type:           "ticket",
			Screen:         "/tickets",
			EntityID:       ptr.Of[int64](12),
			NotificationID: 99,
			Ticket: &notification.TicketData{
				ID:     12,
				Code:   ptr.Of("TCK-12"),
				Status: ptr.Of("open"),
			},
			Technical: &notification.TechnicalData{ID: 8, Name: ptr.Of("Ana Ruiz")},
			Device:    &notification.DeviceData{ID: 5, Name: ptr.Of("Boiler")},
			Appointment: &notification.AppointmentData{
				ID:    3,
				Title: ptr.Of("Visit"),
			},
			Location: notification.LocationData{
				Apartment: ptr.Of("A-101"),
				Building:  ptr.Of("Harbour View"),
			},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("BuildPushData mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("appointment without ticket", func(t *testing.T) {
		got := notification.BuildPushData(notification.Data{notification.KeyAppointmentID: "44"}, 1)
		assert.Equal(t, "appointment", got.Type)
		assert.Equal(t, "/appointments", got.Screen)
		if assert.NotNil(t, got.EntityID) {
			assert.Equal(t, int64(44), *got.EntityID)
		}
		assert.Nil(t, got.Ticket)
		assert.NotNil(t, got.Appointment)
	})

	t.Run("explicit type keeps the general screen", func(t *testing.T) {
		got := notification.BuildPushData(notification.Data{notification.KeyType: "maintenance"}, 1)
		assert.Equal(t, "maintenance", got.Type)
		assert.Equal(t, "/notifications", got.Screen)
		assert.Nil(t, got.EntityID)
	})

	t.Run("general fallback with action url override", func(t *testing.T) {
		got := notification.BuildPushData(notification.Data{notification.KeyActionURL: "/announcements/2"}, 1)
		assert.Equal(t, "general", got.Type)
		assert.Equal(t, "/announcements/2", got.Screen)
	})

	t.Run("location is always present with null fields", func(t *testing.T) {
		got := notification.BuildPushData(notification.Data{}, 1)
		assert.Equal(t, notification.LocationData{}, got.Location)
		m := got.Map()
		assert.Contains(t, m, "location_data")
		assert.Contains(t, m, "entityId")
		assert.NotContains(t, m, "ticket_data")
	})
}
