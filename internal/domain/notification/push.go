package notification

import "ticketing-notifier/internal/pkg/ptr"

type PushMessage struct {
	Title string   `json:"title"`
	Body  string   `json:"body"`
	Data  PushData `json:"data"`
}

type PushData struct {
	Type           string           `json:"type"`
	Screen         string           `json:"screen"`
	EntityID       *int64           `json:"entityId"`
	NotificationID int64            `json:"notification_id"`
	Ticket         *TicketData      `json:"ticket_data,omitempty"`
	Technical      *TechnicalData   `json:"technical_data,omitempty"`
	Device         *DeviceData      `json:"device_data,omitempty"`
	Appointment    *AppointmentData `json:"appointment_data,omitempty"`
	Location       LocationData     `json:"location_data"`
}

type TicketData struct {
	ID       int64   `json:"id"`
	Code     *string `json:"code"`
	Title    *string `json:"title"`
	Status   *string `json:"status"`
	Priority *string `json:"priority"`
}

type TechnicalData struct {
	ID    int64   `json:"id"`
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

type DeviceData struct {
	ID    int64   `json:"id"`
	Name  *string `json:"name"`
	Brand *string `json:"brand"`
	Model *string `json:"model"`
}

type AppointmentData struct {
	ID           int64   `json:"id"`
	Title        *string `json:"title"`
	ScheduledFor *string `json:"scheduled_for"`
	Status       *string `json:"status"`
	Address      *string `json:"address"`
}

// LocationData is always present in a push payload; absent fields are null.
type LocationData struct {
	Apartment *string `json:"apartment"`
	Building  *string `json:"building"`
	Address   *string `json:"address"`
}

type PushResult struct {
	Success       bool   `json:"success"`
	SentToDevices int    `json:"sent_to_devices"`
	Error         string `json:"error,omitempty"`
}

const (
	pushTypeTicket      = "ticket"
	pushTypeAppointment = "appointment"
	pushTypeGeneral     = "general"

	screenTickets       = "/tickets"
	screenAppointments  = "/appointments"
	screenNotifications = "/notifications"
)

// BuildPushData derives the structured push payload from a notification's data bag.
// A ticket id takes precedence over an appointment id, which takes precedence over an explicit type.
func BuildPushData(d Data, notificationID int64) PushData {
	out := PushData{
		Type:           pushTypeGeneral,
		Screen:         screenNotifications,
		NotificationID: notificationID,
	}

	ticketID, hasTicket := d.Int64(KeyTicketID)
	appointmentID, hasAppointment := d.Int64(KeyAppointmentID)
	switch {
	case hasTicket:
		out.Type, out.Screen, out.EntityID = pushTypeTicket, screenTickets, ptr.Of(ticketID)
	case hasAppointment:
		out.Type, out.Screen, out.EntityID = pushTypeAppointment, screenAppointments, ptr.Of(appointmentID)
	case d.String(KeyType) != "":
		out.Type = d.String(KeyType)
	}
	if url := d.String(KeyActionURL); url != "" {
		out.Screen = url
	}

	if hasTicket {
		out.Ticket = &TicketData{
			ID:       ticketID,
			Code:     d.optional(KeyTicketCode),
			Title:    d.optional(KeyTicketTitle),
			Status:   d.optional(KeyTicketStatus),
			Priority: d.optional(KeyTicketPriority),
		}
	}
	if id, ok := d.Int64(KeyTechnicalID); ok {
		out.Technical = &TechnicalData{
			ID:    id,
			Name:  d.optional(KeyTechnicalName),
			Phone: d.optional(KeyTechnicalPhone),
		}
	}
	if id, ok := d.Int64(KeyDeviceID); ok {
		out.Device = &DeviceData{
			ID:    id,
			Name:  d.optional(KeyDeviceName),
			Brand: d.optional(KeyDeviceBrand),
			Model: d.optional(KeyDeviceModel),
		}
	}
	if hasAppointment {
		out.Appointment = AppointmentDataFrom(d)
	}
	out.Location = LocationData{
		Apartment: d.optional(KeyApartmentName),
		Building:  d.optional(KeyBuildingName),
		Address:   d.optional(KeyLocationAddress),
	}
	return out
}

// AppointmentDataFrom returns nil when the bag carries no appointment id.
func AppointmentDataFrom(d Data) *AppointmentData {
	id, ok := d.Int64(KeyAppointmentID)
	if !ok {
		return nil
	}
	return &AppointmentData{
		ID:           id,
		Title:        d.optional(KeyAppointmentTitle),
		ScheduledFor: d.optional(KeyScheduledFor),
		Status:       d.optional(KeyAppointmentStatus),
		Address:      d.optional(KeyAppointmentAddress),
	}
}

// Map flattens the payload into the string map device transports expect.
func (p PushData) Map() map[string]any {
	m := map[string]any{
		"type":            p.Type,
		"screen":          p.Screen,
		"entityId":        p.EntityID,
		"notification_id": p.NotificationID,
		"location_data":   p.Location,
	}
	if p.Ticket != nil {
		m["ticket_data"] = p.Ticket
	}
	if p.Technical != nil {
		m["technical_data"] = p.Technical
	}
	if p.Device != nil {
		m["device_data"] = p.Device
	}
	if p.Appointment != nil {
		m["appointment_data"] = p.Appointment
	}
	return m
}
