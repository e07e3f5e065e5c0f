package ticket

import (
	"ticketing-notifier/internal/domain/notification"
	"ticketing-notifier/internal/domain/user"
)

type Ticket struct {
	ID          int64
	Code        string
	Title       string
	Status      string
	Priority    string
	MemberID    int64
	TechnicalID *int64
	DeviceID    *int64
	ApartmentID *int64
}

func (t *Ticket) HasTechnical() bool {
	return t.TechnicalID != nil
}

type Device struct {
	ID    int64
	Name  string
	Brand string
	Model string
}

type Location struct {
	Apartment string
	Building  string
	Address   string
}

type Comment struct {
	ID           int64
	TicketID     int64
	AuthorUserID int64
	Body         string
}

// Context is a ticket with every related entity a notification may mention.
// Technical, TechnicalUser, Device and Location are nil when the ticket has none.
type Context struct {
	Ticket        Ticket
	Member        user.Member
	MemberUser    user.User
	Technical     *user.Technical
	TechnicalUser *user.User
	Device        *Device
	Location      *Location
}

// Data flattens the context into a notification data bag.
func (c *Context) Data() notification.Data {
	d := notification.Data{
		notification.KeyTicketID:     c.Ticket.ID,
		notification.KeyTicketStatus: c.Ticket.Status,
		notification.KeyMemberID:     c.Member.ID,
		notification.KeyMemberName:   c.MemberUser.Name,
	}
	setIfNotEmpty(d, notification.KeyTicketCode, c.Ticket.Code)
	setIfNotEmpty(d, notification.KeyTicketTitle, c.Ticket.Title)
	setIfNotEmpty(d, notification.KeyTicketPriority, c.Ticket.Priority)

	if c.Technical != nil {
		d[notification.KeyTechnicalID] = c.Technical.ID
		setIfNotEmpty(d, notification.KeyTechnicalName, c.Technical.Name)
		setIfNotEmpty(d, notification.KeyTechnicalPhone, c.Technical.Phone)
	}
	if c.Device != nil {
		d[notification.KeyDeviceID] = c.Device.ID
		setIfNotEmpty(d, notification.KeyDeviceName, c.Device.Name)
		setIfNotEmpty(d, notification.KeyDeviceBrand, c.Device.Brand)
		setIfNotEmpty(d, notification.KeyDeviceModel, c.Device.Model)
	}
	if c.Location != nil {
		setIfNotEmpty(d, notification.KeyApartmentName, c.Location.Apartment)
		setIfNotEmpty(d, notification.KeyBuildingName, c.Location.Building)
		setIfNotEmpty(d, notification.KeyLocationAddress, c.Location.Address)
	}
	return d
}

// TechnicalUserID returns 0 when no technician is assigned.
func (c *Context) TechnicalUserID() int64 {
	if c.TechnicalUser == nil {
		return 0
	}
	return c.TechnicalUser.ID
}

func setIfNotEmpty(d notification.Data, key, v string) {
	if v != "" {
		d[key] = v
	}
}
