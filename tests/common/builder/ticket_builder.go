//go:build unit || e2e

package builder

import (
	"ticketing-notifier/internal/domain/ticket"
	"ticketing-notifier/internal/domain/user"
)

const (
	DefaultTicketID    int64 = 12
	DefaultMemberID    int64 = 7
	DefaultTechnicalID int64 = 3
)

// TicketContextBuilder builds a ticket with a member (user 100) and, unless removed, a technician (user 200).
type TicketContextBuilder struct {
	Ticket        ticket.Ticket
	MemberUser    *user.User
	TechnicalUser *user.User
	Device        *ticket.Device
	Location      *ticket.Location
}

func NewTicketContextBuilder() *TicketContextBuilder {
	technicalID := DefaultTechnicalID
	deviceID := int64(5)
	return &TicketContextBuilder{
		Ticket: ticket.Ticket{
			ID:          DefaultTicketID,
			Code:        "TCK-12",
			Title:       "AC not cooling",
			Status:      "open",
			Priority:    "high",
			MemberID:    DefaultMemberID,
			TechnicalID: &technicalID,
			DeviceID:    &deviceID,
		},
		MemberUser:    NewUserBuilder().WithID(100).BuildDomain(),
		TechnicalUser: NewUserBuilder().WithID(200).AsTechnical().BuildDomain(),
		Device:        &ticket.Device{ID: deviceID, Name: "Split AC", Brand: "Daikin", Model: "FTXM35"},
		Location:      &ticket.Location{Apartment: "A-101", Building: "Harbour View", Address: "12 Harbour St"},
	}
}

func (b *TicketContextBuilder) With(mutate func(*TicketContextBuilder)) *TicketContextBuilder {
	mutate(b)
	return b
}

func (b *TicketContextBuilder) WithoutTechnical() *TicketContextBuilder {
	b.Ticket.TechnicalID = nil
	b.TechnicalUser = nil
	return b
}

func (b *TicketContextBuilder) WithStatus(status string) *TicketContextBuilder {
	b.Ticket.Status = status
	return b
}

func (b *TicketContextBuilder) BuildDomain() *ticket.Context {
	ctx := &ticket.Context{
		Ticket:     b.Ticket,
		Member:     user.Member{ID: b.Ticket.MemberID, UserID: b.MemberUser.ID, ApartmentID: b.Ticket.ApartmentID},
		MemberUser: *b.MemberUser,
		Device:     b.Device,
		Location:   b.Location,
	}
	if b.TechnicalUser != nil && b.Ticket.TechnicalID != nil {
		tu := *b.TechnicalUser
		ctx.TechnicalUser = &tu
		ctx.Technical = &user.Technical{ID: *b.Ticket.TechnicalID, UserID: tu.ID, Name: tu.Name, Phone: tu.Phone}
	}
	return ctx
}
