package notification

type Type string

const (
	TypeTicketCreated       Type = "ticket_created"
	TypeTicketAssigned      Type = "ticket_assigned"
	TypeTicketUnassigned    Type = "ticket_unassigned"
	TypeTicketStatusChanged Type = "ticket_status_changed"
	TypeTicketCommentAdded  Type = "ticket_comment_added"

	TypeAppointmentCreated     Type = "appointment_created"
	TypeAppointmentRescheduled Type = "appointment_rescheduled"
	TypeAppointmentReminder    Type = "appointment_reminder"
	TypeAppointmentStarted     Type = "appointment_started"
	TypeAppointmentCompleted   Type = "appointment_completed"
	TypeAppointmentCancelled   Type = "appointment_cancelled"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeTicketCreated, TypeTicketAssigned, TypeTicketUnassigned,
		TypeTicketStatusChanged, TypeTicketCommentAdded,
		TypeAppointmentCreated, TypeAppointmentRescheduled, TypeAppointmentReminder,
		TypeAppointmentStarted, TypeAppointmentCompleted, TypeAppointmentCancelled:
		return true
	default:
		return false
	}
}

type Channel string

const (
	ChannelMail      Channel = "mail"
	ChannelDatabase  Channel = "database"
	ChannelBroadcast Channel = "broadcast"
	ChannelPush      Channel = "push"
)

func (c Channel) String() string {
	return string(c)
}

// EventCreated is the real-time event name every persisted notification is published under.
const EventCreated = "notification.created"

type TokenType string

const (
	TokenTypeExpo TokenType = "expo"
	TokenTypeFCM  TokenType = "fcm"
)

func (t TokenType) IsValid() bool {
	return t == TokenTypeExpo || t == TokenTypeFCM
}
