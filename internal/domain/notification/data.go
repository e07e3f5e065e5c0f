package notification

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"ticketing-notifier/internal/pkg/ptr"
)

// Keys of the flat event-data bag. Every key is optional.
const (
	KeyType      = "type"
	KeyMessage   = "message"
	KeyActionURL = "action_url"

	KeyTicketID       = "ticket_id"
	KeyTicketCode     = "ticket_code"
	KeyTicketTitle    = "ticket_title"
	KeyTicketStatus   = "ticket_status"
	KeyTicketPriority = "ticket_priority"
	KeyOldStatus      = "old_status"
	KeyNewStatus      = "new_status"

	KeyMemberID   = "member_id"
	KeyMemberName = "member_name"

	KeyTechnicalID           = "technical_id"
	KeyTechnicalName         = "technical_name"
	KeyTechnicalPhone        = "technical_phone"
	KeyPreviousTechnicalName = "previous_technical_name"

	KeyDeviceID    = "device_id"
	KeyDeviceName  = "device_name"
	KeyDeviceBrand = "device_brand"
	KeyDeviceModel = "device_model"

	KeyApartmentName   = "apartment_name"
	KeyBuildingName    = "building_name"
	KeyLocationAddress = "location_address"

	KeyAppointmentID      = "appointment_id"
	KeyAppointmentTitle   = "appointment_title"
	KeyAppointmentStatus  = "appointment_status"
	KeyAppointmentAddress = "appointment_address"
	KeyScheduledFor       = "scheduled_for"
	KeyOldScheduledFor    = "old_scheduled_for"
	KeyMinutesBefore      = "minutes_before"
	KeyReason             = "reason"

	KeyCommentID   = "comment_id"
	KeyCommentBody = "comment_body"
	KeyAuthorName  = "author_name"
)

// Data is the flat bag of event fields a notification is rendered from.
// Values come either from Go code (typed) or from JSON (float64 / string), so accessors tolerate both.
type Data map[string]any

func (d Data) Has(key string) bool {
	v, ok := d[key]
	return ok && v != nil
}

// String returns a trimmed string form of the value, or "" when absent.
func (d Data) String(key string) string {
	v, ok := d[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case time.Time:
		return t.Format(time.RFC3339)
	case fmt.Stringer:
		return strings.TrimSpace(t.String())
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}

func (d Data) Int64(key string) (int64, bool) {
	v, ok := d[key]
	if !ok || v == nil {
		return 0, false
	}
	switch t := v.(type) {
	case int64:
		return t, true
	case int:
		return int64(t), true
	case int32:
		return int64(t), true
	case float64:
		return int64(t), true
	case json.Number:
		n, err := t.Int64()
		return n, err == nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		return n, err == nil
	default:
		return 0, false
	}
}

func (d Data) Bool(key string) bool {
	v, ok := d[key]
	if !ok || v == nil {
		return false
	}
	switch t := v.(type) {
	case bool:
		return t
	case string:
		b, _ := strconv.ParseBool(t)
		return b
	default:
		return false
	}
}

func (d Data) Time(key string) (time.Time, bool) {
	v, ok := d[key]
	if !ok || v == nil {
		return time.Time{}, false
	}
	switch t := v.(type) {
	case time.Time:
		return t, !t.IsZero()
	case *time.Time:
		if t == nil {
			return time.Time{}, false
		}
		return *t, !t.IsZero()
	case string:
		parsed, err := time.Parse(time.RFC3339, strings.TrimSpace(t))
		if err != nil {
			return time.Time{}, false
		}
		return parsed, true
	default:
		return time.Time{}, false
	}
}

// Merge returns a copy of d with the entries of other layered on top.
func (d Data) Merge(other Data) Data {
	out := make(Data, len(d)+len(other))
	for k, v := range d {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

func (d Data) optional(key string) *string {
	s := d.String(key)
	if s == "" {
		return nil
	}
	return ptr.Of(s)
}
