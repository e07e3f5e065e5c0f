package notification

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	dateLayout = "Jan 2, 2006"
	timeLayout = "3:04 PM"

	unknownDevice    = "Unknown Device"
	genericTechnical = "a technician"
)

var statusLabels = map[string]string{
	"open":          "Open",
	"in_progress":   "In Progress",
	"pending":       "Pending",
	"resolved":      "Resolved",
	"closed":        "Closed",
	"cancelled":     "Cancelled",
	"reopened":      "Reopened",
	"on_hold":       "On Hold",
	"waiting_parts": "Waiting for Parts",
	"scheduled":     "Scheduled",
}

// StatusLabel maps a ticket status to its display label.
// Unknown statuses are shown with underscores replaced and each word capitalized.
func StatusLabel(status string) string {
	key := strings.ToLower(strings.TrimSpace(status))
	if label, ok := statusLabels[key]; ok {
		return label
	}
	if key == "" {
		return "Unknown"
	}
	words := strings.Fields(strings.ReplaceAll(key, "_", " "))
	for i, w := range words {
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}

// Format renders the title and body of a notification. It never fails; missing fields fall back to neutral wording.
func Format(t Type, d Data) Message {
	switch t {
	case TypeTicketStatusChanged:
		return formatStatusChanged(d)
	case TypeTicketAssigned:
		return formatAssigned(d)
	case TypeTicketUnassigned:
		return formatUnassigned(d)
	case TypeTicketCreated:
		return formatTicketCreated(d)
	case TypeTicketCommentAdded:
		return formatCommentAdded(d)
	case TypeAppointmentCreated:
		return formatAppointmentCreated(d)
	case TypeAppointmentRescheduled:
		return formatAppointmentRescheduled(d)
	case TypeAppointmentReminder:
		return formatAppointmentReminder(d)
	case TypeAppointmentStarted:
		return formatAppointmentStarted(d)
	case TypeAppointmentCompleted:
		return formatAppointmentCompleted(d)
	case TypeAppointmentCancelled:
		return formatAppointmentCancelled(d)
	default:
		body := d.String(KeyMessage)
		if body == "" {
			body = "You have a new notification"
		}
		return Message{Title: "New Notification", Body: body}
	}
}

func formatStatusChanged(d Data) Message {
	var b strings.Builder
	fmt.Fprintf(&b, "%s has changed from %s to %s",
		ticketRef(d), StatusLabel(d.String(KeyOldStatus)), StatusLabel(d.String(KeyNewStatus)))
	if device, ok := deviceLabel(d); ok {
		b.WriteString(" - Device: " + device)
	}
	if tech := d.String(KeyTechnicalName); tech != "" {
		b.WriteString(" - Assigned to: " + tech)
	}
	if loc, ok := locationLabel(d); ok {
		b.WriteString(" - Location: " + loc)
	}
	return Message{Title: "🔄 Ticket Status Changed", Body: b.String()}
}

func formatAssigned(d Data) Message {
	var b strings.Builder
	fmt.Fprintf(&b, "%s has been assigned to %s", capitalize(technicalName(d)), lowerRef(ticketRef(d)))
	if phone := d.String(KeyTechnicalPhone); phone != "" {
		b.WriteString(" (Phone: " + phone + ")")
	}
	device, _ := deviceLabel(d)
	if device == "" {
		device = unknownDevice
	}
	b.WriteString(" - Device: " + device)
	if loc, ok := locationLabel(d); ok {
		b.WriteString(" - Location: " + loc)
	}
	return Message{Title: "👨‍🔧 Ticket Assigned", Body: b.String()}
}

func formatUnassigned(d Data) Message {
	prev := d.String(KeyPreviousTechnicalName)
	if prev == "" {
		prev = d.String(KeyTechnicalName)
	}
	if prev == "" {
		prev = genericTechnical
	}
	body := fmt.Sprintf("%s is no longer assigned to %s", capitalize(prev), lowerRef(ticketRef(d)))
	return Message{Title: "❌ Technician Unassigned", Body: body}
}

func formatTicketCreated(d Data) Message {
	creator := d.String(KeyMemberName)
	if creator == "" {
		creator = "A resident"
	}
	device, _ := deviceLabel(d)
	if device == "" {
		device = unknownDevice
	}
	body := fmt.Sprintf("%s created %s for %s", creator, lowerRef(ticketRef(d)), device)
	if loc, ok := locationLabel(d); ok {
		body += " - Location: " + loc
	}
	return Message{Title: "🎫 New Ticket Created", Body: body}
}

func formatCommentAdded(d Data) Message {
	author := d.String(KeyAuthorName)
	if author == "" {
		author = "Someone"
	}
	body := fmt.Sprintf("%s commented on %s", author, lowerRef(ticketRef(d)))
	if comment := d.String(KeyCommentBody); comment != "" {
		body += fmt.Sprintf(": %q", truncate(comment, 120))
	}
	return Message{Title: "💬 New Comment", Body: body}
}

func formatAppointmentCreated(d Data) Message {
	body := fmt.Sprintf("%s is scheduled for %s with %s",
		appointmentRef(d), when(d, KeyScheduledFor), technicalName(d)) + addressSuffix(d)
	return Message{Title: "📅 Appointment Scheduled", Body: body}
}

func formatAppointmentRescheduled(d Data) Message {
	body := fmt.Sprintf("%s has been rescheduled to %s", appointmentRef(d), when(d, KeyScheduledFor))
	if d.Has(KeyOldScheduledFor) {
		body += fmt.Sprintf(" (previously %s)", when(d, KeyOldScheduledFor))
	}
	body += fmt.Sprintf(" with %s", technicalName(d)) + addressSuffix(d)
	return Message{Title: "🔁 Appointment Rescheduled", Body: body}
}

func formatAppointmentReminder(d Data) Message {
	minutes, ok := d.Int64(KeyMinutesBefore)
	startsIn := "starts soon"
	if ok {
		unit := "minutes"
		if minutes == 1 {
			unit = "minute"
		}
		startsIn = fmt.Sprintf("starts in %d %s", minutes, unit)
	}
	body := fmt.Sprintf("%s %s", appointmentRef(d), startsIn)
	if at, ok := d.Time(KeyScheduledFor); ok {
		body += " at " + at.Format(timeLayout)
	}
	body += fmt.Sprintf(" with %s", technicalName(d)) + addressSuffix(d)
	return Message{Title: "⏰ Appointment Reminder", Body: body}
}

func formatAppointmentStarted(d Data) Message {
	body := fmt.Sprintf("%s has started %s", capitalize(technicalName(d)), lowerRef(appointmentRef(d))) + addressSuffix(d)
	return Message{Title: "🚀 Appointment Started", Body: body}
}

func formatAppointmentCompleted(d Data) Message {
	body := fmt.Sprintf("%s has been completed by %s", appointmentRef(d), technicalName(d))
	return Message{Title: "✅ Appointment Completed", Body: body}
}

func formatAppointmentCancelled(d Data) Message {
	body := fmt.Sprintf("%s scheduled for %s has been cancelled", appointmentRef(d), when(d, KeyScheduledFor))
	if reason := d.String(KeyReason); reason != "" {
		body += ". Reason: " + reason
	}
	return Message{Title: "🚫 Appointment Cancelled", Body: body}
}

func ticketRef(d Data) string {
	if title := d.String(KeyTicketTitle); title != "" {
		return fmt.Sprintf("Ticket %q", title)
	}
	if code := d.String(KeyTicketCode); code != "" {
		return "Ticket #" + code
	}
	return "Your ticket"
}

func appointmentRef(d Data) string {
	if title := d.String(KeyAppointmentTitle); title != "" {
		return fmt.Sprintf("Appointment %q", title)
	}
	return "Your appointment"
}

// lowerRef adapts a sentence-initial reference for use mid-sentence.
func lowerRef(ref string) string {
	switch {
	case strings.HasPrefix(ref, "Ticket "), strings.HasPrefix(ref, "Appointment "):
		return "t" + ref[1:]
	case strings.HasPrefix(ref, "Your "):
		return "y" + ref[1:]
	}
	return ref
}

func technicalName(d Data) string {
	if name := d.String(KeyTechnicalName); name != "" {
		return name
	}
	return genericTechnical
}

func deviceLabel(d Data) (string, bool) {
	name, brand, model := d.String(KeyDeviceName), d.String(KeyDeviceBrand), d.String(KeyDeviceModel)
	if name == "" && brand == "" && model == "" {
		return "", false
	}
	label := strings.TrimSpace(brand + " " + name)
	if label == "" {
		label = unknownDevice
	}
	if model != "" {
		label += " (" + model + ")"
	}
	return label, true
}

func locationLabel(d Data) (string, bool) {
	parts := make([]string, 0, 2)
	if apt := d.String(KeyApartmentName); apt != "" {
		parts = append(parts, apt)
	}
	if bld := d.String(KeyBuildingName); bld != "" {
		parts = append(parts, bld)
	}
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, ", "), true
}

func addressSuffix(d Data) string {
	addr := d.String(KeyAppointmentAddress)
	if addr == "" {
		addr = d.String(KeyLocationAddress)
	}
	if addr == "" {
		return ""
	}
	return " at " + addr
}

func when(d Data, key string) string {
	t, ok := d.Time(key)
	if !ok {
		return "the scheduled time"
	}
	return t.Format(dateLayout) + " at " + t.Format(timeLayout)
}

// capitalize upper-cases the first rune; names and statuses are not ASCII-only.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}
