package dispatch

import (
	"context"

	"ticketing-notifier/internal/domain/notification"
	"ticketing-notifier/internal/domain/ticket"
)

func (h *Handlers) loadTicket(ctx context.Context, id int64) (*ticket.Context, error) {
	tctx, err := h.directory.TicketContext(ctx, id)
	if err != nil {
		return nil, relationErr("ticket", err)
	}
	return tctx, nil
}

// OnTicketCreated tells the member and any technician already on the ticket.
func (h *Handlers) OnTicketCreated(ctx context.Context, ev notification.Event) error {
	e, ok := ev.(notification.TicketCreated)
	if !ok {
		return unexpectedEvent(ev)
	}
	tctx, err := h.loadTicket(ctx, e.TicketID)
	if err != nil {
		return err
	}

	rs := newRecipientSet(nil)
	rs.add(&tctx.MemberUser)
	rs.add(tctx.TechnicalUser)

	data := tctx.Data()
	for _, r := range rs.users {
		h.notifyLater(ctx, r, notification.TypeTicketCreated, data)
	}
	return nil
}

// OnTicketAssigned tells the assignee and the member, and the previous technician that they were taken off.
func (h *Handlers) OnTicketAssigned(ctx context.Context, ev notification.Event) error {
	e, ok := ev.(notification.TicketAssigned)
	if !ok {
		return unexpectedEvent(ev)
	}
	tctx, err := h.loadTicket(ctx, e.TicketID)
	if err != nil {
		return err
	}
	tech, err := h.directory.TechnicalByID(ctx, e.TechnicalID)
	if err != nil {
		return relationErr("technician", err)
	}
	techUser, err := h.loadUser(ctx, tech.UserID, "technician user")
	if err != nil {
		return err
	}

	data := tctx.Data().Merge(notification.Data{
		notification.KeyTechnicalID:    tech.ID,
		notification.KeyTechnicalName:  firstNonEmpty(tech.Name, techUser.Name),
		notification.KeyTechnicalPhone: firstNonEmpty(tech.Phone, techUser.Phone),
	})

	rs := newRecipientSet(nil)
	rs.add(techUser)
	rs.add(&tctx.MemberUser)
	for _, r := range rs.users {
		h.notifyLater(ctx, r, notification.TypeTicketAssigned, data)
	}

	if e.PreviousTechnicalID == nil || *e.PreviousTechnicalID == e.TechnicalID {
		return nil
	}
	prev, err := h.directory.TechnicalByID(ctx, *e.PreviousTechnicalID)
	if err != nil {
		if isNotFound(err) {
			h.logger.Warn("previous technician not found, skipping unassign notice")
			return nil
		}
		return relationErr("previous technician", err)
	}
	prevUser, err := h.loadUser(ctx, prev.UserID, "previous technician user")
	if err != nil {
		return err
	}
	unassigned := tctx.Data().Merge(notification.Data{
		notification.KeyPreviousTechnicalName: firstNonEmpty(prev.Name, prevUser.Name),
	})
	h.notifyLater(ctx, prevUser, notification.TypeTicketUnassigned, unassigned)
	return nil
}

// OnTicketStatusChanged tells the member and technician, except whoever made the change.
func (h *Handlers) OnTicketStatusChanged(ctx context.Context, ev notification.Event) error {
	e, ok := ev.(notification.TicketStatusChanged)
	if !ok {
		return unexpectedEvent(ev)
	}
	tctx, err := h.loadTicket(ctx, e.TicketID)
	if err != nil {
		return err
	}

	data := tctx.Data().Merge(notification.Data{
		notification.KeyOldStatus:    e.OldStatus,
		notification.KeyNewStatus:    e.NewStatus,
		notification.KeyTicketStatus: e.NewStatus,
	})

	rs := newRecipientSet(e.ChangedByUserID)
	rs.add(&tctx.MemberUser)
	rs.add(tctx.TechnicalUser)
	for _, r := range rs.users {
		h.notifyLater(ctx, r, notification.TypeTicketStatusChanged, data)
	}
	return nil
}

// OnTicketCommentAdded tells the member and technician, except the author.
func (h *Handlers) OnTicketCommentAdded(ctx context.Context, ev notification.Event) error {
	e, ok := ev.(notification.TicketCommentAdded)
	if !ok {
		return unexpectedEvent(ev)
	}
	comment, err := h.directory.CommentByID(ctx, e.CommentID)
	if err != nil {
		return relationErr("comment", err)
	}
	tctx, err := h.loadTicket(ctx, comment.TicketID)
	if err != nil {
		return err
	}

	extra := notification.Data{
		notification.KeyCommentID:   comment.ID,
		notification.KeyCommentBody: comment.Body,
	}
	if author, err := h.directory.UserByID(ctx, comment.AuthorUserID); err == nil {
		extra[notification.KeyAuthorName] = author.Name
	} else if !isNotFound(err) {
		return relationErr("comment author", err)
	}
	data := tctx.Data().Merge(extra)

	rs := newRecipientSet(&comment.AuthorUserID)
	rs.add(&tctx.MemberUser)
	rs.add(tctx.TechnicalUser)
	for _, r := range rs.users {
		h.notifyLater(ctx, r, notification.TypeTicketCommentAdded, data)
	}
	return nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
