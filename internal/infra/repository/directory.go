package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"ticketing-notifier/internal/domain/appointment"
	"ticketing-notifier/internal/domain/ticket"
	"ticketing-notifier/internal/domain/user"
	"ticketing-notifier/internal/infra"
	"ticketing-notifier/internal/infra/db"
	"ticketing-notifier/internal/pkg/pgconv"
)

// DirectoryRepository reads the entities owned by the ticketing application.
type DirectoryRepository struct {
	db db.DBTX
}

func NewDirectoryRepository(db db.DBTX) *DirectoryRepository {
	return &DirectoryRepository{db: db}
}

func (r *DirectoryRepository) UserByID(ctx context.Context, id int64) (*user.User, error) {
	row, err := queryOne[userRow](ctx, r.db, "user",
		`SELECT id, name, email, phone, role FROM users WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	out := &user.User{}
	if err := copyRow(out, &row); err != nil {
		return nil, infra.WrapRepoErr("failed to map user row", err)
	}
	return out, nil
}

func (r *DirectoryRepository) MemberByUserID(ctx context.Context, userID int64) (*user.Member, error) {
	row, err := queryOne[memberRow](ctx, r.db, "member",
		`SELECT id, user_id, apartment_id FROM members WHERE user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	out := &user.Member{}
	if err := copyRow(out, &row); err != nil {
		return nil, infra.WrapRepoErr("failed to map member row", err)
	}
	return out, nil
}

func (r *DirectoryRepository) TechnicalByID(ctx context.Context, id int64) (*user.Technical, error) {
	row, err := queryOne[technicalRow](ctx, r.db, "technical",
		`SELECT id, user_id, name, phone FROM technicals WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	out := &user.Technical{}
	if err := copyRow(out, &row); err != nil {
		return nil, infra.WrapRepoErr("failed to map technical row", err)
	}
	return out, nil
}

func (r *DirectoryRepository) CommentByID(ctx context.Context, id int64) (*ticket.Comment, error) {
	row, err := queryOne[commentRow](ctx, r.db, "comment",
		`SELECT id, ticket_id, author_user_id, body FROM ticket_comments WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	out := &ticket.Comment{}
	if err := copyRow(out, &row); err != nil {
		return nil, infra.WrapRepoErr("failed to map comment row", err)
	}
	return out, nil
}

const appointmentColumns = `id, ticket_id, technical_id, title, address, status, scheduled_for`

func (r *DirectoryRepository) AppointmentByID(ctx context.Context, id int64) (*appointment.Appointment, error) {
	row, err := queryOne[appointmentRow](ctx, r.db, "appointment",
		`SELECT `+appointmentColumns+` FROM appointments WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	return toAppointment(row)
}

// ScheduledAppointmentsBetween returns scheduled appointments with scheduled_for in [from, to], soonest first.
func (r *DirectoryRepository) ScheduledAppointmentsBetween(ctx context.Context, from, to time.Time) ([]appointment.Appointment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+appointmentColumns+`
		FROM appointments
		WHERE status = $1 AND scheduled_for BETWEEN $2 AND $3
		ORDER BY scheduled_for, id`,
		string(appointment.StatusScheduled), pgconv.TimeToPgtype(from), pgconv.TimeToPgtype(to),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list upcoming appointments", err)
	}
	collected, err := pgx.CollectRows(rows, pgx.RowToStructByName[appointmentRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list upcoming appointments", err)
	}

	out := make([]appointment.Appointment, 0, len(collected))
	for _, row := range collected {
		a, err := toAppointment(row)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, nil
}

func toAppointment(row appointmentRow) (*appointment.Appointment, error) {
	out := &appointment.Appointment{}
	if err := copyRow(out, &row); err != nil {
		return nil, infra.WrapRepoErr("failed to map appointment row", err)
	}
	return out, nil
}

func (r *DirectoryRepository) TicketContext(ctx context.Context, ticketID int64) (*ticket.Context, error) {
	row, err := queryOne[ticketContextRow](ctx, r.db, "ticket", `
		SELECT
			t.id, t.code, t.title, t.status, t.priority, t.member_id,
			t.technical_id, t.device_id, t.apartment_id,
			m.user_id      AS member_user_id,
			m.apartment_id AS member_apartment_id,
			mu.name        AS member_name,
			mu.email       AS member_email,
			mu.phone       AS member_phone,
			mu.role        AS member_role,
			te.user_id     AS technical_user_id,
			te.name        AS technical_name,
			te.phone       AS technical_phone,
			tu.name        AS technical_user_name,
			tu.email       AS technical_user_email,
			tu.phone       AS technical_user_phone,
			tu.role        AS technical_user_role,
			d.name         AS device_name,
			d.brand        AS device_brand,
			d.model        AS device_model,
			a.name         AS apartment_name,
			b.name         AS building_name,
			b.address      AS building_address
		FROM tickets t
		JOIN members m ON m.id = t.member_id
		JOIN users mu ON mu.id = m.user_id
		LEFT JOIN technicals te ON te.id = t.technical_id
		LEFT JOIN users tu ON tu.id = te.user_id
		LEFT JOIN devices d ON d.id = t.device_id
		LEFT JOIN apartments a ON a.id = COALESCE(t.apartment_id, m.apartment_id)
		LEFT JOIN buildings b ON b.id = a.building_id
		WHERE t.id = $1`, ticketID)
	if err != nil {
		return nil, err
	}
	return toTicketContext(row)
}

func toTicketContext(row ticketContextRow) (*ticket.Context, error) {
	out := &ticket.Context{}
	if err := copyRow(&out.Ticket, &row); err != nil {
		return nil, infra.WrapRepoErr("failed to map ticket row", err)
	}

	out.Member = user.Member{
		ID:          row.MemberID,
		UserID:      row.MemberUserID,
		ApartmentID: pgconv.Int64PtrFromPgtype(row.MemberApartmentID),
	}
	out.MemberUser = user.User{
		ID:    row.MemberUserID,
		Name:  row.MemberName,
		Email: row.MemberEmail,
		Phone: pgconv.StringFromPgtype(row.MemberPhone),
		Role:  user.Role(row.MemberRole),
	}

	if row.TechnicalID.Valid && row.TechnicalUserID.Valid {
		out.Technical = &user.Technical{
			ID:     row.TechnicalID.Int64,
			UserID: row.TechnicalUserID.Int64,
			Name:   pgconv.StringFromPgtype(row.TechnicalName),
			Phone:  pgconv.StringFromPgtype(row.TechnicalPhone),
		}
		out.TechnicalUser = &user.User{
			ID:    row.TechnicalUserID.Int64,
			Name:  pgconv.StringFromPgtype(row.TechnicalUserName),
			Email: pgconv.StringFromPgtype(row.TechnicalUserEmail),
			Phone: pgconv.StringFromPgtype(row.TechnicalUserPhone),
			Role:  user.Role(pgconv.StringFromPgtype(row.TechnicalUserRole)),
		}
	}

	if row.DeviceID.Valid {
		out.Device = &ticket.Device{
			ID:    row.DeviceID.Int64,
			Name:  pgconv.StringFromPgtype(row.DeviceName),
			Brand: pgconv.StringFromPgtype(row.DeviceBrand),
			Model: pgconv.StringFromPgtype(row.DeviceModel),
		}
	}

	if row.ApartmentName.Valid || row.BuildingName.Valid {
		out.Location = &ticket.Location{
			Apartment: pgconv.StringFromPgtype(row.ApartmentName),
			Building:  pgconv.StringFromPgtype(row.BuildingName),
			Address:   pgconv.StringFromPgtype(row.BuildingAddress),
		}
	}
	return out, nil
}

func queryOne[T any](ctx context.Context, q db.DBTX, what, sql string, args ...any) (T, error) {
	var zero T
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return zero, infra.WrapRepoErr("failed to query "+what, err)
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		if pgconv.IsNoRows(err) {
			return zero, infra.WrapRepoErr(what+" not found", err, infra.KindNotFound)
		}
		return zero, infra.WrapRepoErr("failed to scan "+what, err)
	}
	return row, nil
}
