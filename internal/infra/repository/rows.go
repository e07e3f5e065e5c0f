package repository

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jinzhu/copier"

	"ticketing-notifier/internal/domain/notification"
	"ticketing-notifier/internal/pkg/pgconv"
)

// Row types mirror table columns; pgx maps them by the db tag.

type userRow struct {
	ID    int64       `db:"id"`
	Name  string      `db:"name"`
	Email string      `db:"email"`
	Phone pgtype.Text `db:"phone"`
	Role  string      `db:"role"`
}

type memberRow struct {
	ID          int64       `db:"id"`
	UserID      int64       `db:"user_id"`
	ApartmentID pgtype.Int8 `db:"apartment_id"`
}

type technicalRow struct {
	ID     int64       `db:"id"`
	UserID int64       `db:"user_id"`
	Name   string      `db:"name"`
	Phone  pgtype.Text `db:"phone"`
}

type commentRow struct {
	ID           int64  `db:"id"`
	TicketID     int64  `db:"ticket_id"`
	AuthorUserID int64  `db:"author_user_id"`
	Body         string `db:"body"`
}

type appointmentRow struct {
	ID           int64              `db:"id"`
	TicketID     int64              `db:"ticket_id"`
	TechnicalID  int64              `db:"technical_id"`
	Title        string             `db:"title"`
	Address      pgtype.Text        `db:"address"`
	Status       string             `db:"status"`
	ScheduledFor pgtype.Timestamptz `db:"scheduled_for"`
}

type ticketContextRow struct {
	ID          int64       `db:"id"`
	Code        string      `db:"code"`
	Title       string      `db:"title"`
	Status      string      `db:"status"`
	Priority    string      `db:"priority"`
	MemberID    int64       `db:"member_id"`
	TechnicalID pgtype.Int8 `db:"technical_id"`
	DeviceID    pgtype.Int8 `db:"device_id"`
	ApartmentID pgtype.Int8 `db:"apartment_id"`

	MemberUserID      int64       `db:"member_user_id"`
	MemberApartmentID pgtype.Int8 `db:"member_apartment_id"`
	MemberName        string      `db:"member_name"`
	MemberEmail       string      `db:"member_email"`
	MemberPhone       pgtype.Text `db:"member_phone"`
	MemberRole        string      `db:"member_role"`

	TechnicalUserID    pgtype.Int8 `db:"technical_user_id"`
	TechnicalName      pgtype.Text `db:"technical_name"`
	TechnicalPhone     pgtype.Text `db:"technical_phone"`
	TechnicalUserName  pgtype.Text `db:"technical_user_name"`
	TechnicalUserEmail pgtype.Text `db:"technical_user_email"`
	TechnicalUserPhone pgtype.Text `db:"technical_user_phone"`
	TechnicalUserRole  pgtype.Text `db:"technical_user_role"`

	DeviceName  pgtype.Text `db:"device_name"`
	DeviceBrand pgtype.Text `db:"device_brand"`
	DeviceModel pgtype.Text `db:"device_model"`

	ApartmentName   pgtype.Text `db:"apartment_name"`
	BuildingName    pgtype.Text `db:"building_name"`
	BuildingAddress pgtype.Text `db:"building_address"`
}

type notificationRow struct {
	ID          int64              `db:"id"`
	RecipientID int64              `db:"recipient_id"`
	Type        string             `db:"type"`
	Title       string             `db:"title"`
	Body        string             `db:"body"`
	RawData     []byte             `db:"data"`
	CreatedAt   pgtype.Timestamptz `db:"created_at"`
	ReadAt      pgtype.Timestamptz `db:"read_at"`
}

// rowCopyOption teaches copier how to unwrap the pgtype nullables used by the rows above.
var rowCopyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: pgtype.Text{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return pgconv.StringFromPgtype(src.(pgtype.Text)), nil
			},
		},
		{
			SrcType: pgtype.Int8{},
			DstType: (*int64)(nil),
			Fn: func(src any) (any, error) {
				return pgconv.Int64PtrFromPgtype(src.(pgtype.Int8)), nil
			},
		},
		{
			SrcType: pgtype.Timestamptz{},
			DstType: time.Time{},
			Fn: func(src any) (any, error) {
				return pgconv.TimeFromPgtype(src.(pgtype.Timestamptz)), nil
			},
		},
		{
			SrcType: pgtype.Timestamptz{},
			DstType: (*time.Time)(nil),
			Fn: func(src any) (any, error) {
				return pgconv.TimePtrFromPgtype(src.(pgtype.Timestamptz)), nil
			},
		},
	},
}

func copyRow(to, from any) error {
	return copier.CopyWithOption(to, from, rowCopyOption)
}

func decodeData(raw []byte) (notification.Data, error) {
	d := notification.Data{}
	if len(raw) == 0 {
		return d, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&d); err != nil {
		return nil, err
	}
	return d, nil
}
