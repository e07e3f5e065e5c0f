//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	infradb "ticketing-notifier/internal/infra/db"
)

// DBLike accepts the pool or an open transaction.
type DBLike = infradb.DBTX

func CreateTestUser(t *testing.T, db DBLike, name, email, role string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO users (name, email, phone, role) VALUES ($1, $2, $3, $4) RETURNING id",
		name, email, "+1-555-0100", role).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestMember(t *testing.T, db DBLike, userID int64, apartmentID *int64) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO members (user_id, apartment_id) VALUES ($1, $2) RETURNING id",
		userID, apartmentID).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestTechnical(t *testing.T, db DBLike, userID int64, name string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO technicals (user_id, name, phone) VALUES ($1, $2, $3) RETURNING id",
		userID, name, "+1-555-0199").Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestDevice(t *testing.T, db DBLike, name, brand, model string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO devices (name, brand, model) VALUES ($1, $2, $3) RETURNING id",
		name, brand, model).Scan(&id)
	require.NoError(t, err)
	return id
}

// DefaultApartmentID returns the apartment inserted by SeedReferenceData.
func DefaultApartmentID(t *testing.T, db DBLike) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), "SELECT id FROM apartments WHERE name = 'A-101' LIMIT 1").Scan(&id)
	require.NoError(t, err)
	return id
}

type TicketParams struct {
	Code        string
	Title       string
	Status      string
	MemberID    int64
	TechnicalID *int64
	DeviceID    *int64
	ApartmentID *int64
}

func CreateTestTicket(t *testing.T, db DBLike, p TicketParams) int64 {
	t.Helper()

	if p.Status == "" {
		p.Status = "open"
	}
	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO tickets (code, title, status, member_id, technical_id, device_id, apartment_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		p.Code, p.Title, p.Status, p.MemberID, p.TechnicalID, p.DeviceID, p.ApartmentID).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestComment(t *testing.T, db DBLike, ticketID, authorUserID int64, body string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO ticket_comments (ticket_id, author_user_id, body) VALUES ($1, $2, $3) RETURNING id",
		ticketID, authorUserID, body).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestAppointment(t *testing.T, db DBLike, ticketID, technicalID int64, status string, scheduledFor time.Time) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO appointments (ticket_id, technical_id, title, address, status, scheduled_for)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		ticketID, technicalID, "Boiler inspection", "12 Harbour St", status, scheduledFor).Scan(&id)
	require.NoError(t, err)
	return id
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		WITH b AS (
		    INSERT INTO buildings (name, address) VALUES ('Harbour View', '12 Harbour St') RETURNING id
		)
		INSERT INTO apartments (building_id, name) SELECT id, 'A-101' FROM b;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
