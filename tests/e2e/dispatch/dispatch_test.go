//go:build e2e

package dispatch_test

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"ticketing-notifier/internal/domain/notification"
	"ticketing-notifier/internal/domain/user"
	resdto "ticketing-notifier/internal/handler/dto/response"
	"ticketing-notifier/internal/infra/repository"
	"ticketing-notifier/tests/common/dbtest"
	"ticketing-notifier/tests/common/httptest"
	"ticketing-notifier/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const eventsURL = "/api/events"

type DispatchSuite struct {
	e2e.SharedSuite
}

func (s *DispatchSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestDispatchSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(DispatchSuite))
}

type seededTicket struct {
	memberUserID int64
	techUserID   int64
	technicalID  int64
	ticketID     int64
}

func (s *DispatchSuite) seedTicket(t *testing.T) seededTicket {
	t.Helper()

	memberUserID := dbtest.CreateTestUser(t, s.DB, "Maria Lopez", "maria@example.com", string(user.RoleMember))
	techUserID := dbtest.CreateTestUser(t, s.DB, "Ana Ruiz", "ana@example.com", string(user.RoleTechnical))
	apartmentID := dbtest.DefaultApartmentID(t, s.DB)
	memberID := dbtest.CreateTestMember(t, s.DB, memberUserID, &apartmentID)
	technicalID := dbtest.CreateTestTechnical(t, s.DB, techUserID, "Ana Ruiz")
	deviceID := dbtest.CreateTestDevice(t, s.DB, "Split AC", "Daikin", "FTXM35")
	ticketID := dbtest.CreateTestTicket(t, s.DB, dbtest.TicketParams{
		Code:        "TCK-" + uuid.NewString()[:8],
		Title:       "AC not cooling",
		MemberID:    memberID,
		TechnicalID: &technicalID,
		DeviceID:    &deviceID,
		ApartmentID: &apartmentID,
	})
	return seededTicket{memberUserID: memberUserID, techUserID: techUserID, technicalID: technicalID, ticketID: ticketID}
}

type storedNotification struct {
	RecipientID int64
	Type        string
	Title       string
}

func (s *DispatchSuite) notifications(t *testing.T) []storedNotification {
	t.Helper()

	rows, err := s.DB.Query(context.Background(),
		"SELECT recipient_id, type, title FROM notifications ORDER BY id")
	require.NoError(t, err)
	defer rows.Close()

	var out []storedNotification
	for rows.Next() {
		var n storedNotification
		require.NoError(t, rows.Scan(&n.RecipientID, &n.Type, &n.Title))
		out = append(out, n)
	}
	require.NoError(t, rows.Err())
	return out
}

func (s *DispatchSuite) jobStatus(t *testing.T, id uuid.UUID) (string, int) {
	t.Helper()

	var (
		status   string
		attempts int
	)
	err := s.DB.QueryRow(context.Background(),
		"SELECT status, attempts FROM notification_jobs WHERE id = $1", id).Scan(&status, &attempts)
	require.NoError(t, err)
	return status, attempts
}

// =============================================================================
// TestPublishEvent - イベント受付 API
// =============================================================================

func (s *DispatchSuite) TestPublishEvent() {
	s.Run("正常系: ステータス変更は変更者以外に通知される", func() {
		t := s.T()
		seeded := s.seedTicket(t)

		req := map[string]any{
			"type": notification.KindTicketStatusChanged.String(),
			"payload": map[string]any{
				"ticket_id":          seeded.ticketID,
				"old_status":         "open",
				"new_status":         "resolved",
				"changed_by_user_id": seeded.techUserID,
			},
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, eventsURL, req)

		var res resdto.PublishEventResponse
		httptest.AssertSuccessResponse(t, w, http.StatusAccepted, &res)
		require.Equal(t, resdto.StatusAccepted, res.Status)

		// 遅延タスクはレスポンス送信後、同じリクエスト内で実行済み
		got := s.notifications(t)
		want := []storedNotification{{
			RecipientID: seeded.memberUserID,
			Type:        notification.TypeTicketStatusChanged.String(),
			Title:       "🔄 Ticket Status Changed",
		}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("notifications mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("正常系: 同じイベントIDの再送は重複として無視される", func() {
		t := s.T()
		seeded := s.seedTicket(t)

		req := map[string]any{
			"id":      uuid.NewString(),
			"type":    notification.KindTicketCreated.String(),
			"payload": map[string]any{"ticket_id": seeded.ticketID},
		}
		first := httptest.PerformRequest(t, s.Router, http.MethodPost, eventsURL, req)
		second := httptest.PerformRequest(t, s.Router, http.MethodPost, eventsURL, req)

		var res resdto.PublishEventResponse
		httptest.AssertSuccessResponse(t, first, http.StatusAccepted, &res)
		require.Equal(t, resdto.StatusAccepted, res.Status)
		httptest.AssertSuccessResponse(t, second, http.StatusAccepted, &res)
		require.Equal(t, resdto.StatusDuplicate, res.Status)

		require.Len(t, s.notifications(t), 2, "member and technician are notified exactly once")
	})

	s.Run("正常系: 存在しないチケットでも 202 を返し通知は作られない", func() {
		t := s.T()

		req := map[string]any{
			"type":    notification.KindTicketCreated.String(),
			"payload": map[string]any{"ticket_id": 999999},
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, eventsURL, req)

		httptest.AssertSuccessResponse(t, w, http.StatusAccepted, nil)
		require.Empty(t, s.notifications(t))
	})

	s.Run("異常系: 未知のイベント種別は 400", func() {
		t := s.T()

		req := map[string]any{"type": "ticket.archived", "payload": map[string]any{}}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, eventsURL, req)

		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Unknown event type")
	})

	s.Run("正常系: 予約作成でリマインダーが関係者ごとに記録される", func() {
		t := s.T()
		seeded := s.seedTicket(t)
		apptID := dbtest.CreateTestAppointment(t, s.DB, seeded.ticketID, seeded.technicalID, "scheduled",
			time.Now().Add(3*time.Minute+30*time.Second))

		req := map[string]any{
			"type":    notification.KindAppointmentCreated.String(),
			"payload": map[string]any{"appointment_id": apptID},
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, eventsURL, req)
		httptest.AssertSuccessResponse(t, w, http.StatusAccepted, nil)

		markers := 0
		for _, key := range s.Redis.Keys() {
			if strings.HasPrefix(key, "appointment_reminder:") {
				markers++
			}
		}
		// 3, 2, 1 分前 × 技術者・会員
		require.Equal(t, 6, markers)
	})
}

// =============================================================================
// TestOutbox - notification_jobs の消費
// =============================================================================

func (s *DispatchSuite) TestOutbox() {
	ctx := context.Background()
	jobs := repository.NewOutboxRepository(s.DB)

	s.Run("正常系: コメント追加ジョブは投稿者以外に通知して完了する", func() {
		t := s.T()
		seeded := s.seedTicket(t)
		commentID := dbtest.CreateTestComment(t, s.DB, seeded.ticketID, seeded.memberUserID, "Still dripping water")

		payload, err := json.Marshal(map[string]any{"comment_id": commentID})
		require.NoError(t, err)
		jobID, err := jobs.CreateJob(ctx, s.DB, notification.KindTicketCommentAdded.String(), payload, time.Now().Add(-time.Second))
		require.NoError(t, err)

		n, err := s.Worker.ProcessBatch(ctx)
		require.NoError(t, err)
		require.Equal(t, 1, n)

		status, attempts := s.jobStatus(t, jobID)
		require.Equal(t, repository.JobStatusDone, status)
		require.Equal(t, 1, attempts)
		require.True(t, s.Redis.Exists("outbox_event:"+jobID.String()+":done"))

		got := s.notifications(t)
		require.Len(t, got, 1)
		require.Equal(t, seeded.techUserID, got[0].RecipientID)
		require.Equal(t, notification.TypeTicketCommentAdded.String(), got[0].Type)

		// 完了済みジョブは再度取得されない
		n, err = s.Worker.ProcessBatch(ctx)
		require.NoError(t, err)
		require.Zero(t, n)
	})

	s.Run("異常系: 関連データがないジョブはリトライせず失敗にする", func() {
		t := s.T()

		payload, err := json.Marshal(map[string]any{"comment_id": 424242})
		require.NoError(t, err)
		jobID, err := jobs.CreateJob(ctx, s.DB, notification.KindTicketCommentAdded.String(), payload, time.Now().Add(-time.Second))
		require.NoError(t, err)

		_, err = s.Worker.ProcessBatch(ctx)
		require.NoError(t, err)

		status, _ := s.jobStatus(t, jobID)
		require.Equal(t, repository.JobStatusFailed, status)
		require.Empty(t, s.notifications(t))
	})

	s.Run("正常系: 実行予定時刻前のジョブは取得されない", func() {
		t := s.T()

		payload, err := json.Marshal(map[string]any{"ticket_id": 1})
		require.NoError(t, err)
		jobID, err := jobs.CreateJob(ctx, s.DB, notification.KindTicketCreated.String(), payload, time.Now().Add(time.Hour))
		require.NoError(t, err)

		n, err := s.Worker.ProcessBatch(ctx)
		require.NoError(t, err)
		require.Zero(t, n)

		status, _ := s.jobStatus(t, jobID)
		require.Equal(t, repository.JobStatusQueued, status)
	})
}
