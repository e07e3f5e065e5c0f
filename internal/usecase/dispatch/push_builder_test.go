//go:build unit

package dispatch_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"ticketing-notifier/internal/domain/user"
	"ticketing-notifier/internal/infra/cache"
	"ticketing-notifier/internal/pkg/clock"
	"ticketing-notifier/internal/pkg/errs"
	"ticketing-notifier/internal/usecase/dispatch"
	"ticketing-notifier/internal/usecase/shared"
	"ticketing-notifier/tests/common/builder"
	dispatchmock "ticketing-notifier/tests/mock/dispatch"
	sharedmock "ticketing-notifier/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPushBuilder_Build(t *testing.T) {
	ctx := context.Background()
	record := builder.NewRecordBuilder().BuildDomain()

	t.Run("member gets a payload addressed to their tenant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		dir := sharedmock.NewMockDirectory(ctrl)
		gate := dispatchmock.NewMockDedupGate(ctrl)
		member := builder.NewUserBuilder().WithID(100)

		dir.EXPECT().UserByID(gomock.Any(), int64(100)).Return(member.BuildDomain(), nil)
		gate.EXPECT().Allow(gomock.Any(), int64(100), record.ID).Return(true)
		dir.EXPECT().MemberByUserID(gomock.Any(), int64(100)).Return(member.BuildMember(7), nil)

		delivery, err := dispatch.NewPushBuilder(dir, gate).Build(ctx, record, 100)

		require.NoError(t, err)
		assert.Equal(t, int64(100), delivery.RecipientID)
		assert.Equal(t, int64(7), delivery.TenantID)
		assert.Equal(t, "🔄 Ticket Status Changed", delivery.Message.Title)
		assert.Contains(t, delivery.Message.Body, "changed from Open to Resolved")
		assert.Equal(t, "ticket", delivery.Message.Data.Type)
		assert.Equal(t, record.ID, delivery.Message.Data.NotificationID)
	})

	t.Run("roles without devices are skipped before the dedup gate", func(t *testing.T) {
		for _, role := range []user.Role{user.RoleTechnical, user.RoleAdmin} {
			t.Run(role.String(), func(t *testing.T) {
				ctrl := gomock.NewController(t)
				dir := sharedmock.NewMockDirectory(ctrl)
				// no expectations: the gate must not be consulted
				gate := dispatchmock.NewMockDedupGate(ctrl)

				dir.EXPECT().UserByID(gomock.Any(), int64(200)).
					Return(builder.NewUserBuilder().WithID(200).WithRole(role).BuildDomain(), nil)

				delivery, err := dispatch.NewPushBuilder(dir, gate).Build(ctx, record, 200)

				assert.Nil(t, delivery)
				assert.True(t, errs.Is(err, dispatch.ErrSkipped))
				assert.True(t, errs.Is(err, dispatch.ErrNotPushEligible))
			})
		}
	})

	t.Run("role gating holds without a stored record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		dir := sharedmock.NewMockDirectory(ctrl)
		dir.EXPECT().UserByID(gomock.Any(), int64(200)).
			Return(builder.NewUserBuilder().WithID(200).AsTechnical().BuildDomain(), nil)

		unsaved := builder.NewRecordBuilder().With(func(b *builder.RecordBuilder) { b.ID = 0 }).BuildDomain()
		_, err := dispatch.NewPushBuilder(dir, dispatchmock.NewMockDedupGate(ctrl)).Build(ctx, unsaved, 200)

		assert.True(t, errs.Is(err, dispatch.ErrNotPushEligible))
	})

	t.Run("skip reasons", func(t *testing.T) {
		cases := []struct {
			name  string
			setup func(dir *sharedmock.MockDirectory, gate *dispatchmock.MockDedupGate)
			want  error
		}{
			{
				name: "recipient not found",
				setup: func(dir *sharedmock.MockDirectory, _ *dispatchmock.MockDedupGate) {
					dir.EXPECT().UserByID(gomock.Any(), gomock.Any()).Return(nil, shared.ErrNotFound)
				},
				want: dispatch.ErrRecipientNotFound,
			},
			{
				name: "duplicate within the window",
				setup: func(dir *sharedmock.MockDirectory, gate *dispatchmock.MockDedupGate) {
					dir.EXPECT().UserByID(gomock.Any(), gomock.Any()).Return(builder.NewUserBuilder().BuildDomain(), nil)
					gate.EXPECT().Allow(gomock.Any(), gomock.Any(), gomock.Any()).Return(false)
				},
				want: dispatch.ErrDuplicateDelivery,
			},
			{
				name: "member profile missing",
				setup: func(dir *sharedmock.MockDirectory, gate *dispatchmock.MockDedupGate) {
					dir.EXPECT().UserByID(gomock.Any(), gomock.Any()).Return(builder.NewUserBuilder().BuildDomain(), nil)
					gate.EXPECT().Allow(gomock.Any(), gomock.Any(), gomock.Any()).Return(true)
					dir.EXPECT().MemberByUserID(gomock.Any(), gomock.Any()).Return(nil, shared.ErrNotFound)
				},
				want: dispatch.ErrProfileNotFound,
			},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				dir := sharedmock.NewMockDirectory(ctrl)
				gate := dispatchmock.NewMockDedupGate(ctrl)
				tc.setup(dir, gate)

				_, err := dispatch.NewPushBuilder(dir, gate).Build(ctx, record, 100)

				assert.True(t, errs.Is(err, dispatch.ErrSkipped))
				assert.True(t, errs.Is(err, tc.want))
			})
		}
	})

	t.Run("directory failures are errors, not skips", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		dir := sharedmock.NewMockDirectory(ctrl)
		dir.EXPECT().UserByID(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))

		_, err := dispatch.NewPushBuilder(dir, dispatchmock.NewMockDedupGate(ctrl)).Build(ctx, record, 100)

		require.Error(t, err)
		assert.False(t, errs.Is(err, dispatch.ErrSkipped))
	})

	t.Run("second build of the same notification is a duplicate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		dir := sharedmock.NewMockDirectory(ctrl)
		member := builder.NewUserBuilder()
		dir.EXPECT().UserByID(gomock.Any(), member.ID).Return(member.BuildDomain(), nil).Times(2)
		dir.EXPECT().MemberByUserID(gomock.Any(), member.ID).Return(member.BuildMember(7), nil).Times(1)

		clk := clock.NewMockClock(baseTime)
		gate := dispatch.NewDedupGate(cache.NewLocalStore(clk, time.Minute), testDispatchConfig(), discardLogger())
		b := dispatch.NewPushBuilder(dir, gate)

		_, err := b.Build(ctx, record, member.ID)
		require.NoError(t, err)

		_, err = b.Build(ctx, record, member.ID)
		assert.True(t, errs.Is(err, dispatch.ErrDuplicateDelivery))
	})
}
