package decisions_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MyelinBots/matchbot-go/internal/db/repositories/profile"
	"github.com/MyelinBots/matchbot-go/internal/services/decisions"
	"github.com/MyelinBots/matchbot-go/internal/services/decisions/mocks"
	"github.com/MyelinBots/matchbot-go/internal/services/notifier"
	notifiermocks "github.com/MyelinBots/matchbot-go/internal/services/notifier/mocks"
	"github.com/MyelinBots/matchbot-go/internal/services/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDecisions_Decide(t *testing.T) {
	ctx := context.Background()

	t.Run("pass changes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		st := mocks.NewMockDecisionStore(ctrl)
		n := notifiermocks.NewMockNotifier(ctrl)

		d := decisions.NewDecisions(st, n)
		outcome, err := d.Decide(ctx, 1, 2, false)
		require.NoError(t, err)
		assert.Equal(t, decisions.OutcomePassed, outcome)
	})

	t.Run("like without reverse returns liked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		st := mocks.NewMockDecisionStore(ctrl)
		n := notifiermocks.NewMockNotifier(ctrl)

		g := st.EXPECT()
		g.AreMatched(int64(1), int64(2)).Return(false)
		g.AddLike(gomock.Any(), int64(1), int64(2)).Return(nil)
		g.HasLiked(int64(2), int64(1)).Return(false)

		d := decisions.NewDecisions(st, n)
		outcome, err := d.Decide(ctx, 1, 2, true)
		require.NoError(t, err)
		assert.Equal(t, decisions.OutcomeLiked, outcome)
	})

	t.Run("mutual like returns matched and notifies both", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		st := mocks.NewMockDecisionStore(ctrl)
		n := notifiermocks.NewMockNotifier(ctrl)

		g := st.EXPECT()
		g.AreMatched(int64(1), int64(2)).Return(false)
		g.AddLike(gomock.Any(), int64(1), int64(2)).Return(nil)
		g.HasLiked(int64(2), int64(1)).Return(true)
		g.MarkMatched(gomock.Any(), int64(1), int64(2)).Return(nil)
		g.GetProfile(gomock.Any(), int64(1)).Return(&profile.Profile{TelegramID: 1, Name: "Abel"}, nil)

		n.EXPECT().
			SendKeyboard(gomock.Any(), int64(1), "🎉 You have a new match! Start chatting now.", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, _ string, rows [][]notifier.Button) error {
				require.Len(t, rows, 1)
				require.Len(t, rows[0], 1)
				assert.Equal(t, "chat_2", rows[0][0].Data)
				return nil
			})
		n.EXPECT().
			SendKeyboard(gomock.Any(), int64(2), "🎉 You have a new match with Abel! They liked you back.", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, _ string, rows [][]notifier.Button) error {
				require.Len(t, rows, 1)
				require.Len(t, rows[0], 1)
				assert.Equal(t, "chat_1", rows[0][0].Data)
				return nil
			})

		d := decisions.NewDecisions(st, n)
		outcome, err := d.Decide(ctx, 1, 2, true)
		require.NoError(t, err)
		assert.Equal(t, decisions.OutcomeMatched, outcome)
	})

	t.Run("re-like after match stays matched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		st := mocks.NewMockDecisionStore(ctrl)
		n := notifiermocks.NewMockNotifier(ctrl)

		st.EXPECT().AreMatched(int64(1), int64(2)).Return(true)

		d := decisions.NewDecisions(st, n)
		outcome, err := d.Decide(ctx, 1, 2, true)
		require.NoError(t, err)
		assert.Equal(t, decisions.OutcomeMatched, outcome)
	})

	t.Run("durable failure does not fail the decision", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		st := mocks.NewMockDecisionStore(ctrl)
		n := notifiermocks.NewMockNotifier(ctrl)

		g := st.EXPECT()
		g.AreMatched(int64(1), int64(2)).Return(false)
		g.AddLike(gomock.Any(), int64(1), int64(2)).Return(fmt.Errorf("%w: boom", store.ErrDurable))
		g.HasLiked(int64(2), int64(1)).Return(false)

		d := decisions.NewDecisions(st, n)
		outcome, err := d.Decide(ctx, 1, 2, true)
		require.NoError(t, err)
		assert.Equal(t, decisions.OutcomeLiked, outcome)
	})

	t.Run("unexpected store failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		st := mocks.NewMockDecisionStore(ctrl)
		n := notifiermocks.NewMockNotifier(ctrl)

		g := st.EXPECT()
		g.AreMatched(int64(1), int64(2)).Return(false)
		g.AddLike(gomock.Any(), int64(1), int64(2)).Return(errors.New("boom"))

		d := decisions.NewDecisions(st, n)
		_, err := d.Decide(ctx, 1, 2, true)
		assert.Error(t, err)
	})
}

func TestDecisions_Unmatch(t *testing.T) {
	ctx := context.Background()

	t.Run("clears the match", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		st := mocks.NewMockDecisionStore(ctrl)
		n := notifiermocks.NewMockNotifier(ctrl)

		st.EXPECT().RemoveMatch(gomock.Any(), int64(1), int64(2)).Return(nil)

		d := decisions.NewDecisions(st, n)
		assert.NoError(t, d.Unmatch(ctx, 1, 2))
	})

	t.Run("durable failure is tolerated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		st := mocks.NewMockDecisionStore(ctrl)
		n := notifiermocks.NewMockNotifier(ctrl)

		st.EXPECT().RemoveMatch(gomock.Any(), int64(1), int64(2)).Return(fmt.Errorf("%w: boom", store.ErrDurable))

		d := decisions.NewDecisions(st, n)
		assert.NoError(t, d.Unmatch(ctx, 1, 2))
	})
}

func TestDecisions_Block(t *testing.T) {
	ctx := context.Background()

	t.Run("records the block", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		st := mocks.NewMockDecisionStore(ctrl)
		n := notifiermocks.NewMockNotifier(ctrl)

		st.EXPECT().AddBlock(gomock.Any(), int64(1), int64(2)).Return(nil)

		d := decisions.NewDecisions(st, n)
		assert.NoError(t, d.Block(ctx, 1, 2))
	})

	t.Run("unexpected failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		st := mocks.NewMockDecisionStore(ctrl)
		n := notifiermocks.NewMockNotifier(ctrl)

		st.EXPECT().AddBlock(gomock.Any(), int64(1), int64(2)).Return(errors.New("boom"))

		d := decisions.NewDecisions(st, n)
		assert.Error(t, d.Block(ctx, 1, 2))
	})
}

func TestDecisions_Report(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the report under a fresh reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		st := mocks.NewMockDecisionStore(ctrl)
		n := notifiermocks.NewMockNotifier(ctrl)

		var stored string
		st.EXPECT().
			AddReport(gomock.Any(), int64(1), int64(2), "spam", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ int64, _, reference string) error {
				stored = reference
				return nil
			})

		d := decisions.NewDecisions(st, n)
		reference, err := d.Report(ctx, 1, 2, "spam")
		require.NoError(t, err)
		assert.NotEmpty(t, reference)
		assert.Equal(t, stored, reference)
	})

	t.Run("durable failure still returns the reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		st := mocks.NewMockDecisionStore(ctrl)
		n := notifiermocks.NewMockNotifier(ctrl)

		st.EXPECT().
			AddReport(gomock.Any(), int64(1), int64(2), "spam", gomock.Any()).
			Return(fmt.Errorf("%w: boom", store.ErrDurable))

		d := decisions.NewDecisions(st, n)
		reference, err := d.Report(ctx, 1, 2, "spam")
		require.NoError(t, err)
		assert.NotEmpty(t, reference)
	})
}
