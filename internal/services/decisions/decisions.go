package decisions

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/MyelinBots/matchbot-go/internal/db/repositories/profile"
	"github.com/MyelinBots/matchbot-go/internal/services/notifier"
	"github.com/MyelinBots/matchbot-go/internal/services/store"
	"github.com/google/uuid"
)

// Outcome of a like/pass decision.
type Outcome string

const (
	OutcomePassed  Outcome = "passed"
	OutcomeLiked   Outcome = "liked"
	OutcomeMatched Outcome = "matched"
)

// Interfaces
type Decisions interface {
	Decide(ctx context.Context, userID, targetID int64, isLike bool) (Outcome, error)
	Unmatch(ctx context.Context, userID, targetID int64) error
	Block(ctx context.Context, userID, targetID int64) error
	Report(ctx context.Context, userID, targetID int64, reason string) (string, error)
}

// DecisionStore is the slice of the store decisions write to.
type DecisionStore interface {
	GetProfile(ctx context.Context, id int64) (*profile.Profile, error)
	HasLiked(sender, receiver int64) bool
	AddLike(ctx context.Context, sender, receiver int64) error
	AreMatched(a, b int64) bool
	MarkMatched(ctx context.Context, a, b int64) error
	RemoveMatch(ctx context.Context, a, b int64) error
	AddBlock(ctx context.Context, blocker, blocked int64) error
	AddReport(ctx context.Context, reporter, reported int64, reason, reference string) error
}

// Implementation
type DecisionsImpl struct {
	store    DecisionStore
	notifier notifier.Notifier
}

// Constructor
func NewDecisions(st DecisionStore, n notifier.Notifier) Decisions {
	return &DecisionsImpl{store: st, notifier: n}
}

// Decide applies a like or pass from userID on targetID. A pass changes
// nothing; the profile may come around again. A like records the edge and,
// when the reverse like already exists, marks the pair matched and tells
// both sides. Re-liking is safe: no duplicate edges, and a matched pair
// never regresses to liked.
func (d *DecisionsImpl) Decide(ctx context.Context, userID, targetID int64, isLike bool) (Outcome, error) {
	if !isLike {
		return OutcomePassed, nil
	}
	if d.store.AreMatched(userID, targetID) {
		return OutcomeMatched, nil
	}

	if err := d.store.AddLike(ctx, userID, targetID); err != nil {
		if !errors.Is(err, store.ErrDurable) {
			return "", fmt.Errorf("decide %d->%d: %w", userID, targetID, err)
		}
		log.Printf("decisions: like %d->%d saved to memory only: %v", userID, targetID, err)
	}

	if !d.store.HasLiked(targetID, userID) {
		return OutcomeLiked, nil
	}

	if err := d.store.MarkMatched(ctx, userID, targetID); err != nil {
		if !errors.Is(err, store.ErrDurable) {
			return "", fmt.Errorf("decide %d->%d: %w", userID, targetID, err)
		}
		log.Printf("decisions: match %d<->%d saved to memory only: %v", userID, targetID, err)
	}

	d.notifyMatch(ctx, userID, targetID)
	return OutcomeMatched, nil
}

// notifyMatch tells both sides, each with a button opening the chat with the
// other. Notification failures never fail the decision.
func (d *DecisionsImpl) notifyMatch(ctx context.Context, userID, targetID int64) {
	chatWith := func(id int64) [][]notifier.Button {
		return [][]notifier.Button{{
			{Label: "Start Chatting", Data: fmt.Sprintf("chat_%d", id)},
		}}
	}

	if err := d.notifier.SendKeyboard(ctx, userID, "🎉 You have a new match! Start chatting now.", chatWith(targetID)); err != nil {
		log.Printf("decisions: match notification to %d failed: %v", userID, err)
	}

	name := "someone"
	if p, err := d.store.GetProfile(ctx, userID); err == nil && p != nil && p.Name != "" {
		name = p.Name
	}
	text := fmt.Sprintf("🎉 You have a new match with %s! They liked you back.", name)
	if err := d.notifier.SendKeyboard(ctx, targetID, text, chatWith(userID)); err != nil {
		log.Printf("decisions: match notification to %d failed: %v", targetID, err)
	}
}

// Unmatch clears the match both ways. The underlying likes stay, so the two
// do not resurface in each other's candidates.
func (d *DecisionsImpl) Unmatch(ctx context.Context, userID, targetID int64) error {
	if err := d.store.RemoveMatch(ctx, userID, targetID); err != nil {
		if !errors.Is(err, store.ErrDurable) {
			return fmt.Errorf("unmatch %d<->%d: %w", userID, targetID, err)
		}
		log.Printf("decisions: unmatch %d<->%d applied to memory only: %v", userID, targetID, err)
	}
	return nil
}

// Block records the directed block edge; the store severs any match between
// the pair as a side effect.
func (d *DecisionsImpl) Block(ctx context.Context, userID, targetID int64) error {
	if err := d.store.AddBlock(ctx, userID, targetID); err != nil {
		if !errors.Is(err, store.ErrDurable) {
			return fmt.Errorf("block %d->%d: %w", userID, targetID, err)
		}
		log.Printf("decisions: block %d->%d applied to memory only: %v", userID, targetID, err)
	}
	return nil
}

// Report appends a report and hands back its reference code. Reporting never
// touches matching state.
func (d *DecisionsImpl) Report(ctx context.Context, userID, targetID int64, reason string) (string, error) {
	reference := uuid.NewString()
	if err := d.store.AddReport(ctx, userID, targetID, reason, reference); err != nil {
		if !errors.Is(err, store.ErrDurable) {
			return "", fmt.Errorf("report %d->%d: %w", userID, targetID, err)
		}
		log.Printf("decisions: report %d->%d recorded in memory only: %v", userID, targetID, err)
	}
	return reference, nil
}
