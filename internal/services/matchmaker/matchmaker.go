package matchmaker

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/MyelinBots/matchbot-go/internal/db/repositories/profile"
	"github.com/MyelinBots/matchbot-go/internal/services/catalog"
)

// Interfaces
type Matchmaker interface {
	Candidates(ctx context.Context, userID int64) ([]*profile.Profile, error)
}

// CandidateStore is the slice of the store the matchmaker reads from.
type CandidateStore interface {
	GetProfile(ctx context.Context, id int64) (*profile.Profile, error)
	CompleteProfiles() []*profile.Profile
	HasLiked(sender, receiver int64) bool
	AreMatched(a, b int64) bool
	BlockedEither(a, b int64) bool
}

// Implementation
type MatchmakerImpl struct {
	store CandidateStore
}

// Constructor
func NewMatchmaker(store CandidateStore) Matchmaker {
	return &MatchmakerImpl{store: store}
}

// Candidates returns the requester's browsable profiles in random order.
// A candidate must have a complete profile, the opposite gender, a university
// the requester targets, and no prior like, match or block with the requester.
// A requester with no complete profile gets nothing.
func (m *MatchmakerImpl) Candidates(ctx context.Context, userID int64) ([]*profile.Profile, error) {
	requester, err := m.store.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("candidates for %d: %w", userID, err)
	}
	if requester == nil || !requester.ProfileComplete {
		return nil, nil
	}

	wanted := oppositeGender(requester.Gender)
	if wanted == "" {
		return nil, nil
	}
	targets := requester.TargetNames()

	var out []*profile.Profile
	for _, candidate := range m.store.CompleteProfiles() {
		if candidate.TelegramID == userID {
			continue
		}
		if !strings.EqualFold(candidate.Gender, wanted) {
			continue
		}
		if !targetsUniversity(targets, candidate.University) {
			continue
		}
		if m.store.HasLiked(userID, candidate.TelegramID) {
			continue
		}
		if m.store.AreMatched(userID, candidate.TelegramID) {
			continue
		}
		if m.store.BlockedEither(userID, candidate.TelegramID) {
			continue
		}
		out = append(out, candidate)
	}

	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out, nil
}

func oppositeGender(gender string) string {
	switch strings.ToLower(strings.TrimSpace(gender)) {
	case "male":
		return "female"
	case "female":
		return "male"
	}
	return ""
}

func targetsUniversity(targets []string, university string) bool {
	for _, t := range targets {
		if t == catalog.AllUniversities || strings.EqualFold(t, university) {
			return true
		}
	}
	return false
}
