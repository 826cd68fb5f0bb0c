package crush

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/MyelinBots/matchbot-go/internal/db/repositories/profile"
	"github.com/MyelinBots/matchbot-go/internal/services/notifier"
	"github.com/MyelinBots/matchbot-go/internal/services/store"
)

// Result of adding a secret crush.
type Result string

const (
	ResultAdded        Result = "added"
	ResultAlreadyAdded Result = "already_added"
	ResultSelf         Result = "self"
)

// Interfaces
type Crush interface {
	AddRegistered(ctx context.Context, crusherID, crusheeID int64) (Result, error)
	AddExternal(ctx context.Context, crusherID int64, name, social, photoHex string) error
	IsMutual(a, b int64) bool
}

// CrushStore is the slice of the store the crush service uses.
type CrushStore interface {
	GetProfile(ctx context.Context, id int64) (*profile.Profile, error)
	HasCrush(crusher, crushee int64) bool
	AddRegisteredCrush(ctx context.Context, crusher, crushee int64) error
	SetCrushMutual(ctx context.Context, a, b int64) error
	AddExternalCrush(ctx context.Context, crusher int64, name, social, photoHex string) error
}

// Implementation
type CrushImpl struct {
	store    CrushStore
	notifier notifier.Notifier
}

// Constructor
func NewCrush(st CrushStore, n notifier.Notifier) Crush {
	return &CrushImpl{store: st, notifier: n}
}

// AddRegistered records a crush on another registered user. The crushee is
// never told unless they have a crush back, in which case both sides get a
// mutual-crush notification.
func (c *CrushImpl) AddRegistered(ctx context.Context, crusherID, crusheeID int64) (Result, error) {
	if crusherID == crusheeID {
		return ResultSelf, nil
	}
	if c.store.HasCrush(crusherID, crusheeID) {
		return ResultAlreadyAdded, nil
	}

	if err := c.store.AddRegisteredCrush(ctx, crusherID, crusheeID); err != nil {
		if !errors.Is(err, store.ErrDurable) {
			return "", fmt.Errorf("crush %d->%d: %w", crusherID, crusheeID, err)
		}
		log.Printf("crush: %d->%d saved to memory only: %v", crusherID, crusheeID, err)
	}

	if c.store.HasCrush(crusheeID, crusherID) {
		if err := c.store.SetCrushMutual(ctx, crusherID, crusheeID); err != nil {
			log.Printf("crush: mutual flag %d<->%d not persisted: %v", crusherID, crusheeID, err)
		}
		c.notifyMutual(ctx, crusherID, crusheeID)
	}
	return ResultAdded, nil
}

// AddExternal records a crush on someone not using the bot. It lives only in
// the durable store and can never become mutual.
func (c *CrushImpl) AddExternal(ctx context.Context, crusherID int64, name, social, photoHex string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("external crush needs a name")
	}
	if err := c.store.AddExternalCrush(ctx, crusherID, name, strings.TrimSpace(social), photoHex); err != nil {
		return fmt.Errorf("external crush for %d: %w", crusherID, err)
	}
	return nil
}

// IsMutual reports whether both directions of the crush exist.
func (c *CrushImpl) IsMutual(a, b int64) bool {
	return c.store.HasCrush(a, b) && c.store.HasCrush(b, a)
}

// notifyMutual sends both users the good news, each with the other's photo
// when one is on file.
func (c *CrushImpl) notifyMutual(ctx context.Context, a, b int64) {
	pa, err := c.store.GetProfile(ctx, a)
	if err != nil || pa == nil {
		log.Printf("crush: mutual notification skipped, profile %d unavailable: %v", a, err)
		return
	}
	pb, err := c.store.GetProfile(ctx, b)
	if err != nil || pb == nil {
		log.Printf("crush: mutual notification skipped, profile %d unavailable: %v", b, err)
		return
	}

	c.sendMutual(ctx, a, pb)
	c.sendMutual(ctx, b, pa)
}

func (c *CrushImpl) sendMutual(ctx context.Context, chatID int64, other *profile.Profile) {
	name := other.Name
	if name == "" {
		name = "Your crush"
	}
	text := fmt.Sprintf(
		"💞 *Secret Crush Match!* 💞\n\nGood news! %s has a crush on you too! You both like each other. Why not start a conversation?",
		name,
	)

	var err error
	if other.ProfilePic != "" {
		err = c.notifier.SendPhoto(ctx, chatID, other.ProfilePic, text)
	} else {
		err = c.notifier.SendText(ctx, chatID, text)
	}
	if err != nil {
		log.Printf("crush: mutual notification to %d failed: %v", chatID, err)
	}
}
