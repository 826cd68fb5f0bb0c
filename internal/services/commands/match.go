package commands

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/MyelinBots/matchbot-go/internal/db/repositories/profile"
	"github.com/MyelinBots/matchbot-go/internal/services/decisions"
	"github.com/MyelinBots/matchbot-go/internal/services/store"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// maxMatchesShown caps how many candidate cards /match sends at once.
const maxMatchesShown = 3

func (c *CommandControllerImpl) MatchHandler() Handler {
	return func(ctx context.Context, msg *tgbotapi.Message) error {
		userID := msg.From.ID
		if ok, err := c.requireComplete(ctx, msg.Chat.ID, userID); !ok {
			return err
		}

		candidates, err := c.matchmaker.Candidates(ctx, userID)
		if err != nil {
			return err
		}
		if len(candidates) == 0 {
			return c.notifier.SendText(ctx, msg.Chat.ID,
				"No potential matches found at the moment. Check back later!")
		}

		if err := c.notifier.SendText(ctx, msg.Chat.ID,
			"📱 *Finding Your Match* 📱\n\nSwipe through potential matches and like the ones you're interested in!"); err != nil {
			return err
		}

		shown := len(candidates)
		if shown > maxMatchesShown {
			shown = maxMatchesShown
		}
		for _, candidate := range candidates[:shown] {
			if err := c.sendCandidateCard(ctx, msg.Chat.ID, candidate); err != nil {
				return err
			}
		}
		return nil
	}
}

func (c *CommandControllerImpl) MatchesHandler() Handler {
	return func(ctx context.Context, msg *tgbotapi.Message) error {
		userID := msg.From.ID
		if ok, err := c.requireComplete(ctx, msg.Chat.ID, userID); !ok {
			return err
		}

		matches := c.store.Matches(userID)
		if len(matches) == 0 {
			return c.notifier.SendText(ctx, msg.Chat.ID,
				"You don't have any matches yet. Use /match to find potential matches!")
		}

		if err := c.notifier.SendText(ctx, msg.Chat.ID, "Here are your current matches:"); err != nil {
			return err
		}
		for _, matchID := range matches {
			match, err := c.store.GetProfile(ctx, matchID)
			if err != nil || match == nil {
				continue
			}
			if err := c.sendProfileCard(ctx, msg.Chat.ID, match, false); err != nil {
				return err
			}
			if err := c.notifier.SendKeyboard(ctx, msg.Chat.ID,
				"Choose an action:", matchActionsKeyboard(matchID)); err != nil {
				return err
			}
		}
		return nil
	}
}

// decideCallback records a like or pass and then deals the next candidate.
func (c *CommandControllerImpl) decideCallback(ctx context.Context, userID, chatID int64, data string) error {
	action, suffix, found := strings.Cut(data, "_")
	if !found {
		return nil
	}
	targetID, ok := parseID(suffix)
	if !ok {
		return nil
	}

	outcome, err := c.decisions.Decide(ctx, userID, targetID, action == "like")
	if err != nil {
		return err
	}

	var confirmation string
	switch outcome {
	case decisions.OutcomeMatched:
		confirmation = "✨ It's a match! You can now chat with this person."
	case decisions.OutcomeLiked:
		confirmation = "❤️ You liked this profile! You'll be notified if they like you back."
	case decisions.OutcomePassed:
		confirmation = "👎 You passed on this profile."
	}
	if err := c.notifier.SendText(ctx, chatID, confirmation); err != nil {
		return err
	}

	candidates, err := c.matchmaker.Candidates(ctx, userID)
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		return c.notifier.SendText(ctx, chatID,
			"No more potential matches found at the moment. Check back later!")
	}
	if err := c.notifier.SendText(ctx, chatID, "Here's another potential match for you:"); err != nil {
		return err
	}
	return c.sendCandidateCard(ctx, chatID, candidates[0])
}

// startChat opens a relay session, replaying any shared history first.
func (c *CommandControllerImpl) startChat(ctx context.Context, userID, chatID int64, suffix string) error {
	matchID, ok := parseID(suffix)
	if !ok {
		return nil
	}
	if !c.store.AreMatched(userID, matchID) {
		return c.notifier.SendText(ctx, chatID, "You are no longer matched with this user.")
	}

	c.sessions.StartChat(userID, matchID)

	history, err := c.store.ChatHistory(ctx, userID, matchID)
	if err != nil {
		log.Printf("commands: chat history load failed for %d/%d: %v", userID, matchID, err)
	}
	if len(history) > 0 {
		var b strings.Builder
		b.WriteString("--- Chat History ---\n\n")
		for _, entry := range history {
			b.WriteString(fmt.Sprintf("%s: %s\n", c.profileName(ctx, entry.Sender), entry.Text))
		}
		return c.notifier.SendText(ctx, chatID, fmt.Sprintf(
			"%s\n\nYou are now chatting with your match. Simply type messages to chat.", b.String()))
	}

	matchName := "your match"
	if match, err := c.store.GetProfile(ctx, matchID); err == nil && match != nil && match.Name != "" {
		matchName = match.Name
	}
	return c.notifier.SendText(ctx, chatID, fmt.Sprintf(
		"You are now chatting with %s. This is the beginning of your conversation. Simply type messages to chat.",
		matchName))
}

// relayChat forwards a chat message to the current partner. A severed match
// ends the session instead of relaying.
func (c *CommandControllerImpl) relayChat(ctx context.Context, msg *tgbotapi.Message, recipientID int64) error {
	userID := msg.From.ID
	if !c.store.AreMatched(userID, recipientID) {
		c.sessions.Reset(userID)
		return c.notifier.SendText(ctx, msg.Chat.ID, "You are no longer matched with this user.")
	}

	if err := c.store.AppendChat(ctx, userID, recipientID, msg.Text); err != nil {
		if !errors.Is(err, store.ErrDurable) {
			return err
		}
		log.Printf("commands: durable chat append failed for %d/%d: %v", userID, recipientID, err)
	}

	return c.notifier.SendText(ctx, recipientID, fmt.Sprintf(
		"Message from %s:\n\n%s", c.profileName(ctx, userID), msg.Text))
}

func (c *CommandControllerImpl) unmatchCallback(ctx context.Context, userID, chatID int64, suffix string) error {
	matchID, ok := parseID(suffix)
	if !ok {
		return nil
	}
	if err := c.decisions.Unmatch(ctx, userID, matchID); err != nil {
		return err
	}
	return c.notifier.SendText(ctx, chatID, "You have unmatched with this user.")
}

func (c *CommandControllerImpl) blockCallback(ctx context.Context, userID, chatID int64, suffix string) error {
	matchID, ok := parseID(suffix)
	if !ok {
		return nil
	}
	if err := c.decisions.Block(ctx, userID, matchID); err != nil {
		return err
	}
	return c.notifier.SendText(ctx, chatID,
		"You have blocked this user. They can no longer contact you.")
}

func (c *CommandControllerImpl) reportCallback(ctx context.Context, userID, chatID int64, suffix string) error {
	matchID, ok := parseID(suffix)
	if !ok {
		return nil
	}
	reference, err := c.decisions.Report(ctx, userID, matchID, "")
	if err != nil {
		return err
	}
	return c.notifier.SendText(ctx, chatID, fmt.Sprintf(
		"Thank you for your report. We'll review this user's profile. (Reference: %s)", reference))
}

// sendCandidateCard sends a candidate profile followed by the like/pass
// buttons.
func (c *CommandControllerImpl) sendCandidateCard(ctx context.Context, chatID int64, candidate *profile.Profile) error {
	if err := c.sendProfileCard(ctx, chatID, candidate, false); err != nil {
		return err
	}
	return c.notifier.SendKeyboard(ctx, chatID, "Like or pass?", decisionKeyboard(candidate.TelegramID))
}

// requireComplete gates matching features behind a finished profile.
func (c *CommandControllerImpl) requireComplete(ctx context.Context, chatID, userID int64) (bool, error) {
	p, err := c.store.GetProfile(ctx, userID)
	if err != nil {
		return false, err
	}
	if p == nil || !p.ProfileComplete {
		return false, c.notifier.SendText(ctx, chatID,
			"You need to complete your profile first. Use /register to create your profile.")
	}
	return true, nil
}

func (c *CommandControllerImpl) profileName(ctx context.Context, userID int64) string {
	p, err := c.store.GetProfile(ctx, userID)
	if err != nil || p == nil || p.Name == "" {
		return "Anonymous"
	}
	return p.Name
}
