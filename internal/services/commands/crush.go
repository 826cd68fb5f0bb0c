package commands

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"

	"github.com/MyelinBots/matchbot-go/internal/db/repositories/profile"
	"github.com/MyelinBots/matchbot-go/internal/services/conversation"
	"github.com/MyelinBots/matchbot-go/internal/services/crush"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (c *CommandControllerImpl) SecretCrushHandler() Handler {
	return func(ctx context.Context, msg *tgbotapi.Message) error {
		userID := msg.From.ID
		if ok, err := c.requireComplete(ctx, msg.Chat.ID, userID); !ok {
			return err
		}

		c.sessions.Reset(userID)
		return c.notifier.SendKeyboard(ctx, msg.Chat.ID,
			"💖 *Secret Crush* 💖\n\n"+
				"Add someone as your secret crush! Choose an option below:\n\n"+
				"- *Add a user from this bot*: Choose someone already using this dating bot\n"+
				"- *Add someone not on this bot*: Add details about your crush who is not using this bot",
			crushTypeKeyboard())
	}
}

// crushRegistered lists the other registered users and asks for a pick by
// list number or @username.
func (c *CommandControllerImpl) crushRegistered(ctx context.Context, userID, chatID int64) error {
	candidates := c.crushCandidates(userID)
	if len(candidates) == 0 {
		return c.notifier.SendText(ctx, chatID,
			"💔 There are no other registered users in the system yet. "+
				"Please try again when more people have joined the dating bot.")
	}

	var list strings.Builder
	list.WriteString("Here are some registered users you might want to add as a crush:\n\n")
	for i, p := range candidates {
		list.WriteString(fmt.Sprintf("%d. %s - %s at %s\n",
			i+1, crushField(p.Name, "Anonymous"), crushField(p.Gender, "Unknown"),
			crushField(p.University, "Unknown University")))
	}
	list.WriteString("\n")

	c.sessions.SetState(userID, conversation.StateCrushSelect)
	return c.notifier.SendText(ctx, chatID,
		"💖 *Secret Crush* 💖\n\n"+
			"Add someone as your secret crush and they'll only be notified if they add you too!\n\n"+
			list.String()+
			"Send me the Telegram username of your crush (e.g., @username) or their ID number:\n\n"+
			"Note: If you know their Telegram username, use @username format.\n"+
			"If you know their ID number (from the list above), you can use that directly.")
}

func (c *CommandControllerImpl) crushExternal(ctx context.Context, userID, chatID int64) error {
	c.sessions.SetState(userID, conversation.StateCrushExternalName)
	return c.notifier.SendText(ctx, chatID,
		"💖 *External Secret Crush* 💖\n\n"+
			"You can add a crush who is not using this bot. "+
			"Please tell me about your crush's name:")
}

// crushSelectText resolves a registered-crush pick. Invalid input keeps the
// selection state so the sender can retry.
func (c *CommandControllerImpl) crushSelectText(ctx context.Context, msg *tgbotapi.Message) error {
	userID := msg.From.ID
	text := strings.TrimSpace(msg.Text)

	var crushID int64
	switch {
	case isDigits(text):
		candidates := c.crushCandidates(userID)
		idx, _ := strconv.Atoi(text)
		if idx < 1 || idx > len(candidates) {
			return c.notifier.SendText(ctx, msg.Chat.ID, fmt.Sprintf(
				"Invalid number. Please choose a number between 1 and %d.", len(candidates)))
		}
		crushID = candidates[idx-1].TelegramID

	case strings.HasPrefix(text, "@") && len(text) >= 2:
		handle := text[1:]
		if isDigits(handle) {
			id, _ := strconv.ParseInt(handle, 10, 64)
			p, err := c.store.GetProfile(ctx, id)
			if err != nil {
				return err
			}
			if p == nil {
				return c.notifier.SendText(ctx, msg.Chat.ID,
					"No user found with that ID. They need to register with the bot first.")
			}
			crushID = p.TelegramID
		} else {
			p := c.store.FindByUsername(handle)
			if p == nil {
				return c.notifier.SendText(ctx, msg.Chat.ID,
					"I couldn't find that user. They might not have registered with the bot yet, or you might "+
						"have entered the wrong username.")
			}
			crushID = p.TelegramID
		}

	default:
		return c.notifier.SendText(ctx, msg.Chat.ID,
			"That doesn't look like a valid input. Please use the format @username or enter a number from the list.")
	}

	result, err := c.crushes.AddRegistered(ctx, userID, crushID)
	if err != nil {
		return err
	}

	switch result {
	case crush.ResultSelf:
		return c.notifier.SendText(ctx, msg.Chat.ID,
			"You can't add yourself as a secret crush! Try someone else 😊")

	case crush.ResultAlreadyAdded:
		c.sessions.Reset(userID)
		name := "this person"
		if p, err := c.store.GetProfile(ctx, crushID); err == nil && p != nil && p.Name != "" {
			name = p.Name
		}
		return c.notifier.SendText(ctx, msg.Chat.ID, fmt.Sprintf(
			"You've already added %s as a secret crush.", name))
	}

	c.sessions.Reset(userID)
	crushProfile, err := c.store.GetProfile(ctx, crushID)
	if err != nil || crushProfile == nil {
		return c.notifier.SendText(ctx, msg.Chat.ID,
			"Secret crush added! They won't be notified unless they add you as a crush too.")
	}
	if err := c.notifier.SendText(ctx, msg.Chat.ID, fmt.Sprintf(
		"Secret crush on %s added! They won't be notified unless they add you as a crush too.",
		crushField(crushProfile.Name, "your crush"))); err != nil {
		return err
	}
	if crushProfile.ProfilePic != "" {
		if err := c.notifier.SendPhoto(ctx, msg.Chat.ID, crushProfile.ProfilePic,
			"This is your secret crush 💘"); err != nil {
			log.Printf("commands: crush photo send failed for %d: %v", userID, err)
		}
	}
	return nil
}

func (c *CommandControllerImpl) crushExternalName(ctx context.Context, msg *tgbotapi.Message) error {
	name := strings.TrimSpace(msg.Text)
	if len([]rune(name)) < 3 {
		return c.notifier.SendText(ctx, msg.Chat.ID,
			"Please enter a valid name (at least 3 characters).")
	}

	c.sessions.SetCrushName(msg.From.ID, name)
	c.sessions.SetState(msg.From.ID, conversation.StateCrushExternalSocial)
	return c.notifier.SendText(ctx, msg.Chat.ID,
		"Great! Now please enter your crush's social media account (Instagram or Telegram handle). "+
			"If you don't know it, you can type 'skip'.")
}

func (c *CommandControllerImpl) crushExternalSocial(ctx context.Context, msg *tgbotapi.Message) error {
	text := strings.TrimSpace(msg.Text)
	if !strings.EqualFold(text, "skip") {
		c.sessions.SetCrushSocial(msg.From.ID, text)
	}

	c.sessions.SetState(msg.From.ID, conversation.StateCrushExternalPhoto)
	return c.notifier.SendText(ctx, msg.Chat.ID,
		"Now, if you have a photo of your crush, please send it. "+
			"If not, you can type 'skip'.")
}

// crushExternalPhotoText finishes the external flow without a photo on
// "skip"; any other text leaves the state waiting for a photo.
func (c *CommandControllerImpl) crushExternalPhotoText(ctx context.Context, msg *tgbotapi.Message) error {
	if !strings.EqualFold(strings.TrimSpace(msg.Text), "skip") {
		return nil
	}

	userID := msg.From.ID
	sess := c.sessions.Get(userID)
	c.sessions.Reset(userID)

	if err := c.crushes.AddExternal(ctx, userID, sess.CrushName, sess.CrushSocial, ""); err != nil {
		log.Printf("commands: external crush add failed for %d: %v", userID, err)
		return c.notifier.SendText(ctx, msg.Chat.ID,
			"❌ There was an error adding your crush. Please try again later.")
	}
	return c.notifier.SendText(ctx, msg.Chat.ID, fmt.Sprintf(
		"✅ Your external crush %s has been added! "+
			"This will remain secret unless they join the bot and add you back.", sess.CrushName))
}

func (c *CommandControllerImpl) crushExternalPhoto(ctx context.Context, msg *tgbotapi.Message) error {
	userID := msg.From.ID

	photoHex, err := c.fetchLargestPhoto(ctx, msg)
	if err != nil {
		log.Printf("commands: crush photo download failed for %d: %v", userID, err)
		return c.notifier.SendText(ctx, msg.Chat.ID,
			"I couldn't download that photo. Please try sending it again.")
	}

	sess := c.sessions.Get(userID)
	c.sessions.Reset(userID)

	if err := c.crushes.AddExternal(ctx, userID, sess.CrushName, sess.CrushSocial, photoHex); err != nil {
		log.Printf("commands: external crush add failed for %d: %v", userID, err)
		return c.notifier.SendText(ctx, msg.Chat.ID,
			"❌ There was an error adding your crush. Please try again later.")
	}

	if err := c.notifier.SendText(ctx, msg.Chat.ID, fmt.Sprintf(
		"✅ Your external crush %s has been added with photo! "+
			"This will remain secret unless they join the bot and add you back.", sess.CrushName)); err != nil {
		return err
	}
	return c.notifier.SendPhoto(ctx, msg.Chat.ID, photoHex, fmt.Sprintf(
		"This is your secret crush: %s 💘", sess.CrushName))
}

// crushCandidates is every other profile, ordered by telegram id so the
// numbered list stays stable between display and selection.
func (c *CommandControllerImpl) crushCandidates(userID int64) []*profile.Profile {
	var candidates []*profile.Profile
	for _, p := range c.store.AllProfiles() {
		if p.TelegramID != userID {
			candidates = append(candidates, p)
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].TelegramID < candidates[j].TelegramID
	})
	return candidates
}

func crushField(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
