package commands

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"unicode"

	"github.com/MyelinBots/matchbot-go/internal/db/repositories/profile"
	"github.com/MyelinBots/matchbot-go/internal/services/catalog"
	"github.com/MyelinBots/matchbot-go/internal/services/conversation"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (c *CommandControllerImpl) ProfileHandler() Handler {
	return func(ctx context.Context, msg *tgbotapi.Message) error {
		p, err := c.store.GetProfile(ctx, msg.From.ID)
		if err != nil {
			return err
		}
		if p == nil || !p.ProfileComplete {
			return c.notifier.SendText(ctx, msg.Chat.ID,
				"You don't have a complete profile yet. Use /register to create one.")
		}
		return c.sendProfileCard(ctx, msg.Chat.ID, p, true)
	}
}

func (c *CommandControllerImpl) EditProfileHandler() Handler {
	return func(ctx context.Context, msg *tgbotapi.Message) error {
		p, err := c.store.GetProfile(ctx, msg.From.ID)
		if err != nil {
			return err
		}
		if p == nil {
			return c.notifier.SendText(ctx, msg.Chat.ID,
				"You don't have a profile yet. Use /register to create one.")
		}
		return c.notifier.SendKeyboard(ctx, msg.Chat.ID,
			"What would you like to edit in your profile?", editMenuKeyboard())
	}
}

// editMenuSelect jumps straight to a single field-update state, bypassing the
// registration order.
func (c *CommandControllerImpl) editMenuSelect(ctx context.Context, userID, chatID int64, field string) error {
	switch field {
	case "name":
		c.sessions.SetState(userID, conversation.StateEditName)
		return c.notifier.SendText(ctx, chatID, "Please send me your new name:")
	case "age":
		c.sessions.SetState(userID, conversation.StateEditAge)
		return c.notifier.SendText(ctx, chatID, "Please send me your new age (must be between 18 and 30):")
	case "gender":
		c.sessions.Reset(userID)
		return c.notifier.SendKeyboard(ctx, chatID, "Please select your gender:", genderKeyboard())
	case "pic":
		c.sessions.SetState(userID, conversation.StateEditPicture)
		return c.notifier.SendText(ctx, chatID, "Please send me your new profile picture:")
	case "university":
		c.sessions.Reset(userID)
		return c.notifier.SendKeyboard(ctx, chatID, "Please select your university:", universityKeyboard("uni_"))
	case "target_unis":
		c.sessions.Reset(userID)
		return c.notifier.SendKeyboard(ctx, chatID,
			"Please select which universities you want to match with:", editTargetKeyboard())
	case "hobbies":
		c.sessions.SetState(userID, conversation.StateEditHobbies)
		return c.notifier.SendText(ctx, chatID, "Please send me your new hobbies:")
	case "bio":
		c.sessions.SetState(userID, conversation.StateEditBio)
		return c.notifier.SendText(ctx, chatID, "Please send me your new bio (between 10 and 500 characters):")
	case "rel":
		c.sessions.Reset(userID)
		return c.notifier.SendKeyboard(ctx, chatID,
			"What type of relationship are you looking for?", relationshipKeyboard("edit_rel_"))
	}

	log.Printf("commands: unknown edit field %q from %d", field, userID)
	return nil
}

// editFieldText applies a free-text field edit. The same validators gate both
// registration and edits.
func (c *CommandControllerImpl) editFieldText(ctx context.Context, msg *tgbotapi.Message, state conversation.State) error {
	userID := msg.From.ID

	var field string
	var apply func(p *profile.Profile)

	switch state {
	case conversation.StateEditName:
		name, err := conversation.ValidateName(msg.Text)
		if err != nil {
			return c.notifier.SendText(ctx, msg.Chat.ID,
				"Please enter a valid name between 3 and 50 characters.")
		}
		field = "name"
		apply = func(p *profile.Profile) { p.Name = name }
	case conversation.StateEditAge:
		age, err := conversation.ValidateAge(msg.Text)
		if err != nil {
			return c.notifier.SendText(ctx, msg.Chat.ID,
				"Please enter a valid age (between 18 and 30).")
		}
		field = "age"
		apply = func(p *profile.Profile) { p.Age = age }
	case conversation.StateEditHobbies:
		hobbies, err := conversation.ValidateHobbies(msg.Text)
		if err != nil {
			return c.notifier.SendText(ctx, msg.Chat.ID,
				"Please enter valid hobbies between 3 and 200 characters.")
		}
		field = "hobbies"
		apply = func(p *profile.Profile) { p.Hobbies = hobbies }
	case conversation.StateEditBio:
		bio, err := conversation.ValidateBio(msg.Text)
		if err != nil {
			return c.notifier.SendText(ctx, msg.Chat.ID,
				"Please enter a bio between 10 and 500 characters.")
		}
		field = "bio"
		apply = func(p *profile.Profile) { p.Bio = bio }
	default:
		return nil
	}

	if err := c.updateProfile(ctx, userID, apply); err != nil {
		return err
	}
	c.sessions.Reset(userID)
	return c.notifier.SendText(ctx, msg.Chat.ID, fmt.Sprintf(
		"Your %s has been updated. Use /profile to see your complete profile.", field))
}

func (c *CommandControllerImpl) editProfilePicture(ctx context.Context, msg *tgbotapi.Message) error {
	photoHex, err := c.fetchLargestPhoto(ctx, msg)
	if err != nil {
		log.Printf("commands: photo download failed for %d: %v", msg.From.ID, err)
		return c.notifier.SendText(ctx, msg.Chat.ID,
			"I couldn't download that photo. Please try sending it again.")
	}

	if err := c.updateProfile(ctx, msg.From.ID, func(p *profile.Profile) {
		p.ProfilePic = photoHex
	}); err != nil {
		return err
	}

	c.sessions.Reset(msg.From.ID)
	return c.notifier.SendText(ctx, msg.Chat.ID,
		"Your profile picture has been updated. Use /profile to see your updated profile.")
}

func (c *CommandControllerImpl) editRelationship(ctx context.Context, userID, chatID int64, suffix string) error {
	idx, err := strconv.Atoi(suffix)
	if err != nil {
		return nil
	}
	relationship, ok := catalog.RelationshipAt(idx)
	if !ok {
		return nil
	}

	if err := c.updateProfile(ctx, userID, func(p *profile.Profile) {
		p.RelationshipPreference = relationship
	}); err != nil {
		return err
	}
	return c.notifier.SendText(ctx, chatID, fmt.Sprintf(
		"Your relationship preference has been updated to %s. Use /profile to see your updated profile.", relationship))
}

// editTargets replaces the whole target list with a single pick, or the
// sentinel for "all".
func (c *CommandControllerImpl) editTargets(ctx context.Context, userID, chatID int64, suffix string) error {
	var targets []string
	if suffix == "all" {
		targets = []string{catalog.AllUniversities}
	} else {
		idx, err := strconv.Atoi(suffix)
		if err != nil {
			return nil
		}
		university, ok := catalog.UniversityAt(idx)
		if !ok {
			return nil
		}
		targets = []string{university}
	}

	if err := c.updateProfile(ctx, userID, func(p *profile.Profile) {
		p.SetTargetNames(targets)
	}); err != nil {
		return err
	}
	return c.notifier.SendText(ctx, chatID, fmt.Sprintf(
		"Your target universities have been updated to %s. Use /profile to see your updated profile.",
		strings.Join(targets, ", ")))
}

// sendProfileCard sends the formatted profile, as a photo caption when a
// picture is on file.
func (c *CommandControllerImpl) sendProfileCard(ctx context.Context, chatID int64, p *profile.Profile, includePersonal bool) error {
	text := formatProfile(p, includePersonal)
	if p.ProfilePic != "" {
		err := c.notifier.SendPhoto(ctx, chatID, p.ProfilePic, text)
		if err == nil {
			return nil
		}
		log.Printf("commands: photo card failed for %d, falling back to text: %v", p.TelegramID, err)
	}
	return c.notifier.SendText(ctx, chatID, text)
}

// formatProfile renders a profile for display. Target universities are only
// shown to the profile's owner.
func formatProfile(p *profile.Profile, includePersonal bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*%s*, %s\n", orNA(p.Name), intOrNA(p.Age))
	fmt.Fprintf(&b, "*Gender:* %s\n", capitalize(orNA(p.Gender)))
	fmt.Fprintf(&b, "*University:* %s\n", orNA(p.University))
	if includePersonal {
		targets := p.TargetNames()
		if len(targets) == 0 {
			targets = []string{"N/A"}
		}
		fmt.Fprintf(&b, "*Looking for matches from:* %s\n", strings.Join(targets, ", "))
	}
	fmt.Fprintf(&b, "*Looking for:* %s\n\n", orNA(p.RelationshipPreference))
	fmt.Fprintf(&b, "*Hobbies:* %s\n\n", orNA(p.Hobbies))
	fmt.Fprintf(&b, "*About me:*\n%s", orNA(p.Bio))
	return b.String()
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func intOrNA(n int) string {
	if n == 0 {
		return "N/A"
	}
	return strconv.Itoa(n)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
