package commands

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/MyelinBots/matchbot-go/internal/db/repositories/profile"
	"github.com/MyelinBots/matchbot-go/internal/services/catalog"
	"github.com/MyelinBots/matchbot-go/internal/services/conversation"
	"github.com/MyelinBots/matchbot-go/internal/services/store"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (c *CommandControllerImpl) StartHandler() Handler {
	return func(ctx context.Context, msg *tgbotapi.Message) error {
		name := msg.From.FirstName
		if name == "" {
			name = "there"
		}
		return c.notifier.SendText(ctx, msg.Chat.ID, fmt.Sprintf(
			"Hi %s! 👋\n\n"+
				"Welcome to Ethiopian University Dating Bot! 💘\n\n"+
				"Find your perfect match among university students across Ethiopia.\n\n"+
				"To get started, use /register to create your profile.\n"+
				"Use /match to find and connect with potential matches.\n"+
				"Use /secret_crush to add someone special (either a bot user or external crush).\n"+
				"Use /help to see all available commands.", name))
	}
}

func (c *CommandControllerImpl) HelpHandler() Handler {
	return func(ctx context.Context, msg *tgbotapi.Message) error {
		helpText := "🌟 *Ethiopian University Dating Bot Help* 🌟\n\n" +
			"*Available Commands:*\n" +
			"/start - Start the bot\n" +
			"/register - Create your profile (one-time process)\n" +
			"/edit_profile - Edit your existing profile\n" +
			"/profile - View your profile\n" +
			"/match - Find new potential matches to like or pass\n" +
			"/matches - See your current matches and start chatting\n" +
			"/secret_crush or /secretcrush - Add a secret crush (bot user or external)\n" +
			"/help - Show this help message\n" +
			"/cancel - Cancel current operation\n\n" +
			"*How it works:*\n" +
			"1. Register your profile with your details\n" +
			"2. Browse potential matches\n" +
			"3. When you both like each other, you'll match!\n" +
			"4. Chat anonymously with your matches\n" +
			"5. Use the Secret Crush feature to let someone know you're interested:\n" +
			"   - Add users already on the bot\n" +
			"   - Add external crushes with their name, social media and photo\n\n" +
			"*Profile Tips:*\n" +
			"• A good profile picture greatly increases your chances of matching\n" +
			"• Your profile picture should clearly show your face\n" +
			"• Profile pictures are mandatory for all users\n" +
			"• Only you and your matches can see your profile picture\n\n" +
			"Happy dating! 💖"
		return c.notifier.SendText(ctx, msg.Chat.ID, helpText)
	}
}

func (c *CommandControllerImpl) RegisterHandler() Handler {
	return func(ctx context.Context, msg *tgbotapi.Message) error {
		userID := msg.From.ID

		p, err := c.store.GetProfile(ctx, userID)
		if err != nil {
			return err
		}
		if p == nil {
			p = &profile.Profile{TelegramID: userID, Username: msg.From.UserName}
		} else if msg.From.UserName != "" {
			p.Username = msg.From.UserName
		}
		if err := c.store.SaveProfile(ctx, p); err != nil && !errors.Is(err, store.ErrDurable) {
			return err
		}

		if p.ProfileComplete {
			return c.notifier.SendText(ctx, msg.Chat.ID,
				"You already have a complete profile. To make changes, please use /edit_profile instead.\n"+
					"To view your current profile, use /profile.")
		}

		c.sessions.SetState(userID, conversation.StateName)
		if p.Name != "" {
			return c.notifier.SendText(ctx, msg.Chat.ID,
				"Let's complete your dating profile! 📝\n"+
					"You can use /cancel at any time to stop the process.\n\n"+
					"Let's start with your full name:")
		}
		return c.notifier.SendText(ctx, msg.Chat.ID,
			"Let's create your dating profile! 📝\n"+
				"You can use /cancel at any time to stop the process.\n\n"+
				"What's your full name?")
	}
}

func (c *CommandControllerImpl) CancelHandler() Handler {
	return func(ctx context.Context, msg *tgbotapi.Message) error {
		c.sessions.Reset(msg.From.ID)
		return c.notifier.SendText(ctx, msg.Chat.ID,
			"Profile creation cancelled. You can start again with /register")
	}
}

func (c *CommandControllerImpl) registerName(ctx context.Context, msg *tgbotapi.Message) error {
	name, err := conversation.ValidateName(msg.Text)
	if err != nil {
		return c.notifier.SendText(ctx, msg.Chat.ID,
			"Please enter a valid name between 3 and 50 characters.")
	}

	if err := c.updateProfile(ctx, msg.From.ID, func(p *profile.Profile) {
		p.Name = name
	}); err != nil {
		return err
	}

	c.sessions.SetState(msg.From.ID, conversation.StateAge)
	return c.notifier.SendText(ctx, msg.Chat.ID, fmt.Sprintf(
		"Nice to meet you, %s! 👋\nHow old are you? (Must be 18+)", name))
}

func (c *CommandControllerImpl) registerAge(ctx context.Context, msg *tgbotapi.Message) error {
	age, err := conversation.ValidateAge(msg.Text)
	if err != nil {
		return c.notifier.SendText(ctx, msg.Chat.ID,
			"Please enter a valid age (between 18 and 30).")
	}

	if err := c.updateProfile(ctx, msg.From.ID, func(p *profile.Profile) {
		p.Age = age
	}); err != nil {
		return err
	}

	c.sessions.SetState(msg.From.ID, conversation.StateGender)
	return c.notifier.SendKeyboard(ctx, msg.Chat.ID, "What's your gender?", genderKeyboard())
}

func (c *CommandControllerImpl) registerProfilePicture(ctx context.Context, msg *tgbotapi.Message) error {
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

	c.sessions.SetState(msg.From.ID, conversation.StateUniversity)
	return c.notifier.SendKeyboard(ctx, msg.Chat.ID,
		"Great! Now, select your university:", universityKeyboard("uni_"))
}

func (c *CommandControllerImpl) registerHobbies(ctx context.Context, msg *tgbotapi.Message) error {
	hobbies, err := conversation.ValidateHobbies(msg.Text)
	if err != nil {
		return c.notifier.SendText(ctx, msg.Chat.ID,
			"Please enter valid hobbies between 3 and 200 characters.")
	}

	if err := c.updateProfile(ctx, msg.From.ID, func(p *profile.Profile) {
		p.Hobbies = hobbies
	}); err != nil {
		return err
	}

	c.sessions.SetState(msg.From.ID, conversation.StateBio)
	return c.notifier.SendText(ctx, msg.Chat.ID,
		"Great! Now, write a short bio about yourself (max 500 characters):")
}

func (c *CommandControllerImpl) registerBio(ctx context.Context, msg *tgbotapi.Message) error {
	bio, err := conversation.ValidateBio(msg.Text)
	if err != nil {
		return c.notifier.SendText(ctx, msg.Chat.ID,
			"Please enter a bio between 10 and 500 characters.")
	}

	if err := c.updateProfile(ctx, msg.From.ID, func(p *profile.Profile) {
		p.Bio = bio
	}); err != nil {
		return err
	}

	c.sessions.SetState(msg.From.ID, conversation.StateRelationshipPreference)
	return c.notifier.SendKeyboard(ctx, msg.Chat.ID,
		"Finally, what type of relationship are you looking for?", relationshipKeyboard("rel_"))
}

// selectGender serves both the registration step and the edit-gender flow;
// the session state tells them apart.
func (c *CommandControllerImpl) selectGender(ctx context.Context, userID, chatID int64, gender string) error {
	if gender != "male" && gender != "female" {
		log.Printf("commands: unknown gender callback %q from %d", gender, userID)
		return nil
	}

	if err := c.updateProfile(ctx, userID, func(p *profile.Profile) {
		p.Gender = gender
	}); err != nil {
		return err
	}

	if c.sessions.Get(userID).State == conversation.StateGender {
		c.sessions.SetState(userID, conversation.StateProfilePicture)
		return c.notifier.SendText(ctx, chatID, fmt.Sprintf(
			"Gender: %s\n\nPlease send your profile picture (send as a photo, not as a file)",
			capitalize(gender)))
	}

	return c.notifier.SendText(ctx, chatID, fmt.Sprintf(
		"Your gender has been updated to %s. Use /profile to see your updated profile.", gender))
}

func (c *CommandControllerImpl) selectUniversity(ctx context.Context, userID, chatID int64, suffix string) error {
	idx, err := strconv.Atoi(suffix)
	if err != nil {
		return nil
	}
	university, ok := catalog.UniversityAt(idx)
	if !ok {
		return nil
	}

	registering := c.sessions.Get(userID).State == conversation.StateUniversity

	if err := c.updateProfile(ctx, userID, func(p *profile.Profile) {
		p.University = university
		if registering {
			// Selection starts from a clean slate each run through the flow.
			p.SetTargetNames(nil)
		}
	}); err != nil {
		return err
	}

	if registering {
		c.sessions.SetState(userID, conversation.StateTargetUniversities)
		return c.notifier.SendKeyboard(ctx, chatID, fmt.Sprintf(
			"Your university: %s\n\nNow, select universities you want to date from (you can select multiple):",
			university), targetKeyboard(nil))
	}

	return c.notifier.SendText(ctx, chatID, fmt.Sprintf(
		"Your university has been updated to %s. Use /profile to see your updated profile.", university))
}

// selectTarget drives the multi-select sub-loop of registration. "all" short
// circuits with the sentinel, "done" requires at least one selection, and an
// index toggles membership.
func (c *CommandControllerImpl) selectTarget(ctx context.Context, userID, chatID int64, suffix string) error {
	if c.sessions.Get(userID).State != conversation.StateTargetUniversities {
		log.Printf("commands: target callback %q outside selection from %d", suffix, userID)
		return nil
	}

	p, err := c.store.GetProfile(ctx, userID)
	if err != nil {
		return err
	}
	if p == nil {
		return nil
	}

	switch suffix {
	case "all":
		p.SetTargetNames([]string{catalog.AllUniversities})
		if err := c.saveProfile(ctx, p); err != nil {
			return err
		}
		c.sessions.SetState(userID, conversation.StateHobbies)
		return c.notifier.SendText(ctx, chatID,
			"You've selected all universities.\n\nWhat are your hobbies and interests? (separate with commas)")

	case "done":
		if len(p.TargetNames()) == 0 {
			return c.notifier.SendText(ctx, chatID, "Please select at least one university")
		}
		c.sessions.SetState(userID, conversation.StateHobbies)
		return c.notifier.SendText(ctx, chatID,
			"Universities selected!\n\nWhat are your hobbies and interests? (separate with commas)")
	}

	idx, err := strconv.Atoi(suffix)
	if err != nil {
		return nil
	}
	university, ok := catalog.UniversityAt(idx)
	if !ok {
		return nil
	}

	targets := toggleTarget(p.TargetNames(), university)
	p.SetTargetNames(targets)
	if err := c.saveProfile(ctx, p); err != nil {
		return err
	}

	return c.notifier.SendKeyboard(ctx, chatID, fmt.Sprintf(
		"Your university: %s\n\nSelected universities: %s\n\nContinue selecting or press 'Done Selecting' when finished:",
		p.University, strings.Join(targets, ", ")), targetKeyboard(targets))
}

func (c *CommandControllerImpl) selectRelationship(ctx context.Context, userID, chatID int64, suffix string) error {
	if c.sessions.Get(userID).State != conversation.StateRelationshipPreference {
		log.Printf("commands: rel callback %q outside registration from %d", suffix, userID)
		return nil
	}

	idx, err := strconv.Atoi(suffix)
	if err != nil {
		return nil
	}
	relationship, ok := catalog.RelationshipAt(idx)
	if !ok {
		return nil
	}

	p, err := c.store.GetProfile(ctx, userID)
	if err != nil {
		return err
	}
	if p == nil {
		return nil
	}
	p.RelationshipPreference = relationship
	p.ProfileComplete = true
	if err := c.saveProfile(ctx, p); err != nil {
		return err
	}

	c.sessions.SetState(userID, conversation.StateCompleted)
	return c.notifier.SendKeyboard(ctx, chatID, fmt.Sprintf(
		"🎉 Your profile is complete! Here's how it looks:\n\n%s\n\nWhat would you like to do next?",
		formatProfile(p, true)), completionKeyboard())
}

// updateProfile applies a mutation to the sender's profile and saves it.
// Missing profiles are created on the fly so mid-flow edits never fail.
func (c *CommandControllerImpl) updateProfile(ctx context.Context, userID int64, mutate func(p *profile.Profile)) error {
	p, err := c.store.GetProfile(ctx, userID)
	if err != nil {
		return err
	}
	if p == nil {
		p = &profile.Profile{TelegramID: userID}
	}
	mutate(p)
	return c.saveProfile(ctx, p)
}

// saveProfile tolerates durable-write failures: the memory copy is already
// updated, so the flow continues on the in-memory result.
func (c *CommandControllerImpl) saveProfile(ctx context.Context, p *profile.Profile) error {
	if err := c.store.SaveProfile(ctx, p); err != nil {
		if errors.Is(err, store.ErrDurable) {
			log.Printf("commands: durable save failed for %d: %v", p.TelegramID, err)
			return nil
		}
		return err
	}
	return nil
}

// fetchLargestPhoto downloads the best-resolution size of an uploaded photo.
func (c *CommandControllerImpl) fetchLargestPhoto(ctx context.Context, msg *tgbotapi.Message) (string, error) {
	if len(msg.Photo) == 0 {
		return "", fmt.Errorf("no photo sizes in message")
	}
	best := msg.Photo[len(msg.Photo)-1]
	return c.photos.FetchPhotoHex(ctx, best.FileID)
}

func toggleTarget(targets []string, university string) []string {
	// The sentinel and explicit picks are mutually exclusive.
	for _, t := range targets {
		if t == catalog.AllUniversities {
			return []string{university}
		}
	}
	for i, t := range targets {
		if t == university {
			return append(targets[:i], targets[i+1:]...)
		}
	}
	return append(targets, university)
}
