package commands

import (
	"context"
	"log"
	"strconv"
	"strings"

	"github.com/MyelinBots/matchbot-go/internal/services/context_manager"
	"github.com/MyelinBots/matchbot-go/internal/services/conversation"
	"github.com/MyelinBots/matchbot-go/internal/services/crush"
	"github.com/MyelinBots/matchbot-go/internal/services/decisions"
	"github.com/MyelinBots/matchbot-go/internal/services/matchmaker"
	"github.com/MyelinBots/matchbot-go/internal/services/notifier"
	"github.com/MyelinBots/matchbot-go/internal/services/store"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Handler is one registered chat command.
type Handler func(ctx context.Context, msg *tgbotapi.Message) error

// PhotoFetcher downloads an uploaded photo and returns it hex-encoded.
type PhotoFetcher interface {
	FetchPhotoHex(ctx context.Context, fileID string) (string, error)
}

type CommandController interface {
	HandleUpdate(ctx context.Context, update tgbotapi.Update) error
	AddCommand(command string, handler Handler)

	StartHandler() Handler
	HelpHandler() Handler
	RegisterHandler() Handler
	CancelHandler() Handler
	ProfileHandler() Handler
	EditProfileHandler() Handler
	MatchHandler() Handler
	MatchesHandler() Handler
	SecretCrushHandler() Handler
}

type CommandControllerImpl struct {
	store      store.Store
	matchmaker matchmaker.Matchmaker
	decisions  decisions.Decisions
	crushes    crush.Crush
	sessions   *conversation.Manager
	notifier   notifier.Notifier
	photos     PhotoFetcher
	commands   map[string]Handler
}

func NewCommandController(
	st store.Store,
	m matchmaker.Matchmaker,
	d decisions.Decisions,
	cr crush.Crush,
	sessions *conversation.Manager,
	n notifier.Notifier,
	photos PhotoFetcher,
) CommandController {
	return &CommandControllerImpl{
		store:      st,
		matchmaker: m,
		decisions:  d,
		crushes:    cr,
		sessions:   sessions,
		notifier:   n,
		photos:     photos,
		commands:   make(map[string]Handler),
	}
}

func (c *CommandControllerImpl) AddCommand(command string, handler Handler) {
	c.commands[command] = handler
}

// HandleUpdate routes one telegram update: commands through the dispatch map,
// callbacks through the callback families, and plain text or photos into
// whichever flow the sender's session is in.
func (c *CommandControllerImpl) HandleUpdate(ctx context.Context, update tgbotapi.Update) error {
	if update.CallbackQuery != nil {
		return c.handleCallback(ctx, update.CallbackQuery)
	}
	if update.Message == nil || update.Message.From == nil {
		return nil
	}

	msg := update.Message
	ctx = context_manager.SetUserContext(ctx, msg.From.ID)
	ctx = context_manager.SetUsernameContext(ctx, msg.From.UserName)
	c.store.TouchUsername(msg.From.ID, msg.From.UserName)

	if msg.IsCommand() {
		if handler, exists := c.commands[msg.Command()]; exists {
			return handler(ctx, msg)
		}
		return c.notifier.SendText(ctx, msg.Chat.ID,
			"I didn't understand that command. Use /help to see available commands.")
	}

	if len(msg.Photo) > 0 {
		return c.handlePhoto(ctx, msg)
	}
	return c.handleText(ctx, msg)
}

// handleText routes a plain message by the sender's session state.
func (c *CommandControllerImpl) handleText(ctx context.Context, msg *tgbotapi.Message) error {
	sess := c.sessions.Get(msg.From.ID)

	switch sess.State {
	case conversation.StateName:
		return c.registerName(ctx, msg)
	case conversation.StateAge:
		return c.registerAge(ctx, msg)
	case conversation.StateGender, conversation.StateUniversity,
		conversation.StateTargetUniversities, conversation.StateRelationshipPreference:
		return c.notifier.SendText(ctx, msg.Chat.ID, "Please use the buttons above to make your selection.")
	case conversation.StateProfilePicture:
		return c.notifier.SendText(ctx, msg.Chat.ID, "Please send your profile picture (send as a photo, not as a file).")
	case conversation.StateHobbies:
		return c.registerHobbies(ctx, msg)
	case conversation.StateBio:
		return c.registerBio(ctx, msg)
	case conversation.StateEditName, conversation.StateEditAge,
		conversation.StateEditHobbies, conversation.StateEditBio:
		return c.editFieldText(ctx, msg, sess.State)
	case conversation.StateEditPicture:
		return c.notifier.SendText(ctx, msg.Chat.ID, "Please send me your new profile picture:")
	case conversation.StateCrushSelect:
		return c.crushSelectText(ctx, msg)
	case conversation.StateCrushExternalName:
		return c.crushExternalName(ctx, msg)
	case conversation.StateCrushExternalSocial:
		return c.crushExternalSocial(ctx, msg)
	case conversation.StateCrushExternalPhoto:
		return c.crushExternalPhotoText(ctx, msg)
	case conversation.StateChatting:
		return c.relayChat(ctx, msg, sess.ChattingWith)
	}

	return c.notifier.SendText(ctx, msg.Chat.ID,
		"I didn't understand that command. Use /help to see available commands.")
}

// handlePhoto routes an uploaded photo: profile picture during registration
// or edit, crush photo during the external crush flow.
func (c *CommandControllerImpl) handlePhoto(ctx context.Context, msg *tgbotapi.Message) error {
	sess := c.sessions.Get(msg.From.ID)

	switch sess.State {
	case conversation.StateProfilePicture:
		return c.registerProfilePicture(ctx, msg)
	case conversation.StateEditPicture:
		return c.editProfilePicture(ctx, msg)
	case conversation.StateCrushExternalPhoto:
		return c.crushExternalPhoto(ctx, msg)
	}

	return c.notifier.SendText(ctx, msg.Chat.ID,
		"I've received your photo, but I'm not sure what to do with it. Use /help to see available commands.")
}

// handleCallback dispatches inline button presses. Longer prefixes are
// matched first so edit_rel_0 never lands on the edit_ family.
func (c *CommandControllerImpl) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) error {
	if cb.From == nil {
		return nil
	}
	userID := cb.From.ID
	chatID := userID
	if cb.Message != nil && cb.Message.Chat != nil {
		chatID = cb.Message.Chat.ID
	}
	ctx = context_manager.SetUserContext(ctx, userID)
	ctx = context_manager.SetUsernameContext(ctx, cb.From.UserName)
	c.store.TouchUsername(userID, cb.From.UserName)

	data := cb.Data
	switch {
	case strings.HasPrefix(data, "edit_rel_"):
		return c.editRelationship(ctx, userID, chatID, strings.TrimPrefix(data, "edit_rel_"))
	case strings.HasPrefix(data, "target_uni_"):
		return c.editTargets(ctx, userID, chatID, strings.TrimPrefix(data, "target_uni_"))
	case data == "edit_profile":
		c.sessions.Reset(userID)
		return c.notifier.SendText(ctx, chatID, "You can edit your profile by using the /edit_profile command.")
	case data == "cancel_edit":
		c.sessions.Reset(userID)
		return c.notifier.SendText(ctx, chatID, "Profile editing cancelled. Use /profile to see your current profile.")
	case strings.HasPrefix(data, "edit_"):
		return c.editMenuSelect(ctx, userID, chatID, strings.TrimPrefix(data, "edit_"))
	case strings.HasPrefix(data, "gender_"):
		return c.selectGender(ctx, userID, chatID, strings.TrimPrefix(data, "gender_"))
	case strings.HasPrefix(data, "uni_"):
		return c.selectUniversity(ctx, userID, chatID, strings.TrimPrefix(data, "uni_"))
	case strings.HasPrefix(data, "target_"):
		return c.selectTarget(ctx, userID, chatID, strings.TrimPrefix(data, "target_"))
	case strings.HasPrefix(data, "rel_"):
		return c.selectRelationship(ctx, userID, chatID, strings.TrimPrefix(data, "rel_"))
	case data == "start_matching":
		c.sessions.Reset(userID)
		return c.notifier.SendText(ctx, chatID,
			"Great! You're now ready to start matching. Use the /match command to find new potential matches.")
	case strings.HasPrefix(data, "like_"), strings.HasPrefix(data, "pass_"):
		return c.decideCallback(ctx, userID, chatID, data)
	case strings.HasPrefix(data, "chat_"):
		return c.startChat(ctx, userID, chatID, strings.TrimPrefix(data, "chat_"))
	case strings.HasPrefix(data, "unmatch_"):
		return c.unmatchCallback(ctx, userID, chatID, strings.TrimPrefix(data, "unmatch_"))
	case strings.HasPrefix(data, "block_"):
		return c.blockCallback(ctx, userID, chatID, strings.TrimPrefix(data, "block_"))
	case strings.HasPrefix(data, "report_"):
		return c.reportCallback(ctx, userID, chatID, strings.TrimPrefix(data, "report_"))
	case data == "crush_registered":
		return c.crushRegistered(ctx, userID, chatID)
	case data == "crush_external":
		return c.crushExternal(ctx, userID, chatID)
	}

	log.Printf("commands: unhandled callback %q from %d", data, userID)
	return nil
}

// parseID reads the numeric suffix of callback data like "like_12345".
func parseID(suffix string) (int64, bool) {
	id, err := strconv.ParseInt(suffix, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}
