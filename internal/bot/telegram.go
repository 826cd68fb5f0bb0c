package bot

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/MyelinBots/matchbot-go/internal/services/notifier"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramNotifier adapts the telegram client to the notifier interface the
// services send through. It also downloads user photos for the command layer.
type TelegramNotifier struct {
	api    *tgbotapi.BotAPI
	client *http.Client
}

func NewTelegramNotifier(api *tgbotapi.BotAPI) *TelegramNotifier {
	return &TelegramNotifier{
		api:    api,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (t *TelegramNotifier) SendText(ctx context.Context, chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := t.api.Send(msg); err != nil {
		return fmt.Errorf("send text to %d: %w", chatID, err)
	}
	return nil
}

// SendPhoto uploads a hex-encoded image, the format profiles and crushes are
// stored in.
func (t *TelegramNotifier) SendPhoto(ctx context.Context, chatID int64, photoHex string, caption string) error {
	raw, err := hex.DecodeString(photoHex)
	if err != nil {
		return fmt.Errorf("decode photo for %d: %w", chatID, err)
	}

	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: "photo.jpg", Bytes: raw})
	photo.Caption = caption
	photo.ParseMode = tgbotapi.ModeMarkdown
	if _, err := t.api.Send(photo); err != nil {
		return fmt.Errorf("send photo to %d: %w", chatID, err)
	}
	return nil
}

func (t *TelegramNotifier) SendKeyboard(ctx context.Context, chatID int64, text string, rows [][]notifier.Button) error {
	markup := make([][]tgbotapi.InlineKeyboardButton, 0, len(rows))
	for _, row := range rows {
		buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, b := range row {
			buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(b.Label, b.Data))
		}
		markup = append(markup, buttons)
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(markup...)
	if _, err := t.api.Send(msg); err != nil {
		return fmt.Errorf("send keyboard to %d: %w", chatID, err)
	}
	return nil
}

// FetchPhotoHex downloads an uploaded photo by file id and returns it
// hex-encoded for storage.
func (t *TelegramNotifier) FetchPhotoHex(ctx context.Context, fileID string) (string, error) {
	url, err := t.api.GetFileDirectURL(fileID)
	if err != nil {
		return "", fmt.Errorf("resolve file %s: %w", fileID, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("fetch file %s: %w", fileID, err)
	}
	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch file %s: %w", fileID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch file %s: status %d", fileID, resp.StatusCode)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read file %s: %w", fileID, err)
	}
	return hex.EncodeToString(raw), nil
}
