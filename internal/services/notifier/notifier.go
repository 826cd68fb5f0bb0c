package notifier

import "context"

// Button is one inline keyboard button: the label shown to the user and the
// callback data sent back when pressed.
type Button struct {
	Label string
	Data  string
}

// Notifier is the single outbound surface the services talk to. The real
// implementation wraps the telegram client; tests swap in mocks. Photos
// travel hex-encoded, the same format the durable schema stores them in.
type Notifier interface {
	SendText(ctx context.Context, chatID int64, text string) error
	SendPhoto(ctx context.Context, chatID int64, photoHex string, caption string) error
	SendKeyboard(ctx context.Context, chatID int64, text string, rows [][]Button) error
}
