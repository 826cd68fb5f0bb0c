package chat_message

import (
	"context"
	"time"

	"github.com/MyelinBots/matchbot-go/internal/db"
)

/*
MODEL
*/

type ChatMessage struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	SenderID   uint   `gorm:"column:sender_id;not null;index:idx_messages_pair,priority:1" json:"sender_id"`
	ReceiverID uint   `gorm:"column:receiver_id;not null;index:idx_messages_pair,priority:2" json:"receiver_id"`
	Text       string `gorm:"column:text;type:text;not null" json:"text"`
	IsRead     bool   `gorm:"column:is_read;not null;default:false" json:"is_read"`
}

func (ChatMessage) TableName() string {
	return "messages"
}

/*
REPOSITORY INTERFACE
*/

type ChatMessageRepository interface {
	Create(ctx context.Context, m *ChatMessage) error
	// GetBetween returns both directions of the pair ordered by time.
	GetBetween(ctx context.Context, a, b uint) ([]*ChatMessage, error)
}

/*
REPOSITORY IMPL
*/

type ChatMessageRepositoryImpl struct {
	db *db.DB
}

func NewChatMessageRepository(database *db.DB) ChatMessageRepository {
	return &ChatMessageRepositoryImpl{db: database}
}

func (r *ChatMessageRepositoryImpl) Create(ctx context.Context, m *ChatMessage) error {
	return r.db.DB.WithContext(ctx).Create(m).Error
}

func (r *ChatMessageRepositoryImpl) GetBetween(ctx context.Context, a, b uint) ([]*ChatMessage, error) {
	var messages []*ChatMessage
	if err := r.db.DB.WithContext(ctx).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)", a, b, b, a).
		Order("created_at ASC").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}
