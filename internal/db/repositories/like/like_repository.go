package like

import (
	"context"
	"errors"
	"time"

	"github.com/MyelinBots/matchbot-go/internal/db"
	"gorm.io/gorm"
)

/*
MODEL
*/

type Like struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	SenderID   uint `gorm:"column:sender_id;not null;uniqueIndex:uq_likes_pair,priority:1" json:"sender_id"`
	ReceiverID uint `gorm:"column:receiver_id;not null;uniqueIndex:uq_likes_pair,priority:2;index" json:"receiver_id"`

	IsMatch bool `gorm:"column:is_match;not null;default:false" json:"is_match"`
}

func (Like) TableName() string {
	return "likes"
}

/*
REPOSITORY INTERFACE
*/

type LikeRepository interface {
	GetByPair(ctx context.Context, senderID, receiverID uint) (*Like, error)
	Create(ctx context.Context, l *Like) error
	// SetMatch flips is_match on both directed edges of the pair.
	SetMatch(ctx context.Context, a, b uint, isMatch bool) error
	GetAll(ctx context.Context) ([]*Like, error)
}

/*
REPOSITORY IMPL
*/

type LikeRepositoryImpl struct {
	db *db.DB
}

func NewLikeRepository(database *db.DB) LikeRepository {
	return &LikeRepositoryImpl{db: database}
}

func (r *LikeRepositoryImpl) GetByPair(ctx context.Context, senderID, receiverID uint) (*Like, error) {
	var l Like
	err := r.db.DB.WithContext(ctx).
		Where("sender_id = ? AND receiver_id = ?", senderID, receiverID).
		First(&l).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

// Create inserts the directed edge if the ordered pair does not exist yet.
func (r *LikeRepositoryImpl) Create(ctx context.Context, l *Like) error {
	existing, err := r.GetByPair(ctx, l.SenderID, l.ReceiverID)
	if err != nil {
		return err
	}
	if existing != nil {
		l.ID = existing.ID
		l.IsMatch = existing.IsMatch || l.IsMatch
		return nil
	}
	return r.db.DB.WithContext(ctx).Create(l).Error
}

func (r *LikeRepositoryImpl) SetMatch(ctx context.Context, a, b uint, isMatch bool) error {
	return r.db.DB.WithContext(ctx).
		Model(&Like{}).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)", a, b, b, a).
		Update("is_match", isMatch).Error
}

func (r *LikeRepositoryImpl) GetAll(ctx context.Context) ([]*Like, error) {
	var likes []*Like
	if err := r.db.DB.WithContext(ctx).Find(&likes).Error; err != nil {
		return nil, err
	}
	return likes, nil
}
