package secret_crush

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

type SecretCrush struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	CrusherID uint `gorm:"column:crusher_id;not null;index" json:"crusher_id"`
	// CrusheeID is null for external crushes (someone not on the bot).
	CrusheeID *uint `gorm:"column:crushee_id;index" json:"crushee_id"`

	CrushName          string `gorm:"column:crush_name;type:varchar(100);not null;default:''" json:"crush_name"`
	SocialMediaAccount string `gorm:"column:social_media_account;type:varchar(100);not null;default:''" json:"social_media_account"`
	CrushPhoto         string `gorm:"column:crush_photo;type:text;not null;default:''" json:"-"`

	IsMutual bool `gorm:"column:is_mutual;not null;default:false" json:"is_mutual"`
}

func (SecretCrush) TableName() string {
	return "secret_crushes"
}

// External reports whether this crush points outside the bot.
func (c *SecretCrush) External() bool {
	return c.CrusheeID == nil
}

/*
REPOSITORY INTERFACE
*/

type SecretCrushRepository interface {
	GetByPair(ctx context.Context, crusherID, crusheeID uint) (*SecretCrush, error)
	Create(ctx context.Context, c *SecretCrush) error
	// SetMutual flips is_mutual on both directed edges of a registered pair.
	SetMutual(ctx context.Context, a, b uint, mutual bool) error
	GetAll(ctx context.Context) ([]*SecretCrush, error)
}

/*
REPOSITORY IMPL
*/

type SecretCrushRepositoryImpl struct {
	db *db.DB
}

func NewSecretCrushRepository(database *db.DB) SecretCrushRepository {
	return &SecretCrushRepositoryImpl{db: database}
}

func (r *SecretCrushRepositoryImpl) GetByPair(ctx context.Context, crusherID, crusheeID uint) (*SecretCrush, error) {
	var c SecretCrush
	err := r.db.DB.WithContext(ctx).
		Where("crusher_id = ? AND crushee_id = ?", crusherID, crusheeID).
		First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *SecretCrushRepositoryImpl) Create(ctx context.Context, c *SecretCrush) error {
	return r.db.DB.WithContext(ctx).Create(c).Error
}

func (r *SecretCrushRepositoryImpl) SetMutual(ctx context.Context, a, b uint, mutual bool) error {
	return r.db.DB.WithContext(ctx).
		Model(&SecretCrush{}).
		Where("(crusher_id = ? AND crushee_id = ?) OR (crusher_id = ? AND crushee_id = ?)", a, b, b, a).
		Update("is_mutual", mutual).Error
}

func (r *SecretCrushRepositoryImpl) GetAll(ctx context.Context) ([]*SecretCrush, error) {
	var crushes []*SecretCrush
	if err := r.db.DB.WithContext(ctx).Find(&crushes).Error; err != nil {
		return nil, err
	}
	return crushes, nil
}
