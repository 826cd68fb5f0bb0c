package block

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

type Block struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	BlockerID uint `gorm:"column:blocker_id;not null;uniqueIndex:uq_blocks_pair,priority:1" json:"blocker_id"`
	BlockedID uint `gorm:"column:blocked_id;not null;uniqueIndex:uq_blocks_pair,priority:2" json:"blocked_id"`
}

func (Block) TableName() string {
	return "blocks"
}

/*
REPOSITORY INTERFACE
*/

type BlockRepository interface {
	GetByPair(ctx context.Context, blockerID, blockedID uint) (*Block, error)
	// Add inserts the directed edge, once.
	Add(ctx context.Context, b *Block) error
	GetAll(ctx context.Context) ([]*Block, error)
}

/*
REPOSITORY IMPL
*/

type BlockRepositoryImpl struct {
	db *db.DB
}

func NewBlockRepository(database *db.DB) BlockRepository {
	return &BlockRepositoryImpl{db: database}
}

func (r *BlockRepositoryImpl) GetByPair(ctx context.Context, blockerID, blockedID uint) (*Block, error) {
	var b Block
	err := r.db.DB.WithContext(ctx).
		Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).
		First(&b).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *BlockRepositoryImpl) Add(ctx context.Context, b *Block) error {
	existing, err := r.GetByPair(ctx, b.BlockerID, b.BlockedID)
	if err != nil {
		return err
	}
	if existing != nil {
		b.ID = existing.ID
		return nil
	}
	return r.db.DB.WithContext(ctx).Create(b).Error
}

func (r *BlockRepositoryImpl) GetAll(ctx context.Context) ([]*Block, error) {
	var blocks []*Block
	if err := r.db.DB.WithContext(ctx).Find(&blocks).Error; err != nil {
		return nil, err
	}
	return blocks, nil
}
