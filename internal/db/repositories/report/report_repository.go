package report

import (
	"context"
	"time"

	"github.com/MyelinBots/matchbot-go/internal/db"
)

/*
MODEL
*/

type Report struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	ReporterID uint   `gorm:"column:reporter_id;not null;index" json:"reporter_id"`
	ReportedID uint   `gorm:"column:reported_id;not null;index" json:"reported_id"`
	Reason     string `gorm:"column:reason;type:text;not null;default:''" json:"reason"`

	// Reference is the uuid echoed back to the reporter.
	Reference string `gorm:"column:reference;type:varchar(36);not null;default:''" json:"reference"`
}

func (Report) TableName() string {
	return "reports"
}

/*
REPOSITORY INTERFACE
*/

// Reports are append-only; nothing in the bot reads them back.
type ReportRepository interface {
	Create(ctx context.Context, rep *Report) error
}

/*
REPOSITORY IMPL
*/

type ReportRepositoryImpl struct {
	db *db.DB
}

func NewReportRepository(database *db.DB) ReportRepository {
	return &ReportRepositoryImpl{db: database}
}

func (r *ReportRepositoryImpl) Create(ctx context.Context, rep *Report) error {
	return r.db.DB.WithContext(ctx).Create(rep).Error
}
