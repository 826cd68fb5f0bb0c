package profile

import (
	"context"
	"errors"
	"time"

	"github.com/MyelinBots/matchbot-go/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

/*
MODEL
*/

type Profile struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	TelegramID int64  `gorm:"column:telegram_id;not null;uniqueIndex" json:"telegram_id"`
	Name       string `gorm:"column:name;type:varchar(100);not null;default:''" json:"name"`
	Age        int    `gorm:"column:age;type:int;not null;default:0" json:"age"`
	Gender     string `gorm:"column:gender;type:varchar(20);not null;default:''" json:"gender"`
	University string `gorm:"column:university;type:varchar(100);not null;default:''" json:"university"`
	Bio        string `gorm:"column:bio;type:text;not null;default:''" json:"bio"`
	Hobbies    string `gorm:"column:hobbies;type:text;not null;default:''" json:"hobbies"`

	RelationshipPreference string `gorm:"column:relationship_preference;type:varchar(50);not null;default:''" json:"relationship_preference"`

	ProfilePicURL string `gorm:"column:profile_pic_url;type:varchar(255);not null;default:''" json:"profile_pic_url"`
	// ProfilePic holds the image bytes hex-encoded, same format the durable
	// schema has always used.
	ProfilePic string `gorm:"column:profile_pic;type:text;not null;default:''" json:"-"`

	ProfileComplete bool `gorm:"column:profile_complete;not null;default:false" json:"profile_complete"`

	Targets []TargetUniversity `gorm:"foreignKey:UserID" json:"targets"`

	// Username is the telegram @handle. Kept in memory for crush lookups,
	// never persisted.
	Username string `gorm:"-" json:"-"`
}

func (Profile) TableName() string {
	return "users"
}

type TargetUniversity struct {
	ID             uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID         uint   `gorm:"column:user_id;not null;index" json:"user_id"`
	UniversityName string `gorm:"column:university_name;type:varchar(100);not null" json:"university_name"`
}

func (TargetUniversity) TableName() string {
	return "target_universities"
}

// TargetNames flattens the target rows to the plain list the matching filter
// works with.
func (p *Profile) TargetNames() []string {
	names := make([]string, 0, len(p.Targets))
	for _, t := range p.Targets {
		names = append(names, t.UniversityName)
	}
	return names
}

// SetTargetNames replaces the target rows from a plain list. Row ids are
// zeroed; Upsert rewrites the rows wholesale.
func (p *Profile) SetTargetNames(names []string) {
	targets := make([]TargetUniversity, 0, len(names))
	for _, n := range names {
		targets = append(targets, TargetUniversity{UniversityName: n})
	}
	p.Targets = targets
}

/*
REPOSITORY INTERFACE
*/

type ProfileRepository interface {
	GetByTelegramID(ctx context.Context, telegramID int64) (*Profile, error)
	GetAll(ctx context.Context) ([]*Profile, error)
	Upsert(ctx context.Context, p *Profile) error
}

/*
REPOSITORY IMPL
*/

type ProfileRepositoryImpl struct {
	db *db.DB
}

func NewProfileRepository(database *db.DB) ProfileRepository {
	return &ProfileRepositoryImpl{db: database}
}

func (r *ProfileRepositoryImpl) GetByTelegramID(ctx context.Context, telegramID int64) (*Profile, error) {
	var p Profile
	err := r.db.DB.WithContext(ctx).
		Preload("Targets").
		Where("telegram_id = ?", telegramID).
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProfileRepositoryImpl) GetAll(ctx context.Context) ([]*Profile, error) {
	var profiles []*Profile
	if err := r.db.DB.WithContext(ctx).
		Preload("Targets").
		Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

// Upsert by telegram_id. Target rows are replaced wholesale so the durable
// list always mirrors the last saved profile.
func (r *ProfileRepositoryImpl) Upsert(ctx context.Context, p *Profile) error {
	return r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing Profile
		err := tx.Where("telegram_id = ?", p.TelegramID).First(&existing).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		} else {
			// keep same primary key
			p.ID = existing.ID
			p.CreatedAt = existing.CreatedAt
		}

		if err := tx.Omit(clause.Associations).Save(p).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", p.ID).Delete(&TargetUniversity{}).Error; err != nil {
			return err
		}
		for i := range p.Targets {
			p.Targets[i].ID = 0
			p.Targets[i].UserID = p.ID
		}
		if len(p.Targets) > 0 {
			if err := tx.Create(&p.Targets).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
