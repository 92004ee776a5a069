package model

import (
	"time"

	"github.com/google/uuid"
)

// User carries only the external identity; it exists so owned rows have
// a cascade anchor. Rows are created lazily on the first mood or task
// action.
type User struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	// User <-> owned entities
	Moods        []Mood        `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
	Tasks        []Task        `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
	Celebrations []Celebration `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
	AISessions   []AISession   `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (User) TableName() string { return "users" }
