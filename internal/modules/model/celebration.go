package model

import (
	"time"

	"github.com/google/uuid"
)

// Celebration kinds.
const (
	CelebrationConfetti = "confetti"
	CelebrationBreath   = "breath"
	CelebrationSound    = "sound"
)

// Celebration records one acknowledgment, created once per step
// completion. StepID is a weak reference: deleting the step nulls it.
type Celebration struct {
	ID     uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	StepID *uuid.UUID `gorm:"type:uuid;index" json:"step_id"`

	Kind string `gorm:"type:text;not null;default:'confetti';check:kind IN ('confetti','breath','sound')" json:"kind"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP" json:"created_at"`

	// Celebration <-> User
	User *User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`

	// Celebration <-> Step
	Step *Step `gorm:"foreignKey:StepID;references:ID;constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"-"`
}

func (Celebration) TableName() string { return "celebrations" }
