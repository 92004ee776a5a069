package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AISession is a write-only audit row for one generation call. Business
// logic never reads it back; it exists for offline analytics.
type AISession struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`

	Input  datatypes.JSONMap `gorm:"type:jsonb;not null" swaggertype:"object" json:"input"`
	Output datatypes.JSONMap `gorm:"type:jsonb;not null" swaggertype:"object" json:"output"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP" json:"created_at"`

	// AISession <-> User
	User *User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (AISession) TableName() string { return "ai_sessions" }
