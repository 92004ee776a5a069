package model

import (
	"time"

	"github.com/google/uuid"
)

// Emotion values form a closed set, stored and returned verbatim.
const (
	EmotionCalm      = "calm"
	EmotionAnxious   = "anxious"
	EmotionTired     = "tired"
	EmotionEnergized = "energized"
	EmotionLow       = "low"
	EmotionMixed     = "mixed"
)

// IsValidEmotion checks membership in the emotion enum.
func IsValidEmotion(emotion string) bool {
	switch emotion {
	case EmotionCalm, EmotionAnxious, EmotionTired, EmotionEnergized, EmotionLow, EmotionMixed:
		return true
	}
	return false
}

// Mood is one check-in record. Immutable after creation.
type Mood struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`

	Energy  int     `gorm:"not null;check:energy >= 0 AND energy <= 4" json:"energy"`
	Emotion string  `gorm:"type:text;not null;check:emotion IN ('calm','anxious','tired','energized','low','mixed')" json:"emotion"`
	Note    *string `gorm:"type:text" json:"note"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP" json:"created_at"`

	// Mood <-> User
	User *User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (Mood) TableName() string { return "moods" }
