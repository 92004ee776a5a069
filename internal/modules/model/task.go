package model

import (
	"time"

	"github.com/google/uuid"
)

// Task states. archived is terminal and reserved for an external
// trigger; no flow in this service produces it.
const (
	TaskStatePending  = "pending"
	TaskStateActive   = "active"
	TaskStateDone     = "done"
	TaskStateArchived = "archived"
)

type Task struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index;index:idx_tasks_user_created,priority:1" json:"user_id"`

	Title string `gorm:"type:text;not null" json:"title"`
	State string `gorm:"type:text;not null;default:'pending';check:state IN ('pending','active','done','archived')" json:"state"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP;index:idx_tasks_user_created,priority:2,sort:desc" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Task <-> User
	User *User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`

	// Task <-> Step
	Steps []Step `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"steps,omitempty"`
}

func (Task) TableName() string { return "tasks" }
