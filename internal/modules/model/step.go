package model

import (
	"time"

	"github.com/google/uuid"
)

// Step states. The transition is one-way: pending -> done, never back.
const (
	StepStatePending = "pending"
	StepStateDone    = "done"
)

// Step is one ordered piece of a task. Order starts at 1 for the first
// breakdown batch; rebalance batches continue after the task's current
// maximum.
type Step struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	TaskID uuid.UUID `gorm:"type:uuid;not null;index;index:idx_steps_task_order,priority:1" json:"task_id"`

	Content string `gorm:"type:text;not null" json:"content"`
	Order   int    `gorm:"column:step_order;not null;index:idx_steps_task_order,priority:2" json:"order"`
	State   string `gorm:"type:text;not null;default:'pending';check:state IN ('pending','done')" json:"state"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP" json:"created_at"`

	// Step <-> Task
	Task *Task `gorm:"foreignKey:TaskID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`

	// Step <-> Celebration: celebrations outlive the step, the
	// reference is nulled instead of cascaded.
	Celebrations []Celebration `gorm:"constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"-"`
}

func (Step) TableName() string { return "steps" }
