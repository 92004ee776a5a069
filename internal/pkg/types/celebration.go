package types

import "github.com/google/uuid"

// CelebrationJob is the payload published to the celebration queue when
// a step completes. The worker consumes it; the publisher never waits
// for the outcome.
type CelebrationJob struct {
	CelebrationID uuid.UUID  `json:"celebration_id"`
	UserID        uuid.UUID  `json:"user_id"`
	StepID        *uuid.UUID `json:"step_id,omitempty"`
	TaskTitle     string     `json:"task_title"`
	Kind          string     `json:"kind"`
}
