package worker

import (
	"context"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gentle-app/gentle-api/internal/pkg/genai"
	"github.com/gentle-app/gentle-api/internal/pkg/types"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// dedupTTL bounds how long a dispatched celebration id is remembered.
const dedupTTL = 24 * time.Hour

// MessageGenerator produces the celebration text; *genai.Generator
// satisfies it.
type MessageGenerator interface {
	CelebrationMessage(ctx context.Context, taskTitle string, completionCount int) genai.CelebrationMessage
}

// Celebrations handles celebration jobs from the queue. Delivery is
// at-least-once, so each celebration id is claimed in Redis before
// dispatch; a redelivered job that was already dispatched is dropped.
type Celebrations struct {
	rdb *redis.Client
	gen MessageGenerator
	log *zap.Logger
}

func NewCelebrations(rdb *redis.Client, gen MessageGenerator, log *zap.Logger) *Celebrations {
	return &Celebrations{rdb: rdb, gen: gen, log: log}
}

// Handle processes one queue delivery. Errors are returned only for
// malformed payloads; dispatch itself is a logged placeholder and never
// fails the delivery.
func (w *Celebrations) Handle(ctx context.Context, body []byte) error {
	var job types.CelebrationJob
	if err := sonic.Unmarshal(body, &job); err != nil {
		return err
	}

	claimed, err := w.rdb.SetNX(ctx, "celebration:dispatched:"+job.CelebrationID.String(), 1, dedupTTL).Result()
	if err != nil {
		// Redis being down should not drop the celebration; dispatch
		// anyway and accept a possible duplicate.
		w.log.Sugar().Warnw("celebration dedup check failed", "err", err)
	} else if !claimed {
		w.log.Sugar().Debugw("celebration already dispatched",
			"celebration_id", job.CelebrationID)
		return nil
	}

	msg := w.gen.CelebrationMessage(ctx, job.TaskTitle, 0)

	// Placeholder notification channel: log only. Email or push delivery
	// would hang off here.
	w.log.Sugar().Infow("celebration dispatched",
		"celebration_id", job.CelebrationID,
		"user_id", job.UserID,
		"step_id", job.StepID,
		"kind", job.Kind,
		"message", msg.Message,
		"emoji", msg.Emoji,
	)
	return nil
}
