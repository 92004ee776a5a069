package service

import (
	"context"

	"github.com/gentle-app/gentle-api/internal/pkg/genai"
)

// Generator is the slice of the AI normalization layer the services
// consume. *genai.Generator satisfies it; tests substitute mocks. Every
// method is total and never returns an error.
type Generator interface {
	TinyStepFromMood(ctx context.Context, energy int, emotion string, note string) genai.TinyStep
	BreakdownTask(ctx context.Context, title string, energy *int, emotion string) []genai.StepDraft
	RebalanceStep(ctx context.Context, stepContent string) []genai.StepDraft
}

// Publisher pushes one JSON payload to the celebration queue.
type Publisher interface {
	PublishJSON(ctx context.Context, v interface{}) error
}
