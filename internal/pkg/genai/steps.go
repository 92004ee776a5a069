package genai

import (
	"context"
	"fmt"
	"strings"
)

// TinyStep is one suggested action sized to the user's mood.
type TinyStep struct {
	Content   string `json:"content"`
	Rationale string `json:"rationale"`
}

// StepDraft is one generated step content, not yet persisted.
type StepDraft struct {
	Content string `json:"content"`
}

const (
	tinyStepContentMax   = 80
	tinyStepRationaleMax = 120

	breakdownMaxSteps = 12
	breakdownCharMax  = 150

	rebalanceMaxSteps = 4
	rebalanceCharMax  = 100
)

// distressEmotion reports whether the emotion pulls the size guidance
// down regardless of energy.
func distressEmotion(emotion string) bool {
	switch strings.ToLower(emotion) {
	case "tired", "anxious", "low":
		return true
	}
	return false
}

// sizeGuidance maps the five energy tiers to their guidance phrases.
// The boundary values and phrase text are an external contract shared
// with the clients; do not reword.
func sizeGuidance(energy int, emotion string) string {
	switch {
	case energy <= 1 || distressEmotion(emotion):
		return "extremely tiny and gentle"
	case energy == 2:
		return "small and manageable"
	case energy == 3:
		return "achievable and moderately sized"
	case energy == 4:
		return "substantial but still manageable"
	default:
		return "ambitious and energizing"
	}
}

// TinyStepFromMood suggests one action for the given mood check-in.
func (g *Generator) TinyStepFromMood(ctx context.Context, energy int, emotion string, note string) TinyStep {
	client := g.client()
	if client == nil {
		return TinyStep{
			Content:   "Take three deep breaths and notice how you're feeling right now",
			Rationale: "Starting with breathing helps ground you in the present moment",
		}
	}

	moodContext := fmt.Sprintf("Energy level: %d/4, Emotion: %s", energy, emotion)
	if note != "" {
		moodContext += ", Note: " + note
	}

	systemPrompt := fmt.Sprintf(`You are a gentle, empathetic productivity companion. Your role is to suggest %s steps that honor the user's current emotional state. Never judge or shame. Always respond with understanding and compassion.

Return ONLY a JSON object with exactly two fields:
- "content": A single, tiny action the user can take right now (max 80 characters)
- "rationale": A brief, kind explanation of why this step is helpful (max 120 characters)

Keep suggestions:
- Emotionally appropriate for their current state
- Shame-free and encouraging
- Focused on self-care when energy is low`, sizeGuidance(energy, emotion))

	userPrompt := "Based on this mood check-in, suggest one tiny step: " + moodContext

	for attempt := 0; attempt < 2; attempt++ {
		system := systemPrompt
		if attempt == 1 {
			system += retryInstruction
		}
		raw, err := client.ChatCompletion(ctx, g.cfg.Model, system, userPrompt, 200)
		if err != nil {
			g.logAPIError(err)
			break
		}
		g.logUse()
		if fields, ok := parseObject(raw, "content", "rationale"); ok {
			return TinyStep{
				Content:   truncate(fields["content"], tinyStepContentMax),
				Rationale: truncate(fields["rationale"], tinyStepRationaleMax),
			}
		}
	}

	return TinyStep{
		Content:   "Take a moment to notice one thing you appreciate about yourself",
		Rationale: "Self-appreciation helps shift perspective gently",
	}
}

// BreakdownTask decomposes a task title into 4-12 ordered step drafts.
// energy is optional; pass nil when no mood context is available.
func (g *Generator) BreakdownTask(ctx context.Context, title string, energy *int, emotion string) []StepDraft {
	client := g.client()
	if client == nil {
		return []StepDraft{
			{Content: "Start by gathering what you need for: " + truncate(title, 40)},
			{Content: "Take the first small action"},
			{Content: "Continue with the next piece"},
			{Content: "Complete the final touches"},
		}
	}

	moodContext := ""
	stepSize := "small, achievable"
	if energy != nil && emotion != "" {
		moodContext = fmt.Sprintf("\n\nUser's current state: Energy level %d/5, feeling %s.", *energy, emotion)
		switch {
		case *energy <= 1 || distressEmotion(emotion):
			stepSize = "very small and gentle"
			moodContext += " Please make steps extremely small due to low energy/difficult emotions."
		case *energy == 2:
			stepSize = "small and manageable"
			moodContext += " Please tailor steps to be manageable for moderate energy."
		case *energy == 3:
			stepSize = "achievable and moderately sized"
			moodContext += " User has decent energy, steps can be moderate."
		case *energy == 4:
			stepSize = "substantial but still manageable"
			moodContext += " User has good energy, steps can be more substantial."
		default:
			stepSize = "ambitious and energizing"
			moodContext += " User has high energy, steps can be ambitious and challenging."
		}
	}

	systemPrompt := fmt.Sprintf(`You are a gentle productivity companion. Break down tasks into %s steps that reduce overwhelm. Be encouraging and practical.%s

Return ONLY a JSON array of 4-12 step objects, each with a "content" field containing a clear, actionable step (max 150 characters each).

Make steps:
- Sequential and logical, covering the complete task from start to finish
- Emotionally appropriate for the user's current state
- Clear, specific, and actionable
- Encouraging in tone
- Comprehensive enough to complete the entire task
- Include preparation, execution, and completion phases where appropriate`, stepSize, moodContext)

	userPrompt := "Break down this task into steps: " + title

	for attempt := 0; attempt < 2; attempt++ {
		system := systemPrompt
		if attempt == 1 {
			system += retryInstruction
		}
		raw, err := client.ChatCompletion(ctx, g.cfg.Model, system, userPrompt, 800)
		if err != nil {
			g.logAPIError(err)
			break
		}
		g.logUse()
		if steps, ok := parseContentList(raw, breakdownMaxSteps, breakdownCharMax); ok {
			return steps
		}
	}

	return []StepDraft{
		{Content: "Plan your approach for: " + truncate(title, 50)},
		{Content: "Gather all necessary materials and resources"},
		{Content: "Set up your workspace and environment"},
		{Content: "Start with the first manageable piece"},
		{Content: "Work through each section systematically"},
		{Content: "Review progress and adjust if needed"},
		{Content: "Complete the final steps"},
		{Content: "Review and celebrate your completion"},
	}
}

// RebalanceStep splits one oversized step into 2-4 smaller drafts.
func (g *Generator) RebalanceStep(ctx context.Context, stepContent string) []StepDraft {
	client := g.client()
	if client == nil {
		return []StepDraft{
			{Content: "Begin with the easiest part of: " + truncate(stepContent, 30)},
			{Content: "Take the next small piece"},
			{Content: "Finish the remaining part"},
		}
	}

	systemPrompt := `You are a compassionate productivity guide. When someone feels a step is too big, help them break it into smaller, less overwhelming pieces.

Return ONLY a JSON array of 2-4 smaller step objects, each with a "content" field (max 100 characters each).

Make the new steps:
- Much smaller than the original
- Easy to start with
- Maintaining the same end goal
- Encouraging and gentle`

	userPrompt := "This step feels too big, help me break it down: " + stepContent

	for attempt := 0; attempt < 2; attempt++ {
		system := systemPrompt
		if attempt == 1 {
			system += retryInstruction
		}
		raw, err := client.ChatCompletion(ctx, g.cfg.Model, system, userPrompt, 300)
		if err != nil {
			g.logAPIError(err)
			break
		}
		g.logUse()
		if steps, ok := parseContentList(raw, rebalanceMaxSteps, rebalanceCharMax); ok {
			return steps
		}
	}

	return []StepDraft{
		{Content: "Start with just 5 minutes on: " + truncate(stepContent, 40)},
		{Content: "Continue for another small bit"},
		{Content: "Complete the final piece"},
	}
}
