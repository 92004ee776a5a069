package genai

import "context"

// CelebrationMessage is the acknowledgment shown when something
// completes.
type CelebrationMessage struct {
	Message string `json:"message"`
	Emoji   string `json:"emoji"`
}

const celebrationMessageMax = 100

// CelebrationMessage builds a short celebration for a completed task or
// step. completionCount rotates the offline fallback so repeated
// completions do not read identically.
func (g *Generator) CelebrationMessage(ctx context.Context, taskTitle string, completionCount int) CelebrationMessage {
	client := g.client()
	if client == nil {
		fallbacks := []CelebrationMessage{
			{Message: "You did it! Completing '" + truncate(taskTitle, 30) + "' is a real accomplishment.", Emoji: "🎉"},
			{Message: "Amazing work on '" + truncate(taskTitle, 30) + "'! Every step forward matters.", Emoji: "✨"},
			{Message: "Celebrate this win! You tackled '" + truncate(taskTitle, 30) + "' like a champion.", Emoji: "🌟"},
			{Message: "Way to go! '" + truncate(taskTitle, 30) + "' is done and you should be proud.", Emoji: "💪"},
		}
		idx := completionCount % len(fallbacks)
		if idx < 0 {
			idx += len(fallbacks)
		}
		return fallbacks[idx]
	}

	systemPrompt := `You are a warm, encouraging celebration companion. Create uplifting messages that make people feel genuinely proud of their progress.

Return ONLY a JSON object with exactly two fields:
- "message": A personalized, encouraging celebration message (max 100 characters)
- "emoji": A single celebratory emoji that matches the tone

Make messages:
- Warm and genuinely celebratory
- Specific to their accomplishment
- Encouraging for future progress
- Authentic, not over-the-top`

	userPrompt := "Create a celebration message for someone who just completed: " + taskTitle

	for attempt := 0; attempt < 2; attempt++ {
		system := systemPrompt
		if attempt == 1 {
			system += retryInstruction
		}
		raw, err := client.ChatCompletion(ctx, g.cfg.Model, system, userPrompt, 150)
		if err != nil {
			g.logAPIError(err)
			break
		}
		g.logUse()
		if fields, ok := parseObject(raw, "message", "emoji"); ok {
			return CelebrationMessage{
				Message: truncate(fields["message"], celebrationMessageMax),
				Emoji:   fields["emoji"],
			}
		}
	}

	return CelebrationMessage{
		Message: "Fantastic work completing '" + truncate(taskTitle, 40) + "'! You should be proud.",
		Emoji:   "🎉",
	}
}
