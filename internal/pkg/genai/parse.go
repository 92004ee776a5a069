package genai

import (
	"regexp"
	"strings"

	"github.com/bytedance/sonic"
)

// jsonBlockRe captures the first bracket-delimited object or array
// substring so a JSON payload can be recovered from surrounding prose.
var jsonBlockRe = regexp.MustCompile(`(?s)\{.*\}|\[.*\]`)

// parseJSON tries the raw text directly, then the first bracketed
// substring. Returns false when neither parses.
func parseJSON(text string, v interface{}) bool {
	trimmed := strings.TrimSpace(text)
	if sonic.Unmarshal([]byte(trimmed), v) == nil {
		return true
	}
	if block := jsonBlockRe.FindString(text); block != "" {
		return sonic.Unmarshal([]byte(block), v) == nil
	}
	return false
}

// parseObject parses text into a JSON object and checks that every
// required key holds a string value.
func parseObject(text string, required ...string) (map[string]string, bool) {
	var raw map[string]interface{}
	if !parseJSON(text, &raw) {
		return nil, false
	}
	out := make(map[string]string, len(required))
	for _, key := range required {
		s, ok := raw[key].(string)
		if !ok {
			return nil, false
		}
		out[key] = s
	}
	return out, true
}

// parseContentList parses text into a JSON array of objects and keeps,
// up to maxItems, every element carrying a string "content" field with
// each value capped at maxChars. Returns false when the container is
// not an array or no usable element survives.
func parseContentList(text string, maxItems, maxChars int) ([]StepDraft, bool) {
	var raw []interface{}
	if !parseJSON(text, &raw) {
		return nil, false
	}
	if len(raw) > maxItems {
		raw = raw[:maxItems]
	}
	steps := make([]StepDraft, 0, len(raw))
	for _, item := range raw {
		obj, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		content, ok := obj["content"].(string)
		if !ok {
			continue
		}
		steps = append(steps, StepDraft{Content: truncate(content, maxChars)})
	}
	if len(steps) == 0 {
		return nil, false
	}
	return steps, true
}

// truncate caps s at max characters (runes, not bytes).
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
