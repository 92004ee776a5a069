package genai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseObject(t *testing.T) {
	fields, ok := parseObject(`{"content":"breathe","rationale":"it helps"}`, "content", "rationale")
	require.True(t, ok)
	assert.Equal(t, "breathe", fields["content"])
	assert.Equal(t, "it helps", fields["rationale"])
}

func TestParseObjectExtractsFromProse(t *testing.T) {
	text := "Sure! Here is your step:\n{\"content\":\"open the file\",\"rationale\":\"small start\"}\nHope that helps."
	fields, ok := parseObject(text, "content", "rationale")
	require.True(t, ok)
	assert.Equal(t, "open the file", fields["content"])
}

func TestParseObjectMissingKey(t *testing.T) {
	_, ok := parseObject(`{"content":"breathe"}`, "content", "rationale")
	assert.False(t, ok)
}

func TestParseObjectNonStringValue(t *testing.T) {
	_, ok := parseObject(`{"content":42,"rationale":"x"}`, "content", "rationale")
	assert.False(t, ok)
}

func TestParseObjectGarbage(t *testing.T) {
	_, ok := parseObject("no json here", "content")
	assert.False(t, ok)
}

func TestParseContentList(t *testing.T) {
	steps, ok := parseContentList(`[{"content":"a"},{"content":"b"}]`, 12, 150)
	require.True(t, ok)
	require.Len(t, steps, 2)
	assert.Equal(t, "a", steps[0].Content)
	assert.Equal(t, "b", steps[1].Content)
}

func TestParseContentListCapsItemsAndLength(t *testing.T) {
	steps, ok := parseContentList(`[{"content":"aaaaaaaaaaaaaaaaaaaa"},{"content":"b"},{"content":"c"}]`, 2, 5)
	require.True(t, ok)
	require.Len(t, steps, 2)
	assert.Equal(t, "aaaaa", steps[0].Content)
}

func TestParseContentListSkipsMalformedElements(t *testing.T) {
	steps, ok := parseContentList(`[{"content":"keep"},{"oops":true},"plain",{"content":7}]`, 12, 150)
	require.True(t, ok)
	require.Len(t, steps, 1)
	assert.Equal(t, "keep", steps[0].Content)
}

func TestParseContentListNoUsableElements(t *testing.T) {
	_, ok := parseContentList(`[{"oops":true}]`, 12, 150)
	assert.False(t, ok)

	_, ok = parseContentList(`{"content":"not an array"}`, 12, 150)
	assert.False(t, ok)
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "héll", truncate("héllo", 4))
	assert.Equal(t, "short", truncate("short", 10))
}
