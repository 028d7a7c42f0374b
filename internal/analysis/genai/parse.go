package genai

import (
	"encoding/json"
	"errors"
	"strings"
)

var errEmptyReply = errors.New("empty model reply")

// decodeJSON strips markdown code fences from a model reply and decodes
// the remainder into payload.
func decodeJSON(raw string, payload any) error {
	text := stripFences(raw)
	if text == "" {
		return errEmptyReply
	}
	return json.Unmarshal([]byte(text), payload)
}

// stripFences removes a leading ```json (or bare ```) fence and the
// trailing ``` that models habitually wrap JSON replies in.
func stripFences(raw string) string {
	text := strings.TrimSpace(raw)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
