package interview

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSON finds the first balanced {...} span in text and unmarshals it into v. Braces inside
// JSON string literals are ignored. Any failure wraps ErrGenerationFailed.
func ExtractJSON(text string, v any) error {
	span, ok := firstObject(text)
	if !ok {
		return fmt.Errorf("%w: no json object in reply", ErrGenerationFailed)
	}
	if err := json.Unmarshal([]byte(span), v); err != nil {
		return fmt.Errorf("%w: decode reply: %v", ErrGenerationFailed, err)
	}
	return nil
}

func firstObject(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		ch := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}
	return "", false
}
