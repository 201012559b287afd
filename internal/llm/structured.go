package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// NormalizeRule rewrites raw model text one step closer to decodable JSON.
type NormalizeRule func(string) string

// DefaultRules trims the response and removes markdown code fences.
var DefaultRules = []NormalizeRule{TrimSpace, StripCodeFences}

// LenientRules adds comment and trailing-comma removal to DefaultRules.
var LenientRules = []NormalizeRule{TrimSpace, StripCodeFences, StripJSONComments, StripTrailingCommas}

// Normalize applies rules in order to raw. With no rules it applies
// DefaultRules.
func Normalize(raw string, rules ...NormalizeRule) string {
	if len(rules) == 0 {
		rules = DefaultRules
	}
	out := raw
	for _, rule := range rules {
		out = rule(out)
	}
	return out
}

// TrimSpace removes leading and trailing whitespace.
func TrimSpace(s string) string {
	return strings.TrimSpace(s)
}

const (
	fenceMarker     = "```"
	jsonFenceMarker = "```json"
)

// StripCodeFences removes markdown fence markers when the text opens with
// one. A leading "```json" removes every "```json" and "```"; a bare leading
// "```" removes every "```". Text that does not open with a fence is
// returned unchanged.
func StripCodeFences(s string) string {
	switch {
	case strings.HasPrefix(s, jsonFenceMarker):
		s = strings.ReplaceAll(s, jsonFenceMarker, "")
		return strings.ReplaceAll(s, fenceMarker, "")
	case strings.HasPrefix(s, fenceMarker):
		return strings.ReplaceAll(s, fenceMarker, "")
	default:
		return s
	}
}

// DecodeArray decodes candidate as a JSON array of T. The top level must be
// an array; objects, scalars and null fail with ErrNotArray.
func DecodeArray[T any](candidate string) ([]T, error) {
	trimmed := strings.TrimSpace(candidate)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: empty response", ErrInvalidOutput)
	}
	if trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: %w: starts with %q", ErrInvalidOutput, ErrNotArray, preview(trimmed))
	}

	result := []T{}
	if err := json.Unmarshal([]byte(trimmed), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	return result, nil
}

func preview(s string) string {
	const max = 24
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

// StripJSONComments removes C-style line comments (// ...) and block
// comments outside of JSON string values. LLMs sometimes emit comments in
// JSON output despite instructions not to.
func StripJSONComments(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]

		if escaped {
			b.WriteByte(c)
			escaped = false
			continue
		}

		if c == '\\' && inString {
			b.WriteByte(c)
			escaped = true
			continue
		}

		if c == '"' {
			b.WriteByte(c)
			inString = !inString
			continue
		}

		if inString {
			b.WriteByte(c)
			continue
		}

		// Line comment: skip to end of line
		if c == '/' && i+1 < len(s) && s[i+1] == '/' {
			for i+1 < len(s) && s[i+1] != '\n' {
				i++
			}
			continue
		}

		// Block comment: skip to closing */
		if c == '/' && i+1 < len(s) && s[i+1] == '*' {
			i += 2
			for i+1 < len(s) {
				if s[i] == '*' && s[i+1] == '/' {
					i++
					break
				}
				i++
			}
			continue
		}

		b.WriteByte(c)
	}

	return b.String()
}

// StripTrailingCommas drops a comma that is followed only by whitespace and
// a closing bracket or brace, outside of string values.
func StripTrailingCommas(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]

		if escaped {
			b.WriteByte(c)
			escaped = false
			continue
		}

		if c == '\\' && inString {
			b.WriteByte(c)
			escaped = true
			continue
		}

		if c == '"' {
			inString = !inString
		}

		if !inString && c == ',' {
			if next := nextNonSpace(s, i+1); next == ']' || next == '}' {
				continue
			}
		}

		b.WriteByte(c)
	}

	return b.String()
}

func nextNonSpace(s string, i int) byte {
	for ; i < len(s); i++ {
		if s[i] != ' ' && s[i] != '\n' && s[i] != '\r' && s[i] != '\t' {
			return s[i]
		}
	}
	return 0
}
