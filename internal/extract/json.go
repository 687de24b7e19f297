package extract

import (
	"fmt"
	"regexp"
	"strings"
)

var codeFencePattern = regexp.MustCompile("```(?:json)?\\s*")

// ScrapeJSON recovers a JSON object from LLM output that may be wrapped in
// markdown code fences or surrounded by prose. It strips fence markers and
// returns the first balanced {...} span, tracking string literals so braces
// inside quoted values don't skew the depth count.
func ScrapeJSON(text string) (string, error) {
	text = codeFencePattern.ReplaceAllString(text, "")

	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", fmt.Errorf("no JSON object found in response")
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], nil
			}
		}
	}

	return "", fmt.Errorf("unbalanced JSON object in response")
}
