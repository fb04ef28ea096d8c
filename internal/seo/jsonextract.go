package seo

// extractJSONObject returns the first top-level {...} object found in text.
// Model responses often wrap the JSON in prose or markdown fences, so the
// scanner walks the text brace by brace, tracking string literals and
// escapes, and stops at the matching close of the first open brace. The
// second return value is false when no balanced object exists.
func extractJSONObject(text string) (string, bool) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i, r := range text {
		if start >= 0 && inString {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			}
			continue
		}

		switch r {
		case '{':
			if start < 0 {
				start = i
			}
			depth++
		case '}':
			if start < 0 {
				continue
			}
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		case '"':
			if start >= 0 {
				inString = true
			}
		}
	}

	return "", false
}
