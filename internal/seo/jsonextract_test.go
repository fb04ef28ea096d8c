package seo

import "testing"

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		found bool
	}{
		{
			name:  "BareObject",
			input: `{"a":1}`,
			want:  `{"a":1}`,
			found: true,
		},
		{
			name:  "SurroundedByProse",
			input: "Sure! Here is the JSON you asked for:\n{\"optimizedTitle\":\"x\"}\nLet me know if you need anything else.",
			want:  `{"optimizedTitle":"x"}`,
			found: true,
		},
		{
			name:  "MarkdownFence",
			input: "```json\n{\"a\": [1, 2]}\n```",
			want:  `{"a": [1, 2]}`,
			found: true,
		},
		{
			name:  "NestedBraces",
			input: `prefix {"a":{"b":{"c":1}},"d":2} suffix`,
			want:  `{"a":{"b":{"c":1}},"d":2}`,
			found: true,
		},
		{
			name:  "BracesInsideStrings",
			input: `{"text":"open { and close } inside"}`,
			want:  `{"text":"open { and close } inside"}`,
			found: true,
		},
		{
			name:  "EscapedQuoteInString",
			input: `{"text":"a \"quoted\" {brace}"} trailing`,
			want:  `{"text":"a \"quoted\" {brace}"}`,
			found: true,
		},
		{
			name:  "FirstObjectOnly",
			input: `{"first":1} {"second":2}`,
			want:  `{"first":1}`,
			found: true,
		},
		{
			name:  "NoObject",
			input: "no json here at all",
			found: false,
		},
		{
			name:  "UnbalancedOpen",
			input: `{"a":1`,
			found: false,
		},
		{
			name:  "Empty",
			input: "",
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := extractJSONObject(tt.input)
			if found != tt.found {
				t.Fatalf("extractJSONObject(%q) found = %v, want %v", tt.input, found, tt.found)
			}
			if got != tt.want {
				t.Errorf("extractJSONObject(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
