package html

import "testing"

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text unchanged",
			input:    "Senior Go developer, remote",
			expected: "Senior Go developer, remote",
		},
		{
			name:     "removes tags",
			input:    "<p>We are hiring a <strong>backend engineer</strong></p>",
			expected: "We are hiring a backend engineer",
		},
		{
			name:     "removes script content",
			input:    "Apply now<script>track()</script> today",
			expected: "Apply now today",
		},
		{
			name:     "removes style content",
			input:    "<style>.a{color:red}</style>Salary: competitive",
			expected: "Salary: competitive",
		},
		{
			name:     "decodes entities",
			input:    "Engineering &amp; Operations &ndash; remote",
			expected: "Engineering & Operations – remote",
		},
		{
			name:     "collapses whitespace and newlines",
			input:    "<div>Line one</div>\n\n  <div>Line   two</div>",
			expected: "Line one Line two",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripHTML(tt.input)
			if got != tt.expected {
				t.Errorf("StripHTML(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate below limit = %q, want unchanged", got)
	}

	got := Truncate("a very long description of a job", 10)
	if got != "a very lon..." {
		t.Errorf("Truncate = %q, want %q", got, "a very lon...")
	}
}

func TestCollapseWhitespace(t *testing.T) {
	if got := CollapseWhitespace("  a \t b\n c  "); got != "a b c" {
		t.Errorf("CollapseWhitespace = %q, want %q", got, "a b c")
	}
}
