package cleanup_test

import (
	"testing"

	"script-scrub/internal/cleanup"
)

func TestRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rule     string
		name     string
		input    string
		expected string
	}{
		// Shared
		{cleanup.CollapseSpaces, "runs of spaces collapse", "a    b  c", "a b c"},
		{cleanup.CollapseSpaces, "single spaces untouched", "a b c", "a b c"},
		{cleanup.CollapseSpaces, "tabs untouched", "a\t\tb", "a\t\tb"},

		// Conservative
		{cleanup.DropSpacedDash, "trailing separator removed", "Rapporter -   ", "Rapporter"},
		{cleanup.DropSpacedDash, "separator between words is removed", "a - b", "ab"},
		{cleanup.DropSpacedDash, "tight dash untouched", "x-y", "x-y"},
		{cleanup.DropDanglingDash, "leading dash removed", "- Ansatt", "Ansatt"},
		{cleanup.DropDanglingDash, "hyphenated word untouched", "e-post", "e-post"},

		// Aggressive
		{cleanup.SqueezeDash, "spaced dash becomes one space", "a  -  b", "a b"},
		{cleanup.SqueezeDash, "newlines count as spacing", "a\n-\nb", "a b"},
		{cleanup.SqueezeDash, "arrow untouched", "x -> y", "x -> y"},
		{cleanup.DropDashSpace, "dash before whitespace removed", "- b", "b"},
		{cleanup.DropDashSpace, "dash before tab removed", "a -\tb", "a b"},
		{cleanup.DropSpaceDash, "whitespace before dash removed", "a -b", "ab"},
		{cleanup.DropSpaceDash, "also hits a spaced arrow", "a ->b", "a>b"},
		{cleanup.DropEmptyElements, "whitespace-only element removed", "<span>   </span>", ""},
		{cleanup.DropEmptyElements, "empty element removed", "x<b></b>y", "xy"},
		{cleanup.DropEmptyElements, "element with attributes across lines", "<div className=\"p-4\">\n  </div>", ""},
		{cleanup.DropEmptyElements, "non-empty element untouched", "<tag>non-empty</tag>", "<tag>non-empty</tag>"},
		{cleanup.DropEmptyElements, "no-break space counts as empty", "<p>\u00a0</p>", ""},

		// Unicode whitespace
		{cleanup.SqueezeDash, "no-break spaces around dash", "a\u00a0-\u00a0b", "a b"},
		{cleanup.SqueezeDash, "vertical tab and ideographic space", "a\v-\u3000b", "a b"},
		{cleanup.DropDashSpace, "dash before narrow no-break space", "a-\u202fb", "ab"},
		{cleanup.DropSpaceDash, "line separator before dash", "a\u2028-b", "ab"},
		{cleanup.SqueezeDash, "zero-width space is not whitespace", "a\u200b-\u200bb", "a\u200b-\u200bb"},
	}

	for _, tt := range tests {
		t.Run(tt.rule+"/"+tt.name, func(t *testing.T) {
			t.Parallel()

			rule, ok := cleanup.Lookup(tt.rule)
			if !ok {
				t.Fatalf("Lookup(%q) found nothing", tt.rule)
			}
			if got := rule.Apply(tt.input); got != tt.expected {
				t.Errorf("%s(%q) = %q, want %q", tt.rule, tt.input, got, tt.expected)
			}
		})
	}
}

func TestRuleOrder(t *testing.T) {
	t.Parallel()

	names := func(rules []cleanup.Rule) []string {
		out := make([]string, len(rules))
		for i, r := range rules {
			out[i] = r.Name
		}
		return out
	}

	want := map[string][]string{
		"conservative": {cleanup.CollapseSpaces, cleanup.DropSpacedDash, cleanup.DropDanglingDash},
		"aggressive": {
			cleanup.SqueezeDash, cleanup.DropDashSpace, cleanup.DropSpaceDash,
			cleanup.CollapseSpaces, cleanup.DropEmptyElements, cleanup.TidyLines,
		},
	}
	got := map[string][]string{
		"conservative": names(cleanup.ConservativeRules()),
		"aggressive":   names(cleanup.AggressiveRules()),
	}

	for variant, w := range want {
		g := got[variant]
		if len(g) != len(w) {
			t.Fatalf("%s rules = %v, want %v", variant, g, w)
		}
		for i := range w {
			if g[i] != w[i] {
				t.Errorf("%s rule %d = %s, want %s", variant, i, g[i], w[i])
			}
		}
	}
}

func TestRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		rules    []cleanup.Rule
		input    string
		expected string
	}{
		{
			name:     "conservative removes orphaned separator",
			rules:    cleanup.ConservativeRules(),
			input:    "<h2>  - Rapporter</h2>",
			expected: "<h2>Rapporter</h2>",
		},
		{
			name:     "conservative keeps empty elements",
			rules:    cleanup.ConservativeRules(),
			input:    "<span> </span>",
			expected: "<span> </span>",
		},
		{
			name:     "aggressive squeezes separator and drops emptied element",
			rules:    cleanup.AggressiveRules(),
			input:    "<h2> - Rapporter</h2>\n<span> </span>",
			expected: "<h2> Rapporter</h2>\n",
		},
		{
			name:     "aggressive on clean content is a no-op",
			rules:    cleanup.AggressiveRules(),
			input:    "const x = a + b;\n<p>Hei</p>\n",
			expected: "const x = a + b;\n<p>Hei</p>\n",
		},
		{
			name:     "empty input",
			rules:    cleanup.AggressiveRules(),
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := cleanup.Run(tt.rules, tt.input); got != tt.expected {
				t.Errorf("Run() = %q, want %q", got, tt.expected)
			}
		})
	}
}
