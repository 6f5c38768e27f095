// Package scrub removes Arabic-script text from file contents in three stages:
// the phrase dictionary, the residual stripper and the cleanup rules.
package scrub

import (
	"fmt"
	"regexp"
	"strings"

	"script-scrub/internal/cleanup"
	"script-scrub/internal/phrases"
	"script-scrub/internal/textutil"
)

// Variant selects how much cleanup runs after script removal.
type Variant string

const (
	// Conservative collapses spaces and orphaned separators only.
	Conservative Variant = "conservative"
	// Aggressive also drops emptied elements, sweeps every line and is
	// followed by a verification pass over the processed files.
	Aggressive Variant = "aggressive"
)

// ParseVariant parses a variant name.
func ParseVariant(s string) (Variant, error) {
	switch v := Variant(strings.ToLower(strings.TrimSpace(s))); v {
	case Conservative, Aggressive:
		return v, nil
	default:
		return "", fmt.Errorf("unknown variant %q (want %s or %s)", s, Conservative, Aggressive)
	}
}

// scriptRun matches a maximal run of Arabic block characters. It must agree
// with textutil.ArabicBlock.
var scriptRun = regexp.MustCompile(`[\x{0600}-\x{06FF}]+`)

// Strip deletes every run of Arabic block characters and returns the runs it removed.
func Strip(content string) (string, []string) {
	fragments := scriptRun.FindAllString(content, -1)
	if len(fragments) == 0 {
		return content, nil
	}
	return textutil.RemoveArabic(content), fragments
}

// Result is the outcome of transforming one piece of content.
type Result struct {
	Content string
	// Hits are the dictionary entries that matched.
	Hits []phrases.Hit
	// Fragments are the script runs the dictionary did not cover.
	Fragments []string
}

// Pipeline runs the dictionary, the stripper and a variant's cleanup rules.
type Pipeline struct {
	variant Variant
	phrases *phrases.Map
	rules   []cleanup.Rule
}

// New creates a pipeline for the given variant.
func New(variant Variant, m *phrases.Map) *Pipeline {
	rules := cleanup.ConservativeRules()
	if variant == Aggressive {
		rules = cleanup.AggressiveRules()
	}
	return &Pipeline{
		variant: variant,
		phrases: m,
		rules:   rules,
	}
}

// Variant returns the pipeline's variant.
func (p *Pipeline) Variant() Variant { return p.variant }

// Transform rewrites content. It never fails; stages with nothing to match are no-ops.
func (p *Pipeline) Transform(content string) Result {
	var res Result
	content, res.Hits = p.phrases.Replace(content)
	content, res.Fragments = Strip(content)
	res.Content = cleanup.Run(p.rules, content)
	return res
}
