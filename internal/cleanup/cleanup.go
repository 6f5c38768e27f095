// Package cleanup repairs the whitespace and punctuation left behind after
// text is deleted from a file. Rules are plain text rewrites with no
// knowledge of the file's syntax, so a rule can also hit legitimate content
// that happens to match, such as an arrow or an empty element.
package cleanup

import (
	"regexp"
	"strings"
)

// Rule is a single named rewrite.
type Rule struct {
	Name  string
	Apply func(string) string
}

// Run applies rules in order, each to the output of the previous one.
func Run(rules []Rule, s string) string {
	for _, r := range rules {
		s = r.Apply(s)
	}
	return s
}

// regexRule replaces every match of pattern with repl.
func regexRule(name, pattern, repl string) Rule {
	re := regexp.MustCompile(pattern)
	return Rule{
		Name: name,
		Apply: func(s string) string {
			return re.ReplaceAllLiteralString(s, repl)
		},
	}
}

// Rule names.
const (
	CollapseSpaces    = "collapse-spaces"
	DropSpacedDash    = "drop-spaced-dash"
	DropDanglingDash  = "drop-dangling-dash"
	SqueezeDash       = "squeeze-dash"
	DropDashSpace     = "drop-dash-space"
	DropSpaceDash     = "drop-space-dash"
	DropEmptyElements = "drop-empty-elements"
	TidyLines         = "tidy-lines"
)

// space matches any Unicode whitespace, including the vertical tab, the
// information separators and NEL that RE2's \s leaves out.
const space = `[\s\v\x{1C}-\x{1F}\x{85}\p{Z}]`

var (
	collapseSpaces    = regexRule(CollapseSpaces, ` {2,}`, " ")
	dropSpacedDash    = regexRule(DropSpacedDash, ` - +`, "")
	dropDanglingDash  = regexRule(DropDanglingDash, `- +`, "")
	squeezeDash       = regexRule(SqueezeDash, space+`+-`+space+`+`, " ")
	dropDashSpace     = regexRule(DropDashSpace, `-`+space+`+`, "")
	dropSpaceDash     = regexRule(DropSpaceDash, space+`+-`, "")
	dropEmptyElements = regexRule(DropEmptyElements, `<[^>]+>`+space+`*</[^>]+>`, "")
	tidyLines         = Rule{Name: TidyLines, Apply: tidyEachLine}
)

// ConservativeRules returns the light cleanup: collapse repeated spaces and
// drop separators that have nothing left after them.
func ConservativeRules() []Rule {
	return []Rule{collapseSpaces, dropSpacedDash, dropDanglingDash}
}

// AggressiveRules returns the full cleanup. The whole-content rules run first
// and tidy-lines sweeps what they miss at line boundaries.
func AggressiveRules() []Rule {
	return []Rule{
		squeezeDash,
		dropDashSpace,
		dropSpaceDash,
		collapseSpaces,
		dropEmptyElements,
		tidyLines,
	}
}

// Lookup returns the rule with the given name.
func Lookup(name string) (Rule, bool) {
	for _, r := range append(ConservativeRules(), AggressiveRules()...) {
		if r.Name == name {
			return r, true
		}
	}
	return Rule{}, false
}

// tidyEachLine trims trailing dashes and spaces, tightens " ->" to "->" and
// removes any remaining "- " on every line.
func tidyEachLine(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		line = strings.TrimRight(line, "- ")
		line = strings.ReplaceAll(line, " ->", "->")
		line = strings.ReplaceAll(line, "- ", "")
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
