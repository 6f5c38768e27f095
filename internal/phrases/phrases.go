package phrases

import (
	"errors"
	"fmt"
	"strings"
)

// Separator joins a phrase to its translation in hand-written "<phrase> - <translation>" pairs.
const Separator = " - "

// ErrEmptyPhrase is returned when an entry has no phrase to match.
var ErrEmptyPhrase = errors.New("empty phrase")

// Entry maps a source-script phrase to its replacement. An empty replacement deletes the phrase.
type Entry struct {
	Phrase      string `json:"phrase"`
	Replacement string `json:"replacement"`
}

// Hit records how often an entry matched in one piece of content.
type Hit struct {
	Entry
	Count int
}

// Shadow describes a later entry that can never match because an earlier
// entry's phrase is contained in it.
type Shadow struct {
	Earlier Entry
	Later   Entry
}

// Map is an ordered, read-only phrase table.
type Map struct {
	entries []Entry
	index   map[string]int
}

// New builds a Map from entries in order. A repeated phrase keeps the position
// of its first occurrence and the replacement of its last one.
func New(entries []Entry) (*Map, error) {
	m := &Map{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		if e.Phrase == "" {
			return nil, fmt.Errorf("entry %d: %w", i, ErrEmptyPhrase)
		}
		if pos, ok := m.index[e.Phrase]; ok {
			m.entries[pos].Replacement = e.Replacement
			continue
		}
		m.index[e.Phrase] = len(m.entries)
		m.entries = append(m.entries, e)
	}
	return m, nil
}

// Builtin returns the phrase table shipped with the tool.
func Builtin() []Entry {
	out := make([]Entry, len(builtin))
	copy(out, builtin)
	return out
}

// Default builds a Map from the built-in table.
func Default() *Map {
	m, err := New(builtin)
	if err != nil {
		panic(fmt.Sprintf("builtin phrase table: %v", err))
	}
	return m
}

// Len returns the number of distinct phrases.
func (m *Map) Len() int { return len(m.entries) }

// Entries returns a copy of the entries in match order.
func (m *Map) Entries() []Entry {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Lookup returns the replacement for phrase.
func (m *Map) Lookup(phrase string) (string, bool) {
	pos, ok := m.index[phrase]
	if !ok {
		return "", false
	}
	return m.entries[pos].Replacement, true
}

// Replace rewrites content entry by entry, in map order. For each phrase
// present, the dash-joined forms "phrase - " and " - phrase" are removed
// first, then the bare phrase is replaced.
//
// Each step works on the output of the previous entry, so an earlier phrase
// that is a substring of a later one consumes it. See Shadowed.
func (m *Map) Replace(content string) (string, []Hit) {
	var hits []Hit
	for _, e := range m.entries {
		if !strings.Contains(content, e.Phrase) {
			continue
		}
		hits = append(hits, Hit{Entry: e, Count: strings.Count(content, e.Phrase)})

		content = strings.ReplaceAll(content, e.Phrase+Separator, "")
		content = strings.ReplaceAll(content, Separator+e.Phrase, "")
		content = strings.ReplaceAll(content, e.Phrase, e.Replacement)
	}
	return content, hits
}

// Shadowed lists entries that are unreachable because an earlier phrase is a
// substring of theirs.
func (m *Map) Shadowed() []Shadow {
	var out []Shadow
	for j, later := range m.entries {
		for _, earlier := range m.entries[:j] {
			if strings.Contains(later.Phrase, earlier.Phrase) {
				out = append(out, Shadow{Earlier: earlier, Later: later})
				break
			}
		}
	}
	return out
}
