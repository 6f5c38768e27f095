package phrases

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

const tsvHeader = "phrase\treplacement"

// WriteTSV writes entries as a two-column TSV with a header row.
func WriteTSV(w io.Writer, entries []Entry) error {
	if _, err := fmt.Fprintln(w, tsvHeader); err != nil {
		return fmt.Errorf("write TSV header: %w", err)
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", escapeTSV(e.Phrase), escapeTSV(e.Replacement)); err != nil {
			return fmt.Errorf("write TSV row: %w", err)
		}
	}
	return nil
}

// WriteJSON writes entries as an indented JSON array.
func WriteJSON(w io.Writer, entries []Entry) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(entries); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}

// ReadTSV parses entries written by WriteTSV. Blank lines, lines starting with
// '#' and a header as the first remaining row are skipped. A row with a single column deletes the
// phrase.
func ReadTSV(r io.Reader) ([]Entry, error) {
	var entries []Entry

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)

	lineNum := 0
	seenRow := false
	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), "\r")

		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seenRow {
			seenRow = true
			if line == tsvHeader {
				continue
			}
		}

		cols := strings.SplitN(line, "\t", 2)
		e := Entry{Phrase: unescapeTSV(cols[0])}
		if len(cols) == 2 {
			e.Replacement = unescapeTSV(cols[1])
		}
		if e.Phrase == "" {
			return nil, fmt.Errorf("line %d: %w", lineNum, ErrEmptyPhrase)
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan TSV: %w", err)
	}

	return entries, nil
}

// LoadFile reads extra entries from a TSV file.
func LoadFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open phrases file: %w", err)
	}
	defer f.Close()

	entries, err := ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("read phrases file %s: %w", path, err)
	}

	log.Debug().Str("path", path).Int("entries", len(entries)).Msg("Loaded phrases file")
	return entries, nil
}

// escapeTSV replaces tabs and newlines in a string for TSV safety.
func escapeTSV(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\t", "\\t")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	return s
}

func unescapeTSV(s string) string {
	if !strings.Contains(s, "\\") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			b.WriteByte(s[i])
			continue
		}
		i++
		switch s[i] {
		case 't':
			b.WriteByte('\t')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
