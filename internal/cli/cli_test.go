package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"script-scrub/internal/config"
	"script-scrub/internal/graph"
	"script-scrub/internal/phrases"
)

// Commands load configuration from the environment and the working directory,
// so the end-to-end tests here do not run in parallel.

func isolateEnv(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Chdir(dir)
	for _, key := range []string{"SCRUB_EXTENSIONS", "SCRUB_VARIANT", "PHRASES_FILE", "DATABASE_URL", "NEO4J_URI", "LOG_LEVEL", "COVERAGE_LIMIT"} {
		t.Setenv(key, "")
	}
	t.Setenv("LOG_LEVEL", "error")
	return dir
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
}

func TestScrubCommand_Conservative(t *testing.T) {
	dir := isolateEnv(t)
	src := filepath.Join(dir, "src")
	if err := os.MkdirAll(src, 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	app := filepath.Join(src, "App.tsx")
	writeFile(t, app, "msg = 'خطأ';\n")
	writeFile(t, filepath.Join(src, "notes.md"), "خطأ\n")

	out, err := runCLI(t, "scrub", src, "--variant", "conservative")
	if err != nil {
		t.Fatalf("scrub error = %v", err)
	}

	want := "Modified 1 files:\n  - " + app + "\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
	data, _ := os.ReadFile(app)
	if string(data) != "msg = 'Error';\n" {
		t.Errorf("App.tsx = %q, want %q", data, "msg = 'Error';\n")
	}
	data, _ = os.ReadFile(filepath.Join(src, "notes.md"))
	if string(data) != "خطأ\n" {
		t.Error("file with unlisted extension was modified")
	}
}

func TestScrubCommand_AggressiveDryRun(t *testing.T) {
	dir := isolateEnv(t)
	app := filepath.Join(dir, "App.ts")
	writeFile(t, app, "msg = 'خطأ';\n")

	out, err := runCLI(t, "scrub", dir, "--dry-run")
	if err != nil {
		t.Fatalf("scrub error = %v", err)
	}
	if out != "Dry run: no files were written\nModified 1 files\n" {
		t.Errorf("output = %q", out)
	}
	data, _ := os.ReadFile(app)
	if string(data) != "msg = 'خطأ';\n" {
		t.Error("dry run wrote the file")
	}
}

func TestScrubCommand_FailOnError(t *testing.T) {
	dir := isolateEnv(t)
	writeFile(t, filepath.Join(dir, "bad.ts"), "\xff 'خطأ'")

	if _, err := runCLI(t, "scrub", dir); err != nil {
		t.Fatalf("scrub without --fail-on-error returned %v", err)
	}
	if _, err := runCLI(t, "scrub", dir, "--fail-on-error"); err == nil {
		t.Error("scrub --fail-on-error returned nil, want an error for the undecodable file")
	}
}

func TestScrubCommand_RejectsUnknownVariant(t *testing.T) {
	dir := isolateEnv(t)

	if _, err := runCLI(t, "scrub", dir, "--variant", "final"); err == nil {
		t.Error("scrub --variant final returned nil, want a validation error")
	}
}

func TestVerifyCommand(t *testing.T) {
	dir := isolateEnv(t)
	dirty := filepath.Join(dir, "dirty.tsx")
	writeFile(t, dirty, "x = 'مرحبا';")
	writeFile(t, filepath.Join(dir, "clean.ts"), "x = 'Hei';")

	out, err := runCLI(t, "verify", dir)
	if err != nil {
		t.Fatalf("verify error = %v", err)
	}
	want := "Arabic still found in: " + dirty + "\nWarning: 1 files still contain Arabic text\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}

	out, err = runCLI(t, "verify", dir, "--ext", ".ts")
	if err != nil {
		t.Fatalf("verify --ext error = %v", err)
	}
	if out != "✓ All Arabic text has been successfully removed!\n" {
		t.Errorf("output with --ext .ts = %q", out)
	}
}

func TestPhrasesExportCommand(t *testing.T) {
	dir := isolateEnv(t)
	extra := filepath.Join(dir, "extra.tsv")
	writeFile(t, extra, "phrase\treplacement\nمرحبا\tHello\n")
	t.Setenv("PHRASES_FILE", extra)

	output := filepath.Join(dir, "phrases.json")
	if _, err := runCLI(t, "phrases", "export", "--format", "json", "--output", output); err != nil {
		t.Fatalf("phrases export error = %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	var entries []phrases.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if len(entries) != phrases.Default().Len()+1 {
		t.Fatalf("exported %d entries, want %d", len(entries), phrases.Default().Len()+1)
	}
	if last := entries[len(entries)-1]; last.Phrase != "مرحبا" || last.Replacement != "Hello" {
		t.Errorf("last entry = %+v, want the file phrase", last)
	}

	if _, err := runCLI(t, "phrases", "export", "--format", "yaml"); err == nil {
		t.Error("unknown export format returned nil error")
	}
}

func TestPhrasesLintCommand(t *testing.T) {
	isolateEnv(t)

	out, err := runCLI(t, "phrases", "lint")
	if err != nil {
		t.Fatalf("phrases lint error = %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	footer := lines[len(lines)-1]
	want := len(phrases.Default().Shadowed())
	if footer != fmt.Sprintf("%d shadowed phrases", want) {
		t.Errorf("footer = %q, want %d shadowed phrases", footer, want)
	}
	if !strings.Contains(out, `"منخفض" (-> "Low") is shadowed by earlier "من"`) {
		t.Errorf("output does not report the shadowed منخفض entry:\n%s", out)
	}
}

func TestBackendCommandsRequireConfiguration(t *testing.T) {
	isolateEnv(t)

	if _, err := runCLI(t, "phrases", "seed"); err == nil || !strings.Contains(err.Error(), "DATABASE_URL") {
		t.Errorf("phrases seed error = %v, want DATABASE_URL not set", err)
	}
	if _, err := runCLI(t, "coverage"); err == nil || !strings.Contains(err.Error(), "NEO4J_URI") {
		t.Errorf("coverage error = %v, want NEO4J_URI not set", err)
	}
}

func TestPrintFragments(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printFragments(&buf, nil)
	if buf.String() != "No uncovered fragments recorded\n" {
		t.Errorf("empty output = %q", buf.String())
	}

	buf.Reset()
	printFragments(&buf, []graph.FragmentCount{{Text: "عامة", Total: 12, Files: 3}})
	if buf.String() != "    12     3 files  عامة\n" {
		t.Errorf("output = %q", buf.String())
	}
}

func TestPhrasesLintCommand_UnreachableStore(t *testing.T) {
	isolateEnv(t)
	t.Setenv("DATABASE_URL", "postgres://scrub@127.0.0.1:1/scrub?sslmode=disable&connect_timeout=2")

	out, err := runCLI(t, "phrases", "lint")
	if err != nil {
		t.Fatalf("phrases lint error = %v", err)
	}
	want := fmt.Sprintf("%d shadowed phrases\n", len(phrases.Default().Shadowed()))
	if !strings.HasSuffix(out, want) {
		t.Errorf("output = %q, want suffix %q", out, want)
	}
}

type loaderFunc func(ctx context.Context) ([]phrases.Entry, error)

func (f loaderFunc) Load(ctx context.Context) ([]phrases.Entry, error) { return f(ctx) }

func TestBuildPhraseMap_StoredPhrases(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{}
	stored := loaderFunc(func(context.Context) ([]phrases.Entry, error) {
		return []phrases.Entry{
			{Phrase: "خطأ", Replacement: "Feil"},
			{Phrase: "خطأ فادح", Replacement: "Fatal error"},
		}, nil
	})

	m, err := buildPhraseMap(context.Background(), cfg, stored)
	if err != nil {
		t.Fatalf("buildPhraseMap() error = %v", err)
	}
	if m.Len() != phrases.Default().Len()+1 {
		t.Errorf("Len() = %d, want builtin plus one new stored phrase", m.Len())
	}
	if got, _ := m.Lookup("خطأ"); got != "Feil" {
		t.Errorf("Lookup(خطأ) = %q, want the stored replacement", got)
	}

	var found bool
	for _, s := range m.Shadowed() {
		if s.Later.Phrase == "خطأ فادح" && s.Earlier.Phrase == "خطأ" {
			found = true
		}
	}
	if !found {
		t.Error("Shadowed() does not report the stored phrase shadowed by the builtin one")
	}

	failing := loaderFunc(func(context.Context) ([]phrases.Entry, error) {
		return nil, errors.New("connection reset")
	})
	m, err = buildPhraseMap(context.Background(), cfg, failing)
	if err != nil {
		t.Fatalf("buildPhraseMap() with failing store error = %v", err)
	}
	if m.Len() != phrases.Default().Len() {
		t.Errorf("Len() = %d, want the builtin table only", m.Len())
	}
}

func TestWriteExportFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	entries := []phrases.Entry{{Phrase: "خطأ", Replacement: "Error"}, {Phrase: "الاسم", Replacement: ""}}

	path := filepath.Join(dir, "phrases.tsv")
	if err := writeExportFile(path, "tsv", entries); err != nil {
		t.Fatalf("writeExportFile() error = %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer f.Close()
	got, err := phrases.ReadTSV(f)
	if err != nil {
		t.Fatalf("ReadTSV() error = %v", err)
	}
	if len(got) != 2 || got[0] != entries[0] || got[1] != entries[1] {
		t.Errorf("round trip = %+v, want %+v", got, entries)
	}

	if err := writeExportFile(filepath.Join(dir, "missing", "out.tsv"), "tsv", entries); err == nil {
		t.Error("writeExportFile() into a missing directory returned nil error")
	}
	if err := writeExportFile(filepath.Join(dir, "out.yaml"), "yaml", entries); err == nil {
		t.Error("writeExportFile() with unknown format returned nil error")
	}
}
