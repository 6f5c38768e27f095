package workflow

import (
	"fmt"
	"io"

	"script-scrub/internal/scrub"
)

// PrintSummary writes the end-of-run report. The conservative variant lists
// modified files; the aggressive variant reports the verification result.
func PrintSummary(w io.Writer, s Summary) {
	if s.DryRun {
		fmt.Fprintln(w, "Dry run: no files were written")
	}

	if s.Variant == scrub.Conservative {
		fmt.Fprintf(w, "Modified %d files:\n", len(s.Modified))
		for _, path := range s.Modified {
			fmt.Fprintf(w, "  - %s\n", path)
		}
	} else {
		fmt.Fprintf(w, "Modified %d files\n", len(s.Modified))
	}

	if len(s.Failed) > 0 {
		fmt.Fprintf(w, "Failed to process %d files\n", len(s.Failed))
	}

	if s.Verified {
		PrintVerification(w, s.Remaining)
	}
}

// PrintVerification writes the straggler list and a final pass/fail line.
func PrintVerification(w io.Writer, remaining []string) {
	for _, path := range remaining {
		fmt.Fprintf(w, "Arabic still found in: %s\n", path)
	}

	if len(remaining) == 0 {
		fmt.Fprintln(w, "✓ All Arabic text has been successfully removed!")
	} else {
		fmt.Fprintf(w, "Warning: %d files still contain Arabic text\n", len(remaining))
	}
}
