package batch

import (
	"fmt"
	"io"
	"log/slog"

	"spritebg/erase"
)

// Report is the outcome for one file.
type Report struct {
	Path       string // relative to the scan folder
	Result     erase.Result
	Unexpected bool // background detected but not the one asked for
	Written    bool
	Err        error
}

func (r Report) OK() bool {
	return r.Err == nil && !r.Unexpected && r.Result.Status == erase.StatusOK
}

func (r Report) Status() string {
	switch {
	case r.Err != nil:
		return fmt.Sprintf("FAIL (%v)", r.Err)
	case r.Unexpected:
		return fmt.Sprintf("SKIP (bg color %s not expected)", r.Result.Background)
	default:
		return r.Result.String()
	}
}

func (r Report) log() {
	logger := slog.Default().With("file", r.Path)
	switch {
	case r.Err != nil:
		logger.Error("could not process image", "error", r.Err)
	case r.OK():
		logger.Debug("erased background", "removed", r.Result.Removed,
			"bg", r.Result.Background.String(), "hex", hexColor(r.Result.Background), "written", r.Written)
	default:
		logger.Debug("skipped image", "reason", r.Result.Status.String(), "unexpected", r.Unexpected)
	}
}

// Summary tallies reports; a file is either processed, skipped or failed.
type Summary struct {
	Processed int
	Skipped   int
	Failed    int
}

func (s *Summary) Add(r Report) {
	switch {
	case r.Err != nil:
		s.Failed++
	case r.OK():
		s.Processed++
	default:
		s.Skipped++
	}
}

func (s Summary) String() string {
	if s.Failed > 0 {
		return fmt.Sprintf("Done. %d processed, %d skipped, %d failed.", s.Processed, s.Skipped, s.Failed)
	}
	return fmt.Sprintf("Done. %d processed, %d skipped.", s.Processed, s.Skipped)
}

// writeReports prints one status line per report, in the given order, and
// returns the totals.
func writeReports(w io.Writer, reports []Report) (Summary, error) {
	var sum Summary
	for _, r := range reports {
		r.log()
		sum.Add(r)
		if _, err := fmt.Fprintf(w, "  %s - %s\n", r.Path, r.Status()); err != nil {
			return sum, fmt.Errorf("could not write report: %w", err)
		}
	}
	if _, err := fmt.Fprintf(w, "\n%s\n", sum); err != nil {
		return sum, fmt.Errorf("could not write summary: %w", err)
	}
	return sum, nil
}
