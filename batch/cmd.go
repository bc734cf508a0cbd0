// Package batch implements the erase command: it finds sprites under a
// folder, removes their corner-sampled background and writes them back.
package batch

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"spritebg/erase"
	"spritebg/parallel"
)

type CLICmd struct {
	Scan        string       `help:"Source folder to scan recursively" default:"."`
	Ext         []string     `help:"File extensions to process" default:"png"`
	Expect      string       `help:"Only erase when the detected background is this color (#RGB, #RGBA, #RRGGBB or #RRGGBBAA)"`
	DryRun      bool         `help:"Report what would be removed without writing any file" default:"false"`
	ExpectColor *erase.Color `kong:"-"`
	Out         io.Writer    `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	return c.validate()
}

func (c *CLICmd) validate() error {
	scanDir, err := filepath.Abs(c.Scan)
	var info os.FileInfo
	if err == nil {
		if info, err = os.Stat(scanDir); err == nil && !info.IsDir() {
			err = fmt.Errorf("not a directory")
		}
	}
	if err != nil {
		return fmt.Errorf("invalid scan path %q: %w: %w", c.Scan, ErrDirNotFound, err)
	}
	c.Scan = scanDir

	if c.Expect != "" {
		col, err := parseHexColor(c.Expect)
		if err != nil {
			return err
		}
		c.ExpectColor = &col
	}

	if c.Out == nil {
		c.Out = os.Stdout
	}
	return nil
}

func (c *CLICmd) Run(worker parallel.WorkerFunc, wait parallel.WaitFunc) error {
	files, err := Discover(c.Scan, c.Ext)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(c.Out, "Processing %d files in %s\n\n", len(files), c.Scan); err != nil {
		return fmt.Errorf("could not write report: %w", err)
	}

	reports := make([]Report, len(files))
	parallel.Each(worker, wait, len(files), func(i int) {
		reports[i] = c.processFile(files[i])
	})

	sum, err := writeReports(c.Out, reports)
	if err != nil {
		return err
	}

	slog.Info("stats", "processed", sum.Processed, "skipped", sum.Skipped, "errors", sum.Failed,
		"total", len(files), "dry_run", c.DryRun)

	if sum.Failed > 0 {
		return fmt.Errorf("error processing %d files", sum.Failed)
	}
	return nil
}

func (c *CLICmd) processFile(path string) Report {
	rel, err := filepath.Rel(c.Scan, path)
	if err != nil {
		rel = path
	}
	report := Report{Path: filepath.ToSlash(rel)}

	img, format, err := Load(path)
	if err != nil {
		report.Err = err
		return report
	}

	if c.ExpectColor != nil {
		if out := erase.Sample(img); out.Eligible() && out.Background != *c.ExpectColor {
			report.Result = erase.Result{Background: out.Background, Corners: out.Corners}
			report.Unexpected = true
			return report
		}
	}

	report.Result = erase.Process(img)
	if !report.Result.Modified() || c.DryRun {
		return report
	}

	if err = Save(img, format, path); err != nil {
		report.Err = err
		return report
	}
	report.Written = true
	return report
}
