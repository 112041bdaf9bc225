package hooks

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/harborgrid-justin/lithic/internal/patch"
)

var (
	fixedMark = color.New(color.FgGreen)
	skipMark  = color.New(color.Faint)
)

// Fixer runs the import rule set over single files and writes a per-file
// report in the historical format:
//
//	File: <path>
//	  ✓ Fixed imports
//	  - No import changes needed
type Fixer struct {
	patcher *patch.Patcher
	logger  *slog.Logger
}

// NewFixer creates a Fixer around patcher. A nil logger disables diagnostics.
func NewFixer(patcher *patch.Patcher, logger *slog.Logger) *Fixer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Fixer{
		patcher: patcher,
		logger:  logger,
	}
}

// Fix patches the file at path and writes the report to out. The returned
// result carries the Changed flag the caller maps to the process exit status.
func (f *Fixer) Fix(path string, out io.Writer) (*patch.Result, error) {
	result, err := f.patcher.File(path)
	if err != nil {
		return nil, err
	}

	f.logger.Debug("processed file",
		"path", path,
		"size", humanize.Bytes(uint64(len(result.Original))),
		"changed", result.Changed,
		"dry_run", f.patcher.DryRun,
	)

	fmt.Fprintf(out, "File: %s\n", path)

	if result.Changed {
		fixedMark.Fprintf(out, "  ✓ Fixed imports\n")
	} else {
		skipMark.Fprintf(out, "  - No import changes needed\n")
	}

	return result, nil
}
