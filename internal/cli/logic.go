package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"

	"github.com/idelchi/extensions/internal/extstat"
)

// ErrOutputExists is returned when the output file is already present.
var ErrOutputExists = errors.New("output file already exists")

// logic runs a scan and emits its report.
func logic(ctx context.Context, fsys afero.Fs, stdout, stderr io.Writer, options extstat.Options) error {
	log := extstat.NewLogger(options.Debug, stderr)

	// The output file must not exist before the scan starts.
	if options.OutputFile != "" {
		exists, err := outputExists(fsys, options.OutputFile)
		if err != nil {
			return fmt.Errorf("checking output file %q: %w", options.OutputFile, err)
		}

		if exists {
			return fmt.Errorf("%w: %s", ErrOutputExists, options.OutputFile)
		}
	}

	log.Printf("[debug]: sort: %s, output: %s, count: %s (ignored)\n", options.Sort, options.Format, options.Count)

	stats, err := extstat.Run(ctx, fsys, options, log)
	if err != nil {
		return err
	}

	records, err := stats.Sorted(options.Sort)
	if err != nil {
		return err
	}

	var report bytes.Buffer
	if err := render(records, options.Format, &report); err != nil {
		return err
	}

	if stats.Deleted > 0 {
		if options.DryRun {
			fmt.Fprintf(stderr, "%d files would be deleted matching remove extensions.\n", stats.Deleted)
		} else {
			fmt.Fprintf(stderr, "%d files deleted matching remove extensions.\n", stats.Deleted)
		}
	}

	if stats.Skipped > 0 {
		fmt.Fprintf(stderr, "%d paths skipped due to errors.\n", stats.Skipped)
	}

	return writeReport(fsys, stdout, options.OutputFile, report.Bytes(), log)
}

// outputExists reports whether anything, including a dangling symbolic link, is at path.
func outputExists(fsys afero.Fs, path string) (bool, error) {
	var err error

	if lstater, ok := fsys.(afero.Lstater); ok {
		_, _, err = lstater.LstatIfPossible(path)
	} else {
		_, err = fsys.Stat(path)
	}

	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}

// writeReport writes the report to w, or creates path and writes it there.
// An existing file is never overwritten.
//
//nolint:varnamelen // w is idiomatic for a writer
func writeReport(fsys afero.Fs, w io.Writer, path string, report []byte, log extstat.Logger) error {
	if path == "" {
		if _, err := w.Write(report); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}

		return nil
	}

	file, err := fsys.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", ErrOutputExists, path)
		}

		return fmt.Errorf("creating output file: %w", err)
	}

	if _, err := file.Write(report); err != nil {
		_ = file.Close()

		return fmt.Errorf("writing output file %q: %w", path, err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("closing output file %q: %w", path, err)
	}

	log.Printf("[debug]: wrote %s to %s\n", humanize.IBytes(uint64(len(report))), path)

	return nil
}
