package extstat

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"
)

// walker holds the state of a single sequential scan.
type walker struct {
	fs        afero.Fs
	remove    map[string]struct{}
	dryRun    bool
	keepGoing bool
	log       Logger
	collector *collector
}

// fileEntry is a non-directory entry with the size of its target.
type fileEntry struct {
	path string
	name string
	size int64
}

// walk lists dir, recurses into its subdirectories and then visits its files.
// Entries are handled in name order. Symbolic links are followed: a link to a
// directory is walked like a subdirectory and a link to a file is visited with
// the target's size.
func (w *walker) walk(ctx context.Context, dir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entries, err := afero.ReadDir(w.fs, dir)
	if err != nil {
		return w.fail(fmt.Errorf("reading directory %q: %w", dir, err))
	}

	var (
		dirs  = make([]string, 0, len(entries))
		files = make([]fileEntry, 0, len(entries))
	)

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		info, err := w.resolve(path, entry)
		if err != nil {
			if failErr := w.fail(err); failErr != nil {
				return failErr
			}

			continue
		}

		if info.IsDir() {
			dirs = append(dirs, path)
		} else {
			files = append(files, fileEntry{path: path, name: entry.Name(), size: info.Size()})
		}
	}

	for _, sub := range dirs {
		if err := w.walk(ctx, sub); err != nil {
			return err
		}
	}

	for _, file := range files {
		if err := w.visit(file); err != nil {
			return err
		}
	}

	return nil
}

// resolve returns the entry itself, or for a symbolic link the info of its target.
func (w *walker) resolve(path string, entry fs.FileInfo) (fs.FileInfo, error) {
	if entry.Mode()&fs.ModeSymlink == 0 {
		return entry, nil
	}

	info, err := w.fs.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("following link %q: %w", path, err)
	}

	return info, nil
}

// visit deletes the file if its extension is in the remove set, and tallies it otherwise.
func (w *walker) visit(file fileEntry) error {
	ext := Ext(file.name)

	if _, ok := w.remove[ext]; !ok {
		w.collector.add(ext, file.size)

		return nil
	}

	if !w.dryRun {
		if err := w.fs.Remove(file.path); err != nil {
			if failErr := w.fail(fmt.Errorf("deleting %q: %w", file.path, err)); failErr != nil {
				return failErr
			}

			// Still on disk, so it belongs in the tally.
			w.collector.add(ext, file.size)

			return nil
		}
	}

	w.collector.addDeleted()

	return nil
}

// fail returns err, or records a skipped path and returns nil in keep-going mode.
func (w *walker) fail(err error) error {
	if !w.keepGoing {
		return err
	}

	w.log.Printf("[debug]: skipping: %v\n", err)
	w.collector.addSkipped()

	return nil
}

// Run scans the directory tree at opt.Path and returns per-extension statistics.
//
// Files whose extension is in opt.Remove are deleted (or only counted, with
// opt.DryRun) and left out of the tally. The first error listing a directory
// or deleting a file aborts the scan and no Stats are returned, unless
// opt.KeepGoing is set. Deletions made before an abort are not undone.
func Run(ctx context.Context, fsys afero.Fs, opt Options, log Logger) (*Stats, error) {
	if opt.Path == "" {
		opt.Path = "."
	}

	opt.Path = filepath.Clean(opt.Path)

	// validate path exists and is a directory
	if info, err := fsys.Stat(opt.Path); err != nil {
		return nil, fmt.Errorf("accessing path %q: %w", opt.Path, err)
	} else if !info.IsDir() {
		return nil, fmt.Errorf("path %q: %w", opt.Path, ErrNotDirectory)
	}

	remove := make(map[string]struct{}, len(opt.Remove))
	for _, ext := range opt.Remove {
		remove[ext] = struct{}{}
	}

	log.Printf("[debug]: root: %s\n", opt.Path)
	log.Printf("[debug]: remove extensions:\n")

	for _, ext := range opt.Remove {
		log.Printf("[debug]:   - %s\n", ext)
	}

	if opt.DryRun {
		log.Printf("[debug]: dry run, nothing will be deleted\n")
	}

	start := time.Now()

	w := &walker{
		fs:        fsys,
		remove:    remove,
		dryRun:    opt.DryRun,
		keepGoing: opt.KeepGoing,
		log:       log,
		collector: newCollector(),
	}

	if err := w.walk(ctx, opt.Path); err != nil {
		return nil, err
	}

	stats := w.collector.finalize()
	stats.Elapsed = time.Since(start)

	log.Printf("[debug]: scanned %d files, %s in %v (%d deleted, %d skipped)\n",
		stats.FileCount,
		humanize.IBytes(uint64(stats.TotalBytes)), //nolint:gosec // Bytes is always positive
		stats.Elapsed, stats.Deleted, stats.Skipped)

	return stats, nil
}
