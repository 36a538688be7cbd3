package extstat

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"
)

// Record represents statistics for a file extension.
type Record struct {
	// Extension includes the leading dot, or is empty for files without one.
	Extension string `json:"extension"`
	// Count is the number of files with this extension.
	Count int `json:"count"`
	// Size is the cumulative size in bytes.
	Size int64 `json:"size"`
}

// Stats holds the outcome of a scan.
type Stats struct {
	// Records holds one entry per extension, in first-encounter order.
	Records []Record
	// Deleted is the number of files removed (or, in dry-run, that matched the remove set).
	Deleted int
	// Skipped is the number of paths passed over after an error in keep-going mode.
	Skipped int
	// FileCount is the number of tallied files.
	FileCount int64
	// TotalBytes is the cumulative size of all tallied files.
	TotalBytes int64
	// Elapsed is the total time taken for the scan.
	Elapsed time.Duration
}

// Sorted returns a copy of the records in ascending order of key.
// Ties keep their encounter order.
func (s *Stats) Sorted(key SortKey) ([]Record, error) {
	var compare func(a, b Record) int

	switch key {
	case SortByExtension:
		compare = func(a, b Record) int { return strings.Compare(a.Extension, b.Extension) }
	case SortByCount:
		compare = func(a, b Record) int { return cmp.Compare(a.Count, b.Count) }
	case SortBySize:
		compare = func(a, b Record) int { return cmp.Compare(a.Size, b.Size) }
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownSort, key)
	}

	records := make([]Record, len(s.Records))
	copy(records, s.Records)
	slices.SortStableFunc(records, compare)

	return records, nil
}

// collector is the tally store filled by a single walk.
type collector struct {
	index      map[string]int
	records    []Record
	deleted    int
	skipped    int
	fileCount  int64
	totalBytes int64
}

// newCollector creates an empty collector.
func newCollector() *collector {
	return &collector{
		index:   make(map[string]int),
		records: make([]Record, 0),
	}
}

// add tallies one file of the given extension and size.
func (c *collector) add(ext string, size int64) {
	c.fileCount++
	c.totalBytes += size

	i, ok := c.index[ext]
	if !ok {
		i = len(c.records)
		c.index[ext] = i
		c.records = append(c.records, Record{Extension: ext})
	}

	c.records[i].Count++
	c.records[i].Size += size
}

func (c *collector) addDeleted() { c.deleted++ }

func (c *collector) addSkipped() { c.skipped++ }

// finalize produces the Stats from the collected data.
func (c *collector) finalize() *Stats {
	return &Stats{
		Records:    c.records,
		Deleted:    c.deleted,
		Skipped:    c.skipped,
		FileCount:  c.fileCount,
		TotalBytes: c.totalBytes,
	}
}
