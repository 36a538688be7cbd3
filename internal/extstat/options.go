package extstat

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SortKey selects the field the report is ordered by.
type SortKey string

const (
	// SortByExtension orders records by extension, byte-wise.
	SortByExtension SortKey = "extension"
	// SortByCount orders records by file count.
	SortByCount SortKey = "count"
	// SortBySize orders records by cumulative size.
	SortBySize SortKey = "size"
)

// SortKeys lists the accepted sort keys in help order.
//
//nolint:gochecknoglobals // Config constant
var SortKeys = []SortKey{SortByExtension, SortByCount, SortBySize}

// Format selects the report rendering.
type Format string

const (
	// FormatCSV renders a header line followed by one comma-joined line per record.
	FormatCSV Format = "csv"
	// FormatJSON renders an indented JSON array of records.
	FormatJSON Format = "json"
)

// Formats lists the accepted output formats in help order.
//
//nolint:gochecknoglobals // Config constant
var Formats = []Format{FormatCSV, FormatJSON}

// ParseSortKey parses s case-insensitively into a SortKey.
func ParseSortKey(s string) (SortKey, error) {
	key := SortKey(fold(s))
	for _, k := range SortKeys {
		if key == k {
			return k, nil
		}
	}

	return "", fmt.Errorf("%w %q: must be one of %v", ErrUnknownSort, s, SortKeys)
}

// ParseFormat parses s case-insensitively into a Format.
func ParseFormat(s string) (Format, error) {
	format := Format(fold(s))
	for _, f := range Formats {
		if format == f {
			return f, nil
		}
	}

	return "", fmt.Errorf("%w %q: must be one of %v", ErrUnknownFormat, s, Formats)
}

// fold returns the lower-case form of s for option matching.
func fold(s string) string {
	return cases.Lower(language.Und).String(s)
}

// Options configures a scan and the CLI around it.
type Options struct {
	// Path is the directory to scan.
	Path string
	// Remove holds canonical dotted extensions to delete (empty = delete nothing).
	Remove []string
	// Sort is the report ordering.
	Sort SortKey
	// Format is the report rendering.
	Format Format
	// DryRun counts matching files as deleted without removing them.
	DryRun bool
	// KeepGoing skips unreadable directories and undeletable files instead of aborting.
	KeepGoing bool
	// Debug indicates whether debug output is enabled.
	Debug bool
	// OutputFile is the report destination (empty = standard output).
	OutputFile string
	// Count is accepted for compatibility (files or size) and has no effect.
	Count string
	// ConfigFile is an optional TOML file supplying defaults for unset flags.
	ConfigFile string
}
