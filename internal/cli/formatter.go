package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/idelchi/extensions/internal/extstat"
)

// PrintCSV outputs records as a header line followed by one line per record.
// Fields are joined by commas without quoting.
func PrintCSV(records []extstat.Record, writer io.Writer) error {
	var b strings.Builder

	b.WriteString("Extension,Count,Size\n")

	for _, r := range records {
		fmt.Fprintf(&b, "%s,%d,%d\n", r.Extension, r.Count, r.Size)
	}

	if _, err := io.WriteString(writer, b.String()); err != nil {
		return err
	}

	return nil
}

// PrintJSON outputs records as an indented JSON array.
func PrintJSON(records []extstat.Record, writer io.Writer) error {
	if records == nil {
		records = []extstat.Record{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// render formats records in the requested format.
func render(records []extstat.Record, format extstat.Format, writer io.Writer) error {
	switch format {
	case extstat.FormatCSV:
		return PrintCSV(records, writer)
	case extstat.FormatJSON:
		return PrintJSON(records, writer)
	default:
		return fmt.Errorf("%w %q", extstat.ErrUnknownFormat, format)
	}
}
