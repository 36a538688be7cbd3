package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/idelchi/extensions/internal/extstat"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// Execute runs the CLI against the OS filesystem and standard streams.
func (c CLI) Execute() error {
	return c.command(afero.NewOsFs(), os.Stdout, os.Stderr).Execute()
}

// flagValues holds raw flag input that still needs parsing.
type flagValues struct {
	output string
	sort   string
	remove string
}

// command builds the root command over fsys and the given streams.
//
//nolint:funlen // Flag declarations
func (c CLI) command(fsys afero.Fs, stdout, stderr io.Writer) *cobra.Command {
	var (
		options extstat.Options
		raw     flagValues
	)

	cmd := &cobra.Command{
		Use:   "extensions [flags] <dir>",
		Short: "Count file extensions used in a folder tree",
		Long: heredoc.Doc(`
			extensions counts all file extensions used in a folder tree and reports
			the number of files and their cumulative size per extension.

			It can also remove files with the specified extensions while scanning.
			Removed files are not part of the report.

			Positional Arguments:
			  dir    Directory to search. Use '.' for the current directory.

			Flags that are not set on the command line may be preset in a TOML file
			passed with --config, e.g.:

			  output = "json"
			  sort = "size"
			  remove = ["bak", "tmp"]
		`),
		Version:       c.version,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if options.ConfigFile != "" {
				cfg, err := loadConfig(fsys, options.ConfigFile)
				if err != nil {
					return err
				}

				if err := cfg.apply(cmd.Flags()); err != nil {
					return err
				}
			}

			if err := resolve(fsys, &options, raw, args[0]); err != nil {
				return err
			}

			// Past validation, errors are not about usage.
			cmd.SilenceUsage = true

			return logic(cmd.Context(), fsys, cmd.OutOrStdout(), cmd.ErrOrStderr(), options)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetVersionTemplate("{{.Version}}\n")

	flags := cmd.Flags()
	flags.SortFlags = false

	flags.StringVar(&raw.output, "output", string(extstat.FormatCSV), "Output type (csv, json)")
	flags.StringVar(&options.OutputFile, "out", "", "Output file (default: standard output)")
	flags.StringVar(&raw.sort, "sort", string(extstat.SortByExtension), "Sort type (extension, count, size)")
	flags.StringVar(&options.Count, "count", "files", "Count type (files, size); accepted but has no effect")
	flags.StringVar(&raw.remove, "remove", "", "Remove comma separated list of extensions (bak,gif,jpg)")
	flags.BoolVar(&options.DryRun, "dry-run", false, "Report files matching --remove without deleting them")
	flags.BoolVar(&options.KeepGoing, "keep-going", false, "Skip unreadable directories and undeletable files instead of aborting")
	flags.StringVar(&options.ConfigFile, "config", "", "TOML file with defaults for flags not set on the command line")
	flags.BoolVar(&options.Debug, "debug", false, "Enable debug output")

	return cmd
}

// resolve validates the raw input and completes options.
// All problems are reported together.
func resolve(fsys afero.Fs, options *extstat.Options, raw flagValues, dir string) error {
	var errs []error

	if dir == "." {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}

		dir = cwd
	}

	if ok, err := afero.DirExists(fsys, dir); err != nil || !ok {
		errs = append(errs, fmt.Errorf("specified root directory %q does not exist", dir))
	}

	sortKey, err := extstat.ParseSortKey(raw.sort)
	if err != nil {
		errs = append(errs, err)
	}

	format, err := extstat.ParseFormat(raw.output)
	if err != nil {
		errs = append(errs, err)
	}

	if err := errors.Join(errs...); err != nil {
		return err
	}

	options.Path = dir
	options.Sort = sortKey
	options.Format = format
	options.Remove = extstat.NormalizeExtensions(raw.remove)

	return nil
}
