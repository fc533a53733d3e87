package app

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/usagestats/internal/config"
	"github.com/blackwell-systems/usagestats/internal/output"
	"github.com/blackwell-systems/usagestats/internal/usagestats"
)

// UsageLine is printed when the command is not given exactly one file.
const UsageLine = "USAGE: parseUsagestats.py <FILE>"

// Version is set at build time with -ldflags "-X ...".
var Version = "dev"

// UsageError reports a wrong number of positional arguments.
type UsageError struct {
	Got int
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("expected exactly one file, got %d arguments", e.Got)
}

type rootOptions struct {
	timezone string
	noColor  bool
	verbose  bool
}

// NewRootCmd builds the usagestats command. Each call returns a command with
// fresh flag state.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "usagestats <FILE>",
		Short: "Print the activity timeline stored in an Android usage-stats file",
		Long: `usagestats reads one XML file written by Android's usage-stats service and
prints when each package was last active, followed by the full event timeline.

Daily files live under /data/system/usagestats/<user>/daily/ and are named
after the millisecond timestamp all their records are relative to. Keep the
original file name: it is the base of every timestamp in the report.

Package summaries whose last event is NONE are omitted. Timeline events are
always listed, in file order.`,
		Example: `  # Pull and parse a daily file
  adb pull /data/system/usagestats/0/daily/1438905600000
  usagestats 1438905600000

  # Render timestamps in UTC
  usagestats --tz UTC 1438905600000`,
		Version:       Version,
		Args:          exactlyOneFile,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.timezone, "tz", "", "IANA timezone for timestamps (default: $USAGESTATS_TZ or local)")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable styled section headers")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log decoding details to stderr")

	return cmd
}

func exactlyOneFile(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return &UsageError{Got: len(args)}
	}
	return nil
}

func runRoot(cmd *cobra.Command, opts *rootOptions, path string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := log.New(io.Discard, "usagestats: ", 0)
	if opts.verbose {
		logger = log.New(cmd.ErrOrStderr(), "usagestats: ", log.LstdFlags)
	}

	loc, err := cfg.Location(opts.timezone)
	if err != nil {
		return err
	}

	doc, err := usagestats.Open(path)
	if err != nil {
		return err
	}
	logger.Printf("%s: base %d, %d package summaries (%d shown), %d events",
		path, doc.Base, len(doc.Packages), len(doc.VisiblePackages()), len(doc.Events))

	renderer := output.NewRenderer(cmd.OutOrStdout(), loc)
	if opts.noColor || cfg.ColorDisabled() {
		renderer.SetColor(false)
	}
	if err := renderer.Render(doc); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// Execute runs the root command with the process arguments.
func Execute() error {
	return NewRootCmd().Execute()
}

// Describe formats err for the user, adding a hint when the file name is
// not a timestamp, the usual result of renaming a pulled file.
func Describe(err error) string {
	var recordErr *usagestats.MalformedRecordError
	if errors.As(err, &recordErr) && recordErr.IsFilename() {
		return err.Error() + "\nKeep the file name the device gave it, e.g. 1438905600000"
	}
	return err.Error()
}
