// Command folio-loc writes the line-level change log of a git repository as CSV
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"folio/internal/adapters/gitloc"
	"folio/internal/core/loc"
	"folio/internal/core/version"
	"folio/internal/platform/config"
	perr "folio/internal/platform/errors"
	"folio/internal/platform/logger"
)

var (
	flagRepo     string
	flagOut      string
	flagRev      string
	flagExclude  []string
	flagTabWidth int
)

var rootCmd = &cobra.Command{
	Use:     "folio-loc",
	Short:   "Blame every file of a repository into a line-level change log",
	Version: version.Info().Version,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd.Context())
	},
}

func init() {
	rootCmd.Flags().StringVar(&flagRepo, "repo", ".", "repository directory")
	rootCmd.Flags().StringVarP(&flagOut, "out", "o", "-", "output CSV path, - for stdout")
	rootCmd.Flags().StringVar(&flagRev, "rev", "", "revision to blame (default HEAD)")
	rootCmd.Flags().StringSliceVar(&flagExclude, "exclude", gitloc.DefaultExclude, "path patterns to skip")
	rootCmd.Flags().IntVar(&flagTabWidth, "tab-width", 2, "spaces per indentation level")
}

func run(ctx context.Context) error {
	log := logger.Named("folio-loc")

	records, err := gitloc.Generate(ctx, flagRepo, gitloc.Options{
		Rev:      flagRev,
		Exclude:  flagExclude,
		TabWidth: flagTabWidth,
	})
	if err != nil {
		return err
	}

	if err := writeLog(flagOut, records); err != nil {
		return err
	}
	log.Info().Int("records", len(records)).Str("out", flagOut).Msg("change log written")
	return nil
}

// writeLog writes records as CSV to path, or to stdout for "-". A file is closed
// before returning so a failed flush is reported
func writeLog(path string, records []loc.LineRecord) (err error) {
	if path == "-" {
		return loc.Write(os.Stdout, records)
	}
	f, err := os.Create(path)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "folio-loc: create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = perr.Wrapf(cerr, perr.ErrorCodeUnavailable, "folio-loc: close %s", path)
		}
	}()
	return loc.Write(f, records)
}

func main() {
	_ = config.LoadDotEnv()
	version.Service = "folio-loc"

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
