/*
Package cli implements the apod command.

It prints the URL of the Astronomy Picture of the Day (or the HD variant
with --hd) to stdout so it can be piped into other tools. Diagnostics go to
stderr.
*/
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"apod/pkg/apodclient"
	"apod/pkg/consts"
	srvc "apod/pkg/service"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Options carries process configuration into the command.
type Options struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string

	// DefaultAPIKey replaces the demo key as the --api-key default.
	DefaultAPIKey string
	// LogLevel is the logrus level used without --verbose; empty means warn.
	LogLevel string

	Version   string
	BuildTime string

	Stdout io.Writer
	Stderr io.Writer
}

type flags struct {
	date    string
	hd      bool
	apiKey  string
	json    bool
	verbose bool
}

// NewRootCommand builds the apod command tree.
func NewRootCommand(opts Options) *cobra.Command {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.DefaultAPIKey == "" {
		opts.DefaultAPIKey = consts.DemoKey
	}

	f := &flags{}

	rootCmd := &cobra.Command{
		Use:   "apod",
		Short: "Print the Astronomy Picture of the Day URL",
		Long: `Queries NASA's APOD (Astronomy Picture Of the Day) API and prints the
link to the picture of the day, or of the day given with --date.

With --hd the high resolution link is printed instead. Some days have no
high resolution image; the command then fails rather than printing nothing.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, f)
		},
	}
	rootCmd.SetOut(opts.Stdout)
	rootCmd.SetErr(opts.Stderr)

	rootCmd.Flags().StringVarP(&f.date, "date", "d", "", "The date [YYYY-MM-DD] of the APOD image to retrieve.")
	rootCmd.Flags().BoolVar(&f.hd, "hd", false, "Retrieve the high resolution image.")
	rootCmd.Flags().StringVarP(&f.apiKey, "api-key", "a", opts.DefaultAPIKey, "API key to use for api.nasa.gov.")
	rootCmd.Flags().BoolVar(&f.json, "json", false, "Print the full metadata document as JSON.")
	rootCmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Log requests to stderr.")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(opts.Stdout, "apod version %s (built %s)\n", opts.Version, opts.BuildTime)
		},
	})

	return rootCmd
}

func run(ctx context.Context, opts Options, f *flags) error {
	if ctx == nil {
		ctx = context.Background()
	}

	// stdout carries only the result
	logrus.SetOutput(opts.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logrus.SetLevel(logLevel(opts.LogLevel, f.verbose))

	client := apodclient.NewClient(apodclient.Config{
		BaseURL:   opts.BaseURL,
		Timeout:   opts.Timeout,
		UserAgent: opts.UserAgent,
	})
	services := srvc.NewService(client)

	p := apodclient.Params{
		APIKey: f.apiKey,
		Date:   f.date,
		HD:     f.hd,
	}

	logrus.WithFields(logrus.Fields{"date": p.Date, "hd": p.HD}).Debug("fetching picture")

	if f.json {
		md, err := services.Metadata(ctx, p)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(opts.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(md)
	}

	u, err := services.ImageURL(ctx, p)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(opts.Stdout, u)
	return err
}

func logLevel(configured string, verbose bool) logrus.Level {
	if verbose {
		return logrus.DebugLevel
	}
	if configured == "" {
		return logrus.WarnLevel
	}

	level, err := logrus.ParseLevel(configured)
	if err != nil {
		return logrus.WarnLevel
	}
	return level
}
