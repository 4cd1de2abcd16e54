package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"cli-tabdb-helper/internal/app"
	"cli-tabdb-helper/internal/config"
	"cli-tabdb-helper/internal/stats"
)

// logLevel is shared with the default slog handler so config can raise or
// lower it after flags are parsed.
var logLevel slog.LevelVar

type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func newRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   "tabdb",
		Short: "Filter the ukulele tab database",
		Long: `tabdb reads tabdb.csv and asks for up to eleven filter values
(artist, year, type, gender, duration, language, tabber, source, date,
difficulty, special books). Press enter to skip a filter. Songs matching every
filter given are listed.

Environment: TABDB_DATA_DIR, TABDB_TABDB, TABDB_PLAYDB, TABDB_REQUESTDB and
TABDB_LOG_LEVEL override the defaults; a .env file in the working directory is
read first.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, v, app.Options{Mode: app.ModeFilter})
		},
	}
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		cmd.PrintErrln(cmd.UsageString())
		return usageError{err: err}
	})

	flags := root.PersistentFlags()
	flags.String("data-dir", ".", "Directory the data file patterns are resolved against")
	flags.String("tabdb", "tabdb.csv", "Tab database file name or glob pattern")
	flags.String("playdb", "playdb.csv", "Play history file name or glob pattern")
	flags.String("requestdb", "requestdb.csv", "Request log file name or glob pattern")
	flags.String("log-level", "warn", "Log level (debug, info, warn, error)")
	for _, name := range []string{"data-dir", "tabdb", "playdb", "requestdb", "log-level"} {
		if err := v.BindPFlag(strings.ReplaceAll(name, "-", "_"), flags.Lookup(name)); err != nil {
			slog.Error("Error binding flag", "flag", name, "error", err)
		}
	}

	root.AddCommand(newFilterCmd(v), newStatsCmd(v), newPlaysCmd(v), newRequestsCmd(v))
	return root
}

func newFilterCmd(v *viper.Viper) *cobra.Command {
	var queryFile string
	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Filter songs interactively or from a YAML query file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, v, app.Options{Mode: app.ModeFilter, QueryFile: queryFile})
		},
	}
	cmd.Flags().StringVar(&queryFile, "query", "", "YAML file mapping field names to filter values")
	return cmd
}

func newStatsCmd(v *viper.Viper) *cobra.Command {
	names := make([]string, 0, len(stats.Dimensions))
	for _, d := range stats.Dimensions {
		names = append(names, string(d))
	}
	return &cobra.Command{
		Use:       "stats <dimension>",
		Short:     "Count songs by " + strings.Join(names, ", "),
		Args:      cobra.ExactArgs(1),
		ValidArgs: names,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v, app.Options{Mode: app.ModeStats, Dimension: args[0]})
		},
	}
}

func newPlaysCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "plays [song]",
		Short: "Show how often a song was played, or plays per session",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := app.Options{Mode: app.ModePlays}
			if len(args) == 1 {
				opts.Song = args[0]
			}
			return run(cmd, v, opts)
		},
	}
}

func newRequestsCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "requests <artist>",
		Short: "List songs requested for an artist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v, app.Options{Mode: app.ModeRequests, Artist: args[0]})
		},
	}
}

func run(cmd *cobra.Command, v *viper.Viper, opts app.Options) error {
	cfg, err := config.Load(v)
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}
	logLevel.Set(cfg.LogLevel)

	opts.In = cmd.InOrStdin()
	opts.Out = cmd.OutOrStdout()
	return app.Run(cmd.Context(), cfg, opts)
}
