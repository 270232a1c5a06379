package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
	apppkg "github.com/kk-code-lab/partscat/internal/app"
	"github.com/kk-code-lab/partscat/internal/config"
	fsutil "github.com/kk-code-lab/partscat/internal/fs"
	"github.com/kk-code-lab/partscat/internal/logging"
	statepkg "github.com/kk-code-lab/partscat/internal/state"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

var (
	// Version is injected at build time
	Version = "dev"
	// ProgramName is injected at build time
	ProgramName = "partscat"
)

func main() {
	// Fall back to UTF-8 so accented make and model names render on
	// terminals that do not announce a charset.
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	// A .env file in the working directory may carry PARTSCAT_* overrides.
	_ = godotenv.Load()

	runMain(os.Args, os.Exit)
}

func runMain(args []string, exit func(int)) {
	if err := Execute(Version, args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}
}

// Execute is the entry point for the CLI, extracted for testing
func Execute(version string, args []string, stdout io.Writer) error {
	rootCmd := &cobra.Command{
		Use:   ProgramName,
		Short: "Parts catalogue browser",
		Long: `Browse a make/model/year catalogue of documents in four cascading
columns and open the chosen document with the desktop's default viewer.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowser(cmd.Flags(), version)
		},
	}

	rootCmd.SetVersionTemplate(`{{.Version}}
`)

	config.RegisterFlags(rootCmd.PersistentFlags())
	rootCmd.AddCommand(newConfigCommand(stdout), newListCommand(stdout))
	rootCmd.SetOut(stdout)
	rootCmd.SetArgs(args)

	return rootCmd.Execute()
}

func newConfigCommand(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the resolved settings as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadSettingsWithFlags(cmd.Flags())
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(stdout)
			enc.SetIndent(2)
			if err := enc.Encode(settings); err != nil {
				return fmt.Errorf("encode settings: %w", err)
			}
			return enc.Close()
		},
	}
}

func newListCommand(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "list [make [model [year]]]",
		Short: "Print the entries of the next catalogue level",
		Long: `Print the makes, the models of a make, the years of a model, or the
documents of a year, one per line.`,
		Args: cobra.MaximumNArgs(statepkg.LevelCount - 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadSettingsWithFlags(cmd.Flags())
			if err != nil {
				return err
			}
			logger, closer, err := openLogger(settings)
			if err != nil {
				return err
			}
			defer closer.Close()
			logRootProblem(settings, logger)

			names, err := listLevel(settings, args, logger)
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(stdout, name)
			}
			return nil
		},
	}
}

// listLevel walks the cascade down path and returns the names listed one
// level below it. An unreadable root lists nothing.
func listLevel(settings *config.Settings, path []string, logger zerolog.Logger) ([]string, error) {
	state := statepkg.NewAppState(settings.Root, settings.Extension, settings.HideHidden)
	reducer := statepkg.NewStateReducer(logger)
	reducer.Refresh(state)

	for i, name := range path {
		level := statepkg.Level(i)
		name = norm.NFC.String(name)
		idx := -1
		for j, entry := range state.Column(level).Items {
			if entry.Name == name {
				idx = j
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("%s %q not found", level, name)
		}
		if _, err := reducer.Reduce(state, statepkg.SelectAction{Level: level, Index: idx}); err != nil {
			return nil, err
		}
	}

	return fsutil.Names(state.Column(statepkg.Level(len(path))).Items), nil
}

func runBrowser(flags *pflag.FlagSet, version string) error {
	settings, err := config.LoadSettingsWithFlags(flags)
	if err != nil {
		return err
	}

	logger, closer, err := openLogger(settings)
	if err != nil {
		return err
	}
	defer closer.Close()
	logRootProblem(settings, logger)

	logger.Info().
		Str("version", version).
		Str("root", settings.Root).
		Str("extension", settings.Extension).
		Str("opener", settings.Opener).
		Bool("hide_hidden", settings.HideHidden).
		Msg("starting")

	app, err := apppkg.NewApplication(settings, logger)
	if err != nil {
		return fmt.Errorf("initialize terminal: %w", err)
	}
	app.Run()
	return nil
}

// logRootProblem records why the catalogue root cannot be listed. The browser
// still starts and shows an empty catalogue.
func logRootProblem(settings *config.Settings, logger zerolog.Logger) {
	if err := settings.CheckRoot(); err != nil {
		logger.Debug().Err(err).Msg("catalogue root unavailable")
	}
}

func openLogger(settings *config.Settings) (zerolog.Logger, io.Closer, error) {
	logger, closer, err := logging.New(logging.Config{
		File:  settings.Log.File,
		Level: settings.Log.Level,
	})
	if err != nil {
		return logger, closer, fmt.Errorf("logging: %w", err)
	}
	return logger, closer, nil
}
