package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/minipy/foundation/core/log"
	"github.com/msto63/minipy/foundation/minipy"
	"github.com/msto63/minipy/internal/render"
	"github.com/msto63/minipy/pkg/core/config"
	"github.com/msto63/minipy/pkg/core/logging"
	"github.com/msto63/minipy/pkg/core/version"
)

var (
	cfgFile      string
	verbose      bool
	logFormat    string
	outputFormat string
	colorMode    string

	appConfig *config.Config
	logger    = mdwlog.Discard()
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "minipy",
	Short: "minipy - Python subset lexer and parser",
	Long: `minipy lexes and parses a reduced Python-like language and prints
the tokens or statements it finds.

Commands:
  parse    - print the statements of source files
  tokens   - print the token stream of a source file
  watch    - re-parse source files whenever they change
  config   - print the effective configuration
  version  - print version information`,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

// Execute runs the root command and reports a failure on stderr
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	// post-run hooks are skipped when a command fails
	if closeErr := teardown(rootCmd, nil); err == nil {
		err = closeErr
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $MINIPY_CONFIG or ./minipy.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (json, text, console)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "", "output format (text, json, yaml)")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "", "color mode (auto, always, never)")
}

// setup loads the configuration and creates the logger
func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		appConfig, err = config.Load(cfgFile)
	} else {
		appConfig, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	if logFormat != "" {
		appConfig.General.LogFormat = logFormat
	}
	if outputFormat != "" {
		appConfig.Output.Format = outputFormat
	}
	if colorMode != "" {
		appConfig.Output.Color = colorMode
	}
	if err := appConfig.Validate(); err != nil {
		return err
	}
	if err := appConfig.CheckRequires(version.Tool); err != nil {
		return err
	}

	logger, logCloser, err = logging.FromConfig(appConfig, verbose, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	logger.Debug("configuration loaded", mdwlog.Fields{
		"path":    appConfig.Path(),
		"command": cmd.Name(),
	})
	return nil
}

func teardown(cmd *cobra.Command, args []string) error {
	if logCloser == nil {
		return nil
	}
	err := logCloser.Close()
	logCloser = nil
	return err
}

// engine creates the lexer and parser front end from the configuration
func engine() *minipy.Engine {
	return minipy.New(minipy.Options{
		Logger:           logger,
		PromoteConstants: appConfig.Lexer.PromoteConstants,
		DigitNames:       appConfig.Lexer.DigitNames,
	})
}

// printer creates the output printer for w from the configuration
func printer(w io.Writer) (*render.Printer, error) {
	return render.New(w, render.Options{
		Format: appConfig.Output.Format,
		Color:  appConfig.Output.Color,
		Indent: appConfig.Output.Indent,
	})
}

// openSource opens path, or stdin for "-"
func openSource(cmd *cobra.Command, path string) (string, io.ReadCloser, error) {
	if path == "-" {
		return "<stdin>", io.NopCloser(cmd.InOrStdin()), nil
	}
	file, err := os.Open(path)
	if err != nil {
		return path, nil, err
	}
	return path, file, nil
}

func printError(w io.Writer, err error) {
	color := render.ColorAuto
	if appConfig != nil {
		color = appConfig.Output.Color
	}
	p, perr := render.New(w, render.Options{Color: color})
	if perr != nil {
		fmt.Fprintf(w, "error: %v\n", err)
		return
	}
	p.Error(err)
}
