package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/emalang/ema/internal/config"
	"github.com/emalang/ema/internal/log"
	"github.com/emalang/ema/lisp"
	"github.com/emalang/ema/lisp/lisplib"
	"github.com/emalang/ema/parser"
	"github.com/emalang/ema/repl"
)

var (
	cfgFile     string
	logLevel    string
	logFormat   string
	maxDepth    int
	moduleExt   string
	showStack   bool
	noColor     bool
	profileMode string
	profileDir  string

	cfg    = config.Default()
	logger = log.Discard()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ema [file]",
	Short: "The ema language interpreter",
	Long: `Evaluate an ema source file or, without arguments, start an
interactive read-eval-print loop.`,
	Args:              cobra.MaximumNArgs(1),
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		stopProfile()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		ev, err := newEvaluator(cmd)
		if err != nil {
			return err
		}
		if len(args) == 0 {
			return repl.RunRepl(ev,
				repl.WithPrompt(cfg.Prompt),
				repl.WithHistoryFile(cfg.HistoryFile),
				repl.WithColor(cfg.Color && !noColor),
				repl.WithStackTrace(showStack))
		}
		runFile(cmd, ev, args[0])
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.  This is called by main.main().  It only needs to happen
// once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "",
		fmt.Sprintf("Configuration file (default $HOME/%s)", config.FileName))
	flags.StringVar(&logLevel, "log-level", "",
		"Diagnostic log level (trace, debug, info, warn, error)")
	flags.StringVar(&logFormat, "log-format", "",
		"Diagnostic log format (text, json)")
	flags.IntVar(&maxDepth, "max-depth", -1,
		"Maximum depth of nested function calls (0 for no limit)")
	flags.StringVar(&moduleExt, "module-ext", "",
		"File extension of imported modules")
	flags.BoolVar(&showStack, "stack", false,
		"Print the call stack of runtime errors")
	flags.BoolVar(&noColor, "no-color", false,
		"Disable colored REPL output")
	flags.StringVar(&profileMode, "profile", "",
		fmt.Sprintf("Profile the interpreter (%s)", profileModeNames()))
	flags.StringVar(&profileDir, "profile-dir", ".",
		"Directory receiving profile output")
}

// setup loads the configuration file, applies flag overrides and starts the
// profiler.
func setup(cmd *cobra.Command, args []string) error {
	path := cfgFile
	if path == "" {
		path = config.DefaultPath()
	}
	c, err := config.Load(path)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		c.Log.Level = logLevel
	}
	if flags.Changed("log-format") {
		c.Log.Format = logFormat
	}
	if flags.Changed("max-depth") {
		c.MaxDepth = maxDepth
	}
	if flags.Changed("module-ext") {
		c.ModuleExt = moduleExt
	}
	err = c.Validate()
	if err != nil {
		return err
	}
	cfg = c
	logger = log.New(cmd.ErrOrStderr(), cfg.LogOptions()...)
	logger.Debug("configuration loaded", slog.String("path", path))
	return startProfile(profileMode, profileDir)
}

func newEvaluator(cmd *cobra.Command) (*lisp.Evaluator, error) {
	configs := []lisp.Config{
		lisp.WithReader(parser.NewReader()),
		lisp.WithModuleLoader(lisplib.DefaultLoader()),
		lisp.WithLogger(logger),
		lisp.WithStdout(cmd.OutOrStdout()),
		lisp.WithStderr(cmd.ErrOrStderr()),
	}
	configs = append(configs, cfg.EvaluatorConfigs()...)
	return lisp.NewEvaluator(configs...)
}

// runFile evaluates the file at path.  Errors are printed, not returned, so
// that the exit status does not depend on the program.
func runFile(cmd *cobra.Command, ev *lisp.Evaluator, path string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	fmt.Fprintln(cmd.OutOrStdout(), abs)
	_, err = ev.LoadFile(abs)
	if err != nil {
		printError(cmd, err)
	}
}

func printError(cmd *cobra.Command, err error) {
	fmt.Fprintln(cmd.ErrOrStderr(), err)
	lerr, ok := err.(*lisp.Error)
	if showStack && ok && lerr.Stack != nil {
		lerr.Stack.DebugPrint(cmd.ErrOrStderr())
	}
}
