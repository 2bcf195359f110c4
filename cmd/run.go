package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/emalang/ema/lisp"
)

var (
	runExpression bool
	runPrint      bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [flags] args...",
	Short: "Run ema code",
	Long: `Run ema code supplied via the command line or files.  Unlike the root
command, run exits with a non-zero status when evaluation fails.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ev, err := newEvaluator(cmd)
		if err != nil {
			return err
		}
		for _, arg := range args {
			err := runSource(cmd, ev, arg)
			if err != nil {
				printError(cmd, err)
				return fmt.Errorf("evaluation failed")
			}
		}
		return nil
	},
}

// runSource evaluates one argument of the run command.
func runSource(cmd *cobra.Command, ev *lisp.Evaluator, arg string) error {
	name := "<arg>"
	src := arg
	if !runExpression {
		b, err := os.ReadFile(arg)
		if err != nil {
			return err
		}
		name = arg
		src = string(b)
		restore := ev.SourceDir
		ev.SourceDir = filepath.Dir(arg)
		defer func() { ev.SourceDir = restore }()
	}
	exprs, err := ev.Reader.Read(name, strings.NewReader(src))
	if err != nil {
		return err
	}
	for _, expr := range exprs {
		val, err := ev.Eval(expr, ev.Global())
		if err != nil {
			return err
		}
		if runPrint {
			fmt.Fprintln(cmd.OutOrStdout(), val)
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Here flags for the run command are defined
	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as ema expressions")
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print expression values to stdout")
}
