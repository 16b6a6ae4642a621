package cli

import (
	"context"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/funcalc"
	"github.com/npillmayer/funcalc/evaluator"
	"github.com/npillmayer/funcalc/funcalc/ui/termui"
	"github.com/npillmayer/funcalc/grammar"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

const version = "0.1"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "funcalc",
	Short: "A calculator for expressions and functions",
	Long: `Welcome to funcalc V0.1

funcalc evaluates arithmetic expressions, stores global variables and lets
you define functions of one expression, which may be plotted to the terminal.

funcalc is able to run in interactive mode or evaluate statements in
batch-mode, given with -e or on standard input.

`,
	Args: cobra.NoArgs,
	Run:  runFuncalcCmd,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called exactly once by main().
func Execute() {
	if rootCmd.Execute() != nil {
		funcalc.Exit(2)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
	addFlags(rootCmd)
}

func addFlags(cmd *cobra.Command) {
	defaults := funcalc.Defaults()
	// persistent flags which will be global for the application
	flags := cmd.PersistentFlags()
	flags.BoolP("interactive", "i", false, "Force run in interactive mode")
	flags.String("logfile", "stderr", "URL of log output location")
	flags.StringArrayP("eval", "e", nil, "Evaluate a statement (may be repeated)")
	flags.Int("max-depth", defaults[funcalc.KeyMaxDepth].(int), "Maximum nesting of function calls")
	flags.Int("max-samples", defaults[funcalc.KeyMaxSamples].(int), "Maximum number of samples per plot")
	flags.Int("precision", defaults[funcalc.KeyPrecision].(int), "Decimal places of results, -1 for exact")
	flags.Bool("no-fold", false, "Do not fold full-width characters of input")
}

func runFuncalcCmd(cmd *cobra.Command, args []string) {
	tracing.Infof("funcalc called")
	s := newSession(funcalc.Configuration)
	stmts, _ := cmd.Flags().GetStringArray("eval")
	interactive, _ := cmd.Flags().GetBool("interactive")
	isTerm := readline.IsTerminal(int(os.Stdin.Fd()))
	failed := 0
	if len(stmts) > 0 {
		failed = s.runBatch(stmts, os.Stdout, os.Stderr)
	} else if !isTerm {
		var err error
		if failed, err = s.runReader(os.Stdin, os.Stdout, os.Stderr); err != nil {
			tracing.Errorf("reading input: %v", err)
			funcalc.Exit(1)
		}
	}
	if interactive || (len(stmts) == 0 && isTerm) {
		if err := runREPL(s); err != nil {
			tracing.Errorf("cannot start REPL: %v", err)
			funcalc.Exit(1)
		}
		funcalc.Exit(0)
	}
	if failed > 0 {
		tracer().Infof("%d statements failed", failed)
		funcalc.Exit(1)
	}
	funcalc.Exit(0)
}

// --- REPL ------------------------------------------------------------------

type funcalcIntpr struct {
	*termui.BaseREPL
	s *session
}

// InterpretCommand is part of interface termui.REPLCommandInterpreter.
// An interrupt stops the current statement only.
func (fi *funcalcIntpr) InterpretCommand(command string) {
	command = strings.Trim(command, "\x00")
	stdout, stderr := fi.Outputs()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	fi.s.evalLine(ctx, command, stdout, stderr)
}

func runREPL(s *session) error {
	words := append(evaluator.Builtins(), "fun", "vars", "funs", "builtins")
	for _, m := range grammar.MagicCommands() {
		words = append(words, "%"+m)
	}
	base, err := termui.NewBaseREPL("funcalc", version, locatePaths().HistoryDir(), words...)
	if err != nil {
		return err
	}
	s.formatter.Marker = "▶ "
	fi := &funcalcIntpr{BaseREPL: base, s: s}
	fi.Interpreter = fi
	fi.Helper = func(w io.Writer) {
		io.WriteString(w, helpText)
	}
	addListingCommands(fi.BaseREPL, s)
	fi.Prompt()
	return nil
}

func addListingCommands(repl *termui.BaseREPL, s *session) {
	repl.Commands["vars"] = termui.Command{
		Usage: "vars",
		Help:  "list global variables",
		Run: func(args []string, out io.Writer) {
			s.formatter.Format(s.ev.Variables(), out)
		},
	}
	repl.Commands["funs"] = termui.Command{
		Usage: "funs",
		Help:  "list user-defined functions",
		Run: func(args []string, out io.Writer) {
			s.formatter.Format(s.ev.Functions(), out)
		},
	}
	repl.Commands["builtins"] = termui.Command{
		Usage: "builtins",
		Help:  "list built-in functions",
		Run: func(args []string, out io.Writer) {
			s.formatter.Format(strings.Join(evaluator.Builtins(), " "), out)
		},
	}
}

const helpText = `
funcalc will interpret the following statements:

  <expr>                          : evaluate and print an expression
  <name> = <expr>                 : assign to a global variable
  fun <name>(<param>, …) = <expr> : define a function
  %plot2d(<fun>, <start>, <end>, <step>)
                                  : plot a function of one argument

Expressions use + - * / ^ (power), prefix - and postfix ! (factorial).
The constants PI and E are predefined. '#' starts a comment.

`
