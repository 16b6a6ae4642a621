package termui

// Utilities for interactive command line interfaces.

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/chzyer/readline"
	prtxt "github.com/jedib0t/go-pretty/v6/text"
)

// Some global defaults
var welcomeMessage = "Welcome to %s [V%s]"
var promptFormat = "%s> " // colored below, then used as a Sprintf format
var stdprompt = prtxt.FgGreen.Sprint(promptFormat)
var editmode string = "emacs"

// Command is a tool-specific REPL command. It receives the words of the
// input line, including the command itself.
type Command struct {
	Usage string // e.g. "vars"
	Help  string // one-line description
	Run   func(args []string, out io.Writer)
}

// BaseREPL is a base type to instantiate a REPL interpreter.
// Concrete REPL implementations will usually use this as a base type.
type BaseREPL struct {
	Interpreter REPLCommandInterpreter // the interpreter this REPL runs for
	Helper      func(io.Writer)        // print out help information
	Commands    map[string]Command     // tool-specific commands
	OnExit      func()                 // called when the REPL terminates, if set
	readline    *readline.Instance
	toolname    string
	version     string
}

// NewBaseREPL creates a new REPL base object initialized for an interpreter
// tool and a given version. Input history is kept in histdir, or in the
// temp directory if histdir is empty. Additional words for tab completion
// may be given.
func NewBaseREPL(toolname, version, histdir string, words ...string) (*BaseREPL, error) {
	rl, err := newReadline(toolname, histdir, words)
	if err != nil {
		return nil, err
	}
	repl := &BaseREPL{
		Commands: make(map[string]Command),
		readline: rl,
		toolname: toolname,
		version:  version,
	}
	return repl, nil
}

// REPLCommandInterpreter is an interface all interpreters have to implement.
// It is the workhorse doing interpretation of interactive
// commands.
//
// The REPL will delegate interpreting command strings (i.e. those which do not represent
// internal administrative commands) to the interpreter.
type REPLCommandInterpreter interface {
	InterpretCommand(string)
}

// Create a readline instance.
func newReadline(toolname, histdir string, words []string) (*readline.Instance, error) {
	if histdir == "" {
		histdir = os.TempDir()
	} else if err := os.MkdirAll(histdir, 0o755); err != nil {
		trace().Errorf("cannot create history directory: %v", err)
		histdir = os.TempDir()
	}
	histfile := filepath.Join(histdir, toolname+"-repl-history.tmp")
	prompt := fmt.Sprintf(stdprompt, toolname)
	return readline.NewEx(&readline.Config{
		Prompt:              prompt,
		HistoryFile:         histfile,
		AutoComplete:        replCompleter(words),
		InterruptPrompt:     "^C",
		EOFPrompt:           "exit",
		HistorySearchFold:   true,
		FuncFilterInputRune: filterReplInput,
	})
}

// displayCommands prints a help message with available commands
// We support some internal interactive sub-commands (not part of the interpreter).
func (repl *BaseREPL) displayCommands(out io.Writer) {
	io.WriteString(out, fmt.Sprintf(welcomeMessage, repl.toolname, repl.version))
	io.WriteString(out, "\n\nThe following commands are available:\n\n")
	io.WriteString(out, "  help               : print this message\n")
	io.WriteString(out, "  bye | exit         : quit application\n")
	io.WriteString(out, "  mode [mode]        : display or set current editing mode\n")
	io.WriteString(out, "  setprompt [prompt] : set current prompt [to default]\n")
	names := make([]string, 0, len(repl.Commands))
	for name := range repl.Commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		c := repl.Commands[name]
		fmt.Fprintf(out, "  %-18s : %s\n", c.Usage, c.Help)
	}
}

// Completer-tree for interactive sub-commands and words of the tool.
func replCompleter(words []string) *readline.PrefixCompleter {
	items := []readline.PrefixCompleterInterface{
		readline.PcItem("help"),
		readline.PcItem("bye"),
		readline.PcItem("exit"),
		readline.PcItem("mode",
			readline.PcItem("vi"),
			readline.PcItem("emacs"),
		),
		readline.PcItem("setprompt"),
	}
	for _, w := range words {
		items = append(items, readline.PcItem(w))
	}
	return readline.NewPrefixCompleter(items...)
}

// Outputs returns stdout and stderr of this REPL.
func (repl *BaseREPL) Outputs() (io.Writer, io.Writer) {
	return repl.readline.Stdout(), repl.readline.Stderr()
}

// Prompt enters a REPL and executes commands.
// Commands are either internal administrative (setprompt, help, etc.)
// or interpreted statements.
func (repl *BaseREPL) Prompt() {
	defer repl.readline.Close()
	io.WriteString(repl.readline.Stderr(),
		fmt.Sprintf(welcomeMessage, repl.toolname, repl.version))
	if !strings.HasSuffix(welcomeMessage, "\n") {
		repl.readline.Stderr().Write([]byte{'\n'})
	}
	for {
		line, err := repl.readline.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			break
		}
		line = strings.TrimSpace(line)
		words := strings.Fields(line)
		command := ""
		if len(words) > 0 {
			command = words[0]
		}
		if doExit := repl.executeCommand(command, words, line); doExit {
			break
		}
	}
	if repl.OnExit != nil {
		repl.OnExit()
	}
}

// Central dispatcher function to execute internal REPL commands or interpreter
// statements. It receives the command (i.e. the first word of the line),
// a list of words (args) including the command, and the complete line of text.
// If it returns true, the REPL should terminate.
func (repl *BaseREPL) executeCommand(cmd string, args []string, line string) bool {
	switch cmd {
	case "":
		// do nothing
	case "help":
		repl.displayCommands(repl.readline.Stderr())
		if repl.Helper != nil {
			repl.Helper(repl.readline.Stderr())
		}
	case "bye", "exit":
		io.WriteString(repl.readline.Stderr(), "> goodbye!\n")
		return true
	case "mode":
		if len(args) > 1 {
			switch args[1] {
			case "vi":
				repl.readline.SetVimMode(true)
				editmode = "vi"
				return false
			case "emacs":
				repl.readline.SetVimMode(false)
				editmode = "emacs"
				return false
			}
		}
		io.WriteString(repl.readline.Stderr(),
			fmt.Sprintf("> current input mode: %s\n", editmode))
	case "setprompt":
		var prmpt string
		if len(line) <= 10 {
			prmpt = fmt.Sprintf(stdprompt, repl.toolname)
		} else {
			prmpt = line[10:] + " "
		}
		repl.readline.SetPrompt(prmpt)
	default:
		// tool commands take no operators, so 'vars = 1' is still a statement
		if c, ok := repl.Commands[cmd]; ok && (len(args) == 1 || !isOperator(args[1])) {
			trace().Debugf("REPL command '%s'", cmd)
			c.Run(args, repl.readline.Stdout())
			return false
		}
		trace().Debugf("call interpreter on: '%s'", line)
		repl.interpret(line)
	}
	return false // do not exit
}

func isOperator(word string) bool {
	return strings.ContainsAny(word[:1], "=+-*/^!(")
}

// interpret calls the interpreter, sending a statement.
func (repl *BaseREPL) interpret(line string) {
	if repl.Interpreter == nil {
		return
	}
	repl.Interpreter.InterpretCommand(line)
}

// Input filter for REPL. Blocks ctrl-z.
func filterReplInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}
