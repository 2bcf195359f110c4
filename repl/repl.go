package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/emalang/ema/internal/config"
	"github.com/emalang/ema/lisp"
)

// GoodBye is printed when the REPL exits.
const GoodBye = "good bye"

// Option configures RunRepl.
type Option func(*options)

type options struct {
	prompt      string
	historyFile string
	color       bool
	showStack   bool
}

// WithPrompt sets the prompt displayed before each expression.
func WithPrompt(prompt string) Option {
	return func(o *options) { o.prompt = prompt }
}

// WithHistoryFile persists line history in path.
func WithHistoryFile(path string) Option {
	return func(o *options) { o.historyFile = path }
}

// WithColor enables colored output.
func WithColor(enable bool) Option {
	return func(o *options) { o.color = enable }
}

// WithStackTrace prints the call stack of runtime errors.
func WithStackTrace(enable bool) Option {
	return func(o *options) { o.showStack = enable }
}

// RunRepl runs an interactive loop evaluating expressions with ev until the
// exit command or the end of input.
func RunRepl(ev *lisp.Evaluator, opts ...Option) error {
	o := &options{prompt: config.DefaultPrompt}
	for _, opt := range opts {
		opt(o)
	}
	styles := PlainStyles()
	if o.color {
		styles = ColorStyles()
	}
	prompt := styles.Prompt.Render(o.prompt)
	contPrompt := strings.Repeat(" ", len(o.prompt))

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     o.historyFile,
		AutoComplete:    &completer{ev: ev},
		InterruptPrompt: "^C",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	session := NewSession(ev, rl.Stdout(), styles)
	session.ShowStack = o.showStack
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			session.Reset()
			rl.SetPrompt(prompt)
			continue
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		switch session.Feed(line) {
		case StatusExit:
			fmt.Fprintln(rl.Stdout(), GoodBye)
			return nil
		case StatusPending:
			rl.SetPrompt(contPrompt)
		default:
			rl.SetPrompt(prompt)
		}
	}
	fmt.Fprintln(rl.Stdout(), GoodBye)
	return nil
}
