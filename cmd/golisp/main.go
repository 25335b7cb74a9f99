package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/RichardKruemmel/golisp"
	"github.com/chzyer/readline"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var exprArgs []string

var rootCmd = &cobra.Command{
	Use:   "golisp [file]",
	Short: "Evaluate lisp code or start a repl",
	Long: `Evaluate lisp code from a file, from -e arguments, or from stdin.
With no arguments and a terminal on stdin, start an interactive repl.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(exprArgs) > 0 {
			env := golisp.NewEnv(nil)
			for _, src := range exprArgs {
				if err := run(env, src); err != nil {
					return err
				}
			}
			return nil
		}
		if len(args) == 1 {
			b, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			return run(golisp.NewEnv(nil), string(b))
		}
		if isatty.IsTerminal(os.Stdin.Fd()) {
			return repl("> ")
		}
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		return run(golisp.NewEnv(nil), string(b))
	},
}

func run(env *golisp.Env, src string) error {
	vals, err := golisp.EvalProgram(env, src)
	if err != nil {
		return err
	}
	for _, v := range vals {
		fmt.Println(v)
	}
	return nil
}

func repl(prompt string) error {
	rl, err := readline.New(prompt)
	if err != nil {
		return err
	}
	defer rl.Close()
	contPrompt := strings.Repeat(" ", len(prompt))

	env := golisp.NewEnv(nil)
	var buf []byte
	for {
		line, err := rl.ReadSlice()
		if err == readline.ErrInterrupt {
			buf = nil
			rl.SetPrompt(prompt)
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if len(buf) != 0 {
			buf = append(buf, '\n')
			line = append(buf, line...)
			buf = nil
			rl.SetPrompt(prompt)
		}
		src := string(line)
		if strings.TrimSpace(src) == "" {
			continue
		}

		toks, err := golisp.Tokenize(src)
		if err != nil {
			errln(err)
			continue
		}
		if !golisp.Balanced(toks) {
			// open parens remain, keep reading
			buf = append([]byte(nil), line...)
			rl.SetPrompt(contPrompt)
			continue
		}
		expr, err := golisp.Parse(toks)
		if err != nil {
			errln(err)
			continue
		}
		v, err := golisp.Eval(env, expr)
		if err != nil {
			errln(err)
			continue
		}
		fmt.Println(v)
	}
}

func errln(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
}

func main() {
	rootCmd.Flags().StringArrayVarP(&exprArgs, "expr", "e", nil, "expressions to evaluate in order")
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
