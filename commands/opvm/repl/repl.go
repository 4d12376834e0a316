// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	root "github.com/BOXFoundation/opvm/commands/opvm/root"
	"github.com/BOXFoundation/opvm/log"
	"github.com/BOXFoundation/opvm/thread"
	"github.com/BOXFoundation/opvm/util"
	"github.com/jbenet/goprocess"
	"github.com/spf13/cobra"
)

const prompt = "> "

var logger = log.NewLogger("repl")

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Execute instructions read line by line on one stack.",
	Long: `Read one instruction per line from stdin and execute it on a stack
that lives for the whole session. Besides instructions, these commands are
understood:

  :stack            print the stack
  :pop8 :pop16 :pop32
                    pop a value off the stack
  :reset            start over with an empty stack
  :quit             end the session (as does EOF or Ctrl+C)`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := root.Setup()
		proc := goprocess.WithSignals(os.Interrupt)
		defer proc.Close()

		s := newSession(cmd.OutOrStdout(), cfg.VM.Encoding, cfg.VM.Trace)
		logger.Infof("repl session started on thread %s", s.th.ID())
		return s.run(proc, cmd.InOrStdin())
	},
}

func init() {
	root.RootCmd.AddCommand(replCmd)
}

type session struct {
	out      io.Writer
	encoding string
	trace    bool
	th       *thread.Thread
}

func newSession(out io.Writer, encoding string, trace bool) *session {
	return &session{
		out:      out,
		encoding: encoding,
		trace:    trace,
		th:       thread.New(thread.WithTrace(trace)),
	}
}

// run evaluates lines from in until EOF, :quit or proc closing.
func (s *session) run(proc goprocess.Process, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	lines := make(chan string)
	go func() {
		defer close(lines)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-proc.Closing():
				return
			}
		}
	}()

	fmt.Fprint(s.out, prompt)
	for {
		select {
		case <-proc.Closing():
			fmt.Fprintln(s.out)
			return nil
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(s.out)
				return scanner.Err()
			}
			if quit := s.eval(line); quit {
				return nil
			}
			fmt.Fprint(s.out, prompt)
		}
	}
}

func (s *session) eval(line string) (quit bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return false
	}

	stack := s.th.Stack()
	switch line {
	case ":quit", ":q":
		return true
	case ":stack":
		stack.Print(s.out)
	case ":reset":
		s.th = thread.New(thread.WithTrace(s.trace))
		fmt.Fprintln(s.out, "stack reset")
	case ":pop8":
		v, err := stack.Pop8()
		s.printValue(uint32(v), 2, err)
	case ":pop16":
		v, err := stack.Pop16()
		s.printValue(uint32(v), 4, err)
	case ":pop32":
		v, err := stack.Pop32()
		s.printValue(v, 8, err)
	default:
		if strings.HasPrefix(line, ":") {
			fmt.Fprintf(s.out, "error: unknown command %s\n", line)
			return false
		}
		s.exec(line)
	}
	return false
}

func (s *session) exec(line string) {
	code, err := util.DecodeInstruction(line, s.encoding)
	if err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
		return
	}
	delta, err := s.th.Exec(code)
	if err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "consumed %d pushed %d stack [%s]\n",
		delta.InstBytesConsumed, delta.DataBytesPushed, s.th.Stack())
	if trailing := len(code) - delta.InstBytesConsumed; trailing > 0 {
		fmt.Fprintf(s.out, "ignored %d trailing byte(s)\n", trailing)
	}
}

func (s *session) printValue(v uint32, digits int, err error) {
	if err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "0x%0*x (%d)\n", digits, v, v)
}
