// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package exec

import (
	"fmt"
	"io"
	"strings"

	root "github.com/BOXFoundation/opvm/commands/opvm/root"
	"github.com/BOXFoundation/opvm/thread"
	"github.com/BOXFoundation/opvm/util"
	"github.com/spf13/cobra"
)

// execCmd executes a single instruction on a fresh stack.
var execCmd = &cobra.Command{
	Use:   "exec [instruction]",
	Short: "Execute one instruction and print the resulting stack.",
	Long: `Execute one instruction on an empty stack. Bytes following the
instruction are reported and ignored.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := root.Setup()
		code, err := util.DecodeInstruction(strings.Join(args, ""), cfg.VM.Encoding)
		if err != nil {
			return err
		}
		return run(cmd.OutOrStdout(), code, thread.New(thread.WithTrace(cfg.VM.Trace)))
	},
}

func init() {
	root.RootCmd.AddCommand(execCmd)
}

func run(out io.Writer, code []byte, th *thread.Thread) error {
	delta, err := th.Exec(code)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "consumed: %d\n", delta.InstBytesConsumed)
	fmt.Fprintf(out, "pushed: %d\n", delta.DataBytesPushed)
	if trailing := len(code) - delta.InstBytesConsumed; trailing > 0 {
		fmt.Fprintf(out, "ignored: %d trailing byte(s)\n", trailing)
	}
	th.Stack().Print(out)
	return nil
}
