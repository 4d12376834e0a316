// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package disasm

import (
	"fmt"
	"strings"

	root "github.com/BOXFoundation/opvm/commands/opvm/root"
	"github.com/BOXFoundation/opvm/util"
	"github.com/BOXFoundation/opvm/vm"
	"github.com/spf13/cobra"
)

var disasmCmd = &cobra.Command{
	Use:   "disasm [instructions]",
	Short: "Disassemble an instruction stream without executing it.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := root.Setup()
		code, err := util.DecodeInstruction(strings.Join(args, ""), cfg.VM.Encoding)
		if err != nil {
			return err
		}
		for _, line := range strings.Split(vm.Disasm(code), "; ") {
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
		return nil
	},
}

func init() {
	root.RootCmd.AddCommand(disasmCmd)
}
