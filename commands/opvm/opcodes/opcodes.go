// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package opcodes

import (
	"fmt"
	"io"
	"text/tabwriter"

	root "github.com/BOXFoundation/opvm/commands/opvm/root"
	"github.com/BOXFoundation/opvm/vm"
	"github.com/spf13/cobra"
)

var opcodesCmd = &cobra.Command{
	Use:   "opcodes",
	Short: "List the opcode table.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printTable(cmd.OutOrStdout())
	},
}

func init() {
	root.RootCmd.AddCommand(opcodesCmd)
}

func printTable(out io.Writer) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tWIDTH\tLENGTH")
	for _, op := range vm.OpCodes() {
		fmt.Fprintf(w, "%#04x\t%s\t%d\t%d\n", uint16(op.Code), op.Name, op.Width, op.MinLength)
	}
	w.Flush()
}
