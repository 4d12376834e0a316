// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package opvm

import (
	"fmt"
	"os"

	_ "github.com/BOXFoundation/opvm/commands/opvm/disasm"  // init disasm cmd
	_ "github.com/BOXFoundation/opvm/commands/opvm/exec"    // init exec cmd
	_ "github.com/BOXFoundation/opvm/commands/opvm/opcodes" // init opcodes cmd
	_ "github.com/BOXFoundation/opvm/commands/opvm/repl"    // init repl cmd
	root "github.com/BOXFoundation/opvm/commands/opvm/root"
)

// Execute is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := root.RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
