// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package root

import (
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/BOXFoundation/opvm/config"
	"github.com/BOXFoundation/opvm/log"
	"github.com/BOXFoundation/opvm/metrics"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// root command
var cfgFile string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "opvm",
	Short: "opvm byte code engine command-line interface",
	Long: `opvm executes and disassembles byte code instructions. An instruction
is a big-endian 16-bit opcode followed by its operands.`,
	Example: `
1. execute one instruction (21 + 3)
  ./opvm exec 00001503
2. disassemble an instruction stream
  ./opvm disasm 000015030001034d0458
3. execute instructions line by line on one stack
  ./opvm repl
4. list the opcode table
  ./opvm opcodes
	`,
	Version: fmt.Sprintf("%s %s(%s) %s\n", config.Version, config.GitCommit, config.GitBranch, config.GoVersion),
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if viper.GetBool("metrics.dump") {
			metrics.Dump(cmd.OutOrStdout())
		}
		log.Close()
	},
}

var logger = log.NewLogger("cmd")

// init sets flags appropriately.
func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is nil)")

	RootCmd.PersistentFlags().String("workspace", "", "work directory for opvm (default ~/.opvm)")
	viper.BindPFlag("workspace", RootCmd.PersistentFlags().Lookup("workspace"))

	RootCmd.PersistentFlags().String("log-level", "warning", "log level [debug|info|warning|error|fatal]")
	viper.BindPFlag("log.level", RootCmd.PersistentFlags().Lookup("log-level"))

	RootCmd.PersistentFlags().String("log-output", "stderr", "log output [stdout|stderr|<filename>]")
	viper.BindPFlag("log.output", RootCmd.PersistentFlags().Lookup("log-output"))

	RootCmd.PersistentFlags().StringP("encoding", "e", "hex", "instruction text encoding [hex|base58]")
	viper.BindPFlag("vm.encoding", RootCmd.PersistentFlags().Lookup("encoding"))

	RootCmd.PersistentFlags().Bool("trace", false, "log every executed instruction")
	viper.BindPFlag("vm.trace", RootCmd.PersistentFlags().Lookup("trace"))

	RootCmd.PersistentFlags().Bool("metrics", false, "print metrics on exit")
	viper.BindPFlag("metrics.dump", RootCmd.PersistentFlags().Lookup("metrics"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	logger.SetLogLevel(viper.GetString("log.level"))

	// Find home directory.
	home, err := homedir.Dir()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	}

	viper.SetEnvPrefix("opvm")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	viper.SetDefault("workspace", path.Join(home, ".opvm"))

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		logger.Infof("Using config file: %s", viper.ConfigFileUsed())
	}
}

// Setup reads the configuration and sets up logging and metrics. A log
// output that cannot be opened terminates the process.
func Setup() *config.Config {
	cfg := &config.Config{}
	// init config object from viper
	if err := viper.Unmarshal(cfg); err != nil {
		fmt.Fprintln(os.Stderr, "Failed to read config", err)
		os.Exit(1)
	}
	if err := cfg.Prepare(); err != nil {
		fmt.Fprintln(os.Stderr, "Incorrect config", err)
		os.Exit(1)
	}
	if err := log.Setup(&cfg.Log); err != nil {
		fmt.Fprintln(os.Stderr, "Failed to setup log", err)
		os.Exit(1)
	}
	metrics.Run(&cfg.Metrics)
	logger.Debugf("config:\n%s", cfg)
	return cfg
}
