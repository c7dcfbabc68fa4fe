package main

import (
	"log"

	"github.com/spf13/cobra"
)

// platformCommands holds the commands only some operating systems support.
var platformCommands []func(env Env) *cobra.Command

func newRootCmd(env Env) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "prcictl",
		Short:         "Inspect and simulate FU540 clock bring-up",
		Long:          "prcictl runs the FU540 PRCI bring-up against a register-level model, prints the PLL presets and reads the live PRCI block of a running board.",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.AddCommand(newSimCmd(env), newPresetsCmd(env), newBoardsCmd(env), newEnvCmd(env))
	for _, newCmd := range platformCommands {
		rootCmd.AddCommand(newCmd(env))
	}
	return rootCmd
}

func main() {
	log.SetFlags(0)
	if err := newRootCmd(Environment()).Execute(); err != nil {
		log.Fatal("prcictl: ", err)
	}
}
