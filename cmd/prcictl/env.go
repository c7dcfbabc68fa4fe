package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

type Env map[string]string

func Environment() Env {
	return map[string]string{
		"PRCIBOARD":  getenv("PRCIBOARD", "hifive-unleashed"),
		"PRCIFORMAT": getenv("PRCIFORMAT", "text"),
		"PRCIDTB":    getenv("PRCIDTB", "/sys/firmware/fdt"),
		"PRCIMEM":    getenv("PRCIMEM", "/dev/mem"),
	}
}

func (e Env) Value(key string) string {
	if v, ok := e[key]; ok {
		return v
	}
	return ""
}

func (e Env) List() []string {
	var result []string
	for key, value := range e {
		result = append(result, fmt.Sprintf("%s=%s", key, value))
	}
	slices.Sort(result)
	return result
}

func getenv(key, _default string) (value string) {
	value = os.Getenv(key)
	if len(value) == 0 {
		value = _default
	}
	return value
}

func newEnvCmd(env Env) *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Print prcictl environment information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, line := range env.List() {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
		},
	}
}
