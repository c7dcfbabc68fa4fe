//go:build linux && !tinygo

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"omibyte.io/prci/mmio"
	"omibyte.io/prci/soc/sifive/fu540/prci"
	"omibyte.io/prci/targets"
)

func init() {
	platformCommands = append(platformCommands, newDumpCmd)
}

func newDumpCmd(env Env) *cobra.Command {
	var dtb, mem, base, board, format string
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Read and decode the PRCI registers of the running board",
		Long:  "Locate the PRCI block through the device tree, map it read-only and decode every register.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := targets.All().FindByName(board)
			if err != nil {
				return err
			}

			window := region{Base: target.PRCIBase, Size: 0x1000}
			if len(base) > 0 {
				b, err := strconv.ParseUint(base, 0, 64)
				if err != nil {
					return fmt.Errorf("--base: %w", err)
				}
				window.Base = uintptr(b)
			} else if blob, err := os.ReadFile(dtb); err == nil {
				if window, err = findPRCI(blob); err != nil {
					return fmt.Errorf("%s: %w", dtb, err)
				}
			} else if !os.IsNotExist(err) {
				return err
			}

			dev, err := mmio.OpenDevMem(mem, window.Base, int(window.Size), false)
			if err != nil {
				return err
			}
			defer dev.Close()

			dumps := readRegisters(prci.New(dev, window.Base), target.HFClk)
			out := cmd.OutOrStdout()
			switch format {
			case "yaml":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(dumps); err != nil {
					return err
				}
				return enc.Close()
			case "text", "":
				fmt.Fprintf(out, "PRCI at %#x\n", window.Base)
				writeRegisters(out, dumps)
				return nil
			default:
				return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
			}
		},
	}
	cmd.Flags().StringVar(&dtb, "dtb", env.Value("PRCIDTB"), "flattened device tree to search. Default: $PRCIDTB")
	cmd.Flags().StringVar(&mem, "mem", env.Value("PRCIMEM"), "physical memory device. Default: $PRCIMEM")
	cmd.Flags().StringVar(&base, "base", "", "PRCI base address, skips the device tree")
	cmd.Flags().StringVarP(&board, "board", "b", env.Value("PRCIBOARD"), "board whose reference clock is used. Default: $PRCIBOARD")
	cmd.Flags().StringVarP(&format, "format", "f", env.Value("PRCIFORMAT"), "output format (=text, =yaml). Default: $PRCIFORMAT")
	return cmd
}
