package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"omibyte.io/prci/soc/sifive/fu540/clock"
	"omibyte.io/prci/targets"
)

type presetInfo struct {
	Name   string          `yaml:"name"`
	Word   uint32          `yaml:"word"`
	Config clock.PLLConfig `yaml:"config"`
	Rate   uint64          `yaml:"rate"`
}

func newPresetsCmd(env Env) *cobra.Command {
	var board, format string
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "Print the fixed PLL settings and their output rates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := targets.All().FindByName(board)
			if err != nil {
				return err
			}
			return writePresets(cmd.OutOrStdout(), presetInfos(target.HFClk), format)
		},
	}
	cmd.Flags().StringVarP(&board, "board", "b", env.Value("PRCIBOARD"), "board whose reference clock is used. Default: $PRCIBOARD")
	cmd.Flags().StringVarP(&format, "format", "f", env.Value("PRCIFORMAT"), "output format (=text, =yaml). Default: $PRCIFORMAT")
	return cmd
}

func presetInfos(hfclk uint64) []presetInfo {
	infos := make([]presetInfo, 0, len(clock.Presets))
	for _, preset := range clock.Presets {
		config := clock.Decode(preset.Config)
		infos = append(infos, presetInfo{
			Name:   preset.Name,
			Word:   uint32(preset.Config),
			Config: config,
			Rate:   config.Frequency(hfclk),
		})
	}
	return infos
}

func writePresets(w io.Writer, infos []presetInfo, format string) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(infos); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		for _, info := range infos {
			c := info.Config
			fmt.Fprintf(w, "%-8s %#08x  divr=%d divf=%d divq=%d range=%d bypass=%v fse=%v  %.3f MHz\n",
				info.Name, info.Word, c.DivR, c.DivF, c.DivQ, c.Range, c.Bypass, c.FSE, float64(info.Rate)/1e6)
		}
		return nil
	default:
		return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
}
