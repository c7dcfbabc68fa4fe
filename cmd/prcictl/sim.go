package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"omibyte.io/prci/mmio"
	"omibyte.io/prci/peripheral"
	"omibyte.io/prci/soc/sifive/fu540/clock"
	"omibyte.io/prci/soc/sifive/fu540/prci"
	"omibyte.io/prci/soc/sifive/fu540/prcisim"
	"omibyte.io/prci/soc/sifive/fu540/uart"
	"omibyte.io/prci/targets"
)

var (
	ErrStalled       = errors.New("bring-up stalled")
	ErrUnknownFormat = errors.New("unknown output format")
)

// SimReport is the outcome of one simulated bring-up.
type SimReport struct {
	Board     string             `yaml:"board"`
	Emulated  bool               `yaml:"emulated"`
	Stalled   bool               `yaml:"stalled"`
	Steps     int                `yaml:"steps"`
	Trace     []prcisim.Event    `yaml:"trace"`
	Registers []RegisterDump     `yaml:"registers,omitempty"`
	UARTs     []UARTReport       `yaml:"uarts,omitempty"`
	Verified  *bool              `yaml:"verified,omitempty"`
	Config    prcisim.Config     `yaml:"config"`
	Target    targets.TargetInfo `yaml:"-"`
}

// UARTReport is the baud divisor a board UART ends up with.
type UARTReport struct {
	Name    string  `yaml:"name"`
	Base    uintptr `yaml:"base"`
	Baud    uint32  `yaml:"baud"`
	Divisor uint16  `yaml:"divisor"`
}

type simOptions struct {
	board     string
	scenario  string
	format    string
	verify    bool
	quiet     bool
	registers bool
}

func newSimCmd(env Env) *cobra.Command {
	var opts simOptions
	cmd := &cobra.Command{
		Use:   "sim",
		Short: "Run the clock bring-up against the PRCI model",
		Long:  "Run the FU540 clock bring-up against a register-level model of the PRCI and print every register access it makes.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := simulate(opts)
			if err != nil {
				return err
			}

			var verifyErr error
			if opts.verify {
				verifyErr = verify(report)
				ok := verifyErr == nil
				report.Verified = &ok
			}

			if err = writeReport(cmd.OutOrStdout(), report, opts); err != nil {
				return err
			}
			return verifyErr
		},
	}

	cmd.Flags().StringVarP(&opts.board, "board", "b", env.Value("PRCIBOARD"), "board to simulate. Default: $PRCIBOARD")
	cmd.Flags().StringVarP(&opts.scenario, "scenario", "s", "", "YAML scenario with lock latencies and step budget")
	cmd.Flags().StringVarP(&opts.format, "format", "f", env.Value("PRCIFORMAT"), "output format (=text, =yaml). Default: $PRCIFORMAT")
	cmd.Flags().BoolVar(&opts.verify, "verify", false, "check the trace against the bring-up rules")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "do not print the trace")
	cmd.Flags().BoolVarP(&opts.registers, "registers", "r", false, "print the register state after the run")
	return cmd
}

func simulate(opts simOptions) (*SimReport, error) {
	target, err := targets.All().FindByName(opts.board)
	if err != nil {
		return nil, err
	}

	var config prcisim.Config
	if len(opts.scenario) > 0 {
		f, err := os.Open(opts.scenario)
		if err != nil {
			return nil, err
		}
		config, err = prcisim.LoadConfig(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opts.scenario, err)
		}
	}
	config.Emulated = config.Emulated || target.Emulated
	boardUARTs := len(config.Consumers) == 0
	if boardUARTs {
		for i := range target.UARTs {
			config.Consumers = append(config.Consumers, fmt.Sprintf("uart%d", i))
		}
	}

	model := prcisim.New(config)
	var consumers []peripheral.ClockNode
	var uarts []*uart.Device
	for i, name := range config.Consumers {
		var node peripheral.ClockNode = model.NewConsumer(name)
		if boardUARTs {
			// Each board UART gets its own register file so its divisor can be read back
			dev := uart.NewDevice(uart.New(mmio.Memory{}, target.UARTs[i]))
			if err := dev.Configure(uart.Config{
				BaudRate:        target.Baud,
				NumStopBits:     1,
				ReceiveEnabled:  true,
				TransmitEnabled: true,
			}); err != nil {
				return nil, fmt.Errorf("%s %s: %w", target.Name, name, err)
			}
			uarts = append(uarts, dev)
			node = clockNodes{node, dev}
		}
		consumers = append(consumers, node)
	}
	c := clock.New(model.Registers(), model, model, consumers...)

	report := &SimReport{
		Board:    target.Name,
		Emulated: config.Emulated,
		Config:   config,
		Target:   target,
	}
	report.Stalled = model.Run(c.Initialize)
	report.Steps = model.Steps()
	report.Trace = model.Trace()
	if opts.registers {
		report.Registers = readRegisters(snapshot(model), target.HFClk)
	}
	for i, dev := range uarts {
		report.UARTs = append(report.UARTs, UARTReport{
			Name:    config.Consumers[i],
			Base:    target.UARTs[i],
			Baud:    target.Baud,
			Divisor: dev.Registers.DIV.GetDIV(),
		})
	}
	return report, nil
}

// clockNodes passes one rate notification on to several consumers.
type clockNodes []peripheral.ClockNode

func (n clockNodes) SetClockRate(hz uint64) {
	for _, node := range n {
		node.SetClockRate(hz)
	}
}

// snapshot copies the model's registers so they can be decoded without
// recording accesses.
func snapshot(model *prcisim.Model) *prci.RegisterBlock {
	mem := mmio.Memory{}
	for _, offset := range []uintptr{
		prci.OffsetHFXOSCCFG,
		prci.OffsetCOREPLLCFG0,
		prci.OffsetDDRPLLCFG0,
		prci.OffsetDDRPLLCFG1,
		prci.OffsetGEMGXLPLLCFG0,
		prci.OffsetGEMGXLPLLCFG1,
		prci.OffsetCORECLKSEL,
		prci.OffsetDEVICESRESETREG,
	} {
		mem[prci.BaseAddress+offset] = model.Peek(offset)
	}
	return prci.New(mem, prci.BaseAddress)
}

func verify(report *SimReport) error {
	switch {
	case report.Stalled:
		return fmt.Errorf("after %d steps: %w", report.Steps, ErrStalled)
	case report.Emulated:
		if len(report.Trace) != 0 {
			return fmt.Errorf("%d events under emulation: %w", len(report.Trace), prcisim.ErrCount)
		}
		return nil
	default:
		return prcisim.Check(report.Trace)
	}
}

func writeReport(w io.Writer, report *SimReport, opts simOptions) error {
	switch opts.format {
	case "yaml":
		if opts.quiet {
			report.Trace = nil
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		fmt.Fprintf(w, "board: %s (%s)\n", report.Board, report.Target.Description)
		if !opts.quiet {
			for _, e := range report.Trace {
				fmt.Fprintln(w, e)
			}
		}
		if len(report.Registers) > 0 {
			writeRegisters(w, report.Registers)
		}
		for _, u := range report.UARTs {
			fmt.Fprintf(w, "%s %#x %d baud div=%d\n", u.Name, u.Base, u.Baud, u.Divisor)
		}
		switch {
		case report.Emulated:
			fmt.Fprintln(w, "emulated: bring-up skipped")
		case report.Stalled:
			fmt.Fprintf(w, "stalled after %d steps\n", report.Steps)
		default:
			fmt.Fprintf(w, "completed: %d events, %d steps\n", len(report.Trace), report.Steps)
		}
		if report.Verified != nil {
			fmt.Fprintf(w, "verified: %v\n", *report.Verified)
		}
		return nil
	default:
		return fmt.Errorf("%q: %w", opts.format, ErrUnknownFormat)
	}
}
