// Command i8080test runs the community 8080 test ROMs (8080PRE, TST8080,
// CPUTEST, 8080EXM) against pkg/i8080 through a CP/M BDOS stub. Grounded
// on the z80-optimizer example's CLI (a cobra root command with one
// subcommand per mode, spf13/pflag-backed flags shared across them).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/retrocore/i8080/internal/cpmtest"
	"github.com/retrocore/i8080/pkg/i8080"
)

const origin = 0x0100

func main() {
	var maxSteps int

	rootCmd := &cobra.Command{
		Use:   "i8080test",
		Short: "Run the community 8080 flag/instruction test ROMs",
	}
	rootCmd.PersistentFlags().IntVar(&maxSteps, "max-steps", 50_000_000,
		"abort if the ROM hasn't jumped to address 0 after this many instructions")

	rootCmd.AddCommand(
		fixtureCommand("run8080pre", "Run the 8080PRE preliminary smoke test", cpmtest.Preliminary8080, &maxSteps),
		fixtureCommand("runtst8080", "Run the TST8080 stand-in", cpmtest.TST8080, &maxSteps),
		romPathCommand("runcputest", "Run CPUTEST from an externally supplied binary", &maxSteps),
		romPathCommand("run8080exm", "Run 8080EXM from an externally supplied binary", &maxSteps),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "i8080test:", err)
		os.Exit(1)
	}
}

// fixtureCommand builds a subcommand that runs an embedded fixture ROM,
// with an optional --rom override for a caller who has the real binary.
func fixtureCommand(use, short string, fixture []byte, maxSteps *int) *cobra.Command {
	var romPath string
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			cpu := i8080.New()
			if romPath != "" {
				if err := cpu.Bus.LoadBin(romPath, origin); err != nil {
					return err
				}
			} else {
				for i, v := range fixture {
					cpu.Bus.WriteByte(origin+uint16(i), v)
				}
			}
			cpu.Reg.SP = 0xFF00
			cpu.Reg.PC = origin
			return runAndReport(cpu, *maxSteps)
		},
	}
	cmd.Flags().StringVar(&romPath, "rom", "", "path to a real test-ROM binary, overriding the built-in fixture")
	return cmd
}

// romPathCommand builds a subcommand with no built-in fixture: CPUTEST
// and 8080EXM are exhaustive enough that no small stand-in is meaningful,
// so a --rom path is required.
func romPathCommand(use, short string, maxSteps *int) *cobra.Command {
	var romPath string
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			if romPath == "" {
				return fmt.Errorf("%s requires --rom pointing at a real test binary", use)
			}
			cpu := i8080.New()
			if err := cpu.Bus.LoadBin(romPath, origin); err != nil {
				return err
			}
			cpu.Reg.SP = 0xFF00
			cpu.Reg.PC = origin
			return runAndReport(cpu, *maxSteps)
		},
	}
	cmd.Flags().StringVar(&romPath, "rom", "", "path to the test-ROM binary (required)")
	return cmd
}

func runAndReport(cpu *i8080.CPU, maxSteps int) error {
	result := cpmtest.Run(cpu, maxSteps)
	fmt.Print(result.Output)
	fmt.Println()
	if !result.Terminated {
		return fmt.Errorf("did not reach PC=0 within %d steps", maxSteps)
	}
	fmt.Printf("terminated after %d instructions\n", result.Steps)
	return nil
}
