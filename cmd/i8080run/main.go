// Command i8080run is a minimal CLI host for pkg/i8080: it loads a raw
// binary into the CPU's bus at a chosen origin, steps until the CPU
// halts (or a PC-zero / step-ceiling stop condition fires) and, with
// --debug, prints the per-instruction trace. Grounded on the teacher's
// chr2png (gopkg.in/urfave/cli.v2 flag layout) and terminal_host.go's use
// of golang.org/x/term to detect an interactive terminal before touching
// escape codes.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
	"gopkg.in/urfave/cli.v2"

	"github.com/retrocore/i8080/pkg/i8080"
)

func main() {
	app := &cli.App{
		Name:    "i8080run",
		Usage:   "Load and run a raw 8080 binary",
		Version: "v0.1.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "bin",
				Aliases: []string{"b"},
				Usage:   "path to the raw binary to load",
			},
			&cli.StringFlag{
				Name:  "origin",
				Usage: "address to load the binary at and start PC from",
				Value: "0x0100",
			},
			&cli.StringFlag{
				Name:  "rom-lo",
				Usage: "low address of a read-only window (requires --rom-hi)",
			},
			&cli.StringFlag{
				Name:  "rom-hi",
				Usage: "high address (inclusive) of a read-only window",
			},
			&cli.Int64Flag{
				Name:  "ns-per-cycle",
				Usage: "nanoseconds to sleep per clock cycle retired (0 = unthrottled)",
			},
			&cli.IntFlag{
				Name:  "max-steps",
				Usage: "stop after this many instructions even if the CPU hasn't halted (0 = unbounded)",
			},
			&cli.BoolFlag{
				Name:  "until-pc0",
				Usage: "also stop once PC reaches 0x0000, the CP/M-style program-exit convention",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "print the per-instruction trace",
			},
			&cli.BoolFlag{
				Name:  "color",
				Usage: "force-enable ANSI coloring of the trace (default: auto-detect a TTY)",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "i8080run:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	binPath := c.String("bin")
	if binPath == "" {
		cli.ShowAppHelp(c)
		return cli.Exit("--bin is required", 86)
	}

	origin, err := parseAddr(c.String("origin"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("--origin: %v", err), 86)
	}

	cpu := i8080.New()
	if err := cpu.Bus.LoadBin(binPath, origin); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if lo := c.String("rom-lo"); lo != "" {
		hiStr := c.String("rom-hi")
		if hiStr == "" {
			return cli.Exit("--rom-lo requires --rom-hi", 86)
		}
		loAddr, err := parseAddr(lo)
		if err != nil {
			return cli.Exit(fmt.Sprintf("--rom-lo: %v", err), 86)
		}
		hiAddr, err := parseAddr(hiStr)
		if err != nil {
			return cli.Exit(fmt.Sprintf("--rom-hi: %v", err), 86)
		}
		cpu.Bus.SetROMSpace(loAddr, hiAddr)
	}

	cpu.Reg.PC = origin
	cpu.NsPerCycle = c.Int64("ns-per-cycle")
	cpu.DebugEnabled = c.Bool("debug")

	colorize := c.Bool("color") || (cpu.DebugEnabled && term.IsTerminal(int(os.Stdout.Fd())))
	untilPC0 := c.Bool("until-pc0")
	maxSteps := c.Int("max-steps")

	steps := 0
	for !cpu.Halted {
		cpu.Step()
		steps++

		if cpu.DebugEnabled {
			printTrace(cpu.ReadDebug(), colorize)
		}
		if untilPC0 && cpu.Reg.PC == 0x0000 {
			break
		}
		if maxSteps > 0 && steps >= maxSteps {
			break
		}
	}

	return nil
}

// printTrace writes one instruction's debug record, optionally wrapping
// the disassembly line in a cyan ANSI escape so it stands out against the
// register dump lines that follow it.
func printTrace(trace string, colorize bool) {
	lines := strings.SplitN(trace, "\n", 2)
	if len(lines) == 0 {
		return
	}
	if colorize {
		fmt.Printf("\x1b[36m%s\x1b[0m\n", lines[0])
	} else {
		fmt.Println(lines[0])
	}
	if len(lines) > 1 {
		fmt.Print(lines[1])
	}
}

// parseAddr accepts 0x-prefixed hex, $-prefixed hex, or bare decimal, the
// common conventions for specifying a 16-bit address on a command line.
func parseAddr(s string) (uint16, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		v, err := strconv.ParseUint(s[2:], 16, 16)
		return uint16(v), err
	case strings.HasPrefix(s, "$"):
		v, err := strconv.ParseUint(s[1:], 16, 16)
		return uint16(v), err
	default:
		v, err := strconv.ParseUint(s, 10, 16)
		return uint16(v), err
	}
}
