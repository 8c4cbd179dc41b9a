// Command i8080mon is an interactive terminal monitor for pkg/i8080:
// live register/flag/port panels, a disassembly window scrolling around
// PC, single-step and free-run modes, and a command line for
// breakpoints, interrupt injection and port-latch pokes. Grounded on the
// teacher's cmd/pure6502 and gui front-ends (gizak/termui/v3 paragraph
// layout, the render-on-keypress loop) but restructured into two
// coordinated goroutines — a free-run stepping loop and the UI event
// loop — since the teacher's single-goroutine loop only ever
// single-stepped on a keypress and never needed to run the CPU
// concurrently with redrawing. golang.org/x/sync/errgroup ties the two
// together and propagates either one's error/exit to the other, which is
// exactly the host-side synchronization responsibility spec.md §5
// assigns to a multi-threaded host.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	"golang.org/x/sync/errgroup"

	"github.com/retrocore/i8080/pkg/disasm"
	"github.com/retrocore/i8080/pkg/i8080"
	"github.com/retrocore/i8080/pkg/i8080log"
)

// stdLogger adapts the standard log package to i8080log.Logger, the way
// the teacher's own front-ends (cmd/pure6502, gui) reached for log.Fatalf
// rather than a structured-logging dependency. Writing to a file instead
// of stderr keeps the trace out of termui's alternate screen buffer.
type stdLogger struct {
	l *log.Logger
}

func (s stdLogger) Log(msg string) {
	s.l.Println(msg)
}

type monitor struct {
	mu          sync.Mutex
	cpu         *i8080.CPU
	running     bool
	breakpoints map[uint16]bool
	status      string
	cmdline     string
	commandMode bool

	panelCPU    *widgets.Paragraph
	panelCode   *widgets.Paragraph
	panelPorts  *widgets.Paragraph
	panelTips   *widgets.Paragraph
	panelStatus *widgets.Paragraph
}

func main() {
	binPath := ""
	if len(os.Args) > 1 {
		binPath = os.Args[1]
	}

	traceFile, err := os.OpenFile("i8080mon.trace.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalf("i8080mon: opening trace log: %v", err)
	}
	defer traceFile.Close()
	i8080log.SetLogger(stdLogger{l: log.New(traceFile, "i8080mon: ", log.LstdFlags)})
	i8080log.SetEnable(true)

	if err := ui.Init(); err != nil {
		log.Fatalf("i8080mon: failed to initialize termui: %v", err)
	}
	defer ui.Close()

	m := newMonitor()
	m.cpu.DebugEnabled = true
	if binPath != "" {
		if err := m.cpu.Bus.LoadBin(binPath, 0x0100); err != nil {
			log.Fatalf("i8080mon: %v", err)
		}
		m.cpu.Reg.PC = 0x0100
	}
	m.initLayout()
	m.draw()

	ctx, cancel := context.WithCancel(context.Background())
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error { return m.runLoop(ctx) })
	g.Go(func() error { return m.eventLoop(ctx, cancel) })

	if err := g.Wait(); err != nil && err != context.Canceled {
		fmt.Fprintln(os.Stderr, "i8080mon:", err)
	}
}

func newMonitor() *monitor {
	return &monitor{
		cpu:         i8080.New(),
		breakpoints: make(map[uint16]bool),
		status:      "SPACE=step  G=run/stop  R=reset  :=command  Q=quit",
	}
}

// runLoop steps the CPU continuously whenever free-run mode is on,
// stopping at a hit breakpoint or a HLT. eventLoop also changes CPU state
// (single-step, reset, interrupt and port commands); both goroutines do so
// only while holding the mutex.
func (m *monitor) runLoop(ctx context.Context) error {
	ticker := time.NewTicker(2 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			m.mu.Lock()
			if m.running && !m.cpu.Halted {
				m.cpu.Step()
				m.cpu.ReadDebug() // drained to i8080log already; discard the buffered copy
				if m.breakpoints[m.cpu.Reg.PC] {
					m.running = false
					m.status = fmt.Sprintf("breakpoint hit at $%04X", m.cpu.Reg.PC)
				}
				if m.cpu.Halted {
					m.running = false
					m.status = "halted"
				}
			}
			m.mu.Unlock()
		}
	}
}

// eventLoop owns the termui event subscription and redraw cadence.
func (m *monitor) eventLoop(ctx context.Context, cancel context.CancelFunc) error {
	events := ui.PollEvents()
	redraw := time.NewTicker(33 * time.Millisecond)
	defer redraw.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-redraw.C:
			m.mu.Lock()
			m.draw()
			m.mu.Unlock()
		case e := <-events:
			if e.Type != ui.KeyboardEvent {
				continue
			}
			m.mu.Lock()
			quit := m.handleKey(e.ID)
			m.draw()
			m.mu.Unlock()
			if quit {
				cancel()
				return nil
			}
		}
	}
}

// handleKey applies one keypress to monitor state. Caller holds m.mu.
func (m *monitor) handleKey(id string) (quit bool) {
	if m.commandMode {
		switch id {
		case "<Enter>":
			m.status = m.runCommand(m.cmdline)
			m.cmdline = ""
			m.commandMode = false
		case "<Escape>":
			m.cmdline = ""
			m.commandMode = false
		case "<Backspace>":
			if len(m.cmdline) > 0 {
				m.cmdline = m.cmdline[:len(m.cmdline)-1]
			}
		case "<Space>":
			m.cmdline += " "
		default:
			if len(id) == 1 {
				m.cmdline += id
			}
		}
		return false
	}

	switch id {
	case "q", "Q", "<C-c>":
		return true
	case "<Space>":
		if !m.cpu.Halted {
			m.cpu.Step()
			m.cpu.ReadDebug()
		}
	case "g", "G":
		m.running = !m.running
	case "r", "R":
		m.cpu.Reset()
		m.status = "reset"
	case ":":
		m.commandMode = true
		m.cmdline = ""
	}
	return false
}

// runCommand parses and applies one command-line entry. Supported forms:
//
//	break <addr-expr>    set a breakpoint
//	clear <addr-expr>    remove a breakpoint
//	int <hex-opcode>     arm the interrupt slot (e.g. int 0xCF for RST 1)
//	in <port> <hex>      pre-seed an input-port latch
func (m *monitor) runCommand(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}

	switch strings.ToLower(fields[0]) {
	case "break":
		if len(fields) < 2 {
			return "usage: break <addr>"
		}
		addr, ok := evalAddress(fields[1], m.cpu)
		if !ok {
			return "bad address: " + fields[1]
		}
		m.breakpoints[addr] = true
		return fmt.Sprintf("breakpoint set at $%04X", addr)
	case "clear":
		if len(fields) < 2 {
			return "usage: clear <addr>"
		}
		addr, ok := evalAddress(fields[1], m.cpu)
		if !ok {
			return "bad address: " + fields[1]
		}
		delete(m.breakpoints, addr)
		return fmt.Sprintf("breakpoint cleared at $%04X", addr)
	case "int":
		if len(fields) < 2 {
			return "usage: int <opcode>"
		}
		v, err := strconv.ParseUint(strings.TrimPrefix(fields[1], "0x"), 16, 8)
		if err != nil {
			return "bad opcode: " + fields[1]
		}
		m.cpu.RequestInterrupt(uint8(v))
		return fmt.Sprintf("interrupt armed: opcode $%02X", v)
	case "in":
		if len(fields) < 3 {
			return "usage: in <port> <hex-value>"
		}
		port, err1 := strconv.ParseUint(fields[1], 16, 8)
		val, err2 := strconv.ParseUint(strings.TrimPrefix(fields[2], "0x"), 16, 8)
		if err1 != nil || err2 != nil {
			return "usage: in <port> <hex-value>"
		}
		m.cpu.Bus.SetIOIn(uint8(port), uint8(val))
		return fmt.Sprintf("io_in[%d] = $%02X", port, val)
	default:
		return "unknown command: " + fields[0]
	}
}

func (m *monitor) initLayout() {
	m.panelCPU = widgets.NewParagraph()
	m.panelCPU.Title = "CPU"
	m.panelCPU.SetRect(0, 0, 40, 9)

	m.panelPorts = widgets.NewParagraph()
	m.panelPorts.Title = "Ports"
	m.panelPorts.SetRect(0, 9, 40, 20)

	m.panelCode = widgets.NewParagraph()
	m.panelCode.Title = "Disassembly"
	m.panelCode.SetRect(40, 0, 90, 20)

	m.panelTips = widgets.NewParagraph()
	m.panelTips.Title = "Keys"
	m.panelTips.SetRect(0, 20, 90, 23)

	m.panelStatus = widgets.NewParagraph()
	m.panelStatus.Title = "Status / :command"
	m.panelStatus.SetRect(0, 23, 90, 26)
}

func (m *monitor) draw() {
	m.renderCPU()
	m.renderPorts()
	m.renderCode()
	m.panelTips.Text = m.status
	if m.commandMode {
		m.panelStatus.Text = ":" + m.cmdline
	} else {
		m.panelStatus.Text = m.status
	}

	ui.Render(m.panelCPU, m.panelPorts, m.panelCode, m.panelTips, m.panelStatus)
}

func (m *monitor) renderCPU() {
	f := m.cpu.Flags
	r := m.cpu.Reg
	var sb strings.Builder
	fmt.Fprintf(&sb, "S:%d Z:%d A:%d P:%d C:%d  INTE:%v  %s\n",
		b2i(f.S), b2i(f.Z), b2i(f.A), b2i(f.P), b2i(f.C), r.INTE, haltedLabel(m.cpu.Halted))
	fmt.Fprintf(&sb, "PC: $%04X   SP: $%04X\n", r.PC, r.SP)
	fmt.Fprintf(&sb, "A:  $%02X\n", r.A)
	fmt.Fprintf(&sb, "BC: $%04X   DE: $%04X   HL: $%04X\n", r.RegPair(0), r.RegPair(1), r.HL())
	m.panelCPU.Text = sb.String()
}

func (m *monitor) renderPorts() {
	var sb strings.Builder
	sb.WriteString("out:")
	for p := 0; p < 8; p++ {
		if v, ok := m.cpu.Bus.GetIOOut(uint8(p)); ok {
			fmt.Fprintf(&sb, " [%d]=%02X", p, v)
		}
	}
	sb.WriteString("\nin: ")
	for p := 0; p < 8; p++ {
		if v, ok := m.cpu.Bus.GetIOIn(uint8(p)); ok {
			fmt.Fprintf(&sb, " [%d]=%02X", p, v)
		}
	}
	m.panelPorts.Text = sb.String()
}

func (m *monitor) renderCode() {
	var sb strings.Builder
	addr := m.cpu.Reg.PC
	for i := 0; i < 16; i++ {
		op := m.cpu.Bus.ReadByte(addr)
		b1 := m.cpu.Bus.ReadByte(addr + 1)
		b2 := m.cpu.Bus.ReadByte(addr + 2)
		mnemonic, length := disasm.Disassemble(op, b1, b2)

		marker := "  "
		if addr == m.cpu.Reg.PC {
			marker = "->"
		}
		bp := " "
		if m.breakpoints[addr] {
			bp = "*"
		}
		fmt.Fprintf(&sb, "%s%s$%04X  %s\n", marker, bp, addr, mnemonic)
		addr += uint16(length)
	}
	m.panelCode.Text = sb.String()
}

func haltedLabel(halted bool) string {
	if halted {
		return "HALTED"
	}
	return ""
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
