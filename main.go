package main

import (
	"bytes"
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"

	"nes-core/bus"
	"nes-core/cpu"
	"nes-core/logger"
	"nes-core/monitor"
)

const (
	screenWidth  = 1280
	screenHeight = 900
)

// roughly one NTSC frame of CPU time
const cyclesPerFrame = 29781

type Game struct {
	nes          *bus.Bus
	mapAsm       map[uint16]cpu.Disassembly
	defaultFont  font.Face
	emulationRun bool
	showLog      bool
}

func (g *Game) Update() error {
	if g.emulationRun {
		for i := 0; i < cyclesPerFrame; i++ {
			g.nes.Clock()
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.emulationRun = !g.emulationRun
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) && !g.emulationRun {
		// finish whatever is in flight, then run one whole instruction
		if !g.nes.CPU().IsComplete() {
			g.nes.Step()
		}
		g.nes.Step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.nes.Reset()
		g.nes.Step()
		g.mapAsm = g.nes.CPU().Disassemble(0x0000, 0xFFFF)
		logger.Log("monitor", "reset")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		g.nes.CPU().IRQ()
		logger.Log("monitor", "irq")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.nes.CPU().NMI()
		logger.Log("monitor", "nmi")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.showLog = !g.showLog
	}

	return nil
}

func (g *Game) getDefaultFont() font.Face {
	if g.defaultFont != nil {
		return g.defaultFont
	}
	tt, err := opentype.Parse(fonts.MPlus1pRegular_ttf)
	if err != nil {
		log.Fatal(err)
	}
	const dpi = 72 * 2
	mplusNormalFont, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    8,
		DPI:     dpi,
		Hinting: font.HintingNone,
	})
	if err != nil {
		log.Fatal(err)
	}
	g.defaultFont = mplusNormalFont
	return g.defaultFont
}

func (g *Game) DrawCode(screen *ebiten.Image, x int, y int, nLines int) {
	pc := g.nes.CPU().Registers().PC
	itA, ok := g.mapAsm[pc]
	if !ok {
		return
	}
	lineSize := 24
	lineY := y + (nLines>>1)*lineSize

	g.DrawString(screen, x, lineY, itA.Instruction, CYAN)
	for lineY < (y + (nLines * lineSize)) {
		lineY += lineSize
		itA, ok = g.mapAsm[itA.NextAddr]
		if !ok {
			break
		}
		g.DrawString(screen, x, lineY, itA.Instruction, WHITE)
	}

	itA = g.mapAsm[pc]
	lineY = y + (nLines>>1)*lineSize
	for lineY > y {
		lineY -= lineSize
		itA, ok = g.mapAsm[itA.PreviousAddr]
		if !ok {
			break
		}
		g.DrawString(screen, x, lineY, itA.Instruction, WHITE)
	}
}

func (g *Game) DrawRam(screen *ebiten.Image, x int, y int, nAddr uint16, nRows int, nColumns int) {
	for row := 0; row < nRows; row++ {
		sOffset := fmt.Sprintf("$%04X:", nAddr)
		for col := 0; col < nColumns; col++ {
			sOffset = fmt.Sprintf("%s %02X", sOffset, g.nes.CpuRead(nAddr, true))
			nAddr++
		}
		ebitenutil.DebugPrintAt(screen, sOffset, x, y)
		y += 16
	}
}

var (
	WHITE = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	GREEN = color.RGBA{G: 0xFF, A: 0xFF}
	RED   = color.RGBA{R: 0xFF, A: 0xFF}
	CYAN  = color.RGBA{G: 0xFF, B: 0xFF, A: 0xFF}
)

func (g *Game) DrawString(screen *ebiten.Image, x int, y int, str string, clr color.RGBA) {
	text.Draw(screen, str, g.getDefaultFont(), x, y, clr)
}

var statusFlags = []struct {
	label string
	flag  cpu.Flag
}{
	{"N", cpu.N}, {"V", cpu.V}, {"U", cpu.U}, {"B", cpu.B},
	{"D", cpu.D}, {"I", cpu.I}, {"Z", cpu.Z}, {"C", cpu.C},
}

func (g *Game) DrawCpu(screen *ebiten.Image, x int, y int) {
	c := g.nes.CPU()
	g.DrawString(screen, x, y, "STATUS: ", WHITE)
	titleOffset := 70
	statusOffset := 10
	for i, f := range statusFlags {
		statusColor := RED
		if c.GetFlag(f.flag) {
			statusColor = GREEN
		}
		g.DrawString(screen, x+titleOffset+(statusOffset*i), y, f.label, statusColor)
	}

	r := c.Registers()
	lineSize := 24
	g.DrawString(screen, x, y+lineSize, fmt.Sprintf("PC: $%04X", r.PC), WHITE)
	g.DrawString(screen, x, y+(lineSize*2), fmt.Sprintf("A: $%02X  [%d]", r.A, r.A), WHITE)
	g.DrawString(screen, x, y+(lineSize*3), fmt.Sprintf("X: $%02X  [%d]", r.X, r.X), WHITE)
	g.DrawString(screen, x, y+(lineSize*4), fmt.Sprintf("Y: $%02X  [%d]", r.Y, r.Y), WHITE)
	g.DrawString(screen, x, y+(lineSize*5), fmt.Sprintf("Stack P: $%04X", 0x0100+uint16(r.SP)), WHITE)
	g.DrawString(screen, x, y+(lineSize*6), fmt.Sprintf("Cycles: %d", c.ClockCount()), WHITE)
}

func (g *Game) DrawLog(screen *ebiten.Image, x int, y int, nLines int) {
	b := &bytes.Buffer{}
	logger.Tail(b, nLines)
	for _, line := range strings.Split(strings.TrimRight(b.String(), "\n"), "\n") {
		ebitenutil.DebugPrintAt(screen, line, x, y)
		y += 16
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.DrawRam(screen, 2, 2, 0x0000, 16, 16)
	g.DrawRam(screen, 2, 290, 0x0100, 16, 16)
	g.DrawCpu(screen, screenWidth-400, 20)
	g.DrawCode(screen, screenWidth-400, 200, 26)
	if g.showLog {
		g.DrawLog(screen, 2, 580, 16)
	}
	ebitenutil.DebugPrintAt(screen, "SPACE run/stop  C step  R reset  I irq  N nmi  L log", 2, screenHeight-20)
}

func (g *Game) Layout(outsideWidth int, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func setVector(nes *bus.Bus, vector uint16, value string) {
	if value == "" {
		return
	}
	target, err := monitor.ParseAddress(value)
	if err != nil {
		log.Fatal(err)
	}
	nes.SetVector(vector, target)
}

func main() {
	program := flag.String("program", "", "raw 6502 program image to load")
	origin := flag.String("origin", "8000", "load address of the program (hex)")
	headless := flag.Bool("headless", false, "trace to stdout instead of opening a window")
	steps := flag.Int("steps", 32, "number of instructions to trace in headless mode")
	irqVector := flag.String("irq-vector", "", "IRQ/BRK handler address (hex)")
	nmiVector := flag.String("nmi-vector", "", "NMI handler address (hex)")
	echo := flag.Bool("log", false, "echo log entries to stderr")
	flag.Parse()

	if *echo {
		logger.SetEcho(os.Stderr)
	}

	addr, err := monitor.ParseAddress(*origin)
	if err != nil {
		log.Fatal(err)
	}

	nes := bus.NewBus()
	if *program != "" {
		if err := monitor.Load(nes, *program, addr); err != nil {
			log.Fatal(err)
		}
	}
	setVector(nes, cpu.VectorIRQ, *irqVector)
	setVector(nes, cpu.VectorNMI, *nmiVector)

	nes.Reset()
	nes.Step()

	if *headless {
		monitor.Trace(os.Stdout, nes, *steps)
		monitor.DumpPage(os.Stdout, nes, 0x00, monitor.Columns(os.Stdout))
		return
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("6502 monitor")
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(&Game{
		nes:    nes,
		mapAsm: nes.CPU().Disassemble(0x0000, 0xFFFF),
	}); err != nil {
		log.Fatal(err)
	}
}
