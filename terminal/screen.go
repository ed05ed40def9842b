package terminal

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/drone-sim/input"
	"github.com/lixenwraith/drone-sim/navigation"
	"github.com/lixenwraith/drone-sim/status"
	"github.com/lixenwraith/drone-sim/world"
)

const (
	header    = "Drone Simulator - press q to quit"
	gridTop   = 1
	runeAgent = 'X'
	runeObst  = 'O'
	runeBlank = ' '

	// chromeRows is the header row plus the status row
	chromeRows = 2
)

// ErrTooSmall reports a terminal that cannot show the whole grid
var ErrTooSmall = errors.New("terminal too small")

var (
	styleHeader   = tcell.StyleDefault.Bold(true)
	styleAgent    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	styleObstacle = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleTarget   = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// Screen wraps a tcell screen as intent source and snapshot renderer
type Screen struct {
	screen tcell.Screen
	keys   *input.KeyTable
	reg    *status.Registry
}

// New wraps s; reg may be nil to hide counters from the status line
func New(s tcell.Screen, keys *input.KeyTable, reg *status.Registry) *Screen {
	if keys == nil {
		keys = input.DefaultKeyTable()
	}
	return &Screen{screen: s, keys: keys, reg: reg}
}

// Open creates and initializes the default terminal screen
func Open(keys *input.KeyTable, reg *status.Registry) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: create screen: %w", err)
	}
	scr := New(s, keys, reg)
	if err := scr.Init(); err != nil {
		return nil, err
	}
	return scr, nil
}

// Init enters the alternate screen with the cursor hidden
func (s *Screen) Init() error {
	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("terminal: init: %w", err)
	}
	s.screen.HideCursor()
	s.screen.Clear()
	return nil
}

// CheckFit fails when the terminal cannot show a width x height grid with its header and status rows
func (s *Screen) CheckFit(width, height int) error {
	w, h := s.screen.Size()
	if w < width || h < height+chromeRows {
		return fmt.Errorf("%w: %dx%d grid needs %dx%d, have %dx%d",
			ErrTooSmall, width, height, width, height+chromeRows, w, h)
	}
	return nil
}

// Fini restores the terminal
func (s *Screen) Fini() {
	s.screen.Fini()
}

// Poll forwards key intents to out until quit, screen finalization or ctx cancellation
// The quit intent is forwarded before Poll returns so the runner sees it
func (s *Screen) Poll(ctx context.Context, out chan<- input.Intent) error {
	stop := context.AfterFunc(ctx, func() {
		_ = s.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	for {
		ev := s.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return nil
		case *tcell.EventInterrupt:
			if err := ctx.Err(); err != nil {
				return err
			}
		case *tcell.EventResize:
			s.screen.Sync()
		case *tcell.EventKey:
			in, ok := s.keys.Lookup(ev)
			if !ok {
				continue
			}
			select {
			case out <- in:
			case <-ctx.Done():
				return ctx.Err()
			}
			if in.Type == input.IntentQuit {
				return nil
			}
		}
	}
}

// Observe redraws after every tick
func (s *Screen) Observe(res navigation.TickResult) {
	if res.Snapshot == nil {
		return
	}
	s.Draw(res.Snapshot, s.statusLine(res))
}

// Draw renders snap and a status line
func (s *Screen) Draw(snap *world.Snapshot, line string) {
	if snap == nil {
		return
	}
	s.screen.Clear()

	s.text(0, 0, header, styleHeader)

	for _, o := range snap.Obstacles {
		s.cell(o, runeObst, styleObstacle)
	}
	for _, t := range snap.Targets {
		s.cell(t.Cell, targetRune(t.ID), styleTarget)
	}
	// Drone last so it stays visible when sharing a cell
	s.cell(snap.Agent, runeAgent, styleAgent)

	s.text(0, gridTop+snap.Height, line, styleStatus)
	s.screen.Show()
}

func (s *Screen) statusLine(res navigation.TickResult) string {
	line := fmt.Sprintf("tick %d  %-6s  pos %v  v=(%.2f, %.2f)  f=(%.2f, %.2f)",
		res.Tick, res.Mode, res.Snapshot.Agent, res.Agent.VX, res.Agent.VY, res.Force.X, res.Force.Y)
	if s.reg != nil {
		line += fmt.Sprintf("  reached %d  collisions %d",
			s.reg.Counter(status.RespawnTargets), s.reg.Counter(status.RespawnObstacles))
	}
	return line
}

func (s *Screen) cell(c world.Cell, r rune, style tcell.Style) {
	s.screen.SetContent(c.X, gridTop+c.Y, r, nil, style)
}

func (s *Screen) text(x, y int, str string, style tcell.Style) {
	for _, r := range str {
		s.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func targetRune(id int) rune {
	if id >= 0 && id <= 9 {
		return rune('0' + id)
	}
	return '*'
}
