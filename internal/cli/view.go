package cli

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/spf13/cobra"

	"github.com/matzehuels/periodix/pkg/layout"
	"github.com/matzehuels/periodix/pkg/observability"
	"github.com/matzehuels/periodix/pkg/render"
	"github.com/matzehuels/periodix/pkg/scene"
)

// viewCommand creates the view command, an interactive terminal viewer.
func (c *CLI) viewCommand() *cobra.Command {
	var tps int

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Watch the layouts animate in the terminal",
		Long: `Watch the layouts animate in the terminal.

Keys:
  t  table     s  sphere     h  helix     g  grid
  ←/→ orbit the camera       r  reset camera
  q  quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runView(cmd.Context(), tps)
		},
	}

	cmd.Flags().IntVar(&tps, "tps", 0, "frames per second (default from config: 60)")

	return cmd
}

// runView builds a scene, starts the initial transition and hands the
// terminal to the viewer until the user quits.
func (c *CLI) runView(ctx context.Context, tps int) error {
	if tps <= 0 {
		tps = c.Config.Frame.TPS
	}
	// Log lines would tear the alternate screen.
	s, err := c.newScene(scene.WithHooks(observability.NoopTransitionHooks{}))
	if err != nil {
		return err
	}
	base := c.Config.Transition.Duration
	if err := s.TransitionTo(c.Config.Transition.Initial, base); err != nil {
		return err
	}

	m := newViewModel(s, base, time.Second/time.Duration(tps))
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	if vm, ok := final.(viewModel); ok {
		c.Logger.Debug("Viewer closed", "frames", vm.frames, "layout", s.Current())
	}
	return nil
}

// =============================================================================
// viewModel - Terminal scene viewer
// =============================================================================

// frameMsg carries the wall-clock time of a frame.
type frameMsg time.Time

// viewModel is the bubbletea model for the terminal viewer. The scene is
// only touched from Update, which bubbletea runs on a single goroutine.
type viewModel struct {
	scene    *scene.Scene
	camera   render.Camera
	base     time.Duration
	interval time.Duration

	width  int
	height int
	yaw    float64
	last   time.Time
	frames int
	err    error
}

var viewKeys = map[string]string{
	"t": layout.NameTable,
	"s": layout.NameSphere,
	"h": layout.NameHelix,
	"g": layout.NameGrid,
}

// orbitStep is the camera yaw per arrow key press, in radians.
const orbitStep = math.Pi / 24

func newViewModel(s *scene.Scene, base, interval time.Duration) viewModel {
	return viewModel{
		scene:    s,
		camera:   render.DefaultCamera(),
		base:     base,
		interval: interval,
		width:    100,
		height:   32,
	}
}

func (m viewModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (m viewModel) Init() tea.Cmd {
	return m.tick()
}

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		now := time.Time(msg)
		if !m.last.IsZero() {
			m.scene.Tick(now.Sub(m.last))
		}
		m.last = now
		m.frames++
		return m, m.tick()
	case tea.KeyMsg:
		key := msg.String()
		if name, ok := viewKeys[key]; ok {
			m.err = m.scene.TransitionTo(name, m.base)
			return m, nil
		}
		switch key {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left":
			m.yaw -= orbitStep
		case "right":
			m.yaw += orbitStep
		case "r":
			m.yaw = 0
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m viewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("periodix"))
	b.WriteString(statsLine(m.scene.Len(), m.scene.Current(), m.scene.Settled()))
	b.WriteString(StyleDim.Render(fmt.Sprintf(" · %d tweens", m.scene.Active())))
	b.WriteString("\n")

	rows := max(m.height-3, 8)
	cols := max(m.width, 20)
	cam := m.camera.Orbit(m.yaw, 0)
	for _, line := range renderCanvas(cam, m.scene.Elements(), cols, rows) {
		b.WriteString(line)
		b.WriteString("\n")
	}

	help := "t table  s sphere  h helix  g grid  ←/→ orbit  r reset  q quit"
	if m.err != nil {
		b.WriteString(StyleWarning.Render(m.err.Error()))
	} else {
		b.WriteString(StyleDim.Render(help))
	}
	return b.String()
}

// =============================================================================
// Canvas
// =============================================================================

type cell struct {
	r    rune
	near bool
}

var (
	styleNear = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	styleFar  = lipgloss.NewStyle().Foreground(colorDim)
)

// renderCanvas draws element symbols onto a cols x rows character grid.
// Terminal cells are about twice as tall as wide, so the camera sees a
// viewport of cols x 2*rows and rows are sampled at half resolution.
// Elements in front of the camera's target are highlighted.
func renderCanvas(cam render.Camera, elements []scene.Element, cols, rows int) []string {
	grid := make([][]cell, rows)
	for i := range grid {
		grid[i] = make([]cell, cols)
		for j := range grid[i] {
			grid[i][j].r = ' '
		}
	}

	positions := make([]mgl64.Vec3, len(elements))
	for i, el := range elements {
		positions[i] = el.Transform.Position
	}
	focus := cam.Position.Sub(cam.Target).Len()

	for _, p := range cam.ProjectAll(positions, float64(cols), float64(2*rows)) {
		sym := elements[p.Index].Record.Symbol
		row := int(p.Y / 2)
		col := int(p.X) - utf8.RuneCountInString(sym)/2
		if row < 0 || row >= rows {
			continue
		}
		for _, r := range sym {
			if col >= 0 && col < cols {
				grid[row][col] = cell{r: r, near: p.Depth < focus}
			}
			col++
		}
	}

	lines := make([]string, rows)
	for i, row := range grid {
		lines[i] = renderRow(row)
	}
	return lines
}

// renderRow styles runs of equal cells together.
func renderRow(row []cell) string {
	var b strings.Builder
	var run strings.Builder
	flush := func(near, blank bool) {
		switch {
		case run.Len() == 0:
		case blank:
			b.WriteString(run.String())
		case near:
			b.WriteString(styleNear.Render(run.String()))
		default:
			b.WriteString(styleFar.Render(run.String()))
		}
		run.Reset()
	}

	var near, blank bool
	for i, c := range row {
		isBlank := c.r == ' '
		if i > 0 && (isBlank != blank || (!isBlank && c.near != near)) {
			flush(near, blank)
		}
		near, blank = c.near, isBlank
		run.WriteRune(c.r)
	}
	flush(near, blank)
	return b.String()
}
