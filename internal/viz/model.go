package viz

import (
	"fmt"
	"image"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/mazeviz/internal/anim"
	"github.com/san-kum/mazeviz/internal/config"
	"github.com/san-kum/mazeviz/internal/maze"
	"github.com/san-kum/mazeviz/internal/render"
)

const historyCapacity = 600

var (
	canvasStyle  = lipgloss.NewStyle().Padding(1, 2)
	statsStyle   = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(38)
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
	recordStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff4444"))
	runningStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff88"))
	idleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#888899"))
	reverseStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffaa00"))
)

type TickMsg time.Time

// Model is the Bubble Tea model for one loaded maze.
type Model struct {
	mz     *maze.Model
	cfg    *config.Config
	title  string
	theme  render.Theme
	canvas *render.Canvas
	pipe   *render.Pipeline
	ctrl   *anim.Controller

	history   []float64
	frameRate int
	showHelp  bool
	recording bool
	frames    []*image.Paletted
}

// NewModel builds the TUI model and paints the initial scene.
func NewModel(mz *maze.Model, cfg *config.Config, title string) Model {
	layout := cfg.TUILayout()
	w, h := layout.WindowSize(mz)
	canvas := render.NewCanvas(w, h, layout.TileSize)
	pipe := render.NewPipeline(mz, canvas, layout)
	ctrl := anim.NewController(pipe, len(mz.Path), cfg.TickInterval())

	pipe.RedrawAll(0)

	frameRate := cfg.FPS
	if frameRate <= 0 {
		frameRate = config.DefaultFPS
	}

	return Model{
		mz:        mz,
		cfg:       cfg,
		title:     title,
		theme:     render.GetTheme(cfg.Theme),
		canvas:    canvas,
		pipe:      pipe,
		ctrl:      ctrl,
		history:   make([]float64, 0, historyCapacity),
		frameRate: frameRate,
	}
}

func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.frameRate), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and animation ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "s":
			m.ctrl.Trigger(time.Now())
		case "t":
			m.theme = render.NextTheme(m.theme.Name)
			// full repaint, animation state untouched
			m.pipe.RedrawAll(m.ctrl.Progress())
		case "r":
			m.ctrl.Reset()
			m.canvas.Clear()
			m.pipe.RedrawAll(0)
			m.history = m.history[:0]
		case "g":
			if m.recording {
				m.saveGIF()
				m.recording = false
				m.frames = nil
			} else {
				m.recording = true
				m.frames = make([]*image.Paletted, 0)
			}
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		m.ctrl.Tick(time.Time(msg))
		m.history = append(m.history, float64(m.ctrl.Progress()))
		if len(m.history) > historyCapacity {
			m.history = m.history[1:]
		}
		if m.recording {
			m.captureFrame()
		}
		return m, m.tickCmd()
	}
	return m, nil
}

// View renders the TUI interface.
func (m Model) View() string {
	canvasView := canvasStyle.Render(m.canvas.Render(m.theme))

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.title)) + "\n")
	s.WriteString(m.statusLine() + "\n\n")

	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history, asciigraph.Height(4), asciigraph.Width(26), asciigraph.Caption("progress"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	n := m.ctrl.PathLen()
	s.WriteString(labelStyle.Render("Maze") + valueStyle.Render(fmt.Sprintf("%dx%d", m.mz.Rows(), m.mz.Cols())) + "\n")
	s.WriteString(labelStyle.Render("Entry") + valueStyle.Render(fmt.Sprintf("(%d,%d)", m.mz.Entry.Row, m.mz.Entry.Col)) + "\n")
	s.WriteString(labelStyle.Render("Exit") + valueStyle.Render(fmt.Sprintf("(%d,%d)", m.mz.Exit.Row, m.mz.Exit.Col)) + "\n")
	s.WriteString(labelStyle.Render("Path") + valueStyle.Render(fmt.Sprintf("%d points", n)) + "\n")
	s.WriteString(labelStyle.Render("Progress") + valueStyle.Render(progressBar(m.ctrl.Progress(), n)) + "\n")
	s.WriteString(labelStyle.Render("Theme") + valueStyle.Render(m.theme.Name) + "\n")
	s.WriteString(labelStyle.Render("Speed") + valueStyle.Render(m.cfg.TickInterval().String()) + "\n")

	s.WriteString(helpStyle.Render("\n─────────────────────\nS:Animate T:Theme R:Reset\nG:Record ?:Help Q:Quit"))

	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)

	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  S  - Animate path (erase if shown)  ║
║  T  - Cycle color themes             ║
║  R  - Reset animation                ║
║  G  - Toggle GIF recording           ║
║  ?  - Toggle this help               ║
║  Q  - Quit                           ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

func (m Model) statusLine() string {
	var status string
	switch m.ctrl.State() {
	case anim.StateForward:
		status = runningStyle.Render("REVEALING")
	case anim.StateReverse:
		status = reverseStyle.Render("ERASING")
	default:
		if m.ctrl.Progress() >= m.ctrl.PathLen() {
			status = idleStyle.Render("COMPLETE")
		} else {
			status = idleStyle.Render("IDLE")
		}
	}
	if m.recording {
		status += "  " + recordStyle.Render("● REC")
	}
	return status
}

func progressBar(progress, total int) string {
	const width = 14
	if total <= 0 {
		total = 1
	}
	filled := progress * width / total
	if filled > width {
		filled = width
	}
	return fmt.Sprintf("[%s%s] %d/%d",
		strings.Repeat("=", filled), strings.Repeat("-", width-filled), progress, total)
}
