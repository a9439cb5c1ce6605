package viz

import (
	"fmt"
	"image"
	"image/gif"
	"os"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/mdlab/internal/md"
	"github.com/san-kum/mdlab/internal/system"
)

const (
	width           = 80
	height          = 24
	historyCapacity = 600
	stepsPerTick    = 8
	trailLength     = 60
)

// Snapshot stores state at a specific time for replay.
type Snapshot struct {
	State  md.State
	Time   float64
	Energy float64
}

type TickMsg time.Time

type point struct{ x, y int }

// Model holds the running simulation and its terminal rendering state.
type Model struct {
	sys        *system.Particles
	integrator md.Integrator
	state      md.State
	t, dt      float64

	canvas   *Canvas
	viewport *Viewport
	trails   [][]point

	running    bool
	showTrails bool
	showHelp   bool
	name       string

	params        map[string]float64
	initialParams map[string]float64
	paramKeys     []string
	selected      int
	initialState  md.State

	energyHistory []float64
	tempHistory   []float64
	history       []Snapshot
	playHead      int

	recording bool
	frames    []*image.Paletted
}

// NewModel initializes the simulation and visualization state.
func NewModel(sys *system.Particles, integ md.Integrator, x0 md.State, dt float64, name string) Model {
	params := make(map[string]float64)
	if c, ok := any(sys).(md.Configurable); ok {
		for k, v := range c.GetParams() {
			params[k] = v
		}
	}
	keys := make([]string, 0, len(params))
	initialParams := make(map[string]float64)
	for k, v := range params {
		keys = append(keys, k)
		if v == 0 {
			// Tuning is multiplicative, so a zero value could never
			// move. Start such parameters at a small floor.
			v = 1e-6
			params[k] = v
		}
		initialParams[k] = v
	}
	sort.Strings(keys)

	trails := make([][]point, sys.N)
	for i := range trails {
		trails[i] = make([]point, 0, trailLength)
	}

	m := Model{
		sys:           sys,
		integrator:    integ,
		state:         x0.Clone(),
		t:             0,
		dt:            dt,
		canvas:        NewCanvas(width, height),
		viewport:      NewViewport(),
		trails:        trails,
		running:       true,
		showTrails:    true,
		name:          name,
		params:        params,
		initialParams: initialParams,
		paramKeys:     keys,
		selected:      0,
		initialState:  x0.Clone(),
		energyHistory: make([]float64, 0, historyCapacity),
		tempHistory:   make([]float64, 0, historyCapacity),
		history:       make([]Snapshot, 0, historyCapacity),
		playHead:      -1,
	}
	m.draw()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and steps the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "[":
			m.scrub(-1)
		case "]":
			m.scrub(1)
		case "tab":
			m.cycleParam()
		case "up", "k":
			m.adjustParam(1.05)
		case "down", "j":
			m.adjustParam(0.95)
		case "+", "=":
			m.viewport.ZoomIn()
		case "-", "_":
			m.viewport.ZoomOut()
		case "p":
			m.showTrails = !m.showTrails
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
		if m.running {
			if m.playHead == -1 {
				m.step()
			} else {
				m.playHead++
				if m.playHead >= len(m.history) {
					m.playHead = -1
				}
			}
		}
		m.draw()
		if m.recording {
			m.frames = append(m.frames, m.canvas.Rasterize(4, 4))
		}
		return m, tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) cycleParam() {
	if len(m.paramKeys) == 0 {
		return
	}
	m.selected = (m.selected + 1) % len(m.paramKeys)
}

func (m *Model) adjustParam(factor float64) {
	if len(m.paramKeys) == 0 {
		return
	}
	key := m.paramKeys[m.selected]
	newVal := m.params[key] * factor
	if c, ok := any(m.sys).(md.Configurable); ok {
		if err := c.SetParam(key, newVal); err != nil {
			return
		}
	}
	m.params[key] = newVal
}

// step advances the simulation several integrator steps per frame.
func (m *Model) step() {
	for i := 0; i < stepsPerTick; i++ {
		m.state = m.integrator.Step(m.sys, m.state, m.t, m.dt)
		m.t += m.dt
	}

	energy := m.sys.Energy(m.state)
	m.energyHistory = append(m.energyHistory, energy)
	if len(m.energyHistory) > historyCapacity {
		m.energyHistory = m.energyHistory[1:]
	}

	m.tempHistory = append(m.tempHistory, m.sys.Temperature(m.state))
	if len(m.tempHistory) > historyCapacity {
		m.tempHistory = m.tempHistory[1:]
	}

	snap := Snapshot{State: m.state.Clone(), Time: m.t, Energy: energy}
	m.history = append(m.history, snap)
	if len(m.history) > historyCapacity {
		m.history = m.history[1:]
	}
}

// scrub changes the playback position in history.
func (m *Model) scrub(dir int) {
	if m.playHead == -1 {
		if len(m.history) > 0 {
			m.playHead = len(m.history) - 1
			m.running = false
		} else {
			return
		}
	}
	m.playHead += dir
	if m.playHead < 0 {
		m.playHead = 0
	}
	if m.playHead >= len(m.history) {
		m.playHead = -1
	}
}

// reset restores the initial state and parameters.
func (m *Model) reset() {
	m.t = 0
	m.state = m.initialState.Clone()
	m.energyHistory = m.energyHistory[:0]
	m.tempHistory = m.tempHistory[:0]
	m.history = m.history[:0]
	m.playHead = -1
	m.viewport.Reset()
	for i := range m.trails {
		m.trails[i] = m.trails[i][:0]
	}
	if c, ok := any(m.sys).(md.Configurable); ok {
		for k, v := range m.initialParams {
			c.SetParam(k, v)
			m.params[k] = v
		}
	}
}

// draw renders the particles and their trails onto the canvas.
func (m *Model) draw() {
	state := m.state
	if m.playHead != -1 && m.playHead < len(m.history) {
		state = m.history[m.playHead].State
	}

	m.canvas.Clear()
	m.viewport.Fit(m.sys, state)

	for i := 0; i < m.sys.N; i++ {
		wx, wy := m.sys.Position(state, i)
		px, py := m.viewport.Project(m.canvas, wx, wy)

		if m.playHead == -1 {
			m.trails[i] = append(m.trails[i], point{px, py})
			if len(m.trails[i]) > trailLength {
				m.trails[i] = m.trails[i][1:]
			}
		}
		if m.showTrails {
			for _, pt := range m.trails[i] {
				m.canvas.Set(pt.x, pt.y)
			}
		}

		m.canvas.FillCircle(px, py, 2)
	}
}

// View renders the TUI interface.
func (m Model) View() string {
	state, t := m.state, m.t
	status := "RUNNING"
	if m.playHead >= 0 && m.playHead < len(m.history) {
		snap := m.history[m.playHead]
		state, t = snap.State, snap.Time
		status = fmt.Sprintf("REPLAY (%.1fs)", t-m.history[len(m.history)-1].Time)
	} else if !m.running {
		status = "PAUSED"
	}
	if m.recording {
		status += "  " + statusRecording.Render("● REC")
	}

	// The canvas is drawn in Update; View only renders what is there.
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.name)) + "\n")
	s.WriteString(status + "\n\n")

	if len(m.energyHistory) > 1 {
		chart := asciigraph.Plot(m.energyHistory, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Energy"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2fs", t)) + "\n")
	s.WriteString(labelStyle.Render("Particles") + valueStyle.Render(fmt.Sprintf("%d", m.sys.N)) + "\n")
	s.WriteString(labelStyle.Render("Energy") + valueStyle.Render(fmt.Sprintf("%.4f", m.sys.Energy(state))) + "\n")
	s.WriteString(labelStyle.Render("Temperature") + valueStyle.Render(fmt.Sprintf("%.4f", m.sys.Temperature(state))) + "\n")
	if len(m.tempHistory) > 1 {
		s.WriteString(labelStyle.Render("") + SparklineChart(m.tempHistory, 20) + "\n")
	}
	mx, my := m.sys.Momentum(state)
	s.WriteString(labelStyle.Render("Momentum") + valueStyle.Render(fmt.Sprintf("(%.3f, %.3f)", mx, my)) + "\n")

	s.WriteString("\nPARAMETERS\n")
	if len(m.params) > 0 {
		for i, k := range m.paramKeys {
			val, initial := m.params[k], m.initialParams[k]
			ratio := val / (2.0 * initial)
			bar := ProgressBar(ratio, 10)
			line := fmt.Sprintf("%-10s %s %.3f", k, bar, val)
			if i == m.selected {
				s.WriteString(activeParamStyle.Render("> "+line) + "\n")
			} else {
				s.WriteString("  " + line + "\n")
			}
		}
	} else {
		s.WriteString(labelStyle.Render("  (none)") + "\n")
	}

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause R:Reset Q:Quit\nG:Record P:Trails ?:Help\n[ ]:Time-Travel ↑↓:Tune +/-:Zoom"))

	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)

	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume simulation  ║
║  R        - Reset simulation         ║
║  Q        - Quit                     ║
║  Tab      - Cycle parameters         ║
║  Up/K     - Increase parameter (+5%) ║
║  Down/J   - Decrease parameter (-5%) ║
║  [        - Rewind (time travel)     ║
║  ]        - Forward (time travel)    ║
║  +/-      - Zoom in/out              ║
║  P        - Toggle trails            ║
║  G        - Toggle GIF recording     ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

func (m *Model) saveGIF() {
	if len(m.frames) == 0 {
		return
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range m.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, 2)
	}
	f, err := os.Create(m.name + ".gif")
	if err != nil {
		return
	}
	defer f.Close()
	gif.EncodeAll(f, &anim)
}
