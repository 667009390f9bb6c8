package viz

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"honnef.co/go/curve"

	"github.com/Shashwat-deb/finmotif/internal/anim"
	"github.com/Shashwat-deb/finmotif/internal/export"
	"github.com/Shashwat-deb/finmotif/internal/motif"
	"github.com/Shashwat-deb/finmotif/internal/render"
	"github.com/Shashwat-deb/finmotif/internal/scene"
)

const (
	defaultCols = 80
	defaultRows = 24

	// Stats panel width plus canvas padding, in terminal cells.
	chromeWidth = 46

	resizeDelay  = 250 * time.Millisecond
	paceCapacity = 120
)

type TickMsg time.Time

// Model is the live terminal view of one scene: a braille canvas panel
// next to a pacing stats panel. Host callbacks arrive as TickMsg at the
// requested rate; the scene's own FrameInterval decides which of them
// become accepted frames.
type Model struct {
	sc    motif.Scene
	clock anim.Clock
	tick  time.Duration

	throttle *anim.Throttle
	debounce *anim.Debouncer

	canvas *render.Braille
	frame  motif.Frame

	cols, rows       int
	pendingCols      int
	pendingRows      int
	elapsed          time.Duration
	lastTick         time.Time
	lastAccept       time.Time
	running, focused bool
	dirty            bool

	frames int
	pace   []float64

	recorder  *export.Recorder
	recording bool
	notice    string

	showHelp bool
}

// NewModel builds the live view. fps is the host callback rate; the
// scene throttles itself below it via FrameInterval.
func NewModel(sc motif.Scene, clock anim.Clock, fps int) Model {
	if fps <= 0 {
		fps = 60
	}
	m := Model{
		sc:       sc,
		clock:    clock,
		tick:     time.Second / time.Duration(fps),
		throttle: anim.NewThrottle(sc.FrameInterval()),
		debounce: anim.NewDebouncer(resizeDelay),
		cols:     defaultCols,
		rows:     defaultRows,
		running:  true,
		focused:  true,
		dirty:    true,
		pace:     make([]float64, 0, paceCapacity),
	}
	m.applySize()
	return m
}

// Run starts the live view with the real clock. Focus reporting drives
// the pause-on-blur behavior.
func Run(sc motif.Scene, fps int) error {
	p := tea.NewProgram(NewModel(sc, anim.SystemClock{}, fps), tea.WithAltScreen(), tea.WithReportFocus())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.FocusMsg:
		// Resume without a catch-up burst: the hidden interval must
		// not be treated as lag.
		m.focused = true
		m.lastTick = m.clock.Now()
		m.throttle.Reset(m.lastTick)
	case tea.BlurMsg:
		m.focused = false
	case tea.WindowSizeMsg:
		m.pendingCols, m.pendingRows = msg.Width, msg.Height
		m.debounce.Bump(m.clock.Now())
	case TickMsg:
		m.onTick()
		return m, tea.Tick(m.tick, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		if m.recording {
			m.stopRecording()
		}
		return m, tea.Quit
	case " ":
		m.running = !m.running
		if m.running {
			m.lastTick = m.clock.Now()
			m.throttle.Reset(m.lastTick)
		}
	case "r":
		m.sc.Reset()
		m.elapsed = 0
		m.frames = 0
		m.pace = m.pace[:0]
		m.dirty = true
		m.lastTick = m.clock.Now()
		m.throttle.Reset(m.lastTick)
	case "s":
		m.cycleScene()
	case "g":
		if m.recording {
			m.stopRecording()
		} else {
			m.recorder = &export.Recorder{}
			m.recording = true
			m.notice = ""
		}
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

func (m *Model) cycleScene() {
	names := scene.Names()
	next := names[0]
	for i, name := range names {
		if name == m.sc.Name() {
			next = names[(i+1)%len(names)]
			break
		}
	}
	sc, err := scene.New(next)
	if err != nil {
		return
	}
	m.sc = sc
	m.throttle = anim.NewThrottle(sc.FrameInterval())
	m.elapsed = 0
	m.frames = 0
	m.pace = m.pace[:0]
	m.dirty = true
	m.lastTick = m.clock.Now()
}

func (m *Model) onTick() {
	now := m.clock.Now()

	// A blur does not clear a pending resize; if the deadline passes
	// while hidden, the geometry still updates and the first accepted
	// frame after focus uses it.
	if m.debounce.Fire(now) {
		if m.pendingCols > 0 {
			m.cols, m.rows = m.pendingCols, m.pendingRows
		}
		m.applySize()
	}

	if !m.running || !m.focused {
		m.lastTick = now
		return
	}

	if !m.lastTick.IsZero() {
		m.elapsed += now.Sub(m.lastTick)
	}
	m.lastTick = now

	// A finished one-shot scene is inert until a resize marks it dirty.
	if m.sc.Finished() && !m.dirty {
		return
	}
	if !m.throttle.Accept(now) {
		return
	}

	m.frame = m.sc.Step(m.logicalSize(), m.elapsed)
	m.canvas.DrawFrame(m.frame)
	m.frames++
	m.dirty = false

	if !m.lastAccept.IsZero() {
		if dt := now.Sub(m.lastAccept); dt > 0 {
			m.pace = append(m.pace, float64(time.Second)/float64(dt))
			if len(m.pace) > paceCapacity {
				m.pace = m.pace[1:]
			}
		}
	}
	if m.recording {
		delay := m.sc.FrameInterval()
		if !m.lastAccept.IsZero() {
			delay = now.Sub(m.lastAccept)
		}
		m.recorder.Add(export.BrailleImage(m.canvas, m.frame.Background), delay)
	}
	m.lastAccept = now
}

func (m *Model) applySize() {
	cols := m.cols - chromeWidth
	if cols < 20 {
		cols = 20
	}
	rows := m.rows - 4
	if rows < 8 {
		rows = 8
	}
	m.canvas = render.NewBraille(cols, rows)
	m.dirty = true
	if m.frames > 0 {
		// Redraw the last frame statically so a finished scene is not
		// blank until its next accepted step.
		m.frame = m.sc.Step(m.logicalSize(), m.elapsed)
		m.canvas.DrawFrame(m.frame)
		m.dirty = false
	}
}

// logicalSize maps one braille subpixel to one logical pixel.
func (m *Model) logicalSize() curve.Size {
	w, h := m.canvas.SubpixelSize()
	return curve.Sz(float64(w), float64(h))
}

func (m *Model) stopRecording() {
	m.recording = false
	if m.recorder == nil || m.recorder.Len() == 0 {
		m.notice = "nothing recorded"
		return
	}
	name := fmt.Sprintf("%s_%d.gif", m.sc.Name(), time.Now().Unix())
	f, err := os.Create(name)
	if err != nil {
		m.notice = "save failed: " + err.Error()
		return
	}
	defer f.Close()
	if err := m.recorder.Encode(f); err != nil {
		m.notice = "save failed: " + err.Error()
		return
	}
	m.notice = "saved " + name
	m.recorder = nil
}

func (m Model) status() string {
	switch {
	case m.recording:
		return statusRecording.Render("RECORDING")
	case !m.focused:
		return statusPaused.Render("BLURRED")
	case !m.running:
		return statusPaused.Render("PAUSED")
	case m.sc.Finished():
		return statusDone.Render("DONE")
	default:
		return statusRunning.Render("RUNNING")
	}
}

func (m Model) View() string {
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.sc.Name())) + "\n")
	s.WriteString(m.status() + "\n\n")

	if len(m.pace) > 1 {
		chart := asciigraph.Plot(m.pace, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("accepted fps"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(labelStyle.Render("Elapsed") + valueStyle.Render(fmt.Sprintf("%.2fs", m.elapsed.Seconds())) + "\n")
	s.WriteString(labelStyle.Render("Frames") + valueStyle.Render(fmt.Sprintf("%d", m.frames)) + "\n")
	if len(m.pace) > 0 {
		s.WriteString(labelStyle.Render("FPS") + valueStyle.Render(fmt.Sprintf("%.1f", m.pace[len(m.pace)-1])) + "\n")
	}
	switch sc := m.sc.(type) {
	case *scene.Frontier:
		s.WriteString(labelStyle.Render("Phase") + valueStyle.Render(fmt.Sprintf("%.3f", sc.Phase())) + "\n")
	case *scene.Growth:
		p := anim.Reveal{Duration: sc.Duration()}.Progress(m.elapsed)
		s.WriteString(labelStyle.Render("Progress") + valueStyle.Render(fmt.Sprintf("%.0f%%", p*100)) + "\n")
	}
	if m.notice != "" {
		s.WriteString("\n" + valueStyle.Render(m.notice) + "\n")
	}
	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause R:Restart Q:Quit\nS:Scene  G:Record  ?:Help"))

	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)

	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume             ║
║  R        - Restart the scene        ║
║  S        - Cycle scenes             ║
║  G        - Toggle GIF recording     ║
║  Q        - Quit                     ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}
