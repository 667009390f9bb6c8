package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Shashwat-deb/finmotif/internal/anim"
	"github.com/Shashwat-deb/finmotif/internal/scene"
)

var sceneInfo = map[string]string{
	"frontier":     "grid + efficient frontier, perpetual",
	"growth-blue":  "performance curve draw-in, blue",
	"growth-green": "performance curve draw-in, green",
}

const (
	statePicker = iota
	stateLive
)

type picker struct {
	state  int
	cursor int
	names  []string
	fps    int
	live   Model
}

// NewInteractiveApp builds the scene picker.
func NewInteractiveApp(fps int) *picker {
	return &picker{names: scene.Names(), fps: fps}
}

func (p picker) Init() tea.Cmd { return nil }

func (p picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if p.state == stateLive {
		if key, ok := msg.(tea.KeyMsg); ok && key.String() == "q" {
			// Back to the picker instead of quitting outright.
			p.state = statePicker
			return p, nil
		}
		next, cmd := p.live.Update(msg)
		p.live = next.(Model)
		return p, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return p, tea.Quit
		case "up", "k":
			if p.cursor > 0 {
				p.cursor--
			}
		case "down", "j":
			if p.cursor < len(p.names)-1 {
				p.cursor++
			}
		case "enter", " ":
			sc, err := scene.New(p.names[p.cursor])
			if err != nil {
				return p, nil
			}
			p.live = NewModel(sc, anim.SystemClock{}, p.fps)
			p.state = stateLive
			return p, p.live.Init()
		}
	}
	return p, nil
}

func (p picker) View() string {
	if p.state == stateLive {
		return p.live.View()
	}
	var b strings.Builder
	b.WriteString("\n\n    " + menuTitle.Render("FINMOTIF") + "\n")
	b.WriteString("    " + menuSubtle.Render("decorative chart animations") + "\n")
	b.WriteString("    " + menuSubtle.Render("───────────────────────────") + "\n\n")
	for i, name := range p.names {
		desc := sceneInfo[name]
		if i == p.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n",
				menuCursor.Render("▸"),
				menuActive.Render(fmt.Sprintf("%-14s", name)),
				menuDesc.Render(desc)))
		} else {
			b.WriteString(fmt.Sprintf("    %s  %s\n",
				menuInactive.Render(fmt.Sprintf("  %-14s", name)),
				menuDescDim.Render(desc)))
		}
	}
	b.WriteString("\n    " + menuKey.Render("j/k") + menuInactive.Render(" navigate  ") +
		menuKey.Render("enter") + menuInactive.Render(" select  ") +
		menuKey.Render("q") + menuInactive.Render(" quit") + "\n")
	return b.String()
}

// RunInteractive starts the picker with focus reporting enabled so the
// live view can pause on terminal blur.
func RunInteractive(fps int) error {
	p := tea.NewProgram(NewInteractiveApp(fps), tea.WithAltScreen(), tea.WithReportFocus())
	_, err := p.Run()
	return err
}
