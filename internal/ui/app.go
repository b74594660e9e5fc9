package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/appengine-ltd/walden/internal/game"
	"github.com/appengine-ltd/walden/internal/palette"
	"github.com/appengine-ltd/walden/internal/scene"
)

type AppConfig struct {
	Version string
	Session *game.Session

	// Hz is the tick rate. FixedDelta, when positive, replaces the wall
	// clock frame time.
	Hz         int
	FixedDelta float32
	Log        logrus.FieldLogger
}

// App is the terminal client.
type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	if cfg.Hz <= 0 {
		cfg.Hz = 30
	}
	if cfg.Log == nil {
		cfg.Log = logrus.StandardLogger()
	}
	return &App{cfg: cfg}
}

func (a *App) Run() error {
	a.cfg.Log.WithField("hz", a.cfg.Hz).Info("terminal client started")
	m := newPlayModel(a.cfg)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(palette.Hex(palette.Text))).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	hudStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(palette.Hex(palette.SelectorFront)))
	tipStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(palette.Hex(palette.Water))).Italic(true)
)

// maxFrameDelta caps a wall clock frame so a stalled terminal does not
// teleport the player.
const maxFrameDelta = 0.25

const hudRows = 4

type tickMsg time.Time

type playModel struct {
	cfg     AppConfig
	session *game.Session
	keys    keyInput
	last    time.Time
	width   int
	height  int
}

func newPlayModel(cfg AppConfig) playModel {
	return playModel{cfg: cfg, session: cfg.Session, width: 80, height: 24}
}

func (m playModel) Init() tea.Cmd {
	return m.tick()
}

func (m playModel) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.cfg.Hz), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		}
		m.keys.press(msg.String())
		return m, nil
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tickMsg:
		m.step(time.Time(msg))
		return m, m.tick()
	}
	return m, nil
}

// step advances the session by the time since the previous tick.
func (m *playModel) step(now time.Time) {
	var delta float32
	switch {
	case m.cfg.FixedDelta > 0:
		delta = m.cfg.FixedDelta
	case !m.last.IsZero():
		delta = min(float32(now.Sub(m.last).Seconds()), maxFrameDelta)
	}
	m.last = now
	m.keys.advance(delta)
	m.session.Tick(game.InputSnapshot{
		Delta:       delta,
		Controllers: []game.Controller{m.keys.controller()},
	})
}

func (m playModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("WALDEN"))
	if m.cfg.Version != "" {
		b.WriteString(dimStyle.Render("  " + m.cfg.Version))
	}
	b.WriteByte('\n')

	if mapView := renderFrameANSI(scene.Build(m.session), m.width, m.height-hudRows); mapView != "" {
		b.WriteString(mapView)
		b.WriteByte('\n')
	}
	b.WriteString(m.statusLine())
	b.WriteByte('\n')
	b.WriteString(dimStyle.Render("arrows/wasd move  z use/choose  x B  q quit"))
	return b.String()
}

func (m playModel) statusLine() string {
	s := m.session
	parts := make([]string, 0, len(s.Indicators)+3)
	for i := range s.Indicators {
		ind := &s.Indicators[i]
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(palette.Hex(scene.IndicatorColor(ind.Stat))))
		parts = append(parts, style.Render(gauge(ind.Stat.String(), ind.Segments(10), 10)))
	}

	player := s.World.Player()
	hand := "empty"
	if item, ok := player.CurrentItem(); ok {
		hand = item.String()
	}
	parts = append(parts, hudStyle.Render(fmt.Sprintf("hand %s: %s", player.CurrentHand, hand)))
	if s.Selector.Visible() {
		parts = append(parts, hudStyle.Render(fmt.Sprintf("[wheel %s]", s.Selector.Choice)))
	}
	if tip, ok := s.Tooltip(); ok {
		parts = append(parts, tipStyle.Render("A: "+string(tip)))
	}
	return strings.Join(parts, "  ")
}

func gauge(label string, filled, total int) string {
	filled = min(max(filled, 0), total)
	return label + " " + strings.Repeat("█", filled) + strings.Repeat("░", total-filled)
}
