package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/kungfusheep/nestscroll"
)

var (
	headerStyle = lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("252"))
	listStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	blankStyle  = lipgloss.NewStyle()

	statusStyle = lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("255"))
	keyStyle    = lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("229")).Bold(true)
)

type model struct {
	lay    layout
	c      *nestscroll.Coordinator
	top    *nestscroll.Layer
	bottom *nestscroll.Layer
	log    *logrus.Entry

	width  int
	status string

	// pending is restored once the first size is known.
	pending *nestscroll.ScrollInfo
}

func newModel(lay layout, log *logrus.Entry) *model {
	m := &model{
		lay:    lay,
		c:      nestscroll.NewCoordinator(nestscroll.WithLogger(log)),
		top:    nestscroll.NewLayer(),
		bottom: nestscroll.NewLayer(),
		log:    log,
	}
	if err := m.c.SetTopView(m.top); err != nil {
		panic(err)
	}
	if err := m.c.SetBottomView(m.bottom); err != nil {
		panic(err)
	}
	m.c.AddScrollListener(nestscroll.NewListenerFunc(m.onScroll))
	return m
}

func (m *model) onScroll(p nestscroll.Position) {
	m.status = fmt.Sprintf("%s  %d/%d", p, p.Total(), p.TotalRange())
}

// resize lays the two layers out for a w×h terminal. The last row is the
// status bar. Content is re-rendered at the new width and the scroll state
// carried over.
func (m *model) resize(w, h int) {
	info := m.c.SaveScrollInfo()
	if m.pending != nil {
		info, m.pending = m.pending, nil
	}

	m.width = w
	container := max(h-1, 0)
	m.c.SetHeight(container)

	m.top.SetBuffer(nestscroll.NewBufferFromLines(w, m.lay.Header))
	m.top.SetViewport(min(m.lay.HeaderHeight, len(m.lay.Header), container))

	items := nestscroll.NewBuffer(w)
	for i, n := 0, m.lay.Items; i < n; i++ {
		items.AppendLine(fmt.Sprintf(" %4d  item %d", i+1, i+1))
	}
	m.bottom.SetBuffer(items)
	m.bottom.SetViewport(container)

	m.c.RestoreScrollInfo(info)
	m.onScroll(m.c.Position())
	m.log.WithFields(logrus.Fields{"width": w, "height": h}).Debug("resized")
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case tea.KeyMsg:
		page := max(m.c.Height()/2, 1)
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "j", "down":
			m.c.ScrollChained(1)
		case "k", "up":
			m.c.ScrollChained(-1)
		case "d", "pgdown", "ctrl+d":
			m.c.ScrollChained(page)
		case "u", "pgup", "ctrl+u":
			m.c.ScrollChained(-page)
		case "g", "home":
			m.c.ScrollToTop()
		case "G", "end":
			m.c.ScrollToBottom()
		case "t":
			m.c.ScrollBottomViewToTop()
		}

	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelDown:
			m.c.ScrollChained(m.lay.Wheel)
		case tea.MouseButtonWheelUp:
			m.c.ScrollChained(-m.lay.Wheel)
		}
	}
	return m, nil
}

func (m *model) View() string {
	var b strings.Builder
	for _, row := range m.c.Frame(m.width) {
		switch row.Region {
		case nestscroll.RegionTop:
			b.WriteString(headerStyle.Render(row.Text))
		case nestscroll.RegionBottom:
			b.WriteString(listStyle.Render(row.Text))
		default:
			b.WriteString(blankStyle.Render(row.Text))
		}
		b.WriteByte('\n')
	}
	b.WriteString(m.statusBar())
	return b.String()
}

func (m *model) statusBar() string {
	keys := keyStyle.Render(" j/k g/G t q ")
	left := statusStyle.Render(" " + m.lay.Title + "  " + m.status)
	pad := max(m.width-lipgloss.Width(left)-lipgloss.Width(keys), 0)
	return left + statusStyle.Render(strings.Repeat(" ", pad)) + keys
}
