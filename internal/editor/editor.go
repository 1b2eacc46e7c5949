package editor

import (
	"fmt"
	"path/filepath"
	"strings"

	"unhex/internal/buffer"
	"unhex/internal/config"
	"unhex/internal/viewport"

	tea "github.com/charmbracelet/bubbletea"
)

// Model is the bubbletea model for one editing session.
type Model struct {
	buf      *buffer.Buffer
	machine  *Machine
	layout   viewport.Layout
	styles   *config.Styles
	width    int
	quitting bool
	err      error
}

func NewModel(buf *buffer.Buffer, cfg *config.Config) *Model {
	layout := cfg.ViewportLayout()
	return &Model{
		buf:     buf,
		machine: NewMachine(layout.BytesPerRow),
		layout:  layout,
		styles:  config.NewStyles(&cfg.Theme),
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// Focus returns the offset of the selected byte.
func (m *Model) Focus() int {
	return m.machine.Focus
}

// Err returns the error that stopped the model, if any.
func (m *Model) Err() error {
	return m.err
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	for _, ev := range keyEvents(msg) {
		quit, err := m.machine.Apply(ev, m.buf)
		if err != nil {
			m.err = fmt.Errorf("applying key %q: %w", msg.String(), err)
			m.quitting = true
			return m, tea.Quit
		}
		if quit {
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// keyEvents translates one key message. Runes typed faster than the
// terminal is read arrive together and are split back into single events.
func keyEvents(msg tea.KeyMsg) []Event {
	if msg.Alt || msg.Paste {
		return nil
	}

	switch msg.Type {
	case tea.KeyUp:
		return []Event{{Key: KeyUp}}
	case tea.KeyDown:
		return []Event{{Key: KeyDown}}
	case tea.KeyLeft:
		return []Event{{Key: KeyLeft}}
	case tea.KeyRight:
		return []Event{{Key: KeyRight}}
	case tea.KeyRunes:
		events := make([]Event, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			events = append(events, RuneEvent(r))
		}
		return events
	}
	return nil
}

// Rows renders the hex dump around the focus without the status line.
func (m *Model) Rows() []string {
	marker := m.styles.Marker
	if m.machine.Pending() {
		marker = m.styles.MarkerPending
	}
	return viewport.Rows(m.buf.Data(), m.machine.Focus, m.layout, func(s string) string {
		return marker.Render(s)
	})
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	for _, row := range m.Rows() {
		b.WriteString(row)
		b.WriteString("\n")
	}
	b.WriteString(m.renderStatus())
	return b.String()
}

func (m *Model) renderStatus() string {
	hl := func(text string, highlightIdx int) string {
		var result strings.Builder
		for i, ch := range text {
			if i == highlightIdx {
				result.WriteString(m.styles.LegendHighlight.Render(string(ch)))
			} else {
				result.WriteString(m.styles.Legend.Render(string(ch)))
			}
		}
		return result.String()
	}

	items := []string{
		hl("Quit", 0),
		m.styles.Legend.Render(filepath.Base(m.buf.Filename())),
		m.styles.Legend.Render(fmt.Sprintf("%s/%s",
			viewport.FormatOffset(m.machine.Focus), viewport.FormatOffset(m.buf.Size()))),
	}

	if high, ok := m.machine.PendingNibble(); ok {
		items = append(items, m.styles.LegendHighlight.Render(fmt.Sprintf("%x_", high>>4)))
	}
	if m.buf.IsModified() {
		items = append(items, m.styles.Modified.Render("modified"))
	}

	legend := strings.Join(items, m.styles.Legend.Render(" | "))
	if m.width > 0 {
		return m.styles.Legend.Width(m.width).Render(legend)
	}
	return legend
}
