package editor

import (
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/google/go-cmp/cmp"

	tea "github.com/charmbracelet/bubbletea"

	"unhex/internal/buffer"
	"unhex/internal/config"
)

type memFS struct {
	files map[string][]byte
}

func (m *memFS) ReadFile(name string) ([]byte, error) {
	data, ok := m.files[name]
	if !ok {
		return nil, os.ErrNotExist
	}
	return append([]byte(nil), data...), nil
}

func (m *memFS) WriteFile(name string, data []byte) error {
	m.files[name] = append([]byte(nil), data...)
	return nil
}

func newTestModel(t *testing.T, data []byte) (*Model, *buffer.Buffer) {
	t.Helper()
	fsys := &memFS{files: map[string][]byte{"test.bin": data}}
	buf, err := buffer.OpenFS(fsys, "test.bin")
	if err != nil {
		t.Fatal(err)
	}
	return NewModel(buf, config.DefaultConfig()), buf
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m *Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func TestModelEditsAndMoves(t *testing.T) {
	m, buf := newTestModel(t, make([]byte, 40))

	send(m,
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyRight},
		runes("4"),
		runes("a"),
	)

	if got, _ := buf.Get(17); got != 0x4A {
		t.Errorf("buf[17] = %#02x, want 0x4a", got)
	}
	if m.Focus() != 18 {
		t.Errorf("focus = %d, want 18", m.Focus())
	}
	if !buf.IsModified() {
		t.Error("expected buffer to be modified")
	}
}

func TestModelSplitsCoalescedRunes(t *testing.T) {
	m, buf := newTestModel(t, []byte{0, 0, 0})

	cmd := send(m, runes("c0FFq"))

	if diff := cmp.Diff([]byte{0xC0, 0xFF, 0}, buf.Data()); diff != "" {
		t.Errorf("buffer mismatch (-want +got):\n%s", diff)
	}
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected tea.QuitMsg, got %T", cmd())
	}
}

func TestModelIgnoresPasteAndAlt(t *testing.T) {
	m, buf := newTestModel(t, []byte{0, 0})

	send(m,
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ff"), Paste: true},
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("f"), Alt: true},
		tea.KeyMsg{Type: tea.KeyCtrlC},
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	if diff := cmp.Diff([]byte{0, 0}, buf.Data()); diff != "" {
		t.Errorf("buffer mismatch (-want +got):\n%s", diff)
	}
	if m.quitting {
		t.Error("ctrl+c must not quit")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, []byte{1})

	cmd := send(m, runes("q"))
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected tea.QuitMsg, got %T", cmd())
	}
	if m.View() != "" {
		t.Errorf("expected empty view after quit, got %q", m.View())
	}
}

func TestModelViewTwentyBytes(t *testing.T) {
	data := []byte("ABCDEFGHIJKLMNOP\x01\x02QR")
	m, _ := newTestModel(t, data)

	rows := m.Rows()
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	want := []string{
		"00000000 - 41 42 43 44 45 46 47 48 49 4a 4b 4c 4d 4e 4f 50 - ABCDEFGHIJKLMNOP",
		"00000010 - 01 02 51 52 " + strings.Repeat("   ", 12) + "- ..QR" + strings.Repeat(" ", 12),
	}
	got := []string{ansi.Strip(rows[0]), ansi.Strip(rows[1])}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}

	view := ansi.Strip(m.View())
	lines := strings.Split(view, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 2 rows and a status line, got %q", view)
	}
	if !strings.Contains(lines[2], "test.bin") || !strings.Contains(lines[2], "00000000/00000014") {
		t.Errorf("unexpected status line %q", lines[2])
	}
}

func TestModelStatusShowsPendingNibble(t *testing.T) {
	m, _ := newTestModel(t, []byte{0, 0})

	send(m, runes("b"))
	status := ansi.Strip(m.renderStatus())
	if !strings.Contains(status, "b_") {
		t.Errorf("expected pending nibble in status, got %q", status)
	}

	send(m, runes("e"))
	status = ansi.Strip(m.renderStatus())
	if strings.Contains(status, "_") {
		t.Errorf("expected no pending nibble, got %q", status)
	}
	if !strings.Contains(status, "modified") {
		t.Errorf("expected modified marker, got %q", status)
	}
}

func TestModelEmptyFile(t *testing.T) {
	m, _ := newTestModel(t, nil)

	send(m, tea.KeyMsg{Type: tea.KeyDown}, runes("12"))
	if len(m.Rows()) != 0 {
		t.Errorf("expected no rows, got %q", m.Rows())
	}
	if m.Focus() != 0 {
		t.Errorf("focus = %d, want 0", m.Focus())
	}
}
