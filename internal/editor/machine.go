package editor

// Key is an input event the edit machine understands.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyQuit
	KeyHex
)

type Event struct {
	Key    Key
	Nibble byte // set for KeyHex
}

// Bytes is the part of the buffer the machine edits.
type Bytes interface {
	Size() int
	Set(offset int, value byte) error
}

// Machine tracks the focused byte and a half-entered hex byte.
//
// After the second nibble of the last byte is committed, Focus advances to
// Size() without a bound check. Hex digits are ignored until navigation
// brings the focus back onto a byte.
type Machine struct {
	Focus int

	bytesPerRow int
	pending     bool
	high        byte
}

func NewMachine(bytesPerRow int) *Machine {
	return &Machine{bytesPerRow: bytesPerRow}
}

// Pending reports whether the high nibble of a byte has been entered.
func (m *Machine) Pending() bool {
	return m.pending
}

// PendingNibble returns the entered high nibble, shifted into place.
func (m *Machine) PendingNibble() (byte, bool) {
	return m.high, m.pending
}

// Apply runs one event against buf. quit is true for KeyQuit; err is only
// non-nil if a commit lands outside buf.
func (m *Machine) Apply(ev Event, buf Bytes) (quit bool, err error) {
	size := buf.Size()

	switch ev.Key {
	case KeyUp:
		if m.Focus-m.bytesPerRow >= 0 {
			m.Focus -= m.bytesPerRow
		}
	case KeyDown:
		if m.Focus+m.bytesPerRow < size {
			m.Focus += m.bytesPerRow
		}
	case KeyLeft:
		if m.Focus-1 >= 0 {
			m.Focus--
		}
	case KeyRight:
		if m.Focus+1 < size {
			m.Focus++
		}
	case KeyQuit:
		return true, nil
	case KeyHex:
		return false, m.hexInput(ev.Nibble&0x0F, buf)
	}

	return false, nil
}

func (m *Machine) hexInput(nibble byte, buf Bytes) error {
	if !m.pending {
		if m.Focus >= buf.Size() {
			return nil
		}
		m.high = nibble << 4
		m.pending = true
		return nil
	}

	m.pending = false
	if err := buf.Set(m.Focus, m.high|nibble); err != nil {
		return err
	}
	m.Focus++
	return nil
}

func isHexChar(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func hexCharToNibble(r rune) byte {
	switch {
	case r >= '0' && r <= '9':
		return byte(r - '0')
	case r >= 'a' && r <= 'f':
		return byte(r-'a') + 10
	case r >= 'A' && r <= 'F':
		return byte(r-'A') + 10
	}
	return 0
}

// RuneEvent maps a typed character to an event.
func RuneEvent(r rune) Event {
	switch {
	case r == 'q':
		return Event{Key: KeyQuit}
	case isHexChar(r):
		return Event{Key: KeyHex, Nibble: hexCharToNibble(r)}
	}
	return Event{Key: KeyNone}
}
