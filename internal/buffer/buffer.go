package buffer

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
)

var (
	// ErrOutOfRange is returned for offsets outside [0, Size()).
	ErrOutOfRange = errors.New("offset out of range")
	// ErrIO wraps every failure to read or write the backing file.
	ErrIO = errors.New("i/o error")
)

// FS is the filesystem the buffer is loaded from and saved to.
type FS interface {
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte) error
}

// OSFS reads and writes through the os package.
type OSFS struct{}

func (OSFS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func (OSFS) WriteFile(name string, data []byte) error {
	return os.WriteFile(name, data, 0644)
}

// Buffer holds a whole file in memory. Its length is fixed at load time;
// bytes can only be overwritten.
type Buffer struct {
	fs           FS
	filename     string
	data         []byte
	originalHash string
	modified     bool
}

func Open(filename string) (*Buffer, error) {
	return OpenFS(OSFS{}, filename)
}

func OpenFS(fsys FS, filename string) (*Buffer, error) {
	data, err := fsys.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w: %w", filename, ErrIO, err)
	}

	return &Buffer{
		fs:           fsys,
		filename:     filename,
		data:         data,
		originalHash: hashOf(data),
	}, nil
}

func hashOf(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func (b *Buffer) Filename() string {
	return b.filename
}

func (b *Buffer) IsModified() bool {
	return b.modified
}

func (b *Buffer) Size() int {
	return len(b.data)
}

// Data returns the live contents. Callers must not modify it.
func (b *Buffer) Data() []byte {
	return b.data
}

func (b *Buffer) Get(offset int) (byte, error) {
	if offset < 0 || offset >= len(b.data) {
		return 0, fmt.Errorf("get %d of %d: %w", offset, len(b.data), ErrOutOfRange)
	}
	return b.data[offset], nil
}

func (b *Buffer) Set(offset int, value byte) error {
	if offset < 0 || offset >= len(b.data) {
		return fmt.Errorf("set %d of %d: %w", offset, len(b.data), ErrOutOfRange)
	}
	b.data[offset] = value
	b.modified = true
	return nil
}

// HasChangedOnDisk reports whether the file no longer matches what was loaded.
func (b *Buffer) HasChangedOnDisk() (bool, error) {
	data, err := b.fs.ReadFile(b.filename)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w: %w", b.filename, ErrIO, err)
	}
	return hashOf(data) != b.originalHash, nil
}

// Save writes the full contents over the backing file.
func (b *Buffer) Save() error {
	if err := b.fs.WriteFile(b.filename, b.data); err != nil {
		return fmt.Errorf("writing %s: %w: %w", b.filename, ErrIO, err)
	}

	b.originalHash = hashOf(b.data)
	b.modified = false
	return nil
}
