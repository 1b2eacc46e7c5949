package editor

import (
	"context"
	"fmt"
	"log"

	"unhex/internal/buffer"
	"unhex/internal/config"

	tea "github.com/charmbracelet/bubbletea"
)

// Session owns the buffer and cursor for one file from load to save.
type Session struct {
	fs          buffer.FS
	cfg         *config.Config
	programOpts []tea.ProgramOption

	buf   *buffer.Buffer
	model *Model
}

type Option func(*Session)

func WithConfig(cfg *config.Config) Option {
	return func(s *Session) { s.cfg = cfg }
}

func WithFS(fsys buffer.FS) Option {
	return func(s *Session) { s.fs = fsys }
}

// WithProgramOptions adds options to the bubbletea program, after the
// defaults.
func WithProgramOptions(opts ...tea.ProgramOption) Option {
	return func(s *Session) { s.programOpts = append(s.programOpts, opts...) }
}

// NewSession loads filename. A load failure wraps buffer.ErrIO.
func NewSession(filename string, opts ...Option) (*Session, error) {
	s := &Session{
		fs:  buffer.OSFS{},
		cfg: config.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(s)
	}

	buf, err := buffer.OpenFS(s.fs, filename)
	if err != nil {
		return nil, err
	}
	log.Printf("loaded %s (%d bytes)", filename, buf.Size())

	s.buf = buf
	s.model = NewModel(buf, s.cfg)
	return s, nil
}

func (s *Session) Buffer() *buffer.Buffer {
	return s.buf
}

func (s *Session) Model() *Model {
	return s.model
}

// Run drives the terminal until the user quits, then saves the buffer.
// Nothing is saved if the program is interrupted or killed.
func (s *Session) Run(ctx context.Context) error {
	opts := append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	}, s.programOpts...)

	p := tea.NewProgram(s.model, opts...)
	if _, err := p.Run(); err != nil {
		log.Printf("program stopped without saving: %v", err)
		return fmt.Errorf("running editor: %w", err)
	}

	if err := s.model.Err(); err != nil {
		log.Printf("editor failed, not saving: %v", err)
		return err
	}

	return s.Save()
}

// Save writes the whole buffer, whether or not it was edited.
func (s *Session) Save() error {
	if changed, err := s.buf.HasChangedOnDisk(); err != nil {
		log.Printf("checking %s before save: %v", s.buf.Filename(), err)
	} else if changed {
		log.Printf("%s changed on disk since it was loaded; overwriting", s.buf.Filename())
	}

	if err := s.buf.Save(); err != nil {
		return err
	}
	log.Printf("saved %s (%d bytes)", s.buf.Filename(), s.buf.Size())
	return nil
}
