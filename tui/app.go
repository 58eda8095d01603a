package tui

import (
	"context"
	"errors"
	"os"

	"movieShelf/catalog"
	"movieShelf/config"
	"movieShelf/session"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

const DefaultHeader = "Movie Database Manager"

type settings struct {
	width  int
	header string
	clear  bool
}

type Option func(*settings)

func WithWidth(width int) Option {
	return func(s *settings) {
		if width > 0 {
			s.width = width
		}
	}
}

func WithHeader(header string) Option {
	return func(s *settings) {
		if header != "" {
			s.header = header
		}
	}
}

// WithClearScreen clears the terminal before each screen of a Console.
func WithClearScreen(on bool) Option {
	return func(s *settings) {
		s.clear = on
	}
}

func newSettings(opts []Option) settings {
	s := settings{width: DefaultWidth, header: DefaultHeader}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// IsInteractive reports whether both ends are attached to a terminal.
func IsInteractive(in, out *os.File) bool {
	return isTerminal(in) && isTerminal(out)
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// NewPrompter picks the full-screen Terminal when stdin and stdout are
// terminals and plain is false, and the line-oriented Console otherwise.
func NewPrompter(cfg *config.Config, plain bool) session.Prompter {
	opts := []Option{WithWidth(cfg.UIWidth), WithHeader(cfg.HeaderText)}

	if plain || cfg.Plain || !IsInteractive(os.Stdin, os.Stdout) {
		clearScreen := cfg.ClearScreen && isTerminal(os.Stdout)
		logrus.WithField("clear", clearScreen).Debug("using line console")
		return NewConsole(os.Stdin, os.Stdout, append(opts, WithClearScreen(clearScreen))...)
	}

	logrus.Debug("using terminal ui")
	return NewTerminal(os.Stdin, os.Stdout, opts...)
}

// Run starts an interactive session on stdin and stdout with an empty
// catalog. Unsaved movies are discarded when it returns.
func Run(ctx context.Context, cfg *config.Config, plain bool) error {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	s := session.New(NewPrompter(cfg, plain), catalog.New(), session.WithBaseDir(cfg.DefaultDirectory))
	err := s.Run(ctx)
	if errors.Is(err, session.ErrInputClosed) {
		logrus.Info("input closed before exit was confirmed")
	}
	return err
}
