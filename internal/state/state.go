package state

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/Paintersrp/notelist/internal/config"
	"github.com/Paintersrp/notelist/internal/logging"
	"github.com/Paintersrp/notelist/internal/store"
)

// State bundles the collaborators every command needs.
type State struct {
	Config  *config.Config
	Home    string
	Vault   *store.Vault
	Watcher *VaultWatcher
	Logger  *logrus.Logger

	logCloser io.Closer
}

type Option func(*options)

type options struct {
	watch bool
}

// WithWatcher starts an fsnotify watcher over the vault.
func WithWatcher() Option {
	return func(o *options) { o.watch = true }
}

// NewState builds the state for an already loaded and validated config.
func NewState(cfg *config.Config, opts ...Option) (*State, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	home, err := GetHomeDir()
	if err != nil {
		return nil, err
	}

	logger, closer, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	s := &State{
		Config:    cfg,
		Home:      home,
		Logger:    logger,
		logCloser: closer,
		Vault: store.New(
			cfg.VaultDir,
			store.WithMarkdown(cfg.Markdown),
			store.WithLogger(logger.WithField("component", "store")),
		),
	}

	if o.watch {
		watcher, err := NewVaultWatcher(cfg.VaultDir)
		if err != nil {
			_ = s.Close()
			return nil, fmt.Errorf("failed to create vault watcher: %w", err)
		}
		watchLog := logger.WithField("component", "watcher")
		watcher.OnChange(func(id string) {
			watchLog.WithField("id", id).Debug("vault change")
		})
		watcher.OnClose(func() {
			watchLog.Debug("watcher closed")
		})
		s.Watcher = watcher
	}

	return s, nil
}

func GetHomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory. err: %s", err)
	}

	return home, nil
}

// Close releases the watcher and the log file.
func (s *State) Close() error {
	if s == nil {
		return nil
	}

	var errs []error
	if s.Watcher != nil {
		if err := s.Watcher.Close(); err != nil {
			errs = append(errs, err)
		}
		s.Watcher = nil
	}
	if s.logCloser != nil {
		if err := s.logCloser.Close(); err != nil {
			errs = append(errs, err)
		}
		s.logCloser = nil
	}

	if len(errs) == 0 {
		return nil
	}
	return errors.Join(errs...)
}
