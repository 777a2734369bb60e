// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"io"
	"iter"

	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/MKhiriev/go-mud/internal/logger"
)

// Configuration file names, resolved relative to the working directory.
const (
	DefaultsFile   = "defaults.config.json"
	SingleUserFile = "singleuser.config.json"
	ServerFile     = "server.config.json"
)

// DefaultsKey is the key under which the defaults store is bound in the
// active configuration until the mode-specific document replaces it.
const DefaultsKey = "defaults"

// Mode selects which mode-specific document is loaded.
type Mode int

const (
	// ModeServer loads server.config.json.
	ModeServer Mode = iota
	// ModeSingleUser loads singleuser.config.json.
	ModeSingleUser
)

func (m Mode) String() string {
	if m == ModeSingleUser {
		return "singleuser"
	}
	return "server"
}

// File returns the name of the mode-specific configuration file.
func (m Mode) File() string {
	if m == ModeSingleUser {
		return SingleUserFile
	}
	return ServerFile
}

// State is a step of the load sequence.
type State int

const (
	StateUninitialized State = iota
	StateDefaultsLoaded
	StateModeLoaded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateDefaultsLoaded:
		return "defaults_loaded"
	case StateModeLoaded:
		return "mode_loaded"
	default:
		return "failed"
	}
}

// Manager resolves the configuration for one process run.
//
// Lookups through Contains, Get, Set, Keys and All apply to the active
// configuration only, which after a successful load is the mode-specific
// document. Default values are read from Defaults explicitly; override
// variables from the command line live in Vars.
type Manager struct {
	// Defaults holds the defaults document.
	Defaults *Store
	// Vars holds command-line-only override variables (+name=value).
	Vars *Store

	config *Store
	mode   Mode
	state  State

	fs     afero.Fs
	logger *logger.Logger
}

// Option configures a Manager before the load sequence runs.
type Option func(*Manager)

// WithFileSystem sets the filesystem configuration files are read from.
func WithFileSystem(fs afero.Fs) Option {
	return func(m *Manager) { m.fs = fs }
}

// WithLogger sets the logger used for load progress events.
func WithLogger(l *logger.Logger) Option {
	return func(m *Manager) { m.logger = l }
}

// NewManager loads defaults.config.json and then the document for mode.
//
// It returns a ready Manager or a *LoadError describing the first failed
// step. When the defaults file fails, the mode-specific file is never opened.
// Callers are expected to treat any error as fatal; see ExitCodeLoadFailure.
func NewManager(mode Mode, opts ...Option) (*Manager, error) {
	m := &Manager{
		config: NewStore(),
		Vars:   NewStore(),
		mode:   mode,
		state:  StateUninitialized,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.fs == nil {
		m.fs = afero.NewOsFs()
	}
	if m.logger == nil {
		m.logger = logger.Nop()
	}

	if err := m.prepare(); err != nil {
		m.state = StateFailed
		return nil, err
	}

	return m, nil
}

func (m *Manager) prepare() error {
	defaults, err := m.loadFile(DefaultsFile)
	if err != nil {
		return err
	}
	m.Defaults = defaults
	m.config.Set(DefaultsKey, m.Defaults)
	m.state = StateDefaultsLoaded

	active, err := m.loadFile(m.mode.File())
	if err != nil {
		return err
	}
	m.config = active
	m.state = StateModeLoaded

	return nil
}

// loadFile opens, reads and parses one configuration file. The file is
// closed before loadFile returns.
func (m *Manager) loadFile(name string) (*Store, error) {
	m.logger.Debug().Str("file", name).Str("mode", m.mode.String()).Msg("loading config file")

	raw, err := m.readFile(name)
	if err != nil {
		return nil, &LoadError{Stage: m.state, File: name, Kind: ErrFileAccess, Err: pkgerrors.WithStack(err)}
	}

	store, err := parseDocument(raw)
	if err != nil {
		return nil, &LoadError{Stage: m.state, File: name, Kind: ErrParse, Err: pkgerrors.WithStack(err)}
	}

	m.logger.Debug().Str("file", name).Int("keys", store.Len()).Msg("config file loaded")
	return store, nil
}

func (m *Manager) readFile(name string) ([]byte, error) {
	f, err := m.fs.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}

// Mode returns the run mode the manager was constructed with.
func (m *Manager) Mode() Mode {
	return m.mode
}

// State returns the current load state. A Manager returned by NewManager is
// always in StateModeLoaded.
func (m *Manager) State() State {
	return m.state
}

// Active returns the active configuration store.
func (m *Manager) Active() *Store {
	return m.config
}

// Contains reports whether key is bound in the active configuration.
func (m *Manager) Contains(key string) bool {
	return m.config.Contains(key)
}

// Get looks key up in the active configuration. Defaults and Vars are not
// consulted.
func (m *Manager) Get(key string) (any, bool) {
	return m.config.Get(key)
}

// Set binds key in the active configuration.
func (m *Manager) Set(key string, value any) {
	m.config.Set(key, value)
}

// Keys iterates over the keys of the active configuration.
func (m *Manager) Keys() iter.Seq[string] {
	return m.config.Keys()
}

// All iterates over the key/value pairs of the active configuration.
func (m *Manager) All() iter.Seq2[string, any] {
	return m.config.All()
}
