package credential

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrSelectionUnsupported is returned by RequestSelection when the host
// provides no way to ask for a credential.
var ErrSelectionUnsupported = errors.New("credential selection is not supported by this host")

// ErrEmptyKey is returned when an empty key is selected.
var ErrEmptyKey = errors.New("credential key cannot be empty")

// Provider is the credential capability seen by the content service.
type Provider interface {
	// Available reports whether a usable credential is currently selected.
	Available(ctx context.Context) bool
	// RequestSelection asks the host to have the user select a credential.
	RequestSelection(ctx context.Context) error
}

// KeyProvider exposes the selected key to backend adapters.
type KeyProvider interface {
	APIKey() string
}

// Prompter obtains a key from the hosting environment, for example by reading
// it from a terminal.
type Prompter interface {
	PromptKey(ctx context.Context) (string, error)
}

// PrompterFunc adapts a function to Prompter.
type PrompterFunc func(ctx context.Context) (string, error)

// PromptKey implements Prompter.
func (f PrompterFunc) PromptKey(ctx context.Context) (string, error) {
	return f(ctx)
}

// Store holds the currently selected key. It is safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	key      string
	prompter Prompter
}

// Option configures a Store.
type Option func(*Store)

// WithPrompter installs the host selection flow used by RequestSelection.
func WithPrompter(p Prompter) Option {
	return func(s *Store) {
		s.prompter = p
	}
}

// NewStore creates a Store seeded with key, which may be empty.
func NewStore(key string, opts ...Option) *Store {
	s := &Store{key: strings.TrimSpace(key)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Available implements Provider.
func (s *Store) Available(_ context.Context) bool {
	return s.APIKey() != ""
}

// APIKey implements KeyProvider. It returns "" when no key is selected.
func (s *Store) APIKey() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.key
}

// Select makes key the current credential.
func (s *Store) Select(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrEmptyKey
	}

	s.mu.Lock()
	s.key = key
	s.mu.Unlock()
	return nil
}

// Clear forgets the current credential.
func (s *Store) Clear() {
	s.mu.Lock()
	s.key = ""
	s.mu.Unlock()
}

// RequestSelection implements Provider. The prompter runs without the lock
// held so concurrent Available calls are not blocked by an interactive prompt.
func (s *Store) RequestSelection(ctx context.Context) error {
	s.mu.RLock()
	prompter := s.prompter
	s.mu.RUnlock()

	if prompter == nil {
		return ErrSelectionUnsupported
	}

	key, err := prompter.PromptKey(ctx)
	if err != nil {
		return fmt.Errorf("credential selection failed: %w", err)
	}
	return s.Select(key)
}

// Static is a Provider with a fixed answer. It is useful where no store exists,
// such as in tests.
type Static bool

// Available implements Provider.
func (s Static) Available(context.Context) bool { return bool(s) }

// RequestSelection implements Provider.
func (Static) RequestSelection(context.Context) error { return ErrSelectionUnsupported }
