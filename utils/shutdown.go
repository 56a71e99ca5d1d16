package utils

import (
	"fmt"
	"sync"
)

// ShutdownHook collects cleanup steps run when the process is asked to
// stop, either by a signal or by a server.shutdown request.
type ShutdownHook struct {
	mu    sync.Mutex
	hooks []namedHook
}

type namedHook struct {
	name string
	fn   func() error
}

func NewShutdownHook() *ShutdownHook {
	return &ShutdownHook{}
}

// Register adds a cleanup function. Hooks run in registration order.
func (s *ShutdownHook) Register(name string, cleanupFn func() error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hooks = append(s.hooks, namedHook{name: name, fn: cleanupFn})
	Verbose("Registered shutdown hook: %s", name)
}

// Shutdown runs and clears every registered hook. A failing hook does not
// stop the ones after it; all failures are reported together.
func (s *ShutdownHook) Shutdown() error {
	s.mu.Lock()
	hooks := s.hooks
	s.hooks = nil
	s.mu.Unlock()

	if len(hooks) == 0 {
		return nil
	}

	Verbose("Executing %d shutdown hook(s)", len(hooks))
	var errs []error

	for _, hook := range hooks {
		Verbose("Running shutdown hook: %s", hook.name)
		if err := hook.fn(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", hook.name, err))
			Warn("Shutdown hook %s failed: %v", hook.name, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("shutdown failed with %d error(s): %v", len(errs), errs)
	}

	Verbose("All shutdown hooks completed successfully")
	return nil
}

func (s *ShutdownHook) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.hooks)
}
