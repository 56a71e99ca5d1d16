package surfaces

import (
	"fmt"
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/mobile-next/pageswipe/swipe"
	"github.com/mobile-next/pageswipe/utils"
)

// Registry holds the sessions of remote surfaces. It is bounded; once full
// the least recently used session is closed to make room.
type Registry struct {
	cache *lru.Cache[string, *Session]
}

// NewRegistry creates a registry holding at most size sessions
func NewRegistry(size int) (*Registry, error) {
	cache, err := lru.NewWithEvict[string, *Session](size, func(id string, s *Session) {
		utils.Verbose("Closing surface %s", id)
		s.Close()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create surface registry: %w", err)
	}

	return &Registry{cache: cache}, nil
}

// Create registers a new surface with the given geometry
func (r *Registry) Create(width, offset float64, cfg swipe.Config) (*Session, error) {
	s, err := newSession(width, offset, cfg)
	if err != nil {
		return nil, err
	}

	if evicted := r.cache.Add(s.ID(), s); evicted {
		utils.Info("Surface registry full, evicted least recently used surface")
	}

	utils.Verbose("Created surface %s (width=%v, offset=%v)", s.ID(), width, offset)
	return s, nil
}

// Get finds a surface by ID
func (r *Registry) Get(id string) (*Session, error) {
	if id == "" {
		return nil, fmt.Errorf("surface ID is required")
	}

	s, ok := r.cache.Get(id)
	if !ok {
		return nil, fmt.Errorf("surface not found: %s", id)
	}
	return s, nil
}

// Remove closes and forgets a surface
func (r *Registry) Remove(id string) error {
	if _, err := r.Get(id); err != nil {
		return err
	}
	r.cache.Remove(id)
	return nil
}

// List returns information about every surface, oldest first
func (r *Registry) List() []Info {
	infos := make([]Info, 0, r.cache.Len())
	for _, s := range r.cache.Values() {
		infos = append(infos, s.Info())
	}

	sort.SliceStable(infos, func(i, j int) bool {
		return infos[i].Created.Before(infos[j].Created)
	})
	return infos
}

// Resize changes the capacity, closing the least recently used surfaces
// that no longer fit
func (r *Registry) Resize(size int) error {
	if size <= 0 {
		return fmt.Errorf("registry size must be > 0, got %d", size)
	}

	if evicted := r.cache.Resize(size); evicted > 0 {
		utils.Info("Surface registry resized to %d, evicted %d surface(s)", size, evicted)
	}
	return nil
}

func (r *Registry) Len() int {
	return r.cache.Len()
}

// CleanupAll closes every surface
func (r *Registry) CleanupAll() {
	if r.cache.Len() == 0 {
		return
	}

	utils.Verbose("Closing %d surface(s)", r.cache.Len())
	r.cache.Purge()
}
