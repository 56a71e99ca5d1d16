package surfaces

import (
	"testing"

	"github.com/mobile-next/pageswipe/swipe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T, size int) *Registry {
	r, err := NewRegistry(size)
	require.NoError(t, err)
	return r
}

func TestNewRegistry_InvalidSize(t *testing.T) {
	_, err := NewRegistry(0)
	assert.Error(t, err)
}

func TestRegistry_CreateAndGet(t *testing.T) {
	r := newTestRegistry(t, 4)

	s, err := r.Create(320, 0, swipe.DefaultConfig())
	require.NoError(t, err)
	assert.NotEmpty(t, s.ID())

	found, err := r.Get(s.ID())
	require.NoError(t, err)
	assert.Same(t, s, found)
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_GetErrors(t *testing.T) {
	r := newTestRegistry(t, 4)

	_, err := r.Get("")
	assert.Error(t, err)

	_, err = r.Get("does-not-exist")
	assert.Error(t, err)
}

func TestRegistry_CreateRejectsBadConfig(t *testing.T) {
	r := newTestRegistry(t, 4)

	cfg := swipe.DefaultConfig()
	cfg.MinSwipeLength = -1
	_, err := r.Create(320, 0, cfg)
	assert.ErrorIs(t, err, swipe.ErrInvalidConfig)

	_, err = r.Create(-1, 0, swipe.DefaultConfig())
	assert.Error(t, err)
	assert.Equal(t, 0, r.Len())
}

func TestRegistry_EvictsAndClosesOldest(t *testing.T) {
	r := newTestRegistry(t, 2)

	first, err := r.Create(320, 0, swipe.DefaultConfig())
	require.NoError(t, err)
	_, err = r.Create(320, 0, swipe.DefaultConfig())
	require.NoError(t, err)
	_, err = r.Create(320, 0, swipe.DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, 2, r.Len())
	_, err = r.Get(first.ID())
	assert.Error(t, err)
	assert.Error(t, first.Start(nil), "evicted session must be closed")
}

func TestRegistry_RemoveAndList(t *testing.T) {
	r := newTestRegistry(t, 4)

	a, err := r.Create(100, 0, swipe.DefaultConfig())
	require.NoError(t, err)
	b, err := r.Create(200, 0, swipe.DefaultConfig())
	require.NoError(t, err)

	list := r.List()
	require.Len(t, list, 2)
	assert.Equal(t, a.ID(), list[0].ID)
	assert.Equal(t, b.ID(), list[1].ID)

	require.NoError(t, r.Remove(a.ID()))
	assert.Error(t, r.Remove(a.ID()))
	assert.Len(t, r.List(), 1)

	r.CleanupAll()
	assert.Equal(t, 0, r.Len())
	assert.Error(t, b.Cancel())
}

func TestRegistry_Resize(t *testing.T) {
	r := newTestRegistry(t, 4)

	for i := 0; i < 3; i++ {
		_, err := r.Create(320, 0, swipe.DefaultConfig())
		require.NoError(t, err)
	}

	require.NoError(t, r.Resize(1))
	assert.Equal(t, 1, r.Len())

	assert.Error(t, r.Resize(0))
}
