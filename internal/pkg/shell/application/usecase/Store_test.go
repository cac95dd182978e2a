package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shreya020904/Planner-ui/internal/clock"
	cacheAdapter "github.com/Shreya020904/Planner-ui/internal/infrastructure/cache/adapter"
	shell "github.com/Shreya020904/Planner-ui/internal/pkg/shell/application/domain"
)

func newStore() (*Store, *cacheAdapter.MemoryCache) {
	c := cacheAdapter.NewMemoryCache(clock.Fake(time.Unix(0, 0)))
	return NewStore(NewPreferences(c)), c
}

func TestStore_Defaults(t *testing.T) {
	s, _ := newStore()
	st, err := s.State(context.Background(), "dev-1")
	require.NoError(t, err)
	assert.Equal(t, shell.State{Theme: shell.ThemeLight, SidebarOpen: true}, st)
}

func TestStore_ToggleThemePersists(t *testing.T) {
	ctx := context.Background()
	s, c := newStore()

	st, err := s.ToggleTheme(ctx, "dev-1")
	require.NoError(t, err)
	assert.Equal(t, shell.ThemeDark, st.Theme)

	v, err := c.Get(ctx, "prefs:dev-1:theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", v)

	// a fresh store over the same cache sees the persisted theme
	again := NewStore(NewPreferences(c))
	st, err = again.State(ctx, "dev-1")
	require.NoError(t, err)
	assert.Equal(t, shell.ThemeDark, st.Theme)

	st, err = s.ToggleTheme(ctx, "dev-1")
	require.NoError(t, err)
	assert.Equal(t, shell.ThemeLight, st.Theme)
}

func TestStore_UnknownStoredThemeFallsBackToLight(t *testing.T) {
	ctx := context.Background()
	s, c := newStore()
	require.NoError(t, c.Set(ctx, "prefs:dev-1:theme", "sepia", 0))

	st, err := s.State(ctx, "dev-1")
	require.NoError(t, err)
	assert.Equal(t, shell.ThemeLight, st.Theme)
}

func TestStore_SidebarIsPerDeviceAndObserved(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore()

	var seen []string
	cancel := s.Subscribe(func(device string, st shell.State) {
		seen = append(seen, device)
		if device == "dev-1" {
			assert.False(t, st.SidebarOpen)
		}
	})

	st, err := s.ToggleSidebar(ctx, "dev-1")
	require.NoError(t, err)
	assert.False(t, st.SidebarOpen)

	other, err := s.State(ctx, "dev-2")
	require.NoError(t, err)
	assert.True(t, other.SidebarOpen)

	cancel()
	_, err = s.ToggleSidebar(ctx, "dev-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"dev-1"}, seen)
}

func TestPreferences_DisplayName(t *testing.T) {
	ctx := context.Background()
	c := cacheAdapter.NewMemoryCache(clock.Fake(time.Unix(0, 0)))
	p := NewPreferences(c)

	_, ok, err := p.DisplayName(ctx, "dev-1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, p.SetDisplayName(ctx, "dev-1", "alice"))
	name, ok, err := p.DisplayName(ctx, "dev-1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "alice", name)

	require.NoError(t, p.ClearDisplayName(ctx, "dev-1"))
	_, ok, err = p.DisplayName(ctx, "dev-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_ConcurrentThemeTogglesAllApply(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore()

	const toggles = 20
	var wg sync.WaitGroup
	for i := 0; i < toggles; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.ToggleTheme(ctx, "dev-1")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	st, err := s.State(ctx, "dev-1")
	require.NoError(t, err)
	assert.Equal(t, shell.ThemeLight, st.Theme)
}

func TestStore_SidebarForgetsReopenedDevices(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore()

	st, err := s.ToggleSidebar(ctx, "dev-1")
	require.NoError(t, err)
	assert.False(t, st.SidebarOpen)
	assert.Len(t, s.sidebarClosed, 1)

	st, err = s.ToggleSidebar(ctx, "dev-1")
	require.NoError(t, err)
	assert.True(t, st.SidebarOpen)
	assert.Empty(t, s.sidebarClosed)
}
