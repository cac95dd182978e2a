package usecase

import (
	"context"
	"sync"

	shell "github.com/Shreya020904/Planner-ui/internal/pkg/shell/application/domain"
)

// Observer is told about every state change, after it is applied.
type Observer func(deviceID string, s shell.State)

// Store owns the shell state of every device. The theme is persisted
// through Preferences; sidebar visibility only lives as long as the
// process, and starts open.
type Store struct {
	prefs *Preferences

	// themeMu serialises read-flip-write of the persisted theme.
	themeMu sync.Mutex

	mu            sync.Mutex
	sidebarClosed map[string]bool
	nextID        uint64
	observers     map[uint64]Observer
}

func NewStore(prefs *Preferences) *Store {
	return &Store{
		prefs:         prefs,
		sidebarClosed: make(map[string]bool),
		observers:     make(map[uint64]Observer),
	}
}

func (s *Store) State(ctx context.Context, deviceID string) (shell.State, error) {
	theme, err := s.prefs.Theme(ctx, deviceID)
	if err != nil {
		return shell.State{}, err
	}
	s.mu.Lock()
	open := !s.sidebarClosed[deviceID]
	s.mu.Unlock()
	return shell.State{Theme: theme, SidebarOpen: open}, nil
}

// ToggleTheme flips and persists the device theme.
func (s *Store) ToggleTheme(ctx context.Context, deviceID string) (shell.State, error) {
	s.themeMu.Lock()
	current, err := s.prefs.Theme(ctx, deviceID)
	if err == nil {
		err = s.prefs.SetTheme(ctx, deviceID, current.Toggle())
	}
	s.themeMu.Unlock()
	if err != nil {
		return shell.State{}, err
	}
	return s.changed(ctx, deviceID)
}

func (s *Store) ToggleSidebar(ctx context.Context, deviceID string) (shell.State, error) {
	s.mu.Lock()
	if s.sidebarClosed[deviceID] {
		delete(s.sidebarClosed, deviceID)
	} else {
		s.sidebarClosed[deviceID] = true
	}
	s.mu.Unlock()
	return s.changed(ctx, deviceID)
}

// Subscribe registers o and returns a function removing it.
func (s *Store) Subscribe(o Observer) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := s.nextID
	s.observers[id] = o
	return func() {
		s.mu.Lock()
		delete(s.observers, id)
		s.mu.Unlock()
	}
}

func (s *Store) changed(ctx context.Context, deviceID string) (shell.State, error) {
	st, err := s.State(ctx, deviceID)
	if err != nil {
		return shell.State{}, err
	}
	s.mu.Lock()
	observers := make([]Observer, 0, len(s.observers))
	for _, o := range s.observers {
		observers = append(observers, o)
	}
	s.mu.Unlock()
	for _, o := range observers {
		o(deviceID, st)
	}
	return st, nil
}
