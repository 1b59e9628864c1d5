package theme

import "sync"

// Font themes the presentation layer knows how to render.
const (
	FontModern   = "modern"
	FontClassic  = "classic"
	FontCreative = "creative"
)

// Defaults restored by Reset and used when nothing is persisted.
const (
	DefaultAccentColor = "#F59E0B"
	DefaultFontTheme   = FontCreative
)

// Theme holds the two presentation preferences. Accent color is free-form;
// the renderer decides what to do with a value it cannot parse.
type Theme struct {
	AccentColor string `json:"accentColor"`
	FontTheme   string `json:"fontTheme"`
}

// DefaultTheme returns the built-in defaults.
func DefaultTheme() Theme {
	return Theme{AccentColor: DefaultAccentColor, FontTheme: DefaultFontTheme}
}

// Store owns the theme preferences. No history: theme changes are not
// undoable.
type Store struct {
	mu      sync.RWMutex
	current Theme
	subs    []func(Theme)
}

// NewStore builds a store around the given initial theme.
func NewStore(initial Theme) *Store {
	return &Store{current: initial}
}

// Snapshot returns the current theme.
func (s *Store) Snapshot() Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Subscribe registers fn to run after every change, in commit order.
func (s *Store) Subscribe(fn func(Theme)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// SetAccentColor replaces the accent color. Any string is accepted.
func (s *Store) SetAccentColor(color string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.AccentColor = color
	s.notifyLocked()
}

// SetFontTheme replaces the font theme. Unknown themes are ignored.
func (s *Store) SetFontTheme(theme string) {
	if !isKnownFontTheme(theme) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.FontTheme = theme
	s.notifyLocked()
}

// Reset restores both preferences to their defaults.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = DefaultTheme()
	s.notifyLocked()
}

func (s *Store) notifyLocked() {
	for _, fn := range s.subs {
		fn(s.current)
	}
}

func isKnownFontTheme(theme string) bool {
	switch theme {
	case FontModern, FontClassic, FontCreative:
		return true
	}
	return false
}
