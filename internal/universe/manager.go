package universe

import (
	"log"
	"sort"
	"strings"
	"sync"
)

// Manager maintains the scan universe: the configured base symbols plus a
// runtime-editable watchlist persisted to disk.
type Manager struct {
	mu       sync.Mutex
	base     []string
	state    *State
	filePath string
}

// NewManager creates a Manager, loading the persisted watchlist if present.
func NewManager(filePath string, baseSymbols []string) (*Manager, error) {
	state, err := LoadState(filePath)
	if err != nil {
		return nil, err
	}
	return &Manager{base: baseSymbols, state: state, filePath: filePath}, nil
}

// Symbols returns the deduplicated union of base symbols and the watchlist,
// sorted for stable scan order.
func (m *Manager) Symbols() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	seen := make(map[string]bool)
	var out []string
	for _, s := range m.base {
		s = normalize(s)
		if s != "" && !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	for _, s := range m.state.Symbols {
		s = normalize(s)
		if s != "" && !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

// Add puts a symbol on the watchlist. Returns false if already present.
func (m *Manager) Add(symbol string) bool {
	symbol = normalize(symbol)
	if symbol == "" {
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, s := range m.state.Symbols {
		if normalize(s) == symbol {
			return false
		}
	}
	m.state.Symbols = append(m.state.Symbols, symbol)
	m.save()
	return true
}

// Remove takes a symbol off the watchlist. Returns false if it wasn't there.
func (m *Manager) Remove(symbol string) bool {
	symbol = normalize(symbol)

	m.mu.Lock()
	defer m.mu.Unlock()

	for i, s := range m.state.Symbols {
		if normalize(s) == symbol {
			m.state.Symbols = append(m.state.Symbols[:i], m.state.Symbols[i+1:]...)
			m.save()
			return true
		}
	}
	return false
}

// Watchlist returns a copy of the persisted (non-base) symbols.
func (m *Manager) Watchlist() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.state.Symbols))
	copy(out, m.state.Symbols)
	return out
}

func (m *Manager) save() {
	if err := SaveState(m.filePath, m.state); err != nil {
		log.Printf("[ERROR] failed to save watchlist: %v", err)
	}
}

func normalize(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}
