package budget

import (
	"log"
	"sync"
	"time"
)

// Manager caps order spending per calendar day, persisting its state to
// disk so restarts mid-day do not reset the cap.
type Manager struct {
	mu       sync.Mutex
	state    *State
	filePath string
	now      func() time.Time
}

// NewManager creates a Manager, loading or initializing state from disk.
func NewManager(filePath string, dailyBudget float64) (*Manager, error) {
	state, err := LoadState(filePath)
	if err != nil {
		return nil, err
	}
	state.DailyBudget = dailyBudget

	m := &Manager{state: state, filePath: filePath, now: time.Now}
	m.rollDay()
	if err := m.save(); err != nil {
		return nil, err
	}
	return m, nil
}

// GetState returns a copy of the current budget state.
func (m *Manager) GetState() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rollDay()
	return *m.state
}

// Reserve claims `amount` of today's budget. Returns false without
// mutating when the claim would overrun the cap.
func (m *Manager) Reserve(amount float64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rollDay()
	if amount <= 0 || m.state.SpentToday+amount > m.state.DailyBudget {
		return false
	}
	m.state.SpentToday += amount
	m.state.OrdersToday++
	if err := m.save(); err != nil {
		log.Printf("[ERROR] failed to save budget state: %v", err)
	}
	return true
}

// rollDay resets the counters when the calendar day changed. Callers
// hold the lock.
func (m *Manager) rollDay() {
	today := m.now().Format("2006-01-02")
	if m.state.Day != today {
		m.state.Day = today
		m.state.SpentToday = 0
		m.state.OrdersToday = 0
	}
}

func (m *Manager) save() error {
	return SaveState(m.filePath, m.state)
}
