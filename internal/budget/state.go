package budget

import (
	"encoding/json"
	"os"
	"time"
)

// State tracks how much of the daily order budget has been spent.
type State struct {
	DailyBudget float64   `json:"daily_budget"`
	SpentToday  float64   `json:"spent_today"`
	OrdersToday int       `json:"orders_today"`
	Day         string    `json:"day"` // 2006-01-02
	UpdatedAt   time.Time `json:"updated_at"`
}

// LoadState reads the budget state from a JSON file. Returns a zero
// state if the file doesn't exist.
func LoadState(filePath string) (*State, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return &State{}, nil
		}
		return nil, err
	}
	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// SaveState writes the budget state to a JSON file.
func SaveState(filePath string, state *State) error {
	state.UpdatedAt = time.Now()
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, data, 0644)
}
