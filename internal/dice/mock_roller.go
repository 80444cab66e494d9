package dice

import (
	"fmt"
	"sync"
)

// MockRoller implements Roller for testing with predetermined results
type MockRoller struct {
	mu        sync.Mutex
	rolls     []int
	rollIndex int
}

// NewMockRoller creates a new mock roller
func NewMockRoller() *MockRoller {
	return &MockRoller{
		rolls: []int{},
	}
}

// SetRolls sets the sequence of values to return. Each Roll or Intn call
// consumes one value.
func (m *MockRoller) SetRolls(rolls []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = rolls
	m.rollIndex = 0
}

// AddRoll appends a value to the sequence
func (m *MockRoller) AddRoll(roll int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = append(m.rolls, roll)
}

func (m *MockRoller) next() (int, error) {
	if m.rollIndex >= len(m.rolls) {
		return 0, fmt.Errorf("mock roller exhausted after %d rolls", m.rollIndex)
	}
	v := m.rolls[m.rollIndex]
	m.rollIndex++
	return v, nil
}

// Roll implements Roller.Roll, consuming one predetermined value per die
func (m *MockRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	total := 0
	rolls := make([]int, count)
	for i := 0; i < count; i++ {
		v, err := m.next()
		if err != nil {
			return nil, err
		}
		rolls[i] = v
		total += v
	}

	return &RollResult{
		Total: total + bonus,
		Rolls: rolls,
		Bonus: bonus,
		Count: count,
		Sides: sides,
	}, nil
}

// Intn implements Roller.Intn, consuming one predetermined value
func (m *MockRoller) Intn(n int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.next()
}

// Remaining returns how many predetermined values are left unconsumed
func (m *MockRoller) Remaining() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rolls) - m.rollIndex
}
