package dice

import (
	"errors"
	"math/rand"
	"time"
)

// randomRoller implements Roller backed by a dedicated rand.Rand so that
// battles can be replayed from a known seed
type randomRoller struct {
	rng *rand.Rand
}

// NewRandomRoller creates a roller seeded from the current time
func NewRandomRoller() Roller {
	return NewSeededRoller(time.Now().UnixNano())
}

// NewSeededRoller creates a roller with an explicit seed
func NewSeededRoller(seed int64) Roller {
	return &randomRoller{rng: rand.New(rand.NewSource(seed))}
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	if count < 1 {
		return nil, errors.New("invalid dice count")
	}
	if sides < 1 {
		return nil, errors.New("invalid dice size")
	}

	total := 0
	rolls := make([]int, count)
	for i := 0; i < count; i++ {
		roll := r.rng.Intn(sides) + 1
		total += roll
		rolls[i] = roll
	}

	return &RollResult{
		Total: total + bonus,
		Rolls: rolls,
		Bonus: bonus,
		Count: count,
		Sides: sides,
	}, nil
}

// Intn implements Roller.Intn
func (r *randomRoller) Intn(n int) (int, error) {
	if n < 1 {
		return 0, errors.New("invalid draw range")
	}
	return r.rng.Intn(n), nil
}
