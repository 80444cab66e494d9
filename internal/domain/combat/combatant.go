package combat

import (
	apperr "github.com/pillzarena/pillz-arena/internal/errors"
)

// Combatant represents one side of a battle with base stats and the
// permanent bonuses accrued from permanent effects
type Combatant struct {
	ID   string
	Name string

	// Base stats, validated to [0,100] at creation
	BaseDamage     int
	BaseResistance int

	// Permanent accruals from permanent effects. These may be negative
	// (opponent-debuff pillz) and are not re-clamped.
	PermanentDamageBonus     float64
	PermanentResistanceBonus float64

	// Score accumulates points won; monotonically non-decreasing within a battle
	Score int
}

// NewCombatant validates stats and creates a combatant
func NewCombatant(id, name string, damage, resistance int) (*Combatant, error) {
	if damage < 0 || damage > 100 {
		return nil, apperr.Validationf("damage must be between 0 and 100, got %d", damage)
	}
	if resistance < 0 || resistance > 100 {
		return nil, apperr.Validationf("resistance must be between 0 and 100, got %d", resistance)
	}
	if name == "" {
		return nil, apperr.Validation("combatant name is required")
	}

	return &Combatant{
		ID:             id,
		Name:           name,
		BaseDamage:     damage,
		BaseResistance: resistance,
	}, nil
}

// TotalDamage returns base damage plus permanent accruals
func (c *Combatant) TotalDamage() float64 {
	return float64(c.BaseDamage) + c.PermanentDamageBonus
}

// TotalResistance returns base resistance plus permanent accruals
func (c *Combatant) TotalResistance() float64 {
	return float64(c.BaseResistance) + c.PermanentResistanceBonus
}

// AddScore adds points to the combatant's score. Points are never negative,
// so the score never decreases.
func (c *Combatant) AddScore(points int) {
	if points > 0 {
		c.Score += points
	}
}

// ResetScore clears the score between battles
func (c *Combatant) ResetScore() {
	c.Score = 0
}
