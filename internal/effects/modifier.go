package effects

import (
	"github.com/pillzarena/pillz-arena/internal/dice"
	apperr "github.com/pillzarena/pillz-arena/internal/errors"
)

// ModifierKind is the explicit aggregation algebra: additive amounts fold
// into a per-stat delta, multiplicative factors into a per-stat multiplier.
// Halving is a multiplicative 0.5, never a sentinel amount.
type ModifierKind string

const (
	KindAdditive       ModifierKind = "additive"
	KindMultiplicative ModifierKind = "multiplicative"
)

// RandomPolicy controls how a random modifier behaves across reads
type RandomPolicy string

const (
	// PolicyCachedOnce draws on first resolve and returns the cached value
	// afterwards (the default)
	PolicyCachedOnce RandomPolicy = "cached_once"

	// PolicyRerollEachRead redraws on every resolve; a testing hook for
	// distribution checks
	PolicyRerollEachRead RandomPolicy = "reroll_each_read"
)

// StatModifier is an atomic adjustment to one combat stat. The first Resolve
// of a random modifier is the only mutation in the type.
type StatModifier struct {
	Stat StatType
	Kind ModifierKind

	// Amount is the fixed additive amount or the multiplicative factor.
	// Ignored when RandomMax is set.
	Amount float64

	// RandomMax, when positive, makes Resolve draw uniformly from
	// [1, RandomMax]. Only additive modifiers may be random.
	RandomMax int

	// Negate subtracts the additive amount instead of adding it
	Negate bool

	policy RandomPolicy
	roller dice.Roller
	cached *float64
}

// NewFixedModifier creates an additive modifier with a fixed amount
func NewFixedModifier(stat StatType, amount float64) *StatModifier {
	return &StatModifier{
		Stat:   stat,
		Kind:   KindAdditive,
		Amount: amount,
	}
}

// NewMultiplierModifier creates a multiplicative modifier. Use 0.5 to halve
// a stat, 2.0 to double it.
func NewMultiplierModifier(stat StatType, factor float64) *StatModifier {
	return &StatModifier{
		Stat:   stat,
		Kind:   KindMultiplicative,
		Amount: factor,
	}
}

// NewRandomModifier creates an additive modifier drawing from [1, max]
// through the given roller, cached once per instance
func NewRandomModifier(stat StatType, max int, negate bool, roller dice.Roller) *StatModifier {
	return &StatModifier{
		Stat:      stat,
		Kind:      KindAdditive,
		RandomMax: max,
		Negate:    negate,
		policy:    PolicyCachedOnce,
		roller:    roller,
	}
}

// WithPolicy overrides the random policy; returns the modifier for chaining
func (m *StatModifier) WithPolicy(policy RandomPolicy) *StatModifier {
	m.policy = policy
	return m
}

// IsRandom reports whether the modifier draws its amount
func (m *StatModifier) IsRandom() bool {
	return m.RandomMax > 0
}

// Resolve returns the modifier's concrete value. Random modifiers draw on
// first call and return the cached draw on later calls, unless the modifier
// was put into reroll mode.
func (m *StatModifier) Resolve() (float64, error) {
	if !m.IsRandom() {
		if m.Kind == KindAdditive && m.Negate {
			return -m.Amount, nil
		}
		return m.Amount, nil
	}

	if m.policy == PolicyCachedOnce && m.cached != nil {
		return *m.cached, nil
	}

	if m.roller == nil {
		return 0, apperr.Internal("random modifier has no roller")
	}

	result, err := m.roller.Roll(1, m.RandomMax, 0)
	if err != nil {
		return 0, apperr.Wrap(err, "resolving random modifier")
	}

	value := float64(result.Total)
	if m.Negate {
		value = -value
	}
	m.cached = &value
	return value, nil
}
