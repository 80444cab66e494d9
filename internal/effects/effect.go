package effects

import (
	apperr "github.com/pillzarena/pillz-arena/internal/errors"
)

// Effect is a named bundle of stat modifiers with a duration class, a target,
// an activation condition, a priority and a counter list. The Manager owns
// its lifecycle.
type Effect struct {
	ID   string
	Name string
	Type EffectType

	Duration   DurationClass
	Target     Target
	Activation Condition

	// Priority orders aggregation; higher resolves first, ties keep
	// insertion order
	Priority int

	Modifiers []*StatModifier

	// Counters lists the effect types this effect nullifies on the opponent
	Counters []EffectType

	// SkipRound marks the owner as skipping any round this effect is active
	SkipRound bool

	State State

	AppliedAtRound *int
	ExpiresAtRound *int
}

// CanActivate reports whether the outcome satisfies the activation condition
func (e *Effect) CanActivate(outcome Outcome) bool {
	return e.Activation.Matches(outcome)
}

// Apply transitions the effect to active and anchors its expiry. Calling it
// a second time is a contract violation, not a timer reset.
func (e *Effect) Apply(currentRound int) error {
	if e.State == StateActive {
		return apperr.Internalf("effect %s applied twice", e.Name)
	}

	e.State = StateActive
	round := currentRound
	e.AppliedAtRound = &round

	switch e.Duration {
	case DurationCurrent:
		expires := currentRound
		e.ExpiresAtRound = &expires
	case DurationNext:
		expires := currentRound + 1
		e.ExpiresAtRound = &expires
	case DurationPermanent:
		e.ExpiresAtRound = nil
	}

	return nil
}

// ShouldExpire reports whether the effect's lifetime ends this round
func (e *Effect) ShouldExpire(currentRound int) bool {
	if e.State != StateActive {
		return false
	}
	if e.Duration == DurationPermanent {
		return false
	}
	return e.ExpiresAtRound != nil && *e.ExpiresAtRound == currentRound
}

// Counter reports whether this effect nullifies the given effect type
func (e *Effect) Counter(t EffectType) bool {
	for _, c := range e.Counters {
		if c == t {
			return true
		}
	}
	return false
}
