package effects

import (
	"sort"
	"sync"

	apperr "github.com/pillzarena/pillz-arena/internal/errors"
)

// Manager owns the active and pending effect sets for every combatant in a
// battle, resolves countering and priority ordering, and records the
// append-only history of every modifier actually applied.
type Manager struct {
	mu      sync.RWMutex
	active  map[string][]*Effect
	pending map[string][]*Effect
	history []HistoryEntry
}

// NewManager creates a new effect manager
func NewManager() *Manager {
	return &Manager{
		active:  make(map[string][]*Effect),
		pending: make(map[string][]*Effect),
	}
}

// Add registers an effect for a combatant. Current-duration effects and
// permanent effects with an unconditional activation become active
// immediately; everything else waits in the pending set for a qualifying
// outcome. Returns whether the effect became active now.
func (m *Manager) Add(combatantID string, effect *Effect, currentRound int) (bool, error) {
	if effect == nil {
		return false, apperr.InvalidArgument("effect is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	activateNow := effect.Duration == DurationCurrent ||
		(effect.Duration == DurationPermanent && effect.Activation == ConditionAny)

	if activateNow {
		if err := effect.Apply(currentRound); err != nil {
			return false, err
		}
		m.active[combatantID] = append(m.active[combatantID], effect)
		return true, nil
	}

	effect.State = StatePending
	m.pending[combatantID] = append(m.pending[combatantID], effect)
	return false, nil
}

// Aggregate folds a combatant's active effects into final multipliers and
// flags for the round. Effects countered by an opposing active effect
// contribute nothing this round but stay in the owner's set. Each modifier
// actually folded is logged to the effect history.
func (m *Manager) Aggregate(combatantID, opponentID string, round int) (*AggregatedStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stats := NewAggregatedStats()

	effects := m.sortedActive(combatantID)
	opposing := m.active[opponentID]

	for _, effect := range effects {
		if counteredBy(effect, opposing) != nil {
			continue
		}

		if effect.SkipRound {
			stats.SkipRound = true
		}

		for _, mod := range effect.Modifiers {
			// Additive modifiers on permanent effects were banked into the
			// combatant record at activation; folding them again would
			// double-count.
			if effect.Duration == DurationPermanent && mod.Kind == KindAdditive {
				continue
			}

			value, err := mod.Resolve()
			if err != nil {
				return nil, apperr.Wrapf(err, "aggregating effect %s", effect.Name)
			}

			switch mod.Kind {
			case KindMultiplicative:
				switch mod.Stat {
				case StatDamage:
					stats.DamageMultiplier *= value
				case StatResistance:
					stats.ResistanceMultiplier *= value
				}
			case KindAdditive:
				switch mod.Stat {
				case StatDamage:
					stats.DamageDelta += value
				case StatResistance:
					stats.ResistanceDelta += value
				}
			}

			m.history = append(m.history, HistoryEntry{
				RoundNumber:     round,
				EffectName:      effect.Name,
				ResolvedValue:   value,
				StatAffected:    mod.Stat,
				TargetCombatant: combatantID,
			})
		}
	}

	return stats, nil
}

// PromotePending moves every pending effect whose condition the outcome
// satisfies into the active set, applying it at the current round. Effects
// whose condition is not met stay pending with no maximum wait. Returns the
// newly promoted effects in promotion order.
func (m *Manager) PromotePending(combatantID string, outcome Outcome, currentRound int) ([]*Effect, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var promoted []*Effect
	var remaining []*Effect

	for _, effect := range m.pending[combatantID] {
		if !effect.CanActivate(outcome) {
			remaining = append(remaining, effect)
			continue
		}

		if err := effect.Apply(currentRound); err != nil {
			return nil, err
		}
		m.active[combatantID] = append(m.active[combatantID], effect)
		promoted = append(promoted, effect)
	}

	m.pending[combatantID] = remaining
	return promoted, nil
}

// Expire removes every active effect whose lifetime ended this round
func (m *Manager) Expire(combatantID string, currentRound int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var remaining []*Effect
	for _, effect := range m.active[combatantID] {
		if effect.ShouldExpire(currentRound) {
			effect.State = StateExpired
			continue
		}
		remaining = append(remaining, effect)
	}
	m.active[combatantID] = remaining
}

// Log appends an entry to the effect history; the history is never pruned
func (m *Manager) Log(round int, effectName string, value float64, stat StatType, targetID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.history = append(m.history, HistoryEntry{
		RoundNumber:     round,
		EffectName:      effectName,
		ResolvedValue:   value,
		StatAffected:    stat,
		TargetCombatant: targetID,
	})
}

// History returns a copy of the append-only effect history
func (m *Manager) History() []HistoryEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]HistoryEntry, len(m.history))
	copy(out, m.history)
	return out
}

// ActiveEffects returns a copy of a combatant's active effect list
func (m *Manager) ActiveEffects(combatantID string) []*Effect {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Effect, len(m.active[combatantID]))
	copy(out, m.active[combatantID])
	return out
}

// PendingEffects returns a copy of a combatant's pending effect list
func (m *Manager) PendingEffects(combatantID string) []*Effect {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Effect, len(m.pending[combatantID]))
	copy(out, m.pending[combatantID])
	return out
}

// sortedActive returns the active effects ordered by priority descending,
// insertion order preserved on ties. Caller holds the lock.
func (m *Manager) sortedActive(combatantID string) []*Effect {
	effects := make([]*Effect, len(m.active[combatantID]))
	copy(effects, m.active[combatantID])

	sort.SliceStable(effects, func(i, j int) bool {
		return effects[i].Priority > effects[j].Priority
	})
	return effects
}

// counteredBy returns the first opposing active effect whose counter set
// includes the effect's type, or nil
func counteredBy(effect *Effect, opposing []*Effect) *Effect {
	for _, opp := range opposing {
		if opp.State == StateActive && opp.Counter(effect.Type) {
			return opp
		}
	}
	return nil
}
