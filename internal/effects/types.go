package effects

// StatType identifies which combat stat a modifier adjusts
type StatType string

const (
	StatDamage     StatType = "damage"
	StatResistance StatType = "resistance"
)

// EffectType categorizes an effect for the counter lookup
type EffectType string

const (
	TypeDamage     EffectType = "damage"
	TypeResistance EffectType = "resistance"
	TypeSkip       EffectType = "skip"
	TypeCounter    EffectType = "counter"
)

// DurationClass represents how long an effect lasts once active
type DurationClass string

const (
	// DurationCurrent expires at the same round it becomes active
	DurationCurrent DurationClass = "current"

	// DurationNext expires exactly one round after promotion
	DurationNext DurationClass = "next"

	// DurationPermanent never expires
	DurationPermanent DurationClass = "permanent"
)

// Target says which combatant an effect applies to
type Target string

const (
	TargetSelf     Target = "self"
	TargetOpponent Target = "opponent"
)

// Outcome is a round result from one combatant's perspective
type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeLose Outcome = "lose"
	OutcomeDraw Outcome = "draw"
)

// Condition gates when an effect may enter the active set
type Condition string

const (
	ConditionAny      Condition = "any"
	ConditionWinOnly  Condition = "win_only"
	ConditionLoseOnly Condition = "lose_only"
	ConditionDrawOnly Condition = "draw_only"
)

// Matches reports whether the outcome satisfies the condition
func (c Condition) Matches(outcome Outcome) bool {
	switch c {
	case ConditionAny:
		return true
	case ConditionWinOnly:
		return outcome == OutcomeWin
	case ConditionLoseOnly:
		return outcome == OutcomeLose
	case ConditionDrawOnly:
		return outcome == OutcomeDraw
	}
	return false
}

// State is an effect's lifecycle state. An effect never moves from active
// back to pending.
type State string

const (
	StatePending State = "pending"
	StateActive  State = "active"
	StateExpired State = "expired"
)

// AggregatedStats is the fold of one combatant's active effects for a round.
// Additive deltas apply after multiplication.
type AggregatedStats struct {
	DamageMultiplier     float64
	ResistanceMultiplier float64
	DamageDelta          float64
	ResistanceDelta      float64
	SkipRound            bool
}

// NewAggregatedStats returns the identity aggregation (no effects present)
func NewAggregatedStats() *AggregatedStats {
	return &AggregatedStats{
		DamageMultiplier:     1.0,
		ResistanceMultiplier: 1.0,
	}
}

// HistoryEntry is one line of the append-only audit trail recording exactly
// which numeric modifier was applied and when
type HistoryEntry struct {
	RoundNumber     int
	EffectName      string
	ResolvedValue   float64
	StatAffected    StatType
	TargetCombatant string
}
