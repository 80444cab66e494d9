package combat

import (
	apperr "github.com/pillzarena/pillz-arena/internal/errors"
)

// ResultKind classifies how a round ended
type ResultKind string

const (
	// ResultWin means one side won on moves (or via the opponent skipping)
	ResultWin ResultKind = "win"

	// ResultDraw means both sides chose the same move
	ResultDraw ResultKind = "draw"

	// ResultNoEffect is the defensive scoreless draw for a gap in the
	// advantage graph; unreachable with the validated five moves
	ResultNoEffect ResultKind = "no_effect"

	// ResultMutualSkip means both sides had an active skip effect
	ResultMutualSkip ResultKind = "mutual_skip"
)

// Selection holds one side's choices for the open round
type Selection struct {
	Move     Move
	MoveSet  bool
	Pillz    string
	PillzSet bool
}

// RoundRecord is the immutable record of a resolved round. It is appended to
// the battle history and never mutated afterwards.
type RoundRecord struct {
	RoundNumber int

	Combatant1Move Move
	Combatant2Move Move

	// Pillz identifiers invoked this round, empty when none
	Combatant1Pillz string
	Combatant2Pillz string

	Result   ResultKind
	WinnerID string

	Points1 int
	Points2 int
}

// BattleSummary reports the running state of a battle
type BattleSummary struct {
	BattleID     string
	CurrentRound int
	MaxRounds    int
	Score1       int
	Score2       int
	Wins1        int
	Wins2        int
	Streak1      int
	Streak2      int
	Complete     bool
}

// Battle is the aggregate for one battle between two combatants
type Battle struct {
	ID         string
	Combatant1 *Combatant
	Combatant2 *Combatant

	// CurrentRound is 1-based; it advances only when a round resolves
	CurrentRound int
	MaxRounds    int

	History    []*RoundRecord
	Selections map[string]*Selection
}

// NewBattle creates a battle between two distinct combatants
func NewBattle(id string, c1, c2 *Combatant, maxRounds int) (*Battle, error) {
	if c1 == nil || c2 == nil {
		return nil, apperr.InvalidArgument("both combatants are required")
	}
	if c1.ID == c2.ID {
		return nil, apperr.InvalidArgument("combatants must be distinct")
	}
	if maxRounds < 1 {
		return nil, apperr.InvalidArgumentf("max rounds must be positive, got %d", maxRounds)
	}

	return &Battle{
		ID:           id,
		Combatant1:   c1,
		Combatant2:   c2,
		CurrentRound: 1,
		MaxRounds:    maxRounds,
		Selections:   make(map[string]*Selection),
	}, nil
}

// CombatantByID returns the registered combatant with the given ID
func (b *Battle) CombatantByID(id string) (*Combatant, error) {
	switch id {
	case b.Combatant1.ID:
		return b.Combatant1, nil
	case b.Combatant2.ID:
		return b.Combatant2, nil
	}
	return nil, apperr.NotFoundf("unknown combatant: %s", id)
}

// OpponentOf returns the other registered combatant
func (b *Battle) OpponentOf(id string) (*Combatant, error) {
	switch id {
	case b.Combatant1.ID:
		return b.Combatant2, nil
	case b.Combatant2.ID:
		return b.Combatant1, nil
	}
	return nil, apperr.NotFoundf("unknown combatant: %s", id)
}

func (b *Battle) selection(id string) *Selection {
	sel, ok := b.Selections[id]
	if !ok {
		sel = &Selection{}
		b.Selections[id] = sel
	}
	return sel
}

// SetMove records a combatant's move for the open round
func (b *Battle) SetMove(combatantID string, move Move) error {
	if _, err := b.CombatantByID(combatantID); err != nil {
		return err
	}
	if !move.IsValid() {
		return apperr.NotFoundf("unknown move: %s", move)
	}

	sel := b.selection(combatantID)
	sel.Move = move
	sel.MoveSet = true
	return nil
}

// SetPillz records a combatant's pillz choice for the open round. The pillz
// identifier is validated by the caller against the catalog.
func (b *Battle) SetPillz(combatantID, pillz string) error {
	if _, err := b.CombatantByID(combatantID); err != nil {
		return err
	}

	sel := b.selection(combatantID)
	sel.Pillz = pillz
	sel.PillzSet = true
	return nil
}

// BothMovesSet reports whether the round can resolve
func (b *Battle) BothMovesSet() bool {
	s1, ok1 := b.Selections[b.Combatant1.ID]
	s2, ok2 := b.Selections[b.Combatant2.ID]
	return ok1 && ok2 && s1.MoveSet && s2.MoveSet
}

// CloseRound appends the record, clears selections and advances the counter
func (b *Battle) CloseRound(record *RoundRecord) {
	b.History = append(b.History, record)
	b.Selections = make(map[string]*Selection)
	b.CurrentRound++
}

// IsComplete reports whether every round has been played
func (b *Battle) IsComplete() bool {
	return len(b.History) >= b.MaxRounds
}

// Summary computes scores, win counts and current streaks from the history
func (b *Battle) Summary() *BattleSummary {
	s := &BattleSummary{
		BattleID:     b.ID,
		CurrentRound: b.CurrentRound,
		MaxRounds:    b.MaxRounds,
		Score1:       b.Combatant1.Score,
		Score2:       b.Combatant2.Score,
		Complete:     b.IsComplete(),
	}

	for _, record := range b.History {
		switch record.WinnerID {
		case b.Combatant1.ID:
			s.Wins1++
		case b.Combatant2.ID:
			s.Wins2++
		}
	}

	for i := len(b.History) - 1; i >= 0; i-- {
		if b.History[i].WinnerID != b.Combatant1.ID {
			break
		}
		s.Streak1++
	}
	for i := len(b.History) - 1; i >= 0; i-- {
		if b.History[i].WinnerID != b.Combatant2.ID {
			break
		}
		s.Streak2++
	}

	return s
}
