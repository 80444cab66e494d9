package combat

// Move is one of the five combat choices. The advantage graph is a regular
// tournament: every move beats exactly two others and loses to the other two.
type Move string

const (
	MoveRush    Move = "rush"
	MoveStrike  Move = "strike"
	MoveSweep   Move = "sweep"
	MoveGuard   Move = "guard"
	MoveGrapple Move = "grapple"
)

// Moves lists every move in a stable order
var Moves = []Move{MoveRush, MoveStrike, MoveSweep, MoveGuard, MoveGrapple}

// moveAdvantages maps each move to the set of moves it beats
var moveAdvantages = map[Move][]Move{
	MoveRush:    {MoveStrike, MoveSweep},
	MoveStrike:  {MoveSweep, MoveGrapple},
	MoveSweep:   {MoveGuard, MoveGrapple},
	MoveGuard:   {MoveRush, MoveStrike},
	MoveGrapple: {MoveRush, MoveGuard},
}

// IsValid reports whether m is one of the five known moves
func (m Move) IsValid() bool {
	_, ok := moveAdvantages[m]
	return ok
}

// Beats reports whether m wins against other
func (m Move) Beats(other Move) bool {
	for _, beaten := range moveAdvantages[m] {
		if beaten == other {
			return true
		}
	}
	return false
}

// BeatenBy returns the moves that beat m
func (m Move) BeatenBy() []Move {
	var out []Move
	for _, other := range Moves {
		if other.Beats(m) {
			out = append(out, other)
		}
	}
	return out
}

// WinsAgainst returns the moves m beats
func (m Move) WinsAgainst() []Move {
	out := make([]Move, len(moveAdvantages[m]))
	copy(out, moveAdvantages[m])
	return out
}

// ParseMove converts a string to a Move, reporting whether it is known
func ParseMove(s string) (Move, bool) {
	m := Move(s)
	return m, m.IsValid()
}
