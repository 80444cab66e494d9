package pillz

import (
	"github.com/pillzarena/pillz-arena/internal/effects"
)

// Type identifies a pillz in the catalog
type Type string

const (
	TypeGodzillaCake Type = "godzilla_cake"
	TypeSouthPacific Type = "south_pacific"
	TypeApril        Type = "april"
	TypeSailorMoon   Type = "sailor_moon"
	TypeGotham       Type = "gotham"
	TypeAlienAttack  Type = "alien_attack"
	TypeOctober      Type = "october"
	TypeNordicShield Type = "nordic_shield"
	TypeJurassic     Type = "jurassic"
)

// ActivationType gates when the player may invoke a pillz at all. It is
// checked against the move outcome; the created effect's own activation
// condition is a separate, second gate.
type ActivationType string

const (
	AnyMove      ActivationType = "any_move"
	WinMoveOnly  ActivationType = "win_move_only"
	LoseMoveOnly ActivationType = "lose_move_only"
)

// Permits reports whether the move outcome allows invoking the pillz
func (a ActivationType) Permits(outcome effects.Outcome) bool {
	switch a {
	case AnyMove:
		return true
	case WinMoveOnly:
		return outcome == effects.OutcomeWin
	case LoseMoveOnly:
		return outcome == effects.OutcomeLose
	}
	return false
}
