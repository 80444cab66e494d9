package pillz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pillzarena/pillz-arena/internal/dice"
	"github.com/pillzarena/pillz-arena/internal/effects"
	apperr "github.com/pillzarena/pillz-arena/internal/errors"
)

func newTestCatalog() (*Catalog, *dice.MockRoller) {
	roller := dice.NewMockRoller()
	return NewCatalog(&CatalogConfig{Roller: roller}), roller
}

func TestNewCatalog(t *testing.T) {
	t.Run("panics without a roller", func(t *testing.T) {
		assert.Panics(t, func() {
			NewCatalog(&CatalogConfig{})
		})
		assert.Panics(t, func() {
			NewCatalog(nil)
		})
	})

	t.Run("registers all nine pillz", func(t *testing.T) {
		catalog, _ := newTestCatalog()
		assert.Len(t, catalog.Types(), 9)
	})
}

func TestCatalog_Get(t *testing.T) {
	catalog, _ := newTestCatalog()

	t.Run("known pillz", func(t *testing.T) {
		entry, err := catalog.Get(TypeGodzillaCake)
		require.NoError(t, err)
		assert.Equal(t, "Godzilla Cake", entry.Name)
		assert.Equal(t, AnyMove, entry.Activation)
	})

	t.Run("unknown pillz", func(t *testing.T) {
		_, err := catalog.Get(Type("placebo"))
		require.Error(t, err)
		assert.True(t, apperr.IsNotFound(err))
	})
}

func TestCatalog_Permits(t *testing.T) {
	catalog, _ := newTestCatalog()

	tests := []struct {
		name    string
		pillz   Type
		outcome effects.Outcome
		want    bool
	}{
		{"any-move pillz on a win", TypeGodzillaCake, effects.OutcomeWin, true},
		{"any-move pillz on a loss", TypeGodzillaCake, effects.OutcomeLose, true},
		{"any-move pillz on a draw", TypeSouthPacific, effects.OutcomeDraw, true},
		{"lose-only pillz on a loss", TypeNordicShield, effects.OutcomeLose, true},
		{"lose-only pillz on a win", TypeNordicShield, effects.OutcomeWin, false},
		{"lose-only pillz on a draw", TypeJurassic, effects.OutcomeDraw, false},
		{"lose-only pillz on a loss jurassic", TypeJurassic, effects.OutcomeLose, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := catalog.Permits(tt.pillz, tt.outcome)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown pillz", func(t *testing.T) {
		_, err := catalog.Permits(Type("placebo"), effects.OutcomeWin)
		require.Error(t, err)
		assert.True(t, apperr.IsNotFound(err))
	})
}

func TestCatalog_CreateEffects(t *testing.T) {
	t.Run("godzilla cake grants a permanent self damage boost", func(t *testing.T) {
		catalog, roller := newTestCatalog()
		roller.SetRolls([]int{7})

		created, err := catalog.CreateEffects(TypeGodzillaCake)
		require.NoError(t, err)
		require.Len(t, created, 1)

		effect := created[0]
		assert.Equal(t, "Brave", effect.Name)
		assert.Equal(t, effects.DurationPermanent, effect.Duration)
		assert.Equal(t, effects.TargetSelf, effect.Target)
		assert.NotEmpty(t, effect.ID)

		require.Len(t, effect.Modifiers, 1)
		value, err := effect.Modifiers[0].Resolve()
		require.NoError(t, err)
		assert.Equal(t, 7.0, value)
	})

	t.Run("gotham drains the opponent's resistance", func(t *testing.T) {
		catalog, roller := newTestCatalog()
		roller.SetRolls([]int{4})

		created, err := catalog.CreateEffects(TypeGotham)
		require.NoError(t, err)
		require.Len(t, created, 1)

		effect := created[0]
		assert.Equal(t, "Weakness", effect.Name)
		assert.Equal(t, effects.TargetOpponent, effect.Target)

		value, err := effect.Modifiers[0].Resolve()
		require.NoError(t, err)
		assert.Equal(t, -4.0, value)
	})

	t.Run("october picks rust or weakness at random", func(t *testing.T) {
		catalog, roller := newTestCatalog()

		roller.SetRolls([]int{0})
		created, err := catalog.CreateEffects(TypeOctober)
		require.NoError(t, err)
		require.Len(t, created, 1)
		assert.Equal(t, "Sadness(Rust)", created[0].Name)
		assert.Equal(t, effects.StatDamage, created[0].Modifiers[0].Stat)

		roller.SetRolls([]int{1})
		created, err = catalog.CreateEffects(TypeOctober)
		require.NoError(t, err)
		assert.Equal(t, "Sadness(Weakness)", created[0].Name)
		assert.Equal(t, effects.StatResistance, created[0].Modifiers[0].Stat)
	})

	t.Run("april picks among three variants", func(t *testing.T) {
		catalog, roller := newTestCatalog()

		roller.SetRolls([]int{0})
		created, err := catalog.CreateEffects(TypeApril)
		require.NoError(t, err)
		assert.Equal(t, "Rainbow(Brave)", created[0].Name)

		roller.SetRolls([]int{1})
		created, err = catalog.CreateEffects(TypeApril)
		require.NoError(t, err)
		assert.Equal(t, "Rainbow(Resolve)", created[0].Name)

		roller.SetRolls([]int{2})
		created, err = catalog.CreateEffects(TypeApril)
		require.NoError(t, err)
		effect := created[0]
		assert.Equal(t, "Rainbow(Don't Cry)", effect.Name)
		assert.Equal(t, effects.ConditionLoseOnly, effect.Activation)

		value, err := effect.Modifiers[0].Resolve()
		require.NoError(t, err)
		assert.Equal(t, 10.0, value, "Don't Cry is a fixed bonus, no draw")
	})

	t.Run("south pacific grants a skip plus a conditional boost", func(t *testing.T) {
		catalog, _ := newTestCatalog()

		created, err := catalog.CreateEffects(TypeSouthPacific)
		require.NoError(t, err)
		require.Len(t, created, 2)

		skip := created[0]
		assert.True(t, skip.SkipRound)
		assert.Equal(t, effects.DurationNext, skip.Duration)
		assert.Equal(t, effects.ConditionAny, skip.Activation)

		boost := created[1]
		assert.Equal(t, effects.DurationNext, boost.Duration)
		assert.Equal(t, effects.ConditionWinOnly, boost.Activation)
		require.Len(t, boost.Modifiers, 1)
		assert.Equal(t, effects.KindMultiplicative, boost.Modifiers[0].Kind)
	})

	t.Run("nordic shield doubles next round resistance after a loss", func(t *testing.T) {
		catalog, _ := newTestCatalog()

		created, err := catalog.CreateEffects(TypeNordicShield)
		require.NoError(t, err)
		require.Len(t, created, 1)

		shield := created[0]
		assert.Equal(t, effects.DurationNext, shield.Duration)
		assert.Equal(t, effects.ConditionLoseOnly, shield.Activation)

		value, err := shield.Modifiers[0].Resolve()
		require.NoError(t, err)
		assert.Equal(t, 2.0, value)
	})

	t.Run("jurassic counters damage effects", func(t *testing.T) {
		catalog, _ := newTestCatalog()

		created, err := catalog.CreateEffects(TypeJurassic)
		require.NoError(t, err)
		require.Len(t, created, 1)

		spike := created[0]
		assert.Equal(t, effects.TypeCounter, spike.Type)
		assert.Equal(t, effects.DurationNext, spike.Duration)
		assert.Equal(t, effects.ConditionLoseOnly, spike.Activation)
		assert.Equal(t, 2, spike.Priority)
		assert.True(t, spike.Counter(effects.TypeDamage))
		assert.False(t, spike.Counter(effects.TypeResistance))
	})

	t.Run("every call returns fresh instances", func(t *testing.T) {
		catalog, roller := newTestCatalog()
		roller.SetRolls([]int{3, 8})

		first, err := catalog.CreateEffects(TypeSailorMoon)
		require.NoError(t, err)
		second, err := catalog.CreateEffects(TypeSailorMoon)
		require.NoError(t, err)

		assert.NotSame(t, first[0], second[0])
		assert.NotEqual(t, first[0].ID, second[0].ID)

		v1, err := first[0].Modifiers[0].Resolve()
		require.NoError(t, err)
		v2, err := second[0].Modifiers[0].Resolve()
		require.NoError(t, err)
		assert.Equal(t, 3.0, v1)
		assert.Equal(t, 8.0, v2)
	})

	t.Run("unknown pillz", func(t *testing.T) {
		catalog, _ := newTestCatalog()

		_, err := catalog.CreateEffects(Type("placebo"))
		require.Error(t, err)
		assert.True(t, apperr.IsNotFound(err))
	})
}

func TestActivationType_Permits(t *testing.T) {
	assert.True(t, AnyMove.Permits(effects.OutcomeWin))
	assert.True(t, AnyMove.Permits(effects.OutcomeLose))
	assert.True(t, AnyMove.Permits(effects.OutcomeDraw))

	assert.True(t, WinMoveOnly.Permits(effects.OutcomeWin))
	assert.False(t, WinMoveOnly.Permits(effects.OutcomeLose))
	assert.False(t, WinMoveOnly.Permits(effects.OutcomeDraw))

	assert.True(t, LoseMoveOnly.Permits(effects.OutcomeLose))
	assert.False(t, LoseMoveOnly.Permits(effects.OutcomeWin))
	assert.False(t, LoseMoveOnly.Permits(effects.OutcomeDraw))
}
