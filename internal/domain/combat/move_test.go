package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMove_AdvantageGraph(t *testing.T) {
	t.Run("every move beats exactly two and is beaten by exactly two", func(t *testing.T) {
		for _, move := range Moves {
			assert.Len(t, move.WinsAgainst(), 2, "%s should beat two moves", move)
			assert.Len(t, move.BeatenBy(), 2, "%s should be beaten by two moves", move)
		}
	})

	t.Run("beats and beaten-by sets are disjoint and cover the other four", func(t *testing.T) {
		for _, move := range Moves {
			covered := map[Move]bool{}

			for _, other := range move.WinsAgainst() {
				assert.NotEqual(t, move, other)
				covered[other] = true
			}
			for _, other := range move.BeatenBy() {
				assert.NotEqual(t, move, other)
				assert.False(t, covered[other], "%s both beats and is beaten by %s", move, other)
				covered[other] = true
			}

			assert.Len(t, covered, 4, "%s relations should cover the other four moves", move)
		}
	})

	t.Run("no move beats itself", func(t *testing.T) {
		for _, move := range Moves {
			assert.False(t, move.Beats(move))
		}
	})

	t.Run("beats relation is antisymmetric", func(t *testing.T) {
		for _, a := range Moves {
			for _, b := range Moves {
				if a.Beats(b) {
					assert.False(t, b.Beats(a), "%s and %s beat each other", a, b)
				}
			}
		}
	})
}

func TestMove_KnownMatchups(t *testing.T) {
	assert.True(t, MoveRush.Beats(MoveStrike))
	assert.True(t, MoveRush.Beats(MoveSweep))
	assert.True(t, MoveGuard.Beats(MoveRush))
	assert.True(t, MoveGrapple.Beats(MoveGuard))
	assert.False(t, MoveStrike.Beats(MoveRush))
}

func TestParseMove(t *testing.T) {
	move, ok := ParseMove("rush")
	require.True(t, ok)
	assert.Equal(t, MoveRush, move)

	_, ok = ParseMove("cartwheel")
	assert.False(t, ok)
}
