package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

// RollResult holds the outcome of a single roll request.
type RollResult struct {
	Total int
	Rolls []int
	Bonus int
	Count int
	Sides int
}

// Roller provides an interface for drawing random numbers.
// This allows us to inject deterministic implementations for testing.
type Roller interface {
	// Roll rolls count dice with the given number of sides and adds a bonus
	Roll(count, sides, bonus int) (*RollResult, error)

	// Intn returns a uniform draw from [0, n), used for variant selection
	Intn(n int) (int, error)
}
