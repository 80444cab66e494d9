package battles

//go:generate mockgen -destination=mock/mock_repository.go -package=mockbattles -source=repository.go

import (
	"context"

	"github.com/pillzarena/pillz-arena/internal/domain/combat"
)

// Repository defines the interface for battle storage operations
type Repository interface {
	// Create stores a new battle
	Create(ctx context.Context, battle *combat.Battle) error

	// Get retrieves a battle by ID
	Get(ctx context.Context, id string) (*combat.Battle, error)

	// Update modifies an existing battle
	Update(ctx context.Context, battle *combat.Battle) error

	// Delete removes a battle
	Delete(ctx context.Context, id string) error
}
