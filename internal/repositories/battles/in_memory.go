package battles

import (
	"context"
	"sync"

	"github.com/pillzarena/pillz-arena/internal/domain/combat"
	apperr "github.com/pillzarena/pillz-arena/internal/errors"
)

type inMemoryRepository struct {
	mu      sync.RWMutex
	battles map[string]*combat.Battle
}

// NewInMemoryRepository creates a new in-memory battle repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		battles: make(map[string]*combat.Battle),
	}
}

// Create stores a new battle
func (r *inMemoryRepository) Create(ctx context.Context, battle *combat.Battle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if battle == nil || battle.ID == "" {
		return apperr.InvalidArgument("battle with an ID is required")
	}

	if _, exists := r.battles[battle.ID]; exists {
		return apperr.InvalidArgumentf("battle already exists: %s", battle.ID)
	}

	r.battles[battle.ID] = battle
	return nil
}

// Get retrieves a battle by ID
func (r *inMemoryRepository) Get(ctx context.Context, id string) (*combat.Battle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	battle, exists := r.battles[id]
	if !exists {
		return nil, apperr.NotFoundf("battle not found: %s", id)
	}

	return battle, nil
}

// Update modifies an existing battle
func (r *inMemoryRepository) Update(ctx context.Context, battle *combat.Battle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if battle == nil || battle.ID == "" {
		return apperr.InvalidArgument("battle with an ID is required")
	}

	if _, exists := r.battles[battle.ID]; !exists {
		return apperr.NotFoundf("battle not found: %s", battle.ID)
	}

	r.battles[battle.ID] = battle
	return nil
}

// Delete removes a battle
func (r *inMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.battles[id]; !exists {
		return apperr.NotFoundf("battle not found: %s", id)
	}

	delete(r.battles, id)
	return nil
}
