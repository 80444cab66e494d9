package battle

//go:generate mockgen -destination=mock/mock_service.go -package=mockbattle -source=service.go

import (
	"context"
	"sync"

	"github.com/pillzarena/pillz-arena/internal/domain/combat"
	"github.com/pillzarena/pillz-arena/internal/effects"
	apperr "github.com/pillzarena/pillz-arena/internal/errors"
	"github.com/pillzarena/pillz-arena/internal/pillz"
	"github.com/pillzarena/pillz-arena/internal/repositories/battles"
	"github.com/pillzarena/pillz-arena/internal/uuid"
)

// Service defines the battle service interface: the external surface of the
// round resolution engine
type Service interface {
	// CreateCombatant validates stats and creates a combatant
	CreateCombatant(ctx context.Context, input *CreateCombatantInput) (*combat.Combatant, error)

	// CreateBattle starts a battle between two combatants
	CreateBattle(ctx context.Context, input *CreateBattleInput) (*combat.Battle, error)

	// SetMove records a combatant's move for the open round
	SetMove(ctx context.Context, battleID, combatantID string, move combat.Move) error

	// SetPillz records a combatant's pillz choice for the open round
	SetPillz(ctx context.Context, battleID, combatantID string, pillzType pillz.Type) error

	// ResolveRound resolves the open round and returns its record
	ResolveRound(ctx context.Context, battleID string) (*combat.RoundRecord, error)

	// GetBattle retrieves a battle by ID
	GetBattle(ctx context.Context, battleID string) (*combat.Battle, error)

	// GetHistory returns the resolved round records in order
	GetHistory(ctx context.Context, battleID string) ([]*combat.RoundRecord, error)

	// GetEffectHistory returns the append-only effect audit trail
	GetEffectHistory(ctx context.Context, battleID string) ([]effects.HistoryEntry, error)

	// GetSummary reports scores, win counts and streaks
	GetSummary(ctx context.Context, battleID string) (*combat.BattleSummary, error)
}

// CreateCombatantInput contains data for creating a combatant
type CreateCombatantInput struct {
	Name       string
	Damage     int
	Resistance int
}

// CreateBattleInput contains data for starting a battle
type CreateBattleInput struct {
	Combatant1 *combat.Combatant
	Combatant2 *combat.Combatant

	// MaxRounds defaults to 6 when zero
	MaxRounds int
}

// DefaultMaxRounds matches the classic six-round battle
const DefaultMaxRounds = 6

type service struct {
	repository    battles.Repository
	catalog       *pillz.Catalog
	uuidGenerator uuid.Generator

	mu       sync.Mutex
	managers map[string]*effects.Manager // battleID -> effect manager
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository    battles.Repository
	Catalog       *pillz.Catalog
	UUIDGenerator uuid.Generator
}

// NewService creates a new battle service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}
	if cfg.Catalog == nil {
		panic("pillz catalog is required")
	}

	svc := &service{
		repository: cfg.Repository,
		catalog:    cfg.Catalog,
		managers:   make(map[string]*effects.Manager),
	}

	if cfg.UUIDGenerator != nil {
		svc.uuidGenerator = cfg.UUIDGenerator
	} else {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}

	return svc
}

// managerFor gets or creates the effect manager for a battle
func (s *service) managerFor(battleID string) *effects.Manager {
	s.mu.Lock()
	defer s.mu.Unlock()

	if manager, exists := s.managers[battleID]; exists {
		return manager
	}

	manager := effects.NewManager()
	s.managers[battleID] = manager
	return manager
}

func (s *service) CreateCombatant(ctx context.Context, input *CreateCombatantInput) (*combat.Combatant, error) {
	if input == nil {
		return nil, apperr.InvalidArgument("input is required")
	}

	return combat.NewCombatant(s.uuidGenerator.New(), input.Name, input.Damage, input.Resistance)
}

func (s *service) CreateBattle(ctx context.Context, input *CreateBattleInput) (*combat.Battle, error) {
	if input == nil {
		return nil, apperr.InvalidArgument("input is required")
	}

	maxRounds := input.MaxRounds
	if maxRounds == 0 {
		maxRounds = DefaultMaxRounds
	}

	battle, err := combat.NewBattle(s.uuidGenerator.New(), input.Combatant1, input.Combatant2, maxRounds)
	if err != nil {
		return nil, err
	}

	if err := s.repository.Create(ctx, battle); err != nil {
		return nil, err
	}

	return battle, nil
}

func (s *service) SetMove(ctx context.Context, battleID, combatantID string, move combat.Move) error {
	battle, err := s.repository.Get(ctx, battleID)
	if err != nil {
		return err
	}

	if err := battle.SetMove(combatantID, move); err != nil {
		return err
	}

	return s.repository.Update(ctx, battle)
}

func (s *service) SetPillz(ctx context.Context, battleID, combatantID string, pillzType pillz.Type) error {
	battle, err := s.repository.Get(ctx, battleID)
	if err != nil {
		return err
	}

	// Validate against the catalog before touching the selection
	if _, err := s.catalog.Get(pillzType); err != nil {
		return err
	}

	if err := battle.SetPillz(combatantID, string(pillzType)); err != nil {
		return err
	}

	return s.repository.Update(ctx, battle)
}

func (s *service) GetBattle(ctx context.Context, battleID string) (*combat.Battle, error) {
	return s.repository.Get(ctx, battleID)
}

func (s *service) GetHistory(ctx context.Context, battleID string) ([]*combat.RoundRecord, error) {
	battle, err := s.repository.Get(ctx, battleID)
	if err != nil {
		return nil, err
	}

	history := make([]*combat.RoundRecord, len(battle.History))
	copy(history, battle.History)
	return history, nil
}

func (s *service) GetEffectHistory(ctx context.Context, battleID string) ([]effects.HistoryEntry, error) {
	if _, err := s.repository.Get(ctx, battleID); err != nil {
		return nil, err
	}

	return s.managerFor(battleID).History(), nil
}

func (s *service) GetSummary(ctx context.Context, battleID string) (*combat.BattleSummary, error) {
	battle, err := s.repository.Get(ctx, battleID)
	if err != nil {
		return nil, err
	}

	return battle.Summary(), nil
}
