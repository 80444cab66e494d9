package pillz

import (
	"github.com/pillzarena/pillz-arena/internal/dice"
	"github.com/pillzarena/pillz-arena/internal/effects"
	apperr "github.com/pillzarena/pillz-arena/internal/errors"
	"github.com/pillzarena/pillz-arena/internal/uuid"
)

// factory produces fresh effect instances for a pillz. Several pillz pick
// uniformly among named variants, so factories take the roller.
type factory func(c *Catalog) ([]*effects.Effect, error)

// Entry describes one pillz: its gating rule and its effect factory
type Entry struct {
	Type        Type
	Name        string
	Description string
	Activation  ActivationType

	create factory
}

// Catalog is the immutable pillz registry, constructed once at startup and
// passed by reference into the battle service
type Catalog struct {
	roller  dice.Roller
	ids     uuid.Generator
	entries map[Type]*Entry
	order   []Type
}

// CatalogConfig holds construction dependencies
type CatalogConfig struct {
	Roller        dice.Roller
	UUIDGenerator uuid.Generator
}

// NewCatalog builds the full catalog
func NewCatalog(cfg *CatalogConfig) *Catalog {
	if cfg == nil || cfg.Roller == nil {
		panic("roller is required")
	}

	c := &Catalog{
		roller:  cfg.Roller,
		ids:     cfg.UUIDGenerator,
		entries: make(map[Type]*Entry),
	}
	if c.ids == nil {
		c.ids = uuid.NewGoogleUUIDGenerator()
	}

	c.register(&Entry{
		Type:        TypeGodzillaCake,
		Name:        "Godzilla Cake",
		Description: "Increases damage by a random amount between 1 and 10 permanently",
		Activation:  AnyMove,
		create:      braveFactory,
	})
	c.register(&Entry{
		Type:        TypeSailorMoon,
		Name:        "Sailor Moon",
		Description: "Increases resistance by a random amount between 1 and 10 permanently",
		Activation:  AnyMove,
		create:      resolveFactory,
	})
	c.register(&Entry{
		Type:        TypeGotham,
		Name:        "Gotham",
		Description: "Decreases the opponent's resistance by a random amount between 1 and 10 permanently",
		Activation:  AnyMove,
		create:      weaknessFactory,
	})
	c.register(&Entry{
		Type:        TypeAlienAttack,
		Name:        "Alien Attack",
		Description: "Decreases the opponent's damage by a random amount between 1 and 10 permanently",
		Activation:  AnyMove,
		create:      rustFactory,
	})
	c.register(&Entry{
		Type:        TypeOctober,
		Name:        "October",
		Description: "Applies either Rust or Weakness to the opponent, picked at random",
		Activation:  AnyMove,
		create:      sadnessFactory,
	})
	c.register(&Entry{
		Type:        TypeApril,
		Name:        "April",
		Description: "Grants one of Brave, Resolve or Don't Cry, picked at random",
		Activation:  AnyMove,
		create:      rainbowFactory,
	})
	c.register(&Entry{
		Type:        TypeNordicShield,
		Name:        "Nordic Shield",
		Description: "Doubles resistance for the next round after a loss",
		Activation:  LoseMoveOnly,
		create:      shieldFactory,
	})
	c.register(&Entry{
		Type:        TypeSouthPacific,
		Name:        "South Pacific",
		Description: "Skips the next round, then doubles damage on the next winning round",
		Activation:  AnyMove,
		create:      dexterityFactory,
	})
	c.register(&Entry{
		Type:        TypeJurassic,
		Name:        "Jurassic",
		Description: "Counters the opponent's damage effects for the next round after a loss",
		Activation:  LoseMoveOnly,
		create:      spikeFactory,
	})

	return c
}

func (c *Catalog) register(e *Entry) {
	c.entries[e.Type] = e
	c.order = append(c.order, e.Type)
}

// Get returns the entry for a pillz type
func (c *Catalog) Get(t Type) (*Entry, error) {
	entry, ok := c.entries[t]
	if !ok {
		return nil, apperr.NotFoundf("unknown pillz: %s", t)
	}
	return entry, nil
}

// Types lists every registered pillz in registration order
func (c *Catalog) Types() []Type {
	out := make([]Type, len(c.order))
	copy(out, c.order)
	return out
}

// Permits checks the gating rule of a pillz against the move outcome
func (c *Catalog) Permits(t Type, outcome effects.Outcome) (bool, error) {
	entry, err := c.Get(t)
	if err != nil {
		return false, err
	}
	return entry.Activation.Permits(outcome), nil
}

// CreateEffects materializes fresh effect instances for a pillz. Every call
// returns new instances so random draws are per-invocation.
func (c *Catalog) CreateEffects(t Type) ([]*effects.Effect, error) {
	entry, err := c.Get(t)
	if err != nil {
		return nil, err
	}
	return entry.create(c)
}

// Factories. Names and shapes come from the effect each pillz grants, not
// from the pillz itself: several pillz share effect templates.

func braveEffect(c *Catalog, name string) *effects.Effect {
	return &effects.Effect{
		ID:         c.ids.New(),
		Name:       name,
		Type:       effects.TypeDamage,
		Duration:   effects.DurationPermanent,
		Target:     effects.TargetSelf,
		Activation: effects.ConditionAny,
		Priority:   1,
		Modifiers: []*effects.StatModifier{
			effects.NewRandomModifier(effects.StatDamage, 10, false, c.roller),
		},
	}
}

func resolveEffect(c *Catalog, name string) *effects.Effect {
	return &effects.Effect{
		ID:         c.ids.New(),
		Name:       name,
		Type:       effects.TypeResistance,
		Duration:   effects.DurationPermanent,
		Target:     effects.TargetSelf,
		Activation: effects.ConditionAny,
		Priority:   1,
		Modifiers: []*effects.StatModifier{
			effects.NewRandomModifier(effects.StatResistance, 10, false, c.roller),
		},
	}
}

func weaknessEffect(c *Catalog, name string) *effects.Effect {
	return &effects.Effect{
		ID:         c.ids.New(),
		Name:       name,
		Type:       effects.TypeResistance,
		Duration:   effects.DurationPermanent,
		Target:     effects.TargetOpponent,
		Activation: effects.ConditionAny,
		Priority:   1,
		Modifiers: []*effects.StatModifier{
			effects.NewRandomModifier(effects.StatResistance, 10, true, c.roller),
		},
	}
}

func rustEffect(c *Catalog, name string) *effects.Effect {
	return &effects.Effect{
		ID:         c.ids.New(),
		Name:       name,
		Type:       effects.TypeDamage,
		Duration:   effects.DurationPermanent,
		Target:     effects.TargetOpponent,
		Activation: effects.ConditionAny,
		Priority:   1,
		Modifiers: []*effects.StatModifier{
			effects.NewRandomModifier(effects.StatDamage, 10, true, c.roller),
		},
	}
}

func dontCryEffect(c *Catalog, name string) *effects.Effect {
	return &effects.Effect{
		ID:         c.ids.New(),
		Name:       name,
		Type:       effects.TypeResistance,
		Duration:   effects.DurationPermanent,
		Target:     effects.TargetSelf,
		Activation: effects.ConditionLoseOnly,
		Priority:   1,
		Modifiers: []*effects.StatModifier{
			effects.NewFixedModifier(effects.StatResistance, 10),
		},
	}
}

func braveFactory(c *Catalog) ([]*effects.Effect, error) {
	return []*effects.Effect{braveEffect(c, "Brave")}, nil
}

func resolveFactory(c *Catalog) ([]*effects.Effect, error) {
	return []*effects.Effect{resolveEffect(c, "Resolve")}, nil
}

func weaknessFactory(c *Catalog) ([]*effects.Effect, error) {
	return []*effects.Effect{weaknessEffect(c, "Weakness")}, nil
}

func rustFactory(c *Catalog) ([]*effects.Effect, error) {
	return []*effects.Effect{rustEffect(c, "Rust")}, nil
}

func sadnessFactory(c *Catalog) ([]*effects.Effect, error) {
	pick, err := c.roller.Intn(2)
	if err != nil {
		return nil, apperr.Wrap(err, "selecting Sadness variant")
	}

	if pick == 0 {
		return []*effects.Effect{rustEffect(c, "Sadness(Rust)")}, nil
	}
	return []*effects.Effect{weaknessEffect(c, "Sadness(Weakness)")}, nil
}

func rainbowFactory(c *Catalog) ([]*effects.Effect, error) {
	pick, err := c.roller.Intn(3)
	if err != nil {
		return nil, apperr.Wrap(err, "selecting Rainbow variant")
	}

	switch pick {
	case 0:
		return []*effects.Effect{braveEffect(c, "Rainbow(Brave)")}, nil
	case 1:
		return []*effects.Effect{resolveEffect(c, "Rainbow(Resolve)")}, nil
	default:
		return []*effects.Effect{dontCryEffect(c, "Rainbow(Don't Cry)")}, nil
	}
}

func shieldFactory(c *Catalog) ([]*effects.Effect, error) {
	return []*effects.Effect{{
		ID:         c.ids.New(),
		Name:       "Shield",
		Type:       effects.TypeResistance,
		Duration:   effects.DurationNext,
		Target:     effects.TargetSelf,
		Activation: effects.ConditionLoseOnly,
		Priority:   1,
		Modifiers: []*effects.StatModifier{
			effects.NewMultiplierModifier(effects.StatResistance, 2.0),
		},
	}}, nil
}

func dexterityFactory(c *Catalog) ([]*effects.Effect, error) {
	skip := &effects.Effect{
		ID:         c.ids.New(),
		Name:       "Dexterity(Skip)",
		Type:       effects.TypeSkip,
		Duration:   effects.DurationNext,
		Target:     effects.TargetSelf,
		Activation: effects.ConditionAny,
		Priority:   1,
		SkipRound:  true,
	}
	boost := &effects.Effect{
		ID:         c.ids.New(),
		Name:       "Dexterity",
		Type:       effects.TypeDamage,
		Duration:   effects.DurationNext,
		Target:     effects.TargetSelf,
		Activation: effects.ConditionWinOnly,
		Priority:   1,
		Modifiers: []*effects.StatModifier{
			effects.NewMultiplierModifier(effects.StatDamage, 2.0),
		},
	}
	return []*effects.Effect{skip, boost}, nil
}

func spikeFactory(c *Catalog) ([]*effects.Effect, error) {
	return []*effects.Effect{{
		ID:         c.ids.New(),
		Name:       "Spike",
		Type:       effects.TypeCounter,
		Duration:   effects.DurationNext,
		Target:     effects.TargetSelf,
		Activation: effects.ConditionLoseOnly,
		Priority:   2,
		Counters:   []effects.EffectType{effects.TypeDamage},
	}}, nil
}
