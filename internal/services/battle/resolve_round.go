package battle

import (
	"context"
	"math"

	"github.com/pillzarena/pillz-arena/internal/domain/combat"
	"github.com/pillzarena/pillz-arena/internal/effects"
	apperr "github.com/pillzarena/pillz-arena/internal/errors"
	"github.com/pillzarena/pillz-arena/internal/pillz"
)

// ResolveRound resolves the open round. The order of operations is
// observable and fixed: aggregate, resolve the outcome, add newly-invoked
// pillz effects, promote pending effects with this round's outcome, expire.
func (s *service) ResolveRound(ctx context.Context, battleID string) (*combat.RoundRecord, error) {
	battle, err := s.repository.Get(ctx, battleID)
	if err != nil {
		return nil, err
	}

	if battle.IsComplete() {
		return nil, apperr.FailedPreconditionf("battle %s is already complete", battleID)
	}
	if !battle.BothMovesSet() {
		return nil, apperr.FailedPrecondition("both moves must be set before resolving the round")
	}

	manager := s.managerFor(battleID)
	round := battle.CurrentRound
	c1, c2 := battle.Combatant1, battle.Combatant2
	sel1, sel2 := battle.Selections[c1.ID], battle.Selections[c2.ID]

	agg1, err := manager.Aggregate(c1.ID, c2.ID, round)
	if err != nil {
		return nil, err
	}
	agg2, err := manager.Aggregate(c2.ID, c1.ID, round)
	if err != nil {
		return nil, err
	}

	result, winner, loser := resolveOutcome(battle, sel1.Move, sel2.Move, agg1, agg2)

	var points int
	if winner != nil {
		winnerAgg, loserAgg := agg1, agg2
		if winner == c2 {
			winnerAgg, loserAgg = agg2, agg1
		}
		points = computePoints(winner, loser, winnerAgg, loserAgg)
		winner.AddScore(points)
	}

	outcome1 := outcomeFor(c1, winner, result)
	outcome2 := outcomeFor(c2, winner, result)

	if err := s.invokePillz(manager, battle, c1, sel1, outcome1, round); err != nil {
		return nil, err
	}
	if err := s.invokePillz(manager, battle, c2, sel2, outcome2, round); err != nil {
		return nil, err
	}

	if err := s.promote(manager, battle, c1.ID, outcome1, round); err != nil {
		return nil, err
	}
	if err := s.promote(manager, battle, c2.ID, outcome2, round); err != nil {
		return nil, err
	}

	manager.Expire(c1.ID, round)
	manager.Expire(c2.ID, round)

	record := &combat.RoundRecord{
		RoundNumber:    round,
		Combatant1Move: sel1.Move,
		Combatant2Move: sel2.Move,
		Result:         result,
	}
	if sel1.PillzSet {
		record.Combatant1Pillz = sel1.Pillz
	}
	if sel2.PillzSet {
		record.Combatant2Pillz = sel2.Pillz
	}
	if winner != nil {
		record.WinnerID = winner.ID
		if winner == c1 {
			record.Points1 = points
		} else {
			record.Points2 = points
		}
	}

	battle.CloseRound(record)
	if err := s.repository.Update(ctx, battle); err != nil {
		return nil, err
	}

	return record, nil
}

// resolveOutcome combines the move matchup with the skip overrides
func resolveOutcome(battle *combat.Battle, move1, move2 combat.Move, agg1, agg2 *effects.AggregatedStats) (combat.ResultKind, *combat.Combatant, *combat.Combatant) {
	c1, c2 := battle.Combatant1, battle.Combatant2

	// Skip overrides bypass move comparison entirely
	switch {
	case agg1.SkipRound && agg2.SkipRound:
		return combat.ResultMutualSkip, nil, nil
	case agg1.SkipRound:
		return combat.ResultWin, c2, c1
	case agg2.SkipRound:
		return combat.ResultWin, c1, c2
	}

	if move1 == move2 {
		return combat.ResultDraw, nil, nil
	}
	if move1.Beats(move2) {
		return combat.ResultWin, c1, c2
	}
	if move2.Beats(move1) {
		return combat.ResultWin, c2, c1
	}

	// Unreachable with the validated five-move graph; a scoreless draw
	return combat.ResultNoEffect, nil, nil
}

// computePoints applies the resistance formula. The zero floor is the only
// clamp: resistance driven past 100 by multipliers legitimately yields zero.
func computePoints(winner, loser *combat.Combatant, winnerAgg, loserAgg *effects.AggregatedStats) int {
	effDamage := winner.TotalDamage()*winnerAgg.DamageMultiplier + winnerAgg.DamageDelta
	effResistance := loser.TotalResistance()*loserAgg.ResistanceMultiplier + loserAgg.ResistanceDelta

	points := int(math.Round(effDamage * (1 - effResistance/100)))
	if points < 0 {
		return 0
	}
	return points
}

// outcomeFor translates the round result into one side's perspective.
// Mutual skips and no-effect rounds count as draws for activation purposes.
func outcomeFor(c *combat.Combatant, winner *combat.Combatant, result combat.ResultKind) effects.Outcome {
	if result != combat.ResultWin || winner == nil {
		return effects.OutcomeDraw
	}
	if winner == c {
		return effects.OutcomeWin
	}
	return effects.OutcomeLose
}

// invokePillz evaluates a side's pillz request against its gating rule and,
// when permitted, materializes the effects. A rejected gate spends the pillz
// silently; it is not an error.
func (s *service) invokePillz(manager *effects.Manager, battle *combat.Battle, owner *combat.Combatant, sel *combat.Selection, outcome effects.Outcome, round int) error {
	if sel == nil || !sel.PillzSet {
		return nil
	}

	pillzType := pillz.Type(sel.Pillz)
	permitted, err := s.catalog.Permits(pillzType, outcome)
	if err != nil {
		return err
	}
	if !permitted {
		return nil
	}

	created, err := s.catalog.CreateEffects(pillzType)
	if err != nil {
		return err
	}

	opponent, err := battle.OpponentOf(owner.ID)
	if err != nil {
		return err
	}

	for _, effect := range created {
		target := owner
		if effect.Target == effects.TargetOpponent {
			target = opponent
		}

		activated, err := manager.Add(target.ID, effect, round)
		if err != nil {
			return err
		}
		if activated {
			s.bankPermanent(manager, effect, target, round)
		}
	}

	return nil
}

// promote activates pending effects whose condition this round's outcome
// satisfies, banking permanent accruals from the newly active ones
func (s *service) promote(manager *effects.Manager, battle *combat.Battle, combatantID string, outcome effects.Outcome, round int) error {
	promoted, err := manager.PromotePending(combatantID, outcome, round)
	if err != nil {
		return err
	}

	if len(promoted) == 0 {
		return nil
	}

	target, err := battle.CombatantByID(combatantID)
	if err != nil {
		return err
	}

	for _, effect := range promoted {
		s.bankPermanent(manager, effect, target, round)
	}
	return nil
}

// bankPermanent accrues a newly-active permanent effect's additive modifiers
// into the target combatant's permanent bonuses and logs each application.
// Aggregation skips these modifiers afterwards, so they are counted once.
func (s *service) bankPermanent(manager *effects.Manager, effect *effects.Effect, target *combat.Combatant, round int) {
	if effect.Duration != effects.DurationPermanent {
		return
	}

	for _, mod := range effect.Modifiers {
		if mod.Kind != effects.KindAdditive {
			continue
		}

		value, err := mod.Resolve()
		if err != nil {
			// Catalog-built permanents always carry a roller; nothing to
			// unwind here, the modifier simply does not accrue.
			continue
		}

		switch mod.Stat {
		case effects.StatDamage:
			target.PermanentDamageBonus += value
		case effects.StatResistance:
			target.PermanentResistanceBonus += value
		}

		manager.Log(round, effect.Name, value, mod.Stat, target.ID)
	}
}
