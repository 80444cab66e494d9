package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/pillzarena/pillz-arena/internal/config"
	"github.com/pillzarena/pillz-arena/internal/dice"
	"github.com/pillzarena/pillz-arena/internal/domain/combat"
	"github.com/pillzarena/pillz-arena/internal/pillz"
	"github.com/pillzarena/pillz-arena/internal/repositories/battles"
	battleService "github.com/pillzarena/pillz-arena/internal/services/battle"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var roller dice.Roller
	if cfg.RandomSeed != 0 {
		roller = dice.NewSeededRoller(cfg.RandomSeed)
	} else {
		roller = dice.NewRandomRoller()
	}

	catalog := pillz.NewCatalog(&pillz.CatalogConfig{Roller: roller})
	svc := battleService.NewService(&battleService.ServiceConfig{
		Repository: battles.NewInMemoryRepository(),
		Catalog:    catalog,
	})

	ctx := context.Background()
	player, opponent := loadFighters(ctx, cfg, svc)

	battle, err := svc.CreateBattle(ctx, &battleService.CreateBattleInput{
		Combatant1: player,
		Combatant2: opponent,
		MaxRounds:  cfg.MaxRounds,
	})
	if err != nil {
		log.Fatalf("Failed to create battle: %v", err)
	}

	fmt.Printf("%s (dmg %d, res %d) vs %s (dmg %d, res %d), %d rounds\n",
		player.Name, player.BaseDamage, player.BaseResistance,
		opponent.Name, opponent.BaseDamage, opponent.BaseResistance,
		cfg.MaxRounds)

	reader := bufio.NewReader(os.Stdin)

	for round := 1; round <= cfg.MaxRounds; round++ {
		fmt.Printf("\n--- Round %d ---\n", round)

		move := promptMove(reader)
		if err := svc.SetMove(ctx, battle.ID, player.ID, move); err != nil {
			log.Fatalf("Failed to set move: %v", err)
		}

		if pillzType, ok := promptPillz(reader, catalog); ok {
			if err := svc.SetPillz(ctx, battle.ID, player.ID, pillzType); err != nil {
				log.Fatalf("Failed to set pillz: %v", err)
			}
		}

		if err := aiTurn(ctx, svc, catalog, roller, battle.ID, opponent.ID); err != nil {
			log.Fatalf("AI turn failed: %v", err)
		}

		record, err := svc.ResolveRound(ctx, battle.ID)
		if err != nil {
			log.Fatalf("Failed to resolve round: %v", err)
		}

		printRecord(record, player, opponent)
	}

	summary, err := svc.GetSummary(ctx, battle.ID)
	if err != nil {
		log.Fatalf("Failed to get summary: %v", err)
	}

	fmt.Printf("\nFinal score: %s %d - %d %s\n", player.Name, summary.Score1, summary.Score2, opponent.Name)
	switch {
	case summary.Score1 > summary.Score2:
		fmt.Printf("%s wins the battle!\n", player.Name)
	case summary.Score2 > summary.Score1:
		fmt.Printf("%s wins the battle!\n", opponent.Name)
	default:
		fmt.Println("The battle ends in a draw.")
	}
}

// loadFighters picks the first two roster fighters, or falls back to defaults
func loadFighters(ctx context.Context, cfg *config.Config, svc battleService.Service) (*combat.Combatant, *combat.Combatant) {
	specs := []config.RosterFighter{
		{Name: "Player", Damage: 30, Resistance: 20},
		{Name: "Opponent", Damage: 20, Resistance: 30},
	}

	if cfg.RosterPath != "" {
		roster, err := config.LoadRoster(cfg.RosterPath)
		if err != nil {
			log.Fatalf("Failed to load roster: %v", err)
		}
		specs = roster.Fighters[:2]
	}

	fighters := make([]*combat.Combatant, 0, 2)
	for _, spec := range specs {
		c, err := svc.CreateCombatant(ctx, &battleService.CreateCombatantInput{
			Name:       spec.Name,
			Damage:     spec.Damage,
			Resistance: spec.Resistance,
		})
		if err != nil {
			log.Fatalf("Failed to create combatant %s: %v", spec.Name, err)
		}
		fighters = append(fighters, c)
	}

	return fighters[0], fighters[1]
}

func promptMove(reader *bufio.Reader) combat.Move {
	for {
		fmt.Println("Moves:")
		for i, move := range combat.Moves {
			beats := move.WinsAgainst()
			fmt.Printf("  %d: %s (beats %s, %s)\n", i+1, move, beats[0], beats[1])
		}
		fmt.Print("Select your move (1-5): ")

		line, err := reader.ReadString('\n')
		if err != nil {
			log.Fatalf("Failed to read input: %v", err)
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && choice >= 1 && choice <= len(combat.Moves) {
			return combat.Moves[choice-1]
		}
		fmt.Println("Invalid input, enter a number between 1 and 5.")
	}
}

func promptPillz(reader *bufio.Reader, catalog *pillz.Catalog) (pillz.Type, bool) {
	types := catalog.Types()

	for {
		fmt.Println("Pillz (0 for none):")
		for i, t := range types {
			entry, _ := catalog.Get(t)
			fmt.Printf("  %d: %s - %s\n", i+1, entry.Name, entry.Description)
		}
		fmt.Print("Select a pillz: ")

		line, err := reader.ReadString('\n')
		if err != nil {
			log.Fatalf("Failed to read input: %v", err)
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && choice == 0 {
			return "", false
		}
		if err == nil && choice >= 1 && choice <= len(types) {
			return types[choice-1], true
		}
		fmt.Printf("Invalid input, enter a number between 0 and %d.\n", len(types))
	}
}

// aiTurn picks a uniform random move and, one time in five, a random pillz
func aiTurn(ctx context.Context, svc battleService.Service, catalog *pillz.Catalog, roller dice.Roller, battleID, combatantID string) error {
	pick, err := roller.Intn(len(combat.Moves))
	if err != nil {
		return err
	}
	if err := svc.SetMove(ctx, battleID, combatantID, combat.Moves[pick]); err != nil {
		return err
	}

	chance, err := roller.Intn(5)
	if err != nil {
		return err
	}
	if chance == 0 {
		types := catalog.Types()
		pillzPick, err := roller.Intn(len(types))
		if err != nil {
			return err
		}
		if err := svc.SetPillz(ctx, battleID, combatantID, types[pillzPick]); err != nil {
			return err
		}
	}

	return nil
}

func printRecord(record *combat.RoundRecord, player, opponent *combat.Combatant) {
	fmt.Printf("%s played %s", player.Name, record.Combatant1Move)
	if record.Combatant1Pillz != "" {
		fmt.Printf(" with %s", record.Combatant1Pillz)
	}
	fmt.Printf(", %s played %s", opponent.Name, record.Combatant2Move)
	if record.Combatant2Pillz != "" {
		fmt.Printf(" with %s", record.Combatant2Pillz)
	}
	fmt.Println()

	switch {
	case record.WinnerID == player.ID:
		fmt.Printf("%s wins the round for %d points\n", player.Name, record.Points1)
	case record.WinnerID == opponent.ID:
		fmt.Printf("%s wins the round for %d points\n", opponent.Name, record.Points2)
	case record.Result == combat.ResultMutualSkip:
		fmt.Println("Both sides skip the round")
	default:
		fmt.Println("Round drawn")
	}

	fmt.Printf("Score: %s %d - %d %s\n", player.Name, player.Score, opponent.Score, opponent.Name)
}
