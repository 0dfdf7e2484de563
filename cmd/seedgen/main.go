// Command seedgen drives the placement core against a settings document,
// printing the resulting per-world placement list.
//
// Without -settings, it runs a single demo world built from
// pkg/seedgen/seedgentest's fixture graph and pool, since wiring a real
// logic graph and item pool is the job of the external randomizer frontend,
// not this module (spec section 1/6).
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/opd-ai/pathforge/internal/settings"
	"github.com/opd-ai/pathforge/pkg/logging"
	"github.com/opd-ai/pathforge/pkg/seedgen"
	"github.com/opd-ai/pathforge/pkg/seedgen/seedgentest"
	"github.com/sirupsen/logrus"
)

var (
	settingsPath = flag.String("settings", "", "Path to a settings YAML document (empty runs the built-in demo fixture)")
	seed         = flag.Int64("seed", 0, "Random seed (0 for current time)")
	output       = flag.String("output", "", "Output file (empty for stdout)")
	logFormat    = flag.String("log-format", "text", "Log format: text or json")
)

func main() {
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	runID := uuid.New().String()

	logger := logging.NewLogger(logging.Config{
		Level:     logging.InfoLevel,
		Format:    logging.LogFormat(*logFormat),
		AddCaller: false,
	})

	runSettings, worldInputs, err := buildRun()
	if err != nil {
		logger.WithError(err).Fatal("failed to build run configuration")
	}

	genLog := logging.GeneratorLogger(logger, runID, *seed, len(worldInputs))
	genLog.Info("starting seed generation")

	runSettings.Worlds = worldInputs
	rng := rand.New(rand.NewSource(*seed))

	start := time.Now()
	placements, err := seedgen.GeneratePlacements(rng, runSettings, genLog)
	if err != nil {
		genLog.WithError(err).Fatal("generation failed")
	}
	elapsed := time.Since(start)

	generator := &seedgen.Generator{Settings: runSettings, Log: genLog}
	if err := generator.Validate(placements); err != nil {
		genLog.WithError(err).Fatal("validation failed")
	}

	genLog.WithFields(logrus.Fields{
		"duration": elapsed,
	}).Info("seed generation succeeded")

	out := os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			logger.WithError(err).WithField("outputFile", *output).Fatal("failed to create output file")
		}
		defer f.Close()
		out = f
	}

	printReport(out, runID, *seed, placements, elapsed)
}

// buildRun resolves either a loaded settings document or the built-in demo
// fixture into a seedgen.Settings skeleton (Worlds left for the caller to
// fill in) plus the resolved per-world inputs.
func buildRun() (seedgen.Settings, []seedgen.WorldInput, error) {
	if *settingsPath == "" {
		g, p := seedgentest.DefaultFixture()
		return seedgen.Settings{}, []seedgen.WorldInput{
			{PlayerName: "Demo", Graph: g, Pool: p},
		}, nil
	}

	cfg, err := settings.Load(*settingsPath)
	if err != nil {
		return seedgen.Settings{}, nil, fmt.Errorf("loading settings: %w", err)
	}

	worldInputs := make([]seedgen.WorldInput, len(cfg.Worlds))
	for i, w := range cfg.Worlds {
		// Real logic graphs and pools come from the randomizer frontend;
		// this command exercises the core with the fixture collaborator
		// per world until a real loader is wired in.
		g, p := seedgentest.DefaultFixture()
		spawnName := ""
		if w.HasCustomSpawn() {
			spawnName = w.Spawn
		}
		worldInputs[i] = seedgen.WorldInput{
			PlayerName:  w.Player,
			Graph:       g,
			Pool:        p,
			SpawnName:   spawnName,
			CustomSpawn: w.HasCustomSpawn(),
		}
	}

	return seedgen.Settings{
		Relics:      cfg.HasGoalMode("Relics"),
		CustomNames: cfg.CustomNames,
	}, worldInputs, nil
}

func printReport(out *os.File, runID string, seed int64, placements [][]seedgen.Placement, elapsed time.Duration) {
	fmt.Fprintf(out, "run:      %s\n", runID)
	fmt.Fprintf(out, "seed:     %d\n", seed)
	fmt.Fprintf(out, "duration: %s\n", elapsed)
	fmt.Fprintf(out, "worlds:   %d\n\n", len(placements))

	for i, worldPlacements := range placements {
		var spiritLightTotal uint64
		itemCount := 0
		for _, p := range worldPlacements {
			if p.Item.Kind == seedgen.ItemSpiritLight {
				spiritLightTotal += uint64(p.Item.SpiritLightAmount)
			}
			itemCount++
		}

		fmt.Fprintf(out, "World %d (%d placements, %s total Spirit Light):\n", i, itemCount, humanize.Comma(int64(spiritLightTotal)))
		for _, p := range worldPlacements {
			fmt.Fprintf(out, "  %s\n", p)
		}
		fmt.Fprintln(out)
	}
}
