package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"simplekrige/pkg/config"
	"simplekrige/pkg/krige"
	"simplekrige/pkg/report"
	"simplekrige/pkg/simulation"
	"simplekrige/pkg/spatial"
)

// applyFlagOverrides replaces config values with the command-line ones
// for the flags present in set.
func applyFlagOverrides(cfg *config.Config, set map[string]bool, count int, seed uint64, workers int) {
	if set["n"] {
		cfg.Simulation.Count = count
	}
	if set["seed"] {
		cfg.Simulation.Seed = seed
	}
	if set["workers"] {
		cfg.Prediction.Workers = workers
	}
}

func main() {
	// Parse command line arguments
	configPath := flag.String("config", "simplekrige.yaml", "Path to YAML configuration file")
	writeConfig := flag.Bool("write-config", false, "Write the default configuration to -config and exit")
	count := flag.Int("n", 0, "Number of synthetic observations (overrides config)")
	seed := flag.Uint64("seed", 0, "Random seed for the observation draw (overrides config)")
	useGrid := flag.Bool("grid", false, "Predict over the configured grid in addition to individual targets")
	workers := flag.Int("workers", 0, "Worker goroutines for the grid sweep (default: all cores)")
	flag.Parse()

	if *writeConfig {
		if err := config.CreateDefaultConfigFile(*configPath); err != nil {
			log.Fatalf("Failed to write default config: %v", err)
		}
		fmt.Printf("Default configuration written to %s\n", *configPath)
		return
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Only flags the user actually passed override the config; zero is a
	// legitimate value for -seed and -workers.
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	applyFlagOverrides(cfg, set, *count, *seed, *workers)

	fmt.Println("================================")
	fmt.Println("SIMPLE KRIGING OF A SYNTHETIC GAUSSIAN RANDOM FIELD")
	fmt.Println("================================")

	rep := report.New(os.Stdout)
	if cfg.Output.Verbose {
		rep.Parameters(cfg.Mean, cfg.Covariance)
	}

	// Draw synthetic observations of the field
	obs, err := simulation.Generate(simulation.Params{
		Count:         cfg.Simulation.Count,
		Seed:          cfg.Simulation.Seed,
		MinSeparation: cfg.Simulation.MinSeparation,
		Domain:        cfg.Simulation.Domain,
	}, cfg.Mean, cfg.Covariance)
	if err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}
	if cfg.Output.Verbose {
		rep.Observations(obs)
	}

	engine, err := krige.New(cfg.Mean, cfg.Covariance)
	if err != nil {
		log.Fatalf("Failed to build kriging engine: %v", err)
	}

	// Predict at each configured target
	for _, t := range cfg.Prediction.Targets {
		target := spatial.Location{X: t.X, Y: t.Y}
		res, err := engine.Predict(obs, target)
		if err != nil {
			log.Fatalf("Prediction at (%.4f, %.4f) failed: %v", t.X, t.Y, err)
		}
		rep.Result(target, res)
	}

	// Sweep the prediction grid if requested
	if *useGrid || cfg.Prediction.Grid.Enabled {
		g := krige.Grid{
			MinX: cfg.Prediction.Grid.MinX,
			MaxX: cfg.Prediction.Grid.MaxX,
			MinY: cfg.Prediction.Grid.MinY,
			MaxY: cfg.Prediction.Grid.MaxY,
			Nx:   cfg.Prediction.Grid.Nx,
			Ny:   cfg.Prediction.Grid.Ny,
		}

		nWorkers := cfg.Prediction.Workers
		if nWorkers <= 0 {
			nWorkers = runtime.NumCPU()
		}
		fmt.Printf("\nSweeping %dx%d prediction grid with %d workers...\n", g.Nx, g.Ny, nWorkers)

		start := time.Now()
		var progress krige.ProgressCallback
		if cfg.Output.Verbose {
			progress = func(completed, total int) {
				fmt.Printf("\rProgress: %.1f%% (%d/%d)", float64(completed)/float64(total)*100, completed, total)
				if completed >= total {
					fmt.Println()
				}
			}
		}

		preds, err := engine.PredictGrid(obs, g, nWorkers, progress)
		if err != nil {
			log.Fatalf("Grid prediction failed: %v", err)
		}
		fmt.Printf("Grid sweep completed in %.2f seconds\n\n", time.Since(start).Seconds())
		rep.Results(preds)
	}
}
