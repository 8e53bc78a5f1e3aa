// Package main fits the springs demo's spring constant and drag coefficient
// to a target oscillation period and energy half-life by running the physics
// headless inside a CMA-ES search.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/optimize"
	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/arcade/config"
)

// EvalRecord is one row of the evaluation log.
type EvalRecord struct {
	Eval     int     `csv:"eval"`
	Fitness  float64 `csv:"fitness"`
	SpringK  float64 `csv:"spring_k"`
	Drag     float64 `csv:"drag"`
	Period   float64 `csv:"period"`
	HalfLife float64 `csv:"half_life"`
}

// Result is written to tune_result.yaml.
type Result struct {
	Mass         float64     `yaml:"mass"`
	Targets      Targets     `yaml:"targets"`
	SpringK      float64     `yaml:"spring_k"`
	Drag         float64     `yaml:"drag"`
	Measured     Measurement `yaml:"measured"`
	AnalyticK    float64     `yaml:"analytic_k"`
	AnalyticDrag float64     `yaml:"analytic_drag"`
	Fitness      float64     `yaml:"fitness"`
	Evaluations  int         `yaml:"evaluations"`
}

// formatDuration formats a duration as MM:SS or HH:MM:SS.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
	}
	return fmt.Sprintf("%dm%02ds", m, s)
}

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	period := flag.Float64("period", 2.0, "Target spring pair oscillation period in seconds")
	halfLife := flag.Float64("half-life", 1.0, "Target kinetic energy half-life under drag in seconds")
	horizon := flag.Float64("horizon", 60, "Simulated seconds per measurement")
	maxEvals := flag.Int("max-evals", 150, "Maximum number of evaluations")
	population := flag.Int("population", 0, "CMA-ES population size (0 = auto)")
	outputDir := flag.String("output", "", "Output directory for results")
	flag.Parse()

	if *outputDir == "" {
		log.Fatal("--output is required")
	}
	if *period <= 0 || *halfLife <= 0 {
		log.Fatal("--period and --half-life must be positive")
	}

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	if err := config.Init(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	baseCfg := config.Cfg()

	params := NewParamVector()
	targets := Targets{Period: *period, HalfLife: *halfLife}
	evaluator := NewFitnessEvaluator(params, targets, *horizon, baseCfg)

	dim := params.Dim()
	initX := params.Normalize(params.ExtractFromConfig(baseCfg))

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			return evaluator.Evaluate(params.Denormalize(x))
		},
	}

	settings := &optimize.Settings{
		FuncEvaluations: *maxEvals,
		Concurrent:      0, // Sequential evaluation
	}

	popSize := *population
	if popSize == 0 {
		popSize = 4 + int(3.0*math.Log(float64(dim)))
	}

	method := &optimize.CmaEsChol{
		InitStepSize: 0.3,
		Population:   popSize,
	}

	logPath := filepath.Join(*outputDir, "tune_log.csv")
	logFile, err := os.Create(logPath)
	if err != nil {
		log.Fatalf("failed to create log file: %v", err)
	}
	defer logFile.Close()

	evalCount := 0
	bestFitness := math.Inf(1)
	var bestParams []float64
	var bestMeasured Measurement
	startTime := time.Now()

	// Wrap the function to log evaluations
	originalFunc := problem.Func
	problem.Func = func(x []float64) float64 {
		fitness := originalFunc(x)
		evalCount++

		clamped := params.Clamp(params.Denormalize(x))
		measured := evaluator.LastMeasurement()
		if fitness < bestFitness {
			bestFitness = fitness
			bestParams = clamped
			bestMeasured = measured
		}

		rec := []EvalRecord{{
			Eval:     evalCount,
			Fitness:  fitness,
			SpringK:  clamped[0],
			Drag:     clamped[1],
			Period:   measured.Period,
			HalfLife: measured.HalfLife,
		}}
		var werr error
		if evalCount == 1 {
			werr = gocsv.Marshal(rec, logFile)
		} else {
			werr = gocsv.MarshalWithoutHeaders(rec, logFile)
		}
		if werr != nil {
			log.Printf("failed to write log row: %v", werr)
		}

		elapsed := time.Since(startTime)
		avgPerEval := elapsed / time.Duration(evalCount)
		remaining := time.Duration(*maxEvals-evalCount) * avgPerEval
		fmt.Printf("Eval %d/%d: k=%.4f drag=%.4f period=%.3fs half-life=%.3fs fitness=%.2e | elapsed: %s, ETA: %s\n",
			evalCount, *maxEvals, clamped[0], clamped[1], measured.Period, measured.HalfLife, fitness,
			formatDuration(elapsed), formatDuration(remaining))

		return fitness
	}

	fmt.Printf("Starting CMA-ES with %d parameters, population=%d, max_evals=%d\n", dim, popSize, *maxEvals)
	fmt.Printf("Targets: period=%.3fs half-life=%.3fs, mass=%.3f\n", *period, *halfLife, baseCfg.Springs.Mass)

	result, err := optimize.Minimize(problem, initX, settings, method)
	if err != nil {
		log.Printf("optimization ended: %v", err)
	}

	// Use best params found (may be from any evaluation, not just final)
	if bestParams == nil {
		bestParams = params.Clamp(params.Denormalize(result.X))
	}

	fmt.Printf("\nTuning complete after %d evaluations in %s\n", evalCount, formatDuration(time.Since(startTime)))
	for i, spec := range params.Specs {
		fmt.Printf("  %s (%s): %.6f\n", spec.Name, spec.Path, bestParams[i])
	}

	bestCfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to reload config: %v", err)
	}
	params.ApplyToConfig(bestCfg, bestParams)

	configOutPath := filepath.Join(*outputDir, "best_config.yaml")
	if err := bestCfg.WriteYAML(configOutPath); err != nil {
		log.Printf("failed to write best config: %v", err)
	} else {
		fmt.Printf("\nBest config saved to: %s\n", configOutPath)
	}

	mass := baseCfg.Springs.Mass
	res := Result{
		Mass:         mass,
		Targets:      targets,
		SpringK:      bestParams[0],
		Drag:         bestParams[1],
		Measured:     bestMeasured,
		AnalyticK:    AnalyticK(mass, *period),
		AnalyticDrag: AnalyticDrag(mass, *halfLife),
		Fitness:      bestFitness,
		Evaluations:  evalCount,
	}
	data, err := yaml.Marshal(res)
	if err != nil {
		log.Fatalf("failed to marshal result: %v", err)
	}
	resultPath := filepath.Join(*outputDir, "tune_result.yaml")
	if err := os.WriteFile(resultPath, data, 0644); err != nil {
		log.Fatalf("failed to write result: %v", err)
	}
	fmt.Printf("Result saved to: %s\n", resultPath)
}
