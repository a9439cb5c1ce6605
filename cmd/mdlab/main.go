package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/mdlab/internal/analysis"
	"github.com/san-kum/mdlab/internal/config"
	"github.com/san-kum/mdlab/internal/experiment"
	"github.com/san-kum/mdlab/internal/export"
	"github.com/san-kum/mdlab/internal/md"
	"github.com/san-kum/mdlab/internal/potential"
	"github.com/san-kum/mdlab/internal/storage"
	"github.com/san-kum/mdlab/internal/system"
	"github.com/san-kum/mdlab/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	dt         float64
	duration   float64
	seed       int64
	integrator string
	potKind    string
	softening  float64
	nx, ny     int
	n          int
	box        float64
	temp       float64
	spacing    float64
	jitter     float64
	configFile string
	preset     string
	// Phase plot particle
	particleIdx int
	// GIF output
	gifOut    string
	gifStride int
	// Ensemble
	ensembleRuns int
	// SVG output
	svgOut   string
	svgFrame bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mdlab",
		Short: "molecular dynamics simulation lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".mdlab", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [system]",
		Short: "run simulation",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSimulation,
	}
	addSimFlags(runCmd)

	liveCmd := &cobra.Command{
		Use:   "live [system]",
		Short: "run simulation with live visualization",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addSimFlags(liveCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run results",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	phaseCmd := &cobra.Command{
		Use:   "phase [run_id]",
		Short: "particle trajectory plot",
		Args:  cobra.ExactArgs(1),
		RunE:  phasePlot,
	}
	phaseCmd.Flags().IntVar(&particleIdx, "particle", 0, "particle index")

	compareCmd := &cobra.Command{
		Use:   "compare [system] [integrator1] [integrator2] ...",
		Short: "compare integrator energy drift on the same system",
		Args:  cobra.MinimumNArgs(2),
		RunE:  compareIntegrators,
	}
	compareCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	compareCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")
	compareCmd.Flags().StringVar(&potKind, "potential", "lennard-jones", "pair potential")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "structural analysis (rdf, msd, diffusion)",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [system]",
		Short: "list available presets for a system",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for system: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete [run_id]",
		Short: "delete a stored run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return storage.New(dataDir).Delete(args[0])
		},
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	animateCmd := &cobra.Command{
		Use:   "animate [run_id]",
		Short: "render a stored run as an animated GIF",
		Args:  cobra.ExactArgs(1),
		RunE:  animateRun,
	}
	animateCmd.Flags().StringVar(&gifOut, "out", "", "output path (default <run_id>.gif)")
	animateCmd.Flags().IntVar(&gifStride, "stride", 10, "states per frame")

	ensembleCmd := &cobra.Command{
		Use:   "ensemble [system]",
		Short: "run a seed sweep with per-seed initial states",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runEnsemble,
	}
	addSimFlags(ensembleCmd)
	ensembleCmd.Flags().IntVar(&ensembleRuns, "runs", 4, "number of ensemble members")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export a stored run as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().IntVar(&particleIdx, "particle", 0, "particle index for trajectory plot")
	exportSVGCmd.Flags().StringVar(&svgOut, "out", "", "output path (default stdout)")
	exportSVGCmd.Flags().BoolVar(&svgFrame, "frame", false, "render the final frame instead of a trajectory")

	benchCmd := &cobra.Command{
		Use:   "bench [system]",
		Short: "benchmark system",
		Args:  cobra.MaximumNArgs(1),
		RunE:  benchSystem,
	}

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, plotCmd, phaseCmd, compareCmd, analyzeCmd, presetsCmd, deleteCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd, animateCmd, ensembleCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSimFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().StringVar(&integrator, "integrator", "verlet", "integrator")
	cmd.Flags().StringVar(&potKind, "potential", "lennard-jones", "pair potential")
	cmd.Flags().Float64Var(&softening, "softening", 0, "force softening length")
	cmd.Flags().IntVar(&nx, "nx", config.DefaultNX, "lattice columns")
	cmd.Flags().IntVar(&ny, "ny", config.DefaultNY, "lattice rows")
	cmd.Flags().IntVar(&n, "n", 8, "particle count (gas, disk)")
	cmd.Flags().Float64Var(&box, "box", 10.0, "box side length (gas)")
	cmd.Flags().Float64Var(&temp, "temp", 1.0, "initial temperature (gas)")
	cmd.Flags().Float64Var(&spacing, "spacing", config.DefaultSpacing, "lattice spacing")
	cmd.Flags().Float64Var(&jitter, "jitter", config.DefaultJitter, "lattice jitter fraction")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveConfig builds the effective configuration: preset first, then
// config file, then explicit CLI flags on top.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if len(args) > 0 {
		cfg.System = args[0]
	}

	if preset != "" {
		p := config.GetPreset(cfg.System, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(cfg.System))
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		if len(args) > 0 {
			cfg.System = args[0]
		}
	}

	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("seed") || cfg.Seed == 0 {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("integrator") {
		cfg.Integrator = integrator
	}
	if cmd.Flags().Changed("potential") {
		cfg.Potential.Kind = potKind
	}
	if cmd.Flags().Changed("softening") {
		cfg.Softening = softening
	}
	if cmd.Flags().Changed("nx") {
		cfg.InitState.NX = nx
	}
	if cmd.Flags().Changed("ny") {
		cfg.InitState.NY = ny
	}
	if cmd.Flags().Changed("n") {
		cfg.InitState.N = n
	}
	if cmd.Flags().Changed("box") {
		cfg.InitState.Box = box
	}
	if cmd.Flags().Changed("temp") {
		cfg.InitState.Temperature = temp
	}
	if cmd.Flags().Changed("spacing") {
		cfg.InitState.Spacing = spacing
	}
	if cmd.Flags().Changed("jitter") {
		cfg.InitState.Jitter = jitter
	}

	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	exp, err := experiment.FromConfig(cfg, experiment.NewRegistry())
	if err != nil {
		return err
	}

	fmt.Printf("running %s (%s, %d particles)...\n", cfg.System, cfg.Potential.Kind, cfg.NumParticles())
	start := time.Now()

	result, err := exp.Run(context.Background())
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(cfg, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", len(result.States))
	fmt.Printf("energy drift: %.2e\n", result.EnergyDrift)
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
}

func runEnsemble(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	if ensembleRuns < 1 {
		return fmt.Errorf("runs must be at least 1, got %d", ensembleRuns)
	}

	registry := experiment.NewRegistry()
	sys, x0, err := registry.GetSystem(cfg)
	if err != nil {
		return err
	}
	integ, err := registry.GetIntegrator(cfg.Integrator)
	if err != nil {
		return err
	}

	// Each member samples its own initial state, so seed-dependent
	// systems (lattice jitter, gas velocities) actually diverge.
	init := func(seed int64) md.State {
		seeded := *cfg
		seeded.Seed = seed
		if _, x, err := registry.GetSystem(&seeded); err == nil {
			return x
		}
		return x0.Clone()
	}

	simCfg := md.DefaultConfig()
	simCfg.Dt = cfg.Dt
	simCfg.Duration = cfg.Duration

	fmt.Printf("ensemble: %s (%s), %d members, seeds %d..%d\n\n",
		cfg.System, cfg.Potential.Kind, ensembleRuns, cfg.Seed, cfg.Seed+int64(ensembleRuns)-1)

	start := time.Now()
	ens := md.NewEnsemble(md.New(sys, integ), ensembleRuns, cfg.Seed, init)
	results, err := ens.Run(context.Background(), simCfg)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("%-8s  %-14s  %-12s\n", "seed", "final_energy", "energy_drift")
	fmt.Println(strings.Repeat("-", 38))

	mean := 0.0
	for i, r := range results {
		final := sys.Energy(r.States[len(r.States)-1])
		fmt.Printf("%-8d  %14.6f  %12.2e\n", cfg.Seed+int64(i), final, r.EnergyDrift)
		mean += r.EnergyDrift
	}
	mean /= float64(len(results))

	variance := 0.0
	for _, r := range results {
		d := r.EnergyDrift - mean
		variance += d * d
	}
	std := math.Sqrt(variance / float64(len(results)))

	fmt.Printf("\ndrift mean: %.2e  std: %.2e  (%v)\n", mean, std, elapsed)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	registry := experiment.NewRegistry()
	sys, x0, err := registry.GetSystem(cfg)
	if err != nil {
		return err
	}
	integ, err := registry.GetIntegrator(cfg.Integrator)
	if err != nil {
		return err
	}

	m := viz.NewModel(sys, integ, x0, cfg.Dt, cfg.System)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSYSTEM\tPOTENTIAL\tN\tTIME\tDURATION\tDT\tINTEG\tDRIFT")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%.2fs\t%.4fs\t%s\t%.2e\n",
			run.ID,
			run.System,
			run.Potential,
			run.Particles,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
			run.Integrator,
			run.EnergyDrift,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	states, _, err := st.LoadStates(runID)
	if err != nil {
		return err
	}

	if len(states) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("system: %s (%s)\n", meta.System, meta.Potential)
	fmt.Printf("samples: %d\n\n", len(states))

	// Kinetic temperature over time, unit masses assumed.
	nPart := meta.Particles
	if nPart > 0 && len(states[0]) == 4*nPart {
		temps := make([]float64, len(states))
		off := 2 * nPart
		for i, s := range states {
			ke := 0.0
			for j := off; j < len(s); j++ {
				ke += 0.5 * s[j] * s[j]
			}
			temps[i] = ke / float64(nPart)
		}
		graph := asciigraph.Plot(temps,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("kinetic temperature"),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	// First particle coordinates.
	numVars := len(states[0])
	maxPlots := 4
	if numVars > maxPlots {
		numVars = maxPlots
	}

	captions := []string{"x0", "y0", "x1", "y1"}
	for varIdx := 0; varIdx < numVars; varIdx++ {
		data := make([]float64, len(states))
		for i := range states {
			data[i] = states[i][varIdx]
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(captions[varIdx]+" vs time"),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func phasePlot(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	states, _, err := st.LoadStates(runID)
	if err != nil {
		return err
	}

	if len(states) == 0 {
		return fmt.Errorf("no data to plot")
	}
	if particleIdx < 0 || particleIdx >= meta.Particles {
		return fmt.Errorf("particle index %d out of range (%d particles)", particleIdx, meta.Particles)
	}

	portrait := &analysis.PhasePortrait2D{
		XIndex: particleIdx * 2,
		YIndex: particleIdx*2 + 1,
		Points: make([]struct{ X, Y float64 }, 0, len(states)),
	}
	for _, s := range states {
		portrait.Points = append(portrait.Points, struct{ X, Y float64 }{
			X: s[particleIdx*2],
			Y: s[particleIdx*2+1],
		})
	}

	fmt.Printf("trajectory: %s, particle %d\n", meta.ID, particleIdx)
	fmt.Printf("system: %s (%s)\n\n", meta.System, meta.Potential)
	fmt.Println(analysis.PhasePortraitToASCII(portrait, 70, 20))
	return nil
}

func compareIntegrators(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[:1])
	if err != nil {
		return err
	}
	names := args[1:]

	registry := experiment.NewRegistry()
	sys, x0, err := registry.GetSystem(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("comparing integrators on %s (%s, dt=%.4f, duration=%.1fs)\n\n",
		cfg.System, cfg.Potential.Kind, cfg.Dt, cfg.Duration)
	fmt.Printf("%-12s  %-12s  %-12s  %-12s\n", "integrator", "final_energy", "energy_drift", "time_ms")
	fmt.Println(strings.Repeat("-", 54))

	for _, name := range names {
		integ, err := registry.GetIntegrator(name)
		if err != nil {
			fmt.Printf("%-12s  error: %v\n", name, err)
			continue
		}

		simCfg := md.DefaultConfig()
		simCfg.Dt = cfg.Dt
		simCfg.Duration = cfg.Duration

		sim := md.New(sys, integ)
		start := time.Now()
		result, err := sim.Run(context.Background(), x0, simCfg)
		elapsed := time.Since(start)

		if err != nil {
			fmt.Printf("%-12s  error: %v\n", name, err)
			continue
		}

		final := sys.Energy(result.States[len(result.States)-1])
		fmt.Printf("%-12s  %12.6f  %12.2e  %12.2f\n",
			name, final, result.EnergyDrift, float64(elapsed.Microseconds())/1000)
	}

	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	states, times, err := st.LoadStates(runID)
	if err != nil {
		return err
	}

	if len(states) < 2 || meta.Particles < 2 {
		return fmt.Errorf("not enough data to analyze")
	}

	fmt.Printf("analysis: %s\n", meta.ID)
	fmt.Printf("system: %s (%s), %d particles\n\n", meta.System, meta.Potential, meta.Particles)

	// Radial distribution over the second half of the trajectory,
	// after initial transients.
	rmax := 5.0
	rdf := analysis.NewRDF(meta.Particles, 50, rmax)
	for _, s := range states[len(states)/2:] {
		rdf.Accumulate(s)
	}

	// Rough 2D density estimate from the final frame extent.
	density := estimateDensity(states[len(states)-1], meta.Particles)
	g := rdf.Normalize(density)

	graph := asciigraph.Plot(g,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("g(r)"),
	)
	fmt.Println(graph)
	peak := rdf.PeakBin()
	fmt.Printf("first peak: r = %.3f\n\n", rdf.BinCenter(peak))

	msd := analysis.MeanSquareDisplacement(states, meta.Particles)
	if len(msd) > 1 {
		graph = asciigraph.Plot(msd,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("mean square displacement"),
		)
		fmt.Println(graph)

		sampleDt := times[1] - times[0]
		d := analysis.DiffusionCoefficient(msd, sampleDt)
		fmt.Printf("diffusion coefficient: %.6f\n", d)
	}

	return nil
}

func estimateDensity(x md.State, nPart int) float64 {
	minX, maxX := x[0], x[0]
	minY, maxY := x[1], x[1]
	for i := 0; i < nPart; i++ {
		px, py := x[i*2], x[i*2+1]
		if px < minX {
			minX = px
		}
		if px > maxX {
			maxX = px
		}
		if py < minY {
			minY = py
		}
		if py > maxY {
			maxY = py
		}
	}
	area := (maxX - minX) * (maxY - minY)
	if area <= 0 {
		area = 1
	}
	return float64(nPart) / area
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	states, times, err := st.LoadStates(runID)
	if err != nil {
		return err
	}

	if len(states) == 0 {
		return fmt.Errorf("no data to export")
	}

	return storage.WriteCSV(os.Stdout, metaConfig(meta), &md.Result{
		States:  states,
		Times:   times,
		Metrics: meta.Metrics,
	})
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	states, times, err := st.LoadStates(runID)
	if err != nil {
		return err
	}

	return storage.ExportJSONStdout(metaConfig(meta), &md.Result{
		States:      states,
		Times:       times,
		Metrics:     meta.Metrics,
		EnergyDrift: meta.EnergyDrift,
	})
}

// metaConfig rebuilds enough of a config from run metadata for exports.
func metaConfig(meta *storage.RunMetadata) *config.Config {
	cfg := config.DefaultConfig()
	cfg.System = meta.System
	cfg.Potential.Kind = meta.Potential
	cfg.Integrator = meta.Integrator
	cfg.Dt = meta.Dt
	cfg.Duration = meta.Duration
	cfg.Seed = meta.Seed
	cfg.InitState.N = meta.Particles
	if cfg.System == "lattice" {
		cfg.InitState.NX = meta.Particles
		cfg.InitState.NY = 1
	}
	return cfg
}

func animateRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	states, _, err := st.LoadStates(runID)
	if err != nil {
		return err
	}
	if len(states) == 0 {
		return fmt.Errorf("no data to animate")
	}

	// Only positions are rendered, so the potential choice is moot.
	sys := system.NewParticles(meta.Particles, potential.LennardJones(1, 1))

	out := gifOut
	if out == "" {
		out = runID + ".gif"
	}

	if err := export.AnimateGIF(out, sys, states, gifStride); err != nil {
		return err
	}

	fmt.Printf("wrote %s (%d frames)\n", out, (len(states)+gifStride-1)/gifStride)
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	states, _, err := st.LoadStates(runID)
	if err != nil {
		return err
	}
	if len(states) == 0 {
		return fmt.Errorf("no data to export")
	}

	var doc string
	if svgFrame {
		// Render the last frame the way the GIF exporter does, then
		// vectorize the canvas.
		sys := system.NewParticles(meta.Particles, potential.LennardJones(1, 1))
		canvas := viz.NewCanvas(80, 40)
		vp := viz.NewViewport()
		for _, s := range states {
			vp.Fit(sys, s)
		}
		last := states[len(states)-1]
		for i := 0; i < sys.N; i++ {
			wx, wy := sys.Position(last, i)
			px, py := vp.Project(canvas, wx, wy)
			canvas.FillCircle(px, py, 2)
		}
		doc = export.CanvasToSVG(canvas, 4)
	} else {
		if particleIdx < 0 || particleIdx >= meta.Particles {
			return fmt.Errorf("particle index %d out of range (%d particles)", particleIdx, meta.Particles)
		}
		points := make([]export.Point, 0, len(states))
		for _, s := range states {
			points = append(points, export.Point{X: s[particleIdx*2], Y: s[particleIdx*2+1]})
		}
		doc = export.TrajectoryToSVG(points, 640, 480, "#00ff00")
	}

	if svgOut == "" {
		fmt.Println(doc)
		return nil
	}
	if err := os.WriteFile(svgOut, []byte(doc), 0o644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", svgOut)
	return nil
}

func benchSystem(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	if len(args) > 0 {
		cfg.System = args[0]
	}

	registry := experiment.NewRegistry()
	sys, x0, err := registry.GetSystem(cfg)
	if err != nil {
		return err
	}

	integ, err := registry.GetIntegrator("verlet")
	if err != nil {
		return err
	}

	durations := []float64{1.0, 5.0, 10.0}
	dts := []float64{0.001, 0.005, 0.01}

	fmt.Printf("benchmarking %s (%d particles)\n\n", cfg.System, sys.N)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DURATION\tDT\tSTEPS\tTIME\tSTEPS/SEC")

	for _, dur := range durations {
		for _, step := range dts {
			simCfg := md.DefaultConfig()
			simCfg.Dt = step
			simCfg.Duration = dur

			sim := md.New(sys, integ)
			start := time.Now()
			result, err := sim.Run(context.Background(), x0, simCfg)
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			steps := result.StepsTaken
			stepsPerSec := float64(steps) / elapsed.Seconds()

			fmt.Fprintf(w, "%.1fs\t%.4fs\t%d\t%v\t%.0f\n",
				dur, step, steps, elapsed, stepsPerSec)
		}
	}

	return w.Flush()
}
