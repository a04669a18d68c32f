package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/miskiewiczm/dna-generator/internal/analysis"
	"github.com/miskiewiczm/dna-generator/internal/config"
	"github.com/miskiewiczm/dna-generator/internal/engine"
	"github.com/miskiewiczm/dna-generator/internal/generator"
	"github.com/miskiewiczm/dna-generator/internal/library"
	"github.com/miskiewiczm/dna-generator/internal/profile"
)

// GenerateOptions holds flags for the generate command.
type GenerateOptions struct {
	*RootOptions

	Initial string
	Length  int
	Mode    string
	Count   int
	Seed    int64

	MinGC          float64
	MaxGC          float64
	MinTm          float64
	MaxTm          float64
	MaxHairpinTm   float64
	MaxHomodimerTm float64
	WindowSize     int

	Profile     string
	ProfileFile string

	NoGCCheck           bool
	NoTmCheck           bool
	NoHairpinCheck      bool
	NoHomodimerCheck    bool
	NoHomopolymerCheck  bool
	NoDinucleotideCheck bool
	NoThreePrimeCheck   bool

	MaxAttempts  int
	Heuristics   bool
	NoHeuristics bool

	Output        string
	SequencesOnly bool
	CSVFile       string
	Database      string
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate DNA sequences",
		Long: `Generate one or more DNA sequences by extending an initial sequence
to the target length under the configured validation rules.

Examples:
  dnagen generate --initial ATGCATGC --length 100
  dnagen generate --initial ATGCATGC --length 100 --mode random --count 3
  dnagen generate --initial ATGCATGC --length 100 --profile relaxed --seed 42`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.Initial, "initial", "i", "", "initial DNA sequence (required)")
	f.IntVarP(&opts.Length, "length", "l", 0, "target sequence length (required)")
	f.StringVarP(&opts.Mode, "mode", "m", "deterministic", "generation mode (deterministic|random)")
	f.IntVarP(&opts.Count, "count", "c", 1, "number of sequences to generate")
	f.Int64VarP(&opts.Seed, "seed", "s", 0, "seed for deterministic mode")

	f.Float64Var(&opts.MinGC, "min-gc", 0.45, "minimum GC content (0.0-1.0)")
	f.Float64Var(&opts.MaxGC, "max-gc", 0.55, "maximum GC content (0.0-1.0)")
	f.Float64Var(&opts.MinTm, "min-tm", 55.0, "minimum melting temperature [C]")
	f.Float64Var(&opts.MaxTm, "max-tm", 65.0, "maximum melting temperature [C]")
	f.Float64Var(&opts.MaxHairpinTm, "max-hairpin", 30.0, "maximum hairpin Tm [C]")
	f.Float64Var(&opts.MaxHomodimerTm, "max-homodimer", 30.0, "maximum homodimer Tm [C]")
	f.IntVar(&opts.WindowSize, "window-size", 20, "analysis window size")

	f.StringVar(&opts.Profile, "profile", "", "validation profile name")
	f.StringVar(&opts.ProfileFile, "profile-file", "", "user profile YAML file merged over built-ins")

	f.BoolVar(&opts.NoGCCheck, "no-gc-check", false, "disable GC content check")
	f.BoolVar(&opts.NoTmCheck, "no-tm-check", false, "disable melting temperature check")
	f.BoolVar(&opts.NoHairpinCheck, "no-hairpin-check", false, "disable hairpin check")
	f.BoolVar(&opts.NoHomodimerCheck, "no-homodimer-check", false, "disable homodimer check")
	f.BoolVar(&opts.NoHomopolymerCheck, "no-homopolymer-check", false, "disable homopolymer check")
	f.BoolVar(&opts.NoDinucleotideCheck, "no-dinucleotide-check", false, "disable dinucleotide repeat check")
	f.BoolVar(&opts.NoThreePrimeCheck, "no-3prime-check", false, "disable 3' stability check")

	f.IntVar(&opts.MaxAttempts, "max-attempts", 10000, "maximum backtracking attempts")
	f.BoolVar(&opts.Heuristics, "heuristics", false, "force enable candidate heuristics")
	f.BoolVar(&opts.NoHeuristics, "no-heuristics", false, "force disable candidate heuristics")
	cmd.MarkFlagsMutuallyExclusive("heuristics", "no-heuristics")

	f.StringVarP(&opts.Output, "output", "o", "", "output file (default: stdout)")
	f.BoolVar(&opts.SequencesOnly, "sequences-only", false, "output sequences only, no statistics")
	f.StringVar(&opts.CSVFile, "csv-file", "", "export sliding-window analysis of the first sequence to CSV")
	f.StringVar(&opts.Database, "db", "", "save successful sequences to a library database")

	_ = cmd.MarkFlagRequired("initial")
	_ = cmd.MarkFlagRequired("length")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *GenerateOptions) error {
	cfg, err := buildConfig(cmd, opts)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid configuration", err)
	}

	gen, err := generator.New(cfg)
	if err != nil {
		return WrapExitError(ExitCommandError, "initializing generator", err)
	}

	if opts.Verbose {
		extension := opts.Length - len(opts.Initial)
		slog.Debug("search space",
			"extension_length", extension,
			"bound", config.SearchSpaceBound(extension).String(),
			"budget_covers_space", cfg.CoversSearchSpace(extension))
	}

	var genOpts []generator.GenerateOption
	if cmd.Flags().Changed("seed") {
		genOpts = append(genOpts, generator.WithSeed(opts.Seed))
	}

	var results []generator.Result
	if opts.Count == 1 {
		results = []generator.Result{gen.Generate(opts.Initial, opts.Length, genOpts...)}
	} else {
		results = gen.GenerateBatch(opts.Initial, opts.Length, opts.Count, genOpts...)
	}

	if opts.CSVFile != "" {
		if err := exportCSV(opts, gen, results); err != nil {
			return WrapExitError(ExitCommandError, "CSV export failed", err)
		}
	}
	if opts.Database != "" {
		if err := saveResults(cmd.Context(), opts, results); err != nil {
			return WrapExitError(ExitCommandError, "saving to library failed", err)
		}
	}

	output, err := FormatResults(results, opts.Format, opts.SequencesOnly)
	if err != nil {
		return WrapExitError(ExitCommandError, "formatting output", err)
	}
	if opts.Output != "" {
		if err := os.WriteFile(opts.Output, []byte(output+"\n"), 0o644); err != nil {
			return WrapExitError(ExitCommandError, "writing output file", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Results written to file: %s\n", opts.Output)
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), output)
	}

	successful := 0
	for _, res := range results {
		if res.Success() {
			successful++
		}
	}
	if !opts.Quiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "\nSummary: %d/%d sequences generated successfully\n", successful, len(results))
	}
	if successful == 0 {
		return NewExitError(ExitFailure, "no sequences generated")
	}
	return nil
}

// buildConfig assembles the run configuration with a clear priority
// hierarchy: dataclass-style defaults, then the selected profile, then
// explicit CLI flags. Profiles set recommended defaults; flags the user
// actually typed always win.
func buildConfig(cmd *cobra.Command, opts *GenerateOptions) (config.Config, error) {
	cfg := config.Default()
	cfg.ProgressLogging = !opts.Quiet

	switch opts.Mode {
	case "deterministic":
		cfg.Mode = engine.ModeDeterministic
	case "random":
		cfg.Mode = engine.ModeRandom
	default:
		return cfg, fmt.Errorf("invalid mode %q: must be deterministic or random", opts.Mode)
	}

	if opts.Profile != "" || opts.ProfileFile != "" {
		registry, err := profile.NewRegistry()
		if err != nil {
			return cfg, err
		}
		if opts.ProfileFile != "" {
			if err := registry.LoadUserFile(opts.ProfileFile); err != nil {
				return cfg, err
			}
		}
		if opts.Profile != "" {
			p, err := registry.Get(opts.Profile)
			if err != nil {
				return cfg, err
			}
			if err := p.Apply(&cfg); err != nil {
				return cfg, err
			}
			slog.Debug("applied validation profile", "name", opts.Profile)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("min-gc") {
		cfg.MinGC = opts.MinGC
	}
	if flags.Changed("max-gc") {
		cfg.MaxGC = opts.MaxGC
	}
	if flags.Changed("min-tm") {
		cfg.MinTm = opts.MinTm
	}
	if flags.Changed("max-tm") {
		cfg.MaxTm = opts.MaxTm
	}
	if flags.Changed("max-hairpin") {
		cfg.MaxHairpinTm = opts.MaxHairpinTm
	}
	if flags.Changed("max-homodimer") {
		cfg.MaxHomodimerTm = opts.MaxHomodimerTm
	}
	if flags.Changed("window-size") {
		cfg.WindowSize = opts.WindowSize
	}
	if flags.Changed("max-attempts") {
		cfg.MaxBacktrackAttempts = opts.MaxAttempts
	}

	// Individual rule switches override whatever the profile decided.
	if opts.NoGCCheck {
		cfg.Rules.GCContent = false
	}
	if opts.NoTmCheck {
		cfg.Rules.MeltingTemperature = false
	}
	if opts.NoHairpinCheck {
		cfg.Rules.HairpinStructures = false
	}
	if opts.NoHomodimerCheck {
		cfg.Rules.HomodimerStructures = false
	}
	if opts.NoHomopolymerCheck {
		cfg.Rules.HomopolymerRuns = false
	}
	if opts.NoDinucleotideCheck {
		cfg.Rules.DinucleotideRepeats = false
	}
	if opts.NoThreePrimeCheck {
		cfg.Rules.ThreePrimeStability = false
	}

	// Heuristics override: respect profile auto-settings unless the user
	// explicitly forced a choice.
	if opts.Heuristics {
		cfg.EnableHeuristics = true
	}
	if opts.NoHeuristics {
		cfg.EnableHeuristics = false
	}

	if flags.Changed("seed") {
		cfg.Seed = opts.Seed
		cfg.HasSeed = true
	}

	return cfg, nil
}

func exportCSV(opts *GenerateOptions, gen *generator.Generator, results []generator.Result) error {
	var first *generator.Result
	for i := range results {
		if results[i].Success() {
			first = &results[i]
			break
		}
	}
	if first == nil {
		return fmt.Errorf("no successful sequences to export")
	}

	reports := analysis.SlidingWindows([]byte(first.Sequence), gen.Config().WindowSize, gen.Oracle())
	f, err := os.Create(opts.CSVFile)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := analysis.WriteCSV(f, reports); err != nil {
		return err
	}
	slog.Info("CSV analysis exported", "path", opts.CSVFile, "windows", len(reports))
	return nil
}

func saveResults(ctx context.Context, opts *GenerateOptions, results []generator.Result) error {
	if ctx == nil {
		ctx = context.Background()
	}
	store, err := library.Open(opts.Database)
	if err != nil {
		return err
	}
	defer store.Close()

	saved := 0
	for _, res := range results {
		if !res.Success() {
			continue
		}
		gc := 0.0
		if res.Metrics != nil {
			gc = res.Metrics.GCContent
		}
		rec := library.Record{
			InitialSequence: res.InitialSequence,
			Sequence:        res.Sequence,
			Length:          res.ActualLength,
			GCContent:       gc,
			Mode:            opts.Mode,
			Seed:            res.Seed,
			Profile:         opts.Profile,
		}
		if res.Stats != nil {
			rec.TotalAttempts = res.Stats.TotalAttempts
			rec.BacktrackCount = res.Stats.BacktrackCount
		}
		if _, err := store.Save(ctx, rec); err != nil {
			return err
		}
		saved++
	}
	slog.Info("sequences saved to library", "path", opts.Database, "count", saved)
	return nil
}
