// Package main provides the hetu binary: a command-line tool that verifies
// Finnish personal identity codes and generates well-formed ones for test
// data. Configuration comes from HETU_* environment variables with
// command-line flags taking precedence.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"

	"github.com/jkorri/hetu/internal/app"
	"github.com/jkorri/hetu/internal/config"
	"github.com/jkorri/hetu/internal/domain"
	"github.com/jkorri/hetu/internal/render"
)

// mathRand implements domain.Rand on the shared math/rand/v2 source, which
// is safe for concurrent use.
type mathRand struct{}

func (mathRand) IntN(n int) int { return rand.IntN(n) }

var (
	// Global flags
	flagLocale  string
	flagJSON    bool
	flagVerbose bool

	// generate flags
	flagCount   int
	flagTest    bool
	flagMinYear int
	flagMaxYear int

	cfg      *config.Config
	exitCode int
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "hetu",
	Short: "Verify and generate Finnish personal identity codes",
	Long: `hetu verifies Finnish personal identity codes (henkilötunnus) and
generates random well-formed ones for use as test data.

Verification classifies each input as valid, invalid, or a test code, and
derives the birth date, gender, and individual number. Malformed input is
reported as invalid, never as an error.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger(flagVerbose)
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("configuration: %w", err)
		}
		if cmd.Root().PersistentFlags().Changed("locale") {
			c.Locale = flagLocale
		}
		cfg = c
		return nil
	},
}

var verifyCmd = &cobra.Command{
	Use:   "verify PID...",
	Short: "Verify one or more personal identity codes",
	Long: `Verifies each argument and prints a one-line classification. The
process exits with status 1 if any argument classified as invalid.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runVerify,
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate random well-formed codes",
	Long: `Generates random personal identity codes within the configured year
range. Generated codes are not guaranteed unique; a batch may contain
duplicates. If fewer codes than requested could be produced, a warning is
logged and the shorter batch is printed.`,
	RunE: runGenerate,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLocale, "locale", "", "Output language (en, fi, sv)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Emit results as JSON lines")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	generateCmd.Flags().IntVarP(&flagCount, "count", "n", 0, "Number of codes to generate")
	generateCmd.Flags().BoolVar(&flagTest, "test", false, "Generate test codes (sequence 900-999)")
	generateCmd.Flags().IntVar(&flagMinYear, "min-year", 0, "Earliest birth year")
	generateCmd.Flags().IntVar(&flagMaxYear, "max-year", 0, "Latest birth year")

	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(generateCmd)
}

// setupLogger installs a text handler on stderr so structured output on
// stdout stays machine-readable.
func setupLogger(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func newService(cfg *config.Config) *app.Service {
	return &app.Service{Rand: mathRand{}, MinYear: cfg.MinYear, MaxYear: cfg.MaxYear}
}

// resultJSON is the wire shape for --json output. Absent fields are omitted
// rather than zeroed so invalid results carry no misleading values.
type resultJSON struct {
	Source           string `json:"source"`
	Validity         string `json:"validity"`
	Gender           string `json:"gender"`
	BirthDate        string `json:"birth_date,omitempty"`
	IndividualNumber *int   `json:"individual_number,omitempty"`
}

func writeResultJSON(w io.Writer, res domain.VerificationResult) error {
	doc := resultJSON{
		Source:   res.Source(),
		Validity: res.Validity().String(),
		Gender:   res.Gender().String(),
	}
	if s, ok := res.DateString(); ok {
		doc.BirthDate = s
	}
	if n, ok := res.IndividualNumber(); ok {
		doc.IndividualNumber = &n
	}
	return json.NewEncoder(w).Encode(doc)
}

func runVerify(cmd *cobra.Command, args []string) error {
	svc := newService(cfg)
	r := render.New(cfg.Locale)
	out := cmd.OutOrStdout()
	invalid := 0
	for _, arg := range args {
		res := svc.Verify(arg)
		if res.Validity() == domain.Invalid {
			invalid++
		}
		if flagJSON {
			if err := writeResultJSON(out, res); err != nil {
				return err
			}
			continue
		}
		fmt.Fprintln(out, r.Describe(res))
	}
	slog.Debug("verification finished", "inputs", len(args), "invalid", invalid)
	if invalid > 0 {
		exitCode = 1
	}
	return nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	svc := newService(cfg)
	count := cfg.Count
	if cmd.Flags().Changed("count") {
		count = flagCount
	}
	gcfg := domain.GeneratorConfig{MinYear: cfg.MinYear, MaxYear: cfg.MaxYear, Target: domain.Valid}
	if cmd.Flags().Changed("min-year") {
		gcfg.MinYear = flagMinYear
	}
	if cmd.Flags().Changed("max-year") {
		gcfg.MaxYear = flagMaxYear
	}
	if flagTest {
		gcfg.Target = domain.Test
	}

	pids := svc.GenerateMany(gcfg, count)
	out := cmd.OutOrStdout()
	for _, pid := range pids {
		if flagJSON {
			if err := writeResultJSON(out, domain.Verify(pid.String())); err != nil {
				return err
			}
			continue
		}
		fmt.Fprintln(out, pid.String())
	}
	if len(pids) < count {
		slog.Warn("generated fewer codes than requested", "want", count, "got", len(pids))
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(2)
	}
	os.Exit(exitCode)
}
