// Command policy-sweep plays every combination of constant policies drawn
// from per-field value lists and ranks the outcomes.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"fiscal-sim/internal/economy"
	"fiscal-sim/internal/report"
)

type floatList []float64

func (l *floatList) String() string {
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}

// Set accepts a comma-separated list and may be repeated.
func (l *floatList) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return fmt.Errorf("parse %q: %w", part, err)
		}
		*l = append(*l, v)
	}
	return nil
}

type config struct {
	Workers int    `env:"FISCAL_SIM_WORKERS"`
	Top     int    `env:"FISCAL_SIM_TOP"    envDefault:"5"`
	Format  string `env:"FISCAL_SIM_FORMAT" envDefault:"text"`

	axes map[string]*floatList
}

// axisFlags maps flag names to policy keys, in policy order.
var axisFlags = []struct{ flag, key string }{
	{"income", economy.KeyIncomeTax},
	{"corporate", economy.KeyCorporateTax},
	{"consumption", economy.KeyConsumptionTax},
	{"education", economy.KeyEducation},
	{"infrastructure", economy.KeyInfrastructure},
	{"healthcare", economy.KeyHealthcare},
	{"welfare", economy.KeyWelfare},
}

func parseConfig(fs *flag.FlagSet, args []string, opts env.Options) (config, error) {
	cfg := config{axes: map[string]*floatList{}}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "parallel candidate evaluations")
	fs.IntVar(&cfg.Top, "top", cfg.Top, "number of ranked results to print (text format)")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "output format: text or tsv")
	for _, a := range axisFlags {
		list := &floatList{}
		cfg.axes[a.key] = list
		fs.Var(list, a.flag, "comma-separated values for "+a.key)
	}
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	return cfg, nil
}

func (c config) grid() ([]economy.Policy, error) {
	axes := make([]economy.Axis, 0, len(axisFlags))
	for _, a := range axisFlags {
		axes = append(axes, economy.Axis{Key: a.key, Values: *c.axes[a.key]})
	}
	return economy.PolicyGrid(axes...)
}

func main() {
	log.SetPrefix("[SWEEP] ")
	log.SetFlags(0)

	fs := flag.NewFlagSet("policy-sweep", flag.ExitOnError)
	cfg, err := parseConfig(fs, os.Args[1:], env.Options{})
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, cfg, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cfg config, out io.Writer) error {
	grid, err := cfg.grid()
	if err != nil {
		return err
	}
	start := time.Now()
	log.Printf("sweeping %d candidates with %d workers", len(grid), cfg.Workers)

	results, err := economy.Sweep(ctx, economy.DefaultConfig(), grid, cfg.Workers)
	if err != nil {
		return fmt.Errorf("sweep interrupted after %d results: %w", len(results), err)
	}
	log.Printf("%d valid candidates in %s", len(results), time.Since(start).Round(time.Millisecond))

	switch cfg.Format {
	case report.FormatTSV:
		return writeTSV(out, results)
	case report.FormatText:
		return writeTop(out, results, cfg.Top)
	default:
		return fmt.Errorf("unknown sweep format %q (want text or tsv)", cfg.Format)
	}
}

// SweepTSVHeader is the header of TSV sweep output.
const SweepTSVHeader = "rank\tstatus\trounds\t" + report.TSVHeader

func writeTSV(w io.Writer, results []economy.SweepResult) error {
	if _, err := fmt.Fprintln(w, SweepTSVHeader); err != nil {
		return err
	}
	for i, res := range results {
		row := report.FormatRowTSV(economy.RoundRecord{Round: res.Rounds, Policy: res.Policy, State: res.Final})
		if _, err := fmt.Fprintf(w, "%d\t%s\t%d\t%s\n", i+1, res.Status, res.Rounds, row); err != nil {
			return err
		}
	}
	return nil
}

func writeTop(w io.Writer, results []economy.SweepResult, top int) error {
	if top <= 0 || top > len(results) {
		top = len(results)
	}
	fmt.Fprintf(w, "Top %d of %d results:\n", top, len(results))
	for i, res := range results[:top] {
		p := res.Policy
		_, err := fmt.Fprintf(w, "%2d) %s after %d rounds: gdp=%.1f deficit=%.1f employment=%.1f welfare=%.1f | tax %.1f/%.1f/%.1f spend %.0f/%.0f/%.0f/%.0f\n",
			i+1, res.Status, res.Rounds, res.Final.GDP, res.Final.BudgetDeficit, res.Final.EmploymentRate, res.Final.WelfareIndex,
			p.IncomeTax, p.CorporateTax, p.ConsumptionTax, p.Education, p.Infrastructure, p.Healthcare, p.Welfare)
		if err != nil {
			return err
		}
	}
	return nil
}
