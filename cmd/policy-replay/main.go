// Command policy-replay plays a scripted or constant policy plan through
// the economy model and prints the round history.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"

	"fiscal-sim/internal/economy"
	"fiscal-sim/internal/i18n"
	"fiscal-sim/internal/report"
	"fiscal-sim/internal/scenario"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// toMap splits key=value entries; later entries win.
func (l kvList) toMap() (map[string]string, error) {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("override %q: want key=value", kv)
		}
		out[strings.TrimSpace(key)] = value
	}
	return out, nil
}

type config struct {
	Scenario  string `env:"FISCAL_SIM_SCENARIO"`
	Format    string `env:"FISCAL_SIM_FORMAT"  envDefault:"text"`
	Locale    string `env:"FISCAL_SIM_LOCALE"  envDefault:"en-US"`
	Overrides kvList
}

func parseConfig(fs *flag.FlagSet, args []string, opts env.Options) (config, error) {
	var cfg config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return config{}, fmt.Errorf("parse env: %w", err)
	}
	fs.StringVar(&cfg.Scenario, "scenario", cfg.Scenario, "YAML plan to replay (default: constant policy)")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "output format: "+strings.Join(report.Formats(), ", "))
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "message locale for text output")
	fs.Var(&cfg.Overrides, "set", "policy override in key=value form (repeatable)")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	return cfg, nil
}

func main() {
	log.SetPrefix("[REPLAY] ")
	log.SetFlags(0)

	fs := flag.NewFlagSet("policy-replay", flag.ExitOnError)
	cfg, err := parseConfig(fs, os.Args[1:], env.Options{})
	if err != nil {
		log.Fatal(err)
	}
	if err := run(cfg, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(cfg config, out io.Writer) error {
	overrides, err := cfg.Overrides.toMap()
	if err != nil {
		return err
	}
	plan, err := loadPlan(cfg.Scenario, overrides)
	if err != nil {
		return err
	}
	bundle, err := i18n.Load()
	if err != nil {
		return fmt.Errorf("load messages: %w", err)
	}

	session, err := scenario.Run(plan, economy.DefaultConfig())
	if err != nil {
		return err
	}
	return report.Write(out, cfg.Format, bundle.Printer(cfg.Locale), report.FromSession(plan.Name, session))
}

// loadPlan reads the scenario file, or builds a constant plan from the
// baseline when path is empty. Overrides apply to every round.
func loadPlan(path string, overrides map[string]string) (scenario.Plan, error) {
	if path == "" {
		p, err := economy.PolicyFromMap(economy.Baseline(), overrides)
		if err != nil {
			return scenario.Plan{}, err
		}
		if err := p.Validate(); err != nil {
			return scenario.Plan{}, err
		}
		return scenario.Constant("constant", p, economy.DefaultConfig().MaxRounds), nil
	}

	plan, err := scenario.Load(path)
	if err != nil {
		return scenario.Plan{}, err
	}
	for i, round := range plan.Rounds {
		p, err := economy.PolicyFromMap(round, overrides)
		if err != nil {
			return scenario.Plan{}, err
		}
		if err := p.Validate(); err != nil {
			return scenario.Plan{}, fmt.Errorf("round %d: %w", i+1, err)
		}
		plan.Rounds[i] = p
	}
	return plan, nil
}
