package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lixenwraith/sling/config"
)

// CheckCmd validates a config file without starting the demo
type CheckCmd struct {
	Config string `help:"TOML config file to validate" type:"existingfile" short:"c" required:""`

	out io.Writer `kong:"-"`
}

// Run executes the check command
func (c *CheckCmd) Run() error {
	out := c.out
	if out == nil {
		out = os.Stdout
	}

	cfg, warnings, err := config.Load(c.Config)
	if err != nil {
		return err
	}

	for _, w := range warnings {
		fmt.Fprintf(out, "warning: %s\n", w)
	}
	th := cfg.Thresholds
	fmt.Fprintf(out, "%s: ok (%d warnings)\n", c.Config, len(warnings))
	fmt.Fprintf(out, "  tap <= %s, charge %s, commit at %s for %s, rest %s\n",
		th.FastShotThreshold, th.ChargeDuration, th.CommitTriggerHold, th.CommitWindowDuration, th.RestDuration)
	fmt.Fprintf(out, "  cost full %g, fast %g; energy %g/%g\n",
		th.FullShotCost, th.FastShotCost, cfg.Energy.Initial, cfg.Energy.Max)
	return nil
}
