package main

import (
	"os"

	"github.com/alecthomas/kong"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version kong.VersionFlag `help:"Show version information"`
	Debug   bool             `help:"Write debug log to logs/sling.log" short:"d" env:"SLING_DEBUG"`

	Play  PlayCmd  `cmd:"" help:"Run the terminal demo (default)" default:"1"`
	Check CheckCmd `cmd:"" help:"Validate a config file and print warnings"`
	Stats StatsCmd `cmd:"" help:"Summarize a session journal"`

	// Internal field, not a flag
	logFile *os.File `kong:"-"`
}

// AfterApply initializes logging once flags are parsed
func (c *CLI) AfterApply() error {
	c.logFile = setupLogging(c.Debug)
	return nil
}

// Close releases the log file
func (c *CLI) Close() {
	if c.logFile != nil {
		c.logFile.Close()
		c.logFile = nil
	}
}
