// cmd/commitmem/flags.go

package main

import (
	"github.com/spf13/pflag"

	"github.com/creativeyann17/commitmem/internal/config"
)

// settings collects the command line, possibly completed from a config file
type settings struct {
	configPath string
	workers    int
	format     string
	progress   bool
	nameWidth  int
	verbose    bool
	quiet      bool
}

func (s *settings) bindFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&s.configPath, "config", "c", "", "YAML file with default settings")
	fs.IntVarP(&s.workers, "workers", "w", 0, "Processes queried concurrently (0 = one per CPU, 1 = sequential)")
	fs.StringVarP(&s.format, "format", "f", "text", "Output format: text or json")
	fs.BoolVar(&s.progress, "progress", false, "Show a progress bar on stderr while querying")
	fs.IntVar(&s.nameWidth, "name-width", 0, "Truncate process names to this many columns (0 = never)")
	fs.BoolVar(&s.verbose, "verbose", false, "Show detailed output")
	fs.BoolVar(&s.quiet, "quiet", false, "Minimal output (overrides verbose)")
}

// applyConfig takes every setting the user did not pass explicitly from cfg.
// Quiet wins over verbose wherever each came from.
func (s *settings) applyConfig(fs *pflag.FlagSet, cfg *config.Config) {
	if !fs.Changed("workers") {
		s.workers = cfg.Workers
	}
	if !fs.Changed("format") && cfg.Format != "" {
		s.format = cfg.Format
	}
	if !fs.Changed("progress") {
		s.progress = cfg.Progress
	}
	if !fs.Changed("name-width") {
		s.nameWidth = cfg.NameWidth
	}
	if !fs.Changed("verbose") {
		s.verbose = cfg.Verbose
	}
	if !fs.Changed("quiet") {
		s.quiet = cfg.Quiet
	}
	if s.quiet {
		s.verbose = false
	}
}
