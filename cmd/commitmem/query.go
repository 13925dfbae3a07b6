// cmd/commitmem/query.go

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/creativeyann17/commitmem/internal/config"
	"github.com/creativeyann17/commitmem/internal/winproc"
	"github.com/creativeyann17/commitmem/pkg/memquery"
	"github.com/creativeyann17/commitmem/pkg/report"
)

func runQuery(cmd *cobra.Command, s *settings) error {
	cfg, err := config.Load(s.configPath)
	if err != nil {
		return err
	}
	s.applyConfig(cmd.Flags(), cfg)

	opts := &memquery.Options{
		Workers: s.workers,
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	reportOpts := &report.Options{
		Format:    report.Format(s.format),
		NameWidth: s.nameWidth,
	}
	if err := reportOpts.Validate(); err != nil {
		return err
	}

	// Diagnostics go to stderr, stdout only carries the report
	log := func(format string, args ...interface{}) {
		if s.verbose {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}
	}

	restoreConsole, err := initConsole()
	if err != nil {
		log("Console setup failed: %v", err)
	}
	defer restoreConsole()

	sys, err := winproc.New()
	if err != nil {
		return err
	}

	log("Querying processes with %d workers...", opts.Workers)

	var progressCb memquery.ProgressCallback
	var waitProgress func()
	if s.progress && !s.quiet {
		cb, progress := memquery.ProgressBarCallback()
		progressCb = cb
		waitProgress = progress.Wait
	}

	snap, err := memquery.Sweep(sys, opts, progressCb)

	// Finish progress bar before printing anything else
	if waitProgress != nil {
		waitProgress()
	}

	if err != nil {
		return err
	}

	if errs := snap.Errors(); len(errs) > 0 {
		log("Completed with %d errors:", len(errs))
		for _, e := range errs {
			log("  - %v", e)
		}
	}
	log("Reported %d / %d processes", snap.Reported(), len(snap.Entries))

	return report.Write(cmd.OutOrStdout(), snap, reportOpts)
}
