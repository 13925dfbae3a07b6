// pkg/report/report.go
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"

	"github.com/creativeyann17/commitmem/pkg/memquery"
)

// MiB is the unit of every value in the text table
const MiB = 1024 * 1024

// ToMiB converts bytes to MiB, rounding up
func ToMiB(size uint64) uint64 {
	return (size + MiB - 1) / MiB
}

const title = "commitmem"

const totalsNote = "*: Totals of CommittedSize and CS(Shared) are not meaningful as they may be counted for many times."

// Write renders snap to w
func Write(w io.Writer, snap *memquery.Snapshot, opts *Options) error {
	if opts == nil {
		opts = &Options{}
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	switch opts.Format {
	case FormatJSON:
		return writeJSON(w, snap)
	default:
		return writeText(w, snap, opts)
	}
}

func writeText(w io.Writer, snap *memquery.Snapshot, opts *Options) error {
	// Keep the first write error, later writes become no-ops
	var err error
	printf := func(format string, args ...interface{}) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	printf("%s\n\n", title)
	printf("%s\n\n", totalsNote)
	printf("SystemCommitTotal: %d MiB\n\n", ToMiB(snap.SystemCommitTotal))

	printf("%8s  %14s  %14s  %14s  %14s    %s\n",
		"PID", "PrivateUsage", "CommittedSize", "CS(Private)", "CS(Shared)", "Name")

	t := snap.Totals
	printf("%8s  %10d MiB  %9d MiB*  %10d MiB  %9d MiB*    %s\n",
		"-",
		ToMiB(t.PrivateUsage),
		ToMiB(t.CommittedTotal),
		ToMiB(t.CommittedPrivate),
		ToMiB(t.CommittedShared),
		"(Total)")

	for _, e := range snap.Entries {
		r := e.Report
		if r == nil {
			printf("%8d\n", e.PID)
			continue
		}
		printf("%8d  %10d MiB  %10d MiB  %10d MiB  %10d MiB    %s\n",
			e.PID,
			ToMiB(r.PrivateUsage),
			ToMiB(r.CommittedTotal),
			ToMiB(r.CommittedPrivate),
			ToMiB(r.CommittedShared),
			truncateName(r.Name, opts.NameWidth))
	}

	return err
}

// truncateName shortens name to width display columns, keeping the start
func truncateName(name string, width int) string {
	if width <= 0 || runewidth.StringWidth(name) <= width {
		return name
	}
	return runewidth.Truncate(name, width, "...")
}

type jsonTotals struct {
	PrivateUsage     uint64 `json:"private_usage"`
	CommittedTotal   uint64 `json:"committed_total"`
	CommittedPrivate uint64 `json:"committed_private"`
	CommittedShared  uint64 `json:"committed_shared"`
}

type jsonProcess struct {
	PID uint32 `json:"pid"`
	*jsonReport
}

type jsonReport struct {
	Name string `json:"name"`
	jsonTotals
}

type jsonSnapshot struct {
	SystemCommitTotal uint64        `json:"system_commit_total"`
	Totals            jsonTotals    `json:"totals"`
	Processes         []jsonProcess `json:"processes"`
}

func writeJSON(w io.Writer, snap *memquery.Snapshot) error {
	out := jsonSnapshot{
		SystemCommitTotal: snap.SystemCommitTotal,
		Totals:            jsonTotals(snap.Totals),
		Processes:         make([]jsonProcess, 0, len(snap.Entries)),
	}

	for _, e := range snap.Entries {
		p := jsonProcess{PID: e.PID}
		if r := e.Report; r != nil {
			p.jsonReport = &jsonReport{
				Name: r.Name,
				jsonTotals: jsonTotals{
					PrivateUsage:     r.PrivateUsage,
					CommittedTotal:   r.CommittedTotal,
					CommittedPrivate: r.CommittedPrivate,
					CommittedShared:  r.CommittedShared,
				},
			}
		}
		out.Processes = append(out.Processes, p)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
