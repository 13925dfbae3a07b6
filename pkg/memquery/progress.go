// pkg/memquery/progress.go
package memquery

import (
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// ProgressBarCallback creates a progress callback that draws a sweep progress
// bar on stderr. Returns the callback function and the progress container
// (call Wait() after the sweep).
func ProgressBarCallback() (ProgressCallback, *mpb.Progress) {
	progress := mpb.New(
		mpb.WithWidth(60),
		mpb.WithRefreshRate(100*time.Millisecond),
		mpb.WithOutput(os.Stderr),
	)

	var bar *mpb.Bar
	var skipped, failed atomic.Int64

	callback := func(event ProgressEvent) {
		switch event.Type {
		case EventStart:
			bar = progress.AddBar(event.Total,
				mpb.PrependDecorators(
					decor.Name("Processes", decor.WC{C: decor.DindentRight | decor.DextraSpace}),
					decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
				),
				mpb.AppendDecorators(
					decor.Percentage(decor.WC{W: 5}),
					decor.Any(func(decor.Statistics) string {
						return fmt.Sprintf("  skipped %d, failed %d", skipped.Load(), failed.Load())
					}),
				),
			)

		case EventProcessComplete:
			if bar != nil {
				bar.Increment()
			}

		case EventProcessSkipped:
			skipped.Add(1)
			if bar != nil {
				bar.Increment()
			}

		case EventProcessError:
			failed.Add(1)
			if bar != nil {
				bar.Increment()
			}

		case EventComplete:
			if bar != nil {
				// Completes bars that started with an empty process list
				bar.SetTotal(-1, true)
			}
		}
	}

	return callback, progress
}
