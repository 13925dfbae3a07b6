//go:build !windows

package winproc

import "github.com/creativeyann17/commitmem/pkg/memquery"

// New returns the process backend for the running OS
func New() (memquery.System, error) {
	return nil, memquery.ErrUnsupportedPlatform
}
