// pkg/memquery/options.go
package memquery

import "runtime"

// Options configures a memory sweep
type Options struct {
	// Workers is the number of processes queried concurrently
	// 0 = runtime.NumCPU(), 1 = strictly sequential
	Workers int

	// UpperBound is the exclusive end of the walked address range
	// Default: MaxUserAddress
	UpperBound uint64
}

// DefaultOptions returns options with sensible defaults
func DefaultOptions() *Options {
	return &Options{
		Workers:    runtime.NumCPU(),
		UpperBound: MaxUserAddress,
	}
}

// Validate checks if options are valid and fills in defaults
func (o *Options) Validate() error {
	if o.Workers < 0 {
		return ErrInvalidWorkers
	}
	if o.Workers == 0 {
		o.Workers = runtime.NumCPU()
	}
	if o.UpperBound == 0 {
		o.UpperBound = MaxUserAddress
	}
	if o.UpperBound%PageSize != 0 {
		return ErrInvalidUpperBound
	}
	return nil
}
