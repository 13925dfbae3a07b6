// cmd/commitmem/console.go

package main

// switchCodePage sets the console output code page to cp and returns a func
// that puts the previous one back. The console is shared with the parent
// shell, so the change must not outlive the run.
func switchCodePage(get func() (uint32, error), set func(uint32) error, cp uint32) (restore func(), err error) {
	old, err := get()
	if err != nil {
		return func() {}, err
	}
	if old == cp {
		return func() {}, nil
	}
	if err := set(cp); err != nil {
		return func() {}, err
	}
	return func() { _ = set(old) }, nil
}
