//go:build !cgo

package corpus

import "fmt"

// dbxml (Berkeley DB XML) is a cgo binding; without cgo .dact corpora
// cannot be opened.
func walkDact(path string, fn func(Sample) error) error {
	return fmt.Errorf("open dact: %s: dbxml support requires a build with cgo enabled", path)
}
