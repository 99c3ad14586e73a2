package series

import (
	_ "embed"
	"sync"
)

//go:embed registry.yaml
var embeddedRegistry []byte

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the registry built from the embedded series table.
// The registry is built once and shared; it is read-only and safe for
// concurrent use.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = MustNew(Config{})
	})
	return defaultRegistry
}
