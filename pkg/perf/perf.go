// Package perf provides a lightweight function-timing hook.
//
// Usage:
//
//	defer perf.Track(&cfg, "ansible.WriteInventory")()
package perf

import (
	"sync"
	"time"

	log "github.com/molecule-go/molecule/pkg/logger"
	"github.com/molecule-go/molecule/pkg/schema"
)

// Stat accumulates call count and total elapsed time for one tracked function.
type Stat struct {
	Count int64
	Total time.Duration
}

var (
	mu      sync.Mutex
	enabled bool
	totals  = make(map[string]Stat)
)

// SetEnabled turns timing collection on or off. Disabled by default.
func SetEnabled(on bool) {
	mu.Lock()
	defer mu.Unlock()
	enabled = on
}

// Track records the duration of the enclosing function under the given name.
// The configuration pointer may be nil; it is accepted so call sites read the
// same in functions that do and do not carry a configuration.
func Track(_ *schema.MoleculeConfiguration, name string) func() {
	mu.Lock()
	on := enabled
	mu.Unlock()
	if !on {
		return func() {}
	}

	start := time.Now()
	return func() {
		elapsed := time.Since(start)
		mu.Lock()
		s := totals[name]
		s.Count++
		s.Total += elapsed
		totals[name] = s
		mu.Unlock()
		log.Trace("perf", "func", name, "elapsed", elapsed)
	}
}

// Totals returns a copy of the accumulated timing data.
func Totals() map[string]Stat {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]Stat, len(totals))
	for k, v := range totals {
		out[k] = v
	}
	return out
}
