// Package health runs registered liveness checks and reports UP/DOWN per check.
package health

import (
	"context"
	"fmt"
	"sync"
)

// Check result literals, matching the payload contract of the health endpoint.
const (
	StatusUp   = "UP"
	StatusDown = "DOWN"
)

// CheckFunc performs one health check. A nil error means UP.
type CheckFunc func(ctx context.Context) error

// Checker holds named checks. The built-in "api" check is always UP while the
// process can serve requests at all.
type Checker struct {
	mu     sync.RWMutex
	order  []string
	checks map[string]CheckFunc
}

// NewChecker creates a Checker pre-registered with the static "api" check.
func NewChecker() *Checker {
	c := &Checker{checks: make(map[string]CheckFunc)}
	c.Register("api", func(context.Context) error { return nil })
	return c
}

// Register adds or replaces a named check.
func (c *Checker) Register(name string, fn CheckFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.checks[name]; !exists {
		c.order = append(c.order, name)
	}
	c.checks[name] = fn
}

// Run executes all checks and returns the overall status plus per-check
// results. Overall is DOWN if any single check fails.
func (c *Checker) Run(ctx context.Context) (string, map[string]string) {
	c.mu.RLock()
	names := make([]string, len(c.order))
	copy(names, c.order)
	fns := make(map[string]CheckFunc, len(c.checks))
	for name, fn := range c.checks {
		fns[name] = fn
	}
	c.mu.RUnlock()

	overall := StatusUp
	results := make(map[string]string, len(names))
	for _, name := range names {
		if err := fns[name](ctx); err != nil {
			results[name] = fmt.Sprintf("%s: %v", StatusDown, err)
			overall = StatusDown
		} else {
			results[name] = StatusUp
		}
	}
	return overall, results
}
