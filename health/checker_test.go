package health_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/infoline/infoline-api/health"
)

func TestCheckerDefaultAPICheck(t *testing.T) {
	c := health.NewChecker()

	overall, results := c.Run(context.Background())

	assert.Equal(t, health.StatusUp, overall)
	assert.Equal(t, map[string]string{"api": health.StatusUp}, results)
}

func TestCheckerFailingCheckTurnsOverallDown(t *testing.T) {
	c := health.NewChecker()
	c.Register("database", func(context.Context) error {
		return errors.New("connection refused")
	})

	overall, results := c.Run(context.Background())

	assert.Equal(t, health.StatusDown, overall)
	assert.Equal(t, health.StatusUp, results["api"])
	assert.Equal(t, "DOWN: connection refused", results["database"])
}

func TestCheckerRegisterReplaces(t *testing.T) {
	c := health.NewChecker()
	c.Register("cache", func(context.Context) error { return errors.New("cold") })
	c.Register("cache", func(context.Context) error { return nil })

	overall, results := c.Run(context.Background())

	assert.Equal(t, health.StatusUp, overall)
	assert.Len(t, results, 2)
	assert.Equal(t, health.StatusUp, results["cache"])
}

func TestCheckerPassesContext(t *testing.T) {
	c := health.NewChecker()
	c.Register("ctx", func(ctx context.Context) error {
		return ctx.Err()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	overall, results := c.Run(ctx)

	assert.Equal(t, health.StatusDown, overall)
	assert.Contains(t, results["ctx"], "DOWN")
}
