package wizard

import (
	"context"
	"time"
)

// Generator turns a completed record into a generated one.
// Implementations must honor ctx cancellation and set GeneratedAt on success.
type Generator interface {
	Generate(ctx context.Context, data WebsiteData) (WebsiteData, error)
}

// DefaultGenerationDelay is how long DelayGenerator pretends to work.
const DefaultGenerationDelay = 3 * time.Second

// DelayGenerator waits for Delay and stamps the record. It performs no other work.
type DelayGenerator struct {
	Delay time.Duration
	// Now defaults to time.Now.
	Now func() time.Time
}

// NewDelayGenerator returns a DelayGenerator with the given delay.
func NewDelayGenerator(delay time.Duration) *DelayGenerator {
	return &DelayGenerator{Delay: delay, Now: time.Now}
}

// Generate implements Generator.
func (g *DelayGenerator) Generate(ctx context.Context, data WebsiteData) (WebsiteData, error) {
	if g.Delay > 0 {
		timer := time.NewTimer(g.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return data, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return data, err
	}

	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	data.GeneratedAt = now().UTC()
	return data, nil
}
