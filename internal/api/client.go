package api

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/jdelacroix/inkwell/internal/logger"
	inkwellerrors "github.com/jdelacroix/inkwell/pkg/errors"
)

// Endpoint names a logical remote endpoint.
type Endpoint string

const (
	EndpointNewsletter Endpoint = "newsletter"
	EndpointContact    Endpoint = "contact"
	EndpointAnalytics  Endpoint = "analytics"
)

// Result is the response of a submission.
type Result struct {
	Success bool
	Payload map[string]string
}

// Options configures a Client.
type Options struct {
	// Delay is how long a submission takes before resolving.
	Delay time.Duration
	// SuccessRate is the probability in [0,1] that a submission succeeds.
	SuccessRate float64
	// Rand is the random source used to decide the outcome. Defaults to a
	// time-seeded source; tests inject a fixed one.
	Rand   *rand.Rand
	Logger *logger.Logger
}

// Client simulates the remote boundary of the blog. A real deployment would
// POST JSON to each endpoint; here the outcome is decided locally after a
// fixed delay.
type Client struct {
	delay       time.Duration
	successRate float64
	log         *logger.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// NewClient creates a Client from Options.
func NewClient(opts Options) *Client {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Client{
		delay:       opts.Delay,
		successRate: opts.SuccessRate,
		log:         opts.Logger,
		rng:         rng,
	}
}

// Submit sends a payload to an endpoint. It blocks for the configured delay
// (or until the context is cancelled) and then resolves to either a
// successful Result or a SubmitError.
func (c *Client) Submit(ctx context.Context, endpoint Endpoint, payload map[string]string) (*Result, error) {
	c.log.WithFields(map[string]any{"endpoint": string(endpoint)}).Debug("submitting payload")

	if c.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, inkwellerrors.NewSubmitError(string(endpoint), ctx.Err())
		case <-time.After(c.delay):
		}
	}

	c.mu.Lock()
	roll := c.rng.Float64()
	c.mu.Unlock()

	if roll >= c.successRate {
		err := inkwellerrors.NewSubmitError(string(endpoint), errors.New("service unavailable"))
		c.log.Error(err, "submission failed")
		return nil, err
	}

	c.log.WithFields(map[string]any{"endpoint": string(endpoint)}).Debug("submission accepted")
	return &Result{Success: true, Payload: payload}, nil
}
