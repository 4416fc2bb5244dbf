// Package scoring is the HTTP client for the external risk-scoring
// service and the classification of its responses into score outcomes.
package scoring

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/finmetrics/credit-gateway/internal/core/domain"
	"github.com/finmetrics/credit-gateway/internal/infrastructure/resilience"
)

const submitOperation = "score_submit"

type Client struct {
	baseURL    string
	httpClient *http.Client
	executor   *resilience.Executor
}

type Options struct {
	Timeout  time.Duration
	Executor *resilience.Executor
}

func New(baseURL string, options Options) *Client {
	timeout := options.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		executor:   options.Executor,
	}
}

// Submit posts the profile field mapping to the scoring endpoint and
// classifies the response. Any transport-level failure comes back as a
// domain.ErrTemporary-kind error; nothing is partially decoded into an
// outcome.
func (c *Client) Submit(ctx context.Context, profile domain.Profile) (*domain.ScoreOutcome, error) {
	var raw scoreResponse
	call := func(ctx context.Context) error {
		return c.postJSON(ctx, "/score", profile, &raw, submitOperation)
	}

	var err error
	if c.executor != nil {
		err = c.executor.Execute(ctx, submitOperation, call, classifyTransportError)
	} else {
		err = call(ctx)
	}
	if err != nil {
		return nil, domain.WrapError(domain.ErrTemporary, submitOperation, err)
	}
	return classify(raw), nil
}
