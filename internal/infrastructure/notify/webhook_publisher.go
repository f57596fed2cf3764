// Package notify fans change events out to subscriber webhooks so open
// clients learn the roster, teams, or game history moved.
package notify

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"github.com/pitchside/matchday/internal/platform/logging"
	"github.com/pitchside/matchday/internal/platform/resilience"
	"github.com/pitchside/matchday/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

var errWebhookTransient = crerr.New("webhook transient failure")

type WebhookPublisherConfig struct {
	SubscriberURLs []string
	Timeout        time.Duration
	Retries        int
	SigningKey     string
	MaxWorkers     int
	CircuitBreaker resilience.CircuitBreakerConfig
}

// WebhookPublisher POSTs every change event to each configured subscriber
// URL. Deliveries run on a shared worker pool and never block or fail the
// write that produced the event.
type WebhookPublisher struct {
	client         *http.Client
	urls           []string
	retries        int
	signingKey     string
	pool           *ants.Pool
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
}

func NewWebhookPublisher(cfg WebhookPublisherConfig, logger *logging.Logger) (*WebhookPublisher, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if logger == nil {
		logger = logging.Default()
	}

	urls := make([]string, 0, len(cfg.SubscriberURLs))
	for _, raw := range cfg.SubscriberURLs {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		if !strings.HasPrefix(trimmed, "http://") && !strings.HasPrefix(trimmed, "https://") {
			return nil, crerr.Newf("subscriber url %q must use http or https", trimmed)
		}
		urls = append(urls, trimmed)
	}

	workers := cfg.MaxWorkers
	if workers < 1 {
		workers = 4
	}
	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("create webhook worker pool: %w", err)
	}

	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &WebhookPublisher{
		client:         &http.Client{Timeout: timeout},
		urls:           urls,
		retries:        cfg.Retries,
		signingKey:     strings.TrimSpace(cfg.SigningKey),
		pool:           pool,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}, nil
}

// Publish delivers the event to every subscriber. Failures are logged and
// dropped; the caller's write already committed.
func (p *WebhookPublisher) Publish(ctx context.Context, event usecase.ChangeEvent) {
	if len(p.urls) == 0 {
		return
	}

	body, err := sonic.Marshal(event)
	if err != nil {
		p.logger.ErrorContext(ctx, "marshal change event", "kind", string(event.Kind), "error", err)
		return
	}

	if p.circuitEnabled {
		if err := p.breaker.Allow(); err != nil {
			p.logger.WarnContext(ctx, "webhook circuit breaker rejected publish",
				"kind", string(event.Kind),
				"state", p.breaker.State(),
			)
			return
		}
	}

	for _, url := range p.urls {
		url := url
		if err := p.pool.Submit(func() {
			p.deliver(context.WithoutCancel(ctx), url, event, body)
		}); err != nil {
			p.logger.WarnContext(ctx, "webhook pool rejected delivery", "url", url, "error", err)
		}
	}
}

// Close releases the worker pool. Pending deliveries are abandoned.
func (p *WebhookPublisher) Close() {
	p.pool.Release()
}

func (p *WebhookPublisher) deliver(ctx context.Context, url string, event usecase.ChangeEvent, body []byte) {
	attempts := p.retries + 1
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		lastErr = p.post(ctx, url, body)
		p.recordCircuitResult(lastErr)
		if lastErr == nil {
			p.logger.DebugContext(ctx, "change event delivered",
				"kind", string(event.Kind),
				"url", url,
				"attempt", attempt+1,
			)
			return
		}
		if !stderrors.Is(lastErr, errWebhookTransient) {
			break
		}
	}

	p.logger.WarnContext(ctx, "change event delivery failed",
		"kind", string(event.Kind),
		"url", url,
		"error", lastErr,
	)
}

func (p *WebhookPublisher) post(ctx context.Context, url string, body []byte) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	_, _ = buf.Write(body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(buf.B))
	if err != nil {
		return crerr.Wrap(err, "create webhook request")
	}
	req.Header.Set("Content-Type", "application/json")
	if p.signingKey != "" {
		req.Header.Set("x-notify-key", p.signingKey)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: post webhook url=%s: %v", errWebhookTransient, url, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		_ = resp.Body.Close()
	}()

	if resp.StatusCode/100 != 2 {
		if isRetryableStatus(resp.StatusCode) {
			return fmt.Errorf("%w: post webhook url=%s status=%d", errWebhookTransient, url, resp.StatusCode)
		}
		return fmt.Errorf("post webhook url=%s status=%d", url, resp.StatusCode)
	}

	return nil
}

func (p *WebhookPublisher) recordCircuitResult(err error) {
	if !p.circuitEnabled || p.breaker == nil {
		return
	}
	if err == nil {
		p.breaker.RecordSuccess()
		return
	}
	if stderrors.Is(err, errWebhookTransient) {
		p.breaker.RecordFailure()
		return
	}
	p.breaker.RecordSuccess()
}

func isRetryableStatus(statusCode int) bool {
	return statusCode == http.StatusRequestTimeout ||
		statusCode == http.StatusTooManyRequests ||
		statusCode >= http.StatusInternalServerError
}
