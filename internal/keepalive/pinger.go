// Package keepalive periodically requests the service's own health endpoint
// so that hosts which idle unused instances keep this one awake.
package keepalive

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"content-site-api/internal/logger"
	"content-site-api/internal/metrics"
)

const requestTimeout = 10 * time.Second

// Pinger GETs a URL on a fixed interval until stopped.
type Pinger struct {
	url      string
	interval time.Duration
	client   *http.Client

	stopChan chan struct{}
	wg       sync.WaitGroup
	once     sync.Once
}

// NewPinger creates a Pinger. A nil client uses one with a 10s timeout.
func NewPinger(url string, interval time.Duration, client *http.Client) *Pinger {
	if client == nil {
		client = &http.Client{Timeout: requestTimeout}
	}
	return &Pinger{
		url:      url,
		interval: interval,
		client:   client,
		stopChan: make(chan struct{}),
	}
}

// Start begins pinging every interval. The first ping happens one interval
// after Start, not immediately.
func (p *Pinger) Start() {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		logger.Info("Keep-alive pinger started", "url", p.url, "interval", p.interval.String())

		for {
			select {
			case <-ticker.C:
				if err := p.ping(); err != nil {
					logger.Warn("Keep-alive ping failed", "url", p.url, "error", err)
				}
			case <-p.stopChan:
				return
			}
		}
	}()
}

// Stop ends the ping loop and waits for an in-flight ping to finish.
// It is safe to call more than once.
func (p *Pinger) Stop() {
	p.once.Do(func() { close(p.stopChan) })
	p.wg.Wait()
}

func (p *Pinger) ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	// Abort the request if Stop is called mid-flight.
	go func() {
		select {
		case <-p.stopChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	err := p.do(ctx)
	metrics.KeepAlivePingsTotal.WithLabelValues(metrics.Result(err)).Inc()
	if err == nil {
		logger.Debug("Keep-alive ping succeeded", "url", p.url)
	}
	return err
}

func (p *Pinger) do(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}
