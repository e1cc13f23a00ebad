package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"github.com/clambin/go-common/http/metrics"
	"github.com/clambin/go-common/http/roundtripper"
	"github.com/clambin/workbell/internal/alarm"
	"github.com/prometheus/client_golang/prometheus"
	"io"
	"net/http"
	"strconv"
	"time"
)

// WebhookSink POSTs every alarm as a JSON message to a URL.
type WebhookSink struct {
	URL    string
	Client *http.Client
	Now    func() time.Time
}

var _ Notifier = &WebhookSink{}

type webhookMessage struct {
	Kind  alarm.Kind `json:"kind"`
	Label string     `json:"label"`
	Time  time.Time  `json:"time"`
}

// NewWebhookSink returns a WebhookSink whose HTTP calls are recorded in requestMetrics. If requestMetrics is nil,
// calls are not instrumented.
func NewWebhookSink(url string, requestMetrics metrics.RequestMetrics) *WebhookSink {
	var transport http.RoundTripper = http.DefaultTransport
	if requestMetrics != nil {
		transport = instrumentedRoundTripper(transport, requestMetrics)
	}
	return &WebhookSink{
		URL:    url,
		Client: &http.Client{Transport: transport, Timeout: 10 * time.Second},
		Now:    time.Now,
	}
}

func (w *WebhookSink) Notify(ctx context.Context, kind alarm.Kind) error {
	body, err := json.Marshal(webhookMessage{Kind: kind, Label: kind.Label(), Time: w.Now()})
	if err != nil {
		return fmt.Errorf("webhook: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("webhook: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.Client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook: %s", resp.Status)
	}
	return nil
}

func instrumentedRoundTripper(rt http.RoundTripper, requestMetrics metrics.RequestMetrics) http.RoundTripper {
	return roundtripper.New(
		roundtripper.WithRequestMetrics(requestMetrics),
		roundtripper.WithRoundTripper(rt),
	)
}

// NewWebhookMetrics returns the request metrics for webhook calls.
func NewWebhookMetrics(namespace, subsystem string, labels prometheus.Labels) metrics.RequestMetrics {
	return metrics.NewRequestMetrics(metrics.Options{
		Namespace:   namespace,
		Subsystem:   subsystem,
		ConstLabels: labels,
		LabelValues: func(request *http.Request, code int) (string, string, string) {
			path := request.URL.Path
			if path == "" {
				path = "/"
			}
			return request.Method, path, strconv.Itoa(code)
		},
	})
}
