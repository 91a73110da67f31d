// Command healthcheck queries the server's /api/health endpoint from inside
// the container. It exits 0 when the server answers "ok" or "degraded" and 1
// otherwise, logging the reason to stderr.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"
)

const (
	exitHealthy   = 0
	exitUnhealthy = 1

	statusOK       = "ok"
	statusDegraded = "degraded"

	timeout      = 2 * time.Second
	maxBodyBytes = 64 << 10
)

// healthReport is the subset of the /api/health body the check reads.
type healthReport struct {
	Status string `json:"status"`
	Ledger string `json:"ledger"`
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	os.Exit(check(logger))
}

// check maps the health report onto an exit code. A degraded server still
// relays submissions, so it passes with a warning naming the ledger state.
func check(logger *slog.Logger) int {
	addr := normalizeAddr(os.Getenv("SOCIALROUTE_LISTEN_ADDR"))

	report, err := fetchHealth(context.Background(), addr)
	if err != nil {
		logger.Error("health check failed", "addr", addr, "error", err)
		return exitUnhealthy
	}

	switch report.Status {
	case statusOK:
		return exitHealthy
	case statusDegraded:
		logger.Warn("server degraded", "addr", addr, "ledger", report.Ledger)
		return exitHealthy
	default:
		logger.Error("health check failed", "addr", addr, "error", fmt.Errorf("unexpected status %q", report.Status))
		return exitUnhealthy
	}
}

func fetchHealth(ctx context.Context, addr string) (healthReport, error) {
	client := &http.Client{Timeout: timeout}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("http://%s/api/health", addr), nil)
	if err != nil {
		return healthReport{}, fmt.Errorf("creating request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return healthReport{}, fmt.Errorf("requesting health: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return healthReport{}, fmt.Errorf("unexpected HTTP status %d", resp.StatusCode)
	}

	var report healthReport
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&report); err != nil {
		return healthReport{}, fmt.Errorf("decoding health report: %w", err)
	}
	if report.Status == "" {
		return healthReport{}, errors.New("health report has no status")
	}
	return report, nil
}

// normalizeAddr ensures the healthcheck connects to loopback rather than the
// bind-all address. Docker containers bind 0.0.0.0 but the healthcheck runs
// inside the same container, so loopback is reachable and more correct.
func normalizeAddr(raw string) string {
	if raw == "" {
		return "127.0.0.1:8080"
	}

	host, port, err := net.SplitHostPort(raw)
	if err != nil {
		return "127.0.0.1:8080"
	}

	if host == "" || host == "0.0.0.0" {
		host = "127.0.0.1"
	}

	return net.JoinHostPort(host, port)
}
