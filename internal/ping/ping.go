package ping

import (
	"context"
	"errors"
	"net"
	"os/exec"
	"runtime"
	"strconv"
	"time"

	"pingsweep/internal/models"
)

// startupGrace bounds ping process startup beyond the probe timeout.
const startupGrace = 500 * time.Millisecond

// Resolver looks up host addresses. It matches the net.Resolver
// method set so a stub can stand in during tests.
type Resolver interface {
	LookupHost(ctx context.Context, host string) ([]string, error)
}

// Prober classifies host reachability. Hostnames are resolved first,
// then the platform ping binary performs the liveness check. The
// three-way status comes from structured outcomes (resolver errors
// and process exit status), never from parsing ping output.
type Prober struct {
	timeout     time.Duration
	packetCount int
	resolver    Resolver
}

// New creates a Prober using the system resolver.
func New(timeout time.Duration, packetCount int) *Prober {
	return NewWithResolver(timeout, packetCount, net.DefaultResolver)
}

// NewWithResolver creates a Prober with a custom resolver.
func NewWithResolver(timeout time.Duration, packetCount int, resolver Resolver) *Prober {
	if timeout <= 0 {
		timeout = 1 * time.Second
	}
	if packetCount <= 0 {
		packetCount = 1
	}
	return &Prober{
		timeout:     timeout,
		packetCount: packetCount,
		resolver:    resolver,
	}
}

// Probe performs one liveness check and classifies the outcome.
// Every outcome maps to exactly one status; Probe never returns an
// error and never blocks past the timeout plus a fixed grace period.
func (p *Prober) Probe(ctx context.Context, address string) models.ProbeResult {
	result := models.ProbeResult{
		Address:  address,
		Status:   models.StatusOffline,
		ProbedAt: time.Now(),
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout+startupGrace)
	defer cancel()

	target := address
	if net.ParseIP(address) == nil {
		addrs, err := p.resolver.LookupHost(ctx, address)
		if err != nil {
			var dnsErr *net.DNSError
			if errors.As(err, &dnsErr) && dnsErr.IsNotFound {
				result.Status = models.StatusHostNotFound
			}
			return result
		}
		if len(addrs) == 0 {
			result.Status = models.StatusHostNotFound
			return result
		}
		target = addrs[0]
	}

	if p.pingOnce(ctx, target) {
		result.Status = models.StatusOnline
	}
	return result
}

// pingOnce reports whether the target replied to the platform ping
// binary before the timeout.
func (p *Prober) pingOnce(ctx context.Context, target string) bool {
	count := strconv.Itoa(p.packetCount)

	// Platform-specific ping command
	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.CommandContext(ctx, "ping", "-n", count, "-w", strconv.Itoa(int(p.timeout.Milliseconds())), target)
	} else {
		seconds := int(p.timeout.Seconds())
		if seconds < 1 {
			seconds = 1
		}
		cmd = exec.CommandContext(ctx, "ping", "-c", count, "-W", strconv.Itoa(seconds), target)
	}

	return cmd.Run() == nil
}
