// Package connectivity answers "is the network reachable" before the
// catalogue is fetched.
package connectivity

import (
	"context"
	"net"
	"net/url"
	"strings"
	"time"
)

const defaultDialTimeout = 3 * time.Second

// Checker reports whether the network is available.
type Checker interface {
	Connected(ctx context.Context) bool
}

// Static is a Checker with a fixed answer.
type Static bool

// Connected returns the fixed answer.
func (s Static) Connected(context.Context) bool { return bool(s) }

// DialChecker probes connectivity by opening a TCP connection to Address.
type DialChecker struct {
	Address string
	Timeout time.Duration
	dial    func(ctx context.Context, network, address string) (net.Conn, error)
}

// ForURL returns a DialChecker that probes the host and port of rawURL.
// The port defaults to the scheme's well-known port.
func ForURL(rawURL string) (*DialChecker, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return nil, err
	}
	port := u.Port()
	if port == "" {
		port = "80"
		if u.Scheme == "https" {
			port = "443"
		}
	}
	return &DialChecker{Address: net.JoinHostPort(u.Hostname(), port)}, nil
}

// Connected dials Address and closes the connection immediately.
func (d *DialChecker) Connected(ctx context.Context) bool {
	if d == nil || strings.TrimSpace(d.Address) == "" {
		return false
	}
	timeout := d.Timeout
	if timeout <= 0 {
		timeout = defaultDialTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	dial := d.dial
	if dial == nil {
		var dialer net.Dialer
		dial = dialer.DialContext
	}
	conn, err := dial(ctx, "tcp", d.Address)
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}
