package connectivity

import (
	"context"
	"errors"
	"net"
	"testing"
)

func TestStatic(t *testing.T) {
	if !Static(true).Connected(context.Background()) {
		t.Fatal("Static(true) reported disconnected")
	}
	if Static(false).Connected(context.Background()) {
		t.Fatal("Static(false) reported connected")
	}
}

func TestForURL_DefaultsPortFromScheme(t *testing.T) {
	cases := map[string]string{
		"https://gist.githubusercontent.com/a/b.json": "gist.githubusercontent.com:443",
		"http://example.com/cakes":                    "example.com:80",
		"http://127.0.0.1:8080/cakes":                 "127.0.0.1:8080",
	}
	for raw, want := range cases {
		c, err := ForURL(raw)
		if err != nil {
			t.Fatalf("ForURL(%q) returned error: %v", raw, err)
		}
		if c.Address != want {
			t.Fatalf("ForURL(%q).Address = %q, want %q", raw, c.Address, want)
		}
	}
}

func TestDialChecker_ReachableListener(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	t.Cleanup(func() { _ = ln.Close() })
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			_ = conn.Close()
		}
	}()

	c := &DialChecker{Address: ln.Addr().String()}
	if !c.Connected(context.Background()) {
		t.Fatalf("Connected = false, want true for live listener %s", c.Address)
	}
}

func TestDialChecker_FailedDial(t *testing.T) {
	c := &DialChecker{
		Address: "cakes.invalid:443",
		dial: func(ctx context.Context, network, address string) (net.Conn, error) {
			return nil, errors.New("no route")
		},
	}
	if c.Connected(context.Background()) {
		t.Fatal("Connected = true, want false when dial fails")
	}

	var nilChecker *DialChecker
	if nilChecker.Connected(context.Background()) {
		t.Fatal("nil checker reported connected")
	}
	if (&DialChecker{}).Connected(context.Background()) {
		t.Fatal("checker without address reported connected")
	}
}
