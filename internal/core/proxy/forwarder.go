package proxy

import (
	"bufio"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"storefront/internal/core/logger"

	"github.com/elazarl/goproxy"
	"go.uber.org/zap"
)

// ForwardingProxy is a local unauthenticated proxy that tunnels every connection
// through an authenticated upstream. Headless Chromium cannot pass proxy
// credentials on the command line, so the browser probe points at this instead.
type ForwardingProxy struct {
	upstream Settings
	server   *http.Server
	listener net.Listener
	logger   *zap.Logger
	mu       sync.Mutex
	running  bool
}

// NewForwardingProxy creates a forwarder for the given upstream.
func NewForwardingProxy(upstream Settings) (*ForwardingProxy, error) {
	if !upstream.HasProxy() {
		return nil, errors.New("upstream proxy is not configured")
	}
	return &ForwardingProxy{
		upstream: upstream,
		logger:   logger.Get().Named("proxy"),
	}, nil
}

// Start listens on a random loopback port and returns the address to hand to the browser.
// Calling Start on a running forwarder returns the existing address.
func (fp *ForwardingProxy) Start() (string, error) {
	fp.mu.Lock()
	defer fp.mu.Unlock()

	if fp.running {
		return fp.localAddr(), nil
	}

	srv := goproxy.NewProxyHttpServer()
	srv.ConnectDial = fp.dialUpstream
	srv.Tr = &http.Transport{Dial: fp.dialUpstream}

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return "", fmt.Errorf("failed to find available port: %w", err)
	}
	fp.listener = listener
	fp.server = &http.Server{Handler: srv}

	go func() {
		if err := fp.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fp.logger.Error("Local proxy server error", zap.Error(err))
		}
	}()

	fp.running = true
	fp.logger.Debug("Local proxy forwarder started",
		zap.String("local_addr", fp.localAddr()),
		zap.String("upstream", fp.upstream.HostPort()),
	)
	return fp.localAddr(), nil
}

// dialUpstream opens a CONNECT tunnel to addr through the upstream proxy.
func (fp *ForwardingProxy) dialUpstream(network, addr string) (net.Conn, error) {
	upstreamHost := fmt.Sprintf("%s:%d", fp.upstream.Hostname, fp.upstream.Port)

	conn, err := net.DialTimeout("tcp", upstreamHost, 30*time.Second)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to upstream proxy %s: %w", upstreamHost, err)
	}

	connectReq := fmt.Sprintf("CONNECT %s HTTP/1.1\r\nHost: %s\r\n", addr, addr)
	if fp.upstream.Username != "" {
		credentials := base64.StdEncoding.EncodeToString([]byte(fp.upstream.Username + ":" + fp.upstream.Password))
		connectReq += "Proxy-Authorization: Basic " + credentials + "\r\n"
	}
	connectReq += "\r\n"

	if _, err := conn.Write([]byte(connectReq)); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to send CONNECT request: %w", err)
	}

	resp, err := http.ReadResponse(bufio.NewReader(conn), nil)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to read CONNECT response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		conn.Close()
		return nil, fmt.Errorf("upstream proxy CONNECT failed with status: %d", resp.StatusCode)
	}

	return conn, nil
}

// Stop shuts the forwarder down. Stopping a stopped forwarder is a no-op.
func (fp *ForwardingProxy) Stop() error {
	fp.mu.Lock()
	defer fp.mu.Unlock()

	if !fp.running {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	fp.running = false
	if err := fp.server.Shutdown(ctx); err != nil {
		fp.listener.Close()
		return err
	}
	return nil
}

// IsRunning returns whether the forwarder is accepting connections.
func (fp *ForwardingProxy) IsRunning() bool {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	return fp.running
}

func (fp *ForwardingProxy) localAddr() string {
	return fmt.Sprintf("http://%s", fp.listener.Addr().String())
}
