package adapters

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"storefront/internal/core/logger"
	"storefront/internal/core/proxy"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"go.uber.org/zap"
)

// widgetGlobalCheck is true once the widget script has defined its global.
const widgetGlobalCheck = `() => typeof window.WidgetCheckout !== 'undefined' || typeof window.WompiCheckout !== 'undefined'`

// HTTPScriptProbe treats the script as ready when it can be downloaded.
type HTTPScriptProbe struct {
	client *http.Client
}

// NewHTTPScriptProbe creates a new HTTPScriptProbe.
func NewHTTPScriptProbe(client *http.Client) *HTTPScriptProbe {
	return &HTTPScriptProbe{client: client}
}

// Probe fetches scriptURL and expects a non-empty 2xx body.
func (p *HTTPScriptProbe) Probe(ctx context.Context, scriptURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, scriptURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch widget script: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("widget script returned status %d", resp.StatusCode)
	}

	n, err := io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("failed to read widget script: %w", err)
	}
	if n == 0 {
		return errors.New("widget script is empty")
	}
	return nil
}

// BrowserScriptProbe loads the script in a headless browser and checks that
// the widget global is defined. The browser is started on first use and
// reused until Close.
type BrowserScriptProbe struct {
	proxy   proxy.Settings
	timeout time.Duration
	logger  *zap.Logger

	mu        sync.Mutex
	launcher  *launcher.Launcher
	browser   *rod.Browser
	forwarder *proxy.ForwardingProxy
}

// NewBrowserScriptProbe creates a new BrowserScriptProbe. Authenticated
// proxies are reached through a local forwarder since the browser cannot
// carry proxy credentials itself.
func NewBrowserScriptProbe(settings proxy.Settings, timeout time.Duration) *BrowserScriptProbe {
	return &BrowserScriptProbe{
		proxy:   settings,
		timeout: timeout,
		logger:  logger.Get(),
	}
}

// Probe injects scriptURL into a blank page and evaluates the widget global.
func (p *BrowserScriptProbe) Probe(ctx context.Context, scriptURL string) error {
	browser, err := p.connect()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	page, err := browser.Context(ctx).Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		return fmt.Errorf("failed to open page: %w", err)
	}
	defer page.Close()

	if err := page.AddScriptTag(scriptURL, ""); err != nil {
		return fmt.Errorf("failed to load widget script: %w", err)
	}

	res, err := page.Eval(widgetGlobalCheck)
	if err != nil {
		return fmt.Errorf("failed to evaluate widget global: %w", err)
	}
	if !res.Value.Bool() {
		return errors.New("widget script loaded but its global is not defined")
	}
	return nil
}

// Close stops the browser and the local forwarder.
func (p *BrowserScriptProbe) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var errs []error
	if p.browser != nil {
		errs = append(errs, p.browser.Close())
		p.browser = nil
	}
	if p.launcher != nil {
		p.launcher.Kill()
		p.launcher = nil
	}
	if p.forwarder != nil {
		errs = append(errs, p.forwarder.Stop())
		p.forwarder = nil
	}
	return errors.Join(errs...)
}

func (p *BrowserScriptProbe) connect() (*rod.Browser, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.browser != nil {
		return p.browser, nil
	}

	l := launcher.New().
		Headless(true).
		NoSandbox(true)

	if p.proxy.HasProxy() {
		addr, err := p.proxyAddr()
		if err != nil {
			return nil, err
		}
		l = l.Proxy(addr)
	}

	p.logger.Debug("Launching browser for widget probe",
		zap.Bool("proxy_enabled", p.proxy.HasProxy()),
		zap.String("proxy_host", p.proxy.HostPort()),
	)

	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	p.launcher = l
	p.browser = browser
	return browser, nil
}

func (p *BrowserScriptProbe) proxyAddr() (string, error) {
	if p.proxy.Username == "" || p.proxy.Password == "" {
		return p.proxy.HostPort(), nil
	}

	if p.forwarder == nil {
		fwd, err := proxy.NewForwardingProxy(p.proxy)
		if err != nil {
			return "", err
		}
		p.forwarder = fwd
	}
	addr, err := p.forwarder.Start()
	if err != nil {
		return "", fmt.Errorf("failed to start proxy forwarder: %w", err)
	}
	return addr, nil
}
