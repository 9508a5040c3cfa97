package adapters

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"storefront/internal/core/apiclient"
	"storefront/internal/core/logger"
	"storefront/internal/features/checkout/domain"

	"go.uber.org/zap"
)

// ErrLoaderClosed is returned by a WidgetLoader after Close.
var ErrLoaderClosed = errors.New("widget loader closed")

// ScriptProbe checks whether the widget script is loaded and usable.
type ScriptProbe interface {
	Probe(ctx context.Context, scriptURL string) error
}

// WidgetConfig is what the hosted widget needs besides the amount.
type WidgetConfig struct {
	PublicKey   string
	RedirectURL string
}

// WidgetLoaderOptions configures a WidgetLoader.
type WidgetLoaderOptions struct {
	ScriptURL    string
	PollInterval time.Duration
	PollAttempts int
	// Fallback is used for fields GET /api/config leaves empty.
	Fallback WidgetConfig
}

// widgetLoad is a load in flight or finished. done is closed exactly once,
// after cfg and err are set.
type widgetLoad struct {
	done chan struct{}
	cfg  WidgetConfig
	err  error
}

// WidgetLoader prepares the hosted widget once per process: it fetches the
// public configuration and polls the script until it is usable. All callers
// share the same load; a failed load is retried by the next Init.
// It is a resettable future rather than a singleflight.Group or sync.Once
// because Config must report the load status without blocking.
type WidgetLoader struct {
	api   *apiclient.Client
	probe ScriptProbe
	opts  WidgetLoaderOptions

	mu     sync.Mutex
	load   *widgetLoad
	ctx    context.Context
	cancel context.CancelFunc
	closed bool
}

// NewWidgetLoader creates a WidgetLoader. Nothing happens until Init.
func NewWidgetLoader(api *apiclient.Client, probe ScriptProbe, opts WidgetLoaderOptions) *WidgetLoader {
	if opts.PollInterval <= 0 {
		opts.PollInterval = 100 * time.Millisecond
	}
	if opts.PollAttempts <= 0 {
		opts.PollAttempts = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &WidgetLoader{api: api, probe: probe, opts: opts, ctx: ctx, cancel: cancel}
}

// Init starts a load unless one is in flight or already succeeded.
func (l *WidgetLoader) Init() error {
	_, err := l.start()
	return err
}

// Ready starts a load if needed and waits for it. Concurrent callers attach
// to the same load.
func (l *WidgetLoader) Ready(ctx context.Context) (WidgetConfig, error) {
	load, err := l.start()
	if err != nil {
		return WidgetConfig{}, err
	}

	select {
	case <-load.done:
		return load.cfg, load.err
	case <-ctx.Done():
		return WidgetConfig{}, ctx.Err()
	}
}

// Config returns the loaded configuration without waiting. It fails with
// domain.ErrWidgetNotReady while the load is missing or in flight, and after
// a failed load. A load that failed because the widget is not configured
// returns that domain.ErrMethodUnavailable error unwrapped.
func (l *WidgetLoader) Config() (WidgetConfig, error) {
	l.mu.Lock()
	load := l.load
	l.mu.Unlock()

	if load == nil {
		return WidgetConfig{}, domain.ErrWidgetNotReady
	}
	select {
	case <-load.done:
		if errors.Is(load.err, domain.ErrMethodUnavailable) {
			return WidgetConfig{}, load.err
		}
		if load.err != nil {
			return WidgetConfig{}, fmt.Errorf("%w: %w", domain.ErrWidgetNotReady, load.err)
		}
		return load.cfg, nil
	default:
		return WidgetConfig{}, domain.ErrWidgetNotReady
	}
}

// Close cancels any load in flight. Later calls fail with ErrLoaderClosed.
func (l *WidgetLoader) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}
	l.closed = true
	l.cancel()
	return nil
}

func (l *WidgetLoader) start() (*widgetLoad, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil, ErrLoaderClosed
	}

	if l.load != nil {
		select {
		case <-l.load.done:
			if l.load.err == nil {
				return l.load, nil
			}
		default:
			return l.load, nil
		}
	}

	load := &widgetLoad{done: make(chan struct{})}
	l.load = load
	go l.run(load)
	return load, nil
}

func (l *WidgetLoader) run(load *widgetLoad) {
	defer close(load.done)

	log := logger.Get().With(zap.String("component", "widget_loader"))

	cfg, err := l.fetchConfig(l.ctx)
	if err != nil {
		load.err = err
		log.Warn("Hosted widget configuration unavailable", zap.Error(err))
		return
	}

	if err := l.poll(l.ctx); err != nil {
		load.err = err
		log.Warn("Hosted widget script not ready", zap.String("script", l.opts.ScriptURL), zap.Error(err))
		return
	}

	load.cfg = cfg
	log.Info("Hosted widget ready")
}

type frontendConfig struct {
	WompiPublicKey string `json:"wompiPublicKey"`
	RedirectURL    string `json:"redirectUrl"`
}

func (l *WidgetLoader) fetchConfig(ctx context.Context) (WidgetConfig, error) {
	cfg := l.opts.Fallback

	var resp frontendConfig
	if err := l.api.Get(ctx, "/api/config", &resp); err != nil {
		logger.Get().Warn("Falling back to local widget configuration", zap.Error(err))
	} else {
		if resp.WompiPublicKey != "" {
			cfg.PublicKey = resp.WompiPublicKey
		}
		if resp.RedirectURL != "" {
			cfg.RedirectURL = resp.RedirectURL
		}
	}

	if cfg.PublicKey == "" {
		return WidgetConfig{}, fmt.Errorf("%w: no public key configured", domain.ErrMethodUnavailable)
	}
	return cfg, nil
}

func (l *WidgetLoader) poll(ctx context.Context) error {
	ticker := time.NewTicker(l.opts.PollInterval)
	defer ticker.Stop()

	var lastErr error
	for attempt := 1; attempt <= l.opts.PollAttempts; attempt++ {
		if lastErr = l.probe.Probe(ctx, l.opts.ScriptURL); lastErr == nil {
			return nil
		}
		if attempt == l.opts.PollAttempts {
			break
		}
		select {
		case <-ticker.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return fmt.Errorf("script not ready after %d checks: %w", l.opts.PollAttempts, lastErr)
}
