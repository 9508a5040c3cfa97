package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"storefront/internal/core/apiclient"
	"storefront/internal/core/cache"
	"storefront/internal/core/config"
	"storefront/internal/core/httpclient"
	"storefront/internal/core/logger"
	"storefront/internal/core/proxy"
	"storefront/internal/core/server"
	cartadapter "storefront/internal/features/cart/adapters"
	cartdomain "storefront/internal/features/cart/domain"
	carthandler "storefront/internal/features/cart/handler"
	cartservice "storefront/internal/features/cart/service"
	catalogadapter "storefront/internal/features/catalog/adapters"
	cataloghandler "storefront/internal/features/catalog/handler"
	catalogservice "storefront/internal/features/catalog/service"
	checkoutadapter "storefront/internal/features/checkout/adapters"
	checkouthandler "storefront/internal/features/checkout/handler"
	"storefront/internal/features/checkout/ports"
	checkoutservice "storefront/internal/features/checkout/service"
	listadapter "storefront/internal/features/lists/adapters"
	listhandler "storefront/internal/features/lists/handler"
	listservice "storefront/internal/features/lists/service"
	reviewadapter "storefront/internal/features/reviews/adapters"
	reviewhandler "storefront/internal/features/reviews/handler"
	reviewservice "storefront/internal/features/reviews/service"

	"go.uber.org/zap"
)

const (
	sessionIdleTimeout = 2 * time.Hour
	evictionInterval   = 10 * time.Minute
)

// @title Storefront API
// @version 1.0
// @description Backend-for-frontend of the hardware storefront: catalog, cart pricing, lists, reviews and checkout.
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	store, err := cache.NewRedisAdapter(cfg.Storage.RedisURL, cache.WithKeyPrefix(cfg.Storage.RedisKeyPrefix))
	if err != nil {
		l.Fatal("Failed to configure Redis", zap.Error(err))
	}
	defer store.Close()

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	if err := store.Ping(pingCtx); err != nil {
		l.Warn("Redis not reachable at startup, sessions will not persist until it is", zap.Error(err))
	}
	cancelPing()

	proxySettings := proxy.FromConfig(cfg.Proxy)
	var backendHTTP *http.Client
	if proxySettings.HasProxy() {
		backendHTTP = httpclient.NewProxiedClient(cfg.Backend.Timeout, proxySettings)
		l.Info("Using outbound proxy", zap.String("proxy", proxySettings.HostPort()))
	} else {
		backendHTTP = httpclient.NewClient(cfg.Backend.Timeout)
	}
	backend := apiclient.New("backend", cfg.Backend.URL, cfg.Backend.Timeout, apiclient.WithHTTPClient(backendHTTP))

	// Catalog
	products := catalogadapter.NewCachedProductProvider(
		catalogadapter.NewBackendProductProvider(backend), store, cfg.Storage.CatalogCacheTTL)
	catalogSvc := catalogservice.NewCatalogService(products)

	// Cart
	rules := cartdomain.NewPricingRules(cfg.Pricing.ShippingFee, cfg.Pricing.FreeShippingThreshold, cfg.Pricing.TaxRate)
	cartSvc := cartservice.NewCartService(
		cartadapter.NewRedisCartRepository(store, cfg.Storage.SessionTTL), catalogSvc, rules)

	// Favorites and compare
	listSvc := listservice.NewListService(
		listadapter.NewRedisListRepository(store, cfg.Storage.SessionTTL), catalogSvc)

	// Reviews
	reviewSvc := reviewservice.NewReviewService(reviewadapter.NewBackendReviewProvider(backend))

	// Payment strategies
	converter := checkoutadapter.NewRateConverter(
		checkoutadapter.NewBackendRateProvider(backend), cfg.Pricing.Currency, cfg.Pricing.FallbackExchangeRate)

	strategies := []ports.PaymentStrategy{checkoutadapter.NewCashOnDelivery(backend)}

	var probe checkoutadapter.ScriptProbe
	var browserProbe *checkoutadapter.BrowserScriptProbe
	if cfg.Wompi.Probe == "browser" {
		browserProbe = checkoutadapter.NewBrowserScriptProbe(proxySettings, cfg.Backend.Timeout)
		probe = browserProbe
	} else {
		probe = checkoutadapter.NewHTTPScriptProbe(backendHTTP)
	}
	loader := checkoutadapter.NewWidgetLoader(backend, probe, checkoutadapter.WidgetLoaderOptions{
		ScriptURL:    cfg.Wompi.ScriptURL,
		PollInterval: cfg.Wompi.PollInterval,
		PollAttempts: cfg.Wompi.PollAttempts,
		Fallback: checkoutadapter.WidgetConfig{
			PublicKey:   cfg.Wompi.PublicKey,
			RedirectURL: cfg.Wompi.RedirectURL,
		},
	})
	if err := loader.Init(); err != nil {
		l.Warn("Payment widget loader not started", zap.Error(err))
	}
	strategies = append(strategies, checkoutadapter.NewHostedWidget(loader, backend, converter, cfg.Wompi.Currency))

	if cfg.PayPal.PayPalEnabled() {
		paypal := apiclient.New("paypal", cfg.PayPal.APIURL, cfg.Backend.Timeout, apiclient.WithHTTPClient(backendHTTP))
		strategies = append(strategies, checkoutadapter.NewWallet(paypal, converter, checkoutadapter.WalletOptions{
			ClientID:     cfg.PayPal.ClientID,
			ClientSecret: cfg.PayPal.ClientSecret,
			Currency:     cfg.PayPal.Currency,
		}))
	} else {
		l.Info("Wallet payments disabled, PAYPAL_CLIENT_ID or PAYPAL_CLIENT_SECRET missing")
	}

	checkoutSvc := checkoutservice.NewCheckoutService(cartSvc, strategies...)

	srv := server.New(cfg, store)

	// Register Routes
	cataloghandler.NewCatalogHandler(catalogSvc).Register(srv.App)
	carthandler.NewCartHandler(cartSvc).Register(srv.App)
	listhandler.NewListHandler(listSvc).Register(srv.App)
	reviewhandler.NewReviewHandler(reviewSvc).Register(srv.App)
	checkouthandler.NewCheckoutHandler(checkoutSvc).Register(srv.App)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go evictIdleSessions(ctx, cartSvc, checkoutSvc)

	go func() {
		if err := srv.Run(); err != nil {
			l.Error("Server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	l.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		l.Error("Server shutdown failed", zap.Error(err))
	}
	if err := loader.Close(); err != nil {
		l.Warn("Widget loader close failed", zap.Error(err))
	}
	if browserProbe != nil {
		if err := browserProbe.Close(); err != nil {
			l.Warn("Browser probe close failed", zap.Error(err))
		}
	}
}

type idleEvicter interface {
	EvictIdle(maxIdle time.Duration) int
}

func evictIdleSessions(ctx context.Context, evicters ...idleEvicter) {
	ticker := time.NewTicker(evictionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n := 0
			for _, e := range evicters {
				n += e.EvictIdle(sessionIdleTimeout)
			}
			if n > 0 {
				logger.Get().Debug("Evicted idle sessions", zap.Int("count", n))
			}
		}
	}
}
