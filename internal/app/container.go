// Package app wires the Helios services together in a samber/do container
// and runs the HTTP server.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samber/do/v2"

	"github.com/nfrund/helios/internal/assets"
	"github.com/nfrund/helios/internal/config"
	"github.com/nfrund/helios/internal/content"
	"github.com/nfrund/helios/internal/email"
	"github.com/nfrund/helios/internal/forms"
	"github.com/nfrund/helios/internal/handlers"
	"github.com/nfrund/helios/internal/pubsub"
	"github.com/nfrund/helios/internal/rendering"
	"github.com/nfrund/helios/internal/savings"
	"github.com/nfrund/helios/internal/server"
	"github.com/nfrund/helios/internal/toast"
	"github.com/nfrund/helios/web"
)

// App is a fully wired Helios instance.
type App struct {
	injector *do.RootScope
	cfg      config.Provider

	Server *server.Server
	Assets *assets.Assets
	Toasts *toast.Manager
}

// New builds every service for cfg. Call Shutdown when done.
func New(cfg config.Provider) (*App, error) {
	i := do.New()
	Register(i, cfg)

	srv, err := do.Invoke[*server.Server](i)
	if err != nil {
		i.Shutdown()
		return nil, fmt.Errorf("app: build server: %w", err)
	}

	return &App{
		injector: i,
		cfg:      cfg,
		Server:   srv,
		Assets:   do.MustInvoke[*assets.Assets](i),
		Toasts:   do.MustInvoke[*toast.Manager](i),
	}, nil
}

// Register adds every provider to the injector.
func Register(i do.Injector, cfg config.Provider) {
	do.ProvideValue(i, cfg)

	do.Provide(i, func(i do.Injector) (*pubsub.Tracing, error) {
		return pubsub.SetupOTel(context.Background(), pubsub.LoadTracingConfigFromEnv())
	})
	do.Provide(i, func(i do.Injector) (*pubsub.WatermillBridge, error) {
		tracing, err := do.Invoke[*pubsub.Tracing](i)
		if err != nil {
			return nil, err
		}
		return pubsub.NewWatermillBridge(pubsub.WithTracer(tracing.Tracer())), nil
	})
	do.Provide(i, func(i do.Injector) (*toast.Manager, error) {
		bus, err := do.Invoke[*pubsub.WatermillBridge](i)
		if err != nil {
			return nil, err
		}
		return toast.NewManager(bus, toast.WithTTL(cfg.GetToastTTL())), nil
	})
	do.Provide(i, func(i do.Injector) (*assets.Assets, error) {
		return assets.New(web.Static(), cfg.GetStaticDir())
	})
	do.Provide(i, func(i do.Injector) (*content.Site, error) {
		return content.Load(web.Content(), web.ContentFile)
	})
	do.Provide(i, func(i do.Injector) (*savings.Formatter, error) {
		return savings.NewFormatter(cfg.GetLocale()), nil
	})
	do.Provide(i, func(i do.Injector) (*rendering.UniversalRenderer, error) {
		return rendering.NewUniversalRenderer(), nil
	})
	do.Provide(i, func(i do.Injector) (*forms.CustomValidator, error) {
		return forms.NewValidator(), nil
	})

	do.Provide(i, func(i do.Injector) (email.Sender, error) {
		return email.NewLogSender(cfg.GetEmailSender(), slog.Default()), nil
	})

	do.Provide(i, providePages)
	do.Provide(i, provideHandlers)
	do.Provide(i, func(i do.Injector) (*server.Server, error) {
		deps, err := do.Invoke[server.Dependencies](i)
		if err != nil {
			return nil, err
		}
		return server.New(deps), nil
	})
}

func providePages(i do.Injector) (*handlers.Pages, error) {
	mgr, err := do.Invoke[*toast.Manager](i)
	if err != nil {
		return nil, err
	}
	a, err := do.Invoke[*assets.Assets](i)
	if err != nil {
		return nil, err
	}
	return handlers.NewPages(mgr, a), nil
}

func provideHandlers(i do.Injector) (server.Dependencies, error) {
	cfg, err := do.Invoke[config.Provider](i)
	if err != nil {
		return server.Dependencies{}, err
	}
	pages, err := do.Invoke[*handlers.Pages](i)
	if err != nil {
		return server.Dependencies{}, err
	}
	site, err := do.Invoke[*content.Site](i)
	if err != nil {
		return server.Dependencies{}, err
	}

	bus := do.MustInvoke[*pubsub.WatermillBridge](i)
	renderer := do.MustInvoke[*rendering.UniversalRenderer](i)
	validator := do.MustInvoke[*forms.CustomValidator](i)

	return server.Dependencies{
		Config:    cfg,
		Renderer:  renderer,
		Validator: validator,
		Assets:    do.MustInvoke[*assets.Assets](i),
		Home:      handlers.NewHomeHandler(pages, site, do.MustInvoke[*savings.Formatter](i)),
		Auth:      handlers.NewAuthHandler(pages, validator, do.MustInvoke[email.Sender](i), cfg.GetAppBaseURL(), cfg.GetSubmitDelay()),
		Dashboard: handlers.NewDashboardHandler(pages),
		Toasts:    handlers.NewToastHandler(pages.Toasts, bus, renderer),
	}, nil
}

// Run serves HTTP until ctx is cancelled. In development with an on-disk
// static directory, asset fingerprints follow file changes.
func (a *App) Run(ctx context.Context) error {
	if a.cfg.IsDevelopment() {
		if err := a.Assets.Watch(ctx); err != nil {
			slog.Warn("Asset watcher unavailable", "error", err)
		}
	}
	return a.Server.Start(ctx, a.cfg.GetServerAddr())
}

// Shutdown stops every service in reverse dependency order.
func (a *App) Shutdown() {
	a.injector.Shutdown()
}
