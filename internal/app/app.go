package app

import (
	"context"
	"net/http"
	"time"

	"github.com/centavo/centavo/internal/config"
	"github.com/centavo/centavo/internal/database"
	"github.com/centavo/centavo/internal/rest"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// Application wires configuration, database, router, and server lifecycle.
type Application struct {
	cfg    config.Application
	deps   *Dependencies
	router *mux.Router
	srv    *http.Server
}

// NewApplication constructs the full HTTP application, ready to Run().
func NewApplication() (*Application, error) {
	cfg, err := config.Load("./config/application.yaml")
	if err != nil {
		return nil, err
	}

	// DB + migrations
	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(cfg.Database); err != nil {
		return nil, err
	}

	r := mux.NewRouter()

	// Build dependencies (services, handlers...)
	deps := BuildDependencies(db, cfg)

	// Middleware chain
	SetupMiddleware(r, deps, cfg)

	// Routes
	RegisterRoutes(r, deps, cfg)

	// Frontend
	if cfg.Frontend.Enabled {
		frontend := rest.NewFrontendHandler("frontend", "index.html")
		r.PathPrefix("/").Handler(frontend)
	}

	srv := &http.Server{
		Handler:      r,
		Addr:         ":8181",
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Application{cfg: cfg, deps: deps, router: r, srv: srv}, nil
}

// Run starts the fixed-expense materializer loop and the HTTP server, and
// blocks until the server stops.
func (a *Application) Run() error {
	interval := time.Duration(a.cfg.Recurring.IntervalMinutes) * time.Minute
	go a.runMaterializer(interval)

	log.Infof("Starting server on %s", a.srv.Addr)
	return a.srv.ListenAndServe()
}

func (a *Application) runMaterializer(interval time.Duration) {
	if interval <= 0 {
		log.Info("Fixed expense materialization disabled")
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		processed, err := a.deps.Materializer.ProcessDue(context.Background(), a.deps.Clock.Now())
		if err != nil {
			log.Errorf("fixed expense materialization failed: %v", err)
		} else if processed > 0 {
			log.Infof("materialized %d fixed expense(s)", processed)
		}
		<-ticker.C
	}
}
