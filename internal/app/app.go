package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/picross-server/internal/config"
	"github.com/vancomm/picross-server/internal/database"
	"github.com/vancomm/picross-server/internal/middleware"
)

type App struct {
	log        *logrus.Logger
	cfg        config.Config
	router     *http.ServeMux
	db         *pgxpool.Pool
	cookies    *config.Cookies
	ws         *config.WebSocket
	migrations fs.FS
}

func New(log *logrus.Logger, cfg config.Config, migrations fs.FS) *App {
	return &App{
		log:        log,
		cfg:        cfg,
		router:     http.NewServeMux(),
		migrations: migrations,
	}
}

func (a *App) Start(ctx context.Context) error {
	db, err := database.ConnectAndMigrate(ctx, a.cfg.Postgres, a.migrations)
	if err != nil {
		return fmt.Errorf("unable to connect to db: %w", err)
	}
	a.db = db
	defer db.Close()

	jwt, err := config.NewJWT(a.cfg.Jwt)
	if err != nil {
		return err
	}

	a.cookies = config.NewCookies(a.cfg, jwt)
	a.ws = config.NewWebSocket()

	a.loadRoutes(jwt)

	server := &http.Server{
		Addr: a.cfg.Addr,
		Handler: middleware.Wrap(
			a.router,
			middleware.Logging(a.log),
			middleware.Auth(a.log, a.cookies),
			middleware.Cors(),
		),
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	a.log.Infof("ready to serve @ %s", a.cfg.Addr)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-gCtx.Done()
		return server.Shutdown(context.Background())
	})

	return g.Wait()
}
