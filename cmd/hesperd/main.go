// Command hesperd serves declared forms over HTTP, resolving identifier
// fields against Postgres and, when enabled, MongoDB.
package main

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/ruFelix/hesper/pkg/config"
	"github.com/ruFelix/hesper/pkg/dao"
	"github.com/ruFelix/hesper/pkg/dao/mongostore"
	"github.com/ruFelix/hesper/pkg/dao/pgstore"
	"github.com/ruFelix/hesper/pkg/dao/redisstore"
	"github.com/ruFelix/hesper/pkg/form"
	"github.com/ruFelix/hesper/pkg/httpserver"
	"github.com/ruFelix/hesper/pkg/logger"
)

//go:embed migrations/*.sql
var migrations embed.FS

func main() {
	var cfg Config
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithEnvironment(cfg.AppEnv, cfg.ServiceName),
		logger.WithContextValue("request_id", middleware.RequestIDKey),
	)

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("hesperd stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg Config, log *slog.Logger) error {
	pool, err := pgstore.Connect(ctx, cfg.Postgres)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pgstore.Migrate(ctx, pool, migrations, "migrations", cfg.Postgres, log); err != nil {
		return err
	}

	checks := map[string]httpserver.Check{"postgres": pgstore.Healthcheck(pool)}
	reg := dao.NewRegistry()

	users, err := newUsers(pool)
	if err != nil {
		return err
	}
	var userDAO dao.DAO = users
	if cfg.RedisEnabled {
		client, err := redisstore.Connect(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer client.Close()

		checks["redis"] = redisstore.Healthcheck(client)
		userDAO = redisstore.NewCache[*User](client, userDAO, "User",
			redisstore.WithTTL(cfg.CacheTTL),
			redisstore.WithLogger(log),
		)
	}
	if _, err := reg.Register("User", (*User)(nil), cached(userDAO, cfg.CacheSize)); err != nil {
		return err
	}

	if cfg.MongoEnabled {
		client, err := mongostore.Connect(ctx, cfg.Mongo)
		if err != nil {
			return err
		}
		defer func() {
			if err := client.Disconnect(context.WithoutCancel(ctx)); err != nil {
				log.Error("failed to disconnect mongodb", logger.Error(err))
			}
		}()

		checks["mongodb"] = mongostore.Healthcheck(client)
		teams := newTeams(client.Database(cfg.Mongo.Database).Collection("teams"))
		if _, err := reg.Register("Team", (*Team)(nil), cached(teams, cfg.CacheSize)); err != nil {
			return err
		}
	}

	forms, err := loadForms(cfg.FormsDir, reg)
	if err != nil {
		return err
	}
	log.Info("forms loaded", slog.Int("count", len(forms)), slog.String("dir", cfg.FormsDir))

	h := NewHandler(forms, reg, log)
	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, h.Routes(httpserver.HealthCheckHandler(log, checks)))
}

// loadForms reads the declarations in dir and builds each once so a bad
// class or method fails at startup instead of on the first request.
func loadForms(dir string, reg *dao.Registry) (map[string]form.Declaration, error) {
	forms, err := form.LoadDir(os.DirFS(dir))
	if err != nil {
		return nil, err
	}

	var errs []error
	for name, decl := range forms {
		if _, err := decl.Build(reg); err != nil {
			errs = append(errs, fmt.Errorf("form %q: %w", name, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return forms, nil
}

func cached(d dao.DAO, size int) dao.DAO {
	if size <= 0 {
		return d
	}
	return dao.NewCached(d, size)
}
