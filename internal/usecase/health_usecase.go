package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"golang.org/x/sync/errgroup"
)

// PingFunc checks one backing service.
type PingFunc func(ctx context.Context) error

type healthUsecase struct {
	database PingFunc
	cache    PingFunc
	timeout  time.Duration
}

// NewHealthUsecase builds a checker; a nil cache is reported as "disabled".
// Components report "ok" or "down"; ping errors only travel in the returned error.
func NewHealthUsecase(database, cache PingFunc) domain.HealthUsecase {
	return &healthUsecase{database: database, cache: cache, timeout: 2 * time.Second}
}

func (u *healthUsecase) Check(ctx context.Context) (map[string]string, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	var mu sync.Mutex
	status := map[string]string{"status": "ok", "database": "ok", "redis": "disabled"}

	check := func(name string, ping PingFunc) func() error {
		return func() error {
			err := ping(ctx)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				status[name] = "down"
				return fmt.Errorf("%s: %w", name, err)
			}
			status[name] = "ok"
			return nil
		}
	}

	var g errgroup.Group
	g.Go(check("database", u.database))
	if u.cache != nil {
		g.Go(check("redis", u.cache))
	}

	if err := g.Wait(); err != nil {
		status["status"] = "degraded"
		return status, apperror.ServiceUnavailable("Dependency check failed", err)
	}
	return status, nil
}
