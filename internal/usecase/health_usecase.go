package usecase

import (
	"context"
	"time"

	"go-portfolio-backend/pkg/redis"

	"github.com/jackc/pgx/v5/pgxpool"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	db *pgxpool.Pool
}

func NewHealthUsecase(db *pgxpool.Pool) HealthUsecase {
	return &healthUsecase{db: db}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	status := map[string]string{
		"status":   "ok",
		"database": "ok",
		"redis":    "ok",
	}

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := u.db.Ping(pingCtx); err != nil {
		status["status"] = "degraded"
		status["database"] = "unreachable"
	}
	if !redis.IsAvailable() {
		status["redis"] = "unavailable"
	}

	return status
}
