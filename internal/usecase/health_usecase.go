package usecase

import "context"

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

// PingFunc reports whether a dependency is reachable
type PingFunc func(ctx context.Context) error

type healthUsecase struct {
	redisPing PingFunc
}

// NewHealthUsecase creates a health check. redisPing may be nil when Redis is not configured.
func NewHealthUsecase(redisPing PingFunc) HealthUsecase {
	return &healthUsecase{redisPing: redisPing}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	status := map[string]string{
		"status": "ok",
		"redis":  "disabled",
	}
	if u.redisPing != nil {
		if err := u.redisPing(ctx); err != nil {
			status["redis"] = "down"
		} else {
			status["redis"] = "up"
		}
	}
	return status
}
