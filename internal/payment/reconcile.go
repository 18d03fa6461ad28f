// AngelaMos | 2026
// reconcile.go

package payment

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/carterperez-dev/farrior-homes-api/internal/core"
)

// Reconciler sweeps for users whose payment completed but whose subscription
// flag never landed, which can happen when the process dies between the two
// webhook writes. Each pass re-applies the flag; both writes are idempotent
// so overlapping with a live webhook is harmless.
type Reconciler struct {
	repo     Repository
	users    UserProvider
	interval time.Duration
}

func NewReconciler(
	repo Repository,
	users UserProvider,
	interval time.Duration,
) *Reconciler {
	return &Reconciler{
		repo:     repo,
		users:    users,
		interval: interval,
	}
}

// Run blocks until ctx is cancelled.
func (r *Reconciler) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.Sweep(ctx); err != nil {
				slog.Error("reconcile sweep failed", "error", err)
			}
		}
	}
}

func (r *Reconciler) Sweep(ctx context.Context) error {
	userIDs, err := r.repo.ListGrantedUserIDs(ctx)
	if err != nil {
		return err
	}

	repaired := 0
	for _, id := range userIDs {
		u, err := r.users.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, core.ErrNotFound) {
				continue
			}
			return err
		}

		if u.IsSubscribed {
			continue
		}

		if err := r.users.SetSubscribed(ctx, id); err != nil {
			return err
		}
		repaired++
	}

	if repaired > 0 {
		slog.Info("reconcile sweep repaired subscriptions",
			"count", repaired,
		)
	}

	return nil
}
