package logging

import (
	"context"
	"database/sql"
	"log/slog"
	"time"
)

// StartCleanup runs a daily goroutine that deletes system_logs older than 30 days.
func StartCleanup(db *sql.DB, done chan struct{}) {
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				cutoff := time.Now().AddDate(0, 0, -30)
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				res, err := db.ExecContext(ctx, `DELETE FROM system_logs WHERE timestamp < $1`, cutoff)
				cancel()
				if err != nil {
					slog.Error("log cleanup failed", "error", err)
					continue
				}
				if deleted, err := res.RowsAffected(); err == nil && deleted > 0 {
					slog.Info("log cleanup completed", "deleted", deleted)
				}
			case <-done:
				return
			}
		}
	}()
}
