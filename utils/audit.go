package utils

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"cabdesk/db"
	"cabdesk/models"
)

// LogExternalAPI records a request/response pair from an external provider
// (the distance-matrix service) for auditing. Runs in the background so the
// estimation path never blocks on the audit table.
func LogExternalAPI(entry models.APILog) {
	SafeGo(func() {
		reqJSON, _ := json.Marshal(entry.RequestPayload)
		respJSON, _ := json.Marshal(entry.ResponsePayload)

		_, err := db.Pool.Exec(context.Background(),
			`INSERT INTO external_api_logs (
				id, provider, endpoint, "requestId", "requestPayload", "responsePayload", "statusCode", "durationMs", "createdAt"
			) VALUES (
				gen_random_uuid()::text, $1, $2, $3, $4, $5, $6, $7, NOW()
			)`,
			entry.Provider, entry.Endpoint, entry.RequestID, reqJSON, respJSON, entry.StatusCode, entry.DurationMs,
		)
		if err != nil {
			Logger.Error("Failed to log external API call", zap.Error(err))
		}
	})
}

// StartRetentionWorker deletes audit rows older than 30 days, once a day.
func StartRetentionWorker(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				cleanupAuditLogs()
			case <-ctx.Done():
				Logger.Info("Retention worker shutting down")
				return
			}
		}
	}()
}

func cleanupAuditLogs() {
	cutoff := time.Now().AddDate(0, 0, -30)

	result, err := db.Pool.Exec(context.Background(),
		`DELETE FROM external_api_logs WHERE "createdAt" < $1`, cutoff)
	if err != nil {
		Logger.Error("Audit log cleanup failed", zap.Error(err))
		return
	}
	Logger.Info("Audit log cleanup completed", zap.Int64("deletedRows", result.RowsAffected()))
}
