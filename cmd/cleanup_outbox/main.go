package main

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/pos-service/internal/models/m_outbox"
)

// Config holds the cleanup job's environment configuration.
type Config struct {
	SpannerDB              string `envconfig:"SPANNER_DB" required:"true"`
	CompletedRetentionDays int    `envconfig:"COMPLETED_RETENTION_DAYS" default:"30"`
	FailedRetentionDays    int    `envconfig:"FAILED_RETENTION_DAYS" default:"90"`
	DryRun                 bool   `envconfig:"DRY_RUN" default:"false"`
}

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	ctx := context.Background()

	if err := cleanupOutbox(ctx, logger, cfg); err != nil {
		logger.Fatal("cleanup failed", zap.Error(err))
	}

	logger.Info("cleanup completed")
}

// cleanupOutbox deletes processed outbox events past their retention window.
// Pending events are never touched.
func cleanupOutbox(ctx context.Context, logger *zap.Logger, cfg Config) error {
	client, err := spanner.NewClient(ctx, cfg.SpannerDB)
	if err != nil {
		return fmt.Errorf("failed to create Spanner client: %w", err)
	}
	defer client.Close()

	now := time.Now().UTC()
	completedCutoff := now.AddDate(0, 0, -cfg.CompletedRetentionDays)
	failedCutoff := now.AddDate(0, 0, -cfg.FailedRetentionDays)

	logger.Info("starting outbox cleanup",
		zap.Time("completed_cutoff", completedCutoff),
		zap.Time("failed_cutoff", failedCutoff),
		zap.Bool("dry_run", cfg.DryRun),
	)

	params := map[string]interface{}{
		"completedStatus": m_outbox.StatusCompleted,
		"completedCutoff": completedCutoff,
		"failedStatus":    m_outbox.StatusFailed,
		"failedCutoff":    failedCutoff,
	}
	where := "(status = @completedStatus AND processed_at < @completedCutoff)" +
		" OR (status = @failedStatus AND processed_at < @failedCutoff)"

	if cfg.DryRun {
		stmt := spanner.Statement{
			SQL:    "SELECT status, COUNT(*) FROM outbox_events WHERE " + where + " GROUP BY status",
			Params: params,
		}

		iter := client.Single().Query(ctx, stmt)
		defer iter.Stop()

		for {
			row, err := iter.Next()
			if err == iterator.Done {
				break
			}
			if err != nil {
				return fmt.Errorf("failed to count events: %w", err)
			}

			var status string
			var count int64
			if err := row.Columns(&status, &count); err != nil {
				return fmt.Errorf("failed to parse row: %w", err)
			}
			logger.Info("would delete events", zap.String("status", status), zap.Int64("count", count))
		}
		return nil
	}

	_, err = client.ReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		deleted, err := txn.Update(ctx, spanner.Statement{
			SQL:    "DELETE FROM outbox_events WHERE " + where,
			Params: params,
		})
		if err != nil {
			return fmt.Errorf("failed to delete events: %w", err)
		}
		logger.Info("deleted events", zap.Int64("count", deleted))
		return nil
	})
	if err != nil {
		return fmt.Errorf("cleanup transaction failed: %w", err)
	}

	return nil
}
