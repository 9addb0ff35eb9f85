package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/pieclinic/clinic-api/internal/repository"
)

// NotePurgeWorker hard-deletes notes that were soft-deleted longer
// than the retention window ago.
type NotePurgeWorker struct {
	repo          repository.NoteRepository
	retentionDays int
	purgeInterval time.Duration
}

func NewNotePurgeWorker(repo repository.NoteRepository, retentionDays int, purgeInterval time.Duration) *NotePurgeWorker {
	return &NotePurgeWorker{
		repo:          repo,
		retentionDays: retentionDays,
		purgeInterval: purgeInterval,
	}
}

func (w *NotePurgeWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.purgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.purge(ctx); err != nil {
				log.Error().Err(err).Msg("note purge failed")
			}
		}
	}
}

func (w *NotePurgeWorker) purge(ctx context.Context) error {
	cutoff := time.Now().AddDate(0, 0, -w.retentionDays)

	rows, err := w.repo.PurgeDeleted(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to purge deleted notes: %w", err)
	}

	if rows > 0 {
		log.Info().Int64("notes", rows).Time("cutoff", cutoff).Msg("purged deleted notes")
	}
	return nil
}
