package worker

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pieclinic/clinic-api/internal/model"
)

type fakeNoteRepo struct {
	notes map[uuid.UUID]*model.Note
}

func (r *fakeNoteRepo) Create(_ context.Context, note *model.Note) error {
	r.notes[note.ID] = note
	return nil
}

func (r *fakeNoteRepo) Get(context.Context, uuid.UUID) (*model.Note, error) { return nil, nil }

func (r *fakeNoteRepo) ListByPatient(context.Context, string) ([]*model.Note, error) {
	return nil, nil
}

func (r *fakeNoteRepo) Update(context.Context, *model.Note) error { return nil }

func (r *fakeNoteRepo) SoftDelete(context.Context, uuid.UUID) error { return nil }

func (r *fakeNoteRepo) PurgeDeleted(_ context.Context, before time.Time) (int64, error) {
	var purged int64
	for id, note := range r.notes {
		if note.Deleted && note.LastModified.Before(before) {
			delete(r.notes, id)
			purged++
		}
	}
	return purged, nil
}

func TestNotePurgeRemovesOnlyOldDeletedNotes(t *testing.T) {
	repo := &fakeNoteRepo{notes: make(map[uuid.UUID]*model.Note)}

	oldDeleted := &model.Note{ID: uuid.New(), Deleted: true, LastModified: time.Now().AddDate(0, 0, -60)}
	freshDeleted := &model.Note{ID: uuid.New(), Deleted: true, LastModified: time.Now()}
	live := &model.Note{ID: uuid.New(), LastModified: time.Now().AddDate(0, 0, -60)}
	for _, n := range []*model.Note{oldDeleted, freshDeleted, live} {
		repo.notes[n.ID] = n
	}

	w := NewNotePurgeWorker(repo, 30, time.Hour)
	require.NoError(t, w.purge(context.Background()))

	assert.NotContains(t, repo.notes, oldDeleted.ID)
	assert.Contains(t, repo.notes, freshDeleted.ID)
	assert.Contains(t, repo.notes, live.ID)
}
