package beat_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onimix/artist-platform/internal/beat"
	"github.com/onimix/artist-platform/internal/store"
)

func TestBeatService_CreateAndGet(t *testing.T) {
	svc := beat.NewService(store.NewMemoryStore())
	ctx := context.Background()

	created, err := svc.Create(ctx, beat.CreateInput{
		Name:     "Trap Anthem",
		Producer: "Metro",
		BPM:      140,
		Genre:    "trap",
		Price:    29.99,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Zero(t, created.DownloadCount)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Trap Anthem", got.Name)
	assert.Equal(t, 140, got.BPM)

	_, err = svc.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, beat.ErrNotFound)
}

func TestBeatService_CreateValidation(t *testing.T) {
	svc := beat.NewService(store.NewMemoryStore())

	_, err := svc.Create(context.Background(), beat.CreateInput{Name: ""})
	assert.ErrorIs(t, err, beat.ErrValidation)

	_, err = svc.Create(context.Background(), beat.CreateInput{Name: "x", Price: -1})
	assert.ErrorIs(t, err, beat.ErrValidation)
}

func TestBeatService_ListFilters(t *testing.T) {
	svc := beat.NewService(store.NewMemoryStore())
	ctx := context.Background()

	_, err := svc.Create(ctx, beat.CreateInput{Name: "Boom Bap Loop", Genre: "boom_bap", IsFree: true})
	require.NoError(t, err)
	_, err = svc.Create(ctx, beat.CreateInput{Name: "Drill Pack", Genre: "drill", Price: 19.99})
	require.NoError(t, err)

	free, err := svc.List(ctx, beat.ListFilter{FreeOnly: true})
	require.NoError(t, err)
	require.Len(t, free, 1)
	assert.Equal(t, "Boom Bap Loop", free[0].Name)

	drill, err := svc.List(ctx, beat.ListFilter{Genre: "drill"})
	require.NoError(t, err)
	require.Len(t, drill, 1)

	search, err := svc.List(ctx, beat.ListFilter{Search: "loop"})
	require.NoError(t, err)
	require.Len(t, search, 1)
	assert.Equal(t, "Boom Bap Loop", search[0].Name)
}

func TestBeatService_UpdateAndDownloads(t *testing.T) {
	svc := beat.NewService(store.NewMemoryStore())
	ctx := context.Background()

	created, err := svc.Create(ctx, beat.CreateInput{Name: "Old Name", Price: 10})
	require.NoError(t, err)

	newName := "New Name"
	newPrice := 15.0
	updated, err := svc.Update(ctx, created.ID, beat.UpdateInput{Name: &newName, Price: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, 15.0, updated.Price)

	require.NoError(t, svc.RecordDownload(ctx, created.ID))
	require.NoError(t, svc.RecordDownload(ctx, created.ID))

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.DownloadCount)

	assert.ErrorIs(t, svc.RecordDownload(ctx, "missing"), beat.ErrNotFound)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), beat.ErrNotFound)
}
