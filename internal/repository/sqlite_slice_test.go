package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/hknav/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliceRepo_LoadMissingKey(t *testing.T) {
	repo := NewSQLiteSliceRepo(testutil.NewTestDB(t))

	value, ok, err := repo.Load(context.Background(), "hk_notes")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, value)
}

func TestSliceRepo_SaveOverwritesWholeValue(t *testing.T) {
	repo := NewSQLiteSliceRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "hk_followed_schools", []byte(`["dbs","cis"]`)))
	require.NoError(t, repo.Save(ctx, "hk_followed_schools", []byte(`["cis"]`)))

	value, ok, err := repo.Load(ctx, "hk_followed_schools")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `["cis"]`, string(value))
}

func TestSliceRepo_KeysAreIndependent(t *testing.T) {
	repo := NewSQLiteSliceRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "hk_progress", []byte(`{"dbs":"applied"}`)))
	require.NoError(t, repo.Save(ctx, "hk_notes", []byte(`{"dbs":"call back"}`)))
	require.NoError(t, repo.Delete(ctx, "hk_notes"))

	value, ok, err := repo.Load(ctx, "hk_progress")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"dbs":"applied"}`, string(value))

	_, ok, err = repo.Load(ctx, "hk_notes")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSliceRepo_DeleteMissingKey(t *testing.T) {
	repo := NewSQLiteSliceRepo(testutil.NewTestDB(t))

	err := repo.Delete(context.Background(), "hk_custom_schools")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSliceRepo_List(t *testing.T) {
	repo := NewSQLiteSliceRepo(testutil.NewTestDB(t))
	fixed := time.Date(2024, 10, 1, 9, 30, 0, 0, time.UTC)
	repo.now = func() time.Time { return fixed }
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "hk_progress", []byte(`{}`)))
	require.NoError(t, repo.Save(ctx, "hk_followed_schools", []byte(`["dbs"]`)))

	infos, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 2)

	assert.Equal(t, "hk_followed_schools", infos[0].Key)
	assert.Equal(t, 7, infos[0].Size)
	assert.True(t, fixed.Equal(infos[0].UpdatedAt))
	assert.Equal(t, "hk_progress", infos[1].Key)
	assert.Equal(t, 2, infos[1].Size)
}

func TestSliceRepo_DeleteKeys(t *testing.T) {
	repo := NewSQLiteSliceRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "hk_notes", []byte(`{}`)))
	require.NoError(t, repo.Save(ctx, "hk_progress", []byte(`{}`)))
	require.NoError(t, repo.Save(ctx, "other", []byte(`1`)))

	n, err := repo.DeleteKeys(ctx, []string{"hk_notes", "hk_progress", "hk_custom_schools"})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	infos, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "other", infos[0].Key)
}
