//go:build unit

package publication_test

import (
	"testing"
	"time"

	"trainhub/internal/domain/publication"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicationSyncRounds(t *testing.T) {
	draftID := uuid.New()
	now := time.Now()
	later := now.Add(time.Minute)

	t.Run("new publication starts a pending sync", func(t *testing.T) {
		p := publication.NewPublication(draftID, now)

		assert.Equal(t, publication.StatePublishing, p.State())
		assert.Equal(t, publication.SyncPending, p.SyncStatus())
		assert.Nil(t, p.PublishedAt())
		assert.Nil(t, p.RemoteProductRef())
	})

	t.Run("successful first sync sets refs and published_at", func(t *testing.T) {
		p := publication.NewPublication(draftID, now)

		require.NoError(t, p.MarkSynced(9001, 9002, later))
		assert.Equal(t, publication.StatePublished, p.State())
		assert.Equal(t, publication.SyncSynced, p.SyncStatus())
		assert.Equal(t, int64(9001), *p.RemoteProductRef())
		require.NotNil(t, p.PublishedAt())
		assert.Equal(t, later, *p.PublishedAt())
		assert.Nil(t, p.LastSyncError())
	})

	t.Run("published_at is written once", func(t *testing.T) {
		p := publication.NewPublication(draftID, now)
		require.NoError(t, p.MarkSynced(9001, 9002, later))

		resync := later.Add(time.Hour)
		p.BeginSync(resync)
		require.NoError(t, p.MarkSynced(9001, 9002, resync.Add(time.Second)))
		assert.Equal(t, later, *p.PublishedAt())
		assert.Equal(t, resync.Add(time.Second), *p.SyncedAt())
	})

	t.Run("failed sync records the reason", func(t *testing.T) {
		p := publication.NewPublication(draftID, now)

		require.NoError(t, p.MarkSyncFailed("transient: platform returned 503", later))
		assert.Equal(t, publication.StateFailed, p.State())
		assert.Equal(t, publication.SyncFailed, p.SyncStatus())
		assert.Equal(t, "transient: platform returned 503", *p.LastSyncError())
	})

	t.Run("marking synced clears an earlier failure reason", func(t *testing.T) {
		p := publication.NewPublication(draftID, now)
		require.NoError(t, p.MarkSyncFailed("transient: timeout", later))

		p.BeginSync(later.Add(time.Minute))
		require.NoError(t, p.MarkSynced(9001, 9002, later.Add(2*time.Minute)))
		assert.Nil(t, p.LastSyncError())
	})

	t.Run("outcome requires a sync in flight", func(t *testing.T) {
		p := publication.NewPublication(draftID, now)
		require.NoError(t, p.MarkSynced(9001, 9002, later))

		assert.ErrorIs(t, p.MarkSynced(9001, 9002, later), publication.ErrNotSyncing)
		assert.ErrorIs(t, p.MarkSyncFailed("late failure", later), publication.ErrNotSyncing)
	})
}
