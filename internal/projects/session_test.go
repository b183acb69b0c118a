package projects

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trekfolio/brochure-backend/internal/drafts"
	"github.com/trekfolio/brochure-backend/internal/projects/domain"
)

func newDraftRepo(t *testing.T) *drafts.Repo {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return drafts.NewRepo(client)
}

func newTestManager(t *testing.T, repo Repository) *Manager {
	t.Helper()
	m := NewManager(repo, newDraftRepo(t), ManagerOptions{AutosaveDelay: 30 * time.Millisecond})
	t.Cleanup(m.Close)
	return m
}

func TestSessionDraftFlush(t *testing.T) {
	repo := newMemRepo(seedRecord(t, "p-1", "Trek"))
	m := newTestManager(t, repo)
	ctx := context.Background()

	sess, err := m.Acquire(ctx, "u-1")
	require.NoError(t, err)

	patch := domain.ProjectUpdate{"hero": map[string]any{"title": "Renamed"}}
	require.NoError(t, sess.SaveDraft(ctx, "p-1", patch))

	// Before the idle window elapses the edit lives only in the draft store.
	draft, err := sess.Draft(ctx, "p-1")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"title": "Renamed"}, draft["hero"])
	p, _ := sess.Store.Get("p-1")
	assert.Equal(t, "Trek", p.Hero.Title)

	require.Eventually(t, func() bool {
		p, ok := sess.Store.Get("p-1")
		return ok && p.Hero.Title == "Renamed"
	}, 2*time.Second, 10*time.Millisecond, "debounced flush never landed")

	// The flushed draft is cleared from the draft store.
	require.Eventually(t, func() bool {
		_, err := sess.Draft(ctx, "p-1")
		return IsNotFound(err)
	}, 2*time.Second, 10*time.Millisecond)
}

func TestSessionDraftCoalesces(t *testing.T) {
	repo := newMemRepo(seedRecord(t, "p-1", "Trek"))
	m := newTestManager(t, repo)
	ctx := context.Background()

	sess, err := m.Acquire(ctx, "u-1")
	require.NoError(t, err)

	for _, title := range []string{"One", "Two", "Three"} {
		require.NoError(t, sess.SaveDraft(ctx, "p-1", domain.ProjectUpdate{
			"hero": map[string]any{"title": title},
		}))
		time.Sleep(5 * time.Millisecond)
	}

	require.Eventually(t, func() bool {
		p, ok := sess.Store.Get("p-1")
		return ok && p.Hero.Title == "Three"
	}, 2*time.Second, 10*time.Millisecond)

	repo.mu.Lock()
	calls := repo.updateCalls
	repo.mu.Unlock()
	assert.Equal(t, 1, calls, "rapid edits should collapse into one write")
}

func TestSessionDiscardDraftCancelsFlush(t *testing.T) {
	repo := newMemRepo(seedRecord(t, "p-1", "Trek"))
	m := newTestManager(t, repo)
	ctx := context.Background()

	sess, err := m.Acquire(ctx, "u-1")
	require.NoError(t, err)

	require.NoError(t, sess.SaveDraft(ctx, "p-1", domain.ProjectUpdate{
		"hero": map[string]any{"title": "Abandoned"},
	}))
	require.NoError(t, sess.DiscardDraft(ctx, "p-1"))

	time.Sleep(100 * time.Millisecond)

	p, ok := sess.Store.Get("p-1")
	require.True(t, ok)
	assert.Equal(t, "Trek", p.Hero.Title)

	_, err = sess.Draft(ctx, "p-1")
	assert.True(t, IsNotFound(err))

	ids, err := sess.PendingDraftIDs(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestManagerAcquire(t *testing.T) {
	repo := newMemRepo(seedRecord(t, "p-1", "Trek"))
	m := newTestManager(t, repo)
	ctx := context.Background()

	t.Run("rejects empty user id", func(t *testing.T) {
		_, err := m.Acquire(ctx, "")
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})

	t.Run("loads the store on first use", func(t *testing.T) {
		sess, err := m.Acquire(ctx, "u-1")
		require.NoError(t, err)
		assert.Len(t, sess.Store.Projects(), 1)
	})

	t.Run("returns the same session on repeat calls", func(t *testing.T) {
		a, err := m.Acquire(ctx, "u-1")
		require.NoError(t, err)
		b, err := m.Acquire(ctx, "u-1")
		require.NoError(t, err)
		assert.Same(t, a, b)
	})

	t.Run("sessions never cross users", func(t *testing.T) {
		a, err := m.Acquire(ctx, "u-1")
		require.NoError(t, err)
		b, err := m.Acquire(ctx, "u-2")
		require.NoError(t, err)
		assert.NotSame(t, a, b)
		assert.NotSame(t, a.Store, b.Store)
	})
}

func TestManagerDropCancelsPendingSaves(t *testing.T) {
	repo := newMemRepo(seedRecord(t, "p-1", "Trek"))
	m := newTestManager(t, repo)
	ctx := context.Background()

	sess, err := m.Acquire(ctx, "u-1")
	require.NoError(t, err)
	require.NoError(t, sess.SaveDraft(ctx, "p-1", domain.ProjectUpdate{
		"hero": map[string]any{"title": "Never Written"},
	}))

	m.Drop("u-1")
	time.Sleep(100 * time.Millisecond)

	repo.mu.Lock()
	calls := repo.updateCalls
	repo.mu.Unlock()
	assert.Zero(t, calls)

	// The next acquire rebuilds from scratch.
	fresh, err := m.Acquire(ctx, "u-1")
	require.NoError(t, err)
	assert.NotSame(t, sess, fresh)
	p, _ := fresh.Store.Get("p-1")
	assert.Equal(t, "Trek", p.Hero.Title)
}

func TestManagerSweepDropsIdleSessions(t *testing.T) {
	repo := newMemRepo()
	m := NewManager(repo, nil, ManagerOptions{
		AutosaveDelay: 30 * time.Millisecond,
		IdleTTL:       time.Minute,
	})
	t.Cleanup(m.Close)
	ctx := context.Background()

	sess, err := m.Acquire(ctx, "u-1")
	require.NoError(t, err)

	sess.mu.Lock()
	sess.lastSeen = time.Now().Add(-2 * time.Minute)
	sess.mu.Unlock()

	m.sweep()

	fresh, err := m.Acquire(ctx, "u-1")
	require.NoError(t, err)
	assert.NotSame(t, sess, fresh)
}
