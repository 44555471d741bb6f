package session

import (
	"sync"
	"testing"
	"time"

	"sirs/internal/score"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func estimate(total int) Estimate {
	return Estimate{Result: score.Result{Total: total}}
}

func totals(estimates []Estimate) []int {
	result := make([]int, len(estimates))
	for i, e := range estimates {
		result[i] = e.Result.Total
	}
	return result
}

func TestNewRepository(t *testing.T) {
	repo := NewRepository(5, 10*time.Minute)

	assert.Equal(t, 5, repo.length, "length should match")
	assert.Equal(t, 10*time.Minute, repo.ttl, "ttl should match")
	assert.Empty(t, repo.sessions, "sessions should be empty initially")
}

func TestRepository_AppendOverwritesOldest(t *testing.T) {
	repo := NewRepository(2, 0)

	repo.Append("s1", estimate(10))
	repo.Append("s1", estimate(20))

	history, err := repo.Get("s1")
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20}, totals(history))

	repo.Append("s1", estimate(30))

	history, err = repo.Get("s1")
	require.NoError(t, err)
	assert.Equal(t, []int{20, 30}, totals(history), "oldest estimate should be overwritten")
}

func TestRepository_GetUnknown(t *testing.T) {
	repo := NewRepository(2, 0)

	history, err := repo.Get("missing")

	assert.Nil(t, history)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Contains(t, err.Error(), "session not found: missing")
}

func TestRepository_Last(t *testing.T) {
	repo := NewRepository(3, 0)

	_, ok := repo.Last("s1")
	assert.False(t, ok)

	repo.Append("s1", estimate(1))
	repo.Append("s1", estimate(2))

	last, ok := repo.Last("s1")
	assert.True(t, ok)
	assert.Equal(t, 2, last.Result.Total)
}

func TestRepository_AppendReturnsPrevious(t *testing.T) {
	repo := NewRepository(2, 0)

	_, ok := repo.Append("s1", estimate(1))
	assert.False(t, ok, "first estimate has no previous one")

	previous, ok := repo.Append("s1", estimate(2))
	assert.True(t, ok)
	assert.Equal(t, 1, previous.Result.Total)
}

func TestRepository_ConcurrentAppendPrevious(t *testing.T) {
	repo := NewRepository(1000, 0)
	repo.Append("s1", estimate(-1))

	var mu sync.Mutex
	seen := make(map[int]int)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(total int) {
			defer wg.Done()
			previous, ok := repo.Append("s1", estimate(total))
			if !ok {
				return
			}
			mu.Lock()
			seen[previous.Result.Total]++
			mu.Unlock()
		}(i)
	}
	wg.Wait()

	assert.Len(t, seen, 100, "every append should see a distinct previous estimate")
	for total, count := range seen {
		assert.Equal(t, 1, count, "estimate %d was seen as previous more than once", total)
	}
}

func TestRepository_AppendDuringEvict(t *testing.T) {
	repo := NewRepository(10, time.Minute)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	var clock sync.Mutex
	repo.now = func() time.Time {
		clock.Lock()
		defer clock.Unlock()
		return now
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			repo.Append("s1", estimate(i))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			repo.evict()
		}
	}()
	wg.Wait()

	last, ok := repo.Last("s1")
	require.True(t, ok)
	assert.Equal(t, 499, last.Result.Total)

	clock.Lock()
	now = now.Add(2 * time.Minute)
	clock.Unlock()
	assert.Equal(t, 1, repo.evict())

	_, err := repo.Get("s1")
	assert.Error(t, err)
}

func TestRepository_MultipleSessions(t *testing.T) {
	repo := NewRepository(2, 0)

	repo.Append("s1", estimate(1))
	repo.Append("s1", estimate(2))
	repo.Append("s1", estimate(3))
	repo.Append("s2", estimate(10))

	h1, err := repo.Get("s1")
	require.NoError(t, err)
	h2, err := repo.Get("s2")
	require.NoError(t, err)

	assert.Equal(t, []int{2, 3}, totals(h1))
	assert.Equal(t, []int{10}, totals(h2))
}

func TestRepository_ConcurrentAppend(t *testing.T) {
	repo := NewRepository(100, 0)
	iterations := 1000

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				repo.Append(id, estimate(j))
			}
		}(string(rune('A' + i)))
	}
	wg.Wait()

	for i := 0; i < 10; i++ {
		id := string(rune('A' + i))
		last, ok := repo.Last(id)
		assert.True(t, ok, "expected history for %s", id)
		assert.Equal(t, iterations-1, last.Result.Total, "last total should match for %s", id)
	}
}

func TestRepository_Evict(t *testing.T) {
	repo := NewRepository(2, time.Minute)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }

	repo.Append("old", estimate(1))
	now = now.Add(50 * time.Second)
	repo.Append("fresh", estimate(2))
	now = now.Add(30 * time.Second)

	assert.Equal(t, 1, repo.evict())

	_, err := repo.Get("old")
	assert.Error(t, err, "outdated session should be removed")
	_, err = repo.Get("fresh")
	assert.NoError(t, err, "recent session should be kept")
}

func TestRepository_EvictDisabled(t *testing.T) {
	repo := NewRepository(2, 0)
	now := time.Now()
	repo.now = func() time.Time { return now }

	repo.Append("s1", estimate(1))
	now = now.Add(24 * time.Hour)

	assert.Equal(t, 0, repo.evict())
	_, err := repo.Get("s1")
	assert.NoError(t, err)
}

func TestRepository_ServeStop(t *testing.T) {
	repo := NewRepository(2, time.Nanosecond)
	repo.Append("s1", estimate(1))

	done := make(chan struct{})
	go func() {
		repo.Serve(time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		_, err := repo.Get("s1")
		return err != nil
	}, time.Second, 5*time.Millisecond, "session should be evicted by Serve")

	repo.Stop()
	repo.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Serve did not return after Stop")
	}
}
