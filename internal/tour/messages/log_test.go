package messages

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogAppendAndClear(t *testing.T) {
	t.Parallel()

	l := NewLog(0)
	require.Equal(t, DefaultCapacity, l.Cap())
	require.Empty(t, l.Messages())

	l.Add("HeroService: fetched heroes")
	l.Add("HeroService: fetched heroes")
	require.Equal(t, []string{"HeroService: fetched heroes", "HeroService: fetched heroes"}, l.Messages())
	require.Equal(t, 2, l.Len())

	l.Clear()
	require.Zero(t, l.Len())
	require.Empty(t, l.Messages())

	l.Add("again")
	require.Equal(t, []string{"again"}, l.Messages())
}

func TestLogDropsOldest(t *testing.T) {
	t.Parallel()

	l := NewLog(3)
	for i := 1; i <= 5; i++ {
		l.Add(fmt.Sprintf("m%d", i))
	}

	require.Equal(t, 3, l.Len())
	require.Equal(t, []string{"m3", "m4", "m5"}, l.Messages())
}

func TestLogSnapshotIsolated(t *testing.T) {
	t.Parallel()

	l := NewLog(2)
	l.Add("a")
	snap := l.Messages()
	snap[0] = "mutated"

	require.Equal(t, []string{"a"}, l.Messages())
}

func TestLogConcurrentAdd(t *testing.T) {
	t.Parallel()

	l := NewLog(1000)

	var wg sync.WaitGroup
	for g := range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 50 {
				l.Add(fmt.Sprintf("g%d-%d", g, i))
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 500, l.Len())
}
