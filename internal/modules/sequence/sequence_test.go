package sequence

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatIdentifier(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{1, "VENDOR001"},
		{42, "VENDOR042"},
		{999, "VENDOR999"},
		{1000, "VENDOR1000"},
		{12345, "VENDOR12345"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatIdentifier(tc.n))
	}
}

func TestNextIdentifierConcurrent(t *testing.T) {
	const workers = 100

	seq := NewSequencer(NewMemoryRepository())
	ids := make(chan string, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := seq.NextIdentifier(context.Background())
			assert.NoError(t, err)
			ids <- id
		}()
	}
	wg.Wait()
	close(ids)

	var got []string
	for id := range ids {
		got = append(got, id)
	}
	require.Len(t, got, workers)

	// The returned set must be exactly VENDOR001..VENDOR100: distinct,
	// contiguous, no gaps.
	sort.Strings(got)
	for i, id := range got {
		assert.Equal(t, fmt.Sprintf("VENDOR%03d", i+1), id)
	}
}

func TestPeekNextIdentifier(t *testing.T) {
	ctx := context.Background()
	seq := NewSequencer(NewMemoryRepository())

	peeked, err := seq.PeekNextIdentifier(ctx)
	require.NoError(t, err)
	assert.Equal(t, "VENDOR001", peeked, "fresh counter previews the first identifier")

	next, err := seq.NextIdentifier(ctx)
	require.NoError(t, err)
	assert.Equal(t, peeked, next, "peek matches the following assignment")

	// Peek does not consume a number.
	for i := 0; i < 3; i++ {
		peeked, err = seq.PeekNextIdentifier(ctx)
		require.NoError(t, err)
		assert.Equal(t, "VENDOR002", peeked)
	}

	next, err = seq.NextIdentifier(ctx)
	require.NoError(t, err)
	assert.Equal(t, "VENDOR002", next)
}

func TestSequencersAreIndependent(t *testing.T) {
	ctx := context.Background()
	a := NewSequencer(NewMemoryRepository())
	b := NewSequencer(NewMemoryRepository())

	id, err := a.NextIdentifier(ctx)
	require.NoError(t, err)
	assert.Equal(t, "VENDOR001", id)

	id, err = b.NextIdentifier(ctx)
	require.NoError(t, err)
	assert.Equal(t, "VENDOR001", id, "counters do not share process state")
}
