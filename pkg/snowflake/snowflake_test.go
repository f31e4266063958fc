package snowflake

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenID(t *testing.T) {
	t.Run("positive and increasing", func(t *testing.T) {
		prev := GenID()
		require.Positive(t, prev)
		for i := 0; i < 1000; i++ {
			curr := GenID()
			require.Greater(t, curr, prev)
			prev = curr
		}
	})

	t.Run("unique across goroutines", func(t *testing.T) {
		const workers, perWorker = 8, 2000

		results := make([][]int64, workers)
		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func(w int) {
				defer wg.Done()
				ids := make([]int64, perWorker)
				for i := range ids {
					ids[i] = GenID()
				}
				results[w] = ids
			}(w)
		}
		wg.Wait()

		seen := make(map[int64]struct{}, workers*perWorker)
		for _, ids := range results {
			for _, id := range ids {
				seen[id] = struct{}{}
			}
		}
		assert.Len(t, seen, workers*perWorker)
	})
}
