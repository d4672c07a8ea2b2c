package domain_test

import (
	"sort"
	"sync"
	"testing"

	"github.com/ledgerworks/bank-ledger/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestSequenceStartsAtGivenValue(t *testing.T) {
	seq := domain.NewSequence(1000)

	require.Equal(t, int64(1000), seq.Next())
	require.Equal(t, int64(1001), seq.Next())
	require.Equal(t, int64(1002), seq.Next())
}

func TestSequenceIsSafeForConcurrentUse(t *testing.T) {
	const workers = 32
	const perWorker = 100

	seq := domain.NewSequence(1)
	ids := make([]int64, workers*perWorker)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				ids[w*perWorker+i] = seq.Next()
			}
		}(w)
	}
	wg.Wait()

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for i, id := range ids {
		require.Equal(t, int64(i+1), id, "identifiers must be dense and unique")
	}
}
