// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/contagion/core"
	"github.com/stretchr/testify/require"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls from a hub
// to distinct targets are safe and all neighbours appear.
func TestConcurrentAddEdge(t *testing.T) {
	const num = 200
	g := core.NewGraph(core.WithVertices(num + 1))
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 1; i <= num; i++ {
		go func(id int) {
			defer wg.Done()
			require.NoError(t, g.AddEdge(0, id))
		}(i)
	}
	wg.Wait()

	nbs, err := g.Neighbors(0)
	require.NoError(t, err)
	require.Len(t, nbs, num)
	for i := 1; i < len(nbs); i++ {
		require.Less(t, nbs[i-1], nbs[i], "neighbours must stay sorted")
	}
}

// TestConcurrentReadersOnSharedGraph mirrors how engines share one built
// topology: many goroutines read while nobody writes.
func TestConcurrentReadersOnSharedGraph(t *testing.T) {
	g := core.NewGraph(core.WithVertices(50))
	for i := 0; i < 50; i++ {
		require.NoError(t, g.AddSymmetricEdge(i, (i+1)%50))
	}

	var wg sync.WaitGroup
	for r := 0; r < 16; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			offsets, targets := g.Adjacency()
			if len(targets) != 100 || offsets[50] != 100 {
				t.Errorf("unexpected adjacency: %d targets", len(targets))
			}
			_ = g.Edges()
			_ = g.IsSymmetric()
		}()
	}
	wg.Wait()
}
