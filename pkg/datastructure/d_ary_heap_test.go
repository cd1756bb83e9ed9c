package datastructure

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeapExtractsInOrder(t *testing.T) {
	h := NewFourAryHeap[int]()
	ranks := make([]float64, 0, 100)
	for i := 0; i < 100; i++ {
		rank := rand.Float64() * 1000
		ranks = append(ranks, rank)
		h.Insert(NewPriorityQueueNode(rank, i))
	}
	sort.Float64s(ranks)

	for i := 0; i < 100; i++ {
		node, err := h.ExtractMin()
		require.NoError(t, err)
		require.Equal(t, ranks[i], node.GetRank())
	}
	require.True(t, h.IsEmpty())

	_, err := h.ExtractMin()
	require.Error(t, err)
}

func TestHeapDecreaseKey(t *testing.T) {
	h := NewBinaryHeap[string]()
	a := NewPriorityQueueNode(10.0, "a")
	b := NewPriorityQueueNode(20.0, "b")
	c := NewPriorityQueueNode(30.0, "c")
	h.Insert(a)
	h.Insert(b)
	h.Insert(c)

	require.NoError(t, h.DecreaseKey(c, 5.0))
	require.Error(t, h.DecreaseKey(b, 25.0)) // not a decrease

	node, err := h.ExtractMin()
	require.NoError(t, err)
	require.Equal(t, "c", node.GetItem())

	node, err = h.ExtractMin()
	require.NoError(t, err)
	require.Equal(t, "a", node.GetItem())
}
