package huffman

import (
	"runtime"
	"sync"
)

// parallelCountThreshold is the input size at which CountFrequencies starts
// counting in shards.
const parallelCountThreshold = 1 << 20

type frequencies [NumSymbols]int

func (f *frequencies) count(data []byte) {
	for _, ch := range data {
		f[ch]++
	}
}

func (f *frequencies) merge(other *frequencies) {
	for symbol := range f {
		f[symbol] += other[symbol]
	}
}

// CountFrequencies scans data once and returns one leaf per distinct byte,
// weighted by its number of occurrences.  Leaves are returned in ascending
// Symbol order.
func CountFrequencies(data []byte) ([]*Node, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	var freqs frequencies
	if len(data) < parallelCountThreshold {
		freqs.count(data)
	} else {
		countParallel(&freqs, data, runtime.GOMAXPROCS(0))
	}

	leaves := make([]*Node, 0, NumSymbols)
	for symbol, freq := range freqs {
		if freq != 0 {
			leaves = append(leaves, NewLeaf(Symbol(symbol), freq))
		}
	}
	return leaves, nil
}

func countParallel(freqs *frequencies, data []byte, numShards int) {
	if numShards < 1 {
		numShards = 1
	}
	shardLen := (len(data) + numShards - 1) / numShards
	shards := make([]frequencies, numShards)

	var wg sync.WaitGroup
	for index := 0; index < numShards; index++ {
		lo := index * shardLen
		if lo >= len(data) {
			break
		}
		hi := lo + shardLen
		if hi > len(data) {
			hi = len(data)
		}
		wg.Add(1)
		go func(shard *frequencies, chunk []byte) {
			defer wg.Done()
			shard.count(chunk)
		}(&shards[index], data[lo:hi])
	}
	wg.Wait()

	for index := range shards {
		freqs.merge(&shards[index])
	}
}
