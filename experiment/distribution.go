// Package experiment measures the distribution quality of the byte-sum hash
// across different prime table sizes. Key batches are hashed into scratch
// tables borrowed from an object pool, so concurrent trials reuse tables
// instead of reallocating bucket arrays per batch.
package experiment

import (
	"context"
	"errors"
	"sync"

	pool "github.com/jolestar/go-commons-pool/v2"

	"dstruct-instruction/datastruct/dict"
)

type tableFactory struct {
	size int
}

func (f *tableFactory) MakeObject(_ context.Context) (*pool.PooledObject, error) {
	m, err := dict.NewChainedHashMapOfSize(f.size)
	if err != nil {
		return nil, err
	}
	return pool.NewPooledObject(m), nil
}

func (f *tableFactory) DestroyObject(_ context.Context, _ *pool.PooledObject) error {
	return nil
}

func (f *tableFactory) ValidateObject(_ context.Context, _ *pool.PooledObject) bool {
	return true
}

func (f *tableFactory) ActivateObject(_ context.Context, _ *pool.PooledObject) error {
	return nil
}

// Scratch tables go back to the pool empty.
func (f *tableFactory) PassivateObject(_ context.Context, obj *pool.PooledObject) error {
	m, ok := obj.Object.(*dict.ChainedHashMap)
	if !ok {
		return errors.New("type mismatch")
	}
	m.Clear()
	return nil
}

// Report summarizes how one key batch spread across the buckets.
type Report struct {
	Size         int
	Entries      int
	MaxLoad      int
	EmptyBuckets int
	ChiSquared   float64
}

func measure(m *dict.ChainedHashMap, size int, keys []string) Report {
	for i, key := range keys {
		m.Put(key, float32(i))
	}
	res := Report{Size: size, Entries: m.Size()}
	loads := m.BucketLoads()
	if res.Entries == 0 {
		res.EmptyBuckets = len(loads)
		return res
	}
	expected := float64(res.Entries) / float64(size)
	for _, load := range loads {
		if load > res.MaxLoad {
			res.MaxLoad = load
		}
		if load == 0 {
			res.EmptyBuckets++
		}
		diff := float64(load) - expected
		res.ChiSquared += diff * diff / expected
	}
	return res
}

// MeasureDistribution hashes every batch into a pooled scratch table of the
// given size, one worker goroutine per batch, and reports per-batch bucket
// statistics in batch order. The size must be prime; a failed borrow aborts
// only its own batch and is reported as the overall error.
func MeasureDistribution(ctx context.Context, size int, batches [][]string) ([]Report, error) {
	p := pool.NewObjectPoolWithDefaultConfig(ctx, &tableFactory{size: size})
	defer p.Close(ctx)

	reports := make([]Report, len(batches))
	errs := make([]error, len(batches))
	var wg sync.WaitGroup
	for i, batch := range batches {
		wg.Add(1)
		go func(i int, batch []string) {
			defer wg.Done()
			obj, err := p.BorrowObject(ctx)
			if err != nil {
				errs[i] = err
				return
			}
			m, ok := obj.(*dict.ChainedHashMap)
			if !ok {
				errs[i] = errors.New("type mismatch")
				return
			}
			reports[i] = measure(m, size, batch)
			errs[i] = p.ReturnObject(ctx, obj)
		}(i, batch)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return reports, nil
}
