package dict

import (
	"github.com/pkg/errors"

	"dstruct-instruction/lib/utils"
)

// MaxTableSize is the production bucket count. Prime, so the byte-sum hash
// spreads keys acceptably.
const MaxTableSize = 101

// Entries sharing a bucket index form a singly linked collision chain.
// The map stores its own key value, never a view into caller memory.
type entry struct {
	key   string
	value float32
	next  *entry
}

// ChainedHashMap resolves collisions by separate chaining over a fixed-size
// bucket array.
type ChainedHashMap struct {
	buckets []*entry
	size    int
}

func NewChainedHashMap() *ChainedHashMap {
	m, _ := NewChainedHashMapOfSize(MaxTableSize)
	return m
}

// NewChainedHashMapOfSize builds a table with a non-default bucket count,
// for distribution-quality experiments. The count must be prime.
func NewChainedHashMapOfSize(n int) (*ChainedHashMap, error) {
	if !utils.IsPrime(n) {
		return nil, errors.Errorf("table size %d is not prime", n)
	}
	return &ChainedHashMap{buckets: make([]*entry, n)}, nil
}

// hashCode sums the byte values of the key plus a seed of 1, reduced modulo
// the table size.
func hashCode(key string, n int) int {
	result := 1
	for i := 0; i < len(key); i++ {
		result += int(key[i])
	}
	return result % n
}

func (m *ChainedHashMap) Size() int {
	if m == nil {
		return 0
	}
	return m.size
}

// search scans the key's collision chain comparing keys by content.
func (m *ChainedHashMap) search(key string) *entry {
	if m == nil {
		return nil
	}
	for e := m.buckets[hashCode(key, len(m.buckets))]; e != nil; e = e.next {
		if e.key == key {
			return e
		}
	}
	return nil
}

// Put overwrites the value in place when the key exists; otherwise it
// prepends a new entry to its bucket's chain.
func (m *ChainedHashMap) Put(key string, value float32) {
	if m == nil {
		return
	}
	if e := m.search(key); e != nil {
		e.value = value
		return
	}
	index := hashCode(key, len(m.buckets))
	m.buckets[index] = &entry{key: key, value: value, next: m.buckets[index]}
	m.size++
}

func (m *ChainedHashMap) Get(key string) (value float32, ok bool) {
	e := m.search(key)
	if e == nil {
		return
	}
	return e.value, true
}

// Delete re-scans the chain with a trailing predecessor instead of reusing
// search, so it can unlink the matched entry in one pass.
func (m *ChainedHashMap) Delete(key string) (ok bool) {
	if m == nil {
		return
	}
	index := hashCode(key, len(m.buckets))
	var prev *entry
	for e := m.buckets[index]; e != nil; e = e.next {
		if e.key == key {
			if prev == nil {
				m.buckets[index] = e.next
			} else {
				prev.next = e.next
			}
			e.next = nil
			m.size--
			return true
		}
		prev = e
	}
	return
}

func (m *ChainedHashMap) ForEach(p Processor) {
	if m == nil {
		return
	}
	for _, e := range m.buckets {
		for ; e != nil; e = e.next {
			if !p(e.key, e.value) {
				return
			}
		}
	}
}

func (m *ChainedHashMap) Keys() []string {
	res := make([]string, 0, m.Size())
	m.ForEach(func(key string, _ float32) bool {
		res = append(res, key)
		return true
	})
	return res
}

// Clear returns the table to its post-init state: every bucket head empty.
func (m *ChainedHashMap) Clear() {
	if m == nil {
		return
	}
	for i := range m.buckets {
		m.buckets[i] = nil
	}
	m.size = 0
}

// BucketLoads reports the chain length of every bucket, in index order.
func (m *ChainedHashMap) BucketLoads() []int {
	if m == nil {
		return nil
	}
	loads := make([]int, len(m.buckets))
	for i, e := range m.buckets {
		for ; e != nil; e = e.next {
			loads[i]++
		}
	}
	return loads
}
