package cache_test

import (
	"fmt"
	"sync"
	"testing"

	cache "github.com/krisalay/policy-cache"
	"github.com/krisalay/policy-cache/eviction"
)

func newBenchmarkCache(b *testing.B, policy eviction.PolicyType, shards int) *cache.Cache {
	b.Helper()
	c, err := cache.New(policy,
		cache.WithMaxItems(10000), // capacity
		cache.WithShards(shards),
	)
	if err != nil {
		b.Fatal(err)
	}
	return c
}

func benchKeys(n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = fmt.Sprintf("key-%d", i)
	}
	return keys
}

//
// ================= SINGLE THREAD BENCH =================
//

func BenchmarkCacheGetHit(b *testing.B) {
	for _, pt := range eviction.PolicyTypes() {
		b.Run(pt.String(), func(b *testing.B) {
			c := newBenchmarkCache(b, pt, 1)
			c.Put("key", "value")

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				c.Get("key")
			}
		})
	}
}

func BenchmarkCacheGetMiss(b *testing.B) {
	c := newBenchmarkCache(b, eviction.LFU, 1)
	keys := benchKeys(1024)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get(keys[i%len(keys)])
	}
}

//
// ================= WRITE BENCH =================
//

// Every Put past the first 10000 evicts, so this measures victim selection.
func BenchmarkCachePutWithEviction(b *testing.B) {
	keys := benchKeys(50000)

	for _, pt := range eviction.PolicyTypes() {
		b.Run(pt.String(), func(b *testing.B) {
			c := newBenchmarkCache(b, pt, 1)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				c.Put(keys[i%len(keys)], i+1)
			}
		})
	}
}

//
// ================= PARALLEL BENCH =================
//

func BenchmarkCacheParallelMixed(b *testing.B) {
	keys := benchKeys(20000)

	for _, shards := range []int{1, 8} {
		b.Run(fmt.Sprintf("LFU/shards=%d", shards), func(b *testing.B) {
			c := newBenchmarkCache(b, eviction.LFU, shards)
			for i := 0; i < 10000; i++ {
				c.Put(keys[i], i+1)
			}

			b.ResetTimer()
			b.RunParallel(func(pb *testing.PB) {
				i := 0
				for pb.Next() {
					k := keys[i%len(keys)]
					if i%4 == 0 {
						c.Put(k, i+1)
					} else {
						c.Get(k)
					}
					i++
				}
			})
		})
	}
}

//
// ================= HIGH CONCURRENCY TEST =================
//

func BenchmarkCacheHighConcurrency(b *testing.B) {
	c := newBenchmarkCache(b, eviction.MRU, 8)

	keys := benchKeys(10000)
	for i, k := range keys {
		c.Put(k, i+1)
	}

	b.ResetTimer()

	wg := sync.WaitGroup{}
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < b.N/100; j++ {
				c.Get(keys[j%len(keys)])
			}
		}()
	}
	wg.Wait()
}
