package main

import (
	"fmt"
	"sync"
	"time"

	cache "github.com/krisalay/policy-cache"
	"github.com/krisalay/policy-cache/eviction"
	"github.com/krisalay/policy-cache/types"
)

// ================= BENCHMARK =================

func main() {
	// ---------------- Cache Config ----------------
	const (
		shards     = 8
		capacity   = 20000
		keySpace   = 100000
		goroutines = 200
		opsPerG    = 5000
	)

	fmt.Println("\n================ CACHE LOAD BENCHMARK =================")
	fmt.Println("CONFIG")
	fmt.Println("---------------------------------")
	fmt.Println("Shards       :", shards)
	fmt.Println("Capacity     :", capacity)
	fmt.Println("Key Space    :", keySpace)
	fmt.Println("Goroutines   :", goroutines)
	fmt.Println("Ops/Goroutine:", opsPerG)
	fmt.Println("---------------------------------")

	keys := make([]string, keySpace)
	for i := range keys {
		keys[i] = fmt.Sprintf("key-%d", i)
	}

	for _, pt := range eviction.PolicyTypes() {
		if !pt.Bounded() {
			continue
		}

		metrics := &types.Stats{}
		c, err := cache.New(pt,
			cache.WithMaxItems(capacity),
			cache.WithShards(shards),
			cache.WithMetrics(metrics),
		)
		if err != nil {
			panic(err)
		}

		start := time.Now()

		wg := sync.WaitGroup{}
		wg.Add(goroutines)

		for i := 0; i < goroutines; i++ {
			go func(id int) {
				defer wg.Done()
				for j := 0; j < opsPerG; j++ {
					// j*j revisits some keys far more often than others
					k := keys[(id*7919+j*j)%keySpace]
					if _, ok := c.Get(k); !ok {
						c.Put(k, j+1)
					}
				}
			}(i)
		}

		wg.Wait()

		duration := time.Since(start)
		totalOps := goroutines * opsPerG
		s := metrics.Snapshot()

		fmt.Printf("\n================ %s =================\n", pt)
		fmt.Printf("Total Operations : %d\n", totalOps)
		fmt.Printf("Total Time       : %v\n", duration)
		fmt.Printf("Throughput       : %.2f ops/sec\n", float64(totalOps)/duration.Seconds())
		fmt.Printf("Hit Ratio        : %.3f\n", s.HitRatio())
		fmt.Printf("Evictions        : %d\n", s.Evictions)
		fmt.Printf("Resident Keys    : %d\n", c.Len())
	}
	fmt.Println("=========================================")
}
