package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sync"

	cache "github.com/krisalay/policy-cache"
	"github.com/krisalay/policy-cache/eviction"
	"github.com/krisalay/policy-cache/types"
)

// ================= BACKING STORE =================
type InMemoryStore struct {
	mu   sync.RWMutex
	data map[string]any
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{data: make(map[string]any)}
}

func (s *InMemoryStore) Load(ctx context.Context, key string) (any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fmt.Println("STORE  → load:", key)
	return s.data[key], nil
}

func (s *InMemoryStore) Put(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
}

// ================= SCENARIOS =================

type step struct {
	op    string // "put" or "get"
	key   string
	value string
}

// scenario replays the classic sequence used to show each policy's victim choice.
var scenario = []step{
	{"put", "A", "Hello"},
	{"put", "B", "World"},
	{"put", "C", "Holberton"},
	{"put", "D", "School"},
	{"get", "B", ""},
	{"put", "E", "Battery"},
	{"put", "C", "Street"},
	{"get", "A", ""},
	{"get", "B", ""},
	{"get", "C", ""},
	{"put", "F", "Mission"},
	{"put", "G", "San Francisco"},
}

func run(c *cache.Cache) {
	for _, s := range scenario {
		switch s.op {
		case "put":
			c.Put(s.key, s.value)
		case "get":
			v, ok := c.Get(s.key)
			fmt.Printf("CACHE  → GET %s = %v (hit=%t)\n", s.key, v, ok)
		}
	}
	if err := c.Print(os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// ================= MAIN =================

func main() {
	policyName := flag.String("policy", "", "eviction policy to demo (BASIC, FIFO, LIFO, MRU, LRU, LFU); empty runs all")
	maxItems := flag.Int("max-items", cache.DefaultMaxItems, "upper bound on resident keys")
	verbose := flag.Bool("verbose", false, "log evictions and rejected writes")
	flag.Parse()

	policies := eviction.PolicyTypes()
	if *policyName != "" {
		pt, err := eviction.ParsePolicyType(*policyName)
		if err != nil {
			log.Fatal(err)
		}
		policies = []eviction.PolicyType{pt}
	}

	logger := &types.StdLogger{Out: log.New(os.Stderr, "", log.LstdFlags), Verbose: *verbose}
	metrics := &types.Stats{}

	// ---------------- Backing Store ----------------
	store := NewInMemoryStore()
	store.Put("Z", "Zeta")

	for _, pt := range policies {
		fmt.Printf("\n==================== %s (max items %d) ====================\n", pt, *maxItems)

		c, err := cache.New(pt,
			cache.WithMaxItems(*maxItems),
			cache.WithDiscardHook(cache.PrintDiscard(os.Stdout)),
			cache.WithLoader(store),
			cache.WithMetrics(metrics),
			cache.WithLogger(logger),
		)
		if err != nil {
			log.Fatal(err)
		}

		run(c)

		// ---------------- Invalid input is ignored ----------------
		c.Put("", "nothing")
		c.Put("H", nil)

		// ---------------- Read-through ----------------
		v, err := c.GetOrLoad(context.Background(), "Z")
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println("CACHE  → GET Z (read-through) =", v)
	}

	// ====================================================
	s := metrics.Snapshot()
	fmt.Println("\n==================== METRICS ====================")
	fmt.Printf("HITS      : %d\n", s.Hits)
	fmt.Printf("MISSES    : %d\n", s.Misses)
	fmt.Printf("EVICTIONS : %d\n", s.Evictions)
	fmt.Printf("REJECTED  : %d\n", s.Rejects)
	fmt.Printf("HIT RATIO : %.2f\n", s.HitRatio())
}
