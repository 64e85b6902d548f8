package cache

import (
	"fmt"
	"io"

	"github.com/krisalay/policy-cache/types"
)

// DiscardHook is called with every evicted key, after the key is gone.
// A panicking hook is logged and ignored; it never undoes the eviction.
type DiscardHook func(key string)

// PrintDiscard returns a hook that writes "DISCARD: <key>" lines to w.
func PrintDiscard(w io.Writer) DiscardHook {
	return func(key string) {
		fmt.Fprintf(w, "DISCARD: %s\n", key)
	}
}

// LogDiscard returns a hook that reports evictions at Info level.
func LogDiscard(l types.Logger) DiscardHook {
	return func(key string) {
		l.Info("DISCARD", types.Field{Key: "key", Value: key})
	}
}
