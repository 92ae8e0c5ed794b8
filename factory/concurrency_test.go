// Package factory_test verifies that the read-only catalog is safe for
// concurrent Create calls without locking.
package factory_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fabrik/factory"
)

// TestConcurrentCreate hammers one shared Catalog from many goroutines
// and checks that every call independently yields a correct, fresh
// Variant. Each call only reads the registry and allocates, so no locking
// is required by contract; run with -race to enforce it.
func TestConcurrentCreate(t *testing.T) {
	cat := factory.NewCatalog()
	const num = 200 // number of concurrent creates
	tags := []string{"sedan", "suv", "coupe"}

	var wg sync.WaitGroup
	wg.Add(num)

	results := make([]factory.Variant, num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done() // signal completion
			tag := tags[id%len(tags)]
			v, err := cat.Create(tag, fmt.Sprintf("Model-%d", id), 2000+id%26)
			require.NoError(t, err)
			results[id] = v
		}(i)
	}
	wg.Wait() // wait for all creates to finish

	// Every slot holds the variant its goroutine asked for; nothing
	// leaked between calls.
	for i, v := range results {
		require.Equal(t, fmt.Sprintf("Model-%d", i), v.Model, "call %d got a foreign model", i)
		require.Equal(t, 2000+i%26, v.Year)
		wantTag := tags[i%len(tags)]
		require.Equal(t, wantTag, v.Kind.String())
	}

	// Freshness: sibling results never alias nested storage.
	a, b := results[0], results[3] // both sedans
	a.Extras[0] = "tampered"
	require.NotEqual(t, "tampered", b.Extras[0], "variants must not share Extras storage")
}
