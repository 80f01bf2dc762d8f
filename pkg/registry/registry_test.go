package registry_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/aretw0/dumpable/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	r := registry.NewRegistry()
	r.Register("b", 2)
	r.Register("a", []int{1})
	r.Register("b", "two")

	assert.Equal(t, []string{"a", "b"}, r.Names())

	v, err := r.Lookup("b")
	require.NoError(t, err)
	assert.Equal(t, "two", v)

	r.Unregister("b")
	r.Unregister("never")
	_, err = r.Lookup("b")
	assert.ErrorIs(t, err, registry.ErrRootNotFound)
	assert.Equal(t, []string{"a"}, r.Names())
}

func TestRegistry_NilValue(t *testing.T) {
	r := registry.NewRegistry()
	r.Register("empty", nil)

	v, err := r.Lookup("empty")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestRegistry_Concurrent(t *testing.T) {
	r := registry.NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("root-%d", i)
			r.Register(name, i)
			_, err := r.Lookup(name)
			assert.NoError(t, err)
			r.Names()
		}(i)
	}
	wg.Wait()
	assert.Len(t, r.Names(), 8)
}
