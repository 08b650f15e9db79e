package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndGet(t *testing.T) {
	r := NewRegistry[int]()

	isNew, err := r.Register("views", 1)
	require.NoError(t, err)
	assert.True(t, isNew)

	isNew, err = r.Register("views", 2)
	require.NoError(t, err)
	assert.False(t, isNew)

	v, ok := r.Get("views")
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	_, err = r.Register("", 3)
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestMustGet(t *testing.T) {
	r := NewRegistry[string]()
	_, err := r.MustGet("videos")
	assert.Error(t, err)

	_, _ = r.Register("videos", "coll")
	v, err := r.MustGet("videos")
	require.NoError(t, err)
	assert.Equal(t, "coll", v)
}

func TestConcurrentRegister(t *testing.T) {
	r := NewRegistry[int]()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = r.Register(fmt.Sprintf("k%02d", i), i)
		}(i)
	}
	wg.Wait()
	assert.Len(t, r.Names(), 50)
	assert.Equal(t, "k00", r.Names()[0])
}
