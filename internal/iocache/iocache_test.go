package iocache_test

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnflora/internal/iocache"
	"github.com/gnames/gnflora/pkg/config"
	"github.com/gnames/gnflora/pkg/errcode"
	"github.com/gnames/gnflora/pkg/flora"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var species = []flora.SpeciesAggregate{
	{Name: "Quercus robur", Family: "Fagaceae", Count: 30},
	{Name: "Fagus sylvatica", Family: "Fagaceae", Count: 20},
}

// checkCache runs the same behavior checks on every backend.
func checkCache(t *testing.T, c flora.Cache) {
	ctx := context.Background()

	res, ok, err := c.Get(ctx, "absent")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, res)

	err = c.Set(ctx, "Quercus_46.5_14_10", species)
	require.NoError(t, err)
	res, ok, err = c.Get(ctx, "Quercus_46.5_14_10")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, species, res)

	// confirmed-empty searches are cached
	err = c.Set(ctx, "Abies_0_0_1", nil)
	require.NoError(t, err)
	res, ok, err = c.Get(ctx, "Abies_0_0_1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, res)

	// Set replaces the value
	err = c.Set(ctx, "Quercus_46.5_14_10", species[:1])
	require.NoError(t, err)
	res, _, err = c.Get(ctx, "Quercus_46.5_14_10")
	require.NoError(t, err)
	assert.Len(t, res, 1)
}

func TestMemory(t *testing.T) {
	c := iocache.NewMemory()
	defer c.Close()
	checkCache(t, c)
}

func TestMemoryCopies(t *testing.T) {
	ctx := context.Background()
	c := iocache.NewMemory()
	src := []flora.SpeciesAggregate{{Name: "Quercus robur", Count: 1}}
	require.NoError(t, c.Set(ctx, "k", src))

	src[0].Count = 100
	res, _, _ := c.Get(ctx, "k")
	assert.Equal(t, 1, res[0].Count)

	res[0].Count = 200
	res2, _, _ := c.Get(ctx, "k")
	assert.Equal(t, 1, res2[0].Count)
}

func TestMemoryConcurrent(t *testing.T) {
	ctx := context.Background()
	c := iocache.NewMemory()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("key%d", i%5)
			assert.NoError(t, c.Set(ctx, key, species))
			_, ok, err := c.Get(ctx, key)
			assert.NoError(t, err)
			assert.True(t, ok)
		}(i)
	}
	wg.Wait()
}

func TestSQLite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cache", "occurrences.sqlite")

	c, err := iocache.NewSQLite(ctx, path)
	require.NoError(t, err)
	checkCache(t, c)
	require.NoError(t, c.Close())

	// entries survive reopening
	c, err = iocache.NewSQLite(ctx, path)
	require.NoError(t, err)
	defer c.Close()
	res, ok, err := c.Get(ctx, "Quercus_46.5_14_10")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, species[:1], res)
}

func TestRedis(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping Redis test in short mode")
	}
	ctx := context.Background()
	cfg := config.New()
	cfg.Update([]config.Option{config.OptCacheRedisDB(15)})
	c, err := iocache.NewRedis(ctx, cfg.Cache)
	if err != nil {
		t.Skipf("Redis is not available: %v", err)
	}
	defer c.Close()
	checkCache(t, c)
}

func TestNew(t *testing.T) {
	ctx := context.Background()

	t.Run("memory by default", func(t *testing.T) {
		cfg := config.New()
		c, err := iocache.New(ctx, cfg)
		require.NoError(t, err)
		assert.NotNil(t, c)
		c.Close()
	})

	t.Run("sqlite in the cache dir", func(t *testing.T) {
		home := t.TempDir()
		cfg := config.New()
		cfg.Update([]config.Option{
			config.OptHomeDir(home),
			config.OptCacheBackend("sqlite"),
		})
		c, err := iocache.New(ctx, cfg)
		require.NoError(t, err)
		defer c.Close()
		assert.FileExists(t, config.CacheDBPath(home))
	})

	t.Run("unknown backend", func(t *testing.T) {
		cfg := config.New()
		cfg.Cache.Backend = "memcached"
		_, err := iocache.New(ctx, cfg)
		require.Error(t, err)
		gnErr, ok := err.(*gn.Error)
		require.True(t, ok)
		assert.Equal(t, errcode.CacheOpenError, gnErr.Code)
	})
}

func TestErrors(t *testing.T) {
	orig := errors.New("boom")
	tests := []struct {
		msg  string
		err  error
		code gn.ErrorCode
	}{
		{"open", iocache.OpenError("redis", orig), errcode.CacheOpenError},
		{"read", iocache.ReadError("k", orig), errcode.CacheReadError},
		{"write", iocache.WriteError("k", orig), errcode.CacheWriteError},
	}
	for _, v := range tests {
		gnErr, ok := v.err.(*gn.Error)
		require.True(t, ok, v.msg)
		assert.Equal(t, v.code, gnErr.Code, v.msg)
		assert.Contains(t, gnErr.Msg, "<em>", v.msg)
		assert.ErrorIs(t, gnErr.Err, orig, v.msg)
	}
}
