package parserpool_test

import (
	"sync"
	"testing"

	"github.com/gnames/gnflora/pkg/parserpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPool(t *testing.T) {
	tests := []struct {
		msg     string
		jobsNum int
	}{
		{"default size (0 = NumCPU)", 0},
		{"custom size 4", 4},
		{"custom size 1", 1},
	}

	for _, v := range tests {
		pool := parserpool.NewPool(v.jobsNum)
		require.NotNil(t, pool, v.msg)
		res := pool.Parse("Quercus robur")
		assert.True(t, res.Parsed, v.msg)
		pool.Close()
	}
}

func TestParse(t *testing.T) {
	pool := parserpool.NewPool(2)
	defer pool.Close()

	tests := []struct {
		msg         string
		name        string
		canonical   string
		cardinality int
	}{
		{"binomial", "Quercus robur", "Quercus robur", 2},
		{"with author", "Fagus sylvatica L.", "Fagus sylvatica", 2},
		{"infraspecies", "Rosa acicularis var. acicularis", "Rosa acicularis acicularis", 3},
		{"uninomial", "Quercus", "Quercus", 1},
		{"not a name", "123 ???", "", 0},
	}

	for _, v := range tests {
		res := pool.Parse(v.name)
		assert.Equal(t, v.canonical, parserpool.Canonical(res), v.msg)
		assert.Equal(t, v.cardinality, parserpool.Cardinality(res), v.msg)
	}
}

// Botanical code keeps the genus of "Aus (Bus)" as the primary element.
func TestParseBotanicalCode(t *testing.T) {
	pool := parserpool.NewPool(1)
	defer pool.Close()

	res := pool.Parse("Aus (Bus)")
	assert.Equal(t, "Aus", parserpool.Canonical(res))
}

func TestParseConcurrent(t *testing.T) {
	pool := parserpool.NewPool(4)
	defer pool.Close()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				res := pool.Parse("Plantago major L.")
				assert.True(t, res.Parsed)
			}
		}()
	}
	wg.Wait()
}

func TestClose(t *testing.T) {
	pool := parserpool.NewPool(2)
	_ = pool.Parse("Plantago major")
	pool.Close()
	// second Close is a no-op
	pool.Close()
}
