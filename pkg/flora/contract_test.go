package flora_test

import (
	"testing"

	"github.com/gnames/gnflora/internal/ioarchive"
	"github.com/gnames/gnflora/internal/ioreference"
	"github.com/gnames/gnflora/pkg/flora"
	"github.com/stretchr/testify/assert"
)

// TestReferenceIndexContract ensures that ioreference.Index satisfies
// the flora.ReferenceIndex interface.
// This is a compile-time check, and the test will not run if the contract
// is broken.
func TestReferenceIndexContract(t *testing.T) {
	var idx flora.ReferenceIndex = &ioreference.Index{}

	assert.Equal(t, 0, idx.Len())
}

// TestArchiveContract ensures that ioarchive.Archive satisfies
// the flora.Archive interface.
func TestArchiveContract(t *testing.T) {
	var _ flora.Archive = &ioarchive.Archive{}

	assert.True(t, true, "ioarchive.Archive should implement flora.Archive")
}
