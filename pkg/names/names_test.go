package names_test

import (
	"testing"

	"github.com/gnames/gnflora/pkg/names"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		msg, name, res string
	}{
		{"binomial", "Quercus robur", "Quercus robur"},
		{"authorship", "Quercus robur L.", "Quercus robur"},
		{"infraspecies", "Quercus robur subsp. robur", "Quercus robur"},
		{"extra spaces", "  Fagus\tsylvatica   L. ", "Fagus sylvatica"},
		{"uninomial", "Quercus", "Quercus"},
		{"uninomial with spaces", "  Quercus ", "Quercus"},
		{"case preserved", "quercus ROBUR", "quercus ROBUR"},
		{"empty", "", ""},
		{"blank", " \t ", ""},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, names.Normalize(v.name), v.msg)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"", " ", "Quercus", "Quercus robur", "Quercus robur L.",
		"  Abies   alba Mill. var. alba ", "×Sorbaronia  mitschurinii",
	}
	for _, v := range inputs {
		once := names.Normalize(v)
		assert.Equal(t, once, names.Normalize(once), v)
	}
}
