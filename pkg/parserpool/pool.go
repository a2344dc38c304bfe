// Package parserpool provides a pool of botanical gnparser instances.
// This is a pure package - parsing is computation, not I/O.
package parserpool

import (
	"runtime"

	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/gnparser"
	"github.com/gnames/gnparser/ent/parsed"
)

// Pool provides parsers for concurrent use.
type Pool interface {
	// Parse parses a scientific name with the botanical code. It takes a
	// parser from the pool and returns it back after parsing. Safe for
	// concurrent use, blocks while all parsers are busy.
	Parse(nameString string) parsed.Parsed

	// Close shuts down the pool. The pool cannot be used after Close.
	Close()
}

type pool struct {
	ch chan gnparser.GNparser
}

// NewPool creates a pool with jobsNum parsers. If jobsNum is 0 or less,
// runtime.NumCPU() parsers are created.
func NewPool(jobsNum int) Pool {
	size := jobsNum
	if size <= 0 {
		size = runtime.NumCPU()
	}

	// Plants follow the botanical code, it matters for names with
	// parenthesized parts.
	cfg := gnparser.NewConfig(
		gnparser.OptCode(nomcode.Botanical),
		gnparser.OptWithDetails(true),
	)
	return &pool{ch: gnparser.NewPool(cfg, size)}
}

// Parse implements Pool.
func (p *pool) Parse(nameString string) parsed.Parsed {
	parser := <-p.ch
	res := parser.ParseName(nameString)
	p.ch <- parser
	return res
}

// Close implements Pool.
func (p *pool) Close() {
	if p.ch == nil {
		return
	}
	close(p.ch)
	for range p.ch {
	}
	p.ch = nil
}

// Cardinality returns the number of elements of a parsed name: 1 for
// uninomials, 2 for binomials, 3 and more for infraspecies. Unparsed names
// have cardinality 0.
func Cardinality(p parsed.Parsed) int {
	if !p.Parsed {
		return 0
	}
	return p.Cardinality
}

// Canonical returns the simple canonical form of a parsed name, or an
// empty string if the name was not parsed.
func Canonical(p parsed.Parsed) string {
	if !p.Parsed || p.Canonical == nil {
		return ""
	}
	return p.Canonical.Simple
}
