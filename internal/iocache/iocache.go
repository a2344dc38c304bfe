// Package iocache implements flora.Cache with in-memory, SQLite and Redis
// backends. Entries never expire, values are GOB-encoded species lists.
package iocache

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gnames/gnflora/pkg/config"
	"github.com/gnames/gnflora/pkg/flora"
	"github.com/gnames/gnfmt"
)

// entry is what gets encoded into persistent backends.
type entry struct {
	Species []flora.SpeciesAggregate
}

// New creates a cache according to cfg.Cache.Backend. The sqlite backend
// keeps its file at config.CacheDBPath(cfg.HomeDir).
func New(ctx context.Context, cfg *config.Config) (flora.Cache, error) {
	switch cfg.Cache.Backend {
	case "sqlite":
		return NewSQLite(ctx, config.CacheDBPath(cfg.HomeDir))
	case "redis":
		return NewRedis(ctx, cfg.Cache)
	case "memory", "":
		return NewMemory(), nil
	default:
		err := fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
		return nil, OpenError(cfg.Cache.Backend, err)
	}
}

func encode(species []flora.SpeciesAggregate) ([]byte, error) {
	enc := gnfmt.GNgob{}
	res, err := enc.Encode(entry{Species: species})
	if err != nil {
		slog.Error("Cannot encode species", "error", err)
		return nil, err
	}
	return res, nil
}

func decode(data []byte) ([]flora.SpeciesAggregate, error) {
	enc := gnfmt.GNgob{}
	var res entry
	if err := enc.Decode(data, &res); err != nil {
		slog.Error("Cannot decode species", "error", err)
		return nil, err
	}
	return res.Species, nil
}
