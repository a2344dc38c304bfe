// Package ioarchive keeps results of analysis runs in PostgreSQL.
// This is an impure I/O package implementing flora.Archive.
package ioarchive

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gnames/gnflora/pkg/config"
	"github.com/gnames/gnflora/pkg/flora"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	statusMatched     = "matched"
	statusUnmatched   = "unmatched"
	statusUnprocessed = "unprocessed"
)

// Archive implements flora.Archive using pgxpool.
type Archive struct {
	pool *pgxpool.Pool
}

// Connect creates a connection pool to PostgreSQL and verifies it.
func Connect(ctx context.Context, cfg *config.DatabaseConfig) (*Archive, error) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.Database,
		cfg.SSLMode,
	)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, ConnectionError(cfg.Host, cfg.Port, cfg.Database, cfg.User, err)
	}
	// A run writes two statements, a small pool is enough.
	poolConfig.MaxConns = 4
	poolConfig.MinConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, ConnectionError(cfg.Host, cfg.Port, cfg.Database, cfg.User, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, ConnectionError(cfg.Host, cfg.Port, cfg.Database, cfg.User, err)
	}

	return &Archive{pool: pool}, nil
}

// Close releases all database connections.
func (a *Archive) Close() error {
	if a.pool != nil {
		a.pool.Close()
	}
	return nil
}

// Migrate creates or updates archive tables using GORM AutoMigrate.
func (a *Archive) Migrate(ctx context.Context) error {
	if a.pool == nil {
		return NotConnectedError()
	}

	db := stdlib.OpenDBFromPool(a.pool)
	defer db.Close()

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: db}),
		&gorm.Config{},
	)
	if err != nil {
		return GORMConnectionError(err)
	}

	if err := migrate(gormDB.WithContext(ctx)); err != nil {
		return MigrateError(err)
	}
	slog.Info("Archive schema is up to date")
	return nil
}

// Save implements flora.Archive. The run and its species are written in
// one transaction.
func (a *Archive) Save(ctx context.Context, run flora.RunRecord) error {
	if a.pool == nil {
		return NotConnectedError()
	}

	tx, err := a.pool.Begin(ctx)
	if err != nil {
		return SaveError(run.ID, err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	r := runRow(run)
	q := `INSERT INTO runs (
	id, created_at, taxon_name, latitude, longitude, radius_km, user_input,
	taxon_key, matched_name, rank, completion, from_cache,
	species_count, processed, matched_count,
	report_text, report_failed, report_reason
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
	$17, $18
)`
	_, err = tx.Exec(ctx, q,
		r.ID, r.CreatedAt, r.TaxonName, r.Latitude, r.Longitude, r.RadiusKm,
		r.UserInput, r.TaxonKey, r.MatchedName, r.Rank, r.Completion,
		r.FromCache, r.SpeciesCount, r.Processed, r.MatchedCount,
		r.ReportText, r.ReportFailed, r.ReportReason,
	)
	if err != nil {
		return SaveError(run.ID, err)
	}

	columns := []string{
		"run_id", "position", "name", "family", "count", "status", "reason",
	}
	_, err = tx.CopyFrom(
		ctx,
		pgx.Identifier{"run_species"},
		columns,
		pgx.CopyFromRows(speciesRows(run)),
	)
	if err != nil {
		return SaveError(run.ID, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return SaveError(run.ID, err)
	}
	slog.Info("Run archived", "id", run.ID, "species", len(run.Species))
	return nil
}

func runRow(run flora.RunRecord) Run {
	return Run{
		ID:           run.ID,
		CreatedAt:    run.CreatedAt,
		TaxonName:    run.Query.TaxonName,
		Latitude:     run.Query.Latitude,
		Longitude:    run.Query.Longitude,
		RadiusKm:     run.Query.RadiusKm,
		UserInput:    run.Query.UserInput,
		TaxonKey:     run.Taxon.UsageKey,
		MatchedName:  run.Taxon.ScientificName,
		Rank:         run.Taxon.Rank,
		Completion:   string(run.Completion),
		FromCache:    run.FromCache,
		SpeciesCount: len(run.Species),
		Processed:    run.Processed,
		MatchedCount: len(run.Matched),
		ReportText:   run.Report.Text,
		ReportFailed: run.Report.Failed,
		ReportReason: string(run.Report.Reason),
	}
}

// speciesRows converts ranked species into rows for CopyFrom. Species
// beyond the processed ones are 'unprocessed'.
func speciesRows(run flora.RunRecord) [][]any {
	matched := make(map[string]struct{}, len(run.Matched))
	for _, v := range run.Matched {
		matched[v.Name] = struct{}{}
	}
	unmatched := make(map[string]flora.Reason, len(run.Unmatched))
	for _, v := range run.Unmatched {
		unmatched[v.Name] = v.Reason
	}

	res := make([][]any, len(run.Species))
	for i, v := range run.Species {
		status, reason := statusUnprocessed, ""
		if i < run.Processed {
			if _, ok := matched[v.Name]; ok {
				status = statusMatched
			} else if r, ok := unmatched[v.Name]; ok {
				status, reason = statusUnmatched, string(r)
			}
		}
		res[i] = []any{run.ID, i + 1, v.Name, v.Family, v.Count, status, reason}
	}
	return res
}
