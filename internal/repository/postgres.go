package repository

import (
	"context"
	"fmt"
	"net"
	"net/url"

	"github.com/UnknownOlympus/fixturegen/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	createTableQuery = `
		CREATE TABLE IF NOT EXISTS geometry_fixtures (
			seed     BIGINT  NOT NULL,
			position INTEGER NOT NULL,
			kind     TEXT    NOT NULL,
			literal  TEXT    NOT NULL,
			wkb_hex  TEXT    NOT NULL,
			wkb      BYTEA   NOT NULL,
			wkt      TEXT    NOT NULL,
			PRIMARY KEY (seed, position)
		);
	`
	deleteSeedQuery = `
		DELETE FROM geometry_fixtures
		WHERE seed = $1;
	`
	insertFixtureQuery = `
		INSERT INTO geometry_fixtures (seed, position, kind, literal, wkb_hex, wkb, wkt)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	countFixturesQuery = `
		SELECT COUNT(*)
		FROM geometry_fixtures
		WHERE seed = $1;
	`
)

// NewDatabase opens a connection pool to PostgreSQL and checks it with a ping.
func NewDatabase(ctx context.Context, host, port, user, password, name string) (*pgxpool.Pool, error) {
	dsn := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(user, password),
		Host:   net.JoinHostPort(host, port),
		Path:   name,
	}

	cfg, err := pgxpool.ParseConfig(dsn.String())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}

// EnsureSchema creates the geometry_fixtures table when it does not exist yet.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, createTableQuery); err != nil {
		return fmt.Errorf("failed to create fixtures table: %w", err)
	}

	return nil
}

// SaveTable replaces every fixture stored for the table seed with the records
// of table, in a single transaction. It returns the number of stored records.
func (r *Repository) SaveTable(ctx context.Context, table models.Table) (int, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err = tx.Exec(ctx, deleteSeedQuery, table.Seed); err != nil {
		r.rollback(ctx, tx)
		return 0, fmt.Errorf("failed to delete previous fixtures: %w", err)
	}

	for i, rec := range table.Records {
		_, err = tx.Exec(ctx, insertFixtureQuery,
			table.Seed, i, rec.Kind().String(), rec.Literal, rec.WKBHex, rec.WKB, rec.WKT)
		if err != nil {
			r.rollback(ctx, tx)
			return 0, fmt.Errorf("failed to insert fixture %d: %w", i, err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit fixtures: %w", err)
	}
	r.log.InfoContext(ctx, "Fixtures stored", "seed", table.Seed, "records", len(table.Records))

	return len(table.Records), nil
}

// CountFixtures returns the number of fixtures stored for seed.
func (r *Repository) CountFixtures(ctx context.Context, seed int64) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, countFixturesQuery, seed).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count fixtures: %w", err)
	}

	return count, nil
}

func (r *Repository) rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil {
		r.log.ErrorContext(ctx, "Failed to roll back transaction", "error", err)
	}
}
