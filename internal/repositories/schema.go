package repositories

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/fx-rates-warehouse/internal/apperrors"
	"github.com/sbilibin2017/fx-rates-warehouse/internal/logger"
	"github.com/sbilibin2017/fx-rates-warehouse/internal/models"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

var (
	identifierRe = regexp.MustCompile(`^[a-z_][a-z0-9_]{0,62}$`)
	columnTypeRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9 ]*(\([0-9, ]+\))?$`)
)

// DefaultColumnType is used for added columns that do not name a type.
const DefaultColumnType = "TEXT"

// SchemaRepository creates and evolves the warehouse tables.
type SchemaRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewSchemaRepository(db *sqlx.DB, txGetter TxGetter) *SchemaRepository {
	return &SchemaRepository{db: db, txGetter: txGetter}
}

// EnsureSchema applies the embedded migrations. Already applied migrations are a no-op,
// and existing tables and data are left untouched.
func (r *SchemaRepository) EnsureSchema(ctx context.Context) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("%w: open migrations: %w", apperrors.ErrPersistence, err)
	}

	conn, err := r.db.Conn(ctx)
	if err != nil {
		_ = src.Close()
		return fmt.Errorf("%w: acquire connection: %w", apperrors.ErrPersistence, err)
	}

	driver, err := postgres.WithConnection(ctx, conn, &postgres.Config{MultiStatementEnabled: true})
	if err != nil {
		_ = src.Close()
		_ = conn.Close()
		return fmt.Errorf("%w: create migrate driver: %w", apperrors.ErrPersistence, err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		_ = src.Close()
		_ = driver.Close()
		return fmt.Errorf("%w: create migrate instance: %w", apperrors.ErrPersistence, err)
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			logger.Log.Warnw("failed to close migrate instance", "source_error", srcErr, "database_error", dbErr)
		}
	}()

	err = m.Up()
	version, dirty, _ := m.Version()
	logger.Log.Infow("schema migrations applied",
		"version", version,
		"dirty", dirty,
		"no_change", errors.Is(err, migrate.ErrNoChange),
		"error", err,
	)
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("%w: apply migrations: %w", apperrors.ErrPersistence, err)
	}
	return nil
}

// Columns returns the column names of table in the current schema.
func (r *SchemaRepository) Columns(ctx context.Context, table string) ([]string, error) {
	const query = `
		SELECT column_name
		FROM information_schema.columns
		WHERE table_schema = current_schema() AND table_name = $1
		ORDER BY ordinal_position
	`

	var columns []string
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &columns, query, table)

	logger.Log.Infow(
		"query", oneLine(query),
		"args", []any{table},
		"result", columns,
		"error", err,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: list columns of %s: %w", apperrors.ErrPersistence, table, err)
	}
	return columns, nil
}

// EnsureColumns adds every column in specs that table does not have yet.
// Columns are never altered or dropped.
func (r *SchemaRepository) EnsureColumns(ctx context.Context, table string, specs []models.ColumnSpec) error {
	if len(specs) == 0 {
		return nil
	}
	if !identifierRe.MatchString(table) {
		return fmt.Errorf("%w: invalid table name %q", apperrors.ErrPersistence, table)
	}

	existing, err := r.Columns(ctx, table)
	if err != nil {
		return err
	}
	present := make(map[string]struct{}, len(existing))
	for _, c := range existing {
		present[c] = struct{}{}
	}

	ext := executor(ctx, r.db, r.txGetter)
	for _, spec := range specs {
		name := strings.ToLower(spec.Name)
		if !identifierRe.MatchString(name) {
			return fmt.Errorf("%w: invalid column name %q", apperrors.ErrPersistence, spec.Name)
		}
		if _, ok := present[name]; ok {
			continue
		}

		typ := spec.Type
		if typ == "" {
			typ = DefaultColumnType
		}
		if !columnTypeRe.MatchString(typ) {
			return fmt.Errorf("%w: invalid column type %q", apperrors.ErrPersistence, typ)
		}

		stmt := fmt.Sprintf("ALTER TABLE %s ADD COLUMN IF NOT EXISTS %s %s",
			pgx.Identifier{table}.Sanitize(), pgx.Identifier{name}.Sanitize(), typ)
		_, err := ext.ExecContext(ctx, stmt)

		logger.Log.Infow(
			"query", stmt,
			"result", "column added",
			"error", err,
		)

		if err != nil {
			return fmt.Errorf("%w: add column %s.%s: %w", apperrors.ErrPersistence, table, name, err)
		}
		present[name] = struct{}{}
	}
	return nil
}
