package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"rent-a-tool/internal/domain"
	"rent-a-tool/internal/logger"
	"rent-a-tool/internal/repository"

	_ "github.com/lib/pq"
)

const schema = `CREATE TABLE IF NOT EXISTS tools (
	code               VARCHAR(8) PRIMARY KEY,
	type               VARCHAR(32) NOT NULL,
	brand              VARCHAR(32) NOT NULL,
	daily_charge       NUMERIC(10, 2) NOT NULL CHECK (daily_charge >= 0),
	charge_on_weekdays BOOLEAN NOT NULL,
	charge_on_weekends BOOLEAN NOT NULL,
	charge_on_holidays BOOLEAN NOT NULL,
	checked_out        BOOLEAN NOT NULL DEFAULT FALSE
)`

const seedTool = `INSERT INTO tools (code, type, brand, daily_charge, charge_on_weekdays, charge_on_weekends, charge_on_holidays, checked_out)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8) ON CONFLICT (code) DO NOTHING`

type Store struct {
	db *sql.DB
	repository.ToolRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:             db,
		ToolRepository: NewToolRepository(db),
	}
}

// Open connects to PostgreSQL and verifies the connection
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// EnsureSchema creates the tools table. With seed set, the default catalog
// is inserted, leaving any existing rows untouched.
func (s *Store) EnsureSchema(ctx context.Context, seed bool) error {
	logger.DatabaseCall("CREATE", "tools")
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		logger.DatabaseResult("CREATE", 0, err)
		return fmt.Errorf("create tools table: %w", err)
	}
	if !seed {
		return nil
	}

	var seeded int64
	for _, t := range domain.DefaultCatalog() {
		res, err := s.db.ExecContext(ctx, seedTool,
			string(t.Code), string(t.Type), string(t.Brand), t.DailyCharge,
			t.ChargeOnWeekdays, t.ChargeOnWeekends, t.ChargeOnHolidays, t.CheckedOut)
		if err != nil {
			logger.DatabaseResult("INSERT", seeded, err, "code", t.Code)
			return fmt.Errorf("seed tool %s: %w", t.Code, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			seeded += n
		}
	}
	logger.DatabaseResult("INSERT", seeded, nil, "table", "tools")
	return nil
}
