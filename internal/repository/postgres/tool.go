package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"rent-a-tool/internal/domain"
	"rent-a-tool/internal/logger"
	"rent-a-tool/internal/repository"

	"github.com/lib/pq"
)

const uniqueViolation = "23505"

const toolColumns = `code, type, brand, daily_charge, charge_on_weekdays, charge_on_weekends, charge_on_holidays, checked_out`

type toolRepository struct {
	db *sql.DB
}

func NewToolRepository(db *sql.DB) repository.ToolRepository {
	return &toolRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTool(row rowScanner) (*domain.Tool, error) {
	var code, toolType, brand string
	t := &domain.Tool{}
	if err := row.Scan(&code, &toolType, &brand, &t.DailyCharge,
		&t.ChargeOnWeekdays, &t.ChargeOnWeekends, &t.ChargeOnHolidays, &t.CheckedOut); err != nil {
		return nil, err
	}

	var err error
	if t.Code, err = domain.ParseCode(code); err != nil {
		return nil, err
	}
	if t.Type, err = domain.ParseToolType(toolType); err != nil {
		return nil, err
	}
	if t.Brand, err = domain.ParseBrand(brand); err != nil {
		return nil, err
	}
	return t, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func (r *toolRepository) Create(ctx context.Context, t *domain.Tool) error {
	if t == nil {
		return fmt.Errorf("create tool: %w: nil tool", domain.ErrInvalidAttribute)
	}
	query := `INSERT INTO tools (` + toolColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	logger.DatabaseCall("INSERT", "tools", "code", t.Code)
	_, err := r.db.ExecContext(ctx, query,
		string(t.Code), string(t.Type), string(t.Brand), t.DailyCharge,
		t.ChargeOnWeekdays, t.ChargeOnWeekends, t.ChargeOnHolidays, t.CheckedOut)
	if err != nil {
		logger.DatabaseResult("INSERT", 0, err, "code", t.Code)
		if isUniqueViolation(err) {
			return fmt.Errorf("create tool %s: %w", t.Code, domain.ErrToolExists)
		}
		return fmt.Errorf("create tool %s: %w", t.Code, err)
	}
	logger.DatabaseResult("INSERT", 1, nil, "code", t.Code)
	return nil
}

func (r *toolRepository) GetByCode(ctx context.Context, code domain.Code) (*domain.Tool, error) {
	query := `SELECT ` + toolColumns + ` FROM tools WHERE code = $1`

	logger.DatabaseCall("SELECT", "tools", "code", code)
	t, err := scanTool(r.db.QueryRowContext(ctx, query, string(code)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get tool %s: %w", code, domain.ErrToolNotFound)
	}
	if err != nil {
		logger.DatabaseResult("SELECT", 0, err, "code", code)
		return nil, fmt.Errorf("get tool %s: %w", code, err)
	}
	return t, nil
}

func (r *toolRepository) List(ctx context.Context) ([]domain.Tool, error) {
	query := `SELECT ` + toolColumns + ` FROM tools ORDER BY code`

	logger.DatabaseCall("SELECT", "tools")
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.DatabaseResult("SELECT", 0, err)
		return nil, fmt.Errorf("list tools: %w", err)
	}
	defer rows.Close()

	var tools []domain.Tool
	for rows.Next() {
		t, err := scanTool(rows)
		if err != nil {
			return nil, fmt.Errorf("list tools: %w", err)
		}
		tools = append(tools, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tools: %w", err)
	}
	logger.DatabaseResult("SELECT", int64(len(tools)), nil)
	return tools, nil
}

// attributeColumn maps an attribute to its column and the value to store,
// read back from a tool the attribute has already been applied to
func attributeColumn(t domain.Tool, attr domain.Attribute) (string, any) {
	switch attr {
	case domain.AttributeCode:
		return "code", string(t.Code)
	case domain.AttributeType:
		return "type", string(t.Type)
	case domain.AttributeBrand:
		return "brand", string(t.Brand)
	case domain.AttributeDailyCharge:
		return "daily_charge", t.DailyCharge
	case domain.AttributeChargeOnWeekdays:
		return "charge_on_weekdays", t.ChargeOnWeekdays
	case domain.AttributeChargeOnWeekends:
		return "charge_on_weekends", t.ChargeOnWeekends
	case domain.AttributeChargeOnHolidays:
		return "charge_on_holidays", t.ChargeOnHolidays
	default:
		return "checked_out", t.CheckedOut
	}
}

func (r *toolRepository) UpdateAttribute(ctx context.Context, code domain.Code, attr domain.Attribute, value any) error {
	var scratch domain.Tool
	if err := scratch.SetAttribute(attr, value); err != nil {
		return fmt.Errorf("update tool %s: %w", code, err)
	}
	column, arg := attributeColumn(scratch, attr)
	query := `UPDATE tools SET ` + column + ` = $1 WHERE code = $2`

	logger.DatabaseCall("UPDATE", "tools", "code", code, "column", column)
	res, err := r.db.ExecContext(ctx, query, arg, string(code))
	if err != nil {
		logger.DatabaseResult("UPDATE", 0, err, "code", code)
		if isUniqueViolation(err) {
			return fmt.Errorf("update tool %s: %w", code, domain.ErrToolExists)
		}
		return fmt.Errorf("update tool %s: %w", code, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update tool %s: %w", code, err)
	}
	logger.DatabaseResult("UPDATE", n, nil, "code", code)
	if n == 0 {
		return fmt.Errorf("update tool %s: %w", code, domain.ErrToolNotFound)
	}
	return nil
}

func (r *toolRepository) Delete(ctx context.Context, code domain.Code) error {
	query := `DELETE FROM tools WHERE code = $1`

	logger.DatabaseCall("DELETE", "tools", "code", code)
	res, err := r.db.ExecContext(ctx, query, string(code))
	if err != nil {
		logger.DatabaseResult("DELETE", 0, err, "code", code)
		return fmt.Errorf("delete tool %s: %w", code, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete tool %s: %w", code, err)
	}
	logger.DatabaseResult("DELETE", n, nil, "code", code)
	if n == 0 {
		return fmt.Errorf("delete tool %s: %w", code, domain.ErrToolNotFound)
	}
	return nil
}
