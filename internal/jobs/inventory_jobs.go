package jobs

import (
	"context"
	"fmt"
	"time"

	"rent-a-tool/internal/domain"
	"rent-a-tool/internal/logger"
)

const auditTimeout = 30 * time.Second

// InventorySummary is a point-in-time count of the catalog
type InventorySummary struct {
	Total      int
	Available  int
	CheckedOut []domain.Code
}

// PerformInventoryAudit counts available and checked-out tools. It only
// reads the store.
func (jr *JobRunner) PerformInventoryAudit(ctx context.Context) (*InventorySummary, error) {
	tools, err := jr.tools.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tools: %w", err)
	}

	summary := &InventorySummary{Total: len(tools), CheckedOut: []domain.Code{}}
	for _, t := range tools {
		if t.CheckedOut {
			summary.CheckedOut = append(summary.CheckedOut, t.Code)
			continue
		}
		summary.Available++
	}
	return summary, nil
}

// AuditInventory is the scheduled form of PerformInventoryAudit
func (jr *JobRunner) AuditInventory() {
	jr.runWithRecovery("AuditInventory", func() {
		ctx, cancel := context.WithTimeout(context.Background(), auditTimeout)
		defer cancel()

		summary, err := jr.PerformInventoryAudit(ctx)
		if err != nil {
			logger.Error("Failed to audit inventory", logger.Err(err))
			return
		}

		logger.Info("Inventory audited",
			"total", summary.Total,
			"available", summary.Available,
			"checked_out", len(summary.CheckedOut),
			"checked_out_codes", summary.CheckedOut,
		)
	})
}
