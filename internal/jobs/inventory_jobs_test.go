package jobs

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rent-a-tool/internal/config"
	"rent-a-tool/internal/domain"
	"rent-a-tool/internal/logger"
	"rent-a-tool/internal/repository"
	"rent-a-tool/internal/repository/memory"
)

// failingRepo embeds the interface so only List needs an implementation
type failingRepo struct {
	repository.ToolRepository
	err   error
	panic bool
}

func (r failingRepo) List(ctx context.Context) ([]domain.Tool, error) {
	if r.panic {
		panic("store unavailable")
	}
	return nil, r.err
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logger.InitializeWithWriter("info", "text", &buf)
	t.Cleanup(func() { logger.Initialize("info", "text") })
	return &buf
}

func TestPerformInventoryAudit(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewSeededToolRepository()
	require.NoError(t, repo.UpdateAttribute(ctx, domain.CodeJAKD, domain.AttributeCheckedOut, true))
	require.NoError(t, repo.UpdateAttribute(ctx, domain.CodeLADW, domain.AttributeCheckedOut, true))

	jr := NewJobRunner(repo, config.Default())
	summary, err := jr.PerformInventoryAudit(ctx)
	require.NoError(t, err)

	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, 2, summary.Available)
	assert.Equal(t, []domain.Code{domain.CodeJAKD, domain.CodeLADW}, summary.CheckedOut)
}

func TestPerformInventoryAudit_Empty(t *testing.T) {
	jr := NewJobRunner(memory.NewToolRepository(), config.Default())
	summary, err := jr.PerformInventoryAudit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Total)
	assert.Empty(t, summary.CheckedOut)
}

func TestAuditInventory_Logs(t *testing.T) {
	buf := captureLogs(t)

	NewJobRunner(memory.NewSeededToolRepository(), config.Default()).AuditInventory()

	out := buf.String()
	assert.Contains(t, out, "Starting job")
	assert.Contains(t, out, "Inventory audited")
	assert.Contains(t, out, "available=4")
	assert.Contains(t, out, "Job completed")
}

func TestAuditInventory_ListFailure(t *testing.T) {
	buf := captureLogs(t)

	NewJobRunner(failingRepo{err: errors.New("connection refused")}, config.Default()).AuditInventory()

	assert.Contains(t, buf.String(), "Failed to audit inventory")
	assert.Contains(t, buf.String(), "connection refused")
}

func TestAuditInventory_RecoversPanic(t *testing.T) {
	buf := captureLogs(t)

	assert.NotPanics(t, func() {
		NewJobRunner(failingRepo{panic: true}, config.Default()).RunAll()
	})
	assert.Contains(t, buf.String(), "Job panicked")
	assert.Contains(t, buf.String(), "store unavailable")
}
