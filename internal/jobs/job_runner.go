package jobs

import (
	"rent-a-tool/internal/config"
	"rent-a-tool/internal/logger"
	"rent-a-tool/internal/repository"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	tools  repository.ToolRepository
	config *config.Config
}

func NewJobRunner(tools repository.ToolRepository, cfg *config.Config) *JobRunner {
	return &JobRunner{
		tools:  tools,
		config: cfg,
	}
}

func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAll runs every job once (for manual execution)
func (jr *JobRunner) RunAll() {
	jr.AuditInventory()
}
