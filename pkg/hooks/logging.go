package hooks

import (
	"github.com/lerenn/model-analyzer/pkg/logger"
)

// LoggingHook logs the lifecycle of operations.
type LoggingHook struct {
	logger logger.Logger
}

// NewLoggingHook creates a new LoggingHook instance.
func NewLoggingHook(logger logger.Logger) *LoggingHook {
	return &LoggingHook{logger: logger}
}

// Name returns the hook name.
func (h *LoggingHook) Name() string {
	return "logging"
}

// Priority returns the hook priority.
func (h *LoggingHook) Priority() int {
	return 100
}

// PreExecute logs the start of an operation.
func (h *LoggingHook) PreExecute(ctx *HookContext) error {
	h.logger.Logf("Starting operation: %s with params: %v", ctx.OperationName, ctx.Parameters)
	return nil
}

// PostExecute logs the completion of an operation.
func (h *LoggingHook) PostExecute(ctx *HookContext) error {
	if ctx.Error == nil {
		h.logger.Logf("Operation completed: %s with results: %v", ctx.OperationName, ctx.Results)
	}
	return nil
}

// OnError logs when an operation fails.
func (h *LoggingHook) OnError(ctx *HookContext) error {
	h.logger.Warnf("Operation failed: %s, error: %v", ctx.OperationName, ctx.Error)
	return nil
}

// RegisterForOperations registers the hook as pre, post and error hook of each operation.
func (h *LoggingHook) RegisterForOperations(hm HookManagerInterface, operations ...string) error {
	for _, op := range operations {
		if err := hm.RegisterPreHook(op, h); err != nil {
			return err
		}
		if err := hm.RegisterPostHook(op, h); err != nil {
			return err
		}
		if err := hm.RegisterErrorHook(op, h); err != nil {
			return err
		}
	}
	return nil
}
