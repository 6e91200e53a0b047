// Package hooks provides a middleware system for analyzer operations.
package hooks

// HookContext provides context for hook execution.
type HookContext struct {
	OperationName string
	Parameters    map[string]interface{}
	Results       map[string]interface{}
	Error         error
}

// NewHookContext creates a HookContext with empty result storage.
func NewHookContext(operation string, params map[string]interface{}) *HookContext {
	return &HookContext{
		OperationName: operation,
		Parameters:    params,
		Results:       make(map[string]interface{}),
	}
}

// Hook defines the interface for all hooks.
type Hook interface {
	Name() string
	// Priority orders hooks of the same kind, lower first.
	Priority() int
}

// PreHook executes before an operation.
type PreHook interface {
	Hook
	PreExecute(ctx *HookContext) error
}

// PostHook executes after an operation, whether it failed or not.
type PostHook interface {
	Hook
	PostExecute(ctx *HookContext) error
}

// ErrorHook executes when an operation fails.
type ErrorHook interface {
	Hook
	OnError(ctx *HookContext) error
}
