package hooks

import (
	"fmt"
	"sort"
	"sync"
)

//go:generate mockgen -source=manager.go -destination=mocks/manager.gen.go -package=mocks

// HookManagerInterface defines the interface for hook management.
type HookManagerInterface interface {
	// Hook registration.
	RegisterPreHook(operation string, hook PreHook) error
	RegisterPostHook(operation string, hook PostHook) error
	RegisterErrorHook(operation string, hook ErrorHook) error

	// Hook execution.
	ExecutePreHooks(operation string, ctx *HookContext) error
	ExecutePostHooks(operation string, ctx *HookContext) error
	ExecuteErrorHooks(operation string, ctx *HookContext) error
}

// HookManager manages hook registration and execution.
type HookManager struct {
	preHooks   map[string][]PreHook
	postHooks  map[string][]PostHook
	errorHooks map[string][]ErrorHook
	mu         sync.RWMutex
}

// NewHookManager creates a new HookManager instance.
func NewHookManager() HookManagerInterface {
	return &HookManager{
		preHooks:   make(map[string][]PreHook),
		postHooks:  make(map[string][]PostHook),
		errorHooks: make(map[string][]ErrorHook),
	}
}

// RegisterPreHook registers a pre-hook for a specific operation.
func (hm *HookManager) RegisterPreHook(operation string, hook PreHook) error {
	if hook == nil {
		return ErrNilHook
	}

	hm.mu.Lock()
	defer hm.mu.Unlock()
	hm.preHooks[operation] = insertByPriority(hm.preHooks[operation], hook)
	return nil
}

// RegisterPostHook registers a post-hook for a specific operation.
func (hm *HookManager) RegisterPostHook(operation string, hook PostHook) error {
	if hook == nil {
		return ErrNilHook
	}

	hm.mu.Lock()
	defer hm.mu.Unlock()
	hm.postHooks[operation] = insertByPriority(hm.postHooks[operation], hook)
	return nil
}

// RegisterErrorHook registers an error-hook for a specific operation.
func (hm *HookManager) RegisterErrorHook(operation string, hook ErrorHook) error {
	if hook == nil {
		return ErrNilHook
	}

	hm.mu.Lock()
	defer hm.mu.Unlock()
	hm.errorHooks[operation] = insertByPriority(hm.errorHooks[operation], hook)
	return nil
}

// ExecutePreHooks executes all pre-hooks for a specific operation.
func (hm *HookManager) ExecutePreHooks(operation string, ctx *HookContext) error {
	hm.mu.RLock()
	defer hm.mu.RUnlock()

	for _, hook := range hm.preHooks[operation] {
		if err := hook.PreExecute(ctx); err != nil {
			return fmt.Errorf("pre-hook %s failed: %w", hook.Name(), err)
		}
	}
	return nil
}

// ExecutePostHooks executes all post-hooks for a specific operation.
func (hm *HookManager) ExecutePostHooks(operation string, ctx *HookContext) error {
	hm.mu.RLock()
	defer hm.mu.RUnlock()

	for _, hook := range hm.postHooks[operation] {
		if err := hook.PostExecute(ctx); err != nil {
			return fmt.Errorf("post-hook %s failed: %w", hook.Name(), err)
		}
	}
	return nil
}

// ExecuteErrorHooks executes all error-hooks for a specific operation.
func (hm *HookManager) ExecuteErrorHooks(operation string, ctx *HookContext) error {
	hm.mu.RLock()
	defer hm.mu.RUnlock()

	for _, hook := range hm.errorHooks[operation] {
		if err := hook.OnError(ctx); err != nil {
			return fmt.Errorf("error-hook %s failed: %w", hook.Name(), err)
		}
	}
	return nil
}

// insertByPriority appends hook and keeps the slice ordered by priority.
// Hooks with equal priority run in registration order.
func insertByPriority[H Hook](hooks []H, hook H) []H {
	hooks = append(hooks, hook)
	sort.SliceStable(hooks, func(i, j int) bool {
		return hooks[i].Priority() < hooks[j].Priority()
	})
	return hooks
}
