// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers can register
// hooks at startup to receive events about pipeline stage execution and
// drawing output.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach avoids import cycles (hooks are registered by main, not by
// libraries) and keeps the core library free of observability frameworks.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnTranscodeComplete(ctx, mode, symbols, duration)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the tape generation pipeline.
type PipelineHooks interface {
	// Transcode events
	OnTranscodeStart(ctx context.Context, mode string, inputBytes int)
	OnTranscodeComplete(ctx context.Context, mode string, symbols int, duration time.Duration)

	// Assembly events
	OnAssembleComplete(ctx context.Context, rows int, duration time.Duration)

	// Layout events
	OnLayoutComplete(ctx context.Context, segments int, duration time.Duration)

	// Emit events
	OnEmitComplete(ctx context.Context, entities int, duration time.Duration)
}

// =============================================================================
// Output Hooks
// =============================================================================

// OutputHooks receives events from the drawing sink.
type OutputHooks interface {
	// OnFileWritten records one persisted output file.
	OnFileWritten(ctx context.Context, path string, entities int)

	// OnWriteError records a failed save.
	OnWriteError(ctx context.Context, path string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnTranscodeStart(context.Context, string, int)                   {}
func (NoopPipelineHooks) OnTranscodeComplete(context.Context, string, int, time.Duration) {}
func (NoopPipelineHooks) OnAssembleComplete(context.Context, int, time.Duration)          {}
func (NoopPipelineHooks) OnLayoutComplete(context.Context, int, time.Duration)            {}
func (NoopPipelineHooks) OnEmitComplete(context.Context, int, time.Duration)              {}

// NoopOutputHooks is a no-op implementation of OutputHooks.
type NoopOutputHooks struct{}

func (NoopOutputHooks) OnFileWritten(context.Context, string, int)  {}
func (NoopOutputHooks) OnWriteError(context.Context, string, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	outputHooks   OutputHooks   = NoopOutputHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetOutputHooks registers custom output hooks.
// This should be called once at application startup before any output is written.
func SetOutputHooks(h OutputHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		outputHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Output returns the registered output hooks.
func Output() OutputHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return outputHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	outputHooks = NoopOutputHooks{}
}
