package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Pipeline hooks
	p := NoopPipelineHooks{}
	p.OnTranscodeStart(ctx, "baudot", 42)
	p.OnTranscodeComplete(ctx, "baudot", 50, time.Second)
	p.OnAssembleComplete(ctx, 120, time.Second)
	p.OnLayoutComplete(ctx, 3, time.Second)
	p.OnEmitComplete(ctx, 900, time.Second)

	// Output hooks
	o := NoopOutputHooks{}
	o.OnFileWritten(ctx, "tape.dxf", 900)
	o.OnWriteError(ctx, "tape.dxf", nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}
	if _, ok := Output().(NoopOutputHooks); !ok {
		t.Error("Output() should return NoopOutputHooks by default")
	}

	// Set custom hooks
	customPipeline := &testPipelineHooks{}
	SetPipelineHooks(customPipeline)
	if Pipeline() != customPipeline {
		t.Error("SetPipelineHooks should set custom hooks")
	}

	customOutput := &testOutputHooks{}
	SetOutputHooks(customOutput)
	if Output() != customOutput {
		t.Error("SetOutputHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() should restore NoopPipelineHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testPipelineHooks{}
	SetPipelineHooks(custom)

	// Setting nil should be ignored
	SetPipelineHooks(nil)

	if Pipeline() != custom {
		t.Error("SetPipelineHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testPipelineHooks struct{ NoopPipelineHooks }
type testOutputHooks struct{ NoopOutputHooks }
