// Package pipeline provides the core tape generation pipeline for tapecut.
//
// This package implements the complete transcode → assemble → layout → emit
// sequence that turns input bytes into punched-tape drawing files. The CLI
// is a thin shell over it; library callers get identical behavior.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Transcode: map input characters onto tape symbols (ASCII, Baudot,
//     Wheatstone, or cable code)
//  2. Assemble: build the ordered row list with banner, leader, code
//     sub-range, trailer, parity, and inversion
//  3. Layout: partition rows into physical segments with origins and
//     end caps
//  4. Emit: punch every row into the drawing sink and save the DXF file(s)
//
// The whole pipeline is single-threaded and synchronous: each invocation
// owns its row list and drawing buffer exclusively, and the work is bounded
// by the input size.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Message:    "HELLO",
//	    Mode:       pipeline.ModeBaudot,
//	    OutputPath: "hello.dxf",
//	}
//	result, err := runner.Generate(ctx, opts)
package pipeline

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/punchtape/tapecut/pkg/code"
	"github.com/punchtape/tapecut/pkg/dxf"
	"github.com/punchtape/tapecut/pkg/emit"
	"github.com/punchtape/tapecut/pkg/errors"
	"github.com/punchtape/tapecut/pkg/layout"
	"github.com/punchtape/tapecut/pkg/observability"
	"github.com/punchtape/tapecut/pkg/tape"
)

// Runner executes the pipeline. It is stateless apart from its logger, so a
// single Runner can serve many sequential Generate calls.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger falls back to the default.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Stats holds per-stage wall-clock timings.
type Stats struct {
	TranscodeTime time.Duration
	AssembleTime  time.Duration
	LayoutTime    time.Duration
	EmitTime      time.Duration
}

// SegmentInfo summarizes one laid-out segment for reporting.
type SegmentInfo struct {
	Index      int
	Rows       int
	StartRow   int
	CodeOffset int
}

// Result is the outcome of one Generate invocation.
type Result struct {
	// JobID uniquely identifies this invocation in logs and reports.
	JobID string

	// Rows is the assembled row list, exposed for console projections.
	Rows tape.List

	// Plan is the computed segment geometry.
	Plan *layout.Plan

	// Segments summarizes the physical strips.
	Segments []SegmentInfo

	// Files lists the output paths written, empty on a dry run.
	Files []string

	// Entities counts the drawing primitives emitted across all files.
	Entities int

	Stats Stats
}

// Generate runs the complete pipeline. On a dry run everything is computed
// but no file is written.
func (r *Runner) Generate(ctx context.Context, opts Options) (*Result, error) {
	rows, plan, result, err := r.prepare(ctx, &opts)
	if err != nil {
		return nil, err
	}

	emitStart := time.Now()
	drawing := dxf.NewDrawing()
	emitter := emit.New(drawing, emit.Options{
		Level:       opts.Level,
		SprocketPos: opts.SprocketPos,
		Mirror:      opts.Mirror,
		Chadless:    opts.Chadless,
	})

	groups := plan.FileGroups(opts.SegmentsPerFile)
	for i, group := range groups {
		for _, seg := range group {
			emitter.Segment(plan.TapeWidth, seg)
		}
		result.Entities += drawing.Len()

		path := opts.OutputPath
		if opts.SegmentsPerFile > 0 {
			path = dxf.NumberedPath(path, i+1)
		}
		if !opts.DryRun {
			if err := drawing.Save(path); err != nil {
				observability.Output().OnWriteError(ctx, path, err)
				return nil, errors.Wrap(errors.ErrCodeWriteFailed, err, "saving %s", path)
			}
			observability.Output().OnFileWritten(ctx, path, drawing.Len())
			result.Files = append(result.Files, path)
		}
		drawing.Reset()
	}
	result.Stats.EmitTime = time.Since(emitStart)
	observability.Pipeline().OnEmitComplete(ctx, result.Entities, result.Stats.EmitTime)

	r.Logger.Info("emitted geometry",
		"job", result.JobID,
		"entities", result.Entities,
		"files", len(result.Files),
		"dry-run", opts.DryRun,
		"duration", result.Stats.EmitTime)

	result.Rows = rows
	result.Plan = plan
	return result, nil
}

// Preview runs the pipeline up to layout, for console projections that never
// touch the drawing sink.
func (r *Runner) Preview(ctx context.Context, opts Options) (*Result, error) {
	rows, plan, result, err := r.prepare(ctx, &opts)
	if err != nil {
		return nil, err
	}
	result.Rows = rows
	result.Plan = plan
	return result, nil
}

// prepare resolves input, transcodes, assembles, and lays out.
func (r *Runner) prepare(ctx context.Context, opts *Options) (tape.List, *layout.Plan, *Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, nil, nil, err
	}

	result := &Result{JobID: uuid.NewString()}

	input, err := r.resolveInput(opts)
	if err != nil {
		return nil, nil, nil, err
	}

	transcodeStart := time.Now()
	observability.Pipeline().OnTranscodeStart(ctx, opts.Mode.String(), len(input))
	syms := opts.encoder().Encode(input)
	result.Stats.TranscodeTime = time.Since(transcodeStart)
	observability.Pipeline().OnTranscodeComplete(ctx, opts.Mode.String(), len(syms), result.Stats.TranscodeTime)

	r.Logger.Debug("transcoded input",
		"job", result.JobID,
		"mode", opts.Mode,
		"bytes", len(input),
		"symbols", len(syms))

	assembleStart := time.Now()
	rows := tape.Spec{
		Level:   opts.Level,
		Banner:  code.BannerColumns(opts.Banner),
		Code:    syms,
		Start:   opts.Start,
		Length:  opts.Length,
		Leader:  opts.Leader,
		Trailer: opts.Trailer,
		Parity:  opts.Parity,
		Invert:  opts.Invert,
		Numbers: opts.Numbers,
	}.Assemble()
	result.Stats.AssembleTime = time.Since(assembleStart)
	observability.Pipeline().OnAssembleComplete(ctx, len(rows), result.Stats.AssembleTime)

	r.Logger.Info("assembled rows",
		"job", result.JobID,
		"rows", len(rows),
		"code", rows.Count(tape.RegionCode),
		"banner", rows.Count(tape.RegionBanner),
		"duration", result.Stats.AssembleTime)

	layoutStart := time.Now()
	plan := layout.Compute(rows, layout.Options{
		RowsPerSegment:  opts.RowsPerSegment,
		Level:           opts.Level,
		Gap:             opts.Gap,
		Vee:             opts.Vee,
		Joiner:          opts.Joiner,
		SegmentsPerFile: opts.SegmentsPerFile,
		ExactSegments:   opts.ExactSegments,
	})
	result.Stats.LayoutTime = time.Since(layoutStart)
	observability.Pipeline().OnLayoutComplete(ctx, len(plan.Segments), result.Stats.LayoutTime)

	for _, seg := range plan.Segments {
		result.Segments = append(result.Segments, SegmentInfo{
			Index:      seg.Index,
			Rows:       len(seg.Rows),
			StartRow:   seg.StartRow,
			CodeOffset: seg.CodeOffset,
		})
	}

	r.Logger.Info("computed layout",
		"job", result.JobID,
		"segments", len(plan.Segments),
		"width", plan.TapeWidth,
		"duration", result.Stats.LayoutTime)

	return rows, plan, result, nil
}

// resolveInput picks the code-region bytes by priority: explicit message,
// then input file, then banner-only (no code region at all).
func (r *Runner) resolveInput(opts *Options) ([]byte, error) {
	switch {
	case opts.Message != "":
		return []byte(opts.Message), nil
	case len(opts.Input) > 0:
		return opts.Input, nil
	case opts.InputPath != "":
		data, err := os.ReadFile(opts.InputPath)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "reading %s", opts.InputPath)
		}
		return data, nil
	default:
		return nil, nil
	}
}

// encoder instantiates the transcoder for the configured mode.
func (o *Options) encoder() code.Encoder {
	switch o.Mode {
	case ModeBaudot:
		return code.Baudot{}
	case ModeWheatstone:
		return code.Wheatstone{}
	case ModeCable:
		return code.CableCode{}
	default:
		return code.ASCII{TapeLevel: o.Level}
	}
}
