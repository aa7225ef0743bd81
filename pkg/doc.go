// Package pkg provides the core libraries for Tapecut punched-tape generation.
//
// # Overview
//
// Tapecut turns bytes, text, or banner messages into punched-paper-tape
// geometry that a desktop CNC stencil cutter can cut. The pkg directory is
// organized along the generation pipeline:
//
//  1. [code] - Tape codes (ASCII, ITA2/Baudot, Wheatstone, cable) and the banner font
//  2. [tape] - Row assembly (regions, parity, inversion, range padding, numbering)
//  3. [layout] - Segment planning against the cutting-mat working area
//  4. [emit] - Hole and outline geometry per segment
//  5. [dxf] - Minimal DXF R12 drawing sink
//  6. [pipeline] - Orchestration (transcode → assemble → layout → emit → write)
//
// # Architecture
//
// The typical data flow through Tapecut:
//
//	Input bytes / message / banner
//	         ↓
//	    [code] package (transcode to tape symbols)
//	         ↓
//	    [tape] package (assemble rows: banner, leader, code, trailer)
//	         ↓
//	    [layout] package (split rows into cutting-mat segments)
//	         ↓
//	    [emit] package (holes, edges, end caps)
//	         ↓
//	    DXF output files
//
// # Quick Start
//
// Generate a tape drawing from a message:
//
//	import (
//	    "context"
//	    "github.com/punchtape/tapecut/pkg/pipeline"
//	)
//
//	opts := pipeline.Options{
//	    Message:    "HELLO WORLD",
//	    Mode:       pipeline.ModeBaudot,
//	    OutputPath: "hello.dxf",
//	}
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Generate(context.Background(), opts)
//
// # Main Packages
//
// [code] - Tape codes implementing the Encoder interface. ASCII passes bytes
// through at the configured level; Baudot emits 5-level ITA2 with FIGS/LTRS
// shift tracking; Wheatstone and CableCode expand Morse dot-dash patterns
// into two-channel pulse rows. BannerColumns rasterizes text through a 5x7
// column font for human-readable tape headers.
//
// [tape] - Assembles the full row list from a Spec: banner columns, blank
// leader, the selected code range (with blank padding outside the data),
// and trailer. Applies parity to the top channel, optional inversion, and
// row numbering per region.
//
// [layout] - Plans how the row list splits into segments that fit the
// cutting mat, including tape width by level, vee and joiner-tab end caps,
// joiner row offsets, and grouping segments into output files.
//
// [emit] - Converts one segment into drawing primitives through the Sink
// interface: data and sprocket holes (circles, or arcs for chadless tape),
// tape edges, and end-cap outlines. Supports mirrored output for punching
// from the back of the tape.
//
// [dxf] - A minimal DXF R12 writer supporting LINE, CIRCLE, and ARC
// entities, with numbered-file naming for paginated output.
//
// [pipeline] - Runs the whole generation end to end with validation,
// structured logging, and observability hooks. Preview stops after layout
// for terminal rendering without touching disk.
//
// [errors] - Structured errors with machine-readable codes and the
// validation helpers shared by the pipeline and CLI.
//
// [observability] - Pluggable hooks for pipeline stage timings and file
// writes, with no-op defaults.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/code/...       # Specific package
//
// [code]: https://pkg.go.dev/github.com/punchtape/tapecut/pkg/code
// [tape]: https://pkg.go.dev/github.com/punchtape/tapecut/pkg/tape
// [layout]: https://pkg.go.dev/github.com/punchtape/tapecut/pkg/layout
// [emit]: https://pkg.go.dev/github.com/punchtape/tapecut/pkg/emit
// [dxf]: https://pkg.go.dev/github.com/punchtape/tapecut/pkg/dxf
// [pipeline]: https://pkg.go.dev/github.com/punchtape/tapecut/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/punchtape/tapecut/pkg/errors
// [observability]: https://pkg.go.dev/github.com/punchtape/tapecut/pkg/observability
package pkg
