package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/punchtape/tapecut/pkg/pipeline"
	"github.com/punchtape/tapecut/pkg/tape"
)

// previewOpts holds the command-line flags for the preview command.
type previewOpts struct {
	generateOpts

	mark        string // character for a punched hole
	space       string // character for an unpunched position
	interactive bool   // scrollable bubbletea viewer
}

// previewCommand creates the preview command: a read-only console projection
// of the assembled tape, useful for checking a layout before cutting.
func (c *CLI) previewCommand() *cobra.Command {
	opts := previewOpts{
		generateOpts: generateOpts{
			sprocketPos:    -1,
			length:         -1,
			leader:         pipeline.DefaultLeader,
			trailer:        pipeline.DefaultTrailer,
			level:          pipeline.DefaultLevel,
			rowsPerSegment: pipeline.DefaultRowsPerSegment,
			gap:            pipeline.DefaultGap,
		},
		mark:  "o",
		space: ".",
	}

	cmd := &cobra.Command{
		Use:   "preview [file]",
		Short: "Render the tape row-by-row in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			return c.runPreview(cmd.Context(), input, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.message, "message", "m", "", "literal message text")
	cmd.Flags().StringVarP(&opts.banner, "banner", "b", "", "banner text")
	cmd.Flags().IntVar(&opts.start, "start", 0, "code range start byte")
	cmd.Flags().IntVar(&opts.length, "length", opts.length, "code range length (-1 through the end)")
	cmd.Flags().IntVarP(&opts.level, "level", "l", opts.level, "tape level (1-8)")
	cmd.Flags().IntVar(&opts.sprocketPos, "sprocket", opts.sprocketPos, "sprocket position (-1 for the convention)")
	cmd.Flags().BoolVar(&opts.baudot, "baudot", false, "5-level Baudot/ITA2 code")
	cmd.Flags().BoolVar(&opts.wheatstone, "wheatstone", false, "Wheatstone Morse code")
	cmd.Flags().BoolVar(&opts.cable, "cable", false, "cable code Morse")
	cmd.Flags().StringVar(&opts.parity, "parity", "none", "parity: none, even, odd")
	cmd.Flags().BoolVar(&opts.invert, "invert", false, "invert every row")
	cmd.Flags().IntVar(&opts.leader, "leader", opts.leader, "blank leader rows")
	cmd.Flags().IntVar(&opts.trailer, "trailer", opts.trailer, "blank trailer rows")
	cmd.Flags().IntVar(&opts.rowsPerSegment, "rows-per-segment", opts.rowsPerSegment, "rows per physical segment")
	cmd.Flags().BoolVar(&opts.joiner, "joiner", false, "mark joiner segment boundaries")
	cmd.Flags().StringVar(&opts.numbering, "number", "", "regions to number: banner,leader,code,trailer,all")
	cmd.Flags().StringVar(&opts.mark, "mark", opts.mark, "character for a punched hole")
	cmd.Flags().StringVar(&opts.space, "space", opts.space, "character for an unpunched position")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "scrollable viewer")

	return cmd
}

// runPreview assembles and lays out the tape, then projects it as text.
func (c *CLI) runPreview(ctx context.Context, inputPath string, opts *previewOpts) error {
	opts.dryRun = true
	popts, err := c.pipelineOptions(inputPath, &opts.generateOpts)
	if err != nil {
		return err
	}

	result, err := c.newRunner().Preview(ctx, *popts)
	if err != nil {
		return err
	}

	lines := projectRows(result, popts, opts.mark, opts.space)
	if opts.interactive {
		return runRowViewer(lines)
	}
	for _, line := range lines {
		fmt.Println(line)
	}
	return nil
}

// projectRows renders the tape as text lines: one line per row, with region
// markers at region boundaries and a separator line at each joiner segment
// boundary. Purely a view over the assembled rows; nothing here feeds back
// into geometry.
func projectRows(result *pipeline.Result, popts *pipeline.Options, mark, space string) []string {
	segBoundary := map[int]int{}
	if popts.Joiner {
		for _, seg := range result.Segments {
			if seg.StartRow > 0 {
				segBoundary[seg.StartRow] = seg.Index
			}
		}
	}

	var lines []string
	lastRegion := tape.Region(-1)
	for i, row := range result.Rows {
		if idx, ok := segBoundary[i]; ok {
			lines = append(lines, StyleRegion.Render(
				fmt.Sprintf("====[ segment %d | code offset %d ]====", idx, result.Segments[idx].CodeOffset)))
		}
		if row.Region != lastRegion {
			lastRegion = row.Region
			lines = append(lines, StyleRegion.Render(fmt.Sprintf("----[ %s ]----", row.Region)))
		}
		lines = append(lines, projectRow(row, popts.Level, popts.SprocketPos, mark, space))
	}
	return lines
}

// projectRow renders one row's hole pattern, sprocket included, most
// significant bit on the left.
func projectRow(row tape.Row, level, sprocketPos int, mark, space string) string {
	var b strings.Builder
	if row.Number > 0 {
		b.WriteString(StyleDim.Render(fmt.Sprintf("%4d ", row.Number)))
	} else {
		b.WriteString("     ")
	}
	b.WriteString("|")
	if sprocketPos > level {
		sprocketPos = level
	}
	sprocketCol := level - sprocketPos
	for k := 0; k <= level; k++ {
		switch {
		case k == sprocketCol:
			b.WriteString(StyleDim.Render("·"))
		case row.Symbol.Bit(bitForColumn(k, level, sprocketCol)):
			b.WriteString(StyleMark.Render(mark))
		default:
			b.WriteString(space)
		}
	}
	b.WriteString("|")
	return b.String()
}

// bitForColumn maps a display column to its data bit, skipping the sprocket.
func bitForColumn(k, level, sprocketCol int) int {
	if k < sprocketCol {
		return level - 1 - k
	}
	return level - k
}
