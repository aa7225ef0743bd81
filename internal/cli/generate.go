package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/punchtape/tapecut/pkg/errors"
	"github.com/punchtape/tapecut/pkg/pipeline"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	output     string // output DXF path
	message    string // literal message text (wins over the input file)
	banner     string // banner text punched through the bitmap font
	bannerFile string // file whose first line becomes the banner text

	start  int // code range start; negative pads with blank rows
	length int // code range length; -1 runs through the end

	level       int  // tape level 1-8
	sprocketPos int  // feed hole position; -1 picks the convention
	baudot      bool // ITA2 5-level mode
	wheatstone  bool // Wheatstone Morse mode
	cable       bool // cable code Morse mode
	parity      string
	invert      bool
	mirror      bool
	chadless    bool

	leader  int
	trailer int

	rowsPerSegment  int
	gap             float64
	segmentsPerFile int
	vee             bool
	joiner          bool
	exactSegments   bool

	numbering string
	profile   string
	dryRun    bool
}

// generateCommand creates the generate command, the main entry point for
// producing tape drawings.
func (c *CLI) generateCommand() *cobra.Command {
	opts := generateOpts{
		sprocketPos:    -1,
		length:         -1,
		leader:         pipeline.DefaultLeader,
		trailer:        pipeline.DefaultTrailer,
		level:          pipeline.DefaultLevel,
		rowsPerSegment: pipeline.DefaultRowsPerSegment,
		gap:            pipeline.DefaultGap,
	}

	cmd := &cobra.Command{
		Use:   "generate [file]",
		Short: "Generate punched-tape DXF geometry from bytes, text, or a banner",
		Long: `Generate punched-tape DXF geometry.

Input sources, in priority order: --message text, the input file argument,
or --banner alone (which lays out banner rows with no code region). The
output is one DXF file, or a numbered series when --segments-per-file is
set.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			return c.runGenerate(cmd.Context(), input, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output DXF file (default derived from input)")
	cmd.Flags().StringVarP(&opts.message, "message", "m", "", "literal message text (wins over the input file)")
	cmd.Flags().StringVarP(&opts.banner, "banner", "b", "", "banner text punched in the 5x7 font")
	cmd.Flags().StringVar(&opts.bannerFile, "banner-file", "", "file whose first line becomes the banner text")
	cmd.Flags().IntVar(&opts.start, "start", 0, "code range start byte (negative pads with blank rows)")
	cmd.Flags().IntVar(&opts.length, "length", opts.length, "code range length (-1 through the end)")
	cmd.Flags().IntVarP(&opts.level, "level", "l", opts.level, "tape level: data holes per row (1-8)")
	cmd.Flags().IntVar(&opts.sprocketPos, "sprocket", opts.sprocketPos, "sprocket position 0-level (-1 for the convention)")
	cmd.Flags().BoolVar(&opts.baudot, "baudot", false, "punch 5-level Baudot/ITA2 code (forces level 5)")
	cmd.Flags().BoolVar(&opts.wheatstone, "wheatstone", false, "punch Wheatstone Morse code (forces level 2)")
	cmd.Flags().BoolVar(&opts.cable, "cable", false, "punch cable code Morse (forces level 2)")
	cmd.Flags().StringVar(&opts.parity, "parity", "none", "parity in the top bit: none, even, odd")
	cmd.Flags().BoolVar(&opts.invert, "invert", false, "invert every row's bit pattern")
	cmd.Flags().BoolVar(&opts.mirror, "mirror", false, "mirror hole positions for punching from the back")
	cmd.Flags().BoolVar(&opts.chadless, "chadless", false, "cut partial arcs so chads stay attached")
	cmd.Flags().IntVar(&opts.leader, "leader", opts.leader, "blank leader rows")
	cmd.Flags().IntVar(&opts.trailer, "trailer", opts.trailer, "blank trailer rows")
	cmd.Flags().IntVar(&opts.rowsPerSegment, "rows-per-segment", opts.rowsPerSegment, "rows per physical segment (cutting-mat bound)")
	cmd.Flags().Float64Var(&opts.gap, "gap", opts.gap, "gap between segment strips in mm")
	cmd.Flags().IntVar(&opts.segmentsPerFile, "segments-per-file", 0, "segments per numbered output file (0 = one file)")
	cmd.Flags().BoolVar(&opts.vee, "vee", false, "cut vee notches on the tape ends")
	cmd.Flags().BoolVar(&opts.joiner, "joiner", false, "cut a double-width joiner tape with splice tabs")
	cmd.Flags().BoolVar(&opts.exactSegments, "exact-segments", false, "use exact segment division (no spare trailing segment)")
	cmd.Flags().StringVar(&opts.numbering, "number", "", "regions to number in previews: banner,leader,code,trailer,all")
	cmd.Flags().StringVar(&opts.profile, "profile", "", "named tape profile from the config file")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "compute everything but write no files")

	return cmd
}

// runGenerate resolves flags into pipeline options and runs the job.
func (c *CLI) runGenerate(ctx context.Context, inputPath string, opts *generateOpts) error {
	popts, err := c.pipelineOptions(inputPath, opts)
	if err != nil {
		return err
	}

	spinner := newSpinnerWithContext(ctx, "Punching tape geometry...")
	spinner.Start()

	start := time.Now()
	result, err := c.newRunner().Generate(ctx, *popts)
	if err != nil {
		spinner.StopWithError(fmt.Sprintf("Generation failed: %v", err))
		return err
	}
	spinner.Stop()

	printSuccess("Generated %d rows in %d segment(s) (%s)",
		len(result.Rows), len(result.Segments), time.Since(start).Round(time.Millisecond))
	printKeyValue("level", fmt.Sprintf("%d", popts.Level))
	printKeyValue("mode", popts.Mode.String())
	printKeyValue("width", fmt.Sprintf("%.2f mm", result.Plan.TapeWidth))
	printKeyValue("entities", fmt.Sprintf("%d", result.Entities))
	if popts.Joiner {
		for _, seg := range result.Segments {
			printInfo("segment %d: start row %d, code offset %d", seg.Index, seg.StartRow, seg.CodeOffset)
		}
	}
	if popts.DryRun {
		printInfo("dry run: no files written")
		return nil
	}
	for _, f := range result.Files {
		printFile(f)
	}
	return nil
}

// pipelineOptions merges the profile, flags, and input path into the single
// configuration record the pipeline consumes.
func (c *CLI) pipelineOptions(inputPath string, opts *generateOpts) (*pipeline.Options, error) {
	if opts.profile != "" {
		if err := applyProfile(opts.profile, opts); err != nil {
			return nil, err
		}
	}

	mode, err := parseMode(opts.baudot, opts.wheatstone, opts.cable)
	if err != nil {
		return nil, err
	}
	parity, err := parseParity(opts.parity)
	if err != nil {
		return nil, err
	}
	numbers, err := parseNumbering(opts.numbering)
	if err != nil {
		return nil, err
	}

	banner := opts.banner
	if banner == "" && opts.bannerFile != "" {
		banner, err = readBannerFile(opts.bannerFile)
		if err != nil {
			return nil, err
		}
	}

	output := opts.output
	if output == "" {
		output = defaultOutputPath(inputPath)
	}

	return &pipeline.Options{
		Message:         opts.message,
		InputPath:       inputPath,
		Banner:          banner,
		OutputPath:      output,
		DryRun:          opts.dryRun,
		Start:           opts.start,
		Length:          opts.length,
		Mode:            mode,
		Level:           opts.level,
		SprocketPos:     opts.sprocketPos,
		Parity:          parity,
		Invert:          opts.invert,
		Mirror:          opts.mirror,
		Chadless:        opts.chadless,
		Leader:          opts.leader,
		Trailer:         opts.trailer,
		RowsPerSegment:  opts.rowsPerSegment,
		Gap:             opts.gap,
		SegmentsPerFile: opts.segmentsPerFile,
		Vee:             opts.vee,
		Joiner:          opts.joiner,
		ExactSegments:   opts.exactSegments,
		Numbers:         numbers,
	}, nil
}

// readBannerFile reads the first line of path as banner text.
func readBannerFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeFileNotFound, err, "reading banner file %s", path)
	}
	text := string(data)
	if i := strings.IndexAny(text, "\r\n"); i >= 0 {
		text = text[:i]
	}
	return text, nil
}
