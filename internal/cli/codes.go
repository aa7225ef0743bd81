package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/punchtape/tapecut/pkg/code"
)

// codesCommand creates the codes command, which prints the character set of
// each supported tape code.
func (c *CLI) codesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "codes",
		Short: "Show the character set of each tape code",
		Long: `Show which characters each tape code can punch.

ASCII mode passes bytes through unchanged and is not listed. ITA2/Baudot is
a shifted 5-level code; characters sharing a row are reached through the
FIGS and LTRS shift codes. The Wheatstone and cable codes share one Morse
dot-dash table and differ only in how pulses land on the two channels.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printBaudotCharset()
			fmt.Println()
			printMorseCharset()
		},
	}
}

func printBaudotCharset() {
	fmt.Println(StyleTitle.Render("ITA2 / Baudot (5-level)"))
	fmt.Println(StyleDim.Render("  LTRS   FIGS   code"))
	for _, e := range code.BaudotCharset() {
		fig := " "
		if e.Figure != 0 {
			fig = displayRune(e.Figure)
		}
		fmt.Printf("  %s      %s      %s\n",
			StyleValue.Render(displayRune(e.Char)),
			StyleValue.Render(fig),
			StyleDim.Render(fmt.Sprintf("%05b", uint16(e.Code))))
	}
}

func printMorseCharset() {
	fmt.Println(StyleTitle.Render("Morse (Wheatstone and cable code)"))
	var line strings.Builder
	for i, e := range code.MorseCharset() {
		if i > 0 && i%6 == 0 {
			fmt.Println(line.String())
			line.Reset()
		}
		line.WriteString(fmt.Sprintf("  %s %s",
			StyleValue.Render(displayRune(e.Char)),
			StyleDim.Render(fmt.Sprintf("%-8s", e.Pattern))))
	}
	if line.Len() > 0 {
		fmt.Println(line.String())
	}
}

// displayRune renders control characters and space as readable labels.
func displayRune(r rune) string {
	switch r {
	case ' ':
		return "␣"
	case '\r':
		return "⏎"
	case '\n':
		return "↓"
	case '\a':
		return "·"
	}
	return string(r)
}
