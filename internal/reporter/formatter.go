package reporter

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

const SEPARATOR_CHAR = "-"

// Returns the width of the terminal. If it cannot be determined, it returns
// a default value of 80.
func termWidth() int {
	width, _, err := term.GetSize(0)
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// Prints a separator line with a title.
//
// Example:
//
//	--- MyTitle ---------------------------------------
func printSeparatorWithTitle(w io.Writer, width int, title string) {
	preTitle := "--- "
	separatorWidth := width - len(title) - len(preTitle) - 1
	if separatorWidth < 0 {
		separatorWidth = 0
	}
	fmt.Fprintf(w, "%s%s %s\n", preTitle, title, strings.Repeat(SEPARATOR_CHAR, separatorWidth))
}

func printSeparator(w io.Writer, width int) {
	fmt.Fprintf(w, "%s\n", strings.Repeat(SEPARATOR_CHAR, width))
}

func simpleWordWrap(text string, maxWidth int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	lines := make([]string, 0)
	currentLine := words[0]
	for _, word := range words[1:] {
		if len(currentLine)+len(word)+1 > maxWidth {
			lines = append(lines, currentLine)
			currentLine = word
			continue
		}

		currentLine += " " + word
	}

	return append(lines, currentLine)
}
