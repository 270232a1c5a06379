package render

import (
	"github.com/gdamore/tcell/v2"
	textutil "github.com/kk-code-lab/partscat/internal/textutil"
	"github.com/mattn/go-runewidth"
)

// drawTextLine draws text starting at startX, stopping after maxWidth cells.
// Zero-width runes are attached to the preceding cell. Returns the x after the
// last drawn cell.
func (r *Renderer) drawTextLine(startX, y, maxWidth int, text string, style tcell.Style) int {
	x := startX
	runes := []rune(text)
	i := 0

	for i < len(runes) {
		mainc := runes[i]
		w := runewidth.RuneWidth(mainc)
		if w <= 0 {
			w = 1
		}
		if x-startX+w > maxWidth {
			break
		}
		i++

		var combc []rune
		for i < len(runes) && runewidth.RuneWidth(runes[i]) == 0 {
			combc = append(combc, runes[i])
			i++
		}

		r.screen.SetContent(x, y, mainc, combc, style)
		x += w
	}

	return x
}

// fillSpan paints blanks over [startX, endX) on row y.
func (r *Renderer) fillSpan(startX, endX, y int, style tcell.Style) {
	for x := startX; x < endX; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
}

// drawCell draws sanitized text padded to exactly width cells.
func (r *Renderer) drawCell(startX, y, width int, text string, style tcell.Style) {
	if width <= 0 {
		return
	}
	text = textutil.TruncateToWidth(textutil.SanitizeTerminalText(text), width)
	end := r.drawTextLine(startX, y, width, text, style)
	r.fillSpan(end, startX+width, y, style)
}

// tailToWidth keeps the end of text so the most recently typed runes stay
// visible in narrow fields.
func tailToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if textutil.DisplayWidth(text) <= width {
		return text
	}
	runes := []rune(text)
	used := 0
	start := len(runes)
	for start > 0 {
		w := textutil.DisplayWidth(string(runes[start-1]))
		if used+w > width {
			break
		}
		used += w
		start--
	}
	return string(runes[start:])
}
