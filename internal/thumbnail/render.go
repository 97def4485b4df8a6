package thumbnail

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nfnt/resize"
)

const upperHalfBlock = "▀"

// Render draws img into cols×rows terminal cells. Each cell shows two
// vertically stacked pixels: the foreground paints the top one and the
// background the bottom one.
func Render(img image.Image, cols, rows int) string {
	if img == nil || cols <= 0 || rows <= 0 {
		return Blank(cols, rows)
	}
	small := resize.Resize(uint(cols), uint(rows*2), img, resize.Bilinear)
	b := small.Bounds()

	lines := make([]string, rows)
	var line strings.Builder
	for row := 0; row < rows; row++ {
		line.Reset()
		for col := 0; col < cols; col++ {
			top := small.At(b.Min.X+col, b.Min.Y+row*2)
			bottom := small.At(b.Min.X+col, b.Min.Y+row*2+1)
			line.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(hexColor(top))).
				Background(lipgloss.Color(hexColor(bottom))).
				Render(upperHalfBlock))
		}
		lines[row] = line.String()
	}
	return strings.Join(lines, "\n")
}

// Blank returns an empty cols×rows slot.
func Blank(cols, rows int) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}
	lines := make([]string, rows)
	for i := range lines {
		lines[i] = strings.Repeat(" ", cols)
	}
	return strings.Join(lines, "\n")
}

func hexColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
