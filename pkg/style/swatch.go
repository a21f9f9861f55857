package style

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Swatch 是一个带名称的颜色样本
type Swatch struct {
	Name string
	Hex  string
	Note string
}

// PrintSwatches 每行输出一个色块、名称、十六进制值和备注，名称按显示宽度对齐
func PrintSwatches(w io.Writer, title string, swatches []Swatch) error {
	if title != "" {
		if err := PrintHeading(w, title); err != nil {
			return err
		}
	}
	nameWidth := 0
	for _, s := range swatches {
		nameWidth = max(nameWidth, runewidth.StringWidth(s.Name))
	}

	re := lipgloss.NewRenderer(w)
	nameStyle := re.NewStyle().Foreground(ColorText)
	noteStyle := re.NewStyle().Foreground(ColorMuted)
	for _, s := range swatches {
		hex := s.Hex
		if len(hex) == 9 {
			hex = hex[:7]
		}
		block := re.NewStyle().Background(lipgloss.Color(hex)).Render("      ")
		name := runewidth.FillRight(s.Name, nameWidth)
		line := fmt.Sprintf("%s  %s  %-9s", block, nameStyle.Render(name), s.Hex)
		if s.Note != "" {
			line += "  " + noteStyle.Render(s.Note)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
