package style

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Issue 描述一条带级别的诊断信息
type Issue struct {
	Level   string // error / warning
	Path    string
	Message string
}

// PrintHeading 打印一个区块标题
func PrintHeading(w io.Writer, title string) error {
	style := lipgloss.NewStyle().
		Foreground(ColorAccentText).
		Background(ColorAccentPrimary).
		Bold(true).
		Padding(0, 1)
	_, err := fmt.Fprintln(w, style.Render(strings.ToUpper(title)))
	return err
}

// PrintIssues 以对齐的方式打印诊断列表
func PrintIssues(w io.Writer, issues []Issue) error {
	if len(issues) == 0 {
		return nil
	}
	// 计算最大路径宽度用于对齐
	maxPath := 0
	for _, is := range issues {
		maxPath = max(maxPath, runewidth.StringWidth(is.Path))
	}

	re := lipgloss.NewRenderer(w)
	errStyle := re.NewStyle().Foreground(ColorDanger).Bold(true)
	warnStyle := re.NewStyle().Foreground(ColorWarning)
	pathStyle := re.NewStyle().Foreground(ColorMuted)
	msgStyle := re.NewStyle().Foreground(ColorText)

	for _, is := range issues {
		level := warnStyle.Render("warning")
		if is.Level == "error" {
			level = errStyle.Render("error  ")
		}
		padding := strings.Repeat(" ", maxPath-runewidth.StringWidth(is.Path))
		line := fmt.Sprintf("  %s %s%s  %s", level, pathStyle.Render(is.Path), padding, msgStyle.Render(is.Message))
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// PrintStatus 打印一行成功或失败的结论
func PrintStatus(w io.Writer, ok bool, msg string) error {
	re := lipgloss.NewRenderer(w)
	mark := re.NewStyle().Foreground(ColorSuccess).Render("✔")
	if !ok {
		mark = re.NewStyle().Foreground(ColorDanger).Render("✘")
	}
	_, err := fmt.Fprintf(w, "%s %s\n", mark, msg)
	return err
}
