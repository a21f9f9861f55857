package style

import (
	"io"

	"github.com/charmbracelet/glamour"
)

// RenderMarkdown 渲染传入的 Markdown 文本并输出到指定 writer
// 宽度为 0 时按终端宽度自动换行，限制在 [60, 120]
//
// 参数:
//
//  1. w: 输出的 io.Writer
//  2. input: 要渲染的 Markdown 文本
//  3. width: 渲染的宽度
//  4. styleName: glamour 样式名 (例如 "dracula", "dark", "light", "notty")
func RenderMarkdown(w io.Writer, input string, width int, styleName string) error {
	if styleName == "" {
		styleName = "dracula"
	}
	termWidth := DetectTerminalWidth(w)
	if width <= 0 {
		width = termWidth
	}
	if width <= 0 {
		width = 80
	}
	width = min(max(width, 60), 120)

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(styleName),
		glamour.WithWordWrap(width),
		glamour.WithInlineTableLinks(true),
	)
	if err != nil {
		return err
	}

	out, err := r.Render(input)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, out)
	return err
}
