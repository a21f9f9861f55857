// Package style 提供多种样式化输出功能，配色取自 Vivid 主题本身
package style

import "github.com/charmbracelet/lipgloss"

// 定义一套颜色，方便管理和修改
const (
	// 主题强调色，用于吸引注意力的元素，如表头背景（Vivid 紫）
	ColorAccentPrimary = lipgloss.Color("#D946EF")

	// 强调文本色，用于在强调背景(AccentPrimary)上显示的文本，以确保对比度
	ColorAccentText = lipgloss.Color("#FFFFFF")

	// 主要文本颜色，用于普通的数据行内容
	ColorText = lipgloss.Color("#E4E4E7")

	// 次要文本颜色，用于说明与路径
	ColorMuted = lipgloss.Color("#A1A1AA")

	// 边框颜色，用于表格或容器的轮廓
	ColorBorder = lipgloss.Color("#3F3F46")

	// 危险/错误强调色
	ColorDanger = lipgloss.Color("#C41E3A")

	// 警告色
	ColorWarning = lipgloss.Color("#FBBF24")

	// 成功/通过 绿色
	ColorSuccess = lipgloss.Color("#4ADE80")
)
