package utils

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WrapText 按单词把文字折成宽度不超过 maxWidth 的多行
//
// 参数:
//   - str: 要折行的文字，连续空白视为一个分隔
//   - face: 用于测量宽度的字体
//   - maxWidth: 每行最大宽度（像素）
//
// 返回:
//   - []string: 折行结果，至少一行
//
// 单个单词本身超宽时独占一行，不在单词内部断开。
// face 为空或 maxWidth 非正时原样返回。
func WrapText(str string, face text.Face, maxWidth float64) []string {
	words := strings.Fields(str)
	if face == nil || maxWidth <= 0 || len(words) == 0 {
		return []string{str}
	}

	lines := make([]string, 0, 2)
	line := words[0]
	for _, word := range words[1:] {
		candidate := line + " " + word
		if text.Advance(candidate, face) <= maxWidth {
			line = candidate
			continue
		}
		lines = append(lines, line)
		line = word
	}
	return append(lines, line)
}

// LineHeight 返回字体的行距（上升 + 下降 + 行间距）
func LineHeight(face text.Face) float64 {
	if face == nil {
		return 0
	}
	m := face.Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}
