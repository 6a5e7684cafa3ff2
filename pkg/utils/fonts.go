package utils

import (
	"bytes"
	"log"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Faces 界面使用的字体
type Faces struct {
	HUD     text.Face // 分数、关卡
	Banner  text.Face // "BOSS BATTLE!"、"Level N"
	Title   text.Face // "Game Over!"
	Caption text.Face // 提示副标题、按钮文字
}

// LoadFaces 加载内置的 Go 字体
// 字体解析失败时退回 basicfont 位图字体，保证界面仍能显示文字
func LoadFaces() Faces {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Printf("[Fonts] 加载 Go Regular 失败，使用位图字体: %v", err)
		return fallbackFaces()
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		log.Printf("[Fonts] 加载 Go Bold 失败，使用 Regular: %v", err)
		bold = regular
	}

	return Faces{
		HUD:     &text.GoTextFace{Source: regular, Size: 20},
		Banner:  &text.GoTextFace{Source: bold, Size: 72},
		Title:   &text.GoTextFace{Source: bold, Size: 48},
		Caption: &text.GoTextFace{Source: bold, Size: 24},
	}
}

func fallbackFaces() Faces {
	face := text.NewGoXFace(basicfont.Face7x13)
	return Faces{HUD: face, Banner: face, Title: face, Caption: face}
}
