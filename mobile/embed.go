//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// 构建前需要先把项目根目录的 data/game.yaml 复制到 mobile/data/ 下，
// embed 指令无法引用包目录之外的文件。
package mobile

import "embed"

//go:embed data/game.yaml
var dataFS embed.FS
