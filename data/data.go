// Package data 嵌入桌宠的内置数据文件
//
// //go:embed 只能嵌入当前包目录及其子目录的文件，
// 所以嵌入声明放在 data/ 目录自身，桌面端和终端都可以导入。
package data

import "embed"

// FS 内置数据文件，路径相对于 data/ 目录（例如 "pet.yaml"）
//
//go:embed pet.yaml
var FS embed.FS
