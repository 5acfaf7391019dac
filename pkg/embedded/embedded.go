// Package embedded 提供嵌入资源的统一访问接口
//
// embed.FS 变量声明在 data 包（data/data.go），根目录是 data/ 本身。
// 本包提供包装函数，让其他包按 "data/..." 路径访问嵌入的数据文件。
//
// 使用前必须调用 Init() 初始化。
package embedded

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/gonewx/lildrake/pkg/config"
)

// PetConfigPath 内置桌宠配置的路径
const PetConfigPath = "data/pet.yaml"

var (
	dataFS      fs.FS
	initialized bool
)

// Init 初始化数据文件系统，data 的根目录对应 data/
// 必须在 main() 开始时、任何资源加载之前调用
func Init(data fs.FS) {
	dataFS = data
	initialized = data != nil
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// normalize 标准化路径：正斜杠、去掉 "./" 前缀，要求以 "data/" 开头，
// 返回相对于 data/ 目录的路径
func normalize(path string) (string, error) {
	path = filepath.ToSlash(path)
	path = strings.TrimPrefix(path, "./")
	rel, ok := strings.CutPrefix(path, "data/")
	if !ok {
		return "", fmt.Errorf("unknown resource path prefix: %s (must start with 'data/')", path)
	}
	return rel, nil
}

// ReadFile 读取嵌入的数据文件
// 路径必须以 "data/" 开头
func ReadFile(path string) ([]byte, error) {
	if !initialized {
		return nil, fmt.Errorf("embedded package not initialized, call Init() first")
	}
	path, err := normalize(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(dataFS, path)
}

// Exists 检查文件是否存在于嵌入数据中
func Exists(path string) bool {
	if !initialized {
		return false
	}
	path, err := normalize(path)
	if err != nil {
		return false
	}
	_, err = fs.Stat(dataFS, path)
	return err == nil
}

// LoadPetConfig 读取并校验内置的桌宠配置
func LoadPetConfig() (*config.PetConfig, error) {
	data, err := ReadFile(PetConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded pet config: %w", err)
	}
	return config.ParsePetConfig(data)
}
