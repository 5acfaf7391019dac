package embedded

import (
	"testing"
	"testing/fstest"

	"github.com/gonewx/lildrake/data"
)

// reset 恢复未初始化状态，避免影响其他测试
func reset(t *testing.T) {
	t.Cleanup(func() {
		dataFS = nil
		initialized = false
	})
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	reset(t)
	Init(nil)
	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false for a nil FS")
	}

	Init(fstest.MapFS{})
	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}
}

// TestReadFileNotInitialized 测试未初始化时调用 ReadFile
func TestReadFileNotInitialized(t *testing.T) {
	reset(t)
	initialized = false

	_, err := ReadFile("data/pet.yaml")
	if err == nil || err.Error() != "embedded package not initialized, call Init() first" {
		t.Errorf("Unexpected error: %v", err)
	}
	if Exists("data/pet.yaml") {
		t.Error("Exists() should be false before Init()")
	}
}

// TestReadFilePaths 测试路径标准化和前缀检查
func TestReadFilePaths(t *testing.T) {
	reset(t)
	Init(fstest.MapFS{
		"hello.txt": {Data: []byte("hi")},
	})

	for _, path := range []string{"data/hello.txt", "./data/hello.txt"} {
		got, err := ReadFile(path)
		if err != nil || string(got) != "hi" {
			t.Errorf("ReadFile(%q) = %q, %v", path, got, err)
		}
	}

	if _, err := ReadFile("assets/hello.txt"); err == nil {
		t.Error("Expected error for a non-data path")
	}
	if !Exists("data/hello.txt") || Exists("data/missing.txt") || Exists("hello.txt") {
		t.Error("Exists() returned unexpected results")
	}
}

// TestLoadPetConfig 验证嵌入的内置配置可解析
func TestLoadPetConfig(t *testing.T) {
	reset(t)
	Init(data.FS)

	cfg, err := LoadPetConfig()
	if err != nil {
		t.Fatalf("LoadPetConfig() error: %v", err)
	}
	if cfg.Sprite.Width != 100 || len(cfg.Actions) != 23 {
		t.Errorf("unexpected config: sprite %v, %d actions", cfg.Sprite, len(cfg.Actions))
	}
}

func TestLoadPetConfigMissing(t *testing.T) {
	reset(t)
	Init(fstest.MapFS{})
	if _, err := LoadPetConfig(); err == nil {
		t.Error("Expected error when pet.yaml is missing")
	}
}
