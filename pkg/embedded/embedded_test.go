package embedded

import (
	"errors"
	"testing"
	"testing/fstest"
)

func resetEmbedded(t *testing.T) {
	t.Helper()
	initialized = false
	dataFS = nil
	t.Cleanup(func() {
		initialized = false
		dataFS = nil
	})
}

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/game.yaml": &fstest.MapFile{Data: []byte("debug: true\n")},
	}
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	resetEmbedded(t)

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(testFS())

	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}
}

// TestNotInitialized 测试未初始化时的访问
func TestNotInitialized(t *testing.T) {
	resetEmbedded(t)

	if _, err := Open("data/game.yaml"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Open() before Init(): got %v, want ErrNotInitialized", err)
	}
	if _, err := ReadFile("data/game.yaml"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("ReadFile() before Init(): got %v, want ErrNotInitialized", err)
	}
	if Exists("data/game.yaml") {
		t.Error("Expected Exists() to return false before Init()")
	}
}

// TestReadFile 测试读取嵌入文件和路径标准化
func TestReadFile(t *testing.T) {
	resetEmbedded(t)
	Init(testFS())

	for _, path := range []string{"data/game.yaml", "./data/game.yaml"} {
		data, err := ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile(%q) error: %v", path, err)
		}
		if string(data) != "debug: true\n" {
			t.Errorf("ReadFile(%q): got %q", path, data)
		}
	}

	if !Exists("data/game.yaml") {
		t.Error("Exists(data/game.yaml): got false, want true")
	}
	if Exists("data/missing.yaml") {
		t.Error("Exists(data/missing.yaml): got true, want false")
	}
}

// TestInvalidPrefix 测试无效路径前缀
func TestInvalidPrefix(t *testing.T) {
	resetEmbedded(t)
	Init(testFS())

	_, err := ReadFile("assets/test.txt")
	if err == nil {
		t.Fatal("Expected error for invalid path prefix")
	}
	if err.Error() != "unknown resource path prefix: assets/test.txt (must start with 'data/')" {
		t.Errorf("Unexpected error message: %v", err)
	}
}
