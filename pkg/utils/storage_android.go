//go:build android

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnsureStorageDir 在 gdata 打开存储前创建应用私有目录并确认可写
//
// gdata 在 Android 上把数据写到 /data/data/{package}/ 下，但不会创建子目录。
func EnsureStorageDir(appName string) error {
	dir := StoragePath(appName)
	if dir == "" {
		return fmt.Errorf("cannot detect Android package for %s", appName)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create storage dir %s: %w", dir, err)
	}

	probe := filepath.Join(dir, ".probe")
	if err := os.WriteFile(probe, nil, 0o644); err != nil {
		return fmt.Errorf("storage dir %s is not writable: %w", dir, err)
	}
	return os.Remove(probe)
}

// StoragePath 返回 /data/data/{package}/{appName}，检测不到包名时返回空字符串
func StoragePath(appName string) string {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return ""
	}
	// cmdline 以 NUL 分隔，第一个字段是包名
	pkg, _, _ := strings.Cut(string(data), "\x00")
	pkg = strings.TrimSpace(pkg)
	if pkg == "" {
		return ""
	}
	return filepath.Join("/data/data", pkg, appName)
}
