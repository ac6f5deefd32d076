//go:build !android

package utils

// EnsureStorageDir 桌面平台由 gdata 自行创建目录，无需处理
func EnsureStorageDir(appName string) error {
	return nil
}

// StoragePath 桌面平台的存储位置由 gdata 决定，返回空字符串
func StoragePath(appName string) string {
	return ""
}
