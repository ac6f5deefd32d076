//go:build !mobile

// 普通构建时 mobile 包只有这个文件；
// 绑定用的代码在 mobile.go 和 embed.go 中，需要 -tags mobile。
package mobile

// Dummy 让其他包在非移动端构建时也能引用 mobile 包
func Dummy() {}
