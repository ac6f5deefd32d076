// Package services 提供 ebiten 前端使用的运行时服务：
// 设置持久化（gdata）、贴图与字体（ResourceManager）以及音效播放（AudioManager）。
package services
