// Package term 是游戏的终端前端
//
// 核心生成的 DrawList 被合成到一个字符单元缓冲区：地图每格占 2 列 1 行，
// 填充命令按覆盖面积做透明度混合（go-colorful），贴图映射为背景色或字符。
// 缓冲区最终写入 tcell 屏幕。
package term
