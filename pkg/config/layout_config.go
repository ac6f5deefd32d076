package config

// 布局配置
// 窗口由上到下依次为：边距、信息栏（分数）、两倍边距、地图、边距

// Layout 由网格配置推导出的像素布局
type Layout struct {
	CellSize int

	// MapW, MapH 地图尺寸（像素）
	MapW, MapH int

	// MapX, MapY 地图视口在窗口中的左上角
	MapX, MapY int

	// WindowW, WindowH 逻辑窗口尺寸
	WindowW, WindowH int

	// InfoX, InfoY, InfoH 信息栏位置
	InfoX, InfoY, InfoH int
}

// Layout 计算像素布局
func (c *GameConfig) Layout() Layout {
	g := c.Grid
	l := Layout{
		CellSize: g.CellSize,
		MapW:     g.Cols * g.CellSize,
		MapH:     g.Rows * g.CellSize,
		InfoH:    g.InfoHeight,
	}
	l.WindowW = l.MapW + g.Padding*2
	l.WindowH = l.MapH + g.InfoHeight + g.Padding*4

	l.MapX = l.WindowW/2 - l.MapW/2
	l.MapY = g.Padding*3 + g.InfoHeight

	l.InfoX = g.Padding
	l.InfoY = g.Padding
	return l
}
