package components

import "fmt"

// Direction 网格上的移动方向
//
// 枚举值的顺序是有意义的：相邻两个方向互相垂直，
// 差值为偶数的两个方向位于同一轴线上。
type Direction int

const (
	DirUp Direction = iota
	DirLeft
	DirDown
	DirRight
)

// String 返回方向名称
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirLeft:
		return "Left"
	case DirDown:
		return "Down"
	case DirRight:
		return "Right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// SameAxis 报告两个方向是否位于同一轴线（相同或相反）
func (d Direction) SameAxis(other Direction) bool {
	return (int(d)-int(other))%2 == 0
}

// Opposite 返回相反方向
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Delta 返回沿该方向前进一格的坐标增量
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirLeft:
		return -1, 0
	case DirDown:
		return 0, 1
	case DirRight:
		return 1, 0
	}
	panic(fmt.Sprintf("impossible direction %d", int(d)))
}

// Angle 返回贴图朝向该方向时的顺时针旋转角度（度），贴图默认朝上
func (d Direction) Angle() float64 {
	switch d {
	case DirUp:
		return 0
	case DirLeft:
		return 270
	case DirDown:
		return 180
	case DirRight:
		return 90
	}
	panic(fmt.Sprintf("impossible direction %d", int(d)))
}

// GridPoint 网格坐标（格）
type GridPoint struct {
	X, Y int
}

// Step 返回沿方向前进一格后的坐标
func (p GridPoint) Step(d Direction) GridPoint {
	dx, dy := d.Delta()
	return GridPoint{X: p.X + dx, Y: p.Y + dy}
}

// In 报告坐标是否位于 cols x rows 的网格内
func (p GridPoint) In(cols, rows int) bool {
	return p.X >= 0 && p.X < cols && p.Y >= 0 && p.Y < rows
}

// DirectionFromTo 返回从 a 指向 b 的方向，a 与 b 必须在同一行或同一列且不相同
func DirectionFromTo(a, b GridPoint) Direction {
	switch {
	case a.X == b.X && a.Y != b.Y:
		if a.Y < b.Y {
			return DirDown
		}
		return DirUp
	case a.Y == b.Y && a.X != b.X:
		if a.X < b.X {
			return DirRight
		}
		return DirLeft
	}
	panic(fmt.Sprintf("no direction from %v to %v", a, b))
}
