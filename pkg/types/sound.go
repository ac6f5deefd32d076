package types

// SoundID 标识一个音效
type SoundID int

const (
	// SoundEat 吃掉奶酪
	SoundEat SoundID = iota
	// SoundShrink 咬到自己
	SoundShrink
	// SoundDeath 撞出边界
	SoundDeath

	SoundCount
)

// String 返回音效名称
func (s SoundID) String() string {
	switch s {
	case SoundEat:
		return "eat"
	case SoundShrink:
		return "shrink"
	case SoundDeath:
		return "death"
	default:
		return "unknown"
	}
}
