package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputEvents(t *testing.T) {
	assert.Equal(t, InputEvent{Kind: EventKeyDown, Key: KeySpace}, Press(KeySpace))
	assert.Equal(t, EventQuit, Quit().Kind)
	assert.Equal(t, "DebugGrow", KeyDebugGrow.String())
	assert.Equal(t, "None", Key(99).String())
}
