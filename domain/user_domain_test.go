package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelForXP(t *testing.T) {
	cases := []struct {
		xp    int
		level int
	}{
		{-100, 1},
		{0, 1},
		{999, 1},
		{1000, 2},
		{2800, 3},
		{6999, 7},
		{50000, 51},
	}
	for _, c := range cases {
		assert.Equal(t, c.level, LevelForXP(c.xp), "xp=%d", c.xp)
	}
}

func TestLevelTitleClamps(t *testing.T) {
	assert.Equal(t, "Seedling", LevelTitle(0))
	assert.Equal(t, "Seedling", LevelTitle(1))
	assert.Equal(t, "Tree", LevelTitle(3))
	assert.Equal(t, "Ecosystem", LevelTitle(7))
	assert.Equal(t, "Ecosystem", LevelTitle(99))
}
