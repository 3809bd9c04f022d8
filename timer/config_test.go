package timer

import (
	"os"
	"testing"
	"testing/fstest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCategoryConfigsEmbedded(t *testing.T) {
	data, err := os.ReadFile("../" + CategoryConfigPath)
	require.NoError(t, err)

	configs, err := LoadCategoryConfigs(fstest.MapFS{CategoryConfigPath: {Data: data}})
	require.NoError(t, err)

	assert.Equal(t, "Builder", configs.Name(Builder))
	assert.Equal(t, "Research", configs.Name(Research))
	assert.Greater(t, configs[Research].Priority, configs[Builder].Priority)
	assert.Positive(t, configs[Builder].AlertHz)
}

func TestLoadCategoryConfigsErrors(t *testing.T) {
	tests := map[string]string{
		"missing category": `[{"category":"builder","name":"Builder"}]`,
		"duplicate":        `[{"category":"builder"},{"category":"builder"},{"category":"research"}]`,
		"unknown":          `[{"category":"spells"}]`,
		"malformed":        `{`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadCategoryConfigs(fstest.MapFS{CategoryConfigPath: {Data: []byte(body)}})
			assert.Error(t, err)
		})
	}

	_, err := LoadCategoryConfigs(fstest.MapFS{})
	assert.Error(t, err)
}

func TestByPriority(t *testing.T) {
	configs := CategoryConfigs{
		Builder:  {Category: Builder, Priority: 1},
		Research: {Category: Research, Priority: 2},
	}
	timers := []Timer{
		{ID: uuid.New(), Category: Builder},
		{ID: uuid.New(), Category: Research},
	}

	configs.ByPriority(timers)
	assert.Equal(t, Research, timers[0].Category)
	assert.Equal(t, "research", CategoryConfigs{}.Name(Research))
}
