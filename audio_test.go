package main

import (
	"testing"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(s beep.Streamer) int {
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok || n == 0 {
			return total
		}
	}
}

func TestAlertToneLength(t *testing.T) {
	s, err := alertStreamer(nil, 660, -1)
	require.NoError(t, err)
	assert.Equal(t, sampleRate.N(toneLength), drain(s))
}

func TestAlertUsesCustomBuffer(t *testing.T) {
	format := beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}
	custom := beep.NewBuffer(format)
	custom.Append(beep.Silence(1000))

	s, err := alertStreamer(custom, 660, 0)
	require.NoError(t, err)
	assert.Equal(t, 1000, drain(s))
}

func TestLoadVorbisMissingFile(t *testing.T) {
	_, err := loadVorbis("/nonexistent/alert.ogg")
	assert.Error(t, err)
}
