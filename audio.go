package main

import (
	"os"
	"sync"
	"time"

	"CoCTimers/config"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/vorbis"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	sampleRate     = beep.SampleRate(44100)
	toneLength     = 400 * time.Millisecond
	resampleFactor = 4
)

// AlertPlayer plays the sound for finished timers: a tone per category, or a
// user supplied Ogg Vorbis file.
type AlertPlayer struct {
	mu          sync.Mutex
	speakerOK   bool
	speakerLock sync.Mutex

	cfg    config.SoundConfig
	custom *beep.Buffer
}

// NewAlertPlayer initializes the speaker. Failures disable sound.
func NewAlertPlayer(cfg config.SoundConfig) *AlertPlayer {
	p := &AlertPlayer{}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Printf("Audio disabled: Failed to initialize speaker: %v", err)
	} else {
		p.speakerOK = true
	}
	p.Apply(cfg)
	return p
}

// Apply switches to new sound settings.
func (p *AlertPlayer) Apply(cfg config.SoundConfig) {
	var custom *beep.Buffer
	if cfg.File != "" {
		b, err := loadVorbis(cfg.File)
		if err != nil {
			log.Printf("Failed to load alert sound, using tone. %v", err)
		} else {
			custom = b
		}
	}

	p.mu.Lock()
	p.cfg = cfg
	p.custom = custom
	p.mu.Unlock()
}

// Play sounds the alert. hz selects the tone when no custom file is set.
func (p *AlertPlayer) Play(hz float64) {
	p.mu.Lock()
	cfg, custom, ok := p.cfg, p.custom, p.speakerOK
	p.mu.Unlock()

	if !ok || !cfg.Enabled {
		return
	}

	s, err := alertStreamer(custom, hz, cfg.Volume)
	if err != nil {
		log.Printf("Failed to build alert: %v", err)
		return
	}

	p.speakerLock.Lock()
	defer p.speakerLock.Unlock()
	speaker.Play(s)
}

func alertStreamer(custom *beep.Buffer, hz, volume float64) (beep.Streamer, error) {
	var s beep.Streamer
	if custom != nil {
		s = custom.Streamer(0, custom.Len())
	} else {
		tone, err := generators.SineTone(sampleRate, hz)
		if err != nil {
			return nil, errors.Wrapf(err, "tone %.0fHz", hz)
		}
		s = beep.Take(sampleRate.N(toneLength), tone)
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: volume}, nil
}

func loadVorbis(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open alert sound")
	}
	defer f.Close()

	streamer, format, err := vorbis.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		s = beep.Resample(resampleFactor, format.SampleRate, sampleRate, streamer)
	}

	buffer := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: format.NumChannels, Precision: format.Precision})
	buffer.Append(s)
	return buffer, nil
}
