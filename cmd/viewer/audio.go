package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	hitTone    = 880
	hitLength  = 50 * time.Millisecond
)

// beeper plays a short tone each time the shapes start touching.
type beeper struct {
	initialized bool
}

func newBeeper() *beeper {
	return &beeper{}
}

func (b *beeper) init() error {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	b.initialized = true
	return nil
}

func (b *beeper) hit() {
	if !b.initialized {
		return
	}

	sine, err := generators.SineTone(sampleRate, hitTone)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(hitLength), sine))
}

func (b *beeper) close() {
	if b.initialized {
		speaker.Close()
		b.initialized = false
	}
}
