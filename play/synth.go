package play

import (
	"context"
	"encoding/binary"
	"math"
	"time"

	"github.com/veandco/go-sdl2/sdl"
)

// DefaultSampleRate is used by a Synth with no sample rate set.
const DefaultSampleRate = 44100

// Synth is a Player that renders sine waves and queues them on the default
// SDL audio device.
type Synth struct {
	Params
	SampleRate int
}

// NewSynth returns a Synth using p and the default sample rate.
func NewSynth(p Params) *Synth {
	return &Synth{Params: p, SampleRate: DefaultSampleRate}
}

// Play implements Player. The audio device is opened for the duration of the
// call only.
func (s *Synth) Play(ctx context.Context, multiplier float64, mode Mode) error {
	rate := s.SampleRate
	if rate <= 0 {
		rate = DefaultSampleRate
	}
	samples := render(Schedule(mode, s.Params, multiplier), s.Amplitude, rate)

	if err := sdl.InitSubSystem(sdl.INIT_AUDIO); err != nil {
		return err
	}
	defer sdl.QuitSubSystem(sdl.INIT_AUDIO)
	spec := &sdl.AudioSpec{
		Freq:     int32(rate),
		Format:   sdl.AUDIO_F32LSB,
		Channels: 1,
		Samples:  1024,
	}
	dev, err := sdl.OpenAudioDevice("", false, spec, nil, 0)
	if err != nil {
		return err
	}
	defer sdl.CloseAudioDevice(dev)
	if err := sdl.QueueAudio(dev, encodeFloat32LE(samples)); err != nil {
		return err
	}
	sdl.PauseAudioDevice(dev, false)

	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()
	for sdl.GetQueuedAudioSize(dev) > 0 {
		select {
		case <-ctx.Done():
			sdl.ClearQueuedAudio(dev)
			return ctx.Err()
		case <-ticker.C:
		}
	}
	// the device still holds one buffer after the queue drains
	return sleepContext(ctx, time.Second*time.Duration(spec.Samples)/time.Duration(rate))
}

// render a schedule as mono samples, summing notes that overlap
func render(notes []Note, amplitude float64, sampleRate int) []float32 {
	buf := make([]float32, samplesIn(length(notes), sampleRate))
	for _, n := range notes {
		start := samplesIn(n.Start, sampleRate)
		count := samplesIn(n.Duration, sampleRate)
		step := 2 * math.Pi * n.Freq / float64(sampleRate)
		for i := 0; i < count && start+i < len(buf); i++ {
			buf[start+i] += float32(amplitude * math.Sin(step*float64(i)))
		}
	}
	return buf
}

// number of samples in a duration at a sample rate
func samplesIn(d time.Duration, sampleRate int) int {
	return int(int64(d) * int64(sampleRate) / int64(time.Second))
}

// pack samples in the AUDIO_F32LSB format
func encodeFloat32LE(samples []float32) []byte {
	b := make([]byte, 4*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint32(b[4*i:], math.Float32bits(s))
	}
	return b
}
