package narration

import (
	"math"

	"github.com/gopxl/beep"
)

// Tone classifies the audio cue played for a narration event.
type Tone int

const (
	ToneNeutral Tone = iota // Target announcements
	ToneSuccess             // Correct answer
	ToneFailure             // Incorrect answer
	ToneFanfare             // Win, level-up, badge unlock
)

// sampleRate is the fixed output rate for generated cues.
const sampleRate = beep.SampleRate(44100)

// cueSpec describes a simple two-note cue.
type cueSpec struct {
	freqs    []float64 // Note frequencies played in order
	noteSecs float64   // Duration of each note
	volume   float64   // Peak amplitude in [0, 1]
}

// specFor maps tones to cue shapes. Rising intervals read as positive,
// falling as negative.
func specFor(tone Tone) cueSpec {
	switch tone {
	case ToneSuccess:
		return cueSpec{freqs: []float64{523.25, 783.99}, noteSecs: 0.09, volume: 0.4}
	case ToneFailure:
		return cueSpec{freqs: []float64{311.13, 207.65}, noteSecs: 0.12, volume: 0.35}
	case ToneFanfare:
		return cueSpec{freqs: []float64{523.25, 659.25, 783.99, 1046.50}, noteSecs: 0.11, volume: 0.45}
	default:
		return cueSpec{freqs: []float64{440.00}, noteSecs: 0.10, volume: 0.3}
	}
}

// generateCue renders the cue for a tone as a finite streamer.
// The cue fades at each note boundary to avoid clicks.
func generateCue(tone Tone) beep.Streamer {
	spec := specFor(tone)
	noteSamples := int(float64(sampleRate) * spec.noteSecs)
	total := noteSamples * len(spec.freqs)

	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for i := range samples {
			if pos >= total {
				break
			}
			note := pos / noteSamples
			inNote := pos % noteSamples

			// Linear fade in/out over the first and last 10% of each note
			env := 1.0
			edge := noteSamples / 10
			if edge > 0 {
				if inNote < edge {
					env = float64(inNote) / float64(edge)
				} else if inNote > noteSamples-edge {
					env = float64(noteSamples-inNote) / float64(edge)
				}
			}

			phase := float64(pos) * spec.freqs[note] / float64(sampleRate)
			v := math.Sin(2*math.Pi*phase) * spec.volume * env
			samples[i][0] = v
			samples[i][1] = v
			pos++
			n++
		}
		return n, true
	})
}

// cueLength returns the total sample count of the cue for a tone.
func cueLength(tone Tone) int {
	spec := specFor(tone)
	return int(float64(sampleRate)*spec.noteSecs) * len(spec.freqs)
}
