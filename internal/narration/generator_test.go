package narration

import (
	"testing"
	"time"
)

func TestGenerateCueLength(t *testing.T) {
	tones := []Tone{ToneNeutral, ToneSuccess, ToneFailure, ToneFanfare}

	for _, tone := range tones {
		streamer := generateCue(tone)
		want := cueLength(tone)

		got := 0
		buf := make([][2]float64, 512)
		for {
			n, ok := streamer.Stream(buf)
			got += n
			if !ok {
				break
			}
		}

		if got != want {
			t.Errorf("tone %d: streamed %d samples, expected %d", tone, got, want)
		}
	}
}

func TestGenerateCueAmplitudeBounds(t *testing.T) {
	streamer := generateCue(ToneFanfare)

	buf := make([][2]float64, 512)
	for {
		n, ok := streamer.Stream(buf)
		for i := 0; i < n; i++ {
			for ch := 0; ch < 2; ch++ {
				if v := buf[i][ch]; v < -1.0 || v > 1.0 {
					t.Fatalf("sample out of range: %f", v)
				}
			}
		}
		if !ok {
			break
		}
	}
}

func TestGenerateCueIsFinite(t *testing.T) {
	streamer := generateCue(ToneSuccess)

	buf := make([][2]float64, 512)
	var ok bool
	for i := 0; i < 10000; i++ {
		_, ok = streamer.Stream(buf)
		if !ok {
			return
		}
	}
	t.Fatal("cue streamer should terminate")
}

func TestSpeakerCaptionExpiry(t *testing.T) {
	clock := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	s := &Speaker{now: func() time.Time { return clock }}

	s.Say("Find the letter B", ToneNeutral)
	if s.Caption() != "Find the letter B" {
		t.Errorf("Caption = %q, expected the announcement", s.Caption())
	}

	// A new announcement replaces the old one
	s.Say("Correct!", ToneSuccess)
	if s.Caption() != "Correct!" {
		t.Errorf("Caption = %q, expected replacement", s.Caption())
	}

	// Captions go stale after the TTL
	clock = clock.Add(captionTTL + time.Second)
	if s.Caption() != "" {
		t.Errorf("Caption = %q, expected empty after TTL", s.Caption())
	}
}

func TestNoopNarrator(t *testing.T) {
	var n Narrator = Noop{}
	n.Say("anything", ToneFanfare)
	if n.Caption() != "" {
		t.Error("noop narrator should never have a caption")
	}
	n.Close()
}
