package sound

import (
	"bytes"
	"encoding/binary"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/rs/zerolog"

	"github.com/BurritoBandit28/Memory-Game/resource"
)

// wavFile builds a 16-bit stereo PCM wav with the given number of frames.
func wavFile(frames int) []byte {
	data := make([]byte, frames*4)
	for i := range data {
		data[i] = byte(i)
	}
	var b bytes.Buffer
	w := func(v any) { binary.Write(&b, binary.LittleEndian, v) }
	b.WriteString("RIFF")
	w(uint32(36 + len(data)))
	b.WriteString("WAVEfmt ")
	w(uint32(16))
	w(uint16(1))
	w(uint16(2))
	w(uint32(SampleRate))
	w(uint32(SampleRate * 4))
	w(uint16(4))
	w(uint16(16))
	b.WriteString("data")
	w(uint32(len(data)))
	b.Write(data)
	return b.Bytes()
}

func TestDecode(t *testing.T) {
	pcm, err := Decode("beep.wav", bytes.NewReader(wavFile(8)), SampleRate)
	if err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if len(pcm) != 32 {
		t.Errorf("expected 32 bytes of pcm, got %d", len(pcm))
	}

	if _, err := Decode("beep.mp3", bytes.NewReader(nil), SampleRate); err == nil {
		t.Error("expected an error for an unsupported format")
	}
	if _, err := Decode("beep.wav", bytes.NewReader([]byte("junk")), SampleRate); err == nil {
		t.Error("expected an error for a corrupt file")
	}
}

func TestLoadCaches(t *testing.T) {
	beep := resource.Game("sounds/beep.wav")
	files := fstest.MapFS{"memory_game/sounds/beep.wav": {Data: wavFile(4)}}
	m, err := NewManager(nil, files, []resource.Location{beep}, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	pcm, err := m.load(beep)
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if len(pcm) != 16 {
		t.Errorf("expected 16 bytes, got %d", len(pcm))
	}
	if !m.cache.Contains(beep) {
		t.Error("decoded sound not cached")
	}
	if _, err := m.load(resource.Game("sounds/missing.wav")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestWarnOnce(t *testing.T) {
	var out bytes.Buffer
	m := Silent(zerolog.New(&out))
	out.Reset()
	loc := resource.Game("sounds/missing.ogg")
	for i := 0; i < 3; i++ {
		m.warnOnce(loc, errors.New("missing"))
	}
	if n := strings.Count(out.String(), "failed to play sound"); n != 1 {
		t.Errorf("expected one warning, got %d", n)
	}

	// Without an audio context Play is a no-op.
	m.Play(loc)
}
