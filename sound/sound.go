package sound

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"

	"github.com/BurritoBandit28/Memory-Game/resource"
)

const (
	SampleRate = 44100
	cacheSize  = 32
)

// Manager plays catalogued sounds through an ebiten audio context. Decoded
// PCM is cached so repeated sounds are not decoded again. A Manager without
// a context plays nothing.
type Manager struct {
	ctx     *audio.Context
	files   fs.FS
	catalog map[resource.Location]bool
	cache   *lru.Cache[resource.Location, []byte]
	log     zerolog.Logger

	mu     sync.Mutex
	warned map[resource.Location]bool
}

func NewManager(ctx *audio.Context, files fs.FS, sounds []resource.Location, log zerolog.Logger) (*Manager, error) {
	cache, err := lru.New[resource.Location, []byte](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create sound cache: %w", err)
	}
	m := &Manager{
		ctx:     ctx,
		files:   files,
		catalog: make(map[resource.Location]bool, len(sounds)),
		cache:   cache,
		log:     log,
		warned:  make(map[resource.Location]bool),
	}
	for _, s := range sounds {
		m.catalog[s] = true
	}
	if ctx == nil {
		log.Warn().Msg("no audio context, sounds are disabled")
	}
	return m, nil
}

// Silent returns a manager that plays nothing.
func Silent(log zerolog.Logger) *Manager {
	m, _ := NewManager(nil, nil, nil, log)
	return m
}

// Play starts the sound and returns immediately. Unknown or undecodable
// sounds are logged once and skipped.
func (m *Manager) Play(loc resource.Location) {
	if m.ctx == nil {
		return
	}
	if !m.catalog[loc] {
		m.warnOnce(loc, fmt.Errorf("not in the sound catalog"))
		return
	}
	pcm, err := m.load(loc)
	if err != nil {
		m.warnOnce(loc, err)
		return
	}
	m.ctx.NewPlayerFromBytes(pcm).Play()
}

// Preload decodes every catalogued sound ahead of the first Play.
func (m *Manager) Preload() {
	for loc := range m.catalog {
		if _, err := m.load(loc); err != nil {
			m.warnOnce(loc, err)
		}
	}
}

func (m *Manager) load(loc resource.Location) ([]byte, error) {
	if pcm, ok := m.cache.Get(loc); ok {
		return pcm, nil
	}
	if m.files == nil {
		return nil, fmt.Errorf("no asset files")
	}
	b, err := fs.ReadFile(m.files, loc.File())
	if err != nil {
		return nil, err
	}
	pcm, err := Decode(loc.Path, bytes.NewReader(b), SampleRate)
	if err != nil {
		return nil, err
	}
	m.cache.Add(loc, pcm)
	return pcm, nil
}

func (m *Manager) warnOnce(loc resource.Location, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.warned[loc] {
		return
	}
	m.warned[loc] = true
	m.log.Warn().Err(err).Stringer("sound", loc).Msg("failed to play sound")
}

// Decode turns an ogg or wav file into 16-bit stereo PCM at the given rate.
func Decode(name string, r io.Reader, sampleRate int) ([]byte, error) {
	var stream io.Reader
	var err error
	switch path.Ext(name) {
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(sampleRate, r)
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(sampleRate, r)
	default:
		return nil, fmt.Errorf("unsupported sound format %q", name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", name, err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return pcm, nil
}
