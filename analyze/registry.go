// SPDX-License-Identifier: EPL-2.0

package analyze

import (
	"io"
	"sync"

	"github.com/arlorostirolla/swarmsynth/formats/aiff"
	"github.com/arlorostirolla/swarmsynth/formats/mp3"
	"github.com/arlorostirolla/swarmsynth/formats/vorbis"
	"github.com/arlorostirolla/swarmsynth/formats/wav"
	"github.com/arlorostirolla/swarmsynth/synth"
)

// Loader decodes a whole recording into a mono buffer.
type Loader func(r io.ReadSeeker) (*synth.Buffer, error)

// Registry maps file extensions (without the dot, e.g. "wav", "mp3") to
// loaders.
type Registry struct {
	loaders map[string]Loader

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		loaders: make(map[string]Loader),
		mtx:     &sync.Mutex{},
	}
}

func (r *Registry) Register(ext string, l Loader) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.loaders[ext] = l
}

func (r *Registry) Get(ext string) (Loader, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	l, ok := r.loaders[ext]
	return l, ok
}

// defaultRegistry backs File with every format the module decodes.
var defaultRegistry = func() *Registry {
	r := NewRegistry()
	r.Register("wav", wav.Load)
	r.Register("aiff", aiff.Load)
	r.Register("aif", aiff.Load)
	r.Register("mp3", func(rd io.ReadSeeker) (*synth.Buffer, error) { return mp3.Load(rd) })
	r.Register("ogg", func(rd io.ReadSeeker) (*synth.Buffer, error) { return vorbis.Load(rd) })
	return r
}()
