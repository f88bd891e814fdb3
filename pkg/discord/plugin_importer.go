package discord

import (
	"plugin"
	"sync"
)

// pluginImporter opens prebuilt Go plugins (go build -buildmode=plugin).
// The runtime cannot unload a plugin, so invalidation only forgets the
// handle and a changed file needs a process restart to take effect.
type pluginImporter struct {
	cache map[string]*Module
	mu    sync.Mutex
}

func newPluginImporter() *pluginImporter {
	return &pluginImporter{cache: make(map[string]*Module)}
}

func (pi *pluginImporter) Extension() string { return ".so" }

func (pi *pluginImporter) Import(path string) (*Module, error) {
	pi.mu.Lock()
	defer pi.mu.Unlock()

	if m, ok := pi.cache[path]; ok {
		return m, nil
	}

	p, err := plugin.Open(path)
	if err != nil {
		return nil, err
	}

	m := &Module{
		Path: path,
		lookup: func(name string) (interface{}, error) {
			sym, err := p.Lookup(name)
			if err != nil {
				return nil, err
			}
			return sym, nil
		},
	}
	pi.cache[path] = m
	return m, nil
}

func (pi *pluginImporter) Invalidate(path string) {
	pi.mu.Lock()
	delete(pi.cache, path)
	pi.mu.Unlock()
}

func (pi *pluginImporter) InvalidateAll() {
	pi.mu.Lock()
	pi.cache = make(map[string]*Module)
	pi.mu.Unlock()
}
