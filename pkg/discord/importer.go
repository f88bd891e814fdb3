package discord

import (
	"fmt"
	"go/parser"
	"go/token"
	"os"
	"sync"

	apperrors "github.com/igecorp/igego/pkg/errors"
	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
)

// Exported symbol names looked up in handler modules.
const (
	CommandSymbol = "Command"
	SlashSymbol   = "Slash"
	HandlerSymbol = "Handler"
)

// Importer loads handler modules from disk and caches them until told to
// forget them.
type Importer interface {
	// Extension is the file suffix this importer accepts, dot included.
	Extension() string
	Import(path string) (*Module, error)
	Invalidate(path string)
	InvalidateAll()
}

// Module is an imported handler file.
type Module struct {
	Path   string
	lookup func(name string) (interface{}, error)
}

// Lookup returns the value of an exported top-level symbol.
func (m *Module) Lookup(name string) (interface{}, error) {
	v, err := m.lookup(name)
	if err != nil {
		return nil, fmt.Errorf("%s: lookup %s: %w", m.Path, name, err)
	}
	return v, nil
}

// NewImporter returns the plugin importer when compiled is set and the
// interpreter-backed importer otherwise.
func NewImporter(compiled bool) Importer {
	if compiled {
		return newPluginImporter()
	}
	return newScriptImporter()
}

// scriptImporter evaluates Go source files with yaegi. Every file gets its own
// interpreter so files sharing a package name never collide.
type scriptImporter struct {
	cache map[string]*Module
	mu    sync.Mutex
}

func newScriptImporter() *scriptImporter {
	return &scriptImporter{cache: make(map[string]*Module)}
}

func (si *scriptImporter) Extension() string { return ".go" }

func (si *scriptImporter) Import(path string) (*Module, error) {
	si.mu.Lock()
	defer si.mu.Unlock()

	if m, ok := si.cache[path]; ok {
		return m, nil
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	pkg, err := packageName(path, src)
	if err != nil {
		return nil, err
	}

	i := interp.New(interp.Options{})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, fmt.Errorf("load stdlib symbols: %w", err)
	}
	if err := i.Use(Symbols); err != nil {
		return nil, fmt.Errorf("load discord symbols: %w", err)
	}

	err = apperrors.Recover("import "+path, func() error {
		_, err := i.Eval(string(src))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	m := &Module{
		Path: path,
		lookup: func(name string) (interface{}, error) {
			var out interface{}
			err := apperrors.Recover("lookup "+name, func() error {
				v, err := i.Eval(pkg + "." + name)
				if err != nil {
					return err
				}
				if !v.IsValid() {
					return fmt.Errorf("symbol %s not found", name)
				}
				out = v.Interface()
				return nil
			})
			return out, err
		},
	}
	si.cache[path] = m
	return m, nil
}

func (si *scriptImporter) Invalidate(path string) {
	si.mu.Lock()
	delete(si.cache, path)
	si.mu.Unlock()
}

func (si *scriptImporter) InvalidateAll() {
	si.mu.Lock()
	si.cache = make(map[string]*Module)
	si.mu.Unlock()
}

// packageName reads only the package clause of src.
func packageName(path string, src []byte) (string, error) {
	f, err := parser.ParseFile(token.NewFileSet(), path, src, parser.PackageClauseOnly)
	if err != nil {
		return "", err
	}
	return f.Name.Name, nil
}
