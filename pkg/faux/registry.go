package faux

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

// TemplateDef declares one template pattern for a registry definition. Each
// "{}" slot in Pattern is bound to the generator named by the corresponding
// entry of Parts.
type TemplateDef struct {
	Pattern string   `json:"pattern"`
	Parts   []string `json:"parts"`
}

// CorpusDef declares a corpus-backed generator for a registry definition.
// Exactly one of File or Entries should be set.
type CorpusDef struct {
	File    string   `json:"file,omitempty"`
	Entries []string `json:"entries,omitempty"`
}

// Definition is one named generator declaration. Exactly one of Corpus or
// Templates must be set. Template parts may reference only names defined
// earlier, including built-ins registered before the definition is applied;
// this ordering rule is what keeps the binding graph acyclic without any
// runtime cycle detection.
type Definition struct {
	Name      string        `json:"name"`
	Corpus    *CorpusDef    `json:"corpus,omitempty"`
	Templates []TemplateDef `json:"templates,omitempty"`
}

// RegistryConfig is the JSON-loadable form of a set of ordered generator
// definitions, used by embedding applications and the faux CLI.
type RegistryConfig struct {
	Definitions []Definition `json:"definitions"`
}

// Registry is the declarative surface for defining named generators at
// startup. It performs structural validation only: duplicate names, unknown
// part references, slot/part count mismatches, and empty corpora or
// template lists are all rejected at define time, never during Sample.
// All methods are concurrent-safe, though a Registry is normally fully
// populated before first use.
type Registry struct {
	logger *slog.Logger
	gens   map[string]Generator
	names  []string // insertion order, for Names
	mu     sync.RWMutex
}

// NewRegistry returns an empty Registry. Logs are discarded until SetLogger
// is called.
func NewRegistry() *Registry {
	return &Registry{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		gens:   make(map[string]Generator),
	}
}

// SetLogger sets the logger used for definition events. By default, all
// logs are discarded.
func (reg *Registry) SetLogger(logger *slog.Logger) {
	if logger != nil {
		reg.logger = logger
	}
}

// Register adds an already-constructed generator under the given name.
func (reg *Registry) Register(name string, g Generator) error {
	if name == "" {
		return fmt.Errorf("registry: empty generator name: %w", ErrNotDefined)
	}
	if g == nil {
		return fmt.Errorf("registry: nil generator for %q: %w", name, ErrNotDefined)
	}
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if _, ok := reg.gens[name]; ok {
		return fmt.Errorf("registry: %q: %w", name, ErrDuplicate)
	}
	reg.gens[name] = g
	reg.names = append(reg.names, name)
	return nil
}

// DefineCorpus defines a corpus-backed generator over in-memory entries.
func (reg *Registry) DefineCorpus(name string, entries []string) error {
	c, err := NewCorpus(entries)
	if err != nil {
		return fmt.Errorf("registry: define %q: %w", name, err)
	}
	if err = reg.Register(name, c); err != nil {
		return err
	}
	reg.logger.Info("corpus generator defined", "name", name, "entries", c.Len())
	return nil
}

// DefineCorpusFile defines a corpus-backed generator from a line-delimited
// file on disk. The file is read once, at define time.
func (reg *Registry) DefineCorpusFile(name, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("registry: define %q: open %s: %v: %w", name, path, err, ErrUnreadable)
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(f)

	c, err := NewCorpusReader(f)
	if err != nil {
		return fmt.Errorf("registry: define %q from %s: %w", name, path, err)
	}
	if err = reg.Register(name, c); err != nil {
		return err
	}
	reg.logger.Info("corpus generator defined", "name", name, "file", path, "entries", c.Len())
	return nil
}

// DefineTemplates defines a template-set-backed generator. Every part name
// must already be defined in the registry.
func (reg *Registry) DefineTemplates(name string, defs []TemplateDef) error {
	if len(defs) == 0 {
		return fmt.Errorf("registry: define %q: %w", name, ErrNoTemplates)
	}
	templates := make([]*Template, 0, len(defs))
	for _, def := range defs {
		parts := make([]Generator, 0, len(def.Parts))
		for _, partName := range def.Parts {
			g, ok := reg.Lookup(partName)
			if !ok {
				return fmt.Errorf("registry: define %q: part %q: %w", name, partName, ErrNotDefined)
			}
			parts = append(parts, g)
		}
		t, err := NewTemplate(def.Pattern, parts...)
		if err != nil {
			return fmt.Errorf("registry: define %q: %w", name, err)
		}
		templates = append(templates, t)
	}
	set, err := NewTemplateSet(templates...)
	if err != nil {
		return fmt.Errorf("registry: define %q: %w", name, err)
	}
	if err = reg.Register(name, set); err != nil {
		return err
	}
	reg.logger.Info("template generator defined", "name", name, "templates", set.Len())
	return nil
}

// Apply walks cfg's definitions in order, defining each one. Later
// definitions may reference earlier ones (and any generator registered
// before Apply is called). It stops at the first invalid definition.
func (reg *Registry) Apply(cfg *RegistryConfig) error {
	for _, def := range cfg.Definitions {
		switch {
		case def.Corpus != nil && len(def.Templates) > 0:
			return fmt.Errorf("registry: define %q: both corpus and templates set", def.Name)
		case def.Corpus != nil && def.Corpus.File != "":
			if err := reg.DefineCorpusFile(def.Name, def.Corpus.File); err != nil {
				return err
			}
		case def.Corpus != nil:
			if err := reg.DefineCorpus(def.Name, def.Corpus.Entries); err != nil {
				return err
			}
		case len(def.Templates) > 0:
			if err := reg.DefineTemplates(def.Name, def.Templates); err != nil {
				return err
			}
		default:
			return fmt.Errorf("registry: define %q: neither corpus nor templates set", def.Name)
		}
	}
	return nil
}

// Lookup returns the generator registered under name, if any.
func (reg *Registry) Lookup(name string) (Generator, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	g, ok := reg.gens[name]
	return g, ok
}

// Names returns all registered names in definition order.
func (reg *Registry) Names() []string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	names := make([]string, len(reg.names))
	copy(names, reg.names)
	return names
}
