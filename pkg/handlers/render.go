package handlers

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"path/filepath"

	"github.com/eknkc/pug"
	"github.com/eknkc/pug/compiler"
	gocache "github.com/patrickmn/go-cache"
)

// Renderer writes a named HTML page
type Renderer interface {
	Render(w io.Writer, name string, data any) error
}

// PugRenderer compiles views/<name>.pug once and reuses the compiled template
type PugRenderer struct {
	dir       compiler.FsDir
	templates *gocache.Cache
	reload    bool
}

// NewPugRenderer renders templates from dir; with reload set every request recompiles.
// dir may be relative to the working directory or absolute.
func NewPugRenderer(dir string, reload bool) *PugRenderer {
	// pug refuses template paths starting with "..", and joins absolute ones onto its base.
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return &PugRenderer{
		dir:       compiler.FsDir(dir),
		templates: gocache.New(gocache.NoExpiration, 0),
		reload:    reload,
	}
}

func (r *PugRenderer) template(name string) (*template.Template, error) {
	if !r.reload {
		if t, ok := r.templates.Get(name); ok {
			return t.(*template.Template), nil
		}
	}

	t, err := pug.CompileFile(name+".pug", pug.Options{Dir: r.dir})
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", name, err)
	}
	r.templates.Set(name, t, gocache.NoExpiration)
	return t, nil
}

// Render executes the template into a buffer so a failure never leaves a half-written page
func (r *PugRenderer) Render(w io.Writer, name string, data any) error {
	t, err := r.template(name)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	_, err = buf.WriteTo(w)
	return err
}
