package lisp

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrModuleNotFound is wrapped by a ModuleLoader that has no source for a
// requested module.
var ErrModuleNotFound = errors.New("module not found")

// ModuleRequest describes a module named by an import expression.
type ModuleRequest struct {
	Name string
	Dir  string // directory of the importing source
	Ext  string // module file extension, including the leading '.'
}

// ModuleSource is the source text of a module.
type ModuleSource struct {
	Path string // file path or other description of the origin of Data
	Dir  string // directory used to resolve nested imports, if any
	Data []byte
}

// ModuleLoader locates the source of imported modules.
type ModuleLoader interface {
	LoadModule(req *ModuleRequest) (*ModuleSource, error)
}

// ModuleLoaderFunc is a function that implements ModuleLoader.
type ModuleLoaderFunc func(req *ModuleRequest) (*ModuleSource, error)

// LoadModule implements ModuleLoader.
func (fn ModuleLoaderFunc) LoadModule(req *ModuleRequest) (*ModuleSource, error) {
	return fn(req)
}

// FileLoader reads the file named <Dir>/<Name><Ext>.
type FileLoader struct{}

// LoadModule implements ModuleLoader.
func (FileLoader) LoadModule(req *ModuleRequest) (*ModuleSource, error) {
	dir := req.Dir
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, req.Name+req.Ext)
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrModuleNotFound, path)
	}
	if err != nil {
		return nil, err
	}
	return &ModuleSource{Path: path, Dir: filepath.Dir(path), Data: b}, nil
}

// Loaders tries each ModuleLoader in order and returns the first module
// found.
type Loaders []ModuleLoader

// LoadModule implements ModuleLoader.
func (ls Loaders) LoadModule(req *ModuleRequest) (*ModuleSource, error) {
	for _, l := range ls {
		src, err := l.LoadModule(req)
		if errors.Is(err, ErrModuleNotFound) {
			continue
		}
		return src, err
	}
	return nil, fmt.Errorf("%w: %s", ErrModuleNotFound, req.Name)
}

// opImport handles the forms
//
//	(import Name)
//	(import (name1 name2 ...) Name)
//	(import name Name)
//
// The module is bound to Name and each requested name is bound to the
// corresponding property of the module.
func opImport(ev *Evaluator, form *LVal, env *LEnv) (*LVal, error) {
	if len(form.Cells) != 2 && len(form.Cells) != 3 {
		return nil, invalidf("invalid import statement: %v", form)
	}
	name := form.Cells[len(form.Cells)-1]
	if name.Type != LSymbol {
		return nil, invalidf("invalid module name: %v", name)
	}
	var names []*LVal
	if len(form.Cells) == 3 {
		requested := form.Cells[1]
		switch requested.Type {
		case LSymbol:
			names = []*LVal{requested}
		case LList:
			names = requested.Cells
		default:
			return nil, invalidf("invalid import list: %v", requested)
		}
		for _, n := range names {
			if n.Type != LSymbol {
				return nil, invalidf("invalid import name: %v", n)
			}
		}
	}

	mod, err := ev.importModule(name, env)
	if err != nil {
		return nil, err
	}
	for _, n := range names {
		alias := List(Symbol("var"), n, List(Symbol("prop"), name, n))
		_, err := ev.Eval(alias, env)
		if err != nil {
			return nil, err
		}
	}
	return mod, nil
}

func (ev *Evaluator) importModule(name *LVal, env *LEnv) (*LVal, error) {
	if ev.Reader == nil {
		return nil, reasonf("no reader configured")
	}
	loader := ev.Loader
	if loader == nil {
		loader = FileLoader{}
	}
	req := &ModuleRequest{Name: name.Str, Dir: ev.SourceDir, Ext: ev.ModuleExt}
	src, err := loader.LoadModule(req)
	if errors.Is(err, ErrModuleNotFound) {
		return nil, reasonf("cannot find module %s", name.Str)
	}
	if err != nil {
		return nil, reasonf("cannot load module %s: %v", name.Str, err)
	}
	ev.Logger.Debug("module loaded", "name", name.Str, "path", src.Path)

	exprs, err := ev.Reader.Read(src.Path, bytes.NewReader(src.Data))
	if err != nil {
		return nil, err
	}
	if len(exprs) != 1 {
		return nil, reasonf("a module only contains one body")
	}
	if src.Dir != "" {
		restore := ev.enterDir(src.Dir)
		defer restore()
	}
	return ev.Eval(List(Symbol("module"), name, exprs[0]), env)
}
