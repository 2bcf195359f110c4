// Package lisplib contains the standard modules distributed with ema.
// Modules are embedded in the binary and are found by import when no module
// file with the same name exists on disk.
package lisplib

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/emalang/ema/lisp"
)

const moduleDir = "modules"

//go:embed modules/*.eva
var modules embed.FS

// Loader returns a lisp.ModuleLoader that reads the embedded standard
// modules.
func Loader() lisp.ModuleLoader {
	return lisp.ModuleLoaderFunc(loadModule)
}

// DefaultLoader returns a lisp.ModuleLoader which searches the directory of
// the importing source before the standard modules.
func DefaultLoader() lisp.ModuleLoader {
	return lisp.Loaders{lisp.FileLoader{}, Loader()}
}

func loadModule(req *lisp.ModuleRequest) (*lisp.ModuleSource, error) {
	name := path.Join(moduleDir, req.Name+lisp.DefaultModuleExt)
	b, err := modules.ReadFile(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", lisp.ErrModuleNotFound, req.Name)
	}
	if err != nil {
		return nil, err
	}
	return &lisp.ModuleSource{Path: "lisplib:" + path.Base(name), Data: b}, nil
}

// Modules returns the sorted names of the standard modules.
func Modules() []string {
	entries, err := modules.ReadDir(moduleDir)
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), lisp.DefaultModuleExt))
	}
	sort.Strings(names)
	return names
}
