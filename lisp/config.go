package lisp

import (
	"io"
	"log/slog"
)

// Config is a function that configures an Evaluator.
type Config func(ev *Evaluator) error

// WithMaxDepth returns a Config that will prevent an evaluator from nesting
// more than n function calls.  A value of zero removes the limit.
func WithMaxDepth(n int) Config {
	return func(ev *Evaluator) error {
		if n < 0 {
			return reasonf("negative maximum call depth: %d", n)
		}
		ev.MaxDepth = n
		return nil
	}
}

// WithReader returns a Config that makes an evaluator use r to parse source
// streams.  There is no default Reader for an evaluator.
func WithReader(r Reader) Config {
	return func(ev *Evaluator) error {
		ev.Reader = r
		return nil
	}
}

// WithStdout returns a Config that makes print write to w instead of the
// default, os.Stdout.
func WithStdout(w io.Writer) Config {
	return func(ev *Evaluator) error {
		ev.Stdout = w
		return nil
	}
}

// WithStderr returns a Config that makes an evaluator write debugging output
// to w instead of the default, os.Stderr.
func WithStderr(w io.Writer) Config {
	return func(ev *Evaluator) error {
		ev.Stderr = w
		return nil
	}
}

// WithLogger returns a Config that makes an evaluator log its activity to
// logger.
func WithLogger(logger *slog.Logger) Config {
	return func(ev *Evaluator) error {
		if logger != nil {
			ev.Logger = logger
		}
		return nil
	}
}

// WithSourceDir returns a Config that sets the directory used to resolve
// imported modules.
func WithSourceDir(dir string) Config {
	return func(ev *Evaluator) error {
		ev.SourceDir = dir
		return nil
	}
}

// WithModuleLoader returns a Config that makes an evaluator locate imported
// modules with loader instead of reading files from the source directory.
func WithModuleLoader(loader ModuleLoader) Config {
	return func(ev *Evaluator) error {
		ev.Loader = loader
		return nil
	}
}

// WithModuleExt returns a Config that sets the file extension of module
// files read by the default loader.
func WithModuleExt(ext string) Config {
	return func(ev *Evaluator) error {
		if ext == "" {
			return reasonf("empty module file extension")
		}
		if ext[0] != '.' {
			ext = "." + ext
		}
		ev.ModuleExt = ext
		return nil
	}
}
