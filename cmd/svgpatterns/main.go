// Command svgpatterns renders SVG pattern libraries described in TOML or
// YAML files.
//
// Usage:
//
//	svgpatterns -config library.toml [-o out.svg] [-preview] [-watch]
//	svgpatterns -config library.toml -swatches "sunset sky"
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gogpu/svgpattern"
	"github.com/gogpu/svgpattern/config"
	"github.com/gogpu/svgpattern/internal/watch"
	"github.com/gogpu/svgpattern/render"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("svgpatterns: %v", err)
	}
}

type cliOptions struct {
	config    string
	prefix    string
	output    string
	preview   bool
	noWrapper bool
	watch     bool
	debounce  time.Duration
	swatches  string
	verbose   bool
}

func parseFlags(args []string, stderr io.Writer) (cliOptions, error) {
	var o cliOptions
	fs := flag.NewFlagSet("svgpatterns", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.config, "config", "", "pattern library file (.toml, .yaml or .yml)")
	fs.StringVar(&o.prefix, "prefix", "", "element id prefix, overrides the file")
	fs.StringVar(&o.output, "o", "", "output file (default stdout)")
	fs.BoolVar(&o.preview, "preview", false, "write a preview sheet with a swatch per pattern")
	fs.BoolVar(&o.noWrapper, "no-wrapper", false, "omit the hidden <svg> wrapper")
	fs.BoolVar(&o.watch, "watch", false, "re-render when the library or its images change")
	fs.DurationVar(&o.debounce, "debounce", watch.DefaultDebounce, "quiet period before re-rendering in watch mode")
	fs.StringVar(&o.swatches, "swatches", "", "print sampled colors of the gradient pattern with this key")
	fs.BoolVar(&o.verbose, "v", false, "log to stderr")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.config == "" {
		fs.Usage()
		return o, errors.New("-config is required")
	}
	return o, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if opts.verbose {
		h := slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		svgpattern.SetLogger(slog.New(h))
		defer svgpattern.SetLogger(nil)
	}

	f, err := config.Load(opts.config)
	if err != nil {
		return err
	}
	if opts.prefix != "" {
		f.Prefix = opts.prefix
	}
	m, err := f.NewManager()
	if err != nil {
		return err
	}

	if opts.swatches != "" {
		return printSwatches(stdout, m, opts.swatches, swatchCount)
	}

	out := &sink{path: opts.output, stdout: stdout}
	lib := render.NewManaged(m, renderOptions(opts, m, out)...)
	defer lib.Close()
	if err := lib.Err(); err != nil {
		return err
	}
	if out.err != nil {
		return out.err
	}
	if !opts.watch {
		return nil
	}
	return watchLibrary(ctx, opts, f, m)
}

func renderOptions(opts cliOptions, m *svgpattern.Manager, out *sink) []render.Option {
	if opts.preview {
		return []render.Option{
			render.NoWrapper(),
			render.OnRender(func(defs []byte) {
				out.render(func(w io.Writer) error {
					return writePreview(w, m.Ordered(), defs)
				})
			}),
		}
	}

	var ro []render.Option
	if opts.noWrapper {
		ro = append(ro, render.NoWrapper())
	}
	return append(ro, render.OnRender(func(svg []byte) {
		out.render(func(w io.Writer) error {
			_, err := w.Write(svg)
			return err
		})
	}))
}

// watchLibrary reloads the library into m on every change until ctx is done.
func watchLibrary(ctx context.Context, opts cliOptions, f *config.File, m *svgpattern.Manager) error {
	var w *watch.Watcher
	reload := func() error {
		nf, err := config.Load(opts.config)
		if err != nil {
			return err
		}
		if opts.prefix == "" && nf.Prefix != "" && nf.Prefix != m.IDPrefix() {
			svgpattern.Logger().Warn("svgpatterns: prefix change needs a restart", "prefix", nf.Prefix)
		}
		if err := nf.Sync(m); err != nil {
			return err
		}
		// Images added to the library are watched from now on.
		return w.Add(watchedFiles(opts.config, nf)...)
	}

	w, err := watch.New(watchedFiles(opts.config, f), opts.debounce, reload, func(err error) {
		svgpattern.Logger().Warn("svgpatterns: reload failed", "err", err)
	})
	if err != nil {
		return err
	}
	svgpattern.Logger().Info("svgpatterns: watching", "config", opts.config)

	if err := w.Run(ctx); !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}

// watchedFiles lists the library file and the image files it embeds.
func watchedFiles(path string, f *config.File) []string {
	files := []string{path}
	for _, p := range f.Patterns {
		if p.File == "" {
			continue
		}
		file := p.File
		if !filepath.IsAbs(file) {
			file = filepath.Join(f.Dir, file)
		}
		files = append(files, file)
	}
	return files
}

// sink writes each render to a file, replacing it, or appends it to
// stdout.
type sink struct {
	path   string
	stdout io.Writer
	err    error // last write error
}

func (s *sink) render(write func(io.Writer) error) {
	if s.path == "" {
		s.err = write(s.stdout)
		if s.err == nil {
			_, s.err = fmt.Fprintln(s.stdout)
		}
	} else {
		s.err = writeFile(s.path, write)
	}
	if s.err != nil {
		svgpattern.Logger().Warn("svgpatterns: write failed", "err", s.err)
	}
}

func writeFile(path string, write func(io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".svgpatterns-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if err := write(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
