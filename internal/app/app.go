package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rook-computer/clockicon/internal/render"
	"github.com/rook-computer/clockicon/internal/targets"
)

// Icons renders one icon file. *render.IconRenderer satisfies it.
type Icons interface {
	Render(size int, outputPath string) error
}

// Options are the values main collects from flags and the environment.
type Options struct {
	Root    string
	Backend render.Backend
}

type App struct {
	Icons   Icons
	Targets []targets.Target
	Out     io.Writer
	Logger  Logger
}

// New wires an App that renders every target under opts.Root.
func New(opts Options, logger Logger) *App {
	if logger == nil {
		logger = NoopLogger{}
	}
	root := opts.Root
	if root == "" {
		root = "."
	}
	icons := render.NewIconRenderer()
	icons.Backend = opts.Backend
	icons.Logger = logger
	return &App{Icons: icons, Targets: targets.All(root), Out: os.Stdout, Logger: logger}
}

// Run renders the targets in order. The first failure stops the run; files
// written before it are left in place.
func (app *App) Run(ctx context.Context) error {
	if app.Logger == nil {
		app.Logger = NoopLogger{}
	}
	if app.Out == nil {
		app.Out = io.Discard
	}
	for _, t := range app.Targets {
		if err := ctx.Err(); err != nil {
			return err
		}
		app.Logger.Infof("app", "rendering %s (%dpx) -> %s", t.Label, t.Size, t.Path)
		if err := app.Icons.Render(t.Size, t.Path); err != nil {
			app.Logger.Errorf("app", "%s failed: %v", t.Label, err)
			return fmt.Errorf("%s: %w", t.Label, err)
		}
		fmt.Fprintf(app.Out, "Created: %s\n", t.Path)
	}
	fmt.Fprintln(app.Out)
	fmt.Fprintln(app.Out, "Icon generation complete!")
	fmt.Fprintln(app.Out, "Now run: flutter build apk --release")
	return nil
}
