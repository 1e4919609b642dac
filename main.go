// Command clockicon draws the clock-face launcher icon and writes it at every
// Android mipmap density plus a 1024px app asset.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rook-computer/clockicon/internal/app"
	"github.com/rook-computer/clockicon/internal/render"
)

func main() {
	// Flags
	root := flag.String("root", ".", "project root that holds android/ and assets/")
	raster := flag.String("raster", string(render.BackendVector), "rasteriser backend: "+backendNames())
	debug := flag.Bool("debug", false, "enable debug logging to ./clockicon-debug.log")
	stdioLog := flag.String("stdio-log", "", "redirect stdout+stderr to this file; also configurable via CLOCKICON_STDIO_LOG")
	flag.Parse()

	logPath := *stdioLog
	if logPath == "" {
		logPath = os.Getenv("CLOCKICON_STDIO_LOG")
	}
	if logPath != "" {
		if err := redirectStdIO(logPath); err != nil {
			fmt.Fprintln(os.Stderr, "stdio log redirect error:", err)
		}
	}

	var logger app.Logger = app.NoopLogger{}
	if *debug {
		f, err := os.OpenFile("./clockicon-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			logger = app.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Fprintln(os.Stderr, "debug log open error:", err)
		}
	}

	backend, err := render.ParseBackend(*raster)
	if err != nil {
		fail(err)
	}

	a := app.New(app.Options{Root: *root, Backend: backend}, logger)
	if err := a.Run(context.Background()); err != nil {
		logger.Errorf("main", "run failed: %v", err)
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "clockicon:", err)
	os.Exit(1)
}

func backendNames() string {
	names := make([]string, len(render.Backends))
	for i, b := range render.Backends {
		names[i] = string(b)
	}
	return strings.Join(names, "|")
}
