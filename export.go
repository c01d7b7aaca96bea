package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"flowpaint/diagrams"
	"flowpaint/render"
)

func (c *Config) renderer(d diagrams.Definition) *render.Renderer {
	return render.New(render.Options{
		DPI:     c.DPI,
		Padding: c.Padding,
		Styles:  d.Styles,
		Logger:  log.Logger.With().Str("diagram", d.Name).Logger(),
	})
}

// exportDiagram builds, renders and writes one diagram, returning the
// absolute path of the image.
func (c *Config) exportDiagram(d diagrams.Definition) (string, error) {
	sc, err := d.Build()
	if err != nil {
		return "", fmt.Errorf("build %s: %w", d.Name, err)
	}
	path := c.OutputPath(d.Output)
	if err := c.renderer(d).RenderFile(sc, path); err != nil {
		return "", fmt.Errorf("render %s: %w", d.Name, err)
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}
	return absPath, nil
}

// exportAll renders defs, concurrently when Parallel is set. Paths are
// returned in the order of defs. The first failure is returned; images
// already written stay on disk.
func (c *Config) exportAll(ctx context.Context, defs []diagrams.Definition) ([]string, error) {
	paths := make([]string, len(defs))
	export := func(i int, d diagrams.Definition) error {
		start := time.Now()
		path, err := c.exportDiagram(d)
		if err != nil {
			return err
		}
		paths[i] = path
		log.Info().
			Str("diagram", d.Name).
			Str("path", path).
			Dur("took", time.Since(start)).
			Msg("diagram exported")
		return nil
	}

	if !c.Parallel {
		for i, d := range defs {
			if err := ctx.Err(); err != nil {
				return paths, err
			}
			if err := export(i, d); err != nil {
				return paths, err
			}
		}
		return paths, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	for i, d := range defs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return export(i, d)
		})
	}
	return paths, g.Wait()
}
