// Command scenectl manages saved Scene Studio projects from the shell.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/scenestudio/config"
	"github.com/milk9111/scenestudio/geom"
	"github.com/milk9111/scenestudio/logging"
	"github.com/milk9111/scenestudio/render"
	"github.com/milk9111/scenestudio/scene"
	"github.com/milk9111/scenestudio/state"
	"github.com/milk9111/scenestudio/store"
	"github.com/milk9111/scenestudio/templates"
)

const usage = `usage: scenectl [-config file] <command> [flags]

commands:
  list                       list saved projects, newest first
  new -template name         create and save a project from a template
  show -id id                print a project as YAML
  delete -id id              delete a saved project
  render -id id -out file    draw the active scene to a PNG
`

func main() {
	configPath := flag.String("config", "scenestudio.yaml", "Optional YAML config file")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}
	if err := run(*configPath, flag.Args(), os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "scenectl:", err)
		os.Exit(1)
	}
}

func run(configPath string, args []string, out io.Writer) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Sync()

	backend, err := store.Open(cfg.Storage, logger)
	if err != nil {
		return err
	}
	defer backend.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	c := &cli{gw: backend, log: logger, out: out}
	return c.dispatch(ctx, args[0], args[1:])
}

type cli struct {
	gw  store.Gateway
	gen *templates.Generator
	log *zap.Logger
	out io.Writer
}

func (c *cli) dispatch(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "list":
		return c.list(ctx)
	case "new":
		return c.create(ctx, args)
	case "show":
		return c.show(ctx, args)
	case "delete":
		return c.remove(ctx, args)
	case "render":
		return c.render(ctx, args)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (c *cli) list(ctx context.Context) error {
	projects, err := c.gw.List(ctx)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tTYPE\tSCENES\tLAST MODIFIED")
	for _, p := range projects {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", p.ID, p.Name, p.Type, len(p.Scenes), p.LastModified.Format(time.RFC3339))
	}
	return tw.Flush()
}

func (c *cli) create(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("new", flag.ContinueOnError)
	name := fs.String("template", "platformer", "Template name")
	dir := fs.String("templates", "", "Directory of template overrides")
	title := fs.String("name", "", "Project name (defaults to the template's)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	gen := c.gen
	if gen == nil {
		gen = templates.New()
	}
	gen.Dir = *dir

	p, err := gen.Generate(*name)
	if err != nil {
		return err
	}
	if *title != "" {
		p.Name = *title
	}
	stored, err := c.gw.Save(ctx, p)
	if err != nil {
		return err
	}
	c.log.Info("created project", zap.String("id", stored.ID), zap.String("template", *name))
	fmt.Fprintln(c.out, stored.ID)
	return nil
}

func idFlag(cmd string) (*flag.FlagSet, *string) {
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	return fs, fs.String("id", "", "Project id")
}

func (c *cli) show(ctx context.Context, args []string) error {
	fs, id := idFlag("show")
	if err := fs.Parse(args); err != nil {
		return err
	}
	p, err := c.load(ctx, *id)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(c.out)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(p)
}

func (c *cli) remove(ctx context.Context, args []string) error {
	fs, id := idFlag("delete")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return errors.New("delete: -id is required")
	}
	return c.gw.Delete(ctx, *id)
}

func (c *cli) render(ctx context.Context, args []string) error {
	fs, id := idFlag("render")
	out := fs.String("out", "scene.png", "Output PNG path")
	zoom := fs.Float64("zoom", 1, "Zoom factor")
	grid := fs.Bool("grid", true, "Draw the grid")
	colliders := fs.Bool("colliders", false, "Draw collider outlines")
	if err := fs.Parse(args); err != nil {
		return err
	}
	p, err := c.load(ctx, *id)
	if err != nil {
		return err
	}

	st := state.Initial()
	st.Project = &p
	st.Editor.ShowGrid = *grid
	st.Editor.ShowColliders = *colliders
	st = state.NewReducer(nil).Reduce(st, state.SetZoom{Zoom: *zoom})

	frame, ok := render.FrameOf(st)
	if !ok {
		return fmt.Errorf("render: project %s has no active scene", p.ID)
	}
	size := frame.View.Transform().ApplyRect(geom.Rect{W: frame.Scene.Width, H: frame.Scene.Height})
	raster := render.NewRaster(int(size.W+0.5), int(size.H+0.5))
	render.Renderer{}.Render(raster, frame)

	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	if err := png.Encode(f, raster.Img); err != nil {
		f.Close()
		return err
	}
	c.log.Info("rendered scene", zap.String("id", p.ID), zap.String("out", *out))
	return f.Close()
}

func (c *cli) load(ctx context.Context, id string) (scene.Project, error) {
	if id == "" {
		return scene.Project{}, errors.New("-id is required")
	}
	return c.gw.Load(ctx, id)
}
