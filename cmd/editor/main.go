package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/milk9111/scenestudio/config"
	"github.com/milk9111/scenestudio/logging"
	"github.com/milk9111/scenestudio/session"
	"github.com/milk9111/scenestudio/store"
	"github.com/milk9111/scenestudio/templates"
)

func main() {
	configPath := flag.String("config", "scenestudio.yaml", "Optional YAML config file")
	projectID := flag.String("project", "", "Id of a saved project to open")
	template := flag.String("template", "", "Template for a new project (platformer, rpg, puzzle, shooter)")
	templatesDir := flag.String("templates", "", "Directory of template overrides")
	flag.Parse()

	if err := run(*configPath, session.Source{ProjectID: *projectID, Template: *template}, *templatesDir); err != nil {
		log.Fatal(err)
	}
}

func run(configPath string, src session.Source, templatesDir string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	backend, err := store.Open(cfg.Storage, logger)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer backend.Close()

	gen := templates.New()
	gen.Dir = templatesDir

	sess := session.New(session.Deps{Store: backend, Templates: gen, Log: logger})
	if err := sess.Refresh(ctx); err != nil {
		logger.Warn("could not list projects", zap.Error(err))
	}
	if src.ProjectID == "" && src.Template == "" {
		src.Template = cfg.Editor.Template
	}
	if err := sess.Open(ctx, src); err != nil {
		// the editor still starts and shows the error
		logger.Error("open project failed", zap.Error(err))
	}

	if cfg.Storage.Backend == config.BackendFile && cfg.Storage.Watch {
		w, err := store.NewWatcher(cfg.Storage.Dir)
		if err != nil {
			logger.Warn("project watcher disabled", zap.Error(err))
		} else {
			defer w.Close()
			go watchProjects(ctx, w, sess, logger)
		}
	}

	clip, err := newObjectClipboard()
	if err != nil {
		logger.Warn("clipboard unavailable", zap.Error(err))
	}

	editor, err := NewEditor(ctx, sess, logger, clip)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.Editor.Width, cfg.Editor.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Scene Studio")
	logger.Info("editor starting", zap.String("storage", cfg.Storage.Backend))
	return ebiten.RunGame(editor)
}

// watchProjects refreshes the project list whenever a project document
// changes on disk.
func watchProjects(ctx context.Context, w *store.Watcher, sess *session.Session, logger *zap.Logger) {
	for {
		select {
		case id, ok := <-w.Events:
			if !ok {
				return
			}
			logger.Debug("project changed on disk", zap.String("id", id))
			if err := sess.Refresh(ctx); err != nil {
				logger.Warn("refresh failed", zap.Error(err))
			}
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			logger.Warn("watch error", zap.Error(err))
		case <-ctx.Done():
			return
		}
	}
}
