package cli

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"

	"github.com/faizmokh/prio/internal/config"
	"github.com/faizmokh/prio/internal/files"
	"github.com/faizmokh/prio/internal/kv"
	"github.com/faizmokh/prio/internal/list"
	"github.com/faizmokh/prio/internal/persist"
	"github.com/faizmokh/prio/internal/render"
)

// session carries the opened priority list shared by every subcommand of one
// invocation.
type session struct {
	kv     kv.Store
	store  *list.Store
	color  bool
	logger *log.Logger
}

func (s *session) ready() bool {
	return s.store != nil
}

func (s *session) open(ctx context.Context, cfg config.Config, logger *log.Logger) error {
	manager, err := files.NewManager(cfg.Home)
	if err != nil {
		return err
	}
	backing, err := kv.Open(cfg.Backend, manager)
	if err != nil {
		return err
	}
	logger.Debug("opened store", "backend", cfg.Backend, "home", manager.BasePath())

	store, err := list.Open(ctx, persist.NewBridge(backing),
		list.WithLogger(logger),
		list.WithRenderer(render.Table{}),
	)
	if err != nil {
		return errors.Join(err, backing.Close())
	}

	s.kv = backing
	s.store = store
	s.color = cfg.Color
	s.logger = logger
	return nil
}

func (s *session) close() error {
	if s.kv == nil {
		return nil
	}
	err := s.kv.Close()
	s.kv = nil
	return err
}

func (s *session) table() render.Table {
	return render.Table{Color: s.color}
}
