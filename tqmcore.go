// Package tqmcore is the embedding surface of the quality records system. It
// wires the persistence backend, state container, session gate, and export
// worker into one handle that a host program opens once.
package tqmcore

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"tqmcore/internal/adapters/reports"
	"tqmcore/internal/blob"
	"tqmcore/internal/core"
	"tqmcore/internal/logging"
	"tqmcore/pkg/domain"
)

// System bundles the running components. Fields are live objects, safe for
// concurrent use.
type System struct {
	State     *core.StateContainer
	Gate      *core.Gate
	Exports   *reports.Worker
	Artifacts blob.Store
	Logger    *zap.Logger

	store domain.Store
}

// Open builds a System from the environment: storage driver, artifact
// driver, and logger are all selected by TQMCORE_* variables. The state
// container is hydrated and the export worker started before Open returns.
func Open(ctx context.Context) (*System, error) {
	logger, err := logging.NewFromEnv()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	store, err := core.OpenStoreFromEnv()
	if err != nil {
		return nil, err
	}
	artifacts, err := blob.OpenStoreFromEnv(ctx)
	if err != nil {
		closeErr := store.Close()
		return nil, errors.Join(err, closeErr)
	}

	state := core.NewStateContainer(store, core.WithLogger(logger))
	if err := state.Load(ctx); err != nil {
		closeErr := errors.Join(store.Close(), artifacts.Close())
		return nil, errors.Join(fmt.Errorf("hydrate state: %w", err), closeErr)
	}

	worker := reports.NewWorker(state, artifacts, reports.WithLogger(logger))
	worker.Start(ctx)

	return &System{
		State:     state,
		Gate:      core.NewGate(store, logger, nil),
		Exports:   worker,
		Artifacts: artifacts,
		Logger:    logger,
		store:     store,
	}, nil
}

// Close releases the persistence and artifact backends.
func (s *System) Close() error {
	return errors.Join(s.store.Close(), s.Artifacts.Close())
}
