// Package state defines shared program state.
package state

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"nametag/config"
	"nametag/store"
	"nametag/tags"
)

type envKey struct{}

// LocalEnv keeps everything program needs in a single place.
type LocalEnv struct {
	Cfg *config.Config
	Rpt *config.Report
	Log *zap.Logger

	// set by LoadTags
	Tree  *tags.Tree
	Store *store.Store

	start         time.Time
	restoreStdLog func()
}

func EnvFromContext(ctx context.Context) *LocalEnv {
	if env, ok := ctx.Value(envKey{}).(*LocalEnv); ok {
		return env
	}
	// this should never happen
	panic("localenv not found in context")
}

func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, newLocalEnv())
}

// LoadTags builds tag tree and fills it from the store configured in Cfg.
// Broken store entries are logged and skipped, broken store is an error.
func (e *LocalEnv) LoadTags() error {
	if e.Cfg == nil {
		return errors.New("unable to load tags: no configuration")
	}

	e.Store = store.New(e.Cfg.Tags.Path, e.Log)
	if err := e.Rpt.StoreCopy("tags/loaded"+filepath.Ext(e.Store.Path()), e.Store.Path()); err != nil {
		e.logger().Warn("Unable to put tag store into report", zap.Error(err))
	}

	tr := tags.NewTree()
	if err := e.Store.Load(tr); err != nil {
		return fmt.Errorf("unable to load tags: %w", err)
	}
	e.Tree = tr

	e.logger().Debug("Tags loaded", zap.String("store", e.Store.Path()), zap.Int("custom", len(tr.Custom())))
	return nil
}

// ReportTags puts final state of the tags into debug report.
func (e *LocalEnv) ReportTags() {
	if e.Rpt == nil || e.Tree == nil || e.Store == nil {
		return
	}
	e.Rpt.Store("tags/saved"+filepath.Ext(e.Store.Path()), e.Store.Path())
	e.Rpt.StoreData("tags/resolved.txt", []byte(e.Tree.Dump(true)))
}

func (e *LocalEnv) logger() *zap.Logger {
	if e.Log == nil {
		return zap.NewNop()
	}
	return e.Log
}

func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

func (e *LocalEnv) RedirectStdLog() {
	if e.Log == nil {
		return
	}
	e.restoreStdLog = zap.RedirectStdLog(e.Log)
}

func (e *LocalEnv) RestoreStdLog() {
	if e.Log != nil {
		_ = e.Log.Sync()
	}
	if e.restoreStdLog != nil {
		e.restoreStdLog()
	}
}
