// Package svcctx provides service context for dependency injection via context.
// This package is separate from server to avoid import cycles with endpoints.
package svcctx

import (
	"context"
	"log/slog"

	"github.com/seadex/seadex/internal/config"
	"github.com/seadex/seadex/internal/home"
	"github.com/seadex/seadex/internal/recognition"
	"github.com/seadex/seadex/internal/records"
	"github.com/seadex/seadex/internal/resultstore"
	"github.com/seadex/seadex/internal/stats"
	"github.com/seadex/seadex/internal/storage"
)

// Services holds all core services that flow through context.
// Components extract what they need via the individual extractors.
type Services struct {
	Pipeline    *recognition.Pipeline
	ResultStore *resultstore.Store
	Records     *records.Store
	Images      *storage.ImageStore
	ConfigMgr   *config.Manager
	Stats       *stats.Recorder
	Logger      *slog.Logger
	Home        *home.Dir
}

type servicesKey struct{}

// WithServices returns a new context with services attached.
func WithServices(ctx context.Context, s *Services) context.Context {
	return context.WithValue(ctx, servicesKey{}, s)
}

// ServicesFrom extracts the full Services struct from context.
// Returns nil if not present.
func ServicesFrom(ctx context.Context) *Services {
	s, _ := ctx.Value(servicesKey{}).(*Services)
	return s
}

// PipelineFrom extracts the recognition pipeline from context.
func PipelineFrom(ctx context.Context) *recognition.Pipeline {
	if s := ServicesFrom(ctx); s != nil {
		return s.Pipeline
	}
	return nil
}

// ResultStoreFrom extracts the in-process result store from context.
func ResultStoreFrom(ctx context.Context) *resultstore.Store {
	if s := ServicesFrom(ctx); s != nil {
		return s.ResultStore
	}
	return nil
}

// RecordsFrom extracts the durable records store from context.
func RecordsFrom(ctx context.Context) *records.Store {
	if s := ServicesFrom(ctx); s != nil {
		return s.Records
	}
	return nil
}

// ImagesFrom extracts the image store from context.
func ImagesFrom(ctx context.Context) *storage.ImageStore {
	if s := ServicesFrom(ctx); s != nil {
		return s.Images
	}
	return nil
}

// ConfigMgrFrom extracts the config manager from context.
func ConfigMgrFrom(ctx context.Context) *config.Manager {
	if s := ServicesFrom(ctx); s != nil {
		return s.ConfigMgr
	}
	return nil
}

// StatsFrom extracts the recognition stats recorder from context.
func StatsFrom(ctx context.Context) *stats.Recorder {
	if s := ServicesFrom(ctx); s != nil {
		return s.Stats
	}
	return nil
}

// LoggerFrom extracts the logger from context.
func LoggerFrom(ctx context.Context) *slog.Logger {
	if s := ServicesFrom(ctx); s != nil {
		return s.Logger
	}
	return nil
}

// HomeFrom extracts the home directory from context.
func HomeFrom(ctx context.Context) *home.Dir {
	if s := ServicesFrom(ctx); s != nil {
		return s.Home
	}
	return nil
}
