package sheets

import (
	"context"

	"github.com/yeoyeo/realty-api/internal/logger"
)

// Source tags identifying which tier produced a served document. Cache
// hits report the tier that originally filled the cache.
const (
	SourceAPI      = "api"
	SourceExport   = "export"
	SourceBackup   = "backup"
	SourceFallback = "fallback"
)

// Service resolves the listing CSV through the tier chain. It never
// fails: the hardcoded fallback guarantees a document.
type Service struct {
	cache      *Cache
	api        SheetAPI // nil when no credentials are configured
	exporter   *ExportFetcher
	backupPath string
	log        *logger.Logger
}

// NewService wires the proxy together. api may be nil; that tier is
// then skipped.
func NewService(cache *Cache, api SheetAPI, exporter *ExportFetcher, backupPath string, log *logger.Logger) *Service {
	return &Service{
		cache:      cache,
		api:        api,
		exporter:   exporter,
		backupPath: backupPath,
		log:        log.WithComponent("sheets"),
	}
}

// Resolve returns the current CSV document, the tier that produced it,
// and whether it was served from the cache. A fresh cache entry
// short-circuits the chain; otherwise tiers run in order and the first
// non-empty result is cached and returned.
func (s *Service) Resolve(ctx context.Context) (csv, source string, cached bool) {
	if cachedCSV, src, ok := s.cache.Get(); ok {
		return cachedCSV, src, true
	}

	csv, source = s.resolveTiers(ctx)
	s.cache.Set(csv, source)

	s.log.Info("Resolved listing CSV", map[string]interface{}{
		"source": source,
		"bytes":  len(csv),
	})
	return csv, source, false
}

func (s *Service) resolveTiers(ctx context.Context) (string, string) {
	if s.api != nil {
		rows, err := s.api.TryFetch(ctx)
		if err == nil {
			if csv := RowsToCSV(rows); csv != "" {
				return csv, SourceAPI
			}
		} else {
			s.log.Warn("Sheet API tier failed", map[string]interface{}{
				"reason": err.Error(),
			})
		}
	}

	csv, err := s.exporter.Fetch(ctx)
	if err == nil && csv != "" {
		return csv, SourceExport
	}
	if err != nil {
		s.log.Warn("Export tier failed", map[string]interface{}{
			"reason": err.Error(),
		})
	}

	csv, err = LoadBackupCSV(s.backupPath)
	if err == nil && csv != "" {
		return csv, SourceBackup
	}
	if err != nil {
		s.log.Warn("Backup tier failed", map[string]interface{}{
			"reason": err.Error(),
			"path":   s.backupPath,
		})
	}

	return fallbackCSV, SourceFallback
}
