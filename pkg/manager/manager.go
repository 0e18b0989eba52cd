package manager

import (
	"context"
	"time"

	"github.com/AntonioSertic23/nextup/config"
	"github.com/AntonioSertic23/nextup/pkg/cache"
	"github.com/AntonioSertic23/nextup/pkg/catalog"
	"github.com/AntonioSertic23/nextup/pkg/storage"
)

type CatalogClientInterface catalog.ClientInterface

// Manager is the watch-progress core: ingestion, the mark/unmark
// reconciler, collection membership and the full-account sync.
type Manager struct {
	catalog CatalogClientInterface
	storage storage.Storage
	// seasons caches upstream season payloads per show trakt id. It is a
	// read-through cache over the catalog, never a write path.
	seasons *cache.Cache[int32, []catalog.Season]
	config  config.Sync
}

func New(catalogClient CatalogClientInterface, store storage.Storage, cfg config.Sync) Manager {
	if cfg.SeasonFetchBatch <= 0 {
		cfg.SeasonFetchBatch = 4
	}
	if cfg.ShowThrottle <= 0 {
		cfg.ShowThrottle = 300 * time.Millisecond
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 100
	}

	return Manager{
		catalog: catalogClient,
		storage: store,
		seasons: cache.New[int32, []catalog.Season](),
		config:  cfg,
	}
}

// fetchSeasons reads a show's season tree through the cache.
func (m Manager) fetchSeasons(ctx context.Context, traktID int32, id string) ([]catalog.Season, error) {
	if seasons, ok := m.seasons.Get(traktID); ok {
		return seasons, nil
	}

	seasons, err := m.catalog.GetSeasons(ctx, id, false)
	if err != nil {
		return nil, err
	}

	m.seasons.Set(traktID, seasons)
	return seasons, nil
}
