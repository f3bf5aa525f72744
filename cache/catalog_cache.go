package catalog_cache

import (
	"sync"
	"time"

	"github.com/Barfer-herni/raw-barfer-sub000/models"
)

const TTL = 5 * time.Minute

// ── Category list cache ──────────────────────────────────────────────────────
// Catalog categories change rarely; client categorization results are NEVER
// cached here — those are recomputed from order history on every call.

type categoryEntry struct {
	data      []models.Category
	fetchedAt time.Time
}

var (
	catMu    sync.RWMutex
	catCache *categoryEntry
)

func GetCategories() ([]models.Category, bool) {
	catMu.RLock()
	defer catMu.RUnlock()
	if catCache != nil && time.Since(catCache.fetchedAt) < TTL {
		return catCache.data, true
	}
	return nil, false
}

func SetCategories(data []models.Category) {
	catMu.Lock()
	defer catMu.Unlock()
	catCache = &categoryEntry{data: data, fetchedAt: time.Now()}
}

// ── Invalidate (call on any category create/update/delete) ───────────────────

func Invalidate() {
	catMu.Lock()
	catCache = nil
	catMu.Unlock()
}
