package search

import (
	"context"
	"strings"
	"sync"

	"github.com/amaumene/wheretowatch/internal/models"
	"github.com/amaumene/wheretowatch/internal/services"
	"github.com/amaumene/wheretowatch/pkg/logger"
)

// State is the phase of the lookup flow.
type State int

const (
	StateIdle State = iota
	StateSearching
	StateAwaitingDisambiguation
	StateLoadingDetail
	StateShowingDetail
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSearching:
		return "searching"
	case StateAwaitingDisambiguation:
		return "awaiting_disambiguation"
	case StateLoadingDetail:
		return "loading_detail"
	case StateShowingDetail:
		return "showing_detail"
	default:
		return "unknown"
	}
}

// Signal is a user-facing notice attached to the idle state.
type Signal int

const (
	SignalNone Signal = iota
	SignalNoResults
	SignalSearchFailed
	SignalDetailsFailed
)

func (s Signal) String() string {
	switch s {
	case SignalNoResults:
		return "no_results"
	case SignalSearchFailed:
		return "search_failed"
	case SignalDetailsFailed:
		return "details_failed"
	default:
		return "none"
	}
}

// Snapshot is a copy of the controller's observable state.
type Snapshot struct {
	State   State
	Signal  Signal
	Query   string
	Results []models.SearchResult
	Detail  *models.ContentDetail
}

// Controller drives search, disambiguation and detail loading. Every
// Submit, Select and NewSearch takes a new sequence number; a response is
// applied only when its number is still the latest, so an older request
// finishing late never overwrites a newer one.
type Controller struct {
	catalog services.Catalog
	logger  logger.Logger

	mu      sync.Mutex
	seq     uint64
	state   State
	signal  Signal
	query   string
	results []models.SearchResult
	detail  *models.ContentDetail
}

func NewController(catalog services.Catalog, log logger.Logger) *Controller {
	if log == nil {
		log = logger.Discard()
	}
	return &Controller{catalog: catalog, logger: log}
}

// Submit searches for query. A blank query is ignored. One result loads its
// detail directly; several leave the controller awaiting a selection.
func (c *Controller) Submit(ctx context.Context, query string) Snapshot {
	query = strings.TrimSpace(query)
	if query == "" {
		return c.Snapshot()
	}

	c.mu.Lock()
	c.seq++
	token := c.seq
	c.state = StateSearching
	c.signal = SignalNone
	c.query = query
	c.results = nil
	c.detail = nil
	c.mu.Unlock()

	results, err := Search(ctx, c.catalog, query)

	c.mu.Lock()
	if token != c.seq {
		c.mu.Unlock()
		c.logger.Debugf("[Controller] dropping stale results for %q", query)
		return c.Snapshot()
	}
	switch {
	case err != nil:
		c.logger.Errorf("[Controller] search %q failed: %v", query, err)
		c.state = StateIdle
		c.signal = SignalSearchFailed
		c.mu.Unlock()
		return c.Snapshot()
	case len(results) == 0:
		c.state = StateIdle
		c.signal = SignalNoResults
		c.mu.Unlock()
		return c.Snapshot()
	case len(results) > 1:
		c.state = StateAwaitingDisambiguation
		c.results = results
		c.mu.Unlock()
		return c.Snapshot()
	}

	only := results[0]
	c.state = StateLoadingDetail
	c.mu.Unlock()

	c.loadDetail(ctx, token, only)
	return c.Snapshot()
}

// Select loads the detail for one of the results shown for disambiguation
// and clears the result list. It is ignored unless the controller is
// awaiting a selection.
func (c *Controller) Select(ctx context.Context, result models.SearchResult) Snapshot {
	c.mu.Lock()
	if c.state != StateAwaitingDisambiguation {
		c.mu.Unlock()
		return c.Snapshot()
	}
	c.seq++
	token := c.seq
	c.state = StateLoadingDetail
	c.signal = SignalNone
	// The choices are gone once one is picked, even if the detail fails.
	c.results = nil
	c.mu.Unlock()

	c.loadDetail(ctx, token, result)
	return c.Snapshot()
}

// NewSearch clears the query, results and detail and returns to idle.
// In-flight requests become stale.
func (c *Controller) NewSearch() Snapshot {
	c.mu.Lock()
	c.seq++
	c.state = StateIdle
	c.signal = SignalNone
	c.query = ""
	c.results = nil
	c.detail = nil
	c.mu.Unlock()
	return c.Snapshot()
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		State:  c.state,
		Signal: c.signal,
		Query:  c.query,
	}
	if c.results != nil {
		snap.Results = append([]models.SearchResult(nil), c.results...)
	}
	if c.detail != nil {
		detail := *c.detail
		snap.Detail = &detail
	}
	return snap
}

func (c *Controller) loadDetail(ctx context.Context, token uint64, result models.SearchResult) {
	detail, err := LoadDetail(ctx, c.catalog, result.MediaKind, result.ID)

	c.mu.Lock()
	defer c.mu.Unlock()

	if token != c.seq {
		c.logger.Debugf("[Controller] dropping stale detail for %s %d", result.MediaKind, result.ID)
		return
	}
	if err != nil {
		c.logger.Errorf("[Controller] detail %s %d failed: %v", result.MediaKind, result.ID, err)
		c.state = StateIdle
		c.signal = SignalDetailsFailed
		return
	}
	c.detail = detail
	c.state = StateShowingDetail
}
