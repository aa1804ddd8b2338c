package search

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amaumene/wheretowatch/internal/models"
	"github.com/amaumene/wheretowatch/pkg/logger"
)

// fakeCatalog answers from maps. When a gate is registered for a query or
// id, the call blocks until the gate is closed.
type fakeCatalog struct {
	mu          sync.Mutex
	searches    map[string][]models.TMDBSearchItem
	details     map[int]*models.DetailPayload
	searchGates map[string]chan struct{}
	detailGates map[int]chan struct{}
	searchErr   error
	detailErr   error
	started     chan string
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		searches:    map[string][]models.TMDBSearchItem{},
		details:     map[int]*models.DetailPayload{},
		searchGates: map[string]chan struct{}{},
		detailGates: map[int]chan struct{}{},
		started:     make(chan string, 16),
	}
}

func (f *fakeCatalog) SearchMulti(ctx context.Context, query string) ([]models.TMDBSearchItem, error) {
	f.mu.Lock()
	gate := f.searchGates[query]
	f.mu.Unlock()

	f.started <- "search:" + query
	if gate != nil {
		<-gate
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.searches[query], nil
}

func (f *fakeCatalog) FetchDetail(ctx context.Context, kind models.MediaKind, id int) (*models.DetailPayload, error) {
	f.mu.Lock()
	gate := f.detailGates[id]
	f.mu.Unlock()

	f.started <- fmt.Sprintf("detail:%d", id)
	if gate != nil {
		<-gate
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.detailErr != nil {
		return nil, f.detailErr
	}
	payload, ok := f.details[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return payload, nil
}

func movie(id int, title string) models.TMDBSearchItem {
	return models.TMDBSearchItem{ID: id, Title: title, MediaType: "movie", PosterPath: "/p.jpg", ReleaseDate: "1999-03-31"}
}

func moviePayload(id int, title string) *models.DetailPayload {
	payload := &models.DetailPayload{}
	payload.Details.ID = id
	payload.Details.Title = title
	payload.Details.ReleaseDate = "1999-03-31"
	return payload
}

func waitStarted(t *testing.T, f *fakeCatalog, want string) {
	t.Helper()
	select {
	case got := <-f.started:
		require.Equal(t, want, got)
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %s", want)
	}
}

func TestSubmitIgnoresBlankQuery(t *testing.T) {
	c := NewController(newFakeCatalog(), logger.Discard())

	snap := c.Submit(context.Background(), "   ")
	assert.Equal(t, StateIdle, snap.State)
	assert.Equal(t, SignalNone, snap.Signal)
	assert.Empty(t, snap.Query)
}

func TestSubmitNoResults(t *testing.T) {
	c := NewController(newFakeCatalog(), logger.Discard())

	snap := c.Submit(context.Background(), "xyzzynonexistent123")
	assert.Equal(t, StateIdle, snap.State)
	assert.Equal(t, SignalNoResults, snap.Signal)
	assert.Empty(t, snap.Results)
	assert.Nil(t, snap.Detail)
}

func TestSubmitSingleResultAutoLoadsDetail(t *testing.T) {
	f := newFakeCatalog()
	f.searches["fight club"] = []models.TMDBSearchItem{movie(550, "Fight Club")}
	f.details[550] = moviePayload(550, "Fight Club")
	c := NewController(f, logger.Discard())

	snap := c.Submit(context.Background(), "fight club")
	assert.Equal(t, StateShowingDetail, snap.State)
	require.NotNil(t, snap.Detail)
	assert.Equal(t, 550, snap.Detail.ID)
	assert.Equal(t, 1999, snap.Detail.Year)
}

func TestSubmitFiltersBeforeCounting(t *testing.T) {
	f := newFakeCatalog()
	person := models.TMDBSearchItem{ID: 1, Name: "Brad Pitt", MediaType: "person", PosterPath: "/b.jpg"}
	noPoster := models.TMDBSearchItem{ID: 2, Title: "Fight Club 2", MediaType: "movie"}
	f.searches["fight"] = []models.TMDBSearchItem{person, noPoster, movie(550, "Fight Club")}
	f.details[550] = moviePayload(550, "Fight Club")
	c := NewController(f, logger.Discard())

	snap := c.Submit(context.Background(), "fight")
	assert.Equal(t, StateShowingDetail, snap.State)
	require.NotNil(t, snap.Detail)
	assert.Equal(t, "Fight Club", snap.Detail.Title)
}

func TestSubmitMultipleResultsAwaitsSelection(t *testing.T) {
	f := newFakeCatalog()
	f.searches["matrix"] = []models.TMDBSearchItem{movie(603, "The Matrix"), movie(604, "The Matrix Reloaded")}
	f.details[604] = moviePayload(604, "The Matrix Reloaded")
	c := NewController(f, logger.Discard())

	snap := c.Submit(context.Background(), "matrix")
	require.Equal(t, StateAwaitingDisambiguation, snap.State)
	require.Len(t, snap.Results, 2)
	assert.Equal(t, "The Matrix", snap.Results[0].Title)
	assert.Nil(t, snap.Detail)

	snap = c.Select(context.Background(), snap.Results[1])
	assert.Equal(t, StateShowingDetail, snap.State)
	require.NotNil(t, snap.Detail)
	assert.Equal(t, 604, snap.Detail.ID)
}

func TestSubmitCapsResults(t *testing.T) {
	f := newFakeCatalog()
	var items []models.TMDBSearchItem
	for i := 1; i <= 15; i++ {
		items = append(items, movie(i, fmt.Sprintf("Star %d", i)))
	}
	f.searches["star"] = items
	c := NewController(f, logger.Discard())

	snap := c.Submit(context.Background(), "star")
	require.Len(t, snap.Results, 10)
	assert.Equal(t, 1, snap.Results[0].ID)
	assert.Equal(t, 10, snap.Results[9].ID)
}

func TestSelectIgnoredOutsideDisambiguation(t *testing.T) {
	c := NewController(newFakeCatalog(), logger.Discard())

	snap := c.Select(context.Background(), models.SearchResult{ID: 1, MediaKind: models.MediaMovie})
	assert.Equal(t, StateIdle, snap.State)
	assert.Nil(t, snap.Detail)
}

func TestSearchFailureSignals(t *testing.T) {
	f := newFakeCatalog()
	f.searchErr = errors.New("connection refused")
	c := NewController(f, logger.Discard())

	snap := c.Submit(context.Background(), "matrix")
	assert.Equal(t, StateIdle, snap.State)
	assert.Equal(t, SignalSearchFailed, snap.Signal)
}

func TestDetailFailureSignals(t *testing.T) {
	f := newFakeCatalog()
	f.searches["fight club"] = []models.TMDBSearchItem{movie(550, "Fight Club")}
	f.detailErr = errors.New("500")
	c := NewController(f, logger.Discard())

	snap := c.Submit(context.Background(), "fight club")
	assert.Equal(t, StateIdle, snap.State)
	assert.Equal(t, SignalDetailsFailed, snap.Signal)
	assert.Nil(t, snap.Detail)
}

func TestNewSearchClearsState(t *testing.T) {
	f := newFakeCatalog()
	f.searches["fight club"] = []models.TMDBSearchItem{movie(550, "Fight Club")}
	f.details[550] = moviePayload(550, "Fight Club")
	c := NewController(f, logger.Discard())

	c.Submit(context.Background(), "fight club")
	snap := c.NewSearch()
	assert.Equal(t, StateIdle, snap.State)
	assert.Empty(t, snap.Query)
	assert.Nil(t, snap.Results)
	assert.Nil(t, snap.Detail)
}

func TestLateOlderDetailIsDiscarded(t *testing.T) {
	f := newFakeCatalog()
	f.searches["alpha"] = []models.TMDBSearchItem{movie(1, "Alpha")}
	f.searches["beta"] = []models.TMDBSearchItem{movie(2, "Beta")}
	f.details[1] = moviePayload(1, "Alpha")
	f.details[2] = moviePayload(2, "Beta")
	gateA := make(chan struct{})
	gateB := make(chan struct{})
	f.detailGates[1] = gateA
	f.detailGates[2] = gateB
	c := NewController(f, logger.Discard())

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		c.Submit(context.Background(), "alpha")
	}()
	waitStarted(t, f, "search:alpha")
	waitStarted(t, f, "detail:1")

	go func() {
		defer wg.Done()
		c.Submit(context.Background(), "beta")
	}()
	waitStarted(t, f, "search:beta")
	waitStarted(t, f, "detail:2")

	close(gateB)
	require.Eventually(t, func() bool {
		return c.Snapshot().State == StateShowingDetail
	}, 2*time.Second, 10*time.Millisecond)

	close(gateA)
	wg.Wait()

	snap := c.Snapshot()
	assert.Equal(t, StateShowingDetail, snap.State)
	require.NotNil(t, snap.Detail)
	assert.Equal(t, "Beta", snap.Detail.Title)
	assert.Equal(t, "beta", snap.Query)
}

func TestLateOlderSearchIsDiscarded(t *testing.T) {
	f := newFakeCatalog()
	f.searches["alpha"] = []models.TMDBSearchItem{movie(1, "Alpha"), movie(3, "Alpha II")}
	f.searches["beta"] = []models.TMDBSearchItem{movie(2, "Beta")}
	f.details[2] = moviePayload(2, "Beta")
	gateA := make(chan struct{})
	f.searchGates["alpha"] = gateA
	c := NewController(f, logger.Discard())

	done := make(chan struct{})
	go func() {
		defer close(done)
		c.Submit(context.Background(), "alpha")
	}()
	waitStarted(t, f, "search:alpha")

	snap := c.Submit(context.Background(), "beta")
	require.Equal(t, StateShowingDetail, snap.State)

	close(gateA)
	<-done

	snap = c.Snapshot()
	assert.Equal(t, StateShowingDetail, snap.State)
	assert.Equal(t, "Beta", snap.Detail.Title)
	assert.Empty(t, snap.Results)
}

func TestNewSearchDiscardsInFlightDetail(t *testing.T) {
	f := newFakeCatalog()
	f.searches["alpha"] = []models.TMDBSearchItem{movie(1, "Alpha")}
	f.details[1] = moviePayload(1, "Alpha")
	gate := make(chan struct{})
	f.detailGates[1] = gate
	c := NewController(f, logger.Discard())

	done := make(chan struct{})
	go func() {
		defer close(done)
		c.Submit(context.Background(), "alpha")
	}()
	waitStarted(t, f, "search:alpha")
	waitStarted(t, f, "detail:1")

	c.NewSearch()
	close(gate)
	<-done

	snap := c.Snapshot()
	assert.Equal(t, StateIdle, snap.State)
	assert.Nil(t, snap.Detail)
}

func TestSnapshotIsACopy(t *testing.T) {
	f := newFakeCatalog()
	f.searches["matrix"] = []models.TMDBSearchItem{movie(603, "The Matrix"), movie(604, "The Matrix Reloaded")}
	c := NewController(f, logger.Discard())

	snap := c.Submit(context.Background(), "matrix")
	snap.Results[0].Title = "changed"

	assert.Equal(t, "The Matrix", c.Snapshot().Results[0].Title)
}

func TestSelectClearsResults(t *testing.T) {
	f := newFakeCatalog()
	f.searches["matrix"] = []models.TMDBSearchItem{movie(603, "The Matrix"), movie(604, "The Matrix Reloaded")}
	f.details[604] = moviePayload(604, "The Matrix Reloaded")
	c := NewController(f, logger.Discard())

	snap := c.Submit(context.Background(), "matrix")
	require.Len(t, snap.Results, 2)

	snap = c.Select(context.Background(), snap.Results[1])
	assert.Equal(t, StateShowingDetail, snap.State)
	assert.Empty(t, snap.Results)
}

func TestDetailFailureAfterSelectDoesNotRestoreResults(t *testing.T) {
	f := newFakeCatalog()
	f.searches["matrix"] = []models.TMDBSearchItem{movie(603, "The Matrix"), movie(604, "The Matrix Reloaded")}
	c := NewController(f, logger.Discard())

	snap := c.Submit(context.Background(), "matrix")
	require.Len(t, snap.Results, 2)

	f.mu.Lock()
	f.detailErr = errors.New("500")
	f.mu.Unlock()

	snap = c.Select(context.Background(), snap.Results[0])
	assert.Equal(t, StateIdle, snap.State)
	assert.Equal(t, SignalDetailsFailed, snap.Signal)
	assert.Empty(t, snap.Results)
	assert.Nil(t, snap.Detail)
}

func TestSingleResultDoesNotKeepResults(t *testing.T) {
	f := newFakeCatalog()
	f.searches["fight club"] = []models.TMDBSearchItem{movie(550, "Fight Club")}
	f.details[550] = moviePayload(550, "Fight Club")
	c := NewController(f, logger.Discard())

	snap := c.Submit(context.Background(), "fight club")
	assert.Equal(t, StateShowingDetail, snap.State)
	assert.Empty(t, snap.Results)
}
