package manager

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/oapi-codegen/nullable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/AntonioSertic23/nextup/config"
	"github.com/AntonioSertic23/nextup/pkg/catalog"
	"github.com/AntonioSertic23/nextup/pkg/catalog/mocks"
	"github.com/AntonioSertic23/nextup/pkg/pagination"
	"github.com/AntonioSertic23/nextup/pkg/storage"
	"github.com/AntonioSertic23/nextup/pkg/storage/sqlite"
)

const testUser = "user-1"

func newTestManager(t *testing.T, ctrl *gomock.Controller) (Manager, *mocks.MockClientInterface, storage.Storage) {
	store, err := sqlite.New(":memory:")
	require.Nil(t, err)

	client := mocks.NewMockClientInterface(ctrl)
	m := New(client, store, config.Sync{
		ShowThrottle: time.Millisecond,
		PageSize:     100,
	})
	return m, client, store
}

func testShowPayload(trakt int32, slug string) catalog.Show {
	return catalog.Show{
		Title: "Breaking Bad",
		Year:  nullable.NewNullableWithValue(int32(2008)),
		IDs: catalog.IDs{
			Trakt: trakt,
			Slug:  slug,
			IMDB:  nullable.NewNullableWithValue("tt0903747"),
		},
		Runtime: nullable.NewNullableWithValue(int32(45)),
	}
}

func testSeasons(trakt int32) []catalog.Season {
	return []catalog.Season{
		{
			Number:       0,
			IDs:          catalog.IDs{Trakt: trakt + 1},
			EpisodeCount: 1,
			Episodes: []catalog.Episode{
				{Season: 0, Number: 1, Title: "Special", IDs: catalog.IDs{Trakt: trakt + 100}},
			},
		},
		{
			Number:       1,
			IDs:          catalog.IDs{Trakt: trakt + 2},
			EpisodeCount: 2,
			Episodes: []catalog.Episode{
				{Season: 1, Number: 1, Title: "Pilot", IDs: catalog.IDs{Trakt: trakt + 101}},
				{Season: 1, Number: 2, Title: "Cat's in the Bag...", IDs: catalog.IDs{Trakt: trakt + 102}},
			},
		},
	}
}

// seedShow ingests the standard two-episode show, creates the default list
// and puts the show on it.
func seedShow(t *testing.T, ctx context.Context, m Manager) (showID string, episodeIDs []string) {
	result, err := m.IngestShow(ctx, testShowPayload(1388, "breaking-bad"), testSeasons(1388))
	require.Nil(t, err)
	require.Empty(t, result.Failed)

	_, err = m.EnsureDefaultList(ctx, testUser)
	require.Nil(t, err)

	_, err = m.AddShow(ctx, testUser, result.ShowID)
	require.Nil(t, err)

	episodes, err := m.storage.ListEpisodes(ctx, result.ShowID)
	require.Nil(t, err)
	for _, ep := range episodes {
		if ep.SeasonNumber != 0 {
			episodeIDs = append(episodeIDs, ep.ID)
		}
	}
	require.Len(t, episodeIDs, 2)

	return result.ShowID, episodeIDs
}

func TestIngestShowIdempotent(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	m, _, store := newTestManager(t, ctrl)

	first, err := m.IngestShow(ctx, testShowPayload(1388, "breaking-bad"), testSeasons(1388))
	assert.Nil(t, err)
	assert.Equal(t, 1, first.Seasons)
	assert.Equal(t, 2, first.Episodes)

	second, err := m.IngestShow(ctx, testShowPayload(1388, "breaking-bad"), testSeasons(1388))
	assert.Nil(t, err)
	assert.Equal(t, first.ShowID, second.ShowID)

	seasons, err := store.ListSeasons(ctx, first.ShowID)
	assert.Nil(t, err)
	assert.Len(t, seasons, 1)

	episodes, err := store.ListEpisodes(ctx, first.ShowID)
	assert.Nil(t, err)
	assert.Len(t, episodes, 2)
}

func TestIngestShowSkipsSpecials(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	m, _, store := newTestManager(t, ctrl)

	seasons := testSeasons(1388)
	// a non-zero season titled like a specials collection is excluded too
	seasons = append(seasons, catalog.Season{
		Number:       2,
		Title:        nullable.NewNullableWithValue("Specials"),
		IDs:          catalog.IDs{Trakt: 2000},
		EpisodeCount: 3,
		Episodes: []catalog.Episode{
			{Season: 2, Number: 1, Title: "Extra", IDs: catalog.IDs{Trakt: 2001}},
		},
	})

	result, err := m.IngestShow(ctx, testShowPayload(1388, "breaking-bad"), seasons)
	assert.Nil(t, err)
	assert.Equal(t, 1, result.Seasons)
	assert.Equal(t, 2, result.Episodes)

	total, err := store.CountShowEpisodes(ctx, result.ShowID)
	assert.Nil(t, err)
	assert.Equal(t, int32(2), total)
}

func TestMarkUnmarkRoundTrip(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	m, client, store := newTestManager(t, ctrl)
	showID, episodeIDs := seedShow(t, ctx, m)

	client.EXPECT().AddToHistory(gomock.Any(), "token", gomock.Any()).Return(nil)
	client.EXPECT().RemoveFromHistory(gomock.Any(), "token", gomock.Any()).Return(nil)

	before, err := store.GetListShow(ctx, mustDefaultList(t, ctx, m), showID)
	require.Nil(t, err)

	progress, err := m.MarkEpisodes(ctx, testUser, "token", showID, episodeIDs)
	assert.Nil(t, err)
	assert.Equal(t, int32(2), progress.WatchedEpisodes)
	assert.True(t, progress.IsCompleted)
	assert.NotNil(t, progress.CompletedAt)
	assert.Nil(t, progress.NextEpisode)

	progress, err = m.UnmarkEpisodes(ctx, testUser, "token", showID, episodeIDs)
	assert.Nil(t, err)
	assert.Equal(t, before.WatchedEpisodes, progress.WatchedEpisodes)
	assert.False(t, progress.IsCompleted)
	assert.Nil(t, progress.CompletedAt)
	require.NotNil(t, progress.NextEpisode)
	assert.Equal(t, "Pilot", progress.NextEpisode.Title)

	// the aggregate always equals the count of stored watch events
	watched, err := store.CountWatchedEpisodes(ctx, testUser, showID)
	assert.Nil(t, err)
	assert.Equal(t, progress.WatchedEpisodes, watched)
}

func TestMarkIdempotent(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	m, client, _ := newTestManager(t, ctrl)
	showID, episodeIDs := seedShow(t, ctx, m)

	client.EXPECT().AddToHistory(gomock.Any(), "token", gomock.Any()).Return(nil).Times(2)

	progress, err := m.MarkEpisodes(ctx, testUser, "token", showID, episodeIDs[:1])
	assert.Nil(t, err)
	assert.Equal(t, int32(1), progress.WatchedEpisodes)

	// marking the same episode again must not increment
	progress, err = m.MarkEpisodes(ctx, testUser, "token", showID, episodeIDs[:1])
	assert.Nil(t, err)
	assert.Equal(t, int32(1), progress.WatchedEpisodes)
	require.NotNil(t, progress.NextEpisode)
	assert.Equal(t, "Cat's in the Bag...", progress.NextEpisode.Title)
}

func TestMarkUpstreamFailureCommitsLocal(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	m, client, store := newTestManager(t, ctrl)
	showID, episodeIDs := seedShow(t, ctx, m)

	client.EXPECT().AddToHistory(gomock.Any(), "token", gomock.Any()).
		Return(catalog.Error{StatusCode: 500, Message: "boom"})

	_, err := m.MarkEpisodes(ctx, testUser, "token", showID, episodeIDs[:1])
	var upstreamErr UpstreamError
	assert.ErrorAs(t, err, &upstreamErr)

	// local state reflects the user's intent even though the push failed
	watched, err := store.CountWatchedEpisodes(ctx, testUser, showID)
	assert.Nil(t, err)
	assert.Equal(t, int32(1), watched)

	row, err := store.GetListShow(ctx, mustDefaultList(t, ctx, m), showID)
	assert.Nil(t, err)
	assert.Equal(t, int32(1), row.WatchedEpisodes)
}

func TestMarkValidation(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	m, _, _ := newTestManager(t, ctrl)
	showID, episodeIDs := seedShow(t, ctx, m)

	_, err := m.MarkEpisodes(ctx, testUser, "token", showID, nil)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = m.MarkEpisodes(ctx, testUser, "token", showID, []string{"unknown"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = m.MarkEpisodes(ctx, testUser, "token", "", episodeIDs)
	assert.ErrorIs(t, err, ErrValidation)

	// a user without a default list cannot mark
	_, err = m.MarkEpisodes(ctx, "nobody", "token", showID, episodeIDs)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestAddRemoveRoundTrip(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	m, client, store := newTestManager(t, ctrl)
	showID, episodeIDs := seedShow(t, ctx, m)

	client.EXPECT().AddToHistory(gomock.Any(), "token", gomock.Any()).Return(nil)
	_, err := m.MarkEpisodes(ctx, testUser, "token", showID, episodeIDs[:1])
	require.Nil(t, err)

	err = m.RemoveShow(ctx, testUser, showID)
	assert.Nil(t, err)

	listID := mustDefaultList(t, ctx, m)
	_, err = store.GetListShow(ctx, listID, showID)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	// watch history survives leaving the collection
	watched, err := store.CountWatchedEpisodes(ctx, testUser, showID)
	assert.Nil(t, err)
	assert.Equal(t, int32(1), watched)

	// re-adding computes the aggregate from the retained history
	row, err := m.AddShow(ctx, testUser, showID)
	assert.Nil(t, err)
	assert.Equal(t, int32(1), row.WatchedEpisodes)
	assert.Equal(t, int32(2), row.TotalEpisodes)
	assert.False(t, row.IsCompleted)
	require.NotNil(t, row.NextEpisodeID)
}

func TestConcurrentDisjointMarks(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	m, client, store := newTestManager(t, ctrl)
	showID, episodeIDs := seedShow(t, ctx, m)

	client.EXPECT().AddToHistory(gomock.Any(), "token", gomock.Any()).Return(nil).AnyTimes()

	var wg sync.WaitGroup
	for _, id := range episodeIDs {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_, err := m.MarkEpisodes(ctx, testUser, "token", showID, []string{id})
			assert.Nil(t, err)
		}(id)
	}
	wg.Wait()

	// both increments land, no lost update
	row, err := store.GetListShow(ctx, mustDefaultList(t, ctx, m), showID)
	assert.Nil(t, err)
	assert.Equal(t, int32(2), row.WatchedEpisodes)
	assert.True(t, row.IsCompleted)
}

func TestSyncAccountResilience(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	m, client, store := newTestManager(t, ctrl)

	_, err := m.EnsureDefaultList(ctx, testUser)
	require.Nil(t, err)

	shows := []catalog.WatchedShow{
		watchedShowPayload(100, "show-a"),
		watchedShowPayload(200, "show-b"),
		watchedShowPayload(300, "show-c"),
	}

	client.EXPECT().WatchedShows(gomock.Any(), "token", 1, 100).Return(&catalog.WatchedShowsPage{
		Shows:      shows,
		Pagination: catalog.Pagination{Page: 1, PageCount: 1},
	}, nil)
	client.EXPECT().GetSeasons(gomock.Any(), "100", false).Return(testSeasons(100), nil)
	client.EXPECT().GetSeasons(gomock.Any(), "200", false).
		Return(nil, catalog.Error{StatusCode: 500, Message: "boom"})
	client.EXPECT().GetSeasons(gomock.Any(), "300", false).Return(testSeasons(300), nil)

	result, err := m.SyncAccount(ctx, testUser, "token")
	assert.Nil(t, err)
	assert.Equal(t, 2, result.Synced)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, "show-b", result.Failed[0].Item)

	// the failing show did not stop the others from landing
	for _, trakt := range []int32{100, 300} {
		id := trakt
		show, err := store.FindShowByExternalIDs(ctx, storage.ExternalIDs{Trakt: &id})
		require.Nil(t, err)

		watched, err := store.CountWatchedEpisodes(ctx, testUser, show.ID)
		assert.Nil(t, err)
		assert.Equal(t, int32(2), watched)
		assert.NotNil(t, show.LastWatchedAt)
	}

	missing := int32(200)
	_, err = store.FindShowByExternalIDs(ctx, storage.ExternalIDs{Trakt: &missing})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestSyncRefreshesWatchlistAggregate(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	m, client, store := newTestManager(t, ctrl)
	showID, _ := seedShow(t, ctx, m)

	client.EXPECT().WatchedShows(gomock.Any(), "token", 1, 100).Return(&catalog.WatchedShowsPage{
		Shows:      []catalog.WatchedShow{watchedShowPayload(1388, "breaking-bad")},
		Pagination: catalog.Pagination{Page: 1, PageCount: 1},
	}, nil)
	client.EXPECT().GetSeasons(gomock.Any(), "1388", false).Return(testSeasons(1388), nil)

	result, err := m.SyncAccount(ctx, testUser, "token")
	assert.Nil(t, err)
	assert.Equal(t, 1, result.Synced)

	row, err := store.GetListShow(ctx, mustDefaultList(t, ctx, m), showID)
	assert.Nil(t, err)
	assert.Equal(t, int32(2), row.WatchedEpisodes)
	assert.True(t, row.IsCompleted)
	assert.Nil(t, row.NextEpisodeID)
}

func TestGetShowDetail(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	m, client, _ := newTestManager(t, ctrl)
	showID, episodeIDs := seedShow(t, ctx, m)

	client.EXPECT().AddToHistory(gomock.Any(), "token", gomock.Any()).Return(nil)
	_, err := m.MarkEpisodes(ctx, testUser, "token", showID, episodeIDs[:1])
	require.Nil(t, err)

	detail, err := m.GetShowDetail(ctx, testUser, "1388")
	assert.Nil(t, err)
	assert.Equal(t, "Breaking Bad", detail.Show.Title)
	require.Len(t, detail.Seasons, 1)
	require.Len(t, detail.Seasons[0].Episodes, 2)
	assert.True(t, detail.Seasons[0].Episodes[0].Watched)
	assert.False(t, detail.Seasons[0].Episodes[1].Watched)
	assert.Equal(t, int32(1), detail.Progress.WatchedEpisodes)
	assert.Equal(t, int32(2), detail.Progress.TotalEpisodes)
	require.NotNil(t, detail.Progress.NextEpisode)
	assert.Equal(t, "Cat's in the Bag...", detail.Progress.NextEpisode.Title)

	// imdb lookup hits the same show without a catalog round trip
	detail, err = m.GetShowDetail(ctx, testUser, "tt0903747")
	assert.Nil(t, err)
	assert.Equal(t, showID, detail.Show.ID)
}

func TestGetShowDetailFetchesUnknownShow(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	m, client, _ := newTestManager(t, ctrl)

	_, err := m.EnsureDefaultList(ctx, testUser)
	require.Nil(t, err)

	payload := testShowPayload(1388, "breaking-bad")
	client.EXPECT().GetShow(gomock.Any(), "breaking-bad").Return(&payload, nil)
	client.EXPECT().GetSeasons(gomock.Any(), "breaking-bad", false).Return(testSeasons(1388), nil)

	detail, err := m.GetShowDetail(ctx, testUser, "breaking-bad")
	assert.Nil(t, err)
	assert.Equal(t, "Breaking Bad", detail.Show.Title)
	assert.Equal(t, int32(2), detail.Progress.TotalEpisodes)

	_, err = m.GetShowDetail(ctx, testUser, "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSearchShows(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	m, client, _ := newTestManager(t, ctrl)

	_, err := m.SearchShows(ctx, "token", "", pagination.Params{})
	assert.ErrorIs(t, err, ErrValidation)

	client.EXPECT().SearchShows(gomock.Any(), "token", "breaking", 1, 20).Return(&catalog.SearchResponse{
		Results:    []catalog.SearchResult{{Type: "show", Score: 100, Show: testShowPayload(1388, "breaking-bad")}},
		Pagination: catalog.Pagination{Page: 1, PageSize: 20, PageCount: 1, ItemCount: 1},
	}, nil)

	resp, err := m.SearchShows(ctx, "token", "breaking", pagination.Params{Page: 1, PageSize: 20})
	assert.Nil(t, err)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "Breaking Bad", resp.Results[0].Show.Title)
	assert.Equal(t, 1, resp.Meta.TotalItems)
}

func TestEnsureDefaultListSingleton(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	m, _, store := newTestManager(t, ctrl)

	first, err := m.EnsureDefaultList(ctx, testUser)
	require.Nil(t, err)

	second, err := m.EnsureDefaultList(ctx, testUser)
	require.Nil(t, err)
	assert.Equal(t, first.ID, second.ID)

	// concurrent callers race get-then-create; the loser of the unique
	// index still resolves to the winner's list
	var wg sync.WaitGroup
	results := make([]string, 4)
	errs := make([]error, 4)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			list, err := m.EnsureDefaultList(ctx, testUser)
			if err != nil {
				errs[i] = err
				return
			}
			results[i] = list.ID
		}(i)
	}
	wg.Wait()
	for i := range results {
		require.Nil(t, errs[i])
		assert.Equal(t, first.ID, results[i])
	}

	list, err := store.GetDefaultList(ctx, testUser)
	require.Nil(t, err)
	assert.Equal(t, first.ID, list.ID)
}

func mustDefaultList(t *testing.T, ctx context.Context, m Manager) string {
	list, err := m.storage.GetDefaultList(ctx, testUser)
	require.Nil(t, err)
	return list.ID
}

func watchedShowPayload(trakt int32, slug string) catalog.WatchedShow {
	show := testShowPayload(trakt, slug)
	show.Title = slug
	return catalog.WatchedShow{
		Plays:         2,
		LastWatchedAt: "2026-02-01T20:00:00Z",
		Show:          show,
		Seasons: []catalog.WatchedSeason{
			{
				Number: 1,
				Episodes: []catalog.WatchedEpisode{
					{Number: 1, Plays: 1, LastWatchedAt: "2026-01-31T20:00:00Z"},
					{Number: 2, Plays: 1, LastWatchedAt: "2026-02-01T20:00:00Z"},
				},
			},
		},
	}
}
