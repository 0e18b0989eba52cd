package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonioSertic23/nextup/pkg/storage"
	"github.com/AntonioSertic23/nextup/pkg/storage/sqlite/schema/gen/model"
)

func TestInit(t *testing.T) {
	store := initSqlite(t)
	assert.NotNil(t, store)
}

func TestShowStorage(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t)

	year := int32(2008)
	imdb := "tt0903747"
	show := model.Shows{
		TraktID: 1388,
		Slug:    "breaking-bad",
		ImdbID:  &imdb,
		Title:   "Breaking Bad",
		Year:    &year,
		Runtime: 45,
	}
	id, err := store.UpsertShow(ctx, show)
	assert.Nil(t, err)
	assert.NotEmpty(t, id)

	got, err := store.GetShow(ctx, id)
	assert.Nil(t, err)
	assert.Equal(t, "Breaking Bad", got.Title)
	assert.Equal(t, int32(1388), got.TraktID)
	assert.Nil(t, got.LastWatchedAt)

	// same trakt id refreshes in place
	updatedStatus := "ended"
	show.Title = "Breaking Bad (updated)"
	show.Status = &updatedStatus
	again, err := store.UpsertShow(ctx, show)
	assert.Nil(t, err)
	assert.Equal(t, id, again)

	got, err = store.GetShow(ctx, id)
	assert.Nil(t, err)
	assert.Equal(t, "Breaking Bad (updated)", got.Title)
	require.NotNil(t, got.Status)
	assert.Equal(t, "ended", *got.Status)

	_, err = store.GetShow(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestFindShowByExternalIDs(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t)

	tvdb := int32(81189)
	imdb := "tt0903747"
	id, err := store.UpsertShow(ctx, model.Shows{
		TraktID: 1388,
		Slug:    "breaking-bad",
		TvdbID:  &tvdb,
		ImdbID:  &imdb,
		Title:   "Breaking Bad",
	})
	require.Nil(t, err)

	trakt := int32(1388)
	found, err := store.FindShowByExternalIDs(ctx, storage.ExternalIDs{Trakt: &trakt})
	assert.Nil(t, err)
	assert.Equal(t, id, found.ID)

	found, err = store.FindShowByExternalIDs(ctx, storage.ExternalIDs{IMDB: &imdb})
	assert.Nil(t, err)
	assert.Equal(t, id, found.ID)

	found, err = store.FindShowByExternalIDs(ctx, storage.ExternalIDs{TVDB: &tvdb})
	assert.Nil(t, err)
	assert.Equal(t, id, found.ID)

	// a trakt id that doesn't match must not fall through to other ids
	wrongTrakt := int32(999)
	_, err = store.FindShowByExternalIDs(ctx, storage.ExternalIDs{Trakt: &wrongTrakt})
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = store.FindShowByExternalIDs(ctx, storage.ExternalIDs{})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestTouchShowLastWatched(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t)

	id, err := store.UpsertShow(ctx, model.Shows{TraktID: 1, Slug: "s", Title: "Show"})
	require.Nil(t, err)

	watchedAt := time.Date(2026, 2, 3, 10, 30, 0, 0, time.UTC)
	err = store.TouchShowLastWatched(ctx, id, watchedAt)
	assert.Nil(t, err)

	got, err := store.GetShow(ctx, id)
	assert.Nil(t, err)
	require.NotNil(t, got.LastWatchedAt)
	assert.Equal(t, watchedAt, got.LastWatchedAt.UTC())
}

func TestEpisodeStorage(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t)

	showID, err := store.UpsertShow(ctx, model.Shows{TraktID: 1, Slug: "s", Title: "Show"})
	require.Nil(t, err)

	seasonID, err := store.UpsertSeason(ctx, model.Seasons{
		ShowID:       showID,
		TraktID:      10,
		Number:       1,
		EpisodeCount: 2,
	})
	require.Nil(t, err)

	specialsID, err := store.UpsertSeason(ctx, model.Seasons{
		ShowID:  showID,
		TraktID: 11,
		Number:  0,
	})
	require.Nil(t, err)

	seasons, err := store.ListSeasons(ctx, showID)
	assert.Nil(t, err)
	require.Len(t, seasons, 2)
	assert.Equal(t, int32(0), seasons[0].Number)

	for i, ep := range []model.Episodes{
		{SeasonID: seasonID, ShowID: showID, TraktID: 100, SeasonNumber: 1, Number: 1, Title: "Pilot"},
		{SeasonID: seasonID, ShowID: showID, TraktID: 101, SeasonNumber: 1, Number: 2, Title: "Cat's in the Bag..."},
		{SeasonID: specialsID, ShowID: showID, TraktID: 102, SeasonNumber: 0, Number: 1, Title: "Good Cop / Bad Cop"},
	} {
		_, err := store.UpsertEpisode(ctx, ep)
		require.Nil(t, err, "episode %d", i)
	}

	episodes, err := store.ListEpisodes(ctx, showID)
	assert.Nil(t, err)
	assert.Len(t, episodes, 3)

	// specials never count toward the trackable total
	count, err := store.CountShowEpisodes(ctx, showID)
	assert.Nil(t, err)
	assert.Equal(t, int32(2), count)

	ep, err := store.GetEpisodeByNumber(ctx, showID, 1, 2)
	assert.Nil(t, err)
	assert.Equal(t, "Cat's in the Bag...", ep.Title)

	_, err = store.GetEpisodeByNumber(ctx, showID, 1, 99)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	byIDs, err := store.GetEpisodesByIDs(ctx, []string{ep.ID, "missing"})
	assert.Nil(t, err)
	assert.Len(t, byIDs, 1)

	// re-upsert with the same trakt id updates in place
	updatedID, err := store.UpsertEpisode(ctx, model.Episodes{
		SeasonID:     seasonID,
		ShowID:       showID,
		TraktID:      101,
		SeasonNumber: 1,
		Number:       2,
		Title:        "Cat's in the Bag... (extended)",
	})
	assert.Nil(t, err)
	assert.Equal(t, ep.ID, updatedID)
}

func TestListStorage(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t)

	listID, err := store.CreateList(ctx, model.Lists{
		UserID:    "user-1",
		Name:      "Watchlist",
		IsDefault: true,
	})
	assert.Nil(t, err)
	assert.NotEmpty(t, listID)

	list, err := store.GetDefaultList(ctx, "user-1")
	assert.Nil(t, err)
	assert.Equal(t, listID, list.ID)

	_, err = store.GetDefaultList(ctx, "nobody")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	showID, err := store.UpsertShow(ctx, model.Shows{TraktID: 1, Slug: "s", Title: "Show"})
	require.Nil(t, err)

	_, err = store.UpsertListShow(ctx, model.ListShows{
		ListID:        listID,
		ShowID:        showID,
		TotalEpisodes: 10,
	})
	assert.Nil(t, err)

	entry, err := store.GetListShow(ctx, listID, showID)
	assert.Nil(t, err)
	assert.Equal(t, int32(10), entry.TotalEpisodes)
	assert.False(t, entry.IsCompleted)

	entries, err := store.ListListShows(ctx, listID, storage.SortByAdded, storage.OrderDesc)
	assert.Nil(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, showID, entries[0].Show.ID)
	assert.Equal(t, "Show", entries[0].Show.Title)

	err = store.DeleteListShow(ctx, listID, showID)
	assert.Nil(t, err)

	err = store.DeleteListShow(ctx, listID, showID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestOneDefaultListPerUser(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t)

	first, err := store.CreateList(ctx, model.Lists{UserID: "user-1", Name: "Watchlist", IsDefault: true})
	require.Nil(t, err)

	// the partial unique index rejects a second default for the same user
	_, err = store.CreateList(ctx, model.Lists{UserID: "user-1", Name: "Another", IsDefault: true})
	assert.NotNil(t, err)

	// non-default lists and other users' defaults are unaffected
	_, err = store.CreateList(ctx, model.Lists{UserID: "user-1", Name: "Favorites"})
	assert.Nil(t, err)
	_, err = store.CreateList(ctx, model.Lists{UserID: "user-2", Name: "Watchlist", IsDefault: true})
	assert.Nil(t, err)

	list, err := store.GetDefaultList(ctx, "user-1")
	assert.Nil(t, err)
	assert.Equal(t, first, list.ID)
}

func TestListListShowsSorting(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t)

	listID, err := store.CreateList(ctx, model.Lists{UserID: "user-1", Name: "Watchlist", IsDefault: true})
	require.Nil(t, err)

	aID, err := store.UpsertShow(ctx, model.Shows{TraktID: 1, Slug: "a", Title: "Alpha"})
	require.Nil(t, err)
	bID, err := store.UpsertShow(ctx, model.Shows{TraktID: 2, Slug: "b", Title: "Beta"})
	require.Nil(t, err)

	_, err = store.UpsertListShow(ctx, model.ListShows{ListID: listID, ShowID: bID, WatchedEpisodes: 5, TotalEpisodes: 10})
	require.Nil(t, err)
	_, err = store.UpsertListShow(ctx, model.ListShows{ListID: listID, ShowID: aID, WatchedEpisodes: 1, TotalEpisodes: 10})
	require.Nil(t, err)

	entries, err := store.ListListShows(ctx, listID, storage.SortByTitle, storage.OrderAsc)
	assert.Nil(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Alpha", entries[0].Show.Title)

	entries, err = store.ListListShows(ctx, listID, storage.SortByProgress, storage.OrderDesc)
	assert.Nil(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Beta", entries[0].Show.Title)
}

func TestAdjustListShowProgress(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t)

	listID, err := store.CreateList(ctx, model.Lists{UserID: "user-1", Name: "Watchlist", IsDefault: true})
	require.Nil(t, err)
	showID, err := store.UpsertShow(ctx, model.Shows{TraktID: 1, Slug: "s", Title: "Show"})
	require.Nil(t, err)

	_, err = store.UpsertListShow(ctx, model.ListShows{ListID: listID, ShowID: showID, TotalEpisodes: 2})
	require.Nil(t, err)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	next := "ep-2"
	row, err := store.AdjustListShowProgress(ctx, storage.ProgressUpdate{
		ListID:        listID,
		ShowID:        showID,
		Delta:         1,
		NextEpisodeID: &next,
		Now:           now,
	})
	assert.Nil(t, err)
	assert.Equal(t, int32(1), row.WatchedEpisodes)
	assert.False(t, row.IsCompleted)
	assert.Nil(t, row.CompletedAt)
	require.NotNil(t, row.NextEpisodeID)
	assert.Equal(t, "ep-2", *row.NextEpisodeID)

	row, err = store.AdjustListShowProgress(ctx, storage.ProgressUpdate{
		ListID: listID,
		ShowID: showID,
		Delta:  1,
		Now:    now,
	})
	assert.Nil(t, err)
	assert.Equal(t, int32(2), row.WatchedEpisodes)
	assert.True(t, row.IsCompleted)
	require.NotNil(t, row.CompletedAt)
	assert.Equal(t, now, row.CompletedAt.UTC())
	assert.Nil(t, row.NextEpisodeID)

	// completed_at sticks while the show stays complete
	later := now.Add(48 * time.Hour)
	row, err = store.AdjustListShowProgress(ctx, storage.ProgressUpdate{
		ListID: listID,
		ShowID: showID,
		Delta:  0,
		Now:    later,
	})
	assert.Nil(t, err)
	assert.True(t, row.IsCompleted)
	require.NotNil(t, row.CompletedAt)
	assert.Equal(t, now, row.CompletedAt.UTC())

	// dropping below complete clears the completion fields
	row, err = store.AdjustListShowProgress(ctx, storage.ProgressUpdate{
		ListID:        listID,
		ShowID:        showID,
		Delta:         -1,
		NextEpisodeID: &next,
		Now:           later,
	})
	assert.Nil(t, err)
	assert.Equal(t, int32(1), row.WatchedEpisodes)
	assert.False(t, row.IsCompleted)
	assert.Nil(t, row.CompletedAt)

	// the watched count floors at zero
	row, err = store.AdjustListShowProgress(ctx, storage.ProgressUpdate{
		ListID: listID,
		ShowID: showID,
		Delta:  -5,
		Now:    later,
	})
	assert.Nil(t, err)
	assert.Equal(t, int32(0), row.WatchedEpisodes)

	// a pointer computed before the update never survives a completing
	// delta: the next-episode field nulls out whenever the derived count
	// reaches the total
	row, err = store.AdjustListShowProgress(ctx, storage.ProgressUpdate{
		ListID:        listID,
		ShowID:        showID,
		Delta:         2,
		NextEpisodeID: &next,
		Now:           later,
	})
	assert.Nil(t, err)
	assert.Equal(t, int32(2), row.WatchedEpisodes)
	assert.True(t, row.IsCompleted)
	assert.Nil(t, row.NextEpisodeID)

	_, err = store.AdjustListShowProgress(ctx, storage.ProgressUpdate{
		ListID: listID,
		ShowID: "missing",
		Delta:  1,
		Now:    later,
	})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestUserEpisodeStorage(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t)

	showID, err := store.UpsertShow(ctx, model.Shows{TraktID: 1, Slug: "s", Title: "Show"})
	require.Nil(t, err)
	seasonID, err := store.UpsertSeason(ctx, model.Seasons{ShowID: showID, TraktID: 10, Number: 1, EpisodeCount: 3})
	require.Nil(t, err)
	specialsID, err := store.UpsertSeason(ctx, model.Seasons{ShowID: showID, TraktID: 11, Number: 0})
	require.Nil(t, err)

	epIDs := make([]string, 0, 3)
	for _, ep := range []model.Episodes{
		{SeasonID: seasonID, ShowID: showID, TraktID: 100, SeasonNumber: 1, Number: 1, Title: "E1"},
		{SeasonID: seasonID, ShowID: showID, TraktID: 101, SeasonNumber: 1, Number: 2, Title: "E2"},
		{SeasonID: seasonID, ShowID: showID, TraktID: 102, SeasonNumber: 1, Number: 3, Title: "E3"},
	} {
		id, err := store.UpsertEpisode(ctx, ep)
		require.Nil(t, err)
		epIDs = append(epIDs, id)
	}
	specialID, err := store.UpsertEpisode(ctx, model.Episodes{
		SeasonID: specialsID, ShowID: showID, TraktID: 103, SeasonNumber: 0, Number: 1, Title: "Special",
	})
	require.Nil(t, err)

	watchedAt := time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)

	inserted, err := store.InsertUserEpisodes(ctx, "user-1", []string{epIDs[0], epIDs[1]}, watchedAt)
	assert.Nil(t, err)
	assert.Equal(t, int64(2), inserted)

	// already-watched episodes are skipped, not duplicated
	inserted, err = store.InsertUserEpisodes(ctx, "user-1", []string{epIDs[1], epIDs[2]}, watchedAt)
	assert.Nil(t, err)
	assert.Equal(t, int64(1), inserted)

	// specials are stored but excluded from progress counts
	_, err = store.InsertUserEpisodes(ctx, "user-1", []string{specialID}, watchedAt)
	assert.Nil(t, err)

	count, err := store.CountWatchedEpisodes(ctx, "user-1", showID)
	assert.Nil(t, err)
	assert.Equal(t, int32(3), count)

	watched, err := store.ListWatchedEpisodes(ctx, "user-1", showID)
	assert.Nil(t, err)
	assert.Len(t, watched, 4)

	_, err = store.NextUnwatchedEpisode(ctx, "user-1", showID)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	deleted, err := store.DeleteUserEpisodes(ctx, "user-1", []string{epIDs[1]})
	assert.Nil(t, err)
	assert.Equal(t, int64(1), deleted)

	deleted, err = store.DeleteUserEpisodes(ctx, "user-1", []string{epIDs[1]})
	assert.Nil(t, err)
	assert.Equal(t, int64(0), deleted)

	next, err := store.NextUnwatchedEpisode(ctx, "user-1", showID)
	assert.Nil(t, err)
	assert.Equal(t, "E2", next.Title)

	count, err = store.CountWatchedEpisodes(ctx, "user-1", showID)
	assert.Nil(t, err)
	assert.Equal(t, int32(2), count)

	// a different user's history is independent
	count, err = store.CountWatchedEpisodes(ctx, "user-2", showID)
	assert.Nil(t, err)
	assert.Equal(t, int32(0), count)
}

func TestUpsertUserEpisodes(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t)

	showID, err := store.UpsertShow(ctx, model.Shows{TraktID: 1, Slug: "s", Title: "Show"})
	require.Nil(t, err)
	seasonID, err := store.UpsertSeason(ctx, model.Seasons{ShowID: showID, TraktID: 10, Number: 1, EpisodeCount: 1})
	require.Nil(t, err)
	epID, err := store.UpsertEpisode(ctx, model.Episodes{
		SeasonID: seasonID, ShowID: showID, TraktID: 100, SeasonNumber: 1, Number: 1, Title: "E1",
	})
	require.Nil(t, err)

	first := time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)
	err = store.UpsertUserEpisodes(ctx, "user-1", []string{epID}, first)
	assert.Nil(t, err)

	second := first.Add(24 * time.Hour)
	err = store.UpsertUserEpisodes(ctx, "user-1", []string{epID}, second)
	assert.Nil(t, err)

	watched, err := store.ListWatchedEpisodes(ctx, "user-1", showID)
	assert.Nil(t, err)
	require.Len(t, watched, 1)
	require.NotNil(t, watched[0].WatchedAt)
	assert.Equal(t, second, watched[0].WatchedAt.UTC())
}

func initSqlite(t *testing.T) storage.Storage {
	store, err := New(":memory:")
	assert.Nil(t, err)
	return store
}
