package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movie-review/cmd/api/clients/tmdbclient"
)

func newMovieServiceForTest(t *testing.T, tmdb *fakeTMDB) *MovieService {
	t.Helper()
	srv := httptest.NewServer(tmdb.handler(t))
	t.Cleanup(srv.Close)
	return NewMovieService(newTMDBClient(t, srv))
}

func TestMovieSearch(t *testing.T) {
	svc := newMovieServiceForTest(t, &fakeTMDB{})

	out, apiErr := svc.Search(context.Background(), "inception", 0)
	require.Nil(t, apiErr)

	assert.Equal(t, "inception", out.Query)
	assert.Equal(t, 1, out.Page, "page is clamped to 1")
	assert.Equal(t, 3, out.TotalPages)
	assert.True(t, out.HasNext)
	assert.False(t, out.HasPrev)
	require.Len(t, out.Results, 1)
	assert.Equal(t, "Inception", out.Results[0].Title)
	assert.Equal(t, []int{28, 878}, out.Results[0].GenreIDs)
	require.NotNil(t, out.Results[0].PosterPath)
	assert.Nil(t, out.Results[0].BackdropPath)

	out, apiErr = svc.Search(context.Background(), "inception", 3)
	require.Nil(t, apiErr)
	assert.False(t, out.HasNext)
	assert.True(t, out.HasPrev)
}

func TestMovieSearchMissingQuery(t *testing.T) {
	svc := newMovieServiceForTest(t, &fakeTMDB{})

	_, apiErr := svc.Search(context.Background(), "  ", 1)
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
}

func TestMovieServiceWithoutKey(t *testing.T) {
	svc := NewMovieService(nil)

	_, apiErr := svc.Search(context.Background(), "inception", 1)
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "Missing TMDB_API_KEY", apiErr.Message)

	_, apiErr = svc.Genres(context.Background(), "")
	require.NotNil(t, apiErr)
	assert.Equal(t, "Missing TMDB_API_KEY", apiErr.Message)
}

func TestMovieDiscoverMapsFilters(t *testing.T) {
	tmdb := &fakeTMDB{people: []tmdbclient.Person{{ID: 6193, Name: "Leonardo DiCaprio"}}}
	svc := newMovieServiceForTest(t, tmdb)

	out, apiErr := svc.Discover(context.Background(), DiscoverInput{
		Page:       2,
		Genre:      "28",
		Year:       "2010",
		Rating:     "7.5",
		Popularity: "1000",
		Language:   "en",
		Actor:      "DiCaprio",
		Sort:       "rating",
	})
	require.Nil(t, apiErr)
	require.Len(t, out.Results, 1)
	assert.Empty(t, out.Query)

	got := tmdb.lastDiscover
	assert.Equal(t, "2", got["page"])
	assert.Equal(t, "28", got["with_genres"])
	assert.Equal(t, "2010", got["primary_release_year"])
	assert.Equal(t, "7.5", got["vote_average.gte"])
	assert.Equal(t, "1000", got["vote_count.gte"])
	assert.Equal(t, "en", got["with_original_language"])
	assert.Equal(t, "6193", got["with_cast"])
	assert.Equal(t, "vote_average.desc", got["sort_by"])
}

func TestMovieDiscoverUnknownActor(t *testing.T) {
	tmdb := &fakeTMDB{}
	svc := newMovieServiceForTest(t, tmdb)

	out, apiErr := svc.Discover(context.Background(), DiscoverInput{Actor: "Nobody Atall"})
	require.Nil(t, apiErr)
	assert.Empty(t, out.Results)
	assert.Nil(t, tmdb.lastDiscover, "discover must not be called")
}

func TestMovieDiscoverIgnoresUnknownSort(t *testing.T) {
	tmdb := &fakeTMDB{}
	svc := newMovieServiceForTest(t, tmdb)

	_, apiErr := svc.Discover(context.Background(), DiscoverInput{Sort: "drop table"})
	require.Nil(t, apiErr)
	_, present := tmdb.lastDiscover["sort_by"]
	assert.False(t, present)
}

func TestGenresAndActors(t *testing.T) {
	profile := "/leo.jpg"
	tmdb := &fakeTMDB{people: []tmdbclient.Person{{ID: 6193, Name: "Leonardo DiCaprio", KnownForDepartment: "Acting", ProfilePath: &profile}}}
	svc := newMovieServiceForTest(t, tmdb)

	genres, apiErr := svc.Genres(context.Background(), "en-US")
	require.Nil(t, apiErr)
	assert.Len(t, genres.Genres, 2)
	assert.Equal(t, "Action", genres.Genres[0].Name)

	actors, apiErr := svc.Actors(context.Background(), "leo", 1)
	require.Nil(t, apiErr)
	require.Len(t, actors.Results, 1)
	assert.Equal(t, "Acting", actors.Results[0].KnownForDepartment)
	assert.Equal(t, &profile, actors.Results[0].ProfilePath)

	_, apiErr = svc.Actors(context.Background(), "", 1)
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
}

func TestNormalizeSort(t *testing.T) {
	assert.Equal(t, "popularity.desc", NormalizeSort("Popularity"))
	assert.Equal(t, "primary_release_date.desc", NormalizeSort("newest"))
	assert.Equal(t, "", NormalizeSort("unknown"))
}
