package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reviewhub/internal/api/models"
	"reviewhub/internal/api/repository"
	"reviewhub/internal/testutil"
)

func TestTitleRepo_RatingAggregation(t *testing.T) {
	db := testutil.SetupTestDatabase(t)
	repo := repository.NewTitleRepo(db)
	ctx := context.Background()

	title := testutil.CreateTitle(t, db, "Dune", 1965, nil)

	t.Run("no reviews yields null rating", func(t *testing.T) {
		got, err := repo.GetByID(ctx, title.ID)
		require.NoError(t, err)
		assert.Nil(t, got.Rating)
	})

	alice := testutil.CreateUser(t, db, "alice", models.RoleUser)
	bob := testutil.CreateUser(t, db, "bob", models.RoleUser)
	testutil.CreateReview(t, db, title, alice, 4)
	review := testutil.CreateReview(t, db, title, bob, 7)

	t.Run("rating is the mean review score", func(t *testing.T) {
		got, err := repo.GetByID(ctx, title.ID)
		require.NoError(t, err)
		require.NotNil(t, got.Rating)
		assert.InDelta(t, 5.5, *got.Rating, 0.001)
	})

	t.Run("rating recomputed after review deletion", func(t *testing.T) {
		require.NoError(t, db.Delete(review).Error)
		got, err := repo.GetByID(ctx, title.ID)
		require.NoError(t, err)
		require.NotNil(t, got.Rating)
		assert.InDelta(t, 4.0, *got.Rating, 0.001)
	})
}

func TestTitleRepo_List_Filters(t *testing.T) {
	db := testutil.SetupTestDatabase(t)
	repo := repository.NewTitleRepo(db)
	ctx := context.Background()

	books := testutil.CreateCategory(t, db, "Books", "books")
	movies := testutil.CreateCategory(t, db, "Movies", "movies")
	scifi := testutil.CreateGenre(t, db, "Science Fiction", "sci-fi")
	drama := testutil.CreateGenre(t, db, "Drama", "drama")

	testutil.CreateTitle(t, db, "Dune", 1965, books, scifi)
	testutil.CreateTitle(t, db, "Solaris", 1961, books, scifi, drama)
	testutil.CreateTitle(t, db, "Arrival", 2016, movies, scifi)

	cases := []struct {
		name    string
		filters repository.TitleFilters
		want    []string
	}{
		{"no filters", repository.TitleFilters{}, []string{"Arrival", "Dune", "Solaris"}},
		{"by category", repository.TitleFilters{CategorySlug: "books"}, []string{"Dune", "Solaris"}},
		{"by genre", repository.TitleFilters{GenreSlug: "drama"}, []string{"Solaris"}},
		{"by name fragment", repository.TitleFilters{Name: "un"}, []string{"Dune"}},
		{"by year", repository.TitleFilters{Year: intPtr(2016)}, []string{"Arrival"}},
		{"category and genre combined", repository.TitleFilters{CategorySlug: "books", GenreSlug: "sci-fi"}, []string{"Dune", "Solaris"}},
		{"no match", repository.TitleFilters{CategorySlug: "movies", Year: intPtr(1965)}, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			list, total, err := repo.List(ctx, tc.filters, 1, 20)
			require.NoError(t, err)
			assert.Equal(t, int64(len(tc.want)), total)
			var names []string
			for _, title := range list {
				names = append(names, title.Name)
			}
			assert.Equal(t, tc.want, names)
		})
	}
}

func TestTitleRepo_Update_ReplacesGenres(t *testing.T) {
	db := testutil.SetupTestDatabase(t)
	repo := repository.NewTitleRepo(db)
	ctx := context.Background()

	scifi := testutil.CreateGenre(t, db, "Science Fiction", "sci-fi")
	drama := testutil.CreateGenre(t, db, "Drama", "drama")
	title := testutil.CreateTitle(t, db, "Solaris", 1961, nil, scifi)

	title.Description = "updated"
	title.Genres = []models.Genre{*drama}
	require.NoError(t, repo.Update(ctx, title))

	got, err := repo.GetByID(ctx, title.ID)
	require.NoError(t, err)
	assert.Equal(t, "updated", got.Description)
	require.Len(t, got.Genres, 1)
	assert.Equal(t, "drama", got.Genres[0].Slug)
}

func TestTitleRepo_Delete(t *testing.T) {
	db := testutil.SetupTestDatabase(t)
	repo := repository.NewTitleRepo(db)
	ctx := context.Background()

	scifi := testutil.CreateGenre(t, db, "Science Fiction", "sci-fi")
	title := testutil.CreateTitle(t, db, "Dune", 1965, nil, scifi)

	require.NoError(t, repo.Delete(ctx, title.ID))

	exists, err := repo.Exists(ctx, title.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	var joins int64
	require.NoError(t, db.Model(&models.TitleGenre{}).Where("title_id = ?", title.ID).Count(&joins).Error)
	assert.Zero(t, joins)

	assert.True(t, repository.IsNotFound(repo.Delete(ctx, title.ID)))
}

func intPtr(v int) *int { return &v }
