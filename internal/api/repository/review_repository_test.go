package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reviewhub/internal/api/models"
	"reviewhub/internal/api/repository"
	"reviewhub/internal/testutil"
)

func TestReviewRepository_DuplicateAuthorOnTitle(t *testing.T) {
	db := testutil.SetupTestDatabase(t)
	reviews := repository.NewReviewRepository(db)

	alice := testutil.CreateUser(t, db, "alice", models.RoleUser)
	title := testutil.CreateTitle(t, db, "Dune", 1965, nil)

	require.NoError(t, reviews.Create(&models.Review{
		TitleID: title.ID, AuthorID: alice.ID, Text: "great", Score: 8,
	}))

	err := reviews.Create(&models.Review{
		TitleID: title.ID, AuthorID: alice.ID, Text: "second thoughts", Score: 3,
	})
	require.Error(t, err)
	assert.True(t, repository.IsUniqueViolation(err))

	// same author on another title is fine
	other := testutil.CreateTitle(t, db, "Solaris", 1961, nil)
	assert.NoError(t, reviews.Create(&models.Review{
		TitleID: other.ID, AuthorID: alice.ID, Text: "also great", Score: 9,
	}))
}

func TestReviewRepository_GetByID_ScopedToTitle(t *testing.T) {
	db := testutil.SetupTestDatabase(t)
	reviews := repository.NewReviewRepository(db)

	alice := testutil.CreateUser(t, db, "alice", models.RoleUser)
	dune := testutil.CreateTitle(t, db, "Dune", 1965, nil)
	solaris := testutil.CreateTitle(t, db, "Solaris", 1961, nil)
	review := testutil.CreateReview(t, db, dune, alice, 8)

	got, err := reviews.GetByID(dune.ID, review.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Author.Username)

	// reached through the wrong title, the review reads as missing
	_, err = reviews.GetByID(solaris.ID, review.ID)
	assert.True(t, repository.IsNotFound(err))
}

func TestReviewRepository_ExistsByTitleAndAuthor(t *testing.T) {
	db := testutil.SetupTestDatabase(t)
	reviews := repository.NewReviewRepository(db)

	alice := testutil.CreateUser(t, db, "alice", models.RoleUser)
	bob := testutil.CreateUser(t, db, "bob", models.RoleUser)
	title := testutil.CreateTitle(t, db, "Dune", 1965, nil)
	testutil.CreateReview(t, db, title, alice, 8)

	exists, err := reviews.ExistsByTitleAndAuthor(title.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = reviews.ExistsByTitleAndAuthor(title.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCommentRepository_ScopedToReview(t *testing.T) {
	db := testutil.SetupTestDatabase(t)
	comments := repository.NewCommentRepository(db)

	alice := testutil.CreateUser(t, db, "alice", models.RoleUser)
	bob := testutil.CreateUser(t, db, "bob", models.RoleUser)
	title := testutil.CreateTitle(t, db, "Dune", 1965, nil)
	reviewA := testutil.CreateReview(t, db, title, alice, 8)
	reviewB := testutil.CreateReview(t, db, title, bob, 5)
	comment := testutil.CreateComment(t, db, reviewA, bob)

	got, err := comments.GetByID(reviewA.ID, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob", got.Author.Username)

	_, err = comments.GetByID(reviewB.ID, comment.ID)
	assert.True(t, repository.IsNotFound(err))

	list, total, err := comments.ListByReview(reviewA.ID, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, list, 1)
}
