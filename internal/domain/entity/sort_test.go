package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRecipeSort(t *testing.T) {
	assert.Equal(t, RecipeSortRatingDesc, ParseRecipeSort("rating_desc"))
	assert.Equal(t, RecipeSortDateDesc, ParseRecipeSort("date_desc"))
	assert.Equal(t, RecipeSortCaloriesAsc, ParseRecipeSort("calories_asc"))

	// Unknown and empty keys fall back to the default ordering.
	assert.Equal(t, RecipeSortDefault, ParseRecipeSort(""))
	assert.Equal(t, RecipeSortDefault, ParseRecipeSort("popularity"))
	assert.Equal(t, RecipeSortDefault, ParseRecipeSort("RATING_DESC"))
}

func TestParseReviewSort(t *testing.T) {
	assert.Equal(t, ReviewSortLikesDesc, ParseReviewSort("likes_desc"))
	assert.Equal(t, ReviewSortDateDesc, ParseReviewSort("date_desc"))
	assert.Equal(t, ReviewSortDateDesc, ParseReviewSort(""))
	assert.Equal(t, ReviewSortDateDesc, ParseReviewSort("oldest"))
}

func TestNewPage_NormalizesNilItems(t *testing.T) {
	page := NewPage[*Recipe](nil, 1, 20, 0)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
}

func TestValidPageRequest(t *testing.T) {
	assert.True(t, ValidPageRequest(1, 1))
	assert.True(t, ValidPageRequest(3, 50))
	assert.False(t, ValidPageRequest(0, 20))
	assert.False(t, ValidPageRequest(1, 0))
	assert.False(t, ValidPageRequest(-1, -1))
}
