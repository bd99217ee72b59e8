package entity

// RecipeSort is the closed set of recipe search sort keys. Sort keys are
// mapped to ORDER BY clauses through a fixed table in the persistence layer,
// never by string concatenation of caller input.
type RecipeSort string

const (
	RecipeSortDefault     RecipeSort = "default" // id desc
	RecipeSortRatingDesc  RecipeSort = "rating_desc"
	RecipeSortDateDesc    RecipeSort = "date_desc"
	RecipeSortCaloriesAsc RecipeSort = "calories_asc"
)

// ParseRecipeSort maps a raw sort string to a RecipeSort. Unknown or empty
// keys fall back to the default ordering.
func ParseRecipeSort(raw string) RecipeSort {
	switch RecipeSort(raw) {
	case RecipeSortRatingDesc, RecipeSortDateDesc, RecipeSortCaloriesAsc:
		return RecipeSort(raw)
	default:
		return RecipeSortDefault
	}
}

// ReviewSort is the closed set of review listing sort keys.
type ReviewSort string

const (
	ReviewSortDateDesc  ReviewSort = "date_desc" // default
	ReviewSortLikesDesc ReviewSort = "likes_desc"
)

// ParseReviewSort maps a raw sort string to a ReviewSort, falling back to
// date_desc for unknown or empty keys.
func ParseReviewSort(raw string) ReviewSort {
	if ReviewSort(raw) == ReviewSortLikesDesc {
		return ReviewSortLikesDesc
	}

	return ReviewSortDateDesc
}
