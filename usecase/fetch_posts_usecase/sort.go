package fetch_posts_usecase

import (
	"sort"

	"quill/domain"
)

// Count orderings are stable: ties keep discovery order (local keys
// first, then remote keys as encountered).

func sortTagCounts(tags []domain.TagCount) {
	sort.SliceStable(tags, func(i, j int) bool {
		return tags[i].Count > tags[j].Count
	})
}

func sortCategoryCounts(categories []domain.CategoryCount) {
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Count > categories[j].Count
	})
}
