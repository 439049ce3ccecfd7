package domain

import (
	"sort"
	"strings"
)

// RelatedPosts ranks posts against the one named by slug. Score is two
// points per shared tag plus three for a matching category; the post
// itself is excluded. Posts with no overlap still fill out the result
// when fewer than limit posts score. The sort is stable so equal
// scores keep input order.
func RelatedPosts(posts []*Post, slug string, limit int) []*Post {
	var target *Post
	for _, post := range posts {
		if post.Slug == slug {
			target = post
			break
		}
	}
	if target == nil || limit <= 0 {
		return []*Post{}
	}

	targetTags := make(map[string]bool, len(target.Tags))
	for _, tag := range target.Tags {
		targetTags[strings.ToLower(tag)] = true
	}

	type scoredPost struct {
		post  *Post
		score int
	}

	scored := make([]scoredPost, 0, len(posts))
	for _, post := range posts {
		if post.Slug == slug {
			continue
		}

		score := 0
		for _, tag := range post.Tags {
			if targetTags[strings.ToLower(tag)] {
				score += 2
			}
		}
		if target.Category != "" && post.InCategory(target.Category) {
			score += 3
		}

		scored = append(scored, scoredPost{post: post, score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}

	related := make([]*Post, 0, len(scored))
	for _, entry := range scored {
		related = append(related, entry.post)
	}
	return related
}
