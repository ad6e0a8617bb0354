package domain

import (
	"sort"

	"github.com/samber/lo"
)

// View selects which articles a listing shows
type View string

// supported views
const (
	ViewAll       View = "all"
	ViewUnread    View = "unread"
	ViewFavorites View = "favorites"
)

// ViewSelector is the presentation layer's view state. FeedID of zero means
// all feeds.
type ViewSelector struct {
	View   View
	FeedID int64
}

// Valid reports whether the selector names a known view
func (s ViewSelector) Valid() bool {
	switch s.View {
	case ViewAll, ViewUnread, ViewFavorites, "":
		return true
	}
	return false
}

// ApplyView filters and sorts articles for the given selector. It is a pure
// function: the input slice is not modified. Articles are ordered by publish
// time descending, undated articles last; order of equal timestamps is
// preserved.
func ApplyView(articles []Article, sel ViewSelector) []Article {
	filtered := lo.Filter(articles, func(a Article, _ int) bool {
		if sel.FeedID != 0 && a.FeedID != sel.FeedID {
			return false
		}
		switch sel.View {
		case ViewUnread:
			return !a.IsRead
		case ViewFavorites:
			return a.IsFavorite
		}
		return true
	})

	SortArticles(filtered)
	return filtered
}

// SortArticles orders articles by publish time descending in place, undated
// articles sort as if published at the epoch minimum. The sort is stable.
func SortArticles(articles []Article) {
	sort.SliceStable(articles, func(i, j int) bool {
		pi, pj := articles[i].Published, articles[j].Published
		switch {
		case pi == nil:
			return false
		case pj == nil:
			return true
		default:
			return pi.After(*pj)
		}
	})
}
