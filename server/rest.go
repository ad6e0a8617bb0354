package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/pazow/feedbox/pkg/domain"
)

// listFeedsHandler returns all subscribed feeds, newest first
func (s *Server) listFeedsHandler(w http.ResponseWriter, r *http.Request) {
	feeds, err := s.db.ListFeeds(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to list feeds: %v", err)
		renderError(w, r, err, errorStatus(err))
		return
	}
	renderJSON(w, r, http.StatusOK, feeds)
}

// addFeedHandler registers a feed and runs its first fetch before responding
func (s *Server) addFeedHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL      string `json:"url"`
		Category string `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	feed, err := s.ingester.AddFeed(r.Context(), req.URL, req.Category)
	if err != nil {
		log.Printf("[ERROR] failed to add feed %q: %v", req.URL, err)
		renderError(w, r, err, errorStatus(err))
		return
	}
	renderJSON(w, r, http.StatusCreated, feed)
}

// updateFeedHandler changes feed title and/or category
func (s *Server) updateFeedHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	var req struct {
		Title    *string `json:"title"`
		Category *string `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	upd := domain.FeedUpdate{Title: req.Title, Category: req.Category}
	if err := s.db.UpdateFeed(r.Context(), id, upd); err != nil {
		log.Printf("[ERROR] failed to update feed %d: %v", id, err)
		renderError(w, r, err, errorStatus(err))
		return
	}

	feed, err := s.db.GetFeed(r.Context(), id)
	if err != nil {
		renderError(w, r, err, errorStatus(err))
		return
	}
	renderJSON(w, r, http.StatusOK, feed)
}

// deleteFeedHandler removes a feed and all its articles
func (s *Server) deleteFeedHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	if err := s.ingester.DeleteFeed(r.Context(), id); err != nil {
		log.Printf("[ERROR] failed to delete feed %d: %v", id, err)
		renderError(w, r, err, errorStatus(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// refreshFeedHandler fetches one feed on demand
func (s *Server) refreshFeedHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	if err := s.ingester.RefreshFeed(r.Context(), id); err != nil {
		log.Printf("[ERROR] failed to refresh feed %d: %v", id, err)
		renderError(w, r, err, errorStatus(err))
		return
	}

	feed, err := s.db.GetFeed(r.Context(), id)
	if err != nil {
		renderError(w, r, err, errorStatus(err))
		return
	}
	renderJSON(w, r, http.StatusOK, feed)
}

// refreshAllHandler fetches every feed, one after another
func (s *Server) refreshAllHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.ingester.IngestAll(r.Context()); err != nil {
		log.Printf("[WARN] refresh finished with errors: %v", err)
		renderError(w, r, err, errorStatus(err))
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// listArticlesHandler returns articles filtered by the requested view
// and optionally narrowed to a single feed
func (s *Server) listArticlesHandler(w http.ResponseWriter, r *http.Request) {
	sel := domain.ViewSelector{View: domain.ViewAll}
	if view := r.URL.Query().Get("view"); view != "" {
		sel.View = domain.View(view)
	}
	if feedIDStr := r.URL.Query().Get("feedId"); feedIDStr != "" {
		feedID, err := strconv.ParseInt(feedIDStr, 10, 64)
		if err != nil {
			renderError(w, r, fmt.Errorf("invalid feed ID"), http.StatusBadRequest)
			return
		}
		sel.FeedID = feedID
	}
	if !sel.Valid() {
		renderError(w, r, fmt.Errorf("unknown view %q", sel.View), http.StatusBadRequest)
		return
	}

	articles, err := s.db.ListArticles(r.Context(), sel)
	if err != nil {
		log.Printf("[ERROR] failed to list articles: %v", err)
		renderError(w, r, err, errorStatus(err))
		return
	}
	renderJSON(w, r, http.StatusOK, articles)
}

// updateArticleHandler toggles read/favorite flags on an article
func (s *Server) updateArticleHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	var req struct {
		IsRead     *bool `json:"isRead"`
		IsFavorite *bool `json:"isFavorite"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	upd := domain.ArticleUpdate{IsRead: req.IsRead, IsFavorite: req.IsFavorite}
	if err := s.db.UpdateArticle(r.Context(), id, upd); err != nil {
		log.Printf("[ERROR] failed to update article %d: %v", id, err)
		renderError(w, r, err, errorStatus(err))
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// markReadHandler marks all articles read, or one feed's articles when
// the request names a feed
func (s *Server) markReadHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FeedID *int64 `json:"feedId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	var err error
	if req.FeedID != nil {
		err = s.db.MarkFeedRead(r.Context(), *req.FeedID)
	} else {
		err = s.db.MarkAllRead(r.Context())
	}
	if err != nil {
		log.Printf("[ERROR] failed to mark articles read: %v", err)
		renderError(w, r, err, errorStatus(err))
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// unreadCountsHandler returns per-feed unread article counts,
// feeds with nothing unread are omitted
func (s *Server) unreadCountsHandler(w http.ResponseWriter, r *http.Request) {
	counts, err := s.db.UnreadCounts(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to get unread counts: %v", err)
		renderError(w, r, err, errorStatus(err))
		return
	}
	renderJSON(w, r, http.StatusOK, counts)
}

// listCategoriesHandler returns the category list used for grouping feeds
func (s *Server) listCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := s.db.ListCategories(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to list categories: %v", err)
		renderError(w, r, err, errorStatus(err))
		return
	}
	renderJSON(w, r, http.StatusOK, categories)
}

// createCategoryHandler adds a category, an existing name returns the
// already stored record
func (s *Server) createCategoryHandler(w http.ResponseWriter, r *http.Request) {
	var category domain.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	if err := s.db.CreateCategory(r.Context(), &category); err != nil {
		log.Printf("[ERROR] failed to create category %q: %v", category.Name, err)
		renderError(w, r, err, errorStatus(err))
		return
	}
	renderJSON(w, r, http.StatusCreated, category)
}

// fetchFeedHandler fetches and parses a URL without registering it,
// used to preview a feed before subscribing
func (s *Server) fetchFeedHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	parsed, err := s.ingester.Preview(r.Context(), req.URL)
	if err != nil {
		log.Printf("[ERROR] failed to fetch feed %q: %v", req.URL, err)
		renderError(w, r, err, errorStatus(err))
		return
	}
	renderJSON(w, r, http.StatusOK, parsed)
}

// pathID extracts the numeric {id} path segment
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid ID")
	}
	return id, nil
}
