package e621

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWikiPages_GetByTitle(t *testing.T) {
	cl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mustPath(t, r, "/wiki_pages.json")
		q := r.URL.Query()
		assert.Equal(t, "canine", q.Get("search[title]"))
		assert.Equal(t, "1", q.Get("limit"))
		writeJSON(w, []any{map[string]any{"id": 3, "title": "canine", "body": "four-legged"}})
	})

	page, err := cl.WikiPages.GetByTitle(context.Background(), "canine")
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.ID)
	assert.Equal(t, "four-legged", page.Body)
}

func TestWikiPages_Create(t *testing.T) {
	cl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mustPath(t, r, "/wiki_pages.json")
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "new_page", r.PostForm.Get("wiki_page[title]"))
		assert.Equal(t, "content", r.PostForm.Get("wiki_page[body]"))
		assert.Equal(t, "true", r.PostForm.Get("wiki_page[skip_secondary_validations]"))
		writeJSON(w, map[string]any{"id": 4, "title": "new_page", "body": "content"})
	}, WithAuth("user", "key"))

	page, err := cl.WikiPages.Create(context.Background(), CreateWikiPageOptions{
		Title: "new_page", Body: "content", ForceOverwrite: Bool(true),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), page.ID)

	_, err = cl.WikiPages.Create(context.Background(), CreateWikiPageOptions{Title: "no_body"})
	assert.Error(t, err)
}

func TestWikiPages_Modify(t *testing.T) {
	cl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mustPath(t, r, "/wiki_pages/4.json")
		if r.Method != http.MethodPatch {
			t.Fatalf("method = %s, want PATCH", r.Method)
		}
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "updated", r.PostForm.Get("wiki_page[body]"))
		writeJSON(w, map[string]any{"id": 4, "title": "new_page", "body": "updated"})
	}, WithAuth("user", "key"))

	page, err := cl.WikiPages.Modify(context.Background(), 4, ModifyWikiPageOptions{Body: String("updated")})
	require.NoError(t, err)
	assert.Equal(t, "updated", page.Body)
}

func TestWikiPages_SearchHistory(t *testing.T) {
	cl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mustPath(t, r, "/wiki_page_versions.json")
		assert.Equal(t, "4", r.URL.Query().Get("search[wiki_page_id]"))
		writeJSON(w, []any{map[string]any{"id": 50, "wiki_page_id": 4, "title": "new_page"}})
	})

	history, err := cl.WikiPages.SearchHistory(context.Background(), SearchWikiPageHistoryOptions{WikiPage: 4})
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, int64(4), history[0].WikiPageID)
}
