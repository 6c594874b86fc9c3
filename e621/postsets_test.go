package e621

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostSets_GetByShortName(t *testing.T) {
	cl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mustPath(t, r, "/post_sets.json")
		assert.Equal(t, "favs", r.URL.Query().Get("search[shortname]"))
		writeJSON(w, []any{map[string]any{"id": 9, "name": "Favorites", "shortname": "favs", "post_ids": []int64{1}}})
	})

	set, err := cl.PostSets.GetByShortName(context.Background(), "favs")
	require.NoError(t, err)
	assert.Equal(t, int64(9), set.ID)
}

func TestPostSets_Create(t *testing.T) {
	cl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mustPath(t, r, "/post_sets.json")
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "Favorites", r.PostForm.Get("post_set[name]"))
		assert.Equal(t, "favs", r.PostForm.Get("post_set[shortname]"))
		assert.Equal(t, "false", r.PostForm.Get("post_set[is_public]"))
		writeJSON(w, map[string]any{"id": 9, "name": "Favorites", "shortname": "favs"})
	}, WithAuth("user", "key"))

	set, err := cl.PostSets.Create(context.Background(), CreatePostSetOptions{
		Name: "Favorites", Shortname: "favs", Public: Bool(false),
	})
	require.NoError(t, err)
	assert.Equal(t, "favs", set.Shortname)
}

func TestPostSets_AddPosts(t *testing.T) {
	cl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mustPath(t, r, "/post_sets/9/add_posts.json")
		require.NoError(t, r.ParseForm())
		assert.Equal(t, []string{"4", "5"}, r.PostForm["post_ids[]"])
		writeJSON(w, map[string]any{"id": 9, "shortname": "favs", "post_ids": []int64{1, 4, 5}})
	}, WithAuth("user", "key"))

	set, err := cl.PostSets.AddPosts(context.Background(), 9, 4, 5)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 4, 5}, set.PostIDs)
}

func TestPostSets_RemovePosts(t *testing.T) {
	cl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mustPath(t, r, "/post_sets/9/remove_posts.json")
		require.NoError(t, r.ParseForm())
		assert.Equal(t, []string{"1"}, r.PostForm["post_ids[]"])
		writeJSON(w, map[string]any{"id": 9, "shortname": "favs", "post_ids": []int64{4, 5}})
	}, WithAuth("user", "key"))

	set, err := cl.PostSets.RemovePosts(context.Background(), 9, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{4, 5}, set.PostIDs)
}
