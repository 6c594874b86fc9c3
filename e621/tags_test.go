package e621

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTags_GetByName(t *testing.T) {
	cl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mustPath(t, r, "/tags.json")
		assert.Equal(t, "canine", r.URL.Query().Get("search[name_matches]"))
		writeJSON(w, []any{map[string]any{"id": 5, "name": "canine", "category": TagCategorySpecies, "post_count": 100}})
	})

	tag, err := cl.Tags.GetByName(context.Background(), "canine")
	require.NoError(t, err)
	assert.Equal(t, int64(5), tag.ID)
	assert.Equal(t, TagCategorySpecies, tag.Category)
}

func TestTags_Search_CategoryZero(t *testing.T) {
	cl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		// The general category is 0 and must still reach the wire.
		assert.Equal(t, "0", r.URL.Query().Get("search[category]"))
		writeJSON(w, []any{})
	})

	_, err := cl.Tags.Search(context.Background(), SearchTagsOptions{Category: Int(TagCategoryGeneral)})
	require.NoError(t, err)
}

func TestTags_Search_EmptyObject(t *testing.T) {
	cl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"tags": []any{}})
	})

	tags, err := cl.Tags.Search(context.Background(), SearchTagsOptions{Name: "no_such_tag"})
	require.NoError(t, err)
	assert.Empty(t, tags)
}

func TestTags_Modify(t *testing.T) {
	cl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mustPath(t, r, "/tags/5.json")
		if r.Method != http.MethodPut {
			t.Fatalf("method = %s, want PUT", r.Method)
		}
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "1", r.PostForm.Get("tag[category]"))
		assert.Equal(t, "true", r.PostForm.Get("tag[is_locked]"))
		writeJSON(w, map[string]any{"id": 5, "name": "someone", "category": 1, "is_locked": true})
	}, WithAuth("user", "key"))

	tag, err := cl.Tags.Modify(context.Background(), 5, ModifyTagOptions{
		Category: Int(TagCategoryArtist),
		Locked:   Bool(true),
	})
	require.NoError(t, err)
	assert.True(t, tag.IsLocked)
}

func TestTags_SearchHistory(t *testing.T) {
	cl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mustPath(t, r, "/tag_type_versions.json")
		assert.Equal(t, "canine", r.URL.Query().Get("search[tag]"))
		writeJSON(w, []any{map[string]any{"id": 9, "tag_id": 5, "old_type": 0, "new_type": 5}})
	})

	history, err := cl.Tags.SearchHistory(context.Background(), SearchTagHistoryOptions{Tag: "canine"})
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, 5, history[0].NewType)
}
