package e621

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotes_Search(t *testing.T) {
	cl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mustPath(t, r, "/notes.json")
		q := r.URL.Query()
		assert.Equal(t, "translation", q.Get("search[body_matches]"))
		assert.Equal(t, "canine comic", q.Get("search[post_tags_match]"))
		writeJSON(w, []any{map[string]any{"id": 1, "post_id": 12, "body": "translation note", "x": 10, "y": 20}})
	})

	notes, err := cl.Notes.Search(context.Background(), SearchNotesOptions{
		Body: "translation", Tags: []string{"canine", "comic"},
	})
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, 10, notes[0].X)
}

func TestNotes_Modify(t *testing.T) {
	cl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mustPath(t, r, "/notes/1.json")
		if r.Method != http.MethodPut {
			t.Fatalf("method = %s, want PUT", r.Method)
		}
		require.NoError(t, r.ParseForm())
		// Only the provided fields go out.
		assert.Equal(t, "fixed wording", r.PostForm.Get("note[body]"))
		_, hasX := r.PostForm["note[x]"]
		assert.False(t, hasX)
		writeJSON(w, map[string]any{"id": 1, "post_id": 12, "body": "fixed wording"})
	}, WithAuth("user", "key"))

	note, err := cl.Notes.Modify(context.Background(), 1, ModifyNoteOptions{Body: String("fixed wording")})
	require.NoError(t, err)
	assert.Equal(t, "fixed wording", note.Body)
}
