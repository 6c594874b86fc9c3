package e621

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTakedowns_Get(t *testing.T) {
	cl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mustPath(t, r, "/takedowns/77.json")
		writeJSON(w, map[string]any{"id": 77, "status": "pending", "post_count": 3, "reason_hidden": true})
	})

	td, err := cl.Takedowns.Get(context.Background(), 77)
	require.NoError(t, err)
	assert.Equal(t, TakedownPending, td.Status)
	assert.True(t, td.ReasonHidden)
}

func TestTakedowns_Create(t *testing.T) {
	cl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mustPath(t, r, "/takedowns.json")
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "https://example.com/mine", r.PostForm.Get("takedown[source]"))
		assert.Equal(t, "me@example.com", r.PostForm.Get("takedown[email]"))
		assert.Equal(t, "my content", r.PostForm.Get("takedown[reason]"))
		// PostIDs win over Instructions.
		assert.Equal(t, "1 2", r.PostForm.Get("takedown[post_ids]"))
		assert.Empty(t, r.PostForm.Get("takedown[instructions]"))
		writeJSON(w, map[string]any{"id": 78, "status": "pending"})
	}, WithAuth("user", "key"))

	td, err := cl.Takedowns.Create(context.Background(), CreateTakedownOptions{
		Source:       "https://example.com/mine",
		Email:        "me@example.com",
		Reason:       "my content",
		PostIDs:      []int64{1, 2},
		Instructions: "ignored",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(78), td.ID)

	_, err = cl.Takedowns.Create(context.Background(), CreateTakedownOptions{Source: "x", Email: "y"})
	assert.Error(t, err)
}

func TestTakedowns_Modify(t *testing.T) {
	cl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mustPath(t, r, "/takedowns/78.json")
		if r.Method != http.MethodPut {
			t.Fatalf("method = %s, want PUT", r.Method)
		}
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "true", r.PostForm.Get("process_takedown"))
		assert.Equal(t, "true", r.PostForm.Get("takedown_posts[1]"))
		assert.Equal(t, "false", r.PostForm.Get("takedown_posts[2]"))
		assert.Equal(t, "handled", r.PostForm.Get("takedown[notes]"))
		writeJSON(w, map[string]any{"id": 78, "status": "partial"})
	}, WithAuth("user", "key"))

	td, err := cl.Takedowns.Modify(context.Background(), 78, ModifyTakedownOptions{
		ProcessTakedown: Bool(true),
		TakedownPosts:   map[int64]bool{1: true, 2: false},
		Notes:           "handled",
	})
	require.NoError(t, err)
	assert.Equal(t, TakedownPartial, td.Status)
}
