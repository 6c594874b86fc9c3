package e621

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserFeedback_Search(t *testing.T) {
	cl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mustPath(t, r, "/user_feedbacks.json")
		q := r.URL.Query()
		assert.Equal(t, "someone", q.Get("search[user_name]"))
		assert.Equal(t, "negative", q.Get("search[category]"))
		writeJSON(w, []any{map[string]any{"id": 6, "user_id": 212, "creator_id": 1, "category": "negative", "body": "rude"}})
	})

	entries, err := cl.UserFeedback.Search(context.Background(), SearchUserFeedbackOptions{
		Username: "someone", Category: FeedbackNegative,
	})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, FeedbackNegative, entries[0].Category)
}

func TestUserFeedback_Create(t *testing.T) {
	cl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mustPath(t, r, "/user_feedbacks.json")
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "someone", r.PostForm.Get("user_feedback[user_name]"))
		assert.Equal(t, "positive", r.PostForm.Get("user_feedback[category]"))
		assert.Equal(t, "great tagger", r.PostForm.Get("user_feedback[body]"))
		writeJSON(w, map[string]any{"id": 7, "user_id": 212, "category": "positive", "body": "great tagger"})
	}, WithAuth("mod", "key"))

	fb, err := cl.UserFeedback.Create(context.Background(), CreateUserFeedbackOptions{
		Username: "someone", Category: FeedbackPositive, Body: "great tagger",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), fb.ID)

	_, err = cl.UserFeedback.Create(context.Background(), CreateUserFeedbackOptions{Username: "someone"})
	assert.Error(t, err)
}

func TestUserFeedback_Modify(t *testing.T) {
	cl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mustPath(t, r, "/user_feedbacks/7.json")
		if r.Method != http.MethodPatch {
			t.Fatalf("method = %s, want PATCH", r.Method)
		}
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "neutral", r.PostForm.Get("user_feedback[category]"))
		writeJSON(w, map[string]any{"id": 7, "category": "neutral"})
	}, WithAuth("mod", "key"))

	fb, err := cl.UserFeedback.Modify(context.Background(), 7, ModifyUserFeedbackOptions{Category: FeedbackNeutral})
	require.NoError(t, err)
	assert.Equal(t, FeedbackNeutral, fb.Category)
}
