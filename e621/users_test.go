package e621

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsers_Get(t *testing.T) {
	cl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mustPath(t, r, "/users/212.json")
		writeJSON(w, map[string]any{"id": 212, "name": "someone", "level": 20, "level_string": "Member"})
	})

	user, err := cl.Users.Get(context.Background(), 212)
	require.NoError(t, err)
	assert.Equal(t, "someone", user.Name)
	assert.Equal(t, 20, user.Level)
}

func TestUsers_GetByName(t *testing.T) {
	cl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mustPath(t, r, "/users.json")
		q := r.URL.Query()
		assert.Equal(t, "someone", q.Get("search[name_matches]"))
		assert.Equal(t, "1", q.Get("limit"))
		writeJSON(w, []any{map[string]any{"id": 212, "name": "someone"}})
	})

	user, err := cl.Users.GetByName(context.Background(), "someone")
	require.NoError(t, err)
	assert.Equal(t, int64(212), user.ID)
}

func TestUsers_Self(t *testing.T) {
	cl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/users/upload_limit.json":
			writeJSON(w, map[string]any{"id": 212, "name": "someone"})
		case "/users/212.json":
			writeJSON(w, map[string]any{"id": 212, "name": "someone", "email": "someone@example.com", "per_page": 75})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}, WithAuth("someone", "key"))

	self, err := cl.Users.Self(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(212), self.ID)
	assert.Equal(t, "someone@example.com", self.Email)
	assert.Equal(t, 75, self.PerPage)
}

func TestUsers_EditSelf(t *testing.T) {
	cl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mustPath(t, r, "/users/0.json")
		if r.Method != http.MethodPatch {
			t.Fatalf("method = %s, want PATCH", r.Method)
		}
		require.NoError(t, r.ParseForm())
		// A cleared avatar is sent as an empty value, not omitted.
		vals, ok := r.PostForm["user[avatar_id]"]
		require.True(t, ok)
		assert.Equal(t, []string{""}, vals)
		assert.Equal(t, "gore\nscat", r.PostForm.Get("user[blacklisted_tags]"))
		w.WriteHeader(http.StatusNoContent)
	}, WithAuth("someone", "key"))

	var cleared *int64
	err := cl.Users.EditSelf(context.Background(), EditSelfOptions{
		AvatarID:        &cleared,
		BlacklistedTags: []string{"gore", "scat"},
	})
	require.NoError(t, err)
}

func TestUsers_EditSelf_PageBounds(t *testing.T) {
	cl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	}, WithAuth("someone", "key"))

	err := cl.Users.EditSelf(context.Background(), EditSelfOptions{PostsPerPage: 10})
	assert.Error(t, err)
}

func TestUsers_AddFavorite(t *testing.T) {
	cl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mustPath(t, r, "/favorites.json")
		if r.Method != http.MethodPost {
			t.Fatalf("method = %s, want POST", r.Method)
		}
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "123", r.PostForm.Get("post_id"))
		writeJSON(w, map[string]any{"post": testPostJSON(123)})
	}, WithAuth("someone", "key"))

	post, err := cl.Users.AddFavorite(context.Background(), 123)
	require.NoError(t, err)
	assert.Equal(t, int64(123), post.ID)
}

func TestUsers_Favorites(t *testing.T) {
	cl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mustPath(t, r, "/favorites.json")
		assert.Equal(t, "212", r.URL.Query().Get("user_id"))
		writeJSON(w, map[string]any{"posts": []any{testPostJSON(1), testPostJSON(2)}})
	})

	posts, err := cl.Users.Favorites(context.Background(), 212)
	require.NoError(t, err)
	assert.Len(t, posts, 2)

	// Own favorites need credentials.
	_, err = cl.Users.Favorites(context.Background(), 0)
	require.ErrorIs(t, err, ErrAuthRequired)
}
