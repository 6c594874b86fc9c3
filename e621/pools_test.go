package e621

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPoolJSON(id int64, postIDs ...int64) map[string]any {
	if postIDs == nil {
		postIDs = []int64{}
	}
	return map[string]any{
		"id":         id,
		"name":       "some_pool",
		"category":   "series",
		"is_active":  true,
		"post_ids":   postIDs,
		"post_count": len(postIDs),
	}
}

func TestPools_Get(t *testing.T) {
	cl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mustPath(t, r, "/pools/17.json")
		writeJSON(w, testPoolJSON(17, 1, 2, 3))
	})

	pool, err := cl.Pools.Get(context.Background(), 17)
	require.NoError(t, err)
	assert.Equal(t, int64(17), pool.ID)
	assert.Equal(t, PoolSeries, pool.Category)
	assert.Equal(t, []int64{1, 2, 3}, pool.PostIDs)
}

func TestPools_Search(t *testing.T) {
	cl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mustPath(t, r, "/pools.json")
		q := r.URL.Query()
		assert.Equal(t, "some*", q.Get("search[name_matches]"))
		assert.Equal(t, "collection", q.Get("search[category]"))
		writeJSON(w, []any{testPoolJSON(1), testPoolJSON(2)})
	})

	pools, err := cl.Pools.Search(context.Background(), SearchPoolsOptions{
		Name: "some*", Category: PoolCollection,
	})
	require.NoError(t, err)
	require.Len(t, pools, 2)
}

func TestPools_Create(t *testing.T) {
	cl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mustPath(t, r, "/pools.json")
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "some_pool", r.PostForm.Get("pool[name]"))
		assert.Equal(t, "series", r.PostForm.Get("pool[category]"))
		assert.Equal(t, "1 2", r.PostForm.Get("pool[post_ids_string]"))
		writeJSON(w, testPoolJSON(30, 1, 2))
	}, WithAuth("user", "key"))

	pool, err := cl.Pools.Create(context.Background(), CreatePoolOptions{
		Name: "some_pool", Category: PoolSeries, Posts: []int64{1, 2},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(30), pool.ID)

	_, err = cl.Pools.Create(context.Background(), CreatePoolOptions{Name: "x"})
	assert.Error(t, err, "missing category must fail before any request")
}

func TestPools_AddPosts(t *testing.T) {
	cl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			mustPath(t, r, "/pools/17.json")
			writeJSON(w, testPoolJSON(17, 1, 2))
		case http.MethodPut:
			mustPath(t, r, "/pools/17.json")
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "1 2 3 4", r.PostForm.Get("pool[post_ids]"))
			writeJSON(w, testPoolJSON(17, 1, 2, 3, 4))
		default:
			t.Fatalf("unexpected method %s", r.Method)
		}
	}, WithAuth("user", "key"))

	pool, err := cl.Pools.AddPosts(context.Background(), 17, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 4}, pool.PostIDs)
}

func TestPools_RemovePosts(t *testing.T) {
	cl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writeJSON(w, testPoolJSON(17, 1, 2, 3))
		case http.MethodPut:
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "1 3", r.PostForm.Get("pool[post_ids]"))
			writeJSON(w, testPoolJSON(17, 1, 3))
		}
	}, WithAuth("user", "key"))

	pool, err := cl.Pools.RemovePosts(context.Background(), 17, 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3}, pool.PostIDs)
}

func TestPools_Revert(t *testing.T) {
	cl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mustPath(t, r, "/pools/17/revert.json")
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "55", r.PostForm.Get("version_id"))
		w.WriteHeader(http.StatusNoContent)
	}, WithAuth("user", "key"))

	require.NoError(t, cl.Pools.Revert(context.Background(), 17, 55))
}
