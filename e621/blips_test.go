package e621

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlips_Search(t *testing.T) {
	cl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mustPath(t, r, "/blips.json")
		q := r.URL.Query()
		assert.Equal(t, "someone", q.Get("search[creator_name]"))
		assert.Equal(t, "id_desc", q.Get("search[order]"))
		writeJSON(w, []any{
			map[string]any{"id": 2, "creator_id": 212, "body": "second"},
			map[string]any{"id": 1, "creator_id": 212, "body": "first", "response_to": 2},
		})
	})

	blips, err := cl.Blips.Search(context.Background(), SearchBlipsOptions{
		Creator: "someone", Order: BlipOrderIDDesc,
	})
	require.NoError(t, err)
	require.Len(t, blips, 2)
	assert.Nil(t, blips[0].ResponseTo)
	require.NotNil(t, blips[1].ResponseTo)
	assert.Equal(t, int64(2), *blips[1].ResponseTo)
}

func TestBlips_Create(t *testing.T) {
	cl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mustPath(t, r, "/blips.json")
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "hello", r.PostForm.Get("blip[body]"))
		assert.Equal(t, "7", r.PostForm.Get("blip[response_to]"))
		writeJSON(w, map[string]any{"id": 8, "body": "hello", "response_to": 7})
	}, WithAuth("user", "key"))

	blip, err := cl.Blips.Create(context.Background(), "hello", 7)
	require.NoError(t, err)
	assert.Equal(t, int64(8), blip.ID)

	_, err = cl.Blips.Create(context.Background(), "", 0)
	assert.Error(t, err)
}

func TestBlips_AddWarning(t *testing.T) {
	cl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mustPath(t, r, "/blips/8/warning.json")
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "record", r.PostForm.Get("blip[record_type]"))
		writeJSON(w, map[string]any{"id": 8, "body": "hello", "warning_type": 2})
	}, WithAuth("user", "key"))

	blip, err := cl.Blips.AddWarning(context.Background(), 8, BlipRecord)
	require.NoError(t, err)
	assert.Equal(t, 2, blip.WarningType)
}
