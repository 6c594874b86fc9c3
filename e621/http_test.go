package e621

import (
	"context"
	"encoding/base64"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDo_NoContent(t *testing.T) {
	cl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mustPath(t, r, "/notes/5.json")
		if r.Method != http.MethodDelete {
			t.Fatalf("method = %s, want DELETE", r.Method)
		}
		w.WriteHeader(http.StatusNoContent)
	}, WithAuth("user", "key"))

	require.NoError(t, cl.Notes.Delete(context.Background(), 5))
}

func TestDo_ParseError(t *testing.T) {
	cl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html>totally not json</html>"))
	})

	_, err := cl.Tags.Get(context.Background(), 1)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindParse, apiErr.Kind)
	assert.Equal(t, http.StatusOK, apiErr.StatusCode)
	assert.Equal(t, "<html>totally not json</html>", apiErr.ResponseBody)
}

func TestDo_NotFound(t *testing.T) {
	cl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		writeJSON(w, map[string]any{"success": false, "reason": "not found"})
	})

	// Gets map a 404 to a nil result.
	tag, err := cl.Tags.Get(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, tag)

	// The raw error is still a classified APIError.
	err = cl.get(context.Background(), "/tags/999.json", nil)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, IsNotFound(err))
	assert.Equal(t, KindUnexpectedStatus, apiErr.Kind)
	assert.Equal(t, "GET", apiErr.Method)
	assert.Equal(t, "/tags/999.json", apiErr.Path)
	assert.Equal(t, map[string]any{"success": false, "reason": "not found"}, apiErr.ResponseBody)
}

func TestDo_UnexpectedStatus_FormDiagnostics(t *testing.T) {
	cl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte("nope"))
	}, WithAuth("user", "key"))

	_, err := cl.Notes.Create(context.Background(), CreateNoteOptions{
		PostID: 12, X: 1, Y: 2, Width: 3, Height: 4, Body: "hello there",
	})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindUnexpectedStatus, apiErr.Kind)
	assert.Equal(t, 422, apiErr.StatusCode)
	assert.Equal(t, "12", apiErr.RequestForm.Get("note[post_id]"))
	assert.Equal(t, "hello there", apiErr.RequestForm.Get("note[body]"))
	assert.Equal(t, "nope", apiErr.ResponseBody)
}

func TestDo_Headers(t *testing.T) {
	var gotUA, gotAuth string
	cl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAuth = r.Header.Get("Authorization")
		writeJSON(w, map[string]any{"id": 1})
	}, WithUserAgent("test-agent/1.0"), WithAuth("user", "key"))

	_, err := cl.Tags.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "test-agent/1.0", gotUA)
	want := "Basic " + base64.StdEncoding.EncodeToString([]byte("user:key"))
	assert.Equal(t, want, gotAuth)
}

func TestDo_NoAuthHeaderWithoutCredentials(t *testing.T) {
	var gotAuth string
	hasAuth := true
	cl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth, hasAuth = r.Header.Get("Authorization"), r.Header.Get("Authorization") != ""
		writeJSON(w, map[string]any{"id": 1})
	}, WithAuth("user", "")) // a key alone is not enough

	_, err := cl.Tags.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, hasAuth, "unexpected Authorization header %q", gotAuth)
	assert.False(t, cl.Authenticated())
}

func TestDo_Timeout(t *testing.T) {
	cl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		writeJSON(w, map[string]any{"id": 1})
	}, WithRequestTimeout(50*time.Millisecond))

	_, err := cl.Tags.Get(context.Background(), 1)
	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.True(t, te.Timeout())
}

func TestDo_AuthRequiredUpFront(t *testing.T) {
	called := false
	cl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, err := cl.Posts.Vote(context.Background(), 1, true)
	require.ErrorIs(t, err, ErrAuthRequired)
	assert.False(t, called, "no request should be made without credentials")
}

func TestGetList_EmptyObjectResult(t *testing.T) {
	cl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mustPath(t, r, "/post_approvals.json")
		writeJSON(w, map[string]any{"post_approvals": []any{}})
	})

	res, err := cl.Posts.SearchApprovals(context.Background(), SearchPostApprovalsOptions{})
	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestBlips_EditWindowExpired(t *testing.T) {
	cl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mustPath(t, r, "/blips/42.json")
		w.Header().Set("Location", "/blips/42")
		w.WriteHeader(http.StatusFound)
	}, WithAuth("user", "key"))

	_, err := cl.Blips.Modify(context.Background(), 42, "too late")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindEditWindowExpired, apiErr.Kind)
}
