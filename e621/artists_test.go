package e621

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArtists_Get(t *testing.T) {
	cl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mustPath(t, r, "/artists/40.json")
		writeJSON(w, map[string]any{
			"id": 40, "name": "someartist", "is_active": true,
			"other_names": []string{"some_artist"},
			"urls":        []any{map[string]any{"id": 1, "artist_id": 40, "url": "https://example.com"}},
		})
	})

	artist, err := cl.Artists.Get(context.Background(), 40)
	require.NoError(t, err)
	assert.Equal(t, "someartist", artist.Name)
	require.Len(t, artist.URLs, 1)
	assert.Equal(t, "https://example.com", artist.URLs[0].URL)
}

func TestArtists_Create(t *testing.T) {
	cl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mustPath(t, r, "/artists.json")
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "someartist", r.PostForm.Get("artist[name]"))
		assert.Equal(t, "alias_one alias_two", r.PostForm.Get("artist[other_names_string]"))
		assert.Equal(t, "https://a.example\nhttps://b.example", r.PostForm.Get("artist[url_string]"))
		writeJSON(w, map[string]any{"id": 41, "name": "someartist"})
	}, WithAuth("user", "key"))

	artist, err := cl.Artists.Create(context.Background(), CreateArtistOptions{
		Name:       "someartist",
		OtherNames: []string{"alias_one", "alias_two"},
		URLs:       []string{"https://a.example", "https://b.example"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(41), artist.ID)
}

func TestArtists_SearchHistory_EmptyObject(t *testing.T) {
	cl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mustPath(t, r, "/artist_versions.json")
		writeJSON(w, map[string]any{"artist_versions": []any{}})
	})

	history, err := cl.Artists.SearchHistory(context.Background(), SearchArtistHistoryOptions{ArtistName: "nobody"})
	require.NoError(t, err)
	assert.Empty(t, history)
}

const testDNPBody = `This is the list of artists who asked not to have their work posted.
[#number]# . "A":#a . "B":#b
* artist_a - asked via email
* artist_b/artist_c - asked via ticket
* artist_d on twitter - asked via dm
* artist_a - listed twice
h4. Conditional Do Not Post
* [b]cond_artist[/b] - commissions only
* plain_cond - anything older than 2020
The DNP List, Do-Not-Post List covers the above.
`

func TestArtists_DoNotPost(t *testing.T) {
	cl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mustPath(t, r, "/wiki_pages/85.json")
		writeJSON(w, map[string]any{"id": 85, "title": "avoid_posting", "body": testDNPBody})
	})

	list, err := cl.Artists.DoNotPost(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"artist_a", "artist_b", "artist_c", "artist_d"}, list.DNP)
	assert.Equal(t, []string{"cond_artist", "plain_cond"}, list.ConditionalDNP)
}

func TestArtists_DoNotPost_UnexpectedLayout(t *testing.T) {
	cl := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"id": 86, "title": "something_else", "body": "just a wiki page"})
	})

	_, err := cl.Artists.DoNotPost(context.Background(), 86)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "avoid-posting"))
}
