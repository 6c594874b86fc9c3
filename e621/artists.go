package e621

import (
	"context"
	"fmt"
	"strings"
)

// SearchArtistsOrder picks the sort order of an artist search.
type SearchArtistsOrder string

const (
	ArtistOrderCreatedAt SearchArtistsOrder = "created_at"
	ArtistOrderUpdatedAt SearchArtistsOrder = "updated_at"
	ArtistOrderName      SearchArtistsOrder = "name"
	ArtistOrderPostCount SearchArtistsOrder = "post_count"
)

// The avoid-posting wiki page on e621.
const defaultDNPWikiPageID = 85

// Artists exposes the artist endpoints.
type Artists struct {
	client *Client
}

// ArtistURL is one URL associated with an artist.
type ArtistURL struct {
	ID            int64  `json:"id"`
	ArtistID      int64  `json:"artist_id"`
	URL           string `json:"url"`
	NormalizedURL string `json:"normalized_url"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
	IsActive      bool   `json:"is_active"`
}

// Artist is an artist page.
type Artist struct {
	client *Client

	ID           int64       `json:"id"`
	Name         string      `json:"name"`
	UpdatedAt    string      `json:"updated_at"`
	IsActive     bool        `json:"is_active"`
	OtherNames   []string    `json:"other_names"`
	GroupName    string      `json:"group_name"`
	LinkedUserID *int64      `json:"linked_user_id"`
	CreatedAt    string      `json:"created_at"`
	IsBanned     bool        `json:"is_banned"`
	CreatorID    int64       `json:"creator_id"`
	IsLocked     bool        `json:"is_locked"`
	Notes        string      `json:"notes"`
	Domains      []string    `json:"domains"`
	URLs         []ArtistURL `json:"urls"`
}

// Modify edits this artist.
func (a *Artist) Modify(ctx context.Context, opts ModifyArtistOptions) (*Artist, error) {
	return a.client.Artists.Modify(ctx, a.ID, opts)
}

// Delete removes this artist.
func (a *Artist) Delete(ctx context.Context) error {
	return a.client.Artists.Delete(ctx, a.ID)
}

// LinkedUser fetches the user associated with this artist, or nil when
// none is linked.
func (a *Artist) LinkedUser(ctx context.Context) (*User, error) {
	if a.LinkedUserID == nil {
		return nil, nil
	}
	return a.client.Users.Get(ctx, *a.LinkedUserID)
}

// ArtistHistory is one entry of an artist's version history.
type ArtistHistory struct {
	client *Client

	ID           int64    `json:"id"`
	ArtistID     int64    `json:"artist_id"`
	Name         string   `json:"name"`
	UpdaterID    int64    `json:"updater_id"`
	IsActive     bool     `json:"is_active"`
	GroupName    string   `json:"group_name"`
	IsBanned     bool     `json:"is_banned"`
	NotesChanged bool     `json:"notes_changed"`
	CreatedAt    string   `json:"created_at"`
	UpdatedAt    string   `json:"updated_at"`
	OtherNames   []string `json:"other_names"`
	URLs         []string `json:"urls"`
}

// Updater fetches the user that made this edit.
func (h *ArtistHistory) Updater(ctx context.Context) (*User, error) {
	return h.client.Users.Get(ctx, h.UpdaterID)
}

// Artist fetches the artist this entry belongs to.
func (h *ArtistHistory) Artist(ctx context.Context) (*Artist, error) {
	return h.client.Artists.Get(ctx, h.ArtistID)
}

// RevertTo reverts the artist to this version.
func (h *ArtistHistory) RevertTo(ctx context.Context) error {
	return h.client.Artists.Revert(ctx, h.ArtistID, h.ID)
}

// SearchArtistsOptions narrows an artist search.
type SearchArtistsOptions struct {
	Name    string
	URL     string
	Creator string
	Active  *bool
	Banned  *bool
	HasTag  *bool
	Order   SearchArtistsOrder
	Page    string
	Limit   int
}

// CreateArtistOptions describes a new artist page. Name is required.
type CreateArtistOptions struct {
	Name         string
	LinkedUserID int64
	Locked       *bool
	OtherNames   []string
	GroupName    string
	URLs         []string
	Notes        string
}

// ModifyArtistOptions describes an artist edit. Renaming requires
// janitor rights on the server side.
type ModifyArtistOptions = CreateArtistOptions

// SearchArtistHistoryOptions narrows an artist version search.
type SearchArtistHistoryOptions struct {
	ID          int64
	ArtistID    int64
	ArtistName  string
	UpdaterID   int64
	UpdaterName string
	Page        string
	Limit       int
}

// DoNotPostList is the parsed avoid-posting wiki page.
type DoNotPostList struct {
	DNP            []string
	ConditionalDNP []string
}

// Get fetches an artist by id. Missing artists resolve to (nil, nil).
func (s *Artists) Get(ctx context.Context, id int64) (*Artist, error) {
	var artist Artist
	if err := s.client.get(ctx, fmt.Sprintf("/artists/%d.json", id), &artist); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	artist.client = s.client
	return &artist, nil
}

// GetByName fetches the first artist whose name matches, or (nil, nil).
func (s *Artists) GetByName(ctx context.Context, name string) (*Artist, error) {
	res, err := s.Search(ctx, SearchArtistsOptions{Name: name, Limit: 1})
	if err != nil || len(res) == 0 {
		return nil, err
	}
	return res[0], nil
}

// Search lists artists.
func (s *Artists) Search(ctx context.Context, opts SearchArtistsOptions) ([]*Artist, error) {
	qs := &Form{}
	if opts.Name != "" {
		qs.Add("search[any_name_matches]", opts.Name)
	}
	if opts.URL != "" {
		qs.Add("search[url_matches]", opts.URL)
	}
	if opts.Creator != "" {
		qs.Add("search[creator_name]", opts.Creator)
	}
	if opts.Active != nil {
		qs.Add("search[is_active]", *opts.Active)
	}
	if opts.Banned != nil {
		qs.Add("search[is_banned]", *opts.Banned)
	}
	if opts.HasTag != nil {
		qs.Add("search[has_tag]", *opts.HasTag)
	}
	if opts.Order != "" {
		qs.Add("search[order]", string(opts.Order))
	}
	if opts.Page != "" {
		qs.Add("page", opts.Page)
	}
	if opts.Limit > 0 {
		qs.Add("limit", opts.Limit)
	}
	var res []*Artist
	if err := s.client.get(ctx, "/artists.json?"+qs.Encode(), &res); err != nil {
		return nil, err
	}
	for _, a := range res {
		a.client = s.client
	}
	return res, nil
}

func buildArtistForm(opts CreateArtistOptions) *Form {
	qs := &Form{}
	if opts.Name != "" {
		qs.Add("artist[name]", opts.Name)
	}
	if opts.LinkedUserID != 0 {
		qs.Add("artist[linked_user_id]", opts.LinkedUserID)
	}
	if opts.Locked != nil {
		qs.Add("artist[is_locked]", *opts.Locked)
	}
	if len(opts.OtherNames) > 0 {
		qs.Add("artist[other_names_string]", strings.Join(opts.OtherNames, " "))
	}
	if opts.GroupName != "" {
		qs.Add("artist[group_name]", opts.GroupName)
	}
	if len(opts.URLs) > 0 {
		qs.Add("artist[url_string]", strings.Join(opts.URLs, "\n"))
	}
	if opts.Notes != "" {
		qs.Add("artist[notes]", opts.Notes)
	}
	return qs
}

// Create makes a new artist page. Requires authentication.
func (s *Artists) Create(ctx context.Context, opts CreateArtistOptions) (*Artist, error) {
	if err := s.client.requireAuth("Artists.Create"); err != nil {
		return nil, err
	}
	if opts.Name == "" {
		return nil, fmt.Errorf("Name is required")
	}
	var artist Artist
	if err := s.client.post(ctx, "/artists.json", buildArtistForm(opts).Encode(), &artist); err != nil {
		return nil, err
	}
	artist.client = s.client
	return &artist, nil
}

// Modify edits an artist page and returns its updated form. Requires
// authentication.
func (s *Artists) Modify(ctx context.Context, id int64, opts ModifyArtistOptions) (*Artist, error) {
	if err := s.client.requireAuth("Artists.Modify"); err != nil {
		return nil, err
	}
	var artist Artist
	if err := s.client.patch(ctx, fmt.Sprintf("/artists/%d.json", id), buildArtistForm(opts).Encode(), &artist); err != nil {
		return nil, err
	}
	artist.client = s.client
	return &artist, nil
}

// Delete removes an artist page. Requires authentication (and janitor
// rights on the server side).
func (s *Artists) Delete(ctx context.Context, id int64) error {
	if err := s.client.requireAuth("Artists.Delete"); err != nil {
		return err
	}
	return s.client.del(ctx, fmt.Sprintf("/artists/%d.json", id), "", nil)
}

// Revert restores an artist page to a previous version from its history.
// Requires authentication.
func (s *Artists) Revert(ctx context.Context, id, versionID int64) error {
	if err := s.client.requireAuth("Artists.Revert"); err != nil {
		return err
	}
	qs := (&Form{}).Add("version_id", versionID)
	return s.client.put(ctx, fmt.Sprintf("/artists/%d/revert.json", id), qs.Encode(), nil)
}

// GetHistory fetches a single version entry by id, or (nil, nil) when it
// does not exist.
func (s *Artists) GetHistory(ctx context.Context, id int64) (*ArtistHistory, error) {
	res, err := s.SearchHistory(ctx, SearchArtistHistoryOptions{ID: id})
	if err != nil || len(res) == 0 {
		return nil, err
	}
	return res[0], nil
}

// SearchHistory lists artist version entries. An empty result comes back
// as an object rather than an array, which decodes to no entries.
func (s *Artists) SearchHistory(ctx context.Context, opts SearchArtistHistoryOptions) ([]*ArtistHistory, error) {
	qs := &Form{}
	if opts.ID != 0 {
		qs.Add("search[id]", opts.ID)
	}
	if opts.ArtistID != 0 {
		qs.Add("search[artist_id]", opts.ArtistID)
	}
	if opts.ArtistName != "" {
		qs.Add("search[name]", opts.ArtistName)
	}
	if opts.UpdaterID != 0 {
		qs.Add("search[updater_id]", opts.UpdaterID)
	}
	if opts.UpdaterName != "" {
		qs.Add("search[updater]", opts.UpdaterName)
	}
	if opts.Page != "" {
		qs.Add("page", opts.Page)
	}
	if opts.Limit > 0 {
		qs.Add("limit", opts.Limit)
	}
	var res []*ArtistHistory
	if err := s.client.getList(ctx, "/artist_versions.json?"+qs.Encode(), &res); err != nil {
		return nil, err
	}
	for _, h := range res {
		h.client = s.client
	}
	return res, nil
}

// DoNotPost fetches and parses the avoid-posting wiki page into plain
// artist name lists. Pass 0 for the standard page id. The parse assumes
// the page follows e621's formatting.
func (s *Artists) DoNotPost(ctx context.Context, wikiPageID int64) (*DoNotPostList, error) {
	if wikiPageID == 0 {
		wikiPageID = defaultDNPWikiPageID
	}
	page, err := s.client.WikiPages.Get(ctx, wikiPageID)
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, fmt.Errorf("wiki page %d does not exist", wikiPageID)
	}

	lines := strings.Split(page.Body, "\n")
	dnpStart, dnpEnd, condEnd := -1, -1, -1
	for i, line := range lines {
		switch {
		case dnpStart == -1 && strings.Contains(line, "[#number]#"):
			dnpStart = i
		case dnpEnd == -1 && strings.HasPrefix(line, "h4") && strings.Contains(line, "Conditional Do Not Post"):
			dnpEnd = i
		case condEnd == -1 && strings.Contains(line, "DNP List, Do-Not-Post List"):
			condEnd = i
		}
	}
	if dnpStart == -1 || dnpEnd == -1 || condEnd == -1 {
		return nil, fmt.Errorf("wiki page %d does not look like an avoid-posting list", wikiPageID)
	}

	parse := func(from, to int, stripBold bool) []string {
		seen := make(map[string]bool)
		var out []string
		add := func(name string) {
			name = strings.TrimSpace(strings.SplitN(name, " on ", 2)[0])
			if name != "" && !seen[name] {
				seen[name] = true
				out = append(out, name)
			}
		}
		for i := from; i < to; i++ {
			line := lines[i]
			if !strings.HasPrefix(line, "*") {
				continue
			}
			names := strings.SplitN(line[min(2, len(line)):], "-", 2)[0]
			if stripBold {
				names = strings.NewReplacer("[b]", "", "[/b]", "").Replace(names)
			}
			for _, name := range strings.Split(names, "/") {
				add(name)
			}
		}
		return out
	}

	return &DoNotPostList{
		DNP:            parse(dnpStart, dnpEnd, false),
		ConditionalDNP: parse(dnpEnd, condEnd, true),
	}, nil
}
