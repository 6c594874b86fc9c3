package e621

import (
	"context"
	"fmt"
)

// SearchWikiPagesOrder picks the sort order of a wiki page search.
type SearchWikiPagesOrder string

const (
	WikiPageOrderTitle     SearchWikiPagesOrder = "title"
	WikiPageOrderTime      SearchWikiPagesOrder = "time"
	WikiPageOrderPostCount SearchWikiPagesOrder = "post_count"
)

// WikiPages exposes the wiki page endpoints.
type WikiPages struct {
	client *Client
}

// WikiPage is a single wiki page.
type WikiPage struct {
	client *Client

	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	CreatorID    int64    `json:"creator_id"`
	CreatorName  string   `json:"creator_name"`
	CategoryName int      `json:"category_name"`
	Body         string   `json:"body"`
	IsLocked     bool     `json:"is_locked"`
	CreatedAt    string   `json:"created_at"`
	UpdatedAt    string   `json:"updated_at"`
	UpdaterID    int64    `json:"updater_id"`
	OtherNames   []string `json:"other_names"`
	IsDeleted    bool     `json:"is_deleted"`
}

// Creator fetches the user that created this page.
func (w *WikiPage) Creator(ctx context.Context) (*User, error) {
	return w.client.Users.Get(ctx, w.CreatorID)
}

// Modify edits this page.
func (w *WikiPage) Modify(ctx context.Context, opts ModifyWikiPageOptions) (*WikiPage, error) {
	return w.client.WikiPages.Modify(ctx, w.ID, opts)
}

// Delete removes this page.
func (w *WikiPage) Delete(ctx context.Context) error {
	return w.client.WikiPages.Delete(ctx, w.ID)
}

// Revert restores this page to a previous version.
func (w *WikiPage) Revert(ctx context.Context, versionID int64) error {
	return w.client.WikiPages.Revert(ctx, w.ID, versionID)
}

// History lists this page's version entries.
func (w *WikiPage) History(ctx context.Context, opts SearchWikiPageHistoryOptions) ([]*WikiPageHistory, error) {
	opts.WikiPage = w.ID
	return w.client.WikiPages.SearchHistory(ctx, opts)
}

// WikiPageHistory is one entry of a wiki page's version history.
type WikiPageHistory struct {
	client *Client

	ID         int64    `json:"id"`
	WikiPageID int64    `json:"wiki_page_id"`
	UpdaterID  *int64   `json:"updater_id"`
	Title      string   `json:"title"`
	Body       string   `json:"body"`
	IsLocked   bool     `json:"is_locked"`
	CreatedAt  string   `json:"created_at"`
	UpdatedAt  string   `json:"updated_at"`
	OtherNames []string `json:"other_names"`
	IsDeleted  bool     `json:"is_deleted"`
	Reason     string   `json:"reason"`
}

// Updater fetches the user that made this edit, or nil for system edits.
func (h *WikiPageHistory) Updater(ctx context.Context) (*User, error) {
	if h.UpdaterID == nil {
		return nil, nil
	}
	return h.client.Users.Get(ctx, *h.UpdaterID)
}

// WikiPage fetches the page this entry belongs to.
func (h *WikiPageHistory) WikiPage(ctx context.Context) (*WikiPage, error) {
	return h.client.WikiPages.Get(ctx, h.WikiPageID)
}

// RevertTo reverts the page to this version.
func (h *WikiPageHistory) RevertTo(ctx context.Context) error {
	return h.client.WikiPages.Revert(ctx, h.WikiPageID, h.ID)
}

// SearchWikiPagesOptions narrows a wiki page search.
type SearchWikiPagesOptions struct {
	Title         string
	Creator       string
	Body          string
	OtherNames    string
	HasOtherNames *bool
	HideDeleted   *bool
	Order         SearchWikiPagesOrder
	Page          string
	Limit         int
}

// CreateWikiPageOptions describes a new wiki page. Title and Body are
// required. ForceOverwrite skips secondary validations and needs janitor
// rights on the server side.
type CreateWikiPageOptions struct {
	Title          string
	Body           string
	Locked         *bool
	ForceOverwrite *bool
	Reason         string
}

// ModifyWikiPageOptions describes a wiki page edit.
type ModifyWikiPageOptions struct {
	Title          string
	Body           *string
	Locked         *bool
	ForceOverwrite *bool
	Reason         string
}

// SearchWikiPageHistoryOptions narrows a wiki page version search.
type SearchWikiPageHistoryOptions struct {
	ID       int64
	WikiPage int64
	Page     string
	Limit    int
}

// Get fetches a wiki page by id. Missing pages resolve to (nil, nil).
func (s *WikiPages) Get(ctx context.Context, id int64) (*WikiPage, error) {
	var page WikiPage
	if err := s.client.get(ctx, fmt.Sprintf("/wiki_pages/%d.json", id), &page); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	page.client = s.client
	return &page, nil
}

// GetByTitle fetches the first wiki page whose title matches, or
// (nil, nil).
func (s *WikiPages) GetByTitle(ctx context.Context, title string) (*WikiPage, error) {
	res, err := s.Search(ctx, SearchWikiPagesOptions{Title: title, Limit: 1})
	if err != nil || len(res) == 0 {
		return nil, err
	}
	return res[0], nil
}

// Search lists wiki pages.
func (s *WikiPages) Search(ctx context.Context, opts SearchWikiPagesOptions) ([]*WikiPage, error) {
	qs := &Form{}
	if opts.Title != "" {
		qs.Add("search[title]", opts.Title)
	}
	if opts.Creator != "" {
		qs.Add("search[creator_name]", opts.Creator)
	}
	if opts.Body != "" {
		qs.Add("search[body_matches]", opts.Body)
	}
	if opts.OtherNames != "" {
		qs.Add("search[other_names_match]", opts.OtherNames)
	}
	if opts.HasOtherNames != nil {
		qs.Add("search[other_names_present]", *opts.HasOtherNames)
	}
	if opts.HideDeleted != nil {
		qs.Add("search[hide_deleted]", *opts.HideDeleted)
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
	var res []*WikiPage
	if err := s.client.get(ctx, "/wiki_pages.json?"+qs.Encode(), &res); err != nil {
		return nil, err
	}
	for _, p := range res {
		p.client = s.client
	}
	return res, nil
}

// Create makes a new wiki page. Requires authentication.
func (s *WikiPages) Create(ctx context.Context, opts CreateWikiPageOptions) (*WikiPage, error) {
	if err := s.client.requireAuth("WikiPages.Create"); err != nil {
		return nil, err
	}
	if opts.Title == "" {
		return nil, fmt.Errorf("Title is required")
	}
	if opts.Body == "" {
		return nil, fmt.Errorf("Body is required")
	}
	qs := (&Form{}).
		Add("wiki_page[title]", opts.Title).
		Add("wiki_page[body]", opts.Body)
	if opts.Locked != nil {
		qs.Add("wiki_page[is_locked]", *opts.Locked)
	}
	if opts.ForceOverwrite != nil {
		qs.Add("wiki_page[skip_secondary_validations]", *opts.ForceOverwrite)
	}
	if opts.Reason != "" {
		qs.Add("wiki_page[edit_reason]", opts.Reason)
	}
	var page WikiPage
	if err := s.client.post(ctx, "/wiki_pages.json", qs.Encode(), &page); err != nil {
		return nil, err
	}
	page.client = s.client
	return &page, nil
}

// Modify edits a wiki page and returns its updated form. Requires
// authentication.
func (s *WikiPages) Modify(ctx context.Context, id int64, opts ModifyWikiPageOptions) (*WikiPage, error) {
	if err := s.client.requireAuth("WikiPages.Modify"); err != nil {
		return nil, err
	}
	qs := &Form{}
	if opts.Title != "" {
		qs.Add("wiki_page[title]", opts.Title)
	}
	if opts.Body != nil {
		qs.Add("wiki_page[body]", *opts.Body)
	}
	if opts.Locked != nil {
		qs.Add("wiki_page[is_locked]", *opts.Locked)
	}
	if opts.ForceOverwrite != nil {
		qs.Add("wiki_page[skip_secondary_validations]", *opts.ForceOverwrite)
	}
	if opts.Reason != "" {
		qs.Add("wiki_page[edit_reason]", opts.Reason)
	}
	var page WikiPage
	if err := s.client.patch(ctx, fmt.Sprintf("/wiki_pages/%d.json", id), qs.Encode(), &page); err != nil {
		return nil, err
	}
	page.client = s.client
	return &page, nil
}

// Delete removes a wiki page. Requires authentication (and janitor
// rights on the server side).
func (s *WikiPages) Delete(ctx context.Context, id int64) error {
	if err := s.client.requireAuth("WikiPages.Delete"); err != nil {
		return err
	}
	return s.client.del(ctx, fmt.Sprintf("/wiki_pages/%d.json", id), "", nil)
}

// Revert restores a wiki page to a previous version from its history.
// Requires authentication.
func (s *WikiPages) Revert(ctx context.Context, id, versionID int64) error {
	if err := s.client.requireAuth("WikiPages.Revert"); err != nil {
		return err
	}
	qs := (&Form{}).Add("version_id", versionID)
	return s.client.put(ctx, fmt.Sprintf("/wiki_pages/%d/revert.json", id), qs.Encode(), nil)
}

// GetHistory fetches a single version entry by id, or (nil, nil) when it
// does not exist.
func (s *WikiPages) GetHistory(ctx context.Context, id int64) (*WikiPageHistory, error) {
	res, err := s.SearchHistory(ctx, SearchWikiPageHistoryOptions{ID: id})
	if err != nil || len(res) == 0 {
		return nil, err
	}
	return res[0], nil
}

// SearchHistory lists wiki page version entries. An empty result comes
// back as an object rather than an array, which decodes to no entries.
func (s *WikiPages) SearchHistory(ctx context.Context, opts SearchWikiPageHistoryOptions) ([]*WikiPageHistory, error) {
	qs := &Form{}
	if opts.ID != 0 {
		qs.Add("search[id]", opts.ID)
	}
	if opts.WikiPage != 0 {
		qs.Add("search[wiki_page_id]", opts.WikiPage)
	}
	if opts.Page != "" {
		qs.Add("page", opts.Page)
	}
	if opts.Limit > 0 {
		qs.Add("limit", opts.Limit)
	}
	var res []*WikiPageHistory
	if err := s.client.getList(ctx, "/wiki_page_versions.json?"+qs.Encode(), &res); err != nil {
		return nil, err
	}
	for _, h := range res {
		h.client = s.client
	}
	return res, nil
}
