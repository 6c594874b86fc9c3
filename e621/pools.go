package e621

import (
	"context"
	"fmt"
	"strings"
)

// PoolCategory is a pool's classification.
type PoolCategory string

const (
	PoolCollection PoolCategory = "collection"
	PoolSeries     PoolCategory = "series"
)

// SearchPoolsOrder picks the sort order of a pool search.
type SearchPoolsOrder string

const (
	PoolOrderUpdatedAt SearchPoolsOrder = "updated_at"
	PoolOrderName      SearchPoolsOrder = "name"
	PoolOrderCreatedAt SearchPoolsOrder = "created_at"
	PoolOrderPostCount SearchPoolsOrder = "post_count"
)

// Pools exposes the pool endpoints.
type Pools struct {
	client *Client
}

// Pool is an ordered collection of posts.
type Pool struct {
	client *Client

	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	CreatedAt   string       `json:"created_at"`
	UpdatedAt   string       `json:"updated_at"`
	CreatorID   int64        `json:"creator_id"`
	CreatorName string       `json:"creator_name"`
	IsActive    bool         `json:"is_active"`
	IsDeleted   bool         `json:"is_deleted"`
	Category    PoolCategory `json:"category"`
	PostIDs     []int64      `json:"post_ids"`
	PostCount   int          `json:"post_count"`
}

// Posts fetches the post objects contained in this pool.
func (p *Pool) Posts(ctx context.Context) ([]*Post, error) {
	tags := make([]string, len(p.PostIDs))
	for i, id := range p.PostIDs {
		tags[i] = fmt.Sprintf("id:%d", id)
	}
	return p.client.Posts.Search(ctx, SearchPostsOptions{Tags: tags})
}

// Creator fetches the user that created this pool.
func (p *Pool) Creator(ctx context.Context) (*User, error) {
	return p.client.Users.Get(ctx, p.CreatorID)
}

// AddPosts appends posts to this pool.
func (p *Pool) AddPosts(ctx context.Context, postIDs ...int64) (*Pool, error) {
	return p.client.Pools.AddPosts(ctx, p.ID, postIDs...)
}

// RemovePosts removes posts from this pool.
func (p *Pool) RemovePosts(ctx context.Context, postIDs ...int64) (*Pool, error) {
	return p.client.Pools.RemovePosts(ctx, p.ID, postIDs...)
}

// Modify edits this pool.
func (p *Pool) Modify(ctx context.Context, opts ModifyPoolOptions) (*Pool, error) {
	return p.client.Pools.Modify(ctx, p.ID, opts)
}

// Delete removes this pool.
func (p *Pool) Delete(ctx context.Context) error {
	return p.client.Pools.Delete(ctx, p.ID)
}

// Revert restores this pool to a previous version.
func (p *Pool) Revert(ctx context.Context, versionID int64) error {
	return p.client.Pools.Revert(ctx, p.ID, versionID)
}

// History lists this pool's version entries.
func (p *Pool) History(ctx context.Context, opts SearchPoolHistoryOptions) ([]*PoolHistory, error) {
	opts.Pool = p.ID
	return p.client.Pools.SearchHistory(ctx, opts)
}

// PoolHistory is one entry of a pool's version history.
type PoolHistory struct {
	client *Client

	ID                 int64        `json:"id"`
	PoolID             int64        `json:"pool_id"`
	PostIDs            []int64      `json:"post_ids"`
	AddedPostIDs       []int64      `json:"added_post_ids"`
	RemovedPostIDs     []int64      `json:"removed_post_ids"`
	UpdaterID          int64        `json:"updater_id"`
	Description        string       `json:"description"`
	DescriptionChanged bool         `json:"description_changed"`
	Name               string       `json:"name"`
	CreatedAt          string       `json:"created_at"`
	UpdatedAt          string       `json:"updated_at"`
	IsActive           bool         `json:"is_active"`
	IsDeleted          bool         `json:"is_deleted"`
	IsLocked           bool         `json:"is_locked"`
	Category           PoolCategory `json:"category"`
	Version            int          `json:"version"`
}

// Pool fetches the pool this entry belongs to.
func (h *PoolHistory) Pool(ctx context.Context) (*Pool, error) {
	return h.client.Pools.Get(ctx, h.PoolID)
}

// Updater fetches the user that made this edit.
func (h *PoolHistory) Updater(ctx context.Context) (*User, error) {
	return h.client.Users.Get(ctx, h.UpdaterID)
}

// RevertTo reverts the pool to this version.
func (h *PoolHistory) RevertTo(ctx context.Context) error {
	return h.client.Pools.Revert(ctx, h.PoolID, h.ID)
}

// SearchPoolsOptions narrows a pool search.
type SearchPoolsOptions struct {
	Name        string
	Description string
	Creator     string
	Active      *bool
	Category    PoolCategory
	Order       SearchPoolsOrder
	Page        string
	Limit       int
}

// CreatePoolOptions describes a new pool. Name and Category are
// required.
type CreatePoolOptions struct {
	Name        string
	Description string
	Posts       []int64
	Category    PoolCategory
	Active      *bool
}

// ModifyPoolOptions describes a pool edit. Posts, when set, replaces the
// pool's entire post list.
type ModifyPoolOptions struct {
	Name        string
	Description string
	Posts       []int64
	Category    PoolCategory
	Active      *bool
}

// SearchPoolHistoryOptions narrows a pool version search.
type SearchPoolHistoryOptions struct {
	Pool  int64
	Page  string
	Limit int
}

// Get fetches a pool by id. Missing pools resolve to (nil, nil).
func (s *Pools) Get(ctx context.Context, id int64) (*Pool, error) {
	var pool Pool
	if err := s.client.get(ctx, fmt.Sprintf("/pools/%d.json", id), &pool); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	pool.client = s.client
	return &pool, nil
}

// GetByName fetches the first pool whose name matches, or (nil, nil).
func (s *Pools) GetByName(ctx context.Context, name string) (*Pool, error) {
	res, err := s.Search(ctx, SearchPoolsOptions{Name: name, Limit: 1})
	if err != nil || len(res) == 0 {
		return nil, err
	}
	return res[0], nil
}

// Search lists pools.
func (s *Pools) Search(ctx context.Context, opts SearchPoolsOptions) ([]*Pool, error) {
	qs := &Form{}
	if opts.Name != "" {
		qs.Add("search[name_matches]", opts.Name)
	}
	if opts.Description != "" {
		qs.Add("search[description_matches]", opts.Description)
	}
	if opts.Creator != "" {
		qs.Add("search[creator_name]", opts.Creator)
	}
	if opts.Active != nil {
		qs.Add("search[is_active]", *opts.Active)
	}
	if opts.Category != "" {
		qs.Add("search[category]", string(opts.Category))
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
	var res []*Pool
	if err := s.client.get(ctx, "/pools.json?"+qs.Encode(), &res); err != nil {
		return nil, err
	}
	for _, p := range res {
		p.client = s.client
	}
	return res, nil
}

// Create makes a new pool. Requires authentication.
func (s *Pools) Create(ctx context.Context, opts CreatePoolOptions) (*Pool, error) {
	if err := s.client.requireAuth("Pools.Create"); err != nil {
		return nil, err
	}
	if opts.Name == "" {
		return nil, fmt.Errorf("Name is required")
	}
	if opts.Category == "" {
		return nil, fmt.Errorf("Category is required")
	}
	qs := (&Form{}).
		Add("pool[name]", opts.Name).
		Add("pool[category]", string(opts.Category))
	if opts.Description != "" {
		qs.Add("pool[description]", opts.Description)
	}
	if opts.Active != nil {
		qs.Add("pool[is_active]", *opts.Active)
	}
	if len(opts.Posts) > 0 {
		qs.Add("pool[post_ids_string]", joinIDs(opts.Posts, " "))
	}
	var pool Pool
	if err := s.client.post(ctx, "/pools.json", qs.Encode(), &pool); err != nil {
		return nil, err
	}
	pool.client = s.client
	return &pool, nil
}

// Modify edits a pool and returns its updated form. Requires
// authentication.
func (s *Pools) Modify(ctx context.Context, id int64, opts ModifyPoolOptions) (*Pool, error) {
	if err := s.client.requireAuth("Pools.Modify"); err != nil {
		return nil, err
	}
	qs := &Form{}
	if opts.Name != "" {
		qs.Add("pool[name]", opts.Name)
	}
	if opts.Description != "" {
		qs.Add("pool[description]", opts.Description)
	}
	if opts.Category != "" {
		qs.Add("pool[category]", string(opts.Category))
	}
	if opts.Active != nil {
		qs.Add("pool[is_active]", *opts.Active)
	}
	if len(opts.Posts) > 0 {
		qs.Add("pool[post_ids]", joinIDs(opts.Posts, " "))
	}
	var pool Pool
	if err := s.client.put(ctx, fmt.Sprintf("/pools/%d.json", id), qs.Encode(), &pool); err != nil {
		return nil, err
	}
	pool.client = s.client
	return &pool, nil
}

// Delete removes a pool. Requires authentication (and janitor rights on
// the server side).
func (s *Pools) Delete(ctx context.Context, id int64) error {
	if err := s.client.requireAuth("Pools.Delete"); err != nil {
		return err
	}
	return s.client.del(ctx, fmt.Sprintf("/pools/%d.json", id), "", nil)
}

// Revert restores a pool to a previous version from its history.
// Requires authentication.
func (s *Pools) Revert(ctx context.Context, id, versionID int64) error {
	if err := s.client.requireAuth("Pools.Revert"); err != nil {
		return err
	}
	qs := (&Form{}).Add("version_id", versionID)
	return s.client.put(ctx, fmt.Sprintf("/pools/%d/revert.json", id), qs.Encode(), nil)
}

// SearchHistory lists pool version entries.
func (s *Pools) SearchHistory(ctx context.Context, opts SearchPoolHistoryOptions) ([]*PoolHistory, error) {
	qs := &Form{}
	if opts.Pool != 0 {
		qs.Add("search[pool_id]", opts.Pool)
	}
	if opts.Page != "" {
		qs.Add("page", opts.Page)
	}
	if opts.Limit > 0 {
		qs.Add("limit", opts.Limit)
	}
	var res []*PoolHistory
	if err := s.client.get(ctx, "/pool_versions.json?"+qs.Encode(), &res); err != nil {
		return nil, err
	}
	for _, h := range res {
		h.client = s.client
	}
	return res, nil
}

// AddPosts appends posts to a pool. The server has no incremental
// endpoint for pools, so this reads the current post list and submits it
// back with the additions; concurrent writers can lose updates, callers
// needing atomicity must serialize. Requires authentication.
func (s *Pools) AddPosts(ctx context.Context, id int64, postIDs ...int64) (*Pool, error) {
	if err := s.client.requireAuth("Pools.AddPosts"); err != nil {
		return nil, err
	}
	old, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if old == nil {
		return nil, fmt.Errorf("pool %d does not exist", id)
	}
	return s.Modify(ctx, id, ModifyPoolOptions{Posts: append(old.PostIDs, postIDs...)})
}

// RemovePosts removes posts from a pool via the same read-modify-write
// cycle as AddPosts. Requires authentication.
func (s *Pools) RemovePosts(ctx context.Context, id int64, postIDs ...int64) (*Pool, error) {
	if err := s.client.requireAuth("Pools.RemovePosts"); err != nil {
		return nil, err
	}
	old, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if old == nil {
		return nil, fmt.Errorf("pool %d does not exist", id)
	}
	remove := make(map[int64]bool, len(postIDs))
	for _, p := range postIDs {
		remove[p] = true
	}
	var keep []int64
	for _, p := range old.PostIDs {
		if !remove[p] {
			keep = append(keep, p)
		}
	}
	return s.Modify(ctx, id, ModifyPoolOptions{Posts: keep})
}

// joinIDs renders ids separated by sep.
func joinIDs(ids []int64, sep string) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return strings.Join(parts, sep)
}
