package e621

import (
	"context"
	"fmt"
)

// SearchPostSetsOrder picks the sort order of a set search.
type SearchPostSetsOrder string

const (
	PostSetOrderName      SearchPostSetsOrder = "name"
	PostSetOrderShortname SearchPostSetsOrder = "shortname"
	PostSetOrderPostCount SearchPostSetsOrder = "postcount"
	PostSetOrderCreatedAt SearchPostSetsOrder = "created_at"
	PostSetOrderUpdate    SearchPostSetsOrder = "update"
)

// PostSets exposes the post set endpoints. Unlike pools, sets have
// server-side add and remove endpoints.
type PostSets struct {
	client *Client
}

// PostSet is a user-curated collection of posts.
type PostSet struct {
	client *Client

	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	Shortname        string  `json:"shortname"`
	Description      string  `json:"description"`
	IsPublic         bool    `json:"is_public"`
	TransferOnDelete bool    `json:"transfer_on_delete"`
	CreatorID        int64   `json:"creator_id"`
	PostIDs          []int64 `json:"post_ids"`
	PostCount        int     `json:"post_count"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

// Creator fetches the user that created this set.
func (s *PostSet) Creator(ctx context.Context) (*User, error) {
	return s.client.Users.Get(ctx, s.CreatorID)
}

// Posts fetches the post objects contained in this set.
func (s *PostSet) Posts(ctx context.Context) ([]*Post, error) {
	return s.client.Posts.Search(ctx, SearchPostsOptions{
		Tags: []string{"set:" + s.Shortname},
	})
}

// AddPosts adds posts to this set.
func (s *PostSet) AddPosts(ctx context.Context, postIDs ...int64) (*PostSet, error) {
	return s.client.PostSets.AddPosts(ctx, s.ID, postIDs...)
}

// RemovePosts removes posts from this set.
func (s *PostSet) RemovePosts(ctx context.Context, postIDs ...int64) (*PostSet, error) {
	return s.client.PostSets.RemovePosts(ctx, s.ID, postIDs...)
}

// Modify edits this set.
func (s *PostSet) Modify(ctx context.Context, opts ModifyPostSetOptions) (*PostSet, error) {
	return s.client.PostSets.Modify(ctx, s.ID, opts)
}

// Delete removes this set.
func (s *PostSet) Delete(ctx context.Context) error {
	return s.client.PostSets.Delete(ctx, s.ID)
}

// SearchPostSetsOptions narrows a set search.
type SearchPostSetsOptions struct {
	Name      string
	Shortname string
	Username  string
	Order     SearchPostSetsOrder
	Page      string
	Limit     int
}

// CreatePostSetOptions describes a new set. Name and Shortname are
// required. TransferOnDeletion replaces deleted posts with their parents
// instead of dropping them.
type CreatePostSetOptions struct {
	Name               string
	Shortname          string
	Description        string
	Public             *bool
	TransferOnDeletion *bool
}

// ModifyPostSetOptions describes a set edit.
type ModifyPostSetOptions struct {
	Name               string
	Shortname          string
	Description        string
	Public             *bool
	TransferOnDeletion *bool
}

// Get fetches a set by id. Missing sets resolve to (nil, nil).
func (s *PostSets) Get(ctx context.Context, id int64) (*PostSet, error) {
	var set PostSet
	if err := s.client.get(ctx, fmt.Sprintf("/post_sets/%d.json", id), &set); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	set.client = s.client
	return &set, nil
}

// GetByName fetches the first set whose name matches, or (nil, nil).
func (s *PostSets) GetByName(ctx context.Context, name string) (*PostSet, error) {
	res, err := s.Search(ctx, SearchPostSetsOptions{Name: name, Limit: 1})
	if err != nil || len(res) == 0 {
		return nil, err
	}
	return res[0], nil
}

// GetByShortName fetches the first set whose short name matches, or
// (nil, nil).
func (s *PostSets) GetByShortName(ctx context.Context, shortname string) (*PostSet, error) {
	res, err := s.Search(ctx, SearchPostSetsOptions{Shortname: shortname, Limit: 1})
	if err != nil || len(res) == 0 {
		return nil, err
	}
	return res[0], nil
}

// Search lists sets. An empty result comes back as an object rather than
// an array, which decodes to no entries.
func (s *PostSets) Search(ctx context.Context, opts SearchPostSetsOptions) ([]*PostSet, error) {
	qs := &Form{}
	if opts.Name != "" {
		qs.Add("search[name]", opts.Name)
	}
	if opts.Shortname != "" {
		qs.Add("search[shortname]", opts.Shortname)
	}
	if opts.Username != "" {
		qs.Add("search[creator_name]", opts.Username)
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
	var res []*PostSet
	if err := s.client.getList(ctx, "/post_sets.json?"+qs.Encode(), &res); err != nil {
		return nil, err
	}
	for _, set := range res {
		set.client = s.client
	}
	return res, nil
}

// Create makes a new set. Requires authentication.
func (s *PostSets) Create(ctx context.Context, opts CreatePostSetOptions) (*PostSet, error) {
	if err := s.client.requireAuth("PostSets.Create"); err != nil {
		return nil, err
	}
	if opts.Name == "" {
		return nil, fmt.Errorf("Name is required")
	}
	if opts.Shortname == "" {
		return nil, fmt.Errorf("Shortname is required")
	}
	qs := (&Form{}).
		Add("post_set[name]", opts.Name).
		Add("post_set[shortname]", opts.Shortname)
	if opts.Description != "" {
		qs.Add("post_set[description]", opts.Description)
	}
	if opts.Public != nil {
		qs.Add("post_set[is_public]", *opts.Public)
	}
	if opts.TransferOnDeletion != nil {
		qs.Add("post_set[transfer_on_delete]", *opts.TransferOnDeletion)
	}
	var set PostSet
	if err := s.client.post(ctx, "/post_sets.json", qs.Encode(), &set); err != nil {
		return nil, err
	}
	set.client = s.client
	return &set, nil
}

// Modify edits a set and returns its updated form. Requires
// authentication.
func (s *PostSets) Modify(ctx context.Context, id int64, opts ModifyPostSetOptions) (*PostSet, error) {
	if err := s.client.requireAuth("PostSets.Modify"); err != nil {
		return nil, err
	}
	qs := &Form{}
	if opts.Name != "" {
		qs.Add("post_set[name]", opts.Name)
	}
	if opts.Shortname != "" {
		qs.Add("post_set[shortname]", opts.Shortname)
	}
	if opts.Description != "" {
		qs.Add("post_set[description]", opts.Description)
	}
	if opts.Public != nil {
		qs.Add("post_set[is_public]", *opts.Public)
	}
	if opts.TransferOnDeletion != nil {
		qs.Add("post_set[transfer_on_delete]", *opts.TransferOnDeletion)
	}
	var set PostSet
	if err := s.client.patch(ctx, fmt.Sprintf("/post_sets/%d.json", id), qs.Encode(), &set); err != nil {
		return nil, err
	}
	set.client = s.client
	return &set, nil
}

// Delete removes a set. Requires authentication.
func (s *PostSets) Delete(ctx context.Context, id int64) error {
	if err := s.client.requireAuth("PostSets.Delete"); err != nil {
		return err
	}
	return s.client.del(ctx, fmt.Sprintf("/post_sets/%d.json", id), "", nil)
}

// AddPosts adds posts to a set through the server-side endpoint and
// returns the updated set. Requires authentication.
func (s *PostSets) AddPosts(ctx context.Context, id int64, postIDs ...int64) (*PostSet, error) {
	if err := s.client.requireAuth("PostSets.AddPosts"); err != nil {
		return nil, err
	}
	return s.editPosts(ctx, fmt.Sprintf("/post_sets/%d/add_posts.json", id), postIDs)
}

// RemovePosts removes posts from a set through the server-side endpoint
// and returns the updated set. Requires authentication.
func (s *PostSets) RemovePosts(ctx context.Context, id int64, postIDs ...int64) (*PostSet, error) {
	if err := s.client.requireAuth("PostSets.RemovePosts"); err != nil {
		return nil, err
	}
	return s.editPosts(ctx, fmt.Sprintf("/post_sets/%d/remove_posts.json", id), postIDs)
}

func (s *PostSets) editPosts(ctx context.Context, path string, postIDs []int64) (*PostSet, error) {
	qs := &Form{}
	for _, p := range postIDs {
		qs.Add("post_ids[]", p)
	}
	var set PostSet
	if err := s.client.post(ctx, path, qs.Encode(), &set); err != nil {
		return nil, err
	}
	set.client = s.client
	return &set, nil
}
