package e621

import (
	"context"
	"fmt"
)

// Tag categories.
const (
	TagCategoryGeneral   = 0
	TagCategoryArtist    = 1
	TagCategoryCopyright = 3
	TagCategoryCharacter = 4
	TagCategorySpecies   = 5
	TagCategoryInvalid   = 6
	TagCategoryMeta      = 7
	TagCategoryLore      = 8
)

// SearchTagsOrder picks the sort order of a tag search.
type SearchTagsOrder string

const (
	TagOrderDate  SearchTagsOrder = "date"
	TagOrderCount SearchTagsOrder = "count"
	TagOrderName  SearchTagsOrder = "name"
)

// Tags exposes the tag endpoints.
type Tags struct {
	client *Client
}

// Tag is a single tag with its usage count and category.
type Tag struct {
	client *Client

	ID                   int64  `json:"id"`
	Name                 string `json:"name"`
	CreatedAt            string `json:"created_at"`
	UpdatedAt            string `json:"updated_at"`
	CreatorID            int64  `json:"creator_id"`
	PostCount            int    `json:"post_count"`
	Category             int    `json:"category"`
	RelatedTags          string `json:"related_tags"`
	RelatedTagsUpdatedAt string `json:"related_tags_updated_at"`
	IsLocked             bool   `json:"is_locked"`
}

// Posts searches posts carrying this tag, combined with any extra search
// options.
func (t *Tag) Posts(ctx context.Context, opts SearchPostsOptions) ([]*Post, error) {
	opts.Tags = append([]string{t.Name}, opts.Tags...)
	return t.client.Posts.Search(ctx, opts)
}

// Modify edits this tag.
func (t *Tag) Modify(ctx context.Context, opts ModifyTagOptions) (*Tag, error) {
	return t.client.Tags.Modify(ctx, t.ID, opts)
}

// History lists this tag's type change entries.
func (t *Tag) History(ctx context.Context, opts SearchTagHistoryOptions) ([]*TagHistory, error) {
	opts.Tag = t.Name
	return t.client.Tags.SearchHistory(ctx, opts)
}

// TagHistory is one entry of a tag's type change log.
type TagHistory struct {
	client *Client

	ID        int64  `json:"id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
	OldType   int    `json:"old_type"`
	NewType   int    `json:"new_type"`
	IsLocked  bool   `json:"is_locked"`
	TagID     int64  `json:"tag_id"`
	CreatorID int64  `json:"creator_id"`
}

// Creator fetches the user that made this change.
func (h *TagHistory) Creator(ctx context.Context) (*User, error) {
	return h.client.Users.Get(ctx, h.CreatorID)
}

// Tag fetches the tag this entry belongs to.
func (h *TagHistory) Tag(ctx context.Context) (*Tag, error) {
	return h.client.Tags.Get(ctx, h.TagID)
}

// SearchTagsOptions narrows a tag search. Category is a pointer so the
// zero category (general) stays expressible.
type SearchTagsOptions struct {
	Name      string
	Category  *int
	HideEmpty *bool
	HasWiki   *bool
	HasArtist *bool
	Order     SearchTagsOrder
	Page      string
	Limit     int
}

// ModifyTagOptions describes a tag edit.
type ModifyTagOptions struct {
	Category *int
	Locked   *bool
}

// SearchTagHistoryOptions narrows a tag type change search.
type SearchTagHistoryOptions struct {
	Tag      string
	UserName string
	UserID   int64
	Page     string
	Limit    int
}

// Get fetches a tag by id. Missing tags resolve to (nil, nil).
func (s *Tags) Get(ctx context.Context, id int64) (*Tag, error) {
	var tag Tag
	if err := s.client.get(ctx, fmt.Sprintf("/tags/%d.json", id), &tag); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	tag.client = s.client
	return &tag, nil
}

// GetByName fetches the first tag whose name matches, or (nil, nil).
func (s *Tags) GetByName(ctx context.Context, name string) (*Tag, error) {
	res, err := s.Search(ctx, SearchTagsOptions{Name: name, Limit: 1})
	if err != nil || len(res) == 0 {
		return nil, err
	}
	return res[0], nil
}

// Search lists tags. An empty result comes back as an object rather than
// an array, which decodes to no entries.
func (s *Tags) Search(ctx context.Context, opts SearchTagsOptions) ([]*Tag, error) {
	qs := &Form{}
	if opts.Name != "" {
		qs.Add("search[name_matches]", opts.Name)
	}
	if opts.Category != nil {
		qs.Add("search[category]", *opts.Category)
	}
	if opts.HideEmpty != nil {
		qs.Add("search[hide_empty]", *opts.HideEmpty)
	}
	if opts.HasWiki != nil {
		qs.Add("search[has_wiki]", *opts.HasWiki)
	}
	if opts.HasArtist != nil {
		qs.Add("search[has_artist]", *opts.HasArtist)
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
	var res []*Tag
	if err := s.client.getList(ctx, "/tags.json?"+qs.Encode(), &res); err != nil {
		return nil, err
	}
	for _, t := range res {
		t.client = s.client
	}
	return res, nil
}

// Modify edits a tag and returns its updated form. Requires
// authentication (locking additionally needs moderator rights).
func (s *Tags) Modify(ctx context.Context, id int64, opts ModifyTagOptions) (*Tag, error) {
	if err := s.client.requireAuth("Tags.Modify"); err != nil {
		return nil, err
	}
	qs := &Form{}
	if opts.Category != nil {
		qs.Add("tag[category]", *opts.Category)
	}
	if opts.Locked != nil {
		qs.Add("tag[is_locked]", *opts.Locked)
	}
	var tag Tag
	if err := s.client.put(ctx, fmt.Sprintf("/tags/%d.json", id), qs.Encode(), &tag); err != nil {
		return nil, err
	}
	tag.client = s.client
	return &tag, nil
}

// SearchHistory lists tag type change entries. An empty result comes
// back as an object rather than an array, which decodes to no entries.
func (s *Tags) SearchHistory(ctx context.Context, opts SearchTagHistoryOptions) ([]*TagHistory, error) {
	qs := &Form{}
	if opts.Tag != "" {
		qs.Add("search[tag]", opts.Tag)
	}
	if opts.UserName != "" {
		qs.Add("search[user_name]", opts.UserName)
	}
	if opts.UserID != 0 {
		qs.Add("search[user_id]", opts.UserID)
	}
	if opts.Page != "" {
		qs.Add("page", opts.Page)
	}
	if opts.Limit > 0 {
		qs.Add("limit", opts.Limit)
	}
	var res []*TagHistory
	if err := s.client.getList(ctx, "/tag_type_versions.json?"+qs.Encode(), &res); err != nil {
		return nil, err
	}
	for _, h := range res {
		h.client = s.client
	}
	return res, nil
}
