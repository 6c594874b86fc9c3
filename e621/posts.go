package e621

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Rating is a post's content rating.
type Rating string

const (
	RatingSafe         Rating = "s"
	RatingQuestionable Rating = "q"
	RatingExplicit     Rating = "e"
)

// Posts exposes the post endpoints: lookup, search, upload, editing,
// voting, version history, and approvals.
type Posts struct {
	client *Client
}

// PostFile describes a post's original file.
type PostFile struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Ext    string `json:"ext"`
	Size   int64  `json:"size"`
	MD5    string `json:"md5"`
	URL    string `json:"url"`
}

// PostPreview describes a post's preview rendition.
type PostPreview struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	URL    string `json:"url"`
}

// PostSampleAlternate is an alternate encoding of a sample, used for
// videos.
type PostSampleAlternate struct {
	Type   string   `json:"type"`
	Height int      `json:"height"`
	Width  int      `json:"width"`
	URLs   []string `json:"urls"`
}

// PostSample describes a post's sample rendition.
type PostSample struct {
	Has        bool                           `json:"has"`
	Height     int                            `json:"height"`
	Width      int                            `json:"width"`
	URL        string                         `json:"url"`
	Alternates map[string]PostSampleAlternate `json:"alternates"`
}

// PostScore is a post's vote tally.
type PostScore struct {
	Up    int `json:"up"`
	Down  int `json:"down"`
	Total int `json:"total"`
}

// PostTags groups a post's tags by category.
type PostTags struct {
	General   []string `json:"general"`
	Species   []string `json:"species"`
	Character []string `json:"character"`
	Copyright []string `json:"copyright"`
	Artist    []string `json:"artist"`
	Invalid   []string `json:"invalid"`
	Lore      []string `json:"lore"`
	Meta      []string `json:"meta"`
}

// All returns the tags of every category as one slice.
func (t PostTags) All() []string {
	var out []string
	for _, group := range [][]string{t.General, t.Species, t.Character, t.Copyright, t.Artist, t.Invalid, t.Lore, t.Meta} {
		out = append(out, group...)
	}
	return out
}

// PostStatusFlags is a post's moderation state.
type PostStatusFlags struct {
	Pending      bool `json:"pending"`
	Flagged      bool `json:"flagged"`
	NoteLocked   bool `json:"note_locked"`
	StatusLocked bool `json:"status_locked"`
	RatingLocked bool `json:"rating_locked"`
	Deleted      bool `json:"deleted"`
}

// PostRelationships links a post to its parent and children.
type PostRelationships struct {
	ParentID          *int64  `json:"parent_id"`
	HasChildren       bool    `json:"has_children"`
	HasActiveChildren bool    `json:"has_active_children"`
	Children          []int64 `json:"children"`
}

// Post is a single imageboard submission. Image URLs the API nulled out
// (blacklisted by the server, or deleted) are repaired during fetch, so
// they are always browsable.
type Post struct {
	client *Client

	ID            int64             `json:"id"`
	CreatedAt     string            `json:"created_at"`
	UpdatedAt     string            `json:"updated_at"`
	File          PostFile          `json:"file"`
	Preview       PostPreview       `json:"preview"`
	Sample        PostSample        `json:"sample"`
	Score         PostScore         `json:"score"`
	Tags          PostTags          `json:"tags"`
	LockedTags    []string          `json:"locked_tags"`
	ChangeSeq     int64             `json:"change_seq"`
	Flags         PostStatusFlags   `json:"flags"`
	Rating        Rating            `json:"rating"`
	FavCount      int               `json:"fav_count"`
	Sources       []string          `json:"sources"`
	Pools         []int64           `json:"pools"`
	Relationships PostRelationships `json:"relationships"`
	ApproverID    *int64            `json:"approver_id"`
	UploaderID    int64             `json:"uploader_id"`
	Description   string            `json:"description"`
	CommentCount  int               `json:"comment_count"`
	IsFavorited   bool              `json:"is_favorited"`
	HasNotes      bool              `json:"has_notes"`
	Duration      *float64          `json:"duration"`
}

// HasTag reports whether the tag appears in any category.
func (p *Post) HasTag(tag string) bool {
	for _, t := range p.Tags.All() {
		if t == tag {
			return true
		}
	}
	return false
}

// bind installs the client reference and repairs null image URLs. Deleted
// posts resolve to the instance's placeholder; everything else goes
// through static URL reconstruction.
func (p *Post) bind(c *Client) error {
	p.client = c
	repair := func(kind Rendition) (string, error) {
		if p.Flags.Deleted {
			return c.DeletedImageURL(), nil
		}
		return c.ReconstructURL(p.File.MD5, kind, p.File.Ext)
	}
	var err error
	if p.File.URL == "" {
		if p.File.URL, err = repair(RenditionOriginal); err != nil {
			return err
		}
	}
	if p.Preview.URL == "" {
		if p.Preview.URL, err = repair(RenditionPreview); err != nil {
			return err
		}
	}
	if p.Sample.Has && p.Sample.URL == "" {
		if p.Sample.URL, err = repair(RenditionSample); err != nil {
			return err
		}
	}
	return nil
}

// Uploader fetches the user that uploaded this post.
func (p *Post) Uploader(ctx context.Context) (*User, error) {
	return p.client.Users.Get(ctx, p.UploaderID)
}

// Approver fetches the user that approved this post, or nil for
// self-approved posts.
func (p *Post) Approver(ctx context.Context) (*User, error) {
	if p.ApproverID == nil {
		return nil, nil
	}
	return p.client.Users.Get(ctx, *p.ApproverID)
}

// AddToPool appends this post to the pool.
func (p *Post) AddToPool(ctx context.Context, poolID int64) (*Pool, error) {
	return p.client.Pools.AddPosts(ctx, poolID, p.ID)
}

// RemoveFromPool removes this post from the pool.
func (p *Post) RemoveFromPool(ctx context.Context, poolID int64) (*Pool, error) {
	return p.client.Pools.RemovePosts(ctx, poolID, p.ID)
}

// AddToSet adds this post to the set.
func (p *Post) AddToSet(ctx context.Context, setID int64) (*PostSet, error) {
	return p.client.PostSets.AddPosts(ctx, setID, p.ID)
}

// RemoveFromSet removes this post from the set.
func (p *Post) RemoveFromSet(ctx context.Context, setID int64) (*PostSet, error) {
	return p.client.PostSets.RemovePosts(ctx, setID, p.ID)
}

// Modify edits this post.
func (p *Post) Modify(ctx context.Context, opts ModifyPostOptions) (*Post, error) {
	return p.client.Posts.Modify(ctx, p.ID, opts)
}

// Vote votes on this post, up or down.
func (p *Post) Vote(ctx context.Context, up bool) (*PostVoteResult, error) {
	return p.client.Posts.Vote(ctx, p.ID, up)
}

// SearchPostsOptions narrows a post search. Page accepts a page number,
// "a<id>" for posts after the id, or "b<id>" for posts before it.
type SearchPostsOptions struct {
	Tags  []string
	Page  string
	Limit int
}

// CreatePostOptions describes an upload. Exactly one of File or FileURL
// should be set; FileURL wins when both are present. Sources is required
// by the backend, even when empty.
type CreatePostOptions struct {
	Tags            []string
	Rating          Rating
	Sources         []string
	Description     string
	ParentID        int64
	RefererURL      string
	MD5Confirmation string
	AsPending       *bool
	RatingLocked    *bool
	LockedTags      []string
	File            []byte
	FileURL         string
}

// ModifyPostOptions describes a post edit. Tag and source changes are
// expressed as add/remove deltas rather than replacement lists.
type ModifyPostOptions struct {
	EditReason        string
	AddTags           []string
	RemoveTags        []string
	AddSources        []string
	RemoveSources     []string
	Rating            Rating
	Description       *string
	ParentID          int64
	HasEmbeddedNotes  *bool
	RatingLocked      *bool
	NoteLocked        *bool
	StatusLocked      *bool
	HideFromAnonymous *bool
	HideFromSearch    *bool
	BackgroundColor   string
	LockedTags        []string
}

// SearchPostHistoryOptions narrows a post version search.
type SearchPostHistoryOptions struct {
	ID                int64
	User              string
	UserID            int64
	Post              int64
	Reason            string
	Description       string
	RatingChangedTo   Rating
	FinalRating       Rating
	Parent            int64
	ParentChangedTo   int64
	FinalTags         []string
	AddedTags         []string
	RemovedTags       []string
	FinalLockedTags   []string
	AddedLockedTags   []string
	RemovedLockedTags []string
	Source            string
	Page              string
	Limit             int
}

// SearchPostApprovalsOptions narrows an approval search.
type SearchPostApprovalsOptions struct {
	ID       int64
	Approver string
	Tags     []string
	Page     string
	Limit    int
}

// PostVoteResult is the tally after a vote, including the caller's own
// score.
type PostVoteResult struct {
	Score    int `json:"score"`
	Up       int `json:"up"`
	Down     int `json:"down"`
	OurScore int `json:"our_score"`
}

// PostHistory is one entry of a post's version history.
type PostHistory struct {
	client *Client

	ID                  int64    `json:"id"`
	PostID              int64    `json:"post_id"`
	Tags                string   `json:"tags"`
	UpdaterID           *int64   `json:"updater_id"`
	UpdaterName         string   `json:"updater_name"`
	UpdatedAt           string   `json:"updated_at"`
	Rating              Rating   `json:"rating"`
	ParentID            *int64   `json:"parent_id"`
	Source              string   `json:"source"`
	Description         string   `json:"description"`
	Reason              string   `json:"reason"`
	LockedTags          string   `json:"locked_tags"`
	AddedTags           []string `json:"added_tags"`
	RemovedTags         []string `json:"removed_tags"`
	AddedLockedTags     []string `json:"added_locked_tags"`
	RemovedLockedTags   []string `json:"removed_locked_tags"`
	RatingChanged       bool     `json:"rating_changed"`
	ParentChanged       bool     `json:"parent_changed"`
	SourceChanged       bool     `json:"source_changed"`
	DescriptionChanged  bool     `json:"description_changed"`
	Version             int      `json:"version"`
	ObsoleteAddedTags   string   `json:"obsolete_added_tags"`
	ObsoleteRemovedTags string   `json:"obsolete_removed_tags"`
	UnchangedTags       string   `json:"unchanged_tags"`
}

// Updater fetches the user that made this edit, or nil for system edits.
func (h *PostHistory) Updater(ctx context.Context) (*User, error) {
	if h.UpdaterID == nil {
		return nil, nil
	}
	return h.client.Users.Get(ctx, *h.UpdaterID)
}

// Post fetches the post this entry belongs to.
func (h *PostHistory) Post(ctx context.Context) (*Post, error) {
	return h.client.Posts.Get(ctx, h.PostID)
}

// RevertTo reverts the post to this version.
func (h *PostHistory) RevertTo(ctx context.Context) error {
	return h.client.Posts.Revert(ctx, h.PostID, h.ID)
}

// PostApproval is one entry of the approval log.
type PostApproval struct {
	client *Client

	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	PostID    int64  `json:"post_id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// Post fetches the approved post.
func (a *PostApproval) Post(ctx context.Context) (*Post, error) {
	return a.client.Posts.Get(ctx, a.PostID)
}

// Approver fetches the approving user.
func (a *PostApproval) Approver(ctx context.Context) (*User, error) {
	return a.client.Users.Get(ctx, a.UserID)
}

// Get fetches a post by id. Missing posts resolve to (nil, nil).
func (s *Posts) Get(ctx context.Context, id int64) (*Post, error) {
	var res struct {
		Post *Post `json:"post"`
	}
	if err := s.client.get(ctx, fmt.Sprintf("/posts/%d.json", id), &res); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if err := res.Post.bind(s.client); err != nil {
		return nil, err
	}
	return res.Post, nil
}

// GetByMD5 fetches a post by the md5 of its file. Missing posts resolve
// to (nil, nil).
func (s *Posts) GetByMD5(ctx context.Context, md5 string) (*Post, error) {
	if err := validateMD5(md5); err != nil {
		return nil, err
	}
	var res struct {
		Post *Post `json:"post"`
	}
	if err := s.client.get(ctx, "/posts.json?md5="+md5, &res); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if err := res.Post.bind(s.client); err != nil {
		return nil, err
	}
	return res.Post, nil
}

// Search lists posts matching the given tags. At most 40 tags and a
// limit of at most 320 are accepted. Posts matching the client's
// blacklist are dropped from the result.
func (s *Posts) Search(ctx context.Context, opts SearchPostsOptions) ([]*Post, error) {
	if len(opts.Tags) > 40 {
		return nil, fmt.Errorf("post search accepts at most 40 tags, got %d", len(opts.Tags))
	}
	if opts.Limit > 320 {
		return nil, fmt.Errorf("post search accepts a limit of at most 320, got %d", opts.Limit)
	}
	qs := &Form{}
	if len(opts.Tags) > 0 {
		qs.Add("tags", strings.Join(opts.Tags, " "))
	}
	if opts.Page != "" {
		qs.Add("page", opts.Page)
	}
	if opts.Limit > 0 {
		qs.Add("limit", opts.Limit)
	}
	var res struct {
		Posts []*Post `json:"posts"`
	}
	if err := s.client.get(ctx, "/posts.json?"+qs.Encode(), &res); err != nil {
		return nil, err
	}
	out := res.Posts[:0]
	for _, p := range res.Posts {
		if s.client.blacklisted(p) {
			continue
		}
		if err := p.bind(s.client); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// SearchAll walks pages of search results using the before-id cursor,
// calling fn for each batch until fn returns false, the results run out,
// or the context ends.
func (s *Posts) SearchAll(ctx context.Context, opts SearchPostsOptions, fn func([]*Post) bool) error {
	for {
		posts, err := s.Search(ctx, opts)
		if err != nil {
			return err
		}
		if len(posts) == 0 {
			return nil
		}
		if !fn(posts) {
			return nil
		}
		opts.Page = fmt.Sprintf("b%d", posts[len(posts)-1].ID)
	}
}

func buildUploadForm(opts CreatePostOptions) *Form {
	qs := &Form{}
	if len(opts.Tags) > 0 {
		qs.Add("upload[tag_string]", strings.Join(opts.Tags, " "))
	}
	// The backend rejects uploads without a source field, even an empty one.
	qs.Add("upload[source]", strings.Join(opts.Sources, "\n"))
	if len(opts.LockedTags) > 0 {
		qs.Add("upload[locked_tags]", strings.Join(opts.LockedTags, "\n"))
	}
	if opts.Rating != "" {
		qs.Add("upload[rating]", string(opts.Rating))
	}
	if opts.Description != "" {
		qs.Add("upload[description]", opts.Description)
	}
	if opts.ParentID != 0 {
		qs.Add("upload[parent_id]", opts.ParentID)
	}
	if opts.RefererURL != "" {
		qs.Add("upload[referer_url]", opts.RefererURL)
	}
	if opts.AsPending != nil {
		qs.Add("upload[as_pending]", *opts.AsPending)
	}
	if opts.MD5Confirmation != "" {
		qs.Add("upload[md5_confirmation]", opts.MD5Confirmation)
	}
	if opts.RatingLocked != nil {
		qs.Add("upload[locked_rating]", *opts.RatingLocked)
	}
	return qs
}

// Create uploads a post from a direct URL or raw file content and
// returns the new post's id. Requires authentication.
func (s *Posts) Create(ctx context.Context, opts CreatePostOptions) (int64, error) {
	if err := s.client.requireAuth("Posts.Create"); err != nil {
		return 0, err
	}
	if opts.FileURL == "" && len(opts.File) == 0 {
		return 0, errors.New("one of File, FileURL is required")
	}
	qs := buildUploadForm(opts)
	var res struct {
		Success  bool   `json:"success"`
		Location string `json:"location"`
		PostID   int64  `json:"post_id"`
	}
	if opts.FileURL != "" {
		qs.Add("upload[direct_url]", opts.FileURL)
		if err := s.client.post(ctx, "/uploads.json", qs.Encode(), &res); err != nil {
			return 0, err
		}
		return res.PostID, nil
	}
	files := []UploadFile{{Field: "upload[file]", Content: opts.File}}
	if err := s.client.doMultipart(ctx, "POST", "/uploads.json", qs, files, &res); err != nil {
		return 0, err
	}
	return res.PostID, nil
}

// negate prefixes every entry with "-", the remove marker of the diff
// syntax.
func negate(items []string) []string {
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = "-" + s
	}
	return out
}

// Modify edits a post and returns its updated form. Requires
// authentication.
func (s *Posts) Modify(ctx context.Context, id int64, opts ModifyPostOptions) (*Post, error) {
	if err := s.client.requireAuth("Posts.Modify"); err != nil {
		return nil, err
	}
	qs := &Form{}
	var tagDiff, sourceDiff []string
	if len(opts.AddTags) > 0 {
		tagDiff = append(tagDiff, strings.Join(opts.AddTags, " "))
	}
	if len(opts.RemoveTags) > 0 {
		tagDiff = append(tagDiff, strings.Join(negate(opts.RemoveTags), " "))
	}
	if len(opts.AddSources) > 0 {
		sourceDiff = append(sourceDiff, opts.AddSources...)
	}
	if len(opts.RemoveSources) > 0 {
		sourceDiff = append(sourceDiff, negate(opts.RemoveSources)...)
	}
	if len(tagDiff) > 0 {
		qs.Add("post[tag_string_diff]", strings.Join(tagDiff, "\n"))
	}
	if len(sourceDiff) > 0 {
		qs.Add("post[source_diff]", strings.Join(sourceDiff, "\n"))
	}
	if len(opts.LockedTags) > 0 {
		qs.Add("post[locked_tags]", strings.Join(opts.LockedTags, "\n"))
	}
	if opts.Rating != "" {
		qs.Add("post[rating]", string(opts.Rating))
	}
	if opts.Description != nil {
		qs.Add("post[description]", *opts.Description)
	}
	if opts.ParentID != 0 {
		qs.Add("post[parent_id]", opts.ParentID)
	}
	if opts.HasEmbeddedNotes != nil {
		qs.Add("post[has_embedded_notes]", *opts.HasEmbeddedNotes)
	}
	if opts.RatingLocked != nil {
		qs.Add("post[is_rating_locked]", *opts.RatingLocked)
	}
	if opts.NoteLocked != nil {
		qs.Add("post[is_note_locked]", *opts.NoteLocked)
	}
	if opts.StatusLocked != nil {
		qs.Add("post[is_status_locked]", *opts.StatusLocked)
	}
	if opts.HideFromAnonymous != nil {
		qs.Add("post[hide_from_anonymous]", *opts.HideFromAnonymous)
	}
	if opts.HideFromSearch != nil {
		qs.Add("post[hide_from_search_engines]", *opts.HideFromSearch)
	}
	if opts.BackgroundColor != "" {
		qs.Add("post[bg_color]", opts.BackgroundColor)
	}
	if opts.EditReason != "" {
		qs.Add("post[edit_reason]", opts.EditReason)
	}
	var res struct {
		Post *Post `json:"post"`
	}
	if err := s.client.patch(ctx, fmt.Sprintf("/posts/%d.json", id), qs.Encode(), &res); err != nil {
		return nil, err
	}
	if err := res.Post.bind(s.client); err != nil {
		return nil, err
	}
	return res.Post, nil
}

// Revert restores a post to a previous version from its history.
// Requires authentication.
func (s *Posts) Revert(ctx context.Context, id, versionID int64) error {
	if err := s.client.requireAuth("Posts.Revert"); err != nil {
		return err
	}
	qs := (&Form{}).Add("version_id", versionID)
	return s.client.put(ctx, fmt.Sprintf("/posts/%d/revert.json", id), qs.Encode(), nil)
}

// GetHistory fetches a single version entry by id, or (nil, nil) when it
// does not exist.
func (s *Posts) GetHistory(ctx context.Context, id int64) (*PostHistory, error) {
	res, err := s.SearchHistory(ctx, SearchPostHistoryOptions{ID: id})
	if err != nil || len(res) == 0 {
		return nil, err
	}
	return res[0], nil
}

// SearchHistory lists post version entries. Requires authentication.
func (s *Posts) SearchHistory(ctx context.Context, opts SearchPostHistoryOptions) ([]*PostHistory, error) {
	if err := s.client.requireAuth("Posts.SearchHistory"); err != nil {
		return nil, err
	}
	qs := &Form{}
	if opts.ID != 0 {
		qs.Add("search[id]", opts.ID)
	}
	if opts.User != "" {
		qs.Add("search[updater_name]", opts.User)
	}
	if opts.UserID != 0 {
		qs.Add("search[updater_id]", opts.UserID)
	}
	if opts.Post != 0 {
		qs.Add("search[post_id]", opts.Post)
	}
	if opts.Reason != "" {
		qs.Add("search[reason]", opts.Reason)
	}
	if opts.Description != "" {
		qs.Add("search[description]", opts.Description)
	}
	if opts.RatingChangedTo != "" {
		qs.Add("search[rating_changed]", string(opts.RatingChangedTo))
	}
	if opts.FinalRating != "" {
		qs.Add("search[rating]", string(opts.FinalRating))
	}
	if opts.Parent != 0 {
		qs.Add("search[parent_id]", opts.Parent)
	}
	if opts.ParentChangedTo != 0 {
		qs.Add("search[parent_id_changed]", opts.ParentChangedTo)
	}
	if len(opts.FinalTags) > 0 {
		qs.Add("search[tags]", strings.Join(opts.FinalTags, " "))
	}
	if len(opts.AddedTags) > 0 {
		qs.Add("search[tags_added]", strings.Join(opts.AddedTags, " "))
	}
	if len(opts.RemovedTags) > 0 {
		qs.Add("search[tags_removed]", strings.Join(opts.RemovedTags, " "))
	}
	if len(opts.FinalLockedTags) > 0 {
		qs.Add("search[locked_tags]", strings.Join(opts.FinalLockedTags, " "))
	}
	if len(opts.AddedLockedTags) > 0 {
		qs.Add("search[locked_tags_added]", strings.Join(opts.AddedLockedTags, " "))
	}
	if len(opts.RemovedLockedTags) > 0 {
		qs.Add("search[locked_tags_removed]", strings.Join(opts.RemovedLockedTags, " "))
	}
	if opts.Source != "" {
		qs.Add("search[source]", opts.Source)
	}
	if opts.Page != "" {
		qs.Add("page", opts.Page)
	}
	if opts.Limit > 0 {
		qs.Add("limit", opts.Limit)
	}
	var res []*PostHistory
	if err := s.client.get(ctx, "/post_versions.json?"+qs.Encode(), &res); err != nil {
		return nil, err
	}
	for _, h := range res {
		h.client = s.client
	}
	return res, nil
}

// Vote votes a post up or down and returns the updated tally. Voting the
// same way twice removes the vote. Requires authentication.
func (s *Posts) Vote(ctx context.Context, id int64, up bool) (*PostVoteResult, error) {
	if err := s.client.requireAuth("Posts.Vote"); err != nil {
		return nil, err
	}
	score := -1
	if up {
		score = 1
	}
	qs := (&Form{}).Add("score", score)
	var res PostVoteResult
	if err := s.client.post(ctx, fmt.Sprintf("/posts/%d/votes.json", id), qs.Encode(), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetApproval fetches a single approval entry by id, or (nil, nil) when
// it does not exist.
func (s *Posts) GetApproval(ctx context.Context, id int64) (*PostApproval, error) {
	res, err := s.SearchApprovals(ctx, SearchPostApprovalsOptions{ID: id})
	if err != nil || len(res) == 0 {
		return nil, err
	}
	return res[0], nil
}

// SearchApprovals lists approval log entries. An empty result comes back
// as an object rather than an array, which decodes to no entries.
func (s *Posts) SearchApprovals(ctx context.Context, opts SearchPostApprovalsOptions) ([]*PostApproval, error) {
	qs := &Form{}
	if opts.ID != 0 {
		qs.Add("search[id]", opts.ID)
	}
	if opts.Approver != "" {
		qs.Add("search[user_name]", opts.Approver)
	}
	if len(opts.Tags) > 0 {
		qs.Add("search[post_tags_match]", strings.Join(opts.Tags, " "))
	}
	if opts.Page != "" {
		qs.Add("page", opts.Page)
	}
	if opts.Limit > 0 {
		qs.Add("limit", opts.Limit)
	}
	var res []*PostApproval
	if err := s.client.getList(ctx, "/post_approvals.json?"+qs.Encode(), &res); err != nil {
		return nil, err
	}
	for _, a := range res {
		a.client = s.client
	}
	return res, nil
}
