package e621

import (
	"context"
	"fmt"
	"strings"
)

// PostFlagCategory classifies a flag.
type PostFlagCategory string

const (
	FlagCategoryNormal     PostFlagCategory = "normal"
	FlagCategoryUnapproved PostFlagCategory = "unapproved"
	FlagCategoryDeleted    PostFlagCategory = "deleted"
	FlagCategoryBanned     PostFlagCategory = "banned"
	FlagCategoryDuplicate  PostFlagCategory = "duplicate"
)

// PostFlagReason is one of the server's predefined flagging reasons.
type PostFlagReason string

const (
	FlagReasonDNPArtist         PostFlagReason = "dnp_artist"
	FlagReasonPayContent        PostFlagReason = "pay_content"
	FlagReasonTrace             PostFlagReason = "trace"
	FlagReasonPreviouslyDeleted PostFlagReason = "previously_deleted"
	FlagReasonRealPorn          PostFlagReason = "real_porn"
	FlagReasonCorrupt           PostFlagReason = "corrupt"
	FlagReasonInferior          PostFlagReason = "inferior"
	FlagReasonUser              PostFlagReason = "user"
)

// PostFlags exposes the post flag endpoints.
type PostFlags struct {
	client *Client
}

// PostFlag is a report on a post.
type PostFlag struct {
	client *Client

	ID         int64            `json:"id"`
	CreatedAt  string           `json:"created_at"`
	UpdatedAt  string           `json:"updated_at"`
	PostID     int64            `json:"post_id"`
	Reason     string           `json:"reason"`
	CreatorID  int64            `json:"creator_id"`
	IsResolved bool             `json:"is_resolved"`
	IsDeletion bool             `json:"is_deletion"`
	Category   PostFlagCategory `json:"category"`
}

// Post fetches the flagged post.
func (f *PostFlag) Post(ctx context.Context) (*Post, error) {
	return f.client.Posts.Get(ctx, f.PostID)
}

// Creator fetches the user that raised this flag.
func (f *PostFlag) Creator(ctx context.Context) (*User, error) {
	return f.client.Users.Get(ctx, f.CreatorID)
}

// SearchPostFlagsOptions narrows a flag search. Creator filters need
// janitor rights unless filtering for yourself, IPAddress needs
// moderator rights.
type SearchPostFlagsOptions struct {
	Reason    string
	Tags      []string
	PostID    int64
	Creator   string
	CreatorID int64
	IPAddress string
	Resolved  *bool
	Category  PostFlagCategory
	Page      string
	Limit     int
}

// CreatePostFlagOptions describes a new flag. ParentID names the
// superior or earlier post for the previously_deleted and inferior
// reasons.
type CreatePostFlagOptions struct {
	PostID     int64
	ReasonName PostFlagReason
	ParentID   int64
}

// Get fetches a flag by id. Missing flags resolve to (nil, nil).
func (s *PostFlags) Get(ctx context.Context, id int64) (*PostFlag, error) {
	var flag PostFlag
	if err := s.client.get(ctx, fmt.Sprintf("/post_flags/%d.json", id), &flag); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	flag.client = s.client
	return &flag, nil
}

// Search lists flags.
func (s *PostFlags) Search(ctx context.Context, opts SearchPostFlagsOptions) ([]*PostFlag, error) {
	qs := &Form{}
	if opts.Reason != "" {
		qs.Add("search[reason_matches]", opts.Reason)
	}
	if len(opts.Tags) > 0 {
		qs.Add("search[post_tags_match]", strings.Join(opts.Tags, " "))
	}
	if opts.PostID != 0 {
		qs.Add("search[post_id]", opts.PostID)
	}
	if opts.Creator != "" {
		qs.Add("search[creator_name]", opts.Creator)
	}
	if opts.CreatorID != 0 {
		qs.Add("search[creator_id]", opts.CreatorID)
	}
	if opts.IPAddress != "" {
		qs.Add("search[ip_addr]", opts.IPAddress)
	}
	if opts.Resolved != nil {
		qs.Add("search[is_resolved]", *opts.Resolved)
	}
	if opts.Category != "" {
		qs.Add("search[category]", string(opts.Category))
	}
	if opts.Page != "" {
		qs.Add("page", opts.Page)
	}
	if opts.Limit > 0 {
		qs.Add("limit", opts.Limit)
	}
	var res []*PostFlag
	if err := s.client.getList(ctx, "/post_flags.json?"+qs.Encode(), &res); err != nil {
		return nil, err
	}
	for _, f := range res {
		f.client = s.client
	}
	return res, nil
}

// Create flags a post. Requires authentication.
func (s *PostFlags) Create(ctx context.Context, opts CreatePostFlagOptions) (*PostFlag, error) {
	if err := s.client.requireAuth("PostFlags.Create"); err != nil {
		return nil, err
	}
	if opts.PostID == 0 {
		return nil, fmt.Errorf("PostID is required")
	}
	if opts.ReasonName == "" {
		return nil, fmt.Errorf("ReasonName is required")
	}
	qs := (&Form{}).
		Add("post_flag[post_id]", opts.PostID).
		Add("post_flag[reason_name]", string(opts.ReasonName))
	if opts.ParentID != 0 {
		qs.Add("post_flag[parent_id]", opts.ParentID)
	}
	var flag PostFlag
	if err := s.client.post(ctx, "/post_flags.json", qs.Encode(), &flag); err != nil {
		return nil, err
	}
	flag.client = s.client
	return &flag, nil
}

// Delete resolves (unflags) a post's flag. Requires authentication (and
// janitor rights on the server side).
func (s *PostFlags) Delete(ctx context.Context, postID int64) error {
	if err := s.client.requireAuth("PostFlags.Delete"); err != nil {
		return err
	}
	return s.client.del(ctx, fmt.Sprintf("/post_flags/%d.json", postID), "", nil)
}
