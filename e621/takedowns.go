package e621

import (
	"context"
	"fmt"
	"strings"
)

// TakedownStatus is a takedown request's processing state.
type TakedownStatus string

const (
	TakedownPending  TakedownStatus = "pending"
	TakedownInactive TakedownStatus = "inactive"
	TakedownDenied   TakedownStatus = "denied"
	TakedownPartial  TakedownStatus = "partial"
	TakedownApproved TakedownStatus = "approved"
)

// SearchTakedownsOrder picks the sort order of a takedown search.
type SearchTakedownsOrder string

const (
	TakedownOrderDate      SearchTakedownsOrder = "date"
	TakedownOrderSource    SearchTakedownsOrder = "source"
	TakedownOrderEmail     SearchTakedownsOrder = "email"
	TakedownOrderIPAddr    SearchTakedownsOrder = "ip_addr"
	TakedownOrderStatus    SearchTakedownsOrder = "status"
	TakedownOrderPostCount SearchTakedownsOrder = "post_count"
)

// Takedowns exposes the takedown request endpoints. The API keeps most
// takedown content private; only the fields below are ever returned.
type Takedowns struct {
	client *Client
}

// Takedown is a content removal request.
type Takedown struct {
	client *Client

	ID           int64          `json:"id"`
	Status       TakedownStatus `json:"status"`
	ApproverID   *int64         `json:"approver_id"`
	ReasonHidden bool           `json:"reason_hidden"`
	CreatedAt    string         `json:"created_at"`
	UpdatedAt    string         `json:"updated_at"`
	PostCount    int            `json:"post_count"`
}

// Approver fetches the user that handled this takedown, or nil when it
// is unhandled.
func (t *Takedown) Approver(ctx context.Context) (*User, error) {
	if t.ApproverID == nil {
		return nil, nil
	}
	return t.client.Users.Get(ctx, *t.ApproverID)
}

// Modify edits this takedown.
func (t *Takedown) Modify(ctx context.Context, opts ModifyTakedownOptions) (*Takedown, error) {
	return t.client.Takedowns.Modify(ctx, t.ID, opts)
}

// Delete removes this takedown.
func (t *Takedown) Delete(ctx context.Context) error {
	return t.client.Takedowns.Delete(ctx, t.ID)
}

// SearchTakedownsOptions narrows a takedown search. Everything except
// Status requires admin rights on the server side.
type SearchTakedownsOptions struct {
	Status        TakedownStatus
	Source        string
	Reason        string
	AdminResponse string
	ReasonHidden  *bool
	Instructions  string
	PostID        int64
	Email         string
	IPAddress     string
	Vericode      string
	Order         SearchTakedownsOrder
	Page          string
	Limit         int
}

// CreateTakedownOptions describes a new takedown request. Source, Email
// and Reason are required. PostIDs and Instructions are mutually
// exclusive; PostIDs wins when both are set.
type CreateTakedownOptions struct {
	Source       string
	Email        string
	PostIDs      []int64
	Instructions string
	Reason       string
	ReasonHidden *bool
}

// ModifyTakedownOptions describes handling a takedown. TakedownPosts
// maps post ids to their verdict, true meaning delete. Status only
// accepts pending or inactive here.
type ModifyTakedownOptions struct {
	ProcessTakedown *bool
	DeleteReason    string
	TakedownPosts   map[int64]bool
	AddPostsTags    []string
	AddPostsIDs     []int64
	Status          TakedownStatus
	Notes           string
	ReasonHidden    *bool
}

// Get fetches a takedown by id. Missing takedowns resolve to (nil, nil).
func (s *Takedowns) Get(ctx context.Context, id int64) (*Takedown, error) {
	var takedown Takedown
	if err := s.client.get(ctx, fmt.Sprintf("/takedowns/%d.json", id), &takedown); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	takedown.client = s.client
	return &takedown, nil
}

// Search lists takedowns.
func (s *Takedowns) Search(ctx context.Context, opts SearchTakedownsOptions) ([]*Takedown, error) {
	qs := &Form{}
	if opts.Status != "" {
		qs.Add("search[status]", string(opts.Status))
	}
	if opts.Source != "" {
		qs.Add("search[source]", opts.Source)
	}
	if opts.Reason != "" {
		qs.Add("search[reason]", opts.Reason)
	}
	if opts.AdminResponse != "" {
		qs.Add("search[notes]", opts.AdminResponse)
	}
	if opts.ReasonHidden != nil {
		qs.Add("search[reason_hidden]", *opts.ReasonHidden)
	}
	if opts.Instructions != "" {
		qs.Add("search[instructions]", opts.Instructions)
	}
	if opts.PostID != 0 {
		qs.Add("search[post_id]", opts.PostID)
	}
	if opts.Email != "" {
		qs.Add("search[email]", opts.Email)
	}
	if opts.IPAddress != "" {
		qs.Add("search[ip_addr]", opts.IPAddress)
	}
	if opts.Vericode != "" {
		qs.Add("search[vericode]", opts.Vericode)
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
	var res []*Takedown
	if err := s.client.get(ctx, "/takedowns.json?"+qs.Encode(), &res); err != nil {
		return nil, err
	}
	for _, t := range res {
		t.client = s.client
	}
	return res, nil
}

// Create files a takedown request. Requires authentication.
func (s *Takedowns) Create(ctx context.Context, opts CreateTakedownOptions) (*Takedown, error) {
	if err := s.client.requireAuth("Takedowns.Create"); err != nil {
		return nil, err
	}
	if opts.Source == "" {
		return nil, fmt.Errorf("Source is required")
	}
	if opts.Email == "" {
		return nil, fmt.Errorf("Email is required")
	}
	if opts.Reason == "" {
		return nil, fmt.Errorf("Reason is required")
	}
	qs := (&Form{}).
		Add("takedown[source]", opts.Source).
		Add("takedown[email]", opts.Email).
		Add("takedown[reason]", opts.Reason)
	if opts.ReasonHidden != nil {
		qs.Add("takedown[reason_hidden]", *opts.ReasonHidden)
	}
	if len(opts.PostIDs) > 0 {
		qs.Add("takedown[post_ids]", joinIDs(opts.PostIDs, " "))
	} else if opts.Instructions != "" {
		qs.Add("takedown[instructions]", opts.Instructions)
	}
	var takedown Takedown
	if err := s.client.post(ctx, "/takedowns.json", qs.Encode(), &takedown); err != nil {
		return nil, err
	}
	takedown.client = s.client
	return &takedown, nil
}

// Modify processes or edits a takedown and returns its updated form.
// Requires authentication (and admin rights on the server side).
func (s *Takedowns) Modify(ctx context.Context, id int64, opts ModifyTakedownOptions) (*Takedown, error) {
	if err := s.client.requireAuth("Takedowns.Modify"); err != nil {
		return nil, err
	}
	qs := &Form{}
	if opts.ProcessTakedown != nil {
		qs.Add("process_takedown", *opts.ProcessTakedown)
	}
	if opts.DeleteReason != "" {
		qs.Add("delete_reason", opts.DeleteReason)
	}
	for post, verdict := range opts.TakedownPosts {
		qs.Add(fmt.Sprintf("takedown_posts[%d]", post), verdict)
	}
	if len(opts.AddPostsTags) > 0 {
		qs.Add("takedown-add-posts-tags", strings.Join(opts.AddPostsTags, " "))
	}
	if len(opts.AddPostsIDs) > 0 {
		qs.Add("takedown-add-posts-ids", joinIDs(opts.AddPostsIDs, " "))
	}
	if opts.Status != "" {
		qs.Add("takedown[status]", string(opts.Status))
	}
	if opts.Notes != "" {
		qs.Add("takedown[notes]", opts.Notes)
	}
	if opts.ReasonHidden != nil {
		qs.Add("takedown[reason_hidden]", *opts.ReasonHidden)
	}
	var takedown Takedown
	if err := s.client.put(ctx, fmt.Sprintf("/takedowns/%d.json", id), qs.Encode(), &takedown); err != nil {
		return nil, err
	}
	takedown.client = s.client
	return &takedown, nil
}

// Delete removes a takedown. Requires authentication (and admin rights
// on the server side).
func (s *Takedowns) Delete(ctx context.Context, id int64) error {
	if err := s.client.requireAuth("Takedowns.Delete"); err != nil {
		return err
	}
	return s.client.del(ctx, fmt.Sprintf("/takedowns/%d.json", id), "", nil)
}
