package e621

import (
	"context"
	"fmt"
)

// BlipWarningType is the kind of moderation notice placed on a blip.
type BlipWarningType string

const (
	BlipWarning BlipWarningType = "warning"
	BlipRecord  BlipWarningType = "record"
	BlipBan     BlipWarningType = "ban"
)

// SearchBlipsOrder picks the sort order of a blip search.
type SearchBlipsOrder string

const (
	BlipOrderIDDesc        SearchBlipsOrder = "id_desc"
	BlipOrderUpdatedAtDesc SearchBlipsOrder = "updated_at_desc"
)

// Blips exposes the blip endpoints. Blips are short public statuses.
// Editing a blip is only possible within a few minutes of posting it;
// after that the server rejects the edit, which surfaces as an APIError
// with KindEditWindowExpired.
type Blips struct {
	client *Client
}

// Blip is a single blip. WarningType is 1 for warning, 2 for record, 3
// for ban, 0 when none is present.
type Blip struct {
	client *Client

	ID            int64  `json:"id"`
	CreatorID     int64  `json:"creator_id"`
	CreatorName   string `json:"creator_name"`
	Body          string `json:"body"`
	ResponseTo    *int64 `json:"response_to"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
	IsHidden      bool   `json:"is_hidden"`
	WarningType   int    `json:"warning_type"`
	WarningUserID *int64 `json:"warning_user_id"`
}

// Creator fetches the user that posted this blip.
func (b *Blip) Creator(ctx context.Context) (*User, error) {
	return b.client.Users.Get(ctx, b.CreatorID)
}

// Parent fetches the blip this one responds to, or nil for top-level
// blips.
func (b *Blip) Parent(ctx context.Context) (*Blip, error) {
	if b.ResponseTo == nil {
		return nil, nil
	}
	return b.client.Blips.Get(ctx, *b.ResponseTo)
}

// Modify edits this blip's body.
func (b *Blip) Modify(ctx context.Context, body string) (*Blip, error) {
	return b.client.Blips.Modify(ctx, b.ID, body)
}

// Delete removes this blip.
func (b *Blip) Delete(ctx context.Context) error {
	return b.client.Blips.Delete(ctx, b.ID)
}

// AddWarning places a moderation notice on this blip.
func (b *Blip) AddWarning(ctx context.Context, kind BlipWarningType) (*Blip, error) {
	return b.client.Blips.AddWarning(ctx, b.ID, kind)
}

// SearchBlipsOptions narrows a blip search.
type SearchBlipsOptions struct {
	Creator    string
	CreatorID  int64
	Body       string
	ResponseTo int64
	IPAddress  string
	Order      SearchBlipsOrder
	Page       string
	Limit      int
}

// Get fetches a blip by id. Missing blips resolve to (nil, nil).
func (s *Blips) Get(ctx context.Context, id int64) (*Blip, error) {
	var blip Blip
	if err := s.client.get(ctx, fmt.Sprintf("/blips/%d.json", id), &blip); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	blip.client = s.client
	return &blip, nil
}

// Search lists blips.
func (s *Blips) Search(ctx context.Context, opts SearchBlipsOptions) ([]*Blip, error) {
	qs := &Form{}
	if opts.Creator != "" {
		qs.Add("search[creator_name]", opts.Creator)
	}
	if opts.CreatorID != 0 {
		qs.Add("search[creator_id]", opts.CreatorID)
	}
	if opts.Body != "" {
		qs.Add("search[body_matches]", opts.Body)
	}
	if opts.ResponseTo != 0 {
		qs.Add("search[response_to]", opts.ResponseTo)
	}
	if opts.IPAddress != "" {
		qs.Add("search[ip_addr]", opts.IPAddress)
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
	var res []*Blip
	if err := s.client.get(ctx, "/blips.json?"+qs.Encode(), &res); err != nil {
		return nil, err
	}
	for _, b := range res {
		b.client = s.client
	}
	return res, nil
}

// Create posts a new blip, optionally as a response to another. Requires
// authentication.
func (s *Blips) Create(ctx context.Context, body string, responseTo int64) (*Blip, error) {
	if err := s.client.requireAuth("Blips.Create"); err != nil {
		return nil, err
	}
	if body == "" {
		return nil, fmt.Errorf("body is required")
	}
	qs := (&Form{}).Add("blip[body]", body)
	if responseTo != 0 {
		qs.Add("blip[response_to]", responseTo)
	}
	var blip Blip
	if err := s.client.post(ctx, "/blips.json", qs.Encode(), &blip); err != nil {
		return nil, err
	}
	blip.client = s.client
	return &blip, nil
}

// Modify edits a blip's body. Blips older than five minutes cannot be
// edited unless the caller is a moderator. Requires authentication.
func (s *Blips) Modify(ctx context.Context, id int64, body string) (*Blip, error) {
	if err := s.client.requireAuth("Blips.Modify"); err != nil {
		return nil, err
	}
	if body == "" {
		return nil, fmt.Errorf("body is required")
	}
	qs := (&Form{}).Add("blip[body]", body)
	var blip Blip
	if err := s.client.patch(ctx, fmt.Sprintf("/blips/%d.json", id), qs.Encode(), &blip); err != nil {
		return nil, err
	}
	blip.client = s.client
	return &blip, nil
}

// Delete removes a blip. Requires authentication (and moderator rights
// on the server side).
func (s *Blips) Delete(ctx context.Context, id int64) error {
	if err := s.client.requireAuth("Blips.Delete"); err != nil {
		return err
	}
	return s.client.del(ctx, fmt.Sprintf("/blips/%d.json", id), "", nil)
}

// AddWarning places a moderation notice on a blip and returns its
// updated form. Requires authentication (and moderator rights on the
// server side).
func (s *Blips) AddWarning(ctx context.Context, id int64, kind BlipWarningType) (*Blip, error) {
	if err := s.client.requireAuth("Blips.AddWarning"); err != nil {
		return nil, err
	}
	qs := (&Form{}).Add("blip[record_type]", string(kind))
	var blip Blip
	if err := s.client.post(ctx, fmt.Sprintf("/blips/%d/warning.json", id), qs.Encode(), &blip); err != nil {
		return nil, err
	}
	blip.client = s.client
	return &blip, nil
}
