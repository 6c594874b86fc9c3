package e621

import (
	"context"
	"fmt"
)

// FeedbackCategory grades a feedback entry.
type FeedbackCategory string

const (
	FeedbackPositive FeedbackCategory = "positive"
	FeedbackNeutral  FeedbackCategory = "neutral"
	FeedbackNegative FeedbackCategory = "negative"
)

// UserFeedback exposes the user feedback endpoints. Leaving, editing and
// removing feedback requires moderator rights on the server side.
type UserFeedback struct {
	client *Client
}

// Feedback is a single feedback entry on a user's record.
type Feedback struct {
	client *Client

	ID        int64            `json:"id"`
	UserID    int64            `json:"user_id"`
	CreatorID int64            `json:"creator_id"`
	CreatedAt string           `json:"created_at"`
	Body      string           `json:"body"`
	Category  FeedbackCategory `json:"category"`
	UpdatedAt string           `json:"updated_at"`
}

// User fetches the user this feedback was left on.
func (f *Feedback) User(ctx context.Context) (*User, error) {
	return f.client.Users.Get(ctx, f.UserID)
}

// Creator fetches the user that left this feedback.
func (f *Feedback) Creator(ctx context.Context) (*User, error) {
	return f.client.Users.Get(ctx, f.CreatorID)
}

// Modify edits this feedback entry.
func (f *Feedback) Modify(ctx context.Context, opts ModifyUserFeedbackOptions) (*Feedback, error) {
	return f.client.UserFeedback.Modify(ctx, f.ID, opts)
}

// Delete removes this feedback entry.
func (f *Feedback) Delete(ctx context.Context) error {
	return f.client.UserFeedback.Delete(ctx, f.ID)
}

// SearchUserFeedbackOptions narrows a feedback search.
type SearchUserFeedbackOptions struct {
	Username string
	Creator  string
	Body     string
	Category FeedbackCategory
	Page     string
	Limit    int
}

// CreateUserFeedbackOptions describes a new feedback entry. All fields
// are required.
type CreateUserFeedbackOptions struct {
	Username string
	Category FeedbackCategory
	Body     string
}

// ModifyUserFeedbackOptions describes a feedback edit. A nil Body is
// left untouched.
type ModifyUserFeedbackOptions struct {
	Body     *string
	Category FeedbackCategory
}

// Get fetches a feedback entry by id. Missing entries resolve to
// (nil, nil).
func (s *UserFeedback) Get(ctx context.Context, id int64) (*Feedback, error) {
	var feedback Feedback
	if err := s.client.get(ctx, fmt.Sprintf("/user_feedbacks/%d.json", id), &feedback); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	feedback.client = s.client
	return &feedback, nil
}

// Search lists feedback entries. An empty result comes back as an object
// rather than an array, which decodes to no entries.
func (s *UserFeedback) Search(ctx context.Context, opts SearchUserFeedbackOptions) ([]*Feedback, error) {
	qs := &Form{}
	if opts.Username != "" {
		qs.Add("search[user_name]", opts.Username)
	}
	if opts.Creator != "" {
		qs.Add("search[creator_name]", opts.Creator)
	}
	if opts.Body != "" {
		qs.Add("search[body_matches]", opts.Body)
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
	var res []*Feedback
	if err := s.client.getList(ctx, "/user_feedbacks.json?"+qs.Encode(), &res); err != nil {
		return nil, err
	}
	for _, f := range res {
		f.client = s.client
	}
	return res, nil
}

// Create leaves feedback on a user. Requires authentication (and
// moderator rights on the server side).
func (s *UserFeedback) Create(ctx context.Context, opts CreateUserFeedbackOptions) (*Feedback, error) {
	if err := s.client.requireAuth("UserFeedback.Create"); err != nil {
		return nil, err
	}
	if opts.Username == "" {
		return nil, fmt.Errorf("Username is required")
	}
	if opts.Category == "" {
		return nil, fmt.Errorf("Category is required")
	}
	if opts.Body == "" {
		return nil, fmt.Errorf("Body is required")
	}
	qs := (&Form{}).
		Add("user_feedback[user_name]", opts.Username).
		Add("user_feedback[category]", string(opts.Category)).
		Add("user_feedback[body]", opts.Body)
	var feedback Feedback
	if err := s.client.post(ctx, "/user_feedbacks.json", qs.Encode(), &feedback); err != nil {
		return nil, err
	}
	feedback.client = s.client
	return &feedback, nil
}

// Modify edits a feedback entry and returns its updated form. Requires
// authentication (and moderator rights on the server side).
func (s *UserFeedback) Modify(ctx context.Context, id int64, opts ModifyUserFeedbackOptions) (*Feedback, error) {
	if err := s.client.requireAuth("UserFeedback.Modify"); err != nil {
		return nil, err
	}
	qs := &Form{}
	if opts.Body != nil {
		qs.Add("user_feedback[body]", *opts.Body)
	}
	if opts.Category != "" {
		qs.Add("user_feedback[category]", string(opts.Category))
	}
	var feedback Feedback
	if err := s.client.patch(ctx, fmt.Sprintf("/user_feedbacks/%d.json", id), qs.Encode(), &feedback); err != nil {
		return nil, err
	}
	feedback.client = s.client
	return &feedback, nil
}

// Delete removes a feedback entry. Requires authentication (and
// moderator rights on the server side).
func (s *UserFeedback) Delete(ctx context.Context, id int64) error {
	if err := s.client.requireAuth("UserFeedback.Delete"); err != nil {
		return err
	}
	return s.client.del(ctx, fmt.Sprintf("/user_feedbacks/%d.json", id), "", nil)
}
