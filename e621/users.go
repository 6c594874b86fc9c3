package e621

import (
	"context"
	"fmt"
	"strings"
)

// DefaultImageSize is a user's preferred image display size.
type DefaultImageSize string

const (
	ImageSizeOriginal DefaultImageSize = "original"
	ImageSizeFit      DefaultImageSize = "fit"
	ImageSizeFitV     DefaultImageSize = "fitv"
	ImageSizeLarge    DefaultImageSize = "large"
)

// SearchUsersOrder picks the sort order of a user search.
type SearchUsersOrder string

const (
	UserOrderDate            SearchUsersOrder = "date"
	UserOrderName            SearchUsersOrder = "name"
	UserOrderPostUploadCount SearchUsersOrder = "post_upload_count"
	UserOrderNoteCount       SearchUsersOrder = "note_count"
	UserOrderPostUpdateCount SearchUsersOrder = "post_update_count"
)

// Users exposes the user endpoints, including the authenticated user's
// own profile and favorites.
type Users struct {
	client *Client
}

// User is a user's public profile. Level values are not enumerated;
// custom instances define their own.
type User struct {
	client *Client

	WikiPageVersionCount  int    `json:"wiki_page_version_count"`
	ArtistVersionCount    int    `json:"artist_version_count"`
	PoolVersionCount      int    `json:"pool_version_count"`
	ForumPostCount        int    `json:"forum_post_count"`
	CommentCount          int    `json:"comment_count"`
	AppealCount           int    `json:"appeal_count"`
	FlagCount             int    `json:"flag_count"`
	PositiveFeedbackCount int    `json:"positive_feedback_count"`
	NeutralFeedbackCount  int    `json:"neutral_feedback_count"`
	NegativeFeedbackCount int    `json:"negative_feedback_count"`
	UploadLimit           int    `json:"upload_limit"`
	ID                    int64  `json:"id"`
	CreatedAt             string `json:"created_at"`
	Name                  string `json:"name"`
	Level                 int    `json:"level"`
	BaseUploadLimit       int    `json:"base_upload_limit"`
	PostUploadCount       int    `json:"post_upload_count"`
	PostUpdateCount       int    `json:"post_update_count"`
	NoteUpdateCount       int    `json:"note_update_count"`
	IsBanned              bool   `json:"is_banned"`
	CanApprovePosts       bool   `json:"can_approve_posts"`
	CanUploadFree         bool   `json:"can_upload_free"`
	LevelString           string `json:"level_string"`
	AvatarID              *int64 `json:"avatar_id"`
}

// Feedback lists the feedback entries left on this user.
func (u *User) Feedback(ctx context.Context, opts SearchUserFeedbackOptions) ([]*Feedback, error) {
	opts.Username = u.Name
	return u.client.UserFeedback.Search(ctx, opts)
}

// CreateFeedback leaves a feedback entry on this user.
func (u *User) CreateFeedback(ctx context.Context, category FeedbackCategory, body string) (*Feedback, error) {
	return u.client.UserFeedback.Create(ctx, CreateUserFeedbackOptions{
		Username: u.Name,
		Category: category,
		Body:     body,
	})
}

// Favorites lists this user's favorited posts.
func (u *User) Favorites(ctx context.Context) ([]*Post, error) {
	return u.client.Users.Favorites(ctx, u.ID)
}

// AuthenticatedUser is the caller's own profile, with fields the API
// only exposes for the authenticated account. It is only obtainable
// through Users.Self.
type AuthenticatedUser struct {
	User

	ShowAvatars                   bool             `json:"show_avatars"`
	BlacklistAvatars              bool             `json:"blacklist_avatars"`
	BlacklistUsers                bool             `json:"blacklist_users"`
	DescriptionCollapsedInitially bool             `json:"description_collapsed_initially"`
	HideComments                  bool             `json:"hide_comments"`
	ShowHiddenComments            bool             `json:"show_hidden_comments"`
	ShowPostStatistics            bool             `json:"show_post_statistics"`
	HasMail                       bool             `json:"has_mail"`
	ReceiveEmailNotifications     bool             `json:"receive_email_notifications"`
	EnableKeyboardNavigation      bool             `json:"enable_keyboard_navigation"`
	EnablePrivacyMode             bool             `json:"enable_privacy_mode"`
	StyleUsernames                bool             `json:"style_usernames"`
	EnableAutoComplete            bool             `json:"enable_auto_complete"`
	HasSavedSearches              bool             `json:"has_saved_searches"`
	DisableCroppedThumbnails      bool             `json:"disable_cropped_thumbnails"`
	DisableMobileGestures         bool             `json:"disable_mobile_gestures"`
	EnableSafeMode                bool             `json:"enable_safe_mode"`
	DisableResponsiveMode         bool             `json:"disable_responsive_mode"`
	DisablePostTooltips           bool             `json:"disable_post_tooltips"`
	NoFlagging                    bool             `json:"no_flagging"`
	NoFeedback                    bool             `json:"no_feedback"`
	DisableUserDmails             bool             `json:"disable_user_dmails"`
	EnableCompactUploader         bool             `json:"enable_compact_uploader"`
	UpdatedAt                     string           `json:"updated_at"`
	Email                         string           `json:"email"`
	LastLoggedInAt                string           `json:"last_logged_in_at"`
	LastForumReadAt               string           `json:"last_forum_read_at"`
	RecentTags                    string           `json:"recent_tags"`
	CommentThreshold              int              `json:"comment_threshold"`
	DefaultImageSize              DefaultImageSize `json:"default_image_size"`
	FavoriteTags                  string           `json:"favorite_tags"`
	BlacklistedTags               string           `json:"blacklisted_tags"`
	TimeZone                      string           `json:"time_zone"`
	PerPage                       int              `json:"per_page"`
	CustomStyle                   string           `json:"custom_style"`
	FavoriteCount                 int              `json:"favorite_count"`
	APIRegenMultiplier            int              `json:"api_regen_multiplier"`
	APIBurstLimit                 int              `json:"api_burst_limit"`
	RemainingAPILimit             int              `json:"remaining_api_limit"`
	StatementTimeout              int              `json:"statement_timeout"`
	FavoriteLimit                 int              `json:"favorite_limit"`
	TagQueryLimit                 int              `json:"tag_query_limit"`
}

// Edit applies profile changes to this account.
func (u *AuthenticatedUser) Edit(ctx context.Context, opts EditSelfOptions) error {
	return u.client.Users.EditSelf(ctx, opts)
}

// AddFavorite favorites a post as this account.
func (u *AuthenticatedUser) AddFavorite(ctx context.Context, postID int64) (*Post, error) {
	return u.client.Users.AddFavorite(ctx, postID)
}

// RemoveFavorite unfavorites a post as this account.
func (u *AuthenticatedUser) RemoveFavorite(ctx context.Context, postID int64) error {
	return u.client.Users.RemoveFavorite(ctx, postID)
}

// SearchUsersOptions narrows a user search. Name accepts asterisk
// wildcards.
type SearchUsersOptions struct {
	Name                string
	Email               string
	Level               int
	MinLevel            int
	MaxLevel            int
	UnrestrictedUploads *bool
	Approver            *bool
	Order               SearchUsersOrder
	Page                string
	Limit               int
}

// EditSelfOptions describes a profile edit for the authenticated user.
// Nil fields are left untouched. AvatarID uses a pointer to a pointer so
// "clear the avatar" (pointer to nil) stays distinct from "no change"
// (nil).
type EditSelfOptions struct {
	AvatarID                  **int64
	About                     *string
	Artinfo                   *string
	Timezone                  string
	ReceiveEmailNotifications *bool
	CommentThreshold          *int
	DefaultImageSize          DefaultImageSize
	PostsPerPage              int
	SafeMode                  *bool
	BlacklistedTags           []string
	BlacklistUsers            *bool
	ColoredUsernames          *bool
	EnableKeyboardShortcuts   *bool
	EnableAutoComplete        *bool
	EnablePrivacyMode         *bool
	EnablePostStatistics      *bool
	DescriptionCollapsed      *bool
	HideComments              *bool
	DisableCroppedThumbnails  *bool
	ShowOwnHiddenComments     *bool
	EnableCompactUploader     *bool
	DmailFilter               *string
	FrequentTags              *string
	DisableResponsiveMode     *bool
	CustomCSSStyle            *string
}

// Get fetches a user by id. Missing users resolve to (nil, nil).
func (s *Users) Get(ctx context.Context, id int64) (*User, error) {
	return s.getUser(ctx, fmt.Sprintf("/users/%d.json", id))
}

// GetByName fetches a user by their exact name, or (nil, nil).
func (s *Users) GetByName(ctx context.Context, name string) (*User, error) {
	res, err := s.Search(ctx, SearchUsersOptions{Name: name, Limit: 1})
	if err != nil || len(res) == 0 {
		return nil, err
	}
	return res[0], nil
}

func (s *Users) getUser(ctx context.Context, path string) (*User, error) {
	var user User
	if err := s.client.get(ctx, path, &user); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	user.client = s.client
	return &user, nil
}

// Search lists users.
func (s *Users) Search(ctx context.Context, opts SearchUsersOptions) ([]*User, error) {
	qs := &Form{}
	if opts.Name != "" {
		qs.Add("search[name_matches]", opts.Name)
	}
	if opts.Email != "" {
		qs.Add("search[email_matches]", opts.Email)
	}
	if opts.Level != 0 {
		qs.Add("search[level]", opts.Level)
	}
	if opts.MinLevel != 0 {
		qs.Add("search[min_level]", opts.MinLevel)
	}
	if opts.MaxLevel != 0 {
		qs.Add("search[max_level]", opts.MaxLevel)
	}
	if opts.UnrestrictedUploads != nil {
		qs.Add("search[can_upload_free]", *opts.UnrestrictedUploads)
	}
	if opts.Approver != nil {
		qs.Add("search[can_approve_posts]", *opts.Approver)
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
	var res []*User
	if err := s.client.get(ctx, "/users.json?"+qs.Encode(), &res); err != nil {
		return nil, err
	}
	for _, u := range res {
		u.client = s.client
	}
	return res, nil
}

// Self fetches the authenticated user's own profile. The account id is
// discovered through the upload limit endpoint, the only endpoint that
// identifies the caller. Requires authentication.
func (s *Users) Self(ctx context.Context) (*AuthenticatedUser, error) {
	if err := s.client.requireAuth("Users.Self"); err != nil {
		return nil, err
	}
	limit, err := s.GetUploadLimit(ctx)
	if err != nil {
		return nil, err
	}
	var user AuthenticatedUser
	if err := s.client.get(ctx, fmt.Sprintf("/users/%d.json", limit.ID), &user); err != nil {
		return nil, err
	}
	user.client = s.client
	return &user, nil
}

// EditSelf applies profile changes to the authenticated user. Requires
// authentication.
func (s *Users) EditSelf(ctx context.Context, opts EditSelfOptions) error {
	if err := s.client.requireAuth("Users.EditSelf"); err != nil {
		return err
	}
	qs := &Form{}
	if opts.AvatarID != nil {
		if *opts.AvatarID == nil {
			qs.Add("user[avatar_id]", "")
		} else {
			qs.Add("user[avatar_id]", **opts.AvatarID)
		}
	}
	if opts.About != nil {
		qs.Add("user[profile_about]", *opts.About)
	}
	if opts.Artinfo != nil {
		qs.Add("user[profile_artinfo]", *opts.Artinfo)
	}
	if opts.Timezone != "" {
		qs.Add("user[time_zone]", opts.Timezone)
	}
	if opts.ReceiveEmailNotifications != nil {
		qs.Add("user[receive_email_notifications]", *opts.ReceiveEmailNotifications)
	}
	if opts.CommentThreshold != nil {
		qs.Add("user[comment_threshold]", *opts.CommentThreshold)
	}
	if opts.DefaultImageSize != "" {
		qs.Add("user[default_image_size]", string(opts.DefaultImageSize))
	}
	if opts.PostsPerPage != 0 {
		if opts.PostsPerPage < 25 || opts.PostsPerPage > 250 {
			return fmt.Errorf("PostsPerPage must be between 25 and 250, got %d", opts.PostsPerPage)
		}
		qs.Add("user[per_page]", opts.PostsPerPage)
	}
	if opts.SafeMode != nil {
		qs.Add("user[enable_safe_mode]", *opts.SafeMode)
	}
	if opts.BlacklistedTags != nil {
		qs.Add("user[blacklisted_tags]", strings.Join(opts.BlacklistedTags, "\n"))
	}
	if opts.BlacklistUsers != nil {
		qs.Add("user[blacklist_users]", *opts.BlacklistUsers)
	}
	if opts.ColoredUsernames != nil {
		qs.Add("user[style_usernames]", *opts.ColoredUsernames)
	}
	if opts.EnableKeyboardShortcuts != nil {
		qs.Add("user[enable_keyboard_navigation]", *opts.EnableKeyboardShortcuts)
	}
	if opts.EnableAutoComplete != nil {
		qs.Add("user[enable_auto_complete]", *opts.EnableAutoComplete)
	}
	if opts.EnablePrivacyMode != nil {
		qs.Add("user[enable_privacy_mode]", *opts.EnablePrivacyMode)
	}
	if opts.EnablePostStatistics != nil {
		qs.Add("user[show_post_statistics]", *opts.EnablePostStatistics)
	}
	if opts.DescriptionCollapsed != nil {
		qs.Add("user[description_collapsed_initially]", *opts.DescriptionCollapsed)
	}
	if opts.HideComments != nil {
		qs.Add("user[hide_comments]", *opts.HideComments)
	}
	if opts.DisableCroppedThumbnails != nil {
		qs.Add("user[disable_cropped_thumbnails]", *opts.DisableCroppedThumbnails)
	}
	if opts.ShowOwnHiddenComments != nil {
		qs.Add("user[show_hidden_comments]", *opts.ShowOwnHiddenComments)
	}
	if opts.EnableCompactUploader != nil {
		qs.Add("user[enable_compact_uploader]", *opts.EnableCompactUploader)
	}
	if opts.DmailFilter != nil {
		qs.Add("user[dmail_filter_attributes][words]", *opts.DmailFilter)
	}
	if opts.FrequentTags != nil {
		qs.Add("user[favorite_tags]", *opts.FrequentTags)
	}
	if opts.DisableResponsiveMode != nil {
		qs.Add("user[disable_responsive_mode]", *opts.DisableResponsiveMode)
	}
	if opts.CustomCSSStyle != nil {
		qs.Add("user[custom_style]", *opts.CustomCSSStyle)
	}
	// Any id resolves to the current user on this endpoint.
	return s.client.patch(ctx, "/users/0.json", qs.Encode(), nil)
}

// GetUploadLimit fetches the authenticated user's upload allowance. The
// payload is the authenticated profile minus a handful of counters, so
// it decodes into the same shape. Requires authentication.
func (s *Users) GetUploadLimit(ctx context.Context) (*AuthenticatedUser, error) {
	if err := s.client.requireAuth("Users.GetUploadLimit"); err != nil {
		return nil, err
	}
	var user AuthenticatedUser
	if err := s.client.get(ctx, "/users/upload_limit.json", &user); err != nil {
		return nil, err
	}
	user.client = s.client
	return &user, nil
}

// Favorites lists a user's favorited posts. Pass 0 for the authenticated
// user's own favorites, which requires authentication.
func (s *Users) Favorites(ctx context.Context, id int64) ([]*Post, error) {
	path := "/favorites.json"
	if id == 0 {
		if err := s.client.requireAuth("Users.Favorites"); err != nil {
			return nil, err
		}
	} else {
		path += fmt.Sprintf("?user_id=%d", id)
	}
	var res struct {
		Posts []*Post `json:"posts"`
	}
	if err := s.client.get(ctx, path, &res); err != nil {
		return nil, err
	}
	for _, p := range res.Posts {
		if err := p.bind(s.client); err != nil {
			return nil, err
		}
	}
	return res.Posts, nil
}

// AddFavorite favorites a post and returns it. Requires authentication.
func (s *Users) AddFavorite(ctx context.Context, postID int64) (*Post, error) {
	if err := s.client.requireAuth("Users.AddFavorite"); err != nil {
		return nil, err
	}
	qs := (&Form{}).Add("post_id", postID)
	var res struct {
		Post *Post `json:"post"`
	}
	if err := s.client.post(ctx, "/favorites.json", qs.Encode(), &res); err != nil {
		return nil, err
	}
	if err := res.Post.bind(s.client); err != nil {
		return nil, err
	}
	return res.Post, nil
}

// RemoveFavorite unfavorites a post. Requires authentication.
func (s *Users) RemoveFavorite(ctx context.Context, postID int64) error {
	if err := s.client.requireAuth("Users.RemoveFavorite"); err != nil {
		return err
	}
	return s.client.del(ctx, fmt.Sprintf("/favorites/%d.json", postID), "", nil)
}
