package e621

import (
	"context"
	"fmt"
	"strings"
)

// Notes exposes the note endpoints. Notes are positioned text boxes
// overlaid on posts.
type Notes struct {
	client *Client
}

// Note is a single note on a post.
type Note struct {
	client *Client

	ID          int64  `json:"id"`
	PostID      int64  `json:"post_id"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
	CreatorID   *int64 `json:"creator_id"`
	CreatorName string `json:"creator_name"`
	X           int    `json:"x"`
	Y           int    `json:"y"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Version     int    `json:"version"`
	IsActive    bool   `json:"is_active"`
	Body        string `json:"body"`
}

// Post fetches the post this note is on.
func (n *Note) Post(ctx context.Context) (*Post, error) {
	return n.client.Posts.Get(ctx, n.PostID)
}

// Creator fetches the user that created this note, or nil for system
// notes.
func (n *Note) Creator(ctx context.Context) (*User, error) {
	if n.CreatorID == nil {
		return nil, nil
	}
	return n.client.Users.Get(ctx, *n.CreatorID)
}

// Modify edits this note.
func (n *Note) Modify(ctx context.Context, opts ModifyNoteOptions) (*Note, error) {
	return n.client.Notes.Modify(ctx, n.ID, opts)
}

// Delete removes this note.
func (n *Note) Delete(ctx context.Context) error {
	return n.client.Notes.Delete(ctx, n.ID)
}

// NoteHistory is one entry of a note's version history.
type NoteHistory struct {
	client *Client

	ID        int64  `json:"id"`
	NoteID    int64  `json:"note_id"`
	PostID    int64  `json:"post_id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
	UpdaterID *int64 `json:"updater_id"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Body      string `json:"body"`
	Version   int    `json:"version"`
	IsActive  bool   `json:"is_active"`
}

// Note fetches the note this entry belongs to.
func (h *NoteHistory) Note(ctx context.Context) (*Note, error) {
	return h.client.Notes.Get(ctx, h.NoteID)
}

// Updater fetches the user that made this edit, or nil for system edits.
func (h *NoteHistory) Updater(ctx context.Context) (*User, error) {
	if h.UpdaterID == nil {
		return nil, nil
	}
	return h.client.Users.Get(ctx, *h.UpdaterID)
}

// SearchNotesOptions narrows a note search.
type SearchNotesOptions struct {
	Body   string
	Author string
	Tags   []string
	Page   string
	Limit  int
}

// CreateNoteOptions describes a new note. All fields are required; a
// zero-sized note is rejected server side.
type CreateNoteOptions struct {
	PostID int64
	X      int
	Y      int
	Width  int
	Height int
	Body   string
}

// ModifyNoteOptions describes a note edit. Nil fields are left
// untouched.
type ModifyNoteOptions struct {
	X      *int
	Y      *int
	Width  *int
	Height *int
	Body   *string
}

// SearchNoteHistoryOptions narrows a note version search.
type SearchNoteHistoryOptions struct {
	ID     int64
	NoteID int64
	PostID int64
	Body   string
	Page   string
	Limit  int
}

// Get fetches a note by id. Missing notes resolve to (nil, nil).
func (s *Notes) Get(ctx context.Context, id int64) (*Note, error) {
	var note Note
	if err := s.client.get(ctx, fmt.Sprintf("/notes/%d.json", id), &note); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	note.client = s.client
	return &note, nil
}

// Search lists notes.
func (s *Notes) Search(ctx context.Context, opts SearchNotesOptions) ([]*Note, error) {
	qs := &Form{}
	if opts.Body != "" {
		qs.Add("search[body_matches]", opts.Body)
	}
	if opts.Author != "" {
		qs.Add("search[creator_name]", opts.Author)
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
	var res []*Note
	if err := s.client.getList(ctx, "/notes.json?"+qs.Encode(), &res); err != nil {
		return nil, err
	}
	for _, n := range res {
		n.client = s.client
	}
	return res, nil
}

// Create places a new note on a post. Requires authentication.
func (s *Notes) Create(ctx context.Context, opts CreateNoteOptions) (*Note, error) {
	if err := s.client.requireAuth("Notes.Create"); err != nil {
		return nil, err
	}
	if opts.PostID == 0 {
		return nil, fmt.Errorf("PostID is required")
	}
	if opts.Body == "" {
		return nil, fmt.Errorf("Body is required")
	}
	qs := (&Form{}).
		Add("note[post_id]", opts.PostID).
		Add("note[x]", opts.X).
		Add("note[y]", opts.Y).
		Add("note[width]", opts.Width).
		Add("note[height]", opts.Height).
		Add("note[body]", opts.Body)
	var note Note
	if err := s.client.post(ctx, "/notes.json", qs.Encode(), &note); err != nil {
		return nil, err
	}
	note.client = s.client
	return &note, nil
}

// Modify edits a note and returns its updated form. Requires
// authentication.
func (s *Notes) Modify(ctx context.Context, id int64, opts ModifyNoteOptions) (*Note, error) {
	if err := s.client.requireAuth("Notes.Modify"); err != nil {
		return nil, err
	}
	qs := &Form{}
	if opts.X != nil {
		qs.Add("note[x]", *opts.X)
	}
	if opts.Y != nil {
		qs.Add("note[y]", *opts.Y)
	}
	if opts.Width != nil {
		qs.Add("note[width]", *opts.Width)
	}
	if opts.Height != nil {
		qs.Add("note[height]", *opts.Height)
	}
	if opts.Body != nil {
		qs.Add("note[body]", *opts.Body)
	}
	var note Note
	if err := s.client.put(ctx, fmt.Sprintf("/notes/%d.json", id), qs.Encode(), &note); err != nil {
		return nil, err
	}
	note.client = s.client
	return &note, nil
}

// Delete removes a note. Requires authentication.
func (s *Notes) Delete(ctx context.Context, id int64) error {
	if err := s.client.requireAuth("Notes.Delete"); err != nil {
		return err
	}
	return s.client.del(ctx, fmt.Sprintf("/notes/%d.json", id), "", nil)
}

// GetHistory fetches a single version entry by id, or (nil, nil) when it
// does not exist.
func (s *Notes) GetHistory(ctx context.Context, id int64) (*NoteHistory, error) {
	res, err := s.SearchHistory(ctx, SearchNoteHistoryOptions{ID: id})
	if err != nil || len(res) == 0 {
		return nil, err
	}
	return res[0], nil
}

// SearchHistory lists note version entries. An empty result comes back
// as an object rather than an array, which decodes to no entries.
func (s *Notes) SearchHistory(ctx context.Context, opts SearchNoteHistoryOptions) ([]*NoteHistory, error) {
	qs := &Form{}
	if opts.ID != 0 {
		qs.Add("search[id]", opts.ID)
	}
	if opts.NoteID != 0 {
		qs.Add("search[note_id]", opts.NoteID)
	}
	if opts.PostID != 0 {
		qs.Add("search[post_id]", opts.PostID)
	}
	if opts.Body != "" {
		qs.Add("search[body_matches]", opts.Body)
	}
	if opts.Page != "" {
		qs.Add("page", opts.Page)
	}
	if opts.Limit > 0 {
		qs.Add("limit", opts.Limit)
	}
	var res []*NoteHistory
	if err := s.client.getList(ctx, "/note_versions.json?"+qs.Encode(), &res); err != nil {
		return nil, err
	}
	for _, h := range res {
		h.client = s.client
	}
	return res, nil
}
