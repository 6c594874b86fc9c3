package e621

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"regexp"
	"time"
)

// blipEditPath matches the one path whose 302 rejection means the edit
// window has closed rather than a generic failure.
var blipEditPath = regexp.MustCompile(`^/blips/\d+\.json$`)

// wireResponse is the raw outcome of a single exchange, prior to
// classification.
type wireResponse struct {
	status     int
	statusText string
	body       []byte
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, "", out)
}

func (c *Client) post(ctx context.Context, path, body string, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) patch(ctx context.Context, path, body string, out any) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) put(ctx context.Context, path, body string, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) del(ctx context.Context, path, body string, out any) error {
	return c.do(ctx, http.MethodDelete, path, body, out)
}

// do issues a single request with an urlencoded body and settles it. Out
// may be nil when the caller does not care about the response payload.
func (c *Client) do(ctx context.Context, method, path, body string, out any) error {
	contentType := ""
	if method != http.MethodGet {
		contentType = "application/x-www-form-urlencoded"
	}
	res, err := c.send(ctx, method, path, []byte(body), contentType)
	if err != nil {
		return err
	}
	return c.settle(method, path, body, res, out)
}

// getList fetches a JSON array endpoint. Some endpoints answer an empty
// result with a wrapper object instead of an array; that decodes to no
// entries.
func (c *Client) getList(ctx context.Context, path string, out any) error {
	var raw json.RawMessage
	if err := c.get(ctx, path, &raw); err != nil {
		return err
	}
	if len(raw) == 0 || raw[0] != '[' {
		return nil
	}
	return json.Unmarshal(raw, out)
}

// UploadFile is a binary payload attached to a multipart request. Field
// is the form field name (for example "upload[file]").
type UploadFile struct {
	Field   string
	Content []byte
}

// doMultipart issues a request whose body mixes file parts and plain
// fields. File parts are attached first, matching the reference flow.
func (c *Client) doMultipart(ctx context.Context, method, path string, form *Form, files []UploadFile, out any) error {
	m := NewMultipartData()
	for i, f := range files {
		if err := m.AttachFile(f.Field, f.Content, i); err != nil {
			return err
		}
	}
	for _, p := range form.Pairs() {
		if err := m.Attach(p[0], p[1], ""); err != nil {
			return err
		}
	}
	body, contentType := m.Finish()
	res, err := c.send(ctx, method, path, body, contentType)
	if err != nil {
		return err
	}
	return c.settle(method, path, "Multipart Form Data", res, out)
}

// send performs exactly one HTTP exchange. It returns a wireResponse for
// classification, or a TransportError when no response was obtained. The
// configured request timeout is layered onto the caller's context.
func (c *Client) send(ctx context.Context, method, path string, body []byte, contentType string) (*wireResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	var rd io.Reader
	if len(body) > 0 {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.InstanceURL()+path, rd)
	if err != nil {
		return nil, err
	}
	// Host is set explicitly so intermediaries can route to the intended
	// virtual host even when the dialed name differs.
	req.Host = c.host
	req.Header.Set("User-Agent", c.userAgent)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if auth := basicAuth(c.authUser, c.authKey); auth != "" {
		req.Header.Set("Authorization", auth)
	}

	c.log.Debug().Str("method", method).Str("path", path).Msg("request")
	start := time.Now()

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Method: method, Path: path, Err: err, timeout: isTimeout(err)}
	}
	defer res.Body.Close()
	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &TransportError{Method: method, Path: path, Err: err, timeout: isTimeout(err)}
	}

	c.log.Debug().
		Str("method", method).Str("path", path).
		Int("status", res.StatusCode).Int("bytes", len(data)).
		Dur("elapsed", time.Since(start)).
		Msg("response")

	return &wireResponse{status: res.StatusCode, statusText: http.StatusText(res.StatusCode), body: data}, nil
}

// settle classifies a completed exchange exactly once: 204 resolves with
// no content, 200/201 decode as JSON, everything else is a failure
// carrying full request/response context.
func (c *Client) settle(method, path, reqBody string, res *wireResponse, out any) error {
	switch res.status {
	case http.StatusNoContent:
		return nil
	case http.StatusOK, http.StatusCreated:
		if out == nil {
			return nil
		}
		if err := json.Unmarshal(res.body, out); err != nil {
			return &APIError{
				Kind:         KindParse,
				StatusCode:   res.status,
				Status:       res.statusText,
				Method:       method,
				Path:         path,
				RequestBody:  reqBody,
				RequestForm:  decodeForm(reqBody),
				ResponseBody: string(res.body),
			}
		}
		return nil
	}

	kind := KindUnexpectedStatus
	// Editing a blip past its window returns a 302 Found.
	if res.status == http.StatusFound && method == http.MethodPatch && blipEditPath.MatchString(path) {
		kind = KindEditWindowExpired
	}
	return &APIError{
		Kind:         kind,
		StatusCode:   res.status,
		Status:       res.statusText,
		Method:       method,
		Path:         path,
		RequestBody:  reqBody,
		RequestForm:  decodeForm(reqBody),
		ResponseBody: decodeBody(res.body),
	}
}

// decodeForm best-effort decodes an urlencoded request body for
// diagnostics.
func decodeForm(body string) url.Values {
	if body == "" {
		return nil
	}
	values, err := url.ParseQuery(body)
	if err != nil {
		return nil
	}
	return values
}

// decodeBody best-effort parses a response body as JSON, falling back to
// the raw text.
func decodeBody(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return string(b)
	}
	return v
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
