package e621

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/textproto"

	"github.com/h2non/filetype"
)

// multipartBoundary is pinned so request bodies are reproducible.
const multipartBoundary = "----E621Multipart"

// uploadExtensions is the closed set of formats the backend ingests,
// keyed by the sniffed type. Expanding it silently would change wire
// compatibility, so unknown types fail instead of falling back.
var uploadExtensions = map[string]string{
	"gif":  "gif",
	"png":  "png",
	"jpg":  "jpeg",
	"webm": "webm",
	"webp": "webp",
}

// MultipartData assembles a multipart/form-data body with a fixed
// boundary. Callers control part order; the reference flow attaches file
// parts before plain fields.
type MultipartData struct {
	buf bytes.Buffer
	w   *multipart.Writer
}

func NewMultipartData() *MultipartData {
	m := &MultipartData{}
	m.w = multipart.NewWriter(&m.buf)
	// The boundary is a valid token; SetBoundary only rejects malformed ones.
	_ = m.w.SetBoundary(multipartBoundary)
	return m
}

// Attach appends a part. Byte slices are written as
// application/octet-stream, maps and structs are JSON-serialized as
// application/json, and everything else is stringified with no explicit
// content type. Binary parts should carry a filename.
func (m *MultipartData) Attach(field string, value any, filename string) error {
	h := make(textproto.MIMEHeader)
	disposition := fmt.Sprintf(`form-data; name=%q`, field)
	if filename != "" {
		disposition += fmt.Sprintf(`; filename=%q`, filename)
	}
	h.Set("Content-Disposition", disposition)

	var data []byte
	switch v := value.(type) {
	case []byte:
		h.Set("Content-Type", "application/octet-stream")
		data = v
	case string:
		data = []byte(v)
	case bool, int, int64, float64:
		data = []byte(coerce(v))
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshal multipart field %q: %w", field, err)
		}
		h.Set("Content-Type", "application/json")
		data = b
	}

	part, err := m.w.CreatePart(h)
	if err != nil {
		return err
	}
	_, err = part.Write(data)
	return err
}

// AttachFile sniffs the payload's magic number to pick a filename
// extension and attaches the payload as a binary part named
// "upload<index>.<ext>". Payloads outside the accepted format set fail
// with UnsupportedFileTypeError.
func (m *MultipartData) AttachFile(field string, data []byte, index int) error {
	kind, _ := filetype.Match(data)
	ext, ok := uploadExtensions[kind.Extension]
	if !ok {
		magic := data
		if len(magic) > 4 {
			magic = magic[:4]
		}
		return &UnsupportedFileTypeError{Magic: magic}
	}
	return m.Attach(field, data, fmt.Sprintf("upload%d.%s", index, ext))
}

// Finish appends the closing boundary and returns the encoded body along
// with its Content-Type value.
func (m *MultipartData) Finish() ([]byte, string) {
	_ = m.w.Close()
	return m.buf.Bytes(), m.w.FormDataContentType()
}
