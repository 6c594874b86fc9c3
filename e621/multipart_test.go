package e621

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gifHeader is enough of a GIF for magic number sniffing.
var gifHeader = []byte("GIF89a\x01\x00\x01\x00\x00\x00\x00")

type testPart struct {
	filename    string
	contentType string
	data        []byte
}

func parseMultipart(t *testing.T, body []byte, contentType string) map[string]testPart {
	t.Helper()
	_, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)
	rd := multipart.NewReader(bytes.NewReader(body), params["boundary"])
	parts := map[string]testPart{}
	for {
		p, err := rd.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		data, err := io.ReadAll(p)
		require.NoError(t, err)
		parts[p.FormName()] = testPart{
			filename:    p.FileName(),
			contentType: p.Header.Get("Content-Type"),
			data:        data,
		}
	}
	return parts
}

func TestMultipart_AttachFileGIF(t *testing.T) {
	m := NewMultipartData()
	require.NoError(t, m.AttachFile("upload[file]", gifHeader, 0))
	require.NoError(t, m.Attach("upload[tag_string]", "canine solo", ""))
	body, contentType := m.Finish()

	parts := parseMultipart(t, body, contentType)
	file, ok := parts["upload[file]"]
	require.True(t, ok)
	assert.Equal(t, "upload0.gif", file.filename)
	assert.Equal(t, "application/octet-stream", file.contentType)
	assert.Equal(t, gifHeader, file.data)
	assert.Equal(t, "canine solo", string(parts["upload[tag_string]"].data))
}

func TestMultipart_AttachFileUnknownType(t *testing.T) {
	m := NewMultipartData()
	err := m.AttachFile("upload[file]", []byte{0x00, 0x01, 0x02, 0x03, 0x04}, 0)
	var ufe *UnsupportedFileTypeError
	require.ErrorAs(t, err, &ufe)
	assert.Equal(t, []byte{0x00, 0x01, 0x02, 0x03}, ufe.Magic)
}

func TestMultipart_AttachJSONValue(t *testing.T) {
	m := NewMultipartData()
	require.NoError(t, m.Attach("meta", map[string]int{"a": 1}, ""))
	body, contentType := m.Finish()

	parts := parseMultipart(t, body, contentType)
	meta, ok := parts["meta"]
	require.True(t, ok)
	assert.Equal(t, "application/json", meta.contentType)
	assert.JSONEq(t, `{"a":1}`, string(meta.data))
}

func TestMultipart_FixedBoundary(t *testing.T) {
	m := NewMultipartData()
	_, contentType := m.Finish()
	assert.Contains(t, contentType, multipartBoundary)
}
