package e621

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForm_Encode(t *testing.T) {
	f := (&Form{}).
		Add("search[name_matches]", "some pool").
		Add("limit", 75).
		Add("pool[is_active]", true).
		Add("search[id]", int64(9000000000))

	got := f.Encode()
	want := "search[name_matches]=some+pool&limit=75&pool[is_active]=true&search[id]=9000000000"
	assert.Equal(t, want, got)
}

func TestForm_EncodeEscapesValuesOnly(t *testing.T) {
	// Bracketed field names go out verbatim; values are percent-encoded.
	f := (&Form{}).Add("post[tag_string_diff]", "canine\n-feline")
	assert.Equal(t, "post[tag_string_diff]=canine%0A-feline", f.Encode())
}

func TestForm_AddRaw(t *testing.T) {
	f := (&Form{}).AddRaw("some reason").Add("limit", 1)
	assert.Equal(t, "some+reason&limit=1", f.Encode())
}

func TestForm_PairsAndLen(t *testing.T) {
	f := (&Form{}).Add("a", 1).Add("b", "two")
	assert.Equal(t, 2, f.Len())
	assert.Equal(t, [][2]string{{"a", "1"}, {"b", "two"}}, f.Pairs())
}

func TestForm_EmptyEncodesEmpty(t *testing.T) {
	assert.Equal(t, "", (&Form{}).Encode())
}
