package e621

import (
	"fmt"
)

// Rendition identifies a variant of a stored image.
type Rendition string

const (
	RenditionOriginal Rendition = "original"
	RenditionPreview  Rendition = "preview"
	RenditionSample   Rendition = "sample"
)

// ReconstructionMode names a known backend's static-asset URL convention,
// used to rebuild image URLs the API returned as null (hidden by
// blacklist/safety settings, or omitted by configuration).
type ReconstructionMode string

const (
	// ModeNone disables reconstruction; resolving a null URL fails.
	ModeNone ReconstructionMode = "none"
	// ModeE621 uses e621.net's hierarchical two-level hash-prefix layout.
	ModeE621 ReconstructionMode = "e621"
	// ModeYiffy uses the YiffyAPI mirror's hierarchical layout.
	ModeYiffy ReconstructionMode = "yiffy"
	// ModeDev uses the flat root layout of a local e621ng instance.
	ModeDev ReconstructionMode = "dev"

	// modeUnset lets New infer the mode from the configured host.
	modeUnset ReconstructionMode = ""
)

func modeForHost(host string) ReconstructionMode {
	switch host {
	case "e621.net":
		return ModeE621
	case "yiff.rest":
		return ModeYiffy
	case "e621ng.local":
		return ModeDev
	default:
		return ModeNone
	}
}

// InstanceURL returns the configured instance's origin, omitting default
// ports.
func (c *Client) InstanceURL() string {
	scheme := "http"
	if c.ssl {
		scheme = "https"
	}
	if c.port == 80 || c.port == 443 {
		return fmt.Sprintf("%s://%s", scheme, c.host)
	}
	return fmt.Sprintf("%s://%s:%d", scheme, c.host, c.port)
}

// DeletedImageURL returns the placeholder shown for deleted content. It
// lives on the instance itself, not on the static-asset host.
func (c *Client) DeletedImageURL() string {
	return c.InstanceURL() + "/images/deleted-preview.png"
}

// ReconstructURL derives the canonical static-asset URL for an image
// rendition from its content md5. A configured StaticURLFunc always takes
// precedence; otherwise the configured mode decides the layout. When
// neither applies the call fails rather than guessing a URL.
func (c *Client) ReconstructURL(md5 string, kind Rendition, ext string) (string, error) {
	if err := validateMD5(md5); err != nil {
		return "", err
	}
	if ext == "" {
		ext = "png"
	}
	if c.staticURLFunc != nil {
		return c.staticURLFunc(md5, kind, ext), nil
	}

	segment := ""
	if kind != RenditionOriginal {
		segment = string(kind) + "/"
	}
	switch c.mode {
	case ModeE621:
		return fmt.Sprintf("https://static1.e621.net/data/%s%s/%s/%s.%s", segment, md5[0:2], md5[2:4], md5, ext), nil
	case ModeYiffy:
		return fmt.Sprintf("https://v3.yiff.media/%s%s/%s/%s.%s", segment, md5[0:2], md5[2:4], md5, ext), nil
	case ModeDev:
		return fmt.Sprintf("%s/data/%s%s.%s", c.InstanceURL(), segment, md5, ext), nil
	}
	return "", &ReconstructionError{Mode: c.mode, Host: c.host}
}

func validateMD5(md5 string) error {
	// md5 hashes are always 32 characters
	if len(md5) != 32 {
		return fmt.Errorf("invalid md5 %q: must be 32 characters", md5)
	}
	return nil
}
