// Package images describes the remote GIFs shown on the pages and the
// allowlist of hosts they may be loaded from.
package images

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
)

var (
	ErrHostNotAllowed = errors.New("image host not allowed")
	ErrInsecureScheme = errors.New("image must be served over https")
)

// AllowedHosts are the only hosts page images may come from.
var AllowedHosts = []string{
	"media1.giphy.com",
	"media4.giphy.com",
}

// Image is an embedded remote image with its intrinsic box.
type Image struct {
	Src    string
	Alt    string
	Width  int
	Height int
}

var (
	CuteCat = Image{
		Src:    "https://media1.giphy.com/media/v1.Y2lkPTc5MGI3NjExbW5lenZyZHI5OXM2eW95b3pmMG40cWVrMDhtNjVuM3A4dGNxa2g2dSZlcD12MV9pbnRlcm5hbF9naWZfYnlfaWQmY3Q9cw/VM1fcpu2bKs1e2Kdbj/giphy.gif",
		Alt:    "Cute cat GIF",
		Width:  300,
		Height: 300,
	}
	HuggingCharacters = Image{
		Src:    "https://media4.giphy.com/media/v1.Y2lkPTc5MGI3NjExMmo3c3l5ODh3ZGN6NHhhaDE2Mjg1ZjkwOXczdDFxbWM3dTBtaW9zaiZlcD12MV9pbnRlcm5hbF9naWZfYnlfaWQmY3Q9cw/9XY4f3FgFTT4QlaYqa/giphy.gif",
		Alt:    "Hugging characters",
		Width:  500,
		Height: 500,
	}
)

// Validate checks that img is loaded over https from an allowed host.
func Validate(img Image) error {
	u, err := url.Parse(img.Src)
	if err != nil {
		return fmt.Errorf("parse image url %q: %w", img.Src, err)
	}
	if u.Scheme != "https" {
		return fmt.Errorf("%q: %w", img.Src, ErrInsecureScheme)
	}
	if !slices.Contains(AllowedHosts, u.Hostname()) {
		return fmt.Errorf("%q: %w", u.Hostname(), ErrHostNotAllowed)
	}
	return nil
}

// ValidateAll validates every image and joins the failures.
func ValidateAll(imgs ...Image) error {
	var errs []error
	for _, img := range imgs {
		if err := Validate(img); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// CSPSource renders the allowlist as a Content-Security-Policy source list.
func CSPSource() string {
	sources := make([]string, len(AllowedHosts))
	for i, host := range AllowedHosts {
		sources[i] = "https://" + host
	}
	return strings.Join(sources, " ")
}
