package imagegen

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	bingImagesURL = "https://www.bing.com/images/search?q="
	userAgent     = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/114.0.0.0 Safari/537.36"
)

// Finder looks up a product image by scraping Bing image search. Every
// failure degrades to a placeholder URL so the admin screen always gets
// something to show.
type Finder struct {
	Client *http.Client
	// BaseURL overrides the Bing endpoint in tests.
	BaseURL string
}

func NewFinder() *Finder {
	return &Finder{
		Client:  &http.Client{Timeout: 10 * time.Second},
		BaseURL: bingImagesURL,
	}
}

func Placeholder(productName string) string {
	return "https://placehold.co/512x512?text=" + strings.ReplaceAll(productName, " ", "+")
}

// FindImage returns the first high-resolution image URL for the product name,
// or the placeholder when nothing usable comes back.
func (f *Finder) FindImage(ctx context.Context, productName string) (string, error) {
	query := strings.ReplaceAll(productName, " ", "+")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.BaseURL+url.QueryEscape(productName), nil)
	if err != nil {
		return Placeholder(query), err
	}
	req.Header.Set("User-Agent", userAgent)

	res, err := f.Client.Do(req)
	if err != nil {
		return Placeholder(query), err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return Placeholder(query), fmt.Errorf("image search status %d", res.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, 4<<20))
	if err != nil {
		return Placeholder(query), err
	}

	if u, ok := extractImageURL(string(body)); ok {
		return u, nil
	}
	return Placeholder(query), nil
}

// extractImageURL scans the result markup for the metadata blobs Bing puts in
// the m attribute of its result anchors and pulls the murl field out of the
// first one that parses.
func extractImageURL(page string) (string, bool) {
	rest := page
	for {
		i := strings.Index(rest, `m="{`)
		if i < 0 {
			return "", false
		}
		rest = rest[i+len(`m="`):]

		end := strings.Index(rest, `}"`)
		if end < 0 {
			return "", false
		}

		blob := strings.ReplaceAll(rest[:end+1], "&quot;", `"`)
		rest = rest[end+2:]

		var meta struct {
			MURL string `json:"murl"`
		}
		if err := json.Unmarshal([]byte(blob), &meta); err != nil {
			continue
		}
		if strings.HasPrefix(meta.MURL, "http") {
			return meta.MURL, true
		}
	}
}
