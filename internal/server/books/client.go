// Package books is a thin client for the Google Books volumes API. It
// builds queries, calls upstream, and reshapes volumeInfo payloads into
// flat Book values. No caching, no retries.
package books

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hallowedlibrary/backend/internal/common"
)

const DefaultBaseURL = "https://www.googleapis.com/books/v1"

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient builds a catalog client. baseURL is overridable so tests can
// point at a local server; an empty value selects the public API.
func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     strings.TrimSpace(apiKey),
	}
}

// BuildQuery composes the upstream q parameter from the supported search
// fields. An explicit isbn wins, then title/author field queries, then the
// free-form q; with nothing at all the catalog default is fiction.
func BuildQuery(q, title, author, isbn string) string {
	if isbn != "" {
		return "isbn:" + isbn
	}
	if title != "" || author != "" {
		var sb strings.Builder
		if title != "" {
			sb.WriteString("intitle:")
			sb.WriteString(strings.ReplaceAll(title, " ", "+"))
		}
		if author != "" {
			if sb.Len() > 0 {
				sb.WriteString("+")
			}
			sb.WriteString("inauthor:")
			sb.WriteString(strings.ReplaceAll(author, " ", "+"))
		}
		return sb.String()
	}
	if q != "" {
		return q
	}
	return "subject:fiction"
}

// Search queries upstream volumes. startIndex and maxResults page the
// results; maxResults defaults to 20 and is capped upstream-side at 40,
// values above that are reduced to 30.
func (c *Client) Search(ctx context.Context, query string, startIndex, maxResults int) ([]Book, error) {
	if query == "" {
		query = "subject:fiction"
	}
	if maxResults <= 0 {
		maxResults = 20
	}
	if maxResults > 40 {
		maxResults = 30
	}
	if startIndex < 0 {
		startIndex = 0
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("startIndex", strconv.Itoa(startIndex))
	params.Set("maxResults", strconv.Itoa(maxResults))
	if c.apiKey != "" {
		params.Set("key", c.apiKey)
	}

	var payload volumesResponse
	if err := c.getJSON(ctx, c.baseURL+"/volumes?"+params.Encode(), &payload); err != nil {
		return nil, err
	}

	result := make([]Book, 0, len(payload.Items))
	for _, item := range payload.Items {
		result = append(result, item.toBook())
	}
	return result, nil
}

// GetByID fetches a single volume. Unknown ids yield common.ErrNotFound.
func (c *Client) GetByID(ctx context.Context, volumeID string) (*Book, error) {
	if volumeID == "" {
		return nil, common.ErrNotFound
	}

	u := c.baseURL + "/volumes/" + url.PathEscape(volumeID)
	if c.apiKey != "" {
		u += "?key=" + url.QueryEscape(c.apiKey)
	}

	var item volumeItem
	if err := c.getJSON(ctx, u, &item); err != nil {
		return nil, err
	}

	book := item.toBook()
	return &book, nil
}

var errUpstream = errors.New("catalog upstream error")

func (c *Client) getJSON(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", errUpstream, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return common.ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("%w: unexpected status %d", errUpstream, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding response: %v", errUpstream, err)
	}
	return nil
}

// Upstream payload shapes, only the fields the proxy exposes.

type volumesResponse struct {
	Items []volumeItem `json:"items"`
}

type volumeItem struct {
	ID         string     `json:"id"`
	VolumeInfo volumeInfo `json:"volumeInfo"`
}

type volumeInfo struct {
	Title         string   `json:"title"`
	Authors       []string `json:"authors"`
	Publisher     string   `json:"publisher"`
	PublishedDate string   `json:"publishedDate"`
	Description   string   `json:"description"`
	Categories    []string `json:"categories"`
	ImageLinks    struct {
		Thumbnail      string `json:"thumbnail"`
		SmallThumbnail string `json:"smallThumbnail"`
	} `json:"imageLinks"`
	IndustryIdentifiers []struct {
		Type       string `json:"type"`
		Identifier string `json:"identifier"`
	} `json:"industryIdentifiers"`
}

func (v volumeItem) toBook() Book {
	info := v.VolumeInfo

	thumbnail := info.ImageLinks.Thumbnail
	if thumbnail == "" {
		thumbnail = info.ImageLinks.SmallThumbnail
	}

	var isbn13, isbn10 string
	for _, ident := range info.IndustryIdentifiers {
		switch strings.ToUpper(ident.Type) {
		case "ISBN_13":
			isbn13 = ident.Identifier
		case "ISBN_10":
			isbn10 = ident.Identifier
		}
	}

	authors := info.Authors
	if authors == nil {
		authors = []string{}
	}
	categories := info.Categories
	if categories == nil {
		categories = []string{}
	}

	return Book{
		ID:            v.ID,
		Title:         info.Title,
		Authors:       authors,
		Publisher:     info.Publisher,
		PublishedDate: info.PublishedDate,
		Description:   info.Description,
		Categories:    categories,
		Thumbnail:     thumbnail,
		ISBN13:        isbn13,
		ISBN10:        isbn10,
	}
}
