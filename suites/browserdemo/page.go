package browserdemo

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/greenpythoncali/SeleniumBase/pkg/storm/options"
	"golang.org/x/net/html"
)

// Largest page body that is kept in memory.
const maxPageSize = 8 << 20

type Page struct {
	Url        string
	StatusCode int
	Title      string
	Source     string
}

// userAgent returns the User-Agent header sent for browser.
func userAgent(browser options.Browser) string {
	if browser.IsMobile() {
		return fmt.Sprintf("storm-browser/1.0 (%s; Mobile)", browser)
	}
	return fmt.Sprintf("storm-browser/1.0 (%s)", browser)
}

func fetchPage(ctx context.Context, client *http.Client, url string, agent string) (*Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for '%s': %w", url, err)
	}
	req.Header.Set("User-Agent", agent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to open '%s': %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read '%s': %w", url, err)
	}

	doc, err := html.Parse(strings.NewReader(string(body)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML of '%s': %w", url, err)
	}

	return &Page{
		Url:        url,
		StatusCode: resp.StatusCode,
		Title:      extractTitle(doc),
		Source:     string(body),
	}, nil
}

// extractTitle returns the text of the first <title> element.
func extractTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "title" {
		var b strings.Builder
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				b.WriteString(c.Data)
			}
		}
		return strings.TrimSpace(b.String())
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if title := extractTitle(c); title != "" {
			return title
		}
	}

	return ""
}
