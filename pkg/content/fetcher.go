package content

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Package content turns a local file or a web page into the plain text
// stored in a learning's content field. Pages are reduced to readable
// text; files are taken as-is. Either way the result is capped so a
// stray binary or a huge page cannot balloon the parent skill document
// that the content ends up inside.

const (
	fetchTimeout = 30 * time.Second

	// maxContentBytes bounds what one learning may hold. The whole
	// parent skill travels on every nested write, so oversized content
	// would inflate every subsequent PUT of that skill.
	maxContentBytes = 1 << 20
)

//nolint:gochecknoglobals // shared client, one timeout policy for all fetches
var httpClient = &http.Client{Timeout: fetchTimeout}

// Fetch resolves source as an http(s) URL or a local file path and
// returns its text.
func Fetch(ctx context.Context, source string) (text string, err error) {
	if u, parseErr := url.Parse(source); parseErr == nil && (u.Scheme == "http" || u.Scheme == "https") {
		text, err = fromURL(ctx, source)
		if err != nil {
			err = errors.Wrapf(err, "failed to fetch content from URL: %s", source)
			return text, err
		}
		return text, err
	}

	text, err = fromFile(source)
	if err != nil {
		err = errors.Wrapf(err, "failed to read content from file: %s", source)
		return text, err
	}
	return text, err
}

func fromFile(path string) (text string, err error) {
	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		return text, err
	}
	if len(data) > maxContentBytes {
		err = errors.Errorf("file exceeds the %d byte content limit", maxContentBytes)
		return text, err
	}

	text = strings.TrimSpace(string(data))
	if text == "" {
		err = errors.New("file is empty")
		return text, err
	}
	return text, err
}

func fromURL(ctx context.Context, pageURL string) (text string, err error) {
	var req *http.Request
	req, err = http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		err = errors.Wrap(err, "failed to create HTTP request")
		return text, err
	}
	req.Header.Set("User-Agent", "twinctl/1.0")
	req.Header.Set("Accept", "text/html, text/plain;q=0.9, application/json;q=0.8")

	var resp *http.Response
	resp, err = httpClient.Do(req)
	if err != nil {
		err = errors.Wrap(err, "HTTP request failed")
		return text, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err = errors.Errorf("HTTP request failed with status: %d", resp.StatusCode)
		return text, err
	}

	var body []byte
	body, err = io.ReadAll(io.LimitReader(resp.Body, maxContentBytes+1))
	if err != nil {
		err = errors.Wrap(err, "failed to read response body")
		return text, err
	}
	if len(body) > maxContentBytes {
		err = errors.Errorf("page exceeds the %d byte content limit", maxContentBytes)
		return text, err
	}

	mediaType := resp.Header.Get("Content-Type")
	if i := strings.IndexByte(mediaType, ';'); i != -1 {
		mediaType = mediaType[:i]
	}
	mediaType = strings.TrimSpace(strings.ToLower(mediaType))

	switch {
	case mediaType == "" || strings.HasPrefix(mediaType, "text/html"):
		text = toText(string(body))
	case strings.HasPrefix(mediaType, "text/"), mediaType == "application/json":
		text = strings.TrimSpace(string(body))
	default:
		err = errors.Errorf("unsupported content type: %s", mediaType)
		return text, err
	}

	if text == "" {
		err = errors.New("fetched content is empty after processing")
		return text, err
	}
	return text, err
}

// toText reduces an HTML page to plain text: script, style and noscript
// elements vanish with their contents, every other tag becomes a space,
// common entities are decoded and whitespace runs collapse to single
// spaces.
func toText(page string) (text string) {
	var b strings.Builder
	rest := page

	for {
		lt := strings.IndexByte(rest, '<')
		if lt == -1 {
			b.WriteString(rest)
			break
		}
		b.WriteString(rest[:lt])
		rest = rest[lt:]

		// Only an opening tag starts a skipped element; its closing tag
		// falls through to the generic handling below.
		if name := tagName(rest); len(rest) > 1 && rest[1] != '/' &&
			(name == "script" || name == "style" || name == "noscript") {
			end := strings.Index(strings.ToLower(rest[1:]), "</"+name)
			if end == -1 {
				break
			}
			rest = rest[end+1:]
		}

		gt := strings.IndexByte(rest, '>')
		if gt == -1 {
			break
		}
		b.WriteByte(' ')
		rest = rest[gt+1:]
	}

	text = entityReplacer.Replace(b.String())
	text = strings.Join(strings.Fields(text), " ")
	return text
}

//nolint:gochecknoglobals // fixed table
var entityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
	"&nbsp;", " ",
)

// tagName returns the lowercased element name at the start of markup,
// which must begin with '<'. Closing-tag slashes are skipped so
// "</script>" and "<script>" report the same name.
func tagName(markup string) (name string) {
	i := 1
	if i < len(markup) && markup[i] == '/' {
		i++
	}
	start := i
	for i < len(markup) {
		c := markup[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			break
		}
		i++
	}
	name = strings.ToLower(markup[start:i])
	return name
}
