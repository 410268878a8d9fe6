package hal

import (
	"net/url"
	"strconv"
	"strings"

	"mylibrary-user/internal/domain"
)

// PageMetadata mirrors the "page" object of a paged collection.
type PageMetadata struct {
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Number        int   `json:"number"`
}

// Metadata describes p for the "page" object.
func Metadata[T any](p domain.Page[T]) PageMetadata {
	return PageMetadata{
		Size:          p.Request.Size,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages(),
		Number:        p.Request.Page,
	}
}

// PageQuery encodes page, size and every sort order of req.
// Sort orders are written as "sort=property,direction".
func PageQuery(req domain.PageRequest) string {
	var b strings.Builder
	b.WriteString("page=")
	b.WriteString(strconv.Itoa(req.Page))
	b.WriteString("&size=")
	b.WriteString(strconv.Itoa(req.Size))
	for _, o := range req.Sort {
		b.WriteString("&sort=")
		b.WriteString(url.QueryEscape(o.Property))
		b.WriteByte(',')
		b.WriteString(string(o.Direction))
	}
	return b.String()
}

// WithPage appends the pagination query of req to base, replacing any query
// base already had.
func WithPage(base string, req domain.PageRequest) string {
	if i := strings.IndexByte(base, '?'); i >= 0 {
		base = base[:i]
	}
	return base + "?" + PageQuery(req)
}

// PageLinks builds the navigation links of p on top of the collection URI
// base. Each link re-applies page, size and sort explicitly.
func PageLinks[T any](base string, p domain.Page[T]) Links {
	req := p.Request
	at := func(page int) string {
		r := req
		r.Page = page
		return WithPage(base, r)
	}

	totalPages := p.TotalPages()
	var links Links
	if totalPages > 1 {
		links = links.Add(RelFirst, at(0))
	}
	if p.HasPrevious() {
		links = links.Add(RelPrev, at(req.Page-1))
	}
	links = links.Add(RelSelf, at(req.Page))
	if p.HasNext() {
		links = links.Add(RelNext, at(req.Page+1))
	}
	if totalPages > 1 {
		links = links.Add(RelLast, at(totalPages-1))
	}
	return links
}
