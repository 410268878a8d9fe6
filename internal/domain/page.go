package domain

import (
	"math"
	"strings"
)

// Direction is a sort direction.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseDirection reports whether s names a direction, ignoring case.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc":
		return Asc, true
	case "desc":
		return Desc, true
	}
	return "", false
}

// Order sorts by a single property.
type Order struct {
	Property  string
	Direction Direction
}

// PageRequest selects one page of a sorted result set. Page is zero based.
type PageRequest struct {
	Page int
	Size int
	Sort []Order
}

// MaxPage is the highest page index whose offset still fits in an int for
// the given page size.
func MaxPage(size int) int {
	if size <= 0 {
		return 0
	}
	return math.MaxInt/size - 1
}

// Offset is the number of records skipped before this page.
// It saturates at math.MaxInt64 instead of wrapping.
func (p PageRequest) Offset() int64 {
	if p.Page <= 0 || p.Size <= 0 {
		return 0
	}
	if int64(p.Page) > math.MaxInt64/int64(p.Size) {
		return math.MaxInt64
	}
	return int64(p.Page) * int64(p.Size)
}

// Page is one slice of a larger result set.
type Page[T any] struct {
	Content       []T
	Request       PageRequest
	TotalElements int64
}

// TotalPages is ceil(TotalElements / Size), or 0 for an empty set.
func (p Page[T]) TotalPages() int {
	if p.TotalElements == 0 || p.Request.Size <= 0 {
		return 0
	}
	size := int64(p.Request.Size)
	return int((p.TotalElements + size - 1) / size)
}

func (p Page[T]) HasPrevious() bool {
	return p.Request.Page > 0
}

func (p Page[T]) HasNext() bool {
	return p.Request.Page < p.TotalPages()-1
}

// MapPage converts the content of a page while keeping its metadata.
func MapPage[T, R any](p Page[T], fn func(T) R) Page[R] {
	content := make([]R, len(p.Content))
	for i := range p.Content {
		content[i] = fn(p.Content[i])
	}
	return Page[R]{
		Content:       content,
		Request:       p.Request,
		TotalElements: p.TotalElements,
	}
}
