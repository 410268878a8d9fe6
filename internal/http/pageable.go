package http

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"mylibrary-user/internal/domain"
	"mylibrary-user/internal/repository"
)

var defaultUserSort = []domain.Order{{Property: "userName", Direction: domain.Asc}}

// pageRequest reads page, size and sort from the query string.
func (h *Handler) pageRequest(c *gin.Context) (domain.PageRequest, error) {
	req := domain.PageRequest{Page: 0, Size: h.opts.DefaultPageSize}

	if raw, ok := c.GetQuery("page"); ok && raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return req, &domain.TypeMismatchError{Param: "page", Value: raw, ExpectedType: "int"}
		}
		if page > 0 {
			req.Page = page
		}
	}

	if raw, ok := c.GetQuery("size"); ok && raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			return req, &domain.TypeMismatchError{Param: "size", Value: raw, ExpectedType: "int"}
		}
		switch {
		case size > h.opts.MaxPageSize:
			req.Size = h.opts.MaxPageSize
		case size > 0:
			req.Size = size
		}
	}

	if maxPage := domain.MaxPage(req.Size); req.Page > maxPage {
		req.Page = maxPage
	}

	orders, err := parseSort(c.QueryArray("sort"))
	if err != nil {
		return req, err
	}
	if len(orders) == 0 {
		orders = defaultUserSort
	}
	req.Sort = orders
	return req, nil
}

// parseSort reads "prop[,prop...][,asc|desc]" expressions. A trailing
// direction applies to every property before it in the same expression.
func parseSort(values []string) ([]domain.Order, error) {
	var (
		orders []domain.Order
		fields []domain.FieldError
	)
	for _, value := range values {
		var tokens []string
		for _, token := range strings.Split(value, ",") {
			if token = strings.TrimSpace(token); token != "" {
				tokens = append(tokens, token)
			}
		}
		if len(tokens) == 0 {
			continue
		}

		dir := domain.Asc
		if d, ok := domain.ParseDirection(tokens[len(tokens)-1]); ok {
			dir = d
			tokens = tokens[:len(tokens)-1]
		}
		for _, prop := range tokens {
			if !repository.IsSortable(prop) {
				fields = append(fields, domain.FieldError{
					Field:   "sort",
					Message: "refers to unknown property '" + prop + "'",
				})
				continue
			}
			orders = append(orders, domain.Order{Property: prop, Direction: dir})
		}
	}
	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}
	return orders, nil
}
