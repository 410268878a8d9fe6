// Package hal renders hypermedia links in the HAL JSON convention.
package hal

import (
	"bytes"
	"encoding/json"
)

// MediaType is the content type of successful hypermedia responses.
const MediaType = "application/hal+json;charset=UTF-8"

const (
	RelSelf  = "self"
	RelFirst = "first"
	RelPrev  = "prev"
	RelNext  = "next"
	RelLast  = "last"
)

// Link is a relation name paired with a target URI.
type Link struct {
	Rel  string
	Href string
}

// Links is an ordered list of links. A relation may appear more than once.
type Links []Link

// Add appends a link and returns the extended list.
func (l Links) Add(rel, href string) Links {
	return append(l, Link{Rel: rel, Href: href})
}

type href struct {
	Href string `json:"href"`
}

// MarshalJSON writes {"rel":{"href":...}} keeping first-seen relation order.
// Repeated relations are written as arrays.
func (l Links) MarshalJSON() ([]byte, error) {
	var rels []string
	grouped := make(map[string][]href)
	for _, link := range l {
		if _, seen := grouped[link.Rel]; !seen {
			rels = append(rels, link.Rel)
		}
		grouped[link.Rel] = append(grouped[link.Rel], href{Href: link.Href})
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, rel := range rels {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(rel)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		var value any = grouped[rel]
		if len(grouped[rel]) == 1 {
			value = grouped[rel][0]
		}
		encoded, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		buf.Write(encoded)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
