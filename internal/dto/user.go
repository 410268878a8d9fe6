package dto

import (
	"bytes"
	"fmt"
	"strconv"

	"mylibrary-user/internal/hal"
)

// UserResource is the wire form of a user.
type UserResource struct {
	UserID   int64     `json:"userId" example:"12345"`
	UserName string    `json:"userName" example:"John Doe"`
	IDProof  string    `json:"idProof" example:"DLFAP0000944589"`
	IDType   string    `json:"idType" example:"Driving License"`
	Mobile   int64     `json:"mobile" example:"9876543210"`
	Links    hal.Links `json:"_links,omitempty" swaggertype:"object"`
}

// UserPage is a HAL page of users.
type UserPage struct {
	Embedded EmbeddedUsers    `json:"_embedded"`
	Links    hal.Links        `json:"_links,omitempty" swaggertype:"object"`
	Page     hal.PageMetadata `json:"page"`
}

type EmbeddedUsers struct {
	Users []UserResource `json:"users"`
}

// CreateUserRequest is the body of a create call. Pointer fields stay nil
// when the client leaves them out.
type CreateUserRequest struct {
	UserID   *int64      `json:"userId,omitempty" example:"12345"`
	UserName *string     `json:"userName" example:"John Doe"`
	IDProof  *string     `json:"idProof" example:"DLFAP0000944589"`
	IDType   *string     `json:"idType" example:"Driving License"`
	Mobile   *LooseInt64 `json:"mobile" swaggertype:"integer" example:"9876543210"`
}

// LooseInt64 decodes from a JSON number or a string holding one.
type LooseInt64 int64

func (n *LooseInt64) UnmarshalJSON(data []byte) error {
	text := bytes.TrimSpace(data)
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = bytes.TrimSpace(text[1 : len(text)-1])
	}
	v, err := strconv.ParseInt(string(text), 10, 64)
	if err != nil {
		return fmt.Errorf("cannot deserialize value of type int64 from %s", data)
	}
	*n = LooseInt64(v)
	return nil
}
