package mapper

import (
	"mylibrary-user/internal/domain"
	"mylibrary-user/internal/dto"
	"mylibrary-user/internal/hal"
)

// ToUserResource maps a stored user to its wire form without links.
func ToUserResource(user domain.User) dto.UserResource {
	return dto.UserResource{
		UserID:   user.ID,
		UserName: user.UserName,
		IDProof:  user.IDProof,
		IDType:   user.IDType,
		Mobile:   user.Mobile,
	}
}

// ToUserPage maps a page of users. Links are left to the caller.
func ToUserPage(page domain.Page[domain.User]) dto.UserPage {
	resources := domain.MapPage(page, ToUserResource)
	return dto.UserPage{
		Embedded: dto.EmbeddedUsers{Users: resources.Content},
		Page:     hal.Metadata(resources),
	}
}

// ToUserInput maps a create request body to domain input.
func ToUserInput(req dto.CreateUserRequest) domain.UserInput {
	in := domain.UserInput{
		ID:       req.UserID,
		UserName: req.UserName,
		IDProof:  req.IDProof,
		IDType:   req.IDType,
	}
	if req.Mobile != nil {
		mobile := int64(*req.Mobile)
		in.Mobile = &mobile
	}
	return in
}
