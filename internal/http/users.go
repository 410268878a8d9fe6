package http

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"mylibrary-user/internal/domain"
	"mylibrary-user/internal/dto"
	"mylibrary-user/internal/hal"
	"mylibrary-user/internal/mapper"
)

// getUserByID godoc
// @Summary Retrieve a User resource by identifier
// @Description Make a GET request to retrieve a User by a given identifier
// @Tags users
// @Produce application/hal+json
// @Param userid path int true "User identifier"
// @Success 200 {object} dto.UserResource "Successfully retrieved"
// @Failure 400 {object} ProblemDetail "Identifier is not an integer"
// @Failure 404 {object} ProblemDetail "User with the given identifier is not found"
// @Failure 500 {object} ProblemDetail "Unexpected Internal Error"
// @Router /mylibrary/users/{userid} [get]
func (h *Handler) getUserByID(c *gin.Context) {
	raw := c.Param("userid")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.fail(c, &domain.TypeMismatchError{Param: "userid", Value: raw, ExpectedType: "int64"})
		return
	}

	user, err := h.users.GetUserByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	h.writeHAL(c, http.StatusOK, h.userResource(c, *user))
}

// getUsers godoc
// @Summary Retrieve all Users
// @Description Make a GET request to retrieve a page of users
// @Tags users
// @Produce application/hal+json
// @Param page query int false "Results page you want to retrieve (0..N)"
// @Param size query int false "Number of records per page"
// @Param sort query []string false "Sorting criteria in the format: property(,asc|desc). Default sort order is ascending. Multiple sort criteria are supported." collectionFormat(multi)
// @Success 200 {object} dto.UserPage "Successfully retrieved"
// @Failure 400 {object} ProblemDetail "Invalid paging parameters"
// @Failure 500 {object} ProblemDetail "Unexpected Internal Error"
// @Router /mylibrary/users [get]
func (h *Handler) getUsers(c *gin.Context) {
	req, err := h.pageRequest(c)
	if err != nil {
		h.fail(c, err)
		return
	}

	page, err := h.users.GetUsers(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}

	resp := mapper.ToUserPage(page)
	resp.Links = hal.PageLinks(usersURL(c), page)
	h.writeHAL(c, http.StatusOK, resp)
}

// createUser godoc
// @Summary Create a User
// @Description Make a POST request to register new User
// @Tags users
// @Accept json
// @Produce application/hal+json
// @Param user body dto.CreateUserRequest true "User to create"
// @Success 201 {object} dto.UserResource "Successfully created"
// @Failure 400 {object} ProblemDetail "Malformed or invalid body"
// @Failure 409 {object} ProblemDetail "User already exists"
// @Failure 500 {object} ProblemDetail "Unexpected Internal Error"
// @Router /mylibrary/users [post]
func (h *Handler) createUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindWith(&req, strictJSON); err != nil {
		h.fail(c, unreadableBody(err))
		return
	}

	user, err := h.users.CreateUser(c.Request.Context(), mapper.ToUserInput(req))
	if err != nil {
		h.fail(c, err)
		return
	}

	resource := h.userResource(c, *user)
	c.Header("Location", userURL(c, user.ID))
	h.writeHAL(c, http.StatusCreated, resource)
}

func (h *Handler) userResource(c *gin.Context, user domain.User) dto.UserResource {
	resource := mapper.ToUserResource(user)
	resource.Links = resource.Links.Add(hal.RelSelf, userURL(c, user.ID))
	return resource
}

func (h *Handler) writeHAL(c *gin.Context, status int, body any) {
	c.Header("Content-Type", hal.MediaType)
	c.JSON(status, body)
}

func unreadableBody(err error) error {
	msg := err.Error()
	if errors.Is(err, io.EOF) {
		msg = "Required request body is missing"
	}
	return &domain.BodyUnreadableError{Message: msg, Cause: err}
}
