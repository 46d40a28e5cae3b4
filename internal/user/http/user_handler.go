// Package http provides HTTP handlers for user-related operations.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mkowalczyk/flashcards/internal/httputil"
	"github.com/mkowalczyk/flashcards/internal/user/http/dto"
	"github.com/mkowalczyk/flashcards/internal/user/usecase"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userUseCase usecase.UseCase
	responder   *httputil.ErrorResponder
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userUseCase usecase.UseCase, responder *httputil.ErrorResponder) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		responder:   responder,
	}
}

// RegisterUser handles user registration.
//
// POST /api/users
// POST /api/auth/register
//
// Responds 201 with the public user representation on success. Registration
// rule violations come back as 422 with the violated rule's code, structural
// validation failures as 400 with field detail, and unparseable bodies as 400
// with a MALFORMED_JSON code.
func (h *UserHandler) RegisterUser(c *gin.Context) {
	var req dto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.responder.BadRequest(c, err)
		return
	}

	if err := req.Validate(); err != nil {
		h.responder.Error(c, err)
		return
	}

	input := dto.ToRegisterUserInput(req)

	user, err := h.userUseCase.RegisterUser(c.Request.Context(), input)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}
