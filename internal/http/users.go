package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/domain"
)

const userNotFound = "User not found"

type createUserReq struct {
	Email   string `json:"email" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
}

// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {object} envelope{data=[]domain.User}
// @Router /api/users [get]
func (s *Server) listUsers(c *gin.Context) {
	list, err := s.users.List(c.Request.Context())
	if err != nil {
		fail(c, err, userNotFound)
		return
	}
	respondList(c, list)
}

// @Summary Get user by id
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} envelope{data=domain.User}
// @Failure 404 {object} envelope
// @Router /api/users/{id} [get]
func (s *Server) getUser(c *gin.Context) {
	u, err := s.users.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err, userNotFound)
		return
	}
	respond(c, http.StatusOK, u)
}

// @Summary Create user
// @Tags users
// @Accept json
// @Produce json
// @Param input body createUserReq true "User"
// @Success 201 {object} envelope{data=domain.User}
// @Failure 400 {object} envelope
// @Failure 409 {object} envelope
// @Router /api/users [post]
func (s *Server) createUser(c *gin.Context) {
	var req createUserReq
	if !bindRequired(c, &req, "Missing required fields: email, name") {
		return
	}
	u, err := s.users.Create(c.Request.Context(), domain.User{Email: req.Email, Name: req.Name, Address: req.Address})
	if err != nil {
		fail(c, err, userNotFound)
		return
	}
	respond(c, http.StatusCreated, u)
}

// @Summary Update user
// @Description Email uniqueness is not re-checked on update.
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param input body domain.UserPatch true "Fields to change"
// @Success 200 {object} envelope{data=domain.User}
// @Failure 404 {object} envelope
// @Router /api/users/{id} [put]
func (s *Server) updateUser(c *gin.Context) {
	var patch domain.UserPatch
	if !bindPatch(c, &patch) {
		return
	}
	u, err := s.users.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		fail(c, err, userNotFound)
		return
	}
	respond(c, http.StatusOK, u)
}
