package ui

import (
	"net/http"
	"strconv"

	"reeladmin/app"
	"reeladmin/models"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleListUsers(c *gin.Context) {
	page := queryInt(c, "page", 1)
	perPage := queryInt(c, "per_page", 20)
	search := c.Query("search")

	userPage, err := s.users.ListUsers(c.Request.Context(), page, perPage, search)
	if err != nil {
		respondAppError(c, err)
		return
	}
	respondOK(c, gin.H{
		"users":      userPage.Users,
		"pagination": userPage.Pagination,
	})
}

func (s *Server) handleGetUser(c *gin.Context) {
	user, err := s.users.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondAppError(c, err)
		return
	}
	respondOK(c, gin.H{"user": user})
}

func (s *Server) handleCreateUser(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := s.users.CreateUser(c.Request.Context(), &user); err != nil {
		respondAppError(c, err)
		return
	}
	respondOK(c, gin.H{"user": user, "message": "user created"})
}

func (s *Server) handleUpdateUser(c *gin.Context) {
	var update app.UserUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	user, err := s.users.UpdateUser(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		respondAppError(c, err)
		return
	}
	respondOK(c, gin.H{"user": user, "message": "user updated"})
}

func (s *Server) handleDeleteUser(c *gin.Context) {
	if err := s.users.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		respondAppError(c, err)
		return
	}
	respondMessage(c, "user deleted")
}

// queryInt parses an integer query parameter with a fallback default.
func queryInt(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
