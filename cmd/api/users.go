package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/ropa-market/internal/auth"
	"github.com/MikeMC777/ropa-market/internal/httpx"
	"github.com/MikeMC777/ropa-market/internal/user"
)

// signupHandler godoc
// @Summary  Register a new account
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body user.SignupRequest true "account"
// @Success  201 {object} user.AuthResponse
// @Failure  400 {object} httpx.HTTPError
// @Failure  409 {object} httpx.HTTPError
// @Router   /api/auth/signup [post]
func signupHandler(svc *user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in user.SignupRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.BadRequest(c, "invalid json")
			return
		}
		out, err := svc.Signup(c.Request.Context(), in)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusCreated, out)
	}
}

// loginHandler godoc
// @Summary  Exchange credentials for a token
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body user.LoginRequest true "credentials"
// @Success  200 {object} user.AuthResponse
// @Failure  401 {object} httpx.HTTPError
// @Router   /api/auth/login [post]
func loginHandler(svc *user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in user.LoginRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.BadRequest(c, "invalid json")
			return
		}
		out, err := svc.Login(c.Request.Context(), in)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// meHandler godoc
// @Summary   Current user profile
// @Tags      users
// @Produce   json
// @Security  BearerAuth
// @Success   200 {object} user.User
// @Router    /api/users/me [get]
func meHandler(svc *user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := svc.Get(c.Request.Context(), auth.MustIdentity(c).UserID)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, u)
	}
}

// updateMeHandler godoc
// @Summary   Update profile fields
// @Tags      users
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     body body user.UpdateProfileRequest true "fields to change"
// @Success   200 {object} user.User
// @Router    /api/users/me [put]
func updateMeHandler(svc *user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in user.UpdateProfileRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.BadRequest(c, "invalid json")
			return
		}
		u, err := svc.UpdateProfile(c.Request.Context(), auth.MustIdentity(c).UserID, in)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, u)
	}
}

// changePasswordHandler godoc
// @Summary   Change password
// @Tags      users
// @Accept    json
// @Security  BearerAuth
// @Param     body body user.ChangePasswordRequest true "old and new password"
// @Success   204
// @Failure   403 {object} httpx.HTTPError
// @Router    /api/users/me/password [put]
func changePasswordHandler(svc *user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in user.ChangePasswordRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.BadRequest(c, "invalid json")
			return
		}
		if err := svc.ChangePassword(c.Request.Context(), auth.MustIdentity(c).UserID, in); err != nil {
			httpx.Error(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

type roleRequest struct {
	Role string `json:"role" example:"admin"`
}

// setRoleHandler godoc
// @Summary   Change a user's role
// @Tags      admin
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     id   path string      true "user id"
// @Param     body body roleRequest true "new role"
// @Success   200 {object} user.User
// @Router    /api/admin/users/{id}/role [put]
func setRoleHandler(svc *user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httpx.UUIDParam(c, "id")
		if !ok {
			return
		}
		var in roleRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.BadRequest(c, "invalid json")
			return
		}
		u, err := svc.SetRole(c.Request.Context(), id, in.Role)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, u)
	}
}
