package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
)

type SigninInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type PasswordUpdateInput struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// setTokenCookie mirrors the token into an httpOnly cookie alongside
// the JSON body.
func setTokenCookie(c *gin.Context, token string, maxAge time.Duration) {
	c.SetCookie("jwt", token, int(maxAge.Seconds()), "/", "", false, true)
}
