package utils

import (
	"github.com/gin-gonic/gin"
)

const RoleAdmin = "ADMIN"

type UserClaims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
}

func (u *UserClaims) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

type contextKey string

const UserContextKey contextKey = "user"

func GetUser(c *gin.Context) *UserClaims {
	user, exists := c.Get(string(UserContextKey))
	if !exists {
		return nil
	}
	if userClaims, ok := user.(*UserClaims); ok {
		return userClaims
	}
	return nil
}
