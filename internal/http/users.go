package http

import (
	"github.com/gin-gonic/gin"
)

type UsersController struct {
	users    UserResolver
	username string
}

func NewUsersController(users UserResolver, username string) *UsersController {
	return &UsersController{users: users, username: username}
}

// CurrentUser returns the provisioned user the service acts for. This is
// the placeholder for a future login endpoint.
// GET /
func (uc *UsersController) CurrentUser(c *gin.Context) {
	user, err := uc.users.CurrentUser(uc.username)
	if err != nil {
		respondStorageError(c, err, "current user")
		return
	}
	respondOK(c, "OK", gin.H{"user": user})
}
