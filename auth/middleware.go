package auth

import (
	"log"
	"strings"

	"MediLink360/util"

	"github.com/gin-gonic/gin"
)

// Context keys under which the authenticated principal is stored.
const (
	PrincipalID    = "userId"
	PrincipalEmail = "email"
)

/*
* Extract the bearer token from the Authorization header
* Verify it and attach the principal to the context
* Missing and invalid tokens both abort with 401
 */
func Middleware(issuer *Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			err := util.AuthError(util.NO_TOKEN_PROVIDED)
			c.AbortWithStatusJSON(util.StatusOf(err), util.FailedResponse(err))
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		claims, err := issuer.Verify(token)
		if err != nil {
			log.Println("Error from token verification: ", err)
			authErr := util.AuthError(util.TOKEN_NOT_VALID)
			c.AbortWithStatusJSON(util.StatusOf(authErr), util.FailedResponse(authErr))
			return
		}

		c.Set(PrincipalID, claims.ID)
		c.Set(PrincipalEmail, claims.Email)
		c.Next()
	}
}
