package cookie

import (
	"github.com/gin-gonic/gin"
)

// Tokens are issued by the identity service; this service only reads them.
const AccessTokenCookieName = "access_token"

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}
