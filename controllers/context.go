package controllers

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// currentUserID pulls the authed user's id out of the gin context set by the
// auth middleware.
func currentUserID(c *gin.Context) (bson.ObjectID, bool) {
	raw, ok := c.Get("userID")
	if !ok {
		return bson.ObjectID{}, false
	}
	str, ok := raw.(string)
	if !ok {
		return bson.ObjectID{}, false
	}
	id, err := bson.ObjectIDFromHex(str)
	if err != nil {
		return bson.ObjectID{}, false
	}
	return id, true
}
