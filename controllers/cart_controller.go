package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/roycode360/theglamstore-sub001/database"
	"github.com/roycode360/theglamstore-sub001/dto"
	"github.com/roycode360/theglamstore-sub001/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func GetCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		cartCol := database.OpenCollection("cart_items")

		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing auth context"})
			return
		}

		cursor, err := cartCol.Find(ctx, bson.M{"userId": userID},
			options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		defer cursor.Close(ctx)

		items := make([]models.CartItem, 0)
		var subtotal float64
		for cursor.Next(ctx) {
			var item models.CartItem
			if err := cursor.Decode(&item); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			items = append(items, item)
			subtotal += item.UnitPrice * float64(item.Quantity)
		}
		if err := cursor.Err(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"items": items, "subtotal": subtotal})
	}
}

func AddToCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		cartCol := database.OpenCollection("cart_items")
		productsCol := database.OpenCollection("products")

		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing auth context"})
			return
		}

		var body dto.AddCartItemDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		productID, err := bson.ObjectIDFromHex(body.ProductID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}

		var product models.Product
		if err := productsCol.FindOne(ctx, bson.M{"_id": productID, "isActive": true}).Decode(&product); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}

		image := ""
		if len(product.Images) > 0 {
			image = product.Images[0]
		}

		now := time.Now().UTC()
		filter := bson.M{
			"userId":    userID,
			"productId": productID,
			"size":      body.Size,
			"color":     body.Color,
		}
		update := bson.M{
			"$inc": bson.M{"quantity": body.Quantity},
			"$set": bson.M{
				"name":      product.Name,
				"image":     image,
				"unitPrice": product.EffectivePrice(),
				"updatedAt": now,
			},
			"$setOnInsert": bson.M{
				"userId":    userID,
				"productId": productID,
				"size":      body.Size,
				"color":     body.Color,
				"createdAt": now,
			},
		}

		if _, err := cartCol.UpdateOne(ctx, filter, update, options.UpdateOne().SetUpsert(true)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

func UpdateCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		cartCol := database.OpenCollection("cart_items")

		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing auth context"})
			return
		}

		itemID, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cart item id"})
			return
		}

		var body dto.UpdateCartItemDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		res, err := cartCol.UpdateOne(ctx,
			bson.M{"_id": itemID, "userId": userID},
			bson.M{"$set": bson.M{"quantity": body.Quantity, "updatedAt": time.Now().UTC()}},
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if res.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "cart item not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

func RemoveCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		cartCol := database.OpenCollection("cart_items")

		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing auth context"})
			return
		}

		itemID, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cart item id"})
			return
		}

		res, err := cartCol.DeleteOne(ctx, bson.M{"_id": itemID, "userId": userID})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if res.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "cart item not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

func ClearCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		cartCol := database.OpenCollection("cart_items")

		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing auth context"})
			return
		}

		if _, err := cartCol.DeleteMany(ctx, bson.M{"userId": userID}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
