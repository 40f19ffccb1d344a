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

func GetWishlist() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		wishlistCol := database.OpenCollection("wishlist_items")
		productsCol := database.OpenCollection("products")

		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing auth context"})
			return
		}

		cursor, err := wishlistCol.Find(ctx, bson.M{"userId": userID},
			options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		defer cursor.Close(ctx)

		productIDs := make([]bson.ObjectID, 0)
		for cursor.Next(ctx) {
			var item models.WishlistItem
			if err := cursor.Decode(&item); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			productIDs = append(productIDs, item.ProductID)
		}
		if err := cursor.Err(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		products := make([]models.Product, 0)
		if len(productIDs) > 0 {
			pCursor, err := productsCol.Find(ctx, bson.M{"_id": bson.M{"$in": productIDs}})
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			defer pCursor.Close(ctx)

			for pCursor.Next(ctx) {
				var p models.Product
				if err := pCursor.Decode(&p); err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
					return
				}
				products = append(products, p)
			}
			if err := pCursor.Err(); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{"items": products})
	}
}

func AddToWishlist() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		wishlistCol := database.OpenCollection("wishlist_items")
		productsCol := database.OpenCollection("products")

		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing auth context"})
			return
		}

		var body dto.WishlistItemDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		productID, err := bson.ObjectIDFromHex(body.ProductID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}

		if err := productsCol.FindOne(ctx, bson.M{"_id": productID}).Err(); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}

		filter := bson.M{"userId": userID, "productId": productID}
		update := bson.M{"$setOnInsert": bson.M{
			"userId":    userID,
			"productId": productID,
			"createdAt": time.Now().UTC(),
		}}

		if _, err := wishlistCol.UpdateOne(ctx, filter, update, options.UpdateOne().SetUpsert(true)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

func RemoveFromWishlist() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		wishlistCol := database.OpenCollection("wishlist_items")

		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing auth context"})
			return
		}

		productID, err := bson.ObjectIDFromHex(c.Param("productId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}

		res, err := wishlistCol.DeleteOne(ctx, bson.M{"userId": userID, "productId": productID})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if res.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "wishlist item not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
