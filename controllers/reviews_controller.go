package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/roycode360/theglamstore-sub001/database"
	"github.com/roycode360/theglamstore-sub001/dto"
	"github.com/roycode360/theglamstore-sub001/models"
	"github.com/roycode360/theglamstore-sub001/utils"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// GetProductReviews returns approved reviews only; pending and rejected ones
// are visible through the admin listing.
func GetProductReviews() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		reviewsCol := database.OpenCollection("reviews")

		productID, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}

		filter := bson.M{"productId": productID, "status": models.ReviewStatusApproved}

		cursor, err := reviewsCol.Find(ctx, filter,
			options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		defer cursor.Close(ctx)

		reviews := make([]models.Review, 0)
		var ratingSum int
		for cursor.Next(ctx) {
			var r models.Review
			if err := cursor.Decode(&r); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			reviews = append(reviews, r)
			ratingSum += r.Rating
		}
		if err := cursor.Err(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		avg := 0.0
		if len(reviews) > 0 {
			avg = float64(ratingSum) / float64(len(reviews))
		}

		c.JSON(http.StatusOK, gin.H{
			"items":         reviews,
			"count":         len(reviews),
			"averageRating": avg,
		})
	}
}

func CreateProductReview() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		reviewsCol := database.OpenCollection("reviews")
		productsCol := database.OpenCollection("products")

		productID, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}

		if err := productsCol.FindOne(ctx, bson.M{"_id": productID}).Err(); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}

		var body dto.CreateReviewDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		now := time.Now().UTC()
		review := models.Review{
			ProductID:   productID,
			AuthorName:  strings.TrimSpace(body.AuthorName),
			AuthorEmail: strings.ToLower(strings.TrimSpace(body.AuthorEmail)),
			Rating:      body.Rating,
			Title:       strings.TrimSpace(body.Title),
			Body:        strings.TrimSpace(body.Body),
			Status:      models.ReviewStatusPending,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		res, err := reviewsCol.InsertOne(ctx, review)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"id": res.InsertedID, "status": review.Status})
	}
}

func AdminGetReviews() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		reviewsCol := database.OpenCollection("reviews")

		page := utils.ParseIntDefault(c.Query("page"), 1)
		limit := utils.ParseIntDefault(c.Query("limit"), 20)
		if page < 1 {
			page = 1
		}
		if limit < 1 {
			limit = 20
		}
		if limit > 100 {
			limit = 100
		}
		skip := int64((page - 1) * limit)

		filter := bson.M{}
		if status := strings.TrimSpace(c.Query("status")); status != "" {
			filter["status"] = strings.ToUpper(status)
		}

		opts := options.Find().
			SetSkip(skip).
			SetLimit(int64(limit)).
			SetSort(bson.D{{Key: "createdAt", Value: -1}})

		cursor, err := reviewsCol.Find(ctx, filter, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		defer cursor.Close(ctx)

		reviews := make([]models.Review, 0)
		for cursor.Next(ctx) {
			var r models.Review
			if err := cursor.Decode(&r); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			reviews = append(reviews, r)
		}
		if err := cursor.Err(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		total, err := reviewsCol.CountDocuments(ctx, filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"items": reviews,
			"page":  page,
			"limit": limit,
			"total": total,
		})
	}
}

func AdminModerateReview() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		reviewsCol := database.OpenCollection("reviews")

		reviewID, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid review id"})
			return
		}

		var body dto.ModerateReviewDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		res, err := reviewsCol.UpdateByID(ctx, reviewID, bson.M{
			"$set": bson.M{
				"status":    models.ReviewStatus(body.Status),
				"updatedAt": time.Now().UTC(),
			},
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if res.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "review not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

func AdminDeleteReview() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		reviewsCol := database.OpenCollection("reviews")

		reviewID, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid review id"})
			return
		}

		res, err := reviewsCol.DeleteOne(ctx, bson.M{"_id": reviewID})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if res.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "review not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
