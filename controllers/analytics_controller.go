package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/roycode360/theglamstore-sub001/database"
	"github.com/roycode360/theglamstore-sub001/dto"
	"github.com/roycode360/theglamstore-sub001/models"
	"github.com/roycode360/theglamstore-sub001/utils"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func RecordEvent() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		eventsCol := database.OpenCollection("analytics_events")

		var body dto.RecordEventDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		event := models.AnalyticsEvent{
			Type:      models.AnalyticsEventType(body.Type),
			Path:      body.Path,
			CreatedAt: time.Now().UTC(),
		}
		if body.ProductID != "" {
			pid, err := bson.ObjectIDFromHex(body.ProductID)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
				return
			}
			event.ProductID = &pid
		}

		if _, err := eventsCol.InsertOne(ctx, event); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"ok": true})
	}
}

// AdminGetAnalyticsSummary counts events per type since a cutoff (days back,
// default 30).
func AdminGetAnalyticsSummary() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		eventsCol := database.OpenCollection("analytics_events")
		ordersCol := database.OpenCollection("orders")

		days := utils.ParseIntDefault(c.Query("days"), 30)
		if days < 1 {
			days = 30
		}
		since := time.Now().UTC().AddDate(0, 0, -days)

		counts := gin.H{}
		for _, eventType := range []models.AnalyticsEventType{
			models.EventPageView,
			models.EventProductView,
			models.EventAddToCart,
			models.EventOrderPlaced,
		} {
			n, err := eventsCol.CountDocuments(ctx, bson.M{
				"type":      eventType,
				"createdAt": bson.M{"$gte": since},
			})
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			counts[string(eventType)] = n
		}

		orderCount, err := ordersCol.CountDocuments(ctx, bson.M{"createdAt": bson.M{"$gte": since}})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"since":  since,
			"events": counts,
			"orders": orderCount,
		})
	}
}
