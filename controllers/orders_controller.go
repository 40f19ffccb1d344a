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

// CreateOrder snapshots the submitted items at their current effective
// prices. Stock is not reserved and coupons are recorded verbatim; pricing
// adjustments happen downstream.
func CreateOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		ordersCol := database.OpenCollection("orders")
		productsCol := database.OpenCollection("products")
		cartCol := database.OpenCollection("cart_items")

		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing auth context"})
			return
		}

		var body dto.CreateOrderDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		items := make([]models.OrderItem, 0, len(body.Items))
		var subtotal float64
		for _, line := range body.Items {
			productID, err := bson.ObjectIDFromHex(line.ProductID)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id: " + line.ProductID})
				return
			}

			var product models.Product
			if err := productsCol.FindOne(ctx, bson.M{"_id": productID, "isActive": true}).Decode(&product); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "product not available: " + line.ProductID})
				return
			}

			image := ""
			if len(product.Images) > 0 {
				image = product.Images[0]
			}

			unitPrice := product.EffectivePrice()
			items = append(items, models.OrderItem{
				ProductID: productID,
				Name:      product.Name,
				Image:     image,
				UnitPrice: unitPrice,
				Size:      line.Size,
				Color:     line.Color,
				Quantity:  line.Quantity,
			})
			subtotal += unitPrice * float64(line.Quantity)
		}

		now := time.Now().UTC()
		order := models.Order{
			OrderNumber: utils.NewOrderNumber(),
			UserID:      userID,
			FullName:    strings.TrimSpace(body.FullName),
			Email:       strings.ToLower(strings.TrimSpace(body.Email)),
			Phone:       strings.TrimSpace(body.Phone),
			Address: models.ShippingAddress{
				Line1:      body.Address.Line1,
				Line2:      body.Address.Line2,
				City:       body.Address.City,
				PostalCode: body.Address.PostalCode,
				Country:    body.Address.Country,
			},
			Items:      items,
			Subtotal:   subtotal,
			CouponCode: strings.ToUpper(strings.TrimSpace(body.CouponCode)),
			Status:     models.OrderStatusNew,
			CreatedAt:  now,
			UpdatedAt:  now,
		}

		res, err := ordersCol.InsertOne(ctx, order)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		// checkout empties the cart, best effort
		_, _ = cartCol.DeleteMany(ctx, bson.M{"userId": userID})

		c.JSON(http.StatusCreated, gin.H{
			"id":          res.InsertedID,
			"orderNumber": order.OrderNumber,
			"subtotal":    order.Subtotal,
			"status":      order.Status,
		})
	}
}

func GetMyOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		ordersCol := database.OpenCollection("orders")

		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing auth context"})
			return
		}

		cursor, err := ordersCol.Find(ctx, bson.M{"userId": userID},
			options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		defer cursor.Close(ctx)

		orders := make([]models.Order, 0)
		for cursor.Next(ctx) {
			var o models.Order
			if err := cursor.Decode(&o); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			orders = append(orders, o)
		}
		if err := cursor.Err(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"items": orders})
	}
}

func GetMyOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		ordersCol := database.OpenCollection("orders")

		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing auth context"})
			return
		}

		orderID, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
			return
		}

		var order models.Order
		if err := ordersCol.FindOne(ctx, bson.M{"_id": orderID, "userId": userID}).Decode(&order); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

func AdminGetOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		ordersCol := database.OpenCollection("orders")

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
		if email := strings.TrimSpace(c.Query("email")); email != "" {
			filter["email"] = strings.ToLower(email)
		}

		opts := options.Find().
			SetSkip(skip).
			SetLimit(int64(limit)).
			SetSort(bson.D{{Key: "createdAt", Value: -1}})

		cursor, err := ordersCol.Find(ctx, filter, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		defer cursor.Close(ctx)

		orders := make([]models.Order, 0)
		for cursor.Next(ctx) {
			var o models.Order
			if err := cursor.Decode(&o); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			orders = append(orders, o)
		}
		if err := cursor.Err(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		total, err := ordersCol.CountDocuments(ctx, filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"items": orders,
			"page":  page,
			"limit": limit,
			"total": total,
		})
	}
}

func AdminGetOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		ordersCol := database.OpenCollection("orders")

		orderID, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
			return
		}

		var order models.Order
		if err := ordersCol.FindOne(ctx, bson.M{"_id": orderID}).Decode(&order); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

func AdminUpdateOrderStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		ordersCol := database.OpenCollection("orders")

		orderID, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
			return
		}

		var body dto.UpdateOrderStatusDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		res, err := ordersCol.UpdateByID(ctx, orderID, bson.M{
			"$set": bson.M{
				"status":    models.OrderStatus(body.Status),
				"updatedAt": time.Now().UTC(),
			},
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if res.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
