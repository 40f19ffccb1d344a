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

func AdminCreateCoupon() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := database.OpenCollection("coupons")

		var body dto.CreateCouponDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		now := time.Now().UTC()
		coupon := models.Coupon{
			Code:        strings.ToUpper(strings.TrimSpace(body.Code)),
			Type:        models.CouponType(body.Type),
			Value:       body.Value,
			MinSubtotal: body.MinSubtotal,
			ExpiresAt:   body.ExpiresAt,
			IsActive:    body.IsActive,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		res, err := col.InsertOne(ctx, coupon)
		if err != nil {
			if utils.IsDuplicateKey(err) {
				c.JSON(http.StatusConflict, gin.H{"error": "code already exists", "field": "code"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"id": res.InsertedID, "code": coupon.Code})
	}
}

func AdminGetCoupons() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := database.OpenCollection("coupons")

		cursor, err := col.Find(ctx, bson.M{},
			options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		defer cursor.Close(ctx)

		coupons := make([]models.Coupon, 0)
		for cursor.Next(ctx) {
			var cp models.Coupon
			if err := cursor.Decode(&cp); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			coupons = append(coupons, cp)
		}
		if err := cursor.Err(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"items": coupons})
	}
}

func AdminUpdateCoupon() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := database.OpenCollection("coupons")

		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid coupon id"})
			return
		}

		var body dto.UpdateCouponDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		set := bson.M{}
		if body.Type != nil {
			set["type"] = models.CouponType(*body.Type)
		}
		if body.Value != nil {
			set["value"] = *body.Value
		}
		if body.MinSubtotal != nil {
			set["minSubtotal"] = *body.MinSubtotal
		}
		if body.ExpiresAt != nil {
			set["expiresAt"] = *body.ExpiresAt
		}
		if body.IsActive != nil {
			set["isActive"] = *body.IsActive
		}

		if len(set) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no updates provided"})
			return
		}
		set["updatedAt"] = time.Now().UTC()

		res, err := col.UpdateByID(ctx, id, bson.M{"$set": set})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if res.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "coupon not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

func AdminDeleteCoupon() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := database.OpenCollection("coupons")

		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid coupon id"})
			return
		}

		res, err := col.DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if res.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "coupon not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// ValidateCoupon checks code existence, active flag, expiry and minimum
// subtotal. It reports the coupon terms; applying them to a total is the
// checkout's concern.
func ValidateCoupon() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := database.OpenCollection("coupons")

		var body dto.ValidateCouponDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		code := strings.ToUpper(strings.TrimSpace(body.Code))

		var coupon models.Coupon
		if err := col.FindOne(ctx, bson.M{"code": code}).Decode(&coupon); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"valid": false, "error": "coupon not found"})
			return
		}

		if !coupon.IsActive {
			c.JSON(http.StatusOK, gin.H{"valid": false, "error": "coupon is not active"})
			return
		}
		if coupon.ExpiresAt != nil && coupon.ExpiresAt.Before(time.Now().UTC()) {
			c.JSON(http.StatusOK, gin.H{"valid": false, "error": "coupon has expired"})
			return
		}
		if body.Subtotal < coupon.MinSubtotal {
			c.JSON(http.StatusOK, gin.H{"valid": false, "error": "subtotal below coupon minimum"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"valid": true, "coupon": coupon})
	}
}
