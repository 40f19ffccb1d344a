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

func AddCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := database.OpenCollection("categories")

		var body dto.CreateCategoryDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		body.Name = strings.TrimSpace(body.Name)
		body.Slug = strings.TrimSpace(body.Slug)
		if body.Slug == "" {
			body.Slug = utils.GenerateSlug(body.Name)
		}

		var parentID *bson.ObjectID
		if body.ParentId != nil && strings.TrimSpace(*body.ParentId) != "" {
			pid, err := bson.ObjectIDFromHex(strings.TrimSpace(*body.ParentId))
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid parentId"})
				return
			}
			// the parent must exist; a dangling pointer would orphan the subtree
			var parent models.Category
			if err := col.FindOne(ctx, bson.M{"_id": pid}).Decode(&parent); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "parent category not found"})
				return
			}
			parentID = &pid
		}

		now := time.Now().UTC()
		doc := models.Category{
			Name:        body.Name,
			Slug:        body.Slug,
			Description: body.Description,
			ParentId:    parentID,
			IsActive:    body.IsActive,
			ImageUrl:    body.ImageUrl,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		res, err := col.InsertOne(ctx, doc)
		if err != nil {
			if utils.IsDuplicateKey(err) {
				c.JSON(http.StatusConflict, gin.H{"error": "slug already exists", "field": "slug"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"id": res.InsertedID})
	}
}

func GetCategories() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := database.OpenCollection("categories")

		// pagination (optional)
		page := utils.ParseIntDefault(c.Query("page"), 1)
		limit := utils.ParseIntDefault(c.Query("limit"), 50)
		if page < 1 {
			page = 1
		}
		if limit < 1 {
			limit = 50
		}
		if limit > 200 {
			limit = 200
		}
		skip := int64((page - 1) * limit)

		q := strings.TrimSpace(c.Query("q"))

		filter := bson.M{}
		if q != "" {
			filter["name"] = bson.M{"$regex": q, "$options": "i"}
		}
		if b, err := utils.ParseBoolQuery(c.Query("active")); err == nil && b != nil {
			filter["isActive"] = *b
		}

		opts := options.Find().
			SetSkip(skip).
			SetLimit(int64(limit)).
			SetSort(bson.D{{Key: "name", Value: 1}})

		cursor, err := col.Find(ctx, filter, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		defer cursor.Close(ctx)

		items := make([]models.Category, 0)
		for cursor.Next(ctx) {
			var cat models.Category
			if err := cursor.Decode(&cat); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			items = append(items, cat)
		}
		if err := cursor.Err(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		total, err := col.CountDocuments(ctx, filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"items": items,
			"page":  page,
			"limit": limit,
			"total": total,
		})
	}
}

type categoryNode struct {
	models.Category
	Children []*categoryNode `json:"children"`
}

// GetCategoryTree groups every category under its parent, roots first.
func GetCategoryTree() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := database.OpenCollection("categories")

		cursor, err := col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		defer cursor.Close(ctx)

		nodes := make(map[bson.ObjectID]*categoryNode)
		order := make([]*categoryNode, 0)
		for cursor.Next(ctx) {
			var cat models.Category
			if err := cursor.Decode(&cat); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			node := &categoryNode{Category: cat, Children: make([]*categoryNode, 0)}
			nodes[cat.Id] = node
			order = append(order, node)
		}
		if err := cursor.Err(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		roots := make([]*categoryNode, 0)
		for _, node := range order {
			if node.ParentId != nil {
				if parent, ok := nodes[*node.ParentId]; ok {
					parent.Children = append(parent.Children, node)
					continue
				}
			}
			// root, or an orphan whose parent was deleted
			roots = append(roots, node)
		}

		c.JSON(http.StatusOK, gin.H{"items": roots})
	}
}

func GetCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := database.OpenCollection("categories")

		idHex := c.Param("id")
		slug := strings.TrimSpace(c.Param("slug"))
		if idHex == "" && slug == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No Id or slug provided"})
			return
		}

		filter := bson.M{"slug": slug}
		if idHex != "" {
			id, err := bson.ObjectIDFromHex(idHex)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
				return
			}
			filter = bson.M{"_id": id}
		}

		var cat models.Category
		if err := col.FindOne(ctx, filter).Decode(&cat); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
			return
		}

		c.JSON(http.StatusOK, cat)
	}
}

func UpdateCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := database.OpenCollection("categories")

		idHex := c.Param("id")
		id, err := bson.ObjectIDFromHex(idHex)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
			return
		}

		var body dto.UpdateCategoryDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		set := bson.M{}
		unset := bson.M{}
		if body.Name != nil {
			v := strings.TrimSpace(*body.Name)
			if v == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "name cannot be empty"})
				return
			}
			set["name"] = v
		}
		if body.Slug != nil {
			v := strings.TrimSpace(*body.Slug)
			if v == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "slug cannot be empty"})
				return
			}
			set["slug"] = v
		}
		if body.Description != nil {
			set["description"] = strings.TrimSpace(*body.Description)
		}
		if body.ImageUrl != nil {
			set["imageUrl"] = strings.TrimSpace(*body.ImageUrl)
		}
		if body.IsActive != nil {
			set["isActive"] = *body.IsActive
		}
		if body.ParentId != nil {
			v := strings.TrimSpace(*body.ParentId)
			if v == "" {
				unset["parentId"] = ""
			} else {
				pid, err := bson.ObjectIDFromHex(v)
				if err != nil {
					c.JSON(http.StatusBadRequest, gin.H{"error": "invalid parentId"})
					return
				}
				if pid == id {
					c.JSON(http.StatusBadRequest, gin.H{"error": "category cannot be its own parent"})
					return
				}
				var parent models.Category
				if err := col.FindOne(ctx, bson.M{"_id": pid}).Decode(&parent); err != nil {
					c.JSON(http.StatusBadRequest, gin.H{"error": "parent category not found"})
					return
				}
				set["parentId"] = pid
			}
		}

		if len(set) == 0 && len(unset) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no updates provided"})
			return
		}

		update := bson.M{}
		if len(set) > 0 {
			set["updatedAt"] = time.Now().UTC()
			update["$set"] = set
		}
		if len(unset) > 0 {
			update["$unset"] = unset
		}

		res, err := col.UpdateByID(ctx, id, update)
		if err != nil {
			if utils.IsDuplicateKey(err) {
				c.JSON(http.StatusConflict, gin.H{"error": "slug already exists", "field": "slug"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if res.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

func DeleteCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := database.OpenCollection("categories")

		idHex := c.Param("id")
		id, err := bson.ObjectIDFromHex(idHex)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
			return
		}

		// re-root any children so the hierarchy never dangles
		if _, err := col.UpdateMany(ctx, bson.M{"parentId": id}, bson.M{"$unset": bson.M{"parentId": ""}}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		res, err := col.DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if res.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
