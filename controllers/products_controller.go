package controllers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/roycode360/theglamstore-sub001/catalog"
	"github.com/roycode360/theglamstore-sub001/database"
	"github.com/roycode360/theglamstore-sub001/dto"
	"github.com/roycode360/theglamstore-sub001/models"
	"github.com/roycode360/theglamstore-sub001/utils"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func catalogEngine() *catalog.Engine {
	return catalog.NewEngine(
		&catalog.MongoCategoryStore{Col: database.OpenCollection("categories")},
		&catalog.MongoProductStore{Col: database.OpenCollection("products")},
	)
}

// GetProducts is the storefront listing endpoint. All filtering is delegated
// to the catalog engine; the handler only parses the query string.
func GetProducts() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		maxLimit, defaultLimit := utils.GetDefaultQueryLimits()
		page := utils.ParseIntDefault(c.Query("page"), 1)
		pageSize := utils.ParseIntDefault(c.Query("pageSize"), defaultLimit)
		if pageSize > maxLimit {
			pageSize = maxLimit
		}

		filters := catalog.Filters{
			Search:   strings.TrimSpace(c.Query("search")),
			Category: strings.TrimSpace(c.Query("category")),
			Brand:    strings.TrimSpace(c.Query("brand")),
			SortBy:   strings.TrimSpace(c.Query("sortBy")),
			SortDir:  strings.TrimSpace(c.Query("sortDir")),
		}

		minPrice, err := utils.ParseFloatQuery(c.Query("minPrice"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid minPrice"})
			return
		}
		maxPrice, err := utils.ParseFloatQuery(c.Query("maxPrice"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid maxPrice"})
			return
		}
		filters.MinPrice = minPrice
		filters.MaxPrice = maxPrice

		if b, err := utils.ParseBoolQuery(c.Query("inStock")); err == nil && b != nil {
			filters.InStockOnly = *b
		}
		if b, err := utils.ParseBoolQuery(c.Query("outOfStock")); err == nil && b != nil {
			filters.OutOfStock = *b
		}
		if b, err := utils.ParseBoolQuery(c.Query("onSale")); err == nil && b != nil {
			filters.OnSaleOnly = *b
		}

		// The storefront only shows active products unless the caller asks
		// for a specific active state (the admin console does).
		if b, err := utils.ParseBoolQuery(c.Query("active")); err == nil && b != nil {
			filters.Active = b
		} else {
			active := true
			filters.Active = &active
		}

		result, err := catalogEngine().ListProductsPage(ctx, page, pageSize, filters)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

func GetFeaturedProducts() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		productsCol := database.OpenCollection("products")

		limit := utils.ParseIntDefault(c.Query("limit"), 8)
		if limit < 1 {
			limit = 8
		}
		if limit > 24 {
			limit = 24
		}

		opts := options.Find().
			SetLimit(int64(limit)).
			SetSort(bson.D{{Key: "createdAt", Value: -1}})

		cursor, err := productsCol.Find(ctx, bson.M{"isFeatured": true, "isActive": true}, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		defer cursor.Close(ctx)

		products := make([]models.Product, 0)
		for cursor.Next(ctx) {
			var p models.Product
			if err := cursor.Decode(&p); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			products = append(products, p)
		}
		if err := cursor.Err(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"items": products})
	}
}

func GetProductBySlug() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		productsCol := database.OpenCollection("products")

		slug := strings.TrimSpace(c.Param("slug"))
		if slug == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing slug"})
			return
		}

		var product models.Product
		if err := productsCol.FindOne(ctx, bson.M{"slug": slug}).Decode(&product); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}

func AddProduct(v *utils.FileValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		collection := database.OpenCollection("products")

		jsonData := c.PostForm("data")
		if jsonData == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing data"})
			return
		}

		var body dto.CreateProductDTO
		if err := json.Unmarshal([]byte(jsonData), &body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid data json"})
			return
		}
		if body.Slug == "" {
			body.Slug = utils.GenerateSlug(body.Name)
		}

		var imageUrls []string
		if form, err := c.MultipartForm(); err == nil && form != nil {
			files := form.File["images"]
			if len(files) > 0 {
				for _, fh := range files {
					if _, err := v.ValidateFile(fh); err != nil {
						c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "file": fh.Filename})
						return
					}
				}
				gcsClient, bucket, err := utils.NewGCSClient(c)
				if err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create storage client"})
					return
				}
				imageUrls, err = utils.UploadImagesToGCSAndGetPublicURLs(
					c.Request.Context(), gcsClient, bucket, body.Slug, files,
				)
				if err != nil {
					c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
					return
				}
			}
		}

		now := time.Now().UTC()
		product := models.Product{
			Name:          body.Name,
			Slug:          body.Slug,
			Brand:         body.Brand,
			Category:      body.Category,
			Description:   body.Description,
			Price:         body.Price,
			SalePrice:     body.SalePrice,
			StockQuantity: body.StockQuantity,
			IsActive:      body.IsActive,
			IsFeatured:    body.IsFeatured,
			Sizes:         body.Sizes,
			Colors:        body.Colors,
			Images:        imageUrls,
			CreatedAt:     now,
			UpdatedAt:     now,
		}

		if _, err := collection.InsertOne(c.Request.Context(), product); err != nil {
			if utils.IsDuplicateKey(err) {
				c.JSON(http.StatusConflict, gin.H{"error": "slug already exists", "field": "slug"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}

func UpdateProduct(v *utils.FileValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		idHex := c.Param("id")
		prodID, err := bson.ObjectIDFromHex(idHex)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}
		collection := database.OpenCollection("products")

		dataStr := c.PostForm("data")
		if dataStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing data"})
			return
		}

		var body dto.UpdateProductDTO
		if err := json.Unmarshal([]byte(dataStr), &body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid data json", "details": err.Error()})
			return
		}

		ctx := c.Request.Context()

		// Load product first; image merging needs the current urls.
		var product models.Product
		if err := collection.FindOne(ctx, bson.M{"_id": prodID}).Decode(&product); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}

		imagesToDelete := intersectStrings(body.RemovedImagesUrls, product.Images)

		var uploadedUrls []string
		if form, err := c.MultipartForm(); err == nil && form != nil && len(form.File["images"]) > 0 {
			for _, fh := range form.File["images"] {
				if _, err := v.ValidateFile(fh); err != nil {
					c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "file": fh.Filename})
					return
				}
			}
			gcsClient, bucket, err := utils.NewGCSClient(c)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create storage client"})
				return
			}
			uploadedUrls, err = utils.UploadImagesToGCSAndGetPublicURLs(
				ctx, gcsClient, bucket, product.Slug, form.File["images"],
			)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
		}

		set := bson.M{}
		unset := bson.M{}

		if body.Name != nil {
			set["name"] = *body.Name
		}
		if body.Slug != nil {
			set["slug"] = *body.Slug
		}
		if body.Brand != nil {
			set["brand"] = *body.Brand
		}
		if body.Category != nil {
			set["category"] = *body.Category
		}
		if body.Description != nil {
			set["description"] = *body.Description
		}
		if body.Price != nil {
			set["price"] = *body.Price
		}
		if body.ClearSalePrice {
			unset["salePrice"] = ""
		} else if body.SalePrice != nil {
			set["salePrice"] = *body.SalePrice
		}
		if body.StockQuantity != nil {
			set["stockQuantity"] = *body.StockQuantity
		}
		if body.IsActive != nil {
			set["isActive"] = *body.IsActive
		}
		if body.IsFeatured != nil {
			set["isFeatured"] = *body.IsFeatured
		}
		if body.Sizes != nil {
			set["sizes"] = *body.Sizes
		}
		if body.Colors != nil {
			set["colors"] = *body.Colors
		}

		if len(imagesToDelete) > 0 || len(uploadedUrls) > 0 {
			set["images"] = mergeImageUrls(product.Images, imagesToDelete, uploadedUrls)
		}

		update := bson.M{}
		if len(set) > 0 {
			set["updatedAt"] = time.Now().UTC()
			update["$set"] = set
		}
		if len(unset) > 0 {
			update["$unset"] = unset
		}
		if len(update) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no updates provided"})
			return
		}

		if _, err := collection.UpdateByID(ctx, prodID, update); err != nil {
			if utils.IsDuplicateKey(err) {
				c.JSON(http.StatusConflict, gin.H{"error": "slug already exists", "field": "slug"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db update failed", "details": err.Error()})
			return
		}

		// DB update went fine, now drop replaced images from storage.
		if len(imagesToDelete) > 0 {
			gcsClient, bucket, err := utils.NewGCSClient(c)
			if err == nil {
				objectNames := make([]string, 0, len(imagesToDelete))
				for _, imageUrl := range imagesToDelete {
					if obj, err := utils.ObjectNameFromGCSPublicURL(bucket, imageUrl); err == nil {
						objectNames = append(objectNames, obj)
					}
				}
				_ = utils.DeleteGCSObjects(ctx, gcsClient, bucket, objectNames)
			}
		}

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

func DeleteProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		collection := database.OpenCollection("products")

		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}

		res, err := collection.DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if res.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

func intersectStrings(a, b []string) []string {
	set := make(map[string]struct{}, len(b))
	for _, x := range b {
		set[x] = struct{}{}
	}
	out := make([]string, 0)
	for _, x := range a {
		if _, ok := set[x]; ok {
			out = append(out, x)
		}
	}
	return out
}

func mergeImageUrls(oldUrls, toRemove, toAdd []string) []string {
	removeSet := make(map[string]struct{}, len(toRemove))
	for _, u := range toRemove {
		removeSet[u] = struct{}{}
	}

	final := make([]string, 0, len(oldUrls)+len(toAdd))
	exists := make(map[string]struct{})

	for _, u := range oldUrls {
		if _, shouldRemove := removeSet[u]; !shouldRemove {
			final = append(final, u)
			exists[u] = struct{}{}
		}
	}
	for _, u := range toAdd {
		if _, already := exists[u]; !already {
			final = append(final, u)
			exists[u] = struct{}{}
		}
	}
	return final
}
