package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jkorir/dukani-api/models"
	"github.com/jkorir/dukani-api/services"
)

type ProductController struct {
	service *services.ProductService
}

func NewProductController(service *services.ProductService) *ProductController {
	return &ProductController{service: service}
}

func (c *ProductController) GetProducts(ctx *gin.Context) {
	products, err := c.service.List(ctx)
	if err != nil {
		sendInternalErrorResponse(ctx, "Error fetching products", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(products),
		"data":    products,
	})
}

func (c *ProductController) GetProduct(ctx *gin.Context) {
	product, err := c.service.Get(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Product not found")
		} else {
			sendInternalErrorResponse(ctx, "Error fetching product", err)
		}
		return
	}

	sendSuccessResponse(ctx, http.StatusOK, "", product)
}

func (c *ProductController) CreateProduct(ctx *gin.Context) {
	var input models.ProductInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := c.service.Create(ctx, input)
	if err != nil {
		var validationErr services.ValidationError
		if errors.As(err, &validationErr) {
			sendErrorResponse(ctx, http.StatusBadRequest, string(validationErr))
		} else {
			sendInternalErrorResponse(ctx, "Error creating product", err)
		}
		return
	}

	sendSuccessResponse(ctx, http.StatusCreated, "Product created successfully", product)
}

func (c *ProductController) UpdateProduct(ctx *gin.Context) {
	var update models.ProductUpdate
	if err := ctx.ShouldBindJSON(&update); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := c.service.Update(ctx, ctx.Param("id"), update)
	if err != nil {
		var validationErr services.ValidationError
		switch {
		case errors.As(err, &validationErr):
			sendErrorResponse(ctx, http.StatusBadRequest, string(validationErr))
		case errors.Is(err, services.ErrProductNotFound):
			sendErrorResponse(ctx, http.StatusNotFound, "Product not found")
		default:
			sendInternalErrorResponse(ctx, "Error updating product", err)
		}
		return
	}

	sendSuccessResponse(ctx, http.StatusOK, "Product updated successfully", product)
}

func (c *ProductController) DeleteProduct(ctx *gin.Context) {
	if err := c.service.Delete(ctx, ctx.Param("id")); err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Product not found")
		} else {
			sendInternalErrorResponse(ctx, "Error deleting product", err)
		}
		return
	}

	sendSuccessResponse(ctx, http.StatusOK, "Product deleted successfully", gin.H{})
}

func getAWSUploader() (*manager.Uploader, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return manager.NewUploader(client), nil
}

// UploadProductImage uploads one image to S3 and stores its public URL on
// the product.
func (c *ProductController) UploadProductImage(ctx *gin.Context) {
	id := ctx.Param("id")
	if _, err := c.service.Get(ctx, id); err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Product not found")
		} else {
			sendInternalErrorResponse(ctx, "Error fetching product", err)
		}
		return
	}

	file, err := ctx.FormFile("image")
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "No image file uploaded")
		return
	}

	f, err := file.Open()
	if err != nil {
		sendInternalErrorResponse(ctx, "Error reading uploaded file", err)
		return
	}
	defer f.Close()

	uploader, err := getAWSUploader()
	if err != nil {
		sendInternalErrorResponse(ctx, "Failed to configure AWS", err)
		return
	}

	bucket := os.Getenv("AWS_BUCKET")
	if bucket == "" {
		bucket = "dukani"
	}
	key := fmt.Sprintf("products/%s-%s-%s", id, uuid.New().String(), file.Filename)

	result, err := uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        f,
		ACL:         "public-read",
		ContentType: aws.String(file.Header.Get("Content-Type")),
	})
	if err != nil {
		sendInternalErrorResponse(ctx, "Failed to upload image", err)
		return
	}

	product, err := c.service.Update(ctx, id, models.ProductUpdate{Image: &result.Location})
	if err != nil {
		sendInternalErrorResponse(ctx, "Error saving image URL", err)
		return
	}

	sendSuccessResponse(ctx, http.StatusOK, "Product image uploaded successfully", product)
}
