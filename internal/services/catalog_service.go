// internal/services/catalog_service.go
package services

import (
	"errors"
	"mime/multipart"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/atelierkado/boutique-backend/internal/apperrors"
	"github.com/atelierkado/boutique-backend/internal/config"
	"github.com/atelierkado/boutique-backend/internal/models"
	"github.com/atelierkado/boutique-backend/internal/utils"
)

// CatalogService owns the product catalog: base products with uploaded
// images and the priced variant kinds. Variant prices are always recomputed
// from the pricing rule; a client-supplied price is only honored for
// standard products.
type CatalogService struct {
	db      *gorm.DB
	storage *StorageService
	cfg     *config.Config
}

type CreateProductRequest struct {
	Name        string          `form:"name" validate:"required,min=1,max=255"`
	Description string          `form:"description"`
	Category    string          `form:"category"`
	Price       decimal.Decimal `form:"price"`
	Tags        []string        `form:"tags"`
}

type UpdateProductRequest struct {
	Name        string           `form:"name" validate:"omitempty,min=1,max=255"`
	Description *string          `form:"description"`
	Category    string           `form:"category"`
	Price       *decimal.Decimal `form:"price"`
	Tags        []string         `form:"tags"`
}

type CreateTShirtRequest struct {
	Name        string   `json:"name" validate:"required,min=1,max=255"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Size        string   `json:"size" validate:"required,oneof=S M L XL XXL"`
	Color       string   `json:"color" validate:"required"`
	CustomText  string   `json:"custom_text"`
	FontStyle   string   `json:"font_style"`
	FontColor   string   `json:"font_color"`
	HasImage    bool     `json:"has_image"`
}

type CustomizeTShirtRequest struct {
	CustomText *string `json:"custom_text"`
	FontStyle  *string `json:"font_style"`
	FontColor  *string `json:"font_color"`
	HasImage   *bool   `json:"has_image"`
}

type CreateMugRequest struct {
	Name          string   `json:"name" validate:"required,min=1,max=255"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Tags          []string `json:"tags"`
	InteriorColor string   `json:"interior_color" validate:"required"`
	PrintedText   string   `json:"printed_text"`
}

type CustomizeMugRequest struct {
	InteriorColor *string `json:"interior_color"`
	PrintedText   *string `json:"printed_text"`
}

type CreateJewelryRequest struct {
	Name        string   `json:"name" validate:"required,min=1,max=255"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Material    string   `json:"material" validate:"required"`
	Engraving   string   `json:"engraving"`
	Shape       string   `json:"shape"`
	Color       string   `json:"color"`
}

type CustomizeJewelryRequest struct {
	Engraving *string `json:"engraving"`
	Shape     *string `json:"shape"`
	Color     *string `json:"color"`
}

type ProductSearchParams struct {
	utils.PaginationParams
	Kind *models.ProductKind
}

func NewCatalogService(db *gorm.DB, storage *StorageService, cfg *config.Config) *CatalogService {
	return &CatalogService{
		db:      db,
		storage: storage,
		cfg:     cfg,
	}
}

// CreateProduct stores a base product. The image is mandatory and its
// relative key comes from the blob store.
func (s *CatalogService) CreateProduct(req *CreateProductRequest, file multipart.File, header *multipart.FileHeader) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Wrap(apperrors.KindValidation, "validation failed", err)
	}

	if file == nil || header == nil {
		return nil, apperrors.New(apperrors.KindValidation, "an image is required")
	}

	if req.Price.IsNegative() {
		return nil, apperrors.New(apperrors.KindValidation, "price must not be negative")
	}

	upload, err := s.storage.Upload(file, header)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindValidation, "image upload rejected", err)
	}

	product := &models.Product{
		Kind:        models.ProductKindStandard,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Tags:        req.Tags,
		ImagePath:   upload.Key,
	}

	if err := s.db.Create(product).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "failed to create product", err)
	}

	return s.withImageURL(product), nil
}

func (s *CatalogService) CreateTShirt(req *CreateTShirtRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Wrap(apperrors.KindValidation, "validation failed", err)
	}

	product := &models.Product{
		Kind:        models.ProductKindTShirt,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Tags:        req.Tags,
		TShirt: &models.TShirtDetails{
			Size:       req.Size,
			Color:      req.Color,
			CustomText: req.CustomText,
			FontStyle:  req.FontStyle,
			FontColor:  req.FontColor,
			HasImage:   req.HasImage,
		},
	}

	return s.createVariant(product)
}

func (s *CatalogService) CreateMug(req *CreateMugRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Wrap(apperrors.KindValidation, "validation failed", err)
	}

	product := &models.Product{
		Kind:        models.ProductKindMug,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Tags:        req.Tags,
		Mug: &models.MugDetails{
			InteriorColor: req.InteriorColor,
			PrintedText:   req.PrintedText,
		},
	}

	return s.createVariant(product)
}

func (s *CatalogService) CreateJewelry(req *CreateJewelryRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Wrap(apperrors.KindValidation, "validation failed", err)
	}

	product := &models.Product{
		Kind:        models.ProductKindJewelry,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Tags:        req.Tags,
		Jewelry: &models.JewelryDetails{
			Material:  req.Material,
			Engraving: req.Engraving,
			Shape:     req.Shape,
			Color:     req.Color,
		},
	}

	return s.createVariant(product)
}

// createVariant persists a variant after recomputing its price. The stored
// price is never the caller's.
func (s *CatalogService) createVariant(product *models.Product) (*models.Product, error) {
	if !product.RecomputePrice() {
		return nil, apperrors.New(apperrors.KindValidation, "missing variant details")
	}

	if err := s.db.Create(product).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "failed to create product", err)
	}

	return s.withImageURL(product), nil
}

func (s *CatalogService) ListProducts(params ProductSearchParams) ([]models.Product, int64, error) {
	var products []models.Product
	var total int64

	query := s.db.Model(&models.Product{})
	if params.Kind != nil {
		query = query.Where("kind = ?", *params.Kind)
	}
	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}
	if params.Search != "" {
		query = query.Where("name ILIKE ?", "%"+params.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(apperrors.KindInternal, "database error", err)
	}

	// Newest first, matching the catalog listing contract
	query = utils.ApplySort(query, params.PaginationParams, []string{"created_at", "price", "name"})
	query = utils.ApplyPagination(query, params.PaginationParams)
	if err := query.Find(&products).Error; err != nil {
		return nil, 0, apperrors.Wrap(apperrors.KindInternal, "database error", err)
	}

	for i := range products {
		s.withImageURL(&products[i])
	}
	return products, total, nil
}

func (s *CatalogService) GetProduct(id uuid.UUID) (*models.Product, error) {
	product, err := s.findProduct(id)
	if err != nil {
		return nil, err
	}
	return s.withImageURL(product), nil
}

// UpdateProduct applies a partial update to a base product. A replacement
// image releases the previous blob; a failed release is logged and never
// aborts the update.
func (s *CatalogService) UpdateProduct(id uuid.UUID, req *UpdateProductRequest, file multipart.File, header *multipart.FileHeader) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Wrap(apperrors.KindValidation, "validation failed", err)
	}

	product, err := s.findProduct(id)
	if err != nil {
		return nil, err
	}

	if file != nil && header != nil {
		upload, err := s.storage.Upload(file, header)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.KindValidation, "image upload rejected", err)
		}
		s.releaseBlob(product.ImagePath)
		product.ImagePath = upload.Key
	}

	if req.Name != "" {
		product.Name = req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Category != "" {
		product.Category = req.Category
	}
	if len(req.Tags) > 0 {
		product.Tags = req.Tags
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, apperrors.New(apperrors.KindValidation, "price must not be negative")
		}
		product.Price = *req.Price
	}

	// Variants never keep a caller-supplied price
	product.RecomputePrice()

	if err := s.db.Save(product).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "failed to update product", err)
	}

	return s.withImageURL(product), nil
}

func (s *CatalogService) CustomizeTShirt(id uuid.UUID, req *CustomizeTShirtRequest) (*models.Product, error) {
	product, err := s.findVariant(id, models.ProductKindTShirt)
	if err != nil {
		return nil, err
	}

	if req.CustomText != nil {
		product.TShirt.CustomText = *req.CustomText
	}
	if req.FontStyle != nil {
		product.TShirt.FontStyle = *req.FontStyle
	}
	if req.FontColor != nil {
		product.TShirt.FontColor = *req.FontColor
	}
	if req.HasImage != nil {
		product.TShirt.HasImage = *req.HasImage
	}

	return s.saveVariant(product)
}

func (s *CatalogService) CustomizeMug(id uuid.UUID, req *CustomizeMugRequest) (*models.Product, error) {
	product, err := s.findVariant(id, models.ProductKindMug)
	if err != nil {
		return nil, err
	}

	if req.InteriorColor != nil && *req.InteriorColor != "" {
		product.Mug.InteriorColor = *req.InteriorColor
	}
	if req.PrintedText != nil {
		product.Mug.PrintedText = *req.PrintedText
	}

	return s.saveVariant(product)
}

func (s *CatalogService) CustomizeJewelry(id uuid.UUID, req *CustomizeJewelryRequest) (*models.Product, error) {
	product, err := s.findVariant(id, models.ProductKindJewelry)
	if err != nil {
		return nil, err
	}

	if req.Engraving != nil {
		product.Jewelry.Engraving = *req.Engraving
	}
	if req.Shape != nil {
		product.Jewelry.Shape = *req.Shape
	}
	if req.Color != nil {
		product.Jewelry.Color = *req.Color
	}

	return s.saveVariant(product)
}

// DeleteProduct removes the entity and releases its blob best-effort.
func (s *CatalogService) DeleteProduct(id uuid.UUID) error {
	product, err := s.findProduct(id)
	if err != nil {
		return err
	}

	if err := s.db.Delete(product).Error; err != nil {
		return apperrors.Wrap(apperrors.KindInternal, "failed to delete product", err)
	}

	s.releaseBlob(product.ImagePath)
	return nil
}

func (s *CatalogService) findProduct(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.KindNotFound, "product not found")
		}
		return nil, apperrors.Wrap(apperrors.KindInternal, "database error", err)
	}
	return &product, nil
}

func (s *CatalogService) findVariant(id uuid.UUID, kind models.ProductKind) (*models.Product, error) {
	product, err := s.findProduct(id)
	if err != nil {
		return nil, err
	}
	if product.Kind != kind || product.Customization() == nil {
		return nil, apperrors.Newf(apperrors.KindNotFound, "%s not found", kind)
	}
	return product, nil
}

func (s *CatalogService) saveVariant(product *models.Product) (*models.Product, error) {
	product.RecomputePrice()
	if err := s.db.Save(product).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "failed to update product", err)
	}
	return s.withImageURL(product), nil
}

func (s *CatalogService) releaseBlob(key string) {
	if key == "" {
		return
	}
	if err := s.storage.Delete(key); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("Failed to release image blob")
	}
}

// withImageURL rewrites the stored relative path into an absolute URL.
// Response shaping only; the stored path stays relative.
func (s *CatalogService) withImageURL(p *models.Product) *models.Product {
	p.ImageURL = AbsoluteImageURL(s.cfg.Upload.BaseURL, p.ImagePath)
	return p
}

// AbsoluteImageURL joins the public base URL and a stored relative path.
func AbsoluteImageURL(baseURL, relPath string) string {
	if relPath == "" {
		return ""
	}
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(relPath, "/")
}
