// internal/handlers/variant.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/atelierkado/boutique-backend/internal/i18n"
	"github.com/atelierkado/boutique-backend/internal/models"
	"github.com/atelierkado/boutique-backend/internal/services"
	"github.com/atelierkado/boutique-backend/internal/utils"
)

// VariantHandler exposes the per-kind creation, listing, and customization
// routes. Prices in every response come from the pricing rule, never from
// the request.
type VariantHandler struct {
	catalogService *services.CatalogService
}

func NewVariantHandler(catalogService *services.CatalogService) *VariantHandler {
	return &VariantHandler{catalogService: catalogService}
}

// POST /tshirts
func (h *VariantHandler) CreateTShirt(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateTShirtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	product, err := h.catalogService.CreateTShirt(&req)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductCreated),
		"product": product,
	})
}

// GET /tshirts
func (h *VariantHandler) ListTShirts(c *gin.Context) {
	h.listByKind(c, models.ProductKindTShirt)
}

// PUT /tshirts/:id
func (h *VariantHandler) CustomizeTShirt(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	var req services.CustomizeTShirtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	product, err := h.catalogService.CustomizeTShirt(id, &req)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductUpdated),
		"product": product,
	})
}

// POST /mugs
func (h *VariantHandler) CreateMug(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateMugRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	product, err := h.catalogService.CreateMug(&req)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductCreated),
		"product": product,
	})
}

// GET /mugs
func (h *VariantHandler) ListMugs(c *gin.Context) {
	h.listByKind(c, models.ProductKindMug)
}

// PUT /mugs/:id
func (h *VariantHandler) CustomizeMug(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	var req services.CustomizeMugRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	product, err := h.catalogService.CustomizeMug(id, &req)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductUpdated),
		"product": product,
	})
}

// POST /jewelry
func (h *VariantHandler) CreateJewelry(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateJewelryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	product, err := h.catalogService.CreateJewelry(&req)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductCreated),
		"product": product,
	})
}

// GET /jewelry
func (h *VariantHandler) ListJewelry(c *gin.Context) {
	h.listByKind(c, models.ProductKindJewelry)
}

// PUT /jewelry/:id
func (h *VariantHandler) CustomizeJewelry(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	var req services.CustomizeJewelryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	product, err := h.catalogService.CustomizeJewelry(id, &req)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductUpdated),
		"product": product,
	})
}

func (h *VariantHandler) listByKind(c *gin.Context, kind models.ProductKind) {
	params := services.ProductSearchParams{
		PaginationParams: utils.GetPaginationParams(c),
		Kind:             &kind,
	}

	products, total, err := h.catalogService.ListProducts(params)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	result := utils.CreatePaginationResult(products, total, params.PaginationParams)
	utils.PaginatedResponse(c, result)
}
