// internal/services/order_service.go
package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/atelierkado/boutique-backend/internal/apperrors"
	"github.com/atelierkado/boutique-backend/internal/database"
	"github.com/atelierkado/boutique-backend/internal/models"
	"github.com/atelierkado/boutique-backend/internal/utils"
)

// OrderService resolves requested variants, prices the lines, and persists
// the denormalized order snapshot. Resolution happens entirely before the
// persist step: an unresolvable variant aborts the whole order.
type OrderService struct {
	db *gorm.DB
}

type OrderLineRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
}

type CreateOrderRequest struct {
	UserID uuid.UUID          `json:"user_id" validate:"required"`
	Items  []OrderLineRequest `json:"items" validate:"required,min=1,dive"`
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" validate:"required"`
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// CreateOrder builds and persists one order atomically. Line prices are
// captured from the variants' current prices and never recomputed later.
func (s *OrderService) CreateOrder(req *CreateOrderRequest) (*models.Order, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Wrap(apperrors.KindValidation, "invalid order data", err)
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", req.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.KindNotFound, "user not found")
		}
		return nil, apperrors.Wrap(apperrors.KindInternal, "database error", err)
	}

	// Resolve every requested variant in one query before writing anything.
	ids := make([]uuid.UUID, 0, len(req.Items))
	for _, item := range req.Items {
		ids = append(ids, item.ProductID)
	}

	var products []models.Product
	if err := s.db.Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "database error", err)
	}

	byID := make(map[uuid.UUID]*models.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	items, total, err := BuildOrderLines(byID, req.Items)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		UserID:     req.UserID,
		Items:      items,
		TotalPrice: total,
		Status:     models.OrderStatusPending,
	}

	err = database.WithTransaction(s.db, func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "failed to create order", err)
	}

	return s.GetOrder(order.ID)
}

// BuildOrderLines turns resolved variants and requested quantities into
// priced order lines. Any unresolved variant fails the whole build; the
// returned total is the exact sum of the line prices.
func BuildOrderLines(byID map[uuid.UUID]*models.Product, reqs []OrderLineRequest) ([]models.OrderItem, decimal.Decimal, error) {
	items := make([]models.OrderItem, 0, len(reqs))
	total := decimal.Zero

	for _, req := range reqs {
		product, ok := byID[req.ProductID]
		if !ok {
			return nil, decimal.Zero, apperrors.Newf(apperrors.KindNotFound, "product %s not found", req.ProductID)
		}
		if req.Quantity < 1 {
			return nil, decimal.Zero, apperrors.New(apperrors.KindValidation, "quantity must be at least 1")
		}

		linePrice := product.Price.Mul(decimal.NewFromInt(int64(req.Quantity)))
		items = append(items, models.OrderItem{
			ProductID: product.ID,
			Quantity:  req.Quantity,
			Price:     linePrice,
		})
		total = total.Add(linePrice)
	}

	return items, total, nil
}

// GetOrder returns the stored snapshot with user and variant references
// resolved for display. Prices are never recomputed here.
func (s *OrderService) GetOrder(id uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := s.db.
		Preload("Items").
		Preload("Items.Product").
		Preload("User").
		First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.KindNotFound, "order not found")
		}
		return nil, apperrors.Wrap(apperrors.KindInternal, "database error", err)
	}
	return &order, nil
}

func (s *OrderService) ListOrders(params utils.PaginationParams) ([]models.Order, int64, error) {
	var orders []models.Order
	var total int64

	query := s.db.Model(&models.Order{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(apperrors.KindInternal, "database error", err)
	}

	query = s.db.
		Preload("Items").
		Preload("Items.Product").
		Preload("User")
	query = utils.ApplySort(query, params, []string{"created_at", "total_price", "status"})
	query = utils.ApplyPagination(query, params)
	if err := query.Find(&orders).Error; err != nil {
		return nil, 0, apperrors.Wrap(apperrors.KindInternal, "database error", err)
	}

	return orders, total, nil
}

// UpdateStatus replaces the order status. Any recognized status may replace
// any other.
func (s *OrderService) UpdateStatus(id uuid.UUID, req *UpdateOrderStatusRequest) (*models.Order, error) {
	if !req.Status.Valid() {
		return nil, apperrors.Newf(apperrors.KindValidation, "unrecognized order status %q", req.Status)
	}

	var order models.Order
	if err := s.db.First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.KindNotFound, "order not found")
		}
		return nil, apperrors.Wrap(apperrors.KindInternal, "database error", err)
	}

	order.Status = req.Status
	if err := s.db.Model(&order).Update("status", req.Status).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "failed to update order status", err)
	}

	return s.GetOrder(order.ID)
}
