package services

import (
	"log"
	"math"
	"time"

	"resto_manager/internal/models"
	"resto_manager/internal/repository"
)

// taxRate is applied at order creation. The Settings row carries its own
// rate for receipts, but order totals have always used this fixed rate.
const taxRate = 0.18

type CreateOrderItemRequest struct {
	MenuItemID          uint   `json:"menu_item_id" binding:"required"`
	Quantity            int    `json:"quantity" binding:"required"`
	SpecialInstructions string `json:"special_instructions"`
}

type CustomerInfo struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type CreateOrderRequest struct {
	TableID   uint                     `json:"table_id" binding:"required"`
	Items     []CreateOrderItemRequest `json:"items" binding:"required"`
	Customer  CustomerInfo             `json:"customer"`
	OrderType string                   `json:"order_type"`
	Notes     string                   `json:"notes"`
	Discount  float64                  `json:"discount"`
}

type PaymentResult struct {
	Order  *models.Order `json:"order"`
	Change float64       `json:"change"`
}

type OrderService interface {
	CreateOrder(req CreateOrderRequest, waiterID uint) (*models.Order, error)
	GetOrderByID(id uint) (*models.Order, error)
	ListOrders(filter repository.OrderFilter) ([]models.Order, int64, error)
	GetActiveOrders() ([]models.Order, error)
	GetTodaysOrders() ([]models.Order, error)
	UpdateStatus(id uint, status, cancellationReason string, userID uint) (*models.Order, error)
	ProcessPayment(id uint, paymentMethod string, amountPaid float64, cashierID uint) (*PaymentResult, error)
	UpdateItemStatus(orderID, itemID uint, status string) (*models.Order, error)
}

type orderService struct {
	orderRepo     repository.OrderRepository
	menuRepo      repository.MenuRepository
	inventoryRepo repository.InventoryRepository
	tableRepo     repository.TableRepository
}

func NewOrderService(orderRepo repository.OrderRepository, menuRepo repository.MenuRepository, inventoryRepo repository.InventoryRepository, tableRepo repository.TableRepository) OrderService {
	return &orderService{
		orderRepo:     orderRepo,
		menuRepo:      menuRepo,
		inventoryRepo: inventoryRepo,
		tableRepo:     tableRepo,
	}
}

// CreateOrder validates the request front to back (first failure wins),
// snapshots menu prices into line items and persists the order in
// pending status. Ingredient stock is only checked here; deduction
// happens at confirmation.
func (s *orderService) CreateOrder(req CreateOrderRequest, waiterID uint) (*models.Order, error) {
	if len(req.Items) == 0 {
		return nil, validationf("order must have at least one item")
	}
	orderType := req.OrderType
	if orderType == "" {
		orderType = models.OrderTypeDineIn
	}
	if !models.ValidOrderType(orderType) {
		return nil, validationf("invalid order type: %s", orderType)
	}
	if req.Discount < 0 {
		return nil, validationf("discount cannot be negative")
	}

	table, err := s.tableRepo.GetByID(req.TableID)
	if err != nil {
		return nil, asNotFound(err)
	}
	if table.Status == models.TableOutOfOrder {
		return nil, validationf("table %s is out of order", table.Number)
	}

	now := time.Now()
	order := &models.Order{
		OrderNumber:   models.GenerateOrderNumber(now),
		TableID:       table.ID,
		CustomerName:  req.Customer.Name,
		CustomerPhone: req.Customer.Phone,
		CustomerEmail: req.Customer.Email,
		Status:        string(models.OrderPending),
		OrderType:     orderType,
		PaymentStatus: models.PaymentPending,
		Discount:      req.Discount,
		Notes:         req.Notes,
		WaiterID:      &waiterID,
		CreatedBy:     &waiterID,
	}

	estimatedPrep := 0
	for i, reqItem := range req.Items {
		if reqItem.Quantity < 1 {
			return nil, validationf("item %d: quantity must be at least 1", i+1)
		}
		menuItem, err := s.menuRepo.GetByID(reqItem.MenuItemID)
		if err != nil {
			return nil, asNotFound(err)
		}
		if !menuItem.IsActive || !menuItem.IsAvailable {
			return nil, validationf("menu item is not available: %s", menuItem.Name)
		}
		if !s.canBePrepared(menuItem) {
			return nil, validationf("insufficient ingredients for: %s", menuItem.Name)
		}
		if menuItem.PreparationTime > estimatedPrep {
			estimatedPrep = menuItem.PreparationTime
		}
		order.Items = append(order.Items, models.OrderItem{
			MenuItemID:          menuItem.ID,
			Quantity:            reqItem.Quantity,
			UnitPrice:           menuItem.Price,
			TotalPrice:          menuItem.Price * float64(reqItem.Quantity),
			SpecialInstructions: reqItem.SpecialInstructions,
			Status:              models.ItemStatusPending,
		})
	}

	order.EstimatedPrepTime = estimatedPrep
	order.CalculateTotals()
	order.Tax = order.Subtotal * taxRate
	order.Total = order.Subtotal + order.Tax - order.Discount

	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}

	// Separate write: a crash here leaves the table available with a
	// pending order against it.
	if orderType == models.OrderTypeDineIn {
		table.Status = models.TableOccupied
		if err := s.tableRepo.Update(table); err != nil {
			log.Printf("Warning: failed to mark table %s occupied for order %s: %v", table.Number, order.OrderNumber, err)
		}
	}

	return s.orderRepo.GetByID(order.ID)
}

func (s *orderService) GetOrderByID(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, asNotFound(err)
	}
	return order, nil
}

func (s *orderService) ListOrders(filter repository.OrderFilter) ([]models.Order, int64, error) {
	return s.orderRepo.List(filter)
}

func (s *orderService) GetActiveOrders() ([]models.Order, error) {
	return s.orderRepo.GetActive()
}

func (s *orderService) GetTodaysOrders() ([]models.Order, error) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return s.orderRepo.GetByDateRange(start, start.AddDate(0, 0, 1))
}

// UpdateStatus advances the order through the lifecycle graph and
// applies the per-transition side effects. Illegal transitions are
// rejected before any write.
func (s *orderService) UpdateStatus(id uint, status, cancellationReason string, userID uint) (*models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return nil, validationf("invalid order status: %s", status)
	}

	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, asNotFound(err)
	}

	from := models.OrderStatus(order.Status)
	to := models.OrderStatus(status)
	if !models.CanTransition(from, to) {
		return nil, validationf("cannot transition order from %s to %s", from, to)
	}
	if to == models.OrderCancelled && cancellationReason == "" {
		return nil, validationf("cancellation reason is required")
	}

	now := time.Now()
	order.Status = status
	switch to {
	case models.OrderConfirmed:
		order.ConfirmedAt = &now
		// Deduction failures are recorded on the order but never block
		// the kitchen: confirmation succeeds regardless.
		order.DeductionStatus = s.deductIngredients(order, now)
	case models.OrderReady:
		order.ReadyAt = &now
		if order.ConfirmedAt != nil {
			prep := int(math.Round(now.Sub(*order.ConfirmedAt).Minutes()))
			order.ActualPrepTime = &prep
		}
	case models.OrderServed:
		order.ServedAt = &now
	case models.OrderPaid:
		order.PaidAt = &now
		order.PaymentStatus = models.PaymentPaid
		order.CashierID = &userID
	case models.OrderCancelled:
		order.CancelledAt = &now
		order.CancellationReason = cancellationReason
	}

	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}

	if (to == models.OrderServed || to == models.OrderCancelled) && order.OrderType == models.OrderTypeDineIn {
		s.releaseTable(order)
	}

	return s.orderRepo.GetByID(order.ID)
}

// ProcessPayment records the payment and, if it covers the total,
// advances the order to paid in a second write.
func (s *orderService) ProcessPayment(id uint, paymentMethod string, amountPaid float64, cashierID uint) (*PaymentResult, error) {
	if !models.ValidPaymentMethod(paymentMethod) {
		return nil, validationf("invalid payment method: %s", paymentMethod)
	}

	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, asNotFound(err)
	}
	if order.PaymentStatus == models.PaymentPaid {
		return nil, validationf("order is already paid")
	}
	if amountPaid < order.Total {
		return nil, validationf("insufficient payment amount")
	}

	now := time.Now()
	order.PaymentMethod = paymentMethod
	order.CashierID = &cashierID
	if amountPaid >= order.Total {
		order.PaymentStatus = models.PaymentPaid
		order.PaidAt = &now
	} else {
		order.PaymentStatus = models.PaymentPartial
	}
	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}

	if order.PaymentStatus == models.PaymentPaid && models.CanTransition(models.OrderStatus(order.Status), models.OrderPaid) {
		updated, err := s.UpdateStatus(order.ID, string(models.OrderPaid), "", cashierID)
		if err != nil {
			return nil, err
		}
		order = updated
	}

	return &PaymentResult{Order: order, Change: amountPaid - order.Total}, nil
}

// UpdateItemStatus tracks a single line item; when every item reaches
// ready or served the order advances with the matching transition side
// effects. This is the second path into ready/served besides the
// explicit status endpoint.
func (s *orderService) UpdateItemStatus(orderID, itemID uint, status string) (*models.Order, error) {
	if !models.ValidOrderItemStatus(status) {
		return nil, validationf("invalid item status: %s", status)
	}

	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, asNotFound(err)
	}

	var target *models.OrderItem
	for i := range order.Items {
		if order.Items[i].ID == itemID {
			target = &order.Items[i]
			break
		}
	}
	if target == nil {
		return nil, ErrNotFound
	}

	now := time.Now()
	target.Status = status
	switch status {
	case models.ItemStatusReady:
		target.PreparedAt = &now
	case models.ItemStatusServed:
		target.ServedAt = &now
	}
	if err := s.orderRepo.UpdateItem(target); err != nil {
		return nil, err
	}

	allReady := true
	allServed := true
	for _, item := range order.Items {
		if item.Status != models.ItemStatusReady {
			allReady = false
		}
		if item.Status != models.ItemStatusServed {
			allServed = false
		}
	}

	if allReady && order.Status == string(models.OrderPreparing) {
		return s.UpdateStatus(order.ID, string(models.OrderReady), "", 0)
	}
	if allServed && order.Status == string(models.OrderReady) {
		return s.UpdateStatus(order.ID, string(models.OrderServed), "", 0)
	}

	return s.orderRepo.GetByID(order.ID)
}

// canBePrepared checks every ingredient of the menu item against
// current stock for a single serving. Stock is not reserved here.
func (s *orderService) canBePrepared(menuItem *models.MenuItem) bool {
	for _, ingredient := range menuItem.Ingredients {
		item, err := s.inventoryRepo.GetByID(ingredient.InventoryItemID)
		if err != nil || item.CurrentStock < ingredient.Quantity {
			return false
		}
	}
	return true
}

// deductIngredients subtracts the consumed quantities from inventory,
// one write per ingredient, clamped at zero. Individual failures are
// logged and the aggregate outcome is returned for the order's
// deduction status.
func (s *orderService) deductIngredients(order *models.Order, now time.Time) string {
	attempted := 0
	failed := 0
	for _, orderItem := range order.Items {
		menuItem, err := s.menuRepo.GetByID(orderItem.MenuItemID)
		if err != nil {
			log.Printf("Warning: order %s: menu item %d not found during deduction: %v", order.OrderNumber, orderItem.MenuItemID, err)
			attempted++
			failed++
			continue
		}
		for _, ingredient := range menuItem.Ingredients {
			attempted++
			needed := ingredient.Quantity * float64(orderItem.Quantity)
			inventoryItem, err := s.inventoryRepo.GetByID(ingredient.InventoryItemID)
			if err != nil {
				log.Printf("Warning: order %s: ingredient %d not found during deduction: %v", order.OrderNumber, ingredient.InventoryItemID, err)
				failed++
				continue
			}
			inventoryItem.ApplyStock(needed, models.StockSubtract, now)
			if err := s.inventoryRepo.Update(inventoryItem); err != nil {
				log.Printf("Warning: order %s: failed to deduct %.3f %s of %s: %v", order.OrderNumber, needed, inventoryItem.Unit, inventoryItem.Name, err)
				failed++
			}
		}
	}

	switch {
	case attempted == 0:
		return models.DeductionApplied
	case failed == 0:
		return models.DeductionApplied
	case failed == attempted:
		return models.DeductionFailed
	default:
		return models.DeductionPartial
	}
}

func (s *orderService) releaseTable(order *models.Order) {
	table, err := s.tableRepo.GetByID(order.TableID)
	if err != nil {
		log.Printf("Warning: failed to load table %d for order %s: %v", order.TableID, order.OrderNumber, err)
		return
	}
	table.Status = models.TableAvailable
	if err := s.tableRepo.Update(table); err != nil {
		log.Printf("Warning: failed to release table %s for order %s: %v", table.Number, order.OrderNumber, err)
	}
}
