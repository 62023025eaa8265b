package services

import (
	"strings"
	"time"

	"resto_manager/internal/models"
	"resto_manager/internal/repository"

	"gorm.io/gorm"
)

// In-memory repository fakes. Each one returns gorm.ErrRecordNotFound
// for missing rows so the services map it the same way they do against
// a real database.

type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*models.User{}, nextID: 1}
}

func (r *fakeUserRepo) Create(user *models.User) error {
	user.ID = r.nextID
	r.nextID++
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByUsernameOrEmail(login string) (*models.User, error) {
	for _, user := range r.users {
		if user.Username == login || user.Email == login {
			copied := *user
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetAll() ([]models.User, error) {
	var users []models.User
	for _, user := range r.users {
		users = append(users, *user)
	}
	return users, nil
}

func (r *fakeUserRepo) GetByRole(role string) ([]models.User, error) {
	var users []models.User
	for _, user := range r.users {
		if user.Role == role {
			users = append(users, *user)
		}
	}
	return users, nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) Delete(id uint) error {
	delete(r.users, id)
	return nil
}

type fakeTokenStore struct {
	tokens map[string]uint
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: map[string]uint{}}
}

func (s *fakeTokenStore) SaveRefreshToken(tokenID string, userID uint, ttl time.Duration) error {
	s.tokens[tokenID] = userID
	return nil
}

func (s *fakeTokenStore) GetRefreshTokenUser(tokenID string) (uint, error) {
	userID, ok := s.tokens[tokenID]
	if !ok {
		return 0, gorm.ErrRecordNotFound
	}
	return userID, nil
}

func (s *fakeTokenStore) DeleteRefreshToken(tokenID string) error {
	delete(s.tokens, tokenID)
	return nil
}

type fakeCategoryRepo struct {
	categories map[uint]*models.Category
	nextID     uint
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: map[uint]*models.Category{}, nextID: 1}
}

func (r *fakeCategoryRepo) Create(category *models.Category) error {
	category.ID = r.nextID
	r.nextID++
	stored := *category
	r.categories[category.ID] = &stored
	return nil
}

func (r *fakeCategoryRepo) GetByID(id uint) (*models.Category, error) {
	category, ok := r.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *category
	return &copied, nil
}

func (r *fakeCategoryRepo) GetAll() ([]models.Category, error) {
	var categories []models.Category
	for _, category := range r.categories {
		categories = append(categories, *category)
	}
	return categories, nil
}

func (r *fakeCategoryRepo) GetActive() ([]models.Category, error) {
	var categories []models.Category
	for _, category := range r.categories {
		if category.IsActive {
			categories = append(categories, *category)
		}
	}
	return categories, nil
}

func (r *fakeCategoryRepo) Update(category *models.Category) error {
	if _, ok := r.categories[category.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *category
	r.categories[category.ID] = &stored
	return nil
}

func (r *fakeCategoryRepo) Delete(id uint) error {
	delete(r.categories, id)
	return nil
}

type fakeMenuRepo struct {
	items          map[uint]*models.MenuItem
	nextID         uint
	getCalls       int
	availableCalls int
}

func newFakeMenuRepo() *fakeMenuRepo {
	return &fakeMenuRepo{items: map[uint]*models.MenuItem{}, nextID: 1}
}

func (r *fakeMenuRepo) Create(item *models.MenuItem) error {
	item.ID = r.nextID
	r.nextID++
	stored := *item
	r.items[item.ID] = &stored
	return nil
}

func (r *fakeMenuRepo) GetByID(id uint) (*models.MenuItem, error) {
	r.getCalls++
	item, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *item
	copied.Ingredients = append([]models.MenuItemIngredient(nil), item.Ingredients...)
	return &copied, nil
}

func (r *fakeMenuRepo) List(filter repository.MenuItemFilter) ([]models.MenuItem, int64, error) {
	var items []models.MenuItem
	for _, item := range r.items {
		if filter.CategoryID != 0 && item.CategoryID != filter.CategoryID {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(item.Name), strings.ToLower(filter.Search)) {
			continue
		}
		if filter.IsAvailable != nil && item.IsAvailable != *filter.IsAvailable {
			continue
		}
		if filter.IsActive != nil && item.IsActive != *filter.IsActive {
			continue
		}
		items = append(items, *item)
	}
	return items, int64(len(items)), nil
}

func (r *fakeMenuRepo) GetAvailableByCategory(categoryID uint) ([]models.MenuItem, error) {
	r.availableCalls++
	var items []models.MenuItem
	for _, item := range r.items {
		if item.CategoryID == categoryID && item.IsAvailable && item.IsActive {
			items = append(items, *item)
		}
	}
	return items, nil
}

func (r *fakeMenuRepo) CountByCategory(categoryID uint) (int64, error) {
	var count int64
	for _, item := range r.items {
		if item.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

func (r *fakeMenuRepo) Update(item *models.MenuItem) error {
	existing, ok := r.items[item.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *item
	stored.Ingredients = existing.Ingredients
	r.items[item.ID] = &stored
	return nil
}

func (r *fakeMenuRepo) ReplaceIngredients(itemID uint, ingredients []models.MenuItemIngredient) error {
	item, ok := r.items[itemID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for i := range ingredients {
		ingredients[i].MenuItemID = itemID
	}
	item.Ingredients = ingredients
	return nil
}

func (r *fakeMenuRepo) Delete(id uint) error {
	delete(r.items, id)
	return nil
}

type fakeInventoryRepo struct {
	items         map[uint]*models.InventoryItem
	nextID        uint
	failUpdateIDs map[uint]bool
}

func newFakeInventoryRepo() *fakeInventoryRepo {
	return &fakeInventoryRepo{
		items:         map[uint]*models.InventoryItem{},
		nextID:        1,
		failUpdateIDs: map[uint]bool{},
	}
}

func (r *fakeInventoryRepo) Create(item *models.InventoryItem) error {
	item.ID = r.nextID
	r.nextID++
	stored := *item
	r.items[item.ID] = &stored
	return nil
}

func (r *fakeInventoryRepo) GetByID(id uint) (*models.InventoryItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *item
	return &copied, nil
}

func (r *fakeInventoryRepo) List(filter repository.InventoryFilter) ([]models.InventoryItem, int64, error) {
	var items []models.InventoryItem
	for _, item := range r.items {
		if filter.Category != "" && item.Category != filter.Category {
			continue
		}
		if filter.IsActive != nil && item.IsActive != *filter.IsActive {
			continue
		}
		if filter.StockStatus != "" && item.StockStatus() != filter.StockStatus {
			continue
		}
		items = append(items, *item)
	}
	return items, int64(len(items)), nil
}

func (r *fakeInventoryRepo) GetActive() ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	for _, item := range r.items {
		if item.IsActive {
			items = append(items, *item)
		}
	}
	return items, nil
}

func (r *fakeInventoryRepo) GetLowStock() ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	for _, item := range r.items {
		if item.IsActive && item.CurrentStock <= item.MinimumStock {
			items = append(items, *item)
		}
	}
	return items, nil
}

func (r *fakeInventoryRepo) GetOutOfStock() ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	for _, item := range r.items {
		if item.IsActive && item.CurrentStock <= 0 {
			items = append(items, *item)
		}
	}
	return items, nil
}

func (r *fakeInventoryRepo) GetExpiring(before time.Time) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	for _, item := range r.items {
		if item.IsActive && item.ExpiryDate != nil && item.ExpiryDate.Before(before) {
			items = append(items, *item)
		}
	}
	return items, nil
}

func (r *fakeInventoryRepo) Update(item *models.InventoryItem) error {
	if r.failUpdateIDs[item.ID] {
		return gorm.ErrInvalidTransaction
	}
	if _, ok := r.items[item.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *item
	r.items[item.ID] = &stored
	return nil
}

func (r *fakeInventoryRepo) Delete(id uint) error {
	delete(r.items, id)
	return nil
}

type fakeTableRepo struct {
	tables map[uint]*models.Table
	nextID uint
}

func newFakeTableRepo() *fakeTableRepo {
	return &fakeTableRepo{tables: map[uint]*models.Table{}, nextID: 1}
}

func (r *fakeTableRepo) Create(table *models.Table) error {
	table.ID = r.nextID
	r.nextID++
	stored := *table
	r.tables[table.ID] = &stored
	return nil
}

func (r *fakeTableRepo) GetByID(id uint) (*models.Table, error) {
	table, ok := r.tables[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *table
	return &copied, nil
}

func (r *fakeTableRepo) GetByQRCode(code string) (*models.Table, error) {
	for _, table := range r.tables {
		if table.QRCode == code {
			copied := *table
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeTableRepo) List(location, status string, isActive *bool) ([]models.Table, error) {
	var tables []models.Table
	for _, table := range r.tables {
		if location != "" && table.Location != location {
			continue
		}
		if status != "" && table.Status != status {
			continue
		}
		if isActive != nil && table.IsActive != *isActive {
			continue
		}
		tables = append(tables, *table)
	}
	return tables, nil
}

func (r *fakeTableRepo) GetAvailable(location string) ([]models.Table, error) {
	var tables []models.Table
	for _, table := range r.tables {
		if table.Status != models.TableAvailable || !table.IsActive {
			continue
		}
		if location != "" && table.Location != location {
			continue
		}
		tables = append(tables, *table)
	}
	return tables, nil
}

func (r *fakeTableRepo) Update(table *models.Table) error {
	if _, ok := r.tables[table.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *table
	r.tables[table.ID] = &stored
	return nil
}

func (r *fakeTableRepo) Delete(id uint) error {
	delete(r.tables, id)
	return nil
}

type fakeOrderRepo struct {
	orders     map[uint]*models.Order
	nextID     uint
	nextItemID uint
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[uint]*models.Order{}, nextID: 1, nextItemID: 1}
}

func copyOrder(order *models.Order) *models.Order {
	copied := *order
	copied.Items = append([]models.OrderItem(nil), order.Items...)
	return &copied
}

func (r *fakeOrderRepo) Create(order *models.Order) error {
	order.ID = r.nextID
	r.nextID++
	for i := range order.Items {
		order.Items[i].ID = r.nextItemID
		order.Items[i].OrderID = order.ID
		r.nextItemID++
	}
	order.CreatedAt = time.Now()
	if order.DeductionStatus == "" {
		order.DeductionStatus = models.DeductionPending
	}
	r.orders[order.ID] = copyOrder(order)
	return nil
}

func (r *fakeOrderRepo) GetByID(id uint) (*models.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return copyOrder(order), nil
}

func (r *fakeOrderRepo) List(filter repository.OrderFilter) ([]models.Order, int64, error) {
	var orders []models.Order
	for _, order := range r.orders {
		if filter.Status != "" && order.Status != filter.Status {
			continue
		}
		if filter.PaymentStatus != "" && order.PaymentStatus != filter.PaymentStatus {
			continue
		}
		if filter.TableID != 0 && order.TableID != filter.TableID {
			continue
		}
		if filter.WaiterID != 0 && (order.WaiterID == nil || *order.WaiterID != filter.WaiterID) {
			continue
		}
		orders = append(orders, *copyOrder(order))
	}
	return orders, int64(len(orders)), nil
}

func (r *fakeOrderRepo) GetActive() ([]models.Order, error) {
	active := map[string]bool{
		string(models.OrderPending):   true,
		string(models.OrderConfirmed): true,
		string(models.OrderPreparing): true,
		string(models.OrderReady):     true,
	}
	var orders []models.Order
	for _, order := range r.orders {
		if active[order.Status] {
			orders = append(orders, *copyOrder(order))
		}
	}
	return orders, nil
}

func (r *fakeOrderRepo) GetByDateRange(start, end time.Time) ([]models.Order, error) {
	var orders []models.Order
	for _, order := range r.orders {
		if !order.CreatedAt.Before(start) && order.CreatedAt.Before(end) {
			orders = append(orders, *copyOrder(order))
		}
	}
	return orders, nil
}

func (r *fakeOrderRepo) Update(order *models.Order) error {
	existing, ok := r.orders[order.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	updated := copyOrder(order)
	updated.Items = existing.Items
	r.orders[order.ID] = updated
	return nil
}

func (r *fakeOrderRepo) UpdateItem(item *models.OrderItem) error {
	for _, order := range r.orders {
		for i := range order.Items {
			if order.Items[i].ID == item.ID {
				order.Items[i] = *item
				return nil
			}
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeMenuCache struct {
	stored        []CustomerMenuSection
	populated     bool
	hits          int
	invalidations int
}

func (c *fakeMenuCache) GetCustomerMenu(dest interface{}) (bool, error) {
	if !c.populated {
		return false, nil
	}
	if out, ok := dest.(*[]CustomerMenuSection); ok {
		*out = c.stored
		c.hits++
		return true, nil
	}
	return false, nil
}

func (c *fakeMenuCache) SetCustomerMenu(menu interface{}) error {
	if sections, ok := menu.([]CustomerMenuSection); ok {
		c.stored = sections
		c.populated = true
	}
	return nil
}

func (c *fakeMenuCache) InvalidateCustomerMenu() error {
	c.stored = nil
	c.populated = false
	c.invalidations++
	return nil
}
