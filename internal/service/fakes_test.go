package service

import (
	"sort"

	"github.com/retriever-essentials/pantry/internal/models"
)

// In-memory stores for the service tests. They mirror the gorm stores'
// contract: Find*ByID returns (nil, nil) on a miss and UpdateCurrentCount
// refuses a delta that would drive the count negative.

type fakeItemStore struct {
	items  map[int]models.Item
	nextID int
}

func newFakeItemStore(items ...models.Item) *fakeItemStore {
	s := &fakeItemStore{items: make(map[int]models.Item), nextID: 1}
	for _, item := range items {
		if item.ItemID >= s.nextID {
			s.nextID = item.ItemID + 1
		}
		s.items[item.ItemID] = item
	}
	return s
}

func (s *fakeItemStore) FindAll() ([]models.Item, error) {
	out := make([]models.Item, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemID < out[j].ItemID })
	return out, nil
}

func (s *fakeItemStore) FindByID(itemID int) (*models.Item, error) {
	item, ok := s.items[itemID]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (s *fakeItemStore) FindByName(name string) (*models.Item, error) {
	for _, item := range s.items {
		if item.ItemName == name {
			item := item
			return &item, nil
		}
	}
	return nil, nil
}

func (s *fakeItemStore) FindByCategory(category string) ([]models.Item, error) {
	var out []models.Item
	for _, item := range s.items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *fakeItemStore) Add(item *models.Item) error {
	item.ItemID = s.nextID
	s.nextID++
	s.items[item.ItemID] = *item
	return nil
}

func (s *fakeItemStore) Update(item *models.Item) (bool, error) {
	if _, ok := s.items[item.ItemID]; !ok {
		return false, nil
	}
	s.items[item.ItemID] = *item
	return true, nil
}

func (s *fakeItemStore) DisableByID(itemID int) (bool, error) {
	item, ok := s.items[itemID]
	if !ok {
		return false, nil
	}
	item.Enabled = false
	s.items[itemID] = item
	return true, nil
}

func (s *fakeItemStore) UpdateCurrentCount(itemID, delta int) (bool, error) {
	item, ok := s.items[itemID]
	if !ok || item.CurrentCount+delta < 0 {
		return false, nil
	}
	item.CurrentCount += delta
	s.items[itemID] = item
	return true, nil
}

func (s *fakeItemStore) count(itemID int) int {
	return s.items[itemID].CurrentCount
}

type fakeVendorStore struct {
	vendors map[int]models.Vendor
	nextID  int
}

func newFakeVendorStore(vendors ...models.Vendor) *fakeVendorStore {
	s := &fakeVendorStore{vendors: make(map[int]models.Vendor), nextID: 1}
	for _, v := range vendors {
		if v.VendorID >= s.nextID {
			s.nextID = v.VendorID + 1
		}
		s.vendors[v.VendorID] = v
	}
	return s
}

func (s *fakeVendorStore) FindAll() ([]models.Vendor, error) {
	out := make([]models.Vendor, 0, len(s.vendors))
	for _, v := range s.vendors {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].VendorID < out[j].VendorID })
	return out, nil
}

func (s *fakeVendorStore) FindByID(vendorID int) (*models.Vendor, error) {
	v, ok := s.vendors[vendorID]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (s *fakeVendorStore) FindByName(name string) (*models.Vendor, error) {
	for _, v := range s.vendors {
		if v.VendorName == name {
			v := v
			return &v, nil
		}
	}
	return nil, nil
}

func (s *fakeVendorStore) Add(vendor *models.Vendor) error {
	vendor.VendorID = s.nextID
	s.nextID++
	s.vendors[vendor.VendorID] = *vendor
	return nil
}

func (s *fakeVendorStore) Update(vendor *models.Vendor) (bool, error) {
	if _, ok := s.vendors[vendor.VendorID]; !ok {
		return false, nil
	}
	s.vendors[vendor.VendorID] = *vendor
	return true, nil
}

func (s *fakeVendorStore) DeleteByID(vendorID int) (bool, error) {
	if _, ok := s.vendors[vendorID]; !ok {
		return false, nil
	}
	delete(s.vendors, vendorID)
	return true, nil
}

type fakeUserStore struct {
	users  map[int]models.AppUser
	nextID int
}

func newFakeUserStore(users ...models.AppUser) *fakeUserStore {
	s := &fakeUserStore{users: make(map[int]models.AppUser), nextID: 1}
	for _, u := range users {
		if u.AppUserID >= s.nextID {
			s.nextID = u.AppUserID + 1
		}
		s.users[u.AppUserID] = u
	}
	return s
}

func (s *fakeUserStore) FindAll() ([]models.AppUser, error) {
	out := make([]models.AppUser, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AppUserID < out[j].AppUserID })
	return out, nil
}

func (s *fakeUserStore) FindByID(appUserID int) (*models.AppUser, error) {
	u, ok := s.users[appUserID]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (s *fakeUserStore) FindByEmail(email string) (*models.AppUser, error) {
	for _, u := range s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) Add(user *models.AppUser) error {
	user.AppUserID = s.nextID
	s.nextID++
	s.users[user.AppUserID] = *user
	return nil
}

func (s *fakeUserStore) UpdatePassword(appUserID int, passwordHash string) (bool, error) {
	u, ok := s.users[appUserID]
	if !ok {
		return false, nil
	}
	u.PasswordHash = passwordHash
	s.users[appUserID] = u
	return true, nil
}

func (s *fakeUserStore) EnableByID(appUserID int) (bool, error) {
	return s.setEnabled(appUserID, true)
}

func (s *fakeUserStore) DisableByID(appUserID int) (bool, error) {
	return s.setEnabled(appUserID, false)
}

func (s *fakeUserStore) setEnabled(appUserID int, enabled bool) (bool, error) {
	u, ok := s.users[appUserID]
	if !ok {
		return false, nil
	}
	u.Enabled = enabled
	s.users[appUserID] = u
	return true, nil
}

type fakeCheckoutOrderStore struct {
	orders map[int]models.CheckoutOrder
	nextID int
}

func newFakeCheckoutOrderStore(orders ...models.CheckoutOrder) *fakeCheckoutOrderStore {
	s := &fakeCheckoutOrderStore{orders: make(map[int]models.CheckoutOrder), nextID: 1}
	for _, o := range orders {
		if o.CheckoutOrderID >= s.nextID {
			s.nextID = o.CheckoutOrderID + 1
		}
		s.orders[o.CheckoutOrderID] = o
	}
	return s
}

func (s *fakeCheckoutOrderStore) FindAll() ([]models.CheckoutOrder, error) {
	out := make([]models.CheckoutOrder, 0, len(s.orders))
	for _, o := range s.orders {
		o.CheckoutItems = nil
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CheckoutOrderID < out[j].CheckoutOrderID })
	return out, nil
}

func (s *fakeCheckoutOrderStore) FindByID(checkoutOrderID int) (*models.CheckoutOrder, error) {
	o, ok := s.orders[checkoutOrderID]
	if !ok {
		return nil, nil
	}
	o.CheckoutItems = nil
	return &o, nil
}

func (s *fakeCheckoutOrderStore) Add(order *models.CheckoutOrder) error {
	order.CheckoutOrderID = s.nextID
	s.nextID++
	stored := *order
	stored.CheckoutItems = nil
	s.orders[order.CheckoutOrderID] = stored
	return nil
}

func (s *fakeCheckoutOrderStore) Update(order *models.CheckoutOrder) (bool, error) {
	if _, ok := s.orders[order.CheckoutOrderID]; !ok {
		return false, nil
	}
	stored := *order
	stored.CheckoutItems = nil
	s.orders[order.CheckoutOrderID] = stored
	return true, nil
}

func (s *fakeCheckoutOrderStore) DeleteByID(checkoutOrderID int) (bool, error) {
	if _, ok := s.orders[checkoutOrderID]; !ok {
		return false, nil
	}
	delete(s.orders, checkoutOrderID)
	return true, nil
}

func (s *fakeCheckoutOrderStore) FindHourlyCheckoutSummary() ([]map[string]any, error) {
	return []map[string]any{}, nil
}

type fakeCheckoutItemStore struct {
	lines  map[int]models.CheckoutItem
	nextID int
}

func newFakeCheckoutItemStore(lines ...models.CheckoutItem) *fakeCheckoutItemStore {
	s := &fakeCheckoutItemStore{lines: make(map[int]models.CheckoutItem), nextID: 1}
	for _, l := range lines {
		if l.CheckoutItemID >= s.nextID {
			s.nextID = l.CheckoutItemID + 1
		}
		s.lines[l.CheckoutItemID] = l
	}
	return s
}

func (s *fakeCheckoutItemStore) FindByID(checkoutItemID int) (*models.CheckoutItem, error) {
	l, ok := s.lines[checkoutItemID]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (s *fakeCheckoutItemStore) FindByOrderID(checkoutOrderID int) ([]models.CheckoutItem, error) {
	var out []models.CheckoutItem
	for _, l := range s.lines {
		if l.CheckoutOrderID == checkoutOrderID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CheckoutItemID < out[j].CheckoutItemID })
	return out, nil
}

func (s *fakeCheckoutItemStore) Add(item *models.CheckoutItem) error {
	item.CheckoutItemID = s.nextID
	s.nextID++
	s.lines[item.CheckoutItemID] = *item
	return nil
}

func (s *fakeCheckoutItemStore) Update(item *models.CheckoutItem) (bool, error) {
	if _, ok := s.lines[item.CheckoutItemID]; !ok {
		return false, nil
	}
	s.lines[item.CheckoutItemID] = *item
	return true, nil
}

func (s *fakeCheckoutItemStore) DeleteByID(checkoutItemID int) (bool, error) {
	if _, ok := s.lines[checkoutItemID]; !ok {
		return false, nil
	}
	delete(s.lines, checkoutItemID)
	return true, nil
}

func (s *fakeCheckoutItemStore) DeleteByOrderID(checkoutOrderID int) (bool, error) {
	found := false
	for id, l := range s.lines {
		if l.CheckoutOrderID == checkoutOrderID {
			delete(s.lines, id)
			found = true
		}
	}
	return found, nil
}

func (s *fakeCheckoutItemStore) FindPopularItems() ([]map[string]any, error) {
	return []map[string]any{}, nil
}

func (s *fakeCheckoutItemStore) FindPopularCategories() ([]map[string]any, error) {
	return []map[string]any{}, nil
}

type fakePurchaseOrderStore struct {
	orders map[int]models.PurchaseOrder
	nextID int
}

func newFakePurchaseOrderStore(orders ...models.PurchaseOrder) *fakePurchaseOrderStore {
	s := &fakePurchaseOrderStore{orders: make(map[int]models.PurchaseOrder), nextID: 1}
	for _, o := range orders {
		if o.PurchaseID >= s.nextID {
			s.nextID = o.PurchaseID + 1
		}
		s.orders[o.PurchaseID] = o
	}
	return s
}

func (s *fakePurchaseOrderStore) FindAll() ([]models.PurchaseOrder, error) {
	out := make([]models.PurchaseOrder, 0, len(s.orders))
	for _, o := range s.orders {
		o.PurchaseItems = nil
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PurchaseID < out[j].PurchaseID })
	return out, nil
}

func (s *fakePurchaseOrderStore) FindByID(purchaseID int) (*models.PurchaseOrder, error) {
	o, ok := s.orders[purchaseID]
	if !ok {
		return nil, nil
	}
	o.PurchaseItems = nil
	return &o, nil
}

func (s *fakePurchaseOrderStore) Add(order *models.PurchaseOrder) error {
	order.PurchaseID = s.nextID
	s.nextID++
	stored := *order
	stored.PurchaseItems = nil
	s.orders[order.PurchaseID] = stored
	return nil
}

func (s *fakePurchaseOrderStore) Update(order *models.PurchaseOrder) (bool, error) {
	if _, ok := s.orders[order.PurchaseID]; !ok {
		return false, nil
	}
	stored := *order
	stored.PurchaseItems = nil
	s.orders[order.PurchaseID] = stored
	return true, nil
}

func (s *fakePurchaseOrderStore) DeleteByID(purchaseID int) (bool, error) {
	if _, ok := s.orders[purchaseID]; !ok {
		return false, nil
	}
	delete(s.orders, purchaseID)
	return true, nil
}

type fakePurchaseItemStore struct {
	lines  map[int]models.PurchaseItem
	nextID int
}

func newFakePurchaseItemStore(lines ...models.PurchaseItem) *fakePurchaseItemStore {
	s := &fakePurchaseItemStore{lines: make(map[int]models.PurchaseItem), nextID: 1}
	for _, l := range lines {
		if l.PurchaseItemID >= s.nextID {
			s.nextID = l.PurchaseItemID + 1
		}
		s.lines[l.PurchaseItemID] = l
	}
	return s
}

func (s *fakePurchaseItemStore) FindByID(purchaseItemID int) (*models.PurchaseItem, error) {
	l, ok := s.lines[purchaseItemID]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (s *fakePurchaseItemStore) FindByOrderID(purchaseOrderID int) ([]models.PurchaseItem, error) {
	var out []models.PurchaseItem
	for _, l := range s.lines {
		if l.PurchaseOrderID == purchaseOrderID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PurchaseItemID < out[j].PurchaseItemID })
	return out, nil
}

func (s *fakePurchaseItemStore) Add(item *models.PurchaseItem) error {
	item.PurchaseItemID = s.nextID
	s.nextID++
	s.lines[item.PurchaseItemID] = *item
	return nil
}

func (s *fakePurchaseItemStore) Update(item *models.PurchaseItem) (bool, error) {
	if _, ok := s.lines[item.PurchaseItemID]; !ok {
		return false, nil
	}
	s.lines[item.PurchaseItemID] = *item
	return true, nil
}

func (s *fakePurchaseItemStore) DeleteByID(purchaseItemID int) (bool, error) {
	if _, ok := s.lines[purchaseItemID]; !ok {
		return false, nil
	}
	delete(s.lines, purchaseItemID)
	return true, nil
}

func (s *fakePurchaseItemStore) DeleteByOrderID(purchaseOrderID int) (bool, error) {
	found := false
	for id, l := range s.lines {
		if l.PurchaseOrderID == purchaseOrderID {
			delete(s.lines, id)
			found = true
		}
	}
	return found, nil
}

type fakeInventoryLogStore struct {
	logs   map[int]models.InventoryLog
	nextID int
}

func newFakeInventoryLogStore(logs ...models.InventoryLog) *fakeInventoryLogStore {
	s := &fakeInventoryLogStore{logs: make(map[int]models.InventoryLog), nextID: 1}
	for _, l := range logs {
		if l.LogID >= s.nextID {
			s.nextID = l.LogID + 1
		}
		s.logs[l.LogID] = l
	}
	return s
}

func (s *fakeInventoryLogStore) FindAll() ([]models.InventoryLog, error) {
	out := make([]models.InventoryLog, 0, len(s.logs))
	for _, l := range s.logs {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LogID < out[j].LogID })
	return out, nil
}

func (s *fakeInventoryLogStore) FindByID(logID int) (*models.InventoryLog, error) {
	l, ok := s.logs[logID]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (s *fakeInventoryLogStore) FindByItemID(itemID int) ([]models.InventoryLog, error) {
	var out []models.InventoryLog
	for _, l := range s.logs {
		if l.ItemID == itemID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LogID < out[j].LogID })
	return out, nil
}

func (s *fakeInventoryLogStore) FindByAuthorityID(authorityID int) ([]models.InventoryLog, error) {
	var out []models.InventoryLog
	for _, l := range s.logs {
		if l.AuthorityID != nil && *l.AuthorityID == authorityID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LogID < out[j].LogID })
	return out, nil
}

func (s *fakeInventoryLogStore) Add(log *models.InventoryLog) error {
	log.LogID = s.nextID
	s.nextID++
	s.logs[log.LogID] = *log
	return nil
}

func (s *fakeInventoryLogStore) Update(log *models.InventoryLog) (bool, error) {
	if _, ok := s.logs[log.LogID]; !ok {
		return false, nil
	}
	s.logs[log.LogID] = *log
	return true, nil
}

func (s *fakeInventoryLogStore) DeleteByID(logID int) (bool, error) {
	if _, ok := s.logs[logID]; !ok {
		return false, nil
	}
	delete(s.logs, logID)
	return true, nil
}
