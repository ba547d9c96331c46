package models

import (
	"time"
)

const (
	RoleAdmin     = "ADMIN"
	RoleAuthority = "AUTHORITY"
)

type Item struct {
	ItemID          int    `gorm:"primaryKey;autoIncrement" json:"itemId"`
	ItemName        string `gorm:"not null"                 json:"itemName"`
	ItemDescription string `json:"itemDescription"`
	NutritionFacts  string `json:"nutritionFacts"`
	PicturePath     string `json:"picturePath"`
	Category        string `gorm:"not null"                 json:"category"`
	CurrentCount    int    `gorm:"not null"                 json:"currentCount"`
	ItemLimit       int    `gorm:"not null;default:1"       json:"itemLimit"`
	PricePerUnit    string `gorm:"type:numeric(10,2)"       json:"pricePerUnit"`
	Enabled         bool   `gorm:"not null;default:true"    json:"enabled"`
}

type Vendor struct {
	VendorID     int    `gorm:"primaryKey;autoIncrement" json:"vendorId"`
	VendorName   string `gorm:"not null"                 json:"vendorName"`
	PhoneNumber  string `json:"phoneNumber"`
	ContactEmail string `gorm:"not null"                 json:"contactEmail"`
	Enabled      bool   `gorm:"not null;default:true"    json:"enabled"`
}

// Same reports whether the other vendor describes the same real-world vendor,
// ids aside.
func (v Vendor) Same(other Vendor) bool {
	return v.VendorName == other.VendorName &&
		v.PhoneNumber == other.PhoneNumber &&
		v.ContactEmail == other.ContactEmail
}

type AppUser struct {
	AppUserID    int    `gorm:"primaryKey;autoIncrement" json:"appUserId"`
	Email        string `gorm:"unique;not null"          json:"email"`
	PasswordHash string `gorm:"not null"                 json:"-"`
	Role         string `gorm:"not null"                 json:"role"`
	Enabled      bool   `gorm:"not null;default:true"    json:"enabled"`
}

type RefreshToken struct {
	ID        uint   `gorm:"primaryKey"      json:"id"`
	Token     string `gorm:"unique;not null" json:"token"`
	UserID    int    `gorm:"index;not null"  json:"user_id"`
	ExpiresAt int64  `gorm:"not null"        json:"expires_at"`
	Revoked   bool   `gorm:"default:false"   json:"revoked"`
}

type CheckoutOrder struct {
	CheckoutOrderID int       `gorm:"primaryKey;autoIncrement" json:"checkoutOrderId"`
	StudentID       string    `gorm:"not null"                 json:"studentId"`
	AuthorityID     int       `gorm:"not null"                 json:"authorityId"`
	SelfCheckout    bool      `json:"selfCheckout"`
	CheckoutDate    time.Time `gorm:"not null"                 json:"checkoutDate"`

	// Read-side enrichment, never persisted.
	CheckoutItems []CheckoutItem `gorm:"-" json:"checkoutItems,omitempty"`
	Authority     *AppUser       `gorm:"-" json:"authority,omitempty"`
}

type CheckoutItem struct {
	CheckoutItemID  int `gorm:"primaryKey;autoIncrement"  json:"checkoutItemId"`
	CheckoutOrderID int `gorm:"index;not null"            json:"checkoutOrderId"`
	ItemID          int `gorm:"not null"                  json:"itemId"`
	Quantity        int `gorm:"not null;check:quantity>0" json:"quantity"`

	Item *Item `gorm:"-" json:"item,omitempty"`
}

type PurchaseOrder struct {
	PurchaseID   int       `gorm:"primaryKey;autoIncrement" json:"purchaseId"`
	AdminID      int       `gorm:"not null"                 json:"adminId"`
	VendorID     int       `gorm:"not null"                 json:"vendorId"`
	PurchaseDate time.Time `gorm:"not null"                 json:"purchaseDate"`

	PurchaseItems []PurchaseItem `gorm:"-" json:"purchaseItems,omitempty"`
	Admin         *AppUser       `gorm:"-" json:"admin,omitempty"`
	Vendor        *Vendor        `gorm:"-" json:"vendor,omitempty"`
}

type PurchaseItem struct {
	PurchaseItemID  int `gorm:"primaryKey;autoIncrement"  json:"purchaseItemId"`
	PurchaseOrderID int `gorm:"index;not null"            json:"purchaseOrderId"`
	ItemID          int `gorm:"not null"                  json:"itemId"`
	Quantity        int `gorm:"not null;check:quantity>0" json:"quantity"`

	Item *Item `gorm:"-" json:"item,omitempty"`
}

type InventoryLog struct {
	LogID          int       `gorm:"primaryKey;autoIncrement" json:"logId"`
	AuthorityID    *int      `gorm:"index"                    json:"authorityId"`
	ItemID         int       `gorm:"index;not null"           json:"itemId"`
	QuantityChange int       `gorm:"not null"                 json:"quantityChange"`
	Reason         string    `gorm:"not null"                 json:"reason"`
	TimeStamp      time.Time `gorm:"not null"                 json:"timeStamp"`

	Item      *Item    `gorm:"-" json:"item,omitempty"`
	Authority *AppUser `gorm:"-" json:"authority,omitempty"`
}

// Same reports whether two log entries record the identical adjustment:
// same authority, item, quantity change and timestamp.
func (l InventoryLog) Same(other InventoryLog) bool {
	if (l.AuthorityID == nil) != (other.AuthorityID == nil) {
		return false
	}
	if l.AuthorityID != nil && *l.AuthorityID != *other.AuthorityID {
		return false
	}
	return l.ItemID == other.ItemID &&
		l.QuantityChange == other.QuantityChange &&
		l.TimeStamp.Equal(other.TimeStamp)
}
