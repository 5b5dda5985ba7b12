package models

import "gorm.io/gorm"

// Payment order statuses. A CREATED row is the pending-payment state
// for a priced course or webinar: the enrollment/registration ledger
// is only written once the order transitions to PAID.
const (
	OrderStatusCreated = "CREATED"
	OrderStatusPaid    = "PAID"
	OrderStatusFailed  = "FAILED"
)

// Order item kinds
const (
	OrderItemCourse  = "COURSE"
	OrderItemWebinar = "WEBINAR"
)

// PaymentOrder tracks a gateway order created for a priced item
type PaymentOrder struct {
	gorm.Model
	UserID          uint   `json:"user_id" gorm:"index;not null"`
	ItemType        string `json:"item_type" gorm:"not null"` // COURSE, WEBINAR
	ItemID          uint   `json:"item_id" gorm:"index;not null"`
	GatewayOrderID  string `json:"gateway_order_id" gorm:"uniqueIndex;not null"`
	Receipt         string `json:"receipt"`
	Amount          uint   `json:"amount"` // in paise
	Currency        string `json:"currency" gorm:"default:'INR'"`
	Status          string `json:"status" gorm:"default:'CREATED'"`
	PaymentID       string `json:"payment_id"`
	PaymentSignature string `json:"payment_signature"`
	IsDeleted       bool   `gorm:"default:false"`
}
