package webinar

import (
	"errors"
	"fmt"
	"time"

	"lms/models"
	webinarModels "lms/models/webinar"
	"lms/services/payment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrAlreadyRegistered is returned when an active REGISTERED record
	// already exists for the (user, webinar) pair.
	ErrAlreadyRegistered = errors.New("user already registered for this webinar")

	// ErrWebinarNotFound is returned when the webinar does not resolve
	// or is not published.
	ErrWebinarNotFound = errors.New("webinar not found")
)

// RegisterResult is the outcome of a registration attempt. Exactly one
// of Registration and Order is set.
type RegisterResult struct {
	Registration *webinarModels.Registration
	Order        *payment.Order
}

// Register registers a user for a free webinar, or creates a payment
// order for a priced one. A cancelled registration does not block
// re-registering; only an active REGISTERED record does.
func Register(db *gorm.DB, gw payment.Gateway, userID, webinarID uint) (*RegisterResult, error) {
	var wb webinarModels.Webinar
	if err := db.Where("id = ? AND is_deleted = ? AND is_published = ?", webinarID, false, true).First(&wb).Error; err != nil {
		return nil, ErrWebinarNotFound
	}

	var existing webinarModels.Registration
	if err := db.Where("user_id = ? AND webinar_id = ? AND status = ? AND is_deleted = ?",
		userID, webinarID, webinarModels.StatusRegistered, false).First(&existing).Error; err == nil {
		return nil, ErrAlreadyRegistered
	}

	if wb.RequiresPayment() {
		receipt := "webinar_" + uuid.NewString()
		order, err := gw.CreateOrder(wb.Price, "INR", receipt, map[string]string{
			"user_id":    fmt.Sprint(userID),
			"webinar_id": fmt.Sprint(webinarID),
		})
		if err != nil {
			return nil, err
		}

		record := models.PaymentOrder{
			UserID:         userID,
			ItemType:       models.OrderItemWebinar,
			ItemID:         webinarID,
			GatewayOrderID: order.ID,
			Receipt:        receipt,
			Amount:         order.Amount,
			Currency:       order.Currency,
			Status:         models.OrderStatusCreated,
		}
		if err := db.Create(&record).Error; err != nil {
			return nil, fmt.Errorf("failed to record payment order: %v", err)
		}

		return &RegisterResult{Order: order}, nil
	}

	registration, err := writeRegistration(db, userID, webinarID)
	if err != nil {
		return nil, err
	}
	return &RegisterResult{Registration: registration}, nil
}

// writeRegistration performs the ledger writes for a confirmed
// registration: the REGISTERED row and the atomic attendee increment.
func writeRegistration(db *gorm.DB, userID, webinarID uint) (*webinarModels.Registration, error) {
	registration := webinarModels.Registration{
		UserID:       userID,
		WebinarID:    webinarID,
		Status:       webinarModels.StatusRegistered,
		RegisteredAt: time.Now(),
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&registration).Error; err != nil {
			return err
		}
		return tx.Model(&webinarModels.Webinar{}).Where("id = ?", webinarID).
			UpdateColumn("attendees", gorm.Expr("attendees + ?", 1)).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to register: %v", err)
	}

	return &registration, nil
}

// FinalizeWebinarPayment turns a paid order into a registration.
// Idempotent on webhook replay.
func FinalizeWebinarPayment(db *gorm.DB, order *models.PaymentOrder) error {
	var existing webinarModels.Registration
	alreadyRegistered := db.Where("user_id = ? AND webinar_id = ? AND status = ? AND is_deleted = ?",
		order.UserID, order.ItemID, webinarModels.StatusRegistered, false).First(&existing).Error == nil

	if !alreadyRegistered {
		if _, err := writeRegistration(db, order.UserID, order.ItemID); err != nil {
			return err
		}
	}

	order.Status = models.OrderStatusPaid
	return db.Save(order).Error
}

// Cancel marks an active registration CANCELLED. Admin action; the
// attendee counter is left as-is since it counts historical signups.
func Cancel(db *gorm.DB, userID, webinarID uint) error {
	var registration webinarModels.Registration
	if err := db.Where("user_id = ? AND webinar_id = ? AND status = ? AND is_deleted = ?",
		userID, webinarID, webinarModels.StatusRegistered, false).First(&registration).Error; err != nil {
		return err
	}

	registration.Status = webinarModels.StatusCancelled
	return db.Save(&registration).Error
}
