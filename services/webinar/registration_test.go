package webinar

import (
	"fmt"
	"testing"
	"time"

	"lms/database"
	"lms/models"
	webinarModels "lms/models/webinar"
	"lms/services/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type stubGateway struct {
	calls int
	err   error
}

func (s *stubGateway) CreateOrder(amount uint, currency, receipt string, notes map[string]string) (*payment.Order, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &payment.Order{
		ID:       fmt.Sprintf("order_stub_%d", s.calls),
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
		Status:   "created",
	}, nil
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database.RunMigrations(db)
	return db
}

func seedWebinar(t *testing.T, db *gorm.DB, price uint) *webinarModels.Webinar {
	t.Helper()

	wb := webinarModels.Webinar{
		Title:       "Market Outlook",
		Slug:        fmt.Sprintf("market-outlook-%d", price),
		StartsAt:    time.Now().Add(48 * time.Hour),
		Price:       price,
		IsFree:      price == 0,
		IsPublished: true,
	}
	require.NoError(t, db.Create(&wb).Error)
	return &wb
}

func TestRegisterFreeWebinar(t *testing.T) {
	db := setupTestDB(t)
	gw := &stubGateway{}
	wb := seedWebinar(t, db, 0)

	result, err := Register(db, gw, 1, wb.ID)
	require.NoError(t, err)
	require.NotNil(t, result.Registration)
	assert.Nil(t, result.Order)
	assert.Equal(t, webinarModels.StatusRegistered, result.Registration.Status)
	assert.Zero(t, gw.calls)

	var updated webinarModels.Webinar
	require.NoError(t, db.First(&updated, wb.ID).Error)
	assert.Equal(t, uint(1), updated.Attendees)
}

func TestRegisterDuplicate(t *testing.T) {
	db := setupTestDB(t)
	gw := &stubGateway{}
	wb := seedWebinar(t, db, 0)

	_, err := Register(db, gw, 1, wb.ID)
	require.NoError(t, err)

	_, err = Register(db, gw, 1, wb.ID)
	assert.ErrorIs(t, err, ErrAlreadyRegistered)

	var updated webinarModels.Webinar
	require.NoError(t, db.First(&updated, wb.ID).Error)
	assert.Equal(t, uint(1), updated.Attendees)
}

func TestRegisterWebinarNotFound(t *testing.T) {
	db := setupTestDB(t)
	gw := &stubGateway{}

	_, err := Register(db, gw, 1, 9999)
	assert.ErrorIs(t, err, ErrWebinarNotFound)
}

func TestRegisterPricedWebinarCreatesOrderOnly(t *testing.T) {
	db := setupTestDB(t)
	gw := &stubGateway{}
	wb := seedWebinar(t, db, 19900)

	result, err := Register(db, gw, 1, wb.ID)
	require.NoError(t, err)
	require.NotNil(t, result.Order)
	assert.Nil(t, result.Registration)

	var count int64
	db.Model(&webinarModels.Registration{}).Where("user_id = ? AND webinar_id = ?", 1, wb.ID).Count(&count)
	assert.Zero(t, count)

	var updated webinarModels.Webinar
	require.NoError(t, db.First(&updated, wb.ID).Error)
	assert.Zero(t, updated.Attendees)

	var order models.PaymentOrder
	require.NoError(t, db.Where("gateway_order_id = ?", result.Order.ID).First(&order).Error)
	assert.Equal(t, models.OrderStatusCreated, order.Status)
	assert.Equal(t, models.OrderItemWebinar, order.ItemType)
}

func TestFinalizeWebinarPayment(t *testing.T) {
	db := setupTestDB(t)
	gw := &stubGateway{}
	wb := seedWebinar(t, db, 19900)

	result, err := Register(db, gw, 1, wb.ID)
	require.NoError(t, err)

	var order models.PaymentOrder
	require.NoError(t, db.Where("gateway_order_id = ?", result.Order.ID).First(&order).Error)

	require.NoError(t, FinalizeWebinarPayment(db, &order))
	assert.Equal(t, models.OrderStatusPaid, order.Status)

	var registration webinarModels.Registration
	require.NoError(t, db.Where("user_id = ? AND webinar_id = ?", 1, wb.ID).First(&registration).Error)
	assert.Equal(t, webinarModels.StatusRegistered, registration.Status)

	// replay: still one registration, attendees not double-counted
	require.NoError(t, FinalizeWebinarPayment(db, &order))

	var count int64
	db.Model(&webinarModels.Registration{}).Where("user_id = ? AND webinar_id = ?", 1, wb.ID).Count(&count)
	assert.Equal(t, int64(1), count)

	var updated webinarModels.Webinar
	require.NoError(t, db.First(&updated, wb.ID).Error)
	assert.Equal(t, uint(1), updated.Attendees)
}

func TestCancelAndReRegister(t *testing.T) {
	db := setupTestDB(t)
	gw := &stubGateway{}
	wb := seedWebinar(t, db, 0)

	_, err := Register(db, gw, 1, wb.ID)
	require.NoError(t, err)

	require.NoError(t, Cancel(db, 1, wb.ID))

	var cancelled webinarModels.Registration
	require.NoError(t, db.Where("user_id = ? AND webinar_id = ? AND status = ?",
		1, wb.ID, webinarModels.StatusCancelled).First(&cancelled).Error)

	// a cancelled record does not block signing up again
	result, err := Register(db, gw, 1, wb.ID)
	require.NoError(t, err)
	require.NotNil(t, result.Registration)
	assert.Equal(t, webinarModels.StatusRegistered, result.Registration.Status)
}

func TestCancelWithoutRegistration(t *testing.T) {
	db := setupTestDB(t)
	wb := seedWebinar(t, db, 0)

	err := Cancel(db, 1, wb.ID)
	assert.Error(t, err)
}
