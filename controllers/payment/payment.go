package paymentController

import (
	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseService "lms/services/course"
	"lms/services/payment"
	webinarService "lms/services/webinar"

	"github.com/gofiber/fiber/v2"
)

// ConfirmPayment verifies a checkout signature and finalizes the
// pending enrollment or registration. Safe to call again for the same
// order: the ledger writes are idempotent and the counters are only
// bumped once.
func ConfirmPayment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedPaymentConfirm").(*struct {
		OrderID   string `json:"orderId"`
		PaymentID string `json:"paymentId"`
		Signature string `json:"signature"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var order models.PaymentOrder
	if err := database.Database.Db.Where("gateway_order_id = ? AND user_id = ? AND is_deleted = ?",
		reqData.OrderID, userID, false).First(&order).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Payment order not found!", nil)
	}

	if !payment.VerifySignature(reqData.OrderID, reqData.PaymentID, reqData.Signature, config.AppConfig.RazorpayKeySecret) {
		order.Status = models.OrderStatusFailed
		database.Database.Db.Save(&order)
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Payment signature verification failed!", nil)
	}

	order.PaymentID = reqData.PaymentID
	order.PaymentSignature = reqData.Signature

	var err error
	switch order.ItemType {
	case models.OrderItemCourse:
		err = courseService.FinalizeCoursePayment(database.Database.Db, &order)
	case models.OrderItemWebinar:
		err = webinarService.FinalizeWebinarPayment(database.Database.Db, &order)
	default:
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Unknown order item type!", nil)
	}
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to finalize payment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment confirmed successfully!", fiber.Map{
		"orderId":   order.GatewayOrderID,
		"item_type": order.ItemType,
		"item_id":   order.ItemID,
		"status":    order.Status,
	})
}

// GetMyOrders lists the user's payment orders
func GetMyOrders(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.PaymentOrder{}).Where("user_id = ? AND is_deleted = ?", userID, false)

	var total int64
	db.Count(&total)

	var orders []models.PaymentOrder
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&orders).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch orders!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Orders fetched successfully!", fiber.Map{
		"orders": orders,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}
