package usecase

import (
	"math"
	"time"

	"github.com/polkiloo/ordertrack/internal/domain/model"
)

const day = 24 * time.Hour

// DaysSince returns the number of whole days elapsed from created to now.
// The result is negative when created lies in the future.
func DaysSince(created, now time.Time) int {
	return int(math.Floor(float64(now.Sub(created)) / float64(day)))
}

// DeriveStatus maps an order and its age to a customer-facing stage.
// Distinguished orders follow the production timeline, all others mirror
// upstream fulfillment and financial state.
func DeriveStatus(order model.Order, days int, distinguished bool) model.OrderStatus {
	if distinguished {
		return productionStatus(days)
	}
	return standardStatus(order, days)
}

func productionStatus(days int) model.OrderStatus {
	switch {
	case days < 0:
		return model.OrderStatus{Stage: model.StageReceived, Message: "Order Received", Days: 0}
	case days < 5:
		return model.OrderStatus{Stage: model.StageProduction, Message: "In Production", Days: days}
	case days < 10:
		return model.OrderStatus{Stage: model.StageStitching, Message: "In Stitching", Days: days - 5}
	case days < 15:
		return model.OrderStatus{Stage: model.StageFinishing, Message: "Finishing & Packing", Days: days - 10}
	default:
		return model.OrderStatus{Stage: model.StageDispatched, Message: "Dispatched", Days: days - 15}
	}
}

func standardStatus(order model.Order, days int) model.OrderStatus {
	switch {
	case order.FulfillmentStatus == model.FulfillmentStatusFulfilled:
		return model.OrderStatus{Stage: model.StageFulfilled, Message: "Order Fulfilled", Days: days}
	case order.FulfillmentStatus == model.FulfillmentStatusPartial:
		return model.OrderStatus{Stage: model.StagePartial, Message: "Partially Fulfilled", Days: days}
	case order.FinancialStatus == model.FinancialStatusPaid:
		return model.OrderStatus{Stage: model.StageProcessing, Message: "Processing Order", Days: days}
	case order.FinancialStatus == model.FinancialStatusPending:
		return model.OrderStatus{Stage: model.StagePending, Message: "Payment Pending", Days: days}
	default:
		return model.OrderStatus{Stage: model.StageReceived, Message: "Order Received", Days: days}
	}
}
