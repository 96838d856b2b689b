package model

// Stage is the customer-facing progress stage of an order.
type Stage string

const (
	StageReceived   Stage = "received"
	StageProduction Stage = "production"
	StageStitching  Stage = "stitching"
	StageFinishing  Stage = "finishing"
	StageDispatched Stage = "dispatched"
	StageFulfilled  Stage = "fulfilled"
	StagePartial    Stage = "partial"
	StageProcessing Stage = "processing"
	StagePending    Stage = "pending"
)

// OrderStatus is the derived stage plus its display message and the number
// of days spent in it.
type OrderStatus struct {
	Stage   Stage
	Message string
	Days    int
}

// TrackedOrder is the result of a successful lookup.
type TrackedOrder struct {
	Order          Order
	DaysSinceOrder int
	Distinguished  bool
	Status         OrderStatus
}
