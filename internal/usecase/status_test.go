package usecase

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/polkiloo/ordertrack/internal/domain/model"
)

func TestDeriveStatusProductionTimeline(t *testing.T) {
	cases := []struct {
		days      int
		wantStage model.Stage
		wantMsg   string
		wantDays  int
	}{
		{days: -3, wantStage: model.StageReceived, wantMsg: "Order Received", wantDays: 0},
		{days: 0, wantStage: model.StageProduction, wantMsg: "In Production", wantDays: 0},
		{days: 4, wantStage: model.StageProduction, wantMsg: "In Production", wantDays: 4},
		{days: 5, wantStage: model.StageStitching, wantMsg: "In Stitching", wantDays: 0},
		{days: 7, wantStage: model.StageStitching, wantMsg: "In Stitching", wantDays: 2},
		{days: 10, wantStage: model.StageFinishing, wantMsg: "Finishing & Packing", wantDays: 0},
		{days: 12, wantStage: model.StageFinishing, wantMsg: "Finishing & Packing", wantDays: 2},
		{days: 15, wantStage: model.StageDispatched, wantMsg: "Dispatched", wantDays: 0},
		{days: 40, wantStage: model.StageDispatched, wantMsg: "Dispatched", wantDays: 25},
	}

	for _, tc := range cases {
		got := DeriveStatus(model.Order{FulfillmentStatus: model.FulfillmentStatusFulfilled}, tc.days, true)
		require.Equal(t, model.OrderStatus{Stage: tc.wantStage, Message: tc.wantMsg, Days: tc.wantDays}, got, "days=%d", tc.days)
	}
}

func TestDeriveStatusStandardChain(t *testing.T) {
	cases := []struct {
		name  string
		order model.Order
		want  model.Stage
		msg   string
	}{
		{
			name:  "fulfilled wins over payment",
			order: model.Order{FulfillmentStatus: model.FulfillmentStatusFulfilled, FinancialStatus: model.FinancialStatusPending},
			want:  model.StageFulfilled,
			msg:   "Order Fulfilled",
		},
		{
			name:  "partial",
			order: model.Order{FulfillmentStatus: model.FulfillmentStatusPartial, FinancialStatus: model.FinancialStatusPaid},
			want:  model.StagePartial,
			msg:   "Partially Fulfilled",
		},
		{
			name:  "paid",
			order: model.Order{FinancialStatus: model.FinancialStatusPaid},
			want:  model.StageProcessing,
			msg:   "Processing Order",
		},
		{
			name:  "pending",
			order: model.Order{FinancialStatus: model.FinancialStatusPending},
			want:  model.StagePending,
			msg:   "Payment Pending",
		},
		{
			name:  "refunded falls through",
			order: model.Order{FinancialStatus: model.FinancialStatusRefunded},
			want:  model.StageReceived,
			msg:   "Order Received",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DeriveStatus(tc.order, 9, false)
			require.Equal(t, tc.want, got.Stage)
			require.Equal(t, tc.msg, got.Message)
			require.Equal(t, 9, got.Days)
		})
	}
}

func TestDeriveStatusFulfilledRegardlessOfDays(t *testing.T) {
	order := model.Order{FulfillmentStatus: model.FulfillmentStatusFulfilled}
	for _, days := range []int{-10, 0, 3, 30, 365} {
		require.Equal(t, model.StageFulfilled, DeriveStatus(order, days, false).Stage)
	}
}

func TestDaysSince(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		created time.Time
		want    int
	}{
		{created: now, want: 0},
		{created: now.Add(-23 * time.Hour), want: 0},
		{created: now.Add(-24 * time.Hour), want: 1},
		{created: now.Add(-7*24*time.Hour - time.Minute), want: 7},
		{created: now.Add(time.Hour), want: -1},
		{created: now.Add(49 * time.Hour), want: -3},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, DaysSince(tc.created, now), "created=%v", tc.created)
	}
}

func productionStages() map[model.Stage]bool {
	return map[model.Stage]bool{
		model.StageReceived:   true,
		model.StageProduction: true,
		model.StageStitching:  true,
		model.StageFinishing:  true,
		model.StageDispatched: true,
	}
}

func standardStages() map[model.Stage]bool {
	return map[model.Stage]bool{
		model.StageFulfilled:  true,
		model.StagePartial:    true,
		model.StageProcessing: true,
		model.StagePending:    true,
		model.StageReceived:   true,
	}
}

func TestDeriveStatusProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	fulfillments := []model.FulfillmentStatus{
		model.FulfillmentStatusNone,
		model.FulfillmentStatusPartial,
		model.FulfillmentStatusFulfilled,
	}
	financials := []model.FinancialStatus{
		model.FinancialStatusPending,
		model.FinancialStatusAuthorized,
		model.FinancialStatusPaid,
		model.FinancialStatusRefunded,
		model.FinancialStatusVoided,
	}

	properties.Property("production timeline yields exactly one known stage", prop.ForAll(
		func(days int) bool {
			status := DeriveStatus(model.Order{}, days, true)
			if !productionStages()[status.Stage] {
				return false
			}
			return status.Days >= 0 && (days < 0 || status.Days <= days)
		},
		gen.IntRange(-10000, 100000),
	))

	properties.Property("production stage boundaries are consistent", prop.ForAll(
		func(days int) bool {
			status := DeriveStatus(model.Order{}, days, true)
			switch {
			case days < 0:
				return status.Stage == model.StageReceived && status.Days == 0
			case days < 5:
				return status.Stage == model.StageProduction && status.Days == days
			case days < 10:
				return status.Stage == model.StageStitching && status.Days == days-5
			case days < 15:
				return status.Stage == model.StageFinishing && status.Days == days-10
			default:
				return status.Stage == model.StageDispatched && status.Days == days-15
			}
		},
		gen.IntRange(-100, 1000),
	))

	properties.Property("standard chain yields a known stage with total days", prop.ForAll(
		func(days, fi, pi int) bool {
			order := model.Order{FulfillmentStatus: fulfillments[fi], FinancialStatus: financials[pi]}
			status := DeriveStatus(order, days, false)
			return standardStages()[status.Stage] && status.Days == days && status.Message != ""
		},
		gen.IntRange(-10000, 100000),
		gen.IntRange(0, len(fulfillments)-1),
		gen.IntRange(0, len(financials)-1),
	))

	properties.Property("derivation is idempotent", prop.ForAll(
		func(days int, distinguished bool) bool {
			order := model.Order{FinancialStatus: model.FinancialStatusPaid}
			return DeriveStatus(order, days, distinguished) == DeriveStatus(order, days, distinguished)
		},
		gen.IntRange(-10000, 100000),
		gen.Bool(),
	))

	properties.TestingRun(t)
}
