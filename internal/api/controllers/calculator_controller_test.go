package controllers

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"carwise/internal/models/response_models"
	"carwise/internal/services"
)

type calculateEnvelope struct {
	Status string                               `json:"status"`
	Data   *response_models.CalculationResponse `json:"data"`
}

func newCalculatorRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewCalculatorController(services.NewCalculatorService())
	r := gin.New()
	r.POST("/calculate", controller.CalculateHandler)
	return r
}

func TestCalculateHandler(t *testing.T) {
	router := newCalculatorRouter()

	body := `{
		"commute": {"distance": 50, "workDaysPerMonth": 22, "publicTransportCost": 3200, "publicTransportTime": 90, "carTime": 60},
		"car": {"purchasePrice": 30000000, "fuelEfficiency": 12, "fuelPrice": 1600, "insurance": 1200000, "tax": 400000, "parkingFee": 100000, "tollFee": 3000, "maintenanceFee": 800000, "depreciationYears": 5},
		"timeValue": {"hourlyWage": 20000}
	}`
	req := httptest.NewRequest(http.MethodPost, "/calculate", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var envelope calculateEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("malformed response body: %v", err)
	}
	if envelope.Data == nil {
		t.Fatal("response carries no data")
	}
	if envelope.Data.PublicTransport.TotalMonthlyCost != 1_460_800 {
		t.Errorf("expected transit total 1460800, got %.2f", envelope.Data.PublicTransport.TotalMonthlyCost)
	}
	if math.Round(envelope.Data.Car.TotalMonthlyCost) != 2_105_333 {
		t.Errorf("expected car total ~2105333, got %.2f", envelope.Data.Car.TotalMonthlyCost)
	}
	// Unreachable break-even serializes as null, never +Inf.
	if envelope.Data.BreakEvenMonths != nil {
		t.Errorf("expected null break-even, got %.2f", *envelope.Data.BreakEvenMonths)
	}
	if envelope.Data.Recommendation != "publicTransport" {
		t.Errorf("expected publicTransport recommendation, got %q", envelope.Data.Recommendation)
	}
}

func TestCalculateHandler_ReachableBreakEven(t *testing.T) {
	router := newCalculatorRouter()

	// Expensive transit, already-owned car: purchase price 0 means break-even 0.
	body := `{
		"commute": {"distance": 10, "workDaysPerMonth": 22, "publicTransportCost": 5000, "publicTransportTime": 120, "carTime": 30},
		"car": {"purchasePrice": 0, "fuelEfficiency": 15, "fuelPrice": 1600},
		"timeValue": {"hourlyWage": 20000}
	}`
	req := httptest.NewRequest(http.MethodPost, "/calculate", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var envelope calculateEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("malformed response body: %v", err)
	}
	if envelope.Data.BreakEvenMonths == nil || *envelope.Data.BreakEvenMonths != 0 {
		t.Errorf("expected break-even 0, got %v", envelope.Data.BreakEvenMonths)
	}
}

func TestCalculateHandler_RejectsInvalidBody(t *testing.T) {
	router := newCalculatorRouter()

	cases := map[string]string{
		"missing fuel efficiency": `{
			"commute": {"distance": 50, "workDaysPerMonth": 22},
			"car": {"purchasePrice": 30000000},
			"timeValue": {"hourlyWage": 20000}
		}`,
		"zero distance": `{
			"commute": {"distance": 0, "workDaysPerMonth": 22},
			"car": {"purchasePrice": 30000000, "fuelEfficiency": 12},
			"timeValue": {"hourlyWage": 20000}
		}`,
		"not json": `distance=50`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/calculate", bytes.NewReader([]byte(body)))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}
