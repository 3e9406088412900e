package validation_test

import (
	"strings"
	"testing"

	"github.com/jmertens/portfolio-tracker-backend/internal/api/request"
	"github.com/jmertens/portfolio-tracker-backend/internal/validation"
)

// TestValidateAddHolding tests buy request validation.
func TestValidateAddHolding(t *testing.T) {
	valid := request.AddHoldingRequest{
		Symbol: "AAPL",
		Shares: 10,
		Price:  150,
		Date:   "2024-01-15",
	}

	t.Run("accepts a valid request", func(t *testing.T) {
		if err := validation.ValidateAddHolding(valid); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("accepts zero price", func(t *testing.T) {
		req := valid
		req.Price = 0
		if err := validation.ValidateAddHolding(req); err != nil {
			t.Errorf("Expected zero price to be accepted, got %v", err)
		}
	})

	t.Run("accepts fractional shares", func(t *testing.T) {
		req := valid
		req.Shares = 0.25
		if err := validation.ValidateAddHolding(req); err != nil {
			t.Errorf("Expected fractional shares to be accepted, got %v", err)
		}
	})

	tests := []struct {
		name   string
		mutate func(*request.AddHoldingRequest)
		field  string
	}{
		{"rejects empty symbol", func(r *request.AddHoldingRequest) { r.Symbol = "   " }, "symbol"},
		{"rejects zero shares", func(r *request.AddHoldingRequest) { r.Shares = 0 }, "shares"},
		{"rejects negative shares", func(r *request.AddHoldingRequest) { r.Shares = -1 }, "shares"},
		{"rejects negative price", func(r *request.AddHoldingRequest) { r.Price = -0.01 }, "price"},
		{"rejects missing date", func(r *request.AddHoldingRequest) { r.Date = "" }, "date"},
		{"rejects malformed date", func(r *request.AddHoldingRequest) { r.Date = "15-01-2024" }, "date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := validation.ValidateAddHolding(req)
			if !validation.IsValidationError(err) {
				t.Fatalf("Expected a validation error, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("Expected error to name field %q, got %q", tt.field, err.Error())
			}
		})
	}

	t.Run("reports all failing fields at once", func(t *testing.T) {
		err := validation.ValidateAddHolding(request.AddHoldingRequest{})
		if !validation.IsValidationError(err) {
			t.Fatalf("Expected a validation error, got %v", err)
		}
		for _, field := range []string{"symbol", "shares", "date"} {
			if !strings.Contains(err.Error(), field) {
				t.Errorf("Expected error to name field %q, got %q", field, err.Error())
			}
		}
	})
}

// TestValidateSellHolding tests sell request validation.
func TestValidateSellHolding(t *testing.T) {
	valid := request.SellHoldingRequest{
		Symbol: "AAPL",
		Shares: 5,
		Price:  160,
		Date:   "2024-02-15",
	}

	t.Run("accepts a valid request", func(t *testing.T) {
		if err := validation.ValidateSellHolding(valid); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("rejects zero shares", func(t *testing.T) {
		req := valid
		req.Shares = 0
		if err := validation.ValidateSellHolding(req); !validation.IsValidationError(err) {
			t.Errorf("Expected a validation error, got %v", err)
		}
	})
}

// TestValidateUpdatePrice tests price update validation.
func TestValidateUpdatePrice(t *testing.T) {
	t.Run("accepts zero price", func(t *testing.T) {
		err := validation.ValidateUpdatePrice(request.UpdatePriceRequest{Symbol: "AAPL", Price: 0})
		if err != nil {
			t.Errorf("Expected zero price to be accepted, got %v", err)
		}
	})

	t.Run("rejects negative price", func(t *testing.T) {
		err := validation.ValidateUpdatePrice(request.UpdatePriceRequest{Symbol: "AAPL", Price: -1})
		if !validation.IsValidationError(err) {
			t.Errorf("Expected a validation error, got %v", err)
		}
	})

	t.Run("rejects empty symbol", func(t *testing.T) {
		err := validation.ValidateUpdatePrice(request.UpdatePriceRequest{Price: 10})
		if !validation.IsValidationError(err) {
			t.Errorf("Expected a validation error, got %v", err)
		}
	})
}

// TestValidateUUID tests UUID format checks used by the routing middleware.
func TestValidateUUID(t *testing.T) {
	t.Run("accepts a canonical UUID", func(t *testing.T) {
		if err := validation.ValidateUUID("f47ac10b-58cc-4372-a567-0e02b2c3d479"); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("rejects junk", func(t *testing.T) {
		for _, id := range []string{"", "not-a-uuid", "12345", "f47ac10b-58cc-4372-a567"} {
			if err := validation.ValidateUUID(id); !validation.IsValidationError(err) {
				t.Errorf("Expected a validation error for %q, got %v", id, err)
			}
		}
	})
}
