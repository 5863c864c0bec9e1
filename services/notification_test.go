package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthName(t *testing.T) {
	assert.Equal(t, "Janeiro", MonthName(1))
	assert.Equal(t, "Junho", MonthName(6))
	assert.Equal(t, "Dezembro", MonthName(12))
	assert.Equal(t, "", MonthName(0))
	assert.Equal(t, "", MonthName(13))
}

func TestFormatChargeMessage(t *testing.T) {
	msg := FormatChargeMessage("Mensalidade", decimal.NewFromFloat(50.5), 6, 2025)

	assert.Contains(t, msg, "*Mensalidade*")
	assert.Contains(t, msg, "R$ 50.50")
	assert.Contains(t, msg, "Junho/2025")
}

func TestSendChargeNotification(t *testing.T) {
	t.Run("posts the templated message to the gateway", func(t *testing.T) {
		var received whatsAppMessage
		var gotAuth string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/messages", r.URL.Path)
			gotAuth = r.Header.Get("Authorization")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		svc := NewWhatsAppService(server.URL, "token-123", server.Client())
		err := svc.SendChargeNotification("5511999990000", "Mensalidade", decimal.NewFromFloat(50), 6, 2025)

		require.NoError(t, err)
		assert.Equal(t, "Bearer token-123", gotAuth)
		assert.Equal(t, "5511999990000", received.Phone)
		assert.Contains(t, received.Message, "Mensalidade")
	})

	t.Run("gateway error status is surfaced", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		svc := NewWhatsAppService(server.URL, "token-123", server.Client())
		err := svc.SendChargeNotification("5511999990000", "Mensalidade", decimal.NewFromFloat(50), 6, 2025)

		assert.Error(t, err)
	})

	t.Run("missing phone is rejected before sending", func(t *testing.T) {
		svc := NewWhatsAppService("http://localhost:1", "token-123", nil)
		err := svc.SendChargeNotification("", "Mensalidade", decimal.NewFromFloat(50), 6, 2025)
		assert.Error(t, err)
	})

	t.Run("unconfigured gateway is rejected", func(t *testing.T) {
		svc := NewWhatsAppService("", "", nil)
		err := svc.SendChargeNotification("5511999990000", "Mensalidade", decimal.NewFromFloat(50), 6, 2025)
		assert.Error(t, err)
	})
}
