// services/notification.go - Outbound WhatsApp charge notifications
package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/shopspring/decimal"
)

var monthNames = [...]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// MonthName returns the Portuguese month name for 1-12
func MonthName(mes int) string {
	if mes < 1 || mes > 12 {
		return ""
	}
	return monthNames[mes-1]
}

// FormatChargeMessage builds the WhatsApp text for a charge reminder
func FormatChargeMessage(nome string, valor decimal.Decimal, mes, ano int) string {
	return fmt.Sprintf(
		"Olá! Você possui a cobrança *%s* no valor de R$ %s com vencimento em %s/%d. Qualquer dúvida, fale com a administração. 🃏",
		nome, valor.StringFixed(2), MonthName(mes), ano,
	)
}

// WhatsAppService sends text messages through an external WhatsApp gateway.
// Delivery is fire-and-forget: the caller is not expected to retry.
type WhatsAppService struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewWhatsAppService builds a sender for the given gateway. A nil client
// falls back to a default with a short timeout.
func NewWhatsAppService(baseURL, token string, client *http.Client) *WhatsAppService {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &WhatsAppService{baseURL: baseURL, token: token, client: client}
}

// NewWhatsAppServiceFromEnv reads WHATSAPP_API_URL / WHATSAPP_API_TOKEN
func NewWhatsAppServiceFromEnv() *WhatsAppService {
	return NewWhatsAppService(os.Getenv("WHATSAPP_API_URL"), os.Getenv("WHATSAPP_API_TOKEN"), nil)
}

type whatsAppMessage struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// SendChargeNotification posts the templated charge reminder to the gateway
func (s *WhatsAppService) SendChargeNotification(phone, nome string, valor decimal.Decimal, mes, ano int) error {
	if s.baseURL == "" {
		return fmt.Errorf("WhatsApp gateway not configured")
	}
	if phone == "" {
		return fmt.Errorf("integrante sem telefone cadastrado")
	}

	payload := whatsAppMessage{
		Phone:   phone,
		Message: FormatChargeMessage(nome, valor, mes, ano),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, s.baseURL+"/messages", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.token)

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("WhatsApp gateway returned status %d", resp.StatusCode)
	}

	return nil
}
