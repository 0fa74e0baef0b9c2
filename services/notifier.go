package services

import (
	"log"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/ytayachi/magasin-api/models"
)

// Notifier sends webhook notifications when an order or delivery
// changes status or location. Dispatch is fire-and-forget: a missing
// webhook URL disables it entirely, and delivery failures are logged
// and swallowed so they never fail the mutation that triggered them.
type Notifier struct {
	webhookURL string
	client     *resty.Client
}

func NewNotifier(webhookURL string) *Notifier {
	return &Notifier{
		webhookURL: webhookURL,
		client:     resty.New().SetTimeout(10 * time.Second),
	}
}

// OrderChanged compares the snapshot taken before the update with the
// persisted result. The caller passes the previous state explicitly,
// re-querying it here could race with a concurrent save.
func (n *Notifier) OrderChanged(previous, updated *models.Order) {
	if previous.Status == updated.Status {
		return
	}
	log.Printf("[Webhook] Order %d: status changed from %s to %s", updated.ID, previous.Status, updated.Status)
	n.dispatch(map[string]any{
		"event":         "order_status_changed",
		"order_id":      updated.ID,
		"customer_name": updated.CustomerName,
		"phone_number":  updated.PhoneNumber,
		"old_status":    previous.Status,
		"new_status":    updated.Status,
		"total_amount":  updated.TotalAmount,
		"timestamp":     time.Now(),
	})
}

func (n *Notifier) DeliveryChanged(previous, updated *models.Delivery) {
	if previous.Status != updated.Status {
		log.Printf("[Webhook] Delivery %d: status changed from %s to %s", updated.ID, previous.Status, updated.Status)
		n.dispatch(map[string]any{
			"event":       "delivery_status_changed",
			"delivery_id": updated.ID,
			"old_status":  previous.Status,
			"new_status":  updated.Status,
			"timestamp":   time.Now(),
		})
	}

	if previous.Location != updated.Location {
		log.Printf("[Webhook] Delivery %d: location changed from %s to %s", updated.ID, previous.Location, updated.Location)
		n.dispatch(map[string]any{
			"event":        "delivery_location_changed",
			"delivery_id":  updated.ID,
			"old_location": previous.Location,
			"new_location": updated.Location,
			"timestamp":    time.Now(),
		})
	}
}

func (n *Notifier) dispatch(payload map[string]any) {
	if n.webhookURL == "" {
		return
	}

	go func() {
		resp, err := n.client.R().
			SetHeader("Content-Type", "application/json").
			SetBody(payload).
			Post(n.webhookURL)
		if err != nil {
			log.Printf("Error sending webhook: %v", err)
			return
		}
		if resp.IsError() {
			log.Printf("Webhook request failed with status %d: %s", resp.StatusCode(), resp.Body())
		}
	}()
}
