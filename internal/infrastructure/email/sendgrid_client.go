package email

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"dropfit/internal/domain/entity"
)

const mailSendEndpoint = "https://api.sendgrid.com/v3/mail/send"

// SendgridClient talks to the SendGrid v3 mail API. Sends are best-effort by
// policy; callers log failures and move on.
type SendgridClient struct {
	apiKey    string
	fromEmail string
	baseURL   string
	http      *resty.Client
}

func NewSendgridClient(apiKey, fromEmail, baseURL string) *SendgridClient {
	return &SendgridClient{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		baseURL:   baseURL,
		http:      resty.New().SetTimeout(10 * time.Second),
	}
}

type mailAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type mailPersonalization struct {
	To []mailAddress `json:"to"`
}

type mailContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type mailRequest struct {
	Personalizations []mailPersonalization `json:"personalizations"`
	From             mailAddress           `json:"from"`
	Subject          string                `json:"subject"`
	Content          []mailContent         `json:"content"`
}

func (c *SendgridClient) send(ctx context.Context, recipients []string, subject, html string) error {
	to := make([]mailAddress, len(recipients))
	for i, email := range recipients {
		to[i] = mailAddress{Email: email}
	}

	req := mailRequest{
		Personalizations: []mailPersonalization{{To: to}},
		From:             mailAddress{Email: c.fromEmail, Name: "Drop Fit"},
		Subject:          subject,
		Content:          []mailContent{{Type: "text/html", Value: html}},
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(c.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(mailSendEndpoint)
	if err != nil {
		return err
	}

	if resp.IsError() {
		return fmt.Errorf("sendgrid: status %d: %s", resp.StatusCode(), resp.String())
	}

	return nil
}

func (c *SendgridClient) SendWelcome(ctx context.Context, to, name string) error {
	html := fmt.Sprintf(`<h1>Welcome to Drop Fit, %s!</h1>
<p>You're now part of the Drop Fit community. We create limited-edition anime
and series streetwear; each drop is exclusive, and once it's gone, it's gone.</p>
<p><a href="%s/shop">Start Shopping</a></p>`, name, c.baseURL)

	return c.send(ctx, []string{to}, "Welcome to Drop Fit", html)
}

func (c *SendgridClient) SendOrderConfirmation(ctx context.Context, to string, order *entity.Order) error {
	var rows strings.Builder
	for _, item := range order.Items {
		fmt.Fprintf(&rows, "<tr><td>%s</td><td>%s</td><td>%d</td><td>%d</td></tr>",
			item.Title, item.Size, item.Quantity, item.Price*int64(item.Quantity))
	}

	html := fmt.Sprintf(`<h1>Order Confirmed</h1>
<p>Hey %s, your Drop Fit order has been confirmed and is being processed.</p>
<p>Order ID: %s</p>
<table><thead><tr><th>Product</th><th>Size</th><th>Qty</th><th>Price</th></tr></thead>
<tbody>%s</tbody></table>
<p>Delivery charge: %d</p>
<p><strong>Total: %d</strong></p>
<p>Payment method: Cash on Delivery. You pay when the order arrives.</p>
<p>Delivery address: %s, %s</p>
<p><a href="%s/track-order/%s">Track Your Order</a></p>`,
		order.Shipping.Name, order.ID, rows.String(),
		order.DeliveryCharge, order.TotalAmount,
		order.Shipping.Address, order.Shipping.City,
		c.baseURL, order.ID)

	return c.send(ctx, []string{to}, "Your Drop Fit Order is Confirmed", html)
}

func (c *SendgridClient) SendDropAnnouncement(ctx context.Context, recipients []string, drop *entity.Drop) error {
	if len(recipients) == 0 {
		return nil
	}

	html := fmt.Sprintf(`<h1>%s</h1>
<p>%s</p>
<p>Limited stock. Once it's gone, it's gone forever.</p>
<p><a href="%s/shop">Shop The Drop Now</a></p>`,
		drop.Name, drop.Description, c.baseURL)

	return c.send(ctx, recipients, "New Drop is LIVE - Don't Miss Out", html)
}
