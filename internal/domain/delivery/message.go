package delivery

import (
	"fmt"
	"html"
	"strings"
)

// Job kinds stored in notification_jobs.
const (
	KindCodeDelivery  = "code_delivery"
	KindOperatorAlert = "operator_alert"
)

// Message is a rendered email. It is stored as the job payload so a retry
// sends exactly what was composed at claim time.
type Message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
	HTML    string `json:"html"`
}

func (m Message) Validate() error {
	if strings.TrimSpace(m.To) == "" {
		return ErrMissingRecipient
	}
	if m.Subject == "" || m.Text == "" {
		return ErrEmptyMessage
	}
	return nil
}

func CodeMessage(to, code, productName string) Message {
	subject := fmt.Sprintf("Your WASSCE checker: %s", code)

	var text strings.Builder
	text.WriteString("Thank you for your purchase!\n\n")
	if productName != "" {
		fmt.Fprintf(&text, "Product: %s\n\n", productName)
	}
	fmt.Fprintf(&text, "Here is your checker code:\n\n%s\n\n", code)
	text.WriteString("Instructions:\nUse it on the results portal to check your results.\n\n")
	text.WriteString("If you have an issue reply to this email.")

	var body strings.Builder
	body.WriteString("<p>Thank you for your purchase!</p>")
	if productName != "" {
		fmt.Fprintf(&body, "<p>Product: %s</p>", html.EscapeString(productName))
	}
	fmt.Fprintf(&body, "<p>Here is your checker code:</p><pre>%s</pre>", html.EscapeString(code))
	body.WriteString("<p><strong>Instructions:</strong><br>Use it on the results portal to check your results.</p>")
	body.WriteString("<p>If you have an issue reply to this email.</p>")

	return Message{To: to, Subject: subject, Text: text.String(), HTML: body.String()}
}

func StockoutAlertMessage(to, sessionID, productName string) Message {
	subject := fmt.Sprintf("Stockout: paid order %s could not be fulfilled", sessionID)
	text := fmt.Sprintf(
		"A payment for %q completed but no unused code was available.\n\nSession: %s\n\nUpload more codes, then retry fulfillment for this order from the admin API.",
		productName, sessionID,
	)
	body := fmt.Sprintf(
		"<p>A payment for <strong>%s</strong> completed but no unused code was available.</p><p>Session: <code>%s</code></p><p>Upload more codes, then retry fulfillment for this order from the admin API.</p>",
		html.EscapeString(productName), html.EscapeString(sessionID),
	)
	return Message{To: to, Subject: subject, Text: text, HTML: body}
}
