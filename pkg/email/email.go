package email

import (
	"bytes"
	"context"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
)

// Config holds the fixed addresses used for every contact notification
type Config struct {
	Recipient string // Inbox that receives submissions
	Sender    string // Verified sender identity
}

// ContactEmailData holds the data for contact form emails
type ContactEmailData struct {
	Name        string
	Email       string
	ProjectType string
	Message     string
}

// Notification is a fully rendered email, built right before dispatch
type Notification struct {
	Subject   string
	HTMLBody  string
	TextBody  string
	Recipient string
	Sender    string
	ReplyTo   string
}

// Sender is the boundary to the transactional email provider.
type Sender interface {
	Send(ctx context.Context, n Notification) error
}

// Notifier formats contact submissions and dispatches them through a Sender
type Notifier struct {
	sender Sender
	cfg    Config
}

// NewNotifier creates a notifier bound to a provider and fixed addresses
func NewNotifier(sender Sender, cfg Config) (*Notifier, error) {
	if sender == nil || strings.TrimSpace(cfg.Recipient) == "" || strings.TrimSpace(cfg.Sender) == "" {
		return nil, ErrNotConfigured
	}
	return &Notifier{sender: sender, cfg: cfg}, nil
}

// Recipient returns the configured destination address
func (n *Notifier) Recipient() string {
	return n.cfg.Recipient
}

// contactEmailTemplate is the HTML template for contact form emails.
// html/template escapes & < > " ' in every interpolated value.
var contactEmailTemplate = htmltemplate.Must(htmltemplate.New("contact").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Contact Form Submission</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #111827; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #555; }
        .value { margin-top: 5px; }
        .message-box { background: white; padding: 15px; border-left: 4px solid #111827; margin-top: 10px; white-space: pre-wrap; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New Contact Form Submission</h1>
        </div>
        <div class="content">
            <div class="field">
                <div class="label">Name:</div>
                <div class="value">{{.Name}}</div>
            </div>
            <div class="field">
                <div class="label">Email:</div>
                <div class="value">{{.Email}}</div>
            </div>
            {{- if .ProjectType}}
            <div class="field">
                <div class="label">Project Type:</div>
                <div class="value">{{.ProjectType}}</div>
            </div>
            {{- end}}
            <div class="field">
                <div class="label">Message:</div>
                <div class="message-box">{{.Message}}</div>
            </div>
        </div>
        <div class="footer">
            <p>This email was sent from the portfolio contact form.</p>
        </div>
    </div>
</body>
</html>`))

var contactTextTemplate = texttemplate.Must(texttemplate.New("contact").Parse(`New Contact Form Submission

Name: {{.Name}}
Email: {{.Email}}
{{- if .ProjectType}}
Project Type: {{.ProjectType}}
{{- end}}

Message:
{{.Message}}

--
This email was sent from the portfolio contact form.
`))

// BuildNotification renders both the HTML and plain-text bodies for a submission.
// The subject uses the raw name; only the HTML body is escaped.
func BuildNotification(data ContactEmailData, cfg Config) (Notification, error) {
	var html bytes.Buffer
	if err := contactEmailTemplate.Execute(&html, data); err != nil {
		return Notification{}, fmt.Errorf("failed to execute html template: %w", err)
	}

	var text bytes.Buffer
	if err := contactTextTemplate.Execute(&text, data); err != nil {
		return Notification{}, fmt.Errorf("failed to execute text template: %w", err)
	}

	return Notification{
		Subject:   fmt.Sprintf("New Contact Form Submission from %s", data.Name),
		HTMLBody:  html.String(),
		TextBody:  text.String(),
		Recipient: cfg.Recipient,
		Sender:    cfg.Sender,
		ReplyTo:   data.Email,
	}, nil
}

// Notify sends exactly one notification for the submission. It does not retry.
// Any failure is returned as *DeliveryError.
func (n *Notifier) Notify(ctx context.Context, data ContactEmailData) error {
	notification, err := BuildNotification(data, n.cfg)
	if err != nil {
		return &DeliveryError{Code: "RenderFailed", Err: err}
	}

	if err := n.sender.Send(ctx, notification); err != nil {
		return newDeliveryError(err)
	}

	return nil
}
