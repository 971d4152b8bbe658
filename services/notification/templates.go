package notification

import (
	"bytes"
	"fmt"
	"html/template"
)

// bookingEmailData feeds the booking email templates.
type bookingEmailData struct {
	Name        string
	Counterpart string
	Service     string
	Date        string
	Time        string
	Status      string
}

// reviewEmailData feeds the review notification template.
type reviewEmailData struct {
	ProviderName string
	CustomerName string
	Rating       int
	Comment      string
}

var customerBookingTmpl = template.Must(template.New("customerBooking").Parse(`
<div style="font-family: sans-serif; max-width: 600px; margin: 0 auto; padding: 24px;">
  <h1 style="color: #4f46e5;">ServeHub</h1>
  <h2>Booking Confirmation</h2>
  <p>Hello {{.Name}},</p>
  <p>Your booking has been successfully created with <strong>{{.Counterpart}}</strong>.</p>
  <ul>
    <li><strong>Service:</strong> {{.Service}}</li>
    <li><strong>Date:</strong> {{.Date}}</li>
    <li><strong>Time:</strong> {{.Time}}</li>
  </ul>
  <p>We'll notify you once the provider confirms your booking.</p>
  <p style="color: #6b7280;">Thank you for using ServeHub!</p>
</div>`))

var providerBookingTmpl = template.Must(template.New("providerBooking").Parse(`
<div style="font-family: sans-serif; max-width: 600px; margin: 0 auto; padding: 24px;">
  <h1 style="color: #4f46e5;">ServeHub</h1>
  <h2>New Booking Request</h2>
  <p>Hello {{.Name}},</p>
  <p><strong>{{.Counterpart}}</strong> has requested a booking with you.</p>
  <ul>
    <li><strong>Service:</strong> {{.Service}}</li>
    <li><strong>Date:</strong> {{.Date}}</li>
    <li><strong>Time:</strong> {{.Time}}</li>
  </ul>
  <p>Please confirm or decline the request from your dashboard.</p>
</div>`))

var statusUpdateTmpl = template.Must(template.New("statusUpdate").Parse(`
<div style="font-family: sans-serif; max-width: 600px; margin: 0 auto; padding: 24px;">
  <h1 style="color: #4f46e5;">ServeHub</h1>
  <h2>Booking Update</h2>
  <p>Hello {{.Name}},</p>
  <p>Your booking with <strong>{{.Counterpart}}</strong> on {{.Date}} at {{.Time}}
  has been marked <strong>{{.Status}}</strong>.</p>
</div>`))

var reviewReceivedTmpl = template.Must(template.New("reviewReceived").Parse(`
<div style="font-family: sans-serif; max-width: 600px; margin: 0 auto; padding: 24px;">
  <h1 style="color: #4f46e5;">ServeHub</h1>
  <h2>New Review Received</h2>
  <p>Hello {{.ProviderName}},</p>
  <p><strong>{{.CustomerName}}</strong> rated you {{.Rating}}/5.</p>
  {{if .Comment}}<blockquote>{{.Comment}}</blockquote>{{end}}
</div>`))

func render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s template: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}
