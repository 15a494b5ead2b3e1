package notifier

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"birthday-rsvp/internal/models"
)

const receivedAtLayout = "January 02, 2006 at 03:04 PM"

var templateFuncs = template.FuncMap{
	"ordinal": ordinal,
}

var hostTemplate = template.Must(template.New("host").Funcs(templateFuncs).Parse(`<html>
<head>
<style>
  body { font-family: Arial, sans-serif; background-color: #f8f9fa; padding: 20px; }
  .container { max-width: 600px; margin: 0 auto; background: #ffffff; border-radius: 15px; padding: 30px; }
  .header { text-align: center; color: #ff6b9d; margin-bottom: 30px; }
  .info-box { background: #fff5f8; border-radius: 10px; padding: 20px; margin: 20px 0; }
  .info-row { padding: 8px 0; border-bottom: 1px solid #ffe0ec; }
  .label { font-weight: bold; color: #555555; }
  .value { color: #333333; }
  .status { padding: 4px 12px; border-radius: 12px; font-weight: bold; }
  .status-yes { background: #d4edda; color: #155724; }
  .status-no { background: #f8d7da; color: #721c24; }
  .status-maybe { background: #fff3cd; color: #856404; }
  .message-box { background: #e8f4fd; border-left: 4px solid #4a90d9; padding: 15px; margin: 20px 0; font-style: italic; }
  .footer { text-align: center; color: #999999; font-size: 12px; margin-top: 30px; }
</style>
</head>
<body>
<div class="container">
  <div class="header">
    <h1>🎉 New RSVP Received!</h1>
    <p>Someone just responded to {{.Party.ChildName}}'s party invitation</p>
  </div>
  <div class="info-box">
    <div class="info-row"><span class="label">👶 Child's Name:</span> <span class="value">{{.RSVP.ChildName}}</span></div>
    <div class="info-row"><span class="label">👨‍👩‍👧 Parent's Name:</span> <span class="value">{{.RSVP.ParentName}}</span></div>
    <div class="info-row"><span class="label">📧 Email:</span> <span class="value">{{.RSVP.Email}}</span></div>
    <div class="info-row"><span class="label">📱 Phone:</span> <span class="value">{{.RSVP.Phone}}</span></div>
    <div class="info-row"><span class="label">Status:</span> <span class="status {{.Status.CSSClass}}">{{.Status.Icon}} {{.Status.Label}}</span></div>
    <div class="info-row"><span class="label">👶 Number of Kids:</span> <span class="value">{{.RSVP.Kids}}</span></div>
    <div class="info-row"><span class="label">👨‍👩‍👧 Number of Adults:</span> <span class="value">{{.RSVP.Adults}}</span></div>
    {{- if .HasAllergies}}
    <div class="info-row allergies"><span class="label">🚫 Food Allergies:</span> <span class="value">{{.RSVP.FoodAllergies}}</span></div>
    {{- end}}
  </div>
  {{- if .HasMessage}}
  <div class="message-box">
    <strong>💌 Birthday Message:</strong><br>
    "{{.RSVP.BirthdayMessage}}"
  </div>
  {{- end}}
  <div class="footer">
    <p>RSVP received on {{.ReceivedAt}}</p>
    <p>View all RSVPs in your admin dashboard</p>
  </div>
</div>
</body>
</html>
`))

var guestTemplate = template.Must(template.New("guest").Funcs(templateFuncs).Parse(`<html>
<head>
<style>
  body { font-family: Arial, sans-serif; background-color: #f8f9fa; padding: 20px; }
  .container { max-width: 600px; margin: 0 auto; background: #ffffff; border-radius: 15px; padding: 30px; }
  .header { text-align: center; color: #ff6b9d; margin-bottom: 30px; }
  .party-details { background: #fff5f8; border-radius: 10px; padding: 20px; margin: 20px 0; }
  .detail-row { padding: 8px 0; }
  .emoji { font-size: 20px; margin-right: 10px; }
  .footer { text-align: center; color: #999999; margin-top: 30px; }
</style>
</head>
<body>
<div class="container">
  <div class="header">
    <h1>🎉 Thank You for Your RSVP! 🎉</h1>
    <p>Hi {{.RSVP.ParentName}}!</p>
  </div>
  {{- if .Status.Attending}}
  <p>We're thrilled that you can join us for {{.Party.ChildName}}'s {{ordinal .Party.Age}} birthday party!</p>
  <div class="party-details">
    <h3 style="color: #ff6b9d; margin-bottom: 15px;">Party Details:</h3>
    <div class="detail-row"><span class="emoji">📅</span> <strong>Date:</strong> {{.Party.PartyDate}}</div>
    <div class="detail-row"><span class="emoji">🕐</span> <strong>Time:</strong> {{.Party.PartyTimeStart}} - {{.Party.PartyTimeEnd}}</div>
    <div class="detail-row"><span class="emoji">📍</span> <strong>Location:</strong> {{.Party.VenueName}}<br>
      <span style="margin-left: 30px;">{{.Party.VenueAddress}}</span></div>
  </div>
  {{- else}}
  <p>We're sorry you cannot make it for {{.Party.ChildName}}'s {{ordinal .Party.Age}} birthday party!</p>
  {{- end}}
  <div class="footer">
    <p>If you need to update your RSVP, please contact us.</p>
    <p style="margin-top: 15px;">See you at the party! 🎈</p>
  </div>
</div>
</body>
</html>
`))

type emailView struct {
	RSVP         models.RSVP
	Party        models.Party
	Status       models.AttendanceStatus
	HasAllergies bool
	HasMessage   bool
	ReceivedAt   string
}

func newEmailView(rsvp models.RSVP, party models.Party, now time.Time) emailView {
	return emailView{
		RSVP:         rsvp,
		Party:        party,
		Status:       rsvp.AttendanceStatus,
		HasAllergies: strings.TrimSpace(rsvp.FoodAllergies) != "",
		HasMessage:   strings.TrimSpace(rsvp.BirthdayMessage) != "",
		ReceivedAt:   now.Format(receivedAtLayout),
	}
}

func renderHost(rsvp models.RSVP, party models.Party, now time.Time) (string, error) {
	return render(hostTemplate, newEmailView(rsvp, party, now))
}

func renderGuest(rsvp models.RSVP, party models.Party, now time.Time) (string, error) {
	return render(guestTemplate, newEmailView(rsvp, party, now))
}

func render(tmpl *template.Template, view emailView) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrRenderFailed, tmpl.Name(), err)
	}
	return buf.String(), nil
}

func hostSubject(party models.Party) string {
	return fmt.Sprintf("🎉 New RSVP for %s's Birthday Party!", party.ChildName)
}

func guestSubject(party models.Party) string {
	return fmt.Sprintf("🎉 RSVP Confirmation - %s's Birthday Party", party.ChildName)
}

// ordinal formats n with its English suffix: 1st, 2nd, 3rd, 4th, 11th, 21st.
func ordinal(n int) string {
	suffix := "th"
	switch abs := max(n, -n); {
	case abs%100 >= 11 && abs%100 <= 13:
	case abs%10 == 1:
		suffix = "st"
	case abs%10 == 2:
		suffix = "nd"
	case abs%10 == 3:
		suffix = "rd"
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
