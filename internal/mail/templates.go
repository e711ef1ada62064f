package mail

import (
	"html/template"
	"strings"
	"time"
)

// autoReplyData fills the confirmation sent back to the submitter.
type autoReplyData struct {
	Name    string
	Subject string
	Owner   string
	Year    int
}

// notificationData fills the internal alert sent to the site owner.
type notificationData struct {
	Name       string
	Email      string
	Subject    string
	Message    string
	IPAddress  string
	UserAgent  string
	ReceivedAt string
	Owner      string
	Year       int
}

// istZone localizes the notification timestamp to the owner's timezone.
// Falls back to UTC when tzdata is unavailable in the runtime image.
var istZone = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		return time.UTC
	}
	return loc
}()

var autoReplyTmpl = template.Must(template.New("auto-reply").Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8" /><meta name="viewport" content="width=device-width, initial-scale=1.0" /></head>
<body style="margin:0;padding:0;background-color:#0a0a0f;font-family:'Segoe UI',Tahoma,Geneva,Verdana,sans-serif;">
  <table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="background-color:#0a0a0f;padding:40px 20px;">
    <tr><td align="center">
      <table role="presentation" width="600" cellpadding="0" cellspacing="0" style="max-width:600px;width:100%;">
        <tr><td style="background:linear-gradient(135deg,#00ff88 0%,#00d4ff 50%,#bf00ff 100%);padding:3px;border-radius:16px 16px 0 0;">
          <table role="presentation" width="100%" cellpadding="0" cellspacing="0"><tr>
            <td style="background-color:#12121a;padding:40px 40px 30px;border-radius:14px 14px 0 0;text-align:center;">
              <h1 style="margin:0;font-size:24px;font-weight:700;color:#00ff88;letter-spacing:1px;">&lt;{{.Owner}} /&gt;</h1>
              <p style="margin:5px 0 0;font-size:12px;color:#666;letter-spacing:3px;text-transform:uppercase;">Full Stack Developer</p>
            </td>
          </tr></table>
        </td></tr>
        <tr><td style="padding:0 3px;">
          <table role="presentation" width="100%" cellpadding="0" cellspacing="0"><tr>
            <td style="background-color:#12121a;padding:35px 40px;">
              <p style="margin:0 0 25px;font-size:18px;color:#e0e0e0;">Dear <span style="color:#00ff88;font-weight:600;">{{.Name}}</span>,</p>
              <p style="margin:0 0 20px;font-size:15px;color:#b0b0b0;line-height:1.8;">Thank you for reaching out through my portfolio website.</p>
              <table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="margin:25px 0;"><tr>
                <td style="background-color:#15201a;border:1px solid #00ff8830;border-radius:12px;padding:25px;">
                  <p style="margin:0 0 5px;font-size:14px;font-weight:600;color:#00ff88;text-transform:uppercase;letter-spacing:1px;">Message Received</p>
                  <p style="margin:0;font-size:14px;color:#b0b0b0;line-height:1.6;">I have successfully received your message regarding <span style="color:#00d4ff;font-weight:500;">&quot;{{.Subject}}&quot;</span>. I truly appreciate your interest in connecting with me.</p>
                </td>
              </tr></table>
              <p style="margin:0 0 20px;font-size:15px;color:#b0b0b0;line-height:1.8;">I will review your message and get back to you as soon as possible. If your request is urgent, please feel free to reply to this email directly.</p>
              <p style="margin:0 0 5px;font-size:15px;color:#b0b0b0;">Best Regards,</p>
              <p style="margin:0;font-size:20px;font-weight:700;color:#00ff88;">{{.Owner}}</p>
            </td>
          </tr></table>
        </td></tr>
        <tr><td style="background:linear-gradient(135deg,#00ff88 0%,#00d4ff 50%,#bf00ff 100%);padding:0 3px 3px;">
          <table role="presentation" width="100%" cellpadding="0" cellspacing="0"><tr>
            <td style="background-color:#0d0d14;padding:25px 40px;border-radius:0 0 14px 14px;text-align:center;">
              <p style="margin:0;font-size:14px;color:#00ff88;font-weight:600;">&lt;{{.Owner}} /&gt; Portfolio</p>
              <p style="margin:8px 0 0;font-size:11px;color:#444;">&copy; {{.Year}} {{.Owner}}. All rights reserved.</p>
            </td>
          </tr></table>
        </td></tr>
      </table>
    </td></tr>
  </table>
</body></html>`))

var notificationTmpl = template.Must(template.New("notification").Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8" /><meta name="viewport" content="width=device-width, initial-scale=1.0" /></head>
<body style="margin:0;padding:0;background-color:#0a0a0f;font-family:'Segoe UI',Tahoma,Geneva,Verdana,sans-serif;">
  <table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="background-color:#0a0a0f;padding:40px 20px;">
    <tr><td align="center">
      <table role="presentation" width="600" cellpadding="0" cellspacing="0" style="max-width:600px;width:100%;">
        <tr><td style="background:linear-gradient(135deg,#ff6b6b 0%,#ffa500 50%,#ff00ff 100%);padding:3px;border-radius:16px 16px 0 0;">
          <table role="presentation" width="100%" cellpadding="0" cellspacing="0"><tr>
            <td style="background-color:#12121a;padding:35px 40px 25px;border-radius:14px 14px 0 0;text-align:center;">
              <h1 style="margin:0;font-size:22px;font-weight:700;color:#ffa500;">New Contact Request</h1>
              <p style="margin:8px 0 0;font-size:12px;color:#666;letter-spacing:2px;text-transform:uppercase;">Portfolio Contact System</p>
            </td>
          </tr></table>
        </td></tr>
        <tr><td style="padding:0 3px;">
          <table role="presentation" width="100%" cellpadding="0" cellspacing="0"><tr>
            <td style="background-color:#12121a;padding:35px 40px;">
              <p style="margin:0 0 25px;font-size:16px;color:#e0e0e0;">Hello <span style="color:#00ff88;font-weight:600;">{{.Owner}}</span>,</p>
              <p style="margin:0 0 25px;font-size:15px;color:#b0b0b0;line-height:1.7;">You have received a new contact request from your portfolio website.</p>
              <table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="margin:0 0 25px;"><tr>
                <td style="background-color:#201a15;border-left:4px solid #ffa500;border-radius:0 8px 8px 0;padding:15px 20px;">
                  <p style="margin:0;font-size:13px;color:#ffa500;font-weight:600;">Received on {{.ReceivedAt}}</p>
                </td>
              </tr></table>
              <table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="margin:0 0 20px;"><tr>
                <td style="background-color:#1a1a2e;border:1px solid #2a2a3e;border-radius:10px;padding:20px;">
                  <p style="margin:0 0 8px;font-size:12px;color:#666;text-transform:uppercase;letter-spacing:1px;">From</p>
                  <p style="margin:0 0 15px;font-size:15px;color:#e0e0e0;font-weight:500;">{{.Name}} &lt;{{.Email}}&gt;</p>
                  <p style="margin:0 0 8px;font-size:12px;color:#666;text-transform:uppercase;letter-spacing:1px;">Subject</p>
                  <p style="margin:0 0 15px;font-size:15px;color:#ffa500;font-weight:500;">{{.Subject}}</p>
                  <p style="margin:0 0 8px;font-size:12px;color:#666;text-transform:uppercase;letter-spacing:1px;">Message</p>
                  <p style="margin:0;font-size:14px;color:#b0b0b0;line-height:1.7;white-space:pre-wrap;">{{.Message}}</p>
                </td>
              </tr></table>
              <table role="presentation" width="100%" cellpadding="0" cellspacing="0"><tr>
                <td style="background-color:#1a1a2e;border:1px solid #2a2a3e;border-radius:8px;padding:15px;">
                  <p style="margin:0 0 5px;font-size:11px;color:#555;">IP: {{.IPAddress}}</p>
                  <p style="margin:0;font-size:11px;color:#555;">UA: {{.UserAgent}}</p>
                </td>
              </tr></table>
            </td>
          </tr></table>
        </td></tr>
        <tr><td style="background:linear-gradient(135deg,#ff6b6b 0%,#ffa500 50%,#ff00ff 100%);padding:0 3px 3px;">
          <table role="presentation" width="100%" cellpadding="0" cellspacing="0"><tr>
            <td style="background-color:#0d0d14;padding:20px 40px;border-radius:0 0 14px 14px;text-align:center;">
              <p style="margin:0;font-size:11px;color:#444;">&copy; {{.Year}} {{.Owner}} Portfolio Contact System</p>
            </td>
          </tr></table>
        </td></tr>
      </table>
    </td></tr>
  </table>
</body></html>`))

func renderAutoReply(d autoReplyData) (string, error) {
	var b strings.Builder
	if err := autoReplyTmpl.Execute(&b, d); err != nil {
		return "", err
	}
	return b.String(), nil
}

func renderNotification(d notificationData) (string, error) {
	var b strings.Builder
	if err := notificationTmpl.Execute(&b, d); err != nil {
		return "", err
	}
	return b.String(), nil
}

// formatReceivedAt renders the submission time the way the owner reads it:
// localized, spelled out, minute precision.
func formatReceivedAt(t time.Time) string {
	return t.In(istZone).Format("Monday, 2 January 2006 at 3:04 PM MST")
}
