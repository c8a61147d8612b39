// Package sharex builds the outbound WhatsApp share links.
//
// The message layout is a fixed external contract (it ends up in users' chat
// history): a title line, then optional date, amount and description lines,
// then a blank line and the app signature. Line order and the emoji/label
// prefixes must not change.
package sharex

import (
	"net/url"
	"strings"

	"github.com/capnote/capnote/internal/client/models"
	"github.com/capnote/capnote/internal/datex"
	"github.com/capnote/capnote/internal/moneyx"
)

const baseURL = "https://api.whatsapp.com/send"

// Data is the share payload. Zero-valued fields are omitted from the message.
type Data struct {
	Title       string
	Date        string
	Description string
	Amount      float64
}

// URL builds the WhatsApp deep link for data. The assembled message is
// percent-encoded into the text query parameter; a non-empty phone becomes a
// second parameter.
func URL(data Data, phone string) string {
	var b strings.Builder
	b.WriteString("📌 " + data.Title)
	if data.Date != "" {
		b.WriteString("\n🕒 Tarih: " + data.Date)
	}
	if data.Amount != 0 {
		b.WriteString("\n💰 Tutar: " + moneyx.Format(data.Amount))
	}
	if data.Description != "" {
		b.WriteString("\n🗒️ Açıklama: " + data.Description)
	}
	b.WriteString("\n\nCapNote ile gönderildi 📱")

	u := baseURL + "?text=" + url.QueryEscape(b.String())
	if phone != "" {
		u += "&phone=" + url.QueryEscape(phone)
	}
	return u
}

// NoteURL builds a share link for a note. The reminder time, when set,
// becomes the date line.
func NoteURL(n models.Note, phone string) string {
	d := Data{Title: n.Title, Description: n.Description}
	if n.ReminderTime != nil {
		d.Date = datex.FormatDateTime(*n.ReminderTime)
	}
	return URL(d, phone)
}

// PaymentURL builds a share link for a payment: due date, amount, and the
// free-text notes as the description.
func PaymentURL(p models.Payment, phone string) string {
	return URL(Data{
		Title:       p.Title,
		Date:        datex.FormatDate(p.DueDate),
		Amount:      p.Amount,
		Description: p.Notes,
	}, phone)
}
