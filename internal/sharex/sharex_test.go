package sharex

import (
	"net/url"
	"testing"
	"time"

	"github.com/capnote/capnote/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decode extracts and percent-decodes the message body and phone parameter.
func decode(t *testing.T, raw string) (text, phone string) {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	q := u.Query()
	return q.Get("text"), q.Get("phone")
}

func TestURL(t *testing.T) {
	t.Run("payment-shaped data without phone", func(t *testing.T) {
		raw := URL(Data{Title: "Rent", Amount: 1500, Date: "01/05/2024"}, "")

		text, phone := decode(t, raw)
		assert.Empty(t, phone)
		assert.Equal(t,
			"📌 Rent\n"+
				"🕒 Tarih: 01/05/2024\n"+
				"💰 Tutar: ₺1.500,00\n"+
				"\n"+
				"CapNote ile gönderildi 📱",
			text)
	})

	t.Run("title only", func(t *testing.T) {
		text, _ := decode(t, URL(Data{Title: "Merhaba"}, ""))
		assert.Equal(t, "📌 Merhaba\n\nCapNote ile gönderildi 📱", text)
	})

	t.Run("description line comes after amount", func(t *testing.T) {
		text, _ := decode(t, URL(Data{Title: "Fatura", Amount: 10, Description: "mart"}, ""))
		assert.Equal(t,
			"📌 Fatura\n💰 Tutar: ₺10,00\n🗒️ Açıklama: mart\n\nCapNote ile gönderildi 📱",
			text)
	})

	t.Run("phone becomes second parameter", func(t *testing.T) {
		raw := URL(Data{Title: "x"}, "905551112233")
		_, phone := decode(t, raw)
		assert.Equal(t, "905551112233", phone)
		assert.Contains(t, raw, "?text=")
		assert.Contains(t, raw, "&phone=")
	})
}

func TestNoteURL(t *testing.T) {
	reminder := time.Date(2024, time.May, 1, 14, 30, 0, 0, time.UTC)
	n := models.Note{Title: "Toplantı", Description: "notlar", ReminderTime: &reminder}

	text, _ := decode(t, NoteURL(n, ""))
	assert.Equal(t,
		"📌 Toplantı\n🕒 Tarih: 01/05/2024 14:30\n🗒️ Açıklama: notlar\n\nCapNote ile gönderildi 📱",
		text)

	t.Run("no reminder, no date line", func(t *testing.T) {
		text, _ := decode(t, NoteURL(models.Note{Title: "t", Description: "d"}, ""))
		assert.Equal(t, "📌 t\n🗒️ Açıklama: d\n\nCapNote ile gönderildi 📱", text)
	})
}

func TestPaymentURL(t *testing.T) {
	p := models.Payment{
		Title:   "Kira",
		Amount:  9500,
		DueDate: time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC),
		Notes:   "haziran",
	}
	text, _ := decode(t, PaymentURL(p, ""))
	assert.Equal(t,
		"📌 Kira\n🕒 Tarih: 05/06/2024\n💰 Tutar: ₺9.500,00\n🗒️ Açıklama: haziran\n\nCapNote ile gönderildi 📱",
		text)
}
