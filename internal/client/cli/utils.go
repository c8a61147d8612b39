package cli

import (
	"fmt"
	"strings"

	"github.com/capnote/capnote/internal/client/models"
	"github.com/capnote/capnote/internal/datex"
	"github.com/capnote/capnote/internal/moneyx"
)

func noteLine(n models.Note) string {
	var b strings.Builder
	if n.IsPinned {
		b.WriteString("* ")
	} else {
		b.WriteString("  ")
	}
	fmt.Fprintf(&b, "[%s] %s  #%s  (%s)", n.ID, n.Title, n.Tag, datex.FormatRelative(n.CreatedAt))
	if n.ReminderTime != nil {
		fmt.Fprintf(&b, "  ⏰ %s", datex.FormatDateTime(*n.ReminderTime))
	}
	return b.String()
}

func paymentLine(p models.Payment) string {
	status := " "
	if p.IsPaid {
		status = "✓"
	}
	line := fmt.Sprintf("%s [%s] %s  %s  %s", status, p.ID, p.Title,
		moneyx.Format(p.Amount), datex.FormatDate(p.DueDate))
	if p.Recurrence != models.RecurrenceOnce {
		line += "  (" + string(p.Recurrence) + ")"
	}
	if p.ReceiptURL != "" {
		line += "  📎"
	}
	return line
}

func checklistLine(c models.Checklist) string {
	mark := "[ ]"
	if c.IsDone {
		mark = "[x]"
	}
	return fmt.Sprintf("%s [%s] %s", mark, c.ID, c.Title)
}

func eventLine(e models.CalendarEvent) string {
	linked := e.LinkedNoteID
	if e.EventType == models.EventTypePayment {
		linked = e.LinkedPaymentID
	}
	line := fmt.Sprintf("[%s] %s %s -> %s", e.ID, datex.FormatDateTime(e.EventDate), e.EventType, linked)
	if e.IsSyncedWithGoogle {
		line += "  (synced)"
	}
	return line
}
