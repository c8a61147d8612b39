package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/capnote/capnote/internal/client/models"
	"github.com/capnote/capnote/internal/client/services"
	"github.com/capnote/capnote/internal/client/store"
	"github.com/capnote/capnote/internal/sharex"
)

const dueDateLayout = "02/01/2006"

// ShowPayments refreshes the payments collection and prints it, soonest
// due date first.
func (a *App) ShowPayments(ctx context.Context) error {
	payments, err := a.payments.List(ctx)
	if err != nil {
		printlnFn("Could not load payments:", err)
		return err
	}
	a.store.Dispatch(store.SetPayments{Payments: payments})
	if len(payments) == 0 {
		printlnFn("No payments.")
		return nil
	}
	for _, p := range payments {
		printlnFn(paymentLine(p))
	}
	return nil
}

// AddPayment interactively collects a payment and stores it. With calendar
// sync enabled the due date also lands on the calendar.
func (a *App) AddPayment(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Başlık", os.Stdout)
	if err != nil {
		return err
	}
	rawAmount, err := getSimpleText(a.reader, "Tutar", os.Stdout)
	if err != nil {
		return err
	}
	amount, err := strconv.ParseFloat(rawAmount, 64)
	if err != nil {
		printlnFn("Tutar anlaşılamadı:", rawAmount)
		return err
	}
	rawDue, err := getSimpleText(a.reader, "Son ödeme tarihi ("+dueDateLayout+")", os.Stdout)
	if err != nil {
		return err
	}
	due, err := time.ParseInLocation(dueDateLayout, rawDue, time.Local)
	if err != nil {
		printlnFn("Tarih anlaşılamadı:", rawDue)
		return err
	}
	recurrence, err := getSimpleText(a.reader, "Tekrar (once/monthly/yearly, boş = once)", os.Stdout)
	if err != nil {
		return err
	}
	if recurrence == "" {
		recurrence = string(models.RecurrenceOnce)
	}
	notes, err := getSimpleText(a.reader, "Not (boş geçilebilir)", os.Stdout)
	if err != nil {
		return err
	}

	payment, err := a.payments.Create(ctx, services.PaymentInput{
		Title:      title,
		Amount:     amount,
		DueDate:    due,
		Recurrence: models.Recurrence(recurrence),
		Notes:      notes,
	})
	if err != nil {
		printlnFn("Could not create payment:", err)
		return err
	}

	a.store.Dispatch(store.AddPayment{Payment: *payment})

	if a.store.State().Settings.CalendarSync {
		if _, err := a.calendar.AddPaymentEvent(ctx, payment.ID, payment.DueDate); err != nil {
			a.logger.Warn(ctx, "could not add calendar event", "payment_id", payment.ID, "error", err)
		}
	}

	printlnFn("Ödeme eklendi:", payment.ID)
	return nil
}

// MarkPaid flips a payment's paid flag.
func (a *App) MarkPaid(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Ödeme ID", os.Stdout)
	if err != nil {
		return err
	}
	payment, ok := a.findPayment(id)
	if !ok {
		printlnFn("Ödeme bulunamadı:", id)
		return nil
	}
	updated, err := a.payments.MarkPaid(ctx, payment, !payment.IsPaid)
	if err != nil {
		printlnFn("Could not update payment:", err)
		return err
	}
	a.store.Dispatch(store.UpdatePayment{Payment: *updated})
	return nil
}

// ShowUpcoming lists unpaid payments due within the configured window.
func (a *App) ShowUpcoming(ctx context.Context) error {
	payments, err := a.payments.Upcoming(ctx, a.config.UpcomingWindowDays)
	if err != nil {
		printlnFn("Could not load upcoming payments:", err)
		return err
	}
	if len(payments) == 0 {
		printlnFn(fmt.Sprintf("Nothing due in the next %d days.", a.config.UpcomingWindowDays))
		return nil
	}
	for _, p := range payments {
		printlnFn(paymentLine(p))
	}
	return nil
}

// AttachReceipt uploads a local file as the payment's receipt.
func (a *App) AttachReceipt(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Ödeme ID", os.Stdout)
	if err != nil {
		return err
	}
	payment, ok := a.findPayment(id)
	if !ok {
		printlnFn("Ödeme bulunamadı:", id)
		return nil
	}
	path, err := getSimpleText(a.reader, "Dosya yolu", os.Stdout)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		printlnFn("Could not open file:", err)
		return err
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return err
	}

	receipt, err := a.receipts.Upload(ctx, payment.ID, filepath.Base(path), f, info.Size())
	if err != nil {
		printlnFn("Could not upload receipt:", err)
		return err
	}
	updated, err := a.payments.AttachReceipt(ctx, payment, receipt)
	if err != nil {
		printlnFn("Could not attach receipt:", err)
		return err
	}
	a.store.Dispatch(store.UpdatePayment{Payment: *updated})
	printlnFn("Makbuz yüklendi:", receipt.URL)
	return nil
}

// SharePayment prints a WhatsApp share link for a payment.
func (a *App) SharePayment(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Ödeme ID", os.Stdout)
	if err != nil {
		return err
	}
	payment, ok := a.findPayment(id)
	if !ok {
		printlnFn("Ödeme bulunamadı:", id)
		return nil
	}
	printlnFn(sharex.PaymentURL(payment, a.store.State().Settings.DefaultPhone))
	return nil
}

func (a *App) findPayment(id string) (models.Payment, bool) {
	for _, p := range a.store.State().Payments {
		if p.ID == id {
			return p, true
		}
	}
	return models.Payment{}, false
}
