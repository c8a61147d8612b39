package services

import (
	"context"
	"fmt"
	"time"

	"github.com/capnote/capnote/internal/client/models"
	"github.com/capnote/capnote/internal/client/remote"
	"github.com/capnote/capnote/internal/logging"
)

// PaymentInput is what the user supplies when creating or editing a payment.
type PaymentInput struct {
	Title        string  `validate:"required,max=200"`
	Amount       float64 `validate:"gte=0"`
	DueDate      time.Time
	Recurrence   models.Recurrence `validate:"oneof=once monthly yearly"`
	ReminderTime *time.Time
	Notes        string
}

type PaymentsService struct {
	client remote.Client
	logger logging.Logger
	now    func() time.Time
}

func NewPaymentsService(client remote.Client, logger logging.Logger) *PaymentsService {
	return &PaymentsService{client: client, logger: logger, now: time.Now}
}

func (s *PaymentsService) List(ctx context.Context) ([]models.Payment, error) {
	return s.client.ListPayments(ctx)
}

// Upcoming returns unpaid payments due within the next days days. Both ends
// of the window count: a payment due right now and one due exactly at the
// window edge are both included.
func (s *PaymentsService) Upcoming(ctx context.Context, days int) ([]models.Payment, error) {
	if days < 0 {
		return nil, fmt.Errorf("invalid window: %d days", days)
	}
	from := s.now()
	to := from.Add(time.Duration(days) * 24 * time.Hour)
	return s.client.ListPaymentsDueBetween(ctx, from, to)
}

func (s *PaymentsService) Create(ctx context.Context, in PaymentInput) (*models.Payment, error) {
	if err := validate.Struct(in); err != nil {
		return nil, fmt.Errorf("invalid payment: %w", err)
	}
	payment := models.Payment{
		Title:        in.Title,
		Amount:       in.Amount,
		DueDate:      in.DueDate,
		IsPaid:       false,
		Recurrence:   in.Recurrence,
		ReminderTime: in.ReminderTime,
		Notes:        in.Notes,
	}
	return s.client.CreatePayment(ctx, payment)
}

func (s *PaymentsService) Update(ctx context.Context, payment models.Payment) (*models.Payment, error) {
	if payment.ID == "" {
		return nil, fmt.Errorf("invalid payment: missing id")
	}
	return s.client.UpdatePayment(ctx, payment)
}

// MarkPaid flips the paid flag. For monthly and yearly payments the views
// recreate the next occurrence; that stays the caller's choice.
func (s *PaymentsService) MarkPaid(ctx context.Context, payment models.Payment, paid bool) (*models.Payment, error) {
	payment.IsPaid = paid
	return s.Update(ctx, payment)
}

func (s *PaymentsService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("invalid payment: missing id")
	}
	return s.client.DeletePayment(ctx, id)
}

// AttachReceipt records an uploaded receipt on the payment.
func (s *PaymentsService) AttachReceipt(ctx context.Context, payment models.Payment, receipt models.Receipt) (*models.Payment, error) {
	payment.ReceiptPath = receipt.Path
	payment.ReceiptURL = receipt.URL
	return s.Update(ctx, payment)
}
