package usecases

import (
	"context"

	"github.com/roblesfd/helpdesk-backend/internal/domain/comment"
	"github.com/roblesfd/helpdesk-backend/internal/domain/notification"
	"github.com/roblesfd/helpdesk-backend/internal/domain/ticket"
	"github.com/roblesfd/helpdesk-backend/internal/domain/user"
	"github.com/roblesfd/helpdesk-backend/internal/shared/logger"
)

type mockUserRepository struct {
	CreateFunc                  func(ctx context.Context, u *user.User) error
	GetByIDFunc                 func(ctx context.Context, id uint) (*user.User, error)
	GetByUsernameFunc           func(ctx context.Context, username string) (*user.User, error)
	FindByUsernameFoldFunc      func(ctx context.Context, username string) (*user.User, error)
	FindByEmailFunc             func(ctx context.Context, email string) (*user.User, error)
	FindByConfirmationTokenFunc func(ctx context.Context, token string) (*user.User, error)
	UpdateFunc                  func(ctx context.Context, u *user.User) error
	DeleteFunc                  func(ctx context.Context, id uint) error
	ListFunc                    func(ctx context.Context) ([]*user.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByUsernameFold(ctx context.Context, username string) (*user.User, error) {
	if m.FindByUsernameFoldFunc != nil {
		return m.FindByUsernameFoldFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByConfirmationToken(ctx context.Context, token string) (*user.User, error) {
	if m.FindByConfirmationTokenFunc != nil {
		return m.FindByConfirmationTokenFunc(ctx, token)
	}
	return nil, nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockUserRepository) List(ctx context.Context) ([]*user.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

type mockTicketRepository struct {
	CreateFunc            func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc           func(ctx context.Context, id uint) (*ticket.Ticket, error)
	UpdateFunc            func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc            func(ctx context.Context, id uint) error
	ListFunc              func(ctx context.Context) ([]*ticket.Ticket, error)
	ExistsByCreatorIDFunc func(ctx context.Context, userID uint) (bool, error)
}

func (m *mockTicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockTicketRepository) List(ctx context.Context) ([]*ticket.Ticket, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockTicketRepository) ExistsByCreatorID(ctx context.Context, userID uint) (bool, error) {
	if m.ExistsByCreatorIDFunc != nil {
		return m.ExistsByCreatorIDFunc(ctx, userID)
	}
	return false, nil
}

type mockCommentRepository struct {
	CreateFunc           func(ctx context.Context, c *comment.Comment) error
	GetByIDFunc          func(ctx context.Context, id uint) (*comment.Comment, error)
	DeleteFunc           func(ctx context.Context, id uint) error
	ListFunc             func(ctx context.Context) ([]*comment.Comment, error)
	ListByTicketIDFunc   func(ctx context.Context, ticketID uint) ([]*comment.Comment, error)
	DeleteByUserIDFunc   func(ctx context.Context, userID uint) (int64, error)
	DeleteByTicketIDFunc func(ctx context.Context, ticketID uint) (int64, error)
}

func (m *mockCommentRepository) Create(ctx context.Context, c *comment.Comment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *mockCommentRepository) GetByID(ctx context.Context, id uint) (*comment.Comment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCommentRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockCommentRepository) List(ctx context.Context) ([]*comment.Comment, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockCommentRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*comment.Comment, error) {
	if m.ListByTicketIDFunc != nil {
		return m.ListByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockCommentRepository) DeleteByUserID(ctx context.Context, userID uint) (int64, error) {
	if m.DeleteByUserIDFunc != nil {
		return m.DeleteByUserIDFunc(ctx, userID)
	}
	return 0, nil
}

func (m *mockCommentRepository) DeleteByTicketID(ctx context.Context, ticketID uint) (int64, error) {
	if m.DeleteByTicketIDFunc != nil {
		return m.DeleteByTicketIDFunc(ctx, ticketID)
	}
	return 0, nil
}

type mockNotificationRepository struct {
	CreateFunc            func(ctx context.Context, n *notification.Notification) error
	GetByIDFunc           func(ctx context.Context, id uint) (*notification.Notification, error)
	UpdateFunc            func(ctx context.Context, n *notification.Notification) error
	DeleteFunc            func(ctx context.Context, id uint) error
	ListFunc              func(ctx context.Context) ([]*notification.Notification, error)
	DeleteByRecipientFunc func(ctx context.Context, userID uint) (int64, error)
}

func (m *mockNotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, n)
	}
	return nil
}

func (m *mockNotificationRepository) GetByID(ctx context.Context, id uint) (*notification.Notification, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, n)
	}
	return nil
}

func (m *mockNotificationRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockNotificationRepository) List(ctx context.Context) ([]*notification.Notification, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockNotificationRepository) DeleteByRecipient(ctx context.Context, userID uint) (int64, error) {
	if m.DeleteByRecipientFunc != nil {
		return m.DeleteByRecipientFunc(ctx, userID)
	}
	return 0, nil
}

type mockTransactionManager struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockPasswordHasher struct {
	HashFunc func(password string) (string, error)
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

type mockTokenGenerator struct {
	GenerateFunc func() (string, error)
}

func (m *mockTokenGenerator) Generate() (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	return "confirmation-token", nil
}

type mockConfirmationSender struct {
	SendConfirmationEmailFunc func(username, email, token string) error
}

func (m *mockConfirmationSender) SendConfirmationEmail(username, email, token string) error {
	if m.SendConfirmationEmailFunc != nil {
		return m.SendConfirmationEmailFunc(username, email, token)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any) {}
func (m *mockLogger) Info(msg string, args ...any)  {}
func (m *mockLogger) Warn(msg string, args ...any)  {}
func (m *mockLogger) Error(msg string, args ...any) {}

func (m *mockLogger) With(args ...any) logger.Interface  { return m }
func (m *mockLogger) Named(name string) logger.Interface { return m }

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
