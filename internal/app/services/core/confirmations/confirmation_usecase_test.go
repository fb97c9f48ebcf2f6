package confirmations

import (
	"context"
	"errors"
	"testing"

	"vitalis-service/internal/app/models"
	"vitalis-service/internal/pkg/dto/requests"
	"vitalis-service/internal/pkg/dto/responses"
	"vitalis-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockConversationRepository struct {
	mock.Mock
}

func (m *mockConversationRepository) FindConversationByID(ctx context.Context, conversationID string) (*models.Conversation, error) {
	args := m.Called(ctx, conversationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Conversation), args.Error(1)
}

func (m *mockConversationRepository) UpdateAppointmentInfo(ctx context.Context, conversationID string, info *models.AppointmentInfo, awaitingConfirmation bool) error {
	args := m.Called(ctx, conversationID, info, awaitingConfirmation)
	return args.Error(0)
}

func (m *mockConversationRepository) SetAppointmentBookingID(ctx context.Context, conversationID, bookingID string) (bool, error) {
	args := m.Called(ctx, conversationID, bookingID)
	return args.Bool(0), args.Error(1)
}

func (m *mockConversationRepository) CancelAppointment(ctx context.Context, conversationID string) error {
	args := m.Called(ctx, conversationID)
	return args.Error(0)
}

type mockAccountRepository struct {
	mock.Mock
}

func (m *mockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*models.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

type mockPaymentUsecase struct {
	mock.Mock
}

func (m *mockPaymentUsecase) CreateCheckoutSession(ctx context.Context, request *requests.CreateCheckoutSessionRequest) (*responses.CreateCheckoutSessionResponse, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.CreateCheckoutSessionResponse), args.Error(1)
}

func (m *mockPaymentUsecase) GetPaymentByID(ctx context.Context, paymentID string) (*models.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}

func (m *mockPaymentUsecase) GetPaymentByCheckoutSessionID(ctx context.Context, sessionID string) (*models.Payment, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}

func (m *mockPaymentUsecase) UpdatePaymentStatus(ctx context.Context, paymentID string, status models.PaymentStatus, extra map[string]string) (*models.Payment, error) {
	args := m.Called(ctx, paymentID, status, extra)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}

func (m *mockPaymentUsecase) MarkPaymentCompleted(ctx context.Context, paymentID, transactionRef string) (*models.Payment, error) {
	args := m.Called(ctx, paymentID, transactionRef)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}

func (m *mockPaymentUsecase) CancelPayment(ctx context.Context, paymentID string) (*models.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}

func (m *mockPaymentUsecase) GetPaymentsByConversationID(ctx context.Context, conversationID string) ([]models.Payment, error) {
	args := m.Called(ctx, conversationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Payment), args.Error(1)
}

func (m *mockPaymentUsecase) GetPaymentsByAccountID(ctx context.Context, accountID string, filter requests.PaymentAccountFilter) ([]models.Payment, error) {
	args := m.Called(ctx, accountID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Payment), args.Error(1)
}

func (m *mockPaymentUsecase) GetPaymentStats(ctx context.Context, accountID string) (*responses.PaymentStats, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.PaymentStats), args.Error(1)
}

func (m *mockPaymentUsecase) GetConnectAccountStatus(ctx context.Context, accountID string) (*responses.ConnectAccountStatus, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.ConnectAccountStatus), args.Error(1)
}

func (m *mockPaymentUsecase) CreateConnectOnboardingLink(ctx context.Context, accountID string, request *requests.ConnectAccountLinkRequest) (*responses.ConnectAccountLink, error) {
	args := m.Called(ctx, accountID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.ConnectAccountLink), args.Error(1)
}

type mockAppointmentService struct {
	mock.Mock
}

func (m *mockAppointmentService) ConfirmAndCreateAppointment(ctx context.Context, conversationID string, account *models.Account, paymentID string) (*responses.AppointmentResult, error) {
	args := m.Called(ctx, conversationID, account, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.AppointmentResult), args.Error(1)
}

type mockWhatsAppService struct {
	mock.Mock
}

func (m *mockWhatsAppService) SendMessage(ctx context.Context, message *requests.WhatsAppMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

type confirmationMocks struct {
	conversations *mockConversationRepository
	accounts      *mockAccountRepository
	payments      *mockPaymentUsecase
	appointments  *mockAppointmentService
	whatsapp      *mockWhatsAppService
}

func newTestConfirmationUsecase() (*confirmationUsecase, *confirmationMocks) {
	mocks := &confirmationMocks{
		conversations: new(mockConversationRepository),
		accounts:      new(mockAccountRepository),
		payments:      new(mockPaymentUsecase),
		appointments:  new(mockAppointmentService),
		whatsapp:      new(mockWhatsAppService),
	}
	uc := &confirmationUsecase{
		ConversationRepository: mocks.conversations,
		AccountRepository:      mocks.accounts,
		PaymentUsecase:         mocks.payments,
		AppointmentService:     mocks.appointments,
		WhatsAppService:        mocks.whatsapp,
		Log:                    zap.NewNop(),
	}
	return uc, mocks
}

func testConversation(info *models.AppointmentInfo) *models.Conversation {
	return &models.Conversation{
		ID:          "conv-1",
		AccountID:   "acc-1",
		PhoneNumber: "5215512345678",
		Context: models.ConversationContext{
			AppointmentInfo: info,
		},
	}
}

func testAccount() *models.Account {
	return &models.Account{
		ID:            "acc-1",
		Name:          "Consultorio Demo",
		PhoneNumberID: "pn-1",
	}
}

func TestHandlePaymentSuccessBooksAndNotifies(t *testing.T) {
	uc, mocks := newTestConfirmationUsecase()

	info := &models.AppointmentInfo{
		PaymentID: "pay-1",
		Datetime:  "2026-03-15T14:30:00Z",
		Name:      "Ana",
	}
	mocks.conversations.On("FindConversationByID", mock.Anything, "conv-1").Return(testConversation(info), nil)
	mocks.accounts.On("FindAccountByID", mock.Anything, "acc-1").Return(testAccount(), nil)

	mocks.payments.On("GetPaymentByID", mock.Anything, "pay-1").Return(&models.Payment{
		ID:     "pay-1",
		Status: models.PaymentStatusPending,
	}, nil)
	mocks.payments.On("MarkPaymentCompleted", mock.Anything, "pay-1", "").Return(&models.Payment{
		ID:     "pay-1",
		Status: models.PaymentStatusCompleted,
	}, nil)

	mocks.conversations.On("UpdateAppointmentInfo", mock.Anything, "conv-1", info, true).Return(nil)
	mocks.appointments.On("ConfirmAndCreateAppointment", mock.Anything, "conv-1", mock.Anything, "pay-1").Return(&responses.AppointmentResult{
		Success:       true,
		AppointmentID: "ghl-1",
	}, nil)
	mocks.conversations.On("SetAppointmentBookingID", mock.Anything, "conv-1", "ghl-1").Return(true, nil)
	mocks.whatsapp.On("SendMessage", mock.Anything, mock.Anything).Return(nil)

	err := uc.HandlePaymentSuccess(context.Background(), "conv-1")

	assert.NoError(t, err)
	mocks.appointments.AssertExpectations(t)
	mocks.whatsapp.AssertNumberOfCalls(t, "SendMessage", 1)
}

func TestHandlePaymentSuccessGuardAlreadyBooked(t *testing.T) {
	uc, mocks := newTestConfirmationUsecase()

	info := &models.AppointmentInfo{
		PaymentID: "pay-1",
		BookingID: "ghl-existing",
	}
	mocks.conversations.On("FindConversationByID", mock.Anything, "conv-1").Return(testConversation(info), nil)
	mocks.accounts.On("FindAccountByID", mock.Anything, "acc-1").Return(testAccount(), nil)
	mocks.payments.On("GetPaymentByID", mock.Anything, "pay-1").Return(&models.Payment{
		ID:     "pay-1",
		Status: models.PaymentStatusCompleted,
	}, nil)

	err := uc.HandlePaymentSuccess(context.Background(), "conv-1")

	assert.NoError(t, err)
	mocks.appointments.AssertNotCalled(t, "ConfirmAndCreateAppointment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mocks.whatsapp.AssertNotCalled(t, "SendMessage", mock.Anything, mock.Anything)
}

func TestHandlePaymentSuccessLoserSkipsNotification(t *testing.T) {
	uc, mocks := newTestConfirmationUsecase()

	info := &models.AppointmentInfo{
		PaymentID: "pay-1",
		Datetime:  "2026-03-15T14:30:00Z",
		Name:      "Ana",
	}
	mocks.conversations.On("FindConversationByID", mock.Anything, "conv-1").Return(testConversation(info), nil)
	mocks.accounts.On("FindAccountByID", mock.Anything, "acc-1").Return(testAccount(), nil)

	// Payment already completed by the twin path; booking id not yet visible
	// in our read, so the conditional write decides.
	mocks.payments.On("GetPaymentByID", mock.Anything, "pay-1").Return(&models.Payment{
		ID:     "pay-1",
		Status: models.PaymentStatusCompleted,
	}, nil)
	mocks.appointments.On("ConfirmAndCreateAppointment", mock.Anything, "conv-1", mock.Anything, "").Return(&responses.AppointmentResult{
		Success:       true,
		AppointmentID: "ghl-2",
	}, nil)
	mocks.conversations.On("SetAppointmentBookingID", mock.Anything, "conv-1", "ghl-2").Return(false, nil)

	err := uc.HandlePaymentSuccess(context.Background(), "conv-1")

	assert.NoError(t, err)
	mocks.whatsapp.AssertNotCalled(t, "SendMessage", mock.Anything, mock.Anything)
}

func TestHandlePaymentSuccessBookingFailureSendsDegradedNotice(t *testing.T) {
	uc, mocks := newTestConfirmationUsecase()

	info := &models.AppointmentInfo{
		PaymentID: "pay-1",
		Datetime:  "2026-03-15T14:30:00Z",
		Name:      "Ana",
	}
	mocks.conversations.On("FindConversationByID", mock.Anything, "conv-1").Return(testConversation(info), nil)
	mocks.accounts.On("FindAccountByID", mock.Anything, "acc-1").Return(testAccount(), nil)

	mocks.payments.On("GetPaymentByID", mock.Anything, "pay-1").Return(&models.Payment{
		ID:     "pay-1",
		Status: models.PaymentStatusPending,
	}, nil)
	mocks.payments.On("MarkPaymentCompleted", mock.Anything, "pay-1", "").Return(&models.Payment{
		ID:     "pay-1",
		Status: models.PaymentStatusCompleted,
	}, nil)
	mocks.conversations.On("UpdateAppointmentInfo", mock.Anything, "conv-1", info, true).Return(nil)

	mocks.appointments.On("ConfirmAndCreateAppointment", mock.Anything, "conv-1", mock.Anything, "pay-1").Return(nil, errors.New("calendar unavailable"))
	mocks.whatsapp.On("SendMessage", mock.Anything, mock.Anything).Return(nil)

	err := uc.HandlePaymentSuccess(context.Background(), "conv-1")

	assert.NoError(t, err)
	mocks.conversations.AssertNotCalled(t, "SetAppointmentBookingID", mock.Anything, mock.Anything, mock.Anything)
	mocks.whatsapp.AssertNumberOfCalls(t, "SendMessage", 1)
}

func TestHandlePaymentSuccessMissingConversation(t *testing.T) {
	uc, mocks := newTestConfirmationUsecase()

	mocks.conversations.On("FindConversationByID", mock.Anything, "conv-missing").Return(nil, nil)

	err := uc.HandlePaymentSuccess(context.Background(), "conv-missing")

	assert.NoError(t, err)
	mocks.payments.AssertNotCalled(t, "GetPaymentByID", mock.Anything, mock.Anything)
	mocks.whatsapp.AssertNotCalled(t, "SendMessage", mock.Anything, mock.Anything)
}

func TestHandlePaymentCancelPendingPayment(t *testing.T) {
	uc, mocks := newTestConfirmationUsecase()

	info := &models.AppointmentInfo{PaymentID: "pay-1"}
	mocks.conversations.On("FindConversationByID", mock.Anything, "conv-1").Return(testConversation(info), nil)
	mocks.accounts.On("FindAccountByID", mock.Anything, "acc-1").Return(testAccount(), nil)

	mocks.payments.On("GetPaymentByID", mock.Anything, "pay-1").Return(&models.Payment{
		ID:     "pay-1",
		Status: models.PaymentStatusPending,
	}, nil)
	mocks.payments.On("CancelPayment", mock.Anything, "pay-1").Return(&models.Payment{
		ID:     "pay-1",
		Status: models.PaymentStatusCancelled,
	}, nil)
	mocks.whatsapp.On("SendMessage", mock.Anything, mock.Anything).Return(nil)
	mocks.conversations.On("CancelAppointment", mock.Anything, "conv-1").Return(nil)

	err := uc.HandlePaymentCancel(context.Background(), "conv-1")

	assert.NoError(t, err)
	mocks.payments.AssertExpectations(t)
	mocks.conversations.AssertCalled(t, "CancelAppointment", mock.Anything, "conv-1")
	mocks.whatsapp.AssertNumberOfCalls(t, "SendMessage", 1)
}

func TestHandlePaymentCancelCompletedPaymentUntouched(t *testing.T) {
	uc, mocks := newTestConfirmationUsecase()

	info := &models.AppointmentInfo{PaymentID: "pay-1"}
	mocks.conversations.On("FindConversationByID", mock.Anything, "conv-1").Return(testConversation(info), nil)
	mocks.accounts.On("FindAccountByID", mock.Anything, "acc-1").Return(testAccount(), nil)

	mocks.payments.On("GetPaymentByID", mock.Anything, "pay-1").Return(&models.Payment{
		ID:     "pay-1",
		Status: models.PaymentStatusCompleted,
	}, nil)
	mocks.whatsapp.On("SendMessage", mock.Anything, mock.Anything).Return(nil)
	mocks.conversations.On("CancelAppointment", mock.Anything, "conv-1").Return(nil)

	err := uc.HandlePaymentCancel(context.Background(), "conv-1")

	assert.NoError(t, err)
	mocks.payments.AssertNotCalled(t, "CancelPayment", mock.Anything, mock.Anything)
}

func TestHandleCheckoutCompletedLinksPayment(t *testing.T) {
	uc, mocks := newTestConfirmationUsecase()

	payment := &models.Payment{
		ID:             "pay-1",
		ConversationID: "conv-1",
		Status:         models.PaymentStatusPending,
	}
	mocks.payments.On("GetPaymentByCheckoutSessionID", mock.Anything, "cs_1").Return(payment, nil)

	// Conversation not yet linked to the payment.
	info := &models.AppointmentInfo{
		Datetime: "2026-03-15T14:30:00Z",
		Name:     "Ana",
	}
	mocks.conversations.On("FindConversationByID", mock.Anything, "conv-1").Return(testConversation(info), nil)
	mocks.accounts.On("FindAccountByID", mock.Anything, "acc-1").Return(testAccount(), nil)
	mocks.conversations.On("UpdateAppointmentInfo", mock.Anything, "conv-1", info, true).Return(nil)

	mocks.payments.On("GetPaymentByID", mock.Anything, "pay-1").Return(payment, nil)
	mocks.payments.On("MarkPaymentCompleted", mock.Anything, "pay-1", "pi_1").Return(&models.Payment{
		ID:     "pay-1",
		Status: models.PaymentStatusCompleted,
	}, nil)
	mocks.appointments.On("ConfirmAndCreateAppointment", mock.Anything, "conv-1", mock.Anything, "pay-1").Return(&responses.AppointmentResult{
		Success:       true,
		AppointmentID: "ghl-1",
	}, nil)
	mocks.conversations.On("SetAppointmentBookingID", mock.Anything, "conv-1", "ghl-1").Return(true, nil)
	mocks.whatsapp.On("SendMessage", mock.Anything, mock.Anything).Return(nil)

	err := uc.HandleCheckoutCompleted(context.Background(), "cs_1", "pi_1")

	assert.NoError(t, err)
	assert.Equal(t, "pay-1", info.PaymentID)
	mocks.whatsapp.AssertNumberOfCalls(t, "SendMessage", 1)
}

func TestHandleCheckoutCompletedUnknownSession(t *testing.T) {
	uc, mocks := newTestConfirmationUsecase()

	mocks.payments.On("GetPaymentByCheckoutSessionID", mock.Anything, "cs_unknown").Return(nil, exceptions.ErrPaymentNotFound(nil, "cs_unknown"))

	err := uc.HandleCheckoutCompleted(context.Background(), "cs_unknown", "")

	assert.NoError(t, err)
	mocks.conversations.AssertNotCalled(t, "FindConversationByID", mock.Anything, mock.Anything)
}
