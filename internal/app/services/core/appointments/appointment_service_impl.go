package appointments

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"vitalis-service/internal/app/config"
	"vitalis-service/internal/app/contracts"
	"vitalis-service/internal/app/models"
	"vitalis-service/internal/pkg/constvars"
	"vitalis-service/internal/pkg/dto/responses"
	"vitalis-service/internal/pkg/exceptions"
	"vitalis-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type appointmentService struct {
	ConversationRepository contracts.ConversationRepository
	PaymentRepository      contracts.PaymentRepository
	HTTPClient             *http.Client
	GHLConfig              config.GHL
	Log                    *zap.Logger
}

var (
	appointmentServiceInstance contracts.AppointmentService
	onceAppointmentService     sync.Once
)

func NewAppointmentService(
	conversationRepository contracts.ConversationRepository,
	paymentRepository contracts.PaymentRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AppointmentService {
	onceAppointmentService.Do(func() {
		instance := &appointmentService{
			ConversationRepository: conversationRepository,
			PaymentRepository:      paymentRepository,
			HTTPClient: &http.Client{
				Timeout: time.Duration(internalConfig.GHL.TimeoutInSeconds) * time.Second,
			},
			GHLConfig: internalConfig.GHL,
			Log:       logger,
		}
		appointmentServiceInstance = instance
	})
	return appointmentServiceInstance
}

type createAppointmentPayload struct {
	CalendarID        string `json:"calendarId"`
	LocationID        string `json:"locationId,omitempty"`
	AssignedUserID    string `json:"assignedUserId,omitempty"`
	SelectedSlot      string `json:"selectedSlot"`
	EndTime           string `json:"endTime"`
	Name              string `json:"name"`
	Email             string `json:"email,omitempty"`
	Phone             string `json:"phone"`
	Title             string `json:"title,omitempty"`
	SelectedTimezone  string `json:"selectedTimezone,omitempty"`
	AppointmentStatus string `json:"appointmentStatus"`
}

type createAppointmentReply struct {
	ID            string `json:"id"`
	AppointmentID string `json:"appointmentId"`
}

func (s *appointmentService) ConfirmAndCreateAppointment(ctx context.Context, conversationID string, account *models.Account, paymentID string) (*responses.AppointmentResult, error) {
	requestID := utils.GetRequestID(ctx)
	s.Log.Info("appointmentService.ConfirmAndCreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConversationIDKey, conversationID),
	)

	conversation, err := s.ConversationRepository.FindConversationByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if conversation == nil || conversation.Context.AppointmentInfo == nil {
		return nil, fmt.Errorf("conversation %s has no appointment in flight", conversationID)
	}
	info := conversation.Context.AppointmentInfo

	// A caller that just completed the payment passes its id and skips the
	// re-check. Everyone else must prove the linked payment is paid.
	if paymentID == "" {
		if info.PaymentID == "" {
			return nil, fmt.Errorf("conversation %s has no payment linked to its appointment", conversationID)
		}
		payment, err := s.PaymentRepository.FindPaymentByID(ctx, info.PaymentID)
		if err != nil {
			return nil, err
		}
		if payment == nil || !payment.IsCompleted() {
			return nil, fmt.Errorf("payment %s is not completed", info.PaymentID)
		}
	}

	start, err := utils.ParseAppointmentDatetime(info.Datetime)
	if err != nil {
		return nil, fmt.Errorf("appointment datetime %q is not parseable: %w", info.Datetime, err)
	}
	end := utils.CalculateAppointmentEnd(start)

	phone := info.Email
	if conversation.PhoneNumber != "" {
		phone = conversation.PhoneNumber
	}

	payload := createAppointmentPayload{
		CalendarID:        account.CalendarID,
		LocationID:        account.LocationID,
		AssignedUserID:    account.AssignedUserID,
		SelectedSlot:      start.Format(time.RFC3339),
		EndTime:           end.Format(time.RFC3339),
		Name:              info.Name,
		Email:             info.Email,
		Phone:             phone,
		Title:             fmt.Sprintf("Cita: %s", info.Name),
		AppointmentStatus: "confirmed",
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	url := fmt.Sprintf("%s/appointments/", s.GHLConfig.BaseURL)
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	request.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	request.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.GHLConfig.APIKey))

	response, err := s.HTTPClient.Do(request)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer response.Body.Close()

	replyBody, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	if response.StatusCode < 200 || response.StatusCode > 299 {
		s.Log.Error("appointmentService.ConfirmAndCreateAppointment upstream rejected booking",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int("status_code", response.StatusCode),
			zap.ByteString("response_body", replyBody),
		)
		return nil, exceptions.ErrGHLCreateAppointment(fmt.Errorf("status %d", response.StatusCode))
	}

	var reply createAppointmentReply
	if err := json.Unmarshal(replyBody, &reply); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	appointmentID := reply.ID
	if appointmentID == "" {
		appointmentID = reply.AppointmentID
	}
	if appointmentID == "" {
		return nil, exceptions.ErrGHLCreateAppointment(fmt.Errorf("response carried no appointment id"))
	}

	s.Log.Info("appointmentService.ConfirmAndCreateAppointment booked",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConversationIDKey, conversationID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	details := fmt.Sprintf("%s - %s", utils.FormatAppointmentDatetime(info.Datetime), info.Name)
	return &responses.AppointmentResult{
		Success:       true,
		AppointmentID: appointmentID,
		Details:       details,
	}, nil
}
