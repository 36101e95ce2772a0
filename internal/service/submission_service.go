package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/Freeeeeet/repair_booking_bot/internal/model"
	"go.uber.org/zap"
)

const (
	DefaultWeb3FormsURL = "https://api.web3forms.com/submit"

	// PlaceholderAccessKey - значение ключа из шаблона .env, считается ненастроенным
	PlaceholderAccessKey = "YOUR_WEB3FORMS_KEY"

	submissionMethod = "Web3Forms"
	submissionSender = "Mobilphonefix Website"
)

// web3FormsResponse - ответ Web3Forms
type web3FormsResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SubmissionService отправляет заявки в Web3Forms, который пересылает их владельцу на почту.
// Повторов и таймаутов нет: вызов длится столько, сколько отвечает сервис.
type SubmissionService struct {
	accessKey string
	endpoint  string
	client    *http.Client
	now       func() time.Time
	logger    *zap.Logger
}

func NewSubmissionService(accessKey, endpoint string, client *http.Client, logger *zap.Logger) *SubmissionService {
	if endpoint == "" {
		endpoint = DefaultWeb3FormsURL
	}
	if client == nil {
		client = &http.Client{}
	}
	return &SubmissionService{
		accessKey: accessKey,
		endpoint:  endpoint,
		client:    client,
		now:       time.Now,
		logger:    logger,
	}
}

// Configured сообщает, задан ли ключ доступа
func (s *SubmissionService) Configured() bool {
	return s.accessKey != "" && s.accessKey != PlaceholderAccessKey
}

// SendInquiry отправляет быстрый запрос
func (s *SubmissionService) SendInquiry(ctx context.Context, inquiry model.Inquiry) (*model.SubmissionResult, error) {
	if !s.Configured() {
		return nil, model.ErrGatewayNotConfigured
	}

	device := deviceName(inquiry.Brand, inquiry.Model)
	fields := [][2]string{
		{"access_key", s.accessKey},
		{"subject", "🔧 New Repair Inquiry - " + device},
		{"from_name", submissionSender},
		{"name", inquiry.Name},
		{"phone", inquiry.Phone},
	}
	if strings.Contains(inquiry.Email, "@") {
		fields = append(fields, [2]string{"email", inquiry.Email})
	}
	fields = append(fields,
		[2]string{"device", device},
		[2]string{"repair", inquiry.Repair},
		[2]string{"message", s.inquiryMessage(inquiry)},
	)

	if err := s.post(ctx, fields, "Failed to send inquiry"); err != nil {
		s.logger.Error("Inquiry submission failed",
			zap.String("device", device),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("Inquiry submitted",
		zap.String("device", device),
		zap.String("repair", inquiry.Repair))

	return &model.SubmissionResult{Success: true, Method: submissionMethod}, nil
}

// SendAppointment отправляет запись на выезд
func (s *SubmissionService) SendAppointment(ctx context.Context, appointment model.Appointment) (*model.SubmissionResult, error) {
	if !s.Configured() {
		return nil, model.ErrGatewayNotConfigured
	}

	device := deviceName(appointment.Brand, appointment.Model)
	fields := [][2]string{
		{"access_key", s.accessKey},
		{"subject", "📅 New Appointment Request - " + device},
		{"from_name", submissionSender},
		{"name", appointment.Name},
		{"phone", appointment.Phone},
	}
	if strings.Contains(appointment.Email, "@") {
		fields = append(fields, [2]string{"email", appointment.Email})
	}
	fields = append(fields,
		[2]string{"address", appointment.Address},
		[2]string{"date", appointment.Date},
		[2]string{"time", appointment.Time},
		[2]string{"device", device},
		[2]string{"repair", appointment.Repair},
		[2]string{"message", s.appointmentMessage(appointment)},
	)

	if err := s.post(ctx, fields, "Failed to send appointment"); err != nil {
		s.logger.Error("Appointment submission failed",
			zap.String("device", device),
			zap.String("date", appointment.Date),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("Appointment submitted",
		zap.String("device", device),
		zap.String("date", appointment.Date),
		zap.String("time", appointment.Time))

	return &model.SubmissionResult{Success: true, Method: submissionMethod}, nil
}

func (s *SubmissionService) post(ctx context.Context, fields [][2]string, fallbackMessage string) error {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for _, f := range fields {
		if err := writer.WriteField(f[0], f[1]); err != nil {
			return fmt.Errorf("write form field %s: %w", f[0], err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("close form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, &body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	var result web3FormsResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err)
	}

	if !result.Success {
		if result.Message != "" {
			return errors.New(result.Message)
		}
		return errors.New(fallbackMessage)
	}
	return nil
}

func (s *SubmissionService) inquiryMessage(i model.Inquiry) string {
	return fmt.Sprintf(`
📱 NEW REPAIR INQUIRY

👤 Customer Information:
Name: %s
Phone: %s
Email: %s

🔧 Device Information:
Device: %s
Repair Type: %s

⏰ Received: %s
`, i.Name, i.Phone, orNotProvided(i.Email), deviceName(i.Brand, i.Model), i.Repair, s.received())
}

func (s *SubmissionService) appointmentMessage(a model.Appointment) string {
	return fmt.Sprintf(`
📅 NEW APPOINTMENT REQUEST

👤 Customer Information:
Name: %s
Phone: %s
Email: %s
Address: %s

⏰ Appointment Details:
Date: %s
Time: %s

🔧 Device Information:
Device: %s
Repair Type: %s

📍 Service Location: %s
⏰ Received: %s
`, a.Name, a.Phone, orNotProvided(a.Email), a.Address, a.Date, a.Time,
		deviceName(a.Brand, a.Model), a.Repair, a.Address, s.received())
}

func (s *SubmissionService) received() string {
	return s.now().Format("1/2/2006, 3:04:05 PM")
}

func deviceName(brand, modelName string) string {
	return brand + " " + modelName
}

func orNotProvided(v string) string {
	if v == "" {
		return "Not provided"
	}
	return v
}
