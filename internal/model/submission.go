package model

import "errors"

// ErrGatewayNotConfigured - ключ доступа к сервису отправки заявок не задан
var ErrGatewayNotConfigured = errors.New("System Configuration Error: Web3Forms Access Key is not configured.")

// RequestType - вид заявки на шаге оформления
type RequestType string

const (
	RequestInquiry     RequestType = "inquiry"
	RequestAppointment RequestType = "appointment"
)

// Inquiry - быстрый запрос без записи
type Inquiry struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Email  string `json:"email,omitempty"`
	Brand  string `json:"brand"`
	Model  string `json:"model"`
	Repair string `json:"repair"`
}

// Appointment - запись на выезд мастера
type Appointment struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Brand   string `json:"brand"`
	Model   string `json:"model"`
	Repair  string `json:"repair"`
}

// SubmissionResult - ответ шлюза отправки заявок
type SubmissionResult struct {
	Success bool   `json:"success"`
	Method  string `json:"method"`
}
