package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sysu-ecnc-dev/vacation-tracker/backend/internal/domain"
)

// publishMail 把邮件放进消息队列，由 mail worker 发送
// 此时数据已经写入，所以失败只记录日志，不影响响应
func (h *Handler) publishMail(r *http.Request, mailMessage domain.MailMessage) {
	if h.mailPublisher == nil {
		return
	}

	mailData, err := json.Marshal(mailMessage)
	if err != nil {
		slog.Error("邮件序列化失败", "method", r.Method, "path", r.URL.Path, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.mailPublisher.PublishWithContext(
		ctx,
		"",
		h.config.RabbitMQ.Queue,
		true,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         mailData,
		},
	); err != nil {
		slog.Error("无法发送邮件到消息队列", "type", mailMessage.Type, "to", mailMessage.To, "error", err)
	}
}

func (h *Handler) notifyManagers(r *http.Request, vacation *domain.Vacation) {
	if h.mailPublisher == nil {
		return
	}

	managers, err := h.repository.GetUsersByRole(domain.RoleManager)
	if err != nil {
		slog.Error("无法获取经理列表", "error", err)
		return
	}

	for _, manager := range managers {
		h.publishMail(r, domain.MailMessage{
			Type: domain.MailTypeVacationRequested,
			To:   manager.Email,
			Data: domain.VacationRequestedMailData{
				VacationID:    vacation.ID,
				EmployeeEmail: vacation.EmployeeEmail,
				StartDate:     vacation.StartDate,
				EndDate:       vacation.EndDate,
			},
		})
	}
}

func (h *Handler) notifyEmployee(r *http.Request, vacation *domain.Vacation) {
	if vacation.EmployeeEmail == "" {
		return
	}

	h.publishMail(r, domain.MailMessage{
		Type: domain.MailTypeVacationStatusChanged,
		To:   vacation.EmployeeEmail,
		Data: domain.VacationStatusChangedMailData{
			VacationID: vacation.ID,
			StartDate:  vacation.StartDate,
			EndDate:    vacation.EndDate,
			Status:     vacation.Status,
		},
	})
}
