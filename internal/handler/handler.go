package handler

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sysu-ecnc-dev/vacation-tracker/backend/internal/config"
	"github.com/sysu-ecnc-dev/vacation-tracker/backend/internal/repository"
)

// MailPublisher 由 *amqp.Channel 实现
type MailPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type Handler struct {
	validate      *validator.Validate
	config        *config.Config
	repository    *repository.Repository
	translator    ut.Translator
	mailPublisher MailPublisher

	Mux *chi.Mux
}

// NewHandler 中 mailPublisher 可以为 nil，此时不发送邮件通知
func NewHandler(cfg *config.Config, repo *repository.Repository, mailPublisher MailPublisher) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	en := en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:      validate,
		config:        cfg,
		repository:    repo,
		translator:    trans,
		mailPublisher: mailPublisher,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// 身份只由调用方传入的邮箱决定，没有登录和权限校验
	h.Mux.Route("/api", func(r chi.Router) {
		r.Get("/user", h.GetUser)

		r.Route("/vacations", func(r chi.Router) {
			r.Get("/", h.GetVacations)
			r.Post("/", h.CreateVacation)
			r.Put("/", h.UpdateVacationStatusByBody) // 已弃用，请使用 PATCH /api/vacations/{id}
			r.Patch("/", h.UpdateVacationStatus)     // 缺少 id，返回 400
			r.Patch("/{id}", h.UpdateVacationStatus)
		})
	})
}
