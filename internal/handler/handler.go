package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/staffio-dev/roster-manager/backend/internal/config"
	"github.com/staffio-dev/roster-manager/backend/internal/domain"
	"github.com/staffio-dev/roster-manager/backend/internal/repository"
	"github.com/staffio-dev/roster-manager/backend/internal/roster"
)

type Handler struct {
	validate       *validator.Validate
	config         *config.Config
	repository     *repository.Repository
	translator     ut.Translator
	mailChannel    *amqp.Channel
	redisClient    *redis.Client
	rosterSessions *roster.Manager

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	zh := zh.New()
	uni := ut.New(zh, zh)
	trans, _ := uni.GetTranslator("zh")
	if err := zh_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:       validate,
		config:         cfg,
		repository:     repo,
		translator:     trans,
		mailChannel:    mailCh,
		redisClient:    rdb,
		rosterSessions: roster.NewManager(),

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// 认证相关
	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Route("/reset-password", func(r chi.Router) {
			r.Post("/require", h.RequireResetPassword)
			r.Post("/confirm", h.ConfirmResetPassword)
		})
	})

	// 以下 API 必须要在登录后才允许调用
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Route("/my-info", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Get("/", h.GetMyInfo)
			r.Patch("/password", h.UpdateMyPassword)
			r.Route("/update-email", func(r chi.Router) {
				r.Post("/require", h.RequireUpdateEmail)
				r.Post("/confirm", h.ConfirmUpdateEmail)
			})
		})

		r.Route("/employees", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleHRAdmin})).Post("/", h.CreateEmployee)
			r.Get("/", h.GetAllEmployeeInfo) // 所有员工都可以查看通讯录
			r.With(h.myInfo).With(h.RequiredRole([]domain.Role{domain.RoleRosterManager, domain.RoleHRAdmin})).Get("/team", h.GetMyTeam)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.employeeInfo)
				r.Get("/", h.GetEmployeeInfo)
				r.With(h.preventOperateInitialAdmin).With(h.RequiredRole([]domain.Role{domain.RoleHRAdmin})).Patch("/", h.UpdateEmployee)
				r.With(h.preventOperateInitialAdmin).With(h.RequiredRole([]domain.Role{domain.RoleHRAdmin})).Delete("/", h.DeleteEmployee)
				r.With(h.RequiredRole([]domain.Role{domain.RoleHRAdmin})).Patch("/password", h.UpdateEmployeePassword)
			})
		})

		r.Route("/departments", func(r chi.Router) {
			r.Get("/", h.GetAllDepartments)
			r.With(h.RequiredRole([]domain.Role{domain.RoleHRAdmin})).Post("/", h.CreateDepartment)
		})

		r.Route("/shifts", func(r chi.Router) {
			r.Get("/", h.GetAllShifts)
			r.With(h.RequiredRole([]domain.Role{domain.RoleHRAdmin})).Post("/", h.CreateShift)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.shiftInfo)
				r.Get("/", h.GetShift)
				r.With(h.RequiredRole([]domain.Role{domain.RoleHRAdmin})).Patch("/", h.UpdateShift)
				r.With(h.RequiredRole([]domain.Role{domain.RoleHRAdmin})).Delete("/", h.DeleteShift)
			})
		})

		// 排班会话，只有经理和人事管理员能够操作
		r.Route("/roster-sessions", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Use(h.RequiredRole([]domain.Role{domain.RoleRosterManager, domain.RoleHRAdmin}))
			r.Post("/", h.CreateRosterSession)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.rosterSession)
				r.Get("/", h.GetRosterSession)
				r.Delete("/", h.DeleteRosterSession)
				r.Post("/month/next", h.RosterSessionNextMonth)
				r.Post("/month/prev", h.RosterSessionPrevMonth)
				r.Post("/shift", h.SelectRosterShift)
				r.Post("/selection/toggle", h.ToggleRosterSelection)
				r.Post("/selection/select-all", h.SelectAllRosterSelection)
				r.Delete("/selection", h.ClearRosterSelection)
				r.Post("/assignments", h.AssignRosterCell)
				r.Post("/bulk-assign", h.BulkAssignRoster)
				r.Post("/publish", h.PublishRoster)
			})
		})

		r.With(h.myInfo).
			With(h.RequiredRole([]domain.Role{domain.RoleRosterManager, domain.RoleHRAdmin})).
			Get("/rosters/{year}/{month}", h.GetPublishedRoster)
	})
}
