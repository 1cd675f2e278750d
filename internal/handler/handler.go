package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/hirestack/job-board/backend/internal/config"
	"github.com/hirestack/job-board/backend/internal/domain"
	"github.com/hirestack/job-board/backend/internal/repository"
	"github.com/hirestack/job-board/backend/internal/token"
)

// 所有权中间件和个人信息接口只依赖这两个窄查询接口，测试时可以用假实现替换
type listingGetter interface {
	GetListingByID(id int64) (*domain.Listing, error)
}

type userGetter interface {
	GetUserByID(id int64) (*domain.User, error)
}

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	listings    listingGetter
	users       userGetter
	tokens      *token.Service
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, tokens *token.Service, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	en := en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		listings:    repo,
		users:       repo,
		tokens:      tokens,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// 认证相关
	h.Mux.Post("/signup", h.Signup)
	h.Mux.Post("/login", h.Login)
	h.Mux.Route("/auth/reset-password", func(r chi.Router) {
		r.Post("/require", h.RequireResetPassword)
		r.Post("/confirm", h.ConfirmResetPassword)
	})

	// 个人信息
	h.Mux.With(h.auth).Get("/me", h.GetMyInfo)

	// 职位列表，读接口公开，写接口需要登录，修改和删除还需要是职位的发布者
	h.Mux.Route("/jobs", func(r chi.Router) {
		r.Get("/", h.ListJobs)
		r.With(h.auth).Post("/", h.CreateJob)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetJob)
			r.Group(func(r chi.Router) {
				r.Use(h.auth)
				r.Use(h.jobOwnership)
				r.Put("/", h.UpdateJob)
				r.Delete("/", h.DeleteJob)
			})
		})
	})

	// 收藏夹，必须登录
	h.Mux.Route("/bookmarks", func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/", h.CreateBookmark)
		r.Get("/", h.GetBookmarks)
	})
}
