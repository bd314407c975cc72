package api

import (
	"context"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/whenmeet/availability-backend/internal/business/availability"
	"github.com/whenmeet/availability-backend/internal/calendar"
	"github.com/whenmeet/availability-backend/internal/database"
	"github.com/whenmeet/availability-backend/internal/model"
	"go.uber.org/zap"
)

type Api struct {
	handler    http.Handler
	logger     *zap.SugaredLogger
	randSource io.Reader

	jwts          jwtManager
	refreshTokens refreshTokenRepository

	db           database.PGX
	users        userRepository
	events       eventRepository
	rules        ruleRepository
	availability availabilityService
}

type jwtManager interface {
	CreateToken(id int64) (string, error)
	GetIdFromToken(token string) (int64, error)
}

type refreshTokenRepository interface {
	Add(ctx context.Context, session string, id int64) error
	Get(ctx context.Context, session string) (int64, error)
	Refresh(ctx context.Context, old, new string) error
	Delete(ctx context.Context, session string) error
}

type userRepository interface {
	CreateUser(ctx context.Context, q database.Queryable, user *model.UserCreate) (int64, error)
	GetUserByUsername(ctx context.Context, q database.Queryable, username string) (*model.User, error)
	GetUserByID(ctx context.Context, q database.Queryable, id int64) (*model.User, error)
	GetUsersByIDs(ctx context.Context, q database.Queryable, ids []int64) ([]*model.User, error)
}

type eventRepository interface {
	CreateEvent(ctx context.Context, q database.Queryable, event *model.EventCreate) (int64, error)
	AddUserToEvent(ctx context.Context, q database.Queryable, eventID, userID int64) error
	GetEventByID(ctx context.Context, q database.Queryable, id int64) (*model.Event, error)
	GetUserEvents(ctx context.Context, q database.Queryable, userID int64) ([]*model.Event, error)
	UpdateEvent(ctx context.Context, q database.Queryable, event *model.Event) error
	DeleteEvent(ctx context.Context, q database.Queryable, id int64) error
	RemoveUserFromEvent(ctx context.Context, q database.Queryable, eventID, userID int64) error
}

type ruleRepository interface {
	CreateRule(ctx context.Context, q database.Queryable, rule *model.RuleCreate) (int64, error)
	GetRuleByID(ctx context.Context, q database.Queryable, id int64) (*model.Rule, error)
	GetRulesByEventID(ctx context.Context, q database.Queryable, eventID int64) ([]*model.Rule, error)
	UpdateRule(ctx context.Context, q database.Queryable, rule *model.Rule) error
	DeleteRule(ctx context.Context, q database.Queryable, id int64) error
}

type availabilityService interface {
	GetMonthView(ctx context.Context, eventID int64, month calendar.Month) (*availability.MonthView, error)
	SubmitChoices(ctx context.Context, eventID, userID int64, month calendar.Month, choices model.MonthChoices) error
}

func NewApi(
	logger *zap.SugaredLogger,
	randSource io.Reader,
	jwts jwtManager,
	refreshTokens refreshTokenRepository,
	db database.PGX,
	users userRepository,
	events eventRepository,
	rules ruleRepository,
	availability availabilityService,
) (*Api, error) {
	a := &Api{
		logger:        logger,
		randSource:    randSource,
		jwts:          jwts,
		refreshTokens: refreshTokens,
		db:            db,
		users:         users,
		events:        events,
		rules:         rules,
		availability:  availability,
	}
	a.setupHandler()

	return a, nil
}

func (a *Api) setupHandler() {
	middleware.DefaultLogger = func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			a.logger.Debugw(r.URL.RequestURI(),
				"addr", r.RemoteAddr,
				"protocol", r.Proto,
				"method", r.Method,
			)
			next.ServeHTTP(w, r)
		})
	}

	r := chi.NewMux()

	r.Use(middleware.Logger, middleware.Recoverer, middleware.StripSlashes)
	r.NotFound(a.notFoundResponse)
	r.MethodNotAllowed(a.methodNotAllowedResponse)

	r.Get("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signin", a.signInHandler)
		r.Post("/refresh", a.refreshTokenHandler)
		r.Post("/logout", a.logoutUserHandler)
	})

	r.With(a.auth).Route("/", func(r chi.Router) {
		r.With(a.userCtx).Route("/user", func(r chi.Router) {
			r.Get("/", a.getUserHandler)
		})

		r.Route("/events", func(r chi.Router) {
			r.Post("/", a.createEventHandler)
			r.Get("/", a.getUserEventsHandler)

			r.With(a.eventCtx).Route("/{eventID}", func(r chi.Router) {
				r.Get("/", a.getEventMonthHandler)
				r.Put("/", a.updateEventHandler)
				r.Delete("/", a.deleteEventHandler)
				r.Post("/join", a.joinEventHandler)
				r.Post("/leave", a.leaveEventHandler)

				r.Post("/choices", a.submitChoicesHandler)

				r.Route("/rules", func(r chi.Router) {
					r.Get("/", a.getRulesHandler)
					r.Post("/", a.createRuleHandler)
					r.Put("/{ruleID}", a.updateRuleHandler)
					r.Delete("/{ruleID}", a.deleteRuleHandler)
				})
			})
		})
	})

	a.handler = r
}

func (a *Api) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.handler.ServeHTTP(w, r)
}
