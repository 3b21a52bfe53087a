package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"github.com/limbo/levelup/internal/service"
)

const (
	requestTimeout  = 10 * time.Second
	shutdownTimeout = 10 * time.Second
)

type Server struct {
	mx                 *chi.Mux
	userService        service.UserServiceI
	categoryService    service.CategoryServiceI
	presetHabitService service.PresetHabitServiceI
	customHabitService service.CustomHabitServiceI
	habitListService   service.HabitListServiceI
	jwtService         JWTServiceI
	ws                 http.Handler
	metrics            *Metrics
	authLimiter        *RateLimiter
	origins            []string
}

type ServicesList struct {
	UserService        service.UserServiceI
	CategoryService    service.CategoryServiceI
	PresetHabitService service.PresetHabitServiceI
	CustomHabitService service.CustomHabitServiceI
	HabitListService   service.HabitListServiceI
	JwtService         JWTServiceI
	// Serves GET /ws. Omitted means no real-time endpoint
	WSHandler http.Handler
	Metrics   *Metrics
	// Allowed CORS origins, "*" for any
	CORSOrigins   []string
	AuthRateLimit float64
	AuthRateBurst int
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:                 chi.NewMux(),
		userService:        servicesOptions.UserService,
		categoryService:    servicesOptions.CategoryService,
		presetHabitService: servicesOptions.PresetHabitService,
		customHabitService: servicesOptions.CustomHabitService,
		habitListService:   servicesOptions.HabitListService,
		jwtService:         servicesOptions.JwtService,
		ws:                 servicesOptions.WSHandler,
		metrics:            servicesOptions.Metrics,
		origins:            servicesOptions.CORSOrigins,
	}
	if s.metrics == nil {
		s.metrics = NewMetrics()
	}
	if servicesOptions.AuthRateLimit > 0 {
		s.authLimiter = NewRateLimiter(rate.Limit(servicesOptions.AuthRateLimit), max(servicesOptions.AuthRateBurst, 1))
	}
	s.MountRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

func (s *Server) MountRoutes() {
	s.mx.Use(middleware.Recoverer)
	s.mx.Use(s.CORSMiddleware)
	s.mx.Use(s.metrics.Middleware)
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)

	s.mx.Get("/healthz", s.Health)
	s.mx.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	if s.ws != nil {
		s.mx.Method(http.MethodGet, "/ws", s.ws)
	}

	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			if s.authLimiter != nil {
				r.Use(s.authLimiter.Middleware)
			}
			r.Post("/register", s.Register)
			r.Post("/login", s.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware)
			r.Use(s.LoggerExtensionMiddleware)

			r.Route("/users", func(r chi.Router) {
				r.Get("/", s.ListUsers)
				r.Get("/leaderboard", s.Leaderboard)
				r.Get("/me", s.GetMe)
				r.Get("/{id}", s.GetUser)
				r.Put("/{id}", s.UpdateUser)
				r.Delete("/{id}", s.DeleteUser)
			})

			r.Route("/categories", func(r chi.Router) {
				r.Get("/", s.ListCategories)
				r.Post("/", s.CreateCategory)
				r.Get("/{name}", s.GetCategory)
				r.Get("/{name}/preset_habits", s.GetCategoryHabits)
				r.Delete("/{name}", s.DeleteCategory)
			})

			r.Route("/preset_habits", func(r chi.Router) {
				r.Get("/", s.ListPresetHabits)
				r.Post("/", s.CreatePresetHabit)
				r.Get("/{id}", s.GetPresetHabit)
				r.Put("/{id}", s.UpdatePresetHabit)
				r.Delete("/{id}", s.DeletePresetHabit)
			})

			r.Route("/custom_habits", func(r chi.Router) {
				r.Get("/", s.ListCustomHabits)
				r.Post("/", s.CreateCustomHabit)
				r.Get("/user_habits", s.ListOwnCustomHabits)
				r.Get("/{id}", s.GetCustomHabit)
				r.Put("/{id}", s.UpdateCustomHabit)
				r.Delete("/{id}", s.DeleteCustomHabit)
			})

			r.Route("/habit_lists", func(r chi.Router) {
				r.Get("/", s.ListHabitLists)
				r.Post("/", s.CreateHabitList)
				r.Get("/user", s.ListOwnHabitLists)
				r.Get("/{id}", s.GetHabitList)
				r.Put("/{id}", s.UpdateHabitList)
				r.Delete("/{id}", s.DeleteHabitList)
				r.Get("/{id}/items", s.GetHabitListItems)
				r.Get("/{id}/habits", s.GetHabitListPresetHabits)
				r.Post("/{id}/habits", s.AddPresetHabits)
				r.Post("/{id}/habits/{habitID}/complete", s.CompletePresetHabit)
				r.Get("/{id}/custom_habits", s.GetHabitListCustomHabits)
				r.Post("/{id}/custom_habits", s.AddCustomHabits)
				r.Post("/{id}/custom_habits/{habitID}/complete", s.CompleteCustomHabit)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(s.AdminMiddleware)
				r.Get("/data", s.AdminProbe)
				r.Post("/data", s.AdminProbe)
				r.Delete("/data", s.AdminProbe)
			})
		})
	})
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server started", slog.String("address", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("running server: %w", err)
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down server: %w", err)
		}
		slog.Info("server stopped")
		return nil
	case err := <-errCh:
		return err
	}
}
