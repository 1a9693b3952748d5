package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"bookingCalendar/internal/config"
	approveBookingHandler "bookingCalendar/internal/http-server/handlers/admin/approveBooking"
	deleteBookingHandler "bookingCalendar/internal/http-server/handlers/admin/deleteBooking"
	exportDataHandler "bookingCalendar/internal/http-server/handlers/admin/exportData"
	getDashboardHandler "bookingCalendar/internal/http-server/handlers/admin/getDashboard"
	rejectBookingHandler "bookingCalendar/internal/http-server/handlers/admin/rejectBooking"
	cancelBookingHandler "bookingCalendar/internal/http-server/handlers/booking/cancelBooking"
	editBookingHandler "bookingCalendar/internal/http-server/handlers/booking/editBooking"
	getClientBookingsHandler "bookingCalendar/internal/http-server/handlers/booking/getClientBookings"
	submitBookingHandler "bookingCalendar/internal/http-server/handlers/booking/submitBooking"
	getAvailabilityHandler "bookingCalendar/internal/http-server/handlers/calendar/getAvailability"
	getCalendarHandler "bookingCalendar/internal/http-server/handlers/calendar/getCalendar"
	getContactsHandler "bookingCalendar/internal/http-server/handlers/contact/getContacts"
	joinWaitlistHandler "bookingCalendar/internal/http-server/handlers/waitlist/joinWaitlist"
	"bookingCalendar/internal/http-server/middleware/mwlogger"
	"bookingCalendar/internal/ledger"
	"bookingCalendar/internal/lib/logger/handlers/slogpretty"
	"bookingCalendar/internal/lib/logger/sl"
	"bookingCalendar/internal/notify"
	"bookingCalendar/internal/storage"
	"bookingCalendar/internal/storage/jsonfile"
	"bookingCalendar/internal/storage/postgres"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("starting booking calendar", slog.String("env", cfg.Env))
	log.Debug("debug messages are enabled")

	var (
		store   storage.Store
		closeFn func() error
	)

	switch cfg.Storage.Driver {
	case "postgres":
		pg, err := postgres.InitDB(&cfg.Storage.Database, log)
		if err != nil {
			log.Error("failed to init storage", sl.Err(err))
			os.Exit(1)
		}
		store = pg
		closeFn = pg.Close
	case "jsonfile":
		fs, err := jsonfile.New(cfg.Storage.DataDir, log)
		if err != nil {
			log.Error("failed to init storage", sl.Err(err))
			os.Exit(1)
		}
		store = fs
	default:
		log.Error("unknown storage driver", slog.String("driver", cfg.Storage.Driver))
		os.Exit(1)
	}

	sink := notify.NewLogSink(log, cfg.Admin.Email, cfg.Admin.Phone)

	ldg := ledger.New(log, store, sink)

	if err := ldg.Load(context.Background()); err != nil {
		log.Error("failed to load ledger", sl.Err(err))
		os.Exit(1)
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	fs := http.FileServer(http.Dir("./static/"))
	router.Handle("/static/*", http.StripPrefix("/static/", fs))

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/static/index.html", http.StatusFound)
	})

	router.Post("/bookings", submitBookingHandler.New(log, ldg))
	router.Get("/bookings", getClientBookingsHandler.New(log, ldg))
	router.Put("/bookings/{id}", editBookingHandler.New(log, ldg))
	router.Post("/bookings/{id}/cancel", cancelBookingHandler.New(log, ldg))
	router.Post("/waitlist", joinWaitlistHandler.New(log, ldg))
	router.Get("/availability/{date}", getAvailabilityHandler.New(log, ldg))
	router.Get("/calendar", getCalendarHandler.New(log, ldg))
	router.Get("/contacts", getContactsHandler.New(log, ldg))

	router.Route("/admin", func(r chi.Router) {
		r.Post("/bookings/{id}/approve", approveBookingHandler.New(log, ldg))
		r.Post("/bookings/{id}/reject", rejectBookingHandler.New(log, ldg))
		r.Delete("/bookings/{id}", deleteBookingHandler.New(log, ldg))
		r.Get("/dashboard", getDashboardHandler.New(log, ldg))
		r.Get("/export", exportDataHandler.New(log, ldg))
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	if err := ldg.Save(shutdownCtx); err != nil {
		log.Error("failed to save ledger", sl.Err(err))
	}

	if closeFn != nil {
		if err := closeFn(); err != nil {
			log.Error("failed to close storage", sl.Err(err))
		}
	}

	log.Info("application stopped")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		// Unknown env falls back to the prod handler instead of a nil logger.
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
