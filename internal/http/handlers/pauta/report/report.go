// Package report реализует HTTP-обработчик построения отчёта по паутам.
//
// Handler принимает JSON-запрос с фильтром, валидирует его, извлекает UID
// пользователя из контекста, вызывает бизнес-логику построения отчёта через
// сервис и возвращает результат в JSON-формате.
//
// В случае ошибок формируются соответствующие HTTP-ответы с описанием проблемы.
package report

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/matheusvidal/gestor-pautas/internal/http/middlewarectx"
	"github.com/matheusvidal/gestor-pautas/internal/http/response"
	"github.com/matheusvidal/gestor-pautas/internal/lib/sl"
	"github.com/matheusvidal/gestor-pautas/internal/models"
)

// Handler управляет HTTP-запросами на построение отчётов.
//
// Использует логгер для журналирования, сервис для бизнес-логики и валидатор
// для проверки структуры запроса.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики построения отчётов
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики построения отчёта с фильтром.
type Service interface {
	Build(ctx context.Context, userUID string, req models.DummyFilter) (*models.Report, error)
}

// New создаёт новый Handler с переданным логгером и сервисом отчётов.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Построить отчёт по паутам
// @Description Строит отчёт по набору паут текущего пользователя: общая сумма, суммы по телеканалам и по квинзенам с прогнозом оплаты. Все критерии фильтра опциональны и объединяются по И.
// @Tags Reports
// @Accept  json
// @Produce  json
// @Param request body models.DummyFilter true "Критерии фильтра"
// @Success 200 {object} map[string]any "Отчёт"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или фильтр"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при построении отчёта"
// @Router /pautas/report [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.pauta.report"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyFilter
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	userUID, ok := r.Context().Value(middlewarectx.User).(string)
	if !ok || userUID == "" {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	rep, err := h.service.Build(r.Context(), userUID, req)
	if err != nil {
		log.Error("failed to build report", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not build report"))
		return
	}

	log.Info("success to build report", slog.Any("total", rep.Total))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"report": rep,
	}))
}
