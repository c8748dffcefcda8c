// Package create реализует HTTP-обработчик для создания новых паут.
//
// Handler принимает JSON-запрос с данными пауты, валидирует их, извлекает UID
// пользователя из контекста, вызывает бизнес-логику создания через сервис и
// возвращает ID созданной записи в JSON-формате.
//
// В случае ошибок формируются соответствующие HTTP-ответы с описанием проблемы.
package create

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

// Handler управляет HTTP-запросами на создание новых паут.
//
// Использует логгер для записи операций и ошибок,
// сервис бизнес-логики для создания пауты,
// а также валидатор для проверки структуры входных данных.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики для создания паут
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики создания пауты.
type Service interface {
	Create(ctx context.Context, userUID string, req models.DummyPauta) (int, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Создать новую пауту
// @Description Создает новую пауту для текущего пользователя. Прогнозная дата оплаты вычисляется по дате работы. Возвращает ID созданной записи.
// @Tags Pautas
// @Accept  json
// @Produce  json
// @Param request body models.DummyPauta true "Данные новой пауты"
// @Success 200 {object} map[string]any "Успешное создание пауты"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при создании пауты"
// @Router /pautas [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.pauta.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyPauta
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
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

	id, err := h.service.Create(r.Context(), userUID, req)
	if err != nil {
		log.Error("failed to create pauta", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create pauta"))
		return
	}

	log.Info("success to create pauta", slog.Any("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"last_added_id": id,
	}))
}
