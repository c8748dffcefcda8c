// Package read реализует HTTP-обработчик для получения конкретной пауты по ID.
//
// Handler извлекает ID из URL-параметров, вызывает бизнес-логику для чтения
// пауты по идентификатору и возвращает данные пауты в JSON-формате.
//
// В случае ошибок формирует соответствующие HTTP-ответы с описанием проблемы.
package read

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/matheusvidal/gestor-pautas/internal/http/middlewarectx"
	"github.com/matheusvidal/gestor-pautas/internal/http/response"
	"github.com/matheusvidal/gestor-pautas/internal/lib/sl"
	"github.com/matheusvidal/gestor-pautas/internal/models"
)

// Handler обрабатывает запросы на получение пауты по уникальному идентификатору.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики для получения пауты по ID
}

// Service описывает интерфейс бизнес-логики чтения пауты.
type Service interface {
	Read(ctx context.Context, userUID string, id int) (*models.Pauta, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить пауту по ID
// @Description Возвращает пауту текущего пользователя по её идентификатору.
// @Tags Pautas
// @Produce  json
// @Param id path int true "ID пауты"
// @Success 200 {object} map[string]any "Данные пауты"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при чтении пауты"
// @Router /pautas/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.pauta.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		render.JSON(w, r, response.Error("failed to decode id from url"))
		return
	}

	userUID, ok := r.Context().Value(middlewarectx.User).(string)
	if !ok || userUID == "" {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	res, err := h.service.Read(r.Context(), userUID, id)
	if err != nil {
		log.Error("failed to read pauta", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read pauta"))
		return
	}

	log.Info("success to read pauta", slog.Any("pauta", res))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"pauta": res,
	}))
}
