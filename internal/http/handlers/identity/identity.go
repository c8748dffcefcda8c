// Package identity реализует HTTP-обработчик открытия анонимной сессии.
//
// Пустое тело запроса создаёт новую учётную запись и возвращает UID,
// токен и одноразовый ключ восстановления. Запрос с UID и ключом
// восстановления возобновляет существующую учётную запись.
package identity

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/matheusvidal/gestor-pautas/internal/http/response"
	"github.com/matheusvidal/gestor-pautas/internal/lib/sl"
	"github.com/matheusvidal/gestor-pautas/internal/models"
	identitysvc "github.com/matheusvidal/gestor-pautas/internal/services/identity"
)

// Handler управляет HTTP-запросами на открытие сессии.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики анонимных сессий
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики анонимных сессий.
type Service interface {
	Ensure(ctx context.Context, req models.DummyIdentity) (*models.Identity, error)
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
// @Summary Открыть анонимную сессию
// @Description Пустое тело создаёт новую учётную запись и возвращает UID, токен и одноразовый ключ восстановления. Тело с UID и ключом восстановления возобновляет существующую запись.
// @Tags Identity
// @Accept  json
// @Produce  json
// @Param request body models.DummyIdentity false "UID и ключ восстановления существующей записи"
// @Success 200 {object} map[string]any "Данные сессии"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Неверный ключ восстановления"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при открытии сессии"
// @Router /identity [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.identity"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	// Тело опционально: пустой запрос означает новую учётную запись.
	var req models.DummyIdentity
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	identity, err := h.service.Ensure(r.Context(), req)
	if err != nil {
		if errors.Is(err, identitysvc.ErrInvalidRecoveryKey) {
			log.Error("invalid recovery key")
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, response.Error("invalid recovery key"))
			return
		}
		log.Error("failed to ensure identity", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not open session"))
		return
	}

	log.Info("session opened", slog.String("user_uid", identity.UserUID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"identity": identity,
	}))
}
