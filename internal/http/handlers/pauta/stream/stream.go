// Package stream реализует HTTP-обработчик подписки на снимки набора паут.
//
// Обработчик держит соединение открытым и отдаёт снимки в формате
// Server-Sent Events: первым событием приходит текущее состояние набора,
// дальше полный снимок после каждой успешной записи. Клиент заменяет
// своё состояние каждым полученным событием целиком.
package stream

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/matheusvidal/gestor-pautas/internal/http/middlewarectx"
	"github.com/matheusvidal/gestor-pautas/internal/http/response"
	"github.com/matheusvidal/gestor-pautas/internal/lib/sl"
	"github.com/matheusvidal/gestor-pautas/internal/models"
)

// Subscriber открывает подписку на снимки набора пользователя.
type Subscriber interface {
	Subscribe(ctx context.Context, userUID string) (<-chan []*models.Pauta, func(), error)
}

// Handler отдаёт поток снимков набора паут по SSE.
type Handler struct {
	log  *slog.Logger
	feed Subscriber
}

// New создает новый Handler с переданными логгером и источником снимков.
func New(log *slog.Logger, feed Subscriber) *Handler {
	return &Handler{
		log:  log,
		feed: feed,
	}
}

// ServeHTTP godoc
// @Summary Поток снимков набора паут
// @Description Открывает SSE-поток: первое событие содержит текущий снимок набора, дальше полный снимок после каждой записи.
// @Tags Pautas
// @Produce  text/event-stream
// @Success 200 {string} string "Поток событий snapshot"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка открытия подписки"
// @Router /pautas/stream [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.pauta.stream"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userUID, ok := r.Context().Value(middlewarectx.User).(string)
	if !ok || userUID == "" {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		log.Error("response writer does not support flushing")
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("streaming unsupported"))
		return
	}

	snapshots, unsubscribe, err := h.feed.Subscribe(r.Context(), userUID)
	if err != nil {
		log.Error("failed to open subscription", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not open snapshot stream"))
		return
	}
	defer unsubscribe()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	log.Info("snapshot stream opened", slog.String("user_uid", userUID))

	for {
		select {
		case snapshot, open := <-snapshots:
			if !open {
				return
			}
			data, err := json.Marshal(snapshot)
			if err != nil {
				log.Error("failed to marshal snapshot", sl.Err(err))
				continue
			}
			if _, err := w.Write([]byte("event: snapshot\ndata: " + string(data) + "\n\n")); err != nil {
				log.Error("failed to write snapshot event", sl.Err(err))
				return
			}
			flusher.Flush()
		case <-r.Context().Done():
			log.Info("snapshot stream closed by client", slog.String("user_uid", userUID))
			return
		}
	}
}
