// Package feed реализует рассылку снимков набора паут подписчикам.
//
// Каждая успешная запись в хранилище приводит к публикации полного
// снимка набора: подписчик всегда получает авторитетное состояние
// целиком и заменяет им всё, что видел раньше. Отписка гарантирует,
// что после её возврата подписчику ничего не доставляется.
package feed

import (
	"context"
	"log/slog"
	"sync"

	"github.com/matheusvidal/gestor-pautas/internal/lib/sl"
	"github.com/matheusvidal/gestor-pautas/internal/models"
)

// Loader описывает источник полного снимка набора паут пользователя.
type Loader interface {
	ListPautas(ctx context.Context, userUID string) ([]*models.Pauta, error)
}

type subscriber struct {
	userUID string
	ch      chan []*models.Pauta
}

// Feed — внутрипроцессный рассыльщик снимков.
type Feed struct {
	loader Loader
	log    *slog.Logger

	mu     sync.Mutex
	subs   map[int]*subscriber
	nextID int
}

// New создаёт Feed поверх источника снимков.
func New(loader Loader, log *slog.Logger) *Feed {
	return &Feed{
		loader: loader,
		log:    log,
		subs:   make(map[int]*subscriber),
	}
}

// Subscribe подписывает на снимки набора указанного пользователя.
// Текущий снимок доставляется сразу, дальше — после каждой публикации.
// Возвращённая функция отписывает и закрывает канал; вызывать её можно
// ровно один раз, после возврата доставка прекращается.
func (f *Feed) Subscribe(ctx context.Context, userUID string) (<-chan []*models.Pauta, func(), error) {
	const op = "feed.Subscribe"

	snapshot, err := f.loader.ListPautas(ctx, userUID)
	if err != nil {
		return nil, nil, err
	}

	// Буфер на один снимок: при отставании подписчика старый снимок
	// вытесняется, доставляется всегда самый свежий.
	sub := &subscriber{
		userUID: userUID,
		ch:      make(chan []*models.Pauta, 1),
	}
	sub.ch <- snapshot

	f.mu.Lock()
	id := f.nextID
	f.nextID++
	f.subs[id] = sub
	f.mu.Unlock()

	unsubscribe := func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if _, ok := f.subs[id]; !ok {
			return
		}
		delete(f.subs, id)
		close(sub.ch)
	}

	f.log.Debug("snapshot subscription opened", slog.String("op", op), slog.String("user_uid", userUID))
	return sub.ch, unsubscribe, nil
}

// Publish загружает свежий снимок набора пользователя и доставляет его
// всем его подписчикам. Вызывается после каждой успешной записи.
func (f *Feed) Publish(ctx context.Context, userUID string) error {
	const op = "feed.Publish"

	snapshot, err := f.loader.ListPautas(ctx, userUID)
	if err != nil {
		f.log.Error("failed to load snapshot", slog.String("op", op), sl.Err(err))
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for _, sub := range f.subs {
		if sub.userUID != userUID {
			continue
		}
		select {
		case sub.ch <- snapshot:
		default:
			// Подписчик не успел прочитать предыдущий снимок —
			// вытесняем его свежим.
			select {
			case <-sub.ch:
			default:
			}
			select {
			case sub.ch <- snapshot:
			default:
			}
		}
	}
	return nil
}
