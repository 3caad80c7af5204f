// Package actor извлекает действующее лицо запроса из заголовков.
//
// Аутентификация выполняется на API-шлюзе, сюда приходят уже
// проверенные заголовки X-Actor-Id и X-Actor-Admin.
package actor

import (
	"errors"
	"net/http"
	"strconv"

	"parcelmatch/internal/entities"
)

const (
	headerActorID    = "X-Actor-Id"
	headerActorAdmin = "X-Actor-Admin"
)

var ErrMissingActor = errors.New("actor id header is missing or invalid")

func FromRequest(r *http.Request) (entities.Actor, error) {
	idStr := r.Header.Get(headerActorID)
	if idStr == "" {
		return entities.Actor{}, ErrMissingActor
	}

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return entities.Actor{}, ErrMissingActor
	}

	admin, _ := strconv.ParseBool(r.Header.Get(headerActorAdmin))

	return entities.Actor{
		ID:    id,
		Admin: admin,
	}, nil
}
