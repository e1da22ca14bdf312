package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given Param is not valid")
	// ErrUnauthorized will throw if the acting user could not be resolved
	ErrUnauthorized = errors.New("user not authenticated")

	// ErrCacheMiss means the dedup key has not been loaded into the cache yet
	ErrCacheMiss = errors.New("cache miss")
	// ErrCacheUnavailable wraps any failure talking to the dedup cache
	ErrCacheUnavailable = errors.New("dedup cache unavailable")
	// ErrEventPublish means the interaction event could not be handed to the transport
	ErrEventPublish = errors.New("failed to publish interaction event")

	// ErrUnknownKind is returned when decoding an event with an unsupported kind
	ErrUnknownKind = errors.New("unknown interaction kind")
	// ErrUnknownAction is returned when decoding an event with an unsupported action
	ErrUnknownAction = errors.New("unknown interaction action")
)
