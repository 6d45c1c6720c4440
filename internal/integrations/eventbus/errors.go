package eventbus

import "errors"

var (
	// ErrConnect возвращается, когда не удалось подключиться к брокеру
	ErrConnect = errors.New("eventbus client: failed to connect")

	// ErrMarshal возвращается при ошибке сериализации события
	ErrMarshal = errors.New("eventbus client: failed to marshal event")

	// ErrPublish возвращается, когда брокер не принял сообщение
	ErrPublish = errors.New("eventbus client: failed to publish event")
)
