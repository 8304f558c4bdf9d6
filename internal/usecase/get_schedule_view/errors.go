package get_schedule_view

import "errors"

var (
	// ErrInvalidView возвращается при неизвестном типе представления
	ErrInvalidView = errors.New("invalid view type")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
