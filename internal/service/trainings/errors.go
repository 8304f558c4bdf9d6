package trainings

import "errors"

var (
	// ErrTrainingNotFound возвращается, когда тренировка не найдена
	ErrTrainingNotFound = errors.New("training not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidStatusTransition возвращается при недопустимом переходе статуса
	ErrInvalidStatusTransition = errors.New("invalid status transition")

	// ErrTrainingNotEditable возвращается при попытке изменить завершённую
	// или отменённую тренировку
	ErrTrainingNotEditable = errors.New("training can no longer be edited")

	// ErrInvalidTimeRange возвращается при некорректном временном диапазоне
	ErrInvalidTimeRange = errors.New("invalid time range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
