package get_client_slots

import "errors"

var (
	// ErrNoActiveContract возвращается, когда у клиента нет действующего контракта
	ErrNoActiveContract = errors.New("client has no active contract")

	// ErrTrainerNotFound возвращается, когда запрошенный тренер не найден
	ErrTrainerNotFound = errors.New("trainer not found")

	// ErrTrainerInactive возвращается, когда запрошенный тренер неактивен
	ErrTrainerInactive = errors.New("trainer is not active")

	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
