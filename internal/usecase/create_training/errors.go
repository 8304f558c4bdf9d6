package create_training

import "errors"

var (
	// ErrAccessDenied возвращается, когда роль не может создавать тренировки
	ErrAccessDenied = errors.New("access denied")

	// ErrNoActiveContract возвращается, когда у клиента нет действующего контракта
	ErrNoActiveContract = errors.New("client has no active contract")

	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("client not found")

	// ErrTrainerNotFound возвращается, когда тренер не найден
	ErrTrainerNotFound = errors.New("trainer not found")

	// ErrTrainerInactive возвращается, когда тренер неактивен
	ErrTrainerInactive = errors.New("trainer is not active")

	// ErrSlotNotAvailable возвращается, когда у тренера нет свободных мест на интервал
	ErrSlotNotAvailable = errors.New("slot is not available")

	// ErrOutsideGymHours возвращается, когда интервал выходит за часы работы зала
	ErrOutsideGymHours = errors.New("training is outside gym working hours")

	// ErrInvalidTimeRange возвращается при некорректном временном интервале
	ErrInvalidTimeRange = errors.New("invalid time range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
