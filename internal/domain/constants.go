package domain

// Time format constants
const (
	TimeFormat       = "15:04"      // HH:MM
	DateFormat       = "2006-01-02" // YYYY-MM-DD wire dates
	SearchDateFormat = "02/01/2006" // dd/MM/yyyy, the format the search box matches against
)

// Business validation constants
const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 1000
	MaxNotesLength       = 500
	MinSessionMinutes    = 15
	MaxSessionMinutes    = 480 // 8 hours
	MaxGroupSpots        = 50
)

// DefaultSessionTitle is used when the client booking path does not
// provide a title of its own.
const DefaultSessionTitle = "Sesión de entrenamiento"

// InactiveTrainingStatuses список статусов, которые не занимают слот.
// Используется при подсчёте доступности.
var InactiveTrainingStatuses = []TrainingStatus{
	StatusCompleted,
	StatusCancelled,
}

// ActiveTrainingStatuses список статусов, которые занимают слот.
var ActiveTrainingStatuses = []TrainingStatus{
	StatusScheduled,
	StatusInProgress,
}
