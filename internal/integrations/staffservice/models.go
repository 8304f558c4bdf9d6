package staffservice

// Trainer модель тренера из справочника персонала
type Trainer struct {
	ID        int64  `json:"id"`
	FirstName string `json:"nombre"`
	LastName  string `json:"apellido"`
	Specialty string `json:"especialidad"`
	Active    bool   `json:"activo"`
}

// FullName returns "FirstName LastName" for display and denormalization.
func (t *Trainer) FullName() string {
	if t.LastName == "" {
		return t.FirstName
	}
	return t.FirstName + " " + t.LastName
}

// ErrorResponse модель ошибки от справочника персонала
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
