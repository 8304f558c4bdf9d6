package list_trainings

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/gymsys/GMS-ScheduleService/internal/domain"
	"github.com/gymsys/GMS-ScheduleService/internal/service/trainings/models"
)

// parseQuery разбирает query-параметры списка тренировок.
// Параметры необязательные: пустой запрос возвращает все видимые
// пользователю тренировки.
func parseQuery(query url.Values, actor domain.Actor) (*models.ListTrainingsRequest, error) {
	req := &models.ListTrainingsRequest{
		Actor:  actor,
		Search: query.Get("buscar"),
	}

	if raw := query.Get("fecha_inicio"); raw != "" {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, fmt.Errorf("parse fecha_inicio: %w", err)
		}
		req.StartDate = &date
	}

	if raw := query.Get("fecha_fin"); raw != "" {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, fmt.Errorf("parse fecha_fin: %w", err)
		}
		req.EndDate = &date
	}

	if raw := query.Get("id_entrenador"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse id_entrenador: %w", err)
		}
		req.TrainerID = &id
	}

	if raw := query.Get("id_cliente"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse id_cliente: %w", err)
		}
		req.ClientID = &id
	}

	if raw := query.Get("estado"); raw != "" {
		req.Status = &raw
	}

	if raw := query.Get("incluir_inactivas"); raw != "" {
		include, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("parse incluir_inactivas: %w", err)
		}
		req.IncludeInactive = include
	}

	return req, nil
}
