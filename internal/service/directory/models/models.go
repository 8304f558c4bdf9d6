package models

import (
	"github.com/gymsys/GMS-ScheduleService/internal/domain"
	"github.com/gymsys/GMS-ScheduleService/internal/integrations/staffservice"
)

// TrainerOption элемент выпадающего списка тренеров
type TrainerOption struct {
	ID        int64  `json:"id"`
	FirstName string `json:"nombre"`
	LastName  string `json:"apellido"`
	Specialty string `json:"especialidad"`
}

// TrainerListResponse ответ со списком активных тренеров.
// Degraded = true, когда список получен из резервного ростера.
type TrainerListResponse struct {
	Trainers []TrainerOption `json:"entrenadores"`
	Degraded bool            `json:"degradado"`
}

// ClientOption элемент выпадающего списка клиентов
type ClientOption struct {
	ID       int64  `json:"id"`
	Name     string `json:"nombre"`
	Document string `json:"documento"`
}

// ClientListResponse ответ со списком активных клиентов
type ClientListResponse struct {
	Clients []ClientOption `json:"clientes"`
}

// FromStaffTrainers конвертирует тренеров справочника персонала в DTO
func FromStaffTrainers(trainers []staffservice.Trainer, degraded bool) *TrainerListResponse {
	options := make([]TrainerOption, 0, len(trainers))
	for _, t := range trainers {
		options = append(options, TrainerOption{
			ID:        t.ID,
			FirstName: t.FirstName,
			LastName:  t.LastName,
			Specialty: t.Specialty,
		})
	}
	return &TrainerListResponse{Trainers: options, Degraded: degraded}
}

// FromDomainClients конвертирует доменных клиентов в DTO
func FromDomainClients(clients []*domain.Client) *ClientListResponse {
	options := make([]ClientOption, 0, len(clients))
	for _, c := range clients {
		options = append(options, ClientOption{
			ID:       c.ID,
			Name:     c.Name,
			Document: c.Document,
		})
	}
	return &ClientListResponse{Clients: options}
}
