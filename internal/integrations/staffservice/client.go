package staffservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы со справочником персонала
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента справочника персонала
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetActiveTrainers получает список активных тренеров.
// Одна попытка, без ретраев — вызывающая сторона решает, деградировать
// или вернуть ошибку.
func (c *Client) GetActiveTrainers(ctx context.Context) ([]Trainer, error) {
	url := fmt.Sprintf("%s/internal/trainers?activo=true", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var trainers []Trainer
	if err := json.NewDecoder(resp.Body).Decode(&trainers); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return trainers, nil
}

// GetTrainer получает тренера по ID
func (c *Client) GetTrainer(ctx context.Context, trainerID int64) (*Trainer, error) {
	url := fmt.Sprintf("%s/internal/trainers/%d", c.baseURL, trainerID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrTrainerNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var trainer Trainer
	if err := json.NewDecoder(resp.Body).Decode(&trainer); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &trainer, nil
}

// GetActiveTrainersWithGracefulDegradation получает активных тренеров с
// graceful degradation: при недоступности справочника возвращает резервный
// список, чтобы формы записи оставались рабочими, и degraded=true в качестве
// сигнала вызывающей стороне.
func (c *Client) GetActiveTrainersWithGracefulDegradation(ctx context.Context) ([]Trainer, bool) {
	trainers, err := c.GetActiveTrainers(ctx)
	if err != nil {
		c.log.Error("StaffService unavailable, falling back to seed roster: %v", err)
		return fallbackRoster(), true
	}

	c.log.Info("Successfully fetched %d active trainers", len(trainers))
	return trainers, false
}

// fallbackRoster is the seed roster used when the staff directory is
// unreachable. Kept behind the gateway so nothing downstream depends on
// fixture data directly.
func fallbackRoster() []Trainer {
	return []Trainer{
		{ID: 1, FirstName: "Ana", LastName: "Gómez", Specialty: "Yoga", Active: true},
		{ID: 2, FirstName: "Carlos", LastName: "Ruiz", Specialty: "Pilates", Active: true},
		{ID: 3, FirstName: "Lucía", LastName: "Fernández", Specialty: "Funcional", Active: true},
	}
}
