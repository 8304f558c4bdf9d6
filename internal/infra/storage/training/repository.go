package training

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/gymsys/GMS-ScheduleService/internal/domain"
	"github.com/gymsys/GMS-ScheduleService/pkg/dbmetrics"
	"github.com/gymsys/GMS-ScheduleService/pkg/psqlbuilder"
)

var trainingColumns = []string{
	"id",
	"title",
	"description",
	"start_time",
	"end_time",
	"status",
	"client_id",
	"trainer_id",
	"max_spots",
	"occupied_spots",
	"client_name",
	"client_document",
	"trainer_name",
	"trainer_last_name",
	"notes",
	"idempotency_key",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с тренировками
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория тренировок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую тренировку
// Если в контексте передана активная транзакция (через context.Value), использует её.
// Транзакция нужна при создании с проверкой доступности слота,
// чтобы исключить гонку между параллельными бронированиями.
func (r *Repository) Create(ctx context.Context, t *domain.Training) (*domain.Training, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("trainings").
		Columns(
			"title",
			"description",
			"start_time",
			"end_time",
			"status",
			"client_id",
			"trainer_id",
			"max_spots",
			"occupied_spots",
			"client_name",
			"client_document",
			"trainer_name",
			"trainer_last_name",
			"notes",
			"idempotency_key",
		).
		Values(
			t.Title,
			t.Description,
			t.StartTime,
			t.EndTime,
			t.Status,
			t.ClientID,
			t.TrainerID,
			t.MaxSpots,
			t.OccupiedSpots,
			t.ClientName,
			t.ClientDocument,
			t.TrainerName,
			t.TrainerLastName,
			t.Notes,
			t.IdempotencyKey,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&t.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time

	return t, nil
}

// GetByID получает тренировку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Training, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(trainingColumns...).
		From("trainings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	training, err := scanTraining(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrTrainingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan training: %v", ErrScanRow, err)
	}

	return training, nil
}

// GetByIdempotencyKey получает тренировку по ключу идемпотентности.
// Используется клиентским бронированием для защиты от повторной отправки.
func (r *Repository) GetByIdempotencyKey(ctx context.Context, key string) (*domain.Training, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(trainingColumns...).
		From("trainings").
		Where(squirrel.Eq{"idempotency_key": key}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByIdempotencyKey - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	training, err := scanTraining(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrTrainingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIdempotencyKey - scan training: %v", ErrScanRow, err)
	}

	return training, nil
}

// GetByRange получает тренировки с гибкой фильтрацией
// Поддерживает фильтрацию по:
// - Периоду (StartDate, EndDate) - опционально, по дате начала тренировки
// - Тренеру (TrainerID) - опционально
// - Клиенту (ClientID) - опционально
// - Статусу (Status) - опционально
// - Включению неактивных тренировок (IncludeInactive)
//
// Результат всегда отсортирован по start_time ASC — это порядок,
// который наследуют поиск и проекции расписания.
func (r *Repository) GetByRange(ctx context.Context, filter domain.TrainingsFilter) ([]*domain.Training, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(trainingColumns...).
		From("trainings")

	// Фильтрация по периоду (включительно, по дате начала)
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"start_time": startOfDay(*filter.StartDate)})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"start_time": startOfDay(*filter.EndDate).AddDate(0, 0, 1)})
	}

	if filter.TrainerID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"trainer_id": *filter.TrainerID})
	}
	if filter.ClientID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"client_id": *filter.ClientID})
	}

	// Фильтрация по статусу
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		// Если не указан конкретный статус и не нужны неактивные - исключаем их
		inactiveStatusStrings := make([]string, len(domain.InactiveTrainingStatuses))
		for i, s := range domain.InactiveTrainingStatuses {
			inactiveStatusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactiveStatusStrings})
	}

	selectBuilder = selectBuilder.OrderBy("start_time ASC, id ASC")

	// Если используется транзакция и выборка сужена до одного тренера на
	// один день (usecase бронирования), блокируем строки до создания
	if dbmetrics.IsInTransaction(ctx) && filter.TrainerID != nil &&
		filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.Equal(*filter.EndDate) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanTrainings(rows)
}

// Update обновляет изменяемые поля тренировки целиком.
// Частичные обновления собирает сервисный слой, объединяя текущую
// запись с полями запроса.
func (r *Repository) Update(ctx context.Context, id int64, t *domain.Training) (*domain.Training, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("trainings").
		Set("title", t.Title).
		Set("description", t.Description).
		Set("start_time", t.StartTime).
		Set("end_time", t.EndTime).
		Set("status", t.Status).
		Set("client_id", t.ClientID).
		Set("trainer_id", t.TrainerID).
		Set("max_spots", t.MaxSpots).
		Set("occupied_spots", t.OccupiedSpots).
		Set("client_name", t.ClientName).
		Set("client_document", t.ClientDocument).
		Set("trainer_name", t.TrainerName).
		Set("trainer_last_name", t.TrainerLastName).
		Set("notes", t.Notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrTrainingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	t.ID = id
	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time

	return t, nil
}

// UpdateStatus обновляет статус тренировки
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.TrainingStatus) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("trainings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTrainingNotFound
	}

	return nil
}

// Delete удаляет тренировку (физическое удаление, без soft-delete)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("trainings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTrainingNotFound
	}

	return nil
}

// scanTraining сканирует одну строку в тренировку
func scanTraining(scan func(dest ...interface{}) error) (*domain.Training, error) {
	var t domain.Training
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&t.ID,
		&t.Title,
		&t.Description,
		&t.StartTime,
		&t.EndTime,
		&t.Status,
		&t.ClientID,
		&t.TrainerID,
		&t.MaxSpots,
		&t.OccupiedSpots,
		&t.ClientName,
		&t.ClientDocument,
		&t.TrainerName,
		&t.TrainerLastName,
		&t.Notes,
		&t.IdempotencyKey,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time

	return &t, nil
}

// scanTrainings сканирует результаты запроса в слайс тренировок
func scanTrainings(rows *sql.Rows) ([]*domain.Training, error) {
	trainings := make([]*domain.Training, 0)

	for rows.Next() {
		t, err := scanTraining(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: scanTrainings - scan row: %v", ErrScanRow, err)
		}
		trainings = append(trainings, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanTrainings - rows error: %v", ErrScanRow, err)
	}

	return trainings, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
