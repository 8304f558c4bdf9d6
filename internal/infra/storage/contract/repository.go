package contract

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

// Переиспользуем интерфейс исполнителя запросов из dbmetrics
type DBExecutor = dbmetrics.DBExecutor

var contractColumns = []string{
	"c.id",
	"c.client_id",
	"c.membership_id",
	"c.start_date",
	"c.end_date",
	"c.status",
	"c.price",
	"m.name",
	"m.monthly_price",
	"m.allows_group",
	"m.allows_personal",
	"c.created_at",
	"c.updated_at",
}

// Repository репозиторий для работы с контрактами клиентов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория контрактов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByClientID получает все контракты клиента (включая завершённые),
// отсортированные по дате окончания по убыванию
func (r *Repository) GetByClientID(ctx context.Context, clientID int64) ([]*domain.Contract, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(contractColumns...).
		From("contracts c").
		Join("memberships m ON m.id = c.membership_id").
		Where(squirrel.Eq{"c.client_id": clientID}).
		OrderBy("c.end_date DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByClientID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByClientID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanContracts(rows)
}

// GetActiveByClientID получает контракты клиента, дающие право на запись:
// статус "activo" И дата окончания не раньше сегодняшнего дня.
// Статусу в базе не доверяем в одиночку — биллинг обновляет его лениво.
func (r *Repository) GetActiveByClientID(ctx context.Context, clientID int64, now time.Time) ([]*domain.Contract, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	query, args, err := psqlbuilder.Select(contractColumns...).
		From("contracts c").
		Join("memberships m ON m.id = c.membership_id").
		Where(squirrel.Eq{"c.client_id": clientID}).
		Where(squirrel.Eq{"c.status": domain.ContractActive}).
		Where(squirrel.GtOrEq{"c.end_date": today}).
		OrderBy("c.end_date DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByClientID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByClientID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanContracts(rows)
}

// scanContracts сканирует результаты запроса в слайс контрактов
func scanContracts(rows *sql.Rows) ([]*domain.Contract, error) {
	contracts := make([]*domain.Contract, 0)

	for rows.Next() {
		var c domain.Contract
		var m domain.Membership
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&c.ID,
			&c.ClientID,
			&c.MembershipID,
			&c.StartDate,
			&c.EndDate,
			&c.Status,
			&c.Price,
			&m.Name,
			&m.MonthlyPrice,
			&m.AllowsGroup,
			&m.AllowsPersonal,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanContracts - scan row: %v", ErrScanRow, err)
		}

		m.ID = c.MembershipID
		c.Membership = &m
		c.CreatedAt = createdAt.Time
		c.UpdatedAt = updatedAt.Time

		contracts = append(contracts, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanContracts - rows error: %v", ErrScanRow, err)
	}

	return contracts, nil
}
