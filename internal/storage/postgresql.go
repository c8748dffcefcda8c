// Package storage реализует хранилище данных на основе PostgreSQL
// для управления паутами и анонимными пользователями. Предоставляет методы
// создания, чтения, обновления и удаления записей, а также выборку
// полного снимка набора паут пользователя.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/matheusvidal/gestor-pautas/internal/models"
)

// Storage инкапсулирует соединение с базой данных PostgreSQL
// и реализует методы работы с паутами и пользователями.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// CheckDatabaseReady проверяет готовность базы данных.
func CheckDatabaseReady(storage *Storage) error {
	var exists bool
	err := storage.DB.QueryRow(`SELECT EXISTS (
        SELECT FROM information_schema.tables
        WHERE table_name = 'pautas'
    )`).Scan(&exists)
	if err != nil || !exists {
		return fmt.Errorf("required table pautas missing or query error: %w", err)
	}
	return nil
}

// ===== PAUTA METHODS =====

// CreatePauta вставляет новую пауту и возвращает её ID.
func (s *Storage) CreatePauta(ctx context.Context, p models.Pauta) (int, error) {
	const op = "storage.CreatePauta"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO pautas (user_uid, title, station, solicitante, date,
			      value, status, projected_payment_date)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING id`
	var newID int
	err := s.DB.QueryRowContext(ctx, query,
		p.UserUID, p.Title, p.Station, p.Solicitante, p.Date,
		p.Value, p.Status, p.ProjectedPaymentDate).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// UpdatePauta полностью заменяет пауту по ID в пределах набора пользователя
// и возвращает количество изменённых строк.
func (s *Storage) UpdatePauta(ctx context.Context, p models.Pauta, id int, userUID string) (int, error) {
	const op = "storage.UpdatePauta"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE pautas
			  SET title = $1, station = $2, solicitante = $3, date = $4,
			      value = $5, status = $6, projected_payment_date = $7
			  WHERE id = $8 AND user_uid = $9`
	result, err := s.DB.ExecContext(ctx, query,
		p.Title, p.Station, p.Solicitante, p.Date,
		p.Value, p.Status, p.ProjectedPaymentDate, id, userUID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// RemovePauta удаляет пауту по ID в пределах набора пользователя
// и возвращает количество удалённых строк.
func (s *Storage) RemovePauta(ctx context.Context, id int, userUID string) (int, error) {
	const op = "storage.RemovePauta"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM pautas WHERE id = $1 AND user_uid = $2`
	result, err := s.DB.ExecContext(ctx, query, id, userUID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// ReadPauta возвращает пауту по ID в пределах набора пользователя.
func (s *Storage) ReadPauta(ctx context.Context, id int, userUID string) (*models.Pauta, error) {
	const op = "storage.ReadPauta"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_uid, title, station, solicitante, date,
			      value, status, projected_payment_date
			  FROM pautas WHERE id = $1 AND user_uid = $2`
	row := s.DB.QueryRowContext(ctx, query, id, userUID)

	var result models.Pauta
	if err := row.Scan(&result.ID, &result.UserUID, &result.Title, &result.Station,
		&result.Solicitante, &result.Date, &result.Value, &result.Status,
		&result.ProjectedPaymentDate); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// ListPautas возвращает полный снимок набора паут пользователя,
// упорядоченный по дате работы по убыванию. Снимок авторитетен целиком:
// подписчики заменяют им всё предыдущее состояние.
func (s *Storage) ListPautas(ctx context.Context, userUID string) ([]*models.Pauta, error) {
	const op = "storage.ListPautas"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_uid, title, station, solicitante, date,
			      value, status, projected_payment_date
			  FROM pautas
			  WHERE user_uid = $1
			  ORDER BY date DESC, id`
	rows, err := s.DB.QueryContext(ctx, query, userUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Pauta
	for rows.Next() {
		var item models.Pauta
		if err := rows.Scan(&item.ID, &item.UserUID, &item.Title, &item.Station,
			&item.Solicitante, &item.Date, &item.Value, &item.Status,
			&item.ProjectedPaymentDate); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// FindPautasDueToday находит неоплаченные пауты, у которых прогноз
// оплаты наступает сегодня. Используется планировщиком напоминаний.
func (s *Storage) FindPautasDueToday(ctx context.Context) ([]*models.Pauta, error) {
	const op = "storage.FindPautasDueToday"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_uid, title, station, solicitante, date,
			      value, status, projected_payment_date
			  FROM pautas
			  WHERE projected_payment_date = CURRENT_DATE
			    AND status = 'Pendente'`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Pauta
	for rows.Next() {
		var item models.Pauta
		if err := rows.Scan(&item.ID, &item.UserUID, &item.Title, &item.Station,
			&item.Solicitante, &item.Date, &item.Value, &item.Status,
			&item.ProjectedPaymentDate); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ===== USER METHODS =====

// CreateUser сохраняет новую анонимную учётную запись.
func (s *Storage) CreateUser(ctx context.Context, user models.User) error {
	const op = "storage.CreateUser"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO users (uid, recovery_key_hash)
			  VALUES ($1, $2)`
	if _, err := s.DB.ExecContext(ctx, query, user.UID, user.RecoveryKeyHash); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// GetUser возвращает пользователя по его UID.
func (s *Storage) GetUser(ctx context.Context, userUID string) (*models.User, error) {
	const op = "storage.GetUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, recovery_key_hash, created_at
			  FROM users
			  WHERE uid = $1`
	u := &models.User{}
	row := s.DB.QueryRowContext(ctx, query, userUID)
	if err := row.Scan(&u.UID, &u.RecoveryKeyHash, &u.CreatedAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}
