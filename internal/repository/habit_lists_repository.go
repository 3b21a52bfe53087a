package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	errorvalues "github.com/limbo/levelup/internal/error_values"
	"github.com/limbo/levelup/pkg/entity"
)

const (
	habitListColumns = `id, name, list_owner_id, completed_habits, created_at, updated_at`
	itemColumns      = `id, habit_list_id, preset_habit_id, custom_habit_id, habit_is_completed, is_late, created_at, updated_at`
)

type HabitListsRepository struct {
	conn PgConnection
}

func NewHabitListsRepo(conn PgConnection) *HabitListsRepository {
	return &HabitListsRepository{
		conn: conn,
	}
}

func scanHabitList(row rowScanner) (*entity.HabitList, error) {
	var l entity.HabitList
	if err := row.Scan(&l.ID, &l.Name, &l.ListOwnerID, &l.CompletedHabits, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return nil, err
	}
	return &l, nil
}

func scanItem(row rowScanner) (*entity.HabitListItem, error) {
	var i entity.HabitListItem
	err := row.Scan(&i.ID, &i.HabitListID, &i.PresetHabitID, &i.CustomHabitID, &i.HabitIsCompleted, &i.IsLate, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// habitColumn maps a habit kind to the item column referencing it.
func habitColumn(kind entity.HabitKind) (string, error) {
	switch kind {
	case entity.HabitKindPreset:
		return "preset_habit_id", nil
	case entity.HabitKindCustom:
		return "custom_habit_id", nil
	}
	return "", fmt.Errorf("unknown habit kind %q", kind)
}

func (hr *HabitListsRepository) Create(ctx context.Context, list *entity.HabitList) error {
	if list == nil {
		return errors.New("habit list is nil")
	}
	row := hr.conn.QueryRow(ctx, `INSERT INTO habit_lists (name, list_owner_id) VALUES ($1, $2)
		RETURNING id, completed_habits, created_at, updated_at;`, list.Name, list.ListOwnerID)
	if err := row.Scan(&list.ID, &list.CompletedHabits, &list.CreatedAt, &list.UpdatedAt); err != nil {
		if pgErrCode(err) == pgForeignKeyViolation {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("creating habit list error: " + err.Error())
	}
	return nil
}

func (hr *HabitListsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.HabitList, error) {
	list, err := scanHabitList(hr.conn.QueryRow(ctx, `SELECT `+habitListColumns+` FROM habit_lists WHERE id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrHabitListNotFound
		}
		return nil, errors.New("getting habit list error: " + err.Error())
	}
	return list, nil
}

func (hr *HabitListsRepository) List(ctx context.Context) ([]*entity.HabitList, error) {
	rows, err := hr.conn.Query(ctx, `SELECT `+habitListColumns+` FROM habit_lists ORDER BY created_at, id;`)
	if err != nil {
		return nil, errors.New("listing habit lists error: " + err.Error())
	}
	return collectHabitLists(rows)
}

func (hr *HabitListsRepository) ListByOwner(ctx context.Context, uid uuid.UUID) ([]*entity.HabitList, error) {
	rows, err := hr.conn.Query(ctx, `SELECT `+habitListColumns+` FROM habit_lists WHERE list_owner_id = $1 ORDER BY created_at, id;`, uid)
	if err != nil {
		return nil, errors.New("listing user's habit lists error: " + err.Error())
	}
	return collectHabitLists(rows)
}

func collectHabitLists(rows pgx.Rows) ([]*entity.HabitList, error) {
	defer rows.Close()
	lists := make([]*entity.HabitList, 0)
	for rows.Next() {
		l, err := scanHabitList(rows)
		if err != nil {
			return nil, errors.New("unmarshalling habit list error: " + err.Error())
		}
		lists = append(lists, l)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning habit lists: " + err.Error())
	}
	return lists, nil
}

func (hr *HabitListsRepository) Patch(ctx context.Context, id uuid.UUID, patch entity.HabitListPatch) (*entity.HabitList, error) {
	if patch.IsEmpty() {
		return nil, errorvalues.ErrEmptyPatch
	}
	sql, args, err := psql.Update("habit_lists").
		Set("updated_at", squirrel.Expr("NOW()")).
		Set("name", *patch.Name).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + habitListColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building habit list update: %w", err)
	}
	list, err := scanHabitList(hr.conn.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrHabitListNotFound
		}
		return nil, errors.New("updating habit list error: " + err.Error())
	}
	return list, nil
}

func (hr *HabitListsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := hr.conn.Begin(ctx)
	if err != nil {
		return errors.New("starting transaction error: " + err.Error())
	}
	if _, err = tx.Exec(ctx, `DELETE FROM habit_list_items WHERE habit_list_id = $1;`, id); err != nil {
		return rollback(ctx, tx, errors.New("deleting habit list items error: "+err.Error()))
	}
	ct, err := tx.Exec(ctx, `DELETE FROM habit_lists WHERE id = $1;`, id)
	if err != nil {
		return rollback(ctx, tx, errors.New("deleting habit list error: "+err.Error()))
	}
	if ct.RowsAffected() == 0 {
		return rollback(ctx, tx, errorvalues.ErrHabitListNotFound)
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing habit list deletion error: " + err.Error())
	}
	return nil
}

func (hr *HabitListsRepository) AddItem(ctx context.Context, listID uuid.UUID, kind entity.HabitKind, habitID uuid.UUID) (*entity.HabitListItem, bool, error) {
	column, err := habitColumn(kind)
	if err != nil {
		return nil, false, err
	}
	item, err := scanItem(hr.conn.QueryRow(ctx, `INSERT INTO habit_list_items (habit_list_id, `+column+`) VALUES ($1, $2)
		ON CONFLICT DO NOTHING RETURNING `+itemColumns+`;`, listID, habitID))
	if err == nil {
		return item, true, nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		item, err = hr.FindItem(ctx, listID, kind, habitID)
		return item, false, err
	}
	if pgErrCode(err) == pgForeignKeyViolation {
		if strings.Contains(pgConstraint(err), "habit_list_id") {
			return nil, false, errorvalues.ErrHabitListNotFound
		}
		if kind == entity.HabitKindPreset {
			return nil, false, errorvalues.ErrPresetHabitNotFound
		}
		return nil, false, errorvalues.ErrCustomHabitNotFound
	}
	return nil, false, errors.New("adding habit to list error: " + err.Error())
}

func pgConstraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

func (hr *HabitListsRepository) FindItem(ctx context.Context, listID uuid.UUID, kind entity.HabitKind, habitID uuid.UUID) (*entity.HabitListItem, error) {
	column, err := habitColumn(kind)
	if err != nil {
		return nil, err
	}
	item, err := scanItem(hr.conn.QueryRow(ctx, `SELECT `+itemColumns+` FROM habit_list_items
		WHERE habit_list_id = $1 AND `+column+` = $2;`, listID, habitID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrHabitNotInList
		}
		return nil, errors.New("searching habit in list error: " + err.Error())
	}
	return item, nil
}

func (hr *HabitListsRepository) Items(ctx context.Context, listID uuid.UUID) ([]*entity.HabitListItem, error) {
	rows, err := hr.conn.Query(ctx, `SELECT `+itemColumns+` FROM habit_list_items WHERE habit_list_id = $1 ORDER BY created_at, id;`, listID)
	if err != nil {
		return nil, errors.New("getting habit list items error: " + err.Error())
	}
	return collectItems(rows)
}

func collectItems(rows pgx.Rows) ([]*entity.HabitListItem, error) {
	defer rows.Close()
	items := make([]*entity.HabitListItem, 0)
	for rows.Next() {
		i, err := scanItem(rows)
		if err != nil {
			return nil, errors.New("unmarshalling habit list item error: " + err.Error())
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning habit list items: " + err.Error())
	}
	return items, nil
}

func (hr *HabitListsRepository) Details(ctx context.Context, listID uuid.UUID) ([]entity.HabitDetails, error) {
	rows, err := hr.conn.Query(ctx, `SELECT i.id, COALESCE(i.preset_habit_id, i.custom_habit_id), COALESCE(p.description, c.description),
		CASE WHEN i.preset_habit_id IS NOT NULL THEN 'preset' ELSE 'custom' END, i.habit_is_completed, i.is_late
		FROM habit_list_items i
		LEFT JOIN preset_habits p ON p.id = i.preset_habit_id
		LEFT JOIN custom_habits c ON c.id = i.custom_habit_id
		WHERE i.habit_list_id = $1 ORDER BY i.created_at, i.id;`, listID)
	if err != nil {
		return nil, errors.New("getting habit list details error: " + err.Error())
	}
	defer rows.Close()
	details := make([]entity.HabitDetails, 0)
	for rows.Next() {
		var (
			d    entity.HabitDetails
			kind string
		)
		if err = rows.Scan(&d.ID, &d.HabitID, &d.Description, &kind, &d.Completed, &d.IsLate); err != nil {
			return nil, errors.New("unmarshalling habit details error: " + err.Error())
		}
		d.Type = entity.HabitKind(kind)
		details = append(details, d)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning habit details: " + err.Error())
	}
	return details, nil
}

func (hr *HabitListsRepository) ListsWithItems(ctx context.Context, uid uuid.UUID) ([]entity.ListItems, error) {
	lists, err := hr.ListByOwner(ctx, uid)
	if err != nil {
		return nil, err
	}
	if len(lists) == 0 {
		return []entity.ListItems{}, nil
	}
	rows, err := hr.conn.Query(ctx, `SELECT `+itemColumns+` FROM habit_list_items
		WHERE habit_list_id IN (SELECT id FROM habit_lists WHERE list_owner_id = $1) ORDER BY created_at, id;`, uid)
	if err != nil {
		return nil, errors.New("getting user's habit list items error: " + err.Error())
	}
	items, err := collectItems(rows)
	if err != nil {
		return nil, err
	}
	byList := make(map[uuid.UUID][]*entity.HabitListItem, len(lists))
	for _, i := range items {
		byList[i.HabitListID] = append(byList[i.HabitListID], i)
	}
	result := make([]entity.ListItems, 0, len(lists))
	for _, l := range lists {
		result = append(result, entity.ListItems{List: l, Items: byList[l.ID]})
	}
	return result, nil
}

func (hr *HabitListsRepository) SaveCompletion(ctx context.Context, list *entity.HabitList, item *entity.HabitListItem, owner *entity.User) error {
	tx, err := hr.conn.Begin(ctx)
	if err != nil {
		return errors.New("starting transaction error: " + err.Error())
	}
	ct, err := tx.Exec(ctx, `UPDATE habit_list_items SET habit_is_completed = TRUE, is_late = $2, updated_at = NOW()
		WHERE id = $1 AND habit_is_completed = FALSE;`, item.ID, item.IsLate)
	if err != nil {
		return rollback(ctx, tx, errors.New("completing habit list item error: "+err.Error()))
	}
	if ct.RowsAffected() == 0 {
		return rollback(ctx, tx, errorvalues.ErrHabitAlreadyCompleted)
	}
	err = tx.QueryRow(ctx, `UPDATE habit_lists SET completed_habits = completed_habits + 1, updated_at = NOW()
		WHERE id = $1 RETURNING completed_habits;`, list.ID).Scan(&list.CompletedHabits)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return rollback(ctx, tx, errorvalues.ErrHabitListNotFound)
		}
		return rollback(ctx, tx, errors.New("updating habit list counter error: "+err.Error()))
	}
	if err = updateProgress(ctx, tx, owner); err != nil {
		return rollback(ctx, tx, err)
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing habit completion error: " + err.Error())
	}
	return nil
}
