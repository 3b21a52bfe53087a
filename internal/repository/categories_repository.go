package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	errorvalues "github.com/limbo/levelup/internal/error_values"
	"github.com/limbo/levelup/pkg/entity"
)

type CategoriesRepository struct {
	conn PgConnection
}

func NewCategoriesRepo(conn PgConnection) *CategoriesRepository {
	return &CategoriesRepository{
		conn: conn,
	}
}

func (cr *CategoriesRepository) Create(ctx context.Context, name string) (*entity.Category, error) {
	c := entity.Category{Name: name}
	err := cr.conn.QueryRow(ctx, `INSERT INTO categories (name) VALUES ($1) RETURNING created_at;`, name).Scan(&c.CreatedAt)
	if err != nil {
		if pgErrCode(err) == pgUniqueViolation {
			return nil, errorvalues.ErrCategoryExists
		}
		return nil, errors.New("creating category error: " + err.Error())
	}
	return &c, nil
}

func (cr *CategoriesRepository) Get(ctx context.Context, name string) (*entity.Category, error) {
	var c entity.Category
	err := cr.conn.QueryRow(ctx, `SELECT name, created_at FROM categories WHERE name = $1;`, name).Scan(&c.Name, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrCategoryNotFound
		}
		return nil, errors.New("getting category error: " + err.Error())
	}
	return &c, nil
}

func (cr *CategoriesRepository) List(ctx context.Context) ([]*entity.Category, error) {
	rows, err := cr.conn.Query(ctx, `SELECT name, created_at FROM categories ORDER BY name;`)
	if err != nil {
		return nil, errors.New("listing categories error: " + err.Error())
	}
	defer rows.Close()
	categories := make([]*entity.Category, 0)
	for rows.Next() {
		var c entity.Category
		if err = rows.Scan(&c.Name, &c.CreatedAt); err != nil {
			return nil, errors.New("unmarshalling category error: " + err.Error())
		}
		categories = append(categories, &c)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning categories: " + err.Error())
	}
	return categories, nil
}
