package repository

import (
	"database/sql"
	"drone-spot-api/model"
)

// ITermRepository defines the contract for terms-of-service storage.
type ITermRepository interface {
	CreateTerm(term *model.Term) error
	GetAllTerms() ([]*model.Term, error)
}

type TermRepository struct {
	DB *sql.DB
}

func NewTermRepository(db *sql.DB) *TermRepository {
	return &TermRepository{DB: db}
}

func (r *TermRepository) CreateTerm(term *model.Term) error {
	query := `INSERT INTO terms (title, content, require)
	          VALUES ($1, $2, $3) RETURNING id, created_at`
	return r.DB.QueryRow(query, term.Title, term.Content, term.Require).
		Scan(&term.ID, &term.CreatedAt)
}

func (r *TermRepository) GetAllTerms() ([]*model.Term, error) {
	query := `SELECT id, title, content, require, created_at
	          FROM terms ORDER BY id`
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var terms []*model.Term
	for rows.Next() {
		term := &model.Term{}
		if err := rows.Scan(&term.ID, &term.Title, &term.Content, &term.Require, &term.CreatedAt); err != nil {
			return nil, err
		}
		terms = append(terms, term)
	}
	return terms, rows.Err()
}
