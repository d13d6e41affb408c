package repository

import (
	"database/sql"
	"drone-spot-api/logger"
	"drone-spot-api/model"
)

// IReviewRepository defines the contract for spot review persistence.
type IReviewRepository interface {
	CreateReview(review *model.Review) error
	GetReviewByID(id int) (*model.Review, error)
	GetReviewsBySpotID(spotID int) ([]*model.Review, error)
	DeleteReview(id int) error
	CountByWriter(writerUID string) (int, error)
}

type ReviewRepository struct {
	DB *sql.DB
}

func NewReviewRepository(db *sql.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

func (r *ReviewRepository) CreateReview(review *model.Review) error {
	query := `INSERT INTO reviews (spot_id, writer_uid, drone_type, date, comment, photo)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at`
	err := r.DB.QueryRow(query,
		review.SpotID, review.WriterUID, review.DroneType, review.Date, review.Comment, review.Photo,
	).Scan(&review.ID, &review.CreatedAt)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute create review query")
		return err
	}
	return nil
}

func (r *ReviewRepository) GetReviewByID(id int) (*model.Review, error) {
	review := &model.Review{}
	query := `SELECT id, spot_id, writer_uid, drone_type, date, comment, photo, created_at
	          FROM reviews WHERE id = $1`
	err := r.DB.QueryRow(query, id).Scan(
		&review.ID, &review.SpotID, &review.WriterUID, &review.DroneType,
		&review.Date, &review.Comment, &review.Photo, &review.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return review, nil
}

func (r *ReviewRepository) GetReviewsBySpotID(spotID int) ([]*model.Review, error) {
	query := `SELECT id, spot_id, writer_uid, drone_type, date, comment, photo, created_at
	          FROM reviews WHERE spot_id = $1 ORDER BY created_at DESC`
	rows, err := r.DB.Query(query, spotID)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute query for reviews by spot")
		return nil, err
	}
	defer rows.Close()

	var reviews []*model.Review
	for rows.Next() {
		var rv model.Review
		if err := rows.Scan(
			&rv.ID, &rv.SpotID, &rv.WriterUID, &rv.DroneType,
			&rv.Date, &rv.Comment, &rv.Photo, &rv.CreatedAt,
		); err != nil {
			logger.Log.WithError(err).Error("Failed to scan review row")
			return nil, err
		}
		reviews = append(reviews, &rv)
	}
	return reviews, rows.Err()
}

func (r *ReviewRepository) DeleteReview(id int) error {
	query := `DELETE FROM reviews WHERE id = $1`
	_, err := r.DB.Exec(query, id)
	return err
}

func (r *ReviewRepository) CountByWriter(writerUID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM reviews WHERE writer_uid = $1`
	err := r.DB.QueryRow(query, writerUID).Scan(&count)
	return count, err
}
