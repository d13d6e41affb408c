package repository

import (
	"database/sql"
	"drone-spot-api/logger"
	"drone-spot-api/model"

	"github.com/sirupsen/logrus"
)

// ISpotRepository defines the contract for drone spot persistence.
type ISpotRepository interface {
	CreateSpot(spot *model.Spot) error
	GetSpotByID(id int) (*model.Spot, error)
	GetAllSpots() ([]*model.Spot, error)
	AddLike(spotID int, userUID string) error
	RemoveLike(spotID int, userUID string) error
}

type SpotRepository struct {
	DB *sql.DB
}

func NewSpotRepository(db *sql.DB) *SpotRepository {
	return &SpotRepository{DB: db}
}

func (r *SpotRepository) CreateSpot(spot *model.Spot) error {
	log := logger.Log.WithFields(logrus.Fields{
		"name": spot.Name,
		"area": spot.Area,
	})
	log.Info("Executing query to create a new drone spot")

	query := `INSERT INTO spots (name, lat, lon, area, comment, permit, photo)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at`
	err := r.DB.QueryRow(query,
		spot.Name, spot.Lat, spot.Lon, spot.Area, spot.Comment, spot.Permit, spot.Photo,
	).Scan(&spot.ID, &spot.CreatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute create spot query")
		return err
	}
	return nil
}

func (r *SpotRepository) GetSpotByID(id int) (*model.Spot, error) {
	spot := &model.Spot{}
	query := `SELECT s.id, s.name, s.lat, s.lon, s.area, s.comment, s.permit, s.photo, s.created_at,
	                 (SELECT COUNT(*) FROM spot_likes l WHERE l.spot_id = s.id),
	                 (SELECT COUNT(*) FROM reviews rv WHERE rv.spot_id = s.id)
	          FROM spots s WHERE s.id = $1`
	err := r.DB.QueryRow(query, id).Scan(
		&spot.ID, &spot.Name, &spot.Lat, &spot.Lon, &spot.Area, &spot.Comment,
		&spot.Permit, &spot.Photo, &spot.CreatedAt, &spot.LikesCount, &spot.ReviewsCount,
	)
	if err != nil {
		return nil, err
	}
	return spot, nil
}

func (r *SpotRepository) GetAllSpots() ([]*model.Spot, error) {
	logger.Log.Info("Executing query to get all drone spots")

	query := `SELECT s.id, s.name, s.lat, s.lon, s.area, s.comment, s.permit, s.photo, s.created_at,
	                 (SELECT COUNT(*) FROM spot_likes l WHERE l.spot_id = s.id),
	                 (SELECT COUNT(*) FROM reviews rv WHERE rv.spot_id = s.id)
	          FROM spots s ORDER BY s.id`
	rows, err := r.DB.Query(query)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute query for all spots")
		return nil, err
	}
	defer rows.Close()

	var spots []*model.Spot
	for rows.Next() {
		var s model.Spot
		if err := rows.Scan(
			&s.ID, &s.Name, &s.Lat, &s.Lon, &s.Area, &s.Comment,
			&s.Permit, &s.Photo, &s.CreatedAt, &s.LikesCount, &s.ReviewsCount,
		); err != nil {
			logger.Log.WithError(err).Error("Failed to scan spot row")
			return nil, err
		}
		spots = append(spots, &s)
	}
	return spots, rows.Err()
}

func (r *SpotRepository) AddLike(spotID int, userUID string) error {
	query := `INSERT INTO spot_likes (spot_id, user_uid) VALUES ($1, $2) ON CONFLICT DO NOTHING`
	_, err := r.DB.Exec(query, spotID, userUID)
	return err
}

func (r *SpotRepository) RemoveLike(spotID int, userUID string) error {
	query := `DELETE FROM spot_likes WHERE spot_id = $1 AND user_uid = $2`
	_, err := r.DB.Exec(query, spotID, userUID)
	return err
}
