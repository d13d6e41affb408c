package repository

import (
	"database/sql"
	"drone-spot-api/logger"
	"drone-spot-api/model"
)

// ICourseRepository defines the contract for flight course persistence.
type ICourseRepository interface {
	CreateCourse(course *model.Course) error
	GetCourseByID(id int) (*model.Course, error)
	GetAllCourses() ([]*model.Course, error)
}

type CourseRepository struct {
	DB *sql.DB
}

func NewCourseRepository(db *sql.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

// CreateCourse inserts the course and its waypoints in one transaction.
func (r *CourseRepository) CreateCourse(course *model.Course) error {
	log := logger.Log.WithField("name", course.Name)
	log.Info("Executing queries to create a new course")

	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO courses (name, content, distance, duration)
	          VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	if err := tx.QueryRow(query, course.Name, course.Content, course.Distance, course.Duration).
		Scan(&course.ID, &course.CreatedAt); err != nil {
		log.WithError(err).Error("Failed to execute create course query")
		return err
	}

	for i := range course.Visits {
		course.Visits[i].CourseID = course.ID
		visitQuery := `INSERT INTO course_visits (course_id, spot_id, visit_order) VALUES ($1, $2, $3)`
		if _, err := tx.Exec(visitQuery, course.ID, course.Visits[i].SpotID, course.Visits[i].Order); err != nil {
			log.WithError(err).Error("Failed to execute create course visit query")
			return err
		}
	}

	return tx.Commit()
}

func (r *CourseRepository) GetCourseByID(id int) (*model.Course, error) {
	course := &model.Course{}
	query := `SELECT id, name, content, distance, duration, created_at FROM courses WHERE id = $1`
	err := r.DB.QueryRow(query, id).Scan(
		&course.ID, &course.Name, &course.Content, &course.Distance, &course.Duration, &course.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(
		`SELECT course_id, spot_id, visit_order FROM course_visits WHERE course_id = $1 ORDER BY visit_order`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var v model.CourseVisit
		if err := rows.Scan(&v.CourseID, &v.SpotID, &v.Order); err != nil {
			return nil, err
		}
		course.Visits = append(course.Visits, v)
	}
	return course, rows.Err()
}

func (r *CourseRepository) GetAllCourses() ([]*model.Course, error) {
	query := `SELECT id, name, content, distance, duration, created_at FROM courses ORDER BY id`
	rows, err := r.DB.Query(query)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute query for all courses")
		return nil, err
	}
	defer rows.Close()

	var courses []*model.Course
	for rows.Next() {
		var c model.Course
		if err := rows.Scan(&c.ID, &c.Name, &c.Content, &c.Distance, &c.Duration, &c.CreatedAt); err != nil {
			return nil, err
		}
		courses = append(courses, &c)
	}
	return courses, rows.Err()
}
