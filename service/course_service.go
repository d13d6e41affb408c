package service

import (
	"drone-spot-api/model"
	"drone-spot-api/repository"
)

type CourseService struct {
	repo repository.ICourseRepository
}

func NewCourseService(repo repository.ICourseRepository) *CourseService {
	return &CourseService{repo: repo}
}

func (s *CourseService) CreateCourse(req *model.CreateCourseRequest) (*model.Course, error) {
	course := &model.Course{
		Name:     req.Name,
		Content:  req.Content,
		Distance: req.Distance,
		Duration: req.Duration,
	}
	for _, v := range req.Visits {
		course.Visits = append(course.Visits, model.CourseVisit{SpotID: v.SpotID, Order: v.Order})
	}
	if err := s.repo.CreateCourse(course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) GetCourse(id int) (*model.Course, error) {
	return s.repo.GetCourseByID(id)
}

func (s *CourseService) ListCourses() ([]*model.Course, error) {
	return s.repo.GetAllCourses()
}
