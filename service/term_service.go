package service

import (
	"drone-spot-api/model"
	"drone-spot-api/repository"
)

type TermService struct {
	repo repository.ITermRepository
}

func NewTermService(repo repository.ITermRepository) *TermService {
	return &TermService{repo: repo}
}

func (s *TermService) CreateTerm(req *model.CreateTermRequest) (*model.Term, error) {
	term := &model.Term{
		Title:   req.Title,
		Content: req.Content,
		Require: req.Require,
	}
	if err := s.repo.CreateTerm(term); err != nil {
		return nil, err
	}
	return term, nil
}

func (s *TermService) ListTerms() ([]*model.Term, error) {
	return s.repo.GetAllTerms()
}
