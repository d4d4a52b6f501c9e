package service

import (
	"fmt"

	"github.com/pixellake/mcgate/internal/dto"
	"github.com/pixellake/mcgate/internal/repository"
)

type DashboardService interface {
	Stats() (*dto.DashboardStatsDTO, error)
}

type dashboardService struct {
	submissions SubmissionService
	surveys     repository.SurveyRepository
	whitelist   repository.WhitelistRepository
}

func NewDashboardService(submissions SubmissionService, surveys repository.SurveyRepository, whitelist repository.WhitelistRepository) DashboardService {
	return &dashboardService{submissions: submissions, surveys: surveys, whitelist: whitelist}
}

func (s *dashboardService) Stats() (*dto.DashboardStatsDTO, error) {
	submissionStats, err := s.submissions.Stats()
	if err != nil {
		return nil, err
	}
	whitelistTotal, err := s.whitelist.Count()
	if err != nil {
		return nil, fmt.Errorf("counting whitelist entries: %w", err)
	}
	surveyCount, err := s.surveys.Count()
	if err != nil {
		return nil, fmt.Errorf("counting surveys: %w", err)
	}
	activeSurveys, err := s.surveys.CountActive()
	if err != nil {
		return nil, fmt.Errorf("counting active surveys: %w", err)
	}

	return &dto.DashboardStatsDTO{
		Submissions:    *submissionStats,
		WhitelistTotal: whitelistTotal,
		SurveyCount:    surveyCount,
		ActiveSurveys:  activeSurveys,
	}, nil
}
