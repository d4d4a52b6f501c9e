package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/pixellake/mcgate/internal/dto"
	"github.com/pixellake/mcgate/internal/model"
	"github.com/pixellake/mcgate/internal/repository"
	"github.com/rs/zerolog/log"
)

type ActivityService interface {
	List(filter dto.ActivityFilterDTO) (*dto.ActivityPageDTO, error)
}

type activityService struct {
	repo repository.ActivityRepository
}

func NewActivityService(repo repository.ActivityRepository) ActivityService {
	return &activityService{repo: repo}
}

func (s *activityService) List(filter dto.ActivityFilterDTO) (*dto.ActivityPageDTO, error) {
	page, size := normalizePage(filter.Page, filter.Size)
	activities, total, err := s.repo.FindAll(page, size, filter.Action)
	if err != nil {
		return nil, fmt.Errorf("listing activities: %w", err)
	}

	items := make([]dto.ActivityDTO, len(activities))
	for i, a := range activities {
		copier.Copy(&items[i], &a)
	}
	return &dto.ActivityPageDTO{
		Items: items,
		Page:  page,
		Size:  size,
		Total: total,
		Pages: pageCount(total, size),
	}, nil
}

// recordActivity appends an audit record. The audit trail is best-effort:
// a failed write must never fail the mutation it describes.
func recordActivity(repo repository.ActivityRepository, activity model.Activity) {
	if err := repo.Create(&activity); err != nil {
		log.Warn().Err(err).Str("action", activity.Action).Str("player", activity.PlayerName).
			Msg("Failed to record activity")
	}
}
