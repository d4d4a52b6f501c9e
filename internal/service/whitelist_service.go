package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/jinzhu/copier"
	"github.com/pixellake/mcgate/internal/cache"
	"github.com/pixellake/mcgate/internal/dto"
	"github.com/pixellake/mcgate/internal/model"
	"github.com/pixellake/mcgate/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type WhitelistService interface {
	List(ctx context.Context, filter dto.WhitelistFilterDTO) (*dto.WhitelistPageDTO, error)
	Add(ctx context.Context, req dto.AddWhitelistDTO) (*dto.WhitelistEntryDTO, error)
	Remove(ctx context.Context, id uint) error
	Batch(ctx context.Context, req dto.BatchOperationDTO) (*dto.BatchOperationResultDTO, error)
	Stats(ctx context.Context) (*dto.WhitelistStatsDTO, error)
}

type whitelistService struct {
	repo       repository.WhitelistRepository
	cache      cache.WhitelistCache
	activities repository.ActivityRepository
}

func NewWhitelistService(repo repository.WhitelistRepository, c cache.WhitelistCache, activities repository.ActivityRepository) WhitelistService {
	return &whitelistService{repo: repo, cache: c, activities: activities}
}

func (s *whitelistService) List(ctx context.Context, filter dto.WhitelistFilterDTO) (*dto.WhitelistPageDTO, error) {
	page, size := normalizePage(filter.Page, filter.Size)
	entries, total, err := s.repo.FindAll(page, size, filter.Search, filter.Source)
	if err != nil {
		return nil, fmt.Errorf("listing whitelist entries: %w", err)
	}

	items := make([]dto.WhitelistEntryDTO, len(entries))
	for i, entry := range entries {
		items[i] = entryDTO(entry)
	}
	return &dto.WhitelistPageDTO{
		Items: items,
		Page:  page,
		Size:  size,
		Total: total,
		Pages: pageCount(total, size),
	}, nil
}

func (s *whitelistService) Add(ctx context.Context, req dto.AddWhitelistDTO) (*dto.WhitelistEntryDTO, error) {
	if _, err := s.repo.FindByName(req.Name); err == nil {
		return nil, fmt.Errorf("%q: %w", req.Name, ErrDuplicateEntry)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("checking whitelist for %q: %w", req.Name, err)
	}

	source := req.Source
	if source == "" {
		source = model.SourcePlayer
	}
	entry := model.WhitelistEntry{
		Name:        req.Name,
		Source:      source,
		AddedByName: req.AddedByName,
		AddedByUUID: req.AddedByUUID,
		IsActive:    true,
	}
	if err := s.repo.Create(&entry); err != nil {
		return nil, fmt.Errorf("creating whitelist entry for %q: %w", req.Name, err)
	}

	if err := s.cache.Add(ctx, entry.Name); err != nil {
		// The cache is rebuilt on the next refresh; the DB row is authoritative.
		log.Warn().Err(err).Str("name", entry.Name).Msg("Failed to update whitelist cache")
	}
	recordActivity(s.activities, model.Activity{
		Action:     model.ActivityWhitelistAdd,
		PlayerName: entry.Name,
		Operator:   entry.AddedByName,
	})

	result := entryDTO(entry)
	return &result, nil
}

func (s *whitelistService) Remove(ctx context.Context, id uint) error {
	entry, err := s.repo.FindByID(id)
	if err != nil {
		return fmt.Errorf("loading whitelist entry %d: %w", id, err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("deleting whitelist entry %d: %w", id, err)
	}
	if err := s.cache.Remove(ctx, entry.Name); err != nil {
		log.Warn().Err(err).Str("name", entry.Name).Msg("Failed to update whitelist cache")
	}
	recordActivity(s.activities, model.Activity{
		Action:     model.ActivityWhitelistRemove,
		PlayerName: entry.Name,
	})
	return nil
}

func (s *whitelistService) Batch(ctx context.Context, req dto.BatchOperationDTO) (*dto.BatchOperationResultDTO, error) {
	if req.Operation != "add" && req.Operation != "remove" {
		return nil, fmt.Errorf("unsupported batch operation %q", req.Operation)
	}

	result := &dto.BatchOperationResultDTO{
		Operation:      req.Operation,
		TotalRequested: len(req.Players),
	}

	for _, player := range req.Players {
		item := dto.BatchItemResultDTO{Name: player.Name}
		var err error
		switch req.Operation {
		case "add":
			_, err = s.Add(ctx, dto.AddWhitelistDTO{
				Name:        player.Name,
				Source:      req.Source,
				AddedByName: req.AddedByName,
			})
		case "remove":
			err = s.removeByName(ctx, player.Name)
		}
		if err != nil {
			item.Message = err.Error()
			result.FailedCount++
		} else {
			item.Success = true
			result.SuccessCount++
		}
		result.Details = append(result.Details, item)
	}
	return result, nil
}

func (s *whitelistService) removeByName(ctx context.Context, name string) error {
	if _, err := s.repo.FindByName(name); err != nil {
		return fmt.Errorf("loading whitelist entry %q: %w", name, err)
	}
	if err := s.repo.DeleteByName(name); err != nil {
		return fmt.Errorf("deleting whitelist entry %q: %w", name, err)
	}
	if err := s.cache.Remove(ctx, name); err != nil {
		log.Warn().Err(err).Str("name", name).Msg("Failed to update whitelist cache")
	}
	recordActivity(s.activities, model.Activity{
		Action:     model.ActivityWhitelistRemove,
		PlayerName: name,
	})
	return nil
}

func (s *whitelistService) Stats(ctx context.Context) (*dto.WhitelistStatsDTO, error) {
	total, err := s.repo.Count()
	if err != nil {
		return nil, fmt.Errorf("counting whitelist entries: %w", err)
	}
	active, err := s.repo.CountActive()
	if err != nil {
		return nil, fmt.Errorf("counting active entries: %w", err)
	}
	pending, err := s.repo.CountUUIDPending()
	if err != nil {
		return nil, fmt.Errorf("counting uuid-pending entries: %w", err)
	}
	breakdown, err := s.repo.CountBySource()
	if err != nil {
		return nil, fmt.Errorf("counting entries by source: %w", err)
	}

	stats := &dto.WhitelistStatsDTO{
		TotalEntries:       total,
		ActiveEntries:      active,
		UUIDPendingEntries: pending,
		SourceBreakdown:    breakdown,
	}

	// Cache status is best-effort; a cold Redis must not break the stats page.
	if loaded, err := s.cache.Loaded(ctx); err == nil {
		stats.CacheStatus.Loaded = loaded
	}
	if size, err := s.cache.Size(ctx); err == nil {
		stats.CacheStatus.Size = size
	}
	if last, err := s.cache.LastRefresh(ctx); err == nil {
		stats.CacheStatus.LastRefresh = last
	}
	return stats, nil
}

// RefreshWhitelistCache reloads the Redis name set from the database. Run
// at startup and after bulk imports.
func RefreshWhitelistCache(ctx context.Context, repo repository.WhitelistRepository, c cache.WhitelistCache, activities repository.ActivityRepository) error {
	names, err := repo.AllNames()
	if err != nil {
		return fmt.Errorf("loading whitelist names: %w", err)
	}
	if err := c.Refresh(ctx, names); err != nil {
		return fmt.Errorf("refreshing whitelist cache: %w", err)
	}
	recordActivity(activities, model.Activity{
		Action: model.ActivityCacheSync,
		Note:   fmt.Sprintf("%d entries loaded", len(names)),
	})
	log.Info().Int("entries", len(names)).Msg("Whitelist cache refreshed")
	return nil
}

func entryDTO(entry model.WhitelistEntry) dto.WhitelistEntryDTO {
	var out dto.WhitelistEntryDTO
	copier.Copy(&out, &entry)
	out.UUIDPending = entry.UUID == nil
	return out
}

func normalizePage(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 100 {
		size = 20
	}
	return page, size
}

func pageCount(total int64, size int) int {
	return int(math.Ceil(float64(total) / float64(size)))
}
