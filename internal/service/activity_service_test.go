package service

import (
	"testing"

	"github.com/pixellake/mcgate/internal/dto"
	"github.com/pixellake/mcgate/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeActivityRepo struct {
	recorded []model.Activity
	err      error
}

func newFakeActivityRepo() *fakeActivityRepo {
	return &fakeActivityRepo{}
}

func (f *fakeActivityRepo) Create(activity *model.Activity) error {
	if f.err != nil {
		return f.err
	}
	activity.ID = uint(len(f.recorded) + 1)
	f.recorded = append(f.recorded, *activity)
	return nil
}

func (f *fakeActivityRepo) FindAll(page, size int, action string) ([]model.Activity, int64, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	var out []model.Activity
	for _, a := range f.recorded {
		if action == "" || a.Action == action {
			out = append(out, a)
		}
	}
	return out, int64(len(out)), nil
}

// TestActivityListFiltersByAction verifies the audit listing narrows to the
// requested action.
func TestActivityListFiltersByAction(t *testing.T) {
	repo := newFakeActivityRepo()
	repo.Create(&model.Activity{Action: model.ActivityApproved, PlayerName: "Steve"})
	repo.Create(&model.Activity{Action: model.ActivityWhitelistAdd, PlayerName: "Steve"})
	repo.Create(&model.Activity{Action: model.ActivityApproved, PlayerName: "Alex"})
	svc := NewActivityService(repo)

	page, err := svc.List(dto.ActivityFilterDTO{Action: model.ActivityApproved})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.EqualValues(t, 2, page.Total)
	for _, item := range page.Items {
		assert.Equal(t, model.ActivityApproved, item.Action)
	}
}
