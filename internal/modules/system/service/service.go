package service

import (
	"time"

	"github.com/Yersat/chatcode/internal/modules/system/repo"
	platformservice "github.com/Yersat/chatcode/internal/platform/service"
)

type Service struct {
	*platformservice.AppService
	systemStore repo.SystemStore
	userStore   repo.UserStatsStore
	startedAt   time.Time
	now         func() time.Time
}

func New(
	appService *platformservice.AppService,
	systemStore repo.SystemStore,
	userStore repo.UserStatsStore,
) *Service {
	return &Service{
		AppService:  appService,
		systemStore: systemStore,
		userStore:   userStore,
		startedAt:   time.Now(),
		now:         time.Now,
	}
}

// SetClock 替换时间源，测试使用
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

func (s *Service) StartedAt() time.Time {
	return s.startedAt
}
