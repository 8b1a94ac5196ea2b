package service

import (
	"context"
	"runtime"
	"time"

	"github.com/Yersat/chatcode/internal/config"
	"github.com/Yersat/chatcode/internal/consts"
	moduledto "github.com/Yersat/chatcode/internal/modules/system/dto"
	platformservice "github.com/Yersat/chatcode/internal/platform/service"

	"go.uber.org/zap"
)

// AdminGetServerStats 获取后台仪表盘统计数据。
func (s *Service) AdminGetServerStats() (*moduledto.ServerStatsResponse, error) {
	counts, err := s.userStore.CountStats(s.now())
	if err != nil {
		zap.L().Error("统计用户数据失败", zap.Error(err))
		return nil, platformservice.NewInternalError("Failed to count users")
	}

	byProvider := counts.ByProvider
	if byProvider == nil {
		byProvider = map[string]int64{}
	}
	return &moduledto.ServerStatsResponse{
		Users: moduledto.UserStatsResponse{
			Total:      counts.Total,
			Active:     counts.Active,
			Admins:     counts.Admins,
			Social:     counts.Social,
			WithPhone:  counts.WithPhone,
			NewLast7d:  counts.NewLast7d,
			Logins24h:  counts.LoginsLast,
			ByProvider: byProvider,
		},
		SystemInfo: moduledto.SystemInfoResponse{
			OS:           runtime.GOOS,
			Arch:         runtime.GOARCH,
			GoVersion:    runtime.Version(),
			NumCPU:       runtime.NumCPU(),
			NumGoroutine: runtime.NumGoroutine(),
		},
	}, nil
}

// AdminGetSystemStatus 数据库与 Redis 探活、运行时长和版本号
func (s *Service) AdminGetSystemStatus(ctx context.Context) *moduledto.SystemStatusResponse {
	probeCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	dbStatus := moduledto.DatabaseStatus{Type: config.Get().Database.Type}
	latency, err := s.systemStore.Ping(probeCtx)
	if err != nil {
		zap.L().Warn("数据库探活失败", zap.Error(err))
		dbStatus.Error = err.Error()
	} else {
		dbStatus.OK = true
		dbStatus.LatencyMS = float64(latency.Microseconds()) / 1000
	}

	redisStatus := moduledto.RedisStatus{Mode: "memory", OK: true}
	enabled, err := platformservice.PingRedis(probeCtx)
	if enabled {
		redisStatus.Mode = "redis"
		redisStatus.OK = err == nil
	}

	now := s.now()
	return &moduledto.SystemStatusResponse{
		Database:      dbStatus,
		Redis:         redisStatus,
		StartedAt:     s.startedAt.Unix(),
		UptimeSeconds: int64(now.Sub(s.startedAt).Seconds()),
		Version:       consts.ApplicationVersion,
	}
}
