package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Yersat/chatcode/internal/config"
	"github.com/Yersat/chatcode/internal/consts"
	"github.com/Yersat/chatcode/internal/db"
	"github.com/Yersat/chatcode/internal/di"
	"github.com/Yersat/chatcode/internal/logging"
	"github.com/Yersat/chatcode/internal/middleware"
	"github.com/Yersat/chatcode/internal/platform/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	configDir := flag.String("config", "config", "配置文件目录")
	exportRoutes := flag.Bool("export", false, "导出路由到 routes.json 并退出")
	flag.Parse()

	// .env 可选，不存在时忽略
	_ = godotenv.Load()

	if err := config.InitConfig(*configDir); err != nil {
		fmt.Fprintf(os.Stderr, "❌ 配置加载失败: %v\n", err)
		os.Exit(1)
	}
	cfg := config.Get()

	_, syncLogger := logging.Init(cfg.Log)
	defer syncLogger()

	if err := db.InitDB(); err != nil {
		zap.L().Fatal("❌ 数据库初始化失败", zap.Error(err))
	}
	defer func() { _ = db.Close() }()

	app, err := di.InitializeApplication(db.DB, cfg)
	if err != nil {
		zap.L().Fatal("❌ 依赖注入失败", zap.Error(err))
	}
	if err := app.Service.InitializeSettings(); err != nil {
		zap.L().Fatal("❌ 初始化默认配置失败", zap.Error(err))
	}

	gin.SetMode(cfg.Server.Mode)
	r := newEngine(app, cfg.Server.TrustedProxies)

	// 导出模式
	if *exportRoutes {
		if err := exportAPI(r, "routes.json"); err != nil {
			zap.L().Fatal("❌ 导出路由失败", zap.Error(err))
		}
		return
	}

	printWelcomeMessage(cfg.Server.Port)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zap.L().Info("🚀 服务启动成功", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("❌ 服务启动失败", zap.Error(err))
		}
	}()

	// 等待中断信号关闭服务器（设置 5 秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("🛑 正在关闭服务...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zap.L().Error("❌ 服务强制关闭", zap.Error(err))
	}
	if err := service.CloseRedisClient(); err != nil {
		zap.L().Warn("关闭 Redis 连接失败", zap.Error(err))
	}
	zap.L().Info("✅ 服务已退出")
}

// newEngine 组装 gin 引擎：恢复、请求日志、可信代理与业务路由
func newEngine(app *di.Application, trustedProxies string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	applyTrustedProxies(r, trustedProxies)

	app.Router.Init(r)
	r.NoRoute(noRouteHandler)
	return r
}

func noRouteHandler(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
}

// applyTrustedProxies 为空时不信任任何代理；列表无效时同样回退为不信任
func applyTrustedProxies(r *gin.Engine, raw string) {
	proxies := splitTrustedProxyList(raw)
	if len(proxies) == 0 {
		_ = r.SetTrustedProxies(nil)
		return
	}
	if err := r.SetTrustedProxies(proxies); err != nil {
		zap.L().Warn("⚠️ trusted_proxies 配置无效，已禁用代理信任", zap.String("value", raw), zap.Error(err))
		_ = r.SetTrustedProxies(nil)
	}
}

func splitTrustedProxyList(raw string) []string {
	return strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\n' || r == '\t' || r == '\r'
	})
}

func printWelcomeMessage(port string) {
	fmt.Println()
	fmt.Println(" ┌───────────────────────────────────────────────────────┐")
	fmt.Printf(" │   🚀  %s\n", consts.ApplicationName)
	fmt.Println(" ├───────────────────────────────────────────────────────┤")
	fmt.Printf(" │   📦  版本     : %s\n", consts.ApplicationVersion)
	fmt.Printf(" │   🔥  服务端口 : %s\n", port)
	fmt.Println(" └───────────────────────────────────────────────────────┘")
	fmt.Println()
}

func exportAPI(r *gin.Engine, path string) error {
	// 只保留关键信息
	type RouteInfo struct {
		Method  string `json:"method"`
		Path    string `json:"path"`
		Handler string `json:"handler"`
	}

	routes := r.Routes()
	exportList := make([]RouteInfo, 0, len(routes))
	for _, route := range routes {
		exportList = append(exportList, RouteInfo{
			Method:  route.Method,
			Path:    route.Path,
			Handler: route.Handler,
		})
	}

	file, err := json.MarshalIndent(exportList, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, file, 0644); err != nil {
		return err
	}
	zap.L().Info("✅ 路由已成功导出", zap.String("path", path))
	return nil
}
