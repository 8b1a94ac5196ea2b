package service

import (
	"github.com/Yersat/chatcode/internal/consts"
	"github.com/Yersat/chatcode/internal/model"
)

var DefaultSettings = []model.Setting{
	{Key: consts.ConfigSiteName, Value: "ChatCode", Desc: "网站名称", Category: "常规"},
	{Key: consts.ConfigSiteDescription, Value: "WhatsApp QR codes for your phone number", Desc: "网站描述", Category: "常规"},
	{Key: consts.ConfigQRSize, Value: "320", Desc: "二维码图片边长 (像素)", Category: "常规"},
	{Key: consts.ConfigAllowInit, Value: "true", Desc: "是否允许初始化管理员账号", Category: "安全"},
	{Key: consts.ConfigAllowRegister, Value: "true", Desc: "是否开放注册 (true/false)", Category: "安全"},
	{Key: consts.ConfigRateLimitEnabled, Value: "true", Desc: "是否开启接口限流", Category: "限流"},
	{Key: consts.ConfigRateLimitAuthRPS, Value: "0.5", Desc: "认证接口每秒请求限制 (RPS)", Category: "限流"},
	{Key: consts.ConfigRateLimitAuthBurst, Value: "5", Desc: "认证接口突发请求限制", Category: "限流"},
	{Key: consts.ConfigMaxRequestBodySize, Value: "1", Desc: "接口最大请求体限制 (MB)", Category: "限流"},
}
