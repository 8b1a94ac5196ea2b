package service

import (
	"errors"
	"net/url"

	"github.com/Yersat/chatcode/internal/consts"
	"github.com/Yersat/chatcode/internal/model"
	moduledto "github.com/Yersat/chatcode/internal/modules/qrcode/dto"
	"github.com/Yersat/chatcode/internal/modules/qrcode/repo"
	platformservice "github.com/Yersat/chatcode/internal/platform/service"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	*platformservice.AppService
	userStore repo.UserStore
	links     *LinkBuilder
}

func New(appService *platformservice.AppService, userStore repo.UserStore, links *LinkBuilder) *Service {
	return &Service{
		AppService: appService,
		userStore:  userStore,
		links:      links,
	}
}

// UserLink 当前用户的聊天链接；未设置手机号时返回 not_found
func (s *Service) UserLink(userID uint) (*moduledto.LinkResponse, error) {
	user, err := s.userStore.FindByID(userID)
	if err != nil {
		return nil, mapLookupError(err)
	}
	if user.PhoneE164 == "" {
		return nil, platformservice.NewNotFoundError("Save a phone number first")
	}

	qrURL, downloadURL := qrURLs(user.Username)
	return &moduledto.LinkResponse{
		Username:    user.Username,
		Phone:       user.PhoneE164,
		Preset:      user.PresetText,
		Link:        s.links.Build(user.PhoneE164, user.PresetText),
		QRURL:       qrURL,
		DownloadURL: downloadURL,
	}, nil
}

// PublicPage 公开页面数据；用户不存在、已停用或未设置手机号时返回 not_found
func (s *Service) PublicPage(username string) (*moduledto.PublicPageResponse, error) {
	user, err := s.publicUser(username)
	if err != nil {
		return nil, err
	}

	qrURL, downloadURL := qrURLs(user.Username)
	return &moduledto.PublicPageResponse{
		Username:       user.Username,
		FullName:       user.FullName,
		ProfilePicture: user.ProfilePicture,
		Link:           s.links.Build(user.PhoneE164, user.PresetText),
		QRURL:          qrURL,
		DownloadURL:    downloadURL,
	}, nil
}

// QRCodePNG 生成指定用户的二维码图片
func (s *Service) QRCodePNG(username string) ([]byte, error) {
	user, err := s.publicUser(username)
	if err != nil {
		return nil, err
	}

	size := s.GetInt(consts.ConfigQRSize)
	img, err := RenderQR(s.links.Build(user.PhoneE164, user.PresetText), size)
	if err != nil {
		zap.L().Error("生成二维码失败", zap.String("username", username), zap.Error(err))
		return nil, platformservice.NewInternalError("Failed to render QR code")
	}
	return img, nil
}

func (s *Service) publicUser(username string) (*model.User, error) {
	if username == "" {
		return nil, platformservice.NewValidationError("Username is required")
	}
	user, err := s.userStore.FindByUsername(username)
	if err != nil {
		return nil, mapLookupError(err)
	}
	if !user.IsActive || user.PhoneE164 == "" {
		return nil, platformservice.NewNotFoundError("User not found")
	}
	return user, nil
}

func mapLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return platformservice.NewNotFoundError("User not found")
	}
	return platformservice.NewInternalError("Failed to load user")
}

func qrURLs(username string) (string, string) {
	qrURL := "/qr.png?u=" + url.QueryEscape(username)
	return qrURL, qrURL + "&download=1"
}
