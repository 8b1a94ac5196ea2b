package dto

type LinkResponse struct {
	Username    string `json:"username"`
	Phone       string `json:"phone"`
	Preset      string `json:"preset"`
	Link        string `json:"link"`
	QRURL       string `json:"qr_url"`
	DownloadURL string `json:"download_url"`
}

// PublicPageResponse 公开页面只暴露展示所需字段
type PublicPageResponse struct {
	Username       string `json:"username"`
	FullName       string `json:"full_name"`
	ProfilePicture string `json:"profile_picture"`
	Link           string `json:"link"`
	QRURL          string `json:"qr_url"`
	DownloadURL    string `json:"download_url"`
}
