package dto

type UpdateSettingRequest struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
}

type WebInfoResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
