package handler

import qrservice "github.com/Yersat/chatcode/internal/modules/qrcode/service"

type Handler struct {
	qrService *qrservice.Service
}

func New(qrService *qrservice.Service) *Handler {
	return &Handler{qrService: qrService}
}
