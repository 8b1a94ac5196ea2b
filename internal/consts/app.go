package consts

const (
	ApplicationName    = "ChatCode"
	ApplicationVersion = "1.4.0"
)
