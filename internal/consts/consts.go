package consts

const (
	ApplicationName    = "FotoShare Server"
	ApplicationVersion = "v1.0.0"
)
