package dtos

type AdminPublishRequest struct {
	Message string `form:"message" json:"message"`
}
