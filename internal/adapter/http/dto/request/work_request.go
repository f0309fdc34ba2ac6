package request

type CreateWorkRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
}
