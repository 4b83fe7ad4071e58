package response

type HealthErrorResponse struct {
	Status   string `json:"status"`
	Database string `json:"banco"`
	Message  string `json:"erro"`
}
