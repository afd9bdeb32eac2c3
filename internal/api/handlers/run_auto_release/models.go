package run_auto_release

import autoRelease "github.com/m04kA/SMC-PrepRoomService/internal/usecase/auto_release"

// AutoReleaseResponse HTTP response model
type AutoReleaseResponse struct {
	Released    int      `json:"released"`
	Examined    int      `json:"examined"`
	ReleasedIDs []string `json:"releasedIds"`
	Message     string   `json:"message"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *autoRelease.Response) *AutoReleaseResponse {
	ids := resp.ReleasedIDs
	if ids == nil {
		ids = []string{}
	}

	return &AutoReleaseResponse{
		Released:    resp.Released,
		Examined:    resp.Examined,
		ReleasedIDs: ids,
		Message:     resp.Message,
	}
}
