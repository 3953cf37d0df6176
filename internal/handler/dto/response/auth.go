package response

import "karoca-backend/internal/usecase/queries"

type LoginResponse struct {
	AccessToken string                       `json:"access_token"`
	Staff       *queries.AuthorizedStaffView `json:"staff"`
}
