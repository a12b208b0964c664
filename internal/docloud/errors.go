package docloud

import (
	"errors"
	"net/http"

	"github.com/digitalocean/godo"

	"github.com/digitalocean/ansible-collection-sub001/internal/model"
)

// APIErrorFrom translates a godo failure into the envelope error shape.
// Non-API failures (network, context) carry the error text with no status.
func APIErrorFrom(err error) *model.APIError {
	var errResp *godo.ErrorResponse
	if errors.As(err, &errResp) {
		status := 0
		reason := ""
		if errResp.Response != nil {
			status = errResp.Response.StatusCode
			reason = http.StatusText(status)
		}
		return &model.APIError{
			Message:    errResp.Message,
			StatusCode: status,
			Reason:     reason,
		}
	}
	return &model.APIError{Message: err.Error()}
}
