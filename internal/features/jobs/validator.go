package jobs

import (
	"errors"
	"strings"

	"github.com/joborbit/backend/internal/pkg/validator"
)

// ValidateJobRequest checks the fields the store and the listing queries
// depend on. Everything else is accepted as the client sent it.
func ValidateJobRequest(req *JobRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return errors.New("title is required")
	}
	if req.Deadline != "" && !validator.IsValidDate(req.Deadline) {
		return errors.New("deadline must be in YYYY-MM-DD format")
	}
	if req.Buyer.Email != "" && !validator.IsValidEmail(req.Buyer.Email) {
		return errors.New("buyer email is invalid")
	}
	return nil
}
