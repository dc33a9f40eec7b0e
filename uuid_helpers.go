package identity

import (
	"strings"

	"github.com/google/uuid"
)

func parseUserID(id string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(id))
}
