package classifier

import (
	"strings"

	"github.com/auto-dns/notifyhealth/internal/domain"
	"github.com/auto-dns/notifyhealth/internal/engine"
)

// ContainerName picks the display name of a listed container: its first non-empty name with
// one leading "/" removed, else its id.
func ContainerName(c engine.Container) (string, error) {
	for _, name := range c.Names {
		if name == "" {
			continue
		}
		if trimmed := strings.TrimPrefix(name, "/"); trimmed != "" {
			return trimmed, nil
		}
		break
	}
	if c.ID == "" {
		return "", domain.NewDataIntegrityError("engine reported a container with neither name nor id")
	}
	return c.ID, nil
}
