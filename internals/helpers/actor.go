// file: internals/helpers/actor.go
package helper

import (
	"strconv"
	"strings"

	"dimensiku_backend/internals/configs"

	"github.com/gofiber/fiber/v2"
)

// ActorID membaca identitas aktor dari header X-Actor-ID.
// Header kosong/invalid jatuh ke configs.DefaultActorID (audit columns
// tetap terisi walau console belum mengirim identitas).
func ActorID(c *fiber.Ctx) int {
	raw := strings.TrimSpace(c.Get("X-Actor-ID"))
	if raw == "" {
		return configs.DefaultActorID
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return configs.DefaultActorID
	}
	return id
}
