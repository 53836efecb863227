package resource

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/sevenup/cpm/internal/db/store"
	"github.com/sevenup/cpm/internal/web/handler"
)

const directionRule = "oneof=asc desc"

// sortOrders parses every sort parameter. A parameter is a comma separated list
// of properties, optionally followed by a direction that applies to all of them:
//
//	sort=id,desc
//	sort=groupId,roleId,asc&sort=id,desc
//
// Empty segments and unknown properties are skipped, an unknown direction is
// treated as a property. Without any usable property the store orders by id.
func (r *Resource[T, P]) sortOrders(c *fiber.Ctx) []store.Order {
	var orders []store.Order

	for _, raw := range c.Context().QueryArgs().PeekMulti(handler.QuerySort) {
		parts := make([]string, 0, 2)

		for _, p := range strings.Split(string(raw), ",") {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}

		if len(parts) == 0 {
			continue
		}

		desc := false

		if last := strings.ToLower(parts[len(parts)-1]); len(parts) > 1 && r.isDirection(last) {
			desc = last == "desc"
			parts = parts[:len(parts)-1]
		}

		for _, p := range parts {
			column, ok := r.desc.Columns[p]
			if !ok {
				log.Debug().Str("entity", r.desc.EntityName).Str("property", p).Msg("ignoring unknown sort property")

				continue
			}

			orders = append(orders, store.Order{Column: column, Desc: desc})
		}
	}

	return orders
}

func (r *Resource[T, P]) isDirection(s string) bool {
	return r.validator.Var(s, directionRule) == nil
}
