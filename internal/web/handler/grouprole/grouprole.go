// Package grouprole serves the group-roles REST resource.
package grouprole

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/sevenup/cpm/internal/config"
	"github.com/sevenup/cpm/internal/db/models"
	"github.com/sevenup/cpm/internal/db/store"
	"github.com/sevenup/cpm/internal/web/handler"
	"github.com/sevenup/cpm/internal/web/handler/resource"
)

const (
	// Path is the collection path of group roles.
	Path = handler.APIPath + "/group-roles"

	// EntityName names group roles in errors and metrics.
	EntityName = "groupRole"
)

// Descriptor of the group-roles resource.
var Descriptor = resource.Descriptor{
	EntityName: EntityName,
	Path:       Path,
	Columns: map[string]string{
		"id":      "id",
		"groupId": "group_id",
		"roleId":  "role_id",
	},
}

// Service registers the group-roles routes.
type Service struct {
	*resource.Resource[models.GroupRole, *models.GroupRole]
}

var _ handler.Service = (*Service)(nil)

// Handler is the exported instance.
var Handler = Service{}

// Init registers routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return handler.ErrNilACD
	}

	s.Resource = resource.New(Descriptor, store.New[models.GroupRole](db, EntityName))
	s.Register(app)

	return nil
}
