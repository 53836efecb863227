// Package groupuser serves the group-users REST resource.
package groupuser

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
	// Path is the collection path of group users.
	Path = handler.APIPath + "/group-users"

	// EntityName names group users in errors and metrics.
	EntityName = "groupUser"
)

// Descriptor of the group-users resource.
var Descriptor = resource.Descriptor{
	EntityName: EntityName,
	Path:       Path,
	Columns: map[string]string{
		"id":      "id",
		"groupId": "group_id",
		"userId":  "user_id",
	},
}

// Service registers the group-users routes.
type Service struct {
	*resource.Resource[models.GroupUser, *models.GroupUser]
}

var _ handler.Service = (*Service)(nil)

// Handler is the exported instance.
var Handler = Service{}

// Init registers routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return handler.ErrNilACD
	}

	s.Resource = resource.New(Descriptor, store.New[models.GroupUser](db, EntityName))
	s.Register(app)

	return nil
}
