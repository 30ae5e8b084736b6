package database

import (
	"testing"

	"github.com/conveyor-dev/conveyor/pkg/database"
	"github.com/conveyor-dev/conveyor/test/util"
)

// NewTestClient returns a *database.Client on an isolated schema. CI
// points it at the service container named by CI_DATABASE_URL; local
// runs share one testcontainer across the package. Schema drop and
// connection close are registered on t.Cleanup by the setup helper.
func NewTestClient(t *testing.T) *database.Client {
	entClient, db := util.SetupTestDatabase(t)
	return database.NewClientFromEnt(entClient, db)
}
