package generator

import (
	"fmt"
	"path"
	"strconv"
	"time"

	"github.com/stackgen/cli/internal/project"
)

// DieselDownSQL is the body of the generated down migration.
const DieselDownSQL = "-- Undo init"

// dieselStamp is the folder prefix layout diesel uses for migrations.
const dieselStamp = "2006-01-02-150405"

// MigrationLayout names the files of the initial migration.
type MigrationLayout struct {
	// Up receives the rendered init.sql template.
	Up string

	// Down is empty for layouts without a down migration.
	Down string
}

// LayoutFor returns where the initial migration goes for orm, named from ts in UTC.
// sqlx and SeaORM share a single timestamped file; diesel uses a dated folder.
func LayoutFor(orm project.ORM, ts time.Time) MigrationLayout {
	ts = ts.UTC()
	switch orm {
	case project.Diesel:
		dir := path.Join(MigrationsDir, fmt.Sprintf("%s_init", ts.Format(dieselStamp)))
		return MigrationLayout{
			Up:   path.Join(dir, "up.sql"),
			Down: path.Join(dir, "down.sql"),
		}
	default:
		return MigrationLayout{
			Up: path.Join(MigrationsDir, strconv.FormatInt(ts.Unix(), 10)+"_init.sql"),
		}
	}
}
