package shared

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/fleetdesk-io/fleetdesk/database"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/lmittmann/tint"
	"gorm.io/gorm"
)

type Server = *echo.Group
type MiddlewareFunc = echo.MiddlewareFunc
type Context = echo.Context
type DB = *gorm.DB

func Ptr[T any](t T) *T {
	return &t
}

func SanitizeParam(s string) string {
	// remove trailing or leading slashes
	return strings.Trim(s, "/")
}

func DatabaseFactory() (DB, error) {
	db, err := database.NewConnection(os.Getenv("POSTGRES_HOST"), os.Getenv("POSTGRES_USER"), os.Getenv("POSTGRES_PASSWORD"), os.Getenv("POSTGRES_DB"), os.Getenv("POSTGRES_PORT"))

	return db, err
}

// InitLogger initializes the logger with a tint handler.
// tint is a simple logging library that allows to add colors to the log output.
// this is obviously not required, but it makes the logs easier to read.
func InitLogger() {
	w := os.Stderr

	// set global logger with custom options
	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      slog.LevelDebug,
			AddSource:  true,
			TimeFormat: time.Kitchen,
		}),
	))
}

func LoadConfig() error {
	return godotenv.Load()
}

var V = validator.New()

// BootstrapRBAC seeds the role hierarchy and the static permission matrix.
// Admins inherit everything an employee may do; drivers are a separate
// branch since they never create missions.
func BootstrapRBAC(rbac AccessControl) error {
	if err := rbac.InheritRole(RoleAdmin, RoleEmploye); err != nil { // an admin is an employe
		return err
	}

	if err := rbac.AllowRole(RoleAdmin, ObjectChauffeur, []Action{
		ActionCreate,
		ActionRead,
		ActionUpdate,
		ActionDelete,
	}); err != nil {
		return err
	}

	if err := rbac.AllowRole(RoleAdmin, ObjectEmploye, []Action{
		ActionCreate,
		ActionRead,
		ActionUpdate,
		ActionDelete,
	}); err != nil {
		return err
	}

	if err := rbac.AllowRole(RoleAdmin, ObjectVehicule, []Action{
		ActionCreate,
		ActionRead,
		ActionUpdate,
		ActionDelete,
	}); err != nil {
		return err
	}

	if err := rbac.AllowRole(RoleAdmin, ObjectConge, []Action{
		ActionRead,
		ActionUpdate, // accepting and refusing
	}); err != nil {
		return err
	}

	if err := rbac.AllowRole(RoleAdmin, ObjectMission, []Action{
		ActionDelete,
	}); err != nil {
		return err
	}

	if err := rbac.AllowRole(RoleEmploye, ObjectMission, []Action{
		ActionCreate,
		ActionRead,
		ActionUpdate,
	}); err != nil {
		return err
	}

	if err := rbac.AllowRole(RoleEmploye, ObjectChauffeur, []Action{
		ActionRead,
	}); err != nil {
		return err
	}

	if err := rbac.AllowRole(RoleEmploye, ObjectVehicule, []Action{
		ActionRead,
	}); err != nil {
		return err
	}

	if err := rbac.AllowRole(RoleChauffeur, ObjectMission, []Action{
		ActionRead,
		ActionUpdate, // the lifecycle transitions
	}); err != nil {
		return err
	}

	if err := rbac.AllowRole(RoleChauffeur, ObjectConge, []Action{
		ActionCreate,
		ActionRead,
	}); err != nil {
		return err
	}

	return nil
}
