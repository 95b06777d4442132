package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	mysql "github.com/go-sql-driver/mysql"

	"hotel-manager/services"
	"hotel-manager/utils"
)

// respondServiceError maps engine errors onto HTTP status codes. Everything
// the services return is recoverable at this boundary.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "error.notFound", err.Error())
	case errors.Is(err, services.ErrNotOwner):
		utils.JSONError(c, http.StatusForbidden, "error.notOwner", "booking belongs to another customer")
	case errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrInvalidStatusChange):
		utils.JSONError(c, http.StatusConflict, "error.stateConflict", err.Error())
	case errors.Is(err, services.ErrRoomUnavailable):
		utils.JSONError(c, http.StatusConflict, "error.roomUnavailable", "room is not available for the requested dates")
	case errors.Is(err, services.ErrDuplicateRoomNumber),
		errors.Is(err, services.ErrDuplicateTypeName),
		errors.Is(err, services.ErrDuplicateEmail):
		utils.JSONError(c, http.StatusConflict, "error.duplicate", err.Error())
	case errors.Is(err, services.ErrRoomBooked),
		errors.Is(err, services.ErrTypeInUse):
		utils.JSONError(c, http.StatusConflict, "error.inUse", err.Error())
	case errors.Is(err, services.ErrInvalidDateRange),
		errors.Is(err, services.ErrInvalidGuestCount),
		errors.Is(err, services.ErrUnknownStatus),
		errors.Is(err, services.ErrNegativePrice),
		errors.Is(err, services.ErrCheckInInPast),
		errors.Is(err, services.ErrMissingRequiredField):
		utils.JSONError(c, http.StatusBadRequest, "error.validation", err.Error())
	case isDuplicateEntryError(err):
		utils.JSONError(c, http.StatusConflict, "error.duplicate", "duplicate entry")
	case isForeignKeyError(err):
		utils.JSONError(c, http.StatusBadRequest, "error.foreignKey", "referenced record does not exist")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", err.Error())
	}
}

func isDuplicateEntryError(err error) bool {
	if err == nil {
		return false
	}
	var merr *mysql.MySQLError
	if errors.As(err, &merr) {
		return merr.Number == 1062
	}
	lower := strings.ToLower(err.Error())
	return strings.Contains(lower, "duplicate entry") || strings.Contains(lower, "unique constraint")
}

func isForeignKeyError(err error) bool {
	if err == nil {
		return false
	}
	var merr *mysql.MySQLError
	if errors.As(err, &merr) {
		return merr.Number == 1452
	}
	return strings.Contains(strings.ToLower(err.Error()), "foreign key")
}
