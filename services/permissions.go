package services

import (
	"ondernemercentraal.nl/configs"
	"ondernemercentraal.nl/configs/configslog"
	"ondernemercentraal.nl/models"
	"ondernemercentraal.nl/pkg/apperrors"

	"go.uber.org/zap"
)

// validateUserPermission checks the acting user against the role mapping.
// The denial shown to the user is generic; the log line carries the detail.
func validateUserPermission(user *models.User, required configs.Permission) error {
	if user == nil || !user.HasPermission(required) {
		name := ""
		if user != nil {
			name = user.Name
		}
		configslog.Log.Error("Gebruiker heeft niet de vereiste rechten",
			zap.String("user", name),
			zap.String("required_permission", string(required)),
		)
		return apperrors.PermissionDenied("Je hebt niet de benodigde rechten om deze actie uit te voeren.")
	}
	return nil
}
