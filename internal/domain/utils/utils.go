package utils

import (
	"slices"

	"github.com/spf13/viper"
)

// IsAdmin reports whether the user id belongs to a platform administrator.
func IsAdmin(userID string) bool {
	return slices.Contains(viper.GetStringSlice("settings.admin-ids"), userID)
}
