package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Invalidation drops keys by name prefix, so a query name that prefixes
// another would sweep the other query's entries with it.
func TestQueryNamesArePrefixFree(t *testing.T) {
	t.Parallel()

	names := []string{
		QueryCurrentUser,
		QueryVerificationMessages,
		QueryMyPosts,
		QueryRequestsToMyPosts,
		QueryMyRequests,
		QueryPostRequests,
	}

	for i, a := range names {
		for j, b := range names {
			if i == j {
				continue
			}
			assert.False(t, strings.HasPrefix(b, a), "%q prefixes %q", a, b)
		}
	}
}
