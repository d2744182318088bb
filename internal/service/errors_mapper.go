// SPDX-License-Identifier: Apache-2.0

package service

import (
	"errors"

	"github.com/Hipolitoneto/receitas/internal/adapter"
)

// mapRemoteError translates the adapter's transport error into a service
// business error. Transient errors pass through unchanged so callers can
// still branch on [adapter.ErrTransient].
func mapRemoteError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrSessionExpired):
		return ErrSessionExpired
	case errors.Is(err, adapter.ErrUnauthorized):
		return ErrNotSignedIn
	case errors.Is(err, adapter.ErrForbidden):
		return ErrNotAllowed
	case errors.Is(err, adapter.ErrNotFound):
		return ErrRecipeNotFound
	}

	return err
}
