// Package translation defines the translation service the controller talks to.
package translation

import (
	"context"

	"text-translator/models"
)

// Translator is the interface for translation backends.
type Translator interface {
	// Translate sends one request. A backend-reported failure is returned
	// as an error distinct from transport failures; see services.ApplicationError.
	Translate(ctx context.Context, req models.TranslateRequest) (models.TranslateResponse, error)
}

