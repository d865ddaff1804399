package service

import (
	"errors"
	"fmt"
)

// ValidationKind identifies which ordered submission check failed
type ValidationKind string

const (
	MissingIdentification ValidationKind = "MISSING_IDENTIFICATION"
	MissingArea           ValidationKind = "MISSING_AREA"
	MissingSize           ValidationKind = "MISSING_SIZE"
	MissingColor          ValidationKind = "MISSING_COLOR"
	NoItemsSelected       ValidationKind = "NO_ITEMS_SELECTED"
	MissingPhoto          ValidationKind = "MISSING_PHOTO"
)

// ValidationError is a user-correctable submission failure. The message is
// shown to the requester verbatim as a blocking dialog.
type ValidationError struct {
	Kind      ValidationKind `json:"kind"`
	ItemLabel string         `json:"item,omitempty"`
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case MissingIdentification:
		return "Por favor, complete el campo 'Nombre Completo', es obligatorio."
	case MissingArea:
		return "Por favor, complete el campo 'Área', es obligatorio para la identificación."
	case MissingSize:
		return fmt.Sprintf("Debe seleccionar la Talla para %s.", e.ItemLabel)
	case MissingColor:
		return fmt.Sprintf("Debe seleccionar el Color para %s.", e.ItemLabel)
	case NoItemsSelected:
		return "Debe seleccionar al menos un artículo (Prenda o Zapato) para la solicitud."
	case MissingPhoto:
		return "Para el motivo de 'Cambio por accidentes o desgaste', debe adjuntar obligatoriamente una foto de evidencia."
	default:
		return "Solicitud inválida."
	}
}

var (
	// ErrSubmissionInFlight rejects a concurrent submission for the same user
	ErrSubmissionInFlight = errors.New("a submission is already in flight for this user")

	// ErrPhotoEncoding marks a photo blob that could not be encoded as an image
	ErrPhotoEncoding = errors.New("photo could not be encoded")

	// ErrPersistence marks a storage append that failed after retry exhaustion
	ErrPersistence = errors.New("failed to save the request after retries")
)
