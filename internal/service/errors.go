package service

import (
	"errors"
	"fmt"
)

var (
	ErrQuantityOutOfRange = errors.New("la cantidad de boletas debe estar entre 1 y 10")
	ErrInsufficientStock  = errors.New("no hay suficientes boletas disponibles")
	ErrSchedulingConflict = errors.New("el artista ya tiene un evento en esas fechas")

	ErrEventNotFound         = errors.New("evento no encontrado")
	ErrTierNotFound          = errors.New("localidad detalle no encontrada")
	ErrPurchaseNotFound      = errors.New("compra no encontrada")
	ErrArtistNotFound        = errors.New("artista no encontrado")
	ErrBookingNotFound       = errors.New("artista evento no encontrado")
	ErrUserNotFound          = errors.New("usuario no encontrado")
	ErrLocalityNotFound      = errors.New("localidad no encontrada")
	ErrMunicipioNotFound     = errors.New("municipio no encontrado")
	ErrEventStatusNotFound   = errors.New("estado de evento no encontrado")
	ErrTxStatusNotFound      = errors.New("estado de transaccion no encontrado")
	ErrPaymentMethodNotFound = errors.New("metodo de pago no encontrado")
	ErrGenreNotFound         = errors.New("genero musical no encontrado")
	ErrRoleNotFound          = errors.New("rol no encontrado")

	ErrEventNameTaken    = errors.New("ya existe un evento con ese nombre")
	ErrArtistNameTaken   = errors.New("ya existe un artista con ese nombre")
	ErrLocalityNameTaken = errors.New("ya existe una localidad con ese nombre")
	ErrRoleNameTaken     = errors.New("ya existe un rol con ese nombre")
	ErrEmailTaken        = errors.New("ya existe un usuario con ese correo")
	ErrUserIDTaken       = errors.New("ya existe un usuario con ese numero de identificacion")
	ErrTierDuplicate     = errors.New("la localidad ya esta asignada a ese evento")

	ErrEventDatesInvalid = errors.New("la fecha de fin no puede ser anterior a la de inicio")
	ErrTierCapacityLow   = errors.New("la cantidad total no puede quedar por debajo de las boletas vendidas")

	ErrEventHasTiers    = errors.New("el evento tiene localidades asociadas")
	ErrEventHasArtists  = errors.New("el evento tiene artistas asociados")
	ErrTierHasPurchases = errors.New("la localidad detalle tiene compras asociadas")
	ErrArtistHasEvents  = errors.New("el artista tiene eventos asociados")
	ErrUserHasPurchases = errors.New("el usuario tiene compras asociadas")
	ErrLocalityInUse    = errors.New("la localidad esta asignada a eventos")

	ErrInvalidCredentials = errors.New("credenciales invalidas")
)

// InsufficientStockError carries the counts behind a failed reservation so
// callers can report how many tickets were actually left.
type InsufficientStockError struct {
	TierID    uint
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("localidad detalle %d: se solicitaron %d boletas y quedan %d",
		e.TierID, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// SchedulingConflictError identifies the already-booked event that blocks a
// new artist booking.
type SchedulingConflictError struct {
	ArtistID           uint
	ConflictingEventID uint
}

func (e *SchedulingConflictError) Error() string {
	return fmt.Sprintf("artista %d: conflicto de fechas con el evento %d",
		e.ArtistID, e.ConflictingEventID)
}

func (e *SchedulingConflictError) Unwrap() error { return ErrSchedulingConflict }
