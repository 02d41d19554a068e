package dto

type CreatePurchaseRequest struct {
	UserID          string `json:"idUsuario" validate:"required,max=30"`
	TierID          uint   `json:"idLocalidadDetalle" validate:"required"`
	Quantity        int    `json:"cantidadBoletas" validate:"required"`
	PaymentMethodID uint   `json:"idMetodoPago" validate:"required"`
}

type UpdatePurchaseStatusRequest struct {
	StatusID uint `json:"idEstado" validate:"required"`
}

type CreateBookingRequest struct {
	ArtistID uint `json:"idArtista" validate:"required"`
	EventID  uint `json:"idEvento" validate:"required"`
}

// EventRequest covers both create and update. Dates arrive as YYYY-MM-DD
// and times as HH:MM, matching the date-only columns.
type EventRequest struct {
	Name        string `json:"nombre" validate:"required,max=40"`
	Description string `json:"descripcion"`
	StartDate   string `json:"fechaInicio" validate:"required,datetime=2006-01-02"`
	StartTime   string `json:"horaInicio" validate:"required,datetime=15:04"`
	EndDate     string `json:"fechaFin" validate:"required,datetime=2006-01-02"`
	EndTime     string `json:"horaFin" validate:"required,datetime=15:04"`
	Venue       string `json:"lugarRealizacion" validate:"max=60"`
	MunicipioID uint   `json:"idMunicipio" validate:"required"`
	StatusID    uint   `json:"idEstadoEvento" validate:"required"`
}

type CreateTierRequest struct {
	LocalityID uint  `json:"idLocalidad" validate:"required"`
	EventID    uint  `json:"idEvento" validate:"required"`
	Price      int64 `json:"precio" validate:"gte=0"`
	Capacity   int   `json:"cantidadTotal" validate:"required,gt=0"`
}

type UpdateTierRequest struct {
	Price    int64 `json:"precio" validate:"gte=0"`
	Capacity int   `json:"cantidadTotal" validate:"required,gt=0"`
}

type ArtistRequest struct {
	Name       string `json:"nombre" validate:"required,max=40"`
	GenreID    uint   `json:"idGeneroMusical" validate:"required"`
	HomeTownID uint   `json:"idCiudadOrigen" validate:"required"`
}

type RegisterUserRequest struct {
	DocumentType string `json:"tipoDocumento" validate:"required,max=10"`
	ID           string `json:"numIdentificacion" validate:"required,max=30"`
	FirstName    string `json:"nombres" validate:"required,max=40"`
	LastName     string `json:"apellidos" validate:"required,max=40"`
	Email        string `json:"correo" validate:"required,email,max=100"`
	Password     string `json:"pass" validate:"required,min=6"`
	Phone        string `json:"telefono" validate:"max=15"`
	RoleID       uint   `json:"idRol" validate:"required"`
}

type UpdateUserRequest struct {
	DocumentType string `json:"tipoDocumento" validate:"required,max=10"`
	FirstName    string `json:"nombres" validate:"required,max=40"`
	LastName     string `json:"apellidos" validate:"required,max=40"`
	Email        string `json:"correo" validate:"required,email,max=100"`
	Phone        string `json:"telefono" validate:"max=15"`
	RoleID       uint   `json:"idRol" validate:"required"`
}

type ChangePasswordRequest struct {
	Password string `json:"pass" validate:"required,min=6"`
}

type NameRequest struct {
	Name string `json:"nombre" validate:"required,max=40"`
}

type LoginRequest struct {
	ID       string `json:"numIdentificacion" validate:"required"`
	Password string `json:"pass" validate:"required"`
}
