package models

import "time"

type Event struct {
	ID           uint      `gorm:"column:id_evento;primaryKey" json:"idEvento"`
	Name         string    `gorm:"column:nombre;size:40;uniqueIndex;not null" json:"nombre"`
	Description  string    `gorm:"column:descripcion;type:text" json:"descripcion"`
	StartDate    time.Time `gorm:"column:fecha_inicio;type:date;not null" json:"fechaInicio"`
	StartTime    string    `gorm:"column:hora_inicio;size:8" json:"horaInicio"`
	EndDate      time.Time `gorm:"column:fecha_fin;type:date;not null" json:"fechaFin"`
	EndTime      string    `gorm:"column:hora_fin;size:8" json:"horaFin"`
	Venue        string    `gorm:"column:lugar_realizacion;size:60" json:"lugarRealizacion"`
	MunicipioID  uint      `gorm:"column:id_municipio;not null" json:"idMunicipio"`
	StatusID     uint      `gorm:"column:id_estado_evento;not null" json:"idEstadoEvento"`

	Municipio *Municipio   `gorm:"foreignKey:MunicipioID" json:"municipio,omitempty"`
	Status    *EventStatus `gorm:"foreignKey:StatusID" json:"estadoEvento,omitempty"`

	Tiers    []PricingTier   `gorm:"foreignKey:EventID" json:"localidadDetalles,omitempty"`
	Bookings []ArtistBooking `gorm:"foreignKey:EventID" json:"artistaEventos,omitempty"`
}

func (Event) TableName() string { return "eventos" }

type EventStatus struct {
	ID   uint   `gorm:"column:id_estado_evento;primaryKey" json:"idEstadoEvento"`
	Name string `gorm:"column:nombre;size:40;uniqueIndex;not null" json:"nombre"`
}

func (EventStatus) TableName() string { return "estado_evento" }
