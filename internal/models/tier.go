package models

// PricingTier is a priced ticket category for one locality at one event
// ("localidad detalle"). Available is the authoritative remaining-ticket
// counter; it is mutated only through the availability ledger's conditional
// updates, never by plain writes.
type PricingTier struct {
	ID         uint  `gorm:"column:id_localidad_detalle;primaryKey" json:"idLocalidadDetalle"`
	Price      int64 `gorm:"column:precio;not null" json:"precio"`
	Capacity   int   `gorm:"column:cantidad_total;not null" json:"cantidadTotal"`
	Available  int   `gorm:"column:cantidad_disponible;not null" json:"cantidadDisponible"`
	LocalityID uint  `gorm:"column:id_localidad;not null;uniqueIndex:idx_localidad_evento" json:"idLocalidad"`
	EventID    uint  `gorm:"column:id_evento;not null;uniqueIndex:idx_localidad_evento" json:"idEvento"`

	Locality *Locality `gorm:"foreignKey:LocalityID" json:"localidad,omitempty"`
	Event    *Event    `gorm:"foreignKey:EventID" json:"evento,omitempty"`
}

func (PricingTier) TableName() string { return "localidad_detalle" }
