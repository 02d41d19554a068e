package models

// Locality is a seating area or price category within a venue ("localidad").
type Locality struct {
	ID   uint   `gorm:"column:id_localidad;primaryKey" json:"idLocalidad"`
	Name string `gorm:"column:nombre;size:40;uniqueIndex;not null" json:"nombre"`

	Tiers []PricingTier `gorm:"foreignKey:LocalityID" json:"localidadDetalles,omitempty"`
}

func (Locality) TableName() string { return "localidades" }

type Municipio struct {
	ID             uint   `gorm:"column:id_municipio;primaryKey" json:"idMunicipio"`
	Name           string `gorm:"column:nombre;size:60;not null" json:"nombre"`
	DepartamentoID uint   `gorm:"column:id_departamento;not null" json:"idDepartamento"`

	Departamento *Departamento `gorm:"foreignKey:DepartamentoID" json:"departamento,omitempty"`
}

func (Municipio) TableName() string { return "municipio" }

type Departamento struct {
	ID   uint   `gorm:"column:id_departamento;primaryKey" json:"idDepartamento"`
	Name string `gorm:"column:nombre;size:60;uniqueIndex;not null" json:"nombre"`
}

func (Departamento) TableName() string { return "departamento" }
