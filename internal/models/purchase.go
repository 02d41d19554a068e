package models

import "time"

// Purchase ("compra") records a successful checkout. Value fields are
// immutable after creation; only the transaction status transitions.
type Purchase struct {
	ID              uint      `gorm:"column:id_compra;primaryKey" json:"idCompra"`
	UserID          string    `gorm:"column:id_usuario;size:30;not null" json:"idUsuario"`
	TierID          uint      `gorm:"column:id_localidad_detalle;not null" json:"idLocalidadDetalle"`
	Quantity        int       `gorm:"column:cantidad_boletas;not null" json:"cantidadBoletas"`
	TotalValue      int64     `gorm:"column:valor_total;not null" json:"valorTotal"`
	StatusID        uint      `gorm:"column:id_estado;not null" json:"idEstado"`
	PaymentMethodID uint      `gorm:"column:id_metodo_pago;not null" json:"idMetodoPago"`
	Date            time.Time `gorm:"column:fecha_compra;type:date;not null" json:"fechaCompra"`

	User          *User              `gorm:"foreignKey:UserID" json:"usuario,omitempty"`
	Tier          *PricingTier       `gorm:"foreignKey:TierID" json:"localidadDetalle,omitempty"`
	Status        *TransactionStatus `gorm:"foreignKey:StatusID" json:"estadoTransaccion,omitempty"`
	PaymentMethod *PaymentMethod     `gorm:"foreignKey:PaymentMethodID" json:"metodoPago,omitempty"`
}

func (Purchase) TableName() string { return "compras" }

type TransactionStatus struct {
	ID   uint   `gorm:"column:id_estado_transaccion;primaryKey" json:"idEstadoTransaccion"`
	Name string `gorm:"column:nombre;size:40;uniqueIndex;not null" json:"nombre"`
}

func (TransactionStatus) TableName() string { return "estado_transaccion" }

type PaymentMethod struct {
	ID   uint   `gorm:"column:id_metodo_pago;primaryKey" json:"idMetodoPago"`
	Name string `gorm:"column:nombre;size:40;uniqueIndex;not null" json:"nombre"`
}

func (PaymentMethod) TableName() string { return "metodo_pago" }
