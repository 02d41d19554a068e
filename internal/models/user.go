package models

type User struct {
	DocumentType string `gorm:"column:tipo_documento;size:10;not null" json:"tipoDocumento"`
	ID           string `gorm:"column:num_identificacion;size:30;primaryKey" json:"numIdentificacion"`
	FirstName    string `gorm:"column:nombres;size:40;not null" json:"nombres"`
	LastName     string `gorm:"column:apellidos;size:40;not null" json:"apellidos"`
	Email        string `gorm:"column:correo;size:100;uniqueIndex;not null" json:"correo"`
	Password     string `gorm:"column:pass;size:255;not null" json:"-"`
	Phone        string `gorm:"column:telefono;size:15" json:"telefono,omitempty"`
	RoleID       uint   `gorm:"column:id_rol;not null" json:"idRol"`

	Role      *Role      `gorm:"foreignKey:RoleID" json:"rol,omitempty"`
	Purchases []Purchase `gorm:"foreignKey:UserID" json:"compras,omitempty"`
}

func (User) TableName() string { return "usuarios" }

type Role struct {
	ID   uint   `gorm:"column:id_rol;primaryKey" json:"idRol"`
	Name string `gorm:"column:nombre;size:40;uniqueIndex;not null" json:"nombre"`
}

func (Role) TableName() string { return "roles" }
