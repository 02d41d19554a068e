package models

type Artist struct {
	ID           uint   `gorm:"column:id_artista;primaryKey" json:"idArtista"`
	Name         string `gorm:"column:nombre;size:40;uniqueIndex;not null" json:"nombre"`
	GenreID      uint   `gorm:"column:id_genero_musical;not null" json:"idGeneroMusical"`
	HomeTownID   uint   `gorm:"column:id_ciudad_origen;not null" json:"idCiudadOrigen"`

	Genre    *MusicGenre `gorm:"foreignKey:GenreID" json:"generoMusical,omitempty"`
	HomeTown *Municipio  `gorm:"foreignKey:HomeTownID" json:"ciudadOrigen,omitempty"`

	Bookings []ArtistBooking `gorm:"foreignKey:ArtistID" json:"artistaEventos,omitempty"`
}

func (Artist) TableName() string { return "artistas" }

// ArtistBooking pins an artist to an event. There is no update path:
// re-booking is delete and recreate.
type ArtistBooking struct {
	ID       uint `gorm:"column:id_artista_evento;primaryKey" json:"idArtistaEvento"`
	EventID  uint `gorm:"column:id_evento;not null" json:"idEvento"`
	ArtistID uint `gorm:"column:id_artista;not null" json:"idArtista"`

	Event  *Event  `gorm:"foreignKey:EventID" json:"evento,omitempty"`
	Artist *Artist `gorm:"foreignKey:ArtistID" json:"artista,omitempty"`
}

func (ArtistBooking) TableName() string { return "artista_eventos" }

type MusicGenre struct {
	ID   uint   `gorm:"column:id_genero_musical;primaryKey" json:"idGeneroMusical"`
	Name string `gorm:"column:nombre;size:40;uniqueIndex;not null" json:"nombre"`
}

func (MusicGenre) TableName() string { return "genero_musical" }
