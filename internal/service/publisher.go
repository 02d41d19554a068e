package service

// Publisher is the outbound message channel the services notify after a
// state change. Publishing is best effort: a failed publish never rolls
// back the transaction that triggered it.
type Publisher interface {
	Publish(routingKey string, payload any) error
}

const (
	RoutingKeyPurchaseCreated = "compra.creada"
	RoutingKeyArtistBooked    = "artista.asociado"
)
