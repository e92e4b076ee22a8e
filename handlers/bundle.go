package handlers

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	Booking *BookingHandler
	Catalog *CatalogHandler
	Storage *StorageHandler
	Chat    *ChatHandler
}
