package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Sellers() SellerRepository
	Products() ProductRepository
	Reviews() ReviewRepository
	Carts() CartRepository
	Orders() OrderRepository
	Lots() SellerLotRepository
}
