package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Rfqs() RfqRepository
	Quotes() QuoteRepository
	Orders() OrderRepository
	Payments() PaymentRepository
	Inspections() InspectionRepository
}
