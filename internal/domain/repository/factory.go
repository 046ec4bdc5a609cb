package repository

// Factory describes access to different domain repositories.
type Factory interface {
	People() PersonRepository
	Orders() OrderRepository
	Reports() ReportRepository
}
