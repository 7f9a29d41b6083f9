package repository

// Forage defines the data access required by the forage service
type Forage interface {
	TxBeginner
}
