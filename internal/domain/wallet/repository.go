package wallet

type Repository interface {
	Save(*Wallet) error
	FindByID(string) (*Wallet, error)
	All() ([]*Wallet, error)
}
