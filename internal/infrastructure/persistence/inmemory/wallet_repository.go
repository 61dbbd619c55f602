package inmemory

import (
	"errors"
	"sort"
	"sync"

	"github.com/rcarvalho-pb/payment_methods-go/internal/domain/wallet"
)

var ErrWalletNotFound = errors.New("wallet not found")

type WalletRepository struct {
	mu      sync.RWMutex
	wallets map[string]*wallet.Wallet
}

func NewWalletRepository() *WalletRepository {
	return &WalletRepository{
		mu:      sync.RWMutex{},
		wallets: make(map[string]*wallet.Wallet),
	}
}

func (r *WalletRepository) Save(w *wallet.Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.wallets[w.ID] = w
	return nil
}

func (r *WalletRepository) FindByID(id string) (*wallet.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	w, ok := r.wallets[id]
	if !ok {
		return nil, ErrWalletNotFound
	}

	return w, nil
}

func (r *WalletRepository) All() ([]*wallet.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wallets := make([]*wallet.Wallet, 0, len(r.wallets))
	for _, w := range r.wallets {
		wallets = append(wallets, w)
	}

	sort.Slice(wallets, func(i, j int) bool {
		return wallets[i].ID < wallets[j].ID
	})

	return wallets, nil
}
