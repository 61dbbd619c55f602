package httpapi

import "net/http"

func NewRouter(handler *WalletHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /wallets", handler.CreateWallet)
	mux.HandleFunc("GET /wallets", handler.ListWallets)
	mux.HandleFunc("POST /wallets/{id}/instruments", handler.RegisterInstrument)
	mux.HandleFunc("POST /wallets/{id}/charges", handler.Charge)

	return mux
}
