package lightningd

// GetinfoResponse the subset of getinfo exposed by the gateway
type GetinfoResponse struct {
	ID                string      `json:"id"`
	Alias             string      `json:"alias"`
	Color             string      `json:"color"`
	NumPeers          uint32      `json:"num_peers"`
	Blockheight       uint32      `json:"blockheight"`
	Network           string      `json:"network"`
	FeesCollectedMsat AmountField `json:"fees_collected_msat"`
	Version           string      `json:"version"`
}

type InvoiceRequest struct {
	AmountMsat  AmountField `json:"amount_msat"`
	Label       string      `json:"label"`
	Description string      `json:"description"`
	// Expiry in seconds, nil leaves the lightningd default
	Expiry *uint64 `json:"expiry,omitempty"`
}

type InvoiceResponse struct {
	Bolt11        string `json:"bolt11"`
	PaymentHash   string `json:"payment_hash"`
	PaymentSecret string `json:"payment_secret"`
	ExpiresAt     uint64 `json:"expires_at"`
}

type ListfundsOutput struct {
	TxID       string      `json:"txid"`
	Output     uint32      `json:"output"`
	AmountMsat AmountField `json:"amount_msat"`
	Status     string      `json:"status"`
}

type ListfundsChannel struct {
	PeerID        string      `json:"peer_id"`
	OurAmountMsat AmountField `json:"our_amount_msat"`
	AmountMsat    AmountField `json:"amount_msat"`
	FundingTxID   string      `json:"funding_txid"`
	FundingOutput uint32      `json:"funding_output"`
	Connected     bool        `json:"connected"`
}

type ListfundsResponse struct {
	Outputs  []ListfundsOutput  `json:"outputs"`
	Channels []ListfundsChannel `json:"channels"`
}

type PayRequest struct {
	Bolt11 string `json:"bolt11"`
	// AmountMsat is only set for invoices without an amount
	AmountMsat *AmountField `json:"amount_msat,omitempty"`
}

type PayResponse struct {
	PaymentPreimage string      `json:"payment_preimage"`
	PaymentHash     string      `json:"payment_hash"`
	AmountMsat      AmountField `json:"amount_msat"`
	AmountSentMsat  AmountField `json:"amount_sent_msat"`
	Status          string      `json:"status"`
	Parts           uint32      `json:"parts"`
}
