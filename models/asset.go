package models

const (
	AUXG  = "AUXG"
	AUXS  = "AUXS"
	AUXPT = "AUXPT"
	AUXPD = "AUXPD"

	AUXM = "AUXM"
	USDC = "USDC"
	ETH  = "ETH"

	// TreasuryAccount is the platform side of every on-chain settlement.
	TreasuryAccount = "treasury"
)

// Asset describes one entry of the asset table shared by validation,
// balance lookup and settlement. OnChain assets live on the external
// ledger; the rest are internal balances.
type Asset struct {
	Symbol     string
	Name       string
	OnChain    bool
	Tradable   bool
	Settlement bool
}

var Assets = map[string]Asset{
	AUXG:  {Symbol: AUXG, Name: "Auxite Gold", OnChain: true, Tradable: true},
	AUXS:  {Symbol: AUXS, Name: "Auxite Silver", OnChain: true, Tradable: true},
	AUXPT: {Symbol: AUXPT, Name: "Auxite Platinum", OnChain: true, Tradable: true},
	AUXPD: {Symbol: AUXPD, Name: "Auxite Palladium", OnChain: true, Tradable: true},

	AUXM: {Symbol: AUXM, Name: "Auxite Money", Settlement: true},
	USDC: {Symbol: USDC, Name: "USD Coin", OnChain: true, Settlement: true},
	ETH:  {Symbol: ETH, Name: "Ether", OnChain: true, Settlement: true},
}

func TradeAsset(symbol string) (Asset, bool) {
	a, ok := Assets[symbol]
	if !ok || !a.Tradable {
		return Asset{}, false
	}
	return a, true
}

func SettlementAsset(symbol string) (Asset, bool) {
	a, ok := Assets[symbol]
	if !ok || !a.Settlement {
		return Asset{}, false
	}
	return a, true
}
