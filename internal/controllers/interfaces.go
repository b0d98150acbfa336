package controllers

import (
	"net/url"

	"github.com/shopspring/decimal"
)

//go:generate mockery --case=snake --name=ClientCtrl
//go:generate mockery --case=snake --name=CryptoCtrl
//go:generate mockery --case=snake --name=TgmCtrl
//go:generate mockery --case=snake --name=ChainCtrl

type ClientCtrl interface {
	Send(method string, url *url.URL, body []byte, useApiKey bool) ([]byte, error)
}

type CryptoCtrl interface {
	GetSignature(query string) string
}

type TgmCtrl interface {
	Send(text string) error
}

type ChainCtrl interface {
	GetBalance(owner, asset string) (decimal.Decimal, error)
	Transfer(from, to, asset string, amount decimal.Decimal) (string, error)
}
