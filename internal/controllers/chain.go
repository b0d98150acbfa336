package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	balanceUrlPath  = "/api/v1/balance"
	transferUrlPath = "/api/v1/transfer"
)

// ChainController talks to the external on-chain ledger: balance reads
// for on-chain assets and transfers that settle fills. Transfers return
// the transaction hash used as the settlement reference.
type ChainController struct {
	clientController ClientCtrl
	cryptoController CryptoCtrl

	url string

	logger *logrus.Logger
}

func NewChainController(
	client ClientCtrl,
	crypto CryptoCtrl,
	url string,
	logger *logrus.Logger,
) *ChainController {
	return &ChainController{
		clientController: client,
		cryptoController: crypto,
		url:              url,
		logger:           logger,
	}
}

func (c *ChainController) GetBalance(owner, asset string) (decimal.Decimal, error) {
	baseURL, err := url.Parse(c.url)
	if err != nil {
		return decimal.Zero, err
	}

	baseURL.Path = path.Join(balanceUrlPath)

	q := baseURL.Query()
	q.Set("owner", owner)
	q.Set("asset", asset)
	q.Set("timestamp", fmt.Sprintf("%d", time.Now().Unix()*1000))

	sig := c.cryptoController.GetSignature(q.Encode())
	q.Set("signature", sig)

	baseURL.RawQuery = q.Encode()

	req, err := c.clientController.Send(http.MethodGet, baseURL, nil, true)
	if err != nil {
		return decimal.Zero, err
	}

	var out struct {
		Owner   string `json:"owner"`
		Asset   string `json:"asset"`
		Balance string `json:"balance"`
	}

	if err := json.Unmarshal(req, &out); err != nil {
		return decimal.Zero, err
	}

	balance, err := decimal.NewFromString(out.Balance)
	if err != nil {
		return decimal.Zero, err
	}

	return balance, nil
}

func (c *ChainController) Transfer(from, to, asset string, amount decimal.Decimal) (string, error) {
	baseURL, err := url.Parse(c.url)
	if err != nil {
		return "", err
	}

	baseURL.Path = path.Join(transferUrlPath)

	q := baseURL.Query()
	q.Set("from", from)
	q.Set("to", to)
	q.Set("asset", asset)
	q.Set("amount", amount.String())
	q.Set("timestamp", fmt.Sprintf("%d", time.Now().Unix()*1000))

	sig := c.cryptoController.GetSignature(q.Encode())
	q.Set("signature", sig)

	baseURL.RawQuery = q.Encode()

	req, err := c.clientController.Send(http.MethodPost, baseURL, nil, true)
	if err != nil {
		return "", err
	}

	var out struct {
		TxHash string `json:"txHash"`
	}

	if err := json.Unmarshal(req, &out); err != nil {
		return "", err
	}

	return out.TxHash, nil
}
