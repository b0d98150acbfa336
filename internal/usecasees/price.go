package usecasees

import (
	"encoding/json"
	"net/http"
	"net/url"
	"path"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"auxite/internal/controllers"
	"auxite/internal/usecasees/structs"
)

const quoteUrlPath = "/api/v1/quote"

type priceUseCase struct {
	clientController controllers.ClientCtrl

	url string

	logger *logrus.Logger
}

func NewPriceUseCase(
	client controllers.ClientCtrl,
	url string,
	logger *logrus.Logger,
) *priceUseCase {
	return &priceUseCase{
		clientController: client,
		url:              url,
		logger:           logger,
	}
}

func (u *priceUseCase) Quote(asset string) (*structs.Quote, error) {
	baseURL, err := url.Parse(u.url)
	if err != nil {
		return nil, err
	}

	baseURL.Path = path.Join(quoteUrlPath)

	q := baseURL.Query()
	q.Set("asset", asset)

	baseURL.RawQuery = q.Encode()

	req, err := u.clientController.Send(http.MethodGet, baseURL, nil, false)
	if err != nil {
		return nil, err
	}

	var out struct {
		Asset string `json:"asset"`
		Ask   string `json:"ask"`
		Bid   string `json:"bid"`
	}

	if err := json.Unmarshal(req, &out); err != nil {
		return nil, err
	}

	ask, err := decimal.NewFromString(out.Ask)
	if err != nil {
		return nil, err
	}

	bid, err := decimal.NewFromString(out.Bid)
	if err != nil {
		return nil, err
	}

	return &structs.Quote{
		Asset: out.Asset,
		Ask:   ask,
		Bid:   bid,
	}, nil
}
