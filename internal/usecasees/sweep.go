package usecasees

import (
	"context"
	"fmt"
	"runtime/debug"
	"sort"
	"time"

	"github.com/ic2hrmk/promtail"
	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	mongoRepo "auxite/internal/repository/mongo"
	mongoStructs "auxite/internal/repository/mongo/structs"
	redisRepo "auxite/internal/repository/redis"
	"auxite/internal/usecasees/structs"
	"auxite/models"
)

type sweepUseCase struct {
	orderUseCase *orderUseCase

	orderRepo    redisRepo.OrderRepo
	settingsRepo mongoRepo.SettingsRepo

	priceUseCase *priceUseCase

	cron *cron.Cron

	notifier *Notifier

	promTail promtail.Client

	logger *logrus.Logger
}

func NewSweepUseCase(
	orderUseCase *orderUseCase,
	orderRepo redisRepo.OrderRepo,
	settingsRepo mongoRepo.SettingsRepo,
	priceUseCase *priceUseCase,
	cron *cron.Cron,
	notifier *Notifier,
	promTail promtail.Client,
	logger *logrus.Logger,
) *sweepUseCase {
	return &sweepUseCase{
		orderUseCase: orderUseCase,
		orderRepo:    orderRepo,
		settingsRepo: settingsRepo,
		priceUseCase: priceUseCase,
		cron:         cron,
		notifier:     notifier,
		promTail:     promTail,
		logger:       logger,
	}
}

// Run scans the pending orders of one asset against the current quote:
// buys against the ask, sells against the bid. Past-expiry orders are
// expired on the way. Each order's outcome is independent; failures are
// collected and the scan keeps going.
func (u *sweepUseCase) Run(ctx context.Context, asset string, ask, bid decimal.Decimal) (*structs.SweepResult, error) {
	if _, ok := models.TradeAsset(asset); !ok {
		return nil, ErrUnknownAsset
	}

	if ask.LessThanOrEqual(decimal.Zero) || bid.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidPrice
	}

	res := &structs.SweepResult{Errors: []string{}}

	u.runSide(ctx, asset, models.SideBuy, ask, res)
	u.runSide(ctx, asset, models.SideSell, bid, res)

	return res, nil
}

func (u *sweepUseCase) runSide(ctx context.Context, asset string, side models.OrderSide, price decimal.Decimal, res *structs.SweepResult) {
	ids, err := u.orderRepo.PendingByAsset(ctx, asset, side)
	if err != nil {
		u.logError(err)
		u.orderUseCase.countMetric(structs.MetricSweepError)
		res.Errors = append(res.Errors, err.Error())
		return
	}

	orders := make([]models.Order, 0, len(ids))
	for _, id := range ids {
		o, err := u.orderRepo.GetByID(ctx, id)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("order %s: %v", id, err))
			continue
		}
		orders = append(orders, *o)
	}

	sortPriority(orders, side)

	now := time.Now()

	for i := range orders {
		o := &orders[i]

		if o.IsExpired(now) {
			if _, err := u.orderUseCase.Expire(ctx, o.ID); err != nil && err != ErrInvalidState {
				res.Errors = append(res.Errors, fmt.Sprintf("order %s: %v", o.ID, err))
			}
			continue
		}

		var eligible bool
		switch side {
		case models.SideBuy:
			eligible = o.LimitPrice.GreaterThanOrEqual(price)
		case models.SideSell:
			eligible = o.LimitPrice.LessThanOrEqual(price)
		}

		if !eligible {
			continue
		}

		if _, err := u.orderUseCase.Fill(ctx, o.ID, price); err != nil {
			u.orderUseCase.countMetric(structs.MetricSweepError)
			res.Errors = append(res.Errors, fmt.Sprintf("order %s: %v", o.ID, err))
			continue
		}

		res.FilledCount++
	}
}

// sortPriority orders by price priority, FIFO by creation time within
// an equal price level.
func sortPriority(orders []models.Order, side models.OrderSide) {
	sort.SliceStable(orders, func(i, j int) bool {
		cmp := orders[i].LimitPrice.Cmp(orders[j].LimitPrice)
		if cmp == 0 {
			return orders[i].CreatedAt.Before(orders[j].CreatedAt)
		}
		if side == models.SideBuy {
			return cmp > 0
		}
		return cmp < 0
	})
}

// Schedule registers one cron entry per enabled asset and starts the
// scheduler. Each tick fetches a fresh quote and runs the sweep.
func (u *sweepUseCase) Schedule() error {
	settingsList, err := u.settingsRepo.List()
	if err != nil {
		return err
	}

	for _, s := range settingsList {
		if s.Status != mongoStructs.Enabled.ToString() {
			continue
		}

		asset := s.Asset
		if _, err := u.cron.AddFunc(s.SweepSpec, func() {
			u.tick(asset)
		}); err != nil {
			return err
		}
	}

	// Housekeeping pass over the global pending set, so orders on
	// disabled markets still expire.
	if _, err := u.cron.AddFunc("@hourly", func() {
		u.expirePass(context.Background())
	}); err != nil {
		return err
	}

	u.cron.Start()

	return nil
}

func (u *sweepUseCase) expirePass(ctx context.Context) {
	ids, err := u.orderRepo.PendingAll(ctx)
	if err != nil {
		u.logError(err)
		return
	}

	now := time.Now()

	for _, id := range ids {
		o, err := u.orderRepo.GetByID(ctx, id)
		if err != nil {
			u.logError(err)
			continue
		}

		if !o.IsExpired(now) {
			continue
		}

		if _, err := u.orderUseCase.Expire(ctx, o.ID); err != nil && err != ErrInvalidState {
			u.logError(err)
		}
	}
}

func (u *sweepUseCase) tick(asset string) {
	quote, err := u.priceUseCase.Quote(asset)
	if err != nil {
		u.logError(err)
		return
	}

	res, err := u.Run(context.Background(), asset, quote.Ask, quote.Bid)
	if err != nil {
		u.logError(err)
		return
	}

	if u.promTail != nil {
		u.promTail.Debugf("sweep %s: %+v", asset, res)
	}

	if res.FilledCount > 0 || len(res.Errors) > 0 {
		if u.notifier != nil {
			u.notifier.Enqueue(fmt.Sprintf("[ Sweep ]\nasset:\t%s\nfilled:\t%d\nerrors:\t%d",
				asset,
				res.FilledCount,
				len(res.Errors)))
		}
	}
}

func (u *sweepUseCase) logError(err error) {
	u.logger.
		WithError(err).
		Error(string(debug.Stack()))

	if u.promTail != nil {
		u.promTail.Errorf("sweepUseCase: %+v", err)
	}
}
