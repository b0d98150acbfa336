package usecasees

import (
	"context"
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ic2hrmk/promtail"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	mongodrv "go.mongodb.org/mongo-driver/mongo"

	"auxite/internal/controllers"
	mongoRepo "auxite/internal/repository/mongo"
	mongoStructs "auxite/internal/repository/mongo/structs"
	"auxite/internal/repository/postgres"
	redisRepo "auxite/internal/repository/redis"
	"auxite/internal/usecasees/structs"
	"auxite/models"
)

const (
	lockTTL = 10 * time.Second

	defaultExpiresInDays = 30
	maxExpiresInDays     = 365
)

type orderUseCase struct {
	chainController controllers.ChainCtrl

	orderRepo    redisRepo.OrderRepo
	balanceRepo  redisRepo.BalanceRepo
	lockRepo     redisRepo.LockRepo
	txRepo       postgres.TransactionRepo
	settingsRepo mongoRepo.SettingsRepo

	notifier *Notifier

	metrics map[structs.MetricConst]prometheus.Counter

	promTail promtail.Client

	logger *logrus.Logger
}

func NewOrderUseCase(
	chain controllers.ChainCtrl,
	orderRepo redisRepo.OrderRepo,
	balanceRepo redisRepo.BalanceRepo,
	lockRepo redisRepo.LockRepo,
	txRepo postgres.TransactionRepo,
	settingsRepo mongoRepo.SettingsRepo,
	notifier *Notifier,
	metrics map[structs.MetricConst]prometheus.Counter,
	promTail promtail.Client,
	logger *logrus.Logger,
) *orderUseCase {
	return &orderUseCase{
		chainController: chain,
		orderRepo:       orderRepo,
		balanceRepo:     balanceRepo,
		lockRepo:        lockRepo,
		txRepo:          txRepo,
		settingsRepo:    settingsRepo,
		notifier:        notifier,
		metrics:         metrics,
		promTail:        promTail,
		logger:          logger,
	}
}

// Create validates the request, reserves funds where the settlement
// asset is internal and persists the new pending order. On-chain
// settlement assets and sell-side metal holdings are only verified on
// the external ledger; they settle at fill time.
func (u *orderUseCase) Create(ctx context.Context, req *structs.CreateOrderRequest) (*models.Order, error) {
	owner := strings.ToLower(strings.TrimSpace(req.Owner))

	if req.Side != models.SideBuy && req.Side != models.SideSell {
		return nil, ErrInvalidSide
	}

	if req.Quantity.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	if req.LimitPrice.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidPrice
	}

	asset, ok := models.TradeAsset(req.Asset)
	if !ok {
		return nil, ErrUnknownAsset
	}

	settlement, ok := models.SettlementAsset(req.SettlementAsset)
	if !ok {
		return nil, ErrUnknownAsset
	}

	settings, err := u.settingsRepo.Load(asset.Symbol)
	if err != nil {
		if err == mongodrv.ErrNoDocuments {
			return nil, ErrMarketDisabled
		}
		u.logError(err)
		return nil, ErrStorageUnavailable
	}

	if settings.Status != mongoStructs.Enabled.ToString() {
		return nil, ErrMarketDisabled
	}

	if req.Quantity.LessThan(decimal.NewFromFloat(settings.MinQuantity)) {
		return nil, ErrInvalidAmount
	}

	days := req.ExpiresInDays
	if days <= 0 || days > maxExpiresInDays {
		days = defaultExpiresInDays
	}

	now := time.Now()
	cost := req.Quantity.Mul(req.LimitPrice)

	o := &models.Order{
		ID:              uuid.NewString(),
		Owner:           owner,
		Side:            req.Side,
		Asset:           asset.Symbol,
		Quantity:        req.Quantity,
		LimitPrice:      req.LimitPrice,
		SettlementAsset: settlement.Symbol,
		Status:          models.OrderStatusPending,
		FilledQuantity:  decimal.Zero,
		LockedAmount:    decimal.Zero,
		CreatedAt:       now,
		ExpiresAt:       now.AddDate(0, 0, days),
		UpdatedAt:       now,
	}

	switch req.Side {
	case models.SideBuy:
		if settlement.OnChain {
			bal, err := u.chainController.GetBalance(owner, settlement.Symbol)
			if err != nil {
				u.logError(err)
				return nil, mapLedgerErr(err)
			}
			if bal.LessThan(cost) {
				return nil, ErrInsufficientBalance
			}
		} else {
			o.LockedAmount = cost
		}

	case models.SideSell:
		holding, err := u.chainController.GetBalance(owner, asset.Symbol)
		if err != nil {
			u.logError(err)
			return nil, mapLedgerErr(err)
		}
		if holding.LessThan(req.Quantity) {
			return nil, ErrInsufficientBalance
		}
	}

	if o.LockedAmount.IsPositive() {
		// Debit and persist in one script so a crash cannot strand
		// reserved funds without an order.
		err := u.orderRepo.CreateWithDebit(ctx, o, redisRepo.BalanceChange{
			Owner: owner,
			Asset: settlement.Symbol,
			Delta: cost.Neg(),
		})
		if err != nil {
			if errors.Is(err, redisRepo.ErrInsufficientFunds) {
				return nil, ErrInsufficientBalance
			}
			u.logError(err)
			return nil, ErrStorageUnavailable
		}
	} else if err := u.orderRepo.Create(ctx, o); err != nil {
		u.logError(err)
		return nil, ErrStorageUnavailable
	}

	u.countMetric(structs.MetricOrderCreated)
	u.notify(fmt.Sprintf("[ Order ]\nid:\t%s\nside:\t%s\nasset:\t%s\nquantity:\t%s\nlimit:\t%s",
		o.ID,
		o.Side,
		o.Asset,
		o.Quantity,
		o.LimitPrice))

	return o, nil
}

// Cancel moves a pending order to cancelled and refunds the locked
// settlement funds for the unfilled remainder. Only the owner may
// cancel; a second cancel observes invalid state, never a second refund.
func (u *orderUseCase) Cancel(ctx context.Context, owner, id string) (*models.Order, error) {
	owner = strings.ToLower(strings.TrimSpace(owner))

	token, err := u.lockRepo.Acquire(ctx, id, lockTTL)
	if err != nil {
		return nil, mapLockErr(err)
	}
	defer u.releaseLock(ctx, id, token)

	o, err := u.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	if o.Owner != owner {
		return nil, ErrUnauthorized
	}

	if o.Status != models.OrderStatusPending {
		return nil, ErrInvalidState
	}

	out, err := u.release(ctx, o, models.OrderStatusCancelled, models.TxKindCancelRefund)
	if err != nil {
		return nil, err
	}

	u.countMetric(structs.MetricOrderCancelled)
	u.notify(fmt.Sprintf("[ Cancel ]\nid:\t%s\nasset:\t%s", o.ID, o.Asset))

	return out, nil
}

// Expire is the system-triggered variant of Cancel: no authorization
// check, same one-shot refund.
func (u *orderUseCase) Expire(ctx context.Context, id string) (*models.Order, error) {
	token, err := u.lockRepo.Acquire(ctx, id, lockTTL)
	if err != nil {
		return nil, mapLockErr(err)
	}
	defer u.releaseLock(ctx, id, token)

	o, err := u.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	if o.Status != models.OrderStatusPending {
		return nil, ErrInvalidState
	}

	out, err := u.release(ctx, o, models.OrderStatusExpired, models.TxKindExpireRefund)
	if err != nil {
		return nil, err
	}

	u.countMetric(structs.MetricOrderExpired)
	u.notify(fmt.Sprintf("[ Expire ]\nid:\t%s\nasset:\t%s", o.ID, o.Asset))

	return out, nil
}

// Fill executes the whole remaining quantity at execPrice. Buy orders
// must not pay above their limit, sell orders must not receive below it.
// Internally locked buy funds get the favorable-price difference back
// when execution beats the limit.
func (u *orderUseCase) Fill(ctx context.Context, id string, execPrice decimal.Decimal) (*models.Order, error) {
	if execPrice.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidPrice
	}

	token, err := u.lockRepo.Acquire(ctx, id, lockTTL)
	if err != nil {
		return nil, mapLockErr(err)
	}
	defer u.releaseLock(ctx, id, token)

	o, err := u.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	if o.Status != models.OrderStatusPending {
		return nil, ErrInvalidState
	}

	settlement, ok := models.SettlementAsset(o.SettlementAsset)
	if !ok {
		return nil, ErrUnknownAsset
	}

	fillQty := o.Remaining()

	// A pending order with a settlement ref already moved its assets in
	// an earlier attempt whose commit failed; re-entering completes the
	// bookkeeping at the recorded price without transferring again.
	if o.SettlementRef == "" {
		switch o.Side {
		case models.SideBuy:
			if execPrice.GreaterThan(o.LimitPrice) {
				return nil, ErrPriceMismatch
			}
		case models.SideSell:
			if execPrice.LessThan(o.LimitPrice) {
				return nil, ErrPriceMismatch
			}
		}

		ref, err := u.settle(o, settlement, fillQty, execPrice)
		if err != nil {
			return nil, err
		}

		o.SettlementRef = ref
		o.ExecutionPrice = execPrice
		o.UpdatedAt = time.Now()

		if err := u.orderRepo.Update(ctx, o); err != nil {
			u.logError(err)
			return nil, ErrStorageUnavailable
		}
	}

	spent := o.ExecutionPrice.Mul(fillQty)

	var changes []redisRepo.BalanceChange

	if !settlement.OnChain {
		switch o.Side {
		case models.SideBuy:
			locked := fillQty.Mul(o.LimitPrice)
			if locked.GreaterThan(o.LockedAmount) {
				locked = o.LockedAmount
			}
			if diff := locked.Sub(spent); diff.IsPositive() {
				changes = append(changes, redisRepo.BalanceChange{
					Owner: o.Owner,
					Asset: settlement.Symbol,
					Delta: diff,
				})
			}
		case models.SideSell:
			changes = append(changes, redisRepo.BalanceChange{
				Owner: o.Owner,
				Asset: settlement.Symbol,
				Delta: spent,
			})
		}
	}

	now := time.Now()

	o.FilledQuantity = o.FilledQuantity.Add(fillQty)
	o.Status = models.OrderStatusFilled
	o.LockedAmount = decimal.Zero
	o.FilledAt = &now
	o.UpdatedAt = now

	if err := u.orderRepo.Finalize(ctx, o, changes...); err != nil {
		u.logError(err)
		return nil, ErrStorageUnavailable
	}

	u.storeTransaction(&models.Transaction{
		ID:              uuid.NewString(),
		OrderID:         o.ID,
		Owner:           o.Owner,
		Kind:            models.TxKindFill,
		Asset:           o.Asset,
		Quantity:        fillQty,
		SettlementAsset: o.SettlementAsset,
		Amount:          spent,
		ExecutionPrice:  o.ExecutionPrice,
		SettlementRef:   o.SettlementRef,
		CreatedAt:       now,
	})

	u.countMetric(structs.MetricOrderFilled)
	u.notify(fmt.Sprintf("[ Fill ]\nid:\t%s\nasset:\t%s\nquantity:\t%s\nprice:\t%s\nref:\t%s",
		o.ID,
		o.Asset,
		fillQty,
		o.ExecutionPrice,
		o.SettlementRef))

	return o, nil
}

// settle moves the on-chain legs of a fill and returns the metal
// transfer hash used as the settlement reference.
func (u *orderUseCase) settle(o *models.Order, settlement models.Asset, fillQty, execPrice decimal.Decimal) (string, error) {
	spent := execPrice.Mul(fillQty)

	if o.Side == models.SideBuy {
		if settlement.OnChain {
			// funds were never pre-locked, charge at execution price
			if _, err := u.chainController.Transfer(o.Owner, models.TreasuryAccount, settlement.Symbol, spent); err != nil {
				u.logError(err)
				return "", mapLedgerErr(err)
			}
		}

		ref, err := u.chainController.Transfer(models.TreasuryAccount, o.Owner, o.Asset, fillQty)
		if err != nil {
			u.logError(err)
			return "", mapLedgerErr(err)
		}

		return ref, nil
	}

	ref, err := u.chainController.Transfer(o.Owner, models.TreasuryAccount, o.Asset, fillQty)
	if err != nil {
		u.logError(err)
		return "", mapLedgerErr(err)
	}

	if settlement.OnChain {
		if _, err := u.chainController.Transfer(models.TreasuryAccount, o.Owner, settlement.Symbol, spent); err != nil {
			u.logError(err)
			return "", mapLedgerErr(err)
		}
	}

	return ref, nil
}

func (u *orderUseCase) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	o, err := u.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	return o, nil
}

func (u *orderUseCase) ListByOwner(ctx context.Context, owner string, limit int64) ([]models.Order, error) {
	owner = strings.ToLower(strings.TrimSpace(owner))

	out, err := u.orderRepo.ListByOwner(ctx, owner, limit)
	if err != nil {
		u.logError(err)
		return nil, ErrStorageUnavailable
	}

	return out, nil
}

// Transactions returns the settlement log entries of one order.
func (u *orderUseCase) Transactions(orderID string) ([]models.Transaction, error) {
	out, err := u.txRepo.GetByOrderID(orderID)
	if err != nil {
		u.logError(err)
		return nil, ErrStorageUnavailable
	}

	return out, nil
}

func (u *orderUseCase) TransactionsByOwner(owner string, limit int) ([]models.Transaction, error) {
	owner = strings.ToLower(strings.TrimSpace(owner))

	if limit <= 0 {
		limit = 50
	}

	out, err := u.txRepo.GetByOwner(owner, limit)
	if err != nil {
		u.logError(err)
		return nil, ErrStorageUnavailable
	}

	return out, nil
}

// SetMarketStatus enables or disables trading for one asset. A disabled
// market rejects new orders and its scheduled sweep is skipped.
func (u *orderUseCase) SetMarketStatus(asset, status string) error {
	if _, ok := models.TradeAsset(asset); !ok {
		return ErrUnknownAsset
	}

	st := mongoStructs.AssetStatus(status)
	if st != mongoStructs.Enabled && st != mongoStructs.Disabled {
		return ErrInvalidStatus
	}

	settings, err := u.settingsRepo.Load(asset)
	if err != nil {
		if err == mongodrv.ErrNoDocuments {
			return ErrUnknownAsset
		}
		u.logError(err)
		return ErrStorageUnavailable
	}

	if err := u.settingsRepo.UpdateStatus(settings.ID, st); err != nil {
		u.logError(err)
		return ErrStorageUnavailable
	}

	return nil
}

func (u *orderUseCase) Balance(ctx context.Context, owner, asset string) (decimal.Decimal, error) {
	owner = strings.ToLower(strings.TrimSpace(owner))

	settlement, ok := models.SettlementAsset(asset)
	if !ok || settlement.OnChain {
		return decimal.Zero, ErrUnknownAsset
	}

	bal, err := u.balanceRepo.Get(ctx, owner, settlement.Symbol)
	if err != nil {
		u.logError(err)
		return decimal.Zero, ErrStorageUnavailable
	}

	return bal, nil
}

// Deposit credits an internal settlement balance, the entry point for
// funds arriving from outside the order subsystem.
func (u *orderUseCase) Deposit(ctx context.Context, owner, asset string, amount decimal.Decimal) (decimal.Decimal, error) {
	owner = strings.ToLower(strings.TrimSpace(owner))

	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, ErrInvalidAmount
	}

	settlement, ok := models.SettlementAsset(asset)
	if !ok || settlement.OnChain {
		return decimal.Zero, ErrUnknownAsset
	}

	bal, err := u.balanceRepo.Adjust(ctx, owner, settlement.Symbol, amount)
	if err != nil {
		u.logError(err)
		return decimal.Zero, ErrStorageUnavailable
	}

	return bal, nil
}

// release commits the terminal status together with the refund of the
// locked remainder in one store transaction.
func (u *orderUseCase) release(ctx context.Context, o *models.Order, status models.OrderStatus, kind string) (*models.Order, error) {
	refund := decimal.Zero
	var changes []redisRepo.BalanceChange

	if o.LockedAmount.IsPositive() {
		refund = o.Remaining().Mul(o.LimitPrice)
		if refund.GreaterThan(o.LockedAmount) {
			refund = o.LockedAmount
		}
		changes = append(changes, redisRepo.BalanceChange{
			Owner: o.Owner,
			Asset: o.SettlementAsset,
			Delta: refund,
		})
	}

	now := time.Now()
	remaining := o.Remaining()

	o.Status = status
	o.LockedAmount = decimal.Zero
	o.UpdatedAt = now

	if err := u.orderRepo.Finalize(ctx, o, changes...); err != nil {
		u.logError(err)
		return nil, ErrStorageUnavailable
	}

	if refund.IsPositive() {
		u.storeTransaction(&models.Transaction{
			ID:              uuid.NewString(),
			OrderID:         o.ID,
			Owner:           o.Owner,
			Kind:            kind,
			Asset:           o.Asset,
			Quantity:        remaining,
			SettlementAsset: o.SettlementAsset,
			Amount:          refund,
			CreatedAt:       now,
		})
	}

	return o, nil
}

// storeTransaction appends to the audit log; the transition is already
// committed, so a log failure is reported but not propagated.
func (u *orderUseCase) storeTransaction(m *models.Transaction) {
	if u.txRepo == nil {
		return
	}

	if err := u.txRepo.Store(m); err != nil {
		u.logError(err)
	}
}

func (u *orderUseCase) releaseLock(ctx context.Context, id, token string) {
	if err := u.lockRepo.Release(ctx, id, token); err != nil {
		u.logError(err)
	}
}

func (u *orderUseCase) countMetric(m structs.MetricConst) {
	if c, ok := u.metrics[m]; ok {
		c.Inc()
	}
}

func (u *orderUseCase) notify(text string) {
	if u.notifier != nil {
		u.notifier.Enqueue(text)
	}
}

func (u *orderUseCase) logError(err error) {
	u.logger.
		WithError(err).
		Error(string(debug.Stack()))

	if u.promTail != nil {
		u.promTail.Errorf("orderUseCase: %+v", err)
	}
}

func mapLockErr(err error) error {
	if errors.Is(err, redisRepo.ErrLocked) {
		return ErrOrderLocked
	}
	return ErrStorageUnavailable
}

func mapStoreErr(err error) error {
	if errors.Is(err, redisRepo.ErrNotFound) {
		return ErrOrderNotFound
	}
	return ErrStorageUnavailable
}

func mapLedgerErr(err error) error {
	if errors.Is(err, controllers.ErrLedgerInsufficientFunds) {
		return ErrInsufficientBalance
	}
	return err
}
