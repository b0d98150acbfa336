package redis

import (
	"fmt"

	"auxite/models"
)

func orderKey(id string) string {
	return fmt.Sprintf("order:%s", id)
}

func ownerIndexKey(owner string) string {
	return fmt.Sprintf("orders:owner:%s", owner)
}

func pendingIndexKey(asset string, side models.OrderSide) string {
	return fmt.Sprintf("orders:pending:%s:%s", asset, side)
}

func balanceKey(owner, asset string) string {
	return fmt.Sprintf("balance:%s:%s", owner, asset)
}

func lockKey(id string) string {
	return fmt.Sprintf("lock:order:%s", id)
}

const pendingAllKey = "orders:pending:all"
