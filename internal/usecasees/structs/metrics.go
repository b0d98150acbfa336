package structs

type MetricConst int

const (
	MetricOrderCreated MetricConst = iota
	MetricOrderFilled
	MetricOrderCancelled
	MetricOrderExpired
	MetricSweepError
)

func (m MetricConst) ToString() string {
	switch m {
	case MetricOrderCreated:
		return "auxite_orders_created_total"
	case MetricOrderFilled:
		return "auxite_orders_filled_total"
	case MetricOrderCancelled:
		return "auxite_orders_cancelled_total"
	case MetricOrderExpired:
		return "auxite_orders_expired_total"
	case MetricSweepError:
		return "auxite_sweep_errors_total"
	}

	return "auxite_unknown"
}
