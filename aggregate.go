package tracker

// Grouping functions for WeightsBy.
func ByTicker(h Holding) string     { return h.Ticker() }
func BySector(h Holding) string     { return h.Sector() }
func ByAssetClass(h Holding) string { return h.AssetClass() }

// TotalValue is the sum of all positions marked at their effective price.
// An empty portfolio has a zero total.
func (p *Portfolio) TotalValue() Money {
	total := M(0, p.currency)
	for _, h := range p.holdings {
		total = total.Add(h.CurrentValue())
	}
	return total
}

// TotalInvested is the sum of all transaction values.
func (p *Portfolio) TotalInvested() Money {
	total := M(0, p.currency)
	for _, h := range p.holdings {
		total = total.Add(h.TransactionValue())
	}
	return total
}

// TotalProfitLoss is the unrealized gain (or loss) over the whole portfolio.
func (p *Portfolio) TotalProfitLoss() Money {
	return p.TotalValue().Sub(p.TotalInvested())
}

// TotalProfitLossPercent is the unrealized gain relative to the total
// invested. It is zero for an empty portfolio.
func (p *Portfolio) TotalProfitLossPercent() Percent {
	invested := p.TotalInvested()
	if invested.IsZero() {
		return 0
	}
	return Percent(100 * p.TotalProfitLoss().AsFloat() / invested.AsFloat())
}

// Weights returns each ticker's share of the total portfolio value, in
// percent. An empty or zero-value portfolio yields an empty map.
func (p *Portfolio) Weights() map[string]Percent {
	return p.WeightsBy(ByTicker)
}

// WeightsBy returns the share of the total portfolio value per group, in
// percent. Shares of a group accumulate, and over all groups they sum to
// 100% up to rounding. An empty or zero-value portfolio yields an empty map.
func (p *Portfolio) WeightsBy(group func(Holding) string) map[string]Percent {
	weights := make(map[string]Percent)
	total := p.TotalValue()
	if total.IsZero() {
		return weights
	}
	for _, h := range p.holdings {
		share := Percent(100 * h.CurrentValue().AsFloat() / total.AsFloat())
		weights[group(h)] += share
	}
	return weights
}
