package collector

import "github.com/shopspring/decimal"

// AmountIs limits results to journals with exactly this amount. Comparison is
// exact decimal, never a float approximation.
func (c *GroupCollector) AmountIs(amount decimal.Decimal) *GroupCollector {
	c.addAmount(amountFilter{field: amountMain, op: cmpEqual, value: amount.String()})
	return c
}

// AmountIsNot excludes journals with exactly this amount.
func (c *GroupCollector) AmountIsNot(amount decimal.Decimal) *GroupCollector {
	c.addAmount(amountFilter{field: amountMain, op: cmpNotEqual, value: amount.String()})
	return c
}

// AmountLess limits results to journals with an amount strictly below the
// given one.
func (c *GroupCollector) AmountLess(amount decimal.Decimal) *GroupCollector {
	c.addAmount(amountFilter{field: amountMain, op: cmpLess, value: amount.String()})
	return c
}

// AmountMore limits results to journals with an amount strictly above the
// given one.
func (c *GroupCollector) AmountMore(amount decimal.Decimal) *GroupCollector {
	c.addAmount(amountFilter{field: amountMain, op: cmpMore, value: amount.String()})
	return c
}

// ForeignAmountIs limits results to journals with exactly this foreign amount.
func (c *GroupCollector) ForeignAmountIs(amount decimal.Decimal) *GroupCollector {
	c.addAmount(amountFilter{field: amountForeign, op: cmpEqual, value: amount.String()})
	return c
}

// ForeignAmountIsNot excludes journals with exactly this foreign amount.
// Journals without a foreign amount match.
func (c *GroupCollector) ForeignAmountIsNot(amount decimal.Decimal) *GroupCollector {
	c.addAmount(amountFilter{field: amountForeign, op: cmpNotEqual, value: amount.String()})
	return c
}

// ForeignAmountLess limits results to journals with a foreign amount strictly
// below the given one.
func (c *GroupCollector) ForeignAmountLess(amount decimal.Decimal) *GroupCollector {
	c.addAmount(amountFilter{field: amountForeign, op: cmpLess, value: amount.String()})
	return c
}

// ForeignAmountMore limits results to journals with a foreign amount strictly
// above the given one.
func (c *GroupCollector) ForeignAmountMore(amount decimal.Decimal) *GroupCollector {
	c.addAmount(amountFilter{field: amountForeign, op: cmpMore, value: amount.String()})
	return c
}
