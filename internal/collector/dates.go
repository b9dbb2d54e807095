package collector

import (
	"strconv"
	"time"
)

const dateLayout = "2006-01-02"

func objectTarget(field ObjectDateField) dateTarget {
	if field == ObjectUpdatedAt {
		return targetUpdatedAt
	}
	return targetCreatedAt
}

// Transaction date predicates.

// SetRange limits results to transaction dates within [start, end], both ends
// inclusive.
func (c *GroupCollector) SetRange(start, end time.Time) *GroupCollector {
	c.addRange(rangeFilter{target: targetTransactionDate, start: start.Format(dateLayout), end: end.Format(dateLayout)})
	return c
}

// ExcludeRange excludes transaction dates within [start, end].
func (c *GroupCollector) ExcludeRange(start, end time.Time) *GroupCollector {
	c.addRange(rangeFilter{target: targetTransactionDate, start: start.Format(dateLayout), end: end.Format(dateLayout), exclude: true})
	return c
}

// SetBefore limits results to transactions on or before the date.
func (c *GroupCollector) SetBefore(date time.Time) *GroupCollector {
	c.addDate(dateFilter{target: targetTransactionDate, gran: granExact, op: cmpLess, value: date.Format(dateLayout)})
	return c
}

// SetAfter limits results to transactions on or after the date.
func (c *GroupCollector) SetAfter(date time.Time) *GroupCollector {
	c.addDate(dateFilter{target: targetTransactionDate, gran: granExact, op: cmpMore, value: date.Format(dateLayout)})
	return c
}

// DayIs matches transactions on this day of the month, any month or year.
func (c *GroupCollector) DayIs(day int) *GroupCollector {
	c.addDate(dateFilter{target: targetTransactionDate, gran: granDay, op: cmpEqual, value: strconv.Itoa(day)})
	return c
}

// DayIsNot excludes transactions on this day of the month.
func (c *GroupCollector) DayIsNot(day int) *GroupCollector {
	c.addDate(dateFilter{target: targetTransactionDate, gran: granDay, op: cmpNotEqual, value: strconv.Itoa(day)})
	return c
}

// DayBefore matches transactions on or before this day of the month.
func (c *GroupCollector) DayBefore(day int) *GroupCollector {
	c.addDate(dateFilter{target: targetTransactionDate, gran: granDay, op: cmpLess, value: strconv.Itoa(day)})
	return c
}

// DayAfter matches transactions on or after this day of the month.
func (c *GroupCollector) DayAfter(day int) *GroupCollector {
	c.addDate(dateFilter{target: targetTransactionDate, gran: granDay, op: cmpMore, value: strconv.Itoa(day)})
	return c
}

// MonthIs matches transactions in this month, any year.
func (c *GroupCollector) MonthIs(month int) *GroupCollector {
	c.addDate(dateFilter{target: targetTransactionDate, gran: granMonth, op: cmpEqual, value: strconv.Itoa(month)})
	return c
}

func (c *GroupCollector) MonthIsNot(month int) *GroupCollector {
	c.addDate(dateFilter{target: targetTransactionDate, gran: granMonth, op: cmpNotEqual, value: strconv.Itoa(month)})
	return c
}

func (c *GroupCollector) MonthBefore(month int) *GroupCollector {
	c.addDate(dateFilter{target: targetTransactionDate, gran: granMonth, op: cmpLess, value: strconv.Itoa(month)})
	return c
}

func (c *GroupCollector) MonthAfter(month int) *GroupCollector {
	c.addDate(dateFilter{target: targetTransactionDate, gran: granMonth, op: cmpMore, value: strconv.Itoa(month)})
	return c
}

// YearIs matches transactions in this year.
func (c *GroupCollector) YearIs(year int) *GroupCollector {
	c.addDate(dateFilter{target: targetTransactionDate, gran: granYear, op: cmpEqual, value: strconv.Itoa(year)})
	return c
}

func (c *GroupCollector) YearIsNot(year int) *GroupCollector {
	c.addDate(dateFilter{target: targetTransactionDate, gran: granYear, op: cmpNotEqual, value: strconv.Itoa(year)})
	return c
}

func (c *GroupCollector) YearBefore(year int) *GroupCollector {
	c.addDate(dateFilter{target: targetTransactionDate, gran: granYear, op: cmpLess, value: strconv.Itoa(year)})
	return c
}

func (c *GroupCollector) YearAfter(year int) *GroupCollector {
	c.addDate(dateFilter{target: targetTransactionDate, gran: granYear, op: cmpMore, value: strconv.Itoa(year)})
	return c
}

// Meta date predicates address a named metadata date field of the journal.

// SetMetaDateRange limits results to journals whose meta date field lies
// within [start, end].
func (c *GroupCollector) SetMetaDateRange(start, end time.Time, field MetaDateField) *GroupCollector {
	c.addRange(rangeFilter{target: targetMeta, meta: field, start: start.Format(dateLayout), end: end.Format(dateLayout)})
	return c
}

// ExcludeMetaDateRange excludes journals whose meta date field lies within
// [start, end].
func (c *GroupCollector) ExcludeMetaDateRange(start, end time.Time, field MetaDateField) *GroupCollector {
	c.addRange(rangeFilter{target: targetMeta, meta: field, start: start.Format(dateLayout), end: end.Format(dateLayout), exclude: true})
	return c
}

// SetMetaBefore limits results to journals whose meta date field is on or
// before the date.
func (c *GroupCollector) SetMetaBefore(date time.Time, field MetaDateField) *GroupCollector {
	c.addDate(dateFilter{target: targetMeta, meta: field, gran: granExact, op: cmpLess, value: date.Format(dateLayout)})
	return c
}

// SetMetaAfter limits results to journals whose meta date field is on or
// after the date.
func (c *GroupCollector) SetMetaAfter(date time.Time, field MetaDateField) *GroupCollector {
	c.addDate(dateFilter{target: targetMeta, meta: field, gran: granExact, op: cmpMore, value: date.Format(dateLayout)})
	return c
}

// MetaDayIs matches journals whose meta date field falls on this day of the
// month, any month or year.
func (c *GroupCollector) MetaDayIs(day int, field MetaDateField) *GroupCollector {
	c.addDate(dateFilter{target: targetMeta, meta: field, gran: granDay, op: cmpEqual, value: strconv.Itoa(day)})
	return c
}

func (c *GroupCollector) MetaDayIsNot(day int, field MetaDateField) *GroupCollector {
	c.addDate(dateFilter{target: targetMeta, meta: field, gran: granDay, op: cmpNotEqual, value: strconv.Itoa(day)})
	return c
}

func (c *GroupCollector) MetaDayBefore(day int, field MetaDateField) *GroupCollector {
	c.addDate(dateFilter{target: targetMeta, meta: field, gran: granDay, op: cmpLess, value: strconv.Itoa(day)})
	return c
}

func (c *GroupCollector) MetaDayAfter(day int, field MetaDateField) *GroupCollector {
	c.addDate(dateFilter{target: targetMeta, meta: field, gran: granDay, op: cmpMore, value: strconv.Itoa(day)})
	return c
}

func (c *GroupCollector) MetaMonthIs(month int, field MetaDateField) *GroupCollector {
	c.addDate(dateFilter{target: targetMeta, meta: field, gran: granMonth, op: cmpEqual, value: strconv.Itoa(month)})
	return c
}

func (c *GroupCollector) MetaMonthIsNot(month int, field MetaDateField) *GroupCollector {
	c.addDate(dateFilter{target: targetMeta, meta: field, gran: granMonth, op: cmpNotEqual, value: strconv.Itoa(month)})
	return c
}

func (c *GroupCollector) MetaMonthBefore(month int, field MetaDateField) *GroupCollector {
	c.addDate(dateFilter{target: targetMeta, meta: field, gran: granMonth, op: cmpLess, value: strconv.Itoa(month)})
	return c
}

func (c *GroupCollector) MetaMonthAfter(month int, field MetaDateField) *GroupCollector {
	c.addDate(dateFilter{target: targetMeta, meta: field, gran: granMonth, op: cmpMore, value: strconv.Itoa(month)})
	return c
}

func (c *GroupCollector) MetaYearIs(year int, field MetaDateField) *GroupCollector {
	c.addDate(dateFilter{target: targetMeta, meta: field, gran: granYear, op: cmpEqual, value: strconv.Itoa(year)})
	return c
}

func (c *GroupCollector) MetaYearIsNot(year int, field MetaDateField) *GroupCollector {
	c.addDate(dateFilter{target: targetMeta, meta: field, gran: granYear, op: cmpNotEqual, value: strconv.Itoa(year)})
	return c
}

func (c *GroupCollector) MetaYearBefore(year int, field MetaDateField) *GroupCollector {
	c.addDate(dateFilter{target: targetMeta, meta: field, gran: granYear, op: cmpLess, value: strconv.Itoa(year)})
	return c
}

func (c *GroupCollector) MetaYearAfter(year int, field MetaDateField) *GroupCollector {
	c.addDate(dateFilter{target: targetMeta, meta: field, gran: granYear, op: cmpMore, value: strconv.Itoa(year)})
	return c
}

// WithMetaDate requires the journal to carry the given meta date field at all.
func (c *GroupCollector) WithMetaDate(field MetaDateField) *GroupCollector {
	c.metaPresence[field] = struct{}{}
	return c
}

// Object date predicates address the created/updated timestamps of the
// journal row.

// SetCreatedAt limits results to journals created on this date.
func (c *GroupCollector) SetCreatedAt(date time.Time) *GroupCollector {
	c.addDate(dateFilter{target: targetCreatedAt, gran: granExact, op: cmpEqual, value: date.Format(dateLayout)})
	return c
}

// SetUpdatedAt limits results to journals updated on this date.
func (c *GroupCollector) SetUpdatedAt(date time.Time) *GroupCollector {
	c.addDate(dateFilter{target: targetUpdatedAt, gran: granExact, op: cmpEqual, value: date.Format(dateLayout)})
	return c
}

// SetObjectRange limits results to journals whose object date field lies
// within [start, end].
func (c *GroupCollector) SetObjectRange(start, end time.Time, field ObjectDateField) *GroupCollector {
	c.addRange(rangeFilter{target: objectTarget(field), start: start.Format(dateLayout), end: end.Format(dateLayout)})
	return c
}

// ExcludeObjectRange excludes journals whose object date field lies within
// [start, end].
func (c *GroupCollector) ExcludeObjectRange(start, end time.Time, field ObjectDateField) *GroupCollector {
	c.addRange(rangeFilter{target: objectTarget(field), start: start.Format(dateLayout), end: end.Format(dateLayout), exclude: true})
	return c
}

// SetObjectBefore limits results to journals whose object date field is on or
// before the date.
func (c *GroupCollector) SetObjectBefore(date time.Time, field ObjectDateField) *GroupCollector {
	c.addDate(dateFilter{target: objectTarget(field), gran: granExact, op: cmpLess, value: date.Format(dateLayout)})
	return c
}

// SetObjectAfter limits results to journals whose object date field is on or
// after the date.
func (c *GroupCollector) SetObjectAfter(date time.Time, field ObjectDateField) *GroupCollector {
	c.addDate(dateFilter{target: objectTarget(field), gran: granExact, op: cmpMore, value: date.Format(dateLayout)})
	return c
}

func (c *GroupCollector) ObjectDayIs(day int, field ObjectDateField) *GroupCollector {
	c.addDate(dateFilter{target: objectTarget(field), gran: granDay, op: cmpEqual, value: strconv.Itoa(day)})
	return c
}

func (c *GroupCollector) ObjectDayIsNot(day int, field ObjectDateField) *GroupCollector {
	c.addDate(dateFilter{target: objectTarget(field), gran: granDay, op: cmpNotEqual, value: strconv.Itoa(day)})
	return c
}

func (c *GroupCollector) ObjectDayBefore(day int, field ObjectDateField) *GroupCollector {
	c.addDate(dateFilter{target: objectTarget(field), gran: granDay, op: cmpLess, value: strconv.Itoa(day)})
	return c
}

func (c *GroupCollector) ObjectDayAfter(day int, field ObjectDateField) *GroupCollector {
	c.addDate(dateFilter{target: objectTarget(field), gran: granDay, op: cmpMore, value: strconv.Itoa(day)})
	return c
}

func (c *GroupCollector) ObjectMonthIs(month int, field ObjectDateField) *GroupCollector {
	c.addDate(dateFilter{target: objectTarget(field), gran: granMonth, op: cmpEqual, value: strconv.Itoa(month)})
	return c
}

func (c *GroupCollector) ObjectMonthIsNot(month int, field ObjectDateField) *GroupCollector {
	c.addDate(dateFilter{target: objectTarget(field), gran: granMonth, op: cmpNotEqual, value: strconv.Itoa(month)})
	return c
}

func (c *GroupCollector) ObjectMonthBefore(month int, field ObjectDateField) *GroupCollector {
	c.addDate(dateFilter{target: objectTarget(field), gran: granMonth, op: cmpLess, value: strconv.Itoa(month)})
	return c
}

func (c *GroupCollector) ObjectMonthAfter(month int, field ObjectDateField) *GroupCollector {
	c.addDate(dateFilter{target: objectTarget(field), gran: granMonth, op: cmpMore, value: strconv.Itoa(month)})
	return c
}

func (c *GroupCollector) ObjectYearIs(year int, field ObjectDateField) *GroupCollector {
	c.addDate(dateFilter{target: objectTarget(field), gran: granYear, op: cmpEqual, value: strconv.Itoa(year)})
	return c
}

func (c *GroupCollector) ObjectYearIsNot(year int, field ObjectDateField) *GroupCollector {
	c.addDate(dateFilter{target: objectTarget(field), gran: granYear, op: cmpNotEqual, value: strconv.Itoa(year)})
	return c
}

func (c *GroupCollector) ObjectYearBefore(year int, field ObjectDateField) *GroupCollector {
	c.addDate(dateFilter{target: objectTarget(field), gran: granYear, op: cmpLess, value: strconv.Itoa(year)})
	return c
}

func (c *GroupCollector) ObjectYearAfter(year int, field ObjectDateField) *GroupCollector {
	c.addDate(dateFilter{target: objectTarget(field), gran: granYear, op: cmpMore, value: strconv.Itoa(year)})
	return c
}
