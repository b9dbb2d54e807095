package collector

import (
	"sort"

	"github.com/google/uuid"
)

// MetaDateField is a closed enumeration of the named metadata date fields a
// journal can carry. Addressing them through an enum instead of free strings
// rules out typos and keeps the join aliases predictable.
type MetaDateField string

const (
	MetaInterestDate MetaDateField = "interest_date"
	MetaBookDate     MetaDateField = "book_date"
	MetaProcessDate  MetaDateField = "process_date"
	MetaDueDate      MetaDateField = "due_date"
	MetaPaymentDate  MetaDateField = "payment_date"
	MetaInvoiceDate  MetaDateField = "invoice_date"
)

// ObjectDateField addresses the date-bearing columns of the journal row
// itself, beyond the transaction date.
type ObjectDateField string

const (
	ObjectCreatedAt ObjectDateField = "created_at"
	ObjectUpdatedAt ObjectDateField = "updated_at"
)

// metaTextSepaCT is the meta text field carrying the SEPA credit transfer id.
const metaTextSepaCT = "sepa_ct_id"

// idSetField keys the replaceable multi-value membership predicates. One key
// per logical field: setting the same field again replaces the earlier value,
// while include and exclude variants of the same entity stay independent.
type idSetField int

const (
	setAccountsEither idSetField = iota
	setAccountsSource
	setAccountsDestination
	setAccountsBoth
	setAccountsXor
	setAccountsNotEither
	setAccountsNotSource
	setAccountsNotDestination
	setBudgets
	setNotBudgets
	setCategories
	setNotCategories
	setBills
	setNotBills
	setTags
	setNotTags
	setCurrencies
	setNotCurrencies
	setForeignCurrencies
	setNotForeignCurrencies
	setGroupIDs
	setNotGroupIDs
	setJournalIDs
	setNotJournalIDs
	setRecurrences
	setNotRecurrences
	idSetFieldCount
)

// stringField addresses one string-bearing logical field of a journal or a
// related row.
type stringField int

const (
	fieldDescription stringField = iota
	fieldNotes
	fieldExternalID
	fieldExternalURL
	fieldInternalReference
	fieldAttachmentName
	fieldAttachmentNotes
)

type stringOp int

const (
	opExact stringOp = iota
	opStarts
	opEnds
	opContains
)

// stringFilter is one string predicate. Comparable, so identical calls
// collapse in the keyed registry.
type stringFilter struct {
	field  stringField
	op     stringOp
	value  string
	negate bool
}

type amountField int

const (
	amountMain amountField = iota
	amountForeign
)

type compareOp int

const (
	cmpEqual compareOp = iota
	cmpNotEqual
	cmpLess
	cmpMore
)

// amountFilter compares a decimal amount column. The value is the canonical
// decimal string so the struct stays comparable and precision is never lost.
type amountFilter struct {
	field amountField
	op    compareOp
	value string
}

type dateTarget int

const (
	targetTransactionDate dateTarget = iota
	targetCreatedAt
	targetUpdatedAt
	targetMeta
)

type granularity int

const (
	granExact granularity = iota
	granDay
	granMonth
	granYear
)

// dateFilter compares a date-bearing field at a granularity. For granExact
// the value is a YYYY-MM-DD date; for day/month/year it is the bare integer
// component, so "day is 15" matches the 15th of any month and year.
type dateFilter struct {
	target dateTarget
	meta   MetaDateField
	gran   granularity
	op     compareOp
	value  string
}

// rangeFilter is an inclusive [start, end] window on a date-bearing field, or
// its exclusion.
type rangeFilter struct {
	target  dateTarget
	meta    MetaDateField
	start   string
	end     string
	exclude bool
}

type presenceFlag int

const (
	presHasAttachments presenceFlag = iota
	presNoAttachments
	presAnyTags
	presNoTags
	presAnyNotes
	presNoNotes
	presAnyExternalID
	presNoExternalID
	presAnyExternalURL
	presNoExternalURL
	presReconciled
	presNotReconciled
	presHasBudget
	presNoBudget
	presHasCategory
	presNoCategory
	presHasBill
	presNoBill
	presenceFlagCount
)

// enrichmentFlags selects which related-entity projections the materializer
// attaches. Pure request metadata: flags never change which rows match.
type enrichmentFlags struct {
	accounts    bool
	budget      bool
	category    bool
	bill        bool
	tags        bool
	attachments bool
	notes       bool
}

// normalizeIDs copies, de-duplicates and sorts a membership set. The copy
// detaches the predicate from the caller's slice; the ordering makes compiled
// plans identical across permutations of the same predicates.
func normalizeIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].String() < out[j].String()
	})
	return out
}

// normalizeStrings does the same for string membership sets.
func normalizeStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
