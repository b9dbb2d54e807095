// Package collector implements the transaction group collector: a fluent,
// chainable query builder that composes an arbitrary set of filter predicates
// into a single query against the journal store, then materializes matching
// transaction groups.
//
// A collector is built fresh for one request, scoped to one user, and consumed
// by exactly one terminal call (GetGroups, GetPaginatedGroups or
// GetExtractedJournals). Predicate-setting calls are pure data accumulation
// and never touch the store; only the terminal call executes the query.
// Predicate application is order independent: registries are keyed by logical
// field, so repeating an identical call is a no-op and re-setting a
// multi-value "set" predicate replaces the earlier value for that field.
package collector

import (
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"ledgerquery/internal/models"
)

const (
	// DefaultPageSize is used by GetPaginatedGroups when no page size was set.
	DefaultPageSize = 50
)

var (
	// ErrNoUser is returned by terminal calls when SetUser was never called.
	ErrNoUser = errors.New("collector: no user set before terminal call")
	// ErrInvalidPage is returned when the requested page is not positive.
	ErrInvalidPage = errors.New("collector: page must be a positive integer")
	// ErrInvalidPageSize is returned when the requested page size is not positive.
	ErrInvalidPageSize = errors.New("collector: page size must be a positive integer")
)

// GroupCollector accumulates filter predicates and enrichment flags, compiles
// them into one query and folds the resulting journal rows back into
// transaction groups. Not safe for concurrent use; build one per request.
type GroupCollector struct {
	db  *gorm.DB
	log zerolog.Logger

	user *models.User

	// Multi-value membership predicates, keyed by logical field. A later
	// call for the same field replaces the earlier value (last call wins).
	idSets map[idSetField][]uuid.UUID

	// Transaction type membership, include and exclude.
	types        []string
	excludeTypes []string

	// Accumulating predicates. Keyed storage makes repeated identical calls
	// idempotent and predicate order irrelevant.
	stringFilters map[stringFilter]struct{}
	amountFilters map[amountFilter]struct{}
	dateFilters   map[dateFilter]struct{}
	rangeFilters  map[rangeFilter]struct{}
	presence      map[presenceFlag]struct{}
	metaPresence  map[MetaDateField]struct{}
	metaText      map[string]string

	enrich enrichmentFlags

	nothing    bool
	existsOnly bool

	limit    int
	page     int
	pageSize int
}

// New builds an empty collector on top of the given store handle.
func New(db *gorm.DB) *GroupCollector {
	return &GroupCollector{
		db:            db,
		log:           zerolog.Nop(),
		idSets:        make(map[idSetField][]uuid.UUID),
		stringFilters: make(map[stringFilter]struct{}),
		amountFilters: make(map[amountFilter]struct{}),
		dateFilters:   make(map[dateFilter]struct{}),
		rangeFilters:  make(map[rangeFilter]struct{}),
		presence:      make(map[presenceFlag]struct{}),
		metaPresence:  make(map[MetaDateField]struct{}),
		metaText:      make(map[string]string),
		page:          1,
		pageSize:      DefaultPageSize,
	}
}

// WithLogger attaches a logger used for debug output around compilation and
// execution.
func (c *GroupCollector) WithLogger(log zerolog.Logger) *GroupCollector {
	c.log = log
	return c
}

// SetUser scopes every subsequent query to this user. Must be called before
// any terminal operation.
func (c *GroupCollector) SetUser(user *models.User) *GroupCollector {
	c.user = user
	return c
}

// FindNothing guarantees zero results regardless of any other predicate. Used
// when upstream validation already determined the request is unsatisfiable.
func (c *GroupCollector) FindNothing() *GroupCollector {
	c.nothing = true
	return c
}

// Exists restricts results to journals whose group has not been deleted.
func (c *GroupCollector) Exists() *GroupCollector {
	c.existsOnly = true
	return c
}

// SetLimit caps the number of returned groups.
func (c *GroupCollector) SetLimit(limit int) *GroupCollector {
	c.limit = limit
	return c
}

// SetPage sets the 1-indexed page for GetPaginatedGroups.
func (c *GroupCollector) SetPage(page int) *GroupCollector {
	c.page = page
	return c
}

// SetPageSize sets the page size for GetPaginatedGroups.
func (c *GroupCollector) SetPageSize(pageSize int) *GroupCollector {
	c.pageSize = pageSize
	return c
}

// requireIDs registers an inclusion membership set. The slice is copied so a
// caller mutating its collection afterwards cannot change the predicate. An
// empty required set is a legitimate "no results" request and short-circuits
// to FindNothing rather than being silently skipped.
func (c *GroupCollector) requireIDs(field idSetField, ids []uuid.UUID) {
	if len(ids) == 0 {
		c.nothing = true
		return
	}
	c.idSets[field] = normalizeIDs(ids)
}

// excludeIDs registers an exclusion membership set. An empty exclusion set
// excludes nothing and is dropped.
func (c *GroupCollector) excludeIDs(field idSetField, ids []uuid.UUID) {
	if len(ids) == 0 {
		delete(c.idSets, field)
		return
	}
	c.idSets[field] = normalizeIDs(ids)
}

func (c *GroupCollector) addString(f stringFilter) {
	c.stringFilters[f] = struct{}{}
}

func (c *GroupCollector) addAmount(f amountFilter) {
	c.amountFilters[f] = struct{}{}
}

func (c *GroupCollector) addDate(f dateFilter) {
	c.dateFilters[f] = struct{}{}
}

func (c *GroupCollector) addRange(f rangeFilter) {
	c.rangeFilters[f] = struct{}{}
}

func (c *GroupCollector) setPresence(flag presenceFlag) {
	c.presence[flag] = struct{}{}
}
