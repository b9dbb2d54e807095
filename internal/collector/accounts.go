package collector

import "github.com/google/uuid"

// SetAccounts limits results to journals where either the source or the
// destination account is in the set.
func (c *GroupCollector) SetAccounts(accountIDs []uuid.UUID) *GroupCollector {
	c.requireIDs(setAccountsEither, accountIDs)
	return c
}

// SetSourceAccounts limits results to journals whose source account is in the
// set.
func (c *GroupCollector) SetSourceAccounts(accountIDs []uuid.UUID) *GroupCollector {
	c.requireIDs(setAccountsSource, accountIDs)
	return c
}

// SetDestinationAccounts limits results to journals whose destination account
// is in the set.
func (c *GroupCollector) SetDestinationAccounts(accountIDs []uuid.UUID) *GroupCollector {
	c.requireIDs(setAccountsDestination, accountIDs)
	return c
}

// SetBothAccounts requires both the source AND the destination account to be
// in the set.
func (c *GroupCollector) SetBothAccounts(accountIDs []uuid.UUID) *GroupCollector {
	c.requireIDs(setAccountsBoth, accountIDs)
	return c
}

// SetXorAccounts requires exactly one of source and destination to be in the
// set. This effectively excludes internal transfers between two accounts of
// the set.
func (c *GroupCollector) SetXorAccounts(accountIDs []uuid.UUID) *GroupCollector {
	c.requireIDs(setAccountsXor, accountIDs)
	return c
}

// SetNotAccounts excludes journals where either source or destination is in
// the set.
func (c *GroupCollector) SetNotAccounts(accountIDs []uuid.UUID) *GroupCollector {
	c.excludeIDs(setAccountsNotEither, accountIDs)
	return c
}

// ExcludeAccounts is an alias for SetNotAccounts.
func (c *GroupCollector) ExcludeAccounts(accountIDs []uuid.UUID) *GroupCollector {
	return c.SetNotAccounts(accountIDs)
}

// ExcludeSourceAccounts excludes journals whose source account is in the set.
func (c *GroupCollector) ExcludeSourceAccounts(accountIDs []uuid.UUID) *GroupCollector {
	c.excludeIDs(setAccountsNotSource, accountIDs)
	return c
}

// ExcludeDestinationAccounts excludes journals whose destination account is in
// the set.
func (c *GroupCollector) ExcludeDestinationAccounts(accountIDs []uuid.UUID) *GroupCollector {
	c.excludeIDs(setAccountsNotDestination, accountIDs)
	return c
}
