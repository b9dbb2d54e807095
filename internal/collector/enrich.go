package collector

// Enrichment flags. Each flag requests one related-entity projection on the
// materialized result. Flags never change which rows match: filtering by
// budget does not attach budget summaries, that takes WithBudgetInformation.

// WithAccountInformation includes source and destination account names and
// types.
func (c *GroupCollector) WithAccountInformation() *GroupCollector {
	c.enrich.accounts = true
	return c
}

// WithBudgetInformation includes budget id and name, if any.
func (c *GroupCollector) WithBudgetInformation() *GroupCollector {
	c.enrich.budget = true
	return c
}

// WithCategoryInformation includes category id and name, if any.
func (c *GroupCollector) WithCategoryInformation() *GroupCollector {
	c.enrich.category = true
	return c
}

// WithBillInformation includes bill id and name, if any.
func (c *GroupCollector) WithBillInformation() *GroupCollector {
	c.enrich.bill = true
	return c
}

// WithTagInformation includes tag ids and names.
func (c *GroupCollector) WithTagInformation() *GroupCollector {
	c.enrich.tags = true
	return c
}

// WithAttachmentInformation includes basic info on attachments.
func (c *GroupCollector) WithAttachmentInformation() *GroupCollector {
	c.enrich.attachments = true
	return c
}

// WithNotes includes the journal notes text.
func (c *GroupCollector) WithNotes() *GroupCollector {
	c.enrich.notes = true
	return c
}

// WithAPIInformation switches on everything the API serialization needs.
func (c *GroupCollector) WithAPIInformation() *GroupCollector {
	c.enrich.accounts = true
	c.enrich.budget = true
	c.enrich.category = true
	c.enrich.bill = true
	return c
}

func (f enrichmentFlags) any() bool {
	return f.accounts || f.budget || f.category || f.bill || f.tags || f.attachments || f.notes
}
