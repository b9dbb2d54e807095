package collector

// Description predicates.

// DescriptionIs limits results to journals with exactly this description.
func (c *GroupCollector) DescriptionIs(value string) *GroupCollector {
	c.addString(stringFilter{field: fieldDescription, op: opExact, value: value})
	return c
}

// DescriptionIsNot excludes journals with exactly this description.
func (c *GroupCollector) DescriptionIsNot(value string) *GroupCollector {
	c.addString(stringFilter{field: fieldDescription, op: opExact, value: value, negate: true})
	return c
}

// DescriptionStarts limits results to descriptions starting with the value.
func (c *GroupCollector) DescriptionStarts(value string) *GroupCollector {
	c.addString(stringFilter{field: fieldDescription, op: opStarts, value: value})
	return c
}

// DescriptionDoesNotStart excludes descriptions starting with the value.
func (c *GroupCollector) DescriptionDoesNotStart(value string) *GroupCollector {
	c.addString(stringFilter{field: fieldDescription, op: opStarts, value: value, negate: true})
	return c
}

// DescriptionEnds limits results to descriptions ending with the value.
func (c *GroupCollector) DescriptionEnds(value string) *GroupCollector {
	c.addString(stringFilter{field: fieldDescription, op: opEnds, value: value})
	return c
}

// DescriptionDoesNotEnd excludes descriptions ending with the value.
func (c *GroupCollector) DescriptionDoesNotEnd(value string) *GroupCollector {
	c.addString(stringFilter{field: fieldDescription, op: opEnds, value: value, negate: true})
	return c
}

// DescriptionContains limits results to descriptions containing the value.
func (c *GroupCollector) DescriptionContains(value string) *GroupCollector {
	c.addString(stringFilter{field: fieldDescription, op: opContains, value: value})
	return c
}

// DescriptionDoesNotContain excludes descriptions containing the value.
func (c *GroupCollector) DescriptionDoesNotContain(value string) *GroupCollector {
	c.addString(stringFilter{field: fieldDescription, op: opContains, value: value, negate: true})
	return c
}

// SetSearchWords requires every word to appear in the description.
func (c *GroupCollector) SetSearchWords(words []string) *GroupCollector {
	for _, word := range words {
		c.DescriptionContains(word)
	}
	return c
}

// ExcludeSearchWords requires that none of the words appear in the
// description.
func (c *GroupCollector) ExcludeSearchWords(words []string) *GroupCollector {
	for _, word := range words {
		c.DescriptionDoesNotContain(word)
	}
	return c
}

// Notes predicates. A journal without notes fails every positive notes
// predicate and satisfies every negated one.

// NotesExactly limits results to journals whose notes are exactly the value.
func (c *GroupCollector) NotesExactly(value string) *GroupCollector {
	c.addString(stringFilter{field: fieldNotes, op: opExact, value: value})
	return c
}

// NotesExactlyNot excludes journals whose notes are exactly the value.
func (c *GroupCollector) NotesExactlyNot(value string) *GroupCollector {
	c.addString(stringFilter{field: fieldNotes, op: opExact, value: value, negate: true})
	return c
}

// NotesContain limits results to journals whose notes contain the value.
func (c *GroupCollector) NotesContain(value string) *GroupCollector {
	c.addString(stringFilter{field: fieldNotes, op: opContains, value: value})
	return c
}

// NotesDoNotContain excludes journals whose notes contain the value.
func (c *GroupCollector) NotesDoNotContain(value string) *GroupCollector {
	c.addString(stringFilter{field: fieldNotes, op: opContains, value: value, negate: true})
	return c
}

// NotesStartWith limits results to journals whose notes start with the value.
func (c *GroupCollector) NotesStartWith(value string) *GroupCollector {
	c.addString(stringFilter{field: fieldNotes, op: opStarts, value: value})
	return c
}

// NotesDontStartWith excludes journals whose notes start with the value.
func (c *GroupCollector) NotesDontStartWith(value string) *GroupCollector {
	c.addString(stringFilter{field: fieldNotes, op: opStarts, value: value, negate: true})
	return c
}

// NotesEndWith limits results to journals whose notes end with the value.
func (c *GroupCollector) NotesEndWith(value string) *GroupCollector {
	c.addString(stringFilter{field: fieldNotes, op: opEnds, value: value})
	return c
}

// NotesDontEndWith excludes journals whose notes end with the value.
func (c *GroupCollector) NotesDontEndWith(value string) *GroupCollector {
	c.addString(stringFilter{field: fieldNotes, op: opEnds, value: value, negate: true})
	return c
}

// External id predicates.

func (c *GroupCollector) SetExternalID(value string) *GroupCollector {
	c.addString(stringFilter{field: fieldExternalID, op: opExact, value: value})
	return c
}

func (c *GroupCollector) ExcludeExternalID(value string) *GroupCollector {
	c.addString(stringFilter{field: fieldExternalID, op: opExact, value: value, negate: true})
	return c
}

func (c *GroupCollector) ExternalIDContains(value string) *GroupCollector {
	c.addString(stringFilter{field: fieldExternalID, op: opContains, value: value})
	return c
}

func (c *GroupCollector) ExternalIDDoesNotContain(value string) *GroupCollector {
	c.addString(stringFilter{field: fieldExternalID, op: opContains, value: value, negate: true})
	return c
}

func (c *GroupCollector) ExternalIDStarts(value string) *GroupCollector {
	c.addString(stringFilter{field: fieldExternalID, op: opStarts, value: value})
	return c
}

func (c *GroupCollector) ExternalIDDoesNotStart(value string) *GroupCollector {
	c.addString(stringFilter{field: fieldExternalID, op: opStarts, value: value, negate: true})
	return c
}

func (c *GroupCollector) ExternalIDEnds(value string) *GroupCollector {
	c.addString(stringFilter{field: fieldExternalID, op: opEnds, value: value})
	return c
}

func (c *GroupCollector) ExternalIDDoesNotEnd(value string) *GroupCollector {
	c.addString(stringFilter{field: fieldExternalID, op: opEnds, value: value, negate: true})
	return c
}

// External URL predicates.

func (c *GroupCollector) SetExternalURL(value string) *GroupCollector {
	c.addString(stringFilter{field: fieldExternalURL, op: opExact, value: value})
	return c
}

func (c *GroupCollector) ExcludeExternalURL(value string) *GroupCollector {
	c.addString(stringFilter{field: fieldExternalURL, op: opExact, value: value, negate: true})
	return c
}

func (c *GroupCollector) ExternalURLContains(value string) *GroupCollector {
	c.addString(stringFilter{field: fieldExternalURL, op: opContains, value: value})
	return c
}

func (c *GroupCollector) ExternalURLDoesNotContain(value string) *GroupCollector {
	c.addString(stringFilter{field: fieldExternalURL, op: opContains, value: value, negate: true})
	return c
}

func (c *GroupCollector) ExternalURLStarts(value string) *GroupCollector {
	c.addString(stringFilter{field: fieldExternalURL, op: opStarts, value: value})
	return c
}

func (c *GroupCollector) ExternalURLDoesNotStart(value string) *GroupCollector {
	c.addString(stringFilter{field: fieldExternalURL, op: opStarts, value: value, negate: true})
	return c
}

func (c *GroupCollector) ExternalURLEnds(value string) *GroupCollector {
	c.addString(stringFilter{field: fieldExternalURL, op: opEnds, value: value})
	return c
}

func (c *GroupCollector) ExternalURLDoesNotEnd(value string) *GroupCollector {
	c.addString(stringFilter{field: fieldExternalURL, op: opEnds, value: value, negate: true})
	return c
}

// Internal reference predicates.

func (c *GroupCollector) SetInternalReference(value string) *GroupCollector {
	c.addString(stringFilter{field: fieldInternalReference, op: opExact, value: value})
	return c
}

func (c *GroupCollector) ExcludeInternalReference(value string) *GroupCollector {
	c.addString(stringFilter{field: fieldInternalReference, op: opExact, value: value, negate: true})
	return c
}

func (c *GroupCollector) InternalReferenceContains(value string) *GroupCollector {
	c.addString(stringFilter{field: fieldInternalReference, op: opContains, value: value})
	return c
}

func (c *GroupCollector) InternalReferenceDoesNotContain(value string) *GroupCollector {
	c.addString(stringFilter{field: fieldInternalReference, op: opContains, value: value, negate: true})
	return c
}

func (c *GroupCollector) InternalReferenceStarts(value string) *GroupCollector {
	c.addString(stringFilter{field: fieldInternalReference, op: opStarts, value: value})
	return c
}

func (c *GroupCollector) InternalReferenceDoesNotStart(value string) *GroupCollector {
	c.addString(stringFilter{field: fieldInternalReference, op: opStarts, value: value, negate: true})
	return c
}

func (c *GroupCollector) InternalReferenceEnds(value string) *GroupCollector {
	c.addString(stringFilter{field: fieldInternalReference, op: opEnds, value: value})
	return c
}

func (c *GroupCollector) InternalReferenceDoesNotEnd(value string) *GroupCollector {
	c.addString(stringFilter{field: fieldInternalReference, op: opEnds, value: value, negate: true})
	return c
}

// Attachment name predicates.

func (c *GroupCollector) AttachmentNameIs(value string) *GroupCollector {
	c.addString(stringFilter{field: fieldAttachmentName, op: opExact, value: value})
	return c
}

func (c *GroupCollector) AttachmentNameIsNot(value string) *GroupCollector {
	c.addString(stringFilter{field: fieldAttachmentName, op: opExact, value: value, negate: true})
	return c
}

func (c *GroupCollector) AttachmentNameContains(value string) *GroupCollector {
	c.addString(stringFilter{field: fieldAttachmentName, op: opContains, value: value})
	return c
}

func (c *GroupCollector) AttachmentNameDoesNotContain(value string) *GroupCollector {
	c.addString(stringFilter{field: fieldAttachmentName, op: opContains, value: value, negate: true})
	return c
}

func (c *GroupCollector) AttachmentNameStarts(value string) *GroupCollector {
	c.addString(stringFilter{field: fieldAttachmentName, op: opStarts, value: value})
	return c
}

func (c *GroupCollector) AttachmentNameDoesNotStart(value string) *GroupCollector {
	c.addString(stringFilter{field: fieldAttachmentName, op: opStarts, value: value, negate: true})
	return c
}

func (c *GroupCollector) AttachmentNameEnds(value string) *GroupCollector {
	c.addString(stringFilter{field: fieldAttachmentName, op: opEnds, value: value})
	return c
}

func (c *GroupCollector) AttachmentNameDoesNotEnd(value string) *GroupCollector {
	c.addString(stringFilter{field: fieldAttachmentName, op: opEnds, value: value, negate: true})
	return c
}

// Attachment notes predicates.

func (c *GroupCollector) AttachmentNotesAre(value string) *GroupCollector {
	c.addString(stringFilter{field: fieldAttachmentNotes, op: opExact, value: value})
	return c
}

func (c *GroupCollector) AttachmentNotesAreNot(value string) *GroupCollector {
	c.addString(stringFilter{field: fieldAttachmentNotes, op: opExact, value: value, negate: true})
	return c
}

func (c *GroupCollector) AttachmentNotesContains(value string) *GroupCollector {
	c.addString(stringFilter{field: fieldAttachmentNotes, op: opContains, value: value})
	return c
}

func (c *GroupCollector) AttachmentNotesDoNotContain(value string) *GroupCollector {
	c.addString(stringFilter{field: fieldAttachmentNotes, op: opContains, value: value, negate: true})
	return c
}

func (c *GroupCollector) AttachmentNotesStarts(value string) *GroupCollector {
	c.addString(stringFilter{field: fieldAttachmentNotes, op: opStarts, value: value})
	return c
}

func (c *GroupCollector) AttachmentNotesDoNotStart(value string) *GroupCollector {
	c.addString(stringFilter{field: fieldAttachmentNotes, op: opStarts, value: value, negate: true})
	return c
}

func (c *GroupCollector) AttachmentNotesEnds(value string) *GroupCollector {
	c.addString(stringFilter{field: fieldAttachmentNotes, op: opEnds, value: value})
	return c
}

func (c *GroupCollector) AttachmentNotesDoNotEnd(value string) *GroupCollector {
	c.addString(stringFilter{field: fieldAttachmentNotes, op: opEnds, value: value, negate: true})
	return c
}

// SetSepaCT limits results to journals whose SEPA credit transfer id meta
// field has exactly this value.
func (c *GroupCollector) SetSepaCT(value string) *GroupCollector {
	c.metaText[metaTextSepaCT] = value
	return c
}
