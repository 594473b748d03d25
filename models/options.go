package models

const (
	// DefaultPage is the page requested when ListOptions.Page is not set.
	DefaultPage = 1
	// DefaultPerPage is the page size requested when ListOptions.PerPage is not set.
	DefaultPerPage = 20
	// DefaultSort orders records newest first.
	DefaultSort = "-created"

	// DefaultArchiveField is the field updated by an archiving remove.
	DefaultArchiveField = "status"
	// DefaultArchiveValue is the value written by an archiving remove.
	DefaultArchiveValue = "archived"

	// DefaultAuthCollection is the auth collection used when none is given.
	DefaultAuthCollection = "users"
)

// ListOptions describes a paginated list request. Zero values mean
// "use the default": Page 1, PerPage 20, Sort "-created", and no filter,
// expansion or projection.
type ListOptions struct {
	// Page is the 1-based page number.
	Page int
	// PerPage is the page size.
	PerPage int
	// Filter is a store filter expression, e.g. `status != "archived"`.
	Filter string
	// Sort is a comma-separated sort spec; a leading "-" means descending.
	Sort string
	// Expand lists relation fields to expand.
	Expand string
	// Fields projects the returned fields.
	Fields string
}

// WithDefaults returns a copy of o with Page, PerPage and Sort defaulted.
func (o ListOptions) WithDefaults() ListOptions {
	if o.Page <= 0 {
		o.Page = DefaultPage
	}
	if o.PerPage <= 0 {
		o.PerPage = DefaultPerPage
	}
	if o.Sort == "" {
		o.Sort = DefaultSort
	}
	return o
}

// RecordQuery holds the optional expand/fields parameters of a single
// record view request.
type RecordQuery struct {
	Expand string
	Fields string
}

// RemoveMode switches a remove from a hard delete to an archiving update
// that sets Field (default "status") to Value (default "archived").
// A nil *RemoveMode or Archive == false means hard delete.
type RemoveMode struct {
	Archive bool
	Field   string
	Value   string
}

// ArchiveField returns the field to update, applying the default.
func (m RemoveMode) ArchiveField() string {
	if m.Field == "" {
		return DefaultArchiveField
	}
	return m.Field
}

// ArchiveValue returns the value to write, applying the default.
func (m RemoveMode) ArchiveValue() string {
	if m.Value == "" {
		return DefaultArchiveValue
	}
	return m.Value
}

// RegisterOptions tunes registration.
type RegisterOptions struct {
	// AutoLogin logs the new user in right after the record is created.
	AutoLogin bool
}
