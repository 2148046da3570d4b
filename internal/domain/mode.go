package domain

// Mode is the application mode selected at load time. The storefront
// serves shoppers; administration exposes write access to catalog and
// settings records.
type Mode string

const (
	ModeShopping       Mode = "shopping"
	ModeAdministration Mode = "administration"
)
