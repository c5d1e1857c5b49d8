package domain

// Kind reports which of the two profile variants a Profile carries.
type Kind int

const (
	KindUnknown Kind = iota
	KindIndividual
	KindOrganization
)

func (k Kind) String() string {
	switch k {
	case KindIndividual:
		return "Individual"
	case KindOrganization:
		return "Organization"
	default:
		return "Unknown"
	}
}

// Identity is the closed set of legal identities a Profile can hold.
// Only Individual and Organization implement it.
type Identity interface {
	Kind() Kind
	// Document returns the tax identifier of the holder.
	Document() string
	sealed()
}

// Individual is a natural person identified by a personal tax id (CPF).
type Individual struct {
	CPF string
}

func (Individual) Kind() Kind         { return KindIndividual }
func (i Individual) Document() string { return i.CPF }
func (Individual) sealed()            {}

// Organization is a legal entity identified by a company tax id (CNPJ).
type Organization struct {
	CNPJ string
}

func (Organization) Kind() Kind         { return KindOrganization }
func (o Organization) Document() string { return o.CNPJ }
func (Organization) sealed()            {}
