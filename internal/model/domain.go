package model

import "time"

// Info type literals accepted by the lookup endpoint.
const (
	InfoTypeDomain  = "domain"
	InfoTypeContact = "contact"
)

// DomainInfo is the normalized domain-registration record. Every field is
// always present in the JSON so the output shape is stable regardless of how
// sparse the provider payload was.
type DomainInfo struct {
	DomainName         string `json:"domainName"`
	Registrar          string `json:"registrar"`
	RegistrationDate   string `json:"registrationDate"`
	ExpirationDate     string `json:"expirationDate"`
	EstimatedDomainAge *int   `json:"estimatedDomainAge"`
	Hostnames          string `json:"hostnames"`
}

// ContactInfo is the normalized contact record. Fields absent upstream stay
// empty, they are never fabricated.
type ContactInfo struct {
	RegistrantName            string `json:"registrantName"`
	TechnicalContactName      string `json:"technicalContactName"`
	AdministrativeContactName string `json:"administrativeContactName"`
	ContactEmail              string `json:"contactEmail"`
}

// LookupResult holds the outcome of a successful lookup. Exactly one of
// Domain or Contact is set, matching the requested info type.
type LookupResult struct {
	Domain  *DomainInfo
	Contact *ContactInfo
}

// Data returns whichever normalized record the result carries.
func (r *LookupResult) Data() any {
	if r.Domain != nil {
		return r.Domain
	}
	return r.Contact
}

// Registrar returns the registrar for history logging. Only successful
// domain-type lookups record one.
func (r *LookupResult) Registrar() *string {
	if r.Domain == nil {
		return nil
	}
	registrar := r.Domain.Registrar
	return &registrar
}

// LookupEntry is one row of the append-only whois_lookups history table.
// CreatedAt is assigned by the database at insert time.
type LookupEntry struct {
	ID         int       `json:"id"`
	Domain     string    `json:"domain"`
	InfoType   string    `json:"info_type"`
	HTTPStatus int       `json:"http_status"`
	Success    bool      `json:"success"`
	Registrar  *string   `json:"registrar"`
	CreatedAt  time.Time `json:"created_at"`
}
