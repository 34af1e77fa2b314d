package model

import (
	"encoding/json"
	"strings"
)

// Raw WhoisXML API payload. Only the fields the normalizer reads are typed;
// the rest of the provider response is ignored.
type WhoisAPIResponse struct {
	WhoisRecord *WhoisRecord `json:"WhoisRecord"`
}

type WhoisRecord struct {
	DomainName            string        `json:"domainName"`
	RegistrarName         string        `json:"registrarName"`
	CreatedDate           string        `json:"createdDate"`
	ExpiresDate           string        `json:"expiresDate"`
	EstimatedDomainAge    *int          `json:"estimatedDomainAge"`
	ContactEmail          string        `json:"contactEmail"`
	NameServers           *NameServers  `json:"nameServers"`
	Registrar             *Registrar    `json:"registrar"`
	RegistryData          *RegistryData `json:"registryData"`
	Registrant            *WhoisContact `json:"registrant"`
	TechnicalContact      *WhoisContact `json:"technicalContact"`
	AdministrativeContact *WhoisContact `json:"administrativeContact"`
}

// RegistryData repeats the record's core fields at the registry level; the
// normalizer falls back to it whenever the registrar-level value is empty.
type RegistryData struct {
	DomainName         string       `json:"domainName"`
	RegistrarName      string       `json:"registrarName"`
	CreatedDate        string       `json:"createdDate"`
	ExpiresDate        string       `json:"expiresDate"`
	EstimatedDomainAge *int         `json:"estimatedDomainAge"`
	NameServers        *NameServers `json:"nameServers"`
}

type Registrar struct {
	Name string `json:"name"`
}

type WhoisContact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type NameServers struct {
	HostNames HostList `json:"hostNames"`
	RawText   string   `json:"rawText"`
}

// HostList tolerates the provider sending hostNames as either a JSON array
// or a single delimited string.
type HostList []string

func (h *HostList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*h = list
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*h = SplitHosts(raw)
	return nil
}

// SplitHosts breaks a comma- or whitespace-delimited hostname blob into its
// parts, preserving order.
func SplitHosts(raw string) []string {
	return strings.Fields(strings.ReplaceAll(raw, ",", " "))
}

// Empty reports whether the record carries no registration data at all, which
// the provider uses to signal that no whois record exists for the domain.
func (r *WhoisRecord) Empty() bool {
	if r == nil {
		return true
	}
	if r.DomainName != "" || r.RegistrarName != "" || r.CreatedDate != "" || r.ExpiresDate != "" ||
		r.EstimatedDomainAge != nil || r.ContactEmail != "" || r.NameServers != nil ||
		r.Registrar != nil || r.Registrant != nil || r.TechnicalContact != nil ||
		r.AdministrativeContact != nil {
		return false
	}
	d := r.RegistryData
	if d == nil {
		return true
	}
	return d.DomainName == "" && d.RegistrarName == "" && d.CreatedDate == "" &&
		d.ExpiresDate == "" && d.EstimatedDomainAge == nil && d.NameServers == nil
}
